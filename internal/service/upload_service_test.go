package service

import (
	"bytes"
	"image"
	"image/png"
	"mime/multipart"
	"os"
	"strings"
	"testing"

	"github.com/aidlink-next/internal/config"
)

func newUploadServiceTest(maxWidth, maxHeight int) *UploadService {
	cfg := &config.Config{}
	cfg.Upload.MaxSize = 10 << 20
	cfg.Upload.AllowedTypes = []string{"image/png", "image/jpeg", "image/webp"}
	cfg.Upload.AllowedExtensions = []string{".png", ".jpg", ".webp"}
	cfg.Upload.MaxWidth = maxWidth
	cfg.Upload.MaxHeight = maxHeight
	return NewUploadService(cfg)
}

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height))); err != nil {
		t.Fatalf("encode png failed: %v", err)
	}
	return buf.Bytes()
}

func multipartFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file failed: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write form file failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close multipart writer failed: %v", err)
	}
	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(int64(len(content)) + 4096)
	if err != nil {
		t.Fatalf("read form failed: %v", err)
	}
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["file"][0]
}

func TestSaveFileRejectsTooWideImage(t *testing.T) {
	svc := newUploadServiceTest(100, 100)
	file := multipartFileHeader(t, "banner.png", pngBytes(t, 200, 50))

	if _, err := svc.SaveFile(file, "gallery"); err == nil || !strings.Contains(err.Error(), "width") {
		t.Fatalf("want width limit error, got %v", err)
	}
}

func TestSaveFileRejectsTooTallImage(t *testing.T) {
	svc := newUploadServiceTest(100, 100)
	file := multipartFileHeader(t, "banner.png", pngBytes(t, 50, 200))

	if _, err := svc.SaveFile(file, "gallery"); err == nil || !strings.Contains(err.Error(), "height") {
		t.Fatalf("want height limit error, got %v", err)
	}
}

func TestSaveFileUnlimitedDimensionsSkipsCheck(t *testing.T) {
	svc := newUploadServiceTest(0, 0)
	file := multipartFileHeader(t, "banner.png", pngBytes(t, 200, 200))

	tmp := t.TempDir()
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd failed: %v", err)
	}
	if err := os.Chdir(tmp); err != nil {
		t.Fatalf("chdir failed: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldWD) })
	url, err := svc.SaveFile(file, "gallery")
	if err != nil {
		t.Fatalf("save file failed: %v", err)
	}
	if !strings.HasPrefix(url, "/uploads/gallery/") {
		t.Fatalf("unexpected upload url %q", url)
	}
}

func TestDecodeImageDimensionsPNG(t *testing.T) {
	src := bytes.NewReader(pngBytes(t, 64, 48))
	width, height, err := decodeImageDimensions(src, "image/png")
	if err != nil {
		t.Fatalf("decode dimensions failed: %v", err)
	}
	if width != 64 || height != 48 {
		t.Fatalf("dimensions want 64x48 got %dx%d", width, height)
	}
}

func TestDecodeWebPDimensionsVP8L(t *testing.T) {
	// 200x100 的无损 WebP 头：尺寸按 (value-1) 各占 14 位编码
	bits := uint32(200-1) | uint32(100-1)<<14
	chunk := []byte{0x2f, byte(bits), byte(bits >> 8), byte(bits >> 16), byte(bits >> 24)}
	var buf bytes.Buffer
	buf.WriteString("RIFF")
	buf.Write([]byte{0, 0, 0, 0})
	buf.WriteString("WEBP")
	buf.WriteString("VP8L")
	size := []byte{byte(len(chunk)), 0, 0, 0}
	buf.Write(size)
	buf.Write(chunk)

	width, height, err := decodeWebPDimensions(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("decode webp failed: %v", err)
	}
	if width != 200 || height != 100 {
		t.Fatalf("dimensions want 200x100 got %dx%d", width, height)
	}
}

func TestNormalizeUploadSceneFallsBackToCommon(t *testing.T) {
	if got := normalizeUploadScene(" Gallery "); got != "gallery" {
		t.Fatalf("want gallery got %q", got)
	}
	if got := normalizeUploadScene("secret"); got != "common" {
		t.Fatalf("unknown scene want common got %q", got)
	}
	if got := normalizeUploadScene(""); got != "common" {
		t.Fatalf("empty scene want common got %q", got)
	}
}
