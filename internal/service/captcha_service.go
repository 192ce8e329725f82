package service

import (
	"strings"
	"sync"
	"time"

	"github.com/aidlink-next/internal/config"

	"github.com/mojocn/base64Captcha"
)

// CaptchaImageChallenge 图片验证码挑战
type CaptchaImageChallenge struct {
	CaptchaID   string `json:"captcha_id"`
	ImageBase64 string `json:"image_base64"`
}

// CaptchaService 图片验证码服务，用于公开表单防滥用
type CaptchaService struct {
	cfg config.CaptchaConfig

	mu    sync.Mutex
	store base64Captcha.Store
}

// NewCaptchaService 创建验证码服务
func NewCaptchaService(cfg config.CaptchaConfig) *CaptchaService {
	return &CaptchaService{cfg: cfg}
}

// Enabled 验证码是否启用
func (s *CaptchaService) Enabled() bool {
	return s != nil && s.cfg.Enabled
}

// GenerateImageChallenge 生成图片验证码
func (s *CaptchaService) GenerateImageChallenge() (*CaptchaImageChallenge, error) {
	driver := base64Captcha.NewDriverDigit(
		s.height(), s.width(), s.length(), 0.7, s.noiseCount(),
	)
	captcha := base64Captcha.NewCaptcha(driver, s.getStore())
	id, b64, _, err := captcha.Generate()
	if err != nil {
		return nil, err
	}
	return &CaptchaImageChallenge{
		CaptchaID:   id,
		ImageBase64: b64,
	}, nil
}

// Verify 校验验证码，未启用时直接放行
func (s *CaptchaService) Verify(captchaID, captchaCode string) error {
	if !s.Enabled() {
		return nil
	}
	captchaID = strings.TrimSpace(captchaID)
	captchaCode = strings.TrimSpace(captchaCode)
	if captchaID == "" || captchaCode == "" {
		return ErrCaptchaInvalid
	}
	if !s.getStore().Verify(captchaID, captchaCode, true) {
		return ErrCaptchaInvalid
	}
	return nil
}

func (s *CaptchaService) getStore() base64Captcha.Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.store == nil {
		maxStore := s.cfg.MaxStore
		if maxStore <= 0 {
			maxStore = base64Captcha.GCLimitNumber
		}
		expire := time.Duration(s.cfg.ExpireSeconds) * time.Second
		if expire <= 0 {
			expire = base64Captcha.Expiration
		}
		s.store = base64Captcha.NewMemoryStore(maxStore, expire)
	}
	return s.store
}

func (s *CaptchaService) width() int {
	if s.cfg.Width > 0 {
		return s.cfg.Width
	}
	return 240
}

func (s *CaptchaService) height() int {
	if s.cfg.Height > 0 {
		return s.cfg.Height
	}
	return 80
}

func (s *CaptchaService) length() int {
	if s.cfg.Length > 0 {
		return s.cfg.Length
	}
	return 5
}

func (s *CaptchaService) noiseCount() int {
	if s.cfg.NoiseCount > 0 {
		return s.cfg.NoiseCount
	}
	return 80
}
