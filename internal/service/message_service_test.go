package service

import (
	"errors"
	"testing"

	"github.com/aidlink-next/internal/models"
	"github.com/aidlink-next/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupMessageServiceTest(t *testing.T) *MessageService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Message{}); err != nil {
		t.Fatalf("migrate message failed: %v", err)
	}
	return NewMessageService(repository.NewMessageRepository(db), nil)
}

func TestMessageSubmitValidation(t *testing.T) {
	svc := setupMessageServiceTest(t)

	if _, err := svc.Submit(SubmitMessageInput{Name: "", Body: "hello"}); !errors.Is(err, ErrInvalidParam) {
		t.Fatalf("empty name want ErrInvalidParam got %v", err)
	}
	if _, err := svc.Submit(SubmitMessageInput{Name: "Ann", Body: "   "}); !errors.Is(err, ErrInvalidParam) {
		t.Fatalf("blank body want ErrInvalidParam got %v", err)
	}
}

func TestMessageSubmitAndUnreadLifecycle(t *testing.T) {
	svc := setupMessageServiceTest(t)

	message, err := svc.Submit(SubmitMessageInput{
		Name:    "Ann",
		Email:   "ann@example.org",
		Subject: "Question",
		Body:    "How can I help?",
	})
	if err != nil {
		t.Fatalf("submit message failed: %v", err)
	}
	if message.IsRead {
		t.Fatalf("new message should be unread")
	}

	count, err := svc.UnreadCount()
	if err != nil {
		t.Fatalf("unread count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("unread count want 1 got %d", count)
	}

	if err := svc.MarkRead(message.ID, true); err != nil {
		t.Fatalf("mark read failed: %v", err)
	}
	count, err = svc.UnreadCount()
	if err != nil {
		t.Fatalf("unread count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("unread count after read want 0 got %d", count)
	}

	if err := svc.Delete(message.ID); err != nil {
		t.Fatalf("delete message failed: %v", err)
	}
	if err := svc.MarkRead(message.ID, false); !errors.Is(err, ErrNotFound) {
		t.Fatalf("mark read deleted message want ErrNotFound got %v", err)
	}
}
