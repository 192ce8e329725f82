package service

import (
	"errors"
	"testing"

	"github.com/aidlink-next/internal/constants"
	"github.com/aidlink-next/internal/models"
	"github.com/aidlink-next/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupVolunteerServiceTest(t *testing.T) (*VolunteerService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Volunteer{}, &models.Event{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	svc := NewVolunteerService(repository.NewVolunteerRepository(db), repository.NewEventRepository(db))
	return svc, db
}

func TestVolunteerSignup(t *testing.T) {
	svc, _ := setupVolunteerServiceTest(t)

	volunteer, err := svc.Signup(VolunteerSignupInput{
		Name:  "Ana Silva",
		Email: " Ana@Example.org ",
	})
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	if volunteer.Status != constants.VolunteerStatusPending {
		t.Fatalf("new signup status want pending got %s", volunteer.Status)
	}
	if volunteer.Email != "ana@example.org" {
		t.Fatalf("email should be normalized, got %s", volunteer.Email)
	}
}

func TestVolunteerSignupRequiresNameAndEmail(t *testing.T) {
	svc, _ := setupVolunteerServiceTest(t)

	if _, err := svc.Signup(VolunteerSignupInput{Name: "", Email: "a@b.org"}); !errors.Is(err, ErrInvalidParam) {
		t.Fatalf("empty name want ErrInvalidParam got %v", err)
	}
	if _, err := svc.Signup(VolunteerSignupInput{Name: "A", Email: "  "}); !errors.Is(err, ErrInvalidParam) {
		t.Fatalf("blank email want ErrInvalidParam got %v", err)
	}
}

func TestVolunteerSignupDuplicateForSameEvent(t *testing.T) {
	svc, db := setupVolunteerServiceTest(t)

	event := models.Event{Slug: "open-day", Title: "Open Day", IsPublished: true}
	if err := db.Create(&event).Error; err != nil {
		t.Fatalf("create event failed: %v", err)
	}

	input := VolunteerSignupInput{Name: "Ana Silva", Email: "ana@example.org", EventID: &event.ID}
	if _, err := svc.Signup(input); err != nil {
		t.Fatalf("first signup failed: %v", err)
	}
	if _, err := svc.Signup(input); !errors.Is(err, ErrDuplicateSignup) {
		t.Fatalf("second signup want ErrDuplicateSignup got %v", err)
	}
}

func TestVolunteerSignupRejectsUnpublishedEvent(t *testing.T) {
	svc, db := setupVolunteerServiceTest(t)

	event := models.Event{Slug: "draft-day", Title: "Draft Day"}
	if err := db.Create(&event).Error; err != nil {
		t.Fatalf("create event failed: %v", err)
	}

	if _, err := svc.Signup(VolunteerSignupInput{Name: "Ana", Email: "ana@example.org", EventID: &event.ID}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unpublished event want ErrNotFound got %v", err)
	}
}

func TestVolunteerUpdateStatusValidation(t *testing.T) {
	svc, _ := setupVolunteerServiceTest(t)

	volunteer, err := svc.Signup(VolunteerSignupInput{Name: "Ana", Email: "ana@example.org"})
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	updated, err := svc.UpdateStatus(volunteer.ID, constants.VolunteerStatusApproved)
	if err != nil {
		t.Fatalf("update status failed: %v", err)
	}
	if updated.Status != constants.VolunteerStatusApproved {
		t.Fatalf("status want approved got %s", updated.Status)
	}

	if _, err := svc.UpdateStatus(volunteer.ID, "frozen"); !errors.Is(err, ErrInvalidParam) {
		t.Fatalf("unknown status want ErrInvalidParam got %v", err)
	}
}
