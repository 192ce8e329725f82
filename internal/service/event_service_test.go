package service

import (
	"errors"
	"testing"

	"github.com/aidlink-next/internal/models"
	"github.com/aidlink-next/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupEventServiceTest(t *testing.T) *EventService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Event{}); err != nil {
		t.Fatalf("migrate event failed: %v", err)
	}
	return NewEventService(repository.NewEventRepository(db))
}

func TestEventCreateRequiresSlugAndTitle(t *testing.T) {
	svc := setupEventServiceTest(t)

	if _, err := svc.Create(EventInput{Slug: "", Title: "x"}); !errors.Is(err, ErrInvalidParam) {
		t.Fatalf("empty slug want ErrInvalidParam got %v", err)
	}
	if _, err := svc.Create(EventInput{Slug: "x", Title: "  "}); !errors.Is(err, ErrInvalidParam) {
		t.Fatalf("blank title want ErrInvalidParam got %v", err)
	}
}

func TestEventCreateDuplicateSlug(t *testing.T) {
	svc := setupEventServiceTest(t)

	if _, err := svc.Create(EventInput{Slug: "food-drive", Title: "Food Drive"}); err != nil {
		t.Fatalf("create event failed: %v", err)
	}
	if _, err := svc.Create(EventInput{Slug: "food-drive", Title: "Another"}); !errors.Is(err, ErrSlugExists) {
		t.Fatalf("duplicate slug want ErrSlugExists got %v", err)
	}
}

func TestEventPublicVisibility(t *testing.T) {
	svc := setupEventServiceTest(t)

	published := true
	if _, err := svc.Create(EventInput{Slug: "open-day", Title: "Open Day", IsPublished: &published}); err != nil {
		t.Fatalf("create published event failed: %v", err)
	}
	if _, err := svc.Create(EventInput{Slug: "draft-day", Title: "Draft Day"}); err != nil {
		t.Fatalf("create draft event failed: %v", err)
	}

	events, total, err := svc.ListPublic(1, 10, false)
	if err != nil {
		t.Fatalf("list public failed: %v", err)
	}
	if total != 1 || len(events) != 1 || events[0].Slug != "open-day" {
		t.Fatalf("unexpected public list: total=%d events=%+v", total, events)
	}

	if _, err := svc.GetPublicBySlug("draft-day"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("draft event want ErrNotFound got %v", err)
	}
	if _, err := svc.GetPublicBySlug("open-day"); err != nil {
		t.Fatalf("published event lookup failed: %v", err)
	}
}

func TestEventUpdateAndDelete(t *testing.T) {
	svc := setupEventServiceTest(t)

	event, err := svc.Create(EventInput{Slug: "cleanup", Title: "Beach Cleanup"})
	if err != nil {
		t.Fatalf("create event failed: %v", err)
	}

	updated, err := svc.Update(event.ID, EventInput{Slug: "cleanup", Title: "River Cleanup"})
	if err != nil {
		t.Fatalf("update event failed: %v", err)
	}
	if updated.Title != "River Cleanup" {
		t.Fatalf("title want River Cleanup got %q", updated.Title)
	}

	if err := svc.Delete(event.ID); err != nil {
		t.Fatalf("delete event failed: %v", err)
	}
	if err := svc.Delete(event.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("double delete want ErrNotFound got %v", err)
	}
}
