package repository

import (
	"testing"
	"time"

	"github.com/aidlink-next/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupEventRepositoryTest(t *testing.T) (*GormEventRepository, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Event{}); err != nil {
		t.Fatalf("migrate event failed: %v", err)
	}
	return NewEventRepository(db), db
}

func createEvent(t *testing.T, repo *GormEventRepository, slug string, published bool, startAt time.Time) *models.Event {
	t.Helper()
	event := &models.Event{
		Slug:        slug,
		Title:       "测试活动",
		Location:    "Community Center",
		StartAt:     &startAt,
		IsPublished: published,
	}
	if err := repo.Create(event); err != nil {
		t.Fatalf("create event failed: %v", err)
	}
	return event
}

func TestEventListOnlyPublishedAndUpcoming(t *testing.T) {
	repo, _ := setupEventRepositoryTest(t)
	past := time.Now().Add(-48 * time.Hour)
	future := time.Now().Add(48 * time.Hour)

	createEvent(t, repo, "past-published", true, past)
	createEvent(t, repo, "future-published", true, future)
	createEvent(t, repo, "future-draft", false, future)

	events, total, err := repo.List(EventListFilter{OnlyPublished: true, Upcoming: true})
	if err != nil {
		t.Fatalf("list events failed: %v", err)
	}
	if total != 1 {
		t.Fatalf("total want 1 got %d", total)
	}
	if len(events) != 1 || events[0].Slug != "future-published" {
		t.Fatalf("unexpected events: %+v", events)
	}
}

func TestEventGetBySlugRespectsPublishedFlag(t *testing.T) {
	repo, _ := setupEventRepositoryTest(t)
	createEvent(t, repo, "draft-event", false, time.Now())

	event, err := repo.GetBySlug("draft-event", true)
	if err != nil {
		t.Fatalf("get by slug failed: %v", err)
	}
	if event != nil {
		t.Fatalf("draft event should not be visible when onlyPublished")
	}

	event, err = repo.GetBySlug("draft-event", false)
	if err != nil {
		t.Fatalf("get by slug failed: %v", err)
	}
	if event == nil {
		t.Fatalf("draft event should be visible to admin query")
	}
}

func TestEventCountBySlugExcludesSelf(t *testing.T) {
	repo, _ := setupEventRepositoryTest(t)
	event := createEvent(t, repo, "unique-slug", true, time.Now())

	count, err := repo.CountBySlug("unique-slug", nil)
	if err != nil {
		t.Fatalf("count by slug failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("count want 1 got %d", count)
	}

	count, err = repo.CountBySlug("unique-slug", &event.ID)
	if err != nil {
		t.Fatalf("count by slug failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("count excluding self want 0 got %d", count)
	}
}
