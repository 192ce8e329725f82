package service

import (
	"strings"
	"time"

	"github.com/aidlink-next/internal/models"
	"github.com/aidlink-next/internal/repository"
)

// EventService 活动业务服务
type EventService struct {
	repo repository.EventRepository
}

// NewEventService 创建活动服务
func NewEventService(repo repository.EventRepository) *EventService {
	return &EventService{repo: repo}
}

// EventInput 创建/更新活动输入
type EventInput struct {
	Slug        string
	Title       string
	Summary     string
	Content     string
	Location    string
	CoverImage  string
	StartAt     *time.Time
	EndAt       *time.Time
	IsPublished *bool
	SortOrder   *int
}

// ListPublic 获取公开活动列表
func (s *EventService) ListPublic(page, pageSize int, upcoming bool) ([]models.Event, int64, error) {
	filter := repository.EventListFilter{
		Page:          page,
		PageSize:      pageSize,
		OnlyPublished: true,
		Upcoming:      upcoming,
		OrderBy:       "start_at DESC",
	}
	return s.repo.List(filter)
}

// GetPublicBySlug 获取公开活动详情
func (s *EventService) GetPublicBySlug(slug string) (*models.Event, error) {
	event, err := s.repo.GetBySlug(slug, true)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrNotFound
	}
	return event, nil
}

// ListAdmin 获取后台活动列表
func (s *EventService) ListAdmin(search string, page, pageSize int) ([]models.Event, int64, error) {
	filter := repository.EventListFilter{
		Page:     page,
		PageSize: pageSize,
		Search:   search,
		OrderBy:  "created_at DESC",
	}
	return s.repo.List(filter)
}

// Get 活动详情
func (s *EventService) Get(id uint) (*models.Event, error) {
	event, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrNotFound
	}
	return event, nil
}

// Create 创建活动
func (s *EventService) Create(input EventInput) (*models.Event, error) {
	slug := strings.TrimSpace(input.Slug)
	title := strings.TrimSpace(input.Title)
	if slug == "" || title == "" {
		return nil, ErrInvalidParam
	}

	count, err := s.repo.CountBySlug(slug, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugExists
	}

	event := models.Event{
		Slug:       slug,
		Title:      title,
		Summary:    input.Summary,
		Content:    input.Content,
		Location:   input.Location,
		CoverImage: input.CoverImage,
		StartAt:    input.StartAt,
		EndAt:      input.EndAt,
	}
	if input.IsPublished != nil {
		event.IsPublished = *input.IsPublished
	}
	if input.SortOrder != nil {
		event.SortOrder = *input.SortOrder
	}

	if err := s.repo.Create(&event); err != nil {
		return nil, err
	}
	return &event, nil
}

// Update 更新活动
func (s *EventService) Update(id uint, input EventInput) (*models.Event, error) {
	event, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrNotFound
	}

	slug := strings.TrimSpace(input.Slug)
	title := strings.TrimSpace(input.Title)
	if slug == "" || title == "" {
		return nil, ErrInvalidParam
	}

	count, err := s.repo.CountBySlug(slug, &id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugExists
	}

	event.Slug = slug
	event.Title = title
	event.Summary = input.Summary
	event.Content = input.Content
	event.Location = input.Location
	event.CoverImage = input.CoverImage
	event.StartAt = input.StartAt
	event.EndAt = input.EndAt
	if input.IsPublished != nil {
		event.IsPublished = *input.IsPublished
	}
	if input.SortOrder != nil {
		event.SortOrder = *input.SortOrder
	}

	if err := s.repo.Update(event); err != nil {
		return nil, err
	}
	return event, nil
}

// Delete 删除活动
func (s *EventService) Delete(id uint) error {
	event, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if event == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}
