package service

import (
	"strings"

	"github.com/aidlink-next/internal/models"
	"github.com/aidlink-next/internal/repository"
)

// GalleryService 相册业务服务
type GalleryService struct {
	repo      repository.GalleryRepository
	eventRepo repository.EventRepository
}

// NewGalleryService 创建相册服务
func NewGalleryService(repo repository.GalleryRepository, eventRepo repository.EventRepository) *GalleryService {
	return &GalleryService{repo: repo, eventRepo: eventRepo}
}

// GalleryItemInput 创建/更新相册条目输入
type GalleryItemInput struct {
	Title       string
	Image       string
	Caption     string
	EventID     *uint
	IsPublished *bool
	SortOrder   *int
}

// ListPublic 获取公开相册列表
func (s *GalleryService) ListPublic(eventID uint, page, pageSize int) ([]models.GalleryItem, int64, error) {
	filter := repository.GalleryListFilter{
		Page:          page,
		PageSize:      pageSize,
		EventID:       eventID,
		OnlyPublished: true,
	}
	return s.repo.List(filter)
}

// ListAdmin 获取后台相册列表
func (s *GalleryService) ListAdmin(eventID uint, page, pageSize int) ([]models.GalleryItem, int64, error) {
	filter := repository.GalleryListFilter{
		Page:     page,
		PageSize: pageSize,
		EventID:  eventID,
	}
	return s.repo.List(filter)
}

// Get 相册条目详情
func (s *GalleryService) Get(id uint) (*models.GalleryItem, error) {
	item, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrNotFound
	}
	return item, nil
}

// Create 创建相册条目
func (s *GalleryService) Create(input GalleryItemInput) (*models.GalleryItem, error) {
	image := strings.TrimSpace(input.Image)
	if image == "" {
		return nil, ErrInvalidParam
	}
	if err := s.ensureEventExists(input.EventID); err != nil {
		return nil, err
	}

	item := models.GalleryItem{
		Title:   strings.TrimSpace(input.Title),
		Image:   image,
		Caption: input.Caption,
		EventID: input.EventID,
	}
	item.IsPublished = true
	if input.IsPublished != nil {
		item.IsPublished = *input.IsPublished
	}
	if input.SortOrder != nil {
		item.SortOrder = *input.SortOrder
	}

	if err := s.repo.Create(&item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Update 更新相册条目
func (s *GalleryService) Update(id uint, input GalleryItemInput) (*models.GalleryItem, error) {
	item, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrNotFound
	}

	image := strings.TrimSpace(input.Image)
	if image == "" {
		return nil, ErrInvalidParam
	}
	if err := s.ensureEventExists(input.EventID); err != nil {
		return nil, err
	}

	item.Title = strings.TrimSpace(input.Title)
	item.Image = image
	item.Caption = input.Caption
	item.EventID = input.EventID
	if input.IsPublished != nil {
		item.IsPublished = *input.IsPublished
	}
	if input.SortOrder != nil {
		item.SortOrder = *input.SortOrder
	}

	if err := s.repo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete 删除相册条目
func (s *GalleryService) Delete(id uint) error {
	item, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}

func (s *GalleryService) ensureEventExists(eventID *uint) error {
	if eventID == nil || *eventID == 0 {
		return nil
	}
	event, err := s.eventRepo.GetByID(*eventID)
	if err != nil {
		return err
	}
	if event == nil {
		return ErrNotFound
	}
	return nil
}
