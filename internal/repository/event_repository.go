package repository

import (
	"errors"
	"strings"
	"time"

	"github.com/aidlink-next/internal/models"

	"gorm.io/gorm"
)

// EventRepository 活动数据访问接口
type EventRepository interface {
	List(filter EventListFilter) ([]models.Event, int64, error)
	GetBySlug(slug string, onlyPublished bool) (*models.Event, error)
	GetByID(id uint) (*models.Event, error)
	Create(event *models.Event) error
	Update(event *models.Event) error
	Delete(id uint) error
	CountBySlug(slug string, excludeID *uint) (int64, error)
}

// GormEventRepository GORM 实现
type GormEventRepository struct {
	db *gorm.DB
}

// NewEventRepository 创建活动仓库
func NewEventRepository(db *gorm.DB) *GormEventRepository {
	return &GormEventRepository{db: db}
}

// List 活动列表
func (r *GormEventRepository) List(filter EventListFilter) ([]models.Event, int64, error) {
	var events []models.Event
	query := r.db.Model(&models.Event{})

	if filter.OnlyPublished {
		query = query.Where("is_published = ?", true)
	}
	if filter.Upcoming {
		query = query.Where("start_at >= ?", time.Now())
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		query = query.Where("title LIKE ? OR location LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	orderBy := filter.OrderBy
	if orderBy == "" {
		orderBy = "sort_order DESC, start_at DESC"
	}

	if err := query.Order(orderBy).Find(&events).Error; err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

// GetBySlug 根据 slug 获取活动
func (r *GormEventRepository) GetBySlug(slug string, onlyPublished bool) (*models.Event, error) {
	query := r.db.Where("slug = ?", slug)
	if onlyPublished {
		query = query.Where("is_published = ?", true)
	}

	var event models.Event
	if err := query.First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}

// GetByID 根据 ID 获取活动
func (r *GormEventRepository) GetByID(id uint) (*models.Event, error) {
	var event models.Event
	if err := r.db.First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}

// Create 创建活动
func (r *GormEventRepository) Create(event *models.Event) error {
	return r.db.Create(event).Error
}

// Update 更新活动
func (r *GormEventRepository) Update(event *models.Event) error {
	return r.db.Save(event).Error
}

// Delete 删除活动
func (r *GormEventRepository) Delete(id uint) error {
	return r.db.Delete(&models.Event{}, id).Error
}

// CountBySlug 统计 slug 数量
func (r *GormEventRepository) CountBySlug(slug string, excludeID *uint) (int64, error) {
	var count int64
	query := r.db.Model(&models.Event{}).Where("slug = ?", slug)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
