package repository

import (
	"errors"

	"github.com/aidlink-next/internal/models"

	"gorm.io/gorm"
)

// GalleryRepository 相册数据访问接口
type GalleryRepository interface {
	List(filter GalleryListFilter) ([]models.GalleryItem, int64, error)
	GetByID(id uint) (*models.GalleryItem, error)
	Create(item *models.GalleryItem) error
	Update(item *models.GalleryItem) error
	Delete(id uint) error
}

// GormGalleryRepository GORM 实现
type GormGalleryRepository struct {
	db *gorm.DB
}

// NewGalleryRepository 创建相册仓库
func NewGalleryRepository(db *gorm.DB) *GormGalleryRepository {
	return &GormGalleryRepository{db: db}
}

// List 相册列表
func (r *GormGalleryRepository) List(filter GalleryListFilter) ([]models.GalleryItem, int64, error) {
	var items []models.GalleryItem
	query := r.db.Model(&models.GalleryItem{})

	if filter.OnlyPublished {
		query = query.Where("is_published = ?", true)
	}
	if filter.EventID > 0 {
		query = query.Where("event_id = ?", filter.EventID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Order("sort_order DESC, created_at DESC").Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// GetByID 根据 ID 获取相册条目
func (r *GormGalleryRepository) GetByID(id uint) (*models.GalleryItem, error) {
	var item models.GalleryItem
	if err := r.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// Create 创建相册条目
func (r *GormGalleryRepository) Create(item *models.GalleryItem) error {
	return r.db.Create(item).Error
}

// Update 更新相册条目
func (r *GormGalleryRepository) Update(item *models.GalleryItem) error {
	return r.db.Save(item).Error
}

// Delete 删除相册条目
func (r *GormGalleryRepository) Delete(id uint) error {
	return r.db.Delete(&models.GalleryItem{}, id).Error
}
