package repository

import (
	"errors"

	"github.com/aidlink-next/internal/models"

	"gorm.io/gorm"
)

// TestimonialRepository 感言数据访问接口
type TestimonialRepository interface {
	List(filter TestimonialListFilter) ([]models.Testimonial, int64, error)
	GetByID(id uint) (*models.Testimonial, error)
	Create(testimonial *models.Testimonial) error
	Update(testimonial *models.Testimonial) error
	Delete(id uint) error
}

// GormTestimonialRepository GORM 实现
type GormTestimonialRepository struct {
	db *gorm.DB
}

// NewTestimonialRepository 创建感言仓库
func NewTestimonialRepository(db *gorm.DB) *GormTestimonialRepository {
	return &GormTestimonialRepository{db: db}
}

// List 感言列表
func (r *GormTestimonialRepository) List(filter TestimonialListFilter) ([]models.Testimonial, int64, error) {
	var testimonials []models.Testimonial
	query := r.db.Model(&models.Testimonial{})

	if filter.OnlyPublished {
		query = query.Where("is_published = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Order("sort_order DESC, created_at DESC").Find(&testimonials).Error; err != nil {
		return nil, 0, err
	}
	return testimonials, total, nil
}

// GetByID 根据 ID 获取感言
func (r *GormTestimonialRepository) GetByID(id uint) (*models.Testimonial, error) {
	var testimonial models.Testimonial
	if err := r.db.First(&testimonial, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &testimonial, nil
}

// Create 创建感言
func (r *GormTestimonialRepository) Create(testimonial *models.Testimonial) error {
	return r.db.Create(testimonial).Error
}

// Update 更新感言
func (r *GormTestimonialRepository) Update(testimonial *models.Testimonial) error {
	return r.db.Save(testimonial).Error
}

// Delete 删除感言
func (r *GormTestimonialRepository) Delete(id uint) error {
	return r.db.Delete(&models.Testimonial{}, id).Error
}
