package repository

import (
	"errors"

	"github.com/aidlink-next/internal/models"

	"gorm.io/gorm"
)

// PartnerRepository 合作伙伴数据访问接口
type PartnerRepository interface {
	List(filter PartnerListFilter) ([]models.Partner, int64, error)
	GetByID(id uint) (*models.Partner, error)
	Create(partner *models.Partner) error
	Update(partner *models.Partner) error
	Delete(id uint) error
}

// GormPartnerRepository GORM 实现
type GormPartnerRepository struct {
	db *gorm.DB
}

// NewPartnerRepository 创建合作伙伴仓库
func NewPartnerRepository(db *gorm.DB) *GormPartnerRepository {
	return &GormPartnerRepository{db: db}
}

// List 合作伙伴列表
func (r *GormPartnerRepository) List(filter PartnerListFilter) ([]models.Partner, int64, error) {
	var partners []models.Partner
	query := r.db.Model(&models.Partner{})

	if filter.OnlyActive {
		query = query.Where("is_active = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Order("sort_order DESC, id ASC").Find(&partners).Error; err != nil {
		return nil, 0, err
	}
	return partners, total, nil
}

// GetByID 根据 ID 获取合作伙伴
func (r *GormPartnerRepository) GetByID(id uint) (*models.Partner, error) {
	var partner models.Partner
	if err := r.db.First(&partner, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &partner, nil
}

// Create 创建合作伙伴
func (r *GormPartnerRepository) Create(partner *models.Partner) error {
	return r.db.Create(partner).Error
}

// Update 更新合作伙伴
func (r *GormPartnerRepository) Update(partner *models.Partner) error {
	return r.db.Save(partner).Error
}

// Delete 删除合作伙伴
func (r *GormPartnerRepository) Delete(id uint) error {
	return r.db.Delete(&models.Partner{}, id).Error
}
