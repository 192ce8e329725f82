package repository

import (
	"errors"

	"github.com/aidlink-next/internal/models"

	"gorm.io/gorm"
)

// ImpactStatRepository 影响力指标数据访问接口
type ImpactStatRepository interface {
	List(onlyActive bool) ([]models.ImpactStat, error)
	GetByID(id uint) (*models.ImpactStat, error)
	Create(stat *models.ImpactStat) error
	Update(stat *models.ImpactStat) error
	Delete(id uint) error
}

// GormImpactStatRepository GORM 实现
type GormImpactStatRepository struct {
	db *gorm.DB
}

// NewImpactStatRepository 创建影响力指标仓库
func NewImpactStatRepository(db *gorm.DB) *GormImpactStatRepository {
	return &GormImpactStatRepository{db: db}
}

// List 指标列表
func (r *GormImpactStatRepository) List(onlyActive bool) ([]models.ImpactStat, error) {
	stats := make([]models.ImpactStat, 0)
	query := r.db.Model(&models.ImpactStat{})
	if onlyActive {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Order("sort_order DESC, id ASC").Find(&stats).Error; err != nil {
		return nil, err
	}
	return stats, nil
}

// GetByID 根据 ID 获取指标
func (r *GormImpactStatRepository) GetByID(id uint) (*models.ImpactStat, error) {
	var stat models.ImpactStat
	if err := r.db.First(&stat, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &stat, nil
}

// Create 创建指标
func (r *GormImpactStatRepository) Create(stat *models.ImpactStat) error {
	return r.db.Create(stat).Error
}

// Update 更新指标
func (r *GormImpactStatRepository) Update(stat *models.ImpactStat) error {
	return r.db.Save(stat).Error
}

// Delete 删除指标
func (r *GormImpactStatRepository) Delete(id uint) error {
	return r.db.Delete(&models.ImpactStat{}, id).Error
}
