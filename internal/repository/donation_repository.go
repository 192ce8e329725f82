package repository

import (
	"errors"
	"strings"

	"github.com/aidlink-next/internal/models"

	"gorm.io/gorm"
)

// DonationRepository 捐赠数据访问接口
type DonationRepository interface {
	List(filter DonationListFilter) ([]models.Donation, int64, error)
	GetByID(id uint) (*models.Donation, error)
	Create(donation *models.Donation) error
	Update(donation *models.Donation) error
	Delete(id uint) error
	SumReceived() (models.Money, error)
	CountByStatus(status string) (int64, error)
}

// GormDonationRepository GORM 实现
type GormDonationRepository struct {
	db *gorm.DB
}

// NewDonationRepository 创建捐赠仓库
func NewDonationRepository(db *gorm.DB) *GormDonationRepository {
	return &GormDonationRepository{db: db}
}

// List 捐赠列表
func (r *GormDonationRepository) List(filter DonationListFilter) ([]models.Donation, int64, error) {
	var donations []models.Donation
	query := r.db.Model(&models.Donation{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Method != "" {
		query = query.Where("method = ?", filter.Method)
	}
	if filter.ProjectID > 0 {
		query = query.Where("project_id = ?", filter.ProjectID)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		query = query.Where("donor_name LIKE ? OR donor_email LIKE ? OR receipt_no LIKE ?", like, like, like)
	}
	if filter.CreatedFrom != nil {
		query = query.Where("created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		query = query.Where("created_at <= ?", *filter.CreatedTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Preload("Project").Order("created_at DESC").Find(&donations).Error; err != nil {
		return nil, 0, err
	}
	return donations, total, nil
}

// GetByID 根据 ID 获取捐赠
func (r *GormDonationRepository) GetByID(id uint) (*models.Donation, error) {
	var donation models.Donation
	if err := r.db.Preload("Project").First(&donation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &donation, nil
}

// Create 创建捐赠
func (r *GormDonationRepository) Create(donation *models.Donation) error {
	return r.db.Create(donation).Error
}

// Update 更新捐赠
func (r *GormDonationRepository) Update(donation *models.Donation) error {
	return r.db.Save(donation).Error
}

// Delete 删除捐赠
func (r *GormDonationRepository) Delete(id uint) error {
	return r.db.Delete(&models.Donation{}, id).Error
}

// SumReceived 统计已到账捐赠总额
func (r *GormDonationRepository) SumReceived() (models.Money, error) {
	var result struct {
		Total models.Money
	}
	err := r.db.Model(&models.Donation{}).
		Select("COALESCE(SUM(amount), 0) as total").
		Where("status = ?", "received").
		Scan(&result).Error
	if err != nil {
		return models.Money{}, err
	}
	return result.Total, nil
}

// CountByStatus 统计指定状态的捐赠数量
func (r *GormDonationRepository) CountByStatus(status string) (int64, error) {
	var count int64
	query := r.db.Model(&models.Donation{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
