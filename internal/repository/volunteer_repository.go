package repository

import (
	"errors"
	"strings"

	"github.com/aidlink-next/internal/models"

	"gorm.io/gorm"
)

// VolunteerRepository 志愿者报名数据访问接口
type VolunteerRepository interface {
	List(filter VolunteerListFilter) ([]models.Volunteer, int64, error)
	GetByID(id uint) (*models.Volunteer, error)
	Create(volunteer *models.Volunteer) error
	Update(volunteer *models.Volunteer) error
	Delete(id uint) error
	CountByStatus(status string) (int64, error)
	ExistsByEmailAndEvent(email string, eventID *uint) (bool, error)
}

// GormVolunteerRepository GORM 实现
type GormVolunteerRepository struct {
	db *gorm.DB
}

// NewVolunteerRepository 创建志愿者仓库
func NewVolunteerRepository(db *gorm.DB) *GormVolunteerRepository {
	return &GormVolunteerRepository{db: db}
}

// List 报名列表
func (r *GormVolunteerRepository) List(filter VolunteerListFilter) ([]models.Volunteer, int64, error) {
	var volunteers []models.Volunteer
	query := r.db.Model(&models.Volunteer{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.EventID > 0 {
		query = query.Where("event_id = ?", filter.EventID)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR email LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Preload("Event").Order("created_at DESC").Find(&volunteers).Error; err != nil {
		return nil, 0, err
	}
	return volunteers, total, nil
}

// GetByID 根据 ID 获取报名
func (r *GormVolunteerRepository) GetByID(id uint) (*models.Volunteer, error) {
	var volunteer models.Volunteer
	if err := r.db.Preload("Event").First(&volunteer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &volunteer, nil
}

// Create 创建报名
func (r *GormVolunteerRepository) Create(volunteer *models.Volunteer) error {
	return r.db.Create(volunteer).Error
}

// Update 更新报名
func (r *GormVolunteerRepository) Update(volunteer *models.Volunteer) error {
	return r.db.Save(volunteer).Error
}

// Delete 删除报名
func (r *GormVolunteerRepository) Delete(id uint) error {
	return r.db.Delete(&models.Volunteer{}, id).Error
}

// CountByStatus 统计指定状态的报名数量
func (r *GormVolunteerRepository) CountByStatus(status string) (int64, error) {
	var count int64
	query := r.db.Model(&models.Volunteer{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByEmailAndEvent 判断同一邮箱是否已报名同一活动
func (r *GormVolunteerRepository) ExistsByEmailAndEvent(email string, eventID *uint) (bool, error) {
	var count int64
	query := r.db.Model(&models.Volunteer{}).Where("email = ?", email)
	if eventID != nil {
		query = query.Where("event_id = ?", *eventID)
	} else {
		query = query.Where("event_id IS NULL")
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
