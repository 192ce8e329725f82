package repository

import (
	"errors"
	"strings"

	"github.com/aidlink-next/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProjectRepository 项目数据访问接口
type ProjectRepository interface {
	List(filter ProjectListFilter) ([]models.Project, int64, error)
	GetBySlug(slug string, onlyPublished bool) (*models.Project, error)
	GetByID(id uint) (*models.Project, error)
	Create(project *models.Project) error
	Update(project *models.Project) error
	Delete(id uint) error
	CountBySlug(slug string, excludeID *uint) (int64, error)
	AddRaisedAmount(id uint, amount models.Money) error
}

// GormProjectRepository GORM 实现
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository 创建项目仓库
func NewProjectRepository(db *gorm.DB) *GormProjectRepository {
	return &GormProjectRepository{db: db}
}

// List 项目列表
func (r *GormProjectRepository) List(filter ProjectListFilter) ([]models.Project, int64, error) {
	var projects []models.Project
	query := r.db.Model(&models.Project{})

	if filter.OnlyPublished {
		query = query.Where("is_published = ?", true)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		query = query.Where("title LIKE ?", like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	orderBy := filter.OrderBy
	if orderBy == "" {
		orderBy = "sort_order DESC, created_at DESC"
	}

	if err := query.Order(orderBy).Find(&projects).Error; err != nil {
		return nil, 0, err
	}
	return projects, total, nil
}

// GetBySlug 根据 slug 获取项目
func (r *GormProjectRepository) GetBySlug(slug string, onlyPublished bool) (*models.Project, error) {
	query := r.db.Where("slug = ?", slug)
	if onlyPublished {
		query = query.Where("is_published = ?", true)
	}

	var project models.Project
	if err := query.First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &project, nil
}

// GetByID 根据 ID 获取项目
func (r *GormProjectRepository) GetByID(id uint) (*models.Project, error) {
	var project models.Project
	if err := r.db.First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &project, nil
}

// Create 创建项目
func (r *GormProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// Update 更新项目
func (r *GormProjectRepository) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// Delete 删除项目
func (r *GormProjectRepository) Delete(id uint) error {
	return r.db.Delete(&models.Project{}, id).Error
}

// CountBySlug 统计 slug 数量
func (r *GormProjectRepository) CountBySlug(slug string, excludeID *uint) (int64, error) {
	var count int64
	query := r.db.Model(&models.Project{}).Where("slug = ?", slug)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// AddRaisedAmount 累加项目已筹金额，读改写需在事务内避免并发覆盖
func (r *GormProjectRepository) AddRaisedAmount(id uint, amount models.Money) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var project models.Project
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&project, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		project.RaisedAmount = project.RaisedAmount.Add(amount)
		return tx.Save(&project).Error
	})
}
