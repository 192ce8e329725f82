package repository

import (
	"errors"

	"github.com/aidlink-next/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AdminRepository 管理员数据访问接口
type AdminRepository interface {
	GetByUsername(username string) (*models.Admin, error)
	GetByID(id uint) (*models.Admin, error)
	List() ([]models.Admin, error)
	Create(admin *models.Admin) error
	Update(admin *models.Admin) error
	UpdateGuarded(admin *models.Admin, guardRole string) (bool, error)
	Delete(id uint) error
	DeleteGuarded(id uint, guardRole string) (bool, error)
}

// GormAdminRepository GORM 实现
type GormAdminRepository struct {
	db *gorm.DB
}

// NewAdminRepository 创建管理员仓库
func NewAdminRepository(db *gorm.DB) *GormAdminRepository {
	return &GormAdminRepository{db: db}
}

// GetByUsername 根据用户名获取管理员
func (r *GormAdminRepository) GetByUsername(username string) (*models.Admin, error) {
	var admin models.Admin
	if err := r.db.Where("username = ?", username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}

// GetByID 根据 ID 获取管理员
func (r *GormAdminRepository) GetByID(id uint) (*models.Admin, error) {
	var admin models.Admin
	if err := r.db.First(&admin, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}

// List 获取管理员列表
func (r *GormAdminRepository) List() ([]models.Admin, error) {
	admins := make([]models.Admin, 0)
	err := r.db.
		Select("id", "username", "role", "permissions", "last_login_at", "created_at").
		Order("id ASC").
		Find(&admins).Error
	if err != nil {
		return nil, err
	}
	return admins, nil
}

// Create 创建管理员
func (r *GormAdminRepository) Create(admin *models.Admin) error {
	return r.db.Create(admin).Error
}

// Update 更新管理员
func (r *GormAdminRepository) Update(admin *models.Admin) error {
	return r.db.Save(admin).Error
}

// UpdateGuarded 更新管理员；guardRole 非空时，计数与写入在同一事务内加锁完成，
// 该角色仅剩一名则不更新并返回 false
func (r *GormAdminRepository) UpdateGuarded(admin *models.Admin, guardRole string) (bool, error) {
	allowed := true
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if guardRole != "" {
			remaining, err := countByRoleLocked(tx, guardRole)
			if err != nil {
				return err
			}
			if remaining <= 1 {
				allowed = false
				return nil
			}
		}
		return tx.Save(admin).Error
	})
	return allowed, err
}

// Delete 删除管理员（软删除）
func (r *GormAdminRepository) Delete(id uint) error {
	if id == 0 {
		return nil
	}
	return r.db.Delete(&models.Admin{}, id).Error
}

// DeleteGuarded 删除管理员；guardRole 非空时，计数与删除在同一事务内加锁完成，
// 该角色仅剩一名则不删除并返回 false
func (r *GormAdminRepository) DeleteGuarded(id uint, guardRole string) (bool, error) {
	if id == 0 {
		return true, nil
	}
	allowed := true
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if guardRole != "" {
			remaining, err := countByRoleLocked(tx, guardRole)
			if err != nil {
				return err
			}
			if remaining <= 1 {
				allowed = false
				return nil
			}
		}
		return tx.Delete(&models.Admin{}, id).Error
	})
	return allowed, err
}

// countByRoleLocked 事务内锁定指定角色的行再计数，阻止并发移除间隙
func countByRoleLocked(tx *gorm.DB, role string) (int, error) {
	var admins []models.Admin
	err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		Where("role = ?", role).
		Find(&admins).Error
	if err != nil {
		return 0, err
	}
	return len(admins), nil
}
