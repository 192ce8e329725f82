package repository

import (
	"errors"
	"strings"

	"github.com/aidlink-next/internal/models"

	"gorm.io/gorm"
)

// MessageRepository 联系消息数据访问接口
type MessageRepository interface {
	List(filter MessageListFilter) ([]models.Message, int64, error)
	GetByID(id uint) (*models.Message, error)
	Create(message *models.Message) error
	Update(message *models.Message) error
	Delete(id uint) error
	CountUnread() (int64, error)
	MarkRead(id uint, read bool) error
}

// GormMessageRepository GORM 实现
type GormMessageRepository struct {
	db *gorm.DB
}

// NewMessageRepository 创建消息仓库
func NewMessageRepository(db *gorm.DB) *GormMessageRepository {
	return &GormMessageRepository{db: db}
}

// List 消息列表
func (r *GormMessageRepository) List(filter MessageListFilter) ([]models.Message, int64, error) {
	var messages []models.Message
	query := r.db.Model(&models.Message{})

	if filter.IsRead != nil {
		query = query.Where("is_read = ?", *filter.IsRead)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR email LIKE ? OR subject LIKE ?", like, like, like)
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

	if err := query.Order("created_at DESC").Find(&messages).Error; err != nil {
		return nil, 0, err
	}
	return messages, total, nil
}

// GetByID 根据 ID 获取消息
func (r *GormMessageRepository) GetByID(id uint) (*models.Message, error) {
	var message models.Message
	if err := r.db.First(&message, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &message, nil
}

// Create 创建消息
func (r *GormMessageRepository) Create(message *models.Message) error {
	return r.db.Create(message).Error
}

// Update 更新消息
func (r *GormMessageRepository) Update(message *models.Message) error {
	return r.db.Save(message).Error
}

// Delete 删除消息
func (r *GormMessageRepository) Delete(id uint) error {
	return r.db.Delete(&models.Message{}, id).Error
}

// CountUnread 统计未读消息数量
func (r *GormMessageRepository) CountUnread() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Message{}).Where("is_read = ?", false).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// MarkRead 标记消息已读状态
func (r *GormMessageRepository) MarkRead(id uint, read bool) error {
	return r.db.Model(&models.Message{}).Where("id = ?", id).Update("is_read", read).Error
}
