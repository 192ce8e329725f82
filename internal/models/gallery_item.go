package models

import (
	"time"

	"gorm.io/gorm"
)

// GalleryItem 相册条目表
type GalleryItem struct {
	ID          uint           `gorm:"primarykey" json:"id"`                    // 主键
	Title       string         `gorm:"type:varchar(200)" json:"title"`          // 标题
	Image       string         `gorm:"type:varchar(500);not null" json:"image"` // 图片
	Caption     string         `gorm:"type:varchar(500)" json:"caption"`        // 图片说明
	EventID     *uint          `gorm:"index" json:"event_id"`                   // 关联活动（可空）
	IsPublished bool           `gorm:"default:true;index" json:"is_published"`  // 是否发布
	SortOrder   int            `gorm:"default:0;index" json:"sort_order"`       // 排序
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                 // 创建时间
	UpdatedAt   time.Time      `json:"updated_at"`                              // 更新时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                          // 软删除
}

// TableName 指定表名
func (GalleryItem) TableName() string {
	return "gallery_items"
}
