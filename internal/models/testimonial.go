package models

import (
	"time"

	"gorm.io/gorm"
)

// Testimonial 感言表
type Testimonial struct {
	ID          uint           `gorm:"primarykey" json:"id"`                    // 主键
	AuthorName  string         `gorm:"type:varchar(100);not null" json:"author_name"` // 作者姓名
	AuthorTitle string         `gorm:"type:varchar(150)" json:"author_title"`   // 作者身份
	Avatar      string         `gorm:"type:varchar(500)" json:"avatar"`         // 头像地址
	Quote       string         `gorm:"type:text;not null" json:"quote"`         // 感言内容
	IsPublished bool           `gorm:"default:false;index" json:"is_published"` // 是否发布
	SortOrder   int            `gorm:"default:0;index" json:"sort_order"`       // 排序权重
	CreatedAt   time.Time      `json:"created_at"`                              // 创建时间
	UpdatedAt   time.Time      `json:"updated_at"`                              // 更新时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                          // 软删除
}

// TableName 指定表名
func (Testimonial) TableName() string {
	return "testimonials"
}
