package models

import (
	"time"

	"gorm.io/gorm"
)

// Partner 合作伙伴表
type Partner struct {
	ID        uint           `gorm:"primarykey" json:"id"`                   // 主键
	Name      string         `gorm:"type:varchar(150);not null" json:"name"` // 名称
	Logo      string         `gorm:"type:varchar(500)" json:"logo"`          // Logo 地址
	Website   string         `gorm:"type:varchar(500)" json:"website"`       // 官网链接
	Blurb     string         `gorm:"type:text" json:"blurb"`                 // 简介
	IsActive  bool           `gorm:"default:true;index" json:"is_active"`    // 是否展示
	SortOrder int            `gorm:"default:0;index" json:"sort_order"`      // 排序权重
	CreatedAt time.Time      `json:"created_at"`                             // 创建时间
	UpdatedAt time.Time      `json:"updated_at"`                             // 更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                         // 软删除
}

// TableName 指定表名
func (Partner) TableName() string {
	return "partners"
}
