package models

import (
	"time"
)

// Setting 站点配置表，按 key 存储 JSON 配置
type Setting struct {
	ID        uint      `gorm:"primarykey" json:"id"`                           // 主键
	Key       string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"key"` // 配置键
	Value     JSON      `gorm:"type:json" json:"value"`                         // 配置内容
	CreatedAt time.Time `json:"created_at"`                                     // 创建时间
	UpdatedAt time.Time `json:"updated_at"`                                     // 更新时间
}

// TableName 指定表名
func (Setting) TableName() string {
	return "settings"
}
