package models

import (
	"time"

	"gorm.io/gorm"
)

// ImpactStat 影响力数据表（如“受助家庭 1200 户”）
type ImpactStat struct {
	ID        uint           `gorm:"primarykey" json:"id"`                    // 主键
	Label     string         `gorm:"type:varchar(200);not null" json:"label"` // 名称
	Value     int64          `gorm:"not null;default:0" json:"value"`         // 数值
	Unit      string         `gorm:"type:varchar(50)" json:"unit"`            // 单位
	Icon      string         `gorm:"type:varchar(100)" json:"icon"`           // 图标标识
	IsActive  bool           `gorm:"default:true;index" json:"is_active"`     // 是否启用
	SortOrder int            `gorm:"default:0;index" json:"sort_order"`       // 排序
	CreatedAt time.Time      `json:"created_at"`                              // 创建时间
	UpdatedAt time.Time      `json:"updated_at"`                              // 更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                          // 软删除
}

// TableName 指定表名
func (ImpactStat) TableName() string {
	return "impact_stats"
}
