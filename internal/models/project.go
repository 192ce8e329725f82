package models

import (
	"time"

	"gorm.io/gorm"
)

// Project 公益项目表
type Project struct {
	ID           uint           `gorm:"primarykey" json:"id"`                                       // 主键
	Slug         string         `gorm:"uniqueIndex;not null" json:"slug"`                           // URL 标识
	Title        string         `gorm:"type:varchar(200);not null" json:"title"`                    // 标题
	Summary      string         `gorm:"type:varchar(500)" json:"summary"`                           // 摘要
	Content      string         `gorm:"type:text" json:"content"`                                   // 正文
	CoverImage   string         `gorm:"type:varchar(500)" json:"cover_image"`                       // 封面图
	Status       string         `gorm:"type:varchar(20);not null;default:'ongoing';index" json:"status"` // ongoing / completed
	GoalAmount   Money          `gorm:"type:decimal(14,2);default:0" json:"goal_amount"`            // 目标金额
	RaisedAmount Money          `gorm:"type:decimal(14,2);default:0" json:"raised_amount"`          // 已筹金额
	IsPublished  bool           `gorm:"default:false;index" json:"is_published"`                    // 是否发布
	SortOrder    int            `gorm:"default:0;index" json:"sort_order"`                          // 排序
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`                                    // 创建时间
	UpdatedAt    time.Time      `json:"updated_at"`                                                 // 更新时间
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                                             // 软删除
}

// TableName 指定表名
func (Project) TableName() string {
	return "projects"
}
