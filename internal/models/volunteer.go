package models

import (
	"time"

	"gorm.io/gorm"
)

// Volunteer 志愿者报名表
type Volunteer struct {
	ID        uint           `gorm:"primarykey" json:"id"`                         // 主键
	Name      string         `gorm:"type:varchar(100);not null" json:"name"`       // 姓名
	Email     string         `gorm:"type:varchar(200);not null;index" json:"email"` // 邮箱
	Phone     string         `gorm:"type:varchar(50)" json:"phone"`                // 电话
	Skills    string         `gorm:"type:text" json:"skills"`                      // 技能描述
	Motivation string        `gorm:"type:text" json:"motivation"`                  // 报名动机
	Status    string         `gorm:"type:varchar(20);default:'pending';index" json:"status"` // 状态: pending/approved/rejected
	EventID   *uint          `gorm:"index" json:"event_id"`                        // 关联活动，可空
	CreatedAt time.Time      `gorm:"index" json:"created_at"`                      // 创建时间
	UpdatedAt time.Time      `json:"updated_at"`                                   // 更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                               // 软删除

	Event *Event `gorm:"foreignKey:EventID" json:"event,omitempty"` // 报名活动
}

// TableName 指定表名
func (Volunteer) TableName() string {
	return "volunteers"
}
