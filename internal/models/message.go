package models

import (
	"time"

	"gorm.io/gorm"
)

// Message 联系消息表（前台表单提交）
type Message struct {
	ID        uint           `gorm:"primarykey" json:"id"`                     // 主键
	Name      string         `gorm:"type:varchar(100);not null" json:"name"`   // 姓名
	Email     string         `gorm:"type:varchar(200);index" json:"email"`     // 邮箱
	Phone     string         `gorm:"type:varchar(50)" json:"phone"`            // 电话
	Subject   string         `gorm:"type:varchar(200)" json:"subject"`         // 主题
	Body      string         `gorm:"type:text;not null" json:"body"`           // 内容
	IsRead    bool           `gorm:"default:false;index" json:"is_read"`       // 是否已读
	ClientIP  string         `gorm:"type:varchar(64)" json:"-"`                // 提交来源 IP
	CreatedAt time.Time      `gorm:"index" json:"created_at"`                  // 创建时间
	UpdatedAt time.Time      `json:"updated_at"`                               // 更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                           // 软删除
}

// TableName 指定表名
func (Message) TableName() string {
	return "messages"
}
