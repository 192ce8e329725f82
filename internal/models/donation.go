package models

import (
	"time"

	"gorm.io/gorm"
)

// Donation 捐赠记录表
type Donation struct {
	ID         uint           `gorm:"primarykey" json:"id"`                          // 主键
	DonorName  string         `gorm:"type:varchar(100);not null" json:"donor_name"`  // 捐赠人姓名
	DonorEmail string         `gorm:"type:varchar(200);index" json:"donor_email"`    // 捐赠人邮箱
	DonorPhone string         `gorm:"type:varchar(50)" json:"donor_phone"`           // 捐赠人电话
	Amount     Money          `gorm:"type:decimal(14,2);not null" json:"amount"`     // 金额
	Currency   string         `gorm:"type:varchar(10);default:'USD'" json:"currency"` // 币种
	Method     string         `gorm:"type:varchar(30);not null" json:"method"`       // 方式: cash/bank_transfer/in_kind/other
	Status     string         `gorm:"type:varchar(20);default:'pledged';index" json:"status"` // 状态: pledged/received
	ProjectID  *uint          `gorm:"index" json:"project_id"`                       // 关联项目，可空
	Note       string         `gorm:"type:text" json:"note"`                         // 备注
	ReceiptNo  string         `gorm:"type:varchar(40);uniqueIndex" json:"receipt_no"` // 收据编号，异步生成
	ReceivedAt *time.Time     `json:"received_at"`                                   // 到账时间
	CreatedAt  time.Time      `gorm:"index" json:"created_at"`                       // 创建时间
	UpdatedAt  time.Time      `json:"updated_at"`                                    // 更新时间
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`                                // 软删除

	Project *Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"` // 所属项目
}

// TableName 指定表名
func (Donation) TableName() string {
	return "donations"
}
