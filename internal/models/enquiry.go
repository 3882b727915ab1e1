package models

import (
	"time"

	"gorm.io/gorm"
)

// Enquiry 客户咨询表
type Enquiry struct {
	ID        uint           `gorm:"primarykey" json:"id"`          // 主键
	Name      string         `gorm:"not null" json:"name"`          // 客户姓名
	Email     string         `gorm:"index;not null" json:"email"`   // 客户邮箱
	Subject   string         `gorm:"not null" json:"subject"`       // 主题
	Message   string         `gorm:"type:text;not null" json:"message"` // 咨询内容
	Status    string         `gorm:"index;not null" json:"status"`  // 处理状态
	ClientIP  string         `gorm:"type:varchar(64)" json:"client_ip,omitempty"` // 提交客户端IP
	CreatedAt time.Time      `gorm:"index" json:"created_at"`       // 创建时间
	UpdatedAt time.Time      `gorm:"index" json:"updated_at"`       // 更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                // 软删除时间
}

// TableName 指定表名
func (Enquiry) TableName() string {
	return "enquiries"
}
