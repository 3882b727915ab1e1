package models

import "time"

// AdminLoginLog 管理端登录日志表
type AdminLoginLog struct {
	ID        uint      `gorm:"primarykey" json:"id"`            // 主键
	IP        string    `gorm:"type:varchar(64);index" json:"ip"` // 登录IP
	UserAgent string    `gorm:"type:varchar(500)" json:"user_agent"` // 浏览器标识
	Success   bool      `gorm:"index" json:"success"`            // 是否成功
	Reason    string    `gorm:"type:varchar(200)" json:"reason,omitempty"` // 失败原因
	CreatedAt time.Time `gorm:"index" json:"created_at"`         // 登录时间
}

// TableName 指定表名
func (AdminLoginLog) TableName() string {
	return "admin_login_logs"
}
