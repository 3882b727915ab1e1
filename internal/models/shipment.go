package models

import (
	"time"

	"gorm.io/gorm"
)

// Shipment 货运单表
type Shipment struct {
	ID                  uint           `gorm:"primarykey" json:"id"`                           // 主键
	ContainerID         string         `gorm:"uniqueIndex;not null" json:"container_id"`       // 集装箱编号
	ContainerPath       string         `gorm:"index;not null" json:"container_path"`           // 归档路径（YYYY/MM/DD/编号）
	CustomerName        string         `gorm:"not null" json:"customer_name"`                  // 客户姓名
	CustomerEmail       string         `gorm:"index;not null" json:"customer_email"`           // 客户邮箱
	CustomerPhone       string         `gorm:"type:varchar(64)" json:"customer_phone"`         // 客户电话
	DepartureLocation   string         `gorm:"not null" json:"departure_location"`             // 起运地
	DestinationLocation string         `gorm:"not null" json:"destination_location"`           // 目的地
	CurrentLocation     string         `gorm:"not null" json:"current_location"`               // 当前位置
	DepartureDate       time.Time      `gorm:"index;not null" json:"departure_date"`           // 起运日期
	ETA                 time.Time      `gorm:"index;not null" json:"eta"`                      // 预计到达日期
	Status              string         `gorm:"index;not null" json:"status"`                   // 货运状态
	ShipmentType        string         `gorm:"index;not null" json:"shipment_type"`            // 货运类型
	Weight              Weight         `gorm:"type:decimal(20,3);not null;default:0" json:"weight"` // 重量（千克）
	Dimensions          string         `gorm:"type:varchar(100);not null" json:"dimensions"`   // 尺寸描述
	Description         string         `gorm:"type:text" json:"description,omitempty"`         // 货物描述
	SpecialInstructions string         `gorm:"type:text" json:"special_instructions,omitempty"` // 特殊要求
	CreatedAt           time.Time      `gorm:"index" json:"created_at"`                        // 创建时间
	UpdatedAt           time.Time      `gorm:"index" json:"updated_at"`                        // 更新时间
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"-"`                                 // 软删除时间

	// 关联
	LocationHistory []LocationHistory `gorm:"foreignKey:ShipmentID" json:"location_history,omitempty"` // 位置变更记录
}

// TableName 指定表名
func (Shipment) TableName() string {
	return "shipments"
}
