package models

import "time"

// LocationHistory 货运位置变更记录表
type LocationHistory struct {
	ID         uint      `gorm:"primarykey" json:"id"`           // 主键
	ShipmentID uint      `gorm:"index;not null" json:"shipment_id"` // 货运单ID
	Location   string    `gorm:"not null" json:"location"`       // 位置
	Status     string    `gorm:"index" json:"status"`            // 记录时的货运状态
	RecordedAt time.Time `gorm:"index;not null" json:"recorded_at"` // 记录时间
}

// TableName 指定表名
func (LocationHistory) TableName() string {
	return "location_histories"
}
