package repository

import "time"

// ShipmentListFilter 查询货运单列表的过滤条件
type ShipmentListFilter struct {
	Page        int
	PageSize    int
	Status      string
	Type        string
	ContainerID string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// EnquiryListFilter 查询客户咨询列表的过滤条件
type EnquiryListFilter struct {
	Page        int
	PageSize    int
	Status      string
	Email       string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// LoginLogListFilter 查询登录日志列表的过滤条件
type LoginLogListFilter struct {
	Page     int
	PageSize int
	Success  *bool
	IP       string
}
