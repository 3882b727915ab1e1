package constants

// 货运状态常量
const (
	ShipmentStatusPending   = "Pending"
	ShipmentStatusInTransit = "In Transit"
	ShipmentStatusDelayed   = "Delayed"
	ShipmentStatusDelivered = "Delivered"
	ShipmentStatusOnHold    = "On Hold"
)

// ShipmentStatuses 全部合法货运状态
var ShipmentStatuses = []string{
	ShipmentStatusPending,
	ShipmentStatusInTransit,
	ShipmentStatusDelayed,
	ShipmentStatusDelivered,
	ShipmentStatusOnHold,
}

// 货运类型常量
const (
	ShipmentTypeStandard = "Standard"
	ShipmentTypeExpress  = "Express"
	ShipmentTypePriority = "Priority"
	ShipmentTypeEconomy  = "Economy"
)

// ShipmentTypes 全部合法货运类型
var ShipmentTypes = []string{
	ShipmentTypeStandard,
	ShipmentTypeExpress,
	ShipmentTypePriority,
	ShipmentTypeEconomy,
}

// 客户咨询状态常量
const (
	EnquiryStatusPending   = "Pending"
	EnquiryStatusResponded = "Responded"
	EnquiryStatusClosed    = "Closed"
)

// EnquiryStatuses 全部合法咨询状态
var EnquiryStatuses = []string{
	EnquiryStatusPending,
	EnquiryStatusResponded,
	EnquiryStatusClosed,
}

// 队列名称常量
const (
	QueueDefault = "default"
)

// 异步任务类型常量
const (
	TaskShipmentStatusEmail = "shipment:status_email"
	TaskEnquiryAckEmail     = "enquiry:ack_email"
)

// IsValidShipmentStatus 判断货运状态是否合法
func IsValidShipmentStatus(status string) bool {
	for _, s := range ShipmentStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// IsValidShipmentType 判断货运类型是否合法
func IsValidShipmentType(shipmentType string) bool {
	for _, t := range ShipmentTypes {
		if t == shipmentType {
			return true
		}
	}
	return false
}

// IsValidEnquiryStatus 判断咨询状态是否合法
func IsValidEnquiryStatus(status string) bool {
	for _, s := range EnquiryStatuses {
		if s == status {
			return true
		}
	}
	return false
}
