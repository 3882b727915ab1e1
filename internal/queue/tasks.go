package queue

import (
	"encoding/json"

	"github.com/shiptrack-api/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskShipmentStatusEmail 货运状态变更邮件通知任务
	TaskShipmentStatusEmail = constants.TaskShipmentStatusEmail
	// TaskEnquiryAckEmail 咨询受理确认邮件任务
	TaskEnquiryAckEmail = constants.TaskEnquiryAckEmail
)

// ShipmentStatusEmailPayload 货运状态邮件任务载荷
type ShipmentStatusEmailPayload struct {
	ShipmentID uint   `json:"shipment_id"`
	Status     string `json:"status"`
	Location   string `json:"location,omitempty"`
}

// EnquiryAckEmailPayload 咨询确认邮件任务载荷
type EnquiryAckEmailPayload struct {
	EnquiryID uint `json:"enquiry_id"`
}

// NewShipmentStatusEmailTask 创建货运状态邮件任务
func NewShipmentStatusEmailTask(payload ShipmentStatusEmailPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskShipmentStatusEmail, body), nil
}

// NewEnquiryAckEmailTask 创建咨询确认邮件任务
func NewEnquiryAckEmailTask(payload EnquiryAckEmailPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskEnquiryAckEmail, body), nil
}
