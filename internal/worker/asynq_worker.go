package worker

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/shiptrack-api/internal/logger"
	"github.com/shiptrack-api/internal/provider"
	"github.com/shiptrack-api/internal/queue"
	"github.com/shiptrack-api/internal/service"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskShipmentStatusEmail, c.handleShipmentStatusEmail)
	mux.HandleFunc(queue.TaskEnquiryAckEmail, c.handleEnquiryAckEmail)
}

func (c *Consumer) handleShipmentStatusEmail(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_shipment_status_email_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.ShipmentStatusEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_shipment_status_email_unmarshal_failed", "error", err)
		return err
	}
	if payload.ShipmentID == 0 {
		logger.Debugw("worker_shipment_status_email_skip_invalid_payload", "shipment_id", payload.ShipmentID)
		return nil
	}
	shipment, err := c.ShipmentRepo.GetByID(payload.ShipmentID)
	if err != nil {
		logger.Warnw("worker_shipment_status_email_fetch_failed", "shipment_id", payload.ShipmentID, "error", err)
		return err
	}
	if shipment == nil {
		logger.Debugw("worker_shipment_status_email_skip_not_found", "shipment_id", payload.ShipmentID)
		return nil
	}
	if c.EmailService == nil {
		logger.Warnw("worker_shipment_status_email_skip_email_service_nil", "shipment_id", shipment.ID)
		return nil
	}
	if err := c.EmailService.SendShipmentStatusEmail(shipment); err != nil {
		if errors.Is(err, service.ErrEmailServiceDisabled) || errors.Is(err, service.ErrEmailServiceNotConfigured) {
			logger.Debugw("worker_shipment_status_email_skip_disabled", "shipment_id", shipment.ID)
			return nil
		}
		logger.Warnw("worker_shipment_status_email_send_failed",
			"shipment_id", shipment.ID,
			"container_id", shipment.ContainerID,
			"status", shipment.Status,
			"error", err,
		)
		return err
	}
	return nil
}

func (c *Consumer) handleEnquiryAckEmail(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_enquiry_ack_email_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.EnquiryAckEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_enquiry_ack_email_unmarshal_failed", "error", err)
		return err
	}
	if payload.EnquiryID == 0 {
		logger.Debugw("worker_enquiry_ack_email_skip_invalid_payload", "enquiry_id", payload.EnquiryID)
		return nil
	}
	enquiry, err := c.EnquiryRepo.GetByID(payload.EnquiryID)
	if err != nil {
		logger.Warnw("worker_enquiry_ack_email_fetch_failed", "enquiry_id", payload.EnquiryID, "error", err)
		return err
	}
	if enquiry == nil {
		logger.Debugw("worker_enquiry_ack_email_skip_not_found", "enquiry_id", payload.EnquiryID)
		return nil
	}
	if c.EmailService == nil {
		logger.Warnw("worker_enquiry_ack_email_skip_email_service_nil", "enquiry_id", enquiry.ID)
		return nil
	}
	if err := c.EmailService.SendEnquiryAckEmail(enquiry); err != nil {
		if errors.Is(err, service.ErrEmailServiceDisabled) || errors.Is(err, service.ErrEmailServiceNotConfigured) {
			logger.Debugw("worker_enquiry_ack_email_skip_disabled", "enquiry_id", enquiry.ID)
			return nil
		}
		logger.Warnw("worker_enquiry_ack_email_send_failed", "enquiry_id", enquiry.ID, "error", err)
		return err
	}
	return nil
}
