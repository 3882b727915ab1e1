package admin

import (
	"errors"
	"strconv"
	"strings"

	"github.com/shiptrack-api/internal/http/handlers/shared"
	"github.com/shiptrack-api/internal/http/response"
	"github.com/shiptrack-api/internal/repository"
	"github.com/shiptrack-api/internal/service"

	"github.com/gin-gonic/gin"
)

// ListShipments 货运单列表
func (h *Handler) ListShipments(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	createdFrom, err := parseTimeNullable(c.Query("created_from"))
	if err != nil {
		respondError(c, response.CodeBadRequest, "invalid created_from", err)
		return
	}
	createdTo, err := parseTimeNullable(c.Query("created_to"))
	if err != nil {
		respondError(c, response.CodeBadRequest, "invalid created_to", err)
		return
	}

	shipments, total, err := h.ShipmentService.List(repository.ShipmentListFilter{
		Page:        page,
		PageSize:    pageSize,
		Status:      strings.TrimSpace(c.Query("status")),
		Type:        strings.TrimSpace(c.Query("type")),
		ContainerID: strings.TrimSpace(c.Query("container_id")),
		CreatedFrom: createdFrom,
		CreatedTo:   createdTo,
	}, c.Query("search"))
	if err != nil {
		respondError(c, response.CodeInternal, "failed to fetch shipments", err)
		return
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, shipments, pagination)
}

// CreateShipment 创建货运单
func (h *Handler) CreateShipment(c *gin.Context) {
	var form service.ShipmentForm
	if err := c.ShouldBindJSON(&form); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	shipment, fieldErrors, err := h.ShipmentService.Create(&form)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidWeight):
			respondError(c, response.CodeBadRequest, "invalid weight value", nil)
		case errors.Is(err, service.ErrInvalidDate):
			respondError(c, response.CodeBadRequest, "invalid date value", nil)
		case errors.Is(err, service.ErrInvalidStatus):
			respondError(c, response.CodeBadRequest, "invalid shipment status", nil)
		case errors.Is(err, service.ErrInvalidShipmentType):
			respondError(c, response.CodeBadRequest, "invalid shipment type", nil)
		default:
			respondError(c, response.CodeInternal, "failed to create shipment", err)
		}
		return
	}
	if len(fieldErrors) > 0 {
		shared.RespondValidationErrors(c, fieldErrors)
		return
	}

	response.Success(c, shipment)
}

// GetShipment 货运单详情
func (h *Handler) GetShipment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	shipment, err := h.ShipmentService.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "shipment not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to fetch shipment", err)
		return
	}
	response.Success(c, shipment)
}

// UpdateStatusRequest 状态更新请求
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateShipmentStatus 更新货运状态
func (h *Handler) UpdateShipmentStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "status is required", err)
		return
	}

	shipment, err := h.ShipmentService.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			respondError(c, response.CodeBadRequest, "invalid shipment status", nil)
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "shipment not found", nil)
		default:
			respondError(c, response.CodeInternal, "failed to update status", err)
		}
		return
	}
	response.Success(c, shipment)
}

// UpdateLocationRequest 位置更新请求
type UpdateLocationRequest struct {
	Location string `json:"location" binding:"required"`
}

// UpdateShipmentLocation 更新当前位置
func (h *Handler) UpdateShipmentLocation(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "location is required", err)
		return
	}

	shipment, err := h.ShipmentService.UpdateLocation(c.Request.Context(), id, req.Location)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyLocation):
			respondError(c, response.CodeBadRequest, "location must not be empty", nil)
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "shipment not found", nil)
		default:
			respondError(c, response.CodeInternal, "failed to update location", err)
		}
		return
	}
	response.Success(c, shipment)
}

func parseIDParam(c *gin.Context) (uint, bool) {
	raw := strings.TrimSpace(c.Param("id"))
	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || parsed == 0 {
		respondError(c, response.CodeBadRequest, "invalid id", err)
		return 0, false
	}
	return uint(parsed), true
}
