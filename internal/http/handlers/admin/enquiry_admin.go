package admin

import (
	"errors"
	"strconv"
	"strings"

	"github.com/shiptrack-api/internal/http/response"
	"github.com/shiptrack-api/internal/repository"
	"github.com/shiptrack-api/internal/service"

	"github.com/gin-gonic/gin"
)

// ListEnquiries 客户咨询列表
func (h *Handler) ListEnquiries(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	views, total, err := h.EnquiryService.List(repository.EnquiryListFilter{
		Page:     page,
		PageSize: pageSize,
		Status:   strings.TrimSpace(c.Query("status")),
		Email:    strings.TrimSpace(c.Query("email")),
	}, c.Query("search"))
	if err != nil {
		respondError(c, response.CodeInternal, "failed to fetch enquiries", err)
		return
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, views, pagination)
}

// UpdateEnquiryStatusRequest 咨询状态更新请求
type UpdateEnquiryStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateEnquiryStatus 更新咨询处理状态
func (h *Handler) UpdateEnquiryStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req UpdateEnquiryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "status is required", err)
		return
	}

	view, err := h.EnquiryService.UpdateStatus(id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidEnquiryStatus):
			respondError(c, response.CodeBadRequest, "invalid enquiry status", nil)
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "enquiry not found", nil)
		default:
			respondError(c, response.CodeInternal, "failed to update enquiry", err)
		}
		return
	}
	response.Success(c, view)
}
