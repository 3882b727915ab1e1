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

// LoginRequest 登录请求
type LoginRequest struct {
	Passkey string `json:"passkey" binding:"required"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}

// AdminLogin 管理端登录：通行密钥换取 Bearer Token
func (h *Handler) AdminLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "passkey is required", err)
		return
	}

	token, expiresAt, err := h.AuthService.Login(req.Passkey, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(c, response.CodeUnauthorized, "invalid passkey", nil)
			return
		}
		respondError(c, response.CodeInternal, "login failed", err)
		return
	}

	response.Success(c, LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.Format("2006-01-02T15:04:05Z07:00"),
	})
}

// ListLoginLogs 登录日志列表
func (h *Handler) ListLoginLogs(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	var success *bool
	if raw := strings.TrimSpace(c.Query("success")); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			respondError(c, response.CodeBadRequest, "invalid success filter", err)
			return
		}
		success = &parsed
	}

	logs, total, err := h.AuthService.ListLoginLogs(repository.LoginLogListFilter{
		Page:     page,
		PageSize: pageSize,
		Success:  success,
		IP:       strings.TrimSpace(c.Query("ip")),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "failed to fetch login logs", err)
		return
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, logs, pagination)
}
