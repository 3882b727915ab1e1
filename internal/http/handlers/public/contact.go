package public

import (
	"errors"

	"github.com/shiptrack-api/internal/http/handlers/shared"
	"github.com/shiptrack-api/internal/http/response"
	"github.com/shiptrack-api/internal/service"

	"github.com/gin-gonic/gin"
)

// ContactRequest 咨询提交请求
type ContactRequest struct {
	service.EnquiryForm
	CaptchaID   string `json:"captcha_id"`
	CaptchaCode string `json:"captcha_code"`
}

// CreateEnquiry 提交客户咨询
func (h *Handler) CreateEnquiry(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	if h.CaptchaService != nil {
		if err := h.CaptchaService.Verify(service.CaptchaSceneContact, req.CaptchaID, req.CaptchaCode); err != nil {
			switch {
			case errors.Is(err, service.ErrCaptchaRequired):
				respondError(c, response.CodeBadRequest, "captcha is required", nil)
			case errors.Is(err, service.ErrCaptchaInvalid):
				respondError(c, response.CodeBadRequest, "captcha verification failed", nil)
			default:
				respondError(c, response.CodeInternal, "captcha verification error", err)
			}
			return
		}
	}

	enquiry, fieldErrors, err := h.EnquiryService.Create(&req.EnquiryForm, c.ClientIP())
	if err != nil {
		respondError(c, response.CodeInternal, "failed to submit enquiry", err)
		return
	}
	if len(fieldErrors) > 0 {
		shared.RespondValidationErrors(c, fieldErrors)
		return
	}

	response.Success(c, enquiry)
}
