package public

import (
	"github.com/shiptrack-api/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetImageCaptcha 获取图形验证码
func (h *Handler) GetImageCaptcha(c *gin.Context) {
	if h.CaptchaService == nil {
		respondError(c, response.CodeInternal, "captcha service unavailable", nil)
		return
	}
	challenge, err := h.CaptchaService.GenerateImageChallenge()
	if err != nil {
		respondError(c, response.CodeInternal, "failed to generate captcha", err)
		return
	}
	response.Success(c, challenge)
}
