package admin

import (
	"github.com/shiptrack-api/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetDashboardOverview 管理端概览数据
func (h *Handler) GetDashboardOverview(c *gin.Context) {
	overview, err := h.DashboardService.Overview()
	if err != nil {
		respondError(c, response.CodeInternal, "failed to fetch dashboard overview", err)
		return
	}
	response.Success(c, overview)
}
