package public

import (
	"errors"
	"strings"

	"github.com/shiptrack-api/internal/http/response"
	"github.com/shiptrack-api/internal/service"

	"github.com/gin-gonic/gin"
)

// TrackShipment 按集装箱号查询货运轨迹
func (h *Handler) TrackShipment(c *gin.Context) {
	containerID := strings.TrimSpace(c.Param("container_id"))
	if containerID == "" {
		respondError(c, response.CodeBadRequest, "container id is required", nil)
		return
	}

	snapshot, err := h.ShipmentService.Track(c.Request.Context(), containerID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "No shipment found with this container ID", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to track shipment", err)
		return
	}
	response.Success(c, snapshot)
}
