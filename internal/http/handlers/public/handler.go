package public

import (
	"github.com/shiptrack-api/internal/provider"
)

// Handler 公开接口处理器
type Handler struct {
	*provider.Container
}

// New 创建公开接口处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
