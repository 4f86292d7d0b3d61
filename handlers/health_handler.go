package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Pinger 可探测存储是否可用
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc 函数适配 Pinger
type PingFunc func(ctx context.Context) error

// Ping 实现 Pinger
func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

// HealthHandler 健康检查
type HealthHandler struct {
	store  Pinger
	logger *zap.Logger
}

// NewHealthHandler store 为 nil 时视为始终可用
func NewHealthHandler(store Pinger, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{store: store, logger: logger}
}

// Health 存储可用返回 200，否则 503
func (h *HealthHandler) Health(c *gin.Context) {
	if h.store != nil {
		if err := h.store.Ping(c.Request.Context()); err != nil {
			h.logger.Warn("health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
