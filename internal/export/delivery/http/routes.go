package http

import (
	"github.com/gin-gonic/gin"

	"notification-admin/internal/middleware"
)

// RegisterRoutes registers export routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	r.POST("/notifications/export", mw.Auth(), h.ExportNotifications)
}
