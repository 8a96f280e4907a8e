package http

import (
	"github.com/gin-gonic/gin"

	"notification-admin/internal/middleware"
)

// RegisterRoutes registers admin alert feed routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	alerts := r.Group("/alerts", mw.Auth())
	{
		alerts.GET("", h.Get)
		alerts.PATCH("/read-all", h.MarkAllRead)
		alerts.PATCH("/:id/read", h.MarkRead)
	}
}
