package http

import (
	"github.com/gin-gonic/gin"

	"notification-admin/internal/middleware"
)

// RegisterRoutes registers delivery notification routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	notifications := r.Group("/notifications", mw.Auth())
	{
		notifications.GET("", h.Get)
		notifications.GET("/:id", h.Detail)
		notifications.POST("/:id/retry", h.Retry)
	}
}
