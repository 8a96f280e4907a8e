package http

import (
	"github.com/gin-gonic/gin"

	"notification-admin/internal/middleware"
)

// RegisterRoutes registers authentication routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", h.Login)
	}
}
