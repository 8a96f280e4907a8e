package http

import (
	"github.com/gin-gonic/gin"

	"notification-admin/internal/middleware"
)

// RegisterRoutes registers lead routes. Capture is public but rate limited
// per IP, listing requires authentication.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	leads := r.Group("/leads")
	{
		leads.POST("", mw.RateLimit(), h.Create)
		leads.GET("", mw.Auth(), h.Get)
		leads.GET("/:id", mw.Auth(), h.Detail)
	}
}
