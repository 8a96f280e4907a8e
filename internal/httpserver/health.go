package httpserver

import (
	"github.com/gin-gonic/gin"

	"notification-admin/pkg/errors"
	"notification-admin/pkg/response"
)

// healthCheck reports overall service health, checking both backing stores.
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.redis.Ping(ctx); err != nil {
		response.HttpError(c, errors.NewHTTPError(503, "Redis connection failed"))
		return
	}

	sqlDB, err := srv.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		response.HttpError(c, errors.NewHTTPError(503, "Database connection failed"))
		return
	}

	response.OK(c, gin.H{
		"status":   "healthy",
		"service":  "notification-admin",
		"version":  "1.0.0",
		"redis":    "connected",
		"database": "connected",
	})
}

// readyCheck reports whether the service is ready to serve traffic.
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.redis.Ping(ctx); err != nil {
		response.HttpError(c, errors.NewHTTPError(503, "Redis connection not available"))
		return
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"service": "notification-admin",
		"version": "1.0.0",
		"redis":   "connected",
	})
}

// liveCheck reports process liveness only, without touching dependencies.
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"service": "notification-admin",
		"version": "1.0.0",
	})
}
