package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	pkgErrors "notification-admin/pkg/errors"
	"notification-admin/pkg/response"
)

// RateLimitConfig bounds how many requests a single client IP may make
// within a fixed window.
type RateLimitConfig struct {
	Limit  int
	Window time.Duration
}

// RateLimit throttles requests per client IP using a fixed-window counter
// in Redis. The window key expires on its own, so counters reset without
// any cleanup pass. Redis failures let the request through.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := fmt.Sprintf("rl:leads:%s", c.ClientIP())

		count, err := m.redis.Incr(ctx, key)
		if err != nil {
			m.l.Warnf(ctx, "internal.middleware.RateLimit.redis.Incr: %v", err)
			c.Next()
			return
		}

		if count == 1 {
			if err := m.redis.Expire(ctx, key, m.rateLimit.Window); err != nil {
				m.l.Warnf(ctx, "internal.middleware.RateLimit.redis.Expire: %v", err)
			}
		}

		if count > int64(m.rateLimit.Limit) {
			m.l.Warnf(ctx, "internal.middleware.RateLimit: IP %s exceeded %d requests per %s", c.ClientIP(), m.rateLimit.Limit, m.rateLimit.Window)
			response.HttpError(c, pkgErrors.NewHTTPError(429, "Too many requests, please try again later"))
			c.Abort()
			return
		}

		c.Next()
	}
}
