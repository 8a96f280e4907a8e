package middleware

import (
	"notification-admin/pkg/log"
	pkgRedis "notification-admin/pkg/redis"
	"notification-admin/pkg/scope"
)

type Middleware struct {
	l         log.Logger
	jwtMgr    scope.Manager
	redis     pkgRedis.IRedis
	rateLimit RateLimitConfig
}

func New(l log.Logger, jwtMgr scope.Manager, redis pkgRedis.IRedis, rateLimit RateLimitConfig) Middleware {
	return Middleware{
		l:         l,
		jwtMgr:    jwtMgr,
		redis:     redis,
		rateLimit: rateLimit,
	}
}
