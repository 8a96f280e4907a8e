package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"notification-admin/config"
	"notification-admin/internal/dispatcher"
	"notification-admin/pkg/discord"
	"notification-admin/pkg/log"
	pkgMinio "notification-admin/pkg/minio"
	pkgRedis "notification-admin/pkg/redis"
	"notification-admin/pkg/scope"
)

// HTTPServer wires the API's dependencies. New only validates wiring;
// Run (in httpserver.go) starts background workers and serves.
type HTTPServer struct {
	gin         *gin.Engine
	logger      log.Logger
	port        int
	environment string

	db      *gorm.DB
	redis   pkgRedis.IRedis
	minio   pkgMinio.IMinio
	discord discord.IDiscord
	jwtMgr  scope.Manager

	cacheCfg      config.CacheConfig
	dispatcherCfg config.DispatcherConfig
	rateLimitCfg  config.RateLimitConfig
	smtpCfg       config.SMTPConfig
	smsCfg        config.SMSConfig

	// set by mapHandlers, consumed by Run
	retryWorker *dispatcher.RetryWorker
}

// Config is the constructor input for HTTPServer.
type Config struct {
	Port        int
	Mode        string
	Environment string

	DB      *gorm.DB
	Redis   pkgRedis.IRedis
	Minio   pkgMinio.IMinio
	Discord discord.IDiscord
	JWT     scope.Manager

	Cache      config.CacheConfig
	Dispatcher config.DispatcherConfig
	RateLimit  config.RateLimitConfig
	SMTP       config.SMTPConfig
	SMS        config.SMSConfig
}

// New creates an HTTPServer. It does not start any goroutines.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	srv := &HTTPServer{
		gin:         gin.New(),
		logger:      logger,
		port:        cfg.Port,
		environment: cfg.Environment,

		db:      cfg.DB,
		redis:   cfg.Redis,
		minio:   cfg.Minio,
		discord: cfg.Discord,
		jwtMgr:  cfg.JWT,

		cacheCfg:      cfg.Cache,
		dispatcherCfg: cfg.Dispatcher,
		rateLimitCfg:  cfg.RateLimit,
		smtpCfg:       cfg.SMTP,
		smsCfg:        cfg.SMS,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.logger == nil {
		return errors.New("logger is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("database connection is required")
	}
	if srv.redis == nil {
		return errors.New("redis client is required")
	}
	if srv.jwtMgr == nil {
		return errors.New("JWT manager is required")
	}

	return nil
}
