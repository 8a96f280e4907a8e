package httpserver

import (
	adminuserHTTP "notification-admin/internal/adminuser/delivery/http"
	adminuserPostgres "notification-admin/internal/adminuser/repository/postgre"
	adminuserUC "notification-admin/internal/adminuser/usecase"
	alertfeedHTTP "notification-admin/internal/alertfeed/delivery/http"
	alertfeedPostgres "notification-admin/internal/alertfeed/repository/postgre"
	alertfeedUC "notification-admin/internal/alertfeed/usecase"
	"notification-admin/internal/dispatcher"
	"notification-admin/internal/dispatcher/channels"
	exportHTTP "notification-admin/internal/export/delivery/http"
	exportUC "notification-admin/internal/export/usecase"
	leadHTTP "notification-admin/internal/lead/delivery/http"
	leadPostgres "notification-admin/internal/lead/repository/postgre"
	leadUC "notification-admin/internal/lead/usecase"
	"notification-admin/internal/middleware"
	notificationHTTP "notification-admin/internal/notification/delivery/http"
	notificationPostgres "notification-admin/internal/notification/repository/postgre"
	notificationUC "notification-admin/internal/notification/usecase"
	"notification-admin/pkg/querycache"
)

const Api = "/api/v1"

func (srv *HTTPServer) mapHandlers() error {
	srv.gin.Use(middleware.Recovery(srv.logger, srv.discord))
	srv.gin.Use(middleware.CORS(middleware.DefaultCORSConfig()))

	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	mw := middleware.New(srv.logger, srv.jwtMgr, srv.redis, middleware.RateLimitConfig{
		Limit:  srv.rateLimitCfg.LeadLimit,
		Window: srv.rateLimitCfg.LeadWindow,
	})

	cache := querycache.New(srv.logger, srv.redis, querycache.Config{
		Prefix: "qc",
		TTL:    srv.cacheCfg.TTL,
	})

	// Repositories
	notifRepo := notificationPostgres.New(srv.logger, srv.db)
	alertRepo := alertfeedPostgres.New(srv.logger, srv.db)
	leadRepo := leadPostgres.New(srv.logger, srv.db)
	userRepo := adminuserPostgres.New(srv.logger, srv.db)

	// Dispatcher and channel handlers
	channelHandlers := []dispatcher.ChannelHandler{
		channels.NewEmailHandler(srv.logger, channels.EmailConfig{
			Host:     srv.smtpCfg.Host,
			Port:     srv.smtpCfg.Port,
			Username: srv.smtpCfg.Username,
			Password: srv.smtpCfg.Password,
			From:     srv.smtpCfg.From,
		}),
		channels.NewSMSHandler(srv.logger, channels.SMSConfig{
			GatewayURL: srv.smsCfg.GatewayURL,
			APIKey:     srv.smsCfg.APIKey,
			Sender:     srv.smsCfg.Sender,
		}),
		channels.NewWebhookHandler(srv.logger),
	}
	disp := dispatcher.New(srv.logger, notifRepo, cache, channelHandlers, dispatcher.Config{
		AdminRecipients: srv.dispatcherCfg.AdminRecipients,
		LeadChannels:    srv.dispatcherCfg.LeadChannels,
		WebhookURL:      srv.dispatcherCfg.WebhookURL,
		MaxAttempts:     srv.dispatcherCfg.MaxAttempts,
		RetryBaseDelay:  srv.dispatcherCfg.RetryBaseDelay,
		RetryMaxDelay:   srv.dispatcherCfg.RetryMaxDelay,
	})
	srv.retryWorker = dispatcher.NewRetryWorker(srv.logger, notifRepo, disp, srv.dispatcherCfg.RetryPollInterval)

	// Use cases
	notifUseCase := notificationUC.New(srv.logger, notifRepo, cache)
	alertUseCase := alertfeedUC.New(srv.logger, alertRepo, cache)
	leadUseCase := leadUC.New(srv.logger, leadRepo, alertUseCase, disp, cache)
	exportUseCase := exportUC.New(srv.logger, notifRepo, srv.minio, alertUseCase)
	userUseCase := adminuserUC.New(srv.logger, userRepo, srv.jwtMgr)

	// HTTP handlers
	api := srv.gin.Group(Api)
	notificationHTTP.New(srv.logger, notifUseCase, srv.discord).RegisterRoutes(api, mw)
	alertfeedHTTP.New(srv.logger, alertUseCase, srv.discord).RegisterRoutes(api, mw)
	leadHTTP.New(srv.logger, leadUseCase, srv.discord).RegisterRoutes(api, mw)
	exportHTTP.New(srv.logger, exportUseCase, srv.discord).RegisterRoutes(api, mw)
	adminuserHTTP.New(srv.logger, userUseCase, srv.discord).RegisterRoutes(api, mw)

	return nil
}
