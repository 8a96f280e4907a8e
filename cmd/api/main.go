package main

import (
	"context"
	"fmt"

	"notification-admin/config"
	"notification-admin/config/postgre"
	"notification-admin/internal/httpserver"
	"notification-admin/pkg/discord"
	"notification-admin/pkg/log"
	pkgMinio "notification-admin/pkg/minio"
	pkgRedis "notification-admin/pkg/redis"
	"notification-admin/pkg/scope"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	postgresDB, err := postgre.Connect(cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer postgre.Disconnect(postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	redisClient, err := pkgRedis.New(pkgRedis.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	defer redisClient.Close()
	logger.Infof(ctx, "Redis connected successfully to %s:%d", cfg.Redis.Host, cfg.Redis.Port)

	minioClient, err := pkgMinio.New(ctx, logger, pkgMinio.Config{
		Endpoint:  cfg.MinIO.Endpoint,
		AccessKey: cfg.MinIO.AccessKey,
		SecretKey: cfg.MinIO.SecretKey,
		Bucket:    cfg.MinIO.Bucket,
		UseSSL:    cfg.MinIO.UseSSL,
	})
	if err != nil {
		logger.Error(ctx, "Failed to connect to MinIO: ", err)
		return
	}
	logger.Infof(ctx, "MinIO connected successfully to %s", cfg.MinIO.Endpoint)

	var discordClient discord.IDiscord
	if cfg.Discord.WebhookID != "" && cfg.Discord.WebhookToken != "" {
		discordClient, err = discord.New(logger, discord.Webhook{
			ID:    cfg.Discord.WebhookID,
			Token: cfg.Discord.WebhookToken,
		})
		if err != nil {
			logger.Error(ctx, "Failed to initialize Discord: ", err)
			return
		}
	}

	jwtManager, err := scope.New(cfg.JWT.SecretKey)
	if err != nil {
		logger.Error(ctx, "Failed to initialize JWT manager: ", err)
		return
	}

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		DB:      postgresDB,
		Redis:   redisClient,
		Minio:   minioClient,
		Discord: discordClient,
		JWT:     jwtManager,

		Cache:      cfg.Cache,
		Dispatcher: cfg.Dispatcher,
		RateLimit:  cfg.RateLimit,
		SMTP:       cfg.SMTP,
		SMS:        cfg.SMS,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}
