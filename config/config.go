package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	Postgres PostgresConfig
	Redis    RedisConfig
	MinIO    MinIOConfig

	JWT JWTConfig

	Cache      CacheConfig
	Dispatcher DispatcherConfig
	RateLimit  RateLimitConfig
	SMTP       SMTPConfig
	SMS        SMSConfig

	Discord DiscordConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// HTTPServerConfig is the configuration for the HTTP server.
type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger.
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// PostgresConfig is the configuration for PostgreSQL.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// RedisConfig is the configuration for Redis.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// MinIOConfig is the configuration for MinIO object storage.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// JWTConfig is the configuration for JWT signing.
type JWTConfig struct {
	SecretKey string
}

// CacheConfig is the configuration for the list-query cache.
type CacheConfig struct {
	TTL time.Duration
}

// DispatcherConfig is the configuration for the delivery dispatcher.
type DispatcherConfig struct {
	// AdminRecipients receive delivery notifications raised by new leads.
	AdminRecipients []string
	// Channels enabled for lead notifications (email, sms, webhook).
	LeadChannels []string
	// WebhookURL is the endpoint for webhook-channel deliveries.
	WebhookURL string

	RetryPollInterval time.Duration
	MaxAttempts       int
	RetryBaseDelay    time.Duration
	RetryMaxDelay     time.Duration
}

// RateLimitConfig bounds requests per client IP on the public lead endpoint.
type RateLimitConfig struct {
	LeadLimit  int
	LeadWindow time.Duration
}

// SMTPConfig is the configuration for the email channel.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMSConfig is the configuration for the SMS gateway channel.
type SMSConfig struct {
	GatewayURL string
	APIKey     string
	Sender     string
}

// DiscordConfig is the configuration for Discord webhook error reporting.
type DiscordConfig struct {
	WebhookID    string
	WebhookToken string
}

// Load loads configuration using Viper.
func Load() (*Config, error) {
	viper.SetConfigName("notification-admin")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/notification-admin/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	// Config file is optional; env vars cover everything.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")

	cfg.HTTPServer.Host = viper.GetString("server.host")
	cfg.HTTPServer.Port = viper.GetInt("server.port")
	cfg.HTTPServer.Mode = viper.GetString("server.mode")

	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.DBName = viper.GetString("postgres.dbname")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")

	cfg.Redis.Host = viper.GetString("redis.host")
	cfg.Redis.Port = viper.GetInt("redis.port")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")

	cfg.MinIO.Endpoint = viper.GetString("minio.endpoint")
	cfg.MinIO.AccessKey = viper.GetString("minio.access_key")
	cfg.MinIO.SecretKey = viper.GetString("minio.secret_key")
	cfg.MinIO.Bucket = viper.GetString("minio.bucket")
	cfg.MinIO.UseSSL = viper.GetBool("minio.use_ssl")

	cfg.JWT.SecretKey = viper.GetString("jwt.secret_key")

	cfg.Cache.TTL = viper.GetDuration("cache.ttl")

	cfg.Dispatcher.AdminRecipients = viper.GetStringSlice("dispatcher.admin_recipients")
	cfg.Dispatcher.LeadChannels = viper.GetStringSlice("dispatcher.lead_channels")
	cfg.Dispatcher.WebhookURL = viper.GetString("dispatcher.webhook_url")
	cfg.Dispatcher.RetryPollInterval = viper.GetDuration("dispatcher.retry_poll_interval")
	cfg.Dispatcher.MaxAttempts = viper.GetInt("dispatcher.max_attempts")
	cfg.Dispatcher.RetryBaseDelay = viper.GetDuration("dispatcher.retry_base_delay")
	cfg.Dispatcher.RetryMaxDelay = viper.GetDuration("dispatcher.retry_max_delay")

	cfg.RateLimit.LeadLimit = viper.GetInt("rate_limit.lead_limit")
	cfg.RateLimit.LeadWindow = viper.GetDuration("rate_limit.lead_window")

	cfg.SMTP.Host = viper.GetString("smtp.host")
	cfg.SMTP.Port = viper.GetInt("smtp.port")
	cfg.SMTP.Username = viper.GetString("smtp.username")
	cfg.SMTP.Password = viper.GetString("smtp.password")
	cfg.SMTP.From = viper.GetString("smtp.from")

	cfg.SMS.GatewayURL = viper.GetString("sms.gateway_url")
	cfg.SMS.APIKey = viper.GetString("sms.api_key")
	cfg.SMS.Sender = viper.GetString("sms.sender")

	cfg.Discord.WebhookID = viper.GetString("discord.webhook_id")
	cfg.Discord.WebhookToken = viper.GetString("discord.webhook_token")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "production")

	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.mode", "release")

	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "production")
	viper.SetDefault("logger.encoding", "json")
	viper.SetDefault("logger.color_enabled", false)

	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.dbname", "notification_admin")
	viper.SetDefault("postgres.sslmode", "disable")

	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.db", 0)

	viper.SetDefault("minio.endpoint", "localhost:9000")
	viper.SetDefault("minio.bucket", "notification-exports")
	viper.SetDefault("minio.use_ssl", false)

	viper.SetDefault("cache.ttl", 30*time.Second)

	viper.SetDefault("smtp.port", 587)
	viper.SetDefault("smtp.from", "no-reply@notification-admin.local")

	viper.SetDefault("dispatcher.lead_channels", []string{"email"})
	viper.SetDefault("dispatcher.retry_poll_interval", 30*time.Second)
	viper.SetDefault("dispatcher.max_attempts", 5)
	viper.SetDefault("dispatcher.retry_base_delay", 5*time.Minute)
	viper.SetDefault("dispatcher.retry_max_delay", 24*time.Hour)

	viper.SetDefault("rate_limit.lead_limit", 10)
	viper.SetDefault("rate_limit.lead_window", time.Minute)
}

func validate(cfg *Config) error {
	if cfg.JWT.SecretKey == "" {
		return fmt.Errorf("jwt.secret_key is required")
	}
	if len(cfg.JWT.SecretKey) < 32 {
		return fmt.Errorf("jwt.secret_key must be at least 32 characters")
	}

	if cfg.Postgres.Host == "" {
		return fmt.Errorf("postgres.host is required")
	}
	if cfg.Redis.Host == "" {
		return fmt.Errorf("redis.host is required")
	}
	if cfg.Redis.Port == 0 {
		return fmt.Errorf("redis.port is required")
	}

	if cfg.Dispatcher.MaxAttempts < 1 {
		return fmt.Errorf("dispatcher.max_attempts must be at least 1")
	}
	if cfg.RateLimit.LeadLimit < 1 {
		return fmt.Errorf("rate_limit.lead_limit must be at least 1")
	}

	return nil
}
