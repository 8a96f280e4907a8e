package discord

import (
	"errors"
	"net/http"
	"time"

	"notification-admin/pkg/log"
)

var errWebhookRequired = errors.New("discord: webhook id and token are required")

// DefaultConfig returns the default Discord client config.
func DefaultConfig() Config {
	return Config{
		Timeout:         DefaultTimeout,
		RetryCount:      DefaultRetryCount,
		RetryDelay:      DefaultRetryDelay,
		DefaultUsername: DefaultUsername,
	}
}

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     30 * time.Second,
		},
	}
}

// New creates a Discord webhook client.
func New(l log.Logger, webhook Webhook) (IDiscord, error) {
	if webhook.ID == "" || webhook.Token == "" {
		return nil, errWebhookRequired
	}
	cfg := DefaultConfig()
	return &discordImpl{
		l:       l,
		webhook: webhook,
		config:  cfg,
		client:  newHTTPClient(cfg.Timeout),
	}, nil
}
