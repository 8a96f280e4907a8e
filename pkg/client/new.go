// Package client is a Go client for the notification admin API. List calls
// are cached in-process keyed by their parameter tuple, identical concurrent
// calls are collapsed into one request, and mutations invalidate the affected
// collection so the next list call refetches. Failed calls are not retried;
// the caller re-issues the identical request.
package client

import (
	"errors"
	"net/http"
	"strings"
	"time"
)

const (
	collectionNotifications = "notifications"
	collectionAlerts        = "alerts"
	collectionLeads         = "leads"
)

// Client talks to the notification admin API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	cache      *listCache
}

// Config is the constructor input for Client.
type Config struct {
	// BaseURL is the service root, for example "http://localhost:8080".
	BaseURL string
	// Token is an optional JWT attached as a Bearer credential. It can be
	// set later via SetToken, typically after Login.
	Token string
	// HTTPClient overrides the default client (10s timeout).
	HTTPClient *http.Client
}

// New creates a Client.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("base URL is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		token:      cfg.Token,
		httpClient: httpClient,
		cache:      newListCache(),
	}, nil
}

// SetToken replaces the Bearer credential used on subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}
