package discord

import (
	"context"
	"net/http"
	"time"

	"notification-admin/pkg/log"
)

// MessageType defines different types of messages.
type MessageType string

const (
	MessageTypeInfo    MessageType = "info"
	MessageTypeSuccess MessageType = "success"
	MessageTypeWarning MessageType = "warning"
	MessageTypeError   MessageType = "error"
)

// EmbedField represents a field in a Discord embed.
type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

// EmbedFooter represents the footer of a Discord embed.
type EmbedFooter struct {
	Text    string `json:"text"`
	IconURL string `json:"icon_url,omitempty"`
}

// Embed represents a Discord embed message.
type Embed struct {
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	Color       int          `json:"color,omitempty"`
	Timestamp   string       `json:"timestamp,omitempty"`
	Footer      *EmbedFooter `json:"footer,omitempty"`
	Fields      []EmbedField `json:"fields,omitempty"`
}

// WebhookPayload represents the payload sent to a Discord webhook.
type WebhookPayload struct {
	Content   string  `json:"content,omitempty"`
	Username  string  `json:"username,omitempty"`
	AvatarURL string  `json:"avatar_url,omitempty"`
	Embeds    []Embed `json:"embeds,omitempty"`
}

// MessageOptions contains options for creating an embed message.
type MessageOptions struct {
	Type        MessageType
	Title       string
	Description string
	Fields      []EmbedField
	Footer      *EmbedFooter
	Username    string
	Timestamp   time.Time
}

// IDiscord defines the webhook reporting interface.
type IDiscord interface {
	// SendMessage sends a simple text message.
	SendMessage(ctx context.Context, content string) error
	// SendEmbed sends an embed message with options.
	SendEmbed(ctx context.Context, options MessageOptions) error
	// ReportBug sends an internal error report.
	ReportBug(ctx context.Context, message string) error
	// Close releases idle connections.
	Close() error
}

// Config contains configuration for the Discord client.
type Config struct {
	Timeout         time.Duration
	RetryCount      int
	RetryDelay      time.Duration
	DefaultUsername string
}

// Webhook identifies the Discord webhook endpoint.
type Webhook struct {
	ID    string
	Token string
}

type discordImpl struct {
	l       log.Logger
	webhook Webhook
	config  Config
	client  *http.Client
}
