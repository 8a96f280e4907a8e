package discord

import "time"

const (
	webhookURLTemplate = "https://discord.com/api/webhooks/%s/%s"

	// UserAgent identifies the service on webhook requests.
	UserAgent = "notification-admin/1.0"

	// MaxMessageLength is Discord's limit for plain content.
	MaxMessageLength = 2000
	// MaxEmbedLength is Discord's combined limit for embed text.
	MaxEmbedLength = 6000

	DefaultTimeout    = 30 * time.Second
	DefaultRetryCount = 3
	DefaultRetryDelay = 1 * time.Second
	DefaultUsername   = "Notification Admin"

	// Embed colors per message type.
	ColorInfo    = 0x3498DB
	ColorSuccess = 0x2ECC71
	ColorWarning = 0xFFA500
	ColorError   = 0xE74C3C
)
