package model

import "time"

// Channel is the transport a delivery notification goes out on.
type Channel string

const (
	ChannelEmail   Channel = "email"
	ChannelSMS     Channel = "sms"
	ChannelWebhook Channel = "webhook"
)

// IsValid reports whether the channel is one of the known transports.
func (c Channel) IsValid() bool {
	switch c {
	case ChannelEmail, ChannelSMS, ChannelWebhook:
		return true
	}
	return false
}

func (c Channel) String() string {
	return string(c)
}

// DeliveryStatus is the lifecycle state of a delivery notification.
type DeliveryStatus string

const (
	DeliveryStatusPending  DeliveryStatus = "pending"
	DeliveryStatusSent     DeliveryStatus = "sent"
	DeliveryStatusFailed   DeliveryStatus = "failed"
	DeliveryStatusRetrying DeliveryStatus = "retrying"
)

// IsValid reports whether the status is a known lifecycle state.
func (s DeliveryStatus) IsValid() bool {
	switch s {
	case DeliveryStatusPending, DeliveryStatusSent, DeliveryStatusFailed, DeliveryStatusRetrying:
		return true
	}
	return false
}

func (s DeliveryStatus) String() string {
	return string(s)
}

// DeliveryNotification is one outbound message on one channel.
type DeliveryNotification struct {
	ID           string
	LeadID       string
	FunnelID     string
	Channel      Channel
	Recipient    string
	Subject      string
	Body         string
	Status       DeliveryStatus
	Attempts     int
	ErrorMessage string
	NextRetryAt  *time.Time
	SentAt       *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CanRetry reports whether the delivery may be manually re-queued.
func (n DeliveryNotification) CanRetry() bool {
	return n.Status == DeliveryStatusFailed
}
