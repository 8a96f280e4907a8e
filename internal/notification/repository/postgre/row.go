package postgres

import (
	"time"

	"github.com/aarondl/null/v8"

	"notification-admin/internal/model"
)

type notificationRow struct {
	ID           string      `gorm:"column:id;primaryKey"`
	LeadID       string      `gorm:"column:lead_id"`
	FunnelID     string      `gorm:"column:funnel_id"`
	Channel      string      `gorm:"column:channel"`
	Recipient    string      `gorm:"column:recipient"`
	Subject      string      `gorm:"column:subject"`
	Body         string      `gorm:"column:body"`
	Status       string      `gorm:"column:status"`
	Attempts     int         `gorm:"column:attempts"`
	ErrorMessage null.String `gorm:"column:error_message"`
	NextRetryAt  null.Time   `gorm:"column:next_retry_at"`
	SentAt       null.Time   `gorm:"column:sent_at"`
	CreatedAt    time.Time   `gorm:"column:created_at"`
	UpdatedAt    time.Time   `gorm:"column:updated_at"`
}

func (notificationRow) TableName() string {
	return "delivery_notifications"
}

func (r notificationRow) toModel() model.DeliveryNotification {
	n := model.DeliveryNotification{
		ID:        r.ID,
		LeadID:    r.LeadID,
		FunnelID:  r.FunnelID,
		Channel:   model.Channel(r.Channel),
		Recipient: r.Recipient,
		Subject:   r.Subject,
		Body:      r.Body,
		Status:    model.DeliveryStatus(r.Status),
		Attempts:  r.Attempts,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}

	if r.ErrorMessage.Valid {
		n.ErrorMessage = r.ErrorMessage.String
	}
	if r.NextRetryAt.Valid {
		t := r.NextRetryAt.Time
		n.NextRetryAt = &t
	}
	if r.SentAt.Valid {
		t := r.SentAt.Time
		n.SentAt = &t
	}

	return n
}

func newNotificationRow(n model.DeliveryNotification) notificationRow {
	row := notificationRow{
		ID:        n.ID,
		LeadID:    n.LeadID,
		FunnelID:  n.FunnelID,
		Channel:   n.Channel.String(),
		Recipient: n.Recipient,
		Subject:   n.Subject,
		Body:      n.Body,
		Status:    n.Status.String(),
		Attempts:  n.Attempts,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}

	if n.ErrorMessage != "" {
		row.ErrorMessage = null.StringFrom(n.ErrorMessage)
	}
	if n.NextRetryAt != nil {
		row.NextRetryAt = null.TimeFrom(*n.NextRetryAt)
	}
	if n.SentAt != nil {
		row.SentAt = null.TimeFrom(*n.SentAt)
	}

	return row
}
