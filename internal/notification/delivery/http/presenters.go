package http

import (
	"time"

	"notification-admin/internal/model"
	"notification-admin/internal/notification"
	"notification-admin/pkg/paginator"
)

type notificationResp struct {
	ID           string  `json:"id"`
	LeadID       string  `json:"lead_id,omitempty"`
	FunnelID     string  `json:"funnel_id,omitempty"`
	Channel      string  `json:"channel"`
	Recipient    string  `json:"recipient"`
	Subject      string  `json:"subject,omitempty"`
	Body         string  `json:"body,omitempty"`
	Status       string  `json:"status"`
	Attempts     int     `json:"attempts"`
	ErrorMessage string  `json:"error_message,omitempty"`
	NextRetryAt  *string `json:"next_retry_at,omitempty"`
	SentAt       *string `json:"sent_at,omitempty"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

type getNotificationsResp struct {
	Items []notificationResp          `json:"items"`
	Meta  paginator.PaginatorResponse `json:"meta"`
}

func newNotificationResp(n model.DeliveryNotification) notificationResp {
	resp := notificationResp{
		ID:           n.ID,
		LeadID:       n.LeadID,
		FunnelID:     n.FunnelID,
		Channel:      n.Channel.String(),
		Recipient:    n.Recipient,
		Subject:      n.Subject,
		Body:         n.Body,
		Status:       n.Status.String(),
		Attempts:     n.Attempts,
		ErrorMessage: n.ErrorMessage,
		CreatedAt:    n.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    n.UpdatedAt.Format(time.RFC3339),
	}

	if n.NextRetryAt != nil {
		s := n.NextRetryAt.Format(time.RFC3339)
		resp.NextRetryAt = &s
	}
	if n.SentAt != nil {
		s := n.SentAt.Format(time.RFC3339)
		resp.SentAt = &s
	}

	return resp
}

func newGetNotificationsResp(out notification.GetOutput) getNotificationsResp {
	items := make([]notificationResp, len(out.Notifications))
	for i, n := range out.Notifications {
		items[i] = newNotificationResp(n)
	}

	return getNotificationsResp{
		Items: items,
		Meta:  out.Paginator.ToResponse(),
	}
}
