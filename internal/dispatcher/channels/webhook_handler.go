package channels

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"notification-admin/internal/dispatcher"
	"notification-admin/internal/model"
	pkgLog "notification-admin/pkg/log"
)

type webhookHandler struct {
	l      pkgLog.Logger
	client *http.Client
}

var _ dispatcher.ChannelHandler = &webhookHandler{}

func NewWebhookHandler(l pkgLog.Logger) *webhookHandler {
	return &webhookHandler{
		l:      l,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (h *webhookHandler) Channel() model.Channel {
	return model.ChannelWebhook
}

// Send posts the notification as JSON to the recipient URL.
func (h *webhookHandler) Send(ctx context.Context, n model.DeliveryNotification) error {
	payload, err := json.Marshal(map[string]string{
		"notification_id": n.ID,
		"lead_id":         n.LeadID,
		"subject":         n.Subject,
		"body":            n.Body,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.Recipient, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		h.l.Warnf(ctx, "internal.dispatcher.channels.webhook.Send: %v", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook endpoint returned status %d", resp.StatusCode)
	}

	h.l.Infof(ctx, "internal.dispatcher.channels.webhook.Send: delivered %s", n.ID)
	return nil
}
