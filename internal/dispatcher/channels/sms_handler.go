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

// SMSConfig configures the HTTP SMS gateway.
type SMSConfig struct {
	GatewayURL string
	APIKey     string
	Sender     string
}

type smsHandler struct {
	l      pkgLog.Logger
	cfg    SMSConfig
	client *http.Client
}

var _ dispatcher.ChannelHandler = &smsHandler{}

func NewSMSHandler(l pkgLog.Logger, cfg SMSConfig) *smsHandler {
	return &smsHandler{
		l:      l,
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (h *smsHandler) Channel() model.Channel {
	return model.ChannelSMS
}

func (h *smsHandler) Send(ctx context.Context, n model.DeliveryNotification) error {
	payload, err := json.Marshal(map[string]string{
		"to":   n.Recipient,
		"from": h.cfg.Sender,
		"body": n.Body,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.cfg.GatewayURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if h.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+h.cfg.APIKey)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		h.l.Warnf(ctx, "internal.dispatcher.channels.sms.Send: %v", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("sms gateway returned status %d", resp.StatusCode)
	}

	h.l.Infof(ctx, "internal.dispatcher.channels.sms.Send: delivered %s to %s", n.ID, n.Recipient)
	return nil
}
