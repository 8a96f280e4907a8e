package channels

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"notification-admin/internal/dispatcher"
	"notification-admin/internal/model"
	pkgLog "notification-admin/pkg/log"
)

// EmailConfig configures the SMTP relay for email deliveries.
type EmailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type emailHandler struct {
	l   pkgLog.Logger
	cfg EmailConfig
	// send is swapped out in tests.
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

var _ dispatcher.ChannelHandler = &emailHandler{}

func NewEmailHandler(l pkgLog.Logger, cfg EmailConfig) *emailHandler {
	return &emailHandler{
		l:    l,
		cfg:  cfg,
		send: smtp.SendMail,
	}
}

func (h *emailHandler) Channel() model.Channel {
	return model.ChannelEmail
}

func (h *emailHandler) Send(ctx context.Context, n model.DeliveryNotification) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", h.cfg.From)
	fmt.Fprintf(&msg, "To: %s\r\n", n.Recipient)
	fmt.Fprintf(&msg, "Subject: %s\r\n", n.Subject)
	msg.WriteString("\r\n")
	msg.WriteString(n.Body)

	addr := fmt.Sprintf("%s:%d", h.cfg.Host, h.cfg.Port)
	var auth smtp.Auth
	if h.cfg.Username != "" {
		auth = smtp.PlainAuth("", h.cfg.Username, h.cfg.Password, h.cfg.Host)
	}

	if err := h.send(addr, auth, h.cfg.From, []string{n.Recipient}, []byte(msg.String())); err != nil {
		h.l.Warnf(ctx, "internal.dispatcher.channels.email.Send: %v", err)
		return err
	}

	h.l.Infof(ctx, "internal.dispatcher.channels.email.Send: delivered %s to %s", n.ID, n.Recipient)
	return nil
}
