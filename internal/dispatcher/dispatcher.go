package dispatcher

import (
	"context"
	"fmt"

	"notification-admin/internal/model"
	notifRepo "notification-admin/internal/notification/repository"
	pkgLog "notification-admin/pkg/log"
	"notification-admin/pkg/querycache"
)

const notificationCacheCollection = "notifications"

type implDispatcher struct {
	l        pkgLog.Logger
	repo     notifRepo.Repository
	cache    *querycache.Cache
	handlers map[model.Channel]ChannelHandler
	cfg      Config
}

var _ Dispatcher = &implDispatcher{}

func New(l pkgLog.Logger, repo notifRepo.Repository, cache *querycache.Cache, handlers []ChannelHandler, cfg Config) *implDispatcher {
	hm := make(map[model.Channel]ChannelHandler, len(handlers))
	for _, h := range handlers {
		hm[h.Channel()] = h
	}

	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 5
	}

	return &implDispatcher{
		l:        l,
		repo:     repo,
		cache:    cache,
		handlers: hm,
		cfg:      cfg,
	}
}

// NotifyLead creates one pending delivery per enabled channel and recipient,
// then attempts each delivery asynchronously.
func (d *implDispatcher) NotifyLead(ctx context.Context, sc model.Scope, lead model.Lead) error {
	subject := fmt.Sprintf("New lead: %s", lead.Name)
	body := fmt.Sprintf("%s <%s> submitted the contact form.", lead.Name, lead.Email)
	if lead.Message != "" {
		body = fmt.Sprintf("%s\n\n%s", body, lead.Message)
	}

	var created []model.DeliveryNotification
	for _, ch := range d.cfg.LeadChannels {
		channel := model.Channel(ch)
		if !channel.IsValid() {
			d.l.Warnf(ctx, "internal.dispatcher.NotifyLead: skipping unknown channel %q", ch)
			continue
		}
		if _, ok := d.handlers[channel]; !ok {
			d.l.Warnf(ctx, "internal.dispatcher.NotifyLead: no handler for channel %q", ch)
			continue
		}

		for _, recipient := range d.recipients(channel) {
			n, err := d.repo.Create(ctx, sc, notifRepo.CreateOptions{
				Notification: model.DeliveryNotification{
					LeadID:    lead.ID,
					FunnelID:  lead.FunnelID,
					Channel:   channel,
					Recipient: recipient,
					Subject:   subject,
					Body:      body,
					Status:    model.DeliveryStatusPending,
				},
			})
			if err != nil {
				d.l.Errorf(ctx, "internal.dispatcher.NotifyLead.repo.Create: %v", err)
				return err
			}
			created = append(created, n)
		}
	}

	d.invalidate(ctx)

	for _, n := range created {
		go d.Process(context.WithoutCancel(ctx), n)
	}

	return nil
}

// Process runs one delivery attempt and records the outcome.
func (d *implDispatcher) Process(ctx context.Context, n model.DeliveryNotification) {
	handler, ok := d.handlers[n.Channel]
	if !ok {
		d.l.Errorf(ctx, "internal.dispatcher.Process: no handler for channel %q", n.Channel)
		d.markFailed(ctx, n, fmt.Sprintf("no handler for channel %q", n.Channel))
		return
	}

	sendErr := handler.Send(ctx, n)
	if sendErr == nil {
		d.markSent(ctx, n)
		return
	}

	attempts := n.Attempts + 1
	if attempts >= d.cfg.MaxAttempts {
		d.l.Warnf(ctx, "internal.dispatcher.Process: permanent failure for %s after %d attempts: %v", n.ID, attempts, sendErr)
		d.markFailedAfter(ctx, n, attempts, sendErr.Error())
		return
	}

	d.scheduleRetry(ctx, n, attempts, sendErr.Error())
}

func (d *implDispatcher) recipients(channel model.Channel) []string {
	if channel == model.ChannelWebhook {
		if d.cfg.WebhookURL == "" {
			return nil
		}
		return []string{d.cfg.WebhookURL}
	}
	return d.cfg.AdminRecipients
}

func (d *implDispatcher) markSent(ctx context.Context, n model.DeliveryNotification) {
	status := model.DeliveryStatusSent
	now := timeNow()
	errMsg := ""
	if _, err := d.repo.Update(ctx, model.Scope{}, notifRepo.UpdateOptions{
		ID:           n.ID,
		Status:       &status,
		ErrorMessage: &errMsg,
		SentAt:       &now,
	}); err != nil {
		d.l.Errorf(ctx, "internal.dispatcher.markSent.repo.Update: %v", err)
		return
	}
	d.invalidate(ctx)
}

func (d *implDispatcher) markFailed(ctx context.Context, n model.DeliveryNotification, msg string) {
	d.markFailedAfter(ctx, n, n.Attempts+1, msg)
}

func (d *implDispatcher) markFailedAfter(ctx context.Context, n model.DeliveryNotification, attempts int, msg string) {
	status := model.DeliveryStatusFailed
	if _, err := d.repo.Update(ctx, model.Scope{}, notifRepo.UpdateOptions{
		ID:           n.ID,
		Status:       &status,
		Attempts:     &attempts,
		ErrorMessage: &msg,
	}); err != nil {
		d.l.Errorf(ctx, "internal.dispatcher.markFailedAfter.repo.Update: %v", err)
		return
	}
	d.invalidate(ctx)
}

func (d *implDispatcher) scheduleRetry(ctx context.Context, n model.DeliveryNotification, attempts int, msg string) {
	status := model.DeliveryStatusRetrying
	nextRetry := timeNow().Add(d.cfg.backoff(attempts))
	if _, err := d.repo.Update(ctx, model.Scope{}, notifRepo.UpdateOptions{
		ID:           n.ID,
		Status:       &status,
		Attempts:     &attempts,
		ErrorMessage: &msg,
		NextRetryAt:  &nextRetry,
	}); err != nil {
		d.l.Errorf(ctx, "internal.dispatcher.scheduleRetry.repo.Update: %v", err)
		return
	}
	d.invalidate(ctx)
}

func (d *implDispatcher) invalidate(ctx context.Context) {
	if err := d.cache.Invalidate(ctx, notificationCacheCollection); err != nil {
		d.l.Warnf(ctx, "internal.dispatcher.invalidate: %v", err)
	}
}
