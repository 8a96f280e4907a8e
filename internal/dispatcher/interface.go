package dispatcher

import (
	"context"

	"notification-admin/internal/model"
)

// Dispatcher fans a captured lead out to every configured channel and drives
// individual delivery attempts.
//
//go:generate mockery --name Dispatcher
type Dispatcher interface {
	NotifyLead(ctx context.Context, sc model.Scope, lead model.Lead) error
	Process(ctx context.Context, n model.DeliveryNotification)
}
