package dispatcher

import (
	"context"

	"notification-admin/internal/model"
)

// ChannelHandler sends one delivery notification over one transport.
type ChannelHandler interface {
	Channel() model.Channel
	Send(ctx context.Context, n model.DeliveryNotification) error
}
