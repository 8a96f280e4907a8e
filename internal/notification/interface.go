package notification

import (
	"context"

	"notification-admin/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Get(ctx context.Context, sc model.Scope, ip GetInput) (GetOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.DeliveryNotification, error)
	Retry(ctx context.Context, sc model.Scope, id string) (model.DeliveryNotification, error)
}
