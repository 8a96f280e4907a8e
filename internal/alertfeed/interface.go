package alertfeed

import (
	"context"

	"notification-admin/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Get(ctx context.Context, sc model.Scope, ip GetInput) (GetOutput, error)
	Create(ctx context.Context, sc model.Scope, ip CreateInput) (model.AdminAlert, error)
	MarkRead(ctx context.Context, sc model.Scope, id string) (model.AdminAlert, error)
	MarkAllRead(ctx context.Context, sc model.Scope) (int64, error)
}
