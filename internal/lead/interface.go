package lead

import (
	"context"

	"notification-admin/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, ip CreateInput) (model.Lead, error)
	Get(ctx context.Context, sc model.Scope, ip GetInput) (GetOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.Lead, error)
}
