package repository

import (
	"context"
	"errors"

	"notification-admin/internal/model"
	"notification-admin/pkg/paginator"
)

var ErrNotFound = errors.New("record not found")

//go:generate mockery --name Repository
type Repository interface {
	Get(ctx context.Context, sc model.Scope, opts GetOptions) ([]model.DeliveryNotification, paginator.Paginator, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.DeliveryNotification, error)
	List(ctx context.Context, sc model.Scope, opts ListOptions) ([]model.DeliveryNotification, error)
	Create(ctx context.Context, sc model.Scope, opts CreateOptions) (model.DeliveryNotification, error)
	Update(ctx context.Context, sc model.Scope, opts UpdateOptions) (model.DeliveryNotification, error)
	ListDue(ctx context.Context, opts ListDueOptions) ([]model.DeliveryNotification, error)
}
