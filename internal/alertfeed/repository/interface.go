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
	Get(ctx context.Context, sc model.Scope, opts GetOptions) ([]model.AdminAlert, paginator.Paginator, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.AdminAlert, error)
	Create(ctx context.Context, sc model.Scope, opts CreateOptions) (model.AdminAlert, error)
	MarkRead(ctx context.Context, sc model.Scope, id string) (model.AdminAlert, error)
	MarkAllRead(ctx context.Context, sc model.Scope) (int64, error)
	CountUnread(ctx context.Context, sc model.Scope) (int64, error)
}
