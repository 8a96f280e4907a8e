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
	Get(ctx context.Context, sc model.Scope, opts GetOptions) ([]model.Lead, paginator.Paginator, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.Lead, error)
	GetOne(ctx context.Context, sc model.Scope, opts GetOneOptions) (model.Lead, error)
	Create(ctx context.Context, sc model.Scope, opts CreateOptions) (model.Lead, error)
}
