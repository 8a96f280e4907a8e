package repository

import (
	"context"
	"errors"

	"notification-admin/internal/model"
)

var ErrNotFound = errors.New("record not found")

//go:generate mockery --name Repository
type Repository interface {
	GetByUsername(ctx context.Context, username string) (model.AdminUser, error)
}
