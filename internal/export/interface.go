package export

import (
	"context"

	"notification-admin/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	ExportNotifications(ctx context.Context, sc model.Scope, ip ExportInput) (ExportOutput, error)
}
