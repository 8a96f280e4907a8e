package adminuser

import (
	"context"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Login(ctx context.Context, ip LoginInput) (LoginOutput, error)
}
