package usecase

import (
	"notification-admin/internal/adminuser"
	"notification-admin/internal/adminuser/repository"
	pkgLog "notification-admin/pkg/log"
	"notification-admin/pkg/scope"
)

type usecase struct {
	l      pkgLog.Logger
	repo   repository.Repository
	jwtMgr scope.Manager
}

func New(l pkgLog.Logger, repo repository.Repository, jwtMgr scope.Manager) adminuser.UseCase {
	return &usecase{
		l:      l,
		repo:   repo,
		jwtMgr: jwtMgr,
	}
}
