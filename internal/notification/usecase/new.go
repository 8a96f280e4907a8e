package usecase

import (
	"notification-admin/internal/notification"
	"notification-admin/internal/notification/repository"
	pkgLog "notification-admin/pkg/log"
	"notification-admin/pkg/querycache"
)

// cacheCollection groups all list-query cache entries so one mutation
// invalidates every cached page and filter combination at once.
const cacheCollection = "notifications"

type usecase struct {
	l     pkgLog.Logger
	repo  repository.Repository
	cache *querycache.Cache
}

func New(l pkgLog.Logger, repo repository.Repository, cache *querycache.Cache) notification.UseCase {
	return &usecase{
		l:     l,
		repo:  repo,
		cache: cache,
	}
}
