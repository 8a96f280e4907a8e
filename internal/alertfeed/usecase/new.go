package usecase

import (
	"notification-admin/internal/alertfeed"
	"notification-admin/internal/alertfeed/repository"
	pkgLog "notification-admin/pkg/log"
	"notification-admin/pkg/querycache"
)

const cacheCollection = "alerts"

type usecase struct {
	l     pkgLog.Logger
	repo  repository.Repository
	cache *querycache.Cache
}

func New(l pkgLog.Logger, repo repository.Repository, cache *querycache.Cache) alertfeed.UseCase {
	return &usecase{
		l:     l,
		repo:  repo,
		cache: cache,
	}
}
