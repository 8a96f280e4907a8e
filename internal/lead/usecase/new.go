package usecase

import (
	"notification-admin/internal/alertfeed"
	"notification-admin/internal/dispatcher"
	"notification-admin/internal/lead"
	"notification-admin/internal/lead/repository"
	pkgLog "notification-admin/pkg/log"
	"notification-admin/pkg/querycache"
)

const cacheCollection = "leads"

type usecase struct {
	l          pkgLog.Logger
	repo       repository.Repository
	alerts     alertfeed.UseCase
	dispatcher dispatcher.Dispatcher
	cache      *querycache.Cache
}

func New(l pkgLog.Logger, repo repository.Repository, alerts alertfeed.UseCase, d dispatcher.Dispatcher, cache *querycache.Cache) lead.UseCase {
	return &usecase{
		l:          l,
		repo:       repo,
		alerts:     alerts,
		dispatcher: d,
		cache:      cache,
	}
}
