package usecase

import (
	"time"

	"notification-admin/internal/alertfeed"
	"notification-admin/internal/export"
	notifRepo "notification-admin/internal/notification/repository"
	pkgLog "notification-admin/pkg/log"
	pkgMinio "notification-admin/pkg/minio"
)

const downloadURLExpiry = 24 * time.Hour

type usecase struct {
	l      pkgLog.Logger
	repo   notifRepo.Repository
	minio  pkgMinio.IMinio
	alerts alertfeed.UseCase
	clock  func() time.Time
}

func New(l pkgLog.Logger, repo notifRepo.Repository, minio pkgMinio.IMinio, alerts alertfeed.UseCase) export.UseCase {
	return &usecase{
		l:      l,
		repo:   repo,
		minio:  minio,
		alerts: alerts,
		clock:  time.Now,
	}
}
