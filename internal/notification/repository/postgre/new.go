package postgres

import (
	"time"

	"gorm.io/gorm"

	"notification-admin/internal/notification/repository"
	pkgLog "notification-admin/pkg/log"
)

type implRepository struct {
	l     pkgLog.Logger
	db    *gorm.DB
	clock func() time.Time
}

var _ repository.Repository = &implRepository{}

func New(l pkgLog.Logger, db *gorm.DB) *implRepository {
	return &implRepository{
		l:     l,
		db:    db,
		clock: time.Now,
	}
}
