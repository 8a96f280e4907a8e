package postgres

import (
	"gorm.io/gorm"

	"notification-admin/internal/adminuser/repository"
	pkgLog "notification-admin/pkg/log"
)

type implRepository struct {
	l  pkgLog.Logger
	db *gorm.DB
}

var _ repository.Repository = &implRepository{}

func New(l pkgLog.Logger, db *gorm.DB) *implRepository {
	return &implRepository{
		l:  l,
		db: db,
	}
}
