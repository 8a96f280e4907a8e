package postgres

import (
	"context"

	"gorm.io/gorm"

	"notification-admin/internal/notification/repository"
	postgresPkg "notification-admin/pkg/postgre"
)

func (r *implRepository) buildFilterQuery(ctx context.Context, db *gorm.DB, f repository.Filter) (*gorm.DB, error) {
	if f.Channel != "" {
		db = db.Where("channel = ?", f.Channel)
	}
	if f.Status != "" {
		db = db.Where("status = ?", f.Status)
	}
	if f.LeadID != "" {
		if err := postgresPkg.IsUUID(f.LeadID); err != nil {
			r.l.Errorf(ctx, "internal.notification.repository.postgres.buildFilterQuery.IsUUID: %v", err)
			return nil, err
		}
		db = db.Where("lead_id = ?", f.LeadID)
	}
	if f.StartDate != nil {
		db = db.Where("created_at >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		db = db.Where("created_at <= ?", *f.EndDate)
	}

	return db, nil
}
