package postgres

import (
	"context"
	"time"

	"github.com/friendsofgo/errors"
	"gorm.io/gorm"

	"notification-admin/internal/adminuser/repository"
	"notification-admin/internal/model"
)

type adminUserRow struct {
	ID           string    `gorm:"column:id;primaryKey"`
	Username     string    `gorm:"column:username"`
	PasswordHash string    `gorm:"column:password_hash"`
	Role         string    `gorm:"column:role"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (adminUserRow) TableName() string {
	return "admin_users"
}

func (r adminUserRow) toModel() model.AdminUser {
	return model.AdminUser{
		ID:           r.ID,
		Username:     r.Username,
		PasswordHash: r.PasswordHash,
		Role:         r.Role,
		CreatedAt:    r.CreatedAt,
	}
}

func (r *implRepository) GetByUsername(ctx context.Context, username string) (model.AdminUser, error) {
	var row adminUserRow
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.AdminUser{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.adminuser.repository.postgres.GetByUsername.First: %v", err)
		return model.AdminUser{}, errors.Wrap(err, "fetching admin user")
	}

	return row.toModel(), nil
}
