package model

import "time"

// AdminUser is a dashboard account.
type AdminUser struct {
	ID           string
	Username     string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}
