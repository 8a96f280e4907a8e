package repository

import (
	"time"

	"notification-admin/internal/model"
	"notification-admin/pkg/paginator"
)

// Filter contains filtering options for delivery notification queries.
type Filter struct {
	Channel   string
	Status    string
	LeadID    string
	StartDate *time.Time
	EndDate   *time.Time
}

// GetOptions contains options for paginated notification listing.
type GetOptions struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}

// ListOptions contains options for unpaginated notification listing.
type ListOptions struct {
	Filter Filter
}

// CreateOptions contains options for creating a delivery notification.
type CreateOptions struct {
	Notification model.DeliveryNotification
}

// UpdateOptions contains options for updating a delivery notification.
// Only non-nil fields will be updated.
type UpdateOptions struct {
	ID           string
	Status       *model.DeliveryStatus
	Attempts     *int
	ErrorMessage *string
	NextRetryAt  *time.Time
	SentAt       *time.Time
}

// ListDueOptions selects retrying notifications whose backoff has elapsed.
type ListDueOptions struct {
	Now   time.Time
	Limit int
}
