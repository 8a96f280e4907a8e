package repository

import (
	"notification-admin/internal/model"
	"notification-admin/pkg/paginator"
)

// Filter contains filtering options for alert queries.
type Filter struct {
	Type       string
	UnreadOnly bool
}

// GetOptions contains options for paginated alert listing.
type GetOptions struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}

// CreateOptions contains options for creating an alert.
type CreateOptions struct {
	Alert model.AdminAlert
}
