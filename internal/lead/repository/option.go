package repository

import (
	"notification-admin/internal/model"
	"notification-admin/pkg/paginator"
)

// Filter contains filtering options for lead queries.
type Filter struct {
	Email     string
	UTMSource string
	Search    string // matches name or email
}

// GetOptions contains options for paginated lead listing.
type GetOptions struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}

// GetOneOptions contains options for fetching a single lead.
type GetOneOptions struct {
	ID    string
	Email string
}

// CreateOptions contains options for creating a lead.
type CreateOptions struct {
	Lead model.Lead
}
