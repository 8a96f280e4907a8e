package alertfeed

import (
	"notification-admin/internal/model"
	"notification-admin/pkg/paginator"
)

type Filter struct {
	Type       string
	UnreadOnly bool
}

type GetInput struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}

type GetOutput struct {
	Alerts      []model.AdminAlert
	Paginator   paginator.Paginator
	UnreadCount int64
}

type CreateInput struct {
	Type    model.AlertType
	Title   string
	Message string
	LeadID  string
}
