package lead

import (
	"notification-admin/internal/model"
	"notification-admin/pkg/paginator"
)

type CreateInput struct {
	Name        string
	Email       string
	Phone       string
	Message     string
	UTMSource   string
	UTMMedium   string
	UTMCampaign string
	FunnelID    string
}

type Filter struct {
	Email     string
	UTMSource string
	Search    string
}

type GetInput struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}

type GetOutput struct {
	Leads     []model.Lead
	Paginator paginator.Paginator
}
