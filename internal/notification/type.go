package notification

import (
	"time"

	"notification-admin/internal/model"
	"notification-admin/pkg/paginator"
)

type Filter struct {
	Channel   string
	Status    string
	LeadID    string
	StartDate *time.Time
	EndDate   *time.Time
}

type GetInput struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}

type GetOutput struct {
	Notifications []model.DeliveryNotification
	Paginator     paginator.Paginator
}
