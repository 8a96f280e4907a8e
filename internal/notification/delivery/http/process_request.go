package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"notification-admin/internal/model"
	"notification-admin/internal/notification"
	pkgErrors "notification-admin/pkg/errors"
	"notification-admin/pkg/paginator"
)

type getNotificationsReq struct {
	Channel   string `form:"channel"`
	Status    string `form:"status"`
	LeadID    string `form:"lead_id"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	Page      int    `form:"page"`
	Limit     int64  `form:"limit"`
}

func (req getNotificationsReq) validate() error {
	collector := pkgErrors.NewValidationErrorCollector()

	if req.Channel != "" && !model.Channel(req.Channel).IsValid() {
		collector.Add(pkgErrors.NewValidationError(400, "channel", "must be one of email, sms, webhook"))
	}
	if req.Status != "" && !model.DeliveryStatus(req.Status).IsValid() {
		collector.Add(pkgErrors.NewValidationError(400, "status", "must be one of pending, sent, failed, retrying"))
	}
	if req.StartDate != "" {
		if _, err := time.Parse(time.RFC3339, req.StartDate); err != nil {
			collector.Add(pkgErrors.NewValidationError(400, "start_date", "must be an RFC3339 timestamp"))
		}
	}
	if req.EndDate != "" {
		if _, err := time.Parse(time.RFC3339, req.EndDate); err != nil {
			collector.Add(pkgErrors.NewValidationError(400, "end_date", "must be an RFC3339 timestamp"))
		}
	}

	if collector.HasError() {
		return collector
	}
	return nil
}

func (req getNotificationsReq) toInput() notification.GetInput {
	filter := notification.Filter{
		Channel: req.Channel,
		Status:  req.Status,
		LeadID:  req.LeadID,
	}

	if req.StartDate != "" {
		if t, err := time.Parse(time.RFC3339, req.StartDate); err == nil {
			filter.StartDate = &t
		}
	}
	if req.EndDate != "" {
		if t, err := time.Parse(time.RFC3339, req.EndDate); err == nil {
			filter.EndDate = &t
		}
	}

	return notification.GetInput{
		Filter: filter,
		PaginateQuery: paginator.PaginateQuery{
			Page:  req.Page,
			Limit: req.Limit,
		},
	}
}

func (h *Handler) processGetRequest(c *gin.Context) (notification.GetInput, error) {
	var req getNotificationsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "internal.notification.delivery.http.processGetRequest.ShouldBindQuery: %v", err)
		return notification.GetInput{}, errInvalidRequest
	}

	if err := req.validate(); err != nil {
		return notification.GetInput{}, err
	}

	return req.toInput(), nil
}
