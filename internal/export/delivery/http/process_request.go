package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"notification-admin/internal/export"
	"notification-admin/internal/model"
	pkgErrors "notification-admin/pkg/errors"
)

type exportNotificationsReq struct {
	Channel   string `json:"channel"`
	Status    string `json:"status"`
	LeadID    string `json:"lead_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (req exportNotificationsReq) validate() error {
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

func (req exportNotificationsReq) toInput() export.ExportInput {
	filter := export.Filter{
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

	return export.ExportInput{Filter: filter}
}

func (h *Handler) processExportRequest(c *gin.Context) (export.ExportInput, error) {
	var req exportNotificationsReq
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.l.Warnf(c.Request.Context(), "internal.export.delivery.http.processExportRequest.ShouldBindJSON: %v", err)
			return export.ExportInput{}, errInvalidBody
		}
	}

	if err := req.validate(); err != nil {
		return export.ExportInput{}, err
	}

	return req.toInput(), nil
}
