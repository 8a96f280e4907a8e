package http

import (
	"github.com/gin-gonic/gin"

	"notification-admin/internal/alertfeed"
	"notification-admin/internal/model"
	pkgErrors "notification-admin/pkg/errors"
	"notification-admin/pkg/paginator"
)

type getAlertsReq struct {
	Type       string `form:"type"`
	UnreadOnly bool   `form:"unread_only"`
	Page       int    `form:"page"`
	Limit      int64  `form:"limit"`
}

func (req getAlertsReq) validate() error {
	if req.Type != "" && !model.AlertType(req.Type).IsValid() {
		return pkgErrors.NewValidationErrorCollector().
			Add(pkgErrors.NewValidationError(400, "type", "unknown alert type"))
	}
	return nil
}

func (req getAlertsReq) toInput() alertfeed.GetInput {
	return alertfeed.GetInput{
		Filter: alertfeed.Filter{
			Type:       req.Type,
			UnreadOnly: req.UnreadOnly,
		},
		PaginateQuery: paginator.PaginateQuery{
			Page:  req.Page,
			Limit: req.Limit,
		},
	}
}

func (h *Handler) processGetRequest(c *gin.Context) (alertfeed.GetInput, error) {
	var req getAlertsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "internal.alertfeed.delivery.http.processGetRequest.ShouldBindQuery: %v", err)
		return alertfeed.GetInput{}, errInvalidRequest
	}

	if err := req.validate(); err != nil {
		return alertfeed.GetInput{}, err
	}

	return req.toInput(), nil
}
