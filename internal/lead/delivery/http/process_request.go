package http

import (
	"github.com/gin-gonic/gin"

	"notification-admin/internal/lead"
	"notification-admin/pkg/paginator"
)

type createLeadReq struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Message     string `json:"message"`
	UTMSource   string `json:"utm_source"`
	UTMMedium   string `json:"utm_medium"`
	UTMCampaign string `json:"utm_campaign"`
	FunnelID    string `json:"funnel_id"`
}

func (req createLeadReq) toInput() lead.CreateInput {
	return lead.CreateInput{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Message:     req.Message,
		UTMSource:   req.UTMSource,
		UTMMedium:   req.UTMMedium,
		UTMCampaign: req.UTMCampaign,
		FunnelID:    req.FunnelID,
	}
}

type getLeadsReq struct {
	Email     string `form:"email"`
	UTMSource string `form:"utm_source"`
	Search    string `form:"q"`
	Page      int    `form:"page"`
	Limit     int64  `form:"limit"`
}

func (req getLeadsReq) toInput() lead.GetInput {
	return lead.GetInput{
		Filter: lead.Filter{
			Email:     req.Email,
			UTMSource: req.UTMSource,
			Search:    req.Search,
		},
		PaginateQuery: paginator.PaginateQuery{
			Page:  req.Page,
			Limit: req.Limit,
		},
	}
}

func (h *Handler) processCreateRequest(c *gin.Context) (lead.CreateInput, error) {
	var req createLeadReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "internal.lead.delivery.http.processCreateRequest.ShouldBindJSON: %v", err)
		return lead.CreateInput{}, errInvalidBody
	}

	return req.toInput(), nil
}

func (h *Handler) processGetRequest(c *gin.Context) (lead.GetInput, error) {
	var req getLeadsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "internal.lead.delivery.http.processGetRequest.ShouldBindQuery: %v", err)
		return lead.GetInput{}, errInvalidRequest
	}

	return req.toInput(), nil
}
