package http

import (
	"time"

	"notification-admin/internal/lead"
	"notification-admin/internal/model"
	"notification-admin/pkg/paginator"
)

type leadResp struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	Message     string `json:"message,omitempty"`
	UTMSource   string `json:"utm_source,omitempty"`
	UTMMedium   string `json:"utm_medium,omitempty"`
	UTMCampaign string `json:"utm_campaign,omitempty"`
	FunnelID    string `json:"funnel_id,omitempty"`
	CreatedAt   string `json:"created_at"`
}

type createLeadResp struct {
	LeadID  string `json:"lead_id"`
	Message string `json:"message"`
}

type getLeadsResp struct {
	Items []leadResp                  `json:"items"`
	Meta  paginator.PaginatorResponse `json:"meta"`
}

func newLeadResp(l model.Lead) leadResp {
	return leadResp{
		ID:          l.ID,
		Name:        l.Name,
		Email:       l.Email,
		Phone:       l.Phone,
		Message:     l.Message,
		UTMSource:   l.UTMSource,
		UTMMedium:   l.UTMMedium,
		UTMCampaign: l.UTMCampaign,
		FunnelID:    l.FunnelID,
		CreatedAt:   l.CreatedAt.Format(time.RFC3339),
	}
}

func newGetLeadsResp(out lead.GetOutput) getLeadsResp {
	items := make([]leadResp, len(out.Leads))
	for i, l := range out.Leads {
		items[i] = newLeadResp(l)
	}

	return getLeadsResp{
		Items: items,
		Meta:  out.Paginator.ToResponse(),
	}
}
