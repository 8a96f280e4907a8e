package http

import (
	"time"

	"notification-admin/internal/alertfeed"
	"notification-admin/internal/model"
	"notification-admin/pkg/paginator"
)

type alertResp struct {
	ID        string  `json:"id"`
	Type      string  `json:"type"`
	Title     string  `json:"title"`
	Message   string  `json:"message,omitempty"`
	LeadID    string  `json:"lead_id,omitempty"`
	ReadAt    *string `json:"read_at"`
	CreatedAt string  `json:"created_at"`
}

type getAlertsResp struct {
	Items       []alertResp                 `json:"items"`
	UnreadCount int64                       `json:"unread_count"`
	Meta        paginator.PaginatorResponse `json:"meta"`
}

type markAllReadResp struct {
	MarkedCount int64 `json:"marked_count"`
}

func newAlertResp(a model.AdminAlert) alertResp {
	resp := alertResp{
		ID:        a.ID,
		Type:      a.Type.String(),
		Title:     a.Title,
		Message:   a.Message,
		LeadID:    a.LeadID,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}

	if a.ReadAt != nil {
		s := a.ReadAt.Format(time.RFC3339)
		resp.ReadAt = &s
	}

	return resp
}

func newGetAlertsResp(out alertfeed.GetOutput) getAlertsResp {
	items := make([]alertResp, len(out.Alerts))
	for i, a := range out.Alerts {
		items[i] = newAlertResp(a)
	}

	return getAlertsResp{
		Items:       items,
		UnreadCount: out.UnreadCount,
		Meta:        out.Paginator.ToResponse(),
	}
}
