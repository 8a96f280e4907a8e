package postgres

import (
	"time"

	"github.com/aarondl/null/v8"

	"notification-admin/internal/model"
)

type leadRow struct {
	ID          string      `gorm:"column:id;primaryKey"`
	Name        string      `gorm:"column:name"`
	Email       string      `gorm:"column:email"`
	Phone       null.String `gorm:"column:phone"`
	Message     null.String `gorm:"column:message"`
	UTMSource   null.String `gorm:"column:utm_source"`
	UTMMedium   null.String `gorm:"column:utm_medium"`
	UTMCampaign null.String `gorm:"column:utm_campaign"`
	FunnelID    null.String `gorm:"column:funnel_id"`
	CreatedAt   time.Time   `gorm:"column:created_at"`
}

func (leadRow) TableName() string {
	return "leads"
}

func (r leadRow) toModel() model.Lead {
	return model.Lead{
		ID:          r.ID,
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone.String,
		Message:     r.Message.String,
		UTMSource:   r.UTMSource.String,
		UTMMedium:   r.UTMMedium.String,
		UTMCampaign: r.UTMCampaign.String,
		FunnelID:    r.FunnelID.String,
		CreatedAt:   r.CreatedAt,
	}
}

func newLeadRow(l model.Lead) leadRow {
	row := leadRow{
		ID:        l.ID,
		Name:      l.Name,
		Email:     l.Email,
		CreatedAt: l.CreatedAt,
	}

	if l.Phone != "" {
		row.Phone = null.StringFrom(l.Phone)
	}
	if l.Message != "" {
		row.Message = null.StringFrom(l.Message)
	}
	if l.UTMSource != "" {
		row.UTMSource = null.StringFrom(l.UTMSource)
	}
	if l.UTMMedium != "" {
		row.UTMMedium = null.StringFrom(l.UTMMedium)
	}
	if l.UTMCampaign != "" {
		row.UTMCampaign = null.StringFrom(l.UTMCampaign)
	}
	if l.FunnelID != "" {
		row.FunnelID = null.StringFrom(l.FunnelID)
	}

	return row
}
