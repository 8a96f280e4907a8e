package postgres

import (
	"time"

	"github.com/aarondl/null/v8"

	"notification-admin/internal/model"
)

type alertRow struct {
	ID        string      `gorm:"column:id;primaryKey"`
	Type      string      `gorm:"column:type"`
	Title     string      `gorm:"column:title"`
	Message   string      `gorm:"column:message"`
	LeadID    null.String `gorm:"column:lead_id"`
	ReadAt    null.Time   `gorm:"column:read_at"`
	CreatedAt time.Time   `gorm:"column:created_at"`
}

func (alertRow) TableName() string {
	return "admin_alerts"
}

func (r alertRow) toModel() model.AdminAlert {
	a := model.AdminAlert{
		ID:        r.ID,
		Type:      model.AlertType(r.Type),
		Title:     r.Title,
		Message:   r.Message,
		CreatedAt: r.CreatedAt,
	}

	if r.LeadID.Valid {
		a.LeadID = r.LeadID.String
	}
	if r.ReadAt.Valid {
		t := r.ReadAt.Time
		a.ReadAt = &t
	}

	return a
}

func newAlertRow(a model.AdminAlert) alertRow {
	row := alertRow{
		ID:        a.ID,
		Type:      a.Type.String(),
		Title:     a.Title,
		Message:   a.Message,
		CreatedAt: a.CreatedAt,
	}

	if a.LeadID != "" {
		row.LeadID = null.StringFrom(a.LeadID)
	}
	if a.ReadAt != nil {
		row.ReadAt = null.TimeFrom(*a.ReadAt)
	}

	return row
}
