package model

import "time"

// AlertType categorizes admin feed alerts.
type AlertType string

const (
	AlertTypeLeadNew        AlertType = "lead_new"
	AlertTypeLeadAssigned   AlertType = "lead_assigned"
	AlertTypeLeadConverted  AlertType = "lead_converted"
	AlertTypeExportComplete AlertType = "export_complete"
	AlertTypeError          AlertType = "error"
	AlertTypeWarning        AlertType = "warning"
)

// IsValid reports whether the alert type is known.
func (t AlertType) IsValid() bool {
	switch t {
	case AlertTypeLeadNew, AlertTypeLeadAssigned, AlertTypeLeadConverted,
		AlertTypeExportComplete, AlertTypeError, AlertTypeWarning:
		return true
	}
	return false
}

func (t AlertType) String() string {
	return string(t)
}

// AdminAlert is one entry in the admin activity feed.
// A nil ReadAt means the alert is unread.
type AdminAlert struct {
	ID        string
	Type      AlertType
	Title     string
	Message   string
	LeadID    string
	ReadAt    *time.Time
	CreatedAt time.Time
}

// IsRead reports whether the alert has been marked read.
func (a AdminAlert) IsRead() bool {
	return a.ReadAt != nil
}
