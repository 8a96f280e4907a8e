package model

import "time"

// Lead is a captured landing-page submission.
type Lead struct {
	ID          string
	Name        string
	Email       string
	Phone       string
	Message     string
	UTMSource   string
	UTMMedium   string
	UTMCampaign string
	FunnelID    string
	CreatedAt   time.Time
}
