package client

import (
	"fmt"
	"net/url"
	"strconv"
)

// Notification is a delivery notification as rendered by the API.
type Notification struct {
	ID           string  `json:"id"`
	LeadID       string  `json:"lead_id,omitempty"`
	FunnelID     string  `json:"funnel_id,omitempty"`
	Channel      string  `json:"channel"`
	Recipient    string  `json:"recipient"`
	Subject      string  `json:"subject,omitempty"`
	Body         string  `json:"body,omitempty"`
	Status       string  `json:"status"`
	Attempts     int     `json:"attempts"`
	ErrorMessage string  `json:"error_message,omitempty"`
	NextRetryAt  *string `json:"next_retry_at,omitempty"`
	SentAt       *string `json:"sent_at,omitempty"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

// Alert is an admin alert as rendered by the API.
type Alert struct {
	ID        string  `json:"id"`
	Type      string  `json:"type"`
	Title     string  `json:"title"`
	Message   string  `json:"message,omitempty"`
	LeadID    string  `json:"lead_id,omitempty"`
	ReadAt    *string `json:"read_at"`
	CreatedAt string  `json:"created_at"`
}

// Lead is a captured lead as rendered by the API.
type Lead struct {
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

// Paginator carries list pagination metadata.
type Paginator struct {
	Total       int64 `json:"total"`
	Count       int64 `json:"count"`
	PerPage     int64 `json:"per_page"`
	CurrentPage int   `json:"current_page"`
	TotalPages  int   `json:"total_pages"`
	HasNext     bool  `json:"has_next"`
	HasPrev     bool  `json:"has_prev"`
}

// NotificationList is the notification list response.
type NotificationList struct {
	Items []Notification `json:"items"`
	Meta  Paginator      `json:"meta"`
}

// AlertList is the alert list response, including the unread counter.
type AlertList struct {
	Items       []Alert   `json:"items"`
	UnreadCount int64     `json:"unread_count"`
	Meta        Paginator `json:"meta"`
}

// LeadList is the lead list response.
type LeadList struct {
	Items []Lead    `json:"items"`
	Meta  Paginator `json:"meta"`
}

// User is an admin account as rendered by the API.
type User struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

// LoginOutput carries the issued token and the authenticated user.
type LoginOutput struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// ExportResult describes an uploaded CSV export.
type ExportResult struct {
	ObjectName  string `json:"object_name"`
	DownloadURL string `json:"download_url"`
	RowCount    int    `json:"row_count"`
}

// CreateLeadInput is the public lead capture payload.
type CreateLeadInput struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	Message     string `json:"message,omitempty"`
	UTMSource   string `json:"utm_source,omitempty"`
	UTMMedium   string `json:"utm_medium,omitempty"`
	UTMCampaign string `json:"utm_campaign,omitempty"`
	FunnelID    string `json:"funnel_id,omitempty"`
}

// CreateLeadOutput acknowledges a captured lead.
type CreateLeadOutput struct {
	LeadID  string `json:"lead_id"`
	Message string `json:"message"`
}

// MarkAllReadOutput reports how many alerts were marked read.
type MarkAllReadOutput struct {
	MarkedCount int64 `json:"marked_count"`
}

// NotificationFilter narrows the delivery notification list.
// All fields are optional; timestamps are RFC3339 strings.
type NotificationFilter struct {
	Channel   string
	Status    string
	LeadID    string
	StartDate string
	EndDate   string
}

// NotificationListOptions are the query parameters for ListNotifications.
type NotificationListOptions struct {
	Filter NotificationFilter
	Page   int
	Limit  int64
}

func (o NotificationListOptions) values() url.Values {
	v := url.Values{}
	setIfValue(v, "channel", o.Filter.Channel)
	setIfValue(v, "status", o.Filter.Status)
	setIfValue(v, "lead_id", o.Filter.LeadID)
	setIfValue(v, "start_date", o.Filter.StartDate)
	setIfValue(v, "end_date", o.Filter.EndDate)
	setPagination(v, o.Page, o.Limit)
	return v
}

// AlertFilter narrows the alert list.
type AlertFilter struct {
	Type       string
	UnreadOnly bool
}

// AlertListOptions are the query parameters for ListAlerts.
type AlertListOptions struct {
	Filter AlertFilter
	Page   int
	Limit  int64
}

func (o AlertListOptions) values() url.Values {
	v := url.Values{}
	setIfValue(v, "type", o.Filter.Type)
	if o.Filter.UnreadOnly {
		v.Set("unread_only", "true")
	}
	setPagination(v, o.Page, o.Limit)
	return v
}

// LeadFilter narrows the lead list.
type LeadFilter struct {
	Email     string
	UTMSource string
	Search    string
}

// LeadListOptions are the query parameters for ListLeads.
type LeadListOptions struct {
	Filter LeadFilter
	Page   int
	Limit  int64
}

func (o LeadListOptions) values() url.Values {
	v := url.Values{}
	setIfValue(v, "email", o.Filter.Email)
	setIfValue(v, "utm_source", o.Filter.UTMSource)
	setIfValue(v, "q", o.Filter.Search)
	setPagination(v, o.Page, o.Limit)
	return v
}

// ExportOptions are the body parameters for ExportNotifications.
type ExportOptions struct {
	Channel   string `json:"channel,omitempty"`
	Status    string `json:"status,omitempty"`
	LeadID    string `json:"lead_id,omitempty"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

func setIfValue(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}

func setPagination(v url.Values, page int, limit int64) {
	if page > 0 {
		v.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		v.Set("limit", strconv.FormatInt(limit, 10))
	}
}

// APIError is a non-success response from the service.
type APIError struct {
	StatusCode int
	Code       int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d, code %d): %s", e.StatusCode, e.Code, e.Message)
}
