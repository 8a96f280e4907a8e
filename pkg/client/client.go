package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

type respEnvelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	Errors    json.RawMessage `json:"errors"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	u := c.baseURL + "/api/v1" + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var envelope respEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	if resp.StatusCode != http.StatusOK || envelope.ErrorCode != 0 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Code:       envelope.ErrorCode,
			Message:    envelope.Message,
		}
	}

	if out != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("decoding response data: %w", err)
		}
	}

	return nil
}

// Login exchanges credentials for a JWT and attaches it to the client.
func (c *Client) Login(ctx context.Context, username, password string) (LoginOutput, error) {
	var out LoginOutput
	body := map[string]string{"username": username, "password": password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, body, &out); err != nil {
		return LoginOutput{}, err
	}

	c.SetToken(out.Token)
	return out, nil
}

// ListNotifications lists delivery notifications. Results are cached by the
// parameter tuple until a notification mutation invalidates the collection.
func (c *Client) ListNotifications(ctx context.Context, opts NotificationListOptions) (NotificationList, error) {
	query := opts.values()
	v, err := c.cache.getOrLoad(collectionNotifications, query.Encode(), func() (any, error) {
		var out NotificationList
		if err := c.do(ctx, http.MethodGet, "/notifications", query, nil, &out); err != nil {
			return nil, err
		}
		return out, nil
	})
	if err != nil {
		return NotificationList{}, err
	}

	return v.(NotificationList), nil
}

// GetNotification fetches a single delivery notification.
func (c *Client) GetNotification(ctx context.Context, id string) (Notification, error) {
	var out Notification
	if err := c.do(ctx, http.MethodGet, "/notifications/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return Notification{}, err
	}

	return out, nil
}

// RetryNotification re-queues a failed delivery. The redispatch happens
// asynchronously on the server; the returned notification reflects the
// requeued state, not the delivery outcome.
func (c *Client) RetryNotification(ctx context.Context, id string) (Notification, error) {
	var out Notification
	if err := c.do(ctx, http.MethodPost, "/notifications/"+url.PathEscape(id)+"/retry", nil, nil, &out); err != nil {
		return Notification{}, err
	}

	c.cache.invalidate(collectionNotifications)
	return out, nil
}

// ExportNotifications exports the filtered delivery list as CSV and returns
// a presigned download URL.
func (c *Client) ExportNotifications(ctx context.Context, opts ExportOptions) (ExportResult, error) {
	var out ExportResult
	if err := c.do(ctx, http.MethodPost, "/notifications/export", nil, opts, &out); err != nil {
		return ExportResult{}, err
	}

	return out, nil
}

// ListAlerts lists admin alerts with the current unread count. Results are
// cached by the parameter tuple until an alert mutation invalidates the
// collection.
func (c *Client) ListAlerts(ctx context.Context, opts AlertListOptions) (AlertList, error) {
	query := opts.values()
	v, err := c.cache.getOrLoad(collectionAlerts, query.Encode(), func() (any, error) {
		var out AlertList
		if err := c.do(ctx, http.MethodGet, "/alerts", query, nil, &out); err != nil {
			return nil, err
		}
		return out, nil
	})
	if err != nil {
		return AlertList{}, err
	}

	return v.(AlertList), nil
}

// MarkAlertRead marks a single alert as read. Marking an already-read alert
// keeps its original read timestamp.
func (c *Client) MarkAlertRead(ctx context.Context, id string) (Alert, error) {
	var out Alert
	if err := c.do(ctx, http.MethodPatch, "/alerts/"+url.PathEscape(id)+"/read", nil, nil, &out); err != nil {
		return Alert{}, err
	}

	c.cache.invalidate(collectionAlerts)
	return out, nil
}

// MarkAllAlertsRead marks every unread alert as read and returns the count.
func (c *Client) MarkAllAlertsRead(ctx context.Context) (MarkAllReadOutput, error) {
	var out MarkAllReadOutput
	if err := c.do(ctx, http.MethodPatch, "/alerts/read-all", nil, nil, &out); err != nil {
		return MarkAllReadOutput{}, err
	}

	c.cache.invalidate(collectionAlerts)
	return out, nil
}

// CreateLead submits a lead through the public capture endpoint.
func (c *Client) CreateLead(ctx context.Context, input CreateLeadInput) (CreateLeadOutput, error) {
	var out CreateLeadOutput
	if err := c.do(ctx, http.MethodPost, "/leads", nil, input, &out); err != nil {
		return CreateLeadOutput{}, err
	}

	c.cache.invalidate(collectionLeads)
	return out, nil
}

// ListLeads lists captured leads.
func (c *Client) ListLeads(ctx context.Context, opts LeadListOptions) (LeadList, error) {
	query := opts.values()
	v, err := c.cache.getOrLoad(collectionLeads, query.Encode(), func() (any, error) {
		var out LeadList
		if err := c.do(ctx, http.MethodGet, "/leads", query, nil, &out); err != nil {
			return nil, err
		}
		return out, nil
	})
	if err != nil {
		return LeadList{}, err
	}

	return v.(LeadList), nil
}

// GetLead fetches a single lead.
func (c *Client) GetLead(ctx context.Context, id string) (Lead, error) {
	var out Lead
	if err := c.do(ctx, http.MethodGet, "/leads/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return Lead{}, err
	}

	return out, nil
}
