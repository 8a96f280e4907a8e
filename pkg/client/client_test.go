package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func writeOK(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"error_code": 0,
		"message":    "Success",
		"data":       data,
	})
}

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New(Config{BaseURL: srv.URL, Token: "test-token"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	return c, srv
}

func TestListNotificationsCachesByParams(t *testing.T) {
	var hits int64

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/notifications", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
		writeOK(w, NotificationList{
			Items: []Notification{{ID: "n1", Channel: "email", Status: "sent"}},
			Meta:  Paginator{Total: 1, CurrentPage: 1},
		})
	})

	c, _ := newTestClient(t, mux)
	ctx := context.Background()

	opts := NotificationListOptions{
		Filter: NotificationFilter{Status: "failed"},
		Page:   1,
		Limit:  20,
	}

	for i := 0; i < 3; i++ {
		if _, err := c.ListNotifications(ctx, opts); err != nil {
			t.Fatalf("ListNotifications: %v", err)
		}
	}
	if got := atomic.LoadInt64(&hits); got != 1 {
		t.Fatalf("expected 1 request for identical params, got %d", got)
	}

	opts.Page = 2
	if _, err := c.ListNotifications(ctx, opts); err != nil {
		t.Fatalf("ListNotifications page 2: %v", err)
	}
	if got := atomic.LoadInt64(&hits); got != 2 {
		t.Fatalf("expected a fresh request for new page, got %d total", got)
	}
}

func TestRetryInvalidatesNotificationList(t *testing.T) {
	var listHits int64

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/notifications", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&listHits, 1)
		writeOK(w, NotificationList{})
	})
	mux.HandleFunc("POST /api/v1/notifications/n1/retry", func(w http.ResponseWriter, r *http.Request) {
		writeOK(w, Notification{ID: "n1", Status: "retrying"})
	})

	c, _ := newTestClient(t, mux)
	ctx := context.Background()

	opts := NotificationListOptions{Page: 1, Limit: 20}
	if _, err := c.ListNotifications(ctx, opts); err != nil {
		t.Fatalf("ListNotifications: %v", err)
	}

	n, err := c.RetryNotification(ctx, "n1")
	if err != nil {
		t.Fatalf("RetryNotification: %v", err)
	}
	if n.Status != "retrying" {
		t.Fatalf("expected status retrying, got %q", n.Status)
	}

	if _, err := c.ListNotifications(ctx, opts); err != nil {
		t.Fatalf("ListNotifications after retry: %v", err)
	}
	if got := atomic.LoadInt64(&listHits); got != 2 {
		t.Fatalf("expected refetch after mutation, got %d list requests", got)
	}
}

func TestMarkAllAlertsReadInvalidatesAlertList(t *testing.T) {
	var listHits int64

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/alerts", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&listHits, 1)
		writeOK(w, AlertList{UnreadCount: 3})
	})
	mux.HandleFunc("PATCH /api/v1/alerts/read-all", func(w http.ResponseWriter, r *http.Request) {
		writeOK(w, MarkAllReadOutput{MarkedCount: 3})
	})

	c, _ := newTestClient(t, mux)
	ctx := context.Background()

	if _, err := c.ListAlerts(ctx, AlertListOptions{Page: 1}); err != nil {
		t.Fatalf("ListAlerts: %v", err)
	}
	if _, err := c.ListAlerts(ctx, AlertListOptions{Page: 1}); err != nil {
		t.Fatalf("ListAlerts cached: %v", err)
	}
	if got := atomic.LoadInt64(&listHits); got != 1 {
		t.Fatalf("expected cached alert list, got %d requests", got)
	}

	out, err := c.MarkAllAlertsRead(ctx)
	if err != nil {
		t.Fatalf("MarkAllAlertsRead: %v", err)
	}
	if out.MarkedCount != 3 {
		t.Fatalf("expected 3 marked, got %d", out.MarkedCount)
	}

	if _, err := c.ListAlerts(ctx, AlertListOptions{Page: 1}); err != nil {
		t.Fatalf("ListAlerts after mutation: %v", err)
	}
	if got := atomic.LoadInt64(&listHits); got != 2 {
		t.Fatalf("expected refetch after mutation, got %d list requests", got)
	}
}

func TestConcurrentIdenticalCallsCollapse(t *testing.T) {
	var hits int64
	release := make(chan struct{})

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/alerts", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
		<-release
		writeOK(w, AlertList{})
	})

	c, _ := newTestClient(t, mux)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make(chan error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.ListAlerts(ctx, AlertListOptions{Page: 1})
			errs <- err
		}()
	}

	// Wait for the first request to land, give stragglers time to pile up
	// behind singleflight, then let the server respond.
	deadline := time.Now().Add(2 * time.Second)
	for atomic.LoadInt64(&hits) == 0 {
		if time.Now().After(deadline) {
			t.Fatal("server never received a request")
		}
		time.Sleep(5 * time.Millisecond)
	}
	time.Sleep(50 * time.Millisecond)
	close(release)

	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("ListAlerts: %v", err)
		}
	}

	if got := atomic.LoadInt64(&hits); got != 1 {
		t.Fatalf("expected concurrent identical calls to collapse to 1 request, got %d", got)
	}
}

func TestInvalidateDuringInFlightLoadDropsStaleEntry(t *testing.T) {
	var listHits int64
	release := make(chan struct{})

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/alerts", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&listHits, 1)
		<-release
		writeOK(w, AlertList{UnreadCount: 1})
	})
	mux.HandleFunc("PATCH /api/v1/alerts/read-all", func(w http.ResponseWriter, r *http.Request) {
		writeOK(w, MarkAllReadOutput{MarkedCount: 1})
	})

	c, _ := newTestClient(t, mux)
	ctx := context.Background()

	done := make(chan error, 1)
	go func() {
		_, err := c.ListAlerts(ctx, AlertListOptions{Page: 1})
		done <- err
	}()

	// Wait for the list request to be in flight, then invalidate the
	// collection before letting the server respond.
	deadline := time.Now().Add(2 * time.Second)
	for atomic.LoadInt64(&listHits) == 0 {
		if time.Now().After(deadline) {
			t.Fatal("server never received a request")
		}
		time.Sleep(5 * time.Millisecond)
	}
	if _, err := c.MarkAllAlertsRead(ctx); err != nil {
		t.Fatalf("MarkAllAlertsRead: %v", err)
	}
	close(release)
	if err := <-done; err != nil {
		t.Fatalf("ListAlerts: %v", err)
	}

	// The response that raced the invalidation must not be kept under the
	// orphaned generation key.
	c.cache.mu.Lock()
	stale := len(c.cache.entries)
	c.cache.mu.Unlock()
	if stale != 0 {
		t.Fatalf("expected no cached entries after mid-flight invalidation, got %d", stale)
	}

	if _, err := c.ListAlerts(ctx, AlertListOptions{Page: 1}); err != nil {
		t.Fatalf("ListAlerts after mutation: %v", err)
	}
	if got := atomic.LoadInt64(&listHits); got != 2 {
		t.Fatalf("expected refetch after mid-flight invalidation, got %d list requests", got)
	}
}

func TestLoginAttachesToken(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["username"] != "admin" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]any{"error_code": 4010, "message": "Unauthorized"})
			return
		}
		writeOK(w, LoginOutput{Token: "issued-token", User: User{Username: "admin", Role: "admin"}})
	})
	mux.HandleFunc("GET /api/v1/notifications", func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer issued-token" {
			t.Errorf("expected issued token on request, got %q", got)
		}
		writeOK(w, NotificationList{})
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	c, err := New(Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx := context.Background()

	out, err := c.Login(ctx, "admin", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if out.Token != "issued-token" {
		t.Fatalf("unexpected token %q", out.Token)
	}

	if _, err := c.ListNotifications(ctx, NotificationListOptions{Page: 1}); err != nil {
		t.Fatalf("ListNotifications: %v", err)
	}
}

func TestAPIErrorSurfaced(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/notifications/missing", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]any{"error_code": 4040, "message": "Notification not found"})
	})

	c, _ := newTestClient(t, mux)

	_, err := c.GetNotification(context.Background(), "missing")
	if err == nil {
		t.Fatal("expected error for missing notification")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.StatusCode != http.StatusNotFound || apiErr.Code != 4040 {
		t.Fatalf("unexpected error detail: %+v", apiErr)
	}
}

func TestFilterStateResetsPageOnFilterChange(t *testing.T) {
	state := NewFilterState(NotificationFilter{Status: "failed"}, 20)
	state.SetPage(3)

	t.Run("filter change resets page", func(t *testing.T) {
		state.SetFilters(NotificationFilter{Status: "failed", Channel: "email"})
		if state.Page() != 1 {
			t.Fatalf("expected page 1 after filter change, got %d", state.Page())
		}
	})

	t.Run("page change keeps filters", func(t *testing.T) {
		state.SetPage(5)
		if state.Page() != 5 {
			t.Fatalf("expected page 5, got %d", state.Page())
		}
		if state.Filters().Channel != "email" {
			t.Fatalf("filters changed unexpectedly: %+v", state.Filters())
		}
	})

	t.Run("identical filters keep page", func(t *testing.T) {
		state.SetFilters(NotificationFilter{Status: "failed", Channel: "email"})
		if state.Page() != 5 {
			t.Fatalf("expected page unchanged for identical filters, got %d", state.Page())
		}
	})
}
