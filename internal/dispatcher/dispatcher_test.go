package dispatcher

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"notification-admin/internal/model"
	notifRepo "notification-admin/internal/notification/repository"
	"notification-admin/pkg/paginator"
	"notification-admin/pkg/querycache"
	pkgRedis "notification-admin/pkg/redis"
)

type testLogger struct{}

func (testLogger) Debug(ctx context.Context, arg ...any)                   {}
func (testLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (testLogger) Info(ctx context.Context, arg ...any)                    {}
func (testLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (testLogger) Warn(ctx context.Context, arg ...any)                    {}
func (testLogger) Warnf(ctx context.Context, template string, arg ...any)  {}
func (testLogger) Error(ctx context.Context, arg ...any)                   {}
func (testLogger) Errorf(ctx context.Context, template string, arg ...any) {}
func (testLogger) Fatal(ctx context.Context, arg ...any)                   {}
func (testLogger) Fatalf(ctx context.Context, template string, arg ...any) {}

type memRedis struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemRedis() *memRedis {
	return &memRedis{data: make(map[string]string)}
}

func (m *memRedis) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := value.(string); ok {
		m.data[key] = s
	}
	return nil
}

func (m *memRedis) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return "", pkgRedis.ErrNotFound
	}
	return v, nil
}

func (m *memRedis) Incr(ctx context.Context, key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, _ := strconv.ParseInt(m.data[key], 10, 64)
	n++
	m.data[key] = strconv.FormatInt(n, 10)
	return n, nil
}

func (m *memRedis) Expire(ctx context.Context, key string, ttl time.Duration) error { return nil }

func (m *memRedis) Delete(ctx context.Context, keys ...string) error { return nil }
func (m *memRedis) Exists(ctx context.Context, key string) (bool, error) {
	return false, nil
}
func (m *memRedis) Close() error                   { return nil }
func (m *memRedis) Ping(ctx context.Context) error { return nil }

type memNotifRepo struct {
	mu   sync.Mutex
	rows map[string]model.DeliveryNotification
	next int
}

func newMemNotifRepo() *memNotifRepo {
	return &memNotifRepo{rows: make(map[string]model.DeliveryNotification)}
}

func (m *memNotifRepo) Get(ctx context.Context, sc model.Scope, opts notifRepo.GetOptions) ([]model.DeliveryNotification, paginator.Paginator, error) {
	return nil, paginator.Paginator{}, nil
}

func (m *memNotifRepo) Detail(ctx context.Context, sc model.Scope, id string) (model.DeliveryNotification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.rows[id]
	if !ok {
		return model.DeliveryNotification{}, notifRepo.ErrNotFound
	}
	return n, nil
}

func (m *memNotifRepo) List(ctx context.Context, sc model.Scope, opts notifRepo.ListOptions) ([]model.DeliveryNotification, error) {
	return nil, nil
}

func (m *memNotifRepo) Create(ctx context.Context, sc model.Scope, opts notifRepo.CreateOptions) (model.DeliveryNotification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := opts.Notification
	m.next++
	n.ID = strconv.Itoa(m.next)
	m.rows[n.ID] = n
	return n, nil
}

func (m *memNotifRepo) Update(ctx context.Context, sc model.Scope, opts notifRepo.UpdateOptions) (model.DeliveryNotification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.rows[opts.ID]
	if !ok {
		return model.DeliveryNotification{}, notifRepo.ErrNotFound
	}
	if opts.Status != nil {
		n.Status = *opts.Status
	}
	if opts.Attempts != nil {
		n.Attempts = *opts.Attempts
	}
	if opts.ErrorMessage != nil {
		n.ErrorMessage = *opts.ErrorMessage
	}
	if opts.NextRetryAt != nil {
		t := *opts.NextRetryAt
		n.NextRetryAt = &t
	}
	if opts.SentAt != nil {
		t := *opts.SentAt
		n.SentAt = &t
	}
	m.rows[opts.ID] = n
	return n, nil
}

func (m *memNotifRepo) ListDue(ctx context.Context, opts notifRepo.ListDueOptions) ([]model.DeliveryNotification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var due []model.DeliveryNotification
	for _, n := range m.rows {
		if n.Status != model.DeliveryStatusPending && n.Status != model.DeliveryStatusRetrying {
			continue
		}
		if n.NextRetryAt != nil && n.NextRetryAt.After(opts.Now) {
			continue
		}
		due = append(due, n)
	}
	return due, nil
}

func (m *memNotifRepo) snapshot(id string) model.DeliveryNotification {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rows[id]
}

type scriptedHandler struct {
	channel  model.Channel
	mu       sync.Mutex
	failures int
	calls    int
}

func (h *scriptedHandler) Channel() model.Channel {
	return h.channel
}

func (h *scriptedHandler) Send(ctx context.Context, n model.DeliveryNotification) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls++
	if h.calls <= h.failures {
		return errors.New("gateway unavailable")
	}
	return nil
}

func testCache() *querycache.Cache {
	return querycache.New(testLogger{}, newMemRedis(), querycache.Config{Prefix: "qc", TTL: time.Minute})
}

func testConfig() Config {
	return Config{
		AdminRecipients: []string{"ops@example.com"},
		LeadChannels:    []string{"email"},
		MaxAttempts:     5,
		RetryBaseDelay:  5 * time.Minute,
		RetryMaxDelay:   24 * time.Hour,
	}
}

func TestBackoffSchedule(t *testing.T) {
	cfg := testConfig()

	cases := []struct {
		attempts int
		want     time.Duration
	}{
		{1, 5 * time.Minute},
		{2, 10 * time.Minute},
		{3, 20 * time.Minute},
		{4, 40 * time.Minute},
		{10, 24 * time.Hour},
	}

	for _, tc := range cases {
		if got := cfg.backoff(tc.attempts); got != tc.want {
			t.Errorf("backoff(%d) = %s, want %s", tc.attempts, got, tc.want)
		}
	}
}

func TestProcessSuccess(t *testing.T) {
	repo := newMemNotifRepo()
	handler := &scriptedHandler{channel: model.ChannelEmail}
	d := New(testLogger{}, repo, testCache(), []ChannelHandler{handler}, testConfig())
	ctx := context.Background()

	n, _ := repo.Create(ctx, model.Scope{}, notifRepo.CreateOptions{
		Notification: model.DeliveryNotification{
			Channel:   model.ChannelEmail,
			Recipient: "ops@example.com",
			Status:    model.DeliveryStatusPending,
		},
	})

	d.Process(ctx, n)

	got := repo.snapshot(n.ID)
	if got.Status != model.DeliveryStatusSent {
		t.Fatalf("expected sent, got %s", got.Status)
	}
	if got.SentAt == nil {
		t.Fatal("expected sent_at to be recorded")
	}
}

func TestProcessFailureSchedulesRetry(t *testing.T) {
	repo := newMemNotifRepo()
	handler := &scriptedHandler{channel: model.ChannelEmail, failures: 100}
	d := New(testLogger{}, repo, testCache(), []ChannelHandler{handler}, testConfig())
	ctx := context.Background()

	n, _ := repo.Create(ctx, model.Scope{}, notifRepo.CreateOptions{
		Notification: model.DeliveryNotification{
			Channel:   model.ChannelEmail,
			Recipient: "ops@example.com",
			Status:    model.DeliveryStatusPending,
		},
	})

	d.Process(ctx, n)

	got := repo.snapshot(n.ID)
	if got.Status != model.DeliveryStatusRetrying {
		t.Fatalf("expected retrying, got %s", got.Status)
	}
	if got.Attempts != 1 {
		t.Fatalf("expected 1 attempt, got %d", got.Attempts)
	}
	if got.NextRetryAt == nil || !got.NextRetryAt.After(time.Now()) {
		t.Fatalf("expected a future next_retry_at, got %v", got.NextRetryAt)
	}
	if got.ErrorMessage == "" {
		t.Fatal("expected the send error to be recorded")
	}
}

func TestProcessPermanentFailureAfterMaxAttempts(t *testing.T) {
	repo := newMemNotifRepo()
	handler := &scriptedHandler{channel: model.ChannelEmail, failures: 100}
	cfg := testConfig()
	cfg.MaxAttempts = 3
	d := New(testLogger{}, repo, testCache(), []ChannelHandler{handler}, cfg)
	ctx := context.Background()

	n, _ := repo.Create(ctx, model.Scope{}, notifRepo.CreateOptions{
		Notification: model.DeliveryNotification{
			Channel:   model.ChannelEmail,
			Recipient: "ops@example.com",
			Status:    model.DeliveryStatusPending,
		},
	})

	for i := 0; i < 3; i++ {
		d.Process(ctx, repo.snapshot(n.ID))
	}

	got := repo.snapshot(n.ID)
	if got.Status != model.DeliveryStatusFailed {
		t.Fatalf("expected failed after max attempts, got %s", got.Status)
	}
	if got.Attempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", got.Attempts)
	}
}

func TestNotifyLeadFansOut(t *testing.T) {
	repo := newMemNotifRepo()
	handler := &scriptedHandler{channel: model.ChannelEmail}
	cfg := testConfig()
	cfg.AdminRecipients = []string{"a@example.com", "b@example.com"}
	d := New(testLogger{}, repo, testCache(), []ChannelHandler{handler}, cfg)
	ctx := context.Background()

	lead := model.Lead{ID: "lead-1", Name: "Jordan", Email: "jordan@example.com"}
	if err := d.NotifyLead(ctx, model.Scope{}, lead); err != nil {
		t.Fatalf("NotifyLead: %v", err)
	}

	repo.mu.Lock()
	count := len(repo.rows)
	repo.mu.Unlock()
	if count != 2 {
		t.Fatalf("expected one delivery per recipient, got %d", count)
	}

	// Dispatch runs asynchronously; wait for both deliveries to settle.
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		repo.mu.Lock()
		sent := 0
		for _, row := range repo.rows {
			if row.Status == model.DeliveryStatusSent {
				sent++
			}
		}
		repo.mu.Unlock()
		if sent == 2 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("deliveries did not reach sent status in time")
}
