package usecase

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"notification-admin/internal/alertfeed"
	"notification-admin/internal/alertfeed/repository"
	"notification-admin/internal/model"
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
	switch v := value.(type) {
	case string:
		m.data[key] = v
	case []byte:
		m.data[key] = string(v)
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

func (m *memRedis) Delete(ctx context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

func (m *memRedis) Exists(ctx context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[key]
	return ok, nil
}

func (m *memRedis) Close() error                   { return nil }
func (m *memRedis) Ping(ctx context.Context) error { return nil }

// memAlertRepo keeps alerts in memory, read state included, so the tests can
// exercise real monotonic mark-read semantics.
type memAlertRepo struct {
	mu       sync.Mutex
	alerts   []model.AdminAlert
	getCalls int
}

func (m *memAlertRepo) Get(ctx context.Context, sc model.Scope, opts repository.GetOptions) ([]model.AdminAlert, paginator.Paginator, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getCalls++

	var filtered []model.AdminAlert
	for _, a := range m.alerts {
		if opts.Filter.Type != "" && a.Type.String() != opts.Filter.Type {
			continue
		}
		if opts.Filter.UnreadOnly && a.IsRead() {
			continue
		}
		filtered = append(filtered, a)
	}

	pq := opts.PaginateQuery
	pq.Adjust()

	return filtered, paginator.Paginator{
		Total:       int64(len(filtered)),
		Count:       int64(len(filtered)),
		PerPage:     pq.Limit,
		CurrentPage: pq.Page,
	}, nil
}

func (m *memAlertRepo) Detail(ctx context.Context, sc model.Scope, id string) (model.AdminAlert, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.alerts {
		if a.ID == id {
			return a, nil
		}
	}
	return model.AdminAlert{}, repository.ErrNotFound
}

func (m *memAlertRepo) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.AdminAlert, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a := opts.Alert
	if a.ID == "" {
		a.ID = strconv.Itoa(len(m.alerts) + 1)
	}
	m.alerts = append(m.alerts, a)
	return a, nil
}

func (m *memAlertRepo) MarkRead(ctx context.Context, sc model.Scope, id string) (model.AdminAlert, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, a := range m.alerts {
		if a.ID != id {
			continue
		}
		if a.ReadAt == nil {
			now := time.Now()
			m.alerts[i].ReadAt = &now
		}
		return m.alerts[i], nil
	}
	return model.AdminAlert{}, repository.ErrNotFound
}

func (m *memAlertRepo) MarkAllRead(ctx context.Context, sc model.Scope) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	now := time.Now()
	for i, a := range m.alerts {
		if a.ReadAt == nil {
			m.alerts[i].ReadAt = &now
			n++
		}
	}
	return n, nil
}

func (m *memAlertRepo) CountUnread(ctx context.Context, sc model.Scope) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, a := range m.alerts {
		if a.ReadAt == nil {
			n++
		}
	}
	return n, nil
}

func newTestUsecase(repo repository.Repository) alertfeed.UseCase {
	cache := querycache.New(testLogger{}, newMemRedis(), querycache.Config{Prefix: "qc", TTL: time.Minute})
	return New(testLogger{}, repo, cache)
}

func seedRepo(n int) *memAlertRepo {
	repo := &memAlertRepo{}
	for i := 0; i < n; i++ {
		repo.alerts = append(repo.alerts, model.AdminAlert{
			ID:    strconv.Itoa(i + 1),
			Type:  model.AlertTypeLeadNew,
			Title: "New lead",
		})
	}
	return repo
}

func TestGetReturnsUnreadCount(t *testing.T) {
	repo := seedRepo(3)
	uc := newTestUsecase(repo)
	sc := model.Scope{UserID: "u1", Role: model.RoleAdmin}

	out, err := uc.Get(context.Background(), sc, alertfeed.GetInput{})
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if out.UnreadCount != 3 {
		t.Fatalf("expected 3 unread, got %d", out.UnreadCount)
	}
	if len(out.Alerts) != 3 {
		t.Fatalf("expected 3 alerts, got %d", len(out.Alerts))
	}
}

func TestMarkReadIsMonotonic(t *testing.T) {
	repo := seedRepo(1)
	uc := newTestUsecase(repo)
	sc := model.Scope{UserID: "u1", Role: model.RoleAdmin}
	ctx := context.Background()

	first, err := uc.MarkRead(ctx, sc, "1")
	if err != nil {
		t.Fatalf("first MarkRead: %v", err)
	}
	if first.ReadAt == nil {
		t.Fatal("expected read_at to be set")
	}

	second, err := uc.MarkRead(ctx, sc, "1")
	if err != nil {
		t.Fatalf("second MarkRead: %v", err)
	}
	if second.ReadAt == nil || !second.ReadAt.Equal(*first.ReadAt) {
		t.Fatalf("expected read_at to stay %v, got %v", first.ReadAt, second.ReadAt)
	}
}

func TestMarkReadUnknownAlert(t *testing.T) {
	uc := newTestUsecase(seedRepo(0))

	_, err := uc.MarkRead(context.Background(), model.Scope{Role: model.RoleAdmin}, "nope")
	if err != alertfeed.ErrAlertNotFound {
		t.Fatalf("expected ErrAlertNotFound, got %v", err)
	}
}

func TestMarkAllRead(t *testing.T) {
	repo := seedRepo(5)
	uc := newTestUsecase(repo)
	sc := model.Scope{UserID: "u1", Role: model.RoleAdmin}
	ctx := context.Background()

	// Warm the cache so the test also proves invalidation.
	if _, err := uc.Get(ctx, sc, alertfeed.GetInput{}); err != nil {
		t.Fatalf("warm Get: %v", err)
	}

	count, err := uc.MarkAllRead(ctx, sc)
	if err != nil {
		t.Fatalf("MarkAllRead: %v", err)
	}
	if count != 5 {
		t.Fatalf("expected 5 alerts marked, got %d", count)
	}

	out, err := uc.Get(ctx, sc, alertfeed.GetInput{})
	if err != nil {
		t.Fatalf("Get after MarkAllRead: %v", err)
	}
	if out.UnreadCount != 0 {
		t.Fatalf("expected unread count 0, got %d", out.UnreadCount)
	}

	second, err := uc.MarkAllRead(ctx, sc)
	if err != nil {
		t.Fatalf("second MarkAllRead: %v", err)
	}
	if second != 0 {
		t.Fatalf("expected no-op on second MarkAllRead, got %d", second)
	}
}

func TestGetListCacheInvalidatedByMutation(t *testing.T) {
	repo := seedRepo(2)
	uc := newTestUsecase(repo)
	sc := model.Scope{UserID: "u1", Role: model.RoleAdmin}
	ctx := context.Background()

	ip := alertfeed.GetInput{Filter: alertfeed.Filter{UnreadOnly: true}}

	if _, err := uc.Get(ctx, sc, ip); err != nil {
		t.Fatalf("first Get: %v", err)
	}
	if _, err := uc.Get(ctx, sc, ip); err != nil {
		t.Fatalf("cached Get: %v", err)
	}
	if repo.getCalls != 1 {
		t.Fatalf("expected identical queries to be served from cache, got %d repo calls", repo.getCalls)
	}

	if _, err := uc.MarkRead(ctx, sc, "1"); err != nil {
		t.Fatalf("MarkRead: %v", err)
	}

	out, err := uc.Get(ctx, sc, ip)
	if err != nil {
		t.Fatalf("Get after MarkRead: %v", err)
	}
	if repo.getCalls != 2 {
		t.Fatalf("expected cache invalidation to force a reload, got %d repo calls", repo.getCalls)
	}
	if len(out.Alerts) != 1 {
		t.Fatalf("expected 1 unread alert after MarkRead, got %d", len(out.Alerts))
	}
}
