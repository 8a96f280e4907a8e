package usecase

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"notification-admin/internal/model"
	"notification-admin/internal/notification"
	"notification-admin/internal/notification/repository"
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

type mockRepo struct {
	getCalls int
	getFn    func(opts repository.GetOptions) ([]model.DeliveryNotification, paginator.Paginator, error)
	detailFn func(id string) (model.DeliveryNotification, error)
	updateFn func(opts repository.UpdateOptions) (model.DeliveryNotification, error)
}

func (m *mockRepo) Get(ctx context.Context, sc model.Scope, opts repository.GetOptions) ([]model.DeliveryNotification, paginator.Paginator, error) {
	m.getCalls++
	return m.getFn(opts)
}

func (m *mockRepo) Detail(ctx context.Context, sc model.Scope, id string) (model.DeliveryNotification, error) {
	return m.detailFn(id)
}

func (m *mockRepo) List(ctx context.Context, sc model.Scope, opts repository.ListOptions) ([]model.DeliveryNotification, error) {
	return nil, nil
}

func (m *mockRepo) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.DeliveryNotification, error) {
	return opts.Notification, nil
}

func (m *mockRepo) Update(ctx context.Context, sc model.Scope, opts repository.UpdateOptions) (model.DeliveryNotification, error) {
	return m.updateFn(opts)
}

func (m *mockRepo) ListDue(ctx context.Context, opts repository.ListDueOptions) ([]model.DeliveryNotification, error) {
	return nil, nil
}

func newTestCache() *querycache.Cache {
	return querycache.New(testLogger{}, newMemRedis(), querycache.Config{
		Prefix: "qc",
		TTL:    time.Minute,
	})
}

func adminScope() model.Scope {
	return model.Scope{UserID: "u1", Username: "admin", Role: model.RoleAdmin}
}

func TestGetCachesByParams(t *testing.T) {
	repo := &mockRepo{
		getFn: func(opts repository.GetOptions) ([]model.DeliveryNotification, paginator.Paginator, error) {
			return []model.DeliveryNotification{{ID: "n1", Status: model.DeliveryStatusSent}},
				paginator.Paginator{Total: 1, Count: 1, PerPage: opts.PaginateQuery.Limit, CurrentPage: opts.PaginateQuery.Page},
				nil
		},
	}
	uc := New(testLogger{}, repo, newTestCache())
	ctx := context.Background()
	sc := adminScope()

	ip := notification.GetInput{
		Filter:        notification.Filter{Status: "sent"},
		PaginateQuery: paginator.PaginateQuery{Page: 1, Limit: 25},
	}

	if _, err := uc.Get(ctx, sc, ip); err != nil {
		t.Fatalf("first Get: %v", err)
	}
	if _, err := uc.Get(ctx, sc, ip); err != nil {
		t.Fatalf("second Get: %v", err)
	}
	if repo.getCalls != 1 {
		t.Fatalf("expected 1 repository call for identical params, got %d", repo.getCalls)
	}

	ip.PaginateQuery.Page = 2
	if _, err := uc.Get(ctx, sc, ip); err != nil {
		t.Fatalf("Get page 2: %v", err)
	}
	if repo.getCalls != 2 {
		t.Fatalf("expected a fresh repository call for new page, got %d calls", repo.getCalls)
	}
}

func TestGetRejectsUnknownEnums(t *testing.T) {
	uc := New(testLogger{}, &mockRepo{}, newTestCache())
	ctx := context.Background()
	sc := adminScope()

	_, err := uc.Get(ctx, sc, notification.GetInput{Filter: notification.Filter{Channel: "pigeon"}})
	if err != notification.ErrInvalidChannel {
		t.Fatalf("expected ErrInvalidChannel, got %v", err)
	}

	_, err = uc.Get(ctx, sc, notification.GetInput{Filter: notification.Filter{Status: "exploded"}})
	if err != notification.ErrInvalidStatus {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestRetry(t *testing.T) {
	t.Run("failed notification is re-queued and cache invalidated", func(t *testing.T) {
		stored := model.DeliveryNotification{ID: "n1", Status: model.DeliveryStatusFailed, Attempts: 3}
		repo := &mockRepo{
			getFn: func(opts repository.GetOptions) ([]model.DeliveryNotification, paginator.Paginator, error) {
				return []model.DeliveryNotification{stored}, paginator.Paginator{Total: 1, Count: 1, PerPage: 25, CurrentPage: 1}, nil
			},
			detailFn: func(id string) (model.DeliveryNotification, error) {
				return stored, nil
			},
			updateFn: func(opts repository.UpdateOptions) (model.DeliveryNotification, error) {
				if opts.Status == nil || *opts.Status != model.DeliveryStatusRetrying {
					t.Fatalf("expected status update to retrying, got %+v", opts.Status)
				}
				stored.Status = *opts.Status
				return stored, nil
			},
		}
		uc := New(testLogger{}, repo, newTestCache())
		ctx := context.Background()
		sc := adminScope()

		ip := notification.GetInput{PaginateQuery: paginator.PaginateQuery{Page: 1, Limit: 25}}
		if _, err := uc.Get(ctx, sc, ip); err != nil {
			t.Fatalf("warm Get: %v", err)
		}

		n, err := uc.Retry(ctx, sc, "n1")
		if err != nil {
			t.Fatalf("Retry: %v", err)
		}
		if n.Status != model.DeliveryStatusRetrying {
			t.Fatalf("expected retrying status, got %s", n.Status)
		}

		// The list cache must be stale after the mutation.
		if _, err := uc.Get(ctx, sc, ip); err != nil {
			t.Fatalf("Get after retry: %v", err)
		}
		if repo.getCalls != 2 {
			t.Fatalf("expected repository reload after invalidation, got %d calls", repo.getCalls)
		}
	})

	t.Run("sent notification is not retryable", func(t *testing.T) {
		repo := &mockRepo{
			detailFn: func(id string) (model.DeliveryNotification, error) {
				return model.DeliveryNotification{ID: id, Status: model.DeliveryStatusSent}, nil
			},
		}
		uc := New(testLogger{}, repo, newTestCache())

		_, err := uc.Retry(context.Background(), adminScope(), "n1")
		if err != notification.ErrNotRetryable {
			t.Fatalf("expected ErrNotRetryable, got %v", err)
		}
	})

	t.Run("missing notification maps to not found", func(t *testing.T) {
		repo := &mockRepo{
			detailFn: func(id string) (model.DeliveryNotification, error) {
				return model.DeliveryNotification{}, repository.ErrNotFound
			},
		}
		uc := New(testLogger{}, repo, newTestCache())

		_, err := uc.Retry(context.Background(), adminScope(), "missing")
		if err != notification.ErrNotificationNotFound {
			t.Fatalf("expected ErrNotificationNotFound, got %v", err)
		}
	})

	t.Run("viewer cannot retry", func(t *testing.T) {
		uc := New(testLogger{}, &mockRepo{}, newTestCache())

		_, err := uc.Retry(context.Background(), model.Scope{UserID: "u2", Role: model.RoleViewer}, "n1")
		if err != notification.ErrUnauthorized {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})
}
