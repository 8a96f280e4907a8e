package querycache

import (
	"context"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

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

// memoryRedis implements pkgRedis.IRedis on a map, ignoring TTLs.
type memoryRedis struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemoryRedis() *memoryRedis {
	return &memoryRedis{data: make(map[string]string)}
}

func (m *memoryRedis) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value.(string)
	return nil
}

func (m *memoryRedis) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return "", pkgRedis.ErrNotFound
	}
	return v, nil
}

func (m *memoryRedis) Incr(ctx context.Context, key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, _ := strconv.ParseInt(m.data[key], 10, 64)
	n++
	m.data[key] = strconv.FormatInt(n, 10)
	return n, nil
}

func (m *memoryRedis) Expire(ctx context.Context, key string, ttl time.Duration) error { return nil }

func (m *memoryRedis) Delete(ctx context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

func (m *memoryRedis) Exists(ctx context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[key]
	return ok, nil
}

func (m *memoryRedis) Close() error                   { return nil }
func (m *memoryRedis) Ping(ctx context.Context) error { return nil }

type listResult struct {
	Items []string `json:"items"`
	Total int64    `json:"total"`
}

func newTestCache() (*Cache, *memoryRedis) {
	r := newMemoryRedis()
	return New(testLogger{}, r, Config{Prefix: "qc", TTL: time.Minute}), r
}

func TestGetOrLoadCachesByKey(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache()

	var calls int32
	load := func(ctx context.Context) (listResult, error) {
		atomic.AddInt32(&calls, 1)
		return listResult{Items: []string{"a", "b"}, Total: 2}, nil
	}

	for i := 0; i < 3; i++ {
		got, err := GetOrLoad(ctx, c, "deliveries", "channel=email&page=1", load)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Total != 2 || len(got.Items) != 2 {
			t.Fatalf("unexpected result: %+v", got)
		}
	}

	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Errorf("loader ran %d times for identical tuple, want 1", n)
	}

	// A different parameter tuple loads independently.
	if _, err := GetOrLoad(ctx, c, "deliveries", "channel=sms&page=1", load); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := atomic.LoadInt32(&calls); n != 2 {
		t.Errorf("loader ran %d times after second tuple, want 2", n)
	}
}

func TestGetOrLoadCollapsesConcurrentCalls(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache()

	var calls int32
	release := make(chan struct{})
	load := func(ctx context.Context) (listResult, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return listResult{Total: 1}, nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := GetOrLoad(ctx, c, "alerts", "page=1", load); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}

	// Give the goroutines time to pile up on the singleflight key.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Errorf("loader ran %d times for concurrent identical tuples, want 1", n)
	}
}

func TestInvalidateForcesReload(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache()

	var calls int32
	load := func(ctx context.Context) (listResult, error) {
		return listResult{Total: int64(atomic.AddInt32(&calls, 1))}, nil
	}

	first, err := GetOrLoad(ctx, c, "alerts", "page=1", load)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Total != 1 {
		t.Fatalf("first load total = %d, want 1", first.Total)
	}

	if err := c.Invalidate(ctx, "alerts"); err != nil {
		t.Fatalf("invalidate: %v", err)
	}

	second, err := GetOrLoad(ctx, c, "alerts", "page=1", load)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Total != 2 {
		t.Errorf("total after invalidation = %d, want 2 (fresh load)", second.Total)
	}

	// Invalidation is scoped to the collection.
	if _, err := GetOrLoad(ctx, c, "deliveries", "page=1", load); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.Invalidate(ctx, "alerts"); err != nil {
		t.Fatalf("invalidate: %v", err)
	}
	got, err := GetOrLoad(ctx, c, "deliveries", "page=1", load)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Total != 3 {
		t.Errorf("deliveries entry evicted by alerts invalidation (total = %d, want 3)", got.Total)
	}
}

func TestGetOrLoadSurfacesLoaderError(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache()

	wantErr := context.DeadlineExceeded
	_, err := GetOrLoad(ctx, c, "alerts", "page=1", func(ctx context.Context) (listResult, error) {
		return listResult{}, wantErr
	})
	if err != wantErr {
		t.Fatalf("error = %v, want %v", err, wantErr)
	}

	// A failed load is not cached; the next call retries the loader.
	got, err := GetOrLoad(ctx, c, "alerts", "page=1", func(ctx context.Context) (listResult, error) {
		return listResult{Total: 9}, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Total != 9 {
		t.Errorf("total = %d, want 9", got.Total)
	}
}
