package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
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
	mu       sync.Mutex
	data     map[string]string
	failIncr bool
}

func newMemRedis() *memRedis {
	return &memRedis{data: make(map[string]string)}
}

func (m *memRedis) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = fmt.Sprintf("%v", value)
	return nil
}

func (m *memRedis) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[key], nil
}

func (m *memRedis) Incr(ctx context.Context, key string) (int64, error) {
	if m.failIncr {
		return 0, errors.New("connection refused")
	}
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

func (m *memRedis) Close() error { return nil }

func (m *memRedis) Ping(ctx context.Context) error { return nil }

func newRateLimitRouter(redis *memRedis, limit int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	mw := New(testLogger{}, nil, redis, RateLimitConfig{Limit: limit, Window: time.Minute})

	r := gin.New()
	r.POST("/leads", mw.RateLimit(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"error_code": 0})
	})
	return r
}

func doPost(r *gin.Engine, remoteAddr string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/leads", nil)
	req.RemoteAddr = remoteAddr
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimit(t *testing.T) {
	t.Run("allows requests under the limit", func(t *testing.T) {
		r := newRateLimitRouter(newMemRedis(), 3)

		for i := 0; i < 3; i++ {
			if w := doPost(r, "10.0.0.1:5000"); w.Code != http.StatusOK {
				t.Fatalf("request %d: status = %d, want %d", i+1, w.Code, http.StatusOK)
			}
		}
	})

	t.Run("rejects requests over the limit", func(t *testing.T) {
		r := newRateLimitRouter(newMemRedis(), 2)

		doPost(r, "10.0.0.1:5000")
		doPost(r, "10.0.0.1:5000")
		w := doPost(r, "10.0.0.1:5000")

		if w.Code != http.StatusTooManyRequests {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusTooManyRequests)
		}

		var body struct {
			ErrorCode int    `json:"error_code"`
			Message   string `json:"message"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal body: %v", err)
		}
		if body.ErrorCode != http.StatusTooManyRequests {
			t.Errorf("error_code = %d, want %d", body.ErrorCode, http.StatusTooManyRequests)
		}
		if body.Message == "" {
			t.Error("expected a message in the error envelope")
		}
	})

	t.Run("counts each client IP separately", func(t *testing.T) {
		r := newRateLimitRouter(newMemRedis(), 1)

		if w := doPost(r, "10.0.0.1:5000"); w.Code != http.StatusOK {
			t.Fatalf("first IP: status = %d, want %d", w.Code, http.StatusOK)
		}
		if w := doPost(r, "10.0.0.2:5000"); w.Code != http.StatusOK {
			t.Fatalf("second IP: status = %d, want %d", w.Code, http.StatusOK)
		}
		if w := doPost(r, "10.0.0.1:5000"); w.Code != http.StatusTooManyRequests {
			t.Fatalf("first IP again: status = %d, want %d", w.Code, http.StatusTooManyRequests)
		}
	})

	t.Run("lets requests through when redis is down", func(t *testing.T) {
		redis := newMemRedis()
		redis.failIncr = true
		r := newRateLimitRouter(redis, 1)

		for i := 0; i < 5; i++ {
			if w := doPost(r, "10.0.0.1:5000"); w.Code != http.StatusOK {
				t.Fatalf("request %d: status = %d, want %d", i+1, w.Code, http.StatusOK)
			}
		}
	})
}
