package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"financial-coach/internal/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func okHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func doRequest(e *echo.Echo, handler echo.HandlerFunc, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/analytics/overview", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	_ = handler(e.NewContext(req, rec))
	return rec
}

func TestRateLimiter_FromConfig(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	e := echo.New()
	handler := RateLimiter(ctx, config.SecurityConfig{RateLimitPerSecond: 1, RateLimitBurst: 3})(okHandler)

	for i := 0; i < 3; i++ {
		rec := doRequest(e, handler, "10.0.0.1:1234")
		assert.Equal(t, http.StatusOK, rec.Code, "request %d within burst", i)
	}

	rec := doRequest(e, handler, "10.0.0.1:1234")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "SYSTEM_006")
}

func TestRateLimiterWithStore_DifferentIPs(t *testing.T) {
	e := echo.New()
	handler := RateLimiterWithStore(NewVisitorStore(1, 2))(okHandler)

	for _, ip := range []string{"10.0.0.1:1", "10.0.0.2:1", "10.0.0.3:1"} {
		for i := 0; i < 2; i++ {
			rec := doRequest(e, handler, ip)
			assert.Equal(t, http.StatusOK, rec.Code, "request %d for %s", i, ip)
		}
	}

	rec := doRequest(e, handler, "10.0.0.2:1")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestVisitorStore_RefillsOverTime(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store := NewVisitorStore(1, 1)
	store.now = func() time.Time { return now }

	assert.True(t, store.Allow("a"))
	assert.False(t, store.Allow("a"))

	now = now.Add(time.Second)
	assert.True(t, store.Allow("a"))
}

func TestVisitorStore_Cleanup(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store := NewVisitorStore(5, 10)
	store.now = func() time.Time { return now }

	store.Allow("old_ip")
	now = now.Add(5 * time.Minute)
	store.Allow("new_ip")

	removed := store.Cleanup(visitorTTL)

	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, store.Len())
}

func TestVisitorStore_RunCleanupStopsOnCancel(t *testing.T) {
	store := NewVisitorStore(5, 10)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		store.RunCleanup(ctx, time.Millisecond)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cleanup loop did not stop after cancel")
	}
}

func TestGetIP(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		expected   string
	}{
		{
			name:       "X-Forwarded-For header",
			headers:    map[string]string{"X-Forwarded-For": "192.168.1.1"},
			remoteAddr: "127.0.0.1:12345",
			expected:   "192.168.1.1",
		},
		{
			name:       "X-Forwarded-For chain uses the client entry",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.9, 10.0.0.1"},
			remoteAddr: "127.0.0.1:12345",
			expected:   "203.0.113.9",
		},
		{
			name:       "X-Real-IP header",
			headers:    map[string]string{"X-Real-IP": "192.168.1.2"},
			remoteAddr: "127.0.0.1:12345",
			expected:   "192.168.1.2",
		},
		{
			name: "X-Forwarded-For takes precedence",
			headers: map[string]string{
				"X-Forwarded-For": "192.168.1.1",
				"X-Real-IP":       "192.168.1.2",
			},
			remoteAddr: "127.0.0.1:12345",
			expected:   "192.168.1.1",
		},
		{
			name:       "Falls back to RealIP",
			headers:    map[string]string{},
			remoteAddr: "192.168.1.3:12345",
			expected:   "192.168.1.3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			req.RemoteAddr = tt.remoteAddr

			c := e.NewContext(req, httptest.NewRecorder())
			assert.Equal(t, tt.expected, getIP(c))
		})
	}
}

func TestRateLimiterConcurrency(t *testing.T) {
	e := echo.New()
	handler := RateLimiterWithStore(NewVisitorStore(1, 5))(okHandler)

	var wg sync.WaitGroup
	var mu sync.Mutex
	successCount := 0
	rateLimitCount := 0

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec := doRequest(e, handler, "192.168.1.100:12345")

			mu.Lock()
			defer mu.Unlock()
			switch rec.Code {
			case http.StatusOK:
				successCount++
			case http.StatusTooManyRequests:
				rateLimitCount++
			}
		}()
	}
	wg.Wait()

	assert.Greater(t, successCount, 0, "Some requests should succeed")
	assert.Greater(t, rateLimitCount, 0, "Some requests should be rate limited")
	assert.Equal(t, 20, successCount+rateLimitCount)
}
