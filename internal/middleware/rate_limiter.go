package middleware

import (
	"context"
	"strings"
	"sync"
	"time"

	"financial-coach/internal/config"
	"financial-coach/internal/errors"
	"financial-coach/internal/handlers"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	visitorTTL      = 3 * time.Minute
	cleanupInterval = time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// VisitorStore keeps one token bucket per client IP
type VisitorStore struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rps      rate.Limit
	burst    int
	now      func() time.Time
}

// NewVisitorStore creates a store handing out limiters of rps with the given burst
func NewVisitorStore(rps int, burst int) *VisitorStore {
	return &VisitorStore{
		visitors: make(map[string]*visitor),
		rps:      rate.Limit(rps),
		burst:    burst,
		now:      time.Now,
	}
}

// Allow reports whether the client identified by ip may proceed
func (s *VisitorStore) Allow(ip string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, exists := s.visitors[ip]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(s.rps, s.burst)}
		s.visitors[ip] = v
	}
	v.lastSeen = s.now()
	return v.limiter.AllowN(v.lastSeen, 1)
}

// Cleanup forgets clients idle for longer than ttl and returns how many were removed
func (s *VisitorStore) Cleanup(ttl time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	cutoff := s.now().Add(-ttl)
	for ip, v := range s.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(s.visitors, ip)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked clients
func (s *VisitorStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.visitors)
}

// RunCleanup evicts idle clients every interval until ctx is done
func (s *VisitorStore) RunCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Cleanup(visitorTTL)
		}
	}
}

// RateLimiter creates a per-IP rate limiting middleware from the security config.
// The cleanup loop stops when ctx is cancelled.
func RateLimiter(ctx context.Context, cfg config.SecurityConfig) echo.MiddlewareFunc {
	store := NewVisitorStore(cfg.RateLimitPerSecond, cfg.RateLimitBurst)
	go store.RunCleanup(ctx, cleanupInterval)
	return RateLimiterWithStore(store)
}

// RateLimiterWithStore rate limits requests against an existing store
func RateLimiterWithStore(store *VisitorStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !store.Allow(getIP(c)) {
				return handlers.SendError(c, errors.SystemRateLimitExceeded)
			}
			return next(c)
		}
	}
}

func getIP(c echo.Context) string {
	if xff := c.Request().Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}

	if xri := c.Request().Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	return c.RealIP()
}
