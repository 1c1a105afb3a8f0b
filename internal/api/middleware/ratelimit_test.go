package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

type stubLimiter struct {
	allow bool
	keys  []string
}

func (l *stubLimiter) Allow(key string, _ int, _ time.Duration) bool {
	l.keys = append(l.keys, key)
	return l.allow
}

func invokeRateLimit(limiter Limiter) error {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/api/auth/login")

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	return RateLimit(limiter, 10, time.Minute)(next)(c)
}

func TestRateLimit_Allows(t *testing.T) {
	limiter := &stubLimiter{allow: true}
	if err := invokeRateLimit(limiter); err != nil {
		t.Fatalf("allowed request rejected: %v", err)
	}
	if len(limiter.keys) != 1 {
		t.Fatalf("limiter consulted %d times, want 1", len(limiter.keys))
	}
}

func TestRateLimit_Throttles(t *testing.T) {
	err := invokeRateLimit(&stubLimiter{allow: false})
	assertHTTPStatus(t, err, http.StatusTooManyRequests)
}

func TestRateLimit_NilLimiter(t *testing.T) {
	if err := invokeRateLimit(nil); err != nil {
		t.Fatalf("nil limiter should pass requests through: %v", err)
	}
}
