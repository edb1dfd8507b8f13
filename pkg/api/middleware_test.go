package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
)

func okHandler(c *echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func TestSecurityHeaders(t *testing.T) {
	e := echo.New()
	e.Use(securityHeaders())
	e.GET("/test", okHandler)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
}

func TestCORS(t *testing.T) {
	t.Run("wildcard reflects star", func(t *testing.T) {
		e := echo.New()
		e.Use(corsMiddleware([]string{"*"}, 300))
		e.GET("/test", okHandler)

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Origin", "https://anywhere.example")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("listed origin is reflected", func(t *testing.T) {
		e := echo.New()
		e.Use(corsMiddleware([]string{"https://a.example", "https://b.example"}, 300))
		e.GET("/test", okHandler)

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Origin", "https://b.example")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, "https://b.example", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("unlisted origin falls back to first entry", func(t *testing.T) {
		e := echo.New()
		e.Use(corsMiddleware([]string{"https://a.example", "https://b.example"}, 300))
		e.GET("/test", okHandler)

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Origin", "https://evil.example")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, "https://a.example", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight returns 204 with headers", func(t *testing.T) {
		e := echo.New()
		e.Use(corsMiddleware([]string{"*"}, 600))
		e.POST("/test", okHandler)

		req := httptest.NewRequest(http.MethodOptions, "/test", nil)
		req.Header.Set("Origin", "https://anywhere.example")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "600", rec.Header().Get("Access-Control-Max-Age"))
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST")
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Authorization")
	})
}

func TestContentTypeGate(t *testing.T) {
	e := echo.New()
	e.Use(contentTypeGate())
	e.POST("/test", okHandler)
	e.GET("/test", okHandler)

	t.Run("rejects non-json posts", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader("x=1"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
		assert.Contains(t, rec.Body.String(), "unsupported_media_type")
	})

	t.Run("accepts json with charset", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader("{}"))
		req.Header.Set("Content-Type", "application/json; charset=utf-8")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("ignores body-less methods", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	limiter := newIPLimiter(2, 60)
	e := echo.New()
	e.Use(rateLimitMiddleware(limiter))
	e.GET("/test", okHandler)

	do := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.RemoteAddr = "203.0.113.7:4242"
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	first := do()
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "2", first.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Remaining"))

	second := do()
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "0", second.Header().Get("X-RateLimit-Remaining"))

	third := do()
	assert.Equal(t, http.StatusTooManyRequests, third.Code)
	assert.NotEmpty(t, third.Header().Get("Retry-After"))
	assert.Contains(t, third.Body.String(), "rate_limited")
}

func TestIPLimiter(t *testing.T) {
	t.Run("windows are independent per ip", func(t *testing.T) {
		l := newIPLimiter(1, 60)
		now := time.Now()

		allowed, _, _ := l.Allow("10.0.0.1", now)
		assert.True(t, allowed)
		allowed, _, _ = l.Allow("10.0.0.2", now)
		assert.True(t, allowed)
		allowed, remaining, _ := l.Allow("10.0.0.1", now)
		assert.False(t, allowed)
		assert.Equal(t, 0, remaining)
	})

	t.Run("window turnover resets the count", func(t *testing.T) {
		l := newIPLimiter(1, 60)
		base := time.Unix(1_700_000_000, 0)

		allowed, _, _ := l.Allow("10.0.0.1", base)
		assert.True(t, allowed)
		allowed, _, _ = l.Allow("10.0.0.1", base.Add(61*time.Second))
		assert.True(t, allowed)
	})

	t.Run("sweep drops stale windows", func(t *testing.T) {
		l := newIPLimiter(1, 60)
		base := time.Unix(1_700_000_000, 0)
		l.Allow("10.0.0.1", base)
		l.Allow("10.0.0.1", base.Add(120*time.Second))

		l.sweep(base.Add(120 * time.Second))

		l.mu.Lock()
		defer l.mu.Unlock()
		assert.Len(t, l.buckets, 1)
	})

	t.Run("zero limit disables", func(t *testing.T) {
		l := newIPLimiter(0, 60)
		for i := 0; i < 100; i++ {
			allowed, _, _ := l.Allow("10.0.0.1", time.Now())
			assert.True(t, allowed)
		}
	})
}

func TestClientIP(t *testing.T) {
	e := echo.New()
	var got string
	e.GET("/test", func(c *echo.Context) error {
		got = clientIP(c)
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.RemoteAddr = "198.51.100.9:51234"
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, "198.51.100.9", got)

	req = httptest.NewRequest(http.MethodGet, "/test", nil)
	req.RemoteAddr = "[2001:db8::1]:443"
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, "2001:db8::1", got)
}
