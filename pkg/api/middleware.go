package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	echo "github.com/labstack/echo/v5"
)

// securityHeaders returns middleware that sets standard security response
// headers on every response, error paths included.
func securityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Frame-Options", "DENY")
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("Cache-Control", "no-store")
			return next(c)
		}
	}
}

// corsMiddleware reflects the configured origins and answers preflights with
// 204. A wildcard config reflects "*"; a list reflects the request origin
// when listed, else the first entry.
func corsMiddleware(allowedOrigins []string, maxAgeSeconds int) echo.MiddlewareFunc {
	wildcard := len(allowedOrigins) == 1 && allowedOrigins[0] == "*"

	resolve := func(origin string) string {
		if wildcard {
			return "*"
		}
		for _, allowed := range allowedOrigins {
			if allowed == origin {
				return origin
			}
		}
		if len(allowedOrigins) > 0 {
			return allowedOrigins[0]
		}
		return ""
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			h := c.Response().Header()
			if origin := resolve(c.Request().Header.Get("Origin")); origin != "" {
				h.Set("Access-Control-Allow-Origin", origin)
			}

			if c.Request().Method == http.MethodOptions {
				h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
				h.Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
				h.Set("Access-Control-Max-Age", strconv.Itoa(maxAgeSeconds))
				return c.NoContent(http.StatusNoContent)
			}
			return next(c)
		}
	}
}

// contentTypeGate rejects body-carrying requests that are not JSON before
// any handler reads them.
func contentTypeGate() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			switch c.Request().Method {
			case http.MethodPost, http.MethodPut, http.MethodPatch:
				ct := c.Request().Header.Get("Content-Type")
				if !strings.HasPrefix(strings.ToLower(ct), "application/json") {
					return errorJSON(c, http.StatusUnsupportedMediaType, "unsupported_media_type", "Content-Type must be application/json")
				}
			}
			return next(c)
		}
	}
}

// rateLimitMiddleware enforces the per-IP sliding window and exposes the
// quota headers on every response.
func rateLimitMiddleware(limiter *ipLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			allowed, remaining, retryAfter := limiter.Allow(clientIP(c), time.Now())

			h := c.Response().Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(limiter.limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			if !allowed {
				h.Set("Retry-After", strconv.FormatInt(retryAfter, 10))
				return errorJSON(c, http.StatusTooManyRequests, "rate_limited", "rate limit exceeded")
			}
			return next(c)
		}
	}
}

// clientIP extracts the connection's network address without the port. The
// gateway trusts the socket, not forwarding headers.
func clientIP(c *echo.Context) string {
	addr := c.Request().RemoteAddr
	if i := strings.LastIndex(addr, ":"); i > 0 && !strings.HasSuffix(addr, "]") {
		host := addr[:i]
		return strings.Trim(host, "[]")
	}
	return addr
}
