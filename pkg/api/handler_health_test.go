package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"

	"github.com/swarmshield/swarmshield/pkg/config"
	"github.com/swarmshield/swarmshield/pkg/database"
	"github.com/swarmshield/swarmshield/pkg/worker"
)

type fakeHealth struct {
	err error
}

func (f fakeHealth) Health(ctx context.Context) (database.PoolStats, error) {
	return database.PoolStats{Open: 1, InUse: 1}, f.err
}

func healthRequest(t *testing.T, deps Deps) *httptest.ResponseRecorder {
	t.Helper()
	srv := NewServer(deps, config.DefaultServerConfig())
	e := echo.New()
	srv.Register(e)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHealthHandler(t *testing.T) {
	t.Run("database and pool up", func(t *testing.T) {
		pool := worker.NewPool("health-test", 1, 1)
		pool.Start(context.Background())
		t.Cleanup(pool.Stop)

		rec := healthRequest(t, Deps{Health: fakeHealth{}, Pool: pool})
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	})

	t.Run("database unreachable", func(t *testing.T) {
		rec := healthRequest(t, Deps{Health: fakeHealth{err: errors.New("connection refused")}})
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"unavailable"`)
		assert.NotContains(t, rec.Body.String(), "connection refused")
	})

	t.Run("worker pool stopped", func(t *testing.T) {
		pool := worker.NewPool("health-test", 1, 1)
		pool.Start(context.Background())
		pool.Stop()

		rec := healthRequest(t, Deps{Health: fakeHealth{}, Pool: pool})
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"degraded"`)
	})
}
