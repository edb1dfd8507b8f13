package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/swarmshield/swarmshield/pkg/database"
	"github.com/swarmshield/swarmshield/pkg/version"
)

// healthPingTimeout bounds the database ping so a stalled pool cannot hang
// the probe.
const healthPingTimeout = 2 * time.Second

// healthSource reports database liveness. Satisfied by *database.Client.
type healthSource interface {
	Health(ctx context.Context) (database.PoolStats, error)
}

// healthHandler handles GET /api/v1/health. Unauthenticated and minimal:
// the response carries a status word only, never runtime versions, database
// state, node identity or internal addresses. Pool pressure goes to the log.
func (s *Server) healthHandler(c *echo.Context) error {
	status := "ok"

	if s.health != nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), healthPingTimeout)
		defer cancel()
		stats, err := s.health.Health(ctx)
		if err != nil {
			slog.Warn("Health check could not reach the database", "error", err)
			return c.JSON(http.StatusServiceUnavailable, HealthResponse{
				Status:    "unavailable",
				Version:   version.GitCommit,
				Timestamp: time.Now().UTC(),
			})
		}
		slog.Debug("Health check",
			"ping_ms", stats.PingDuration.Milliseconds(),
			"pool_open", stats.Open,
			"pool_in_use", stats.InUse,
			"pool_wait_count", stats.WaitCount)
	}

	if s.pool != nil && !s.pool.Healthy() {
		status = "degraded"
	}

	return c.JSON(http.StatusOK, HealthResponse{
		Status:    status,
		Version:   version.GitCommit,
		Timestamp: time.Now().UTC(),
	})
}
