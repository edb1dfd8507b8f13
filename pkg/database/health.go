package database

import (
	"context"
	"time"
)

// PoolStats is a point-in-time snapshot of connection pool pressure, taken
// alongside the liveness ping. It is logged, never exposed on the wire.
type PoolStats struct {
	Open         int
	InUse        int
	Idle         int
	WaitCount    int64
	WaitDuration time.Duration
	PingDuration time.Duration
}

// Health pings the database and snapshots the pool. A non-nil error means
// the database is unreachable; the snapshot is valid either way.
func (c *Client) Health(ctx context.Context) (PoolStats, error) {
	start := time.Now()
	err := c.db.PingContext(ctx)
	stats := c.db.Stats()
	return PoolStats{
		Open:         stats.OpenConnections,
		InUse:        stats.InUse,
		Idle:         stats.Idle,
		WaitCount:    stats.WaitCount,
		WaitDuration: stats.WaitDuration,
		PingDuration: time.Since(start),
	}, err
}
