// Package cache holds the in-memory read paths that keep the hot ingestion
// pipeline off the database: API key identity, policy rules, dashboard
// permissions, and decrypted workspace LLM keys. All caches are invalidated
// through PostgreSQL NOTIFY messages and fall back to lazy reloads.
package cache

import "github.com/swarmshield/swarmshield/pkg/events"

// Subscriber registers invalidation handlers on pubsub channels. Satisfied by
// *events.Listener.
type Subscriber interface {
	Subscribe(channel string, fn events.HandlerFunc) error
}
