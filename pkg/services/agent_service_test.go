package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmshield/swarmshield/ent/registeredagent"
)

func TestStatusTransitionAllowed(t *testing.T) {
	tests := []struct {
		current registeredagent.Status
		next    registeredagent.Status
		want    bool
	}{
		{registeredagent.StatusActive, registeredagent.StatusSuspended, true},
		{registeredagent.StatusActive, registeredagent.StatusRevoked, true},
		{registeredagent.StatusSuspended, registeredagent.StatusActive, false},
		{registeredagent.StatusSuspended, registeredagent.StatusRevoked, true},
		{registeredagent.StatusRevoked, registeredagent.StatusActive, false},
		{registeredagent.StatusRevoked, registeredagent.StatusSuspended, false},
		// Self-transitions are no-ops, not errors.
		{registeredagent.StatusActive, registeredagent.StatusActive, true},
		{registeredagent.StatusRevoked, registeredagent.StatusRevoked, true},
	}

	for _, tt := range tests {
		got := statusTransitionAllowed(tt.current, tt.next)
		assert.Equal(t, tt.want, got, "%s -> %s", tt.current, tt.next)
	}
}

func TestGenerateAPIKey(t *testing.T) {
	raw1, hash1, err := generateAPIKey()
	require.NoError(t, err)
	raw2, hash2, err := generateAPIKey()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(raw1, "ssk_"))
	assert.Len(t, raw1, 4+64) // prefix + 32 bytes hex
	assert.NotEqual(t, raw1, raw2)
	assert.NotEqual(t, hash1, hash2)

	// The stored hash matches what the auth path computes from the raw key.
	assert.Equal(t, hash1, HashAPIKey(raw1))
	assert.NotContains(t, hash1, "ssk_")
}
