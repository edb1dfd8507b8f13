package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmshield/swarmshield/pkg/services"
	testdb "github.com/swarmshield/swarmshield/test/database"
)

// A workspace with llm_budget_limit_cents in its settings must be bounded by
// that value, not by the server-wide default. The key is spelled out here so
// a renamed constant cannot silently detach configured workspaces from their
// cap.
func TestPGLedger_ConfiguredWorkspaceLimit(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	svc := services.NewWorkspaceService(client.Client, nil, nil)
	ws, err := svc.Create(ctx, "capped")
	require.NoError(t, err)
	_, err = client.Workspace.UpdateOneID(ws.ID).
		SetSettings(map[string]any{"llm_budget_limit_cents": float64(30)}).
		Save(ctx)
	require.NoError(t, err)

	ledger := NewPGLedger(client.DB(), svc, 50_000)

	for i := 0; i < 3; i++ {
		ok, err := ledger.Reserve(ctx, ws.ID, 10)
		require.NoError(t, err)
		require.True(t, ok, "reservation %d fits the 30 cent cap", i+1)
	}

	ok, err := ledger.Reserve(ctx, ws.ID, 10)
	require.NoError(t, err)
	assert.False(t, ok, "the configured cap, not the default, bounds spend")

	var spend int64
	require.NoError(t, client.DB().QueryRowContext(ctx,
		`SELECT llm_spend_cents FROM workspaces WHERE id = $1`, ws.ID).Scan(&spend))
	assert.Equal(t, int64(30), spend, "rejected reservation is rolled back")
}

func TestPGLedger_DefaultLimitWhenUnset(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	svc := services.NewWorkspaceService(client.Client, nil, nil)
	ws, err := svc.Create(ctx, "uncapped")
	require.NoError(t, err)

	ledger := NewPGLedger(client.DB(), svc, 25)

	ok, err := ledger.Reserve(ctx, ws.ID, 20)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = ledger.Reserve(ctx, ws.ID, 20)
	require.NoError(t, err)
	assert.False(t, ok, "default cap applies when the workspace sets none")
}
