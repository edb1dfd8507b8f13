package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmshield/swarmshield/ent/policyrule"
	"github.com/swarmshield/swarmshield/pkg/cache"
	"github.com/swarmshield/swarmshield/pkg/services"
	testdb "github.com/swarmshield/swarmshield/test/database"
)

// Rule sets load in descending priority so the engine sees (and reports)
// higher-priority rules first.
func TestPolicyCache_RulesOrderedByPriorityDescending(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	ws, err := services.NewWorkspaceService(client.Client, nil, nil).Create(ctx, "acme")
	require.NoError(t, err)

	ruleSvc := services.NewRuleService(client.Client, nil)
	disabled := false
	for _, r := range []struct {
		name     string
		priority int
		enabled  *bool
	}{
		{"low", 10, nil},
		{"high", 100, nil},
		{"mid", 50, nil},
		{"off", 200, &disabled},
	} {
		_, err := ruleSvc.CreatePolicyRule(ctx, services.CreatePolicyRuleInput{
			WorkspaceID: ws.ID,
			Name:        r.name,
			RuleType:    policyrule.RuleTypeBlocklist,
			Action:      policyrule.ActionBlock,
			Priority:    r.priority,
			Config:      map[string]any{"field": "source_ip", "values": []any{"10.0.0.1"}},
			Enabled:     r.enabled,
		})
		require.NoError(t, err)
	}

	cache := cache.NewPolicyCache(client.Client, 10*time.Millisecond)
	defer cache.Stop()

	set, err := cache.Rules(ctx, ws.ID)
	require.NoError(t, err)
	require.Len(t, set.PolicyRules, 3, "disabled rules stay out of the set")

	names := make([]string, 0, len(set.PolicyRules))
	for _, rule := range set.PolicyRules {
		names = append(names, rule.Name)
	}
	assert.Equal(t, []string{"high", "mid", "low"}, names)
}
