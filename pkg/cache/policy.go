package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/swarmshield/swarmshield/ent"
	"github.com/swarmshield/swarmshield/ent/detectionrule"
	"github.com/swarmshield/swarmshield/ent/policyrule"
	"github.com/swarmshield/swarmshield/pkg/events"
)

// reloadTimeout bounds one background rule reload.
const reloadTimeout = 10 * time.Second

// RuleSet is one workspace's active rules: enabled policy rules in priority
// order and enabled detection rules. Slices are shared snapshots; callers
// must not mutate them.
type RuleSet struct {
	PolicyRules    []*ent.PolicyRule
	DetectionRules []*ent.DetectionRule
	LoadedAt       time.Time
}

// PolicyCache keeps each workspace's rule set in memory. Change notifications
// do not reload immediately: a per-workspace debounce timer coalesces bursts
// of rule edits into a single reload after the quiet period.
type PolicyCache struct {
	client   *ent.Client
	debounce time.Duration

	mu       sync.RWMutex
	sets     map[uuid.UUID]*RuleSet
	timers   map[uuid.UUID]*time.Timer
	stopped  bool
	reloadWG sync.WaitGroup
}

// NewPolicyCache creates the cache with the given debounce window.
func NewPolicyCache(client *ent.Client, debounce time.Duration) *PolicyCache {
	return &PolicyCache{
		client:   client,
		debounce: debounce,
		sets:     make(map[uuid.UUID]*RuleSet),
		timers:   make(map[uuid.UUID]*time.Timer),
	}
}

// Rules returns the workspace's rule set, loading it on first use.
func (c *PolicyCache) Rules(ctx context.Context, workspaceID uuid.UUID) (*RuleSet, error) {
	c.mu.RLock()
	set, ok := c.sets[workspaceID]
	c.mu.RUnlock()
	if ok {
		return set, nil
	}
	return c.load(ctx, workspaceID)
}

// RegisterInvalidation subscribes the cache to rule change channels. Both
// policy and detection edits debounce into the same per-workspace reload.
func (c *PolicyCache) RegisterInvalidation(sub Subscriber) error {
	if err := sub.Subscribe(events.TopicPolicyRulesChanged, c.onRulesChanged); err != nil {
		return err
	}
	return sub.Subscribe(events.TopicDetectionsChanged, c.onRulesChanged)
}

// Stop cancels pending debounce timers and waits for in-flight reloads.
func (c *PolicyCache) Stop() {
	c.mu.Lock()
	c.stopped = true
	for id, t := range c.timers {
		t.Stop()
		delete(c.timers, id)
	}
	c.mu.Unlock()
	c.reloadWG.Wait()
}

func (c *PolicyCache) onRulesChanged(payload []byte) {
	var msg events.RulesChangedPayload
	if err := json.Unmarshal(payload, &msg); err != nil {
		slog.Warn("Malformed rules change payload, ignoring", "error", err)
		return
	}
	workspaceID, err := uuid.Parse(msg.WorkspaceID)
	if err != nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stopped {
		return
	}

	// A workspace never cached yet has nothing to refresh; first use loads.
	if _, cached := c.sets[workspaceID]; !cached {
		return
	}

	if t, ok := c.timers[workspaceID]; ok {
		t.Reset(c.debounce)
		return
	}
	c.timers[workspaceID] = time.AfterFunc(c.debounce, func() {
		c.fireReload(workspaceID)
	})
}

func (c *PolicyCache) fireReload(workspaceID uuid.UUID) {
	c.mu.Lock()
	delete(c.timers, workspaceID)
	if c.stopped {
		c.mu.Unlock()
		return
	}
	c.reloadWG.Add(1)
	c.mu.Unlock()

	defer c.reloadWG.Done()

	ctx, cancel := context.WithTimeout(context.Background(), reloadTimeout)
	defer cancel()
	if _, err := c.load(ctx, workspaceID); err != nil {
		// Keep the stale set; serving old rules beats serving none.
		slog.Error("Rule reload failed, keeping previous rule set",
			"workspace_id", workspaceID,
			"error", err)
	}
}

func (c *PolicyCache) load(ctx context.Context, workspaceID uuid.UUID) (*RuleSet, error) {
	rules, err := c.client.PolicyRule.Query().
		Where(
			policyrule.WorkspaceID(workspaceID),
			policyrule.Enabled(true),
		).
		Order(ent.Desc(policyrule.FieldPriority)).
		All(ctx)
	if err != nil {
		return nil, err
	}

	detections, err := c.client.DetectionRule.Query().
		Where(
			detectionrule.WorkspaceID(workspaceID),
			detectionrule.Enabled(true),
		).
		All(ctx)
	if err != nil {
		return nil, err
	}

	set := &RuleSet{
		PolicyRules:    rules,
		DetectionRules: detections,
		LoadedAt:       time.Now(),
	}

	c.mu.Lock()
	c.sets[workspaceID] = set
	c.mu.Unlock()

	slog.Debug("Rule set loaded",
		"workspace_id", workspaceID,
		"policy_rules", len(rules),
		"detection_rules", len(detections))
	return set, nil
}
