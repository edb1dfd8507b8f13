package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmshield/swarmshield/ent"
	"github.com/swarmshield/swarmshield/ent/agentevent"
	"github.com/swarmshield/swarmshield/ent/agentinstance"
	"github.com/swarmshield/swarmshield/ent/analysissession"
	"github.com/swarmshield/swarmshield/ent/deliberationmessage"
	"github.com/swarmshield/swarmshield/ent/registeredagent"
	"github.com/swarmshield/swarmshield/ent/verdict"
	"github.com/swarmshield/swarmshield/ent/workspace"
	"github.com/swarmshield/swarmshield/pkg/crypto"
	testdb "github.com/swarmshield/swarmshield/test/database"
)

func testKeybox(t *testing.T) *crypto.Keybox {
	t.Helper()
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i)
	}
	kb, err := crypto.NewKeybox(key)
	require.NoError(t, err)
	return kb
}

// newFixture provisions a workspace with one registered agent.
func newFixture(t *testing.T, client *ent.Client) (*ent.Workspace, *RegisteredKey) {
	t.Helper()
	ctx := context.Background()

	ws, err := NewWorkspaceService(client, testKeybox(t), nil).Create(ctx, "acme")
	require.NoError(t, err)

	key, err := NewAgentService(client, nil).Register(ctx, RegisterAgentInput{
		WorkspaceID: ws.ID,
		Name:        "crawler-1",
		AgentType:   registeredagent.AgentTypeToolAgent,
	})
	require.NoError(t, err)

	return ws, key
}

func TestWorkspaceService(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewWorkspaceService(client.Client, testKeybox(t), nil)
	ctx := context.Background()

	t.Run("create requires a name", func(t *testing.T) {
		_, err := svc.Create(ctx, "")
		assert.True(t, IsValidationError(err))
	})

	t.Run("create and fetch", func(t *testing.T) {
		ws, err := svc.Create(ctx, "acme")
		require.NoError(t, err)
		assert.Equal(t, workspace.StatusActive, ws.Status)

		got, err := svc.Get(ctx, ws.ID)
		require.NoError(t, err)
		assert.Equal(t, "acme", got.Name)
	})

	t.Run("status transitions", func(t *testing.T) {
		ws, err := svc.Create(ctx, "to-archive")
		require.NoError(t, err)

		updated, err := svc.SetStatus(ctx, ws.ID, workspace.StatusArchived)
		require.NoError(t, err)
		assert.Equal(t, workspace.StatusArchived, updated.Status)
	})

	t.Run("budget falls back when unset", func(t *testing.T) {
		ws, err := svc.Create(ctx, "budgetless")
		require.NoError(t, err)

		limit, err := svc.BudgetCents(ctx, ws.ID, 5000)
		require.NoError(t, err)
		assert.Equal(t, int64(5000), limit)
	})

	t.Run("explicit budget wins", func(t *testing.T) {
		ws, err := svc.Create(ctx, "budgeted")
		require.NoError(t, err)
		_, err = client.Workspace.UpdateOneID(ws.ID).
			SetSettings(map[string]any{SettingBudgetCents: float64(123)}).
			Save(ctx)
		require.NoError(t, err)

		limit, err := svc.BudgetCents(ctx, ws.ID, 5000)
		require.NoError(t, err)
		assert.Equal(t, int64(123), limit)
	})

	t.Run("llm key is sealed, never stored raw", func(t *testing.T) {
		ws, err := svc.Create(ctx, "sealed")
		require.NoError(t, err)

		require.NoError(t, svc.SetLLMKey(ctx, ws.ID, "sk-raw-secret"))

		stored, err := client.Workspace.Get(ctx, ws.ID)
		require.NoError(t, err)
		for _, v := range stored.Settings {
			if s, ok := v.(string); ok {
				assert.NotContains(t, s, "sk-raw-secret")
			}
		}
	})

	t.Run("member permissions", func(t *testing.T) {
		ws, err := svc.Create(ctx, "team")
		require.NoError(t, err)
		_, err = client.Workspace.UpdateOneID(ws.ID).
			SetSettings(map[string]any{
				SettingMembers: map[string]any{
					"user-1": []any{"events:read", "rules:write"},
				},
			}).
			Save(ctx)
		require.NoError(t, err)

		perms, err := svc.MemberPermissions(ctx, "user-1", ws.ID.String())
		require.NoError(t, err)
		assert.Equal(t, []string{"events:read", "rules:write"}, perms)

		none, err := svc.MemberPermissions(ctx, "stranger", ws.ID.String())
		require.NoError(t, err)
		assert.Empty(t, none)
	})
}

func TestAgentService_Lifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewAgentService(client.Client, nil)
	ctx := context.Background()
	ws, key := newFixture(t, client.Client)

	t.Run("registration returns the raw key once", func(t *testing.T) {
		assert.True(t, len(key.RawKey) > apiKeyPrefixLen)
		assert.Equal(t, key.RawKey[:apiKeyPrefixLen], key.Agent.APIKeyPrefix)
		assert.Equal(t, HashAPIKey(key.RawKey), key.Agent.APIKeyHash)
	})

	t.Run("revocation is terminal", func(t *testing.T) {
		reg, err := svc.Register(ctx, RegisterAgentInput{WorkspaceID: ws.ID, Name: "doomed"})
		require.NoError(t, err)

		_, err = svc.SetStatus(ctx, reg.Agent.ID, registeredagent.StatusRevoked)
		require.NoError(t, err)

		_, err = svc.SetStatus(ctx, reg.Agent.ID, registeredagent.StatusActive)
		assert.ErrorIs(t, err, ErrInvalidTransition)

		_, err = svc.RegenerateKey(ctx, reg.Agent.ID)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("suspension cannot be lifted directly", func(t *testing.T) {
		reg, err := svc.Register(ctx, RegisterAgentInput{WorkspaceID: ws.ID, Name: "benched"})
		require.NoError(t, err)

		_, err = svc.SetStatus(ctx, reg.Agent.ID, registeredagent.StatusSuspended)
		require.NoError(t, err)

		_, err = svc.SetStatus(ctx, reg.Agent.ID, registeredagent.StatusActive)
		assert.ErrorIs(t, err, ErrInvalidTransition)

		_, err = svc.SetStatus(ctx, reg.Agent.ID, registeredagent.StatusRevoked)
		require.NoError(t, err)
	})

	t.Run("regenerate replaces the hash", func(t *testing.T) {
		reg, err := svc.Register(ctx, RegisterAgentInput{WorkspaceID: ws.ID, Name: "rotating"})
		require.NoError(t, err)

		fresh, err := svc.RegenerateKey(ctx, reg.Agent.ID)
		require.NoError(t, err)
		assert.NotEqual(t, reg.Agent.APIKeyHash, fresh.Agent.APIKeyHash)
		assert.NotEqual(t, reg.RawKey, fresh.RawKey)
	})

	t.Run("touch accumulates", func(t *testing.T) {
		reg, err := svc.Register(ctx, RegisterAgentInput{WorkspaceID: ws.ID, Name: "busy"})
		require.NoError(t, err)

		now := time.Now()
		require.NoError(t, svc.Touch(ctx, reg.Agent.ID, now))
		require.NoError(t, svc.Touch(ctx, reg.Agent.ID, now.Add(time.Second)))

		got, err := svc.Get(ctx, reg.Agent.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), got.EventCount)
		require.NotNil(t, got.LastSeenAt)
	})
}

func TestEventService(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewEventService(client.Client)
	ctx := context.Background()
	ws, key := newFixture(t, client.Client)

	ingest := func(content string) *ent.AgentEvent {
		event, _, err := svc.Ingest(ctx, IngestEventInput{
			WorkspaceID: ws.ID,
			AgentID:     key.Agent.ID,
			EventType:   agentevent.EventTypeAction,
			Content:     content,
			SourceIP:    "203.0.113.9",
		})
		require.NoError(t, err)
		return event
	}

	t.Run("validation", func(t *testing.T) {
		_, _, err := svc.Ingest(ctx, IngestEventInput{
			WorkspaceID: ws.ID, AgentID: key.Agent.ID,
			EventType: agentevent.EventTypeAction,
		})
		assert.True(t, IsValidationError(err), "empty content")

		_, _, err = svc.Ingest(ctx, IngestEventInput{
			WorkspaceID: ws.ID, AgentID: key.Agent.ID,
			EventType: "bogus", Content: "x",
		})
		assert.True(t, IsValidationError(err), "unknown event type")

		_, _, err = svc.Ingest(ctx, IngestEventInput{
			WorkspaceID: ws.ID, AgentID: key.Agent.ID,
			EventType: agentevent.EventTypeAction, Content: "x",
			Severity: "apocalyptic",
		})
		assert.True(t, IsValidationError(err), "unknown severity")
	})

	t.Run("payload size is measured on the json encoding", func(t *testing.T) {
		_, size, err := svc.Ingest(ctx, IngestEventInput{
			WorkspaceID: ws.ID, AgentID: key.Agent.ID,
			EventType: agentevent.EventTypeAction, Content: "x",
			SourceIP: "203.0.113.9",
			Payload:  map[string]any{"k": "v"},
		})
		require.NoError(t, err)
		assert.Equal(t, len(`{"k":"v"}`), size)
	})

	t.Run("events are workspace scoped", func(t *testing.T) {
		event := ingest("reading /etc/passwd")

		got, err := svc.Get(ctx, ws.ID, event.ID)
		require.NoError(t, err)
		assert.Equal(t, agentevent.StatusPending, got.Status)

		otherWS, err := NewWorkspaceService(client.Client, nil, nil).Create(ctx, "other")
		require.NoError(t, err)
		_, err = svc.Get(ctx, otherWS.ID, event.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("record evaluation", func(t *testing.T) {
		event := ingest("curl evil.example")

		updated, err := svc.RecordEvaluation(ctx, event.ID, agentevent.StatusBlocked,
			map[string]any{"action": "block"}, "no-exfil")
		require.NoError(t, err)
		assert.Equal(t, agentevent.StatusBlocked, updated.Status)
		assert.NotNil(t, updated.EvaluatedAt)
		require.NotNil(t, updated.FlaggedReason)
		assert.Equal(t, "no-exfil", *updated.FlaggedReason)
		assert.Equal(t, "block", updated.EvaluationResult["action"])
	})
}

func TestSessionService(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSessionService(client.Client)
	ctx := context.Background()
	ws, key := newFixture(t, client.Client)

	def, err := client.AgentDefinition.Create().
		SetWorkspaceID(ws.ID).
		SetName("security analyst").
		SetRole("security").
		SetSystemPrompt("You review agent actions.").
		Save(ctx)
	require.NoError(t, err)

	wf, err := client.Workflow.Create().
		SetWorkspaceID(ws.ID).
		SetName("review").
		Save(ctx)
	require.NoError(t, err)

	newEvent := func(t *testing.T) *ent.AgentEvent {
		event, _, err := NewEventService(client.Client).Ingest(ctx, IngestEventInput{
			WorkspaceID: ws.ID, AgentID: key.Agent.ID,
			EventType: agentevent.EventTypeAction, Content: "suspicious action",
			SourceIP: "203.0.113.9",
		})
		require.NoError(t, err)
		return event
	}

	newSession := func(t *testing.T, expiresAt *time.Time) (*ent.AnalysisSession, []*ent.AgentInstance) {
		session, instances, err := svc.Create(ctx, CreateSessionInput{
			WorkspaceID: ws.ID,
			EventID:     newEvent(t).ID,
			WorkflowID:  wf.ID,
			Content:     "suspicious action",
			ExpiresAt:   expiresAt,
			Instances: []InstanceSpec{
				{AgentDefinitionID: def.ID, Role: "security"},
				{AgentDefinitionID: def.ID, Role: "compliance"},
			},
		})
		require.NoError(t, err)
		return session, instances
	}

	t.Run("create stores hash and instances", func(t *testing.T) {
		session, instances, err := svc.Create(ctx, CreateSessionInput{
			WorkspaceID: ws.ID,
			EventID:     newEvent(t).ID,
			WorkflowID:  wf.ID,
			Content:     "suspicious action",
			Instances:   []InstanceSpec{{AgentDefinitionID: def.ID, Role: "security"}},
		})
		require.NoError(t, err)
		assert.Equal(t, analysissession.StatusPending, session.Status)
		require.NotNil(t, session.InputContentHash)
		assert.Equal(t, HashContent("suspicious action"), *session.InputContentHash)
		require.Len(t, instances, 1)
		assert.Equal(t, agentinstance.StatusPending, instances[0].Status)
	})

	t.Run("create requires instances", func(t *testing.T) {
		_, _, err := svc.Create(ctx, CreateSessionInput{
			WorkspaceID: ws.ID, EventID: newEvent(t).ID, WorkflowID: wf.ID,
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("status stamps lifecycle times", func(t *testing.T) {
		session, _ := newSession(t, nil)

		require.NoError(t, svc.SetStatus(ctx, session.ID, analysissession.StatusAnalyzing, ""))
		mid, err := svc.Get(ctx, ws.ID, session.ID)
		require.NoError(t, err)
		assert.NotNil(t, mid.StartedAt)
		assert.Nil(t, mid.CompletedAt)

		require.NoError(t, svc.SetStatus(ctx, session.ID, analysissession.StatusFailed, "boom"))
		done, err := svc.Get(ctx, ws.ID, session.ID)
		require.NoError(t, err)
		assert.NotNil(t, done.CompletedAt)
		require.NotNil(t, done.ErrorMessage)
		assert.Equal(t, "boom", *done.ErrorMessage)
	})

	t.Run("recent messages are chronological and bounded", func(t *testing.T) {
		session, instances := newSession(t, nil)

		for i := 0; i < 5; i++ {
			_, err := svc.AddMessage(ctx, session.ID, instances[0].ID,
				deliberationmessage.MessageTypeArgument, 2, string(rune('a'+i)))
			require.NoError(t, err)
		}

		msgs, err := svc.RecentMessages(ctx, session.ID, 3)
		require.NoError(t, err)
		require.Len(t, msgs, 3)
		assert.Equal(t, "c", msgs[0].Content)
		assert.Equal(t, "e", msgs[2].Content)
	})

	t.Run("votes and verdict", func(t *testing.T) {
		session, instances := newSession(t, nil)

		require.NoError(t, svc.SetInstanceVote(ctx, instances[0].ID, agentinstance.VoteBlock, 0.9))
		require.NoError(t, svc.SetInstanceVote(ctx, instances[1].ID, agentinstance.VoteAllow, 0.4))

		stored, err := svc.Instances(ctx, session.ID)
		require.NoError(t, err)
		require.Len(t, stored, 2)
		require.NotNil(t, stored[0].Vote)
		assert.Equal(t, agentinstance.VoteBlock, *stored[0].Vote)

		v, err := svc.CreateVerdict(ctx, VerdictInput{
			SessionID:        session.ID,
			WorkspaceID:      ws.ID,
			Decision:         verdict.DecisionBlock,
			Confidence:       0.9,
			Reasoning:        "block wins",
			StrategyUsed:     "majority",
			ConsensusReached: true,
		})
		require.NoError(t, err)
		assert.Equal(t, verdict.DecisionBlock, v.Decision)

		// The unique session_id constraint rejects a second verdict.
		_, err = svc.CreateVerdict(ctx, VerdictInput{
			SessionID:   session.ID,
			WorkspaceID: ws.ID,
			Decision:    verdict.DecisionAllow,
		})
		assert.True(t, errors.Is(err, ErrAlreadyExists))

		got, err := svc.GetVerdict(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, "block wins", got.Reasoning)
	})

	t.Run("mark abandoned fails only non-terminal sessions", func(t *testing.T) {
		stale, _ := newSession(t, nil)
		finished, _ := newSession(t, nil)
		require.NoError(t, svc.SetStatus(ctx, finished.ID, analysissession.StatusCompleted, ""))

		// A future cutoff catches everything still non-terminal.
		n, err := svc.MarkAbandoned(ctx, time.Now().Add(time.Hour))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 1)

		got, err := svc.Get(ctx, ws.ID, stale.ID)
		require.NoError(t, err)
		assert.Equal(t, analysissession.StatusFailed, got.Status)

		still, err := svc.Get(ctx, ws.ID, finished.ID)
		require.NoError(t, err)
		assert.Equal(t, analysissession.StatusCompleted, still.Status)
	})

	t.Run("overdue wipes", func(t *testing.T) {
		past := time.Now().Add(-time.Minute)
		expired, instances := newSession(t, &past)

		due, err := svc.OverdueWipes(ctx, time.Now())
		require.NoError(t, err)
		ids := make([]uuid.UUID, 0, len(due))
		for _, s := range due {
			ids = append(ids, s.ID)
		}
		assert.Contains(t, ids, expired.ID)

		// Terminating the instances marks the session as wiped.
		for _, inst := range instances {
			_, err := client.AgentInstance.UpdateOneID(inst.ID).
				SetTerminatedAt(time.Now()).
				Save(ctx)
			require.NoError(t, err)
		}
		due, err = svc.OverdueWipes(ctx, time.Now())
		require.NoError(t, err)
		for _, s := range due {
			assert.NotEqual(t, expired.ID, s.ID)
		}
	})
}

func TestWorkflowService(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewWorkflowService(client.Client)
	ctx := context.Background()
	ws, _ := newFixture(t, client.Client)

	def, err := client.AgentDefinition.Create().
		SetWorkspaceID(ws.ID).
		SetName("security analyst").
		SetRole("security").
		SetSystemPrompt("You review agent actions.").
		Save(ctx)
	require.NoError(t, err)

	consensus, err := client.ConsensusPolicy.Create().
		SetWorkspaceID(ws.ID).
		SetName("strict").
		SetStrategy("supermajority").
		SetThreshold(0.75).
		Save(ctx)
	require.NoError(t, err)

	ghostCfg, err := client.GhostProtocolConfig.Create().
		SetWorkspaceID(ws.ID).
		SetName("ephemeral").
		SetWipeFields([]string{"input_content", "deliberation_messages"}).
		Save(ctx)
	require.NoError(t, err)

	onMatched, err := client.Workflow.Create().
		SetWorkspaceID(ws.ID).
		SetName("a-matched").
		SetTriggerOn("matched").
		SetConsensusPolicyID(consensus.ID).
		SetGhostProtocolConfigID(ghostCfg.ID).
		Save(ctx)
	require.NoError(t, err)

	onAll, err := client.Workflow.Create().
		SetWorkspaceID(ws.ID).
		SetName("b-all").
		SetTriggerOn("all").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Workflow.Create().
		SetWorkspaceID(ws.ID).
		SetName("c-manual").
		SetTriggerOn("manual").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Workflow.Create().
		SetWorkspaceID(ws.ID).
		SetName("d-disabled").
		SetTriggerOn("matched").
		SetEnabled(false).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.WorkflowStep.Create().
		SetWorkflowID(onMatched.ID).
		SetAgentDefinitionID(def.ID).
		SetStepIndex(0).
		Save(ctx)
	require.NoError(t, err)

	t.Run("matched trigger includes all-workflows", func(t *testing.T) {
		found, err := svc.FindForTrigger(ctx, ws.ID, true)
		require.NoError(t, err)
		require.Len(t, found, 2)
		assert.Equal(t, "a-matched", found[0].Name)
		assert.Equal(t, "b-all", found[1].Name)
	})

	t.Run("unmatched trigger gets only all-workflows", func(t *testing.T) {
		found, err := svc.FindForTrigger(ctx, ws.ID, false)
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "b-all", found[0].Name)
	})

	t.Run("resolve loads the full plan", func(t *testing.T) {
		plan, err := svc.Resolve(ctx, ws.ID, onMatched.ID)
		require.NoError(t, err)
		require.Len(t, plan.Steps, 1)
		assert.Equal(t, def.ID, plan.Steps[0].Definition.ID)
		assert.Nil(t, plan.Steps[0].Template)
		require.NotNil(t, plan.Consensus)
		assert.EqualValues(t, 0.75, plan.Consensus.Threshold)
		require.NotNil(t, plan.Ghost)
		assert.True(t, plan.Ghost.Enabled)
	})

	t.Run("resolve rejects a stepless workflow", func(t *testing.T) {
		_, err := svc.Resolve(ctx, ws.ID, onAll.ID)
		assert.True(t, IsValidationError(err))
	})

	t.Run("resolve is workspace scoped", func(t *testing.T) {
		otherWS, err := NewWorkspaceService(client.Client, nil, nil).Create(ctx, "other")
		require.NoError(t, err)
		_, err = svc.Resolve(ctx, otherWS.ID, onMatched.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
