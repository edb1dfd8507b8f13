package ghost

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmshield/swarmshield/ent"
	"github.com/swarmshield/swarmshield/ent/agentevent"
	"github.com/swarmshield/swarmshield/ent/auditentry"
	"github.com/swarmshield/swarmshield/ent/deliberationmessage"
	"github.com/swarmshield/swarmshield/ent/ghostprotocolconfig"
	"github.com/swarmshield/swarmshield/ent/registeredagent"
	"github.com/swarmshield/swarmshield/pkg/services"
	testdb "github.com/swarmshield/swarmshield/test/database"
)

// fixture is one complete ephemeral session: event, workflow with a ghost
// config, session with two instances, and a deliberation transcript.
type fixture struct {
	workspaceID uuid.UUID
	eventID     uuid.UUID
	sessionID   uuid.UUID
	instances   []*ent.AgentInstance
	contentHash string
}

type fixtureOpts struct {
	wipeStrategy string
	disabled     bool
	noGhost      bool
	wipeFields   []string
}

func buildFixture(t *testing.T, client *ent.Client, opts fixtureOpts) fixture {
	t.Helper()
	ctx := context.Background()

	ws, err := services.NewWorkspaceService(client, nil, nil).Create(ctx, "acme")
	require.NoError(t, err)

	key, err := services.NewAgentService(client, nil).Register(ctx, services.RegisterAgentInput{
		WorkspaceID: ws.ID,
		Name:        "crawler-1",
		AgentType:   registeredagent.AgentTypeToolAgent,
	})
	require.NoError(t, err)

	event, _, err := services.NewEventService(client).Ingest(ctx, services.IngestEventInput{
		WorkspaceID: ws.ID,
		AgentID:     key.Agent.ID,
		EventType:   agentevent.EventTypeAction,
		Content:     "rm -rf / attempted",
		Payload:     map[string]any{"cwd": "/tmp"},
		SourceIP:    "203.0.113.9",
	})
	require.NoError(t, err)

	def, err := client.AgentDefinition.Create().
		SetWorkspaceID(ws.ID).
		SetName("security analyst").
		SetRole("security").
		SetSystemPrompt("You review agent actions.").
		Save(ctx)
	require.NoError(t, err)

	wfBuilder := client.Workflow.Create().
		SetWorkspaceID(ws.ID).
		SetName("ephemeral review")
	if !opts.noGhost {
		fields := opts.wipeFields
		if fields == nil {
			fields = []string{
				FieldInputContent, FieldDeliberationMessages,
				FieldMetadata, FieldInitialAssessment, FieldPayload,
			}
		}
		strategy := opts.wipeStrategy
		if strategy == "" {
			strategy = "immediate"
		}
		cfg, err := client.GhostProtocolConfig.Create().
			SetWorkspaceID(ws.ID).
			SetName("burn after reading").
			SetEnabled(!opts.disabled).
			SetWipeStrategy(ghostprotocolconfig.WipeStrategy(strategy)).
			SetWipeDelaySeconds(30).
			SetWipeFields(fields).
			Save(ctx)
		require.NoError(t, err)
		wfBuilder.SetGhostProtocolConfigID(cfg.ID)
	}
	wf, err := wfBuilder.Save(ctx)
	require.NoError(t, err)

	sessionSvc := services.NewSessionService(client)
	session, instances, err := sessionSvc.Create(ctx, services.CreateSessionInput{
		WorkspaceID: ws.ID,
		EventID:     event.ID,
		WorkflowID:  wf.ID,
		Content:     "rm -rf / attempted",
		Instances: []services.InstanceSpec{
			{AgentDefinitionID: def.ID, Role: "security"},
			{AgentDefinitionID: def.ID, Role: "compliance"},
		},
	})
	require.NoError(t, err)

	_, err = client.AnalysisSession.UpdateOneID(session.ID).
		SetMetadata(map[string]any{"trace_id": "abc123"}).
		Save(ctx)
	require.NoError(t, err)

	for _, inst := range instances {
		require.NoError(t, sessionSvc.SetInstanceAssessment(ctx, inst.ID, "looks destructive"))
		_, err := sessionSvc.AddMessage(ctx, session.ID, inst.ID,
			deliberationmessage.MessageTypeArgument, 1, "this should be blocked")
		require.NoError(t, err)
	}

	return fixture{
		workspaceID: ws.ID,
		eventID:     event.ID,
		sessionID:   session.ID,
		instances:   instances,
		contentHash: services.HashContent("rm -rf / attempted"),
	}
}

func TestEngine_ImmediateWipe(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	fx := buildFixture(t, client.Client, fixtureOpts{
		wipeFields: []string{
			FieldPayload, FieldInputContent, FieldMetadata,
			FieldDeliberationMessages, FieldInitialAssessment,
			"verdict", // not wipable, must be skipped
		},
	})
	engine := NewEngine(client.Client, services.NewAuditService(client.Client), nil)

	result, err := engine.Execute(ctx, fx.workspaceID, fx.sessionID)
	require.NoError(t, err)
	assert.Equal(t, StatusWiped, result.Status)
	assert.Equal(t, fx.sessionID, result.SessionID)
	assert.Equal(t, 2, result.AgentsTerminated)
	assert.Equal(t, []string{
		FieldDeliberationMessages, FieldInitialAssessment,
		FieldInputContent, FieldMetadata, FieldPayload,
	}, result.FieldsWiped, "sorted, unknown entries dropped")

	t.Run("event content redacted, payload cleared", func(t *testing.T) {
		event, err := client.AgentEvent.Get(ctx, fx.eventID)
		require.NoError(t, err)
		assert.Equal(t, services.RedactedValue, event.Content)
		assert.Nil(t, event.Payload)
	})

	t.Run("messages redacted", func(t *testing.T) {
		msgs, err := services.NewSessionService(client.Client).RecentMessages(ctx, fx.sessionID, 10)
		require.NoError(t, err)
		require.Len(t, msgs, 2)
		for _, msg := range msgs {
			assert.Equal(t, services.RedactedValue, msg.Content)
		}
	})

	t.Run("instances terminated and scrubbed", func(t *testing.T) {
		instances, err := services.NewSessionService(client.Client).Instances(ctx, fx.sessionID)
		require.NoError(t, err)
		require.Len(t, instances, 2)
		for _, inst := range instances {
			assert.NotNil(t, inst.TerminatedAt)
			assert.Nil(t, inst.InitialAssessment)
		}
	})

	t.Run("content hash survives", func(t *testing.T) {
		session, err := client.AnalysisSession.Get(ctx, fx.sessionID)
		require.NoError(t, err)
		require.NotNil(t, session.InputContentHash)
		assert.Equal(t, fx.contentHash, *session.InputContentHash)
		assert.Empty(t, session.Metadata)
	})

	t.Run("audit trail committed with the wipe", func(t *testing.T) {
		entry, err := client.AuditEntry.Query().
			Where(
				auditentry.Action("ghost_protocol.wipe_executed"),
				auditentry.ResourceID(fx.sessionID.String()),
			).
			Only(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 2, entry.Metadata["agents_terminated"])
	})

	t.Run("second wipe is rejected", func(t *testing.T) {
		_, err := engine.Execute(ctx, fx.workspaceID, fx.sessionID)
		assert.ErrorIs(t, err, ErrAlreadyWiped)
	})
}

func TestEngine_Preconditions(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	engine := NewEngine(client.Client, services.NewAuditService(client.Client), nil)

	t.Run("unknown session", func(t *testing.T) {
		_, err := engine.Execute(ctx, uuid.New(), uuid.New())
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("workflow without ghost protocol", func(t *testing.T) {
		fx := buildFixture(t, client.Client, fixtureOpts{noGhost: true})
		_, err := engine.Execute(ctx, fx.workspaceID, fx.sessionID)
		assert.ErrorIs(t, err, ErrNoGhostProtocol)
	})

	t.Run("disabled config", func(t *testing.T) {
		fx := buildFixture(t, client.Client, fixtureOpts{disabled: true})
		_, err := engine.Execute(ctx, fx.workspaceID, fx.sessionID)
		assert.ErrorIs(t, err, ErrConfigDisabled)
	})

	t.Run("cross workspace lookup misses", func(t *testing.T) {
		fx := buildFixture(t, client.Client, fixtureOpts{})
		_, err := engine.Execute(ctx, uuid.New(), fx.sessionID)
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})
}

func TestEngine_DelayedStrategy(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	fx := buildFixture(t, client.Client, fixtureOpts{wipeStrategy: "delayed"})
	engine := NewEngine(client.Client, services.NewAuditService(client.Client), nil)

	result, err := engine.Execute(ctx, fx.workspaceID, fx.sessionID)
	require.NoError(t, err)
	assert.Equal(t, StatusScheduled, result.Status)
	assert.Equal(t, "delayed", result.WipeStrategy)
	assert.Equal(t, 30, result.WipeDelaySeconds)
	assert.WithinDuration(t, time.Now(), result.ScheduledAt, 5*time.Second)

	// Scheduling must not touch any data.
	event, err := client.AgentEvent.Get(ctx, fx.eventID)
	require.NoError(t, err)
	assert.Equal(t, "rm -rf / attempted", event.Content)

	// The session actor serves the delay itself and then wipes directly.
	require.NoError(t, engine.ExecuteWipe(ctx, fx.workspaceID, fx.sessionID))

	event, err = client.AgentEvent.Get(ctx, fx.eventID)
	require.NoError(t, err)
	assert.Equal(t, services.RedactedValue, event.Content)
}
