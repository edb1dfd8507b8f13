// Package ghost implements the Ghost Protocol wipe engine: the
// transactional destruction of a completed ephemeral session's transient
// data. The session's content hash and verdict always survive the wipe.
package ghost

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/swarmshield/swarmshield/ent"
	"github.com/swarmshield/swarmshield/ent/agentevent"
	"github.com/swarmshield/swarmshield/ent/agentinstance"
	"github.com/swarmshield/swarmshield/ent/analysissession"
	"github.com/swarmshield/swarmshield/ent/deliberationmessage"
	"github.com/swarmshield/swarmshield/ent/workflow"
	"github.com/swarmshield/swarmshield/pkg/events"
	"github.com/swarmshield/swarmshield/pkg/services"
)

// Precondition failures, checked in this order.
var (
	ErrSessionNotFound = errors.New("ghost: session not found")
	ErrNoGhostProtocol = errors.New("ghost: session's workflow has no ghost protocol config")
	ErrConfigDisabled  = errors.New("ghost: ghost protocol config is disabled")
	ErrAlreadyWiped    = errors.New("ghost: session is already wiped")
)

// Wipable field names form a closed allow list. Config entries outside it
// are skipped with a warning, never treated as new targets.
const (
	FieldInputContent         = "input_content"
	FieldDeliberationMessages = "deliberation_messages"
	FieldMetadata             = "metadata"
	FieldInitialAssessment    = "initial_assessment"
	FieldPayload              = "payload"
)

var wipableFields = map[string]struct{}{
	FieldInputContent:         {},
	FieldDeliberationMessages: {},
	FieldMetadata:             {},
	FieldInitialAssessment:    {},
	FieldPayload:              {},
}

// Result statuses.
const (
	StatusWiped     = "wiped"
	StatusScheduled = "scheduled"
)

// Result reports what a wipe call did. A delayed or scheduled strategy
// yields a schedule descriptor without touching data; the caller owns the
// timer.
type Result struct {
	Status           string
	SessionID        uuid.UUID
	FieldsWiped      []string
	AgentsTerminated int
	WipeStrategy     string
	WipeDelaySeconds int
	ScheduledAt      time.Time
}

// Engine executes wipes. All destructive statements of one wipe commit or
// roll back together, the audit entry included.
type Engine struct {
	client    *ent.Client
	audit     *services.AuditService
	publisher *events.Publisher
}

// NewEngine creates the wipe engine.
func NewEngine(client *ent.Client, audit *services.AuditService, publisher *events.Publisher) *Engine {
	if client == nil {
		panic("NewEngine: client must not be nil")
	}
	return &Engine{client: client, audit: audit, publisher: publisher}
}

// Execute honors the configured strategy: immediate wipes now, delayed and
// scheduled return a schedule descriptor without mutating anything.
func (e *Engine) Execute(ctx context.Context, workspaceID, sessionID uuid.UUID) (*Result, error) {
	_, cfg, err := e.load(ctx, workspaceID, sessionID)
	if err != nil {
		return nil, err
	}

	if cfg.WipeStrategy != "immediate" {
		return &Result{
			Status:           StatusScheduled,
			SessionID:        sessionID,
			WipeStrategy:     string(cfg.WipeStrategy),
			WipeDelaySeconds: cfg.WipeDelaySeconds,
			ScheduledAt:      time.Now(),
		}, nil
	}
	return e.wipe(ctx, workspaceID, sessionID)
}

// ExecuteWipe wipes unconditionally, regardless of strategy. The session
// actor calls this after serving any configured delay itself.
func (e *Engine) ExecuteWipe(ctx context.Context, workspaceID, sessionID uuid.UUID) error {
	_, err := e.wipe(ctx, workspaceID, sessionID)
	return err
}

// load verifies the ordered preconditions and returns the session and its
// ghost config.
func (e *Engine) load(ctx context.Context, workspaceID, sessionID uuid.UUID) (*ent.AnalysisSession, *ent.GhostProtocolConfig, error) {
	session, err := e.client.AnalysisSession.Query().
		Where(
			analysissession.ID(sessionID),
			analysissession.WorkspaceID(workspaceID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil, ErrSessionNotFound
		}
		return nil, nil, fmt.Errorf("ghost: load session: %w", err)
	}

	wf, err := e.client.Workflow.Query().
		Where(workflow.ID(session.WorkflowID)).
		Only(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("ghost: load workflow: %w", err)
	}
	if wf.GhostProtocolConfigID == nil {
		return nil, nil, ErrNoGhostProtocol
	}

	cfg, err := e.client.GhostProtocolConfig.Get(ctx, *wf.GhostProtocolConfigID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil, ErrNoGhostProtocol
		}
		return nil, nil, fmt.Errorf("ghost: load config: %w", err)
	}
	if !cfg.Enabled {
		return nil, nil, ErrConfigDisabled
	}

	wiped, err := e.alreadyWiped(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	if wiped {
		return nil, nil, ErrAlreadyWiped
	}
	return session, cfg, nil
}

// alreadyWiped reports whether every instance of the session carries a
// terminated_at stamp. That stamp is set only by the wipe transaction, so
// all-present means a prior wipe committed.
func (e *Engine) alreadyWiped(ctx context.Context, sessionID uuid.UUID) (bool, error) {
	total, err := e.client.AgentInstance.Query().
		Where(agentinstance.SessionID(sessionID)).
		Count(ctx)
	if err != nil {
		return false, fmt.Errorf("ghost: count instances: %w", err)
	}
	if total == 0 {
		return false, nil
	}
	live, err := e.client.AgentInstance.Query().
		Where(
			agentinstance.SessionID(sessionID),
			agentinstance.TerminatedAtIsNil(),
		).
		Count(ctx)
	if err != nil {
		return false, fmt.Errorf("ghost: count live instances: %w", err)
	}
	return live == 0, nil
}

// wipe runs the destructive transaction.
func (e *Engine) wipe(ctx context.Context, workspaceID, sessionID uuid.UUID) (*Result, error) {
	session, cfg, err := e.load(ctx, workspaceID, sessionID)
	if err != nil {
		return nil, err
	}

	e.broadcast(ctx, workspaceID, events.GhostWipeStarted, sessionID)

	tx, err := e.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("ghost: open transaction: %w", err)
	}

	fieldsWiped, agentsTerminated, err := e.wipeInTx(ctx, tx, session, cfg)
	if err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return nil, fmt.Errorf("%w (rollback failed: %v)", err, rerr)
		}
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("ghost: commit wipe: %w", err)
	}

	e.broadcast(ctx, workspaceID, events.GhostWipeCompleted, sessionID)
	slog.Info("Ghost Protocol wipe executed",
		"session_id", sessionID,
		"workspace_id", workspaceID,
		"fields_wiped", fieldsWiped,
		"agents_terminated", agentsTerminated)

	return &Result{
		Status:           StatusWiped,
		SessionID:        sessionID,
		FieldsWiped:      fieldsWiped,
		AgentsTerminated: agentsTerminated,
		WipeStrategy:     string(cfg.WipeStrategy),
	}, nil
}

func (e *Engine) wipeInTx(ctx context.Context, tx *ent.Tx, session *ent.AnalysisSession, cfg *ent.GhostProtocolConfig) ([]string, int, error) {
	fieldsWiped := make([]string, 0, len(cfg.WipeFields))
	for _, field := range cfg.WipeFields {
		if _, ok := wipableFields[field]; !ok {
			slog.Warn("Skipping unknown wipe field", "session_id", session.ID, "field", field)
			continue
		}
		if err := e.wipeField(ctx, tx, session, field); err != nil {
			return nil, 0, fmt.Errorf("ghost: wipe %s: %w", field, err)
		}
		fieldsWiped = append(fieldsWiped, field)
	}
	sort.Strings(fieldsWiped)

	agentsTerminated, err := tx.AgentInstance.Update().
		Where(agentinstance.SessionID(session.ID)).
		SetTerminatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("ghost: terminate instances: %w", err)
	}

	workspaceID := session.WorkspaceID
	_, err = e.audit.RecordInTx(ctx, tx, services.AuditInput{
		Action:       "ghost_protocol.wipe_executed",
		ResourceType: "analysis_session",
		ResourceID:   session.ID.String(),
		WorkspaceID:  &workspaceID,
		Metadata: map[string]any{
			"fields_wiped":      fieldsWiped,
			"crypto_shred_used": cfg.CryptoShred,
			"agents_terminated": agentsTerminated,
			"wipe_strategy":     string(cfg.WipeStrategy),
		},
	})
	if err != nil {
		return nil, 0, fmt.Errorf("ghost: audit wipe: %w", err)
	}
	return fieldsWiped, agentsTerminated, nil
}

// wipeField destroys one allow-listed field. NOT NULL columns take the
// redaction sentinel; nullable ones are cleared. input_content_hash and the
// verdict are never targets.
func (e *Engine) wipeField(ctx context.Context, tx *ent.Tx, session *ent.AnalysisSession, field string) error {
	switch field {
	case FieldInputContent:
		return tx.AgentEvent.Update().
			Where(agentevent.ID(session.EventID)).
			SetContent(services.RedactedValue).
			Exec(ctx)
	case FieldDeliberationMessages:
		return tx.DeliberationMessage.Update().
			Where(deliberationmessage.SessionID(session.ID)).
			SetContent(services.RedactedValue).
			Exec(ctx)
	case FieldMetadata:
		return tx.AnalysisSession.UpdateOneID(session.ID).
			ClearMetadata().
			Exec(ctx)
	case FieldInitialAssessment:
		return tx.AgentInstance.Update().
			Where(agentinstance.SessionID(session.ID)).
			ClearInitialAssessment().
			Exec(ctx)
	case FieldPayload:
		return tx.AgentEvent.Update().
			Where(agentevent.ID(session.EventID)).
			ClearPayload().
			Exec(ctx)
	default:
		return fmt.Errorf("unhandled field %q", field)
	}
}

func (e *Engine) broadcast(ctx context.Context, workspaceID uuid.UUID, eventType string, sessionID uuid.UUID) {
	if e.publisher == nil {
		return
	}
	err := e.publisher.PublishGhostEvent(ctx, workspaceID.String(), events.GhostEventPayload{
		Type:      eventType,
		SessionID: sessionID.String(),
	})
	if err != nil {
		slog.Warn("Ghost broadcast failed", "session_id", sessionID, "type", eventType, "error", err)
	}
}
