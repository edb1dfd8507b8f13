package deliberation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/swarmshield/swarmshield/ent"
	"github.com/swarmshield/swarmshield/pkg/services"
)

// ErrTooManySessions rejects a start when the concurrent session cap is hit.
// The event keeps its policy-assigned status; deliberation is an enrichment,
// not a gate.
var ErrTooManySessions = errors.New("deliberation: concurrent session limit reached")

// minExpiryDelay floors the ghost expiry timer so a session created at the
// edge of its window still gets a chance to run.
const minExpiryDelay = time.Second

// Registry owns the live session actors, keyed by event id. Starting a
// second session for an event returns the one already running.
type Registry struct {
	deps          Dependencies
	opts          Options
	maxConcurrent int

	baseCtx context.Context
	cancel  context.CancelFunc

	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
	wg       sync.WaitGroup
}

// NewRegistry creates the registry. maxConcurrent <= 0 means unlimited.
func NewRegistry(deps Dependencies, opts Options, maxConcurrent int) *Registry {
	return &Registry{
		deps:          deps,
		opts:          opts.withDefaults(),
		maxConcurrent: maxConcurrent,
		sessions:      make(map[uuid.UUID]*Session),
	}
}

// Start anchors all session lifetimes to ctx.
func (r *Registry) Start(ctx context.Context) {
	r.baseCtx, r.cancel = context.WithCancel(ctx)
}

// Stop cancels every running session and waits for their actors to exit.
// In-flight LLM calls are abandoned; sessions interrupted mid-phase stay in
// their last persisted status.
func (r *Registry) Stop() {
	if r.cancel != nil {
		r.cancel()
	}
	r.wg.Wait()
}

// Active returns the number of live sessions.
func (r *Registry) Active() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// SessionFor returns the live session for an event, if any.
func (r *Registry) SessionFor(eventID uuid.UUID) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[eventID]
	return s, ok
}

// StartSession creates and launches a deliberation for one event under the
// given workflow plan. A session already running for the event is returned
// as-is.
func (r *Registry) StartSession(ctx context.Context, event *ent.AgentEvent, plan *services.WorkflowPlan) (*Session, error) {
	if r.baseCtx == nil {
		return nil, errors.New("deliberation: registry not started")
	}

	r.mu.Lock()
	if existing, ok := r.sessions[event.ID]; ok {
		r.mu.Unlock()
		return existing, nil
	}
	if r.maxConcurrent > 0 && len(r.sessions) >= r.maxConcurrent {
		r.mu.Unlock()
		return nil, ErrTooManySessions
	}
	r.mu.Unlock()

	session, err := r.buildSession(ctx, event, plan)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	// Double-check after the DB round trip; a racing start for the same
	// event may have won.
	if existing, ok := r.sessions[event.ID]; ok {
		r.mu.Unlock()
		session.cancel()
		if session.expiryTimer != nil {
			session.expiryTimer.Stop()
		}
		slog.Warn("Duplicate session start lost the race, row left pending",
			"session_id", session.ID,
			"event_id", event.ID)
		return existing, nil
	}
	r.sessions[event.ID] = session
	r.wg.Add(1)
	session.onDone = func() {
		session.cancel()
		if session.expiryTimer != nil {
			session.expiryTimer.Stop()
		}
		r.mu.Lock()
		delete(r.sessions, event.ID)
		r.mu.Unlock()
		r.wg.Done()
	}
	r.mu.Unlock()

	slog.Info("Deliberation session started",
		"session_id", session.ID,
		"event_id", event.ID,
		"workflow_id", plan.Workflow.ID,
		"agents", len(session.agents),
		"ephemeral", plan.Ghost != nil)

	go session.run(session.runCtx)
	return session, nil
}

// buildSession persists the session row and its agent instances and wires
// the actor, including the ghost expiry timer.
func (r *Registry) buildSession(ctx context.Context, event *ent.AgentEvent, plan *services.WorkflowPlan) (*Session, error) {
	specs := make([]services.InstanceSpec, 0, len(plan.Steps))
	prompts := make([]string, 0, len(plan.Steps))
	for _, step := range plan.Steps {
		var template string
		if step.Template != nil {
			template = step.Template.Template
		}
		prompt, err := SystemPrompt(template, step.Definition.SystemPrompt, step.Definition.Role, step.Definition.Expertise)
		if err != nil {
			return nil, fmt.Errorf("failed to render prompt for agent %q: %w", step.Definition.Name, err)
		}
		prompts = append(prompts, prompt)
		specs = append(specs, services.InstanceSpec{
			AgentDefinitionID: step.Definition.ID,
			Role:              step.Definition.Role,
		})
	}

	var expiresAt *time.Time
	if g := plan.Ghost; g != nil {
		t := time.Now().Add(time.Duration(g.MaxSessionDurationSeconds) * time.Second)
		expiresAt = &t
	}

	row, instances, err := r.deps.Sessions.Create(ctx, services.CreateSessionInput{
		WorkspaceID: event.WorkspaceID,
		EventID:     event.ID,
		WorkflowID:  plan.Workflow.ID,
		Content:     event.Content,
		ExpiresAt:   expiresAt,
		Instances:   specs,
	})
	if err != nil {
		return nil, err
	}

	runCtx, cancel := context.WithCancel(r.baseCtx)
	session := &Session{
		ID:          row.ID,
		workspaceID: event.WorkspaceID,
		eventID:     event.ID,
		eventType:   string(event.EventType),
		content:     event.Content,
		plan:        plan,
		deps:        r.deps,
		opts:        r.opts,
		cancel:      cancel,
		runCtx:      runCtx,
	}
	session.agents = make([]*agentState, len(instances))
	for i, inst := range instances {
		session.agents[i] = &agentState{
			instanceID:   inst.ID,
			definition:   plan.Steps[i].Definition,
			systemPrompt: prompts[i],
			alive:        true,
		}
	}

	if expiresAt != nil {
		delay := time.Until(*expiresAt)
		if delay < minExpiryDelay {
			delay = minExpiryDelay
		}
		session.expiryTimer = time.AfterFunc(delay, session.expire)
	}

	return session, nil
}
