package deliberation

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/swarmshield/swarmshield/ent"
	"github.com/swarmshield/swarmshield/ent/agentevent"
	"github.com/swarmshield/swarmshield/ent/agentinstance"
	"github.com/swarmshield/swarmshield/ent/analysissession"
	"github.com/swarmshield/swarmshield/ent/deliberationmessage"
	"github.com/swarmshield/swarmshield/ent/verdict"
	"github.com/swarmshield/swarmshield/pkg/events"
	"github.com/swarmshield/swarmshield/pkg/llm"
	"github.com/swarmshield/swarmshield/pkg/services"
	"github.com/swarmshield/swarmshield/pkg/slack"
	"github.com/swarmshield/swarmshield/pkg/worker"
)

// errAllAgentsFailed ends a session whose analysis produced nothing to
// deliberate over.
const errAllAgentsFailed = "All agents timed out or failed during analysis"

// Wiper executes the Ghost Protocol wipe for a completed session. Satisfied
// by *ghost.Engine.
type Wiper interface {
	ExecuteWipe(ctx context.Context, workspaceID, sessionID uuid.UUID) error
}

// Dependencies are the collaborators a session actor works through.
type Dependencies struct {
	Sessions  *services.SessionService
	Events    *services.EventService
	Audit     *services.AuditService
	LLM       *llm.Client
	Publisher *events.Publisher
	Pool      *worker.Pool
	Wiper     Wiper
	Notifier  *slack.Service
}

// agentState is one participating agent tracked across phases. A failed
// agent stays in the slice so indices match the instance rows, but is
// skipped in later rounds.
type agentState struct {
	instanceID   uuid.UUID
	definition   *ent.AgentDefinition
	systemPrompt string
	alive        bool
}

// agentResult is one completed or failed LLM call, delivered by message from
// the fan-out goroutines to the actor mainline.
type agentResult struct {
	index    int
	content  string
	tokens   int64
	cost     int64
	timedOut bool
	err      error
}

// Session is the actor owning one deliberation from start to verdict. Its
// mainline is sequential across phases; only the per-phase LLM fan-out runs
// concurrently. The actor is never restarted: any failure is terminal.
type Session struct {
	ID          uuid.UUID
	workspaceID uuid.UUID
	eventID     uuid.UUID
	eventType   string
	content     string
	plan        *services.WorkflowPlan

	deps   Dependencies
	opts   Options
	agents []*agentState

	runCtx      context.Context
	cancel      context.CancelFunc
	expiryTimer *time.Timer
	onDone      func()

	mu       sync.Mutex
	terminal bool
}

// Options tune session execution.
type Options struct {
	// Timeout is the shared deadline for the analysis phase and for each
	// deliberation round.
	Timeout time.Duration

	// DefaultRounds is the deliberation round count when the workflow's
	// metadata does not override it.
	DefaultRounds int

	// DefaultModel is used by agent definitions that name no model.
	DefaultModel string
}

func (o Options) withDefaults() Options {
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	if o.DefaultRounds <= 0 {
		o.DefaultRounds = 2
	}
	return o
}

// run is the actor mainline. ctx is the session's own context; cancelling it
// (shutdown or expiry) abandons in-flight LLM calls.
func (s *Session) run(ctx context.Context) {
	defer s.onDone()

	if err := s.setStatus(ctx, analysissession.StatusAnalyzing, ""); err != nil {
		slog.Error("Session failed to start", "session_id", s.ID, "error", err)
		return
	}

	if !s.runAnalysis(ctx) {
		return
	}
	if s.isTerminal() {
		return
	}

	if err := s.setStatus(ctx, analysissession.StatusDeliberating, ""); err != nil {
		slog.Error("Session failed to enter deliberation", "session_id", s.ID, "error", err)
	}
	s.runDebateRounds(ctx)
	if s.isTerminal() {
		return
	}

	if !s.claimTerminal() {
		return
	}
	if err := s.setStatus(ctx, analysissession.StatusVoting, ""); err != nil {
		slog.Error("Session failed to enter voting", "session_id", s.ID, "error", err)
	}
	s.finishVoting(ctx, analysissession.StatusCompleted)
	s.dispatchWipe()
}

// runAnalysis fans out one LLM call per agent and records the results. It
// reports whether the session can continue.
func (s *Session) runAnalysis(ctx context.Context) bool {
	calls := make([]llm.Request, len(s.agents))
	for i, a := range s.agents {
		calls[i] = s.requestFor(a, s.content)
	}

	succeeded := 0
	for _, res := range s.fanOut(ctx, calls, s.liveIndices()) {
		a := s.agents[res.index]
		if res.err != nil {
			s.recordFailure(ctx, a, res)
			continue
		}
		succeeded++
		s.recordCompletion(ctx, a, res, deliberationmessage.MessageTypeAnalysis, 1)
		if err := s.deps.Sessions.SetInstanceAssessment(ctx, a.instanceID, res.content); err != nil {
			slog.Warn("Failed to store assessment", "instance_id", a.instanceID, "error", err)
		}
	}

	if succeeded == 0 {
		if s.claimTerminal() {
			s.fail(ctx, errAllAgentsFailed)
		}
		return false
	}

	s.broadcast(ctx, events.DeliberationAnalysisComplete, map[string]any{
		"agents_succeeded": succeeded,
		"agents_total":     len(s.agents),
	})
	return true
}

// runDebateRounds executes the configured deliberation rounds. The analysis
// phase was round 1; debate rounds continue the numbering from 2.
func (s *Session) runDebateRounds(ctx context.Context) {
	for i := 0; i < s.rounds(); i++ {
		if s.isTerminal() || ctx.Err() != nil {
			return
		}
		round := i + 2

		summary, err := s.debateSummary(ctx)
		if err != nil {
			slog.Warn("Failed to build debate summary", "session_id", s.ID, "error", err)
		}
		userPrompt := RoundPrompt(s.content, summary, round)

		live := s.liveIndices()
		if len(live) == 0 {
			return
		}
		calls := make([]llm.Request, len(s.agents))
		for _, idx := range live {
			calls[idx] = s.requestFor(s.agents[idx], userPrompt)
		}

		msgType := deliberationmessage.MessageTypeArgument
		if round > 2 {
			msgType = deliberationmessage.MessageTypeCounterArgument
		}
		for _, res := range s.fanOut(ctx, calls, live) {
			a := s.agents[res.index]
			if res.err != nil {
				s.recordFailure(ctx, a, res)
				continue
			}
			s.recordCompletion(ctx, a, res, msgType, round)
		}

		s.broadcast(ctx, events.DeliberationRoundComplete, map[string]any{"round": round})
	}
}

// fanOut dispatches the calls for the given agent indices under one shared
// deadline and collects their results. Calls still in flight when the
// deadline passes are abandoned; their goroutines exit once the LLM client
// observes the cancelled context.
func (s *Session) fanOut(ctx context.Context, calls []llm.Request, indices []int) []agentResult {
	phaseCtx, cancel := context.WithTimeout(ctx, s.opts.Timeout)
	defer cancel()

	resultsCh := make(chan agentResult, len(indices))
	for _, idx := range indices {
		go func(idx int) {
			resp, err := s.deps.LLM.Call(phaseCtx, s.workspaceID, calls[idx])
			if err != nil {
				resultsCh <- agentResult{index: idx, err: err, timedOut: isTimeout(err)}
				return
			}
			resultsCh <- agentResult{
				index:   idx,
				content: resp.Content,
				tokens:  resp.TokensUsed,
				cost:    resp.CostCents,
			}
		}(idx)
	}

	results := make([]agentResult, 0, len(indices))
	seen := make(map[int]bool, len(indices))
	for range indices {
		select {
		case res := <-resultsCh:
			results = append(results, res)
			seen[res.index] = true
		case <-phaseCtx.Done():
			// Deadline hit. Collect completions that raced the timer into
			// the buffer, then mark every agent still in flight as timed
			// out so its instance row reaches a terminal status.
			for drained := false; !drained; {
				select {
				case res := <-resultsCh:
					results = append(results, res)
					seen[res.index] = true
				default:
					drained = true
				}
			}
			for _, idx := range indices {
				if !seen[idx] {
					results = append(results, agentResult{index: idx, err: phaseCtx.Err(), timedOut: true})
				}
			}
			return results
		}
	}
	return results
}

// recordCompletion persists one successful agent turn: instance totals, the
// parsed vote, and the transcript message.
func (s *Session) recordCompletion(ctx context.Context, a *agentState, res agentResult, msgType deliberationmessage.MessageType, round int) {
	if err := s.deps.Sessions.RecordInstanceResult(ctx, a.instanceID, agentinstance.StatusCompleted, res.tokens, res.cost); err != nil {
		slog.Warn("Failed to record instance result", "instance_id", a.instanceID, "error", err)
	}

	vote, _ := ParseVote(res.content)
	confidence := ParseConfidence(res.content)
	if err := s.deps.Sessions.SetInstanceVote(ctx, a.instanceID, agentinstance.Vote(vote), confidence); err != nil {
		slog.Warn("Failed to record vote", "instance_id", a.instanceID, "error", err)
	}

	if _, err := s.deps.Sessions.AddMessage(ctx, s.ID, a.instanceID, msgType, round, res.content); err != nil {
		slog.Warn("Failed to append transcript message", "instance_id", a.instanceID, "error", err)
	}
}

// recordFailure downgrades one agent. The session continues with the rest.
func (s *Session) recordFailure(ctx context.Context, a *agentState, res agentResult) {
	a.alive = false
	status := agentinstance.StatusFailed
	if res.timedOut {
		status = agentinstance.StatusTimedOut
	}
	if err := s.deps.Sessions.RecordInstanceResult(ctx, a.instanceID, status, 0, 0); err != nil {
		slog.Warn("Failed to record instance failure", "instance_id", a.instanceID, "error", err)
	}
	slog.Warn("Agent call failed",
		"session_id", s.ID,
		"instance_id", a.instanceID,
		"status", status,
		"error", res.err)
}

// finishVoting reads the persisted instances, applies consensus, writes the
// verdict, and updates the source event. finalStatus is completed on the
// normal path and timed_out when forced by expiry.
func (s *Session) finishVoting(ctx context.Context, finalStatus analysissession.Status) {
	instances, err := s.deps.Sessions.Instances(ctx, s.ID)
	if err != nil {
		slog.Error("Failed to load instances for voting", "session_id", s.ID, "error", err)
		s.fail(ctx, "voting failed: could not load agent instances")
		return
	}

	ballots := make([]Ballot, 0, len(instances))
	for _, inst := range instances {
		if inst.Vote == nil {
			continue
		}
		b := Ballot{
			InstanceID: inst.ID.String(),
			Role:       inst.Role,
			Vote:       Vote(*inst.Vote),
		}
		if inst.Confidence != nil {
			b.Confidence = *inst.Confidence
		}
		ballots = append(ballots, b)
	}

	spec := DefaultConsensus()
	if cp := s.plan.Consensus; cp != nil {
		spec = ConsensusSpec{
			Strategy:           string(cp.Strategy),
			Threshold:          cp.Threshold,
			Weights:            cp.Weights,
			RequireUnanimousOn: cp.RequireUnanimousOn,
		}
	}
	outcome := Resolve(spec, ballots)

	v, err := s.deps.Sessions.CreateVerdict(ctx, services.VerdictInput{
		SessionID:          s.ID,
		WorkspaceID:        s.workspaceID,
		Decision:           verdict.Decision(outcome.Decision),
		Confidence:         outcome.Confidence,
		Reasoning:          Reasoning(outcome),
		VoteBreakdown:      outcome.VoteBreakdown,
		DissentingOpinions: outcome.Dissenting,
		StrategyUsed:       outcome.StrategyUsed,
		ConsensusReached:   outcome.ConsensusReached,
	})
	if err != nil {
		slog.Error("Failed to write verdict", "session_id", s.ID, "error", err)
		s.fail(ctx, "voting failed: could not write verdict")
		return
	}

	if err := s.setStatus(ctx, finalStatus, ""); err != nil {
		slog.Error("Failed to finalize session", "session_id", s.ID, "error", err)
	}
	s.applyVerdictToEvent(ctx, outcome.Decision)

	if s.deps.Pool != nil {
		verdictID := v.ID
		s.deps.Pool.Submit("audit.verdict_created", func(ctx context.Context) {
			workspaceID := s.workspaceID
			_, err := s.deps.Audit.Record(ctx, services.AuditInput{
				Action:       "deliberation.verdict_created",
				ResourceType: "verdict",
				ResourceID:   verdictID.String(),
				WorkspaceID:  &workspaceID,
				Metadata: map[string]any{
					"session_id":        s.ID.String(),
					"decision":          outcome.Decision,
					"consensus_reached": outcome.ConsensusReached,
					"strategy_used":     outcome.StrategyUsed,
				},
			})
			if err != nil {
				slog.Warn("Verdict audit write failed", "session_id", s.ID, "error", err)
			}
		})
	}

	s.broadcast(ctx, events.DeliberationVerdictReached, map[string]any{
		"decision":          outcome.Decision,
		"consensus_reached": outcome.ConsensusReached,
	})

	notification := slack.VerdictNotification{
		SessionID:        s.ID.String(),
		EventID:          s.eventID.String(),
		EventType:        s.eventType,
		Decision:         outcome.Decision,
		Confidence:       outcome.Confidence,
		Reasoning:        Reasoning(outcome),
		ConsensusReached: outcome.ConsensusReached,
	}
	if s.deps.Pool != nil {
		s.deps.Pool.Submit("notify.verdict", func(ctx context.Context) {
			s.deps.Notifier.NotifyVerdict(ctx, notification)
		})
	} else {
		s.deps.Notifier.NotifyVerdict(ctx, notification)
	}
}

// applyVerdictToEvent maps the decision onto the source event's status.
// Escalate keeps the event flagged for human review.
func (s *Session) applyVerdictToEvent(ctx context.Context, decision string) {
	var status agentevent.Status
	switch decision {
	case DecisionAllow:
		status = agentevent.StatusAllowed
	case DecisionBlock:
		status = agentevent.StatusBlocked
	default:
		status = agentevent.StatusFlagged
	}
	if err := s.deps.Events.SetStatus(ctx, s.eventID, status); err != nil {
		slog.Warn("Failed to update event status from verdict",
			"event_id", s.eventID,
			"status", status,
			"error", err)
	}
}

// expire fires when an ephemeral session outlives its deadline. Whoever
// claims terminality first wins; a session already completing normally makes
// this a no-op.
func (s *Session) expire() {
	g := s.plan.Ghost
	if g == nil || !g.AutoTerminateOnExpiry {
		return
	}
	if !s.claimTerminal() {
		return
	}
	s.cancel()

	// The session context is cancelled; persistence of the forced outcome
	// gets its own bounded context.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	slog.Info("Session expired, forcing vote", "session_id", s.ID)
	if err := s.setStatus(ctx, analysissession.StatusVoting, ""); err != nil {
		slog.Warn("Failed to enter forced voting", "session_id", s.ID, "error", err)
	}
	s.finishVoting(ctx, analysissession.StatusTimedOut)
	s.dispatchWipe()
}

// dispatchWipe runs or schedules the Ghost Protocol wipe per the configured
// strategy. Wipe failures are logged only; the session already completed.
func (s *Session) dispatchWipe() {
	g := s.plan.Ghost
	if g == nil || !g.Enabled || s.deps.Wiper == nil {
		return
	}

	runWipe := func(ctx context.Context) {
		if err := s.deps.Wiper.ExecuteWipe(ctx, s.workspaceID, s.ID); err != nil {
			slog.Error("Ghost Protocol wipe failed", "session_id", s.ID, "error", err)
		}
	}

	if g.WipeStrategy == "immediate" {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		runWipe(ctx)
		return
	}

	delay := time.Duration(g.WipeDelaySeconds) * time.Second
	slog.Info("Scheduling delayed wipe",
		"session_id", s.ID,
		"wipe_strategy", g.WipeStrategy,
		"delay", delay)
	time.AfterFunc(delay, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		runWipe(ctx)
	})
}

func (s *Session) fail(ctx context.Context, message string) {
	if err := s.setStatus(ctx, analysissession.StatusFailed, message); err != nil {
		slog.Error("Failed to mark session failed", "session_id", s.ID, "error", err)
	}
}

func (s *Session) setStatus(ctx context.Context, status analysissession.Status, errorMessage string) error {
	return s.deps.Sessions.SetStatus(ctx, s.ID, status, errorMessage)
}

// broadcast publishes to both the per-session and per-workspace topics.
// Delivery is best-effort.
func (s *Session) broadcast(ctx context.Context, eventType string, payload map[string]any) {
	if s.deps.Publisher == nil {
		return
	}
	err := s.deps.Publisher.PublishDeliberationEvent(ctx, s.workspaceID.String(), events.DeliberationEventPayload{
		Type:      eventType,
		SessionID: s.ID.String(),
		Payload:   payload,
	})
	if err != nil {
		slog.Warn("Deliberation broadcast failed", "session_id", s.ID, "type", eventType, "error", err)
	}
}

// debateSummary renders the bounded debate context: the last
// agent_count x 2 transcript messages only.
func (s *Session) debateSummary(ctx context.Context) (string, error) {
	msgs, err := s.deps.Sessions.RecentMessages(ctx, s.ID, len(s.agents)*2)
	if err != nil {
		return "", err
	}
	entries := make([]TranscriptEntry, 0, len(msgs))
	for _, m := range msgs {
		entries = append(entries, TranscriptEntry{
			Role:    s.roleForInstance(m.InstanceID),
			Content: m.Content,
		})
	}
	return DebateSummary(entries), nil
}

func (s *Session) roleForInstance(instanceID uuid.UUID) string {
	for _, a := range s.agents {
		if a.instanceID == instanceID {
			return a.definition.Role
		}
	}
	return "agent"
}

// requestFor builds the LLM request for one agent with the given user
// content. Event content is confined to the user message; it never reaches
// the system prompt.
func (s *Session) requestFor(a *agentState, userContent string) llm.Request {
	model := a.definition.Model
	if model == "" {
		model = s.opts.DefaultModel
	}
	return llm.Request{
		Model:       model,
		Temperature: a.definition.Temperature,
		MaxTokens:   a.definition.MaxTokens,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: a.systemPrompt},
			{Role: llm.RoleUser, Content: userContent},
		},
	}
}

// rounds resolves the deliberation round count, honoring the workflow
// metadata override.
func (s *Session) rounds() int {
	if meta := s.plan.Workflow.Metadata; meta != nil {
		switch v := meta["deliberation_rounds"].(type) {
		case float64:
			if v >= 1 {
				return int(v)
			}
		case int:
			if v >= 1 {
				return v
			}
		}
	}
	return s.opts.DefaultRounds
}

func (s *Session) liveIndices() []int {
	indices := make([]int, 0, len(s.agents))
	for i, a := range s.agents {
		if a.alive {
			indices = append(indices, i)
		}
	}
	return indices
}

func (s *Session) claimTerminal() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.terminal {
		return false
	}
	s.terminal = true
	return true
}

func (s *Session) isTerminal() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.terminal
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	if ce, ok := llm.IsCallError(err); ok {
		return ce.Code == llm.CodeTimeout
	}
	return false
}
