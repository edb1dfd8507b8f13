package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/swarmshield/swarmshield/ent"
	"github.com/swarmshield/swarmshield/ent/agentinstance"
	"github.com/swarmshield/swarmshield/ent/analysissession"
	"github.com/swarmshield/swarmshield/ent/deliberationmessage"
	"github.com/swarmshield/swarmshield/ent/verdict"
)

// CreateSessionInput describes a new analysis session and the agent instances
// that will deliberate in it.
type CreateSessionInput struct {
	WorkspaceID uuid.UUID
	EventID     uuid.UUID
	WorkflowID  uuid.UUID
	Content     string     // hashed for ghost sessions, never stored here
	ExpiresAt   *time.Time // set only for ghost protocol sessions
	Instances   []InstanceSpec
}

// InstanceSpec is one agent slot in a session.
type InstanceSpec struct {
	AgentDefinitionID uuid.UUID
	Role              string
}

// VerdictInput captures a deliberation outcome.
type VerdictInput struct {
	SessionID          uuid.UUID
	WorkspaceID        uuid.UUID
	Decision           verdict.Decision
	Confidence         float64
	Reasoning          string
	VoteBreakdown      map[string]any
	DissentingOpinions []map[string]any
	StrategyUsed       string
	ConsensusReached   bool
}

// SessionService persists deliberation sessions, their agent instances,
// messages, and verdicts.
type SessionService struct {
	client *ent.Client
}

// NewSessionService creates a new SessionService.
func NewSessionService(client *ent.Client) *SessionService {
	if client == nil {
		panic("NewSessionService: client must not be nil")
	}
	return &SessionService{client: client}
}

// Create stores a session with its agent instances in one transaction. The
// event content itself is not persisted on the session; only its hash is,
// so a wiped session still proves what it deliberated about.
func (s *SessionService) Create(ctx context.Context, input CreateSessionInput) (*ent.AnalysisSession, []*ent.AgentInstance, error) {
	if len(input.Instances) == 0 {
		return nil, nil, NewValidationError("instances", "at least one agent instance is required")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open transaction: %w", err)
	}

	builder := tx.AnalysisSession.Create().
		SetWorkspaceID(input.WorkspaceID).
		SetEventID(input.EventID).
		SetWorkflowID(input.WorkflowID).
		SetStatus(analysissession.StatusPending).
		SetInputContentHash(HashContent(input.Content))
	if input.ExpiresAt != nil {
		builder.SetExpiresAt(*input.ExpiresAt)
	}

	session, err := builder.Save(ctx)
	if err != nil {
		return nil, nil, rollback(tx, wrapEntError(err, "create session"))
	}

	instanceBuilders := make([]*ent.AgentInstanceCreate, 0, len(input.Instances))
	for _, spec := range input.Instances {
		instanceBuilders = append(instanceBuilders, tx.AgentInstance.Create().
			SetSessionID(session.ID).
			SetAgentDefinitionID(spec.AgentDefinitionID).
			SetRole(spec.Role).
			SetStatus(agentinstance.StatusPending))
	}
	instances, err := tx.AgentInstance.CreateBulk(instanceBuilders...).Save(ctx)
	if err != nil {
		return nil, nil, rollback(tx, wrapEntError(err, "create agent instances"))
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("failed to commit session: %w", err)
	}
	return session, instances, nil
}

// Get fetches a session scoped to a workspace.
func (s *SessionService) Get(ctx context.Context, workspaceID, sessionID uuid.UUID) (*ent.AnalysisSession, error) {
	session, err := s.client.AnalysisSession.Query().
		Where(
			analysissession.ID(sessionID),
			analysissession.WorkspaceID(workspaceID),
		).
		Only(ctx)
	if err != nil {
		return nil, wrapEntError(err, "get session")
	}
	return session, nil
}

// SetStatus advances a session through its lifecycle. started_at is stamped
// on the first move out of pending, completed_at on any terminal status.
func (s *SessionService) SetStatus(ctx context.Context, sessionID uuid.UUID, status analysissession.Status, errorMessage string) error {
	update := s.client.AnalysisSession.UpdateOneID(sessionID).SetStatus(status)
	switch status {
	case analysissession.StatusAnalyzing:
		update.SetStartedAt(time.Now())
	case analysissession.StatusCompleted, analysissession.StatusFailed, analysissession.StatusTimedOut:
		update.SetCompletedAt(time.Now())
	}
	if errorMessage != "" {
		update.SetErrorMessage(errorMessage)
	}
	return wrapEntError(update.Exec(ctx), "update session status")
}

// AddMessage appends one deliberation message.
func (s *SessionService) AddMessage(ctx context.Context, sessionID, instanceID uuid.UUID, msgType deliberationmessage.MessageType, round int, content string) (*ent.DeliberationMessage, error) {
	msg, err := s.client.DeliberationMessage.Create().
		SetSessionID(sessionID).
		SetInstanceID(instanceID).
		SetMessageType(msgType).
		SetRound(round).
		SetContent(content).
		Save(ctx)
	if err != nil {
		return nil, wrapEntError(err, "add deliberation message")
	}
	return msg, nil
}

// RecentMessages returns the session's last n messages in chronological
// order, for building debate context.
func (s *SessionService) RecentMessages(ctx context.Context, sessionID uuid.UUID, n int) ([]*ent.DeliberationMessage, error) {
	msgs, err := s.client.DeliberationMessage.Query().
		Where(deliberationmessage.SessionID(sessionID)).
		Order(ent.Desc(deliberationmessage.FieldCreatedAt)).
		Limit(n).
		All(ctx)
	if err != nil {
		return nil, wrapEntError(err, "list deliberation messages")
	}
	// Reverse into chronological order.
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	return msgs, nil
}

// Instances returns a session's agent instances in creation order. The
// voting phase reads votes from here rather than from in-actor state, so a
// crash-recovered or forced vote sees exactly what was persisted.
func (s *SessionService) Instances(ctx context.Context, sessionID uuid.UUID) ([]*ent.AgentInstance, error) {
	instances, err := s.client.AgentInstance.Query().
		Where(agentinstance.SessionID(sessionID)).
		Order(ent.Asc(agentinstance.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, wrapEntError(err, "list agent instances")
	}
	return instances, nil
}

// RecordInstanceResult stores one agent's phase outcome.
func (s *SessionService) RecordInstanceResult(ctx context.Context, instanceID uuid.UUID, status agentinstance.Status, tokensUsed, costCents int64) error {
	err := s.client.AgentInstance.UpdateOneID(instanceID).
		SetStatus(status).
		AddTokensUsed(tokensUsed).
		AddCostCents(costCents).
		Exec(ctx)
	return wrapEntError(err, "update agent instance")
}

// SetInstanceAssessment stores an agent's first-round analysis text.
func (s *SessionService) SetInstanceAssessment(ctx context.Context, instanceID uuid.UUID, assessment string) error {
	err := s.client.AgentInstance.UpdateOneID(instanceID).
		SetInitialAssessment(assessment).
		Exec(ctx)
	return wrapEntError(err, "set instance assessment")
}

// SetInstanceVote records an agent's vote and confidence.
func (s *SessionService) SetInstanceVote(ctx context.Context, instanceID uuid.UUID, vote agentinstance.Vote, confidence float64) error {
	err := s.client.AgentInstance.UpdateOneID(instanceID).
		SetVote(vote).
		SetConfidence(confidence).
		Exec(ctx)
	return wrapEntError(err, "set instance vote")
}

// CreateVerdict stores the session's verdict. The unique session_id
// constraint makes a second verdict for the same session a conflict.
func (s *SessionService) CreateVerdict(ctx context.Context, input VerdictInput) (*ent.Verdict, error) {
	builder := s.client.Verdict.Create().
		SetSessionID(input.SessionID).
		SetWorkspaceID(input.WorkspaceID).
		SetDecision(input.Decision).
		SetConfidence(input.Confidence).
		SetReasoning(input.Reasoning).
		SetStrategyUsed(input.StrategyUsed).
		SetConsensusReached(input.ConsensusReached)
	if input.VoteBreakdown != nil {
		builder.SetVoteBreakdown(input.VoteBreakdown)
	}
	if input.DissentingOpinions != nil {
		builder.SetDissentingOpinions(input.DissentingOpinions)
	}

	v, err := builder.Save(ctx)
	if err != nil {
		return nil, wrapEntError(err, "create verdict")
	}
	return v, nil
}

// GetVerdict fetches the verdict for one session.
func (s *SessionService) GetVerdict(ctx context.Context, sessionID uuid.UUID) (*ent.Verdict, error) {
	v, err := s.client.Verdict.Query().
		Where(verdict.SessionID(sessionID)).
		Only(ctx)
	if err != nil {
		return nil, wrapEntError(err, "get verdict")
	}
	return v, nil
}

// MarkAbandoned fails every session that is still non-terminal past the
// cutoff. Sessions are normally driven to a terminal status by the replica
// that owns them; rows older than the cutoff belong to a replica that died.
func (s *SessionService) MarkAbandoned(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.AnalysisSession.Update().
		Where(
			analysissession.StatusIn(
				analysissession.StatusPending,
				analysissession.StatusAnalyzing,
				analysissession.StatusDeliberating,
				analysissession.StatusVoting,
			),
			analysissession.CreatedAtLT(cutoff),
		).
		SetStatus(analysissession.StatusFailed).
		SetErrorMessage("session abandoned before completion").
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return 0, wrapEntError(err, "mark abandoned sessions")
	}
	return n, nil
}

// OverdueWipes lists expired ephemeral sessions that still hold live agent
// instances, meaning their scheduled wipe never ran.
func (s *SessionService) OverdueWipes(ctx context.Context, now time.Time) ([]*ent.AnalysisSession, error) {
	sessions, err := s.client.AnalysisSession.Query().
		Where(
			analysissession.ExpiresAtNotNil(),
			analysissession.ExpiresAtLT(now),
			analysissession.HasInstancesWith(agentinstance.TerminatedAtIsNil()),
		).
		All(ctx)
	if err != nil {
		return nil, wrapEntError(err, "list overdue wipes")
	}
	return sessions, nil
}

// HashContent returns the SHA-256 hex digest stored instead of ghost session
// content.
func HashContent(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}

func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		return fmt.Errorf("%w (rollback failed: %v)", err, rerr)
	}
	return err
}
