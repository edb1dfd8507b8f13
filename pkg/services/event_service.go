package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/swarmshield/swarmshield/ent"
	"github.com/swarmshield/swarmshield/ent/agentevent"
)

// maxContentBytes and maxPayloadBytes bound what one event may carry.
// Payload size is measured on the JSON encoding, the same number the
// payload_size policy rule sees.
const (
	maxContentBytes = 1 << 20
	maxPayloadBytes = 1 << 20
)

// IngestEventInput contains the whitelisted fields of an event submission.
// Anything else in the request body is dropped before it gets here.
type IngestEventInput struct {
	WorkspaceID uuid.UUID
	AgentID     uuid.UUID
	EventType   agentevent.EventType
	Severity    agentevent.Severity
	Content     string
	Payload     map[string]any
	SourceIP    string
}

// EventService persists and retrieves agent events.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService.
func NewEventService(client *ent.Client) *EventService {
	if client == nil {
		panic("NewEventService: client must not be nil")
	}
	return &EventService{client: client}
}

// Ingest validates and stores an incoming event in pending status. It returns
// the stored event and the serialized payload size for policy evaluation.
func (s *EventService) Ingest(ctx context.Context, input IngestEventInput) (*ent.AgentEvent, int, error) {
	if input.Content == "" {
		return nil, 0, NewValidationError("content", "content is required")
	}
	if len(input.Content) > maxContentBytes {
		return nil, 0, NewValidationError("content", fmt.Sprintf("content exceeds %d bytes", maxContentBytes))
	}
	if input.EventType == "" {
		return nil, 0, NewValidationError("event_type", "event_type is required")
	}
	if err := agentevent.EventTypeValidator(input.EventType); err != nil {
		return nil, 0, NewValidationError("event_type", "must be one of action, output, tool_call, message, error")
	}
	if input.Severity != "" {
		if err := agentevent.SeverityValidator(input.Severity); err != nil {
			return nil, 0, NewValidationError("severity", "must be one of info, warning, error, critical")
		}
	}

	payloadBytes := 0
	if input.Payload != nil {
		encoded, err := json.Marshal(input.Payload)
		if err != nil {
			return nil, 0, NewValidationError("payload", "payload is not serializable")
		}
		if len(encoded) > maxPayloadBytes {
			return nil, 0, NewValidationError("payload", fmt.Sprintf("payload exceeds %d bytes", maxPayloadBytes))
		}
		payloadBytes = len(encoded)
	}

	builder := s.client.AgentEvent.Create().
		SetWorkspaceID(input.WorkspaceID).
		SetRegisteredAgentID(input.AgentID).
		SetEventType(input.EventType).
		SetContent(input.Content).
		SetStatus(agentevent.StatusPending)

	if input.Severity != "" {
		builder.SetSeverity(input.Severity)
	}
	if input.Payload != nil {
		builder.SetPayload(input.Payload)
	}
	if input.SourceIP != "" {
		builder.SetSourceIP(input.SourceIP)
	}

	event, err := builder.Save(ctx)
	if err != nil {
		return nil, 0, wrapEntError(err, "create event")
	}
	return event, payloadBytes, nil
}

// Get fetches an event scoped to a workspace. Events in other workspaces are
// indistinguishable from missing ones.
func (s *EventService) Get(ctx context.Context, workspaceID, eventID uuid.UUID) (*ent.AgentEvent, error) {
	event, err := s.client.AgentEvent.Query().
		Where(
			agentevent.ID(eventID),
			agentevent.WorkspaceID(workspaceID),
		).
		Only(ctx)
	if err != nil {
		return nil, wrapEntError(err, "get event")
	}
	return event, nil
}

// RecordEvaluation stores the policy outcome on the event and moves it to the
// matching terminal status.
func (s *EventService) RecordEvaluation(ctx context.Context, eventID uuid.UUID, status agentevent.Status, evaluation map[string]any, flaggedReason string) (*ent.AgentEvent, error) {
	update := s.client.AgentEvent.UpdateOneID(eventID).
		SetStatus(status).
		SetEvaluationResult(evaluation).
		SetEvaluatedAt(time.Now())
	if flaggedReason != "" {
		update.SetFlaggedReason(flaggedReason)
	}
	event, err := update.Save(ctx)
	if err != nil {
		return nil, wrapEntError(err, "record evaluation")
	}
	return event, nil
}

// SetStatus updates an event's status without touching the evaluation.
// Used by deliberation verdicts.
func (s *EventService) SetStatus(ctx context.Context, eventID uuid.UUID, status agentevent.Status) error {
	err := s.client.AgentEvent.UpdateOneID(eventID).
		SetStatus(status).
		Exec(ctx)
	return wrapEntError(err, "update event status")
}
