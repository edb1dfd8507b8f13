package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/swarmshield/swarmshield/ent"
)

// EventResponse is the public projection of an AgentEvent. workspace_id, key
// material and rule configuration never appear here.
type EventResponse struct {
	ID                uuid.UUID      `json:"id"`
	EventType         string         `json:"event_type"`
	Content           string         `json:"content"`
	Payload           map[string]any `json:"payload,omitempty"`
	SourceIP          string         `json:"source_ip"`
	Severity          string         `json:"severity"`
	Status            string         `json:"status"`
	EvaluationResult  map[string]any `json:"evaluation_result,omitempty"`
	EvaluatedAt       *time.Time     `json:"evaluated_at,omitempty"`
	FlaggedReason     *string        `json:"flagged_reason,omitempty"`
	RegisteredAgentID uuid.UUID      `json:"registered_agent_id"`
	InsertedAt        time.Time      `json:"inserted_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

// dataEnvelope wraps single resources.
type dataEnvelope struct {
	Data any `json:"data"`
}

func eventResponse(event *ent.AgentEvent) EventResponse {
	return EventResponse{
		ID:                event.ID,
		EventType:         string(event.EventType),
		Content:           event.Content,
		Payload:           event.Payload,
		SourceIP:          event.SourceIP,
		Severity:          string(event.Severity),
		Status:            string(event.Status),
		EvaluationResult:  event.EvaluationResult,
		EvaluatedAt:       event.EvaluatedAt,
		FlaggedReason:     event.FlaggedReason,
		RegisteredAgentID: event.RegisteredAgentID,
		InsertedAt:        event.CreatedAt,
		UpdatedAt:         event.UpdatedAt,
	}
}

// HealthResponse is the unauthenticated health body. It names the service
// version only; runtime, database and topology details stay internal.
type HealthResponse struct {
	Status    string    `json:"status"`
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
}
