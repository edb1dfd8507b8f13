// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/swarmshield/swarmshield/ent/agentevent"
	"github.com/swarmshield/swarmshield/ent/workspace"
)

// AgentEvent is the model entity for the AgentEvent schema.
type AgentEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// WorkspaceID holds the value of the "workspace_id" field.
	WorkspaceID uuid.UUID `json:"workspace_id,omitempty"`
	// RegisteredAgentID holds the value of the "registered_agent_id" field.
	RegisteredAgentID uuid.UUID `json:"registered_agent_id,omitempty"`
	// EventType holds the value of the "event_type" field.
	EventType agentevent.EventType `json:"event_type,omitempty"`
	// Free-form submitted content, at most 1 MiB (service-enforced)
	Content string `json:"content,omitempty"`
	// Payload holds the value of the "payload" field.
	Payload map[string]interface{} `json:"payload,omitempty"`
	// Server-set from the connection's network address
	SourceIP string `json:"source_ip,omitempty"`
	// Severity holds the value of the "severity" field.
	Severity agentevent.Severity `json:"severity,omitempty"`
	// Status holds the value of the "status" field.
	Status agentevent.Status `json:"status,omitempty"`
	// EvaluationResult holds the value of the "evaluation_result" field.
	EvaluationResult map[string]interface{} `json:"evaluation_result,omitempty"`
	// EvaluatedAt holds the value of the "evaluated_at" field.
	EvaluatedAt *time.Time `json:"evaluated_at,omitempty"`
	// FlaggedReason holds the value of the "flagged_reason" field.
	FlaggedReason *string `json:"flagged_reason,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AgentEventQuery when eager-loading is set.
	Edges        AgentEventEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AgentEventEdges holds the relations/edges for other nodes in the graph.
type AgentEventEdges struct {
	// Workspace holds the value of the workspace edge.
	Workspace *Workspace `json:"workspace,omitempty"`
	// Violations holds the value of the violations edge.
	Violations []*PolicyViolation `json:"violations,omitempty"`
	// Sessions holds the value of the sessions edge.
	Sessions []*AnalysisSession `json:"sessions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// WorkspaceOrErr returns the Workspace value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AgentEventEdges) WorkspaceOrErr() (*Workspace, error) {
	if e.Workspace != nil {
		return e.Workspace, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: workspace.Label}
	}
	return nil, &NotLoadedError{edge: "workspace"}
}

// ViolationsOrErr returns the Violations value or an error if the edge
// was not loaded in eager-loading.
func (e AgentEventEdges) ViolationsOrErr() ([]*PolicyViolation, error) {
	if e.loadedTypes[1] {
		return e.Violations, nil
	}
	return nil, &NotLoadedError{edge: "violations"}
}

// SessionsOrErr returns the Sessions value or an error if the edge
// was not loaded in eager-loading.
func (e AgentEventEdges) SessionsOrErr() ([]*AnalysisSession, error) {
	if e.loadedTypes[2] {
		return e.Sessions, nil
	}
	return nil, &NotLoadedError{edge: "sessions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AgentEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agentevent.FieldPayload, agentevent.FieldEvaluationResult:
			values[i] = new([]byte)
		case agentevent.FieldEventType, agentevent.FieldContent, agentevent.FieldSourceIP, agentevent.FieldSeverity, agentevent.FieldStatus, agentevent.FieldFlaggedReason:
			values[i] = new(sql.NullString)
		case agentevent.FieldEvaluatedAt, agentevent.FieldCreatedAt, agentevent.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case agentevent.FieldID, agentevent.FieldWorkspaceID, agentevent.FieldRegisteredAgentID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgentEvent fields.
func (_m *AgentEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agentevent.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case agentevent.FieldWorkspaceID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field workspace_id", values[i])
			} else if value != nil {
				_m.WorkspaceID = *value
			}
		case agentevent.FieldRegisteredAgentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field registered_agent_id", values[i])
			} else if value != nil {
				_m.RegisteredAgentID = *value
			}
		case agentevent.FieldEventType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_type", values[i])
			} else if value.Valid {
				_m.EventType = agentevent.EventType(value.String)
			}
		case agentevent.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case agentevent.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Payload); err != nil {
					return fmt.Errorf("unmarshal field payload: %w", err)
				}
			}
		case agentevent.FieldSourceIP:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_ip", values[i])
			} else if value.Valid {
				_m.SourceIP = value.String
			}
		case agentevent.FieldSeverity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field severity", values[i])
			} else if value.Valid {
				_m.Severity = agentevent.Severity(value.String)
			}
		case agentevent.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = agentevent.Status(value.String)
			}
		case agentevent.FieldEvaluationResult:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field evaluation_result", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.EvaluationResult); err != nil {
					return fmt.Errorf("unmarshal field evaluation_result: %w", err)
				}
			}
		case agentevent.FieldEvaluatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field evaluated_at", values[i])
			} else if value.Valid {
				_m.EvaluatedAt = new(time.Time)
				*_m.EvaluatedAt = value.Time
			}
		case agentevent.FieldFlaggedReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field flagged_reason", values[i])
			} else if value.Valid {
				_m.FlaggedReason = new(string)
				*_m.FlaggedReason = value.String
			}
		case agentevent.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case agentevent.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AgentEvent.
// This includes values selected through modifiers, order, etc.
func (_m *AgentEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryWorkspace queries the "workspace" edge of the AgentEvent entity.
func (_m *AgentEvent) QueryWorkspace() *WorkspaceQuery {
	return NewAgentEventClient(_m.config).QueryWorkspace(_m)
}

// QueryViolations queries the "violations" edge of the AgentEvent entity.
func (_m *AgentEvent) QueryViolations() *PolicyViolationQuery {
	return NewAgentEventClient(_m.config).QueryViolations(_m)
}

// QuerySessions queries the "sessions" edge of the AgentEvent entity.
func (_m *AgentEvent) QuerySessions() *AnalysisSessionQuery {
	return NewAgentEventClient(_m.config).QuerySessions(_m)
}

// Update returns a builder for updating this AgentEvent.
// Note that you need to call AgentEvent.Unwrap() before calling this method if this AgentEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AgentEvent) Update() *AgentEventUpdateOne {
	return NewAgentEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AgentEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AgentEvent) Unwrap() *AgentEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AgentEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AgentEvent) String() string {
	var builder strings.Builder
	builder.WriteString("AgentEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("workspace_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.WorkspaceID))
	builder.WriteString(", ")
	builder.WriteString("registered_agent_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.RegisteredAgentID))
	builder.WriteString(", ")
	builder.WriteString("event_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.EventType))
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteString(", ")
	builder.WriteString("source_ip=")
	builder.WriteString(_m.SourceIP)
	builder.WriteString(", ")
	builder.WriteString("severity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Severity))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("evaluation_result=")
	builder.WriteString(fmt.Sprintf("%v", _m.EvaluationResult))
	builder.WriteString(", ")
	if v := _m.EvaluatedAt; v != nil {
		builder.WriteString("evaluated_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.FlaggedReason; v != nil {
		builder.WriteString("flagged_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AgentEvents is a parsable slice of AgentEvent.
type AgentEvents []*AgentEvent
