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
	"github.com/swarmshield/swarmshield/ent/analysissession"
	"github.com/swarmshield/swarmshield/ent/verdict"
	"github.com/swarmshield/swarmshield/ent/workspace"
)

// AnalysisSession is the model entity for the AnalysisSession schema.
type AnalysisSession struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// WorkspaceID holds the value of the "workspace_id" field.
	WorkspaceID uuid.UUID `json:"workspace_id,omitempty"`
	// EventID holds the value of the "event_id" field.
	EventID uuid.UUID `json:"event_id,omitempty"`
	// WorkflowID holds the value of the "workflow_id" field.
	WorkflowID uuid.UUID `json:"workflow_id,omitempty"`
	// Status holds the value of the "status" field.
	Status analysissession.Status `json:"status,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// sha256 hex of the source content; ephemeral sessions only, never wiped
	InputContentHash *string `json:"input_content_hash,omitempty"`
	// Ephemeral sessions only; force-terminated past this instant
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	// Metadata holds the value of the "metadata" field.
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AnalysisSessionQuery when eager-loading is set.
	Edges        AnalysisSessionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AnalysisSessionEdges holds the relations/edges for other nodes in the graph.
type AnalysisSessionEdges struct {
	// Workspace holds the value of the workspace edge.
	Workspace *Workspace `json:"workspace,omitempty"`
	// Event holds the value of the event edge.
	Event *AgentEvent `json:"event,omitempty"`
	// Instances holds the value of the instances edge.
	Instances []*AgentInstance `json:"instances,omitempty"`
	// Messages holds the value of the messages edge.
	Messages []*DeliberationMessage `json:"messages,omitempty"`
	// Verdict holds the value of the verdict edge.
	Verdict *Verdict `json:"verdict,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// WorkspaceOrErr returns the Workspace value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AnalysisSessionEdges) WorkspaceOrErr() (*Workspace, error) {
	if e.Workspace != nil {
		return e.Workspace, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: workspace.Label}
	}
	return nil, &NotLoadedError{edge: "workspace"}
}

// EventOrErr returns the Event value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AnalysisSessionEdges) EventOrErr() (*AgentEvent, error) {
	if e.Event != nil {
		return e.Event, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: agentevent.Label}
	}
	return nil, &NotLoadedError{edge: "event"}
}

// InstancesOrErr returns the Instances value or an error if the edge
// was not loaded in eager-loading.
func (e AnalysisSessionEdges) InstancesOrErr() ([]*AgentInstance, error) {
	if e.loadedTypes[2] {
		return e.Instances, nil
	}
	return nil, &NotLoadedError{edge: "instances"}
}

// MessagesOrErr returns the Messages value or an error if the edge
// was not loaded in eager-loading.
func (e AnalysisSessionEdges) MessagesOrErr() ([]*DeliberationMessage, error) {
	if e.loadedTypes[3] {
		return e.Messages, nil
	}
	return nil, &NotLoadedError{edge: "messages"}
}

// VerdictOrErr returns the Verdict value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AnalysisSessionEdges) VerdictOrErr() (*Verdict, error) {
	if e.Verdict != nil {
		return e.Verdict, nil
	} else if e.loadedTypes[4] {
		return nil, &NotFoundError{label: verdict.Label}
	}
	return nil, &NotLoadedError{edge: "verdict"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AnalysisSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case analysissession.FieldMetadata:
			values[i] = new([]byte)
		case analysissession.FieldStatus, analysissession.FieldErrorMessage, analysissession.FieldInputContentHash:
			values[i] = new(sql.NullString)
		case analysissession.FieldExpiresAt, analysissession.FieldStartedAt, analysissession.FieldCompletedAt, analysissession.FieldCreatedAt, analysissession.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case analysissession.FieldID, analysissession.FieldWorkspaceID, analysissession.FieldEventID, analysissession.FieldWorkflowID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AnalysisSession fields.
func (_m *AnalysisSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case analysissession.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case analysissession.FieldWorkspaceID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field workspace_id", values[i])
			} else if value != nil {
				_m.WorkspaceID = *value
			}
		case analysissession.FieldEventID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field event_id", values[i])
			} else if value != nil {
				_m.EventID = *value
			}
		case analysissession.FieldWorkflowID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field workflow_id", values[i])
			} else if value != nil {
				_m.WorkflowID = *value
			}
		case analysissession.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = analysissession.Status(value.String)
			}
		case analysissession.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case analysissession.FieldInputContentHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field input_content_hash", values[i])
			} else if value.Valid {
				_m.InputContentHash = new(string)
				*_m.InputContentHash = value.String
			}
		case analysissession.FieldExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expires_at", values[i])
			} else if value.Valid {
				_m.ExpiresAt = new(time.Time)
				*_m.ExpiresAt = value.Time
			}
		case analysissession.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case analysissession.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case analysissession.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case analysissession.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case analysissession.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the AnalysisSession.
// This includes values selected through modifiers, order, etc.
func (_m *AnalysisSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryWorkspace queries the "workspace" edge of the AnalysisSession entity.
func (_m *AnalysisSession) QueryWorkspace() *WorkspaceQuery {
	return NewAnalysisSessionClient(_m.config).QueryWorkspace(_m)
}

// QueryEvent queries the "event" edge of the AnalysisSession entity.
func (_m *AnalysisSession) QueryEvent() *AgentEventQuery {
	return NewAnalysisSessionClient(_m.config).QueryEvent(_m)
}

// QueryInstances queries the "instances" edge of the AnalysisSession entity.
func (_m *AnalysisSession) QueryInstances() *AgentInstanceQuery {
	return NewAnalysisSessionClient(_m.config).QueryInstances(_m)
}

// QueryMessages queries the "messages" edge of the AnalysisSession entity.
func (_m *AnalysisSession) QueryMessages() *DeliberationMessageQuery {
	return NewAnalysisSessionClient(_m.config).QueryMessages(_m)
}

// QueryVerdict queries the "verdict" edge of the AnalysisSession entity.
func (_m *AnalysisSession) QueryVerdict() *VerdictQuery {
	return NewAnalysisSessionClient(_m.config).QueryVerdict(_m)
}

// Update returns a builder for updating this AnalysisSession.
// Note that you need to call AnalysisSession.Unwrap() before calling this method if this AnalysisSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AnalysisSession) Update() *AnalysisSessionUpdateOne {
	return NewAnalysisSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AnalysisSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AnalysisSession) Unwrap() *AnalysisSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AnalysisSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AnalysisSession) String() string {
	var builder strings.Builder
	builder.WriteString("AnalysisSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("workspace_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.WorkspaceID))
	builder.WriteString(", ")
	builder.WriteString("event_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.EventID))
	builder.WriteString(", ")
	builder.WriteString("workflow_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.WorkflowID))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.InputContentHash; v != nil {
		builder.WriteString("input_content_hash=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ExpiresAt; v != nil {
		builder.WriteString("expires_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
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

// AnalysisSessions is a parsable slice of AnalysisSession.
type AnalysisSessions []*AnalysisSession
