// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/swarmshield/swarmshield/ent/agentinstance"
	"github.com/swarmshield/swarmshield/ent/analysissession"
)

// AgentInstance is the model entity for the AgentInstance schema.
type AgentInstance struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID uuid.UUID `json:"session_id,omitempty"`
	// AgentDefinitionID holds the value of the "agent_definition_id" field.
	AgentDefinitionID uuid.UUID `json:"agent_definition_id,omitempty"`
	// Role holds the value of the "role" field.
	Role string `json:"role,omitempty"`
	// Status holds the value of the "status" field.
	Status agentinstance.Status `json:"status,omitempty"`
	// Vote holds the value of the "vote" field.
	Vote *agentinstance.Vote `json:"vote,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence *float64 `json:"confidence,omitempty"`
	// InitialAssessment holds the value of the "initial_assessment" field.
	InitialAssessment *string `json:"initial_assessment,omitempty"`
	// TokensUsed holds the value of the "tokens_used" field.
	TokensUsed int64 `json:"tokens_used,omitempty"`
	// CostCents holds the value of the "cost_cents" field.
	CostCents int64 `json:"cost_cents,omitempty"`
	// Set by the wipe engine
	TerminatedAt *time.Time `json:"terminated_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AgentInstanceQuery when eager-loading is set.
	Edges        AgentInstanceEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AgentInstanceEdges holds the relations/edges for other nodes in the graph.
type AgentInstanceEdges struct {
	// Session holds the value of the session edge.
	Session *AnalysisSession `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AgentInstanceEdges) SessionOrErr() (*AnalysisSession, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: analysissession.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AgentInstance) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agentinstance.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case agentinstance.FieldTokensUsed, agentinstance.FieldCostCents:
			values[i] = new(sql.NullInt64)
		case agentinstance.FieldRole, agentinstance.FieldStatus, agentinstance.FieldVote, agentinstance.FieldInitialAssessment:
			values[i] = new(sql.NullString)
		case agentinstance.FieldTerminatedAt, agentinstance.FieldCreatedAt, agentinstance.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case agentinstance.FieldID, agentinstance.FieldSessionID, agentinstance.FieldAgentDefinitionID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgentInstance fields.
func (_m *AgentInstance) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agentinstance.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case agentinstance.FieldSessionID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value != nil {
				_m.SessionID = *value
			}
		case agentinstance.FieldAgentDefinitionID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field agent_definition_id", values[i])
			} else if value != nil {
				_m.AgentDefinitionID = *value
			}
		case agentinstance.FieldRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role", values[i])
			} else if value.Valid {
				_m.Role = value.String
			}
		case agentinstance.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = agentinstance.Status(value.String)
			}
		case agentinstance.FieldVote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field vote", values[i])
			} else if value.Valid {
				_m.Vote = new(agentinstance.Vote)
				*_m.Vote = agentinstance.Vote(value.String)
			}
		case agentinstance.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = new(float64)
				*_m.Confidence = value.Float64
			}
		case agentinstance.FieldInitialAssessment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field initial_assessment", values[i])
			} else if value.Valid {
				_m.InitialAssessment = new(string)
				*_m.InitialAssessment = value.String
			}
		case agentinstance.FieldTokensUsed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tokens_used", values[i])
			} else if value.Valid {
				_m.TokensUsed = value.Int64
			}
		case agentinstance.FieldCostCents:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field cost_cents", values[i])
			} else if value.Valid {
				_m.CostCents = value.Int64
			}
		case agentinstance.FieldTerminatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field terminated_at", values[i])
			} else if value.Valid {
				_m.TerminatedAt = new(time.Time)
				*_m.TerminatedAt = value.Time
			}
		case agentinstance.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case agentinstance.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the AgentInstance.
// This includes values selected through modifiers, order, etc.
func (_m *AgentInstance) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the AgentInstance entity.
func (_m *AgentInstance) QuerySession() *AnalysisSessionQuery {
	return NewAgentInstanceClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this AgentInstance.
// Note that you need to call AgentInstance.Unwrap() before calling this method if this AgentInstance
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AgentInstance) Update() *AgentInstanceUpdateOne {
	return NewAgentInstanceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AgentInstance entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AgentInstance) Unwrap() *AgentInstance {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AgentInstance is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AgentInstance) String() string {
	var builder strings.Builder
	builder.WriteString("AgentInstance(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionID))
	builder.WriteString(", ")
	builder.WriteString("agent_definition_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AgentDefinitionID))
	builder.WriteString(", ")
	builder.WriteString("role=")
	builder.WriteString(_m.Role)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.Vote; v != nil {
		builder.WriteString("vote=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Confidence; v != nil {
		builder.WriteString("confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.InitialAssessment; v != nil {
		builder.WriteString("initial_assessment=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("tokens_used=")
	builder.WriteString(fmt.Sprintf("%v", _m.TokensUsed))
	builder.WriteString(", ")
	builder.WriteString("cost_cents=")
	builder.WriteString(fmt.Sprintf("%v", _m.CostCents))
	builder.WriteString(", ")
	if v := _m.TerminatedAt; v != nil {
		builder.WriteString("terminated_at=")
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

// AgentInstances is a parsable slice of AgentInstance.
type AgentInstances []*AgentInstance
