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
	"github.com/swarmshield/swarmshield/ent/analysissession"
	"github.com/swarmshield/swarmshield/ent/verdict"
)

// Verdict is the model entity for the Verdict schema.
type Verdict struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID uuid.UUID `json:"session_id,omitempty"`
	// WorkspaceID holds the value of the "workspace_id" field.
	WorkspaceID uuid.UUID `json:"workspace_id,omitempty"`
	// Decision holds the value of the "decision" field.
	Decision verdict.Decision `json:"decision,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// Reasoning holds the value of the "reasoning" field.
	Reasoning string `json:"reasoning,omitempty"`
	// VoteBreakdown holds the value of the "vote_breakdown" field.
	VoteBreakdown map[string]interface{} `json:"vote_breakdown,omitempty"`
	// DissentingOpinions holds the value of the "dissenting_opinions" field.
	DissentingOpinions []map[string]interface{} `json:"dissenting_opinions,omitempty"`
	// StrategyUsed holds the value of the "strategy_used" field.
	StrategyUsed string `json:"strategy_used,omitempty"`
	// ConsensusReached holds the value of the "consensus_reached" field.
	ConsensusReached bool `json:"consensus_reached,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the VerdictQuery when eager-loading is set.
	Edges        VerdictEdges `json:"edges"`
	selectValues sql.SelectValues
}

// VerdictEdges holds the relations/edges for other nodes in the graph.
type VerdictEdges struct {
	// Session holds the value of the session edge.
	Session *AnalysisSession `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e VerdictEdges) SessionOrErr() (*AnalysisSession, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: analysissession.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Verdict) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case verdict.FieldVoteBreakdown, verdict.FieldDissentingOpinions:
			values[i] = new([]byte)
		case verdict.FieldConsensusReached:
			values[i] = new(sql.NullBool)
		case verdict.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case verdict.FieldDecision, verdict.FieldReasoning, verdict.FieldStrategyUsed:
			values[i] = new(sql.NullString)
		case verdict.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case verdict.FieldID, verdict.FieldSessionID, verdict.FieldWorkspaceID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Verdict fields.
func (_m *Verdict) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case verdict.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case verdict.FieldSessionID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value != nil {
				_m.SessionID = *value
			}
		case verdict.FieldWorkspaceID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field workspace_id", values[i])
			} else if value != nil {
				_m.WorkspaceID = *value
			}
		case verdict.FieldDecision:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field decision", values[i])
			} else if value.Valid {
				_m.Decision = verdict.Decision(value.String)
			}
		case verdict.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case verdict.FieldReasoning:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reasoning", values[i])
			} else if value.Valid {
				_m.Reasoning = value.String
			}
		case verdict.FieldVoteBreakdown:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field vote_breakdown", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.VoteBreakdown); err != nil {
					return fmt.Errorf("unmarshal field vote_breakdown: %w", err)
				}
			}
		case verdict.FieldDissentingOpinions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field dissenting_opinions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DissentingOpinions); err != nil {
					return fmt.Errorf("unmarshal field dissenting_opinions: %w", err)
				}
			}
		case verdict.FieldStrategyUsed:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field strategy_used", values[i])
			} else if value.Valid {
				_m.StrategyUsed = value.String
			}
		case verdict.FieldConsensusReached:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field consensus_reached", values[i])
			} else if value.Valid {
				_m.ConsensusReached = value.Bool
			}
		case verdict.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Verdict.
// This includes values selected through modifiers, order, etc.
func (_m *Verdict) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the Verdict entity.
func (_m *Verdict) QuerySession() *AnalysisSessionQuery {
	return NewVerdictClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this Verdict.
// Note that you need to call Verdict.Unwrap() before calling this method if this Verdict
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Verdict) Update() *VerdictUpdateOne {
	return NewVerdictClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Verdict entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Verdict) Unwrap() *Verdict {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Verdict is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Verdict) String() string {
	var builder strings.Builder
	builder.WriteString("Verdict(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionID))
	builder.WriteString(", ")
	builder.WriteString("workspace_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.WorkspaceID))
	builder.WriteString(", ")
	builder.WriteString("decision=")
	builder.WriteString(fmt.Sprintf("%v", _m.Decision))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("reasoning=")
	builder.WriteString(_m.Reasoning)
	builder.WriteString(", ")
	builder.WriteString("vote_breakdown=")
	builder.WriteString(fmt.Sprintf("%v", _m.VoteBreakdown))
	builder.WriteString(", ")
	builder.WriteString("dissenting_opinions=")
	builder.WriteString(fmt.Sprintf("%v", _m.DissentingOpinions))
	builder.WriteString(", ")
	builder.WriteString("strategy_used=")
	builder.WriteString(_m.StrategyUsed)
	builder.WriteString(", ")
	builder.WriteString("consensus_reached=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConsensusReached))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Verdicts is a parsable slice of Verdict.
type Verdicts []*Verdict
