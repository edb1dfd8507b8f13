// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/swarmshield/swarmshield/ent/analysissession"
	"github.com/swarmshield/swarmshield/ent/deliberationmessage"
)

// DeliberationMessage is the model entity for the DeliberationMessage schema.
type DeliberationMessage struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID uuid.UUID `json:"session_id,omitempty"`
	// InstanceID holds the value of the "instance_id" field.
	InstanceID uuid.UUID `json:"instance_id,omitempty"`
	// MessageType holds the value of the "message_type" field.
	MessageType deliberationmessage.MessageType `json:"message_type,omitempty"`
	// At most 100 KiB (service-enforced); replaced by the wipe sentinel on ghost wipe
	Content string `json:"content,omitempty"`
	// Round holds the value of the "round" field.
	Round int `json:"round,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DeliberationMessageQuery when eager-loading is set.
	Edges        DeliberationMessageEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DeliberationMessageEdges holds the relations/edges for other nodes in the graph.
type DeliberationMessageEdges struct {
	// Session holds the value of the session edge.
	Session *AnalysisSession `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DeliberationMessageEdges) SessionOrErr() (*AnalysisSession, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: analysissession.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DeliberationMessage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case deliberationmessage.FieldRound:
			values[i] = new(sql.NullInt64)
		case deliberationmessage.FieldMessageType, deliberationmessage.FieldContent:
			values[i] = new(sql.NullString)
		case deliberationmessage.FieldCreatedAt, deliberationmessage.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case deliberationmessage.FieldID, deliberationmessage.FieldSessionID, deliberationmessage.FieldInstanceID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DeliberationMessage fields.
func (_m *DeliberationMessage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case deliberationmessage.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case deliberationmessage.FieldSessionID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value != nil {
				_m.SessionID = *value
			}
		case deliberationmessage.FieldInstanceID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field instance_id", values[i])
			} else if value != nil {
				_m.InstanceID = *value
			}
		case deliberationmessage.FieldMessageType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message_type", values[i])
			} else if value.Valid {
				_m.MessageType = deliberationmessage.MessageType(value.String)
			}
		case deliberationmessage.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case deliberationmessage.FieldRound:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field round", values[i])
			} else if value.Valid {
				_m.Round = int(value.Int64)
			}
		case deliberationmessage.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case deliberationmessage.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the DeliberationMessage.
// This includes values selected through modifiers, order, etc.
func (_m *DeliberationMessage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the DeliberationMessage entity.
func (_m *DeliberationMessage) QuerySession() *AnalysisSessionQuery {
	return NewDeliberationMessageClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this DeliberationMessage.
// Note that you need to call DeliberationMessage.Unwrap() before calling this method if this DeliberationMessage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DeliberationMessage) Update() *DeliberationMessageUpdateOne {
	return NewDeliberationMessageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DeliberationMessage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DeliberationMessage) Unwrap() *DeliberationMessage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DeliberationMessage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DeliberationMessage) String() string {
	var builder strings.Builder
	builder.WriteString("DeliberationMessage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionID))
	builder.WriteString(", ")
	builder.WriteString("instance_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.InstanceID))
	builder.WriteString(", ")
	builder.WriteString("message_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.MessageType))
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	builder.WriteString("round=")
	builder.WriteString(fmt.Sprintf("%v", _m.Round))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DeliberationMessages is a parsable slice of DeliberationMessage.
type DeliberationMessages []*DeliberationMessage
