// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/swarmshield/swarmshield/ent/agentdefinition"
	"github.com/swarmshield/swarmshield/ent/agentevent"
	"github.com/swarmshield/swarmshield/ent/agentinstance"
	"github.com/swarmshield/swarmshield/ent/analysissession"
	"github.com/swarmshield/swarmshield/ent/auditentry"
	"github.com/swarmshield/swarmshield/ent/consensuspolicy"
	"github.com/swarmshield/swarmshield/ent/deliberationmessage"
	"github.com/swarmshield/swarmshield/ent/detectionrule"
	"github.com/swarmshield/swarmshield/ent/ghostprotocolconfig"
	"github.com/swarmshield/swarmshield/ent/policyrule"
	"github.com/swarmshield/swarmshield/ent/policyviolation"
	"github.com/swarmshield/swarmshield/ent/predicate"
	"github.com/swarmshield/swarmshield/ent/prompttemplate"
	"github.com/swarmshield/swarmshield/ent/registeredagent"
	"github.com/swarmshield/swarmshield/ent/verdict"
	"github.com/swarmshield/swarmshield/ent/workflow"
	"github.com/swarmshield/swarmshield/ent/workflowstep"
	"github.com/swarmshield/swarmshield/ent/workspace"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgentDefinition     = "AgentDefinition"
	TypeAgentEvent          = "AgentEvent"
	TypeAgentInstance       = "AgentInstance"
	TypeAnalysisSession     = "AnalysisSession"
	TypeAuditEntry          = "AuditEntry"
	TypeConsensusPolicy     = "ConsensusPolicy"
	TypeDeliberationMessage = "DeliberationMessage"
	TypeDetectionRule       = "DetectionRule"
	TypeGhostProtocolConfig = "GhostProtocolConfig"
	TypePolicyRule          = "PolicyRule"
	TypePolicyViolation     = "PolicyViolation"
	TypePromptTemplate      = "PromptTemplate"
	TypeRegisteredAgent     = "RegisteredAgent"
	TypeVerdict             = "Verdict"
	TypeWorkflow            = "Workflow"
	TypeWorkflowStep        = "WorkflowStep"
	TypeWorkspace           = "Workspace"
)

// AgentDefinitionMutation represents an operation that mutates the AgentDefinition nodes in the graph.
type AgentDefinitionMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	workspace_id   *uuid.UUID
	name           *string
	role           *string
	expertise      *string
	system_prompt  *string
	model          *string
	temperature    *float64
	addtemperature *float64
	max_tokens     *int
	addmax_tokens  *int
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*AgentDefinition, error)
	predicates     []predicate.AgentDefinition
}

var _ ent.Mutation = (*AgentDefinitionMutation)(nil)

// agentdefinitionOption allows management of the mutation configuration using functional options.
type agentdefinitionOption func(*AgentDefinitionMutation)

// newAgentDefinitionMutation creates new mutation for the AgentDefinition entity.
func newAgentDefinitionMutation(c config, op Op, opts ...agentdefinitionOption) *AgentDefinitionMutation {
	m := &AgentDefinitionMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentDefinition,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentDefinitionID sets the ID field of the mutation.
func withAgentDefinitionID(id uuid.UUID) agentdefinitionOption {
	return func(m *AgentDefinitionMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentDefinition
		)
		m.oldValue = func(ctx context.Context) (*AgentDefinition, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentDefinition.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentDefinition sets the old AgentDefinition of the mutation.
func withAgentDefinition(node *AgentDefinition) agentdefinitionOption {
	return func(m *AgentDefinitionMutation) {
		m.oldValue = func(context.Context) (*AgentDefinition, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentDefinitionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentDefinitionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentDefinition entities.
func (m *AgentDefinitionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentDefinitionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentDefinitionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentDefinition.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *AgentDefinitionMutation) SetWorkspaceID(u uuid.UUID) {
	m.workspace_id = &u
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *AgentDefinitionMutation) WorkspaceID() (r uuid.UUID, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the AgentDefinition entity.
// If the AgentDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentDefinitionMutation) OldWorkspaceID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *AgentDefinitionMutation) ResetWorkspaceID() {
	m.workspace_id = nil
}

// SetName sets the "name" field.
func (m *AgentDefinitionMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *AgentDefinitionMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the AgentDefinition entity.
// If the AgentDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentDefinitionMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *AgentDefinitionMutation) ResetName() {
	m.name = nil
}

// SetRole sets the "role" field.
func (m *AgentDefinitionMutation) SetRole(s string) {
	m.role = &s
}

// Role returns the value of the "role" field in the mutation.
func (m *AgentDefinitionMutation) Role() (r string, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the AgentDefinition entity.
// If the AgentDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentDefinitionMutation) OldRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *AgentDefinitionMutation) ResetRole() {
	m.role = nil
}

// SetExpertise sets the "expertise" field.
func (m *AgentDefinitionMutation) SetExpertise(s string) {
	m.expertise = &s
}

// Expertise returns the value of the "expertise" field in the mutation.
func (m *AgentDefinitionMutation) Expertise() (r string, exists bool) {
	v := m.expertise
	if v == nil {
		return
	}
	return *v, true
}

// OldExpertise returns the old "expertise" field's value of the AgentDefinition entity.
// If the AgentDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentDefinitionMutation) OldExpertise(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpertise is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpertise requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpertise: %w", err)
	}
	return oldValue.Expertise, nil
}

// ClearExpertise clears the value of the "expertise" field.
func (m *AgentDefinitionMutation) ClearExpertise() {
	m.expertise = nil
	m.clearedFields[agentdefinition.FieldExpertise] = struct{}{}
}

// ExpertiseCleared returns if the "expertise" field was cleared in this mutation.
func (m *AgentDefinitionMutation) ExpertiseCleared() bool {
	_, ok := m.clearedFields[agentdefinition.FieldExpertise]
	return ok
}

// ResetExpertise resets all changes to the "expertise" field.
func (m *AgentDefinitionMutation) ResetExpertise() {
	m.expertise = nil
	delete(m.clearedFields, agentdefinition.FieldExpertise)
}

// SetSystemPrompt sets the "system_prompt" field.
func (m *AgentDefinitionMutation) SetSystemPrompt(s string) {
	m.system_prompt = &s
}

// SystemPrompt returns the value of the "system_prompt" field in the mutation.
func (m *AgentDefinitionMutation) SystemPrompt() (r string, exists bool) {
	v := m.system_prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldSystemPrompt returns the old "system_prompt" field's value of the AgentDefinition entity.
// If the AgentDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentDefinitionMutation) OldSystemPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSystemPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSystemPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSystemPrompt: %w", err)
	}
	return oldValue.SystemPrompt, nil
}

// ResetSystemPrompt resets all changes to the "system_prompt" field.
func (m *AgentDefinitionMutation) ResetSystemPrompt() {
	m.system_prompt = nil
}

// SetModel sets the "model" field.
func (m *AgentDefinitionMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *AgentDefinitionMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the AgentDefinition entity.
// If the AgentDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentDefinitionMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ClearModel clears the value of the "model" field.
func (m *AgentDefinitionMutation) ClearModel() {
	m.model = nil
	m.clearedFields[agentdefinition.FieldModel] = struct{}{}
}

// ModelCleared returns if the "model" field was cleared in this mutation.
func (m *AgentDefinitionMutation) ModelCleared() bool {
	_, ok := m.clearedFields[agentdefinition.FieldModel]
	return ok
}

// ResetModel resets all changes to the "model" field.
func (m *AgentDefinitionMutation) ResetModel() {
	m.model = nil
	delete(m.clearedFields, agentdefinition.FieldModel)
}

// SetTemperature sets the "temperature" field.
func (m *AgentDefinitionMutation) SetTemperature(f float64) {
	m.temperature = &f
	m.addtemperature = nil
}

// Temperature returns the value of the "temperature" field in the mutation.
func (m *AgentDefinitionMutation) Temperature() (r float64, exists bool) {
	v := m.temperature
	if v == nil {
		return
	}
	return *v, true
}

// OldTemperature returns the old "temperature" field's value of the AgentDefinition entity.
// If the AgentDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentDefinitionMutation) OldTemperature(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemperature is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemperature requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemperature: %w", err)
	}
	return oldValue.Temperature, nil
}

// AddTemperature adds f to the "temperature" field.
func (m *AgentDefinitionMutation) AddTemperature(f float64) {
	if m.addtemperature != nil {
		*m.addtemperature += f
	} else {
		m.addtemperature = &f
	}
}

// AddedTemperature returns the value that was added to the "temperature" field in this mutation.
func (m *AgentDefinitionMutation) AddedTemperature() (r float64, exists bool) {
	v := m.addtemperature
	if v == nil {
		return
	}
	return *v, true
}

// ResetTemperature resets all changes to the "temperature" field.
func (m *AgentDefinitionMutation) ResetTemperature() {
	m.temperature = nil
	m.addtemperature = nil
}

// SetMaxTokens sets the "max_tokens" field.
func (m *AgentDefinitionMutation) SetMaxTokens(i int) {
	m.max_tokens = &i
	m.addmax_tokens = nil
}

// MaxTokens returns the value of the "max_tokens" field in the mutation.
func (m *AgentDefinitionMutation) MaxTokens() (r int, exists bool) {
	v := m.max_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxTokens returns the old "max_tokens" field's value of the AgentDefinition entity.
// If the AgentDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentDefinitionMutation) OldMaxTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxTokens: %w", err)
	}
	return oldValue.MaxTokens, nil
}

// AddMaxTokens adds i to the "max_tokens" field.
func (m *AgentDefinitionMutation) AddMaxTokens(i int) {
	if m.addmax_tokens != nil {
		*m.addmax_tokens += i
	} else {
		m.addmax_tokens = &i
	}
}

// AddedMaxTokens returns the value that was added to the "max_tokens" field in this mutation.
func (m *AgentDefinitionMutation) AddedMaxTokens() (r int, exists bool) {
	v := m.addmax_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxTokens resets all changes to the "max_tokens" field.
func (m *AgentDefinitionMutation) ResetMaxTokens() {
	m.max_tokens = nil
	m.addmax_tokens = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentDefinitionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentDefinitionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentDefinition entity.
// If the AgentDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentDefinitionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentDefinitionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AgentDefinitionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AgentDefinitionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AgentDefinition entity.
// If the AgentDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentDefinitionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AgentDefinitionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the AgentDefinitionMutation builder.
func (m *AgentDefinitionMutation) Where(ps ...predicate.AgentDefinition) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentDefinitionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentDefinitionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentDefinition, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentDefinitionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentDefinitionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentDefinition).
func (m *AgentDefinitionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentDefinitionMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.workspace_id != nil {
		fields = append(fields, agentdefinition.FieldWorkspaceID)
	}
	if m.name != nil {
		fields = append(fields, agentdefinition.FieldName)
	}
	if m.role != nil {
		fields = append(fields, agentdefinition.FieldRole)
	}
	if m.expertise != nil {
		fields = append(fields, agentdefinition.FieldExpertise)
	}
	if m.system_prompt != nil {
		fields = append(fields, agentdefinition.FieldSystemPrompt)
	}
	if m.model != nil {
		fields = append(fields, agentdefinition.FieldModel)
	}
	if m.temperature != nil {
		fields = append(fields, agentdefinition.FieldTemperature)
	}
	if m.max_tokens != nil {
		fields = append(fields, agentdefinition.FieldMaxTokens)
	}
	if m.created_at != nil {
		fields = append(fields, agentdefinition.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, agentdefinition.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentDefinitionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentdefinition.FieldWorkspaceID:
		return m.WorkspaceID()
	case agentdefinition.FieldName:
		return m.Name()
	case agentdefinition.FieldRole:
		return m.Role()
	case agentdefinition.FieldExpertise:
		return m.Expertise()
	case agentdefinition.FieldSystemPrompt:
		return m.SystemPrompt()
	case agentdefinition.FieldModel:
		return m.Model()
	case agentdefinition.FieldTemperature:
		return m.Temperature()
	case agentdefinition.FieldMaxTokens:
		return m.MaxTokens()
	case agentdefinition.FieldCreatedAt:
		return m.CreatedAt()
	case agentdefinition.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentDefinitionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentdefinition.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case agentdefinition.FieldName:
		return m.OldName(ctx)
	case agentdefinition.FieldRole:
		return m.OldRole(ctx)
	case agentdefinition.FieldExpertise:
		return m.OldExpertise(ctx)
	case agentdefinition.FieldSystemPrompt:
		return m.OldSystemPrompt(ctx)
	case agentdefinition.FieldModel:
		return m.OldModel(ctx)
	case agentdefinition.FieldTemperature:
		return m.OldTemperature(ctx)
	case agentdefinition.FieldMaxTokens:
		return m.OldMaxTokens(ctx)
	case agentdefinition.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case agentdefinition.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentDefinition field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentDefinitionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentdefinition.FieldWorkspaceID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case agentdefinition.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case agentdefinition.FieldRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case agentdefinition.FieldExpertise:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpertise(v)
		return nil
	case agentdefinition.FieldSystemPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSystemPrompt(v)
		return nil
	case agentdefinition.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case agentdefinition.FieldTemperature:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemperature(v)
		return nil
	case agentdefinition.FieldMaxTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxTokens(v)
		return nil
	case agentdefinition.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case agentdefinition.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentDefinition field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentDefinitionMutation) AddedFields() []string {
	var fields []string
	if m.addtemperature != nil {
		fields = append(fields, agentdefinition.FieldTemperature)
	}
	if m.addmax_tokens != nil {
		fields = append(fields, agentdefinition.FieldMaxTokens)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentDefinitionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agentdefinition.FieldTemperature:
		return m.AddedTemperature()
	case agentdefinition.FieldMaxTokens:
		return m.AddedMaxTokens()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentDefinitionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agentdefinition.FieldTemperature:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTemperature(v)
		return nil
	case agentdefinition.FieldMaxTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxTokens(v)
		return nil
	}
	return fmt.Errorf("unknown AgentDefinition numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentDefinitionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentdefinition.FieldExpertise) {
		fields = append(fields, agentdefinition.FieldExpertise)
	}
	if m.FieldCleared(agentdefinition.FieldModel) {
		fields = append(fields, agentdefinition.FieldModel)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentDefinitionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentDefinitionMutation) ClearField(name string) error {
	switch name {
	case agentdefinition.FieldExpertise:
		m.ClearExpertise()
		return nil
	case agentdefinition.FieldModel:
		m.ClearModel()
		return nil
	}
	return fmt.Errorf("unknown AgentDefinition nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentDefinitionMutation) ResetField(name string) error {
	switch name {
	case agentdefinition.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case agentdefinition.FieldName:
		m.ResetName()
		return nil
	case agentdefinition.FieldRole:
		m.ResetRole()
		return nil
	case agentdefinition.FieldExpertise:
		m.ResetExpertise()
		return nil
	case agentdefinition.FieldSystemPrompt:
		m.ResetSystemPrompt()
		return nil
	case agentdefinition.FieldModel:
		m.ResetModel()
		return nil
	case agentdefinition.FieldTemperature:
		m.ResetTemperature()
		return nil
	case agentdefinition.FieldMaxTokens:
		m.ResetMaxTokens()
		return nil
	case agentdefinition.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case agentdefinition.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentDefinition field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentDefinitionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentDefinitionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentDefinitionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentDefinitionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentDefinitionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentDefinitionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentDefinitionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AgentDefinition unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentDefinitionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AgentDefinition edge %s", name)
}

// AgentEventMutation represents an operation that mutates the AgentEvent nodes in the graph.
type AgentEventMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	registered_agent_id *uuid.UUID
	event_type          *agentevent.EventType
	content             *string
	payload             *map[string]interface{}
	source_ip           *string
	severity            *agentevent.Severity
	status              *agentevent.Status
	evaluation_result   *map[string]interface{}
	evaluated_at        *time.Time
	flagged_reason      *string
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	workspace           *uuid.UUID
	clearedworkspace    bool
	violations          map[uuid.UUID]struct{}
	removedviolations   map[uuid.UUID]struct{}
	clearedviolations   bool
	sessions            map[uuid.UUID]struct{}
	removedsessions     map[uuid.UUID]struct{}
	clearedsessions     bool
	done                bool
	oldValue            func(context.Context) (*AgentEvent, error)
	predicates          []predicate.AgentEvent
}

var _ ent.Mutation = (*AgentEventMutation)(nil)

// agenteventOption allows management of the mutation configuration using functional options.
type agenteventOption func(*AgentEventMutation)

// newAgentEventMutation creates new mutation for the AgentEvent entity.
func newAgentEventMutation(c config, op Op, opts ...agenteventOption) *AgentEventMutation {
	m := &AgentEventMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentEventID sets the ID field of the mutation.
func withAgentEventID(id uuid.UUID) agenteventOption {
	return func(m *AgentEventMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentEvent
		)
		m.oldValue = func(ctx context.Context) (*AgentEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentEvent sets the old AgentEvent of the mutation.
func withAgentEvent(node *AgentEvent) agenteventOption {
	return func(m *AgentEventMutation) {
		m.oldValue = func(context.Context) (*AgentEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentEvent entities.
func (m *AgentEventMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentEventMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentEventMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *AgentEventMutation) SetWorkspaceID(u uuid.UUID) {
	m.workspace = &u
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *AgentEventMutation) WorkspaceID() (r uuid.UUID, exists bool) {
	v := m.workspace
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the AgentEvent entity.
// If the AgentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentEventMutation) OldWorkspaceID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *AgentEventMutation) ResetWorkspaceID() {
	m.workspace = nil
}

// SetRegisteredAgentID sets the "registered_agent_id" field.
func (m *AgentEventMutation) SetRegisteredAgentID(u uuid.UUID) {
	m.registered_agent_id = &u
}

// RegisteredAgentID returns the value of the "registered_agent_id" field in the mutation.
func (m *AgentEventMutation) RegisteredAgentID() (r uuid.UUID, exists bool) {
	v := m.registered_agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRegisteredAgentID returns the old "registered_agent_id" field's value of the AgentEvent entity.
// If the AgentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentEventMutation) OldRegisteredAgentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRegisteredAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRegisteredAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRegisteredAgentID: %w", err)
	}
	return oldValue.RegisteredAgentID, nil
}

// ResetRegisteredAgentID resets all changes to the "registered_agent_id" field.
func (m *AgentEventMutation) ResetRegisteredAgentID() {
	m.registered_agent_id = nil
}

// SetEventType sets the "event_type" field.
func (m *AgentEventMutation) SetEventType(at agentevent.EventType) {
	m.event_type = &at
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *AgentEventMutation) EventType() (r agentevent.EventType, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the AgentEvent entity.
// If the AgentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentEventMutation) OldEventType(ctx context.Context) (v agentevent.EventType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *AgentEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetContent sets the "content" field.
func (m *AgentEventMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *AgentEventMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the AgentEvent entity.
// If the AgentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentEventMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *AgentEventMutation) ResetContent() {
	m.content = nil
}

// SetPayload sets the "payload" field.
func (m *AgentEventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *AgentEventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the AgentEvent entity.
// If the AgentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentEventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *AgentEventMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[agentevent.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *AgentEventMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[agentevent.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *AgentEventMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, agentevent.FieldPayload)
}

// SetSourceIP sets the "source_ip" field.
func (m *AgentEventMutation) SetSourceIP(s string) {
	m.source_ip = &s
}

// SourceIP returns the value of the "source_ip" field in the mutation.
func (m *AgentEventMutation) SourceIP() (r string, exists bool) {
	v := m.source_ip
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceIP returns the old "source_ip" field's value of the AgentEvent entity.
// If the AgentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentEventMutation) OldSourceIP(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceIP is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceIP requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceIP: %w", err)
	}
	return oldValue.SourceIP, nil
}

// ResetSourceIP resets all changes to the "source_ip" field.
func (m *AgentEventMutation) ResetSourceIP() {
	m.source_ip = nil
}

// SetSeverity sets the "severity" field.
func (m *AgentEventMutation) SetSeverity(a agentevent.Severity) {
	m.severity = &a
}

// Severity returns the value of the "severity" field in the mutation.
func (m *AgentEventMutation) Severity() (r agentevent.Severity, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the AgentEvent entity.
// If the AgentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentEventMutation) OldSeverity(ctx context.Context) (v agentevent.Severity, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ResetSeverity resets all changes to the "severity" field.
func (m *AgentEventMutation) ResetSeverity() {
	m.severity = nil
}

// SetStatus sets the "status" field.
func (m *AgentEventMutation) SetStatus(a agentevent.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AgentEventMutation) Status() (r agentevent.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AgentEvent entity.
// If the AgentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentEventMutation) OldStatus(ctx context.Context) (v agentevent.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AgentEventMutation) ResetStatus() {
	m.status = nil
}

// SetEvaluationResult sets the "evaluation_result" field.
func (m *AgentEventMutation) SetEvaluationResult(value map[string]interface{}) {
	m.evaluation_result = &value
}

// EvaluationResult returns the value of the "evaluation_result" field in the mutation.
func (m *AgentEventMutation) EvaluationResult() (r map[string]interface{}, exists bool) {
	v := m.evaluation_result
	if v == nil {
		return
	}
	return *v, true
}

// OldEvaluationResult returns the old "evaluation_result" field's value of the AgentEvent entity.
// If the AgentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentEventMutation) OldEvaluationResult(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvaluationResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvaluationResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvaluationResult: %w", err)
	}
	return oldValue.EvaluationResult, nil
}

// ClearEvaluationResult clears the value of the "evaluation_result" field.
func (m *AgentEventMutation) ClearEvaluationResult() {
	m.evaluation_result = nil
	m.clearedFields[agentevent.FieldEvaluationResult] = struct{}{}
}

// EvaluationResultCleared returns if the "evaluation_result" field was cleared in this mutation.
func (m *AgentEventMutation) EvaluationResultCleared() bool {
	_, ok := m.clearedFields[agentevent.FieldEvaluationResult]
	return ok
}

// ResetEvaluationResult resets all changes to the "evaluation_result" field.
func (m *AgentEventMutation) ResetEvaluationResult() {
	m.evaluation_result = nil
	delete(m.clearedFields, agentevent.FieldEvaluationResult)
}

// SetEvaluatedAt sets the "evaluated_at" field.
func (m *AgentEventMutation) SetEvaluatedAt(t time.Time) {
	m.evaluated_at = &t
}

// EvaluatedAt returns the value of the "evaluated_at" field in the mutation.
func (m *AgentEventMutation) EvaluatedAt() (r time.Time, exists bool) {
	v := m.evaluated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEvaluatedAt returns the old "evaluated_at" field's value of the AgentEvent entity.
// If the AgentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentEventMutation) OldEvaluatedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvaluatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvaluatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvaluatedAt: %w", err)
	}
	return oldValue.EvaluatedAt, nil
}

// ClearEvaluatedAt clears the value of the "evaluated_at" field.
func (m *AgentEventMutation) ClearEvaluatedAt() {
	m.evaluated_at = nil
	m.clearedFields[agentevent.FieldEvaluatedAt] = struct{}{}
}

// EvaluatedAtCleared returns if the "evaluated_at" field was cleared in this mutation.
func (m *AgentEventMutation) EvaluatedAtCleared() bool {
	_, ok := m.clearedFields[agentevent.FieldEvaluatedAt]
	return ok
}

// ResetEvaluatedAt resets all changes to the "evaluated_at" field.
func (m *AgentEventMutation) ResetEvaluatedAt() {
	m.evaluated_at = nil
	delete(m.clearedFields, agentevent.FieldEvaluatedAt)
}

// SetFlaggedReason sets the "flagged_reason" field.
func (m *AgentEventMutation) SetFlaggedReason(s string) {
	m.flagged_reason = &s
}

// FlaggedReason returns the value of the "flagged_reason" field in the mutation.
func (m *AgentEventMutation) FlaggedReason() (r string, exists bool) {
	v := m.flagged_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldFlaggedReason returns the old "flagged_reason" field's value of the AgentEvent entity.
// If the AgentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentEventMutation) OldFlaggedReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFlaggedReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFlaggedReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFlaggedReason: %w", err)
	}
	return oldValue.FlaggedReason, nil
}

// ClearFlaggedReason clears the value of the "flagged_reason" field.
func (m *AgentEventMutation) ClearFlaggedReason() {
	m.flagged_reason = nil
	m.clearedFields[agentevent.FieldFlaggedReason] = struct{}{}
}

// FlaggedReasonCleared returns if the "flagged_reason" field was cleared in this mutation.
func (m *AgentEventMutation) FlaggedReasonCleared() bool {
	_, ok := m.clearedFields[agentevent.FieldFlaggedReason]
	return ok
}

// ResetFlaggedReason resets all changes to the "flagged_reason" field.
func (m *AgentEventMutation) ResetFlaggedReason() {
	m.flagged_reason = nil
	delete(m.clearedFields, agentevent.FieldFlaggedReason)
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentEvent entity.
// If the AgentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AgentEventMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AgentEventMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AgentEvent entity.
// If the AgentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentEventMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AgentEventMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (m *AgentEventMutation) ClearWorkspace() {
	m.clearedworkspace = true
	m.clearedFields[agentevent.FieldWorkspaceID] = struct{}{}
}

// WorkspaceCleared reports if the "workspace" edge to the Workspace entity was cleared.
func (m *AgentEventMutation) WorkspaceCleared() bool {
	return m.clearedworkspace
}

// WorkspaceIDs returns the "workspace" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkspaceID instead. It exists only for internal usage by the builders.
func (m *AgentEventMutation) WorkspaceIDs() (ids []uuid.UUID) {
	if id := m.workspace; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorkspace resets all changes to the "workspace" edge.
func (m *AgentEventMutation) ResetWorkspace() {
	m.workspace = nil
	m.clearedworkspace = false
}

// AddViolationIDs adds the "violations" edge to the PolicyViolation entity by ids.
func (m *AgentEventMutation) AddViolationIDs(ids ...uuid.UUID) {
	if m.violations == nil {
		m.violations = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.violations[ids[i]] = struct{}{}
	}
}

// ClearViolations clears the "violations" edge to the PolicyViolation entity.
func (m *AgentEventMutation) ClearViolations() {
	m.clearedviolations = true
}

// ViolationsCleared reports if the "violations" edge to the PolicyViolation entity was cleared.
func (m *AgentEventMutation) ViolationsCleared() bool {
	return m.clearedviolations
}

// RemoveViolationIDs removes the "violations" edge to the PolicyViolation entity by IDs.
func (m *AgentEventMutation) RemoveViolationIDs(ids ...uuid.UUID) {
	if m.removedviolations == nil {
		m.removedviolations = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.violations, ids[i])
		m.removedviolations[ids[i]] = struct{}{}
	}
}

// RemovedViolations returns the removed IDs of the "violations" edge to the PolicyViolation entity.
func (m *AgentEventMutation) RemovedViolationsIDs() (ids []uuid.UUID) {
	for id := range m.removedviolations {
		ids = append(ids, id)
	}
	return
}

// ViolationsIDs returns the "violations" edge IDs in the mutation.
func (m *AgentEventMutation) ViolationsIDs() (ids []uuid.UUID) {
	for id := range m.violations {
		ids = append(ids, id)
	}
	return
}

// ResetViolations resets all changes to the "violations" edge.
func (m *AgentEventMutation) ResetViolations() {
	m.violations = nil
	m.clearedviolations = false
	m.removedviolations = nil
}

// AddSessionIDs adds the "sessions" edge to the AnalysisSession entity by ids.
func (m *AgentEventMutation) AddSessionIDs(ids ...uuid.UUID) {
	if m.sessions == nil {
		m.sessions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.sessions[ids[i]] = struct{}{}
	}
}

// ClearSessions clears the "sessions" edge to the AnalysisSession entity.
func (m *AgentEventMutation) ClearSessions() {
	m.clearedsessions = true
}

// SessionsCleared reports if the "sessions" edge to the AnalysisSession entity was cleared.
func (m *AgentEventMutation) SessionsCleared() bool {
	return m.clearedsessions
}

// RemoveSessionIDs removes the "sessions" edge to the AnalysisSession entity by IDs.
func (m *AgentEventMutation) RemoveSessionIDs(ids ...uuid.UUID) {
	if m.removedsessions == nil {
		m.removedsessions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.sessions, ids[i])
		m.removedsessions[ids[i]] = struct{}{}
	}
}

// RemovedSessions returns the removed IDs of the "sessions" edge to the AnalysisSession entity.
func (m *AgentEventMutation) RemovedSessionsIDs() (ids []uuid.UUID) {
	for id := range m.removedsessions {
		ids = append(ids, id)
	}
	return
}

// SessionsIDs returns the "sessions" edge IDs in the mutation.
func (m *AgentEventMutation) SessionsIDs() (ids []uuid.UUID) {
	for id := range m.sessions {
		ids = append(ids, id)
	}
	return
}

// ResetSessions resets all changes to the "sessions" edge.
func (m *AgentEventMutation) ResetSessions() {
	m.sessions = nil
	m.clearedsessions = false
	m.removedsessions = nil
}

// Where appends a list predicates to the AgentEventMutation builder.
func (m *AgentEventMutation) Where(ps ...predicate.AgentEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentEvent).
func (m *AgentEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentEventMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.workspace != nil {
		fields = append(fields, agentevent.FieldWorkspaceID)
	}
	if m.registered_agent_id != nil {
		fields = append(fields, agentevent.FieldRegisteredAgentID)
	}
	if m.event_type != nil {
		fields = append(fields, agentevent.FieldEventType)
	}
	if m.content != nil {
		fields = append(fields, agentevent.FieldContent)
	}
	if m.payload != nil {
		fields = append(fields, agentevent.FieldPayload)
	}
	if m.source_ip != nil {
		fields = append(fields, agentevent.FieldSourceIP)
	}
	if m.severity != nil {
		fields = append(fields, agentevent.FieldSeverity)
	}
	if m.status != nil {
		fields = append(fields, agentevent.FieldStatus)
	}
	if m.evaluation_result != nil {
		fields = append(fields, agentevent.FieldEvaluationResult)
	}
	if m.evaluated_at != nil {
		fields = append(fields, agentevent.FieldEvaluatedAt)
	}
	if m.flagged_reason != nil {
		fields = append(fields, agentevent.FieldFlaggedReason)
	}
	if m.created_at != nil {
		fields = append(fields, agentevent.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, agentevent.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentevent.FieldWorkspaceID:
		return m.WorkspaceID()
	case agentevent.FieldRegisteredAgentID:
		return m.RegisteredAgentID()
	case agentevent.FieldEventType:
		return m.EventType()
	case agentevent.FieldContent:
		return m.Content()
	case agentevent.FieldPayload:
		return m.Payload()
	case agentevent.FieldSourceIP:
		return m.SourceIP()
	case agentevent.FieldSeverity:
		return m.Severity()
	case agentevent.FieldStatus:
		return m.Status()
	case agentevent.FieldEvaluationResult:
		return m.EvaluationResult()
	case agentevent.FieldEvaluatedAt:
		return m.EvaluatedAt()
	case agentevent.FieldFlaggedReason:
		return m.FlaggedReason()
	case agentevent.FieldCreatedAt:
		return m.CreatedAt()
	case agentevent.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentevent.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case agentevent.FieldRegisteredAgentID:
		return m.OldRegisteredAgentID(ctx)
	case agentevent.FieldEventType:
		return m.OldEventType(ctx)
	case agentevent.FieldContent:
		return m.OldContent(ctx)
	case agentevent.FieldPayload:
		return m.OldPayload(ctx)
	case agentevent.FieldSourceIP:
		return m.OldSourceIP(ctx)
	case agentevent.FieldSeverity:
		return m.OldSeverity(ctx)
	case agentevent.FieldStatus:
		return m.OldStatus(ctx)
	case agentevent.FieldEvaluationResult:
		return m.OldEvaluationResult(ctx)
	case agentevent.FieldEvaluatedAt:
		return m.OldEvaluatedAt(ctx)
	case agentevent.FieldFlaggedReason:
		return m.OldFlaggedReason(ctx)
	case agentevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case agentevent.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentevent.FieldWorkspaceID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case agentevent.FieldRegisteredAgentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRegisteredAgentID(v)
		return nil
	case agentevent.FieldEventType:
		v, ok := value.(agentevent.EventType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case agentevent.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case agentevent.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case agentevent.FieldSourceIP:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceIP(v)
		return nil
	case agentevent.FieldSeverity:
		v, ok := value.(agentevent.Severity)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case agentevent.FieldStatus:
		v, ok := value.(agentevent.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case agentevent.FieldEvaluationResult:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvaluationResult(v)
		return nil
	case agentevent.FieldEvaluatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvaluatedAt(v)
		return nil
	case agentevent.FieldFlaggedReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFlaggedReason(v)
		return nil
	case agentevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case agentevent.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AgentEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentevent.FieldPayload) {
		fields = append(fields, agentevent.FieldPayload)
	}
	if m.FieldCleared(agentevent.FieldEvaluationResult) {
		fields = append(fields, agentevent.FieldEvaluationResult)
	}
	if m.FieldCleared(agentevent.FieldEvaluatedAt) {
		fields = append(fields, agentevent.FieldEvaluatedAt)
	}
	if m.FieldCleared(agentevent.FieldFlaggedReason) {
		fields = append(fields, agentevent.FieldFlaggedReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentEventMutation) ClearField(name string) error {
	switch name {
	case agentevent.FieldPayload:
		m.ClearPayload()
		return nil
	case agentevent.FieldEvaluationResult:
		m.ClearEvaluationResult()
		return nil
	case agentevent.FieldEvaluatedAt:
		m.ClearEvaluatedAt()
		return nil
	case agentevent.FieldFlaggedReason:
		m.ClearFlaggedReason()
		return nil
	}
	return fmt.Errorf("unknown AgentEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentEventMutation) ResetField(name string) error {
	switch name {
	case agentevent.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case agentevent.FieldRegisteredAgentID:
		m.ResetRegisteredAgentID()
		return nil
	case agentevent.FieldEventType:
		m.ResetEventType()
		return nil
	case agentevent.FieldContent:
		m.ResetContent()
		return nil
	case agentevent.FieldPayload:
		m.ResetPayload()
		return nil
	case agentevent.FieldSourceIP:
		m.ResetSourceIP()
		return nil
	case agentevent.FieldSeverity:
		m.ResetSeverity()
		return nil
	case agentevent.FieldStatus:
		m.ResetStatus()
		return nil
	case agentevent.FieldEvaluationResult:
		m.ResetEvaluationResult()
		return nil
	case agentevent.FieldEvaluatedAt:
		m.ResetEvaluatedAt()
		return nil
	case agentevent.FieldFlaggedReason:
		m.ResetFlaggedReason()
		return nil
	case agentevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case agentevent.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.workspace != nil {
		edges = append(edges, agentevent.EdgeWorkspace)
	}
	if m.violations != nil {
		edges = append(edges, agentevent.EdgeViolations)
	}
	if m.sessions != nil {
		edges = append(edges, agentevent.EdgeSessions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agentevent.EdgeWorkspace:
		if id := m.workspace; id != nil {
			return []ent.Value{*id}
		}
	case agentevent.EdgeViolations:
		ids := make([]ent.Value, 0, len(m.violations))
		for id := range m.violations {
			ids = append(ids, id)
		}
		return ids
	case agentevent.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.sessions))
		for id := range m.sessions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedviolations != nil {
		edges = append(edges, agentevent.EdgeViolations)
	}
	if m.removedsessions != nil {
		edges = append(edges, agentevent.EdgeSessions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentEventMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case agentevent.EdgeViolations:
		ids := make([]ent.Value, 0, len(m.removedviolations))
		for id := range m.removedviolations {
			ids = append(ids, id)
		}
		return ids
	case agentevent.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.removedsessions))
		for id := range m.removedsessions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedworkspace {
		edges = append(edges, agentevent.EdgeWorkspace)
	}
	if m.clearedviolations {
		edges = append(edges, agentevent.EdgeViolations)
	}
	if m.clearedsessions {
		edges = append(edges, agentevent.EdgeSessions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentEventMutation) EdgeCleared(name string) bool {
	switch name {
	case agentevent.EdgeWorkspace:
		return m.clearedworkspace
	case agentevent.EdgeViolations:
		return m.clearedviolations
	case agentevent.EdgeSessions:
		return m.clearedsessions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentEventMutation) ClearEdge(name string) error {
	switch name {
	case agentevent.EdgeWorkspace:
		m.ClearWorkspace()
		return nil
	}
	return fmt.Errorf("unknown AgentEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentEventMutation) ResetEdge(name string) error {
	switch name {
	case agentevent.EdgeWorkspace:
		m.ResetWorkspace()
		return nil
	case agentevent.EdgeViolations:
		m.ResetViolations()
		return nil
	case agentevent.EdgeSessions:
		m.ResetSessions()
		return nil
	}
	return fmt.Errorf("unknown AgentEvent edge %s", name)
}

// AgentInstanceMutation represents an operation that mutates the AgentInstance nodes in the graph.
type AgentInstanceMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	agent_definition_id *uuid.UUID
	role                *string
	status              *agentinstance.Status
	vote                *agentinstance.Vote
	confidence          *float64
	addconfidence       *float64
	initial_assessment  *string
	tokens_used         *int64
	addtokens_used      *int64
	cost_cents          *int64
	addcost_cents       *int64
	terminated_at       *time.Time
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	session             *uuid.UUID
	clearedsession      bool
	done                bool
	oldValue            func(context.Context) (*AgentInstance, error)
	predicates          []predicate.AgentInstance
}

var _ ent.Mutation = (*AgentInstanceMutation)(nil)

// agentinstanceOption allows management of the mutation configuration using functional options.
type agentinstanceOption func(*AgentInstanceMutation)

// newAgentInstanceMutation creates new mutation for the AgentInstance entity.
func newAgentInstanceMutation(c config, op Op, opts ...agentinstanceOption) *AgentInstanceMutation {
	m := &AgentInstanceMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentInstance,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentInstanceID sets the ID field of the mutation.
func withAgentInstanceID(id uuid.UUID) agentinstanceOption {
	return func(m *AgentInstanceMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentInstance
		)
		m.oldValue = func(ctx context.Context) (*AgentInstance, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentInstance.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentInstance sets the old AgentInstance of the mutation.
func withAgentInstance(node *AgentInstance) agentinstanceOption {
	return func(m *AgentInstanceMutation) {
		m.oldValue = func(context.Context) (*AgentInstance, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentInstanceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentInstanceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentInstance entities.
func (m *AgentInstanceMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentInstanceMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentInstanceMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentInstance.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *AgentInstanceMutation) SetSessionID(u uuid.UUID) {
	m.session = &u
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *AgentInstanceMutation) SessionID() (r uuid.UUID, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the AgentInstance entity.
// If the AgentInstance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentInstanceMutation) OldSessionID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *AgentInstanceMutation) ResetSessionID() {
	m.session = nil
}

// SetAgentDefinitionID sets the "agent_definition_id" field.
func (m *AgentInstanceMutation) SetAgentDefinitionID(u uuid.UUID) {
	m.agent_definition_id = &u
}

// AgentDefinitionID returns the value of the "agent_definition_id" field in the mutation.
func (m *AgentInstanceMutation) AgentDefinitionID() (r uuid.UUID, exists bool) {
	v := m.agent_definition_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentDefinitionID returns the old "agent_definition_id" field's value of the AgentInstance entity.
// If the AgentInstance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentInstanceMutation) OldAgentDefinitionID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentDefinitionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentDefinitionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentDefinitionID: %w", err)
	}
	return oldValue.AgentDefinitionID, nil
}

// ResetAgentDefinitionID resets all changes to the "agent_definition_id" field.
func (m *AgentInstanceMutation) ResetAgentDefinitionID() {
	m.agent_definition_id = nil
}

// SetRole sets the "role" field.
func (m *AgentInstanceMutation) SetRole(s string) {
	m.role = &s
}

// Role returns the value of the "role" field in the mutation.
func (m *AgentInstanceMutation) Role() (r string, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the AgentInstance entity.
// If the AgentInstance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentInstanceMutation) OldRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *AgentInstanceMutation) ResetRole() {
	m.role = nil
}

// SetStatus sets the "status" field.
func (m *AgentInstanceMutation) SetStatus(a agentinstance.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AgentInstanceMutation) Status() (r agentinstance.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AgentInstance entity.
// If the AgentInstance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentInstanceMutation) OldStatus(ctx context.Context) (v agentinstance.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AgentInstanceMutation) ResetStatus() {
	m.status = nil
}

// SetVote sets the "vote" field.
func (m *AgentInstanceMutation) SetVote(a agentinstance.Vote) {
	m.vote = &a
}

// Vote returns the value of the "vote" field in the mutation.
func (m *AgentInstanceMutation) Vote() (r agentinstance.Vote, exists bool) {
	v := m.vote
	if v == nil {
		return
	}
	return *v, true
}

// OldVote returns the old "vote" field's value of the AgentInstance entity.
// If the AgentInstance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentInstanceMutation) OldVote(ctx context.Context) (v *agentinstance.Vote, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVote: %w", err)
	}
	return oldValue.Vote, nil
}

// ClearVote clears the value of the "vote" field.
func (m *AgentInstanceMutation) ClearVote() {
	m.vote = nil
	m.clearedFields[agentinstance.FieldVote] = struct{}{}
}

// VoteCleared returns if the "vote" field was cleared in this mutation.
func (m *AgentInstanceMutation) VoteCleared() bool {
	_, ok := m.clearedFields[agentinstance.FieldVote]
	return ok
}

// ResetVote resets all changes to the "vote" field.
func (m *AgentInstanceMutation) ResetVote() {
	m.vote = nil
	delete(m.clearedFields, agentinstance.FieldVote)
}

// SetConfidence sets the "confidence" field.
func (m *AgentInstanceMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *AgentInstanceMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the AgentInstance entity.
// If the AgentInstance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentInstanceMutation) OldConfidence(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *AgentInstanceMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *AgentInstanceMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearConfidence clears the value of the "confidence" field.
func (m *AgentInstanceMutation) ClearConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	m.clearedFields[agentinstance.FieldConfidence] = struct{}{}
}

// ConfidenceCleared returns if the "confidence" field was cleared in this mutation.
func (m *AgentInstanceMutation) ConfidenceCleared() bool {
	_, ok := m.clearedFields[agentinstance.FieldConfidence]
	return ok
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *AgentInstanceMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	delete(m.clearedFields, agentinstance.FieldConfidence)
}

// SetInitialAssessment sets the "initial_assessment" field.
func (m *AgentInstanceMutation) SetInitialAssessment(s string) {
	m.initial_assessment = &s
}

// InitialAssessment returns the value of the "initial_assessment" field in the mutation.
func (m *AgentInstanceMutation) InitialAssessment() (r string, exists bool) {
	v := m.initial_assessment
	if v == nil {
		return
	}
	return *v, true
}

// OldInitialAssessment returns the old "initial_assessment" field's value of the AgentInstance entity.
// If the AgentInstance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentInstanceMutation) OldInitialAssessment(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInitialAssessment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInitialAssessment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInitialAssessment: %w", err)
	}
	return oldValue.InitialAssessment, nil
}

// ClearInitialAssessment clears the value of the "initial_assessment" field.
func (m *AgentInstanceMutation) ClearInitialAssessment() {
	m.initial_assessment = nil
	m.clearedFields[agentinstance.FieldInitialAssessment] = struct{}{}
}

// InitialAssessmentCleared returns if the "initial_assessment" field was cleared in this mutation.
func (m *AgentInstanceMutation) InitialAssessmentCleared() bool {
	_, ok := m.clearedFields[agentinstance.FieldInitialAssessment]
	return ok
}

// ResetInitialAssessment resets all changes to the "initial_assessment" field.
func (m *AgentInstanceMutation) ResetInitialAssessment() {
	m.initial_assessment = nil
	delete(m.clearedFields, agentinstance.FieldInitialAssessment)
}

// SetTokensUsed sets the "tokens_used" field.
func (m *AgentInstanceMutation) SetTokensUsed(i int64) {
	m.tokens_used = &i
	m.addtokens_used = nil
}

// TokensUsed returns the value of the "tokens_used" field in the mutation.
func (m *AgentInstanceMutation) TokensUsed() (r int64, exists bool) {
	v := m.tokens_used
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensUsed returns the old "tokens_used" field's value of the AgentInstance entity.
// If the AgentInstance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentInstanceMutation) OldTokensUsed(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensUsed: %w", err)
	}
	return oldValue.TokensUsed, nil
}

// AddTokensUsed adds i to the "tokens_used" field.
func (m *AgentInstanceMutation) AddTokensUsed(i int64) {
	if m.addtokens_used != nil {
		*m.addtokens_used += i
	} else {
		m.addtokens_used = &i
	}
}

// AddedTokensUsed returns the value that was added to the "tokens_used" field in this mutation.
func (m *AgentInstanceMutation) AddedTokensUsed() (r int64, exists bool) {
	v := m.addtokens_used
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokensUsed resets all changes to the "tokens_used" field.
func (m *AgentInstanceMutation) ResetTokensUsed() {
	m.tokens_used = nil
	m.addtokens_used = nil
}

// SetCostCents sets the "cost_cents" field.
func (m *AgentInstanceMutation) SetCostCents(i int64) {
	m.cost_cents = &i
	m.addcost_cents = nil
}

// CostCents returns the value of the "cost_cents" field in the mutation.
func (m *AgentInstanceMutation) CostCents() (r int64, exists bool) {
	v := m.cost_cents
	if v == nil {
		return
	}
	return *v, true
}

// OldCostCents returns the old "cost_cents" field's value of the AgentInstance entity.
// If the AgentInstance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentInstanceMutation) OldCostCents(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCostCents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCostCents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCostCents: %w", err)
	}
	return oldValue.CostCents, nil
}

// AddCostCents adds i to the "cost_cents" field.
func (m *AgentInstanceMutation) AddCostCents(i int64) {
	if m.addcost_cents != nil {
		*m.addcost_cents += i
	} else {
		m.addcost_cents = &i
	}
}

// AddedCostCents returns the value that was added to the "cost_cents" field in this mutation.
func (m *AgentInstanceMutation) AddedCostCents() (r int64, exists bool) {
	v := m.addcost_cents
	if v == nil {
		return
	}
	return *v, true
}

// ResetCostCents resets all changes to the "cost_cents" field.
func (m *AgentInstanceMutation) ResetCostCents() {
	m.cost_cents = nil
	m.addcost_cents = nil
}

// SetTerminatedAt sets the "terminated_at" field.
func (m *AgentInstanceMutation) SetTerminatedAt(t time.Time) {
	m.terminated_at = &t
}

// TerminatedAt returns the value of the "terminated_at" field in the mutation.
func (m *AgentInstanceMutation) TerminatedAt() (r time.Time, exists bool) {
	v := m.terminated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldTerminatedAt returns the old "terminated_at" field's value of the AgentInstance entity.
// If the AgentInstance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentInstanceMutation) OldTerminatedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTerminatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTerminatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTerminatedAt: %w", err)
	}
	return oldValue.TerminatedAt, nil
}

// ClearTerminatedAt clears the value of the "terminated_at" field.
func (m *AgentInstanceMutation) ClearTerminatedAt() {
	m.terminated_at = nil
	m.clearedFields[agentinstance.FieldTerminatedAt] = struct{}{}
}

// TerminatedAtCleared returns if the "terminated_at" field was cleared in this mutation.
func (m *AgentInstanceMutation) TerminatedAtCleared() bool {
	_, ok := m.clearedFields[agentinstance.FieldTerminatedAt]
	return ok
}

// ResetTerminatedAt resets all changes to the "terminated_at" field.
func (m *AgentInstanceMutation) ResetTerminatedAt() {
	m.terminated_at = nil
	delete(m.clearedFields, agentinstance.FieldTerminatedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentInstanceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentInstanceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentInstance entity.
// If the AgentInstance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentInstanceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentInstanceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AgentInstanceMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AgentInstanceMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AgentInstance entity.
// If the AgentInstance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentInstanceMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AgentInstanceMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearSession clears the "session" edge to the AnalysisSession entity.
func (m *AgentInstanceMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[agentinstance.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the AnalysisSession entity was cleared.
func (m *AgentInstanceMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *AgentInstanceMutation) SessionIDs() (ids []uuid.UUID) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *AgentInstanceMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the AgentInstanceMutation builder.
func (m *AgentInstanceMutation) Where(ps ...predicate.AgentInstance) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentInstanceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentInstanceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentInstance, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentInstanceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentInstanceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentInstance).
func (m *AgentInstanceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentInstanceMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.session != nil {
		fields = append(fields, agentinstance.FieldSessionID)
	}
	if m.agent_definition_id != nil {
		fields = append(fields, agentinstance.FieldAgentDefinitionID)
	}
	if m.role != nil {
		fields = append(fields, agentinstance.FieldRole)
	}
	if m.status != nil {
		fields = append(fields, agentinstance.FieldStatus)
	}
	if m.vote != nil {
		fields = append(fields, agentinstance.FieldVote)
	}
	if m.confidence != nil {
		fields = append(fields, agentinstance.FieldConfidence)
	}
	if m.initial_assessment != nil {
		fields = append(fields, agentinstance.FieldInitialAssessment)
	}
	if m.tokens_used != nil {
		fields = append(fields, agentinstance.FieldTokensUsed)
	}
	if m.cost_cents != nil {
		fields = append(fields, agentinstance.FieldCostCents)
	}
	if m.terminated_at != nil {
		fields = append(fields, agentinstance.FieldTerminatedAt)
	}
	if m.created_at != nil {
		fields = append(fields, agentinstance.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, agentinstance.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentInstanceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentinstance.FieldSessionID:
		return m.SessionID()
	case agentinstance.FieldAgentDefinitionID:
		return m.AgentDefinitionID()
	case agentinstance.FieldRole:
		return m.Role()
	case agentinstance.FieldStatus:
		return m.Status()
	case agentinstance.FieldVote:
		return m.Vote()
	case agentinstance.FieldConfidence:
		return m.Confidence()
	case agentinstance.FieldInitialAssessment:
		return m.InitialAssessment()
	case agentinstance.FieldTokensUsed:
		return m.TokensUsed()
	case agentinstance.FieldCostCents:
		return m.CostCents()
	case agentinstance.FieldTerminatedAt:
		return m.TerminatedAt()
	case agentinstance.FieldCreatedAt:
		return m.CreatedAt()
	case agentinstance.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentInstanceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentinstance.FieldSessionID:
		return m.OldSessionID(ctx)
	case agentinstance.FieldAgentDefinitionID:
		return m.OldAgentDefinitionID(ctx)
	case agentinstance.FieldRole:
		return m.OldRole(ctx)
	case agentinstance.FieldStatus:
		return m.OldStatus(ctx)
	case agentinstance.FieldVote:
		return m.OldVote(ctx)
	case agentinstance.FieldConfidence:
		return m.OldConfidence(ctx)
	case agentinstance.FieldInitialAssessment:
		return m.OldInitialAssessment(ctx)
	case agentinstance.FieldTokensUsed:
		return m.OldTokensUsed(ctx)
	case agentinstance.FieldCostCents:
		return m.OldCostCents(ctx)
	case agentinstance.FieldTerminatedAt:
		return m.OldTerminatedAt(ctx)
	case agentinstance.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case agentinstance.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentInstance field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentInstanceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentinstance.FieldSessionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case agentinstance.FieldAgentDefinitionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentDefinitionID(v)
		return nil
	case agentinstance.FieldRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case agentinstance.FieldStatus:
		v, ok := value.(agentinstance.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case agentinstance.FieldVote:
		v, ok := value.(agentinstance.Vote)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVote(v)
		return nil
	case agentinstance.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case agentinstance.FieldInitialAssessment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInitialAssessment(v)
		return nil
	case agentinstance.FieldTokensUsed:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensUsed(v)
		return nil
	case agentinstance.FieldCostCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCostCents(v)
		return nil
	case agentinstance.FieldTerminatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTerminatedAt(v)
		return nil
	case agentinstance.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case agentinstance.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentInstance field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentInstanceMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, agentinstance.FieldConfidence)
	}
	if m.addtokens_used != nil {
		fields = append(fields, agentinstance.FieldTokensUsed)
	}
	if m.addcost_cents != nil {
		fields = append(fields, agentinstance.FieldCostCents)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentInstanceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agentinstance.FieldConfidence:
		return m.AddedConfidence()
	case agentinstance.FieldTokensUsed:
		return m.AddedTokensUsed()
	case agentinstance.FieldCostCents:
		return m.AddedCostCents()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentInstanceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agentinstance.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case agentinstance.FieldTokensUsed:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensUsed(v)
		return nil
	case agentinstance.FieldCostCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCostCents(v)
		return nil
	}
	return fmt.Errorf("unknown AgentInstance numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentInstanceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentinstance.FieldVote) {
		fields = append(fields, agentinstance.FieldVote)
	}
	if m.FieldCleared(agentinstance.FieldConfidence) {
		fields = append(fields, agentinstance.FieldConfidence)
	}
	if m.FieldCleared(agentinstance.FieldInitialAssessment) {
		fields = append(fields, agentinstance.FieldInitialAssessment)
	}
	if m.FieldCleared(agentinstance.FieldTerminatedAt) {
		fields = append(fields, agentinstance.FieldTerminatedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentInstanceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentInstanceMutation) ClearField(name string) error {
	switch name {
	case agentinstance.FieldVote:
		m.ClearVote()
		return nil
	case agentinstance.FieldConfidence:
		m.ClearConfidence()
		return nil
	case agentinstance.FieldInitialAssessment:
		m.ClearInitialAssessment()
		return nil
	case agentinstance.FieldTerminatedAt:
		m.ClearTerminatedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentInstance nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentInstanceMutation) ResetField(name string) error {
	switch name {
	case agentinstance.FieldSessionID:
		m.ResetSessionID()
		return nil
	case agentinstance.FieldAgentDefinitionID:
		m.ResetAgentDefinitionID()
		return nil
	case agentinstance.FieldRole:
		m.ResetRole()
		return nil
	case agentinstance.FieldStatus:
		m.ResetStatus()
		return nil
	case agentinstance.FieldVote:
		m.ResetVote()
		return nil
	case agentinstance.FieldConfidence:
		m.ResetConfidence()
		return nil
	case agentinstance.FieldInitialAssessment:
		m.ResetInitialAssessment()
		return nil
	case agentinstance.FieldTokensUsed:
		m.ResetTokensUsed()
		return nil
	case agentinstance.FieldCostCents:
		m.ResetCostCents()
		return nil
	case agentinstance.FieldTerminatedAt:
		m.ResetTerminatedAt()
		return nil
	case agentinstance.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case agentinstance.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentInstance field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentInstanceMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, agentinstance.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentInstanceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agentinstance.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentInstanceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentInstanceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentInstanceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, agentinstance.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentInstanceMutation) EdgeCleared(name string) bool {
	switch name {
	case agentinstance.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentInstanceMutation) ClearEdge(name string) error {
	switch name {
	case agentinstance.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown AgentInstance unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentInstanceMutation) ResetEdge(name string) error {
	switch name {
	case agentinstance.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown AgentInstance edge %s", name)
}

// AnalysisSessionMutation represents an operation that mutates the AnalysisSession nodes in the graph.
type AnalysisSessionMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	workflow_id        *uuid.UUID
	status             *analysissession.Status
	error_message      *string
	input_content_hash *string
	expires_at         *time.Time
	metadata           *map[string]interface{}
	started_at         *time.Time
	completed_at       *time.Time
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	workspace          *uuid.UUID
	clearedworkspace   bool
	event              *uuid.UUID
	clearedevent       bool
	instances          map[uuid.UUID]struct{}
	removedinstances   map[uuid.UUID]struct{}
	clearedinstances   bool
	messages           map[uuid.UUID]struct{}
	removedmessages    map[uuid.UUID]struct{}
	clearedmessages    bool
	verdict            *uuid.UUID
	clearedverdict     bool
	done               bool
	oldValue           func(context.Context) (*AnalysisSession, error)
	predicates         []predicate.AnalysisSession
}

var _ ent.Mutation = (*AnalysisSessionMutation)(nil)

// analysissessionOption allows management of the mutation configuration using functional options.
type analysissessionOption func(*AnalysisSessionMutation)

// newAnalysisSessionMutation creates new mutation for the AnalysisSession entity.
func newAnalysisSessionMutation(c config, op Op, opts ...analysissessionOption) *AnalysisSessionMutation {
	m := &AnalysisSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeAnalysisSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnalysisSessionID sets the ID field of the mutation.
func withAnalysisSessionID(id uuid.UUID) analysissessionOption {
	return func(m *AnalysisSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *AnalysisSession
		)
		m.oldValue = func(ctx context.Context) (*AnalysisSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AnalysisSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnalysisSession sets the old AnalysisSession of the mutation.
func withAnalysisSession(node *AnalysisSession) analysissessionOption {
	return func(m *AnalysisSessionMutation) {
		m.oldValue = func(context.Context) (*AnalysisSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnalysisSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnalysisSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AnalysisSession entities.
func (m *AnalysisSessionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnalysisSessionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnalysisSessionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AnalysisSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *AnalysisSessionMutation) SetWorkspaceID(u uuid.UUID) {
	m.workspace = &u
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *AnalysisSessionMutation) WorkspaceID() (r uuid.UUID, exists bool) {
	v := m.workspace
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the AnalysisSession entity.
// If the AnalysisSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisSessionMutation) OldWorkspaceID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *AnalysisSessionMutation) ResetWorkspaceID() {
	m.workspace = nil
}

// SetEventID sets the "event_id" field.
func (m *AnalysisSessionMutation) SetEventID(u uuid.UUID) {
	m.event = &u
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *AnalysisSessionMutation) EventID() (r uuid.UUID, exists bool) {
	v := m.event
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the AnalysisSession entity.
// If the AnalysisSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisSessionMutation) OldEventID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// ResetEventID resets all changes to the "event_id" field.
func (m *AnalysisSessionMutation) ResetEventID() {
	m.event = nil
}

// SetWorkflowID sets the "workflow_id" field.
func (m *AnalysisSessionMutation) SetWorkflowID(u uuid.UUID) {
	m.workflow_id = &u
}

// WorkflowID returns the value of the "workflow_id" field in the mutation.
func (m *AnalysisSessionMutation) WorkflowID() (r uuid.UUID, exists bool) {
	v := m.workflow_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkflowID returns the old "workflow_id" field's value of the AnalysisSession entity.
// If the AnalysisSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisSessionMutation) OldWorkflowID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkflowID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkflowID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkflowID: %w", err)
	}
	return oldValue.WorkflowID, nil
}

// ResetWorkflowID resets all changes to the "workflow_id" field.
func (m *AnalysisSessionMutation) ResetWorkflowID() {
	m.workflow_id = nil
}

// SetStatus sets the "status" field.
func (m *AnalysisSessionMutation) SetStatus(a analysissession.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AnalysisSessionMutation) Status() (r analysissession.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AnalysisSession entity.
// If the AnalysisSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisSessionMutation) OldStatus(ctx context.Context) (v analysissession.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AnalysisSessionMutation) ResetStatus() {
	m.status = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *AnalysisSessionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *AnalysisSessionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the AnalysisSession entity.
// If the AnalysisSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisSessionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *AnalysisSessionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[analysissession.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *AnalysisSessionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[analysissession.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *AnalysisSessionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, analysissession.FieldErrorMessage)
}

// SetInputContentHash sets the "input_content_hash" field.
func (m *AnalysisSessionMutation) SetInputContentHash(s string) {
	m.input_content_hash = &s
}

// InputContentHash returns the value of the "input_content_hash" field in the mutation.
func (m *AnalysisSessionMutation) InputContentHash() (r string, exists bool) {
	v := m.input_content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldInputContentHash returns the old "input_content_hash" field's value of the AnalysisSession entity.
// If the AnalysisSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisSessionMutation) OldInputContentHash(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputContentHash: %w", err)
	}
	return oldValue.InputContentHash, nil
}

// ClearInputContentHash clears the value of the "input_content_hash" field.
func (m *AnalysisSessionMutation) ClearInputContentHash() {
	m.input_content_hash = nil
	m.clearedFields[analysissession.FieldInputContentHash] = struct{}{}
}

// InputContentHashCleared returns if the "input_content_hash" field was cleared in this mutation.
func (m *AnalysisSessionMutation) InputContentHashCleared() bool {
	_, ok := m.clearedFields[analysissession.FieldInputContentHash]
	return ok
}

// ResetInputContentHash resets all changes to the "input_content_hash" field.
func (m *AnalysisSessionMutation) ResetInputContentHash() {
	m.input_content_hash = nil
	delete(m.clearedFields, analysissession.FieldInputContentHash)
}

// SetExpiresAt sets the "expires_at" field.
func (m *AnalysisSessionMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *AnalysisSessionMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the AnalysisSession entity.
// If the AnalysisSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisSessionMutation) OldExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (m *AnalysisSessionMutation) ClearExpiresAt() {
	m.expires_at = nil
	m.clearedFields[analysissession.FieldExpiresAt] = struct{}{}
}

// ExpiresAtCleared returns if the "expires_at" field was cleared in this mutation.
func (m *AnalysisSessionMutation) ExpiresAtCleared() bool {
	_, ok := m.clearedFields[analysissession.FieldExpiresAt]
	return ok
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *AnalysisSessionMutation) ResetExpiresAt() {
	m.expires_at = nil
	delete(m.clearedFields, analysissession.FieldExpiresAt)
}

// SetMetadata sets the "metadata" field.
func (m *AnalysisSessionMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *AnalysisSessionMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the AnalysisSession entity.
// If the AnalysisSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisSessionMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *AnalysisSessionMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[analysissession.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *AnalysisSessionMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[analysissession.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *AnalysisSessionMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, analysissession.FieldMetadata)
}

// SetStartedAt sets the "started_at" field.
func (m *AnalysisSessionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *AnalysisSessionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the AnalysisSession entity.
// If the AnalysisSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisSessionMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *AnalysisSessionMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[analysissession.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *AnalysisSessionMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[analysissession.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *AnalysisSessionMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, analysissession.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *AnalysisSessionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *AnalysisSessionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the AnalysisSession entity.
// If the AnalysisSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisSessionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *AnalysisSessionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[analysissession.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *AnalysisSessionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[analysissession.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *AnalysisSessionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, analysissession.FieldCompletedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *AnalysisSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AnalysisSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AnalysisSession entity.
// If the AnalysisSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AnalysisSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AnalysisSessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AnalysisSessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AnalysisSession entity.
// If the AnalysisSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisSessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AnalysisSessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (m *AnalysisSessionMutation) ClearWorkspace() {
	m.clearedworkspace = true
	m.clearedFields[analysissession.FieldWorkspaceID] = struct{}{}
}

// WorkspaceCleared reports if the "workspace" edge to the Workspace entity was cleared.
func (m *AnalysisSessionMutation) WorkspaceCleared() bool {
	return m.clearedworkspace
}

// WorkspaceIDs returns the "workspace" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkspaceID instead. It exists only for internal usage by the builders.
func (m *AnalysisSessionMutation) WorkspaceIDs() (ids []uuid.UUID) {
	if id := m.workspace; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorkspace resets all changes to the "workspace" edge.
func (m *AnalysisSessionMutation) ResetWorkspace() {
	m.workspace = nil
	m.clearedworkspace = false
}

// ClearEvent clears the "event" edge to the AgentEvent entity.
func (m *AnalysisSessionMutation) ClearEvent() {
	m.clearedevent = true
	m.clearedFields[analysissession.FieldEventID] = struct{}{}
}

// EventCleared reports if the "event" edge to the AgentEvent entity was cleared.
func (m *AnalysisSessionMutation) EventCleared() bool {
	return m.clearedevent
}

// EventIDs returns the "event" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EventID instead. It exists only for internal usage by the builders.
func (m *AnalysisSessionMutation) EventIDs() (ids []uuid.UUID) {
	if id := m.event; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEvent resets all changes to the "event" edge.
func (m *AnalysisSessionMutation) ResetEvent() {
	m.event = nil
	m.clearedevent = false
}

// AddInstanceIDs adds the "instances" edge to the AgentInstance entity by ids.
func (m *AnalysisSessionMutation) AddInstanceIDs(ids ...uuid.UUID) {
	if m.instances == nil {
		m.instances = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.instances[ids[i]] = struct{}{}
	}
}

// ClearInstances clears the "instances" edge to the AgentInstance entity.
func (m *AnalysisSessionMutation) ClearInstances() {
	m.clearedinstances = true
}

// InstancesCleared reports if the "instances" edge to the AgentInstance entity was cleared.
func (m *AnalysisSessionMutation) InstancesCleared() bool {
	return m.clearedinstances
}

// RemoveInstanceIDs removes the "instances" edge to the AgentInstance entity by IDs.
func (m *AnalysisSessionMutation) RemoveInstanceIDs(ids ...uuid.UUID) {
	if m.removedinstances == nil {
		m.removedinstances = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.instances, ids[i])
		m.removedinstances[ids[i]] = struct{}{}
	}
}

// RemovedInstances returns the removed IDs of the "instances" edge to the AgentInstance entity.
func (m *AnalysisSessionMutation) RemovedInstancesIDs() (ids []uuid.UUID) {
	for id := range m.removedinstances {
		ids = append(ids, id)
	}
	return
}

// InstancesIDs returns the "instances" edge IDs in the mutation.
func (m *AnalysisSessionMutation) InstancesIDs() (ids []uuid.UUID) {
	for id := range m.instances {
		ids = append(ids, id)
	}
	return
}

// ResetInstances resets all changes to the "instances" edge.
func (m *AnalysisSessionMutation) ResetInstances() {
	m.instances = nil
	m.clearedinstances = false
	m.removedinstances = nil
}

// AddMessageIDs adds the "messages" edge to the DeliberationMessage entity by ids.
func (m *AnalysisSessionMutation) AddMessageIDs(ids ...uuid.UUID) {
	if m.messages == nil {
		m.messages = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.messages[ids[i]] = struct{}{}
	}
}

// ClearMessages clears the "messages" edge to the DeliberationMessage entity.
func (m *AnalysisSessionMutation) ClearMessages() {
	m.clearedmessages = true
}

// MessagesCleared reports if the "messages" edge to the DeliberationMessage entity was cleared.
func (m *AnalysisSessionMutation) MessagesCleared() bool {
	return m.clearedmessages
}

// RemoveMessageIDs removes the "messages" edge to the DeliberationMessage entity by IDs.
func (m *AnalysisSessionMutation) RemoveMessageIDs(ids ...uuid.UUID) {
	if m.removedmessages == nil {
		m.removedmessages = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.messages, ids[i])
		m.removedmessages[ids[i]] = struct{}{}
	}
}

// RemovedMessages returns the removed IDs of the "messages" edge to the DeliberationMessage entity.
func (m *AnalysisSessionMutation) RemovedMessagesIDs() (ids []uuid.UUID) {
	for id := range m.removedmessages {
		ids = append(ids, id)
	}
	return
}

// MessagesIDs returns the "messages" edge IDs in the mutation.
func (m *AnalysisSessionMutation) MessagesIDs() (ids []uuid.UUID) {
	for id := range m.messages {
		ids = append(ids, id)
	}
	return
}

// ResetMessages resets all changes to the "messages" edge.
func (m *AnalysisSessionMutation) ResetMessages() {
	m.messages = nil
	m.clearedmessages = false
	m.removedmessages = nil
}

// SetVerdictID sets the "verdict" edge to the Verdict entity by id.
func (m *AnalysisSessionMutation) SetVerdictID(id uuid.UUID) {
	m.verdict = &id
}

// ClearVerdict clears the "verdict" edge to the Verdict entity.
func (m *AnalysisSessionMutation) ClearVerdict() {
	m.clearedverdict = true
}

// VerdictCleared reports if the "verdict" edge to the Verdict entity was cleared.
func (m *AnalysisSessionMutation) VerdictCleared() bool {
	return m.clearedverdict
}

// VerdictID returns the "verdict" edge ID in the mutation.
func (m *AnalysisSessionMutation) VerdictID() (id uuid.UUID, exists bool) {
	if m.verdict != nil {
		return *m.verdict, true
	}
	return
}

// VerdictIDs returns the "verdict" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// VerdictID instead. It exists only for internal usage by the builders.
func (m *AnalysisSessionMutation) VerdictIDs() (ids []uuid.UUID) {
	if id := m.verdict; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetVerdict resets all changes to the "verdict" edge.
func (m *AnalysisSessionMutation) ResetVerdict() {
	m.verdict = nil
	m.clearedverdict = false
}

// Where appends a list predicates to the AnalysisSessionMutation builder.
func (m *AnalysisSessionMutation) Where(ps ...predicate.AnalysisSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnalysisSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnalysisSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AnalysisSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnalysisSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnalysisSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AnalysisSession).
func (m *AnalysisSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnalysisSessionMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.workspace != nil {
		fields = append(fields, analysissession.FieldWorkspaceID)
	}
	if m.event != nil {
		fields = append(fields, analysissession.FieldEventID)
	}
	if m.workflow_id != nil {
		fields = append(fields, analysissession.FieldWorkflowID)
	}
	if m.status != nil {
		fields = append(fields, analysissession.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, analysissession.FieldErrorMessage)
	}
	if m.input_content_hash != nil {
		fields = append(fields, analysissession.FieldInputContentHash)
	}
	if m.expires_at != nil {
		fields = append(fields, analysissession.FieldExpiresAt)
	}
	if m.metadata != nil {
		fields = append(fields, analysissession.FieldMetadata)
	}
	if m.started_at != nil {
		fields = append(fields, analysissession.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, analysissession.FieldCompletedAt)
	}
	if m.created_at != nil {
		fields = append(fields, analysissession.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, analysissession.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnalysisSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case analysissession.FieldWorkspaceID:
		return m.WorkspaceID()
	case analysissession.FieldEventID:
		return m.EventID()
	case analysissession.FieldWorkflowID:
		return m.WorkflowID()
	case analysissession.FieldStatus:
		return m.Status()
	case analysissession.FieldErrorMessage:
		return m.ErrorMessage()
	case analysissession.FieldInputContentHash:
		return m.InputContentHash()
	case analysissession.FieldExpiresAt:
		return m.ExpiresAt()
	case analysissession.FieldMetadata:
		return m.Metadata()
	case analysissession.FieldStartedAt:
		return m.StartedAt()
	case analysissession.FieldCompletedAt:
		return m.CompletedAt()
	case analysissession.FieldCreatedAt:
		return m.CreatedAt()
	case analysissession.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnalysisSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case analysissession.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case analysissession.FieldEventID:
		return m.OldEventID(ctx)
	case analysissession.FieldWorkflowID:
		return m.OldWorkflowID(ctx)
	case analysissession.FieldStatus:
		return m.OldStatus(ctx)
	case analysissession.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case analysissession.FieldInputContentHash:
		return m.OldInputContentHash(ctx)
	case analysissession.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case analysissession.FieldMetadata:
		return m.OldMetadata(ctx)
	case analysissession.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case analysissession.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case analysissession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case analysissession.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AnalysisSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalysisSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case analysissession.FieldWorkspaceID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case analysissession.FieldEventID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case analysissession.FieldWorkflowID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkflowID(v)
		return nil
	case analysissession.FieldStatus:
		v, ok := value.(analysissession.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case analysissession.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case analysissession.FieldInputContentHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputContentHash(v)
		return nil
	case analysissession.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case analysissession.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case analysissession.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case analysissession.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case analysissession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case analysissession.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AnalysisSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnalysisSessionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnalysisSessionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalysisSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AnalysisSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnalysisSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(analysissession.FieldErrorMessage) {
		fields = append(fields, analysissession.FieldErrorMessage)
	}
	if m.FieldCleared(analysissession.FieldInputContentHash) {
		fields = append(fields, analysissession.FieldInputContentHash)
	}
	if m.FieldCleared(analysissession.FieldExpiresAt) {
		fields = append(fields, analysissession.FieldExpiresAt)
	}
	if m.FieldCleared(analysissession.FieldMetadata) {
		fields = append(fields, analysissession.FieldMetadata)
	}
	if m.FieldCleared(analysissession.FieldStartedAt) {
		fields = append(fields, analysissession.FieldStartedAt)
	}
	if m.FieldCleared(analysissession.FieldCompletedAt) {
		fields = append(fields, analysissession.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnalysisSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnalysisSessionMutation) ClearField(name string) error {
	switch name {
	case analysissession.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case analysissession.FieldInputContentHash:
		m.ClearInputContentHash()
		return nil
	case analysissession.FieldExpiresAt:
		m.ClearExpiresAt()
		return nil
	case analysissession.FieldMetadata:
		m.ClearMetadata()
		return nil
	case analysissession.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case analysissession.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown AnalysisSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnalysisSessionMutation) ResetField(name string) error {
	switch name {
	case analysissession.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case analysissession.FieldEventID:
		m.ResetEventID()
		return nil
	case analysissession.FieldWorkflowID:
		m.ResetWorkflowID()
		return nil
	case analysissession.FieldStatus:
		m.ResetStatus()
		return nil
	case analysissession.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case analysissession.FieldInputContentHash:
		m.ResetInputContentHash()
		return nil
	case analysissession.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case analysissession.FieldMetadata:
		m.ResetMetadata()
		return nil
	case analysissession.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case analysissession.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case analysissession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case analysissession.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown AnalysisSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnalysisSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 5)
	if m.workspace != nil {
		edges = append(edges, analysissession.EdgeWorkspace)
	}
	if m.event != nil {
		edges = append(edges, analysissession.EdgeEvent)
	}
	if m.instances != nil {
		edges = append(edges, analysissession.EdgeInstances)
	}
	if m.messages != nil {
		edges = append(edges, analysissession.EdgeMessages)
	}
	if m.verdict != nil {
		edges = append(edges, analysissession.EdgeVerdict)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnalysisSessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case analysissession.EdgeWorkspace:
		if id := m.workspace; id != nil {
			return []ent.Value{*id}
		}
	case analysissession.EdgeEvent:
		if id := m.event; id != nil {
			return []ent.Value{*id}
		}
	case analysissession.EdgeInstances:
		ids := make([]ent.Value, 0, len(m.instances))
		for id := range m.instances {
			ids = append(ids, id)
		}
		return ids
	case analysissession.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.messages))
		for id := range m.messages {
			ids = append(ids, id)
		}
		return ids
	case analysissession.EdgeVerdict:
		if id := m.verdict; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnalysisSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 5)
	if m.removedinstances != nil {
		edges = append(edges, analysissession.EdgeInstances)
	}
	if m.removedmessages != nil {
		edges = append(edges, analysissession.EdgeMessages)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnalysisSessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case analysissession.EdgeInstances:
		ids := make([]ent.Value, 0, len(m.removedinstances))
		for id := range m.removedinstances {
			ids = append(ids, id)
		}
		return ids
	case analysissession.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.removedmessages))
		for id := range m.removedmessages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnalysisSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 5)
	if m.clearedworkspace {
		edges = append(edges, analysissession.EdgeWorkspace)
	}
	if m.clearedevent {
		edges = append(edges, analysissession.EdgeEvent)
	}
	if m.clearedinstances {
		edges = append(edges, analysissession.EdgeInstances)
	}
	if m.clearedmessages {
		edges = append(edges, analysissession.EdgeMessages)
	}
	if m.clearedverdict {
		edges = append(edges, analysissession.EdgeVerdict)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnalysisSessionMutation) EdgeCleared(name string) bool {
	switch name {
	case analysissession.EdgeWorkspace:
		return m.clearedworkspace
	case analysissession.EdgeEvent:
		return m.clearedevent
	case analysissession.EdgeInstances:
		return m.clearedinstances
	case analysissession.EdgeMessages:
		return m.clearedmessages
	case analysissession.EdgeVerdict:
		return m.clearedverdict
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnalysisSessionMutation) ClearEdge(name string) error {
	switch name {
	case analysissession.EdgeWorkspace:
		m.ClearWorkspace()
		return nil
	case analysissession.EdgeEvent:
		m.ClearEvent()
		return nil
	case analysissession.EdgeVerdict:
		m.ClearVerdict()
		return nil
	}
	return fmt.Errorf("unknown AnalysisSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnalysisSessionMutation) ResetEdge(name string) error {
	switch name {
	case analysissession.EdgeWorkspace:
		m.ResetWorkspace()
		return nil
	case analysissession.EdgeEvent:
		m.ResetEvent()
		return nil
	case analysissession.EdgeInstances:
		m.ResetInstances()
		return nil
	case analysissession.EdgeMessages:
		m.ResetMessages()
		return nil
	case analysissession.EdgeVerdict:
		m.ResetVerdict()
		return nil
	}
	return fmt.Errorf("unknown AnalysisSession edge %s", name)
}

// AuditEntryMutation represents an operation that mutates the AuditEntry nodes in the graph.
type AuditEntryMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	action        *string
	resource_type *string
	resource_id   *string
	actor_id      *uuid.UUID
	workspace_id  *uuid.UUID
	ip            *string
	user_agent    *string
	metadata      *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AuditEntry, error)
	predicates    []predicate.AuditEntry
}

var _ ent.Mutation = (*AuditEntryMutation)(nil)

// auditentryOption allows management of the mutation configuration using functional options.
type auditentryOption func(*AuditEntryMutation)

// newAuditEntryMutation creates new mutation for the AuditEntry entity.
func newAuditEntryMutation(c config, op Op, opts ...auditentryOption) *AuditEntryMutation {
	m := &AuditEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditEntryID sets the ID field of the mutation.
func withAuditEntryID(id uuid.UUID) auditentryOption {
	return func(m *AuditEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditEntry
		)
		m.oldValue = func(ctx context.Context) (*AuditEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditEntry sets the old AuditEntry of the mutation.
func withAuditEntry(node *AuditEntry) auditentryOption {
	return func(m *AuditEntryMutation) {
		m.oldValue = func(context.Context) (*AuditEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AuditEntry entities.
func (m *AuditEntryMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditEntryMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditEntryMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAction sets the "action" field.
func (m *AuditEntryMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *AuditEntryMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *AuditEntryMutation) ResetAction() {
	m.action = nil
}

// SetResourceType sets the "resource_type" field.
func (m *AuditEntryMutation) SetResourceType(s string) {
	m.resource_type = &s
}

// ResourceType returns the value of the "resource_type" field in the mutation.
func (m *AuditEntryMutation) ResourceType() (r string, exists bool) {
	v := m.resource_type
	if v == nil {
		return
	}
	return *v, true
}

// OldResourceType returns the old "resource_type" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldResourceType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResourceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResourceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResourceType: %w", err)
	}
	return oldValue.ResourceType, nil
}

// ResetResourceType resets all changes to the "resource_type" field.
func (m *AuditEntryMutation) ResetResourceType() {
	m.resource_type = nil
}

// SetResourceID sets the "resource_id" field.
func (m *AuditEntryMutation) SetResourceID(s string) {
	m.resource_id = &s
}

// ResourceID returns the value of the "resource_id" field in the mutation.
func (m *AuditEntryMutation) ResourceID() (r string, exists bool) {
	v := m.resource_id
	if v == nil {
		return
	}
	return *v, true
}

// OldResourceID returns the old "resource_id" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldResourceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResourceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResourceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResourceID: %w", err)
	}
	return oldValue.ResourceID, nil
}

// ClearResourceID clears the value of the "resource_id" field.
func (m *AuditEntryMutation) ClearResourceID() {
	m.resource_id = nil
	m.clearedFields[auditentry.FieldResourceID] = struct{}{}
}

// ResourceIDCleared returns if the "resource_id" field was cleared in this mutation.
func (m *AuditEntryMutation) ResourceIDCleared() bool {
	_, ok := m.clearedFields[auditentry.FieldResourceID]
	return ok
}

// ResetResourceID resets all changes to the "resource_id" field.
func (m *AuditEntryMutation) ResetResourceID() {
	m.resource_id = nil
	delete(m.clearedFields, auditentry.FieldResourceID)
}

// SetActorID sets the "actor_id" field.
func (m *AuditEntryMutation) SetActorID(u uuid.UUID) {
	m.actor_id = &u
}

// ActorID returns the value of the "actor_id" field in the mutation.
func (m *AuditEntryMutation) ActorID() (r uuid.UUID, exists bool) {
	v := m.actor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldActorID returns the old "actor_id" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldActorID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActorID: %w", err)
	}
	return oldValue.ActorID, nil
}

// ClearActorID clears the value of the "actor_id" field.
func (m *AuditEntryMutation) ClearActorID() {
	m.actor_id = nil
	m.clearedFields[auditentry.FieldActorID] = struct{}{}
}

// ActorIDCleared returns if the "actor_id" field was cleared in this mutation.
func (m *AuditEntryMutation) ActorIDCleared() bool {
	_, ok := m.clearedFields[auditentry.FieldActorID]
	return ok
}

// ResetActorID resets all changes to the "actor_id" field.
func (m *AuditEntryMutation) ResetActorID() {
	m.actor_id = nil
	delete(m.clearedFields, auditentry.FieldActorID)
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *AuditEntryMutation) SetWorkspaceID(u uuid.UUID) {
	m.workspace_id = &u
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *AuditEntryMutation) WorkspaceID() (r uuid.UUID, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldWorkspaceID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ClearWorkspaceID clears the value of the "workspace_id" field.
func (m *AuditEntryMutation) ClearWorkspaceID() {
	m.workspace_id = nil
	m.clearedFields[auditentry.FieldWorkspaceID] = struct{}{}
}

// WorkspaceIDCleared returns if the "workspace_id" field was cleared in this mutation.
func (m *AuditEntryMutation) WorkspaceIDCleared() bool {
	_, ok := m.clearedFields[auditentry.FieldWorkspaceID]
	return ok
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *AuditEntryMutation) ResetWorkspaceID() {
	m.workspace_id = nil
	delete(m.clearedFields, auditentry.FieldWorkspaceID)
}

// SetIP sets the "ip" field.
func (m *AuditEntryMutation) SetIP(s string) {
	m.ip = &s
}

// IP returns the value of the "ip" field in the mutation.
func (m *AuditEntryMutation) IP() (r string, exists bool) {
	v := m.ip
	if v == nil {
		return
	}
	return *v, true
}

// OldIP returns the old "ip" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldIP(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIP is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIP requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIP: %w", err)
	}
	return oldValue.IP, nil
}

// ClearIP clears the value of the "ip" field.
func (m *AuditEntryMutation) ClearIP() {
	m.ip = nil
	m.clearedFields[auditentry.FieldIP] = struct{}{}
}

// IPCleared returns if the "ip" field was cleared in this mutation.
func (m *AuditEntryMutation) IPCleared() bool {
	_, ok := m.clearedFields[auditentry.FieldIP]
	return ok
}

// ResetIP resets all changes to the "ip" field.
func (m *AuditEntryMutation) ResetIP() {
	m.ip = nil
	delete(m.clearedFields, auditentry.FieldIP)
}

// SetUserAgent sets the "user_agent" field.
func (m *AuditEntryMutation) SetUserAgent(s string) {
	m.user_agent = &s
}

// UserAgent returns the value of the "user_agent" field in the mutation.
func (m *AuditEntryMutation) UserAgent() (r string, exists bool) {
	v := m.user_agent
	if v == nil {
		return
	}
	return *v, true
}

// OldUserAgent returns the old "user_agent" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldUserAgent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserAgent: %w", err)
	}
	return oldValue.UserAgent, nil
}

// ClearUserAgent clears the value of the "user_agent" field.
func (m *AuditEntryMutation) ClearUserAgent() {
	m.user_agent = nil
	m.clearedFields[auditentry.FieldUserAgent] = struct{}{}
}

// UserAgentCleared returns if the "user_agent" field was cleared in this mutation.
func (m *AuditEntryMutation) UserAgentCleared() bool {
	_, ok := m.clearedFields[auditentry.FieldUserAgent]
	return ok
}

// ResetUserAgent resets all changes to the "user_agent" field.
func (m *AuditEntryMutation) ResetUserAgent() {
	m.user_agent = nil
	delete(m.clearedFields, auditentry.FieldUserAgent)
}

// SetMetadata sets the "metadata" field.
func (m *AuditEntryMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *AuditEntryMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *AuditEntryMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[auditentry.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *AuditEntryMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[auditentry.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *AuditEntryMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, auditentry.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *AuditEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AuditEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AuditEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AuditEntryMutation builder.
func (m *AuditEntryMutation) Where(ps ...predicate.AuditEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditEntry).
func (m *AuditEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditEntryMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.action != nil {
		fields = append(fields, auditentry.FieldAction)
	}
	if m.resource_type != nil {
		fields = append(fields, auditentry.FieldResourceType)
	}
	if m.resource_id != nil {
		fields = append(fields, auditentry.FieldResourceID)
	}
	if m.actor_id != nil {
		fields = append(fields, auditentry.FieldActorID)
	}
	if m.workspace_id != nil {
		fields = append(fields, auditentry.FieldWorkspaceID)
	}
	if m.ip != nil {
		fields = append(fields, auditentry.FieldIP)
	}
	if m.user_agent != nil {
		fields = append(fields, auditentry.FieldUserAgent)
	}
	if m.metadata != nil {
		fields = append(fields, auditentry.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, auditentry.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditentry.FieldAction:
		return m.Action()
	case auditentry.FieldResourceType:
		return m.ResourceType()
	case auditentry.FieldResourceID:
		return m.ResourceID()
	case auditentry.FieldActorID:
		return m.ActorID()
	case auditentry.FieldWorkspaceID:
		return m.WorkspaceID()
	case auditentry.FieldIP:
		return m.IP()
	case auditentry.FieldUserAgent:
		return m.UserAgent()
	case auditentry.FieldMetadata:
		return m.Metadata()
	case auditentry.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditentry.FieldAction:
		return m.OldAction(ctx)
	case auditentry.FieldResourceType:
		return m.OldResourceType(ctx)
	case auditentry.FieldResourceID:
		return m.OldResourceID(ctx)
	case auditentry.FieldActorID:
		return m.OldActorID(ctx)
	case auditentry.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case auditentry.FieldIP:
		return m.OldIP(ctx)
	case auditentry.FieldUserAgent:
		return m.OldUserAgent(ctx)
	case auditentry.FieldMetadata:
		return m.OldMetadata(ctx)
	case auditentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AuditEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditentry.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case auditentry.FieldResourceType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResourceType(v)
		return nil
	case auditentry.FieldResourceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResourceID(v)
		return nil
	case auditentry.FieldActorID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActorID(v)
		return nil
	case auditentry.FieldWorkspaceID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case auditentry.FieldIP:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIP(v)
		return nil
	case auditentry.FieldUserAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserAgent(v)
		return nil
	case auditentry.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case auditentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AuditEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditEntryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditEntryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AuditEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditentry.FieldResourceID) {
		fields = append(fields, auditentry.FieldResourceID)
	}
	if m.FieldCleared(auditentry.FieldActorID) {
		fields = append(fields, auditentry.FieldActorID)
	}
	if m.FieldCleared(auditentry.FieldWorkspaceID) {
		fields = append(fields, auditentry.FieldWorkspaceID)
	}
	if m.FieldCleared(auditentry.FieldIP) {
		fields = append(fields, auditentry.FieldIP)
	}
	if m.FieldCleared(auditentry.FieldUserAgent) {
		fields = append(fields, auditentry.FieldUserAgent)
	}
	if m.FieldCleared(auditentry.FieldMetadata) {
		fields = append(fields, auditentry.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditEntryMutation) ClearField(name string) error {
	switch name {
	case auditentry.FieldResourceID:
		m.ClearResourceID()
		return nil
	case auditentry.FieldActorID:
		m.ClearActorID()
		return nil
	case auditentry.FieldWorkspaceID:
		m.ClearWorkspaceID()
		return nil
	case auditentry.FieldIP:
		m.ClearIP()
		return nil
	case auditentry.FieldUserAgent:
		m.ClearUserAgent()
		return nil
	case auditentry.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown AuditEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditEntryMutation) ResetField(name string) error {
	switch name {
	case auditentry.FieldAction:
		m.ResetAction()
		return nil
	case auditentry.FieldResourceType:
		m.ResetResourceType()
		return nil
	case auditentry.FieldResourceID:
		m.ResetResourceID()
		return nil
	case auditentry.FieldActorID:
		m.ResetActorID()
		return nil
	case auditentry.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case auditentry.FieldIP:
		m.ResetIP()
		return nil
	case auditentry.FieldUserAgent:
		m.ResetUserAgent()
		return nil
	case auditentry.FieldMetadata:
		m.ResetMetadata()
		return nil
	case auditentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AuditEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AuditEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AuditEntry edge %s", name)
}

// ConsensusPolicyMutation represents an operation that mutates the ConsensusPolicy nodes in the graph.
type ConsensusPolicyMutation struct {
	config
	op                         Op
	typ                        string
	id                         *uuid.UUID
	name                       *string
	strategy                   *consensuspolicy.Strategy
	threshold                  *float64
	addthreshold               *float64
	weights                    *map[string]float64
	require_unanimous_on       *[]string
	appendrequire_unanimous_on []string
	created_at                 *time.Time
	updated_at                 *time.Time
	clearedFields              map[string]struct{}
	workspace                  *uuid.UUID
	clearedworkspace           bool
	done                       bool
	oldValue                   func(context.Context) (*ConsensusPolicy, error)
	predicates                 []predicate.ConsensusPolicy
}

var _ ent.Mutation = (*ConsensusPolicyMutation)(nil)

// consensuspolicyOption allows management of the mutation configuration using functional options.
type consensuspolicyOption func(*ConsensusPolicyMutation)

// newConsensusPolicyMutation creates new mutation for the ConsensusPolicy entity.
func newConsensusPolicyMutation(c config, op Op, opts ...consensuspolicyOption) *ConsensusPolicyMutation {
	m := &ConsensusPolicyMutation{
		config:        c,
		op:            op,
		typ:           TypeConsensusPolicy,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConsensusPolicyID sets the ID field of the mutation.
func withConsensusPolicyID(id uuid.UUID) consensuspolicyOption {
	return func(m *ConsensusPolicyMutation) {
		var (
			err   error
			once  sync.Once
			value *ConsensusPolicy
		)
		m.oldValue = func(ctx context.Context) (*ConsensusPolicy, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ConsensusPolicy.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConsensusPolicy sets the old ConsensusPolicy of the mutation.
func withConsensusPolicy(node *ConsensusPolicy) consensuspolicyOption {
	return func(m *ConsensusPolicyMutation) {
		m.oldValue = func(context.Context) (*ConsensusPolicy, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConsensusPolicyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConsensusPolicyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ConsensusPolicy entities.
func (m *ConsensusPolicyMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConsensusPolicyMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConsensusPolicyMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ConsensusPolicy.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *ConsensusPolicyMutation) SetWorkspaceID(u uuid.UUID) {
	m.workspace = &u
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *ConsensusPolicyMutation) WorkspaceID() (r uuid.UUID, exists bool) {
	v := m.workspace
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the ConsensusPolicy entity.
// If the ConsensusPolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConsensusPolicyMutation) OldWorkspaceID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *ConsensusPolicyMutation) ResetWorkspaceID() {
	m.workspace = nil
}

// SetName sets the "name" field.
func (m *ConsensusPolicyMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ConsensusPolicyMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the ConsensusPolicy entity.
// If the ConsensusPolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConsensusPolicyMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ConsensusPolicyMutation) ResetName() {
	m.name = nil
}

// SetStrategy sets the "strategy" field.
func (m *ConsensusPolicyMutation) SetStrategy(c consensuspolicy.Strategy) {
	m.strategy = &c
}

// Strategy returns the value of the "strategy" field in the mutation.
func (m *ConsensusPolicyMutation) Strategy() (r consensuspolicy.Strategy, exists bool) {
	v := m.strategy
	if v == nil {
		return
	}
	return *v, true
}

// OldStrategy returns the old "strategy" field's value of the ConsensusPolicy entity.
// If the ConsensusPolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConsensusPolicyMutation) OldStrategy(ctx context.Context) (v consensuspolicy.Strategy, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStrategy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStrategy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStrategy: %w", err)
	}
	return oldValue.Strategy, nil
}

// ResetStrategy resets all changes to the "strategy" field.
func (m *ConsensusPolicyMutation) ResetStrategy() {
	m.strategy = nil
}

// SetThreshold sets the "threshold" field.
func (m *ConsensusPolicyMutation) SetThreshold(f float64) {
	m.threshold = &f
	m.addthreshold = nil
}

// Threshold returns the value of the "threshold" field in the mutation.
func (m *ConsensusPolicyMutation) Threshold() (r float64, exists bool) {
	v := m.threshold
	if v == nil {
		return
	}
	return *v, true
}

// OldThreshold returns the old "threshold" field's value of the ConsensusPolicy entity.
// If the ConsensusPolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConsensusPolicyMutation) OldThreshold(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThreshold is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThreshold requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThreshold: %w", err)
	}
	return oldValue.Threshold, nil
}

// AddThreshold adds f to the "threshold" field.
func (m *ConsensusPolicyMutation) AddThreshold(f float64) {
	if m.addthreshold != nil {
		*m.addthreshold += f
	} else {
		m.addthreshold = &f
	}
}

// AddedThreshold returns the value that was added to the "threshold" field in this mutation.
func (m *ConsensusPolicyMutation) AddedThreshold() (r float64, exists bool) {
	v := m.addthreshold
	if v == nil {
		return
	}
	return *v, true
}

// ResetThreshold resets all changes to the "threshold" field.
func (m *ConsensusPolicyMutation) ResetThreshold() {
	m.threshold = nil
	m.addthreshold = nil
}

// SetWeights sets the "weights" field.
func (m *ConsensusPolicyMutation) SetWeights(value map[string]float64) {
	m.weights = &value
}

// Weights returns the value of the "weights" field in the mutation.
func (m *ConsensusPolicyMutation) Weights() (r map[string]float64, exists bool) {
	v := m.weights
	if v == nil {
		return
	}
	return *v, true
}

// OldWeights returns the old "weights" field's value of the ConsensusPolicy entity.
// If the ConsensusPolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConsensusPolicyMutation) OldWeights(ctx context.Context) (v map[string]float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeights is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeights requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeights: %w", err)
	}
	return oldValue.Weights, nil
}

// ClearWeights clears the value of the "weights" field.
func (m *ConsensusPolicyMutation) ClearWeights() {
	m.weights = nil
	m.clearedFields[consensuspolicy.FieldWeights] = struct{}{}
}

// WeightsCleared returns if the "weights" field was cleared in this mutation.
func (m *ConsensusPolicyMutation) WeightsCleared() bool {
	_, ok := m.clearedFields[consensuspolicy.FieldWeights]
	return ok
}

// ResetWeights resets all changes to the "weights" field.
func (m *ConsensusPolicyMutation) ResetWeights() {
	m.weights = nil
	delete(m.clearedFields, consensuspolicy.FieldWeights)
}

// SetRequireUnanimousOn sets the "require_unanimous_on" field.
func (m *ConsensusPolicyMutation) SetRequireUnanimousOn(s []string) {
	m.require_unanimous_on = &s
	m.appendrequire_unanimous_on = nil
}

// RequireUnanimousOn returns the value of the "require_unanimous_on" field in the mutation.
func (m *ConsensusPolicyMutation) RequireUnanimousOn() (r []string, exists bool) {
	v := m.require_unanimous_on
	if v == nil {
		return
	}
	return *v, true
}

// OldRequireUnanimousOn returns the old "require_unanimous_on" field's value of the ConsensusPolicy entity.
// If the ConsensusPolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConsensusPolicyMutation) OldRequireUnanimousOn(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequireUnanimousOn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequireUnanimousOn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequireUnanimousOn: %w", err)
	}
	return oldValue.RequireUnanimousOn, nil
}

// AppendRequireUnanimousOn adds s to the "require_unanimous_on" field.
func (m *ConsensusPolicyMutation) AppendRequireUnanimousOn(s []string) {
	m.appendrequire_unanimous_on = append(m.appendrequire_unanimous_on, s...)
}

// AppendedRequireUnanimousOn returns the list of values that were appended to the "require_unanimous_on" field in this mutation.
func (m *ConsensusPolicyMutation) AppendedRequireUnanimousOn() ([]string, bool) {
	if len(m.appendrequire_unanimous_on) == 0 {
		return nil, false
	}
	return m.appendrequire_unanimous_on, true
}

// ClearRequireUnanimousOn clears the value of the "require_unanimous_on" field.
func (m *ConsensusPolicyMutation) ClearRequireUnanimousOn() {
	m.require_unanimous_on = nil
	m.appendrequire_unanimous_on = nil
	m.clearedFields[consensuspolicy.FieldRequireUnanimousOn] = struct{}{}
}

// RequireUnanimousOnCleared returns if the "require_unanimous_on" field was cleared in this mutation.
func (m *ConsensusPolicyMutation) RequireUnanimousOnCleared() bool {
	_, ok := m.clearedFields[consensuspolicy.FieldRequireUnanimousOn]
	return ok
}

// ResetRequireUnanimousOn resets all changes to the "require_unanimous_on" field.
func (m *ConsensusPolicyMutation) ResetRequireUnanimousOn() {
	m.require_unanimous_on = nil
	m.appendrequire_unanimous_on = nil
	delete(m.clearedFields, consensuspolicy.FieldRequireUnanimousOn)
}

// SetCreatedAt sets the "created_at" field.
func (m *ConsensusPolicyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ConsensusPolicyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ConsensusPolicy entity.
// If the ConsensusPolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConsensusPolicyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ConsensusPolicyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ConsensusPolicyMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ConsensusPolicyMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ConsensusPolicy entity.
// If the ConsensusPolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConsensusPolicyMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ConsensusPolicyMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (m *ConsensusPolicyMutation) ClearWorkspace() {
	m.clearedworkspace = true
	m.clearedFields[consensuspolicy.FieldWorkspaceID] = struct{}{}
}

// WorkspaceCleared reports if the "workspace" edge to the Workspace entity was cleared.
func (m *ConsensusPolicyMutation) WorkspaceCleared() bool {
	return m.clearedworkspace
}

// WorkspaceIDs returns the "workspace" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkspaceID instead. It exists only for internal usage by the builders.
func (m *ConsensusPolicyMutation) WorkspaceIDs() (ids []uuid.UUID) {
	if id := m.workspace; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorkspace resets all changes to the "workspace" edge.
func (m *ConsensusPolicyMutation) ResetWorkspace() {
	m.workspace = nil
	m.clearedworkspace = false
}

// Where appends a list predicates to the ConsensusPolicyMutation builder.
func (m *ConsensusPolicyMutation) Where(ps ...predicate.ConsensusPolicy) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConsensusPolicyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConsensusPolicyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ConsensusPolicy, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConsensusPolicyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConsensusPolicyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ConsensusPolicy).
func (m *ConsensusPolicyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConsensusPolicyMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.workspace != nil {
		fields = append(fields, consensuspolicy.FieldWorkspaceID)
	}
	if m.name != nil {
		fields = append(fields, consensuspolicy.FieldName)
	}
	if m.strategy != nil {
		fields = append(fields, consensuspolicy.FieldStrategy)
	}
	if m.threshold != nil {
		fields = append(fields, consensuspolicy.FieldThreshold)
	}
	if m.weights != nil {
		fields = append(fields, consensuspolicy.FieldWeights)
	}
	if m.require_unanimous_on != nil {
		fields = append(fields, consensuspolicy.FieldRequireUnanimousOn)
	}
	if m.created_at != nil {
		fields = append(fields, consensuspolicy.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, consensuspolicy.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConsensusPolicyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case consensuspolicy.FieldWorkspaceID:
		return m.WorkspaceID()
	case consensuspolicy.FieldName:
		return m.Name()
	case consensuspolicy.FieldStrategy:
		return m.Strategy()
	case consensuspolicy.FieldThreshold:
		return m.Threshold()
	case consensuspolicy.FieldWeights:
		return m.Weights()
	case consensuspolicy.FieldRequireUnanimousOn:
		return m.RequireUnanimousOn()
	case consensuspolicy.FieldCreatedAt:
		return m.CreatedAt()
	case consensuspolicy.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConsensusPolicyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case consensuspolicy.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case consensuspolicy.FieldName:
		return m.OldName(ctx)
	case consensuspolicy.FieldStrategy:
		return m.OldStrategy(ctx)
	case consensuspolicy.FieldThreshold:
		return m.OldThreshold(ctx)
	case consensuspolicy.FieldWeights:
		return m.OldWeights(ctx)
	case consensuspolicy.FieldRequireUnanimousOn:
		return m.OldRequireUnanimousOn(ctx)
	case consensuspolicy.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case consensuspolicy.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ConsensusPolicy field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConsensusPolicyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case consensuspolicy.FieldWorkspaceID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case consensuspolicy.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case consensuspolicy.FieldStrategy:
		v, ok := value.(consensuspolicy.Strategy)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStrategy(v)
		return nil
	case consensuspolicy.FieldThreshold:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThreshold(v)
		return nil
	case consensuspolicy.FieldWeights:
		v, ok := value.(map[string]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeights(v)
		return nil
	case consensuspolicy.FieldRequireUnanimousOn:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequireUnanimousOn(v)
		return nil
	case consensuspolicy.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case consensuspolicy.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ConsensusPolicy field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConsensusPolicyMutation) AddedFields() []string {
	var fields []string
	if m.addthreshold != nil {
		fields = append(fields, consensuspolicy.FieldThreshold)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConsensusPolicyMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case consensuspolicy.FieldThreshold:
		return m.AddedThreshold()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConsensusPolicyMutation) AddField(name string, value ent.Value) error {
	switch name {
	case consensuspolicy.FieldThreshold:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddThreshold(v)
		return nil
	}
	return fmt.Errorf("unknown ConsensusPolicy numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConsensusPolicyMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(consensuspolicy.FieldWeights) {
		fields = append(fields, consensuspolicy.FieldWeights)
	}
	if m.FieldCleared(consensuspolicy.FieldRequireUnanimousOn) {
		fields = append(fields, consensuspolicy.FieldRequireUnanimousOn)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConsensusPolicyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConsensusPolicyMutation) ClearField(name string) error {
	switch name {
	case consensuspolicy.FieldWeights:
		m.ClearWeights()
		return nil
	case consensuspolicy.FieldRequireUnanimousOn:
		m.ClearRequireUnanimousOn()
		return nil
	}
	return fmt.Errorf("unknown ConsensusPolicy nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConsensusPolicyMutation) ResetField(name string) error {
	switch name {
	case consensuspolicy.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case consensuspolicy.FieldName:
		m.ResetName()
		return nil
	case consensuspolicy.FieldStrategy:
		m.ResetStrategy()
		return nil
	case consensuspolicy.FieldThreshold:
		m.ResetThreshold()
		return nil
	case consensuspolicy.FieldWeights:
		m.ResetWeights()
		return nil
	case consensuspolicy.FieldRequireUnanimousOn:
		m.ResetRequireUnanimousOn()
		return nil
	case consensuspolicy.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case consensuspolicy.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ConsensusPolicy field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConsensusPolicyMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.workspace != nil {
		edges = append(edges, consensuspolicy.EdgeWorkspace)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConsensusPolicyMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case consensuspolicy.EdgeWorkspace:
		if id := m.workspace; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConsensusPolicyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConsensusPolicyMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConsensusPolicyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedworkspace {
		edges = append(edges, consensuspolicy.EdgeWorkspace)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConsensusPolicyMutation) EdgeCleared(name string) bool {
	switch name {
	case consensuspolicy.EdgeWorkspace:
		return m.clearedworkspace
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConsensusPolicyMutation) ClearEdge(name string) error {
	switch name {
	case consensuspolicy.EdgeWorkspace:
		m.ClearWorkspace()
		return nil
	}
	return fmt.Errorf("unknown ConsensusPolicy unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConsensusPolicyMutation) ResetEdge(name string) error {
	switch name {
	case consensuspolicy.EdgeWorkspace:
		m.ResetWorkspace()
		return nil
	}
	return fmt.Errorf("unknown ConsensusPolicy edge %s", name)
}

// DeliberationMessageMutation represents an operation that mutates the DeliberationMessage nodes in the graph.
type DeliberationMessageMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	instance_id    *uuid.UUID
	message_type   *deliberationmessage.MessageType
	content        *string
	round          *int
	addround       *int
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	session        *uuid.UUID
	clearedsession bool
	done           bool
	oldValue       func(context.Context) (*DeliberationMessage, error)
	predicates     []predicate.DeliberationMessage
}

var _ ent.Mutation = (*DeliberationMessageMutation)(nil)

// deliberationmessageOption allows management of the mutation configuration using functional options.
type deliberationmessageOption func(*DeliberationMessageMutation)

// newDeliberationMessageMutation creates new mutation for the DeliberationMessage entity.
func newDeliberationMessageMutation(c config, op Op, opts ...deliberationmessageOption) *DeliberationMessageMutation {
	m := &DeliberationMessageMutation{
		config:        c,
		op:            op,
		typ:           TypeDeliberationMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDeliberationMessageID sets the ID field of the mutation.
func withDeliberationMessageID(id uuid.UUID) deliberationmessageOption {
	return func(m *DeliberationMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *DeliberationMessage
		)
		m.oldValue = func(ctx context.Context) (*DeliberationMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DeliberationMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDeliberationMessage sets the old DeliberationMessage of the mutation.
func withDeliberationMessage(node *DeliberationMessage) deliberationmessageOption {
	return func(m *DeliberationMessageMutation) {
		m.oldValue = func(context.Context) (*DeliberationMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DeliberationMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DeliberationMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DeliberationMessage entities.
func (m *DeliberationMessageMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DeliberationMessageMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DeliberationMessageMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DeliberationMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *DeliberationMessageMutation) SetSessionID(u uuid.UUID) {
	m.session = &u
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *DeliberationMessageMutation) SessionID() (r uuid.UUID, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the DeliberationMessage entity.
// If the DeliberationMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeliberationMessageMutation) OldSessionID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *DeliberationMessageMutation) ResetSessionID() {
	m.session = nil
}

// SetInstanceID sets the "instance_id" field.
func (m *DeliberationMessageMutation) SetInstanceID(u uuid.UUID) {
	m.instance_id = &u
}

// InstanceID returns the value of the "instance_id" field in the mutation.
func (m *DeliberationMessageMutation) InstanceID() (r uuid.UUID, exists bool) {
	v := m.instance_id
	if v == nil {
		return
	}
	return *v, true
}

// OldInstanceID returns the old "instance_id" field's value of the DeliberationMessage entity.
// If the DeliberationMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeliberationMessageMutation) OldInstanceID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstanceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstanceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstanceID: %w", err)
	}
	return oldValue.InstanceID, nil
}

// ResetInstanceID resets all changes to the "instance_id" field.
func (m *DeliberationMessageMutation) ResetInstanceID() {
	m.instance_id = nil
}

// SetMessageType sets the "message_type" field.
func (m *DeliberationMessageMutation) SetMessageType(dt deliberationmessage.MessageType) {
	m.message_type = &dt
}

// MessageType returns the value of the "message_type" field in the mutation.
func (m *DeliberationMessageMutation) MessageType() (r deliberationmessage.MessageType, exists bool) {
	v := m.message_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageType returns the old "message_type" field's value of the DeliberationMessage entity.
// If the DeliberationMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeliberationMessageMutation) OldMessageType(ctx context.Context) (v deliberationmessage.MessageType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageType: %w", err)
	}
	return oldValue.MessageType, nil
}

// ResetMessageType resets all changes to the "message_type" field.
func (m *DeliberationMessageMutation) ResetMessageType() {
	m.message_type = nil
}

// SetContent sets the "content" field.
func (m *DeliberationMessageMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *DeliberationMessageMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the DeliberationMessage entity.
// If the DeliberationMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeliberationMessageMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *DeliberationMessageMutation) ResetContent() {
	m.content = nil
}

// SetRound sets the "round" field.
func (m *DeliberationMessageMutation) SetRound(i int) {
	m.round = &i
	m.addround = nil
}

// Round returns the value of the "round" field in the mutation.
func (m *DeliberationMessageMutation) Round() (r int, exists bool) {
	v := m.round
	if v == nil {
		return
	}
	return *v, true
}

// OldRound returns the old "round" field's value of the DeliberationMessage entity.
// If the DeliberationMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeliberationMessageMutation) OldRound(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRound is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRound requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRound: %w", err)
	}
	return oldValue.Round, nil
}

// AddRound adds i to the "round" field.
func (m *DeliberationMessageMutation) AddRound(i int) {
	if m.addround != nil {
		*m.addround += i
	} else {
		m.addround = &i
	}
}

// AddedRound returns the value that was added to the "round" field in this mutation.
func (m *DeliberationMessageMutation) AddedRound() (r int, exists bool) {
	v := m.addround
	if v == nil {
		return
	}
	return *v, true
}

// ResetRound resets all changes to the "round" field.
func (m *DeliberationMessageMutation) ResetRound() {
	m.round = nil
	m.addround = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DeliberationMessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DeliberationMessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DeliberationMessage entity.
// If the DeliberationMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeliberationMessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DeliberationMessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DeliberationMessageMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DeliberationMessageMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the DeliberationMessage entity.
// If the DeliberationMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeliberationMessageMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DeliberationMessageMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearSession clears the "session" edge to the AnalysisSession entity.
func (m *DeliberationMessageMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[deliberationmessage.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the AnalysisSession entity was cleared.
func (m *DeliberationMessageMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *DeliberationMessageMutation) SessionIDs() (ids []uuid.UUID) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *DeliberationMessageMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the DeliberationMessageMutation builder.
func (m *DeliberationMessageMutation) Where(ps ...predicate.DeliberationMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DeliberationMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DeliberationMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DeliberationMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DeliberationMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DeliberationMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DeliberationMessage).
func (m *DeliberationMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DeliberationMessageMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.session != nil {
		fields = append(fields, deliberationmessage.FieldSessionID)
	}
	if m.instance_id != nil {
		fields = append(fields, deliberationmessage.FieldInstanceID)
	}
	if m.message_type != nil {
		fields = append(fields, deliberationmessage.FieldMessageType)
	}
	if m.content != nil {
		fields = append(fields, deliberationmessage.FieldContent)
	}
	if m.round != nil {
		fields = append(fields, deliberationmessage.FieldRound)
	}
	if m.created_at != nil {
		fields = append(fields, deliberationmessage.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, deliberationmessage.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DeliberationMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case deliberationmessage.FieldSessionID:
		return m.SessionID()
	case deliberationmessage.FieldInstanceID:
		return m.InstanceID()
	case deliberationmessage.FieldMessageType:
		return m.MessageType()
	case deliberationmessage.FieldContent:
		return m.Content()
	case deliberationmessage.FieldRound:
		return m.Round()
	case deliberationmessage.FieldCreatedAt:
		return m.CreatedAt()
	case deliberationmessage.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DeliberationMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case deliberationmessage.FieldSessionID:
		return m.OldSessionID(ctx)
	case deliberationmessage.FieldInstanceID:
		return m.OldInstanceID(ctx)
	case deliberationmessage.FieldMessageType:
		return m.OldMessageType(ctx)
	case deliberationmessage.FieldContent:
		return m.OldContent(ctx)
	case deliberationmessage.FieldRound:
		return m.OldRound(ctx)
	case deliberationmessage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case deliberationmessage.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DeliberationMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DeliberationMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case deliberationmessage.FieldSessionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case deliberationmessage.FieldInstanceID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstanceID(v)
		return nil
	case deliberationmessage.FieldMessageType:
		v, ok := value.(deliberationmessage.MessageType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageType(v)
		return nil
	case deliberationmessage.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case deliberationmessage.FieldRound:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRound(v)
		return nil
	case deliberationmessage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case deliberationmessage.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DeliberationMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DeliberationMessageMutation) AddedFields() []string {
	var fields []string
	if m.addround != nil {
		fields = append(fields, deliberationmessage.FieldRound)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DeliberationMessageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case deliberationmessage.FieldRound:
		return m.AddedRound()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DeliberationMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case deliberationmessage.FieldRound:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRound(v)
		return nil
	}
	return fmt.Errorf("unknown DeliberationMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DeliberationMessageMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DeliberationMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DeliberationMessageMutation) ClearField(name string) error {
	return fmt.Errorf("unknown DeliberationMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DeliberationMessageMutation) ResetField(name string) error {
	switch name {
	case deliberationmessage.FieldSessionID:
		m.ResetSessionID()
		return nil
	case deliberationmessage.FieldInstanceID:
		m.ResetInstanceID()
		return nil
	case deliberationmessage.FieldMessageType:
		m.ResetMessageType()
		return nil
	case deliberationmessage.FieldContent:
		m.ResetContent()
		return nil
	case deliberationmessage.FieldRound:
		m.ResetRound()
		return nil
	case deliberationmessage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case deliberationmessage.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown DeliberationMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DeliberationMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, deliberationmessage.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DeliberationMessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case deliberationmessage.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DeliberationMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DeliberationMessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DeliberationMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, deliberationmessage.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DeliberationMessageMutation) EdgeCleared(name string) bool {
	switch name {
	case deliberationmessage.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DeliberationMessageMutation) ClearEdge(name string) error {
	switch name {
	case deliberationmessage.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown DeliberationMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DeliberationMessageMutation) ResetEdge(name string) error {
	switch name {
	case deliberationmessage.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown DeliberationMessage edge %s", name)
}

// DetectionRuleMutation represents an operation that mutates the DetectionRule nodes in the graph.
type DetectionRuleMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	name             *string
	detection_type   *detectionrule.DetectionType
	pattern          *string
	keywords         *[]string
	appendkeywords   []string
	enabled          *bool
	description      *string
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	workspace        *uuid.UUID
	clearedworkspace bool
	done             bool
	oldValue         func(context.Context) (*DetectionRule, error)
	predicates       []predicate.DetectionRule
}

var _ ent.Mutation = (*DetectionRuleMutation)(nil)

// detectionruleOption allows management of the mutation configuration using functional options.
type detectionruleOption func(*DetectionRuleMutation)

// newDetectionRuleMutation creates new mutation for the DetectionRule entity.
func newDetectionRuleMutation(c config, op Op, opts ...detectionruleOption) *DetectionRuleMutation {
	m := &DetectionRuleMutation{
		config:        c,
		op:            op,
		typ:           TypeDetectionRule,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDetectionRuleID sets the ID field of the mutation.
func withDetectionRuleID(id uuid.UUID) detectionruleOption {
	return func(m *DetectionRuleMutation) {
		var (
			err   error
			once  sync.Once
			value *DetectionRule
		)
		m.oldValue = func(ctx context.Context) (*DetectionRule, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DetectionRule.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDetectionRule sets the old DetectionRule of the mutation.
func withDetectionRule(node *DetectionRule) detectionruleOption {
	return func(m *DetectionRuleMutation) {
		m.oldValue = func(context.Context) (*DetectionRule, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DetectionRuleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DetectionRuleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DetectionRule entities.
func (m *DetectionRuleMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DetectionRuleMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DetectionRuleMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DetectionRule.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *DetectionRuleMutation) SetWorkspaceID(u uuid.UUID) {
	m.workspace = &u
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *DetectionRuleMutation) WorkspaceID() (r uuid.UUID, exists bool) {
	v := m.workspace
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the DetectionRule entity.
// If the DetectionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectionRuleMutation) OldWorkspaceID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *DetectionRuleMutation) ResetWorkspaceID() {
	m.workspace = nil
}

// SetName sets the "name" field.
func (m *DetectionRuleMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *DetectionRuleMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the DetectionRule entity.
// If the DetectionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectionRuleMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *DetectionRuleMutation) ResetName() {
	m.name = nil
}

// SetDetectionType sets the "detection_type" field.
func (m *DetectionRuleMutation) SetDetectionType(dt detectionrule.DetectionType) {
	m.detection_type = &dt
}

// DetectionType returns the value of the "detection_type" field in the mutation.
func (m *DetectionRuleMutation) DetectionType() (r detectionrule.DetectionType, exists bool) {
	v := m.detection_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDetectionType returns the old "detection_type" field's value of the DetectionRule entity.
// If the DetectionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectionRuleMutation) OldDetectionType(ctx context.Context) (v detectionrule.DetectionType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetectionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetectionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetectionType: %w", err)
	}
	return oldValue.DetectionType, nil
}

// ResetDetectionType resets all changes to the "detection_type" field.
func (m *DetectionRuleMutation) ResetDetectionType() {
	m.detection_type = nil
}

// SetPattern sets the "pattern" field.
func (m *DetectionRuleMutation) SetPattern(s string) {
	m.pattern = &s
}

// Pattern returns the value of the "pattern" field in the mutation.
func (m *DetectionRuleMutation) Pattern() (r string, exists bool) {
	v := m.pattern
	if v == nil {
		return
	}
	return *v, true
}

// OldPattern returns the old "pattern" field's value of the DetectionRule entity.
// If the DetectionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectionRuleMutation) OldPattern(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPattern is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPattern requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPattern: %w", err)
	}
	return oldValue.Pattern, nil
}

// ClearPattern clears the value of the "pattern" field.
func (m *DetectionRuleMutation) ClearPattern() {
	m.pattern = nil
	m.clearedFields[detectionrule.FieldPattern] = struct{}{}
}

// PatternCleared returns if the "pattern" field was cleared in this mutation.
func (m *DetectionRuleMutation) PatternCleared() bool {
	_, ok := m.clearedFields[detectionrule.FieldPattern]
	return ok
}

// ResetPattern resets all changes to the "pattern" field.
func (m *DetectionRuleMutation) ResetPattern() {
	m.pattern = nil
	delete(m.clearedFields, detectionrule.FieldPattern)
}

// SetKeywords sets the "keywords" field.
func (m *DetectionRuleMutation) SetKeywords(s []string) {
	m.keywords = &s
	m.appendkeywords = nil
}

// Keywords returns the value of the "keywords" field in the mutation.
func (m *DetectionRuleMutation) Keywords() (r []string, exists bool) {
	v := m.keywords
	if v == nil {
		return
	}
	return *v, true
}

// OldKeywords returns the old "keywords" field's value of the DetectionRule entity.
// If the DetectionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectionRuleMutation) OldKeywords(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeywords is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeywords requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeywords: %w", err)
	}
	return oldValue.Keywords, nil
}

// AppendKeywords adds s to the "keywords" field.
func (m *DetectionRuleMutation) AppendKeywords(s []string) {
	m.appendkeywords = append(m.appendkeywords, s...)
}

// AppendedKeywords returns the list of values that were appended to the "keywords" field in this mutation.
func (m *DetectionRuleMutation) AppendedKeywords() ([]string, bool) {
	if len(m.appendkeywords) == 0 {
		return nil, false
	}
	return m.appendkeywords, true
}

// ClearKeywords clears the value of the "keywords" field.
func (m *DetectionRuleMutation) ClearKeywords() {
	m.keywords = nil
	m.appendkeywords = nil
	m.clearedFields[detectionrule.FieldKeywords] = struct{}{}
}

// KeywordsCleared returns if the "keywords" field was cleared in this mutation.
func (m *DetectionRuleMutation) KeywordsCleared() bool {
	_, ok := m.clearedFields[detectionrule.FieldKeywords]
	return ok
}

// ResetKeywords resets all changes to the "keywords" field.
func (m *DetectionRuleMutation) ResetKeywords() {
	m.keywords = nil
	m.appendkeywords = nil
	delete(m.clearedFields, detectionrule.FieldKeywords)
}

// SetEnabled sets the "enabled" field.
func (m *DetectionRuleMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *DetectionRuleMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the DetectionRule entity.
// If the DetectionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectionRuleMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *DetectionRuleMutation) ResetEnabled() {
	m.enabled = nil
}

// SetDescription sets the "description" field.
func (m *DetectionRuleMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *DetectionRuleMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the DetectionRule entity.
// If the DetectionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectionRuleMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *DetectionRuleMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[detectionrule.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *DetectionRuleMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[detectionrule.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *DetectionRuleMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, detectionrule.FieldDescription)
}

// SetCreatedAt sets the "created_at" field.
func (m *DetectionRuleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DetectionRuleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DetectionRule entity.
// If the DetectionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectionRuleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DetectionRuleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DetectionRuleMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DetectionRuleMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the DetectionRule entity.
// If the DetectionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectionRuleMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DetectionRuleMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (m *DetectionRuleMutation) ClearWorkspace() {
	m.clearedworkspace = true
	m.clearedFields[detectionrule.FieldWorkspaceID] = struct{}{}
}

// WorkspaceCleared reports if the "workspace" edge to the Workspace entity was cleared.
func (m *DetectionRuleMutation) WorkspaceCleared() bool {
	return m.clearedworkspace
}

// WorkspaceIDs returns the "workspace" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkspaceID instead. It exists only for internal usage by the builders.
func (m *DetectionRuleMutation) WorkspaceIDs() (ids []uuid.UUID) {
	if id := m.workspace; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorkspace resets all changes to the "workspace" edge.
func (m *DetectionRuleMutation) ResetWorkspace() {
	m.workspace = nil
	m.clearedworkspace = false
}

// Where appends a list predicates to the DetectionRuleMutation builder.
func (m *DetectionRuleMutation) Where(ps ...predicate.DetectionRule) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DetectionRuleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DetectionRuleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DetectionRule, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DetectionRuleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DetectionRuleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DetectionRule).
func (m *DetectionRuleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DetectionRuleMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.workspace != nil {
		fields = append(fields, detectionrule.FieldWorkspaceID)
	}
	if m.name != nil {
		fields = append(fields, detectionrule.FieldName)
	}
	if m.detection_type != nil {
		fields = append(fields, detectionrule.FieldDetectionType)
	}
	if m.pattern != nil {
		fields = append(fields, detectionrule.FieldPattern)
	}
	if m.keywords != nil {
		fields = append(fields, detectionrule.FieldKeywords)
	}
	if m.enabled != nil {
		fields = append(fields, detectionrule.FieldEnabled)
	}
	if m.description != nil {
		fields = append(fields, detectionrule.FieldDescription)
	}
	if m.created_at != nil {
		fields = append(fields, detectionrule.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, detectionrule.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DetectionRuleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case detectionrule.FieldWorkspaceID:
		return m.WorkspaceID()
	case detectionrule.FieldName:
		return m.Name()
	case detectionrule.FieldDetectionType:
		return m.DetectionType()
	case detectionrule.FieldPattern:
		return m.Pattern()
	case detectionrule.FieldKeywords:
		return m.Keywords()
	case detectionrule.FieldEnabled:
		return m.Enabled()
	case detectionrule.FieldDescription:
		return m.Description()
	case detectionrule.FieldCreatedAt:
		return m.CreatedAt()
	case detectionrule.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DetectionRuleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case detectionrule.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case detectionrule.FieldName:
		return m.OldName(ctx)
	case detectionrule.FieldDetectionType:
		return m.OldDetectionType(ctx)
	case detectionrule.FieldPattern:
		return m.OldPattern(ctx)
	case detectionrule.FieldKeywords:
		return m.OldKeywords(ctx)
	case detectionrule.FieldEnabled:
		return m.OldEnabled(ctx)
	case detectionrule.FieldDescription:
		return m.OldDescription(ctx)
	case detectionrule.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case detectionrule.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DetectionRule field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DetectionRuleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case detectionrule.FieldWorkspaceID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case detectionrule.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case detectionrule.FieldDetectionType:
		v, ok := value.(detectionrule.DetectionType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetectionType(v)
		return nil
	case detectionrule.FieldPattern:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPattern(v)
		return nil
	case detectionrule.FieldKeywords:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeywords(v)
		return nil
	case detectionrule.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case detectionrule.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case detectionrule.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case detectionrule.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DetectionRule field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DetectionRuleMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DetectionRuleMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DetectionRuleMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown DetectionRule numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DetectionRuleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(detectionrule.FieldPattern) {
		fields = append(fields, detectionrule.FieldPattern)
	}
	if m.FieldCleared(detectionrule.FieldKeywords) {
		fields = append(fields, detectionrule.FieldKeywords)
	}
	if m.FieldCleared(detectionrule.FieldDescription) {
		fields = append(fields, detectionrule.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DetectionRuleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DetectionRuleMutation) ClearField(name string) error {
	switch name {
	case detectionrule.FieldPattern:
		m.ClearPattern()
		return nil
	case detectionrule.FieldKeywords:
		m.ClearKeywords()
		return nil
	case detectionrule.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown DetectionRule nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DetectionRuleMutation) ResetField(name string) error {
	switch name {
	case detectionrule.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case detectionrule.FieldName:
		m.ResetName()
		return nil
	case detectionrule.FieldDetectionType:
		m.ResetDetectionType()
		return nil
	case detectionrule.FieldPattern:
		m.ResetPattern()
		return nil
	case detectionrule.FieldKeywords:
		m.ResetKeywords()
		return nil
	case detectionrule.FieldEnabled:
		m.ResetEnabled()
		return nil
	case detectionrule.FieldDescription:
		m.ResetDescription()
		return nil
	case detectionrule.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case detectionrule.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown DetectionRule field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DetectionRuleMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.workspace != nil {
		edges = append(edges, detectionrule.EdgeWorkspace)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DetectionRuleMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case detectionrule.EdgeWorkspace:
		if id := m.workspace; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DetectionRuleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DetectionRuleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DetectionRuleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedworkspace {
		edges = append(edges, detectionrule.EdgeWorkspace)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DetectionRuleMutation) EdgeCleared(name string) bool {
	switch name {
	case detectionrule.EdgeWorkspace:
		return m.clearedworkspace
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DetectionRuleMutation) ClearEdge(name string) error {
	switch name {
	case detectionrule.EdgeWorkspace:
		m.ClearWorkspace()
		return nil
	}
	return fmt.Errorf("unknown DetectionRule unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DetectionRuleMutation) ResetEdge(name string) error {
	switch name {
	case detectionrule.EdgeWorkspace:
		m.ResetWorkspace()
		return nil
	}
	return fmt.Errorf("unknown DetectionRule edge %s", name)
}

// GhostProtocolConfigMutation represents an operation that mutates the GhostProtocolConfig nodes in the graph.
type GhostProtocolConfigMutation struct {
	config
	op                              Op
	typ                             string
	id                              *uuid.UUID
	name                            *string
	enabled                         *bool
	wipe_strategy                   *ghostprotocolconfig.WipeStrategy
	wipe_fields                     *[]string
	appendwipe_fields               []string
	wipe_delay_seconds              *int
	addwipe_delay_seconds           *int
	max_session_duration_seconds    *int
	addmax_session_duration_seconds *int
	auto_terminate_on_expiry        *bool
	crypto_shred                    *bool
	created_at                      *time.Time
	updated_at                      *time.Time
	clearedFields                   map[string]struct{}
	workspace                       *uuid.UUID
	clearedworkspace                bool
	done                            bool
	oldValue                        func(context.Context) (*GhostProtocolConfig, error)
	predicates                      []predicate.GhostProtocolConfig
}

var _ ent.Mutation = (*GhostProtocolConfigMutation)(nil)

// ghostprotocolconfigOption allows management of the mutation configuration using functional options.
type ghostprotocolconfigOption func(*GhostProtocolConfigMutation)

// newGhostProtocolConfigMutation creates new mutation for the GhostProtocolConfig entity.
func newGhostProtocolConfigMutation(c config, op Op, opts ...ghostprotocolconfigOption) *GhostProtocolConfigMutation {
	m := &GhostProtocolConfigMutation{
		config:        c,
		op:            op,
		typ:           TypeGhostProtocolConfig,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGhostProtocolConfigID sets the ID field of the mutation.
func withGhostProtocolConfigID(id uuid.UUID) ghostprotocolconfigOption {
	return func(m *GhostProtocolConfigMutation) {
		var (
			err   error
			once  sync.Once
			value *GhostProtocolConfig
		)
		m.oldValue = func(ctx context.Context) (*GhostProtocolConfig, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GhostProtocolConfig.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGhostProtocolConfig sets the old GhostProtocolConfig of the mutation.
func withGhostProtocolConfig(node *GhostProtocolConfig) ghostprotocolconfigOption {
	return func(m *GhostProtocolConfigMutation) {
		m.oldValue = func(context.Context) (*GhostProtocolConfig, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GhostProtocolConfigMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GhostProtocolConfigMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of GhostProtocolConfig entities.
func (m *GhostProtocolConfigMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GhostProtocolConfigMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GhostProtocolConfigMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GhostProtocolConfig.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *GhostProtocolConfigMutation) SetWorkspaceID(u uuid.UUID) {
	m.workspace = &u
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *GhostProtocolConfigMutation) WorkspaceID() (r uuid.UUID, exists bool) {
	v := m.workspace
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the GhostProtocolConfig entity.
// If the GhostProtocolConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GhostProtocolConfigMutation) OldWorkspaceID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *GhostProtocolConfigMutation) ResetWorkspaceID() {
	m.workspace = nil
}

// SetName sets the "name" field.
func (m *GhostProtocolConfigMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *GhostProtocolConfigMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the GhostProtocolConfig entity.
// If the GhostProtocolConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GhostProtocolConfigMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *GhostProtocolConfigMutation) ResetName() {
	m.name = nil
}

// SetEnabled sets the "enabled" field.
func (m *GhostProtocolConfigMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *GhostProtocolConfigMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the GhostProtocolConfig entity.
// If the GhostProtocolConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GhostProtocolConfigMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *GhostProtocolConfigMutation) ResetEnabled() {
	m.enabled = nil
}

// SetWipeStrategy sets the "wipe_strategy" field.
func (m *GhostProtocolConfigMutation) SetWipeStrategy(gs ghostprotocolconfig.WipeStrategy) {
	m.wipe_strategy = &gs
}

// WipeStrategy returns the value of the "wipe_strategy" field in the mutation.
func (m *GhostProtocolConfigMutation) WipeStrategy() (r ghostprotocolconfig.WipeStrategy, exists bool) {
	v := m.wipe_strategy
	if v == nil {
		return
	}
	return *v, true
}

// OldWipeStrategy returns the old "wipe_strategy" field's value of the GhostProtocolConfig entity.
// If the GhostProtocolConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GhostProtocolConfigMutation) OldWipeStrategy(ctx context.Context) (v ghostprotocolconfig.WipeStrategy, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWipeStrategy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWipeStrategy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWipeStrategy: %w", err)
	}
	return oldValue.WipeStrategy, nil
}

// ResetWipeStrategy resets all changes to the "wipe_strategy" field.
func (m *GhostProtocolConfigMutation) ResetWipeStrategy() {
	m.wipe_strategy = nil
}

// SetWipeFields sets the "wipe_fields" field.
func (m *GhostProtocolConfigMutation) SetWipeFields(s []string) {
	m.wipe_fields = &s
	m.appendwipe_fields = nil
}

// WipeFields returns the value of the "wipe_fields" field in the mutation.
func (m *GhostProtocolConfigMutation) WipeFields() (r []string, exists bool) {
	v := m.wipe_fields
	if v == nil {
		return
	}
	return *v, true
}

// OldWipeFields returns the old "wipe_fields" field's value of the GhostProtocolConfig entity.
// If the GhostProtocolConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GhostProtocolConfigMutation) OldWipeFields(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWipeFields is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWipeFields requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWipeFields: %w", err)
	}
	return oldValue.WipeFields, nil
}

// AppendWipeFields adds s to the "wipe_fields" field.
func (m *GhostProtocolConfigMutation) AppendWipeFields(s []string) {
	m.appendwipe_fields = append(m.appendwipe_fields, s...)
}

// AppendedWipeFields returns the list of values that were appended to the "wipe_fields" field in this mutation.
func (m *GhostProtocolConfigMutation) AppendedWipeFields() ([]string, bool) {
	if len(m.appendwipe_fields) == 0 {
		return nil, false
	}
	return m.appendwipe_fields, true
}

// ResetWipeFields resets all changes to the "wipe_fields" field.
func (m *GhostProtocolConfigMutation) ResetWipeFields() {
	m.wipe_fields = nil
	m.appendwipe_fields = nil
}

// SetWipeDelaySeconds sets the "wipe_delay_seconds" field.
func (m *GhostProtocolConfigMutation) SetWipeDelaySeconds(i int) {
	m.wipe_delay_seconds = &i
	m.addwipe_delay_seconds = nil
}

// WipeDelaySeconds returns the value of the "wipe_delay_seconds" field in the mutation.
func (m *GhostProtocolConfigMutation) WipeDelaySeconds() (r int, exists bool) {
	v := m.wipe_delay_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldWipeDelaySeconds returns the old "wipe_delay_seconds" field's value of the GhostProtocolConfig entity.
// If the GhostProtocolConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GhostProtocolConfigMutation) OldWipeDelaySeconds(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWipeDelaySeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWipeDelaySeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWipeDelaySeconds: %w", err)
	}
	return oldValue.WipeDelaySeconds, nil
}

// AddWipeDelaySeconds adds i to the "wipe_delay_seconds" field.
func (m *GhostProtocolConfigMutation) AddWipeDelaySeconds(i int) {
	if m.addwipe_delay_seconds != nil {
		*m.addwipe_delay_seconds += i
	} else {
		m.addwipe_delay_seconds = &i
	}
}

// AddedWipeDelaySeconds returns the value that was added to the "wipe_delay_seconds" field in this mutation.
func (m *GhostProtocolConfigMutation) AddedWipeDelaySeconds() (r int, exists bool) {
	v := m.addwipe_delay_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetWipeDelaySeconds resets all changes to the "wipe_delay_seconds" field.
func (m *GhostProtocolConfigMutation) ResetWipeDelaySeconds() {
	m.wipe_delay_seconds = nil
	m.addwipe_delay_seconds = nil
}

// SetMaxSessionDurationSeconds sets the "max_session_duration_seconds" field.
func (m *GhostProtocolConfigMutation) SetMaxSessionDurationSeconds(i int) {
	m.max_session_duration_seconds = &i
	m.addmax_session_duration_seconds = nil
}

// MaxSessionDurationSeconds returns the value of the "max_session_duration_seconds" field in the mutation.
func (m *GhostProtocolConfigMutation) MaxSessionDurationSeconds() (r int, exists bool) {
	v := m.max_session_duration_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxSessionDurationSeconds returns the old "max_session_duration_seconds" field's value of the GhostProtocolConfig entity.
// If the GhostProtocolConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GhostProtocolConfigMutation) OldMaxSessionDurationSeconds(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxSessionDurationSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxSessionDurationSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxSessionDurationSeconds: %w", err)
	}
	return oldValue.MaxSessionDurationSeconds, nil
}

// AddMaxSessionDurationSeconds adds i to the "max_session_duration_seconds" field.
func (m *GhostProtocolConfigMutation) AddMaxSessionDurationSeconds(i int) {
	if m.addmax_session_duration_seconds != nil {
		*m.addmax_session_duration_seconds += i
	} else {
		m.addmax_session_duration_seconds = &i
	}
}

// AddedMaxSessionDurationSeconds returns the value that was added to the "max_session_duration_seconds" field in this mutation.
func (m *GhostProtocolConfigMutation) AddedMaxSessionDurationSeconds() (r int, exists bool) {
	v := m.addmax_session_duration_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxSessionDurationSeconds resets all changes to the "max_session_duration_seconds" field.
func (m *GhostProtocolConfigMutation) ResetMaxSessionDurationSeconds() {
	m.max_session_duration_seconds = nil
	m.addmax_session_duration_seconds = nil
}

// SetAutoTerminateOnExpiry sets the "auto_terminate_on_expiry" field.
func (m *GhostProtocolConfigMutation) SetAutoTerminateOnExpiry(b bool) {
	m.auto_terminate_on_expiry = &b
}

// AutoTerminateOnExpiry returns the value of the "auto_terminate_on_expiry" field in the mutation.
func (m *GhostProtocolConfigMutation) AutoTerminateOnExpiry() (r bool, exists bool) {
	v := m.auto_terminate_on_expiry
	if v == nil {
		return
	}
	return *v, true
}

// OldAutoTerminateOnExpiry returns the old "auto_terminate_on_expiry" field's value of the GhostProtocolConfig entity.
// If the GhostProtocolConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GhostProtocolConfigMutation) OldAutoTerminateOnExpiry(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAutoTerminateOnExpiry is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAutoTerminateOnExpiry requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAutoTerminateOnExpiry: %w", err)
	}
	return oldValue.AutoTerminateOnExpiry, nil
}

// ResetAutoTerminateOnExpiry resets all changes to the "auto_terminate_on_expiry" field.
func (m *GhostProtocolConfigMutation) ResetAutoTerminateOnExpiry() {
	m.auto_terminate_on_expiry = nil
}

// SetCryptoShred sets the "crypto_shred" field.
func (m *GhostProtocolConfigMutation) SetCryptoShred(b bool) {
	m.crypto_shred = &b
}

// CryptoShred returns the value of the "crypto_shred" field in the mutation.
func (m *GhostProtocolConfigMutation) CryptoShred() (r bool, exists bool) {
	v := m.crypto_shred
	if v == nil {
		return
	}
	return *v, true
}

// OldCryptoShred returns the old "crypto_shred" field's value of the GhostProtocolConfig entity.
// If the GhostProtocolConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GhostProtocolConfigMutation) OldCryptoShred(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCryptoShred is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCryptoShred requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCryptoShred: %w", err)
	}
	return oldValue.CryptoShred, nil
}

// ResetCryptoShred resets all changes to the "crypto_shred" field.
func (m *GhostProtocolConfigMutation) ResetCryptoShred() {
	m.crypto_shred = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *GhostProtocolConfigMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GhostProtocolConfigMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the GhostProtocolConfig entity.
// If the GhostProtocolConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GhostProtocolConfigMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *GhostProtocolConfigMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *GhostProtocolConfigMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *GhostProtocolConfigMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the GhostProtocolConfig entity.
// If the GhostProtocolConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GhostProtocolConfigMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *GhostProtocolConfigMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (m *GhostProtocolConfigMutation) ClearWorkspace() {
	m.clearedworkspace = true
	m.clearedFields[ghostprotocolconfig.FieldWorkspaceID] = struct{}{}
}

// WorkspaceCleared reports if the "workspace" edge to the Workspace entity was cleared.
func (m *GhostProtocolConfigMutation) WorkspaceCleared() bool {
	return m.clearedworkspace
}

// WorkspaceIDs returns the "workspace" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkspaceID instead. It exists only for internal usage by the builders.
func (m *GhostProtocolConfigMutation) WorkspaceIDs() (ids []uuid.UUID) {
	if id := m.workspace; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorkspace resets all changes to the "workspace" edge.
func (m *GhostProtocolConfigMutation) ResetWorkspace() {
	m.workspace = nil
	m.clearedworkspace = false
}

// Where appends a list predicates to the GhostProtocolConfigMutation builder.
func (m *GhostProtocolConfigMutation) Where(ps ...predicate.GhostProtocolConfig) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GhostProtocolConfigMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GhostProtocolConfigMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GhostProtocolConfig, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GhostProtocolConfigMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GhostProtocolConfigMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GhostProtocolConfig).
func (m *GhostProtocolConfigMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GhostProtocolConfigMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.workspace != nil {
		fields = append(fields, ghostprotocolconfig.FieldWorkspaceID)
	}
	if m.name != nil {
		fields = append(fields, ghostprotocolconfig.FieldName)
	}
	if m.enabled != nil {
		fields = append(fields, ghostprotocolconfig.FieldEnabled)
	}
	if m.wipe_strategy != nil {
		fields = append(fields, ghostprotocolconfig.FieldWipeStrategy)
	}
	if m.wipe_fields != nil {
		fields = append(fields, ghostprotocolconfig.FieldWipeFields)
	}
	if m.wipe_delay_seconds != nil {
		fields = append(fields, ghostprotocolconfig.FieldWipeDelaySeconds)
	}
	if m.max_session_duration_seconds != nil {
		fields = append(fields, ghostprotocolconfig.FieldMaxSessionDurationSeconds)
	}
	if m.auto_terminate_on_expiry != nil {
		fields = append(fields, ghostprotocolconfig.FieldAutoTerminateOnExpiry)
	}
	if m.crypto_shred != nil {
		fields = append(fields, ghostprotocolconfig.FieldCryptoShred)
	}
	if m.created_at != nil {
		fields = append(fields, ghostprotocolconfig.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, ghostprotocolconfig.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GhostProtocolConfigMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case ghostprotocolconfig.FieldWorkspaceID:
		return m.WorkspaceID()
	case ghostprotocolconfig.FieldName:
		return m.Name()
	case ghostprotocolconfig.FieldEnabled:
		return m.Enabled()
	case ghostprotocolconfig.FieldWipeStrategy:
		return m.WipeStrategy()
	case ghostprotocolconfig.FieldWipeFields:
		return m.WipeFields()
	case ghostprotocolconfig.FieldWipeDelaySeconds:
		return m.WipeDelaySeconds()
	case ghostprotocolconfig.FieldMaxSessionDurationSeconds:
		return m.MaxSessionDurationSeconds()
	case ghostprotocolconfig.FieldAutoTerminateOnExpiry:
		return m.AutoTerminateOnExpiry()
	case ghostprotocolconfig.FieldCryptoShred:
		return m.CryptoShred()
	case ghostprotocolconfig.FieldCreatedAt:
		return m.CreatedAt()
	case ghostprotocolconfig.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GhostProtocolConfigMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case ghostprotocolconfig.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case ghostprotocolconfig.FieldName:
		return m.OldName(ctx)
	case ghostprotocolconfig.FieldEnabled:
		return m.OldEnabled(ctx)
	case ghostprotocolconfig.FieldWipeStrategy:
		return m.OldWipeStrategy(ctx)
	case ghostprotocolconfig.FieldWipeFields:
		return m.OldWipeFields(ctx)
	case ghostprotocolconfig.FieldWipeDelaySeconds:
		return m.OldWipeDelaySeconds(ctx)
	case ghostprotocolconfig.FieldMaxSessionDurationSeconds:
		return m.OldMaxSessionDurationSeconds(ctx)
	case ghostprotocolconfig.FieldAutoTerminateOnExpiry:
		return m.OldAutoTerminateOnExpiry(ctx)
	case ghostprotocolconfig.FieldCryptoShred:
		return m.OldCryptoShred(ctx)
	case ghostprotocolconfig.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case ghostprotocolconfig.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown GhostProtocolConfig field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GhostProtocolConfigMutation) SetField(name string, value ent.Value) error {
	switch name {
	case ghostprotocolconfig.FieldWorkspaceID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case ghostprotocolconfig.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case ghostprotocolconfig.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case ghostprotocolconfig.FieldWipeStrategy:
		v, ok := value.(ghostprotocolconfig.WipeStrategy)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWipeStrategy(v)
		return nil
	case ghostprotocolconfig.FieldWipeFields:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWipeFields(v)
		return nil
	case ghostprotocolconfig.FieldWipeDelaySeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWipeDelaySeconds(v)
		return nil
	case ghostprotocolconfig.FieldMaxSessionDurationSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxSessionDurationSeconds(v)
		return nil
	case ghostprotocolconfig.FieldAutoTerminateOnExpiry:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAutoTerminateOnExpiry(v)
		return nil
	case ghostprotocolconfig.FieldCryptoShred:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCryptoShred(v)
		return nil
	case ghostprotocolconfig.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case ghostprotocolconfig.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown GhostProtocolConfig field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GhostProtocolConfigMutation) AddedFields() []string {
	var fields []string
	if m.addwipe_delay_seconds != nil {
		fields = append(fields, ghostprotocolconfig.FieldWipeDelaySeconds)
	}
	if m.addmax_session_duration_seconds != nil {
		fields = append(fields, ghostprotocolconfig.FieldMaxSessionDurationSeconds)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GhostProtocolConfigMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case ghostprotocolconfig.FieldWipeDelaySeconds:
		return m.AddedWipeDelaySeconds()
	case ghostprotocolconfig.FieldMaxSessionDurationSeconds:
		return m.AddedMaxSessionDurationSeconds()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GhostProtocolConfigMutation) AddField(name string, value ent.Value) error {
	switch name {
	case ghostprotocolconfig.FieldWipeDelaySeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWipeDelaySeconds(v)
		return nil
	case ghostprotocolconfig.FieldMaxSessionDurationSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxSessionDurationSeconds(v)
		return nil
	}
	return fmt.Errorf("unknown GhostProtocolConfig numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GhostProtocolConfigMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GhostProtocolConfigMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GhostProtocolConfigMutation) ClearField(name string) error {
	return fmt.Errorf("unknown GhostProtocolConfig nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GhostProtocolConfigMutation) ResetField(name string) error {
	switch name {
	case ghostprotocolconfig.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case ghostprotocolconfig.FieldName:
		m.ResetName()
		return nil
	case ghostprotocolconfig.FieldEnabled:
		m.ResetEnabled()
		return nil
	case ghostprotocolconfig.FieldWipeStrategy:
		m.ResetWipeStrategy()
		return nil
	case ghostprotocolconfig.FieldWipeFields:
		m.ResetWipeFields()
		return nil
	case ghostprotocolconfig.FieldWipeDelaySeconds:
		m.ResetWipeDelaySeconds()
		return nil
	case ghostprotocolconfig.FieldMaxSessionDurationSeconds:
		m.ResetMaxSessionDurationSeconds()
		return nil
	case ghostprotocolconfig.FieldAutoTerminateOnExpiry:
		m.ResetAutoTerminateOnExpiry()
		return nil
	case ghostprotocolconfig.FieldCryptoShred:
		m.ResetCryptoShred()
		return nil
	case ghostprotocolconfig.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case ghostprotocolconfig.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown GhostProtocolConfig field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GhostProtocolConfigMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.workspace != nil {
		edges = append(edges, ghostprotocolconfig.EdgeWorkspace)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GhostProtocolConfigMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case ghostprotocolconfig.EdgeWorkspace:
		if id := m.workspace; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GhostProtocolConfigMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GhostProtocolConfigMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GhostProtocolConfigMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedworkspace {
		edges = append(edges, ghostprotocolconfig.EdgeWorkspace)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GhostProtocolConfigMutation) EdgeCleared(name string) bool {
	switch name {
	case ghostprotocolconfig.EdgeWorkspace:
		return m.clearedworkspace
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GhostProtocolConfigMutation) ClearEdge(name string) error {
	switch name {
	case ghostprotocolconfig.EdgeWorkspace:
		m.ClearWorkspace()
		return nil
	}
	return fmt.Errorf("unknown GhostProtocolConfig unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GhostProtocolConfigMutation) ResetEdge(name string) error {
	switch name {
	case ghostprotocolconfig.EdgeWorkspace:
		m.ResetWorkspace()
		return nil
	}
	return fmt.Errorf("unknown GhostProtocolConfig edge %s", name)
}

// PolicyRuleMutation represents an operation that mutates the PolicyRule nodes in the graph.
type PolicyRuleMutation struct {
	config
	op                           Op
	typ                          string
	id                           *uuid.UUID
	name                         *string
	rule_type                    *policyrule.RuleType
	action                       *policyrule.Action
	priority                     *int
	addpriority                  *int
	enabled                      *bool
	_config                      *map[string]interface{}
	applies_to_event_types       *[]string
	appendapplies_to_event_types []string
	applies_to_agent_types       *[]string
	appendapplies_to_agent_types []string
	description                  *string
	created_at                   *time.Time
	updated_at                   *time.Time
	clearedFields                map[string]struct{}
	workspace                    *uuid.UUID
	clearedworkspace             bool
	done                         bool
	oldValue                     func(context.Context) (*PolicyRule, error)
	predicates                   []predicate.PolicyRule
}

var _ ent.Mutation = (*PolicyRuleMutation)(nil)

// policyruleOption allows management of the mutation configuration using functional options.
type policyruleOption func(*PolicyRuleMutation)

// newPolicyRuleMutation creates new mutation for the PolicyRule entity.
func newPolicyRuleMutation(c config, op Op, opts ...policyruleOption) *PolicyRuleMutation {
	m := &PolicyRuleMutation{
		config:        c,
		op:            op,
		typ:           TypePolicyRule,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPolicyRuleID sets the ID field of the mutation.
func withPolicyRuleID(id uuid.UUID) policyruleOption {
	return func(m *PolicyRuleMutation) {
		var (
			err   error
			once  sync.Once
			value *PolicyRule
		)
		m.oldValue = func(ctx context.Context) (*PolicyRule, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PolicyRule.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPolicyRule sets the old PolicyRule of the mutation.
func withPolicyRule(node *PolicyRule) policyruleOption {
	return func(m *PolicyRuleMutation) {
		m.oldValue = func(context.Context) (*PolicyRule, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PolicyRuleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PolicyRuleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PolicyRule entities.
func (m *PolicyRuleMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PolicyRuleMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PolicyRuleMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PolicyRule.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *PolicyRuleMutation) SetWorkspaceID(u uuid.UUID) {
	m.workspace = &u
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *PolicyRuleMutation) WorkspaceID() (r uuid.UUID, exists bool) {
	v := m.workspace
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the PolicyRule entity.
// If the PolicyRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicyRuleMutation) OldWorkspaceID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *PolicyRuleMutation) ResetWorkspaceID() {
	m.workspace = nil
}

// SetName sets the "name" field.
func (m *PolicyRuleMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *PolicyRuleMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the PolicyRule entity.
// If the PolicyRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicyRuleMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *PolicyRuleMutation) ResetName() {
	m.name = nil
}

// SetRuleType sets the "rule_type" field.
func (m *PolicyRuleMutation) SetRuleType(pt policyrule.RuleType) {
	m.rule_type = &pt
}

// RuleType returns the value of the "rule_type" field in the mutation.
func (m *PolicyRuleMutation) RuleType() (r policyrule.RuleType, exists bool) {
	v := m.rule_type
	if v == nil {
		return
	}
	return *v, true
}

// OldRuleType returns the old "rule_type" field's value of the PolicyRule entity.
// If the PolicyRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicyRuleMutation) OldRuleType(ctx context.Context) (v policyrule.RuleType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRuleType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRuleType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRuleType: %w", err)
	}
	return oldValue.RuleType, nil
}

// ResetRuleType resets all changes to the "rule_type" field.
func (m *PolicyRuleMutation) ResetRuleType() {
	m.rule_type = nil
}

// SetAction sets the "action" field.
func (m *PolicyRuleMutation) SetAction(po policyrule.Action) {
	m.action = &po
}

// Action returns the value of the "action" field in the mutation.
func (m *PolicyRuleMutation) Action() (r policyrule.Action, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the PolicyRule entity.
// If the PolicyRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicyRuleMutation) OldAction(ctx context.Context) (v policyrule.Action, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *PolicyRuleMutation) ResetAction() {
	m.action = nil
}

// SetPriority sets the "priority" field.
func (m *PolicyRuleMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *PolicyRuleMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the PolicyRule entity.
// If the PolicyRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicyRuleMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *PolicyRuleMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *PolicyRuleMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *PolicyRuleMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetEnabled sets the "enabled" field.
func (m *PolicyRuleMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *PolicyRuleMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the PolicyRule entity.
// If the PolicyRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicyRuleMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *PolicyRuleMutation) ResetEnabled() {
	m.enabled = nil
}

// SetConfig sets the "config" field.
func (m *PolicyRuleMutation) SetConfig(value map[string]interface{}) {
	m._config = &value
}

// Config returns the value of the "config" field in the mutation.
func (m *PolicyRuleMutation) Config() (r map[string]interface{}, exists bool) {
	v := m._config
	if v == nil {
		return
	}
	return *v, true
}

// OldConfig returns the old "config" field's value of the PolicyRule entity.
// If the PolicyRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicyRuleMutation) OldConfig(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfig: %w", err)
	}
	return oldValue.Config, nil
}

// ClearConfig clears the value of the "config" field.
func (m *PolicyRuleMutation) ClearConfig() {
	m._config = nil
	m.clearedFields[policyrule.FieldConfig] = struct{}{}
}

// ConfigCleared returns if the "config" field was cleared in this mutation.
func (m *PolicyRuleMutation) ConfigCleared() bool {
	_, ok := m.clearedFields[policyrule.FieldConfig]
	return ok
}

// ResetConfig resets all changes to the "config" field.
func (m *PolicyRuleMutation) ResetConfig() {
	m._config = nil
	delete(m.clearedFields, policyrule.FieldConfig)
}

// SetAppliesToEventTypes sets the "applies_to_event_types" field.
func (m *PolicyRuleMutation) SetAppliesToEventTypes(s []string) {
	m.applies_to_event_types = &s
	m.appendapplies_to_event_types = nil
}

// AppliesToEventTypes returns the value of the "applies_to_event_types" field in the mutation.
func (m *PolicyRuleMutation) AppliesToEventTypes() (r []string, exists bool) {
	v := m.applies_to_event_types
	if v == nil {
		return
	}
	return *v, true
}

// OldAppliesToEventTypes returns the old "applies_to_event_types" field's value of the PolicyRule entity.
// If the PolicyRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicyRuleMutation) OldAppliesToEventTypes(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAppliesToEventTypes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAppliesToEventTypes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAppliesToEventTypes: %w", err)
	}
	return oldValue.AppliesToEventTypes, nil
}

// AppendAppliesToEventTypes adds s to the "applies_to_event_types" field.
func (m *PolicyRuleMutation) AppendAppliesToEventTypes(s []string) {
	m.appendapplies_to_event_types = append(m.appendapplies_to_event_types, s...)
}

// AppendedAppliesToEventTypes returns the list of values that were appended to the "applies_to_event_types" field in this mutation.
func (m *PolicyRuleMutation) AppendedAppliesToEventTypes() ([]string, bool) {
	if len(m.appendapplies_to_event_types) == 0 {
		return nil, false
	}
	return m.appendapplies_to_event_types, true
}

// ClearAppliesToEventTypes clears the value of the "applies_to_event_types" field.
func (m *PolicyRuleMutation) ClearAppliesToEventTypes() {
	m.applies_to_event_types = nil
	m.appendapplies_to_event_types = nil
	m.clearedFields[policyrule.FieldAppliesToEventTypes] = struct{}{}
}

// AppliesToEventTypesCleared returns if the "applies_to_event_types" field was cleared in this mutation.
func (m *PolicyRuleMutation) AppliesToEventTypesCleared() bool {
	_, ok := m.clearedFields[policyrule.FieldAppliesToEventTypes]
	return ok
}

// ResetAppliesToEventTypes resets all changes to the "applies_to_event_types" field.
func (m *PolicyRuleMutation) ResetAppliesToEventTypes() {
	m.applies_to_event_types = nil
	m.appendapplies_to_event_types = nil
	delete(m.clearedFields, policyrule.FieldAppliesToEventTypes)
}

// SetAppliesToAgentTypes sets the "applies_to_agent_types" field.
func (m *PolicyRuleMutation) SetAppliesToAgentTypes(s []string) {
	m.applies_to_agent_types = &s
	m.appendapplies_to_agent_types = nil
}

// AppliesToAgentTypes returns the value of the "applies_to_agent_types" field in the mutation.
func (m *PolicyRuleMutation) AppliesToAgentTypes() (r []string, exists bool) {
	v := m.applies_to_agent_types
	if v == nil {
		return
	}
	return *v, true
}

// OldAppliesToAgentTypes returns the old "applies_to_agent_types" field's value of the PolicyRule entity.
// If the PolicyRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicyRuleMutation) OldAppliesToAgentTypes(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAppliesToAgentTypes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAppliesToAgentTypes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAppliesToAgentTypes: %w", err)
	}
	return oldValue.AppliesToAgentTypes, nil
}

// AppendAppliesToAgentTypes adds s to the "applies_to_agent_types" field.
func (m *PolicyRuleMutation) AppendAppliesToAgentTypes(s []string) {
	m.appendapplies_to_agent_types = append(m.appendapplies_to_agent_types, s...)
}

// AppendedAppliesToAgentTypes returns the list of values that were appended to the "applies_to_agent_types" field in this mutation.
func (m *PolicyRuleMutation) AppendedAppliesToAgentTypes() ([]string, bool) {
	if len(m.appendapplies_to_agent_types) == 0 {
		return nil, false
	}
	return m.appendapplies_to_agent_types, true
}

// ClearAppliesToAgentTypes clears the value of the "applies_to_agent_types" field.
func (m *PolicyRuleMutation) ClearAppliesToAgentTypes() {
	m.applies_to_agent_types = nil
	m.appendapplies_to_agent_types = nil
	m.clearedFields[policyrule.FieldAppliesToAgentTypes] = struct{}{}
}

// AppliesToAgentTypesCleared returns if the "applies_to_agent_types" field was cleared in this mutation.
func (m *PolicyRuleMutation) AppliesToAgentTypesCleared() bool {
	_, ok := m.clearedFields[policyrule.FieldAppliesToAgentTypes]
	return ok
}

// ResetAppliesToAgentTypes resets all changes to the "applies_to_agent_types" field.
func (m *PolicyRuleMutation) ResetAppliesToAgentTypes() {
	m.applies_to_agent_types = nil
	m.appendapplies_to_agent_types = nil
	delete(m.clearedFields, policyrule.FieldAppliesToAgentTypes)
}

// SetDescription sets the "description" field.
func (m *PolicyRuleMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *PolicyRuleMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the PolicyRule entity.
// If the PolicyRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicyRuleMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *PolicyRuleMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[policyrule.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *PolicyRuleMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[policyrule.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *PolicyRuleMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, policyrule.FieldDescription)
}

// SetCreatedAt sets the "created_at" field.
func (m *PolicyRuleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PolicyRuleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PolicyRule entity.
// If the PolicyRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicyRuleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PolicyRuleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PolicyRuleMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PolicyRuleMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PolicyRule entity.
// If the PolicyRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicyRuleMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PolicyRuleMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (m *PolicyRuleMutation) ClearWorkspace() {
	m.clearedworkspace = true
	m.clearedFields[policyrule.FieldWorkspaceID] = struct{}{}
}

// WorkspaceCleared reports if the "workspace" edge to the Workspace entity was cleared.
func (m *PolicyRuleMutation) WorkspaceCleared() bool {
	return m.clearedworkspace
}

// WorkspaceIDs returns the "workspace" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkspaceID instead. It exists only for internal usage by the builders.
func (m *PolicyRuleMutation) WorkspaceIDs() (ids []uuid.UUID) {
	if id := m.workspace; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorkspace resets all changes to the "workspace" edge.
func (m *PolicyRuleMutation) ResetWorkspace() {
	m.workspace = nil
	m.clearedworkspace = false
}

// Where appends a list predicates to the PolicyRuleMutation builder.
func (m *PolicyRuleMutation) Where(ps ...predicate.PolicyRule) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PolicyRuleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PolicyRuleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PolicyRule, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PolicyRuleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PolicyRuleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PolicyRule).
func (m *PolicyRuleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PolicyRuleMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.workspace != nil {
		fields = append(fields, policyrule.FieldWorkspaceID)
	}
	if m.name != nil {
		fields = append(fields, policyrule.FieldName)
	}
	if m.rule_type != nil {
		fields = append(fields, policyrule.FieldRuleType)
	}
	if m.action != nil {
		fields = append(fields, policyrule.FieldAction)
	}
	if m.priority != nil {
		fields = append(fields, policyrule.FieldPriority)
	}
	if m.enabled != nil {
		fields = append(fields, policyrule.FieldEnabled)
	}
	if m._config != nil {
		fields = append(fields, policyrule.FieldConfig)
	}
	if m.applies_to_event_types != nil {
		fields = append(fields, policyrule.FieldAppliesToEventTypes)
	}
	if m.applies_to_agent_types != nil {
		fields = append(fields, policyrule.FieldAppliesToAgentTypes)
	}
	if m.description != nil {
		fields = append(fields, policyrule.FieldDescription)
	}
	if m.created_at != nil {
		fields = append(fields, policyrule.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, policyrule.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PolicyRuleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case policyrule.FieldWorkspaceID:
		return m.WorkspaceID()
	case policyrule.FieldName:
		return m.Name()
	case policyrule.FieldRuleType:
		return m.RuleType()
	case policyrule.FieldAction:
		return m.Action()
	case policyrule.FieldPriority:
		return m.Priority()
	case policyrule.FieldEnabled:
		return m.Enabled()
	case policyrule.FieldConfig:
		return m.Config()
	case policyrule.FieldAppliesToEventTypes:
		return m.AppliesToEventTypes()
	case policyrule.FieldAppliesToAgentTypes:
		return m.AppliesToAgentTypes()
	case policyrule.FieldDescription:
		return m.Description()
	case policyrule.FieldCreatedAt:
		return m.CreatedAt()
	case policyrule.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PolicyRuleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case policyrule.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case policyrule.FieldName:
		return m.OldName(ctx)
	case policyrule.FieldRuleType:
		return m.OldRuleType(ctx)
	case policyrule.FieldAction:
		return m.OldAction(ctx)
	case policyrule.FieldPriority:
		return m.OldPriority(ctx)
	case policyrule.FieldEnabled:
		return m.OldEnabled(ctx)
	case policyrule.FieldConfig:
		return m.OldConfig(ctx)
	case policyrule.FieldAppliesToEventTypes:
		return m.OldAppliesToEventTypes(ctx)
	case policyrule.FieldAppliesToAgentTypes:
		return m.OldAppliesToAgentTypes(ctx)
	case policyrule.FieldDescription:
		return m.OldDescription(ctx)
	case policyrule.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case policyrule.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PolicyRule field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PolicyRuleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case policyrule.FieldWorkspaceID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case policyrule.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case policyrule.FieldRuleType:
		v, ok := value.(policyrule.RuleType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRuleType(v)
		return nil
	case policyrule.FieldAction:
		v, ok := value.(policyrule.Action)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case policyrule.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case policyrule.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case policyrule.FieldConfig:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfig(v)
		return nil
	case policyrule.FieldAppliesToEventTypes:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAppliesToEventTypes(v)
		return nil
	case policyrule.FieldAppliesToAgentTypes:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAppliesToAgentTypes(v)
		return nil
	case policyrule.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case policyrule.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case policyrule.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PolicyRule field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PolicyRuleMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, policyrule.FieldPriority)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PolicyRuleMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case policyrule.FieldPriority:
		return m.AddedPriority()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PolicyRuleMutation) AddField(name string, value ent.Value) error {
	switch name {
	case policyrule.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	}
	return fmt.Errorf("unknown PolicyRule numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PolicyRuleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(policyrule.FieldConfig) {
		fields = append(fields, policyrule.FieldConfig)
	}
	if m.FieldCleared(policyrule.FieldAppliesToEventTypes) {
		fields = append(fields, policyrule.FieldAppliesToEventTypes)
	}
	if m.FieldCleared(policyrule.FieldAppliesToAgentTypes) {
		fields = append(fields, policyrule.FieldAppliesToAgentTypes)
	}
	if m.FieldCleared(policyrule.FieldDescription) {
		fields = append(fields, policyrule.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PolicyRuleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PolicyRuleMutation) ClearField(name string) error {
	switch name {
	case policyrule.FieldConfig:
		m.ClearConfig()
		return nil
	case policyrule.FieldAppliesToEventTypes:
		m.ClearAppliesToEventTypes()
		return nil
	case policyrule.FieldAppliesToAgentTypes:
		m.ClearAppliesToAgentTypes()
		return nil
	case policyrule.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown PolicyRule nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PolicyRuleMutation) ResetField(name string) error {
	switch name {
	case policyrule.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case policyrule.FieldName:
		m.ResetName()
		return nil
	case policyrule.FieldRuleType:
		m.ResetRuleType()
		return nil
	case policyrule.FieldAction:
		m.ResetAction()
		return nil
	case policyrule.FieldPriority:
		m.ResetPriority()
		return nil
	case policyrule.FieldEnabled:
		m.ResetEnabled()
		return nil
	case policyrule.FieldConfig:
		m.ResetConfig()
		return nil
	case policyrule.FieldAppliesToEventTypes:
		m.ResetAppliesToEventTypes()
		return nil
	case policyrule.FieldAppliesToAgentTypes:
		m.ResetAppliesToAgentTypes()
		return nil
	case policyrule.FieldDescription:
		m.ResetDescription()
		return nil
	case policyrule.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case policyrule.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown PolicyRule field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PolicyRuleMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.workspace != nil {
		edges = append(edges, policyrule.EdgeWorkspace)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PolicyRuleMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case policyrule.EdgeWorkspace:
		if id := m.workspace; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PolicyRuleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PolicyRuleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PolicyRuleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedworkspace {
		edges = append(edges, policyrule.EdgeWorkspace)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PolicyRuleMutation) EdgeCleared(name string) bool {
	switch name {
	case policyrule.EdgeWorkspace:
		return m.clearedworkspace
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PolicyRuleMutation) ClearEdge(name string) error {
	switch name {
	case policyrule.EdgeWorkspace:
		m.ClearWorkspace()
		return nil
	}
	return fmt.Errorf("unknown PolicyRule unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PolicyRuleMutation) ResetEdge(name string) error {
	switch name {
	case policyrule.EdgeWorkspace:
		m.ResetWorkspace()
		return nil
	}
	return fmt.Errorf("unknown PolicyRule edge %s", name)
}

// PolicyViolationMutation represents an operation that mutates the PolicyViolation nodes in the graph.
type PolicyViolationMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	rule_id          *uuid.UUID
	rule_name        *string
	action_taken     *policyviolation.ActionTaken
	severity         *policyviolation.Severity
	details          *map[string]interface{}
	resolved         *bool
	resolved_at      *time.Time
	resolution_note  *string
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	workspace        *uuid.UUID
	clearedworkspace bool
	event            *uuid.UUID
	clearedevent     bool
	done             bool
	oldValue         func(context.Context) (*PolicyViolation, error)
	predicates       []predicate.PolicyViolation
}

var _ ent.Mutation = (*PolicyViolationMutation)(nil)

// policyviolationOption allows management of the mutation configuration using functional options.
type policyviolationOption func(*PolicyViolationMutation)

// newPolicyViolationMutation creates new mutation for the PolicyViolation entity.
func newPolicyViolationMutation(c config, op Op, opts ...policyviolationOption) *PolicyViolationMutation {
	m := &PolicyViolationMutation{
		config:        c,
		op:            op,
		typ:           TypePolicyViolation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPolicyViolationID sets the ID field of the mutation.
func withPolicyViolationID(id uuid.UUID) policyviolationOption {
	return func(m *PolicyViolationMutation) {
		var (
			err   error
			once  sync.Once
			value *PolicyViolation
		)
		m.oldValue = func(ctx context.Context) (*PolicyViolation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PolicyViolation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPolicyViolation sets the old PolicyViolation of the mutation.
func withPolicyViolation(node *PolicyViolation) policyviolationOption {
	return func(m *PolicyViolationMutation) {
		m.oldValue = func(context.Context) (*PolicyViolation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PolicyViolationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PolicyViolationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PolicyViolation entities.
func (m *PolicyViolationMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PolicyViolationMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PolicyViolationMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PolicyViolation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *PolicyViolationMutation) SetWorkspaceID(u uuid.UUID) {
	m.workspace = &u
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *PolicyViolationMutation) WorkspaceID() (r uuid.UUID, exists bool) {
	v := m.workspace
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the PolicyViolation entity.
// If the PolicyViolation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicyViolationMutation) OldWorkspaceID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *PolicyViolationMutation) ResetWorkspaceID() {
	m.workspace = nil
}

// SetEventID sets the "event_id" field.
func (m *PolicyViolationMutation) SetEventID(u uuid.UUID) {
	m.event = &u
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *PolicyViolationMutation) EventID() (r uuid.UUID, exists bool) {
	v := m.event
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the PolicyViolation entity.
// If the PolicyViolation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicyViolationMutation) OldEventID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// ResetEventID resets all changes to the "event_id" field.
func (m *PolicyViolationMutation) ResetEventID() {
	m.event = nil
}

// SetRuleID sets the "rule_id" field.
func (m *PolicyViolationMutation) SetRuleID(u uuid.UUID) {
	m.rule_id = &u
}

// RuleID returns the value of the "rule_id" field in the mutation.
func (m *PolicyViolationMutation) RuleID() (r uuid.UUID, exists bool) {
	v := m.rule_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRuleID returns the old "rule_id" field's value of the PolicyViolation entity.
// If the PolicyViolation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicyViolationMutation) OldRuleID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRuleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRuleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRuleID: %w", err)
	}
	return oldValue.RuleID, nil
}

// ResetRuleID resets all changes to the "rule_id" field.
func (m *PolicyViolationMutation) ResetRuleID() {
	m.rule_id = nil
}

// SetRuleName sets the "rule_name" field.
func (m *PolicyViolationMutation) SetRuleName(s string) {
	m.rule_name = &s
}

// RuleName returns the value of the "rule_name" field in the mutation.
func (m *PolicyViolationMutation) RuleName() (r string, exists bool) {
	v := m.rule_name
	if v == nil {
		return
	}
	return *v, true
}

// OldRuleName returns the old "rule_name" field's value of the PolicyViolation entity.
// If the PolicyViolation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicyViolationMutation) OldRuleName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRuleName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRuleName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRuleName: %w", err)
	}
	return oldValue.RuleName, nil
}

// ResetRuleName resets all changes to the "rule_name" field.
func (m *PolicyViolationMutation) ResetRuleName() {
	m.rule_name = nil
}

// SetActionTaken sets the "action_taken" field.
func (m *PolicyViolationMutation) SetActionTaken(pt policyviolation.ActionTaken) {
	m.action_taken = &pt
}

// ActionTaken returns the value of the "action_taken" field in the mutation.
func (m *PolicyViolationMutation) ActionTaken() (r policyviolation.ActionTaken, exists bool) {
	v := m.action_taken
	if v == nil {
		return
	}
	return *v, true
}

// OldActionTaken returns the old "action_taken" field's value of the PolicyViolation entity.
// If the PolicyViolation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicyViolationMutation) OldActionTaken(ctx context.Context) (v policyviolation.ActionTaken, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActionTaken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActionTaken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActionTaken: %w", err)
	}
	return oldValue.ActionTaken, nil
}

// ResetActionTaken resets all changes to the "action_taken" field.
func (m *PolicyViolationMutation) ResetActionTaken() {
	m.action_taken = nil
}

// SetSeverity sets the "severity" field.
func (m *PolicyViolationMutation) SetSeverity(po policyviolation.Severity) {
	m.severity = &po
}

// Severity returns the value of the "severity" field in the mutation.
func (m *PolicyViolationMutation) Severity() (r policyviolation.Severity, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the PolicyViolation entity.
// If the PolicyViolation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicyViolationMutation) OldSeverity(ctx context.Context) (v policyviolation.Severity, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ResetSeverity resets all changes to the "severity" field.
func (m *PolicyViolationMutation) ResetSeverity() {
	m.severity = nil
}

// SetDetails sets the "details" field.
func (m *PolicyViolationMutation) SetDetails(value map[string]interface{}) {
	m.details = &value
}

// Details returns the value of the "details" field in the mutation.
func (m *PolicyViolationMutation) Details() (r map[string]interface{}, exists bool) {
	v := m.details
	if v == nil {
		return
	}
	return *v, true
}

// OldDetails returns the old "details" field's value of the PolicyViolation entity.
// If the PolicyViolation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicyViolationMutation) OldDetails(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetails: %w", err)
	}
	return oldValue.Details, nil
}

// ClearDetails clears the value of the "details" field.
func (m *PolicyViolationMutation) ClearDetails() {
	m.details = nil
	m.clearedFields[policyviolation.FieldDetails] = struct{}{}
}

// DetailsCleared returns if the "details" field was cleared in this mutation.
func (m *PolicyViolationMutation) DetailsCleared() bool {
	_, ok := m.clearedFields[policyviolation.FieldDetails]
	return ok
}

// ResetDetails resets all changes to the "details" field.
func (m *PolicyViolationMutation) ResetDetails() {
	m.details = nil
	delete(m.clearedFields, policyviolation.FieldDetails)
}

// SetResolved sets the "resolved" field.
func (m *PolicyViolationMutation) SetResolved(b bool) {
	m.resolved = &b
}

// Resolved returns the value of the "resolved" field in the mutation.
func (m *PolicyViolationMutation) Resolved() (r bool, exists bool) {
	v := m.resolved
	if v == nil {
		return
	}
	return *v, true
}

// OldResolved returns the old "resolved" field's value of the PolicyViolation entity.
// If the PolicyViolation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicyViolationMutation) OldResolved(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolved is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolved requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolved: %w", err)
	}
	return oldValue.Resolved, nil
}

// ResetResolved resets all changes to the "resolved" field.
func (m *PolicyViolationMutation) ResetResolved() {
	m.resolved = nil
}

// SetResolvedAt sets the "resolved_at" field.
func (m *PolicyViolationMutation) SetResolvedAt(t time.Time) {
	m.resolved_at = &t
}

// ResolvedAt returns the value of the "resolved_at" field in the mutation.
func (m *PolicyViolationMutation) ResolvedAt() (r time.Time, exists bool) {
	v := m.resolved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedAt returns the old "resolved_at" field's value of the PolicyViolation entity.
// If the PolicyViolation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicyViolationMutation) OldResolvedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedAt: %w", err)
	}
	return oldValue.ResolvedAt, nil
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (m *PolicyViolationMutation) ClearResolvedAt() {
	m.resolved_at = nil
	m.clearedFields[policyviolation.FieldResolvedAt] = struct{}{}
}

// ResolvedAtCleared returns if the "resolved_at" field was cleared in this mutation.
func (m *PolicyViolationMutation) ResolvedAtCleared() bool {
	_, ok := m.clearedFields[policyviolation.FieldResolvedAt]
	return ok
}

// ResetResolvedAt resets all changes to the "resolved_at" field.
func (m *PolicyViolationMutation) ResetResolvedAt() {
	m.resolved_at = nil
	delete(m.clearedFields, policyviolation.FieldResolvedAt)
}

// SetResolutionNote sets the "resolution_note" field.
func (m *PolicyViolationMutation) SetResolutionNote(s string) {
	m.resolution_note = &s
}

// ResolutionNote returns the value of the "resolution_note" field in the mutation.
func (m *PolicyViolationMutation) ResolutionNote() (r string, exists bool) {
	v := m.resolution_note
	if v == nil {
		return
	}
	return *v, true
}

// OldResolutionNote returns the old "resolution_note" field's value of the PolicyViolation entity.
// If the PolicyViolation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicyViolationMutation) OldResolutionNote(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolutionNote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolutionNote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolutionNote: %w", err)
	}
	return oldValue.ResolutionNote, nil
}

// ClearResolutionNote clears the value of the "resolution_note" field.
func (m *PolicyViolationMutation) ClearResolutionNote() {
	m.resolution_note = nil
	m.clearedFields[policyviolation.FieldResolutionNote] = struct{}{}
}

// ResolutionNoteCleared returns if the "resolution_note" field was cleared in this mutation.
func (m *PolicyViolationMutation) ResolutionNoteCleared() bool {
	_, ok := m.clearedFields[policyviolation.FieldResolutionNote]
	return ok
}

// ResetResolutionNote resets all changes to the "resolution_note" field.
func (m *PolicyViolationMutation) ResetResolutionNote() {
	m.resolution_note = nil
	delete(m.clearedFields, policyviolation.FieldResolutionNote)
}

// SetCreatedAt sets the "created_at" field.
func (m *PolicyViolationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PolicyViolationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PolicyViolation entity.
// If the PolicyViolation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicyViolationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PolicyViolationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PolicyViolationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PolicyViolationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PolicyViolation entity.
// If the PolicyViolation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicyViolationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PolicyViolationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (m *PolicyViolationMutation) ClearWorkspace() {
	m.clearedworkspace = true
	m.clearedFields[policyviolation.FieldWorkspaceID] = struct{}{}
}

// WorkspaceCleared reports if the "workspace" edge to the Workspace entity was cleared.
func (m *PolicyViolationMutation) WorkspaceCleared() bool {
	return m.clearedworkspace
}

// WorkspaceIDs returns the "workspace" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkspaceID instead. It exists only for internal usage by the builders.
func (m *PolicyViolationMutation) WorkspaceIDs() (ids []uuid.UUID) {
	if id := m.workspace; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorkspace resets all changes to the "workspace" edge.
func (m *PolicyViolationMutation) ResetWorkspace() {
	m.workspace = nil
	m.clearedworkspace = false
}

// ClearEvent clears the "event" edge to the AgentEvent entity.
func (m *PolicyViolationMutation) ClearEvent() {
	m.clearedevent = true
	m.clearedFields[policyviolation.FieldEventID] = struct{}{}
}

// EventCleared reports if the "event" edge to the AgentEvent entity was cleared.
func (m *PolicyViolationMutation) EventCleared() bool {
	return m.clearedevent
}

// EventIDs returns the "event" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EventID instead. It exists only for internal usage by the builders.
func (m *PolicyViolationMutation) EventIDs() (ids []uuid.UUID) {
	if id := m.event; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEvent resets all changes to the "event" edge.
func (m *PolicyViolationMutation) ResetEvent() {
	m.event = nil
	m.clearedevent = false
}

// Where appends a list predicates to the PolicyViolationMutation builder.
func (m *PolicyViolationMutation) Where(ps ...predicate.PolicyViolation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PolicyViolationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PolicyViolationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PolicyViolation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PolicyViolationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PolicyViolationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PolicyViolation).
func (m *PolicyViolationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PolicyViolationMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.workspace != nil {
		fields = append(fields, policyviolation.FieldWorkspaceID)
	}
	if m.event != nil {
		fields = append(fields, policyviolation.FieldEventID)
	}
	if m.rule_id != nil {
		fields = append(fields, policyviolation.FieldRuleID)
	}
	if m.rule_name != nil {
		fields = append(fields, policyviolation.FieldRuleName)
	}
	if m.action_taken != nil {
		fields = append(fields, policyviolation.FieldActionTaken)
	}
	if m.severity != nil {
		fields = append(fields, policyviolation.FieldSeverity)
	}
	if m.details != nil {
		fields = append(fields, policyviolation.FieldDetails)
	}
	if m.resolved != nil {
		fields = append(fields, policyviolation.FieldResolved)
	}
	if m.resolved_at != nil {
		fields = append(fields, policyviolation.FieldResolvedAt)
	}
	if m.resolution_note != nil {
		fields = append(fields, policyviolation.FieldResolutionNote)
	}
	if m.created_at != nil {
		fields = append(fields, policyviolation.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, policyviolation.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PolicyViolationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case policyviolation.FieldWorkspaceID:
		return m.WorkspaceID()
	case policyviolation.FieldEventID:
		return m.EventID()
	case policyviolation.FieldRuleID:
		return m.RuleID()
	case policyviolation.FieldRuleName:
		return m.RuleName()
	case policyviolation.FieldActionTaken:
		return m.ActionTaken()
	case policyviolation.FieldSeverity:
		return m.Severity()
	case policyviolation.FieldDetails:
		return m.Details()
	case policyviolation.FieldResolved:
		return m.Resolved()
	case policyviolation.FieldResolvedAt:
		return m.ResolvedAt()
	case policyviolation.FieldResolutionNote:
		return m.ResolutionNote()
	case policyviolation.FieldCreatedAt:
		return m.CreatedAt()
	case policyviolation.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PolicyViolationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case policyviolation.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case policyviolation.FieldEventID:
		return m.OldEventID(ctx)
	case policyviolation.FieldRuleID:
		return m.OldRuleID(ctx)
	case policyviolation.FieldRuleName:
		return m.OldRuleName(ctx)
	case policyviolation.FieldActionTaken:
		return m.OldActionTaken(ctx)
	case policyviolation.FieldSeverity:
		return m.OldSeverity(ctx)
	case policyviolation.FieldDetails:
		return m.OldDetails(ctx)
	case policyviolation.FieldResolved:
		return m.OldResolved(ctx)
	case policyviolation.FieldResolvedAt:
		return m.OldResolvedAt(ctx)
	case policyviolation.FieldResolutionNote:
		return m.OldResolutionNote(ctx)
	case policyviolation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case policyviolation.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PolicyViolation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PolicyViolationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case policyviolation.FieldWorkspaceID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case policyviolation.FieldEventID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case policyviolation.FieldRuleID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRuleID(v)
		return nil
	case policyviolation.FieldRuleName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRuleName(v)
		return nil
	case policyviolation.FieldActionTaken:
		v, ok := value.(policyviolation.ActionTaken)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActionTaken(v)
		return nil
	case policyviolation.FieldSeverity:
		v, ok := value.(policyviolation.Severity)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case policyviolation.FieldDetails:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetails(v)
		return nil
	case policyviolation.FieldResolved:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolved(v)
		return nil
	case policyviolation.FieldResolvedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedAt(v)
		return nil
	case policyviolation.FieldResolutionNote:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolutionNote(v)
		return nil
	case policyviolation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case policyviolation.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PolicyViolation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PolicyViolationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PolicyViolationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PolicyViolationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PolicyViolation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PolicyViolationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(policyviolation.FieldDetails) {
		fields = append(fields, policyviolation.FieldDetails)
	}
	if m.FieldCleared(policyviolation.FieldResolvedAt) {
		fields = append(fields, policyviolation.FieldResolvedAt)
	}
	if m.FieldCleared(policyviolation.FieldResolutionNote) {
		fields = append(fields, policyviolation.FieldResolutionNote)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PolicyViolationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PolicyViolationMutation) ClearField(name string) error {
	switch name {
	case policyviolation.FieldDetails:
		m.ClearDetails()
		return nil
	case policyviolation.FieldResolvedAt:
		m.ClearResolvedAt()
		return nil
	case policyviolation.FieldResolutionNote:
		m.ClearResolutionNote()
		return nil
	}
	return fmt.Errorf("unknown PolicyViolation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PolicyViolationMutation) ResetField(name string) error {
	switch name {
	case policyviolation.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case policyviolation.FieldEventID:
		m.ResetEventID()
		return nil
	case policyviolation.FieldRuleID:
		m.ResetRuleID()
		return nil
	case policyviolation.FieldRuleName:
		m.ResetRuleName()
		return nil
	case policyviolation.FieldActionTaken:
		m.ResetActionTaken()
		return nil
	case policyviolation.FieldSeverity:
		m.ResetSeverity()
		return nil
	case policyviolation.FieldDetails:
		m.ResetDetails()
		return nil
	case policyviolation.FieldResolved:
		m.ResetResolved()
		return nil
	case policyviolation.FieldResolvedAt:
		m.ResetResolvedAt()
		return nil
	case policyviolation.FieldResolutionNote:
		m.ResetResolutionNote()
		return nil
	case policyviolation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case policyviolation.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown PolicyViolation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PolicyViolationMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.workspace != nil {
		edges = append(edges, policyviolation.EdgeWorkspace)
	}
	if m.event != nil {
		edges = append(edges, policyviolation.EdgeEvent)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PolicyViolationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case policyviolation.EdgeWorkspace:
		if id := m.workspace; id != nil {
			return []ent.Value{*id}
		}
	case policyviolation.EdgeEvent:
		if id := m.event; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PolicyViolationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PolicyViolationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PolicyViolationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedworkspace {
		edges = append(edges, policyviolation.EdgeWorkspace)
	}
	if m.clearedevent {
		edges = append(edges, policyviolation.EdgeEvent)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PolicyViolationMutation) EdgeCleared(name string) bool {
	switch name {
	case policyviolation.EdgeWorkspace:
		return m.clearedworkspace
	case policyviolation.EdgeEvent:
		return m.clearedevent
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PolicyViolationMutation) ClearEdge(name string) error {
	switch name {
	case policyviolation.EdgeWorkspace:
		m.ClearWorkspace()
		return nil
	case policyviolation.EdgeEvent:
		m.ClearEvent()
		return nil
	}
	return fmt.Errorf("unknown PolicyViolation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PolicyViolationMutation) ResetEdge(name string) error {
	switch name {
	case policyviolation.EdgeWorkspace:
		m.ResetWorkspace()
		return nil
	case policyviolation.EdgeEvent:
		m.ResetEvent()
		return nil
	}
	return fmt.Errorf("unknown PolicyViolation edge %s", name)
}

// PromptTemplateMutation represents an operation that mutates the PromptTemplate nodes in the graph.
type PromptTemplateMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	workspace_id  *uuid.UUID
	name          *string
	template      *string
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*PromptTemplate, error)
	predicates    []predicate.PromptTemplate
}

var _ ent.Mutation = (*PromptTemplateMutation)(nil)

// prompttemplateOption allows management of the mutation configuration using functional options.
type prompttemplateOption func(*PromptTemplateMutation)

// newPromptTemplateMutation creates new mutation for the PromptTemplate entity.
func newPromptTemplateMutation(c config, op Op, opts ...prompttemplateOption) *PromptTemplateMutation {
	m := &PromptTemplateMutation{
		config:        c,
		op:            op,
		typ:           TypePromptTemplate,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPromptTemplateID sets the ID field of the mutation.
func withPromptTemplateID(id uuid.UUID) prompttemplateOption {
	return func(m *PromptTemplateMutation) {
		var (
			err   error
			once  sync.Once
			value *PromptTemplate
		)
		m.oldValue = func(ctx context.Context) (*PromptTemplate, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PromptTemplate.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPromptTemplate sets the old PromptTemplate of the mutation.
func withPromptTemplate(node *PromptTemplate) prompttemplateOption {
	return func(m *PromptTemplateMutation) {
		m.oldValue = func(context.Context) (*PromptTemplate, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PromptTemplateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PromptTemplateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PromptTemplate entities.
func (m *PromptTemplateMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PromptTemplateMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PromptTemplateMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PromptTemplate.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *PromptTemplateMutation) SetWorkspaceID(u uuid.UUID) {
	m.workspace_id = &u
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *PromptTemplateMutation) WorkspaceID() (r uuid.UUID, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the PromptTemplate entity.
// If the PromptTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptTemplateMutation) OldWorkspaceID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *PromptTemplateMutation) ResetWorkspaceID() {
	m.workspace_id = nil
}

// SetName sets the "name" field.
func (m *PromptTemplateMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *PromptTemplateMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the PromptTemplate entity.
// If the PromptTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptTemplateMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *PromptTemplateMutation) ResetName() {
	m.name = nil
}

// SetTemplate sets the "template" field.
func (m *PromptTemplateMutation) SetTemplate(s string) {
	m.template = &s
}

// Template returns the value of the "template" field in the mutation.
func (m *PromptTemplateMutation) Template() (r string, exists bool) {
	v := m.template
	if v == nil {
		return
	}
	return *v, true
}

// OldTemplate returns the old "template" field's value of the PromptTemplate entity.
// If the PromptTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptTemplateMutation) OldTemplate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemplate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemplate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemplate: %w", err)
	}
	return oldValue.Template, nil
}

// ResetTemplate resets all changes to the "template" field.
func (m *PromptTemplateMutation) ResetTemplate() {
	m.template = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PromptTemplateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PromptTemplateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PromptTemplate entity.
// If the PromptTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptTemplateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PromptTemplateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PromptTemplateMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PromptTemplateMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PromptTemplate entity.
// If the PromptTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptTemplateMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PromptTemplateMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the PromptTemplateMutation builder.
func (m *PromptTemplateMutation) Where(ps ...predicate.PromptTemplate) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PromptTemplateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PromptTemplateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PromptTemplate, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PromptTemplateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PromptTemplateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PromptTemplate).
func (m *PromptTemplateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PromptTemplateMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.workspace_id != nil {
		fields = append(fields, prompttemplate.FieldWorkspaceID)
	}
	if m.name != nil {
		fields = append(fields, prompttemplate.FieldName)
	}
	if m.template != nil {
		fields = append(fields, prompttemplate.FieldTemplate)
	}
	if m.created_at != nil {
		fields = append(fields, prompttemplate.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, prompttemplate.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PromptTemplateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case prompttemplate.FieldWorkspaceID:
		return m.WorkspaceID()
	case prompttemplate.FieldName:
		return m.Name()
	case prompttemplate.FieldTemplate:
		return m.Template()
	case prompttemplate.FieldCreatedAt:
		return m.CreatedAt()
	case prompttemplate.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PromptTemplateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case prompttemplate.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case prompttemplate.FieldName:
		return m.OldName(ctx)
	case prompttemplate.FieldTemplate:
		return m.OldTemplate(ctx)
	case prompttemplate.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case prompttemplate.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PromptTemplate field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PromptTemplateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case prompttemplate.FieldWorkspaceID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case prompttemplate.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case prompttemplate.FieldTemplate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemplate(v)
		return nil
	case prompttemplate.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case prompttemplate.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PromptTemplate field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PromptTemplateMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PromptTemplateMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PromptTemplateMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PromptTemplate numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PromptTemplateMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PromptTemplateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PromptTemplateMutation) ClearField(name string) error {
	return fmt.Errorf("unknown PromptTemplate nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PromptTemplateMutation) ResetField(name string) error {
	switch name {
	case prompttemplate.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case prompttemplate.FieldName:
		m.ResetName()
		return nil
	case prompttemplate.FieldTemplate:
		m.ResetTemplate()
		return nil
	case prompttemplate.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case prompttemplate.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown PromptTemplate field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PromptTemplateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PromptTemplateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PromptTemplateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PromptTemplateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PromptTemplateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PromptTemplateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PromptTemplateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PromptTemplate unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PromptTemplateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PromptTemplate edge %s", name)
}

// RegisteredAgentMutation represents an operation that mutates the RegisteredAgent nodes in the graph.
type RegisteredAgentMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	name             *string
	api_key_hash     *string
	api_key_prefix   *string
	agent_type       *registeredagent.AgentType
	status           *registeredagent.Status
	risk_level       *registeredagent.RiskLevel
	description      *string
	event_count      *int64
	addevent_count   *int64
	last_seen_at     *time.Time
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	workspace        *uuid.UUID
	clearedworkspace bool
	done             bool
	oldValue         func(context.Context) (*RegisteredAgent, error)
	predicates       []predicate.RegisteredAgent
}

var _ ent.Mutation = (*RegisteredAgentMutation)(nil)

// registeredagentOption allows management of the mutation configuration using functional options.
type registeredagentOption func(*RegisteredAgentMutation)

// newRegisteredAgentMutation creates new mutation for the RegisteredAgent entity.
func newRegisteredAgentMutation(c config, op Op, opts ...registeredagentOption) *RegisteredAgentMutation {
	m := &RegisteredAgentMutation{
		config:        c,
		op:            op,
		typ:           TypeRegisteredAgent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRegisteredAgentID sets the ID field of the mutation.
func withRegisteredAgentID(id uuid.UUID) registeredagentOption {
	return func(m *RegisteredAgentMutation) {
		var (
			err   error
			once  sync.Once
			value *RegisteredAgent
		)
		m.oldValue = func(ctx context.Context) (*RegisteredAgent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RegisteredAgent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRegisteredAgent sets the old RegisteredAgent of the mutation.
func withRegisteredAgent(node *RegisteredAgent) registeredagentOption {
	return func(m *RegisteredAgentMutation) {
		m.oldValue = func(context.Context) (*RegisteredAgent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RegisteredAgentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RegisteredAgentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RegisteredAgent entities.
func (m *RegisteredAgentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RegisteredAgentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RegisteredAgentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RegisteredAgent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *RegisteredAgentMutation) SetWorkspaceID(u uuid.UUID) {
	m.workspace = &u
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *RegisteredAgentMutation) WorkspaceID() (r uuid.UUID, exists bool) {
	v := m.workspace
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the RegisteredAgent entity.
// If the RegisteredAgent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RegisteredAgentMutation) OldWorkspaceID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *RegisteredAgentMutation) ResetWorkspaceID() {
	m.workspace = nil
}

// SetName sets the "name" field.
func (m *RegisteredAgentMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *RegisteredAgentMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the RegisteredAgent entity.
// If the RegisteredAgent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RegisteredAgentMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *RegisteredAgentMutation) ResetName() {
	m.name = nil
}

// SetAPIKeyHash sets the "api_key_hash" field.
func (m *RegisteredAgentMutation) SetAPIKeyHash(s string) {
	m.api_key_hash = &s
}

// APIKeyHash returns the value of the "api_key_hash" field in the mutation.
func (m *RegisteredAgentMutation) APIKeyHash() (r string, exists bool) {
	v := m.api_key_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldAPIKeyHash returns the old "api_key_hash" field's value of the RegisteredAgent entity.
// If the RegisteredAgent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RegisteredAgentMutation) OldAPIKeyHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAPIKeyHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAPIKeyHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAPIKeyHash: %w", err)
	}
	return oldValue.APIKeyHash, nil
}

// ResetAPIKeyHash resets all changes to the "api_key_hash" field.
func (m *RegisteredAgentMutation) ResetAPIKeyHash() {
	m.api_key_hash = nil
}

// SetAPIKeyPrefix sets the "api_key_prefix" field.
func (m *RegisteredAgentMutation) SetAPIKeyPrefix(s string) {
	m.api_key_prefix = &s
}

// APIKeyPrefix returns the value of the "api_key_prefix" field in the mutation.
func (m *RegisteredAgentMutation) APIKeyPrefix() (r string, exists bool) {
	v := m.api_key_prefix
	if v == nil {
		return
	}
	return *v, true
}

// OldAPIKeyPrefix returns the old "api_key_prefix" field's value of the RegisteredAgent entity.
// If the RegisteredAgent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RegisteredAgentMutation) OldAPIKeyPrefix(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAPIKeyPrefix is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAPIKeyPrefix requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAPIKeyPrefix: %w", err)
	}
	return oldValue.APIKeyPrefix, nil
}

// ResetAPIKeyPrefix resets all changes to the "api_key_prefix" field.
func (m *RegisteredAgentMutation) ResetAPIKeyPrefix() {
	m.api_key_prefix = nil
}

// SetAgentType sets the "agent_type" field.
func (m *RegisteredAgentMutation) SetAgentType(rt registeredagent.AgentType) {
	m.agent_type = &rt
}

// AgentType returns the value of the "agent_type" field in the mutation.
func (m *RegisteredAgentMutation) AgentType() (r registeredagent.AgentType, exists bool) {
	v := m.agent_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentType returns the old "agent_type" field's value of the RegisteredAgent entity.
// If the RegisteredAgent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RegisteredAgentMutation) OldAgentType(ctx context.Context) (v registeredagent.AgentType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentType: %w", err)
	}
	return oldValue.AgentType, nil
}

// ResetAgentType resets all changes to the "agent_type" field.
func (m *RegisteredAgentMutation) ResetAgentType() {
	m.agent_type = nil
}

// SetStatus sets the "status" field.
func (m *RegisteredAgentMutation) SetStatus(r registeredagent.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *RegisteredAgentMutation) Status() (r registeredagent.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the RegisteredAgent entity.
// If the RegisteredAgent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RegisteredAgentMutation) OldStatus(ctx context.Context) (v registeredagent.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *RegisteredAgentMutation) ResetStatus() {
	m.status = nil
}

// SetRiskLevel sets the "risk_level" field.
func (m *RegisteredAgentMutation) SetRiskLevel(rl registeredagent.RiskLevel) {
	m.risk_level = &rl
}

// RiskLevel returns the value of the "risk_level" field in the mutation.
func (m *RegisteredAgentMutation) RiskLevel() (r registeredagent.RiskLevel, exists bool) {
	v := m.risk_level
	if v == nil {
		return
	}
	return *v, true
}

// OldRiskLevel returns the old "risk_level" field's value of the RegisteredAgent entity.
// If the RegisteredAgent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RegisteredAgentMutation) OldRiskLevel(ctx context.Context) (v registeredagent.RiskLevel, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiskLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiskLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiskLevel: %w", err)
	}
	return oldValue.RiskLevel, nil
}

// ResetRiskLevel resets all changes to the "risk_level" field.
func (m *RegisteredAgentMutation) ResetRiskLevel() {
	m.risk_level = nil
}

// SetDescription sets the "description" field.
func (m *RegisteredAgentMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *RegisteredAgentMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the RegisteredAgent entity.
// If the RegisteredAgent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RegisteredAgentMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *RegisteredAgentMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[registeredagent.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *RegisteredAgentMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[registeredagent.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *RegisteredAgentMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, registeredagent.FieldDescription)
}

// SetEventCount sets the "event_count" field.
func (m *RegisteredAgentMutation) SetEventCount(i int64) {
	m.event_count = &i
	m.addevent_count = nil
}

// EventCount returns the value of the "event_count" field in the mutation.
func (m *RegisteredAgentMutation) EventCount() (r int64, exists bool) {
	v := m.event_count
	if v == nil {
		return
	}
	return *v, true
}

// OldEventCount returns the old "event_count" field's value of the RegisteredAgent entity.
// If the RegisteredAgent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RegisteredAgentMutation) OldEventCount(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventCount: %w", err)
	}
	return oldValue.EventCount, nil
}

// AddEventCount adds i to the "event_count" field.
func (m *RegisteredAgentMutation) AddEventCount(i int64) {
	if m.addevent_count != nil {
		*m.addevent_count += i
	} else {
		m.addevent_count = &i
	}
}

// AddedEventCount returns the value that was added to the "event_count" field in this mutation.
func (m *RegisteredAgentMutation) AddedEventCount() (r int64, exists bool) {
	v := m.addevent_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetEventCount resets all changes to the "event_count" field.
func (m *RegisteredAgentMutation) ResetEventCount() {
	m.event_count = nil
	m.addevent_count = nil
}

// SetLastSeenAt sets the "last_seen_at" field.
func (m *RegisteredAgentMutation) SetLastSeenAt(t time.Time) {
	m.last_seen_at = &t
}

// LastSeenAt returns the value of the "last_seen_at" field in the mutation.
func (m *RegisteredAgentMutation) LastSeenAt() (r time.Time, exists bool) {
	v := m.last_seen_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeenAt returns the old "last_seen_at" field's value of the RegisteredAgent entity.
// If the RegisteredAgent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RegisteredAgentMutation) OldLastSeenAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeenAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeenAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeenAt: %w", err)
	}
	return oldValue.LastSeenAt, nil
}

// ClearLastSeenAt clears the value of the "last_seen_at" field.
func (m *RegisteredAgentMutation) ClearLastSeenAt() {
	m.last_seen_at = nil
	m.clearedFields[registeredagent.FieldLastSeenAt] = struct{}{}
}

// LastSeenAtCleared returns if the "last_seen_at" field was cleared in this mutation.
func (m *RegisteredAgentMutation) LastSeenAtCleared() bool {
	_, ok := m.clearedFields[registeredagent.FieldLastSeenAt]
	return ok
}

// ResetLastSeenAt resets all changes to the "last_seen_at" field.
func (m *RegisteredAgentMutation) ResetLastSeenAt() {
	m.last_seen_at = nil
	delete(m.clearedFields, registeredagent.FieldLastSeenAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *RegisteredAgentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RegisteredAgentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RegisteredAgent entity.
// If the RegisteredAgent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RegisteredAgentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RegisteredAgentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RegisteredAgentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RegisteredAgentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the RegisteredAgent entity.
// If the RegisteredAgent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RegisteredAgentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *RegisteredAgentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (m *RegisteredAgentMutation) ClearWorkspace() {
	m.clearedworkspace = true
	m.clearedFields[registeredagent.FieldWorkspaceID] = struct{}{}
}

// WorkspaceCleared reports if the "workspace" edge to the Workspace entity was cleared.
func (m *RegisteredAgentMutation) WorkspaceCleared() bool {
	return m.clearedworkspace
}

// WorkspaceIDs returns the "workspace" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkspaceID instead. It exists only for internal usage by the builders.
func (m *RegisteredAgentMutation) WorkspaceIDs() (ids []uuid.UUID) {
	if id := m.workspace; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorkspace resets all changes to the "workspace" edge.
func (m *RegisteredAgentMutation) ResetWorkspace() {
	m.workspace = nil
	m.clearedworkspace = false
}

// Where appends a list predicates to the RegisteredAgentMutation builder.
func (m *RegisteredAgentMutation) Where(ps ...predicate.RegisteredAgent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RegisteredAgentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RegisteredAgentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RegisteredAgent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RegisteredAgentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RegisteredAgentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RegisteredAgent).
func (m *RegisteredAgentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RegisteredAgentMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.workspace != nil {
		fields = append(fields, registeredagent.FieldWorkspaceID)
	}
	if m.name != nil {
		fields = append(fields, registeredagent.FieldName)
	}
	if m.api_key_hash != nil {
		fields = append(fields, registeredagent.FieldAPIKeyHash)
	}
	if m.api_key_prefix != nil {
		fields = append(fields, registeredagent.FieldAPIKeyPrefix)
	}
	if m.agent_type != nil {
		fields = append(fields, registeredagent.FieldAgentType)
	}
	if m.status != nil {
		fields = append(fields, registeredagent.FieldStatus)
	}
	if m.risk_level != nil {
		fields = append(fields, registeredagent.FieldRiskLevel)
	}
	if m.description != nil {
		fields = append(fields, registeredagent.FieldDescription)
	}
	if m.event_count != nil {
		fields = append(fields, registeredagent.FieldEventCount)
	}
	if m.last_seen_at != nil {
		fields = append(fields, registeredagent.FieldLastSeenAt)
	}
	if m.created_at != nil {
		fields = append(fields, registeredagent.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, registeredagent.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RegisteredAgentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case registeredagent.FieldWorkspaceID:
		return m.WorkspaceID()
	case registeredagent.FieldName:
		return m.Name()
	case registeredagent.FieldAPIKeyHash:
		return m.APIKeyHash()
	case registeredagent.FieldAPIKeyPrefix:
		return m.APIKeyPrefix()
	case registeredagent.FieldAgentType:
		return m.AgentType()
	case registeredagent.FieldStatus:
		return m.Status()
	case registeredagent.FieldRiskLevel:
		return m.RiskLevel()
	case registeredagent.FieldDescription:
		return m.Description()
	case registeredagent.FieldEventCount:
		return m.EventCount()
	case registeredagent.FieldLastSeenAt:
		return m.LastSeenAt()
	case registeredagent.FieldCreatedAt:
		return m.CreatedAt()
	case registeredagent.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RegisteredAgentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case registeredagent.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case registeredagent.FieldName:
		return m.OldName(ctx)
	case registeredagent.FieldAPIKeyHash:
		return m.OldAPIKeyHash(ctx)
	case registeredagent.FieldAPIKeyPrefix:
		return m.OldAPIKeyPrefix(ctx)
	case registeredagent.FieldAgentType:
		return m.OldAgentType(ctx)
	case registeredagent.FieldStatus:
		return m.OldStatus(ctx)
	case registeredagent.FieldRiskLevel:
		return m.OldRiskLevel(ctx)
	case registeredagent.FieldDescription:
		return m.OldDescription(ctx)
	case registeredagent.FieldEventCount:
		return m.OldEventCount(ctx)
	case registeredagent.FieldLastSeenAt:
		return m.OldLastSeenAt(ctx)
	case registeredagent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case registeredagent.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RegisteredAgent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RegisteredAgentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case registeredagent.FieldWorkspaceID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case registeredagent.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case registeredagent.FieldAPIKeyHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAPIKeyHash(v)
		return nil
	case registeredagent.FieldAPIKeyPrefix:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAPIKeyPrefix(v)
		return nil
	case registeredagent.FieldAgentType:
		v, ok := value.(registeredagent.AgentType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentType(v)
		return nil
	case registeredagent.FieldStatus:
		v, ok := value.(registeredagent.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case registeredagent.FieldRiskLevel:
		v, ok := value.(registeredagent.RiskLevel)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiskLevel(v)
		return nil
	case registeredagent.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case registeredagent.FieldEventCount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventCount(v)
		return nil
	case registeredagent.FieldLastSeenAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeenAt(v)
		return nil
	case registeredagent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case registeredagent.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RegisteredAgent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RegisteredAgentMutation) AddedFields() []string {
	var fields []string
	if m.addevent_count != nil {
		fields = append(fields, registeredagent.FieldEventCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RegisteredAgentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case registeredagent.FieldEventCount:
		return m.AddedEventCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RegisteredAgentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case registeredagent.FieldEventCount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEventCount(v)
		return nil
	}
	return fmt.Errorf("unknown RegisteredAgent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RegisteredAgentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(registeredagent.FieldDescription) {
		fields = append(fields, registeredagent.FieldDescription)
	}
	if m.FieldCleared(registeredagent.FieldLastSeenAt) {
		fields = append(fields, registeredagent.FieldLastSeenAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RegisteredAgentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RegisteredAgentMutation) ClearField(name string) error {
	switch name {
	case registeredagent.FieldDescription:
		m.ClearDescription()
		return nil
	case registeredagent.FieldLastSeenAt:
		m.ClearLastSeenAt()
		return nil
	}
	return fmt.Errorf("unknown RegisteredAgent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RegisteredAgentMutation) ResetField(name string) error {
	switch name {
	case registeredagent.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case registeredagent.FieldName:
		m.ResetName()
		return nil
	case registeredagent.FieldAPIKeyHash:
		m.ResetAPIKeyHash()
		return nil
	case registeredagent.FieldAPIKeyPrefix:
		m.ResetAPIKeyPrefix()
		return nil
	case registeredagent.FieldAgentType:
		m.ResetAgentType()
		return nil
	case registeredagent.FieldStatus:
		m.ResetStatus()
		return nil
	case registeredagent.FieldRiskLevel:
		m.ResetRiskLevel()
		return nil
	case registeredagent.FieldDescription:
		m.ResetDescription()
		return nil
	case registeredagent.FieldEventCount:
		m.ResetEventCount()
		return nil
	case registeredagent.FieldLastSeenAt:
		m.ResetLastSeenAt()
		return nil
	case registeredagent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case registeredagent.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown RegisteredAgent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RegisteredAgentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.workspace != nil {
		edges = append(edges, registeredagent.EdgeWorkspace)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RegisteredAgentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case registeredagent.EdgeWorkspace:
		if id := m.workspace; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RegisteredAgentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RegisteredAgentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RegisteredAgentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedworkspace {
		edges = append(edges, registeredagent.EdgeWorkspace)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RegisteredAgentMutation) EdgeCleared(name string) bool {
	switch name {
	case registeredagent.EdgeWorkspace:
		return m.clearedworkspace
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RegisteredAgentMutation) ClearEdge(name string) error {
	switch name {
	case registeredagent.EdgeWorkspace:
		m.ClearWorkspace()
		return nil
	}
	return fmt.Errorf("unknown RegisteredAgent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RegisteredAgentMutation) ResetEdge(name string) error {
	switch name {
	case registeredagent.EdgeWorkspace:
		m.ResetWorkspace()
		return nil
	}
	return fmt.Errorf("unknown RegisteredAgent edge %s", name)
}

// VerdictMutation represents an operation that mutates the Verdict nodes in the graph.
type VerdictMutation struct {
	config
	op                        Op
	typ                       string
	id                        *uuid.UUID
	workspace_id              *uuid.UUID
	decision                  *verdict.Decision
	confidence                *float64
	addconfidence             *float64
	reasoning                 *string
	vote_breakdown            *map[string]interface{}
	dissenting_opinions       *[]map[string]interface{}
	appenddissenting_opinions []map[string]interface{}
	strategy_used             *string
	consensus_reached         *bool
	created_at                *time.Time
	clearedFields             map[string]struct{}
	session                   *uuid.UUID
	clearedsession            bool
	done                      bool
	oldValue                  func(context.Context) (*Verdict, error)
	predicates                []predicate.Verdict
}

var _ ent.Mutation = (*VerdictMutation)(nil)

// verdictOption allows management of the mutation configuration using functional options.
type verdictOption func(*VerdictMutation)

// newVerdictMutation creates new mutation for the Verdict entity.
func newVerdictMutation(c config, op Op, opts ...verdictOption) *VerdictMutation {
	m := &VerdictMutation{
		config:        c,
		op:            op,
		typ:           TypeVerdict,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVerdictID sets the ID field of the mutation.
func withVerdictID(id uuid.UUID) verdictOption {
	return func(m *VerdictMutation) {
		var (
			err   error
			once  sync.Once
			value *Verdict
		)
		m.oldValue = func(ctx context.Context) (*Verdict, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Verdict.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVerdict sets the old Verdict of the mutation.
func withVerdict(node *Verdict) verdictOption {
	return func(m *VerdictMutation) {
		m.oldValue = func(context.Context) (*Verdict, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VerdictMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VerdictMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Verdict entities.
func (m *VerdictMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VerdictMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VerdictMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Verdict.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *VerdictMutation) SetSessionID(u uuid.UUID) {
	m.session = &u
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *VerdictMutation) SessionID() (r uuid.UUID, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Verdict entity.
// If the Verdict object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerdictMutation) OldSessionID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *VerdictMutation) ResetSessionID() {
	m.session = nil
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *VerdictMutation) SetWorkspaceID(u uuid.UUID) {
	m.workspace_id = &u
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *VerdictMutation) WorkspaceID() (r uuid.UUID, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the Verdict entity.
// If the Verdict object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerdictMutation) OldWorkspaceID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *VerdictMutation) ResetWorkspaceID() {
	m.workspace_id = nil
}

// SetDecision sets the "decision" field.
func (m *VerdictMutation) SetDecision(v verdict.Decision) {
	m.decision = &v
}

// Decision returns the value of the "decision" field in the mutation.
func (m *VerdictMutation) Decision() (r verdict.Decision, exists bool) {
	v := m.decision
	if v == nil {
		return
	}
	return *v, true
}

// OldDecision returns the old "decision" field's value of the Verdict entity.
// If the Verdict object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerdictMutation) OldDecision(ctx context.Context) (v verdict.Decision, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecision is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecision requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecision: %w", err)
	}
	return oldValue.Decision, nil
}

// ResetDecision resets all changes to the "decision" field.
func (m *VerdictMutation) ResetDecision() {
	m.decision = nil
}

// SetConfidence sets the "confidence" field.
func (m *VerdictMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *VerdictMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the Verdict entity.
// If the Verdict object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerdictMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *VerdictMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *VerdictMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *VerdictMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetReasoning sets the "reasoning" field.
func (m *VerdictMutation) SetReasoning(s string) {
	m.reasoning = &s
}

// Reasoning returns the value of the "reasoning" field in the mutation.
func (m *VerdictMutation) Reasoning() (r string, exists bool) {
	v := m.reasoning
	if v == nil {
		return
	}
	return *v, true
}

// OldReasoning returns the old "reasoning" field's value of the Verdict entity.
// If the Verdict object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerdictMutation) OldReasoning(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReasoning is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReasoning requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReasoning: %w", err)
	}
	return oldValue.Reasoning, nil
}

// ClearReasoning clears the value of the "reasoning" field.
func (m *VerdictMutation) ClearReasoning() {
	m.reasoning = nil
	m.clearedFields[verdict.FieldReasoning] = struct{}{}
}

// ReasoningCleared returns if the "reasoning" field was cleared in this mutation.
func (m *VerdictMutation) ReasoningCleared() bool {
	_, ok := m.clearedFields[verdict.FieldReasoning]
	return ok
}

// ResetReasoning resets all changes to the "reasoning" field.
func (m *VerdictMutation) ResetReasoning() {
	m.reasoning = nil
	delete(m.clearedFields, verdict.FieldReasoning)
}

// SetVoteBreakdown sets the "vote_breakdown" field.
func (m *VerdictMutation) SetVoteBreakdown(value map[string]interface{}) {
	m.vote_breakdown = &value
}

// VoteBreakdown returns the value of the "vote_breakdown" field in the mutation.
func (m *VerdictMutation) VoteBreakdown() (r map[string]interface{}, exists bool) {
	v := m.vote_breakdown
	if v == nil {
		return
	}
	return *v, true
}

// OldVoteBreakdown returns the old "vote_breakdown" field's value of the Verdict entity.
// If the Verdict object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerdictMutation) OldVoteBreakdown(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVoteBreakdown is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVoteBreakdown requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVoteBreakdown: %w", err)
	}
	return oldValue.VoteBreakdown, nil
}

// ClearVoteBreakdown clears the value of the "vote_breakdown" field.
func (m *VerdictMutation) ClearVoteBreakdown() {
	m.vote_breakdown = nil
	m.clearedFields[verdict.FieldVoteBreakdown] = struct{}{}
}

// VoteBreakdownCleared returns if the "vote_breakdown" field was cleared in this mutation.
func (m *VerdictMutation) VoteBreakdownCleared() bool {
	_, ok := m.clearedFields[verdict.FieldVoteBreakdown]
	return ok
}

// ResetVoteBreakdown resets all changes to the "vote_breakdown" field.
func (m *VerdictMutation) ResetVoteBreakdown() {
	m.vote_breakdown = nil
	delete(m.clearedFields, verdict.FieldVoteBreakdown)
}

// SetDissentingOpinions sets the "dissenting_opinions" field.
func (m *VerdictMutation) SetDissentingOpinions(value []map[string]interface{}) {
	m.dissenting_opinions = &value
	m.appenddissenting_opinions = nil
}

// DissentingOpinions returns the value of the "dissenting_opinions" field in the mutation.
func (m *VerdictMutation) DissentingOpinions() (r []map[string]interface{}, exists bool) {
	v := m.dissenting_opinions
	if v == nil {
		return
	}
	return *v, true
}

// OldDissentingOpinions returns the old "dissenting_opinions" field's value of the Verdict entity.
// If the Verdict object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerdictMutation) OldDissentingOpinions(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDissentingOpinions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDissentingOpinions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDissentingOpinions: %w", err)
	}
	return oldValue.DissentingOpinions, nil
}

// AppendDissentingOpinions adds value to the "dissenting_opinions" field.
func (m *VerdictMutation) AppendDissentingOpinions(value []map[string]interface{}) {
	m.appenddissenting_opinions = append(m.appenddissenting_opinions, value...)
}

// AppendedDissentingOpinions returns the list of values that were appended to the "dissenting_opinions" field in this mutation.
func (m *VerdictMutation) AppendedDissentingOpinions() ([]map[string]interface{}, bool) {
	if len(m.appenddissenting_opinions) == 0 {
		return nil, false
	}
	return m.appenddissenting_opinions, true
}

// ClearDissentingOpinions clears the value of the "dissenting_opinions" field.
func (m *VerdictMutation) ClearDissentingOpinions() {
	m.dissenting_opinions = nil
	m.appenddissenting_opinions = nil
	m.clearedFields[verdict.FieldDissentingOpinions] = struct{}{}
}

// DissentingOpinionsCleared returns if the "dissenting_opinions" field was cleared in this mutation.
func (m *VerdictMutation) DissentingOpinionsCleared() bool {
	_, ok := m.clearedFields[verdict.FieldDissentingOpinions]
	return ok
}

// ResetDissentingOpinions resets all changes to the "dissenting_opinions" field.
func (m *VerdictMutation) ResetDissentingOpinions() {
	m.dissenting_opinions = nil
	m.appenddissenting_opinions = nil
	delete(m.clearedFields, verdict.FieldDissentingOpinions)
}

// SetStrategyUsed sets the "strategy_used" field.
func (m *VerdictMutation) SetStrategyUsed(s string) {
	m.strategy_used = &s
}

// StrategyUsed returns the value of the "strategy_used" field in the mutation.
func (m *VerdictMutation) StrategyUsed() (r string, exists bool) {
	v := m.strategy_used
	if v == nil {
		return
	}
	return *v, true
}

// OldStrategyUsed returns the old "strategy_used" field's value of the Verdict entity.
// If the Verdict object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerdictMutation) OldStrategyUsed(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStrategyUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStrategyUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStrategyUsed: %w", err)
	}
	return oldValue.StrategyUsed, nil
}

// ResetStrategyUsed resets all changes to the "strategy_used" field.
func (m *VerdictMutation) ResetStrategyUsed() {
	m.strategy_used = nil
}

// SetConsensusReached sets the "consensus_reached" field.
func (m *VerdictMutation) SetConsensusReached(b bool) {
	m.consensus_reached = &b
}

// ConsensusReached returns the value of the "consensus_reached" field in the mutation.
func (m *VerdictMutation) ConsensusReached() (r bool, exists bool) {
	v := m.consensus_reached
	if v == nil {
		return
	}
	return *v, true
}

// OldConsensusReached returns the old "consensus_reached" field's value of the Verdict entity.
// If the Verdict object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerdictMutation) OldConsensusReached(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsensusReached is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsensusReached requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsensusReached: %w", err)
	}
	return oldValue.ConsensusReached, nil
}

// ResetConsensusReached resets all changes to the "consensus_reached" field.
func (m *VerdictMutation) ResetConsensusReached() {
	m.consensus_reached = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *VerdictMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *VerdictMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Verdict entity.
// If the Verdict object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerdictMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *VerdictMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the AnalysisSession entity.
func (m *VerdictMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[verdict.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the AnalysisSession entity was cleared.
func (m *VerdictMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *VerdictMutation) SessionIDs() (ids []uuid.UUID) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *VerdictMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the VerdictMutation builder.
func (m *VerdictMutation) Where(ps ...predicate.Verdict) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VerdictMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VerdictMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Verdict, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VerdictMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VerdictMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Verdict).
func (m *VerdictMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VerdictMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.session != nil {
		fields = append(fields, verdict.FieldSessionID)
	}
	if m.workspace_id != nil {
		fields = append(fields, verdict.FieldWorkspaceID)
	}
	if m.decision != nil {
		fields = append(fields, verdict.FieldDecision)
	}
	if m.confidence != nil {
		fields = append(fields, verdict.FieldConfidence)
	}
	if m.reasoning != nil {
		fields = append(fields, verdict.FieldReasoning)
	}
	if m.vote_breakdown != nil {
		fields = append(fields, verdict.FieldVoteBreakdown)
	}
	if m.dissenting_opinions != nil {
		fields = append(fields, verdict.FieldDissentingOpinions)
	}
	if m.strategy_used != nil {
		fields = append(fields, verdict.FieldStrategyUsed)
	}
	if m.consensus_reached != nil {
		fields = append(fields, verdict.FieldConsensusReached)
	}
	if m.created_at != nil {
		fields = append(fields, verdict.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VerdictMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case verdict.FieldSessionID:
		return m.SessionID()
	case verdict.FieldWorkspaceID:
		return m.WorkspaceID()
	case verdict.FieldDecision:
		return m.Decision()
	case verdict.FieldConfidence:
		return m.Confidence()
	case verdict.FieldReasoning:
		return m.Reasoning()
	case verdict.FieldVoteBreakdown:
		return m.VoteBreakdown()
	case verdict.FieldDissentingOpinions:
		return m.DissentingOpinions()
	case verdict.FieldStrategyUsed:
		return m.StrategyUsed()
	case verdict.FieldConsensusReached:
		return m.ConsensusReached()
	case verdict.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VerdictMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case verdict.FieldSessionID:
		return m.OldSessionID(ctx)
	case verdict.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case verdict.FieldDecision:
		return m.OldDecision(ctx)
	case verdict.FieldConfidence:
		return m.OldConfidence(ctx)
	case verdict.FieldReasoning:
		return m.OldReasoning(ctx)
	case verdict.FieldVoteBreakdown:
		return m.OldVoteBreakdown(ctx)
	case verdict.FieldDissentingOpinions:
		return m.OldDissentingOpinions(ctx)
	case verdict.FieldStrategyUsed:
		return m.OldStrategyUsed(ctx)
	case verdict.FieldConsensusReached:
		return m.OldConsensusReached(ctx)
	case verdict.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Verdict field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VerdictMutation) SetField(name string, value ent.Value) error {
	switch name {
	case verdict.FieldSessionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case verdict.FieldWorkspaceID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case verdict.FieldDecision:
		v, ok := value.(verdict.Decision)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecision(v)
		return nil
	case verdict.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case verdict.FieldReasoning:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReasoning(v)
		return nil
	case verdict.FieldVoteBreakdown:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVoteBreakdown(v)
		return nil
	case verdict.FieldDissentingOpinions:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDissentingOpinions(v)
		return nil
	case verdict.FieldStrategyUsed:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStrategyUsed(v)
		return nil
	case verdict.FieldConsensusReached:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsensusReached(v)
		return nil
	case verdict.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Verdict field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VerdictMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, verdict.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VerdictMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case verdict.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VerdictMutation) AddField(name string, value ent.Value) error {
	switch name {
	case verdict.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown Verdict numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VerdictMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(verdict.FieldReasoning) {
		fields = append(fields, verdict.FieldReasoning)
	}
	if m.FieldCleared(verdict.FieldVoteBreakdown) {
		fields = append(fields, verdict.FieldVoteBreakdown)
	}
	if m.FieldCleared(verdict.FieldDissentingOpinions) {
		fields = append(fields, verdict.FieldDissentingOpinions)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VerdictMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VerdictMutation) ClearField(name string) error {
	switch name {
	case verdict.FieldReasoning:
		m.ClearReasoning()
		return nil
	case verdict.FieldVoteBreakdown:
		m.ClearVoteBreakdown()
		return nil
	case verdict.FieldDissentingOpinions:
		m.ClearDissentingOpinions()
		return nil
	}
	return fmt.Errorf("unknown Verdict nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VerdictMutation) ResetField(name string) error {
	switch name {
	case verdict.FieldSessionID:
		m.ResetSessionID()
		return nil
	case verdict.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case verdict.FieldDecision:
		m.ResetDecision()
		return nil
	case verdict.FieldConfidence:
		m.ResetConfidence()
		return nil
	case verdict.FieldReasoning:
		m.ResetReasoning()
		return nil
	case verdict.FieldVoteBreakdown:
		m.ResetVoteBreakdown()
		return nil
	case verdict.FieldDissentingOpinions:
		m.ResetDissentingOpinions()
		return nil
	case verdict.FieldStrategyUsed:
		m.ResetStrategyUsed()
		return nil
	case verdict.FieldConsensusReached:
		m.ResetConsensusReached()
		return nil
	case verdict.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Verdict field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VerdictMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, verdict.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VerdictMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case verdict.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VerdictMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VerdictMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VerdictMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, verdict.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VerdictMutation) EdgeCleared(name string) bool {
	switch name {
	case verdict.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VerdictMutation) ClearEdge(name string) error {
	switch name {
	case verdict.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown Verdict unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VerdictMutation) ResetEdge(name string) error {
	switch name {
	case verdict.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown Verdict edge %s", name)
}

// WorkflowMutation represents an operation that mutates the Workflow nodes in the graph.
type WorkflowMutation struct {
	config
	op                       Op
	typ                      string
	id                       *uuid.UUID
	name                     *string
	description              *string
	trigger_on               *workflow.TriggerOn
	enabled                  *bool
	consensus_policy_id      *uuid.UUID
	ghost_protocol_config_id *uuid.UUID
	metadata                 *map[string]interface{}
	created_at               *time.Time
	updated_at               *time.Time
	clearedFields            map[string]struct{}
	workspace                *uuid.UUID
	clearedworkspace         bool
	steps                    map[uuid.UUID]struct{}
	removedsteps             map[uuid.UUID]struct{}
	clearedsteps             bool
	done                     bool
	oldValue                 func(context.Context) (*Workflow, error)
	predicates               []predicate.Workflow
}

var _ ent.Mutation = (*WorkflowMutation)(nil)

// workflowOption allows management of the mutation configuration using functional options.
type workflowOption func(*WorkflowMutation)

// newWorkflowMutation creates new mutation for the Workflow entity.
func newWorkflowMutation(c config, op Op, opts ...workflowOption) *WorkflowMutation {
	m := &WorkflowMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkflow,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkflowID sets the ID field of the mutation.
func withWorkflowID(id uuid.UUID) workflowOption {
	return func(m *WorkflowMutation) {
		var (
			err   error
			once  sync.Once
			value *Workflow
		)
		m.oldValue = func(ctx context.Context) (*Workflow, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Workflow.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkflow sets the old Workflow of the mutation.
func withWorkflow(node *Workflow) workflowOption {
	return func(m *WorkflowMutation) {
		m.oldValue = func(context.Context) (*Workflow, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkflowMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkflowMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Workflow entities.
func (m *WorkflowMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkflowMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkflowMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Workflow.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *WorkflowMutation) SetWorkspaceID(u uuid.UUID) {
	m.workspace = &u
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *WorkflowMutation) WorkspaceID() (r uuid.UUID, exists bool) {
	v := m.workspace
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldWorkspaceID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *WorkflowMutation) ResetWorkspaceID() {
	m.workspace = nil
}

// SetName sets the "name" field.
func (m *WorkflowMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *WorkflowMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *WorkflowMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *WorkflowMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *WorkflowMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *WorkflowMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[workflow.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *WorkflowMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[workflow.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *WorkflowMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, workflow.FieldDescription)
}

// SetTriggerOn sets the "trigger_on" field.
func (m *WorkflowMutation) SetTriggerOn(wo workflow.TriggerOn) {
	m.trigger_on = &wo
}

// TriggerOn returns the value of the "trigger_on" field in the mutation.
func (m *WorkflowMutation) TriggerOn() (r workflow.TriggerOn, exists bool) {
	v := m.trigger_on
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggerOn returns the old "trigger_on" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldTriggerOn(ctx context.Context) (v workflow.TriggerOn, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggerOn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggerOn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggerOn: %w", err)
	}
	return oldValue.TriggerOn, nil
}

// ResetTriggerOn resets all changes to the "trigger_on" field.
func (m *WorkflowMutation) ResetTriggerOn() {
	m.trigger_on = nil
}

// SetEnabled sets the "enabled" field.
func (m *WorkflowMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *WorkflowMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *WorkflowMutation) ResetEnabled() {
	m.enabled = nil
}

// SetConsensusPolicyID sets the "consensus_policy_id" field.
func (m *WorkflowMutation) SetConsensusPolicyID(u uuid.UUID) {
	m.consensus_policy_id = &u
}

// ConsensusPolicyID returns the value of the "consensus_policy_id" field in the mutation.
func (m *WorkflowMutation) ConsensusPolicyID() (r uuid.UUID, exists bool) {
	v := m.consensus_policy_id
	if v == nil {
		return
	}
	return *v, true
}

// OldConsensusPolicyID returns the old "consensus_policy_id" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldConsensusPolicyID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsensusPolicyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsensusPolicyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsensusPolicyID: %w", err)
	}
	return oldValue.ConsensusPolicyID, nil
}

// ClearConsensusPolicyID clears the value of the "consensus_policy_id" field.
func (m *WorkflowMutation) ClearConsensusPolicyID() {
	m.consensus_policy_id = nil
	m.clearedFields[workflow.FieldConsensusPolicyID] = struct{}{}
}

// ConsensusPolicyIDCleared returns if the "consensus_policy_id" field was cleared in this mutation.
func (m *WorkflowMutation) ConsensusPolicyIDCleared() bool {
	_, ok := m.clearedFields[workflow.FieldConsensusPolicyID]
	return ok
}

// ResetConsensusPolicyID resets all changes to the "consensus_policy_id" field.
func (m *WorkflowMutation) ResetConsensusPolicyID() {
	m.consensus_policy_id = nil
	delete(m.clearedFields, workflow.FieldConsensusPolicyID)
}

// SetGhostProtocolConfigID sets the "ghost_protocol_config_id" field.
func (m *WorkflowMutation) SetGhostProtocolConfigID(u uuid.UUID) {
	m.ghost_protocol_config_id = &u
}

// GhostProtocolConfigID returns the value of the "ghost_protocol_config_id" field in the mutation.
func (m *WorkflowMutation) GhostProtocolConfigID() (r uuid.UUID, exists bool) {
	v := m.ghost_protocol_config_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGhostProtocolConfigID returns the old "ghost_protocol_config_id" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldGhostProtocolConfigID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGhostProtocolConfigID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGhostProtocolConfigID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGhostProtocolConfigID: %w", err)
	}
	return oldValue.GhostProtocolConfigID, nil
}

// ClearGhostProtocolConfigID clears the value of the "ghost_protocol_config_id" field.
func (m *WorkflowMutation) ClearGhostProtocolConfigID() {
	m.ghost_protocol_config_id = nil
	m.clearedFields[workflow.FieldGhostProtocolConfigID] = struct{}{}
}

// GhostProtocolConfigIDCleared returns if the "ghost_protocol_config_id" field was cleared in this mutation.
func (m *WorkflowMutation) GhostProtocolConfigIDCleared() bool {
	_, ok := m.clearedFields[workflow.FieldGhostProtocolConfigID]
	return ok
}

// ResetGhostProtocolConfigID resets all changes to the "ghost_protocol_config_id" field.
func (m *WorkflowMutation) ResetGhostProtocolConfigID() {
	m.ghost_protocol_config_id = nil
	delete(m.clearedFields, workflow.FieldGhostProtocolConfigID)
}

// SetMetadata sets the "metadata" field.
func (m *WorkflowMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *WorkflowMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *WorkflowMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[workflow.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *WorkflowMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[workflow.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *WorkflowMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, workflow.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkflowMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkflowMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WorkflowMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WorkflowMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WorkflowMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *WorkflowMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (m *WorkflowMutation) ClearWorkspace() {
	m.clearedworkspace = true
	m.clearedFields[workflow.FieldWorkspaceID] = struct{}{}
}

// WorkspaceCleared reports if the "workspace" edge to the Workspace entity was cleared.
func (m *WorkflowMutation) WorkspaceCleared() bool {
	return m.clearedworkspace
}

// WorkspaceIDs returns the "workspace" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkspaceID instead. It exists only for internal usage by the builders.
func (m *WorkflowMutation) WorkspaceIDs() (ids []uuid.UUID) {
	if id := m.workspace; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorkspace resets all changes to the "workspace" edge.
func (m *WorkflowMutation) ResetWorkspace() {
	m.workspace = nil
	m.clearedworkspace = false
}

// AddStepIDs adds the "steps" edge to the WorkflowStep entity by ids.
func (m *WorkflowMutation) AddStepIDs(ids ...uuid.UUID) {
	if m.steps == nil {
		m.steps = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.steps[ids[i]] = struct{}{}
	}
}

// ClearSteps clears the "steps" edge to the WorkflowStep entity.
func (m *WorkflowMutation) ClearSteps() {
	m.clearedsteps = true
}

// StepsCleared reports if the "steps" edge to the WorkflowStep entity was cleared.
func (m *WorkflowMutation) StepsCleared() bool {
	return m.clearedsteps
}

// RemoveStepIDs removes the "steps" edge to the WorkflowStep entity by IDs.
func (m *WorkflowMutation) RemoveStepIDs(ids ...uuid.UUID) {
	if m.removedsteps == nil {
		m.removedsteps = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.steps, ids[i])
		m.removedsteps[ids[i]] = struct{}{}
	}
}

// RemovedSteps returns the removed IDs of the "steps" edge to the WorkflowStep entity.
func (m *WorkflowMutation) RemovedStepsIDs() (ids []uuid.UUID) {
	for id := range m.removedsteps {
		ids = append(ids, id)
	}
	return
}

// StepsIDs returns the "steps" edge IDs in the mutation.
func (m *WorkflowMutation) StepsIDs() (ids []uuid.UUID) {
	for id := range m.steps {
		ids = append(ids, id)
	}
	return
}

// ResetSteps resets all changes to the "steps" edge.
func (m *WorkflowMutation) ResetSteps() {
	m.steps = nil
	m.clearedsteps = false
	m.removedsteps = nil
}

// Where appends a list predicates to the WorkflowMutation builder.
func (m *WorkflowMutation) Where(ps ...predicate.Workflow) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkflowMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkflowMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Workflow, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkflowMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkflowMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Workflow).
func (m *WorkflowMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkflowMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.workspace != nil {
		fields = append(fields, workflow.FieldWorkspaceID)
	}
	if m.name != nil {
		fields = append(fields, workflow.FieldName)
	}
	if m.description != nil {
		fields = append(fields, workflow.FieldDescription)
	}
	if m.trigger_on != nil {
		fields = append(fields, workflow.FieldTriggerOn)
	}
	if m.enabled != nil {
		fields = append(fields, workflow.FieldEnabled)
	}
	if m.consensus_policy_id != nil {
		fields = append(fields, workflow.FieldConsensusPolicyID)
	}
	if m.ghost_protocol_config_id != nil {
		fields = append(fields, workflow.FieldGhostProtocolConfigID)
	}
	if m.metadata != nil {
		fields = append(fields, workflow.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, workflow.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, workflow.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkflowMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workflow.FieldWorkspaceID:
		return m.WorkspaceID()
	case workflow.FieldName:
		return m.Name()
	case workflow.FieldDescription:
		return m.Description()
	case workflow.FieldTriggerOn:
		return m.TriggerOn()
	case workflow.FieldEnabled:
		return m.Enabled()
	case workflow.FieldConsensusPolicyID:
		return m.ConsensusPolicyID()
	case workflow.FieldGhostProtocolConfigID:
		return m.GhostProtocolConfigID()
	case workflow.FieldMetadata:
		return m.Metadata()
	case workflow.FieldCreatedAt:
		return m.CreatedAt()
	case workflow.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkflowMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workflow.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case workflow.FieldName:
		return m.OldName(ctx)
	case workflow.FieldDescription:
		return m.OldDescription(ctx)
	case workflow.FieldTriggerOn:
		return m.OldTriggerOn(ctx)
	case workflow.FieldEnabled:
		return m.OldEnabled(ctx)
	case workflow.FieldConsensusPolicyID:
		return m.OldConsensusPolicyID(ctx)
	case workflow.FieldGhostProtocolConfigID:
		return m.OldGhostProtocolConfigID(ctx)
	case workflow.FieldMetadata:
		return m.OldMetadata(ctx)
	case workflow.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case workflow.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Workflow field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workflow.FieldWorkspaceID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case workflow.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case workflow.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case workflow.FieldTriggerOn:
		v, ok := value.(workflow.TriggerOn)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggerOn(v)
		return nil
	case workflow.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case workflow.FieldConsensusPolicyID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsensusPolicyID(v)
		return nil
	case workflow.FieldGhostProtocolConfigID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGhostProtocolConfigID(v)
		return nil
	case workflow.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case workflow.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case workflow.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Workflow field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkflowMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkflowMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Workflow numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkflowMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(workflow.FieldDescription) {
		fields = append(fields, workflow.FieldDescription)
	}
	if m.FieldCleared(workflow.FieldConsensusPolicyID) {
		fields = append(fields, workflow.FieldConsensusPolicyID)
	}
	if m.FieldCleared(workflow.FieldGhostProtocolConfigID) {
		fields = append(fields, workflow.FieldGhostProtocolConfigID)
	}
	if m.FieldCleared(workflow.FieldMetadata) {
		fields = append(fields, workflow.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkflowMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkflowMutation) ClearField(name string) error {
	switch name {
	case workflow.FieldDescription:
		m.ClearDescription()
		return nil
	case workflow.FieldConsensusPolicyID:
		m.ClearConsensusPolicyID()
		return nil
	case workflow.FieldGhostProtocolConfigID:
		m.ClearGhostProtocolConfigID()
		return nil
	case workflow.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown Workflow nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkflowMutation) ResetField(name string) error {
	switch name {
	case workflow.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case workflow.FieldName:
		m.ResetName()
		return nil
	case workflow.FieldDescription:
		m.ResetDescription()
		return nil
	case workflow.FieldTriggerOn:
		m.ResetTriggerOn()
		return nil
	case workflow.FieldEnabled:
		m.ResetEnabled()
		return nil
	case workflow.FieldConsensusPolicyID:
		m.ResetConsensusPolicyID()
		return nil
	case workflow.FieldGhostProtocolConfigID:
		m.ResetGhostProtocolConfigID()
		return nil
	case workflow.FieldMetadata:
		m.ResetMetadata()
		return nil
	case workflow.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case workflow.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Workflow field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkflowMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.workspace != nil {
		edges = append(edges, workflow.EdgeWorkspace)
	}
	if m.steps != nil {
		edges = append(edges, workflow.EdgeSteps)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkflowMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case workflow.EdgeWorkspace:
		if id := m.workspace; id != nil {
			return []ent.Value{*id}
		}
	case workflow.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.steps))
		for id := range m.steps {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkflowMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedsteps != nil {
		edges = append(edges, workflow.EdgeSteps)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkflowMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case workflow.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.removedsteps))
		for id := range m.removedsteps {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkflowMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedworkspace {
		edges = append(edges, workflow.EdgeWorkspace)
	}
	if m.clearedsteps {
		edges = append(edges, workflow.EdgeSteps)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkflowMutation) EdgeCleared(name string) bool {
	switch name {
	case workflow.EdgeWorkspace:
		return m.clearedworkspace
	case workflow.EdgeSteps:
		return m.clearedsteps
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkflowMutation) ClearEdge(name string) error {
	switch name {
	case workflow.EdgeWorkspace:
		m.ClearWorkspace()
		return nil
	}
	return fmt.Errorf("unknown Workflow unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkflowMutation) ResetEdge(name string) error {
	switch name {
	case workflow.EdgeWorkspace:
		m.ResetWorkspace()
		return nil
	case workflow.EdgeSteps:
		m.ResetSteps()
		return nil
	}
	return fmt.Errorf("unknown Workflow edge %s", name)
}

// WorkflowStepMutation represents an operation that mutates the WorkflowStep nodes in the graph.
type WorkflowStepMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	agent_definition_id *uuid.UUID
	prompt_template_id  *uuid.UUID
	step_index          *int
	addstep_index       *int
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	workflow            *uuid.UUID
	clearedworkflow     bool
	done                bool
	oldValue            func(context.Context) (*WorkflowStep, error)
	predicates          []predicate.WorkflowStep
}

var _ ent.Mutation = (*WorkflowStepMutation)(nil)

// workflowstepOption allows management of the mutation configuration using functional options.
type workflowstepOption func(*WorkflowStepMutation)

// newWorkflowStepMutation creates new mutation for the WorkflowStep entity.
func newWorkflowStepMutation(c config, op Op, opts ...workflowstepOption) *WorkflowStepMutation {
	m := &WorkflowStepMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkflowStep,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkflowStepID sets the ID field of the mutation.
func withWorkflowStepID(id uuid.UUID) workflowstepOption {
	return func(m *WorkflowStepMutation) {
		var (
			err   error
			once  sync.Once
			value *WorkflowStep
		)
		m.oldValue = func(ctx context.Context) (*WorkflowStep, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WorkflowStep.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkflowStep sets the old WorkflowStep of the mutation.
func withWorkflowStep(node *WorkflowStep) workflowstepOption {
	return func(m *WorkflowStepMutation) {
		m.oldValue = func(context.Context) (*WorkflowStep, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkflowStepMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkflowStepMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WorkflowStep entities.
func (m *WorkflowStepMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkflowStepMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkflowStepMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WorkflowStep.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkflowID sets the "workflow_id" field.
func (m *WorkflowStepMutation) SetWorkflowID(u uuid.UUID) {
	m.workflow = &u
}

// WorkflowID returns the value of the "workflow_id" field in the mutation.
func (m *WorkflowStepMutation) WorkflowID() (r uuid.UUID, exists bool) {
	v := m.workflow
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkflowID returns the old "workflow_id" field's value of the WorkflowStep entity.
// If the WorkflowStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowStepMutation) OldWorkflowID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkflowID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkflowID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkflowID: %w", err)
	}
	return oldValue.WorkflowID, nil
}

// ResetWorkflowID resets all changes to the "workflow_id" field.
func (m *WorkflowStepMutation) ResetWorkflowID() {
	m.workflow = nil
}

// SetAgentDefinitionID sets the "agent_definition_id" field.
func (m *WorkflowStepMutation) SetAgentDefinitionID(u uuid.UUID) {
	m.agent_definition_id = &u
}

// AgentDefinitionID returns the value of the "agent_definition_id" field in the mutation.
func (m *WorkflowStepMutation) AgentDefinitionID() (r uuid.UUID, exists bool) {
	v := m.agent_definition_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentDefinitionID returns the old "agent_definition_id" field's value of the WorkflowStep entity.
// If the WorkflowStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowStepMutation) OldAgentDefinitionID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentDefinitionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentDefinitionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentDefinitionID: %w", err)
	}
	return oldValue.AgentDefinitionID, nil
}

// ResetAgentDefinitionID resets all changes to the "agent_definition_id" field.
func (m *WorkflowStepMutation) ResetAgentDefinitionID() {
	m.agent_definition_id = nil
}

// SetPromptTemplateID sets the "prompt_template_id" field.
func (m *WorkflowStepMutation) SetPromptTemplateID(u uuid.UUID) {
	m.prompt_template_id = &u
}

// PromptTemplateID returns the value of the "prompt_template_id" field in the mutation.
func (m *WorkflowStepMutation) PromptTemplateID() (r uuid.UUID, exists bool) {
	v := m.prompt_template_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptTemplateID returns the old "prompt_template_id" field's value of the WorkflowStep entity.
// If the WorkflowStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowStepMutation) OldPromptTemplateID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptTemplateID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptTemplateID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptTemplateID: %w", err)
	}
	return oldValue.PromptTemplateID, nil
}

// ClearPromptTemplateID clears the value of the "prompt_template_id" field.
func (m *WorkflowStepMutation) ClearPromptTemplateID() {
	m.prompt_template_id = nil
	m.clearedFields[workflowstep.FieldPromptTemplateID] = struct{}{}
}

// PromptTemplateIDCleared returns if the "prompt_template_id" field was cleared in this mutation.
func (m *WorkflowStepMutation) PromptTemplateIDCleared() bool {
	_, ok := m.clearedFields[workflowstep.FieldPromptTemplateID]
	return ok
}

// ResetPromptTemplateID resets all changes to the "prompt_template_id" field.
func (m *WorkflowStepMutation) ResetPromptTemplateID() {
	m.prompt_template_id = nil
	delete(m.clearedFields, workflowstep.FieldPromptTemplateID)
}

// SetStepIndex sets the "step_index" field.
func (m *WorkflowStepMutation) SetStepIndex(i int) {
	m.step_index = &i
	m.addstep_index = nil
}

// StepIndex returns the value of the "step_index" field in the mutation.
func (m *WorkflowStepMutation) StepIndex() (r int, exists bool) {
	v := m.step_index
	if v == nil {
		return
	}
	return *v, true
}

// OldStepIndex returns the old "step_index" field's value of the WorkflowStep entity.
// If the WorkflowStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowStepMutation) OldStepIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepIndex: %w", err)
	}
	return oldValue.StepIndex, nil
}

// AddStepIndex adds i to the "step_index" field.
func (m *WorkflowStepMutation) AddStepIndex(i int) {
	if m.addstep_index != nil {
		*m.addstep_index += i
	} else {
		m.addstep_index = &i
	}
}

// AddedStepIndex returns the value that was added to the "step_index" field in this mutation.
func (m *WorkflowStepMutation) AddedStepIndex() (r int, exists bool) {
	v := m.addstep_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetStepIndex resets all changes to the "step_index" field.
func (m *WorkflowStepMutation) ResetStepIndex() {
	m.step_index = nil
	m.addstep_index = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkflowStepMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkflowStepMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WorkflowStep entity.
// If the WorkflowStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowStepMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WorkflowStepMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WorkflowStepMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WorkflowStepMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the WorkflowStep entity.
// If the WorkflowStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowStepMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *WorkflowStepMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearWorkflow clears the "workflow" edge to the Workflow entity.
func (m *WorkflowStepMutation) ClearWorkflow() {
	m.clearedworkflow = true
	m.clearedFields[workflowstep.FieldWorkflowID] = struct{}{}
}

// WorkflowCleared reports if the "workflow" edge to the Workflow entity was cleared.
func (m *WorkflowStepMutation) WorkflowCleared() bool {
	return m.clearedworkflow
}

// WorkflowIDs returns the "workflow" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkflowID instead. It exists only for internal usage by the builders.
func (m *WorkflowStepMutation) WorkflowIDs() (ids []uuid.UUID) {
	if id := m.workflow; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorkflow resets all changes to the "workflow" edge.
func (m *WorkflowStepMutation) ResetWorkflow() {
	m.workflow = nil
	m.clearedworkflow = false
}

// Where appends a list predicates to the WorkflowStepMutation builder.
func (m *WorkflowStepMutation) Where(ps ...predicate.WorkflowStep) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkflowStepMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkflowStepMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WorkflowStep, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkflowStepMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkflowStepMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WorkflowStep).
func (m *WorkflowStepMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkflowStepMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.workflow != nil {
		fields = append(fields, workflowstep.FieldWorkflowID)
	}
	if m.agent_definition_id != nil {
		fields = append(fields, workflowstep.FieldAgentDefinitionID)
	}
	if m.prompt_template_id != nil {
		fields = append(fields, workflowstep.FieldPromptTemplateID)
	}
	if m.step_index != nil {
		fields = append(fields, workflowstep.FieldStepIndex)
	}
	if m.created_at != nil {
		fields = append(fields, workflowstep.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, workflowstep.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkflowStepMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workflowstep.FieldWorkflowID:
		return m.WorkflowID()
	case workflowstep.FieldAgentDefinitionID:
		return m.AgentDefinitionID()
	case workflowstep.FieldPromptTemplateID:
		return m.PromptTemplateID()
	case workflowstep.FieldStepIndex:
		return m.StepIndex()
	case workflowstep.FieldCreatedAt:
		return m.CreatedAt()
	case workflowstep.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkflowStepMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workflowstep.FieldWorkflowID:
		return m.OldWorkflowID(ctx)
	case workflowstep.FieldAgentDefinitionID:
		return m.OldAgentDefinitionID(ctx)
	case workflowstep.FieldPromptTemplateID:
		return m.OldPromptTemplateID(ctx)
	case workflowstep.FieldStepIndex:
		return m.OldStepIndex(ctx)
	case workflowstep.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case workflowstep.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown WorkflowStep field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowStepMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workflowstep.FieldWorkflowID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkflowID(v)
		return nil
	case workflowstep.FieldAgentDefinitionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentDefinitionID(v)
		return nil
	case workflowstep.FieldPromptTemplateID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptTemplateID(v)
		return nil
	case workflowstep.FieldStepIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepIndex(v)
		return nil
	case workflowstep.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case workflowstep.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown WorkflowStep field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkflowStepMutation) AddedFields() []string {
	var fields []string
	if m.addstep_index != nil {
		fields = append(fields, workflowstep.FieldStepIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkflowStepMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case workflowstep.FieldStepIndex:
		return m.AddedStepIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowStepMutation) AddField(name string, value ent.Value) error {
	switch name {
	case workflowstep.FieldStepIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStepIndex(v)
		return nil
	}
	return fmt.Errorf("unknown WorkflowStep numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkflowStepMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(workflowstep.FieldPromptTemplateID) {
		fields = append(fields, workflowstep.FieldPromptTemplateID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkflowStepMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkflowStepMutation) ClearField(name string) error {
	switch name {
	case workflowstep.FieldPromptTemplateID:
		m.ClearPromptTemplateID()
		return nil
	}
	return fmt.Errorf("unknown WorkflowStep nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkflowStepMutation) ResetField(name string) error {
	switch name {
	case workflowstep.FieldWorkflowID:
		m.ResetWorkflowID()
		return nil
	case workflowstep.FieldAgentDefinitionID:
		m.ResetAgentDefinitionID()
		return nil
	case workflowstep.FieldPromptTemplateID:
		m.ResetPromptTemplateID()
		return nil
	case workflowstep.FieldStepIndex:
		m.ResetStepIndex()
		return nil
	case workflowstep.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case workflowstep.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown WorkflowStep field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkflowStepMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.workflow != nil {
		edges = append(edges, workflowstep.EdgeWorkflow)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkflowStepMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case workflowstep.EdgeWorkflow:
		if id := m.workflow; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkflowStepMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkflowStepMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkflowStepMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedworkflow {
		edges = append(edges, workflowstep.EdgeWorkflow)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkflowStepMutation) EdgeCleared(name string) bool {
	switch name {
	case workflowstep.EdgeWorkflow:
		return m.clearedworkflow
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkflowStepMutation) ClearEdge(name string) error {
	switch name {
	case workflowstep.EdgeWorkflow:
		m.ClearWorkflow()
		return nil
	}
	return fmt.Errorf("unknown WorkflowStep unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkflowStepMutation) ResetEdge(name string) error {
	switch name {
	case workflowstep.EdgeWorkflow:
		m.ResetWorkflow()
		return nil
	}
	return fmt.Errorf("unknown WorkflowStep edge %s", name)
}

// WorkspaceMutation represents an operation that mutates the Workspace nodes in the graph.
type WorkspaceMutation struct {
	config
	op                        Op
	typ                       string
	id                        *uuid.UUID
	name                      *string
	status                    *workspace.Status
	settings                  *map[string]interface{}
	llm_spend_cents           *int64
	addllm_spend_cents        *int64
	llm_tokens_used           *int64
	addllm_tokens_used        *int64
	created_at                *time.Time
	updated_at                *time.Time
	clearedFields             map[string]struct{}
	agents                    map[uuid.UUID]struct{}
	removedagents             map[uuid.UUID]struct{}
	clearedagents             bool
	events                    map[uuid.UUID]struct{}
	removedevents             map[uuid.UUID]struct{}
	clearedevents             bool
	policy_rules              map[uuid.UUID]struct{}
	removedpolicy_rules       map[uuid.UUID]struct{}
	clearedpolicy_rules       bool
	detection_rules           map[uuid.UUID]struct{}
	removeddetection_rules    map[uuid.UUID]struct{}
	cleareddetection_rules    bool
	workflows                 map[uuid.UUID]struct{}
	removedworkflows          map[uuid.UUID]struct{}
	clearedworkflows          bool
	consensus_policies        map[uuid.UUID]struct{}
	removedconsensus_policies map[uuid.UUID]struct{}
	clearedconsensus_policies bool
	ghost_configs             map[uuid.UUID]struct{}
	removedghost_configs      map[uuid.UUID]struct{}
	clearedghost_configs      bool
	sessions                  map[uuid.UUID]struct{}
	removedsessions           map[uuid.UUID]struct{}
	clearedsessions           bool
	violations                map[uuid.UUID]struct{}
	removedviolations         map[uuid.UUID]struct{}
	clearedviolations         bool
	done                      bool
	oldValue                  func(context.Context) (*Workspace, error)
	predicates                []predicate.Workspace
}

var _ ent.Mutation = (*WorkspaceMutation)(nil)

// workspaceOption allows management of the mutation configuration using functional options.
type workspaceOption func(*WorkspaceMutation)

// newWorkspaceMutation creates new mutation for the Workspace entity.
func newWorkspaceMutation(c config, op Op, opts ...workspaceOption) *WorkspaceMutation {
	m := &WorkspaceMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkspace,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkspaceID sets the ID field of the mutation.
func withWorkspaceID(id uuid.UUID) workspaceOption {
	return func(m *WorkspaceMutation) {
		var (
			err   error
			once  sync.Once
			value *Workspace
		)
		m.oldValue = func(ctx context.Context) (*Workspace, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Workspace.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkspace sets the old Workspace of the mutation.
func withWorkspace(node *Workspace) workspaceOption {
	return func(m *WorkspaceMutation) {
		m.oldValue = func(context.Context) (*Workspace, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkspaceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkspaceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Workspace entities.
func (m *WorkspaceMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkspaceMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkspaceMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Workspace.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *WorkspaceMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *WorkspaceMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Workspace entity.
// If the Workspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *WorkspaceMutation) ResetName() {
	m.name = nil
}

// SetStatus sets the "status" field.
func (m *WorkspaceMutation) SetStatus(w workspace.Status) {
	m.status = &w
}

// Status returns the value of the "status" field in the mutation.
func (m *WorkspaceMutation) Status() (r workspace.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Workspace entity.
// If the Workspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMutation) OldStatus(ctx context.Context) (v workspace.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *WorkspaceMutation) ResetStatus() {
	m.status = nil
}

// SetSettings sets the "settings" field.
func (m *WorkspaceMutation) SetSettings(value map[string]interface{}) {
	m.settings = &value
}

// Settings returns the value of the "settings" field in the mutation.
func (m *WorkspaceMutation) Settings() (r map[string]interface{}, exists bool) {
	v := m.settings
	if v == nil {
		return
	}
	return *v, true
}

// OldSettings returns the old "settings" field's value of the Workspace entity.
// If the Workspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMutation) OldSettings(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSettings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSettings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSettings: %w", err)
	}
	return oldValue.Settings, nil
}

// ClearSettings clears the value of the "settings" field.
func (m *WorkspaceMutation) ClearSettings() {
	m.settings = nil
	m.clearedFields[workspace.FieldSettings] = struct{}{}
}

// SettingsCleared returns if the "settings" field was cleared in this mutation.
func (m *WorkspaceMutation) SettingsCleared() bool {
	_, ok := m.clearedFields[workspace.FieldSettings]
	return ok
}

// ResetSettings resets all changes to the "settings" field.
func (m *WorkspaceMutation) ResetSettings() {
	m.settings = nil
	delete(m.clearedFields, workspace.FieldSettings)
}

// SetLlmSpendCents sets the "llm_spend_cents" field.
func (m *WorkspaceMutation) SetLlmSpendCents(i int64) {
	m.llm_spend_cents = &i
	m.addllm_spend_cents = nil
}

// LlmSpendCents returns the value of the "llm_spend_cents" field in the mutation.
func (m *WorkspaceMutation) LlmSpendCents() (r int64, exists bool) {
	v := m.llm_spend_cents
	if v == nil {
		return
	}
	return *v, true
}

// OldLlmSpendCents returns the old "llm_spend_cents" field's value of the Workspace entity.
// If the Workspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMutation) OldLlmSpendCents(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLlmSpendCents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLlmSpendCents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLlmSpendCents: %w", err)
	}
	return oldValue.LlmSpendCents, nil
}

// AddLlmSpendCents adds i to the "llm_spend_cents" field.
func (m *WorkspaceMutation) AddLlmSpendCents(i int64) {
	if m.addllm_spend_cents != nil {
		*m.addllm_spend_cents += i
	} else {
		m.addllm_spend_cents = &i
	}
}

// AddedLlmSpendCents returns the value that was added to the "llm_spend_cents" field in this mutation.
func (m *WorkspaceMutation) AddedLlmSpendCents() (r int64, exists bool) {
	v := m.addllm_spend_cents
	if v == nil {
		return
	}
	return *v, true
}

// ResetLlmSpendCents resets all changes to the "llm_spend_cents" field.
func (m *WorkspaceMutation) ResetLlmSpendCents() {
	m.llm_spend_cents = nil
	m.addllm_spend_cents = nil
}

// SetLlmTokensUsed sets the "llm_tokens_used" field.
func (m *WorkspaceMutation) SetLlmTokensUsed(i int64) {
	m.llm_tokens_used = &i
	m.addllm_tokens_used = nil
}

// LlmTokensUsed returns the value of the "llm_tokens_used" field in the mutation.
func (m *WorkspaceMutation) LlmTokensUsed() (r int64, exists bool) {
	v := m.llm_tokens_used
	if v == nil {
		return
	}
	return *v, true
}

// OldLlmTokensUsed returns the old "llm_tokens_used" field's value of the Workspace entity.
// If the Workspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMutation) OldLlmTokensUsed(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLlmTokensUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLlmTokensUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLlmTokensUsed: %w", err)
	}
	return oldValue.LlmTokensUsed, nil
}

// AddLlmTokensUsed adds i to the "llm_tokens_used" field.
func (m *WorkspaceMutation) AddLlmTokensUsed(i int64) {
	if m.addllm_tokens_used != nil {
		*m.addllm_tokens_used += i
	} else {
		m.addllm_tokens_used = &i
	}
}

// AddedLlmTokensUsed returns the value that was added to the "llm_tokens_used" field in this mutation.
func (m *WorkspaceMutation) AddedLlmTokensUsed() (r int64, exists bool) {
	v := m.addllm_tokens_used
	if v == nil {
		return
	}
	return *v, true
}

// ResetLlmTokensUsed resets all changes to the "llm_tokens_used" field.
func (m *WorkspaceMutation) ResetLlmTokensUsed() {
	m.llm_tokens_used = nil
	m.addllm_tokens_used = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkspaceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkspaceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Workspace entity.
// If the Workspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WorkspaceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WorkspaceMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WorkspaceMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Workspace entity.
// If the Workspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *WorkspaceMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddAgentIDs adds the "agents" edge to the RegisteredAgent entity by ids.
func (m *WorkspaceMutation) AddAgentIDs(ids ...uuid.UUID) {
	if m.agents == nil {
		m.agents = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.agents[ids[i]] = struct{}{}
	}
}

// ClearAgents clears the "agents" edge to the RegisteredAgent entity.
func (m *WorkspaceMutation) ClearAgents() {
	m.clearedagents = true
}

// AgentsCleared reports if the "agents" edge to the RegisteredAgent entity was cleared.
func (m *WorkspaceMutation) AgentsCleared() bool {
	return m.clearedagents
}

// RemoveAgentIDs removes the "agents" edge to the RegisteredAgent entity by IDs.
func (m *WorkspaceMutation) RemoveAgentIDs(ids ...uuid.UUID) {
	if m.removedagents == nil {
		m.removedagents = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.agents, ids[i])
		m.removedagents[ids[i]] = struct{}{}
	}
}

// RemovedAgents returns the removed IDs of the "agents" edge to the RegisteredAgent entity.
func (m *WorkspaceMutation) RemovedAgentsIDs() (ids []uuid.UUID) {
	for id := range m.removedagents {
		ids = append(ids, id)
	}
	return
}

// AgentsIDs returns the "agents" edge IDs in the mutation.
func (m *WorkspaceMutation) AgentsIDs() (ids []uuid.UUID) {
	for id := range m.agents {
		ids = append(ids, id)
	}
	return
}

// ResetAgents resets all changes to the "agents" edge.
func (m *WorkspaceMutation) ResetAgents() {
	m.agents = nil
	m.clearedagents = false
	m.removedagents = nil
}

// AddEventIDs adds the "events" edge to the AgentEvent entity by ids.
func (m *WorkspaceMutation) AddEventIDs(ids ...uuid.UUID) {
	if m.events == nil {
		m.events = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the AgentEvent entity.
func (m *WorkspaceMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the AgentEvent entity was cleared.
func (m *WorkspaceMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the AgentEvent entity by IDs.
func (m *WorkspaceMutation) RemoveEventIDs(ids ...uuid.UUID) {
	if m.removedevents == nil {
		m.removedevents = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the AgentEvent entity.
func (m *WorkspaceMutation) RemovedEventsIDs() (ids []uuid.UUID) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *WorkspaceMutation) EventsIDs() (ids []uuid.UUID) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *WorkspaceMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// AddPolicyRuleIDs adds the "policy_rules" edge to the PolicyRule entity by ids.
func (m *WorkspaceMutation) AddPolicyRuleIDs(ids ...uuid.UUID) {
	if m.policy_rules == nil {
		m.policy_rules = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.policy_rules[ids[i]] = struct{}{}
	}
}

// ClearPolicyRules clears the "policy_rules" edge to the PolicyRule entity.
func (m *WorkspaceMutation) ClearPolicyRules() {
	m.clearedpolicy_rules = true
}

// PolicyRulesCleared reports if the "policy_rules" edge to the PolicyRule entity was cleared.
func (m *WorkspaceMutation) PolicyRulesCleared() bool {
	return m.clearedpolicy_rules
}

// RemovePolicyRuleIDs removes the "policy_rules" edge to the PolicyRule entity by IDs.
func (m *WorkspaceMutation) RemovePolicyRuleIDs(ids ...uuid.UUID) {
	if m.removedpolicy_rules == nil {
		m.removedpolicy_rules = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.policy_rules, ids[i])
		m.removedpolicy_rules[ids[i]] = struct{}{}
	}
}

// RemovedPolicyRules returns the removed IDs of the "policy_rules" edge to the PolicyRule entity.
func (m *WorkspaceMutation) RemovedPolicyRulesIDs() (ids []uuid.UUID) {
	for id := range m.removedpolicy_rules {
		ids = append(ids, id)
	}
	return
}

// PolicyRulesIDs returns the "policy_rules" edge IDs in the mutation.
func (m *WorkspaceMutation) PolicyRulesIDs() (ids []uuid.UUID) {
	for id := range m.policy_rules {
		ids = append(ids, id)
	}
	return
}

// ResetPolicyRules resets all changes to the "policy_rules" edge.
func (m *WorkspaceMutation) ResetPolicyRules() {
	m.policy_rules = nil
	m.clearedpolicy_rules = false
	m.removedpolicy_rules = nil
}

// AddDetectionRuleIDs adds the "detection_rules" edge to the DetectionRule entity by ids.
func (m *WorkspaceMutation) AddDetectionRuleIDs(ids ...uuid.UUID) {
	if m.detection_rules == nil {
		m.detection_rules = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.detection_rules[ids[i]] = struct{}{}
	}
}

// ClearDetectionRules clears the "detection_rules" edge to the DetectionRule entity.
func (m *WorkspaceMutation) ClearDetectionRules() {
	m.cleareddetection_rules = true
}

// DetectionRulesCleared reports if the "detection_rules" edge to the DetectionRule entity was cleared.
func (m *WorkspaceMutation) DetectionRulesCleared() bool {
	return m.cleareddetection_rules
}

// RemoveDetectionRuleIDs removes the "detection_rules" edge to the DetectionRule entity by IDs.
func (m *WorkspaceMutation) RemoveDetectionRuleIDs(ids ...uuid.UUID) {
	if m.removeddetection_rules == nil {
		m.removeddetection_rules = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.detection_rules, ids[i])
		m.removeddetection_rules[ids[i]] = struct{}{}
	}
}

// RemovedDetectionRules returns the removed IDs of the "detection_rules" edge to the DetectionRule entity.
func (m *WorkspaceMutation) RemovedDetectionRulesIDs() (ids []uuid.UUID) {
	for id := range m.removeddetection_rules {
		ids = append(ids, id)
	}
	return
}

// DetectionRulesIDs returns the "detection_rules" edge IDs in the mutation.
func (m *WorkspaceMutation) DetectionRulesIDs() (ids []uuid.UUID) {
	for id := range m.detection_rules {
		ids = append(ids, id)
	}
	return
}

// ResetDetectionRules resets all changes to the "detection_rules" edge.
func (m *WorkspaceMutation) ResetDetectionRules() {
	m.detection_rules = nil
	m.cleareddetection_rules = false
	m.removeddetection_rules = nil
}

// AddWorkflowIDs adds the "workflows" edge to the Workflow entity by ids.
func (m *WorkspaceMutation) AddWorkflowIDs(ids ...uuid.UUID) {
	if m.workflows == nil {
		m.workflows = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.workflows[ids[i]] = struct{}{}
	}
}

// ClearWorkflows clears the "workflows" edge to the Workflow entity.
func (m *WorkspaceMutation) ClearWorkflows() {
	m.clearedworkflows = true
}

// WorkflowsCleared reports if the "workflows" edge to the Workflow entity was cleared.
func (m *WorkspaceMutation) WorkflowsCleared() bool {
	return m.clearedworkflows
}

// RemoveWorkflowIDs removes the "workflows" edge to the Workflow entity by IDs.
func (m *WorkspaceMutation) RemoveWorkflowIDs(ids ...uuid.UUID) {
	if m.removedworkflows == nil {
		m.removedworkflows = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.workflows, ids[i])
		m.removedworkflows[ids[i]] = struct{}{}
	}
}

// RemovedWorkflows returns the removed IDs of the "workflows" edge to the Workflow entity.
func (m *WorkspaceMutation) RemovedWorkflowsIDs() (ids []uuid.UUID) {
	for id := range m.removedworkflows {
		ids = append(ids, id)
	}
	return
}

// WorkflowsIDs returns the "workflows" edge IDs in the mutation.
func (m *WorkspaceMutation) WorkflowsIDs() (ids []uuid.UUID) {
	for id := range m.workflows {
		ids = append(ids, id)
	}
	return
}

// ResetWorkflows resets all changes to the "workflows" edge.
func (m *WorkspaceMutation) ResetWorkflows() {
	m.workflows = nil
	m.clearedworkflows = false
	m.removedworkflows = nil
}

// AddConsensusPolicyIDs adds the "consensus_policies" edge to the ConsensusPolicy entity by ids.
func (m *WorkspaceMutation) AddConsensusPolicyIDs(ids ...uuid.UUID) {
	if m.consensus_policies == nil {
		m.consensus_policies = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.consensus_policies[ids[i]] = struct{}{}
	}
}

// ClearConsensusPolicies clears the "consensus_policies" edge to the ConsensusPolicy entity.
func (m *WorkspaceMutation) ClearConsensusPolicies() {
	m.clearedconsensus_policies = true
}

// ConsensusPoliciesCleared reports if the "consensus_policies" edge to the ConsensusPolicy entity was cleared.
func (m *WorkspaceMutation) ConsensusPoliciesCleared() bool {
	return m.clearedconsensus_policies
}

// RemoveConsensusPolicyIDs removes the "consensus_policies" edge to the ConsensusPolicy entity by IDs.
func (m *WorkspaceMutation) RemoveConsensusPolicyIDs(ids ...uuid.UUID) {
	if m.removedconsensus_policies == nil {
		m.removedconsensus_policies = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.consensus_policies, ids[i])
		m.removedconsensus_policies[ids[i]] = struct{}{}
	}
}

// RemovedConsensusPolicies returns the removed IDs of the "consensus_policies" edge to the ConsensusPolicy entity.
func (m *WorkspaceMutation) RemovedConsensusPoliciesIDs() (ids []uuid.UUID) {
	for id := range m.removedconsensus_policies {
		ids = append(ids, id)
	}
	return
}

// ConsensusPoliciesIDs returns the "consensus_policies" edge IDs in the mutation.
func (m *WorkspaceMutation) ConsensusPoliciesIDs() (ids []uuid.UUID) {
	for id := range m.consensus_policies {
		ids = append(ids, id)
	}
	return
}

// ResetConsensusPolicies resets all changes to the "consensus_policies" edge.
func (m *WorkspaceMutation) ResetConsensusPolicies() {
	m.consensus_policies = nil
	m.clearedconsensus_policies = false
	m.removedconsensus_policies = nil
}

// AddGhostConfigIDs adds the "ghost_configs" edge to the GhostProtocolConfig entity by ids.
func (m *WorkspaceMutation) AddGhostConfigIDs(ids ...uuid.UUID) {
	if m.ghost_configs == nil {
		m.ghost_configs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.ghost_configs[ids[i]] = struct{}{}
	}
}

// ClearGhostConfigs clears the "ghost_configs" edge to the GhostProtocolConfig entity.
func (m *WorkspaceMutation) ClearGhostConfigs() {
	m.clearedghost_configs = true
}

// GhostConfigsCleared reports if the "ghost_configs" edge to the GhostProtocolConfig entity was cleared.
func (m *WorkspaceMutation) GhostConfigsCleared() bool {
	return m.clearedghost_configs
}

// RemoveGhostConfigIDs removes the "ghost_configs" edge to the GhostProtocolConfig entity by IDs.
func (m *WorkspaceMutation) RemoveGhostConfigIDs(ids ...uuid.UUID) {
	if m.removedghost_configs == nil {
		m.removedghost_configs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.ghost_configs, ids[i])
		m.removedghost_configs[ids[i]] = struct{}{}
	}
}

// RemovedGhostConfigs returns the removed IDs of the "ghost_configs" edge to the GhostProtocolConfig entity.
func (m *WorkspaceMutation) RemovedGhostConfigsIDs() (ids []uuid.UUID) {
	for id := range m.removedghost_configs {
		ids = append(ids, id)
	}
	return
}

// GhostConfigsIDs returns the "ghost_configs" edge IDs in the mutation.
func (m *WorkspaceMutation) GhostConfigsIDs() (ids []uuid.UUID) {
	for id := range m.ghost_configs {
		ids = append(ids, id)
	}
	return
}

// ResetGhostConfigs resets all changes to the "ghost_configs" edge.
func (m *WorkspaceMutation) ResetGhostConfigs() {
	m.ghost_configs = nil
	m.clearedghost_configs = false
	m.removedghost_configs = nil
}

// AddSessionIDs adds the "sessions" edge to the AnalysisSession entity by ids.
func (m *WorkspaceMutation) AddSessionIDs(ids ...uuid.UUID) {
	if m.sessions == nil {
		m.sessions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.sessions[ids[i]] = struct{}{}
	}
}

// ClearSessions clears the "sessions" edge to the AnalysisSession entity.
func (m *WorkspaceMutation) ClearSessions() {
	m.clearedsessions = true
}

// SessionsCleared reports if the "sessions" edge to the AnalysisSession entity was cleared.
func (m *WorkspaceMutation) SessionsCleared() bool {
	return m.clearedsessions
}

// RemoveSessionIDs removes the "sessions" edge to the AnalysisSession entity by IDs.
func (m *WorkspaceMutation) RemoveSessionIDs(ids ...uuid.UUID) {
	if m.removedsessions == nil {
		m.removedsessions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.sessions, ids[i])
		m.removedsessions[ids[i]] = struct{}{}
	}
}

// RemovedSessions returns the removed IDs of the "sessions" edge to the AnalysisSession entity.
func (m *WorkspaceMutation) RemovedSessionsIDs() (ids []uuid.UUID) {
	for id := range m.removedsessions {
		ids = append(ids, id)
	}
	return
}

// SessionsIDs returns the "sessions" edge IDs in the mutation.
func (m *WorkspaceMutation) SessionsIDs() (ids []uuid.UUID) {
	for id := range m.sessions {
		ids = append(ids, id)
	}
	return
}

// ResetSessions resets all changes to the "sessions" edge.
func (m *WorkspaceMutation) ResetSessions() {
	m.sessions = nil
	m.clearedsessions = false
	m.removedsessions = nil
}

// AddViolationIDs adds the "violations" edge to the PolicyViolation entity by ids.
func (m *WorkspaceMutation) AddViolationIDs(ids ...uuid.UUID) {
	if m.violations == nil {
		m.violations = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.violations[ids[i]] = struct{}{}
	}
}

// ClearViolations clears the "violations" edge to the PolicyViolation entity.
func (m *WorkspaceMutation) ClearViolations() {
	m.clearedviolations = true
}

// ViolationsCleared reports if the "violations" edge to the PolicyViolation entity was cleared.
func (m *WorkspaceMutation) ViolationsCleared() bool {
	return m.clearedviolations
}

// RemoveViolationIDs removes the "violations" edge to the PolicyViolation entity by IDs.
func (m *WorkspaceMutation) RemoveViolationIDs(ids ...uuid.UUID) {
	if m.removedviolations == nil {
		m.removedviolations = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.violations, ids[i])
		m.removedviolations[ids[i]] = struct{}{}
	}
}

// RemovedViolations returns the removed IDs of the "violations" edge to the PolicyViolation entity.
func (m *WorkspaceMutation) RemovedViolationsIDs() (ids []uuid.UUID) {
	for id := range m.removedviolations {
		ids = append(ids, id)
	}
	return
}

// ViolationsIDs returns the "violations" edge IDs in the mutation.
func (m *WorkspaceMutation) ViolationsIDs() (ids []uuid.UUID) {
	for id := range m.violations {
		ids = append(ids, id)
	}
	return
}

// ResetViolations resets all changes to the "violations" edge.
func (m *WorkspaceMutation) ResetViolations() {
	m.violations = nil
	m.clearedviolations = false
	m.removedviolations = nil
}

// Where appends a list predicates to the WorkspaceMutation builder.
func (m *WorkspaceMutation) Where(ps ...predicate.Workspace) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkspaceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkspaceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Workspace, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkspaceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkspaceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Workspace).
func (m *WorkspaceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkspaceMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.name != nil {
		fields = append(fields, workspace.FieldName)
	}
	if m.status != nil {
		fields = append(fields, workspace.FieldStatus)
	}
	if m.settings != nil {
		fields = append(fields, workspace.FieldSettings)
	}
	if m.llm_spend_cents != nil {
		fields = append(fields, workspace.FieldLlmSpendCents)
	}
	if m.llm_tokens_used != nil {
		fields = append(fields, workspace.FieldLlmTokensUsed)
	}
	if m.created_at != nil {
		fields = append(fields, workspace.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, workspace.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkspaceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workspace.FieldName:
		return m.Name()
	case workspace.FieldStatus:
		return m.Status()
	case workspace.FieldSettings:
		return m.Settings()
	case workspace.FieldLlmSpendCents:
		return m.LlmSpendCents()
	case workspace.FieldLlmTokensUsed:
		return m.LlmTokensUsed()
	case workspace.FieldCreatedAt:
		return m.CreatedAt()
	case workspace.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkspaceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workspace.FieldName:
		return m.OldName(ctx)
	case workspace.FieldStatus:
		return m.OldStatus(ctx)
	case workspace.FieldSettings:
		return m.OldSettings(ctx)
	case workspace.FieldLlmSpendCents:
		return m.OldLlmSpendCents(ctx)
	case workspace.FieldLlmTokensUsed:
		return m.OldLlmTokensUsed(ctx)
	case workspace.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case workspace.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Workspace field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkspaceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workspace.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case workspace.FieldStatus:
		v, ok := value.(workspace.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case workspace.FieldSettings:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSettings(v)
		return nil
	case workspace.FieldLlmSpendCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLlmSpendCents(v)
		return nil
	case workspace.FieldLlmTokensUsed:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLlmTokensUsed(v)
		return nil
	case workspace.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case workspace.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Workspace field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkspaceMutation) AddedFields() []string {
	var fields []string
	if m.addllm_spend_cents != nil {
		fields = append(fields, workspace.FieldLlmSpendCents)
	}
	if m.addllm_tokens_used != nil {
		fields = append(fields, workspace.FieldLlmTokensUsed)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkspaceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case workspace.FieldLlmSpendCents:
		return m.AddedLlmSpendCents()
	case workspace.FieldLlmTokensUsed:
		return m.AddedLlmTokensUsed()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkspaceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case workspace.FieldLlmSpendCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLlmSpendCents(v)
		return nil
	case workspace.FieldLlmTokensUsed:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLlmTokensUsed(v)
		return nil
	}
	return fmt.Errorf("unknown Workspace numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkspaceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(workspace.FieldSettings) {
		fields = append(fields, workspace.FieldSettings)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkspaceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkspaceMutation) ClearField(name string) error {
	switch name {
	case workspace.FieldSettings:
		m.ClearSettings()
		return nil
	}
	return fmt.Errorf("unknown Workspace nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkspaceMutation) ResetField(name string) error {
	switch name {
	case workspace.FieldName:
		m.ResetName()
		return nil
	case workspace.FieldStatus:
		m.ResetStatus()
		return nil
	case workspace.FieldSettings:
		m.ResetSettings()
		return nil
	case workspace.FieldLlmSpendCents:
		m.ResetLlmSpendCents()
		return nil
	case workspace.FieldLlmTokensUsed:
		m.ResetLlmTokensUsed()
		return nil
	case workspace.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case workspace.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Workspace field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkspaceMutation) AddedEdges() []string {
	edges := make([]string, 0, 9)
	if m.agents != nil {
		edges = append(edges, workspace.EdgeAgents)
	}
	if m.events != nil {
		edges = append(edges, workspace.EdgeEvents)
	}
	if m.policy_rules != nil {
		edges = append(edges, workspace.EdgePolicyRules)
	}
	if m.detection_rules != nil {
		edges = append(edges, workspace.EdgeDetectionRules)
	}
	if m.workflows != nil {
		edges = append(edges, workspace.EdgeWorkflows)
	}
	if m.consensus_policies != nil {
		edges = append(edges, workspace.EdgeConsensusPolicies)
	}
	if m.ghost_configs != nil {
		edges = append(edges, workspace.EdgeGhostConfigs)
	}
	if m.sessions != nil {
		edges = append(edges, workspace.EdgeSessions)
	}
	if m.violations != nil {
		edges = append(edges, workspace.EdgeViolations)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkspaceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case workspace.EdgeAgents:
		ids := make([]ent.Value, 0, len(m.agents))
		for id := range m.agents {
			ids = append(ids, id)
		}
		return ids
	case workspace.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	case workspace.EdgePolicyRules:
		ids := make([]ent.Value, 0, len(m.policy_rules))
		for id := range m.policy_rules {
			ids = append(ids, id)
		}
		return ids
	case workspace.EdgeDetectionRules:
		ids := make([]ent.Value, 0, len(m.detection_rules))
		for id := range m.detection_rules {
			ids = append(ids, id)
		}
		return ids
	case workspace.EdgeWorkflows:
		ids := make([]ent.Value, 0, len(m.workflows))
		for id := range m.workflows {
			ids = append(ids, id)
		}
		return ids
	case workspace.EdgeConsensusPolicies:
		ids := make([]ent.Value, 0, len(m.consensus_policies))
		for id := range m.consensus_policies {
			ids = append(ids, id)
		}
		return ids
	case workspace.EdgeGhostConfigs:
		ids := make([]ent.Value, 0, len(m.ghost_configs))
		for id := range m.ghost_configs {
			ids = append(ids, id)
		}
		return ids
	case workspace.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.sessions))
		for id := range m.sessions {
			ids = append(ids, id)
		}
		return ids
	case workspace.EdgeViolations:
		ids := make([]ent.Value, 0, len(m.violations))
		for id := range m.violations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkspaceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 9)
	if m.removedagents != nil {
		edges = append(edges, workspace.EdgeAgents)
	}
	if m.removedevents != nil {
		edges = append(edges, workspace.EdgeEvents)
	}
	if m.removedpolicy_rules != nil {
		edges = append(edges, workspace.EdgePolicyRules)
	}
	if m.removeddetection_rules != nil {
		edges = append(edges, workspace.EdgeDetectionRules)
	}
	if m.removedworkflows != nil {
		edges = append(edges, workspace.EdgeWorkflows)
	}
	if m.removedconsensus_policies != nil {
		edges = append(edges, workspace.EdgeConsensusPolicies)
	}
	if m.removedghost_configs != nil {
		edges = append(edges, workspace.EdgeGhostConfigs)
	}
	if m.removedsessions != nil {
		edges = append(edges, workspace.EdgeSessions)
	}
	if m.removedviolations != nil {
		edges = append(edges, workspace.EdgeViolations)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkspaceMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case workspace.EdgeAgents:
		ids := make([]ent.Value, 0, len(m.removedagents))
		for id := range m.removedagents {
			ids = append(ids, id)
		}
		return ids
	case workspace.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	case workspace.EdgePolicyRules:
		ids := make([]ent.Value, 0, len(m.removedpolicy_rules))
		for id := range m.removedpolicy_rules {
			ids = append(ids, id)
		}
		return ids
	case workspace.EdgeDetectionRules:
		ids := make([]ent.Value, 0, len(m.removeddetection_rules))
		for id := range m.removeddetection_rules {
			ids = append(ids, id)
		}
		return ids
	case workspace.EdgeWorkflows:
		ids := make([]ent.Value, 0, len(m.removedworkflows))
		for id := range m.removedworkflows {
			ids = append(ids, id)
		}
		return ids
	case workspace.EdgeConsensusPolicies:
		ids := make([]ent.Value, 0, len(m.removedconsensus_policies))
		for id := range m.removedconsensus_policies {
			ids = append(ids, id)
		}
		return ids
	case workspace.EdgeGhostConfigs:
		ids := make([]ent.Value, 0, len(m.removedghost_configs))
		for id := range m.removedghost_configs {
			ids = append(ids, id)
		}
		return ids
	case workspace.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.removedsessions))
		for id := range m.removedsessions {
			ids = append(ids, id)
		}
		return ids
	case workspace.EdgeViolations:
		ids := make([]ent.Value, 0, len(m.removedviolations))
		for id := range m.removedviolations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkspaceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 9)
	if m.clearedagents {
		edges = append(edges, workspace.EdgeAgents)
	}
	if m.clearedevents {
		edges = append(edges, workspace.EdgeEvents)
	}
	if m.clearedpolicy_rules {
		edges = append(edges, workspace.EdgePolicyRules)
	}
	if m.cleareddetection_rules {
		edges = append(edges, workspace.EdgeDetectionRules)
	}
	if m.clearedworkflows {
		edges = append(edges, workspace.EdgeWorkflows)
	}
	if m.clearedconsensus_policies {
		edges = append(edges, workspace.EdgeConsensusPolicies)
	}
	if m.clearedghost_configs {
		edges = append(edges, workspace.EdgeGhostConfigs)
	}
	if m.clearedsessions {
		edges = append(edges, workspace.EdgeSessions)
	}
	if m.clearedviolations {
		edges = append(edges, workspace.EdgeViolations)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkspaceMutation) EdgeCleared(name string) bool {
	switch name {
	case workspace.EdgeAgents:
		return m.clearedagents
	case workspace.EdgeEvents:
		return m.clearedevents
	case workspace.EdgePolicyRules:
		return m.clearedpolicy_rules
	case workspace.EdgeDetectionRules:
		return m.cleareddetection_rules
	case workspace.EdgeWorkflows:
		return m.clearedworkflows
	case workspace.EdgeConsensusPolicies:
		return m.clearedconsensus_policies
	case workspace.EdgeGhostConfigs:
		return m.clearedghost_configs
	case workspace.EdgeSessions:
		return m.clearedsessions
	case workspace.EdgeViolations:
		return m.clearedviolations
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkspaceMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Workspace unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkspaceMutation) ResetEdge(name string) error {
	switch name {
	case workspace.EdgeAgents:
		m.ResetAgents()
		return nil
	case workspace.EdgeEvents:
		m.ResetEvents()
		return nil
	case workspace.EdgePolicyRules:
		m.ResetPolicyRules()
		return nil
	case workspace.EdgeDetectionRules:
		m.ResetDetectionRules()
		return nil
	case workspace.EdgeWorkflows:
		m.ResetWorkflows()
		return nil
	case workspace.EdgeConsensusPolicies:
		m.ResetConsensusPolicies()
		return nil
	case workspace.EdgeGhostConfigs:
		m.ResetGhostConfigs()
		return nil
	case workspace.EdgeSessions:
		m.ResetSessions()
		return nil
	case workspace.EdgeViolations:
		m.ResetViolations()
		return nil
	}
	return fmt.Errorf("unknown Workspace edge %s", name)
}
