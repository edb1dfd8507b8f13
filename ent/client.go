// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/swarmshield/swarmshield/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
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
	"github.com/swarmshield/swarmshield/ent/prompttemplate"
	"github.com/swarmshield/swarmshield/ent/registeredagent"
	"github.com/swarmshield/swarmshield/ent/verdict"
	"github.com/swarmshield/swarmshield/ent/workflow"
	"github.com/swarmshield/swarmshield/ent/workflowstep"
	"github.com/swarmshield/swarmshield/ent/workspace"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AgentDefinition is the client for interacting with the AgentDefinition builders.
	AgentDefinition *AgentDefinitionClient
	// AgentEvent is the client for interacting with the AgentEvent builders.
	AgentEvent *AgentEventClient
	// AgentInstance is the client for interacting with the AgentInstance builders.
	AgentInstance *AgentInstanceClient
	// AnalysisSession is the client for interacting with the AnalysisSession builders.
	AnalysisSession *AnalysisSessionClient
	// AuditEntry is the client for interacting with the AuditEntry builders.
	AuditEntry *AuditEntryClient
	// ConsensusPolicy is the client for interacting with the ConsensusPolicy builders.
	ConsensusPolicy *ConsensusPolicyClient
	// DeliberationMessage is the client for interacting with the DeliberationMessage builders.
	DeliberationMessage *DeliberationMessageClient
	// DetectionRule is the client for interacting with the DetectionRule builders.
	DetectionRule *DetectionRuleClient
	// GhostProtocolConfig is the client for interacting with the GhostProtocolConfig builders.
	GhostProtocolConfig *GhostProtocolConfigClient
	// PolicyRule is the client for interacting with the PolicyRule builders.
	PolicyRule *PolicyRuleClient
	// PolicyViolation is the client for interacting with the PolicyViolation builders.
	PolicyViolation *PolicyViolationClient
	// PromptTemplate is the client for interacting with the PromptTemplate builders.
	PromptTemplate *PromptTemplateClient
	// RegisteredAgent is the client for interacting with the RegisteredAgent builders.
	RegisteredAgent *RegisteredAgentClient
	// Verdict is the client for interacting with the Verdict builders.
	Verdict *VerdictClient
	// Workflow is the client for interacting with the Workflow builders.
	Workflow *WorkflowClient
	// WorkflowStep is the client for interacting with the WorkflowStep builders.
	WorkflowStep *WorkflowStepClient
	// Workspace is the client for interacting with the Workspace builders.
	Workspace *WorkspaceClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AgentDefinition = NewAgentDefinitionClient(c.config)
	c.AgentEvent = NewAgentEventClient(c.config)
	c.AgentInstance = NewAgentInstanceClient(c.config)
	c.AnalysisSession = NewAnalysisSessionClient(c.config)
	c.AuditEntry = NewAuditEntryClient(c.config)
	c.ConsensusPolicy = NewConsensusPolicyClient(c.config)
	c.DeliberationMessage = NewDeliberationMessageClient(c.config)
	c.DetectionRule = NewDetectionRuleClient(c.config)
	c.GhostProtocolConfig = NewGhostProtocolConfigClient(c.config)
	c.PolicyRule = NewPolicyRuleClient(c.config)
	c.PolicyViolation = NewPolicyViolationClient(c.config)
	c.PromptTemplate = NewPromptTemplateClient(c.config)
	c.RegisteredAgent = NewRegisteredAgentClient(c.config)
	c.Verdict = NewVerdictClient(c.config)
	c.Workflow = NewWorkflowClient(c.config)
	c.WorkflowStep = NewWorkflowStepClient(c.config)
	c.Workspace = NewWorkspaceClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                 ctx,
		config:              cfg,
		AgentDefinition:     NewAgentDefinitionClient(cfg),
		AgentEvent:          NewAgentEventClient(cfg),
		AgentInstance:       NewAgentInstanceClient(cfg),
		AnalysisSession:     NewAnalysisSessionClient(cfg),
		AuditEntry:          NewAuditEntryClient(cfg),
		ConsensusPolicy:     NewConsensusPolicyClient(cfg),
		DeliberationMessage: NewDeliberationMessageClient(cfg),
		DetectionRule:       NewDetectionRuleClient(cfg),
		GhostProtocolConfig: NewGhostProtocolConfigClient(cfg),
		PolicyRule:          NewPolicyRuleClient(cfg),
		PolicyViolation:     NewPolicyViolationClient(cfg),
		PromptTemplate:      NewPromptTemplateClient(cfg),
		RegisteredAgent:     NewRegisteredAgentClient(cfg),
		Verdict:             NewVerdictClient(cfg),
		Workflow:            NewWorkflowClient(cfg),
		WorkflowStep:        NewWorkflowStepClient(cfg),
		Workspace:           NewWorkspaceClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                 ctx,
		config:              cfg,
		AgentDefinition:     NewAgentDefinitionClient(cfg),
		AgentEvent:          NewAgentEventClient(cfg),
		AgentInstance:       NewAgentInstanceClient(cfg),
		AnalysisSession:     NewAnalysisSessionClient(cfg),
		AuditEntry:          NewAuditEntryClient(cfg),
		ConsensusPolicy:     NewConsensusPolicyClient(cfg),
		DeliberationMessage: NewDeliberationMessageClient(cfg),
		DetectionRule:       NewDetectionRuleClient(cfg),
		GhostProtocolConfig: NewGhostProtocolConfigClient(cfg),
		PolicyRule:          NewPolicyRuleClient(cfg),
		PolicyViolation:     NewPolicyViolationClient(cfg),
		PromptTemplate:      NewPromptTemplateClient(cfg),
		RegisteredAgent:     NewRegisteredAgentClient(cfg),
		Verdict:             NewVerdictClient(cfg),
		Workflow:            NewWorkflowClient(cfg),
		WorkflowStep:        NewWorkflowStepClient(cfg),
		Workspace:           NewWorkspaceClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AgentDefinition.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.AgentDefinition, c.AgentEvent, c.AgentInstance, c.AnalysisSession,
		c.AuditEntry, c.ConsensusPolicy, c.DeliberationMessage, c.DetectionRule,
		c.GhostProtocolConfig, c.PolicyRule, c.PolicyViolation, c.PromptTemplate,
		c.RegisteredAgent, c.Verdict, c.Workflow, c.WorkflowStep, c.Workspace,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AgentDefinition, c.AgentEvent, c.AgentInstance, c.AnalysisSession,
		c.AuditEntry, c.ConsensusPolicy, c.DeliberationMessage, c.DetectionRule,
		c.GhostProtocolConfig, c.PolicyRule, c.PolicyViolation, c.PromptTemplate,
		c.RegisteredAgent, c.Verdict, c.Workflow, c.WorkflowStep, c.Workspace,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgentDefinitionMutation:
		return c.AgentDefinition.mutate(ctx, m)
	case *AgentEventMutation:
		return c.AgentEvent.mutate(ctx, m)
	case *AgentInstanceMutation:
		return c.AgentInstance.mutate(ctx, m)
	case *AnalysisSessionMutation:
		return c.AnalysisSession.mutate(ctx, m)
	case *AuditEntryMutation:
		return c.AuditEntry.mutate(ctx, m)
	case *ConsensusPolicyMutation:
		return c.ConsensusPolicy.mutate(ctx, m)
	case *DeliberationMessageMutation:
		return c.DeliberationMessage.mutate(ctx, m)
	case *DetectionRuleMutation:
		return c.DetectionRule.mutate(ctx, m)
	case *GhostProtocolConfigMutation:
		return c.GhostProtocolConfig.mutate(ctx, m)
	case *PolicyRuleMutation:
		return c.PolicyRule.mutate(ctx, m)
	case *PolicyViolationMutation:
		return c.PolicyViolation.mutate(ctx, m)
	case *PromptTemplateMutation:
		return c.PromptTemplate.mutate(ctx, m)
	case *RegisteredAgentMutation:
		return c.RegisteredAgent.mutate(ctx, m)
	case *VerdictMutation:
		return c.Verdict.mutate(ctx, m)
	case *WorkflowMutation:
		return c.Workflow.mutate(ctx, m)
	case *WorkflowStepMutation:
		return c.WorkflowStep.mutate(ctx, m)
	case *WorkspaceMutation:
		return c.Workspace.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AgentDefinitionClient is a client for the AgentDefinition schema.
type AgentDefinitionClient struct {
	config
}

// NewAgentDefinitionClient returns a client for the AgentDefinition from the given config.
func NewAgentDefinitionClient(c config) *AgentDefinitionClient {
	return &AgentDefinitionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentdefinition.Hooks(f(g(h())))`.
func (c *AgentDefinitionClient) Use(hooks ...Hook) {
	c.hooks.AgentDefinition = append(c.hooks.AgentDefinition, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentdefinition.Intercept(f(g(h())))`.
func (c *AgentDefinitionClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentDefinition = append(c.inters.AgentDefinition, interceptors...)
}

// Create returns a builder for creating a AgentDefinition entity.
func (c *AgentDefinitionClient) Create() *AgentDefinitionCreate {
	mutation := newAgentDefinitionMutation(c.config, OpCreate)
	return &AgentDefinitionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentDefinition entities.
func (c *AgentDefinitionClient) CreateBulk(builders ...*AgentDefinitionCreate) *AgentDefinitionCreateBulk {
	return &AgentDefinitionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentDefinitionClient) MapCreateBulk(slice any, setFunc func(*AgentDefinitionCreate, int)) *AgentDefinitionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentDefinitionCreateBulk{err: fmt.Errorf("calling to AgentDefinitionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentDefinitionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentDefinitionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentDefinition.
func (c *AgentDefinitionClient) Update() *AgentDefinitionUpdate {
	mutation := newAgentDefinitionMutation(c.config, OpUpdate)
	return &AgentDefinitionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentDefinitionClient) UpdateOne(_m *AgentDefinition) *AgentDefinitionUpdateOne {
	mutation := newAgentDefinitionMutation(c.config, OpUpdateOne, withAgentDefinition(_m))
	return &AgentDefinitionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentDefinitionClient) UpdateOneID(id uuid.UUID) *AgentDefinitionUpdateOne {
	mutation := newAgentDefinitionMutation(c.config, OpUpdateOne, withAgentDefinitionID(id))
	return &AgentDefinitionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentDefinition.
func (c *AgentDefinitionClient) Delete() *AgentDefinitionDelete {
	mutation := newAgentDefinitionMutation(c.config, OpDelete)
	return &AgentDefinitionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentDefinitionClient) DeleteOne(_m *AgentDefinition) *AgentDefinitionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentDefinitionClient) DeleteOneID(id uuid.UUID) *AgentDefinitionDeleteOne {
	builder := c.Delete().Where(agentdefinition.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentDefinitionDeleteOne{builder}
}

// Query returns a query builder for AgentDefinition.
func (c *AgentDefinitionClient) Query() *AgentDefinitionQuery {
	return &AgentDefinitionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentDefinition},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentDefinition entity by its id.
func (c *AgentDefinitionClient) Get(ctx context.Context, id uuid.UUID) (*AgentDefinition, error) {
	return c.Query().Where(agentdefinition.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentDefinitionClient) GetX(ctx context.Context, id uuid.UUID) *AgentDefinition {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AgentDefinitionClient) Hooks() []Hook {
	return c.hooks.AgentDefinition
}

// Interceptors returns the client interceptors.
func (c *AgentDefinitionClient) Interceptors() []Interceptor {
	return c.inters.AgentDefinition
}

func (c *AgentDefinitionClient) mutate(ctx context.Context, m *AgentDefinitionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentDefinitionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentDefinitionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentDefinitionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentDefinitionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentDefinition mutation op: %q", m.Op())
	}
}

// AgentEventClient is a client for the AgentEvent schema.
type AgentEventClient struct {
	config
}

// NewAgentEventClient returns a client for the AgentEvent from the given config.
func NewAgentEventClient(c config) *AgentEventClient {
	return &AgentEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentevent.Hooks(f(g(h())))`.
func (c *AgentEventClient) Use(hooks ...Hook) {
	c.hooks.AgentEvent = append(c.hooks.AgentEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentevent.Intercept(f(g(h())))`.
func (c *AgentEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentEvent = append(c.inters.AgentEvent, interceptors...)
}

// Create returns a builder for creating a AgentEvent entity.
func (c *AgentEventClient) Create() *AgentEventCreate {
	mutation := newAgentEventMutation(c.config, OpCreate)
	return &AgentEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentEvent entities.
func (c *AgentEventClient) CreateBulk(builders ...*AgentEventCreate) *AgentEventCreateBulk {
	return &AgentEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentEventClient) MapCreateBulk(slice any, setFunc func(*AgentEventCreate, int)) *AgentEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentEventCreateBulk{err: fmt.Errorf("calling to AgentEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentEvent.
func (c *AgentEventClient) Update() *AgentEventUpdate {
	mutation := newAgentEventMutation(c.config, OpUpdate)
	return &AgentEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentEventClient) UpdateOne(_m *AgentEvent) *AgentEventUpdateOne {
	mutation := newAgentEventMutation(c.config, OpUpdateOne, withAgentEvent(_m))
	return &AgentEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentEventClient) UpdateOneID(id uuid.UUID) *AgentEventUpdateOne {
	mutation := newAgentEventMutation(c.config, OpUpdateOne, withAgentEventID(id))
	return &AgentEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentEvent.
func (c *AgentEventClient) Delete() *AgentEventDelete {
	mutation := newAgentEventMutation(c.config, OpDelete)
	return &AgentEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentEventClient) DeleteOne(_m *AgentEvent) *AgentEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentEventClient) DeleteOneID(id uuid.UUID) *AgentEventDeleteOne {
	builder := c.Delete().Where(agentevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentEventDeleteOne{builder}
}

// Query returns a query builder for AgentEvent.
func (c *AgentEventClient) Query() *AgentEventQuery {
	return &AgentEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentEvent entity by its id.
func (c *AgentEventClient) Get(ctx context.Context, id uuid.UUID) (*AgentEvent, error) {
	return c.Query().Where(agentevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentEventClient) GetX(ctx context.Context, id uuid.UUID) *AgentEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWorkspace queries the workspace edge of a AgentEvent.
func (c *AgentEventClient) QueryWorkspace(_m *AgentEvent) *WorkspaceQuery {
	query := (&WorkspaceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentevent.Table, agentevent.FieldID, id),
			sqlgraph.To(workspace.Table, workspace.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agentevent.WorkspaceTable, agentevent.WorkspaceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryViolations queries the violations edge of a AgentEvent.
func (c *AgentEventClient) QueryViolations(_m *AgentEvent) *PolicyViolationQuery {
	query := (&PolicyViolationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentevent.Table, agentevent.FieldID, id),
			sqlgraph.To(policyviolation.Table, policyviolation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agentevent.ViolationsTable, agentevent.ViolationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySessions queries the sessions edge of a AgentEvent.
func (c *AgentEventClient) QuerySessions(_m *AgentEvent) *AnalysisSessionQuery {
	query := (&AnalysisSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentevent.Table, agentevent.FieldID, id),
			sqlgraph.To(analysissession.Table, analysissession.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agentevent.SessionsTable, agentevent.SessionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AgentEventClient) Hooks() []Hook {
	return c.hooks.AgentEvent
}

// Interceptors returns the client interceptors.
func (c *AgentEventClient) Interceptors() []Interceptor {
	return c.inters.AgentEvent
}

func (c *AgentEventClient) mutate(ctx context.Context, m *AgentEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentEvent mutation op: %q", m.Op())
	}
}

// AgentInstanceClient is a client for the AgentInstance schema.
type AgentInstanceClient struct {
	config
}

// NewAgentInstanceClient returns a client for the AgentInstance from the given config.
func NewAgentInstanceClient(c config) *AgentInstanceClient {
	return &AgentInstanceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentinstance.Hooks(f(g(h())))`.
func (c *AgentInstanceClient) Use(hooks ...Hook) {
	c.hooks.AgentInstance = append(c.hooks.AgentInstance, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentinstance.Intercept(f(g(h())))`.
func (c *AgentInstanceClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentInstance = append(c.inters.AgentInstance, interceptors...)
}

// Create returns a builder for creating a AgentInstance entity.
func (c *AgentInstanceClient) Create() *AgentInstanceCreate {
	mutation := newAgentInstanceMutation(c.config, OpCreate)
	return &AgentInstanceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentInstance entities.
func (c *AgentInstanceClient) CreateBulk(builders ...*AgentInstanceCreate) *AgentInstanceCreateBulk {
	return &AgentInstanceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentInstanceClient) MapCreateBulk(slice any, setFunc func(*AgentInstanceCreate, int)) *AgentInstanceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentInstanceCreateBulk{err: fmt.Errorf("calling to AgentInstanceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentInstanceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentInstanceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentInstance.
func (c *AgentInstanceClient) Update() *AgentInstanceUpdate {
	mutation := newAgentInstanceMutation(c.config, OpUpdate)
	return &AgentInstanceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentInstanceClient) UpdateOne(_m *AgentInstance) *AgentInstanceUpdateOne {
	mutation := newAgentInstanceMutation(c.config, OpUpdateOne, withAgentInstance(_m))
	return &AgentInstanceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentInstanceClient) UpdateOneID(id uuid.UUID) *AgentInstanceUpdateOne {
	mutation := newAgentInstanceMutation(c.config, OpUpdateOne, withAgentInstanceID(id))
	return &AgentInstanceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentInstance.
func (c *AgentInstanceClient) Delete() *AgentInstanceDelete {
	mutation := newAgentInstanceMutation(c.config, OpDelete)
	return &AgentInstanceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentInstanceClient) DeleteOne(_m *AgentInstance) *AgentInstanceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentInstanceClient) DeleteOneID(id uuid.UUID) *AgentInstanceDeleteOne {
	builder := c.Delete().Where(agentinstance.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentInstanceDeleteOne{builder}
}

// Query returns a query builder for AgentInstance.
func (c *AgentInstanceClient) Query() *AgentInstanceQuery {
	return &AgentInstanceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentInstance},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentInstance entity by its id.
func (c *AgentInstanceClient) Get(ctx context.Context, id uuid.UUID) (*AgentInstance, error) {
	return c.Query().Where(agentinstance.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentInstanceClient) GetX(ctx context.Context, id uuid.UUID) *AgentInstance {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a AgentInstance.
func (c *AgentInstanceClient) QuerySession(_m *AgentInstance) *AnalysisSessionQuery {
	query := (&AnalysisSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentinstance.Table, agentinstance.FieldID, id),
			sqlgraph.To(analysissession.Table, analysissession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agentinstance.SessionTable, agentinstance.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AgentInstanceClient) Hooks() []Hook {
	return c.hooks.AgentInstance
}

// Interceptors returns the client interceptors.
func (c *AgentInstanceClient) Interceptors() []Interceptor {
	return c.inters.AgentInstance
}

func (c *AgentInstanceClient) mutate(ctx context.Context, m *AgentInstanceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentInstanceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentInstanceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentInstanceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentInstanceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentInstance mutation op: %q", m.Op())
	}
}

// AnalysisSessionClient is a client for the AnalysisSession schema.
type AnalysisSessionClient struct {
	config
}

// NewAnalysisSessionClient returns a client for the AnalysisSession from the given config.
func NewAnalysisSessionClient(c config) *AnalysisSessionClient {
	return &AnalysisSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `analysissession.Hooks(f(g(h())))`.
func (c *AnalysisSessionClient) Use(hooks ...Hook) {
	c.hooks.AnalysisSession = append(c.hooks.AnalysisSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `analysissession.Intercept(f(g(h())))`.
func (c *AnalysisSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.AnalysisSession = append(c.inters.AnalysisSession, interceptors...)
}

// Create returns a builder for creating a AnalysisSession entity.
func (c *AnalysisSessionClient) Create() *AnalysisSessionCreate {
	mutation := newAnalysisSessionMutation(c.config, OpCreate)
	return &AnalysisSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AnalysisSession entities.
func (c *AnalysisSessionClient) CreateBulk(builders ...*AnalysisSessionCreate) *AnalysisSessionCreateBulk {
	return &AnalysisSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AnalysisSessionClient) MapCreateBulk(slice any, setFunc func(*AnalysisSessionCreate, int)) *AnalysisSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AnalysisSessionCreateBulk{err: fmt.Errorf("calling to AnalysisSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AnalysisSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AnalysisSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AnalysisSession.
func (c *AnalysisSessionClient) Update() *AnalysisSessionUpdate {
	mutation := newAnalysisSessionMutation(c.config, OpUpdate)
	return &AnalysisSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AnalysisSessionClient) UpdateOne(_m *AnalysisSession) *AnalysisSessionUpdateOne {
	mutation := newAnalysisSessionMutation(c.config, OpUpdateOne, withAnalysisSession(_m))
	return &AnalysisSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AnalysisSessionClient) UpdateOneID(id uuid.UUID) *AnalysisSessionUpdateOne {
	mutation := newAnalysisSessionMutation(c.config, OpUpdateOne, withAnalysisSessionID(id))
	return &AnalysisSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AnalysisSession.
func (c *AnalysisSessionClient) Delete() *AnalysisSessionDelete {
	mutation := newAnalysisSessionMutation(c.config, OpDelete)
	return &AnalysisSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AnalysisSessionClient) DeleteOne(_m *AnalysisSession) *AnalysisSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AnalysisSessionClient) DeleteOneID(id uuid.UUID) *AnalysisSessionDeleteOne {
	builder := c.Delete().Where(analysissession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AnalysisSessionDeleteOne{builder}
}

// Query returns a query builder for AnalysisSession.
func (c *AnalysisSessionClient) Query() *AnalysisSessionQuery {
	return &AnalysisSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAnalysisSession},
		inters: c.Interceptors(),
	}
}

// Get returns a AnalysisSession entity by its id.
func (c *AnalysisSessionClient) Get(ctx context.Context, id uuid.UUID) (*AnalysisSession, error) {
	return c.Query().Where(analysissession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AnalysisSessionClient) GetX(ctx context.Context, id uuid.UUID) *AnalysisSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWorkspace queries the workspace edge of a AnalysisSession.
func (c *AnalysisSessionClient) QueryWorkspace(_m *AnalysisSession) *WorkspaceQuery {
	query := (&WorkspaceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(analysissession.Table, analysissession.FieldID, id),
			sqlgraph.To(workspace.Table, workspace.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, analysissession.WorkspaceTable, analysissession.WorkspaceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvent queries the event edge of a AnalysisSession.
func (c *AnalysisSessionClient) QueryEvent(_m *AnalysisSession) *AgentEventQuery {
	query := (&AgentEventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(analysissession.Table, analysissession.FieldID, id),
			sqlgraph.To(agentevent.Table, agentevent.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, analysissession.EventTable, analysissession.EventColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryInstances queries the instances edge of a AnalysisSession.
func (c *AnalysisSessionClient) QueryInstances(_m *AnalysisSession) *AgentInstanceQuery {
	query := (&AgentInstanceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(analysissession.Table, analysissession.FieldID, id),
			sqlgraph.To(agentinstance.Table, agentinstance.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, analysissession.InstancesTable, analysissession.InstancesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMessages queries the messages edge of a AnalysisSession.
func (c *AnalysisSessionClient) QueryMessages(_m *AnalysisSession) *DeliberationMessageQuery {
	query := (&DeliberationMessageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(analysissession.Table, analysissession.FieldID, id),
			sqlgraph.To(deliberationmessage.Table, deliberationmessage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, analysissession.MessagesTable, analysissession.MessagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryVerdict queries the verdict edge of a AnalysisSession.
func (c *AnalysisSessionClient) QueryVerdict(_m *AnalysisSession) *VerdictQuery {
	query := (&VerdictClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(analysissession.Table, analysissession.FieldID, id),
			sqlgraph.To(verdict.Table, verdict.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, analysissession.VerdictTable, analysissession.VerdictColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AnalysisSessionClient) Hooks() []Hook {
	return c.hooks.AnalysisSession
}

// Interceptors returns the client interceptors.
func (c *AnalysisSessionClient) Interceptors() []Interceptor {
	return c.inters.AnalysisSession
}

func (c *AnalysisSessionClient) mutate(ctx context.Context, m *AnalysisSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AnalysisSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AnalysisSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AnalysisSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AnalysisSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AnalysisSession mutation op: %q", m.Op())
	}
}

// AuditEntryClient is a client for the AuditEntry schema.
type AuditEntryClient struct {
	config
}

// NewAuditEntryClient returns a client for the AuditEntry from the given config.
func NewAuditEntryClient(c config) *AuditEntryClient {
	return &AuditEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `auditentry.Hooks(f(g(h())))`.
func (c *AuditEntryClient) Use(hooks ...Hook) {
	c.hooks.AuditEntry = append(c.hooks.AuditEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `auditentry.Intercept(f(g(h())))`.
func (c *AuditEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.AuditEntry = append(c.inters.AuditEntry, interceptors...)
}

// Create returns a builder for creating a AuditEntry entity.
func (c *AuditEntryClient) Create() *AuditEntryCreate {
	mutation := newAuditEntryMutation(c.config, OpCreate)
	return &AuditEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AuditEntry entities.
func (c *AuditEntryClient) CreateBulk(builders ...*AuditEntryCreate) *AuditEntryCreateBulk {
	return &AuditEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AuditEntryClient) MapCreateBulk(slice any, setFunc func(*AuditEntryCreate, int)) *AuditEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AuditEntryCreateBulk{err: fmt.Errorf("calling to AuditEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AuditEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AuditEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AuditEntry.
func (c *AuditEntryClient) Update() *AuditEntryUpdate {
	mutation := newAuditEntryMutation(c.config, OpUpdate)
	return &AuditEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AuditEntryClient) UpdateOne(_m *AuditEntry) *AuditEntryUpdateOne {
	mutation := newAuditEntryMutation(c.config, OpUpdateOne, withAuditEntry(_m))
	return &AuditEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AuditEntryClient) UpdateOneID(id uuid.UUID) *AuditEntryUpdateOne {
	mutation := newAuditEntryMutation(c.config, OpUpdateOne, withAuditEntryID(id))
	return &AuditEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AuditEntry.
func (c *AuditEntryClient) Delete() *AuditEntryDelete {
	mutation := newAuditEntryMutation(c.config, OpDelete)
	return &AuditEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AuditEntryClient) DeleteOne(_m *AuditEntry) *AuditEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AuditEntryClient) DeleteOneID(id uuid.UUID) *AuditEntryDeleteOne {
	builder := c.Delete().Where(auditentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AuditEntryDeleteOne{builder}
}

// Query returns a query builder for AuditEntry.
func (c *AuditEntryClient) Query() *AuditEntryQuery {
	return &AuditEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAuditEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a AuditEntry entity by its id.
func (c *AuditEntryClient) Get(ctx context.Context, id uuid.UUID) (*AuditEntry, error) {
	return c.Query().Where(auditentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AuditEntryClient) GetX(ctx context.Context, id uuid.UUID) *AuditEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AuditEntryClient) Hooks() []Hook {
	return c.hooks.AuditEntry
}

// Interceptors returns the client interceptors.
func (c *AuditEntryClient) Interceptors() []Interceptor {
	return c.inters.AuditEntry
}

func (c *AuditEntryClient) mutate(ctx context.Context, m *AuditEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AuditEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AuditEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AuditEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AuditEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AuditEntry mutation op: %q", m.Op())
	}
}

// ConsensusPolicyClient is a client for the ConsensusPolicy schema.
type ConsensusPolicyClient struct {
	config
}

// NewConsensusPolicyClient returns a client for the ConsensusPolicy from the given config.
func NewConsensusPolicyClient(c config) *ConsensusPolicyClient {
	return &ConsensusPolicyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `consensuspolicy.Hooks(f(g(h())))`.
func (c *ConsensusPolicyClient) Use(hooks ...Hook) {
	c.hooks.ConsensusPolicy = append(c.hooks.ConsensusPolicy, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `consensuspolicy.Intercept(f(g(h())))`.
func (c *ConsensusPolicyClient) Intercept(interceptors ...Interceptor) {
	c.inters.ConsensusPolicy = append(c.inters.ConsensusPolicy, interceptors...)
}

// Create returns a builder for creating a ConsensusPolicy entity.
func (c *ConsensusPolicyClient) Create() *ConsensusPolicyCreate {
	mutation := newConsensusPolicyMutation(c.config, OpCreate)
	return &ConsensusPolicyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ConsensusPolicy entities.
func (c *ConsensusPolicyClient) CreateBulk(builders ...*ConsensusPolicyCreate) *ConsensusPolicyCreateBulk {
	return &ConsensusPolicyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ConsensusPolicyClient) MapCreateBulk(slice any, setFunc func(*ConsensusPolicyCreate, int)) *ConsensusPolicyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ConsensusPolicyCreateBulk{err: fmt.Errorf("calling to ConsensusPolicyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ConsensusPolicyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ConsensusPolicyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ConsensusPolicy.
func (c *ConsensusPolicyClient) Update() *ConsensusPolicyUpdate {
	mutation := newConsensusPolicyMutation(c.config, OpUpdate)
	return &ConsensusPolicyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ConsensusPolicyClient) UpdateOne(_m *ConsensusPolicy) *ConsensusPolicyUpdateOne {
	mutation := newConsensusPolicyMutation(c.config, OpUpdateOne, withConsensusPolicy(_m))
	return &ConsensusPolicyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ConsensusPolicyClient) UpdateOneID(id uuid.UUID) *ConsensusPolicyUpdateOne {
	mutation := newConsensusPolicyMutation(c.config, OpUpdateOne, withConsensusPolicyID(id))
	return &ConsensusPolicyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ConsensusPolicy.
func (c *ConsensusPolicyClient) Delete() *ConsensusPolicyDelete {
	mutation := newConsensusPolicyMutation(c.config, OpDelete)
	return &ConsensusPolicyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ConsensusPolicyClient) DeleteOne(_m *ConsensusPolicy) *ConsensusPolicyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ConsensusPolicyClient) DeleteOneID(id uuid.UUID) *ConsensusPolicyDeleteOne {
	builder := c.Delete().Where(consensuspolicy.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ConsensusPolicyDeleteOne{builder}
}

// Query returns a query builder for ConsensusPolicy.
func (c *ConsensusPolicyClient) Query() *ConsensusPolicyQuery {
	return &ConsensusPolicyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeConsensusPolicy},
		inters: c.Interceptors(),
	}
}

// Get returns a ConsensusPolicy entity by its id.
func (c *ConsensusPolicyClient) Get(ctx context.Context, id uuid.UUID) (*ConsensusPolicy, error) {
	return c.Query().Where(consensuspolicy.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ConsensusPolicyClient) GetX(ctx context.Context, id uuid.UUID) *ConsensusPolicy {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWorkspace queries the workspace edge of a ConsensusPolicy.
func (c *ConsensusPolicyClient) QueryWorkspace(_m *ConsensusPolicy) *WorkspaceQuery {
	query := (&WorkspaceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(consensuspolicy.Table, consensuspolicy.FieldID, id),
			sqlgraph.To(workspace.Table, workspace.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, consensuspolicy.WorkspaceTable, consensuspolicy.WorkspaceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ConsensusPolicyClient) Hooks() []Hook {
	return c.hooks.ConsensusPolicy
}

// Interceptors returns the client interceptors.
func (c *ConsensusPolicyClient) Interceptors() []Interceptor {
	return c.inters.ConsensusPolicy
}

func (c *ConsensusPolicyClient) mutate(ctx context.Context, m *ConsensusPolicyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ConsensusPolicyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ConsensusPolicyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ConsensusPolicyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ConsensusPolicyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ConsensusPolicy mutation op: %q", m.Op())
	}
}

// DeliberationMessageClient is a client for the DeliberationMessage schema.
type DeliberationMessageClient struct {
	config
}

// NewDeliberationMessageClient returns a client for the DeliberationMessage from the given config.
func NewDeliberationMessageClient(c config) *DeliberationMessageClient {
	return &DeliberationMessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `deliberationmessage.Hooks(f(g(h())))`.
func (c *DeliberationMessageClient) Use(hooks ...Hook) {
	c.hooks.DeliberationMessage = append(c.hooks.DeliberationMessage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `deliberationmessage.Intercept(f(g(h())))`.
func (c *DeliberationMessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.DeliberationMessage = append(c.inters.DeliberationMessage, interceptors...)
}

// Create returns a builder for creating a DeliberationMessage entity.
func (c *DeliberationMessageClient) Create() *DeliberationMessageCreate {
	mutation := newDeliberationMessageMutation(c.config, OpCreate)
	return &DeliberationMessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DeliberationMessage entities.
func (c *DeliberationMessageClient) CreateBulk(builders ...*DeliberationMessageCreate) *DeliberationMessageCreateBulk {
	return &DeliberationMessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DeliberationMessageClient) MapCreateBulk(slice any, setFunc func(*DeliberationMessageCreate, int)) *DeliberationMessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DeliberationMessageCreateBulk{err: fmt.Errorf("calling to DeliberationMessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DeliberationMessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DeliberationMessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DeliberationMessage.
func (c *DeliberationMessageClient) Update() *DeliberationMessageUpdate {
	mutation := newDeliberationMessageMutation(c.config, OpUpdate)
	return &DeliberationMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DeliberationMessageClient) UpdateOne(_m *DeliberationMessage) *DeliberationMessageUpdateOne {
	mutation := newDeliberationMessageMutation(c.config, OpUpdateOne, withDeliberationMessage(_m))
	return &DeliberationMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DeliberationMessageClient) UpdateOneID(id uuid.UUID) *DeliberationMessageUpdateOne {
	mutation := newDeliberationMessageMutation(c.config, OpUpdateOne, withDeliberationMessageID(id))
	return &DeliberationMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DeliberationMessage.
func (c *DeliberationMessageClient) Delete() *DeliberationMessageDelete {
	mutation := newDeliberationMessageMutation(c.config, OpDelete)
	return &DeliberationMessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DeliberationMessageClient) DeleteOne(_m *DeliberationMessage) *DeliberationMessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DeliberationMessageClient) DeleteOneID(id uuid.UUID) *DeliberationMessageDeleteOne {
	builder := c.Delete().Where(deliberationmessage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DeliberationMessageDeleteOne{builder}
}

// Query returns a query builder for DeliberationMessage.
func (c *DeliberationMessageClient) Query() *DeliberationMessageQuery {
	return &DeliberationMessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDeliberationMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a DeliberationMessage entity by its id.
func (c *DeliberationMessageClient) Get(ctx context.Context, id uuid.UUID) (*DeliberationMessage, error) {
	return c.Query().Where(deliberationmessage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DeliberationMessageClient) GetX(ctx context.Context, id uuid.UUID) *DeliberationMessage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a DeliberationMessage.
func (c *DeliberationMessageClient) QuerySession(_m *DeliberationMessage) *AnalysisSessionQuery {
	query := (&AnalysisSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(deliberationmessage.Table, deliberationmessage.FieldID, id),
			sqlgraph.To(analysissession.Table, analysissession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, deliberationmessage.SessionTable, deliberationmessage.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DeliberationMessageClient) Hooks() []Hook {
	return c.hooks.DeliberationMessage
}

// Interceptors returns the client interceptors.
func (c *DeliberationMessageClient) Interceptors() []Interceptor {
	return c.inters.DeliberationMessage
}

func (c *DeliberationMessageClient) mutate(ctx context.Context, m *DeliberationMessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DeliberationMessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DeliberationMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DeliberationMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DeliberationMessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DeliberationMessage mutation op: %q", m.Op())
	}
}

// DetectionRuleClient is a client for the DetectionRule schema.
type DetectionRuleClient struct {
	config
}

// NewDetectionRuleClient returns a client for the DetectionRule from the given config.
func NewDetectionRuleClient(c config) *DetectionRuleClient {
	return &DetectionRuleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `detectionrule.Hooks(f(g(h())))`.
func (c *DetectionRuleClient) Use(hooks ...Hook) {
	c.hooks.DetectionRule = append(c.hooks.DetectionRule, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `detectionrule.Intercept(f(g(h())))`.
func (c *DetectionRuleClient) Intercept(interceptors ...Interceptor) {
	c.inters.DetectionRule = append(c.inters.DetectionRule, interceptors...)
}

// Create returns a builder for creating a DetectionRule entity.
func (c *DetectionRuleClient) Create() *DetectionRuleCreate {
	mutation := newDetectionRuleMutation(c.config, OpCreate)
	return &DetectionRuleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DetectionRule entities.
func (c *DetectionRuleClient) CreateBulk(builders ...*DetectionRuleCreate) *DetectionRuleCreateBulk {
	return &DetectionRuleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DetectionRuleClient) MapCreateBulk(slice any, setFunc func(*DetectionRuleCreate, int)) *DetectionRuleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DetectionRuleCreateBulk{err: fmt.Errorf("calling to DetectionRuleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DetectionRuleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DetectionRuleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DetectionRule.
func (c *DetectionRuleClient) Update() *DetectionRuleUpdate {
	mutation := newDetectionRuleMutation(c.config, OpUpdate)
	return &DetectionRuleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DetectionRuleClient) UpdateOne(_m *DetectionRule) *DetectionRuleUpdateOne {
	mutation := newDetectionRuleMutation(c.config, OpUpdateOne, withDetectionRule(_m))
	return &DetectionRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DetectionRuleClient) UpdateOneID(id uuid.UUID) *DetectionRuleUpdateOne {
	mutation := newDetectionRuleMutation(c.config, OpUpdateOne, withDetectionRuleID(id))
	return &DetectionRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DetectionRule.
func (c *DetectionRuleClient) Delete() *DetectionRuleDelete {
	mutation := newDetectionRuleMutation(c.config, OpDelete)
	return &DetectionRuleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DetectionRuleClient) DeleteOne(_m *DetectionRule) *DetectionRuleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DetectionRuleClient) DeleteOneID(id uuid.UUID) *DetectionRuleDeleteOne {
	builder := c.Delete().Where(detectionrule.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DetectionRuleDeleteOne{builder}
}

// Query returns a query builder for DetectionRule.
func (c *DetectionRuleClient) Query() *DetectionRuleQuery {
	return &DetectionRuleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDetectionRule},
		inters: c.Interceptors(),
	}
}

// Get returns a DetectionRule entity by its id.
func (c *DetectionRuleClient) Get(ctx context.Context, id uuid.UUID) (*DetectionRule, error) {
	return c.Query().Where(detectionrule.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DetectionRuleClient) GetX(ctx context.Context, id uuid.UUID) *DetectionRule {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWorkspace queries the workspace edge of a DetectionRule.
func (c *DetectionRuleClient) QueryWorkspace(_m *DetectionRule) *WorkspaceQuery {
	query := (&WorkspaceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(detectionrule.Table, detectionrule.FieldID, id),
			sqlgraph.To(workspace.Table, workspace.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, detectionrule.WorkspaceTable, detectionrule.WorkspaceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DetectionRuleClient) Hooks() []Hook {
	return c.hooks.DetectionRule
}

// Interceptors returns the client interceptors.
func (c *DetectionRuleClient) Interceptors() []Interceptor {
	return c.inters.DetectionRule
}

func (c *DetectionRuleClient) mutate(ctx context.Context, m *DetectionRuleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DetectionRuleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DetectionRuleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DetectionRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DetectionRuleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DetectionRule mutation op: %q", m.Op())
	}
}

// GhostProtocolConfigClient is a client for the GhostProtocolConfig schema.
type GhostProtocolConfigClient struct {
	config
}

// NewGhostProtocolConfigClient returns a client for the GhostProtocolConfig from the given config.
func NewGhostProtocolConfigClient(c config) *GhostProtocolConfigClient {
	return &GhostProtocolConfigClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `ghostprotocolconfig.Hooks(f(g(h())))`.
func (c *GhostProtocolConfigClient) Use(hooks ...Hook) {
	c.hooks.GhostProtocolConfig = append(c.hooks.GhostProtocolConfig, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `ghostprotocolconfig.Intercept(f(g(h())))`.
func (c *GhostProtocolConfigClient) Intercept(interceptors ...Interceptor) {
	c.inters.GhostProtocolConfig = append(c.inters.GhostProtocolConfig, interceptors...)
}

// Create returns a builder for creating a GhostProtocolConfig entity.
func (c *GhostProtocolConfigClient) Create() *GhostProtocolConfigCreate {
	mutation := newGhostProtocolConfigMutation(c.config, OpCreate)
	return &GhostProtocolConfigCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GhostProtocolConfig entities.
func (c *GhostProtocolConfigClient) CreateBulk(builders ...*GhostProtocolConfigCreate) *GhostProtocolConfigCreateBulk {
	return &GhostProtocolConfigCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GhostProtocolConfigClient) MapCreateBulk(slice any, setFunc func(*GhostProtocolConfigCreate, int)) *GhostProtocolConfigCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GhostProtocolConfigCreateBulk{err: fmt.Errorf("calling to GhostProtocolConfigClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GhostProtocolConfigCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GhostProtocolConfigCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GhostProtocolConfig.
func (c *GhostProtocolConfigClient) Update() *GhostProtocolConfigUpdate {
	mutation := newGhostProtocolConfigMutation(c.config, OpUpdate)
	return &GhostProtocolConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GhostProtocolConfigClient) UpdateOne(_m *GhostProtocolConfig) *GhostProtocolConfigUpdateOne {
	mutation := newGhostProtocolConfigMutation(c.config, OpUpdateOne, withGhostProtocolConfig(_m))
	return &GhostProtocolConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GhostProtocolConfigClient) UpdateOneID(id uuid.UUID) *GhostProtocolConfigUpdateOne {
	mutation := newGhostProtocolConfigMutation(c.config, OpUpdateOne, withGhostProtocolConfigID(id))
	return &GhostProtocolConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GhostProtocolConfig.
func (c *GhostProtocolConfigClient) Delete() *GhostProtocolConfigDelete {
	mutation := newGhostProtocolConfigMutation(c.config, OpDelete)
	return &GhostProtocolConfigDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GhostProtocolConfigClient) DeleteOne(_m *GhostProtocolConfig) *GhostProtocolConfigDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GhostProtocolConfigClient) DeleteOneID(id uuid.UUID) *GhostProtocolConfigDeleteOne {
	builder := c.Delete().Where(ghostprotocolconfig.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GhostProtocolConfigDeleteOne{builder}
}

// Query returns a query builder for GhostProtocolConfig.
func (c *GhostProtocolConfigClient) Query() *GhostProtocolConfigQuery {
	return &GhostProtocolConfigQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGhostProtocolConfig},
		inters: c.Interceptors(),
	}
}

// Get returns a GhostProtocolConfig entity by its id.
func (c *GhostProtocolConfigClient) Get(ctx context.Context, id uuid.UUID) (*GhostProtocolConfig, error) {
	return c.Query().Where(ghostprotocolconfig.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GhostProtocolConfigClient) GetX(ctx context.Context, id uuid.UUID) *GhostProtocolConfig {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWorkspace queries the workspace edge of a GhostProtocolConfig.
func (c *GhostProtocolConfigClient) QueryWorkspace(_m *GhostProtocolConfig) *WorkspaceQuery {
	query := (&WorkspaceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(ghostprotocolconfig.Table, ghostprotocolconfig.FieldID, id),
			sqlgraph.To(workspace.Table, workspace.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ghostprotocolconfig.WorkspaceTable, ghostprotocolconfig.WorkspaceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *GhostProtocolConfigClient) Hooks() []Hook {
	return c.hooks.GhostProtocolConfig
}

// Interceptors returns the client interceptors.
func (c *GhostProtocolConfigClient) Interceptors() []Interceptor {
	return c.inters.GhostProtocolConfig
}

func (c *GhostProtocolConfigClient) mutate(ctx context.Context, m *GhostProtocolConfigMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GhostProtocolConfigCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GhostProtocolConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GhostProtocolConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GhostProtocolConfigDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GhostProtocolConfig mutation op: %q", m.Op())
	}
}

// PolicyRuleClient is a client for the PolicyRule schema.
type PolicyRuleClient struct {
	config
}

// NewPolicyRuleClient returns a client for the PolicyRule from the given config.
func NewPolicyRuleClient(c config) *PolicyRuleClient {
	return &PolicyRuleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `policyrule.Hooks(f(g(h())))`.
func (c *PolicyRuleClient) Use(hooks ...Hook) {
	c.hooks.PolicyRule = append(c.hooks.PolicyRule, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `policyrule.Intercept(f(g(h())))`.
func (c *PolicyRuleClient) Intercept(interceptors ...Interceptor) {
	c.inters.PolicyRule = append(c.inters.PolicyRule, interceptors...)
}

// Create returns a builder for creating a PolicyRule entity.
func (c *PolicyRuleClient) Create() *PolicyRuleCreate {
	mutation := newPolicyRuleMutation(c.config, OpCreate)
	return &PolicyRuleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PolicyRule entities.
func (c *PolicyRuleClient) CreateBulk(builders ...*PolicyRuleCreate) *PolicyRuleCreateBulk {
	return &PolicyRuleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PolicyRuleClient) MapCreateBulk(slice any, setFunc func(*PolicyRuleCreate, int)) *PolicyRuleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PolicyRuleCreateBulk{err: fmt.Errorf("calling to PolicyRuleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PolicyRuleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PolicyRuleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PolicyRule.
func (c *PolicyRuleClient) Update() *PolicyRuleUpdate {
	mutation := newPolicyRuleMutation(c.config, OpUpdate)
	return &PolicyRuleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PolicyRuleClient) UpdateOne(_m *PolicyRule) *PolicyRuleUpdateOne {
	mutation := newPolicyRuleMutation(c.config, OpUpdateOne, withPolicyRule(_m))
	return &PolicyRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PolicyRuleClient) UpdateOneID(id uuid.UUID) *PolicyRuleUpdateOne {
	mutation := newPolicyRuleMutation(c.config, OpUpdateOne, withPolicyRuleID(id))
	return &PolicyRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PolicyRule.
func (c *PolicyRuleClient) Delete() *PolicyRuleDelete {
	mutation := newPolicyRuleMutation(c.config, OpDelete)
	return &PolicyRuleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PolicyRuleClient) DeleteOne(_m *PolicyRule) *PolicyRuleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PolicyRuleClient) DeleteOneID(id uuid.UUID) *PolicyRuleDeleteOne {
	builder := c.Delete().Where(policyrule.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PolicyRuleDeleteOne{builder}
}

// Query returns a query builder for PolicyRule.
func (c *PolicyRuleClient) Query() *PolicyRuleQuery {
	return &PolicyRuleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePolicyRule},
		inters: c.Interceptors(),
	}
}

// Get returns a PolicyRule entity by its id.
func (c *PolicyRuleClient) Get(ctx context.Context, id uuid.UUID) (*PolicyRule, error) {
	return c.Query().Where(policyrule.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PolicyRuleClient) GetX(ctx context.Context, id uuid.UUID) *PolicyRule {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWorkspace queries the workspace edge of a PolicyRule.
func (c *PolicyRuleClient) QueryWorkspace(_m *PolicyRule) *WorkspaceQuery {
	query := (&WorkspaceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(policyrule.Table, policyrule.FieldID, id),
			sqlgraph.To(workspace.Table, workspace.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, policyrule.WorkspaceTable, policyrule.WorkspaceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PolicyRuleClient) Hooks() []Hook {
	return c.hooks.PolicyRule
}

// Interceptors returns the client interceptors.
func (c *PolicyRuleClient) Interceptors() []Interceptor {
	return c.inters.PolicyRule
}

func (c *PolicyRuleClient) mutate(ctx context.Context, m *PolicyRuleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PolicyRuleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PolicyRuleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PolicyRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PolicyRuleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PolicyRule mutation op: %q", m.Op())
	}
}

// PolicyViolationClient is a client for the PolicyViolation schema.
type PolicyViolationClient struct {
	config
}

// NewPolicyViolationClient returns a client for the PolicyViolation from the given config.
func NewPolicyViolationClient(c config) *PolicyViolationClient {
	return &PolicyViolationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `policyviolation.Hooks(f(g(h())))`.
func (c *PolicyViolationClient) Use(hooks ...Hook) {
	c.hooks.PolicyViolation = append(c.hooks.PolicyViolation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `policyviolation.Intercept(f(g(h())))`.
func (c *PolicyViolationClient) Intercept(interceptors ...Interceptor) {
	c.inters.PolicyViolation = append(c.inters.PolicyViolation, interceptors...)
}

// Create returns a builder for creating a PolicyViolation entity.
func (c *PolicyViolationClient) Create() *PolicyViolationCreate {
	mutation := newPolicyViolationMutation(c.config, OpCreate)
	return &PolicyViolationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PolicyViolation entities.
func (c *PolicyViolationClient) CreateBulk(builders ...*PolicyViolationCreate) *PolicyViolationCreateBulk {
	return &PolicyViolationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PolicyViolationClient) MapCreateBulk(slice any, setFunc func(*PolicyViolationCreate, int)) *PolicyViolationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PolicyViolationCreateBulk{err: fmt.Errorf("calling to PolicyViolationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PolicyViolationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PolicyViolationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PolicyViolation.
func (c *PolicyViolationClient) Update() *PolicyViolationUpdate {
	mutation := newPolicyViolationMutation(c.config, OpUpdate)
	return &PolicyViolationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PolicyViolationClient) UpdateOne(_m *PolicyViolation) *PolicyViolationUpdateOne {
	mutation := newPolicyViolationMutation(c.config, OpUpdateOne, withPolicyViolation(_m))
	return &PolicyViolationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PolicyViolationClient) UpdateOneID(id uuid.UUID) *PolicyViolationUpdateOne {
	mutation := newPolicyViolationMutation(c.config, OpUpdateOne, withPolicyViolationID(id))
	return &PolicyViolationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PolicyViolation.
func (c *PolicyViolationClient) Delete() *PolicyViolationDelete {
	mutation := newPolicyViolationMutation(c.config, OpDelete)
	return &PolicyViolationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PolicyViolationClient) DeleteOne(_m *PolicyViolation) *PolicyViolationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PolicyViolationClient) DeleteOneID(id uuid.UUID) *PolicyViolationDeleteOne {
	builder := c.Delete().Where(policyviolation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PolicyViolationDeleteOne{builder}
}

// Query returns a query builder for PolicyViolation.
func (c *PolicyViolationClient) Query() *PolicyViolationQuery {
	return &PolicyViolationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePolicyViolation},
		inters: c.Interceptors(),
	}
}

// Get returns a PolicyViolation entity by its id.
func (c *PolicyViolationClient) Get(ctx context.Context, id uuid.UUID) (*PolicyViolation, error) {
	return c.Query().Where(policyviolation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PolicyViolationClient) GetX(ctx context.Context, id uuid.UUID) *PolicyViolation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWorkspace queries the workspace edge of a PolicyViolation.
func (c *PolicyViolationClient) QueryWorkspace(_m *PolicyViolation) *WorkspaceQuery {
	query := (&WorkspaceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(policyviolation.Table, policyviolation.FieldID, id),
			sqlgraph.To(workspace.Table, workspace.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, policyviolation.WorkspaceTable, policyviolation.WorkspaceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvent queries the event edge of a PolicyViolation.
func (c *PolicyViolationClient) QueryEvent(_m *PolicyViolation) *AgentEventQuery {
	query := (&AgentEventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(policyviolation.Table, policyviolation.FieldID, id),
			sqlgraph.To(agentevent.Table, agentevent.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, policyviolation.EventTable, policyviolation.EventColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PolicyViolationClient) Hooks() []Hook {
	return c.hooks.PolicyViolation
}

// Interceptors returns the client interceptors.
func (c *PolicyViolationClient) Interceptors() []Interceptor {
	return c.inters.PolicyViolation
}

func (c *PolicyViolationClient) mutate(ctx context.Context, m *PolicyViolationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PolicyViolationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PolicyViolationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PolicyViolationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PolicyViolationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PolicyViolation mutation op: %q", m.Op())
	}
}

// PromptTemplateClient is a client for the PromptTemplate schema.
type PromptTemplateClient struct {
	config
}

// NewPromptTemplateClient returns a client for the PromptTemplate from the given config.
func NewPromptTemplateClient(c config) *PromptTemplateClient {
	return &PromptTemplateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `prompttemplate.Hooks(f(g(h())))`.
func (c *PromptTemplateClient) Use(hooks ...Hook) {
	c.hooks.PromptTemplate = append(c.hooks.PromptTemplate, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `prompttemplate.Intercept(f(g(h())))`.
func (c *PromptTemplateClient) Intercept(interceptors ...Interceptor) {
	c.inters.PromptTemplate = append(c.inters.PromptTemplate, interceptors...)
}

// Create returns a builder for creating a PromptTemplate entity.
func (c *PromptTemplateClient) Create() *PromptTemplateCreate {
	mutation := newPromptTemplateMutation(c.config, OpCreate)
	return &PromptTemplateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PromptTemplate entities.
func (c *PromptTemplateClient) CreateBulk(builders ...*PromptTemplateCreate) *PromptTemplateCreateBulk {
	return &PromptTemplateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PromptTemplateClient) MapCreateBulk(slice any, setFunc func(*PromptTemplateCreate, int)) *PromptTemplateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PromptTemplateCreateBulk{err: fmt.Errorf("calling to PromptTemplateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PromptTemplateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PromptTemplateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PromptTemplate.
func (c *PromptTemplateClient) Update() *PromptTemplateUpdate {
	mutation := newPromptTemplateMutation(c.config, OpUpdate)
	return &PromptTemplateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PromptTemplateClient) UpdateOne(_m *PromptTemplate) *PromptTemplateUpdateOne {
	mutation := newPromptTemplateMutation(c.config, OpUpdateOne, withPromptTemplate(_m))
	return &PromptTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PromptTemplateClient) UpdateOneID(id uuid.UUID) *PromptTemplateUpdateOne {
	mutation := newPromptTemplateMutation(c.config, OpUpdateOne, withPromptTemplateID(id))
	return &PromptTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PromptTemplate.
func (c *PromptTemplateClient) Delete() *PromptTemplateDelete {
	mutation := newPromptTemplateMutation(c.config, OpDelete)
	return &PromptTemplateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PromptTemplateClient) DeleteOne(_m *PromptTemplate) *PromptTemplateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PromptTemplateClient) DeleteOneID(id uuid.UUID) *PromptTemplateDeleteOne {
	builder := c.Delete().Where(prompttemplate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PromptTemplateDeleteOne{builder}
}

// Query returns a query builder for PromptTemplate.
func (c *PromptTemplateClient) Query() *PromptTemplateQuery {
	return &PromptTemplateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePromptTemplate},
		inters: c.Interceptors(),
	}
}

// Get returns a PromptTemplate entity by its id.
func (c *PromptTemplateClient) Get(ctx context.Context, id uuid.UUID) (*PromptTemplate, error) {
	return c.Query().Where(prompttemplate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PromptTemplateClient) GetX(ctx context.Context, id uuid.UUID) *PromptTemplate {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PromptTemplateClient) Hooks() []Hook {
	return c.hooks.PromptTemplate
}

// Interceptors returns the client interceptors.
func (c *PromptTemplateClient) Interceptors() []Interceptor {
	return c.inters.PromptTemplate
}

func (c *PromptTemplateClient) mutate(ctx context.Context, m *PromptTemplateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PromptTemplateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PromptTemplateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PromptTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PromptTemplateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PromptTemplate mutation op: %q", m.Op())
	}
}

// RegisteredAgentClient is a client for the RegisteredAgent schema.
type RegisteredAgentClient struct {
	config
}

// NewRegisteredAgentClient returns a client for the RegisteredAgent from the given config.
func NewRegisteredAgentClient(c config) *RegisteredAgentClient {
	return &RegisteredAgentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `registeredagent.Hooks(f(g(h())))`.
func (c *RegisteredAgentClient) Use(hooks ...Hook) {
	c.hooks.RegisteredAgent = append(c.hooks.RegisteredAgent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `registeredagent.Intercept(f(g(h())))`.
func (c *RegisteredAgentClient) Intercept(interceptors ...Interceptor) {
	c.inters.RegisteredAgent = append(c.inters.RegisteredAgent, interceptors...)
}

// Create returns a builder for creating a RegisteredAgent entity.
func (c *RegisteredAgentClient) Create() *RegisteredAgentCreate {
	mutation := newRegisteredAgentMutation(c.config, OpCreate)
	return &RegisteredAgentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RegisteredAgent entities.
func (c *RegisteredAgentClient) CreateBulk(builders ...*RegisteredAgentCreate) *RegisteredAgentCreateBulk {
	return &RegisteredAgentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RegisteredAgentClient) MapCreateBulk(slice any, setFunc func(*RegisteredAgentCreate, int)) *RegisteredAgentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RegisteredAgentCreateBulk{err: fmt.Errorf("calling to RegisteredAgentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RegisteredAgentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RegisteredAgentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RegisteredAgent.
func (c *RegisteredAgentClient) Update() *RegisteredAgentUpdate {
	mutation := newRegisteredAgentMutation(c.config, OpUpdate)
	return &RegisteredAgentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RegisteredAgentClient) UpdateOne(_m *RegisteredAgent) *RegisteredAgentUpdateOne {
	mutation := newRegisteredAgentMutation(c.config, OpUpdateOne, withRegisteredAgent(_m))
	return &RegisteredAgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RegisteredAgentClient) UpdateOneID(id uuid.UUID) *RegisteredAgentUpdateOne {
	mutation := newRegisteredAgentMutation(c.config, OpUpdateOne, withRegisteredAgentID(id))
	return &RegisteredAgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RegisteredAgent.
func (c *RegisteredAgentClient) Delete() *RegisteredAgentDelete {
	mutation := newRegisteredAgentMutation(c.config, OpDelete)
	return &RegisteredAgentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RegisteredAgentClient) DeleteOne(_m *RegisteredAgent) *RegisteredAgentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RegisteredAgentClient) DeleteOneID(id uuid.UUID) *RegisteredAgentDeleteOne {
	builder := c.Delete().Where(registeredagent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RegisteredAgentDeleteOne{builder}
}

// Query returns a query builder for RegisteredAgent.
func (c *RegisteredAgentClient) Query() *RegisteredAgentQuery {
	return &RegisteredAgentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRegisteredAgent},
		inters: c.Interceptors(),
	}
}

// Get returns a RegisteredAgent entity by its id.
func (c *RegisteredAgentClient) Get(ctx context.Context, id uuid.UUID) (*RegisteredAgent, error) {
	return c.Query().Where(registeredagent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RegisteredAgentClient) GetX(ctx context.Context, id uuid.UUID) *RegisteredAgent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWorkspace queries the workspace edge of a RegisteredAgent.
func (c *RegisteredAgentClient) QueryWorkspace(_m *RegisteredAgent) *WorkspaceQuery {
	query := (&WorkspaceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(registeredagent.Table, registeredagent.FieldID, id),
			sqlgraph.To(workspace.Table, workspace.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, registeredagent.WorkspaceTable, registeredagent.WorkspaceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RegisteredAgentClient) Hooks() []Hook {
	return c.hooks.RegisteredAgent
}

// Interceptors returns the client interceptors.
func (c *RegisteredAgentClient) Interceptors() []Interceptor {
	return c.inters.RegisteredAgent
}

func (c *RegisteredAgentClient) mutate(ctx context.Context, m *RegisteredAgentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RegisteredAgentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RegisteredAgentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RegisteredAgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RegisteredAgentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RegisteredAgent mutation op: %q", m.Op())
	}
}

// VerdictClient is a client for the Verdict schema.
type VerdictClient struct {
	config
}

// NewVerdictClient returns a client for the Verdict from the given config.
func NewVerdictClient(c config) *VerdictClient {
	return &VerdictClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `verdict.Hooks(f(g(h())))`.
func (c *VerdictClient) Use(hooks ...Hook) {
	c.hooks.Verdict = append(c.hooks.Verdict, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `verdict.Intercept(f(g(h())))`.
func (c *VerdictClient) Intercept(interceptors ...Interceptor) {
	c.inters.Verdict = append(c.inters.Verdict, interceptors...)
}

// Create returns a builder for creating a Verdict entity.
func (c *VerdictClient) Create() *VerdictCreate {
	mutation := newVerdictMutation(c.config, OpCreate)
	return &VerdictCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Verdict entities.
func (c *VerdictClient) CreateBulk(builders ...*VerdictCreate) *VerdictCreateBulk {
	return &VerdictCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *VerdictClient) MapCreateBulk(slice any, setFunc func(*VerdictCreate, int)) *VerdictCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &VerdictCreateBulk{err: fmt.Errorf("calling to VerdictClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*VerdictCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &VerdictCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Verdict.
func (c *VerdictClient) Update() *VerdictUpdate {
	mutation := newVerdictMutation(c.config, OpUpdate)
	return &VerdictUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *VerdictClient) UpdateOne(_m *Verdict) *VerdictUpdateOne {
	mutation := newVerdictMutation(c.config, OpUpdateOne, withVerdict(_m))
	return &VerdictUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *VerdictClient) UpdateOneID(id uuid.UUID) *VerdictUpdateOne {
	mutation := newVerdictMutation(c.config, OpUpdateOne, withVerdictID(id))
	return &VerdictUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Verdict.
func (c *VerdictClient) Delete() *VerdictDelete {
	mutation := newVerdictMutation(c.config, OpDelete)
	return &VerdictDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *VerdictClient) DeleteOne(_m *Verdict) *VerdictDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *VerdictClient) DeleteOneID(id uuid.UUID) *VerdictDeleteOne {
	builder := c.Delete().Where(verdict.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &VerdictDeleteOne{builder}
}

// Query returns a query builder for Verdict.
func (c *VerdictClient) Query() *VerdictQuery {
	return &VerdictQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeVerdict},
		inters: c.Interceptors(),
	}
}

// Get returns a Verdict entity by its id.
func (c *VerdictClient) Get(ctx context.Context, id uuid.UUID) (*Verdict, error) {
	return c.Query().Where(verdict.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *VerdictClient) GetX(ctx context.Context, id uuid.UUID) *Verdict {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a Verdict.
func (c *VerdictClient) QuerySession(_m *Verdict) *AnalysisSessionQuery {
	query := (&AnalysisSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(verdict.Table, verdict.FieldID, id),
			sqlgraph.To(analysissession.Table, analysissession.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, verdict.SessionTable, verdict.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *VerdictClient) Hooks() []Hook {
	return c.hooks.Verdict
}

// Interceptors returns the client interceptors.
func (c *VerdictClient) Interceptors() []Interceptor {
	return c.inters.Verdict
}

func (c *VerdictClient) mutate(ctx context.Context, m *VerdictMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&VerdictCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&VerdictUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&VerdictUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&VerdictDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Verdict mutation op: %q", m.Op())
	}
}

// WorkflowClient is a client for the Workflow schema.
type WorkflowClient struct {
	config
}

// NewWorkflowClient returns a client for the Workflow from the given config.
func NewWorkflowClient(c config) *WorkflowClient {
	return &WorkflowClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workflow.Hooks(f(g(h())))`.
func (c *WorkflowClient) Use(hooks ...Hook) {
	c.hooks.Workflow = append(c.hooks.Workflow, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workflow.Intercept(f(g(h())))`.
func (c *WorkflowClient) Intercept(interceptors ...Interceptor) {
	c.inters.Workflow = append(c.inters.Workflow, interceptors...)
}

// Create returns a builder for creating a Workflow entity.
func (c *WorkflowClient) Create() *WorkflowCreate {
	mutation := newWorkflowMutation(c.config, OpCreate)
	return &WorkflowCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Workflow entities.
func (c *WorkflowClient) CreateBulk(builders ...*WorkflowCreate) *WorkflowCreateBulk {
	return &WorkflowCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkflowClient) MapCreateBulk(slice any, setFunc func(*WorkflowCreate, int)) *WorkflowCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkflowCreateBulk{err: fmt.Errorf("calling to WorkflowClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkflowCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkflowCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Workflow.
func (c *WorkflowClient) Update() *WorkflowUpdate {
	mutation := newWorkflowMutation(c.config, OpUpdate)
	return &WorkflowUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkflowClient) UpdateOne(_m *Workflow) *WorkflowUpdateOne {
	mutation := newWorkflowMutation(c.config, OpUpdateOne, withWorkflow(_m))
	return &WorkflowUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkflowClient) UpdateOneID(id uuid.UUID) *WorkflowUpdateOne {
	mutation := newWorkflowMutation(c.config, OpUpdateOne, withWorkflowID(id))
	return &WorkflowUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Workflow.
func (c *WorkflowClient) Delete() *WorkflowDelete {
	mutation := newWorkflowMutation(c.config, OpDelete)
	return &WorkflowDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkflowClient) DeleteOne(_m *Workflow) *WorkflowDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkflowClient) DeleteOneID(id uuid.UUID) *WorkflowDeleteOne {
	builder := c.Delete().Where(workflow.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkflowDeleteOne{builder}
}

// Query returns a query builder for Workflow.
func (c *WorkflowClient) Query() *WorkflowQuery {
	return &WorkflowQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkflow},
		inters: c.Interceptors(),
	}
}

// Get returns a Workflow entity by its id.
func (c *WorkflowClient) Get(ctx context.Context, id uuid.UUID) (*Workflow, error) {
	return c.Query().Where(workflow.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkflowClient) GetX(ctx context.Context, id uuid.UUID) *Workflow {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWorkspace queries the workspace edge of a Workflow.
func (c *WorkflowClient) QueryWorkspace(_m *Workflow) *WorkspaceQuery {
	query := (&WorkspaceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workflow.Table, workflow.FieldID, id),
			sqlgraph.To(workspace.Table, workspace.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, workflow.WorkspaceTable, workflow.WorkspaceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySteps queries the steps edge of a Workflow.
func (c *WorkflowClient) QuerySteps(_m *Workflow) *WorkflowStepQuery {
	query := (&WorkflowStepClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workflow.Table, workflow.FieldID, id),
			sqlgraph.To(workflowstep.Table, workflowstep.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workflow.StepsTable, workflow.StepsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WorkflowClient) Hooks() []Hook {
	return c.hooks.Workflow
}

// Interceptors returns the client interceptors.
func (c *WorkflowClient) Interceptors() []Interceptor {
	return c.inters.Workflow
}

func (c *WorkflowClient) mutate(ctx context.Context, m *WorkflowMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkflowCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkflowUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkflowUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkflowDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Workflow mutation op: %q", m.Op())
	}
}

// WorkflowStepClient is a client for the WorkflowStep schema.
type WorkflowStepClient struct {
	config
}

// NewWorkflowStepClient returns a client for the WorkflowStep from the given config.
func NewWorkflowStepClient(c config) *WorkflowStepClient {
	return &WorkflowStepClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workflowstep.Hooks(f(g(h())))`.
func (c *WorkflowStepClient) Use(hooks ...Hook) {
	c.hooks.WorkflowStep = append(c.hooks.WorkflowStep, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workflowstep.Intercept(f(g(h())))`.
func (c *WorkflowStepClient) Intercept(interceptors ...Interceptor) {
	c.inters.WorkflowStep = append(c.inters.WorkflowStep, interceptors...)
}

// Create returns a builder for creating a WorkflowStep entity.
func (c *WorkflowStepClient) Create() *WorkflowStepCreate {
	mutation := newWorkflowStepMutation(c.config, OpCreate)
	return &WorkflowStepCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WorkflowStep entities.
func (c *WorkflowStepClient) CreateBulk(builders ...*WorkflowStepCreate) *WorkflowStepCreateBulk {
	return &WorkflowStepCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkflowStepClient) MapCreateBulk(slice any, setFunc func(*WorkflowStepCreate, int)) *WorkflowStepCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkflowStepCreateBulk{err: fmt.Errorf("calling to WorkflowStepClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkflowStepCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkflowStepCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WorkflowStep.
func (c *WorkflowStepClient) Update() *WorkflowStepUpdate {
	mutation := newWorkflowStepMutation(c.config, OpUpdate)
	return &WorkflowStepUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkflowStepClient) UpdateOne(_m *WorkflowStep) *WorkflowStepUpdateOne {
	mutation := newWorkflowStepMutation(c.config, OpUpdateOne, withWorkflowStep(_m))
	return &WorkflowStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkflowStepClient) UpdateOneID(id uuid.UUID) *WorkflowStepUpdateOne {
	mutation := newWorkflowStepMutation(c.config, OpUpdateOne, withWorkflowStepID(id))
	return &WorkflowStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WorkflowStep.
func (c *WorkflowStepClient) Delete() *WorkflowStepDelete {
	mutation := newWorkflowStepMutation(c.config, OpDelete)
	return &WorkflowStepDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkflowStepClient) DeleteOne(_m *WorkflowStep) *WorkflowStepDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkflowStepClient) DeleteOneID(id uuid.UUID) *WorkflowStepDeleteOne {
	builder := c.Delete().Where(workflowstep.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkflowStepDeleteOne{builder}
}

// Query returns a query builder for WorkflowStep.
func (c *WorkflowStepClient) Query() *WorkflowStepQuery {
	return &WorkflowStepQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkflowStep},
		inters: c.Interceptors(),
	}
}

// Get returns a WorkflowStep entity by its id.
func (c *WorkflowStepClient) Get(ctx context.Context, id uuid.UUID) (*WorkflowStep, error) {
	return c.Query().Where(workflowstep.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkflowStepClient) GetX(ctx context.Context, id uuid.UUID) *WorkflowStep {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWorkflow queries the workflow edge of a WorkflowStep.
func (c *WorkflowStepClient) QueryWorkflow(_m *WorkflowStep) *WorkflowQuery {
	query := (&WorkflowClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workflowstep.Table, workflowstep.FieldID, id),
			sqlgraph.To(workflow.Table, workflow.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, workflowstep.WorkflowTable, workflowstep.WorkflowColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WorkflowStepClient) Hooks() []Hook {
	return c.hooks.WorkflowStep
}

// Interceptors returns the client interceptors.
func (c *WorkflowStepClient) Interceptors() []Interceptor {
	return c.inters.WorkflowStep
}

func (c *WorkflowStepClient) mutate(ctx context.Context, m *WorkflowStepMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkflowStepCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkflowStepUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkflowStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkflowStepDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WorkflowStep mutation op: %q", m.Op())
	}
}

// WorkspaceClient is a client for the Workspace schema.
type WorkspaceClient struct {
	config
}

// NewWorkspaceClient returns a client for the Workspace from the given config.
func NewWorkspaceClient(c config) *WorkspaceClient {
	return &WorkspaceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workspace.Hooks(f(g(h())))`.
func (c *WorkspaceClient) Use(hooks ...Hook) {
	c.hooks.Workspace = append(c.hooks.Workspace, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workspace.Intercept(f(g(h())))`.
func (c *WorkspaceClient) Intercept(interceptors ...Interceptor) {
	c.inters.Workspace = append(c.inters.Workspace, interceptors...)
}

// Create returns a builder for creating a Workspace entity.
func (c *WorkspaceClient) Create() *WorkspaceCreate {
	mutation := newWorkspaceMutation(c.config, OpCreate)
	return &WorkspaceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Workspace entities.
func (c *WorkspaceClient) CreateBulk(builders ...*WorkspaceCreate) *WorkspaceCreateBulk {
	return &WorkspaceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkspaceClient) MapCreateBulk(slice any, setFunc func(*WorkspaceCreate, int)) *WorkspaceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkspaceCreateBulk{err: fmt.Errorf("calling to WorkspaceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkspaceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkspaceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Workspace.
func (c *WorkspaceClient) Update() *WorkspaceUpdate {
	mutation := newWorkspaceMutation(c.config, OpUpdate)
	return &WorkspaceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkspaceClient) UpdateOne(_m *Workspace) *WorkspaceUpdateOne {
	mutation := newWorkspaceMutation(c.config, OpUpdateOne, withWorkspace(_m))
	return &WorkspaceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkspaceClient) UpdateOneID(id uuid.UUID) *WorkspaceUpdateOne {
	mutation := newWorkspaceMutation(c.config, OpUpdateOne, withWorkspaceID(id))
	return &WorkspaceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Workspace.
func (c *WorkspaceClient) Delete() *WorkspaceDelete {
	mutation := newWorkspaceMutation(c.config, OpDelete)
	return &WorkspaceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkspaceClient) DeleteOne(_m *Workspace) *WorkspaceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkspaceClient) DeleteOneID(id uuid.UUID) *WorkspaceDeleteOne {
	builder := c.Delete().Where(workspace.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkspaceDeleteOne{builder}
}

// Query returns a query builder for Workspace.
func (c *WorkspaceClient) Query() *WorkspaceQuery {
	return &WorkspaceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkspace},
		inters: c.Interceptors(),
	}
}

// Get returns a Workspace entity by its id.
func (c *WorkspaceClient) Get(ctx context.Context, id uuid.UUID) (*Workspace, error) {
	return c.Query().Where(workspace.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkspaceClient) GetX(ctx context.Context, id uuid.UUID) *Workspace {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAgents queries the agents edge of a Workspace.
func (c *WorkspaceClient) QueryAgents(_m *Workspace) *RegisteredAgentQuery {
	query := (&RegisteredAgentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workspace.Table, workspace.FieldID, id),
			sqlgraph.To(registeredagent.Table, registeredagent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workspace.AgentsTable, workspace.AgentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvents queries the events edge of a Workspace.
func (c *WorkspaceClient) QueryEvents(_m *Workspace) *AgentEventQuery {
	query := (&AgentEventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workspace.Table, workspace.FieldID, id),
			sqlgraph.To(agentevent.Table, agentevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workspace.EventsTable, workspace.EventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPolicyRules queries the policy_rules edge of a Workspace.
func (c *WorkspaceClient) QueryPolicyRules(_m *Workspace) *PolicyRuleQuery {
	query := (&PolicyRuleClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workspace.Table, workspace.FieldID, id),
			sqlgraph.To(policyrule.Table, policyrule.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workspace.PolicyRulesTable, workspace.PolicyRulesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDetectionRules queries the detection_rules edge of a Workspace.
func (c *WorkspaceClient) QueryDetectionRules(_m *Workspace) *DetectionRuleQuery {
	query := (&DetectionRuleClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workspace.Table, workspace.FieldID, id),
			sqlgraph.To(detectionrule.Table, detectionrule.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workspace.DetectionRulesTable, workspace.DetectionRulesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryWorkflows queries the workflows edge of a Workspace.
func (c *WorkspaceClient) QueryWorkflows(_m *Workspace) *WorkflowQuery {
	query := (&WorkflowClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workspace.Table, workspace.FieldID, id),
			sqlgraph.To(workflow.Table, workflow.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workspace.WorkflowsTable, workspace.WorkflowsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryConsensusPolicies queries the consensus_policies edge of a Workspace.
func (c *WorkspaceClient) QueryConsensusPolicies(_m *Workspace) *ConsensusPolicyQuery {
	query := (&ConsensusPolicyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workspace.Table, workspace.FieldID, id),
			sqlgraph.To(consensuspolicy.Table, consensuspolicy.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workspace.ConsensusPoliciesTable, workspace.ConsensusPoliciesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryGhostConfigs queries the ghost_configs edge of a Workspace.
func (c *WorkspaceClient) QueryGhostConfigs(_m *Workspace) *GhostProtocolConfigQuery {
	query := (&GhostProtocolConfigClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workspace.Table, workspace.FieldID, id),
			sqlgraph.To(ghostprotocolconfig.Table, ghostprotocolconfig.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workspace.GhostConfigsTable, workspace.GhostConfigsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySessions queries the sessions edge of a Workspace.
func (c *WorkspaceClient) QuerySessions(_m *Workspace) *AnalysisSessionQuery {
	query := (&AnalysisSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workspace.Table, workspace.FieldID, id),
			sqlgraph.To(analysissession.Table, analysissession.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workspace.SessionsTable, workspace.SessionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryViolations queries the violations edge of a Workspace.
func (c *WorkspaceClient) QueryViolations(_m *Workspace) *PolicyViolationQuery {
	query := (&PolicyViolationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workspace.Table, workspace.FieldID, id),
			sqlgraph.To(policyviolation.Table, policyviolation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workspace.ViolationsTable, workspace.ViolationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WorkspaceClient) Hooks() []Hook {
	return c.hooks.Workspace
}

// Interceptors returns the client interceptors.
func (c *WorkspaceClient) Interceptors() []Interceptor {
	return c.inters.Workspace
}

func (c *WorkspaceClient) mutate(ctx context.Context, m *WorkspaceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkspaceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkspaceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkspaceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkspaceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Workspace mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AgentDefinition, AgentEvent, AgentInstance, AnalysisSession, AuditEntry,
		ConsensusPolicy, DeliberationMessage, DetectionRule, GhostProtocolConfig,
		PolicyRule, PolicyViolation, PromptTemplate, RegisteredAgent, Verdict,
		Workflow, WorkflowStep, Workspace []ent.Hook
	}
	inters struct {
		AgentDefinition, AgentEvent, AgentInstance, AnalysisSession, AuditEntry,
		ConsensusPolicy, DeliberationMessage, DetectionRule, GhostProtocolConfig,
		PolicyRule, PolicyViolation, PromptTemplate, RegisteredAgent, Verdict,
		Workflow, WorkflowStep, Workspace []ent.Interceptor
	}
)
