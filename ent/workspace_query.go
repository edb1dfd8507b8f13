// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/swarmshield/swarmshield/ent/agentevent"
	"github.com/swarmshield/swarmshield/ent/analysissession"
	"github.com/swarmshield/swarmshield/ent/consensuspolicy"
	"github.com/swarmshield/swarmshield/ent/detectionrule"
	"github.com/swarmshield/swarmshield/ent/ghostprotocolconfig"
	"github.com/swarmshield/swarmshield/ent/policyrule"
	"github.com/swarmshield/swarmshield/ent/policyviolation"
	"github.com/swarmshield/swarmshield/ent/predicate"
	"github.com/swarmshield/swarmshield/ent/registeredagent"
	"github.com/swarmshield/swarmshield/ent/workflow"
	"github.com/swarmshield/swarmshield/ent/workspace"
)

// WorkspaceQuery is the builder for querying Workspace entities.
type WorkspaceQuery struct {
	config
	ctx                   *QueryContext
	order                 []workspace.OrderOption
	inters                []Interceptor
	predicates            []predicate.Workspace
	withAgents            *RegisteredAgentQuery
	withEvents            *AgentEventQuery
	withPolicyRules       *PolicyRuleQuery
	withDetectionRules    *DetectionRuleQuery
	withWorkflows         *WorkflowQuery
	withConsensusPolicies *ConsensusPolicyQuery
	withGhostConfigs      *GhostProtocolConfigQuery
	withSessions          *AnalysisSessionQuery
	withViolations        *PolicyViolationQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the WorkspaceQuery builder.
func (_q *WorkspaceQuery) Where(ps ...predicate.Workspace) *WorkspaceQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *WorkspaceQuery) Limit(limit int) *WorkspaceQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *WorkspaceQuery) Offset(offset int) *WorkspaceQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *WorkspaceQuery) Unique(unique bool) *WorkspaceQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *WorkspaceQuery) Order(o ...workspace.OrderOption) *WorkspaceQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryAgents chains the current query on the "agents" edge.
func (_q *WorkspaceQuery) QueryAgents() *RegisteredAgentQuery {
	query := (&RegisteredAgentClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(workspace.Table, workspace.FieldID, selector),
			sqlgraph.To(registeredagent.Table, registeredagent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workspace.AgentsTable, workspace.AgentsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryEvents chains the current query on the "events" edge.
func (_q *WorkspaceQuery) QueryEvents() *AgentEventQuery {
	query := (&AgentEventClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(workspace.Table, workspace.FieldID, selector),
			sqlgraph.To(agentevent.Table, agentevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workspace.EventsTable, workspace.EventsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryPolicyRules chains the current query on the "policy_rules" edge.
func (_q *WorkspaceQuery) QueryPolicyRules() *PolicyRuleQuery {
	query := (&PolicyRuleClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(workspace.Table, workspace.FieldID, selector),
			sqlgraph.To(policyrule.Table, policyrule.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workspace.PolicyRulesTable, workspace.PolicyRulesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryDetectionRules chains the current query on the "detection_rules" edge.
func (_q *WorkspaceQuery) QueryDetectionRules() *DetectionRuleQuery {
	query := (&DetectionRuleClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(workspace.Table, workspace.FieldID, selector),
			sqlgraph.To(detectionrule.Table, detectionrule.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workspace.DetectionRulesTable, workspace.DetectionRulesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryWorkflows chains the current query on the "workflows" edge.
func (_q *WorkspaceQuery) QueryWorkflows() *WorkflowQuery {
	query := (&WorkflowClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(workspace.Table, workspace.FieldID, selector),
			sqlgraph.To(workflow.Table, workflow.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workspace.WorkflowsTable, workspace.WorkflowsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryConsensusPolicies chains the current query on the "consensus_policies" edge.
func (_q *WorkspaceQuery) QueryConsensusPolicies() *ConsensusPolicyQuery {
	query := (&ConsensusPolicyClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(workspace.Table, workspace.FieldID, selector),
			sqlgraph.To(consensuspolicy.Table, consensuspolicy.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workspace.ConsensusPoliciesTable, workspace.ConsensusPoliciesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryGhostConfigs chains the current query on the "ghost_configs" edge.
func (_q *WorkspaceQuery) QueryGhostConfigs() *GhostProtocolConfigQuery {
	query := (&GhostProtocolConfigClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(workspace.Table, workspace.FieldID, selector),
			sqlgraph.To(ghostprotocolconfig.Table, ghostprotocolconfig.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workspace.GhostConfigsTable, workspace.GhostConfigsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QuerySessions chains the current query on the "sessions" edge.
func (_q *WorkspaceQuery) QuerySessions() *AnalysisSessionQuery {
	query := (&AnalysisSessionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(workspace.Table, workspace.FieldID, selector),
			sqlgraph.To(analysissession.Table, analysissession.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workspace.SessionsTable, workspace.SessionsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryViolations chains the current query on the "violations" edge.
func (_q *WorkspaceQuery) QueryViolations() *PolicyViolationQuery {
	query := (&PolicyViolationClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(workspace.Table, workspace.FieldID, selector),
			sqlgraph.To(policyviolation.Table, policyviolation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workspace.ViolationsTable, workspace.ViolationsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Workspace entity from the query.
// Returns a *NotFoundError when no Workspace was found.
func (_q *WorkspaceQuery) First(ctx context.Context) (*Workspace, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{workspace.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *WorkspaceQuery) FirstX(ctx context.Context) *Workspace {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Workspace ID from the query.
// Returns a *NotFoundError when no Workspace ID was found.
func (_q *WorkspaceQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{workspace.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *WorkspaceQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Workspace entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Workspace entity is found.
// Returns a *NotFoundError when no Workspace entities are found.
func (_q *WorkspaceQuery) Only(ctx context.Context) (*Workspace, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{workspace.Label}
	default:
		return nil, &NotSingularError{workspace.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *WorkspaceQuery) OnlyX(ctx context.Context) *Workspace {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Workspace ID in the query.
// Returns a *NotSingularError when more than one Workspace ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *WorkspaceQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{workspace.Label}
	default:
		err = &NotSingularError{workspace.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *WorkspaceQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Workspaces.
func (_q *WorkspaceQuery) All(ctx context.Context) ([]*Workspace, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Workspace, *WorkspaceQuery]()
	return withInterceptors[[]*Workspace](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *WorkspaceQuery) AllX(ctx context.Context) []*Workspace {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Workspace IDs.
func (_q *WorkspaceQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(workspace.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *WorkspaceQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *WorkspaceQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*WorkspaceQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *WorkspaceQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *WorkspaceQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *WorkspaceQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the WorkspaceQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *WorkspaceQuery) Clone() *WorkspaceQuery {
	if _q == nil {
		return nil
	}
	return &WorkspaceQuery{
		config:                _q.config,
		ctx:                   _q.ctx.Clone(),
		order:                 append([]workspace.OrderOption{}, _q.order...),
		inters:                append([]Interceptor{}, _q.inters...),
		predicates:            append([]predicate.Workspace{}, _q.predicates...),
		withAgents:            _q.withAgents.Clone(),
		withEvents:            _q.withEvents.Clone(),
		withPolicyRules:       _q.withPolicyRules.Clone(),
		withDetectionRules:    _q.withDetectionRules.Clone(),
		withWorkflows:         _q.withWorkflows.Clone(),
		withConsensusPolicies: _q.withConsensusPolicies.Clone(),
		withGhostConfigs:      _q.withGhostConfigs.Clone(),
		withSessions:          _q.withSessions.Clone(),
		withViolations:        _q.withViolations.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithAgents tells the query-builder to eager-load the nodes that are connected to
// the "agents" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *WorkspaceQuery) WithAgents(opts ...func(*RegisteredAgentQuery)) *WorkspaceQuery {
	query := (&RegisteredAgentClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAgents = query
	return _q
}

// WithEvents tells the query-builder to eager-load the nodes that are connected to
// the "events" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *WorkspaceQuery) WithEvents(opts ...func(*AgentEventQuery)) *WorkspaceQuery {
	query := (&AgentEventClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withEvents = query
	return _q
}

// WithPolicyRules tells the query-builder to eager-load the nodes that are connected to
// the "policy_rules" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *WorkspaceQuery) WithPolicyRules(opts ...func(*PolicyRuleQuery)) *WorkspaceQuery {
	query := (&PolicyRuleClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withPolicyRules = query
	return _q
}

// WithDetectionRules tells the query-builder to eager-load the nodes that are connected to
// the "detection_rules" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *WorkspaceQuery) WithDetectionRules(opts ...func(*DetectionRuleQuery)) *WorkspaceQuery {
	query := (&DetectionRuleClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withDetectionRules = query
	return _q
}

// WithWorkflows tells the query-builder to eager-load the nodes that are connected to
// the "workflows" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *WorkspaceQuery) WithWorkflows(opts ...func(*WorkflowQuery)) *WorkspaceQuery {
	query := (&WorkflowClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withWorkflows = query
	return _q
}

// WithConsensusPolicies tells the query-builder to eager-load the nodes that are connected to
// the "consensus_policies" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *WorkspaceQuery) WithConsensusPolicies(opts ...func(*ConsensusPolicyQuery)) *WorkspaceQuery {
	query := (&ConsensusPolicyClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withConsensusPolicies = query
	return _q
}

// WithGhostConfigs tells the query-builder to eager-load the nodes that are connected to
// the "ghost_configs" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *WorkspaceQuery) WithGhostConfigs(opts ...func(*GhostProtocolConfigQuery)) *WorkspaceQuery {
	query := (&GhostProtocolConfigClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withGhostConfigs = query
	return _q
}

// WithSessions tells the query-builder to eager-load the nodes that are connected to
// the "sessions" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *WorkspaceQuery) WithSessions(opts ...func(*AnalysisSessionQuery)) *WorkspaceQuery {
	query := (&AnalysisSessionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSessions = query
	return _q
}

// WithViolations tells the query-builder to eager-load the nodes that are connected to
// the "violations" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *WorkspaceQuery) WithViolations(opts ...func(*PolicyViolationQuery)) *WorkspaceQuery {
	query := (&PolicyViolationClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withViolations = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Workspace.Query().
//		GroupBy(workspace.FieldName).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *WorkspaceQuery) GroupBy(field string, fields ...string) *WorkspaceGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &WorkspaceGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = workspace.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//	}
//
//	client.Workspace.Query().
//		Select(workspace.FieldName).
//		Scan(ctx, &v)
func (_q *WorkspaceQuery) Select(fields ...string) *WorkspaceSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &WorkspaceSelect{WorkspaceQuery: _q}
	sbuild.label = workspace.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a WorkspaceSelect configured with the given aggregations.
func (_q *WorkspaceQuery) Aggregate(fns ...AggregateFunc) *WorkspaceSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *WorkspaceQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !workspace.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *WorkspaceQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Workspace, error) {
	var (
		nodes       = []*Workspace{}
		_spec       = _q.querySpec()
		loadedTypes = [9]bool{
			_q.withAgents != nil,
			_q.withEvents != nil,
			_q.withPolicyRules != nil,
			_q.withDetectionRules != nil,
			_q.withWorkflows != nil,
			_q.withConsensusPolicies != nil,
			_q.withGhostConfigs != nil,
			_q.withSessions != nil,
			_q.withViolations != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Workspace).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Workspace{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withAgents; query != nil {
		if err := _q.loadAgents(ctx, query, nodes,
			func(n *Workspace) { n.Edges.Agents = []*RegisteredAgent{} },
			func(n *Workspace, e *RegisteredAgent) { n.Edges.Agents = append(n.Edges.Agents, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withEvents; query != nil {
		if err := _q.loadEvents(ctx, query, nodes,
			func(n *Workspace) { n.Edges.Events = []*AgentEvent{} },
			func(n *Workspace, e *AgentEvent) { n.Edges.Events = append(n.Edges.Events, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withPolicyRules; query != nil {
		if err := _q.loadPolicyRules(ctx, query, nodes,
			func(n *Workspace) { n.Edges.PolicyRules = []*PolicyRule{} },
			func(n *Workspace, e *PolicyRule) { n.Edges.PolicyRules = append(n.Edges.PolicyRules, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withDetectionRules; query != nil {
		if err := _q.loadDetectionRules(ctx, query, nodes,
			func(n *Workspace) { n.Edges.DetectionRules = []*DetectionRule{} },
			func(n *Workspace, e *DetectionRule) { n.Edges.DetectionRules = append(n.Edges.DetectionRules, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withWorkflows; query != nil {
		if err := _q.loadWorkflows(ctx, query, nodes,
			func(n *Workspace) { n.Edges.Workflows = []*Workflow{} },
			func(n *Workspace, e *Workflow) { n.Edges.Workflows = append(n.Edges.Workflows, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withConsensusPolicies; query != nil {
		if err := _q.loadConsensusPolicies(ctx, query, nodes,
			func(n *Workspace) { n.Edges.ConsensusPolicies = []*ConsensusPolicy{} },
			func(n *Workspace, e *ConsensusPolicy) {
				n.Edges.ConsensusPolicies = append(n.Edges.ConsensusPolicies, e)
			}); err != nil {
			return nil, err
		}
	}
	if query := _q.withGhostConfigs; query != nil {
		if err := _q.loadGhostConfigs(ctx, query, nodes,
			func(n *Workspace) { n.Edges.GhostConfigs = []*GhostProtocolConfig{} },
			func(n *Workspace, e *GhostProtocolConfig) { n.Edges.GhostConfigs = append(n.Edges.GhostConfigs, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withSessions; query != nil {
		if err := _q.loadSessions(ctx, query, nodes,
			func(n *Workspace) { n.Edges.Sessions = []*AnalysisSession{} },
			func(n *Workspace, e *AnalysisSession) { n.Edges.Sessions = append(n.Edges.Sessions, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withViolations; query != nil {
		if err := _q.loadViolations(ctx, query, nodes,
			func(n *Workspace) { n.Edges.Violations = []*PolicyViolation{} },
			func(n *Workspace, e *PolicyViolation) { n.Edges.Violations = append(n.Edges.Violations, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *WorkspaceQuery) loadAgents(ctx context.Context, query *RegisteredAgentQuery, nodes []*Workspace, init func(*Workspace), assign func(*Workspace, *RegisteredAgent)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Workspace)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(registeredagent.FieldWorkspaceID)
	}
	query.Where(predicate.RegisteredAgent(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(workspace.AgentsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.WorkspaceID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "workspace_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *WorkspaceQuery) loadEvents(ctx context.Context, query *AgentEventQuery, nodes []*Workspace, init func(*Workspace), assign func(*Workspace, *AgentEvent)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Workspace)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(agentevent.FieldWorkspaceID)
	}
	query.Where(predicate.AgentEvent(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(workspace.EventsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.WorkspaceID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "workspace_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *WorkspaceQuery) loadPolicyRules(ctx context.Context, query *PolicyRuleQuery, nodes []*Workspace, init func(*Workspace), assign func(*Workspace, *PolicyRule)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Workspace)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(policyrule.FieldWorkspaceID)
	}
	query.Where(predicate.PolicyRule(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(workspace.PolicyRulesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.WorkspaceID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "workspace_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *WorkspaceQuery) loadDetectionRules(ctx context.Context, query *DetectionRuleQuery, nodes []*Workspace, init func(*Workspace), assign func(*Workspace, *DetectionRule)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Workspace)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(detectionrule.FieldWorkspaceID)
	}
	query.Where(predicate.DetectionRule(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(workspace.DetectionRulesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.WorkspaceID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "workspace_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *WorkspaceQuery) loadWorkflows(ctx context.Context, query *WorkflowQuery, nodes []*Workspace, init func(*Workspace), assign func(*Workspace, *Workflow)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Workspace)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(workflow.FieldWorkspaceID)
	}
	query.Where(predicate.Workflow(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(workspace.WorkflowsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.WorkspaceID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "workspace_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *WorkspaceQuery) loadConsensusPolicies(ctx context.Context, query *ConsensusPolicyQuery, nodes []*Workspace, init func(*Workspace), assign func(*Workspace, *ConsensusPolicy)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Workspace)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(consensuspolicy.FieldWorkspaceID)
	}
	query.Where(predicate.ConsensusPolicy(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(workspace.ConsensusPoliciesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.WorkspaceID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "workspace_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *WorkspaceQuery) loadGhostConfigs(ctx context.Context, query *GhostProtocolConfigQuery, nodes []*Workspace, init func(*Workspace), assign func(*Workspace, *GhostProtocolConfig)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Workspace)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(ghostprotocolconfig.FieldWorkspaceID)
	}
	query.Where(predicate.GhostProtocolConfig(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(workspace.GhostConfigsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.WorkspaceID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "workspace_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *WorkspaceQuery) loadSessions(ctx context.Context, query *AnalysisSessionQuery, nodes []*Workspace, init func(*Workspace), assign func(*Workspace, *AnalysisSession)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Workspace)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(analysissession.FieldWorkspaceID)
	}
	query.Where(predicate.AnalysisSession(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(workspace.SessionsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.WorkspaceID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "workspace_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *WorkspaceQuery) loadViolations(ctx context.Context, query *PolicyViolationQuery, nodes []*Workspace, init func(*Workspace), assign func(*Workspace, *PolicyViolation)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Workspace)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(policyviolation.FieldWorkspaceID)
	}
	query.Where(predicate.PolicyViolation(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(workspace.ViolationsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.WorkspaceID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "workspace_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *WorkspaceQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *WorkspaceQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(workspace.Table, workspace.Columns, sqlgraph.NewFieldSpec(workspace.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workspace.FieldID)
		for i := range fields {
			if fields[i] != workspace.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *WorkspaceQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(workspace.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = workspace.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// WorkspaceGroupBy is the group-by builder for Workspace entities.
type WorkspaceGroupBy struct {
	selector
	build *WorkspaceQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *WorkspaceGroupBy) Aggregate(fns ...AggregateFunc) *WorkspaceGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *WorkspaceGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*WorkspaceQuery, *WorkspaceGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *WorkspaceGroupBy) sqlScan(ctx context.Context, root *WorkspaceQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// WorkspaceSelect is the builder for selecting fields of Workspace entities.
type WorkspaceSelect struct {
	*WorkspaceQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *WorkspaceSelect) Aggregate(fns ...AggregateFunc) *WorkspaceSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *WorkspaceSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*WorkspaceQuery, *WorkspaceSelect](ctx, _s.WorkspaceQuery, _s, _s.inters, v)
}

func (_s *WorkspaceSelect) sqlScan(ctx context.Context, root *WorkspaceQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
