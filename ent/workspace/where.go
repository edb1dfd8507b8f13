// Code generated by ent, DO NOT EDIT.

package workspace

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/swarmshield/swarmshield/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Workspace {
	return predicate.Workspace(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Workspace {
	return predicate.Workspace(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Workspace {
	return predicate.Workspace(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Workspace {
	return predicate.Workspace(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Workspace {
	return predicate.Workspace(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Workspace {
	return predicate.Workspace(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Workspace {
	return predicate.Workspace(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Workspace {
	return predicate.Workspace(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Workspace {
	return predicate.Workspace(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldEQ(FieldName, v))
}

// LlmSpendCents applies equality check predicate on the "llm_spend_cents" field. It's identical to LlmSpendCentsEQ.
func LlmSpendCents(v int64) predicate.Workspace {
	return predicate.Workspace(sql.FieldEQ(FieldLlmSpendCents, v))
}

// LlmTokensUsed applies equality check predicate on the "llm_tokens_used" field. It's identical to LlmTokensUsedEQ.
func LlmTokensUsed(v int64) predicate.Workspace {
	return predicate.Workspace(sql.FieldEQ(FieldLlmTokensUsed, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Workspace {
	return predicate.Workspace(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Workspace {
	return predicate.Workspace(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldContainsFold(FieldName, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Workspace {
	return predicate.Workspace(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Workspace {
	return predicate.Workspace(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Workspace {
	return predicate.Workspace(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Workspace {
	return predicate.Workspace(sql.FieldNotIn(FieldStatus, vs...))
}

// SettingsIsNil applies the IsNil predicate on the "settings" field.
func SettingsIsNil() predicate.Workspace {
	return predicate.Workspace(sql.FieldIsNull(FieldSettings))
}

// SettingsNotNil applies the NotNil predicate on the "settings" field.
func SettingsNotNil() predicate.Workspace {
	return predicate.Workspace(sql.FieldNotNull(FieldSettings))
}

// LlmSpendCentsEQ applies the EQ predicate on the "llm_spend_cents" field.
func LlmSpendCentsEQ(v int64) predicate.Workspace {
	return predicate.Workspace(sql.FieldEQ(FieldLlmSpendCents, v))
}

// LlmSpendCentsNEQ applies the NEQ predicate on the "llm_spend_cents" field.
func LlmSpendCentsNEQ(v int64) predicate.Workspace {
	return predicate.Workspace(sql.FieldNEQ(FieldLlmSpendCents, v))
}

// LlmSpendCentsIn applies the In predicate on the "llm_spend_cents" field.
func LlmSpendCentsIn(vs ...int64) predicate.Workspace {
	return predicate.Workspace(sql.FieldIn(FieldLlmSpendCents, vs...))
}

// LlmSpendCentsNotIn applies the NotIn predicate on the "llm_spend_cents" field.
func LlmSpendCentsNotIn(vs ...int64) predicate.Workspace {
	return predicate.Workspace(sql.FieldNotIn(FieldLlmSpendCents, vs...))
}

// LlmSpendCentsGT applies the GT predicate on the "llm_spend_cents" field.
func LlmSpendCentsGT(v int64) predicate.Workspace {
	return predicate.Workspace(sql.FieldGT(FieldLlmSpendCents, v))
}

// LlmSpendCentsGTE applies the GTE predicate on the "llm_spend_cents" field.
func LlmSpendCentsGTE(v int64) predicate.Workspace {
	return predicate.Workspace(sql.FieldGTE(FieldLlmSpendCents, v))
}

// LlmSpendCentsLT applies the LT predicate on the "llm_spend_cents" field.
func LlmSpendCentsLT(v int64) predicate.Workspace {
	return predicate.Workspace(sql.FieldLT(FieldLlmSpendCents, v))
}

// LlmSpendCentsLTE applies the LTE predicate on the "llm_spend_cents" field.
func LlmSpendCentsLTE(v int64) predicate.Workspace {
	return predicate.Workspace(sql.FieldLTE(FieldLlmSpendCents, v))
}

// LlmTokensUsedEQ applies the EQ predicate on the "llm_tokens_used" field.
func LlmTokensUsedEQ(v int64) predicate.Workspace {
	return predicate.Workspace(sql.FieldEQ(FieldLlmTokensUsed, v))
}

// LlmTokensUsedNEQ applies the NEQ predicate on the "llm_tokens_used" field.
func LlmTokensUsedNEQ(v int64) predicate.Workspace {
	return predicate.Workspace(sql.FieldNEQ(FieldLlmTokensUsed, v))
}

// LlmTokensUsedIn applies the In predicate on the "llm_tokens_used" field.
func LlmTokensUsedIn(vs ...int64) predicate.Workspace {
	return predicate.Workspace(sql.FieldIn(FieldLlmTokensUsed, vs...))
}

// LlmTokensUsedNotIn applies the NotIn predicate on the "llm_tokens_used" field.
func LlmTokensUsedNotIn(vs ...int64) predicate.Workspace {
	return predicate.Workspace(sql.FieldNotIn(FieldLlmTokensUsed, vs...))
}

// LlmTokensUsedGT applies the GT predicate on the "llm_tokens_used" field.
func LlmTokensUsedGT(v int64) predicate.Workspace {
	return predicate.Workspace(sql.FieldGT(FieldLlmTokensUsed, v))
}

// LlmTokensUsedGTE applies the GTE predicate on the "llm_tokens_used" field.
func LlmTokensUsedGTE(v int64) predicate.Workspace {
	return predicate.Workspace(sql.FieldGTE(FieldLlmTokensUsed, v))
}

// LlmTokensUsedLT applies the LT predicate on the "llm_tokens_used" field.
func LlmTokensUsedLT(v int64) predicate.Workspace {
	return predicate.Workspace(sql.FieldLT(FieldLlmTokensUsed, v))
}

// LlmTokensUsedLTE applies the LTE predicate on the "llm_tokens_used" field.
func LlmTokensUsedLTE(v int64) predicate.Workspace {
	return predicate.Workspace(sql.FieldLTE(FieldLlmTokensUsed, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasAgents applies the HasEdge predicate on the "agents" edge.
func HasAgents() predicate.Workspace {
	return predicate.Workspace(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AgentsTable, AgentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAgentsWith applies the HasEdge predicate on the "agents" edge with a given conditions (other predicates).
func HasAgentsWith(preds ...predicate.RegisteredAgent) predicate.Workspace {
	return predicate.Workspace(func(s *sql.Selector) {
		step := newAgentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvents applies the HasEdge predicate on the "events" edge.
func HasEvents() predicate.Workspace {
	return predicate.Workspace(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventsWith applies the HasEdge predicate on the "events" edge with a given conditions (other predicates).
func HasEventsWith(preds ...predicate.AgentEvent) predicate.Workspace {
	return predicate.Workspace(func(s *sql.Selector) {
		step := newEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPolicyRules applies the HasEdge predicate on the "policy_rules" edge.
func HasPolicyRules() predicate.Workspace {
	return predicate.Workspace(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, PolicyRulesTable, PolicyRulesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPolicyRulesWith applies the HasEdge predicate on the "policy_rules" edge with a given conditions (other predicates).
func HasPolicyRulesWith(preds ...predicate.PolicyRule) predicate.Workspace {
	return predicate.Workspace(func(s *sql.Selector) {
		step := newPolicyRulesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDetectionRules applies the HasEdge predicate on the "detection_rules" edge.
func HasDetectionRules() predicate.Workspace {
	return predicate.Workspace(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DetectionRulesTable, DetectionRulesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDetectionRulesWith applies the HasEdge predicate on the "detection_rules" edge with a given conditions (other predicates).
func HasDetectionRulesWith(preds ...predicate.DetectionRule) predicate.Workspace {
	return predicate.Workspace(func(s *sql.Selector) {
		step := newDetectionRulesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasWorkflows applies the HasEdge predicate on the "workflows" edge.
func HasWorkflows() predicate.Workspace {
	return predicate.Workspace(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, WorkflowsTable, WorkflowsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWorkflowsWith applies the HasEdge predicate on the "workflows" edge with a given conditions (other predicates).
func HasWorkflowsWith(preds ...predicate.Workflow) predicate.Workspace {
	return predicate.Workspace(func(s *sql.Selector) {
		step := newWorkflowsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasConsensusPolicies applies the HasEdge predicate on the "consensus_policies" edge.
func HasConsensusPolicies() predicate.Workspace {
	return predicate.Workspace(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ConsensusPoliciesTable, ConsensusPoliciesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasConsensusPoliciesWith applies the HasEdge predicate on the "consensus_policies" edge with a given conditions (other predicates).
func HasConsensusPoliciesWith(preds ...predicate.ConsensusPolicy) predicate.Workspace {
	return predicate.Workspace(func(s *sql.Selector) {
		step := newConsensusPoliciesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasGhostConfigs applies the HasEdge predicate on the "ghost_configs" edge.
func HasGhostConfigs() predicate.Workspace {
	return predicate.Workspace(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, GhostConfigsTable, GhostConfigsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasGhostConfigsWith applies the HasEdge predicate on the "ghost_configs" edge with a given conditions (other predicates).
func HasGhostConfigsWith(preds ...predicate.GhostProtocolConfig) predicate.Workspace {
	return predicate.Workspace(func(s *sql.Selector) {
		step := newGhostConfigsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSessions applies the HasEdge predicate on the "sessions" edge.
func HasSessions() predicate.Workspace {
	return predicate.Workspace(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SessionsTable, SessionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionsWith applies the HasEdge predicate on the "sessions" edge with a given conditions (other predicates).
func HasSessionsWith(preds ...predicate.AnalysisSession) predicate.Workspace {
	return predicate.Workspace(func(s *sql.Selector) {
		step := newSessionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasViolations applies the HasEdge predicate on the "violations" edge.
func HasViolations() predicate.Workspace {
	return predicate.Workspace(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ViolationsTable, ViolationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasViolationsWith applies the HasEdge predicate on the "violations" edge with a given conditions (other predicates).
func HasViolationsWith(preds ...predicate.PolicyViolation) predicate.Workspace {
	return predicate.Workspace(func(s *sql.Selector) {
		step := newViolationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Workspace) predicate.Workspace {
	return predicate.Workspace(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Workspace) predicate.Workspace {
	return predicate.Workspace(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Workspace) predicate.Workspace {
	return predicate.Workspace(sql.NotPredicates(p))
}
