// Code generated by ent, DO NOT EDIT.

package workflowstep

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/swarmshield/swarmshield/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.WorkflowStep {
	return predicate.WorkflowStep(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.WorkflowStep {
	return predicate.WorkflowStep(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.WorkflowStep {
	return predicate.WorkflowStep(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.WorkflowStep {
	return predicate.WorkflowStep(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.WorkflowStep {
	return predicate.WorkflowStep(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.WorkflowStep {
	return predicate.WorkflowStep(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.WorkflowStep {
	return predicate.WorkflowStep(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.WorkflowStep {
	return predicate.WorkflowStep(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.WorkflowStep {
	return predicate.WorkflowStep(sql.FieldLTE(FieldID, id))
}

// WorkflowID applies equality check predicate on the "workflow_id" field. It's identical to WorkflowIDEQ.
func WorkflowID(v uuid.UUID) predicate.WorkflowStep {
	return predicate.WorkflowStep(sql.FieldEQ(FieldWorkflowID, v))
}

// AgentDefinitionID applies equality check predicate on the "agent_definition_id" field. It's identical to AgentDefinitionIDEQ.
func AgentDefinitionID(v uuid.UUID) predicate.WorkflowStep {
	return predicate.WorkflowStep(sql.FieldEQ(FieldAgentDefinitionID, v))
}

// PromptTemplateID applies equality check predicate on the "prompt_template_id" field. It's identical to PromptTemplateIDEQ.
func PromptTemplateID(v uuid.UUID) predicate.WorkflowStep {
	return predicate.WorkflowStep(sql.FieldEQ(FieldPromptTemplateID, v))
}

// StepIndex applies equality check predicate on the "step_index" field. It's identical to StepIndexEQ.
func StepIndex(v int) predicate.WorkflowStep {
	return predicate.WorkflowStep(sql.FieldEQ(FieldStepIndex, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.WorkflowStep {
	return predicate.WorkflowStep(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.WorkflowStep {
	return predicate.WorkflowStep(sql.FieldEQ(FieldUpdatedAt, v))
}

// WorkflowIDEQ applies the EQ predicate on the "workflow_id" field.
func WorkflowIDEQ(v uuid.UUID) predicate.WorkflowStep {
	return predicate.WorkflowStep(sql.FieldEQ(FieldWorkflowID, v))
}

// WorkflowIDNEQ applies the NEQ predicate on the "workflow_id" field.
func WorkflowIDNEQ(v uuid.UUID) predicate.WorkflowStep {
	return predicate.WorkflowStep(sql.FieldNEQ(FieldWorkflowID, v))
}

// WorkflowIDIn applies the In predicate on the "workflow_id" field.
func WorkflowIDIn(vs ...uuid.UUID) predicate.WorkflowStep {
	return predicate.WorkflowStep(sql.FieldIn(FieldWorkflowID, vs...))
}

// WorkflowIDNotIn applies the NotIn predicate on the "workflow_id" field.
func WorkflowIDNotIn(vs ...uuid.UUID) predicate.WorkflowStep {
	return predicate.WorkflowStep(sql.FieldNotIn(FieldWorkflowID, vs...))
}

// AgentDefinitionIDEQ applies the EQ predicate on the "agent_definition_id" field.
func AgentDefinitionIDEQ(v uuid.UUID) predicate.WorkflowStep {
	return predicate.WorkflowStep(sql.FieldEQ(FieldAgentDefinitionID, v))
}

// AgentDefinitionIDNEQ applies the NEQ predicate on the "agent_definition_id" field.
func AgentDefinitionIDNEQ(v uuid.UUID) predicate.WorkflowStep {
	return predicate.WorkflowStep(sql.FieldNEQ(FieldAgentDefinitionID, v))
}

// AgentDefinitionIDIn applies the In predicate on the "agent_definition_id" field.
func AgentDefinitionIDIn(vs ...uuid.UUID) predicate.WorkflowStep {
	return predicate.WorkflowStep(sql.FieldIn(FieldAgentDefinitionID, vs...))
}

// AgentDefinitionIDNotIn applies the NotIn predicate on the "agent_definition_id" field.
func AgentDefinitionIDNotIn(vs ...uuid.UUID) predicate.WorkflowStep {
	return predicate.WorkflowStep(sql.FieldNotIn(FieldAgentDefinitionID, vs...))
}

// AgentDefinitionIDGT applies the GT predicate on the "agent_definition_id" field.
func AgentDefinitionIDGT(v uuid.UUID) predicate.WorkflowStep {
	return predicate.WorkflowStep(sql.FieldGT(FieldAgentDefinitionID, v))
}

// AgentDefinitionIDGTE applies the GTE predicate on the "agent_definition_id" field.
func AgentDefinitionIDGTE(v uuid.UUID) predicate.WorkflowStep {
	return predicate.WorkflowStep(sql.FieldGTE(FieldAgentDefinitionID, v))
}

// AgentDefinitionIDLT applies the LT predicate on the "agent_definition_id" field.
func AgentDefinitionIDLT(v uuid.UUID) predicate.WorkflowStep {
	return predicate.WorkflowStep(sql.FieldLT(FieldAgentDefinitionID, v))
}

// AgentDefinitionIDLTE applies the LTE predicate on the "agent_definition_id" field.
func AgentDefinitionIDLTE(v uuid.UUID) predicate.WorkflowStep {
	return predicate.WorkflowStep(sql.FieldLTE(FieldAgentDefinitionID, v))
}

// PromptTemplateIDEQ applies the EQ predicate on the "prompt_template_id" field.
func PromptTemplateIDEQ(v uuid.UUID) predicate.WorkflowStep {
	return predicate.WorkflowStep(sql.FieldEQ(FieldPromptTemplateID, v))
}

// PromptTemplateIDNEQ applies the NEQ predicate on the "prompt_template_id" field.
func PromptTemplateIDNEQ(v uuid.UUID) predicate.WorkflowStep {
	return predicate.WorkflowStep(sql.FieldNEQ(FieldPromptTemplateID, v))
}

// PromptTemplateIDIn applies the In predicate on the "prompt_template_id" field.
func PromptTemplateIDIn(vs ...uuid.UUID) predicate.WorkflowStep {
	return predicate.WorkflowStep(sql.FieldIn(FieldPromptTemplateID, vs...))
}

// PromptTemplateIDNotIn applies the NotIn predicate on the "prompt_template_id" field.
func PromptTemplateIDNotIn(vs ...uuid.UUID) predicate.WorkflowStep {
	return predicate.WorkflowStep(sql.FieldNotIn(FieldPromptTemplateID, vs...))
}

// PromptTemplateIDGT applies the GT predicate on the "prompt_template_id" field.
func PromptTemplateIDGT(v uuid.UUID) predicate.WorkflowStep {
	return predicate.WorkflowStep(sql.FieldGT(FieldPromptTemplateID, v))
}

// PromptTemplateIDGTE applies the GTE predicate on the "prompt_template_id" field.
func PromptTemplateIDGTE(v uuid.UUID) predicate.WorkflowStep {
	return predicate.WorkflowStep(sql.FieldGTE(FieldPromptTemplateID, v))
}

// PromptTemplateIDLT applies the LT predicate on the "prompt_template_id" field.
func PromptTemplateIDLT(v uuid.UUID) predicate.WorkflowStep {
	return predicate.WorkflowStep(sql.FieldLT(FieldPromptTemplateID, v))
}

// PromptTemplateIDLTE applies the LTE predicate on the "prompt_template_id" field.
func PromptTemplateIDLTE(v uuid.UUID) predicate.WorkflowStep {
	return predicate.WorkflowStep(sql.FieldLTE(FieldPromptTemplateID, v))
}

// PromptTemplateIDIsNil applies the IsNil predicate on the "prompt_template_id" field.
func PromptTemplateIDIsNil() predicate.WorkflowStep {
	return predicate.WorkflowStep(sql.FieldIsNull(FieldPromptTemplateID))
}

// PromptTemplateIDNotNil applies the NotNil predicate on the "prompt_template_id" field.
func PromptTemplateIDNotNil() predicate.WorkflowStep {
	return predicate.WorkflowStep(sql.FieldNotNull(FieldPromptTemplateID))
}

// StepIndexEQ applies the EQ predicate on the "step_index" field.
func StepIndexEQ(v int) predicate.WorkflowStep {
	return predicate.WorkflowStep(sql.FieldEQ(FieldStepIndex, v))
}

// StepIndexNEQ applies the NEQ predicate on the "step_index" field.
func StepIndexNEQ(v int) predicate.WorkflowStep {
	return predicate.WorkflowStep(sql.FieldNEQ(FieldStepIndex, v))
}

// StepIndexIn applies the In predicate on the "step_index" field.
func StepIndexIn(vs ...int) predicate.WorkflowStep {
	return predicate.WorkflowStep(sql.FieldIn(FieldStepIndex, vs...))
}

// StepIndexNotIn applies the NotIn predicate on the "step_index" field.
func StepIndexNotIn(vs ...int) predicate.WorkflowStep {
	return predicate.WorkflowStep(sql.FieldNotIn(FieldStepIndex, vs...))
}

// StepIndexGT applies the GT predicate on the "step_index" field.
func StepIndexGT(v int) predicate.WorkflowStep {
	return predicate.WorkflowStep(sql.FieldGT(FieldStepIndex, v))
}

// StepIndexGTE applies the GTE predicate on the "step_index" field.
func StepIndexGTE(v int) predicate.WorkflowStep {
	return predicate.WorkflowStep(sql.FieldGTE(FieldStepIndex, v))
}

// StepIndexLT applies the LT predicate on the "step_index" field.
func StepIndexLT(v int) predicate.WorkflowStep {
	return predicate.WorkflowStep(sql.FieldLT(FieldStepIndex, v))
}

// StepIndexLTE applies the LTE predicate on the "step_index" field.
func StepIndexLTE(v int) predicate.WorkflowStep {
	return predicate.WorkflowStep(sql.FieldLTE(FieldStepIndex, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.WorkflowStep {
	return predicate.WorkflowStep(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.WorkflowStep {
	return predicate.WorkflowStep(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.WorkflowStep {
	return predicate.WorkflowStep(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.WorkflowStep {
	return predicate.WorkflowStep(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.WorkflowStep {
	return predicate.WorkflowStep(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.WorkflowStep {
	return predicate.WorkflowStep(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.WorkflowStep {
	return predicate.WorkflowStep(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.WorkflowStep {
	return predicate.WorkflowStep(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.WorkflowStep {
	return predicate.WorkflowStep(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.WorkflowStep {
	return predicate.WorkflowStep(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.WorkflowStep {
	return predicate.WorkflowStep(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.WorkflowStep {
	return predicate.WorkflowStep(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.WorkflowStep {
	return predicate.WorkflowStep(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.WorkflowStep {
	return predicate.WorkflowStep(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.WorkflowStep {
	return predicate.WorkflowStep(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.WorkflowStep {
	return predicate.WorkflowStep(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasWorkflow applies the HasEdge predicate on the "workflow" edge.
func HasWorkflow() predicate.WorkflowStep {
	return predicate.WorkflowStep(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, WorkflowTable, WorkflowColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWorkflowWith applies the HasEdge predicate on the "workflow" edge with a given conditions (other predicates).
func HasWorkflowWith(preds ...predicate.Workflow) predicate.WorkflowStep {
	return predicate.WorkflowStep(func(s *sql.Selector) {
		step := newWorkflowStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WorkflowStep) predicate.WorkflowStep {
	return predicate.WorkflowStep(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WorkflowStep) predicate.WorkflowStep {
	return predicate.WorkflowStep(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WorkflowStep) predicate.WorkflowStep {
	return predicate.WorkflowStep(sql.NotPredicates(p))
}
