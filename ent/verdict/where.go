// Code generated by ent, DO NOT EDIT.

package verdict

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/swarmshield/swarmshield/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Verdict {
	return predicate.Verdict(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Verdict {
	return predicate.Verdict(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Verdict {
	return predicate.Verdict(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Verdict {
	return predicate.Verdict(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Verdict {
	return predicate.Verdict(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Verdict {
	return predicate.Verdict(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Verdict {
	return predicate.Verdict(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Verdict {
	return predicate.Verdict(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Verdict {
	return predicate.Verdict(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v uuid.UUID) predicate.Verdict {
	return predicate.Verdict(sql.FieldEQ(FieldSessionID, v))
}

// WorkspaceID applies equality check predicate on the "workspace_id" field. It's identical to WorkspaceIDEQ.
func WorkspaceID(v uuid.UUID) predicate.Verdict {
	return predicate.Verdict(sql.FieldEQ(FieldWorkspaceID, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.Verdict {
	return predicate.Verdict(sql.FieldEQ(FieldConfidence, v))
}

// Reasoning applies equality check predicate on the "reasoning" field. It's identical to ReasoningEQ.
func Reasoning(v string) predicate.Verdict {
	return predicate.Verdict(sql.FieldEQ(FieldReasoning, v))
}

// StrategyUsed applies equality check predicate on the "strategy_used" field. It's identical to StrategyUsedEQ.
func StrategyUsed(v string) predicate.Verdict {
	return predicate.Verdict(sql.FieldEQ(FieldStrategyUsed, v))
}

// ConsensusReached applies equality check predicate on the "consensus_reached" field. It's identical to ConsensusReachedEQ.
func ConsensusReached(v bool) predicate.Verdict {
	return predicate.Verdict(sql.FieldEQ(FieldConsensusReached, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Verdict {
	return predicate.Verdict(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v uuid.UUID) predicate.Verdict {
	return predicate.Verdict(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v uuid.UUID) predicate.Verdict {
	return predicate.Verdict(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...uuid.UUID) predicate.Verdict {
	return predicate.Verdict(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...uuid.UUID) predicate.Verdict {
	return predicate.Verdict(sql.FieldNotIn(FieldSessionID, vs...))
}

// WorkspaceIDEQ applies the EQ predicate on the "workspace_id" field.
func WorkspaceIDEQ(v uuid.UUID) predicate.Verdict {
	return predicate.Verdict(sql.FieldEQ(FieldWorkspaceID, v))
}

// WorkspaceIDNEQ applies the NEQ predicate on the "workspace_id" field.
func WorkspaceIDNEQ(v uuid.UUID) predicate.Verdict {
	return predicate.Verdict(sql.FieldNEQ(FieldWorkspaceID, v))
}

// WorkspaceIDIn applies the In predicate on the "workspace_id" field.
func WorkspaceIDIn(vs ...uuid.UUID) predicate.Verdict {
	return predicate.Verdict(sql.FieldIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDNotIn applies the NotIn predicate on the "workspace_id" field.
func WorkspaceIDNotIn(vs ...uuid.UUID) predicate.Verdict {
	return predicate.Verdict(sql.FieldNotIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDGT applies the GT predicate on the "workspace_id" field.
func WorkspaceIDGT(v uuid.UUID) predicate.Verdict {
	return predicate.Verdict(sql.FieldGT(FieldWorkspaceID, v))
}

// WorkspaceIDGTE applies the GTE predicate on the "workspace_id" field.
func WorkspaceIDGTE(v uuid.UUID) predicate.Verdict {
	return predicate.Verdict(sql.FieldGTE(FieldWorkspaceID, v))
}

// WorkspaceIDLT applies the LT predicate on the "workspace_id" field.
func WorkspaceIDLT(v uuid.UUID) predicate.Verdict {
	return predicate.Verdict(sql.FieldLT(FieldWorkspaceID, v))
}

// WorkspaceIDLTE applies the LTE predicate on the "workspace_id" field.
func WorkspaceIDLTE(v uuid.UUID) predicate.Verdict {
	return predicate.Verdict(sql.FieldLTE(FieldWorkspaceID, v))
}

// DecisionEQ applies the EQ predicate on the "decision" field.
func DecisionEQ(v Decision) predicate.Verdict {
	return predicate.Verdict(sql.FieldEQ(FieldDecision, v))
}

// DecisionNEQ applies the NEQ predicate on the "decision" field.
func DecisionNEQ(v Decision) predicate.Verdict {
	return predicate.Verdict(sql.FieldNEQ(FieldDecision, v))
}

// DecisionIn applies the In predicate on the "decision" field.
func DecisionIn(vs ...Decision) predicate.Verdict {
	return predicate.Verdict(sql.FieldIn(FieldDecision, vs...))
}

// DecisionNotIn applies the NotIn predicate on the "decision" field.
func DecisionNotIn(vs ...Decision) predicate.Verdict {
	return predicate.Verdict(sql.FieldNotIn(FieldDecision, vs...))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.Verdict {
	return predicate.Verdict(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.Verdict {
	return predicate.Verdict(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.Verdict {
	return predicate.Verdict(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.Verdict {
	return predicate.Verdict(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.Verdict {
	return predicate.Verdict(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.Verdict {
	return predicate.Verdict(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.Verdict {
	return predicate.Verdict(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.Verdict {
	return predicate.Verdict(sql.FieldLTE(FieldConfidence, v))
}

// ReasoningEQ applies the EQ predicate on the "reasoning" field.
func ReasoningEQ(v string) predicate.Verdict {
	return predicate.Verdict(sql.FieldEQ(FieldReasoning, v))
}

// ReasoningNEQ applies the NEQ predicate on the "reasoning" field.
func ReasoningNEQ(v string) predicate.Verdict {
	return predicate.Verdict(sql.FieldNEQ(FieldReasoning, v))
}

// ReasoningIn applies the In predicate on the "reasoning" field.
func ReasoningIn(vs ...string) predicate.Verdict {
	return predicate.Verdict(sql.FieldIn(FieldReasoning, vs...))
}

// ReasoningNotIn applies the NotIn predicate on the "reasoning" field.
func ReasoningNotIn(vs ...string) predicate.Verdict {
	return predicate.Verdict(sql.FieldNotIn(FieldReasoning, vs...))
}

// ReasoningGT applies the GT predicate on the "reasoning" field.
func ReasoningGT(v string) predicate.Verdict {
	return predicate.Verdict(sql.FieldGT(FieldReasoning, v))
}

// ReasoningGTE applies the GTE predicate on the "reasoning" field.
func ReasoningGTE(v string) predicate.Verdict {
	return predicate.Verdict(sql.FieldGTE(FieldReasoning, v))
}

// ReasoningLT applies the LT predicate on the "reasoning" field.
func ReasoningLT(v string) predicate.Verdict {
	return predicate.Verdict(sql.FieldLT(FieldReasoning, v))
}

// ReasoningLTE applies the LTE predicate on the "reasoning" field.
func ReasoningLTE(v string) predicate.Verdict {
	return predicate.Verdict(sql.FieldLTE(FieldReasoning, v))
}

// ReasoningContains applies the Contains predicate on the "reasoning" field.
func ReasoningContains(v string) predicate.Verdict {
	return predicate.Verdict(sql.FieldContains(FieldReasoning, v))
}

// ReasoningHasPrefix applies the HasPrefix predicate on the "reasoning" field.
func ReasoningHasPrefix(v string) predicate.Verdict {
	return predicate.Verdict(sql.FieldHasPrefix(FieldReasoning, v))
}

// ReasoningHasSuffix applies the HasSuffix predicate on the "reasoning" field.
func ReasoningHasSuffix(v string) predicate.Verdict {
	return predicate.Verdict(sql.FieldHasSuffix(FieldReasoning, v))
}

// ReasoningIsNil applies the IsNil predicate on the "reasoning" field.
func ReasoningIsNil() predicate.Verdict {
	return predicate.Verdict(sql.FieldIsNull(FieldReasoning))
}

// ReasoningNotNil applies the NotNil predicate on the "reasoning" field.
func ReasoningNotNil() predicate.Verdict {
	return predicate.Verdict(sql.FieldNotNull(FieldReasoning))
}

// ReasoningEqualFold applies the EqualFold predicate on the "reasoning" field.
func ReasoningEqualFold(v string) predicate.Verdict {
	return predicate.Verdict(sql.FieldEqualFold(FieldReasoning, v))
}

// ReasoningContainsFold applies the ContainsFold predicate on the "reasoning" field.
func ReasoningContainsFold(v string) predicate.Verdict {
	return predicate.Verdict(sql.FieldContainsFold(FieldReasoning, v))
}

// VoteBreakdownIsNil applies the IsNil predicate on the "vote_breakdown" field.
func VoteBreakdownIsNil() predicate.Verdict {
	return predicate.Verdict(sql.FieldIsNull(FieldVoteBreakdown))
}

// VoteBreakdownNotNil applies the NotNil predicate on the "vote_breakdown" field.
func VoteBreakdownNotNil() predicate.Verdict {
	return predicate.Verdict(sql.FieldNotNull(FieldVoteBreakdown))
}

// DissentingOpinionsIsNil applies the IsNil predicate on the "dissenting_opinions" field.
func DissentingOpinionsIsNil() predicate.Verdict {
	return predicate.Verdict(sql.FieldIsNull(FieldDissentingOpinions))
}

// DissentingOpinionsNotNil applies the NotNil predicate on the "dissenting_opinions" field.
func DissentingOpinionsNotNil() predicate.Verdict {
	return predicate.Verdict(sql.FieldNotNull(FieldDissentingOpinions))
}

// StrategyUsedEQ applies the EQ predicate on the "strategy_used" field.
func StrategyUsedEQ(v string) predicate.Verdict {
	return predicate.Verdict(sql.FieldEQ(FieldStrategyUsed, v))
}

// StrategyUsedNEQ applies the NEQ predicate on the "strategy_used" field.
func StrategyUsedNEQ(v string) predicate.Verdict {
	return predicate.Verdict(sql.FieldNEQ(FieldStrategyUsed, v))
}

// StrategyUsedIn applies the In predicate on the "strategy_used" field.
func StrategyUsedIn(vs ...string) predicate.Verdict {
	return predicate.Verdict(sql.FieldIn(FieldStrategyUsed, vs...))
}

// StrategyUsedNotIn applies the NotIn predicate on the "strategy_used" field.
func StrategyUsedNotIn(vs ...string) predicate.Verdict {
	return predicate.Verdict(sql.FieldNotIn(FieldStrategyUsed, vs...))
}

// StrategyUsedGT applies the GT predicate on the "strategy_used" field.
func StrategyUsedGT(v string) predicate.Verdict {
	return predicate.Verdict(sql.FieldGT(FieldStrategyUsed, v))
}

// StrategyUsedGTE applies the GTE predicate on the "strategy_used" field.
func StrategyUsedGTE(v string) predicate.Verdict {
	return predicate.Verdict(sql.FieldGTE(FieldStrategyUsed, v))
}

// StrategyUsedLT applies the LT predicate on the "strategy_used" field.
func StrategyUsedLT(v string) predicate.Verdict {
	return predicate.Verdict(sql.FieldLT(FieldStrategyUsed, v))
}

// StrategyUsedLTE applies the LTE predicate on the "strategy_used" field.
func StrategyUsedLTE(v string) predicate.Verdict {
	return predicate.Verdict(sql.FieldLTE(FieldStrategyUsed, v))
}

// StrategyUsedContains applies the Contains predicate on the "strategy_used" field.
func StrategyUsedContains(v string) predicate.Verdict {
	return predicate.Verdict(sql.FieldContains(FieldStrategyUsed, v))
}

// StrategyUsedHasPrefix applies the HasPrefix predicate on the "strategy_used" field.
func StrategyUsedHasPrefix(v string) predicate.Verdict {
	return predicate.Verdict(sql.FieldHasPrefix(FieldStrategyUsed, v))
}

// StrategyUsedHasSuffix applies the HasSuffix predicate on the "strategy_used" field.
func StrategyUsedHasSuffix(v string) predicate.Verdict {
	return predicate.Verdict(sql.FieldHasSuffix(FieldStrategyUsed, v))
}

// StrategyUsedEqualFold applies the EqualFold predicate on the "strategy_used" field.
func StrategyUsedEqualFold(v string) predicate.Verdict {
	return predicate.Verdict(sql.FieldEqualFold(FieldStrategyUsed, v))
}

// StrategyUsedContainsFold applies the ContainsFold predicate on the "strategy_used" field.
func StrategyUsedContainsFold(v string) predicate.Verdict {
	return predicate.Verdict(sql.FieldContainsFold(FieldStrategyUsed, v))
}

// ConsensusReachedEQ applies the EQ predicate on the "consensus_reached" field.
func ConsensusReachedEQ(v bool) predicate.Verdict {
	return predicate.Verdict(sql.FieldEQ(FieldConsensusReached, v))
}

// ConsensusReachedNEQ applies the NEQ predicate on the "consensus_reached" field.
func ConsensusReachedNEQ(v bool) predicate.Verdict {
	return predicate.Verdict(sql.FieldNEQ(FieldConsensusReached, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Verdict {
	return predicate.Verdict(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Verdict {
	return predicate.Verdict(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Verdict {
	return predicate.Verdict(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Verdict {
	return predicate.Verdict(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Verdict {
	return predicate.Verdict(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Verdict {
	return predicate.Verdict(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Verdict {
	return predicate.Verdict(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Verdict {
	return predicate.Verdict(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.Verdict {
	return predicate.Verdict(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.AnalysisSession) predicate.Verdict {
	return predicate.Verdict(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Verdict) predicate.Verdict {
	return predicate.Verdict(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Verdict) predicate.Verdict {
	return predicate.Verdict(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Verdict) predicate.Verdict {
	return predicate.Verdict(sql.NotPredicates(p))
}
