package deliberation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ballot(role string, v Vote, confidence float64) Ballot {
	return Ballot{InstanceID: "i-" + role, Role: role, Vote: v, Confidence: confidence}
}

func TestResolve_Majority(t *testing.T) {
	spec := DefaultConsensus()

	t.Run("clear majority", func(t *testing.T) {
		out := Resolve(spec, []Ballot{
			ballot("a", VoteBlock, 0.9),
			ballot("b", VoteBlock, 0.7),
			ballot("c", VoteAllow, 0.6),
		})
		assert.True(t, out.ConsensusReached)
		assert.Equal(t, DecisionBlock, out.Decision)
		assert.InDelta(t, 0.8, out.Confidence, 1e-9)
		assert.Len(t, out.Dissenting, 1)
		assert.Equal(t, "i-c", out.Dissenting[0]["instance_id"])
	})

	t.Run("exact half is not a majority", func(t *testing.T) {
		out := Resolve(spec, []Ballot{
			ballot("a", VoteBlock, 0.9),
			ballot("b", VoteAllow, 0.9),
		})
		assert.False(t, out.ConsensusReached)
		assert.Equal(t, DecisionEscalate, out.Decision)
		assert.Nil(t, out.Dissenting)
	})

	t.Run("no ballots escalates", func(t *testing.T) {
		out := Resolve(spec, nil)
		assert.False(t, out.ConsensusReached)
		assert.Equal(t, DecisionEscalate, out.Decision)
		assert.Equal(t, 0, out.VoteBreakdown["total"])
	})
}

func TestResolve_Supermajority(t *testing.T) {
	spec := ConsensusSpec{Strategy: StrategySupermajority, Threshold: 0.75}

	t.Run("threshold met inclusively", func(t *testing.T) {
		out := Resolve(spec, []Ballot{
			ballot("a", VoteFlag, 0.5),
			ballot("b", VoteFlag, 0.5),
			ballot("c", VoteFlag, 0.5),
			ballot("d", VoteAllow, 0.5),
		})
		assert.True(t, out.ConsensusReached)
		assert.Equal(t, DecisionFlag, out.Decision)
	})

	t.Run("below threshold escalates", func(t *testing.T) {
		out := Resolve(spec, []Ballot{
			ballot("a", VoteFlag, 0.5),
			ballot("b", VoteFlag, 0.5),
			ballot("c", VoteAllow, 0.5),
		})
		assert.False(t, out.ConsensusReached)
		assert.Equal(t, DecisionEscalate, out.Decision)
	})
}

func TestResolve_Unanimous(t *testing.T) {
	spec := ConsensusSpec{Strategy: StrategyUnanimous}

	t.Run("all agree", func(t *testing.T) {
		out := Resolve(spec, []Ballot{
			ballot("a", VoteAllow, 1.0),
			ballot("b", VoteAllow, 0.8),
		})
		assert.True(t, out.ConsensusReached)
		assert.Equal(t, DecisionAllow, out.Decision)
		assert.Empty(t, out.Dissenting)
	})

	t.Run("one dissent escalates", func(t *testing.T) {
		out := Resolve(spec, []Ballot{
			ballot("a", VoteAllow, 1.0),
			ballot("b", VoteFlag, 0.8),
		})
		assert.False(t, out.ConsensusReached)
		assert.Equal(t, DecisionEscalate, out.Decision)
	})
}

func TestResolve_Weighted(t *testing.T) {
	t.Run("heavier role wins", func(t *testing.T) {
		spec := ConsensusSpec{
			Strategy:  StrategyWeighted,
			Threshold: 0.6,
			Weights:   map[string]float64{"senior": 3.0},
		}
		out := Resolve(spec, []Ballot{
			ballot("senior", VoteBlock, 0.9),
			ballot("junior", VoteAllow, 0.9), // weight defaults to 1.0
		})
		assert.True(t, out.ConsensusReached)
		assert.Equal(t, DecisionBlock, out.Decision)
	})

	t.Run("negative weights count as zero", func(t *testing.T) {
		spec := ConsensusSpec{
			Strategy:  StrategyWeighted,
			Threshold: 0.5,
			Weights:   map[string]float64{"broken": -2.0},
		}
		out := Resolve(spec, []Ballot{
			ballot("broken", VoteBlock, 0.9),
			ballot("normal", VoteAllow, 0.9),
		})
		assert.True(t, out.ConsensusReached)
		assert.Equal(t, DecisionAllow, out.Decision)
	})

	t.Run("zero total weight escalates", func(t *testing.T) {
		spec := ConsensusSpec{
			Strategy:  StrategyWeighted,
			Threshold: 0.5,
			Weights:   map[string]float64{"a": 0, "b": -1},
		}
		out := Resolve(spec, []Ballot{
			ballot("a", VoteBlock, 0.9),
			ballot("b", VoteBlock, 0.9),
		})
		assert.False(t, out.ConsensusReached)
		assert.Equal(t, DecisionEscalate, out.Decision)
	})
}

func TestResolve_RequireUnanimousOn(t *testing.T) {
	spec := ConsensusSpec{
		Strategy:           StrategyMajority,
		RequireUnanimousOn: []string{"block"},
	}

	t.Run("majority block without unanimity escalates", func(t *testing.T) {
		out := Resolve(spec, []Ballot{
			ballot("a", VoteBlock, 0.9),
			ballot("b", VoteBlock, 0.9),
			ballot("c", VoteFlag, 0.9),
		})
		assert.False(t, out.ConsensusReached)
		assert.Equal(t, DecisionEscalate, out.Decision)
	})

	t.Run("unaffected decisions pass normally", func(t *testing.T) {
		out := Resolve(spec, []Ballot{
			ballot("a", VoteFlag, 0.9),
			ballot("b", VoteFlag, 0.9),
			ballot("c", VoteBlock, 0.9),
		})
		assert.True(t, out.ConsensusReached)
		assert.Equal(t, DecisionFlag, out.Decision)
	})
}

func TestResolve_Breakdown(t *testing.T) {
	out := Resolve(DefaultConsensus(), []Ballot{
		ballot("a", VoteBlock, 0.9),
		ballot("b", VoteBlock, 0.9),
		ballot("c", VoteAllow, 0.9),
	})
	assert.Equal(t, 2, out.VoteBreakdown["block"])
	assert.Equal(t, 1, out.VoteBreakdown["allow"])
	assert.Equal(t, 3, out.VoteBreakdown["total"])
}
