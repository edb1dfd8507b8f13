package deliberation

import (
	"fmt"
	"slices"
)

// Consensus strategies.
const (
	StrategyMajority      = "majority"
	StrategySupermajority = "supermajority"
	StrategyUnanimous     = "unanimous"
	StrategyWeighted      = "weighted"
)

// Decision values. Votes map to themselves; escalate is reserved for the
// no-consensus outcome and is never votable.
const (
	DecisionAllow    = "allow"
	DecisionFlag     = "flag"
	DecisionBlock    = "block"
	DecisionEscalate = "escalate"
)

// ConsensusSpec is the rule applied to the valid votes. Weights are keyed by
// agent role; RequireUnanimousOn lists decisions that additionally need every
// vote to agree.
type ConsensusSpec struct {
	Strategy           string
	Threshold          float64
	Weights            map[string]float64
	RequireUnanimousOn []string
}

// DefaultConsensus applies when a workflow names no consensus policy.
func DefaultConsensus() ConsensusSpec {
	return ConsensusSpec{Strategy: StrategyMajority, Threshold: 0.5}
}

// Ballot is one valid vote entering consensus.
type Ballot struct {
	InstanceID string
	Role       string
	Vote       Vote
	Confidence float64
}

// Outcome is the consensus result written onto the verdict.
type Outcome struct {
	Decision         string
	ConsensusReached bool
	Confidence       float64
	StrategyUsed     string
	VoteBreakdown    map[string]any
	Dissenting       []map[string]any
}

// voteSeverity orders tied votes: a split between block and allow resolves to
// the more restrictive side.
func voteSeverity(v Vote) int {
	switch v {
	case VoteBlock:
		return 2
	case VoteFlag:
		return 1
	default:
		return 0
	}
}

// Resolve applies the consensus spec to the ballots. No ballots or no
// consensus both escalate; a reached consensus records dissenting ballots on
// the outcome.
func Resolve(spec ConsensusSpec, ballots []Ballot) Outcome {
	out := Outcome{
		Decision:      DecisionEscalate,
		StrategyUsed:  spec.Strategy,
		VoteBreakdown: breakdown(ballots),
	}
	if len(ballots) == 0 {
		return out
	}

	var winner Vote
	var reached bool
	switch spec.Strategy {
	case StrategyWeighted:
		winner, reached = weightedWinner(spec, ballots)
	case StrategyUnanimous:
		winner, reached = unanimousWinner(ballots)
	default:
		winner, reached = ratioWinner(spec, ballots)
	}

	if reached && len(spec.RequireUnanimousOn) > 0 && slices.Contains(spec.RequireUnanimousOn, string(winner)) {
		if _, unanimous := unanimousWinner(ballots); !unanimous {
			reached = false
		}
	}

	if !reached {
		return out
	}

	out.Decision = string(winner)
	out.ConsensusReached = true
	out.Confidence = meanConfidence(ballots, winner)
	for _, b := range ballots {
		if b.Vote != winner {
			out.Dissenting = append(out.Dissenting, map[string]any{
				"instance_id": b.InstanceID,
				"role":        b.Role,
				"vote":        string(b.Vote),
				"confidence":  b.Confidence,
			})
		}
	}
	return out
}

// ratioWinner picks the most-voted option and compares its share against the
// strategy's bar: strictly over one half for majority, at or above the
// threshold for supermajority.
func ratioWinner(spec ConsensusSpec, ballots []Ballot) (Vote, bool) {
	counts := make(map[Vote]int)
	for _, b := range ballots {
		counts[b.Vote]++
	}
	winner := topVote(counts)

	ratio := float64(counts[winner]) / float64(len(ballots))
	if spec.Strategy == StrategySupermajority {
		return winner, ratio >= spec.Threshold
	}
	return winner, ratio > 0.5
}

func unanimousWinner(ballots []Ballot) (Vote, bool) {
	first := ballots[0].Vote
	for _, b := range ballots[1:] {
		if b.Vote != first {
			return first, false
		}
	}
	return first, true
}

// weightedWinner sums per-role weights per vote. Roles without a declared
// weight count 1.0; declared negative weights count 0.0. A zero total means
// nobody's vote carries weight and no consensus is possible.
func weightedWinner(spec ConsensusSpec, ballots []Ballot) (Vote, bool) {
	sums := make(map[Vote]float64)
	var total float64
	for _, b := range ballots {
		w := 1.0
		if declared, ok := spec.Weights[b.Role]; ok {
			w = declared
			if w < 0 {
				w = 0
			}
		}
		sums[b.Vote] += w
		total += w
	}
	if total == 0 {
		return VoteFlag, false
	}

	var winner Vote
	best := -1.0
	for _, v := range []Vote{VoteBlock, VoteFlag, VoteAllow} {
		if sum, ok := sums[v]; ok && sum > best {
			winner, best = v, sum
		}
	}
	return winner, best/total >= spec.Threshold
}

func topVote(counts map[Vote]int) Vote {
	var winner Vote
	best := -1
	for v, n := range counts {
		if n > best || (n == best && voteSeverity(v) > voteSeverity(winner)) {
			winner, best = v, n
		}
	}
	return winner
}

func meanConfidence(ballots []Ballot, winner Vote) float64 {
	var sum float64
	var n int
	for _, b := range ballots {
		if b.Vote == winner {
			sum += b.Confidence
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

func breakdown(ballots []Ballot) map[string]any {
	counts := map[string]int{}
	for _, b := range ballots {
		counts[string(b.Vote)]++
	}
	out := make(map[string]any, len(counts)+1)
	for v, n := range counts {
		out[v] = n
	}
	out["total"] = len(ballots)
	return out
}

// Reasoning renders a one-line human summary for the verdict row.
func Reasoning(out Outcome) string {
	if !out.ConsensusReached {
		return fmt.Sprintf("no consensus under %s strategy; escalating for human review", out.StrategyUsed)
	}
	return fmt.Sprintf("%s by %s consensus (%d dissenting)", out.Decision, out.StrategyUsed, len(out.Dissenting))
}
