// Package deliberation orchestrates multi-agent analysis sessions: an
// analysis phase, debate rounds, a voting phase, and consensus into a
// verdict. Sessions under Ghost Protocol additionally expire and wipe.
package deliberation

import (
	"regexp"
	"strconv"
	"strings"
)

// Vote is one agent's disposition for the event under analysis.
type Vote string

const (
	VoteAllow Vote = "allow"
	VoteFlag  Vote = "flag"
	VoteBlock Vote = "block"
)

// defaultConfidence is used when an agent's response states none.
const defaultConfidence = 0.5

var (
	votePattern       = regexp.MustCompile(`(?i)VOTE\s*:\s*(BLOCK|FLAG|ALLOW)`)
	verdictFallback   = regexp.MustCompile(`(?i)VERDICT.*?(BLOCK|FLAG)`)
	confidencePattern = regexp.MustCompile(`(?i)CONFIDENCE[:\s]*([01]\.?\d*)`)
)

// ParseVote extracts a vote from free-form model output. The explicit
// "VOTE: X" form wins; failing that, a "VERDICT ... BLOCK/FLAG" phrase is
// honored; an unparseable response defaults to flag, the cautious middle.
// The bool reports whether the vote was stated rather than defaulted.
func ParseVote(content string) (Vote, bool) {
	if m := votePattern.FindStringSubmatch(content); m != nil {
		return Vote(strings.ToLower(m[1])), true
	}
	if m := verdictFallback.FindStringSubmatch(content); m != nil {
		return Vote(strings.ToLower(m[1])), true
	}
	return VoteFlag, false
}

// ParseConfidence extracts a stated confidence in [0,1], defaulting when
// absent or malformed.
func ParseConfidence(content string) float64 {
	m := confidencePattern.FindStringSubmatch(content)
	if m == nil {
		return defaultConfidence
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return defaultConfidence
	}
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
