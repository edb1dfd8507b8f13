package deliberation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseVote(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Vote
		stated  bool
	}{
		{
			name:    "explicit block vote",
			content: "The payload exfiltrates credentials.\nVOTE: BLOCK\nCONFIDENCE: 0.9",
			want:    VoteBlock,
			stated:  true,
		},
		{
			name:    "lowercase vote",
			content: "vote: allow",
			want:    VoteAllow,
			stated:  true,
		},
		{
			name:    "spaces around colon",
			content: "VOTE : FLAG",
			want:    VoteFlag,
			stated:  true,
		},
		{
			name:    "verdict fallback",
			content: "My verdict is that we should BLOCK this event.",
			want:    VoteBlock,
			stated:  true,
		},
		{
			name:    "verdict fallback never allows",
			content: "Verdict: this is fine, ALLOW it.",
			want:    VoteFlag,
			stated:  false,
		},
		{
			name:    "unparseable defaults to flag",
			content: "I am not sure what to make of this.",
			want:    VoteFlag,
			stated:  false,
		},
		{
			name:    "explicit vote wins over verdict phrase",
			content: "Verdict discussion mentioned BLOCK but VOTE: ALLOW",
			want:    VoteAllow,
			stated:  true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, stated := ParseVote(tt.content)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.stated, stated)
		})
	}
}

func TestParseConfidence(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    float64
	}{
		{"stated with colon", "CONFIDENCE: 0.85", 0.85},
		{"stated with space", "confidence 0.3", 0.3},
		{"no separator", "CONFIDENCE:0.8", 0.8},
		{"integer one", "CONFIDENCE: 1", 1.0},
		{"integer zero", "CONFIDENCE: 0", 0.0},
		{"trailing dot", "CONFIDENCE: 0.", 0.0},
		{"missing defaults", "VOTE: BLOCK", defaultConfidence},
		{"garbage defaults", "CONFIDENCE: very high", defaultConfidence},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ParseConfidence(tt.content), 1e-9)
		})
	}
}
