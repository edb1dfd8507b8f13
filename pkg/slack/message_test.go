package slack

import (
	"strings"
	"testing"

	goslack "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sectionText(t *testing.T, block goslack.Block) string {
	t.Helper()
	section, ok := block.(*goslack.SectionBlock)
	require.True(t, ok, "expected a section block")
	return section.Text.Text
}

func TestBuildVerdictMessage(t *testing.T) {
	t.Run("block verdict carries decision and confidence", func(t *testing.T) {
		blocks := BuildVerdictMessage(VerdictNotification{
			SessionID:        "sess-1",
			EventType:        "action",
			Decision:         "block",
			Confidence:       0.9,
			Reasoning:        "credential exfiltration attempt",
			ConsensusReached: true,
		}, "https://dash.example")

		require.Len(t, blocks, 3)
		header := sectionText(t, blocks[0])
		assert.Contains(t, header, "Event Blocked")
		assert.Contains(t, header, "90%")
		assert.Contains(t, sectionText(t, blocks[1]), "credential exfiltration")
	})

	t.Run("no consensus is called out", func(t *testing.T) {
		blocks := BuildVerdictMessage(VerdictNotification{
			SessionID:  "sess-2",
			EventType:  "tool_call",
			Decision:   "escalate",
			Confidence: 0.5,
		}, "https://dash.example")

		header := sectionText(t, blocks[0])
		assert.Contains(t, header, "Escalated for Review")
		assert.Contains(t, header, "did not reach consensus")
	})

	t.Run("button links to the session", func(t *testing.T) {
		blocks := BuildVerdictMessage(VerdictNotification{
			SessionID: "sess-3",
			Decision:  "block",
		}, "https://dash.example")

		actions, ok := blocks[len(blocks)-1].(*goslack.ActionBlock)
		require.True(t, ok)
		btn, ok := actions.Elements.ElementSet[0].(*goslack.ButtonBlockElement)
		require.True(t, ok)
		assert.Equal(t, "https://dash.example/sessions/sess-3", btn.URL)
	})
}

func TestTruncateForSlack(t *testing.T) {
	short := "short text"
	assert.Equal(t, short, truncateForSlack(short))

	long := strings.Repeat("x", maxBlockTextLength+100)
	got := truncateForSlack(long)
	assert.Contains(t, got, "truncated")
	assert.Less(t, len(got), len(long))
}
