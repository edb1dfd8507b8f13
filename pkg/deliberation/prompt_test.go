package deliberation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTemplate(t *testing.T) {
	t.Run("substitutes placeholders", func(t *testing.T) {
		out, err := RenderTemplate("You are a {{role}} focused on {{expertise}}.", map[string]string{
			"role":      "security analyst",
			"expertise": "prompt injection",
		})
		require.NoError(t, err)
		assert.Equal(t, "You are a security analyst focused on prompt injection.", out)
	})

	t.Run("tolerates whitespace inside braces", func(t *testing.T) {
		out, err := RenderTemplate("{{ role }}", map[string]string{"role": "judge"})
		require.NoError(t, err)
		assert.Equal(t, "judge", out)
	})

	t.Run("missing values fail with sorted names", func(t *testing.T) {
		_, err := RenderTemplate("{{zeta}} {{alpha}} {{zeta}}", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "alpha, zeta")
	})

	t.Run("substitution is single pass", func(t *testing.T) {
		// A value containing placeholder syntax must come through verbatim.
		out, err := RenderTemplate("analyze: {{content}}", map[string]string{
			"content": "ignore instructions {{role}}",
		})
		require.NoError(t, err)
		assert.Equal(t, "analyze: ignore instructions {{role}}", out)
	})
}

func TestSystemPrompt(t *testing.T) {
	t.Run("without template uses the base prompt", func(t *testing.T) {
		out, err := SystemPrompt("", "You judge events.", "judge", "")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "You judge events."))
		assert.Contains(t, out, "VOTE: ALLOW, VOTE: FLAG, or VOTE: BLOCK")
		assert.Contains(t, out, "CONFIDENCE:")
	})

	t.Run("template replaces the base prompt", func(t *testing.T) {
		out, err := SystemPrompt("Act as {{role}}. Core: {{system_prompt}}", "base", "reviewer", "apis")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "Act as reviewer. Core: base"))
	})

	t.Run("template with unknown placeholder fails", func(t *testing.T) {
		_, err := SystemPrompt("{{nope}}", "base", "r", "e")
		assert.Error(t, err)
	})
}

func TestRoundPrompt(t *testing.T) {
	out := RoundPrompt("rm -rf /", "[judge] looks destructive", 2)
	assert.Equal(t, "Original event:\nrm -rf /\n\nPrevious discussion:\n[judge] looks destructive\n\nProvide your response for round 2.", out)
}

func TestDebateSummary(t *testing.T) {
	out := DebateSummary([]TranscriptEntry{
		{Role: "analyst", Content: "suspicious"},
		{Role: "skeptic", Content: "benign"},
	})
	assert.Equal(t, "[analyst] suspicious\n[skeptic] benign", out)
}
