package deliberation

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// voteFormatSuffix is appended to every agent system prompt so responses stay
// machine-parseable regardless of how the persona is written.
const voteFormatSuffix = "\n\n" +
	"You are deliberating with other agents about whether an AI agent event should be allowed.\n" +
	"End every response with exactly one line of the form:\n" +
	"VOTE: ALLOW, VOTE: FLAG, or VOTE: BLOCK\n" +
	"followed by a line of the form:\n" +
	"CONFIDENCE: <number between 0.0 and 1.0>"

var placeholderPattern = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_]+)\s*\}\}`)

// RenderTemplate substitutes {{name}} placeholders with their values. The
// substitution is literal and single-pass: values are never re-scanned for
// placeholders, so event content cannot inject template syntax. Placeholders
// without a value fail the render, listing the missing names sorted.
func RenderTemplate(template string, vars map[string]string) (string, error) {
	missing := make(map[string]struct{})
	rendered := placeholderPattern.ReplaceAllStringFunc(template, func(m string) string {
		name := placeholderPattern.FindStringSubmatch(m)[1]
		value, ok := vars[name]
		if !ok {
			missing[name] = struct{}{}
			return m
		}
		return value
	})

	if len(missing) > 0 {
		names := make([]string, 0, len(missing))
		for name := range missing {
			names = append(names, name)
		}
		sort.Strings(names)
		return "", fmt.Errorf("template is missing values for: %s", strings.Join(names, ", "))
	}
	return rendered, nil
}

// SystemPrompt builds the system prompt for one agent: the template rendered
// with the agent's attributes when the step names one, otherwise the
// definition's own prompt, always followed by the vote format suffix.
func SystemPrompt(template string, base, role, expertise string) (string, error) {
	prompt := base
	if template != "" {
		rendered, err := RenderTemplate(template, map[string]string{
			"role":          role,
			"expertise":     expertise,
			"system_prompt": base,
		})
		if err != nil {
			return "", err
		}
		prompt = rendered
	}
	return prompt + voteFormatSuffix, nil
}

// RoundPrompt builds the user message for one deliberation round. The event
// content and the debate summary are confined to the user role here; they
// must never reach a system prompt.
func RoundPrompt(content, summary string, round int) string {
	return fmt.Sprintf("Original event:\n%s\n\nPrevious discussion:\n%s\n\nProvide your response for round %d.", content, summary, round)
}

// DebateSummary renders recent transcript entries as role-attributed lines.
func DebateSummary(entries []TranscriptEntry) string {
	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "[%s] %s", e.Role, e.Content)
	}
	return b.String()
}

// TranscriptEntry is one debate line used to build round context.
type TranscriptEntry struct {
	Role    string
	Content string
}
