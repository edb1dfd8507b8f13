package slack

import (
	"fmt"

	goslack "github.com/slack-go/slack"
)

const maxBlockTextLength = 2900

var decisionEmoji = map[string]string{
	"block":    ":no_entry:",
	"escalate": ":rotating_light:",
	"flag":     ":warning:",
	"allow":    ":white_check_mark:",
}

var decisionLabel = map[string]string{
	"block":    "Event Blocked",
	"escalate": "Escalated for Review",
	"flag":     "Event Flagged",
	"allow":    "Event Allowed",
}

func sessionURL(sessionID, dashboardURL string) string {
	return fmt.Sprintf("%s/sessions/%s", dashboardURL, sessionID)
}

// BuildVerdictMessage creates Block Kit blocks for a deliberation verdict
// notification.
func BuildVerdictMessage(input VerdictNotification, dashboardURL string) []goslack.Block {
	emoji := decisionEmoji[input.Decision]
	if emoji == "" {
		emoji = ":question:"
	}
	label := decisionLabel[input.Decision]
	if label == "" {
		label = "Verdict: " + input.Decision
	}

	headerText := fmt.Sprintf("%s *%s*\nEvent type: `%s` | Confidence: %.0f%%",
		emoji, label, input.EventType, input.Confidence*100)
	if !input.ConsensusReached {
		headerText += "\n_The panel did not reach consensus._"
	}

	blocks := []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, headerText, false, false),
			nil, nil,
		),
	}

	if input.Reasoning != "" {
		blocks = append(blocks, goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, truncateForSlack(input.Reasoning), false, false),
			nil, nil,
		))
	}

	btn := goslack.NewButtonBlockElement("", "", goslack.NewTextBlockObject(goslack.PlainTextType, "View Session", false, false))
	btn.URL = sessionURL(input.SessionID, dashboardURL)
	blocks = append(blocks, goslack.NewActionBlock("", btn))

	return blocks
}

func truncateForSlack(text string) string {
	if len(text) <= maxBlockTextLength {
		return text
	}
	return text[:maxBlockTextLength] + "\n\n_... (truncated, view full session in dashboard)_"
}
