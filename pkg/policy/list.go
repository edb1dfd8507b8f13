package policy

import (
	"fmt"
	"strings"
)

// Fields a blocklist or allowlist rule may inspect. The set is closed: list
// rules cannot reach into arbitrary payload keys.
const (
	FieldSourceIP  = "source_ip"
	FieldAgentName = "agent_name"
	FieldEventType = "event_type"
	FieldContent   = "content"
)

// evalList implements both list kinds. For a blocklist, presence of the field
// value in the list is a match; for an allowlist, absence is. Comparison is
// trimmed and case-insensitive. The content field uses substring containment
// instead of equality, since content is free text.
//
// An empty field value never matches a blocklist, and is treated as outside
// an allowlist: an event that carries nothing identifiable cannot be
// allowlisted through.
func (e *Engine) evalList(rule *Rule, ev *Event, isBlocklist bool) (bool, map[string]any, error) {
	field, err := configString(rule.Config, "field", "")
	if err != nil {
		return false, nil, err
	}
	values, err := configStrings(rule.Config, "values")
	if err != nil {
		return false, nil, err
	}

	var fieldValue string
	switch field {
	case FieldSourceIP:
		fieldValue = ev.SourceIP
	case FieldAgentName:
		fieldValue = ev.AgentName
	case FieldEventType:
		fieldValue = ev.EventType
	case FieldContent:
		fieldValue = ev.Content
	default:
		return false, nil, fmt.Errorf("%w: field must be one of source_ip, agent_name, event_type, content", ErrBadConfigValue)
	}

	fieldValue = strings.ToLower(strings.TrimSpace(fieldValue))

	listed := false
	if fieldValue != "" {
		for _, v := range values {
			v = strings.ToLower(strings.TrimSpace(v))
			if v == "" {
				continue
			}
			if field == FieldContent {
				if strings.Contains(fieldValue, v) {
					listed = true
					break
				}
			} else if fieldValue == v {
				listed = true
				break
			}
		}
	}

	matched := listed == isBlocklist
	if !matched {
		return false, nil, nil
	}
	return true, map[string]any{"field": field}, nil
}
