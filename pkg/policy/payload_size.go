package policy

import "fmt"

// evalPayloadSize matches when the content or the serialized payload exceeds
// its configured ceiling. Config carries max_content_bytes and/or
// max_payload_bytes (byte counts, not code points); at least one is required.
// max_bytes is accepted as a legacy alias for max_payload_bytes. Payload size
// is computed from the JSON encoding once at ingestion.
func (e *Engine) evalPayloadSize(rule *Rule, ev *Event) (bool, map[string]any, error) {
	maxContent, hasContent, err := configOptionalInt(rule.Config, "max_content_bytes")
	if err != nil {
		return false, nil, err
	}
	maxPayload, hasPayload, err := configOptionalInt(rule.Config, "max_payload_bytes")
	if err != nil {
		return false, nil, err
	}
	if !hasPayload {
		if maxPayload, hasPayload, err = configOptionalInt(rule.Config, "max_bytes"); err != nil {
			return false, nil, err
		}
	}
	if !hasContent && !hasPayload {
		return false, nil, fmt.Errorf("%w: max_content_bytes or max_payload_bytes is required", ErrMissingConfigKey)
	}
	if hasContent && maxContent < 1 {
		return false, nil, fmt.Errorf("%w: max_content_bytes must be >= 1", ErrBadConfigValue)
	}
	if hasPayload && maxPayload < 1 {
		return false, nil, fmt.Errorf("%w: max_payload_bytes must be >= 1", ErrBadConfigValue)
	}

	// Detail reports the observed sizes only, never the configured limits.
	detail := map[string]any{}
	if hasContent && int64(len(ev.Content)) > maxContent {
		detail["content_bytes"] = len(ev.Content)
	}
	if hasPayload && int64(ev.PayloadBytes) > maxPayload {
		detail["payload_bytes"] = ev.PayloadBytes
	}
	if len(detail) == 0 {
		return false, nil, nil
	}
	return true, detail, nil
}
