package api

// CreateEventRequest is the POST /api/v1/events body. Only these fields are
// ever read; anything else in the document is ignored.
type CreateEventRequest struct {
	EventType string         `json:"event_type"`
	Content   string         `json:"content"`
	Payload   map[string]any `json:"payload,omitempty"`
	Severity  string         `json:"severity,omitempty"`
}
