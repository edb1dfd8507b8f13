// Package llm calls the workspace's configured model provider with retry,
// backoff, and hard budget enforcement. The provider wire protocol lives
// behind the Backend seam; everything else here is provider-agnostic.
package llm

import (
	"context"
	"errors"
	"fmt"
)

// Message roles on the chat wire.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Message is one chat turn sent to the backend.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request is one model call. Model, Temperature, and MaxTokens come from the
// agent definition driving the call.
type Request struct {
	Model       string
	Temperature float64
	MaxTokens   int
	Messages    []Message
}

// Response is a completed model call with its measured cost.
type Response struct {
	Content    string
	TokensUsed int64
	CostCents  int64
}

// Backend performs one raw round trip to a provider. Implementations return
// *CallError for classifiable failures so the retry loop can decide.
type Backend func(ctx context.Context, apiKey string, req Request) (*Response, error)

// Error codes classified by the client and backends.
const (
	CodeAPIKeyNotConfigured = "api_key_not_configured"
	CodeBudgetExceeded      = "budget_exceeded"
	CodeInvalidResponse     = "invalid_response"
	CodeTimeout             = "timeout"
	CodeConnectionRefused   = "connection_refused"
	CodeTransportError      = "transport_error"
)

// CallError is a classified failure from the backend or client.
type CallError struct {
	Code      string
	Status    int // HTTP status when applicable, else 0
	Retryable bool
	Err       error
}

func (e *CallError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("llm call failed (%s): %v", e.Code, e.Err)
	}
	return fmt.Sprintf("llm call failed (%s)", e.Code)
}

func (e *CallError) Unwrap() error { return e.Err }

// apiErrorCode formats the code for a non-2xx provider status, e.g.
// "api_error_429".
func apiErrorCode(status int) string {
	return fmt.Sprintf("api_error_%d", status)
}

// retryableStatus reports whether a provider HTTP status is worth retrying.
// Rate limiting and server-side failures are transient; everything else
// (auth, bad request, not found) will fail the same way again.
func retryableStatus(status int) bool {
	switch status {
	case 429, 500, 502, 503:
		return true
	default:
		return false
	}
}

// IsCallError extracts a *CallError from an error chain.
func IsCallError(err error) (*CallError, bool) {
	var ce *CallError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
