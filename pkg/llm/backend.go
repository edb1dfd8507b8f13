package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"syscall"
)

// chat-completions wire structs for the default HTTP backend.
type chatRequest struct {
	Model       string        `json:"model"`
	Temperature float64       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Messages    []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage struct {
		TotalTokens int64 `json:"total_tokens"`
	} `json:"usage"`
}

// centsPerThousandTokens is the flat cost model applied to measured usage.
// Provider price tables change too often to encode here; the budget cares
// about order of magnitude, not invoice precision.
const centsPerThousandTokens = 2

// NewHTTPBackend returns a Backend speaking the chat-completions protocol
// against baseURL. The http.Client controls transport-level timeouts.
func NewHTTPBackend(httpClient *http.Client, baseURL string) Backend {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return func(ctx context.Context, apiKey string, req Request) (*Response, error) {
		wire := chatRequest{
			Model:       req.Model,
			Temperature: req.Temperature,
			MaxTokens:   req.MaxTokens,
		}
		for _, m := range req.Messages {
			wire.Messages = append(wire.Messages, chatMessage{Role: m.Role, Content: m.Content})
		}
		body, err := json.Marshal(wire)
		if err != nil {
			return nil, &CallError{Code: CodeInvalidResponse, Err: fmt.Errorf("failed to encode request: %w", err)}
		}

		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/chat/completions", bytes.NewReader(body))
		if err != nil {
			return nil, &CallError{Code: CodeTransportError, Err: err}
		}
		httpReq.Header.Set("Content-Type", "application/json")
		httpReq.Header.Set("Authorization", "Bearer "+apiKey)

		httpResp, err := httpClient.Do(httpReq)
		if err != nil {
			return nil, classifyTransportError(err)
		}
		defer httpResp.Body.Close()

		if httpResp.StatusCode != http.StatusOK {
			// Drain so the connection can be reused; the body content is
			// provider-specific and not worth parsing.
			_, _ = io.Copy(io.Discard, io.LimitReader(httpResp.Body, 4096))
			return nil, &CallError{
				Code:      apiErrorCode(httpResp.StatusCode),
				Status:    httpResp.StatusCode,
				Retryable: retryableStatus(httpResp.StatusCode),
			}
		}

		var parsed chatResponse
		if err := json.NewDecoder(httpResp.Body).Decode(&parsed); err != nil {
			return nil, &CallError{Code: CodeInvalidResponse, Err: err}
		}
		if len(parsed.Choices) == 0 {
			return nil, &CallError{Code: CodeInvalidResponse, Err: errors.New("response contained no choices")}
		}

		tokens := parsed.Usage.TotalTokens
		return &Response{
			Content:    parsed.Choices[0].Message.Content,
			TokensUsed: tokens,
			CostCents:  (tokens*centsPerThousandTokens + 999) / 1000,
		}, nil
	}
}

// classifyTransportError maps network failures onto the retryable error
// codes. Every transport failure is marked retryable, including refused
// connections: a provider restarting behind a load balancer looks identical
// to one that is down, and the attempt cap bounds the wasted work either
// way. When the attempts run out the last classified error is returned
// unchanged so callers still see the code.
func classifyTransportError(err error) *CallError {
	if errors.Is(err, context.DeadlineExceeded) {
		return &CallError{Code: CodeTimeout, Retryable: true, Err: err}
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &CallError{Code: CodeTimeout, Retryable: true, Err: err}
	}
	if errors.Is(err, syscall.ECONNREFUSED) {
		return &CallError{Code: CodeConnectionRefused, Retryable: true, Err: err}
	}
	return &CallError{Code: CodeTransportError, Retryable: true, Err: err}
}
