package llm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPBackend_ParsesSuccessfulResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"choices": [{"message": {"content": "verdict text"}}],
			"usage": {"total_tokens": 1500}
		}`))
	}))
	defer srv.Close()

	backend := NewHTTPBackend(srv.Client(), srv.URL)
	resp, err := backend(context.Background(), "sk-test", Request{
		Model:    "gpt-4o-mini",
		Messages: []Message{{Role: RoleUser, Content: "analyze this"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "verdict text", resp.Content)
	assert.Equal(t, int64(1500), resp.TokensUsed)
	assert.Equal(t, int64(3), resp.CostCents) // 1500 tokens, rounded up
}

func TestHTTPBackend_ClassifiesStatuses(t *testing.T) {
	tests := []struct {
		status    int
		retryable bool
	}{
		{429, true},
		{500, true},
		{502, true},
		{503, true},
		{400, false},
		{401, false},
		{404, false},
	}

	for _, tt := range tests {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
		}))

		backend := NewHTTPBackend(srv.Client(), srv.URL)
		_, err := backend(context.Background(), "k", Request{})
		srv.Close()

		ce, ok := IsCallError(err)
		require.True(t, ok, "status %d", tt.status)
		assert.Equal(t, apiErrorCode(tt.status), ce.Code)
		assert.Equal(t, tt.status, ce.Status)
		assert.Equal(t, tt.retryable, ce.Retryable, "status %d", tt.status)
	}
}

func TestHTTPBackend_InvalidBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	backend := NewHTTPBackend(srv.Client(), srv.URL)
	_, err := backend(context.Background(), "k", Request{})
	ce, ok := IsCallError(err)
	require.True(t, ok)
	assert.Equal(t, CodeInvalidResponse, ce.Code)
}

func TestHTTPBackend_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices": [], "usage": {"total_tokens": 0}}`))
	}))
	defer srv.Close()

	backend := NewHTTPBackend(srv.Client(), srv.URL)
	_, err := backend(context.Background(), "k", Request{})
	ce, ok := IsCallError(err)
	require.True(t, ok)
	assert.Equal(t, CodeInvalidResponse, ce.Code)
}

func TestHTTPBackend_ConnectionRefused(t *testing.T) {
	// Port is closed: the server is created and immediately shut down.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	backend := NewHTTPBackend(http.DefaultClient, url)
	_, err := backend(context.Background(), "k", Request{})
	ce, ok := IsCallError(err)
	require.True(t, ok)
	assert.Equal(t, CodeConnectionRefused, ce.Code)
	assert.True(t, ce.Retryable)
}
