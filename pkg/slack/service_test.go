package slack

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestService_NilReceiver(t *testing.T) {
	var s *Service

	// Should not panic
	s.NotifyVerdict(context.Background(), VerdictNotification{
		SessionID: "sess-1",
		Decision:  "block",
	})
}

func TestNewService(t *testing.T) {
	t.Run("returns nil when token empty", func(t *testing.T) {
		svc := NewService(ServiceConfig{Token: "", Channel: "C123"})
		assert.Nil(t, svc)
	})

	t.Run("returns nil when channel empty", func(t *testing.T) {
		svc := NewService(ServiceConfig{Token: "xoxb-test", Channel: ""})
		assert.Nil(t, svc)
	})

	t.Run("returns service when configured", func(t *testing.T) {
		svc := NewService(ServiceConfig{
			Token:        "xoxb-test",
			Channel:      "C123",
			DashboardURL: "https://example.com",
		})
		assert.NotNil(t, svc)
	})
}

func TestService_SkipsQuietDecisions(t *testing.T) {
	// A nil client would panic if PostMessage were reached.
	svc := &Service{client: nil, dashboardURL: "https://example.com"}

	svc.NotifyVerdict(context.Background(), VerdictNotification{
		SessionID:        "sess-1",
		Decision:         "allow",
		ConsensusReached: true,
	})
	svc.NotifyVerdict(context.Background(), VerdictNotification{
		SessionID:        "sess-2",
		Decision:         "flag",
		ConsensusReached: true,
	})
}
