package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	echo "github.com/labstack/echo/v5"
	"github.com/google/uuid"

	"github.com/swarmshield/swarmshield/ent"
	"github.com/swarmshield/swarmshield/ent/workspace"
	"github.com/swarmshield/swarmshield/pkg/cache"
	"github.com/swarmshield/swarmshield/pkg/services"
)

// identitySource resolves API key hashes. Satisfied by *cache.APIKeyCache.
type identitySource interface {
	Lookup(ctx context.Context, keyHash string) (*cache.AgentIdentity, error)
}

// workspaceSource loads workspaces for the tenant status check. Satisfied by
// *services.WorkspaceService.
type workspaceSource interface {
	Get(ctx context.Context, id uuid.UUID) (*ent.Workspace, error)
}

// authFailure is one rejected authentication attempt, rendered to the client
// and audited asynchronously.
type authFailure struct {
	status int
	code   string
}

var (
	failMissingCredentials = authFailure{http.StatusUnauthorized, "missing_credentials"}
	failInvalidCredentials = authFailure{http.StatusUnauthorized, "invalid_credentials"}
	failAgentSuspended     = authFailure{http.StatusForbidden, "agent_suspended"}
	failAgentRevoked       = authFailure{http.StatusForbidden, "agent_revoked"}
	failWorkspaceArchived  = authFailure{http.StatusForbidden, "workspace_archived"}
	failWorkspaceSuspended = authFailure{http.StatusForbidden, "workspace_suspended"}
)

// bearerToken extracts the token from an Authorization header. The scheme
// match is case-insensitive; anything malformed reads as absent so the
// response never reveals which part was wrong.
func bearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

// authenticate runs the bearer-auth and workspace checks for one request.
// On failure it renders the error envelope, records an async audit entry
// with the caller IP and the failure code (never the token), and returns a
// non-nil error to stop the pipeline.
func (s *Server) authenticate(c *echo.Context) (*cache.AgentIdentity, error) {
	header := c.Request().Header.Get("Authorization")
	if header == "" {
		return nil, s.rejectAuth(c, failMissingCredentials, nil)
	}
	token, ok := bearerToken(header)
	if !ok {
		return nil, s.rejectAuth(c, failInvalidCredentials, nil)
	}

	identity, err := s.apiKeys.Lookup(c.Request().Context(), services.HashAPIKey(token))
	if err != nil {
		if errors.Is(err, cache.ErrKeyUnknown) {
			return nil, s.rejectAuth(c, failInvalidCredentials, nil)
		}
		return nil, internalJSON(c, err)
	}

	switch identity.Status {
	case "active":
	case "suspended":
		return nil, s.rejectAuth(c, failAgentSuspended, &identity.AgentID)
	default:
		return nil, s.rejectAuth(c, failAgentRevoked, &identity.AgentID)
	}

	ws, err := s.workspaces.Get(c.Request().Context(), identity.WorkspaceID)
	if err != nil {
		return nil, internalJSON(c, err)
	}
	switch ws.Status {
	case workspace.StatusArchived:
		return nil, s.rejectAuth(c, failWorkspaceArchived, &identity.AgentID)
	case workspace.StatusSuspended:
		return nil, s.rejectAuth(c, failWorkspaceSuspended, &identity.AgentID)
	}

	return identity, nil
}

// rejectAuth renders the failure envelope and files the audit entry.
func (s *Server) rejectAuth(c *echo.Context, failure authFailure, agentID *uuid.UUID) error {
	s.auditAsync(services.AuditInput{
		Action:       "gateway.auth_rejected",
		ResourceType: "registered_agent",
		ActorID:      agentID,
		IP:           clientIP(c),
		Metadata:     map[string]any{"reason": failure.code},
	})
	return errorJSON(c, failure.status, failure.code, authMessage(failure.code))
}

func authMessage(code string) string {
	switch code {
	case "missing_credentials":
		return "authorization header is required"
	case "agent_suspended":
		return "agent is suspended"
	case "agent_revoked":
		return "agent is revoked"
	case "workspace_archived":
		return "workspace is archived"
	case "workspace_suspended":
		return "workspace is suspended"
	default:
		return "invalid credentials"
	}
}
