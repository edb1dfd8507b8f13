package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/swarmshield/swarmshield/ent"
	"github.com/swarmshield/swarmshield/ent/workspace"
	"github.com/swarmshield/swarmshield/pkg/cache"
	"github.com/swarmshield/swarmshield/pkg/config"
	"github.com/swarmshield/swarmshield/pkg/services"
)

type fakeIdentities struct {
	byHash map[string]*cache.AgentIdentity
}

func (f *fakeIdentities) Lookup(ctx context.Context, keyHash string) (*cache.AgentIdentity, error) {
	if identity, ok := f.byHash[keyHash]; ok {
		return identity, nil
	}
	return nil, cache.ErrKeyUnknown
}

type fakeWorkspaces struct {
	status workspace.Status
}

func (f *fakeWorkspaces) Get(ctx context.Context, id uuid.UUID) (*ent.Workspace, error) {
	return &ent.Workspace{ID: id, Status: f.status}, nil
}

func authTestServer(agentStatus string, wsStatus workspace.Status) (*Server, string) {
	token := "ssk_test_token"
	identities := &fakeIdentities{byHash: map[string]*cache.AgentIdentity{
		services.HashAPIKey(token): {
			AgentID:     uuid.New(),
			WorkspaceID: uuid.New(),
			Name:        "crawler-1",
			AgentType:   "crawler",
			Status:      agentStatus,
		},
	}}
	srv := NewServer(Deps{
		APIKeys:    identities,
		Workspaces: &fakeWorkspaces{status: wsStatus},
	}, config.DefaultServerConfig())
	return srv, token
}

func runAuth(t *testing.T, srv *Server, authorization string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	e.GET("/probe", func(c *echo.Context) error {
		identity, err := srv.authenticate(c)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, map[string]string{"agent": identity.Name})
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
		ok     bool
	}{
		{"standard", "Bearer abc123", "abc123", true},
		{"lowercase scheme", "bearer abc123", "abc123", true},
		{"mixed case scheme", "BeArEr abc123", "abc123", true},
		{"missing token", "Bearer ", "", false},
		{"wrong scheme", "Basic abc123", "", false},
		{"no scheme", "abc123", "", false},
		{"empty", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := bearerToken(tt.header)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAuthenticate(t *testing.T) {
	t.Run("active agent in active workspace passes", func(t *testing.T) {
		srv, token := authTestServer("active", workspace.StatusActive)
		rec := runAuth(t, srv, "Bearer "+token)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "crawler-1")
	})

	t.Run("missing header", func(t *testing.T) {
		srv, _ := authTestServer("active", workspace.StatusActive)
		rec := runAuth(t, srv, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "missing_credentials")
	})

	t.Run("malformed header is indistinguishable from unknown key", func(t *testing.T) {
		srv, _ := authTestServer("active", workspace.StatusActive)

		malformed := runAuth(t, srv, "Basic whatever")
		unknown := runAuth(t, srv, "Bearer not-a-real-key")

		assert.Equal(t, http.StatusUnauthorized, malformed.Code)
		assert.Equal(t, http.StatusUnauthorized, unknown.Code)
		assert.JSONEq(t, malformed.Body.String(), unknown.Body.String())
	})

	t.Run("suspended agent", func(t *testing.T) {
		srv, token := authTestServer("suspended", workspace.StatusActive)
		rec := runAuth(t, srv, "Bearer "+token)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "agent_suspended")
	})

	t.Run("revoked agent", func(t *testing.T) {
		srv, token := authTestServer("revoked", workspace.StatusActive)
		rec := runAuth(t, srv, "Bearer "+token)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "agent_revoked")
	})

	t.Run("archived workspace", func(t *testing.T) {
		srv, token := authTestServer("active", workspace.StatusArchived)
		rec := runAuth(t, srv, "Bearer "+token)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "workspace_archived")
	})

	t.Run("suspended workspace", func(t *testing.T) {
		srv, token := authTestServer("active", workspace.StatusSuspended)
		rec := runAuth(t, srv, "Bearer "+token)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "workspace_suspended")
	})
}
