package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wanderwise/backend/internal/config"
	"github.com/wanderwise/backend/internal/domain"
	"github.com/wanderwise/backend/internal/handler"
	"github.com/wanderwise/backend/internal/handler/gen"
	"github.com/wanderwise/backend/internal/service"
)

// mockResolver is a test double for handler.TravelerResolver.
type mockResolver struct {
	resolve func(ctx context.Context, requesterID string, req domain.ClaimRequest) (domain.ClaimResult, error)
}

func (m *mockResolver) Resolve(ctx context.Context, requesterID string, req domain.ClaimRequest) (domain.ClaimResult, error) {
	return m.resolve(ctx, requesterID, req)
}

var _ handler.TravelerResolver = (*mockResolver)(nil)

// mockProvisioner records the credentials it was asked to store.
type mockProvisioner struct {
	err    error
	calls  int
	userID string
}

func (m *mockProvisioner) Provision(_ context.Context, userID, _, _ string) error {
	m.calls++
	m.userID = userID
	return m.err
}

// mockUserManager is a test double for handler.UserManager.
// Set only the method fields your test needs.
type mockUserManager struct {
	create      func(ctx context.Context, nu domain.NewUser) (domain.User, error)
	getByID     func(ctx context.Context, id string) (domain.User, error)
	list        func(ctx context.Context, f domain.UserFilter, p domain.PaginationParams) (domain.Page[domain.User], error)
	update      func(ctx context.Context, id string, patch domain.UserPatch) (domain.User, error)
	updateEmail func(ctx context.Context, id, email string) (domain.EmailChange, error)
	delete      func(ctx context.Context, id string) error
}

func (m *mockUserManager) Create(ctx context.Context, nu domain.NewUser) (domain.User, error) {
	return m.create(ctx, nu)
}
func (m *mockUserManager) GetByID(ctx context.Context, id string) (domain.User, error) {
	return m.getByID(ctx, id)
}
func (m *mockUserManager) List(ctx context.Context, f domain.UserFilter, p domain.PaginationParams) (domain.Page[domain.User], error) {
	return m.list(ctx, f, p)
}
func (m *mockUserManager) Update(ctx context.Context, id string, patch domain.UserPatch) (domain.User, error) {
	return m.update(ctx, id, patch)
}
func (m *mockUserManager) UpdateEmail(ctx context.Context, id, email string) (domain.EmailChange, error) {
	return m.updateEmail(ctx, id, email)
}
func (m *mockUserManager) Delete(ctx context.Context, id string) error {
	return m.delete(ctx, id)
}

var _ handler.UserManager = (*mockUserManager)(nil)

type mockSignIn struct {
	signIn func(ctx context.Context, email, password string) (service.Session, error)
}

func (m *mockSignIn) SignIn(ctx context.Context, email, password string) (service.Session, error) {
	return m.signIn(ctx, email, password)
}

// tokenTable authenticates a fixed set of bearer tokens.
type tokenTable map[string]domain.Principal

func (tt tokenTable) Authenticate(_ context.Context, token string) (domain.Principal, error) {
	if p, ok := tt[token]; ok {
		return p, nil
	}
	return domain.Principal{}, domain.ErrUnauthorized
}

const (
	adminToken    = "admin-token"
	agentToken    = "agent-token"
	travelerToken = "traveler-token"
)

var testTokens = tokenTable{
	adminToken:    {UserID: "admin-1", Email: "admin@ex.com", Roles: []string{domain.RoleAdmin}},
	agentToken:    {UserID: "agentA", Email: "agent@ex.com", Roles: []string{domain.RoleTravelAgent}},
	travelerToken: {UserID: "trav-1", Email: "trav@ex.com", Roles: []string{domain.RoleTraveler}},
}

// newHTTPHandler wires a Server with the given deps into the full router,
// mirroring how main.go wires it in production.
func newHTTPHandler(deps handler.Deps, policy string) http.Handler {
	deps.Log = slog.New(slog.NewTextHandler(io.Discard, nil))
	return handler.NewRouter(handler.NewServer(deps), testTokens, handler.RouterOptions{
		Log:                deps.Log,
		CORSOrigins:        []string{"http://localhost:5173"},
		MaxBodyBytes:       1 << 20,
		ClaimPolicy:        policy,
		LoginRatePerMinute: 100,
	})
}

func do(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[gen.ErrorResponse](t, rec).Error.Code
}

func strPtr(s string) *string { return &s }

var agentsPolicy = config.ClaimPolicyAgents
