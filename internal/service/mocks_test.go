package service_test

import (
	"context"
	"io"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/wanderwise/backend/internal/domain"
	"github.com/wanderwise/backend/internal/repo"
)

// mockUserRepo is a hand-written test double for repo.UserRepo.
// Each method is a function field; set only the ones your test needs.
type mockUserRepo struct {
	create         func(ctx context.Context, u domain.User) (domain.User, error)
	getByID        func(ctx context.Context, id string) (domain.User, error)
	getByEmail     func(ctx context.Context, email string) (domain.User, error)
	claimUnowned   func(ctx context.Context, c repo.Claim) (domain.User, error)
	update         func(ctx context.Context, id string, patch domain.UserPatch) (domain.User, error)
	updateEmail    func(ctx context.Context, id, email string) (domain.User, error)
	emailTaken     func(ctx context.Context, email, exceptID string) (bool, error)
	delete         func(ctx context.Context, id string) error
	listPaged      func(ctx context.Context, f domain.UserFilter, p domain.PaginationParams) ([]domain.User, int64, error)
	touchLastLogin func(ctx context.Context, id string) error
	upsert         func(ctx context.Context, u domain.User) error
}

func (m *mockUserRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	return m.create(ctx, u)
}
func (m *mockUserRepo) GetByID(ctx context.Context, id string) (domain.User, error) {
	return m.getByID(ctx, id)
}
func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	return m.getByEmail(ctx, email)
}
func (m *mockUserRepo) ClaimUnowned(ctx context.Context, c repo.Claim) (domain.User, error) {
	return m.claimUnowned(ctx, c)
}
func (m *mockUserRepo) Update(ctx context.Context, id string, patch domain.UserPatch) (domain.User, error) {
	return m.update(ctx, id, patch)
}
func (m *mockUserRepo) UpdateEmail(ctx context.Context, id, email string) (domain.User, error) {
	return m.updateEmail(ctx, id, email)
}
func (m *mockUserRepo) EmailTaken(ctx context.Context, email, exceptID string) (bool, error) {
	return m.emailTaken(ctx, email, exceptID)
}
func (m *mockUserRepo) Delete(ctx context.Context, id string) error {
	return m.delete(ctx, id)
}
func (m *mockUserRepo) ListPaged(ctx context.Context, f domain.UserFilter, p domain.PaginationParams) ([]domain.User, int64, error) {
	return m.listPaged(ctx, f, p)
}
func (m *mockUserRepo) TouchLastLogin(ctx context.Context, id string) error {
	return m.touchLastLogin(ctx, id)
}
func (m *mockUserRepo) Upsert(ctx context.Context, u domain.User) error {
	return m.upsert(ctx, u)
}

var _ repo.UserRepo = (*mockUserRepo)(nil)

// mockAccountRepo is a hand-written test double for repo.AccountRepo.
type mockAccountRepo struct {
	create      func(ctx context.Context, a domain.Account) error
	upsert      func(ctx context.Context, a domain.Account) error
	getByEmail  func(ctx context.Context, email string) (domain.Account, error)
	updateEmail func(ctx context.Context, userID, email string) error
}

func (m *mockAccountRepo) Create(ctx context.Context, a domain.Account) error {
	return m.create(ctx, a)
}
func (m *mockAccountRepo) Upsert(ctx context.Context, a domain.Account) error {
	return m.upsert(ctx, a)
}
func (m *mockAccountRepo) GetByEmail(ctx context.Context, email string) (domain.Account, error) {
	return m.getByEmail(ctx, email)
}
func (m *mockAccountRepo) UpdateEmail(ctx context.Context, userID, email string) error {
	return m.updateEmail(ctx, userID, email)
}

var _ repo.AccountRepo = (*mockAccountRepo)(nil)

// mockTransactor runs fn directly against the given repos. It records
// whether a transaction was opened but cannot roll anything back.
type mockTransactor struct {
	repos  repo.Repos
	opened int
}

func (m *mockTransactor) WithinTx(_ context.Context, fn func(repo.Repos) error) error {
	m.opened++
	return fn(m.repos)
}

var _ repo.Transactor = (*mockTransactor)(nil)

// memUserRepo is an in-memory repo.UserRepo that honors the unique email
// index and the conditional claim the same way the Postgres repo does.
// Only the methods the traveler resolver needs are implemented.
type memUserRepo struct {
	repo.UserRepo

	mu      sync.Mutex
	byID    map[string]domain.User
	writes  int
	lookups int
}

func newMemUserRepo(seed ...domain.User) *memUserRepo {
	m := &memUserRepo{byID: map[string]domain.User{}}
	for _, u := range seed {
		m.byID[u.ID] = clone(u)
	}
	return m
}

func (m *memUserRepo) GetByEmail(_ context.Context, email string) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lookups++
	for _, u := range m.byID {
		if u.Email == email {
			return clone(u), nil
		}
	}
	return domain.User{}, domain.ErrNotFound
}

func (m *memUserRepo) Create(_ context.Context, u domain.User) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.byID {
		if existing.Email == u.Email {
			return domain.User{}, domain.ErrConflict
		}
	}
	m.writes++
	m.byID[u.ID] = clone(u)
	return clone(u), nil
}

func (m *memUserRepo) ClaimUnowned(_ context.Context, c repo.Claim) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[c.UserID]
	if !ok || u.TravelAgentID != nil {
		return domain.User{}, domain.ErrNotFound
	}
	m.writes++
	agent := c.AgentID
	u.TravelAgentID = &agent
	u.Name = c.Name
	u.Profile = maps.Clone(c.Profile)
	u.IsActive = c.IsActive
	m.byID[u.ID] = u
	return clone(u), nil
}

// get returns the stored record by ID for assertions.
func (m *memUserRepo) get(id string) domain.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return clone(m.byID[id])
}

func (m *memUserRepo) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.byID)
}

func clone(u domain.User) domain.User {
	u.Profile = maps.Clone(u.Profile)
	u.Roles = slices.Clone(u.Roles)
	if u.TravelAgentID != nil {
		id := *u.TravelAgentID
		u.TravelAgentID = &id
	}
	return u
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
