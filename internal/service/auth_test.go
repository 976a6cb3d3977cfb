package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderwise/backend/internal/auth"
	"github.com/wanderwise/backend/internal/domain"
	"github.com/wanderwise/backend/internal/service"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func signInFixture(t *testing.T, active bool) (*mockUserRepo, *mockAccountRepo, *bool) {
	t.Helper()
	hash, err := auth.HashPassword("correct-horse")
	require.NoError(t, err)

	touched := false
	users := &mockUserRepo{
		getByID: func(_ context.Context, id string) (domain.User, error) {
			return domain.User{ID: id, Email: "agent@ex.com", Roles: []string{domain.RoleTravelAgent}, IsActive: active}, nil
		},
		touchLastLogin: func(context.Context, string) error {
			touched = true
			return nil
		},
	}
	accounts := &mockAccountRepo{
		getByEmail: func(_ context.Context, email string) (domain.Account, error) {
			if email != "agent@ex.com" {
				return domain.Account{}, domain.ErrNotFound
			}
			return domain.Account{UserID: "u1", Email: email, PasswordHash: hash}, nil
		},
	}
	return users, accounts, &touched
}

func TestAuthService_SignIn_Valid(t *testing.T) {
	users, accounts, touched := signInFixture(t, true)
	tokens := auth.NewTokens(testSecret, time.Hour)
	svc := service.NewAuthService(users, accounts, tokens, discardLogger())

	sess, err := svc.SignIn(context.Background(), " agent@ex.com", "correct-horse")

	require.NoError(t, err)
	assert.Equal(t, "u1", sess.User.ID)
	assert.True(t, *touched)

	p, err := svc.Authenticate(context.Background(), sess.Token)
	require.NoError(t, err)
	assert.Equal(t, "u1", p.UserID)
	assert.True(t, p.HasAnyRole(domain.RoleTravelAgent))
}

func TestAuthService_SignIn_Rejected(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		active   bool
		wantErr  error
	}{
		{"unknown email", "who@ex.com", "correct-horse", true, domain.ErrUnauthorized},
		{"wrong password", "agent@ex.com", "wrong", true, domain.ErrUnauthorized},
		{"inactive user", "agent@ex.com", "correct-horse", false, domain.ErrForbidden},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			users, accounts, touched := signInFixture(t, tc.active)
			svc := service.NewAuthService(users, accounts, auth.NewTokens(testSecret, time.Hour), discardLogger())

			_, err := svc.SignIn(context.Background(), tc.email, tc.password)

			assert.ErrorIs(t, err, tc.wantErr)
			assert.False(t, *touched)
		})
	}
}

func TestAuthService_SignIn_LastLoginFailureDoesNotBlock(t *testing.T) {
	users, accounts, _ := signInFixture(t, true)
	users.touchLastLogin = func(context.Context, string) error { return errors.New("db down") }
	svc := service.NewAuthService(users, accounts, auth.NewTokens(testSecret, time.Hour), discardLogger())

	_, err := svc.SignIn(context.Background(), "agent@ex.com", "correct-horse")

	assert.NoError(t, err)
}

func TestAuthService_Authenticate_Garbage(t *testing.T) {
	svc := service.NewAuthService(nil, nil, auth.NewTokens(testSecret, time.Hour), discardLogger())

	_, err := svc.Authenticate(context.Background(), "not-a-token")

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthService_Authenticate_UsesStoredAccount(t *testing.T) {
	tokens := auth.NewTokens(testSecret, time.Hour)
	// Issued while the user was an admin.
	raw, _, err := tokens.Issue(domain.User{ID: "u1", Email: "agent@ex.com", Roles: []string{domain.RoleAdmin}})
	require.NoError(t, err)

	storeErr := errors.New("connection refused")
	tests := []struct {
		name      string
		getByID   func(context.Context, string) (domain.User, error)
		wantErr   error
		wantRoles []string
	}{
		{
			name: "demoted user gets stored roles",
			getByID: func(_ context.Context, id string) (domain.User, error) {
				return domain.User{ID: id, Email: "agent@ex.com", Roles: []string{domain.RoleTraveler}, IsActive: true}, nil
			},
			wantRoles: []string{domain.RoleTraveler},
		},
		{
			name: "deleted user",
			getByID: func(context.Context, string) (domain.User, error) {
				return domain.User{}, domain.ErrNotFound
			},
			wantErr: domain.ErrUnauthorized,
		},
		{
			name: "deactivated user",
			getByID: func(_ context.Context, id string) (domain.User, error) {
				return domain.User{ID: id, Roles: []string{domain.RoleAdmin}, IsActive: false}, nil
			},
			wantErr: domain.ErrForbidden,
		},
		{
			name: "store failure",
			getByID: func(context.Context, string) (domain.User, error) {
				return domain.User{}, storeErr
			},
			wantErr: storeErr,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := service.NewAuthService(&mockUserRepo{getByID: tc.getByID}, nil, tokens, discardLogger())

			p, err := svc.Authenticate(context.Background(), raw)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				if tc.wantErr == storeErr {
					assert.NotErrorIs(t, err, domain.ErrUnauthorized)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "u1", p.UserID)
			assert.Equal(t, tc.wantRoles, p.Roles)
			assert.False(t, p.HasAnyRole(domain.RoleAdmin))
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name string
		pw   string
		ok   bool
	}{
		{"seven bytes", strings.Repeat("a", 7), false},
		{"eight bytes", strings.Repeat("a", 8), true},
		{"72 bytes", strings.Repeat("a", 72), true},
		{"73 bytes", strings.Repeat("a", 73), false},
		// 24 three-byte runes are 72 bytes; one more tips it over.
		{"multibyte at limit", strings.Repeat("€", 24), true},
		{"multibyte over limit", strings.Repeat("€", 25), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := service.ValidatePassword(tc.pw)
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestAccountService_Provision(t *testing.T) {
	var stored domain.Account
	svc := service.NewAccountService(&mockAccountRepo{
		upsert: func(_ context.Context, a domain.Account) error {
			stored = a
			return nil
		},
	})

	err := svc.Provision(context.Background(), "u1", "t@ex.com", "long-enough")

	require.NoError(t, err)
	assert.Equal(t, "u1", stored.UserID)
	assert.True(t, auth.CheckPassword(stored.PasswordHash, "long-enough"))
}

func TestAccountService_Provision_ShortPassword(t *testing.T) {
	svc := service.NewAccountService(&mockAccountRepo{})

	err := svc.Provision(context.Background(), "u1", "t@ex.com", "short")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAccountService_Provision_PasswordTooLong(t *testing.T) {
	upserted := false
	svc := service.NewAccountService(&mockAccountRepo{
		upsert: func(context.Context, domain.Account) error {
			upserted = true
			return nil
		},
	})

	err := svc.Provision(context.Background(), "u1", "t@ex.com", strings.Repeat("x", 73))

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.False(t, upserted)
}
