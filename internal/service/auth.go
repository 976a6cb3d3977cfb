package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/wanderwise/backend/internal/auth"
	"github.com/wanderwise/backend/internal/domain"
	"github.com/wanderwise/backend/internal/repo"
)

// TokenIssuer signs and verifies bearer tokens. *auth.Tokens satisfies it.
type TokenIssuer interface {
	Issue(u domain.User) (string, time.Time, error)
	Parse(raw string) (domain.Principal, error)
}

// Session is the result of a successful sign-in.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      domain.User
}

// AuthService signs users in with email and password and resolves bearer
// tokens back to the calling principal.
type AuthService struct {
	users    repo.UserRepo
	accounts repo.AccountRepo
	tokens   TokenIssuer
	log      *slog.Logger
}

// NewAuthService constructs an AuthService.
func NewAuthService(users repo.UserRepo, accounts repo.AccountRepo, tokens TokenIssuer, log *slog.Logger) *AuthService {
	return &AuthService{users: users, accounts: accounts, tokens: tokens, log: log}
}

// SignIn verifies the credentials and issues a token.
// Unknown email and wrong password both return domain.ErrUnauthorized so the
// response does not reveal which accounts exist. An inactive user gets
// domain.ErrForbidden.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (Session, error) {
	acct, err := s.accounts.GetByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, domain.ErrNotFound) {
		return Session{}, fmt.Errorf("service.AuthService.SignIn: %w: invalid login credentials", domain.ErrUnauthorized)
	}
	if err != nil {
		return Session{}, fmt.Errorf("service.AuthService.SignIn: %w", err)
	}
	if !auth.CheckPassword(acct.PasswordHash, password) {
		return Session{}, fmt.Errorf("service.AuthService.SignIn: %w: invalid login credentials", domain.ErrUnauthorized)
	}

	u, err := s.users.GetByID(ctx, acct.UserID)
	if err != nil {
		return Session{}, fmt.Errorf("service.AuthService.SignIn: %w", err)
	}
	if !u.IsActive {
		return Session{}, fmt.Errorf("service.AuthService.SignIn: %w: account is inactive", domain.ErrForbidden)
	}

	token, exp, err := s.tokens.Issue(u)
	if err != nil {
		return Session{}, fmt.Errorf("service.AuthService.SignIn: %w", err)
	}

	// A failed timestamp update must not block the login.
	if err := s.users.TouchLastLogin(ctx, u.ID); err != nil {
		s.log.WarnContext(ctx, "failed to record last login", "user_id", u.ID, "error", err)
	}
	return Session{Token: token, ExpiresAt: exp, User: u}, nil
}

// Authenticate resolves a raw bearer token to its principal. The token only
// names the user: the user is re-read on every call, so roles and the active
// flag always come from the store and a demoted, deactivated or deleted user
// loses access immediately.
//
// Returns domain.ErrUnauthorized for an invalid token or a user that no
// longer exists, and domain.ErrForbidden for an inactive user.
func (s *AuthService) Authenticate(ctx context.Context, raw string) (domain.Principal, error) {
	claimed, err := s.tokens.Parse(raw)
	if err != nil {
		return domain.Principal{}, fmt.Errorf("service.AuthService.Authenticate: %w", err)
	}

	u, err := s.users.GetByID(ctx, claimed.UserID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Principal{}, fmt.Errorf("service.AuthService.Authenticate: %w: user no longer exists", domain.ErrUnauthorized)
	}
	if err != nil {
		return domain.Principal{}, fmt.Errorf("service.AuthService.Authenticate: %w", err)
	}
	if !u.IsActive {
		return domain.Principal{}, fmt.Errorf("service.AuthService.Authenticate: %w: account is inactive", domain.ErrForbidden)
	}
	return domain.Principal{UserID: u.ID, Email: u.Email, Roles: u.Roles}, nil
}

// AccountService provisions login credentials for users created outside the
// staff-account flow, such as travelers created by an agent.
type AccountService struct {
	accounts repo.AccountRepo
	hash     func(string) (string, error)
}

// NewAccountService constructs an AccountService.
func NewAccountService(accounts repo.AccountRepo) *AccountService {
	return &AccountService{accounts: accounts, hash: auth.HashPassword}
}

// Provision stores (or replaces) credentials for userID.
// Returns domain.ErrValidation if the password is too short and
// domain.ErrConflict if the email belongs to another account.
func (s *AccountService) Provision(ctx context.Context, userID, email, password string) error {
	if err := ValidatePassword(password); err != nil {
		return err
	}
	hash, err := s.hash(password)
	if err != nil {
		return fmt.Errorf("service.AccountService.Provision: hash password: %w", err)
	}
	if err := s.accounts.Upsert(ctx, domain.Account{UserID: userID, Email: email, PasswordHash: hash}); err != nil {
		return fmt.Errorf("service.AccountService.Provision: %w", err)
	}
	return nil
}

// ValidatePassword enforces the password policy. The upper bound is bcrypt's
// input limit; anything longer cannot be hashed.
func ValidatePassword(pw string) error {
	if len(pw) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, minPasswordLength)
	}
	if len(pw) > maxPasswordBytes {
		return fmt.Errorf("%w: password must be at most %d bytes", domain.ErrValidation, maxPasswordBytes)
	}
	return nil
}
