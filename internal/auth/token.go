package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/wanderwise/backend/internal/domain"
)

// Claims is the JWT payload. Subject carries the user ID.
type Claims struct {
	Email string   `json:"email"`
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// Tokens issues and parses bearer tokens signed with a shared secret.
type Tokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokens returns a Tokens signing with secret; issued tokens expire after ttl.
func NewTokens(secret string, ttl time.Duration) *Tokens {
	return &Tokens{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token for u.
func (t *Tokens) Issue(u domain.User) (string, time.Time, error) {
	now := t.now()
	exp := now.Add(t.ttl)
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Email: u.Email,
		Roles: u.Roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})
	signed, err := tok.SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("auth.Tokens.Issue: %w", err)
	}
	return signed, exp, nil
}

// Parse verifies raw and returns the caller it identifies.
// Any failure (bad signature, expired, wrong algorithm, no subject) is
// reported as domain.ErrUnauthorized.
func (t *Tokens) Parse(raw string) (domain.Principal, error) {
	var c Claims
	_, err := jwt.ParseWithClaims(raw, &c, func(*jwt.Token) (any, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return domain.Principal{}, fmt.Errorf("auth.Tokens.Parse: %w: %w", domain.ErrUnauthorized, err)
	}
	if c.Subject == "" {
		return domain.Principal{}, fmt.Errorf("auth.Tokens.Parse: %w: %w", domain.ErrUnauthorized, errors.New("token has no subject"))
	}
	return domain.Principal{UserID: c.Subject, Email: c.Email, Roles: c.Roles}, nil
}
