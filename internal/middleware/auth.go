package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/wanderwise/backend/internal/domain"
)

// Authenticator resolves a raw bearer token to the calling principal.
// It returns an error wrapping domain.ErrUnauthorized or domain.ErrForbidden
// when the caller must be turned away. *service.AuthService satisfies it.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (domain.Principal, error)
}

type ctxKey struct{}

// WithPrincipal returns a copy of ctx carrying p.
func WithPrincipal(ctx context.Context, p domain.Principal) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// PrincipalFrom returns the principal stored by NewAuthenticator, if any.
func PrincipalFrom(ctx context.Context) (domain.Principal, bool) {
	p, ok := ctx.Value(ctxKey{}).(domain.Principal)
	return p, ok && p.UserID != ""
}

// NewAuthenticator returns a middleware that reads an "Authorization: Bearer"
// token and stores the resulting principal in the request context.
// Requests without a token pass through unauthenticated; routes that need a
// caller add RequireAuth. A token that is present but invalid is rejected
// with 401, an inactive account with 403. Other failures are logged to log
// and answered with 500.
func NewAuthenticator(auth Authenticator, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			if h == "" {
				next.ServeHTTP(w, r)
				return
			}
			tok, ok := strings.CutPrefix(h, "Bearer ")
			if !ok || strings.TrimSpace(tok) == "" {
				writeError(w, http.StatusUnauthorized, "unauthorized", "malformed authorization header")
				return
			}

			p, err := auth.Authenticate(r.Context(), strings.TrimSpace(tok))
			switch {
			case errors.Is(err, domain.ErrForbidden):
				writeError(w, http.StatusForbidden, "forbidden", "account is inactive")
				return
			case errors.Is(err, domain.ErrUnauthorized):
				writeError(w, http.StatusUnauthorized, "unauthorized", "invalid or expired token")
				return
			case err != nil:
				log.ErrorContext(r.Context(), "authentication failed", "error", err)
				writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
				return
			}
			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), p)))
		})
	}
}

// RequireAuth blocks requests that carry no authenticated principal.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := PrincipalFrom(r.Context()); !ok {
			writeError(w, http.StatusUnauthorized, "unauthorized", "authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAnyRole allows the request only if the principal holds at least one
// of roles. With no roles it only requires authentication.
func RequireAnyRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, _ := PrincipalFrom(r.Context())
			if len(roles) > 0 && !p.HasAnyRole(roles...) {
				writeError(w, http.StatusForbidden, "forbidden", "insufficient permissions")
				return
			}
			next.ServeHTTP(w, r)
		}))
	}
}

// RequireSelfOrAnyRole allows the request if the {id} URL parameter is the
// principal's own user ID, or the principal holds one of roles.
func RequireSelfOrAnyRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, _ := PrincipalFrom(r.Context())
			if p.UserID != chi.URLParam(r, "id") && !p.HasAnyRole(roles...) {
				writeError(w, http.StatusForbidden, "forbidden", "insufficient permissions")
				return
			}
			next.ServeHTTP(w, r)
		}))
	}
}

// writeError writes the API's standard error envelope.
func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]string{"code": code, "message": message},
	})
}
