package handler

import (
	"net/http"

	"github.com/wanderwise/backend/internal/domain"
	"github.com/wanderwise/backend/internal/handler/gen"
	"github.com/wanderwise/backend/internal/middleware"
)

// Permission scopes declared on the bearerAuth requirements in openapi.yaml.
const (
	scopeClaimTravelers = "travelers:claim"
	scopeManageUsers    = "users:manage"
	scopeReadUser       = "users:read"
)

// newAuthorizer enforces the bearerAuth scopes that the generated wrapper
// stores in the request context. Operations declared with `security: []`
// carry no scopes and pass through; every other operation needs a caller,
// then every guard its scopes name. An unknown scope denies the request.
// It runs before the strict handler decodes the body.
func newAuthorizer(claimPolicy string) gen.MiddlewareFunc {
	guards := map[string]func(http.Handler) http.Handler{
		scopeClaimTravelers: middleware.RequireAnyRole(claimRoles(claimPolicy)...),
		scopeManageUsers:    middleware.RequireAnyRole(domain.RoleAdmin),
		scopeReadUser:       middleware.RequireSelfOrAnyRole(domain.RoleAdmin),
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			scopes, secured := r.Context().Value(gen.BearerAuthScopes).([]string)
			if !secured {
				next.ServeHTTP(w, r)
				return
			}
			h := next
			for _, scope := range scopes {
				guard, ok := guards[scope]
				if !ok {
					guard = forbidAll
				}
				h = guard(h)
			}
			middleware.RequireAuth(h).ServeHTTP(w, r)
		})
	}
}

func forbidAll(http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusForbidden, "forbidden", "insufficient permissions")
	})
}
