package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"

	"github.com/wanderwise/backend/internal/config"
	"github.com/wanderwise/backend/internal/domain"
	"github.com/wanderwise/backend/internal/handler/gen"
	"github.com/wanderwise/backend/internal/middleware"
	"github.com/wanderwise/backend/openapi"
)

// RouterOptions carries the configuration the router needs.
type RouterOptions struct {
	Log                *slog.Logger
	CORSOrigins        []string
	MaxBodyBytes       int64
	ClaimPolicy        string
	LoginRatePerMinute int
}

// claimRoles returns the roles allowed to call POST /travelers under policy.
// An empty list means any authenticated caller.
func claimRoles(policy string) []string {
	if policy == config.ClaimPolicyAny {
		return nil
	}
	return []string{domain.RoleAdmin, domain.RoleTravelAgent}
}

// NewRouter builds the full HTTP handler: the middleware chain, the
// generated API routes and the OpenAPI document.
//
// Middleware is applied in order: RequestID, RealIP, request logger,
// Recoverer, CORS, body limit, sign-in rate limit, bearer authentication.
// RealIP sets r.RemoteAddr from X-Forwarded-For / X-Real-IP, which the
// sign-in rate limiter keys on. Authentication only attaches the caller;
// the authorizer checks each operation's scopes before its body is read.
func NewRouter(s *Server, authn middleware.Authenticator, opts RouterOptions) http.Handler {
	log := opts.Log
	if log == nil {
		log = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(opts.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(opts.MaxBodyBytes))
	r.Use(onlyRoute(http.MethodPost, "/auth/token", httprate.LimitByIP(opts.LoginRatePerMinute, time.Minute)))
	r.Use(middleware.NewAuthenticator(authn, log))

	r.Get("/openapi.yaml", serveOpenAPI)

	// gen.NewStrictHandlerWithOptions adapts our StrictServerInterface
	// implementation to the lower-level ServerInterface chi expects.
	strict := gen.NewStrictHandlerWithOptions(s, nil, gen.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  s.requestError,
		ResponseErrorHandlerFunc: s.responseError,
	})
	r.Mount("/", gen.HandlerWithOptions(strict, gen.ChiServerOptions{
		Middlewares:      []gen.MiddlewareFunc{newAuthorizer(opts.ClaimPolicy)},
		ErrorHandlerFunc: paramError,
	}))

	return r
}

// onlyRoute applies mw to requests for method and path and lets every
// other request bypass it.
func onlyRoute(method, path string, mw func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		limited := mw(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == method && r.URL.Path == path {
				limited.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func serveOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(openapi.Document)
}
