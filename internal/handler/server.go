// Package handler implements the HTTP handlers of the WanderWise admin API.
// All handlers are methods on Server, which implements
// gen.StrictServerInterface. Methods are split into resource files
// (health.go, traveler.go, user.go, auth.go) but share the same Server struct
// so they can access its dependencies. NewRouter mounts them on a chi router.
package handler

import (
	"context"
	"log/slog"

	"github.com/wanderwise/backend/internal/domain"
	"github.com/wanderwise/backend/internal/handler/gen"
	"github.com/wanderwise/backend/internal/service"
)

// TravelerResolver creates or claims travelers on behalf of an agent.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without touching the database or service layer.
type TravelerResolver interface {
	Resolve(ctx context.Context, requesterID string, req domain.ClaimRequest) (domain.ClaimResult, error)
}

// AccountProvisioner stores login credentials for an existing user.
type AccountProvisioner interface {
	Provision(ctx context.Context, userID, email, password string) error
}

// UserManager defines the account operations the user handlers depend on.
type UserManager interface {
	Create(ctx context.Context, nu domain.NewUser) (domain.User, error)
	GetByID(ctx context.Context, id string) (domain.User, error)
	List(ctx context.Context, filter domain.UserFilter, p domain.PaginationParams) (domain.Page[domain.User], error)
	Update(ctx context.Context, id string, patch domain.UserPatch) (domain.User, error)
	UpdateEmail(ctx context.Context, id, newEmail string) (domain.EmailChange, error)
	Delete(ctx context.Context, id string) error
}

// SignInService exchanges credentials for a bearer token.
type SignInService interface {
	SignIn(ctx context.Context, email, password string) (service.Session, error)
}

// Pinger reports whether the database is reachable. *pgxpool.Pool satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Deps are the collaborators of Server. Any field may be nil in tests that
// do not exercise the routes using it.
type Deps struct {
	Travelers TravelerResolver
	Accounts  AccountProvisioner
	Users     UserManager
	SignIn    SignInService
	DB        Pinger
	Log       *slog.Logger
}

// Server implements gen.StrictServerInterface for all API endpoints.
// Wire it through NewRouter, which adapts it with gen.NewStrictHandler.
type Server struct {
	travelers TravelerResolver
	accounts  AccountProvisioner
	users     UserManager
	signIn    SignInService
	db        Pinger
	log       *slog.Logger
}

var _ gen.StrictServerInterface = (*Server)(nil)

// NewServer constructs the Server with all its dependencies.
func NewServer(d Deps) *Server {
	log := d.Log
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		travelers: d.Travelers,
		accounts:  d.Accounts,
		users:     d.Users,
		signIn:    d.SignIn,
		db:        d.DB,
		log:       log,
	}
}
