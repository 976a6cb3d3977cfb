// Package service contains the business logic for the WanderWise backend.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here. Services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/wanderwise/backend/internal/domain"
	"github.com/wanderwise/backend/internal/repo"
)

// errLostRace is reported when a claim's conditional write matched no row and
// a re-read still shows the traveler unowned (or gone), so no outcome can be
// decided without a second write.
var errLostRace = errors.New("traveler changed while being claimed")

// TravelerService decides whether an agent creates a new traveler, claims an
// existing unowned one, or is rejected because the traveler already has an
// owner. It performs no authorization: callers decide who may invoke it.
type TravelerService struct {
	users repo.UserRepo
	log   *slog.Logger
	newID func() string
}

// NewTravelerService constructs a TravelerService backed by the provided UserRepo.
func NewTravelerService(users repo.UserRepo, log *slog.Logger) *TravelerService {
	return &TravelerService{users: users, log: log, newID: uuid.NewString}
}

// Resolve creates or claims the traveler identified by req.Email on behalf of
// requesterID.
//
// Rejections (already owned by the requester or by another agent) are
// successful results. Store failures return an error wrapping
// domain.ErrLookupFailed or domain.ErrWriteFailed together with the store
// error; the result then carries the matching outcome and no user.
// Invalid input returns domain.ErrValidation before any store access.
func (s *TravelerService) Resolve(ctx context.Context, requesterID string, req domain.ClaimRequest) (domain.ClaimResult, error) {
	req, err := normalizeClaim(requesterID, req)
	if err != nil {
		return domain.ClaimResult{}, err
	}

	res, err := s.resolve(ctx, requesterID, req)
	if err != nil {
		s.log.ErrorContext(ctx, "traveler claim failed",
			"requester_id", requesterID, "email", req.Email, "outcome", res.Outcome, "error", err)
		return res, fmt.Errorf("service.TravelerService.Resolve: %w", err)
	}

	s.log.InfoContext(ctx, "traveler claim resolved",
		"requester_id", requesterID, "email", req.Email, "outcome", res.Outcome, "user_id", res.User.ID)
	return res, nil
}

func (s *TravelerService) resolve(ctx context.Context, requesterID string, req domain.ClaimRequest) (domain.ClaimResult, error) {
	existing, err := s.users.GetByEmail(ctx, req.Email)
	if errors.Is(err, domain.ErrNotFound) {
		return s.create(ctx, requesterID, req)
	}
	if err != nil {
		return lookupFailed(err)
	}

	if res, owned := ownership(existing, requesterID); owned {
		return res, nil
	}
	return s.claim(ctx, requesterID, existing, req)
}

// create inserts a new traveler owned by the requester. The unique email
// index turns a concurrent create of the same email into domain.ErrConflict,
// after which the winner's record decides the outcome.
func (s *TravelerService) create(ctx context.Context, requesterID string, req domain.ClaimRequest) (domain.ClaimResult, error) {
	owner := requesterID
	u := domain.User{
		ID:            s.newID(),
		Email:         req.Email,
		Name:          req.Name,
		Roles:         []string{domain.RoleTraveler},
		IsActive:      boolOr(req.IsActive, true),
		Profile:       mergeClaimProfile(nil, req),
		TravelAgentID: &owner,
	}

	created, err := s.users.Create(ctx, u)
	if errors.Is(err, domain.ErrConflict) {
		current, err := s.users.GetByEmail(ctx, req.Email)
		if err != nil {
			return lookupFailed(err)
		}
		if res, owned := ownership(current, requesterID); owned {
			return res, nil
		}
		return s.claim(ctx, requesterID, current, req)
	}
	if err != nil {
		return writeFailed(err)
	}
	return domain.ClaimResult{Outcome: domain.OutcomeCreated, User: created}, nil
}

// claim attaches the unowned traveler existing to the requester with a
// single conditional write. If another agent got there first the write
// matches no row and the re-read record decides the outcome.
func (s *TravelerService) claim(ctx context.Context, requesterID string, existing domain.User, req domain.ClaimRequest) (domain.ClaimResult, error) {
	updated, err := s.users.ClaimUnowned(ctx, repo.Claim{
		UserID:   existing.ID,
		AgentID:  requesterID,
		Name:     req.Name,
		Profile:  mergeClaimProfile(existing.Profile, req),
		IsActive: boolOr(req.IsActive, existing.IsActive),
	})
	if err == nil {
		return domain.ClaimResult{Outcome: domain.OutcomeClaimed, User: updated}, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return writeFailed(err)
	}

	current, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return lookupFailed(err)
	}
	if res, owned := ownership(current, requesterID); owned {
		return res, nil
	}
	return writeFailed(errLostRace)
}

// ownership classifies an existing record. owned is false only when the
// traveler has no agent and may be claimed.
func ownership(u domain.User, requesterID string) (res domain.ClaimResult, owned bool) {
	switch {
	case u.TravelAgentID == nil:
		return domain.ClaimResult{}, false
	case *u.TravelAgentID == requesterID:
		return domain.ClaimResult{Outcome: domain.OutcomeRejectedAlreadyOwnedByYou, User: u}, true
	default:
		return domain.ClaimResult{Outcome: domain.OutcomeRejectedOwnedByOther, User: u}, true
	}
}

// mergeClaimProfile overlays the supplied profile on the stored one (nil for
// a new traveler). phone and notes take the top-level value when non-empty,
// else whatever the supplied profile holds under that key, else the stored
// value. Empty strings become null.
func mergeClaimProfile(stored domain.Profile, req domain.ClaimRequest) domain.Profile {
	merged := stored.Merge(req.Profile)
	merged["phone"] = firstPresent(req.Phone, req.Profile, stored, "phone")
	merged["notes"] = firstPresent(req.Notes, req.Profile, stored, "notes")
	return merged
}

// firstPresent picks the value for key: supplied if non-empty, then the
// supplied profile's entry if the key is there at all, then prior's.
func firstPresent(supplied string, profile, prior domain.Profile, key string) any {
	if supplied != "" {
		return supplied
	}
	v, ok := profile[key]
	if !ok {
		v = prior[key]
	}
	if s, ok := v.(string); ok && s == "" {
		return nil
	}
	return v
}

// normalizeClaim trims the identifying fields and enforces the required ones.
func normalizeClaim(requesterID string, req domain.ClaimRequest) (domain.ClaimRequest, error) {
	req.Email = strings.TrimSpace(req.Email)
	req.Name = strings.TrimSpace(req.Name)

	var missing []string
	if strings.TrimSpace(requesterID) == "" {
		missing = append(missing, "requester")
	}
	if req.Email == "" {
		missing = append(missing, "email")
	}
	if req.Name == "" {
		missing = append(missing, "name")
	}
	if len(missing) > 0 {
		return req, fmt.Errorf("%w: missing required fields: %s", domain.ErrValidation, strings.Join(missing, ", "))
	}
	return req, nil
}

func lookupFailed(err error) (domain.ClaimResult, error) {
	return domain.ClaimResult{Outcome: domain.OutcomeLookupFailed}, fmt.Errorf("%w: %w", domain.ErrLookupFailed, err)
}

func writeFailed(err error) (domain.ClaimResult, error) {
	return domain.ClaimResult{Outcome: domain.OutcomeWriteFailed}, fmt.Errorf("%w: %w", domain.ErrWriteFailed, err)
}

// optional maps an empty string to nil so it is stored as JSON null.
func boolOr(b *bool, fallback bool) bool {
	if b == nil {
		return fallback
	}
	return *b
}
