package handler

import (
	"context"
	"errors"

	"github.com/wanderwise/backend/internal/domain"
	"github.com/wanderwise/backend/internal/handler/gen"
	"github.com/wanderwise/backend/internal/middleware"
	"github.com/wanderwise/backend/internal/service"
)

// ClaimTraveler handles POST /travelers.
// Who may call it is decided by the travelers:claim scope and the router's
// claim policy. The password is consumed here to provision credentials for a
// newly created traveler; the resolver never sees it.
func (s *Server) ClaimTraveler(ctx context.Context, req gen.ClaimTravelerRequestObject) (gen.ClaimTravelerResponseObject, error) {
	body := req.Body
	if body == nil {
		return gen.ClaimTraveler422JSONResponse(requestBody("request body is required")), nil
	}
	if body.Password == "" {
		return gen.ClaimTraveler422JSONResponse(requestBody("missing required fields: password")), nil
	}
	// Checked before Resolve so a password that cannot be stored never
	// leaves a traveler behind without credentials.
	if err := service.ValidatePassword(body.Password); err != nil {
		return gen.ClaimTraveler422JSONResponse(validationBody(err)), nil
	}

	caller, _ := middleware.PrincipalFrom(ctx)
	res, err := s.travelers.Resolve(ctx, caller.UserID, requestToClaim(body))
	switch {
	case errors.Is(err, domain.ErrValidation):
		return gen.ClaimTraveler422JSONResponse(validationBody(err)), nil
	case err != nil:
		return gen.ClaimTraveler500JSONResponse{
			Outcome: gen.ClaimFailureOutcome(failureOutcome(res.Outcome)),
			Message: failureMessage(res.Outcome),
		}, nil
	}

	switch res.Outcome {
	case domain.OutcomeCreated:
		if err := s.accounts.Provision(ctx, res.User.ID, res.User.Email, body.Password); err != nil {
			s.log.ErrorContext(ctx, "failed to provision traveler credentials", "user_id", res.User.ID, "error", err)
			return gen.ClaimTraveler500JSONResponse{
				Outcome: gen.ClaimFailureOutcomeWriteFailed,
				Message: "traveler created but credentials could not be stored",
			}, nil
		}
		return gen.ClaimTraveler201JSONResponse{Outcome: gen.ClaimSuccessOutcomeCreated, User: travelerSummary(res.User)}, nil
	case domain.OutcomeClaimed:
		return gen.ClaimTraveler200JSONResponse{Outcome: gen.ClaimSuccessOutcomeClaimed, User: travelerSummary(res.User)}, nil
	default:
		return gen.ClaimTraveler409JSONResponse{
			Outcome:      gen.ClaimRejectionOutcome(res.Outcome),
			ExistingUser: travelerSummary(res.User),
		}, nil
	}
}

// failureOutcome keeps the wire contract when an error arrives without one.
func failureOutcome(o domain.ClaimOutcome) domain.ClaimOutcome {
	if o == domain.OutcomeLookupFailed {
		return o
	}
	return domain.OutcomeWriteFailed
}

func failureMessage(o domain.ClaimOutcome) string {
	if o == domain.OutcomeLookupFailed {
		return "failed to look up traveler"
	}
	return "failed to save traveler"
}

// --- mapping helpers --------------------------------------------------------

func requestToClaim(body *gen.ClaimRequest) domain.ClaimRequest {
	c := domain.ClaimRequest{
		Email:    string(body.Email),
		Name:     body.Name,
		Phone:    deref(body.Phone),
		Notes:    deref(body.Notes),
		IsActive: body.IsActive,
	}
	if body.Profile != nil {
		c.Profile = domain.Profile(*body.Profile)
	}
	return c
}

func travelerSummary(u domain.User) gen.TravelerSummary {
	roles := u.Roles
	if roles == nil {
		roles = []string{}
	}
	return gen.TravelerSummary{Id: u.ID, Email: u.Email, Name: u.Name, Roles: roles, TravelAgentId: u.TravelAgentID}
}
