package handler

import (
	"context"
	"errors"

	"github.com/wanderwise/backend/internal/domain"
	"github.com/wanderwise/backend/internal/handler/gen"
)

// SignIn handles POST /auth/token.
func (s *Server) SignIn(ctx context.Context, req gen.SignInRequestObject) (gen.SignInResponseObject, error) {
	if req.Body == nil || req.Body.Email == "" || req.Body.Password == "" {
		return gen.SignIn422JSONResponse(requestBody("email and password are required")), nil
	}

	sess, err := s.signIn.SignIn(ctx, req.Body.Email, req.Body.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			return gen.SignIn401JSONResponse(errorBody("unauthorized", unwrapMessage(err, domain.ErrUnauthorized))), nil
		case errors.Is(err, domain.ErrForbidden):
			return gen.SignIn403JSONResponse(errorBody("forbidden", unwrapMessage(err, domain.ErrForbidden))), nil
		case errors.Is(err, domain.ErrValidation):
			return gen.SignIn422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.SignIn200JSONResponse{Token: sess.Token, ExpiresAt: sess.ExpiresAt, User: userToResponse(sess.User)}, nil
}
