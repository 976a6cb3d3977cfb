package handler

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/wanderwise/backend/internal/domain"
	"github.com/wanderwise/backend/internal/handler/gen"
)

// CreateUser handles POST /users.
func (s *Server) CreateUser(ctx context.Context, req gen.CreateUserRequestObject) (gen.CreateUserResponseObject, error) {
	if req.Body == nil {
		return gen.CreateUser422JSONResponse(requestBody("request body is required")), nil
	}

	created, err := s.users.Create(ctx, domain.NewUser{
		Email:    string(req.Body.Email),
		Password: req.Body.Password,
		Name:     req.Body.Name,
		Roles:    req.Body.Roles,
		PhotoURL: req.Body.PhotoUrl,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			return gen.CreateUser422JSONResponse(validationBody(err)), nil
		case errors.Is(err, domain.ErrConflict):
			return gen.CreateUser409JSONResponse(conflictBody(err)), nil
		}
		return nil, err
	}

	return gen.CreateUser201JSONResponse(userToResponse(created)), nil
}

// ListUsers handles GET /users.
// Supports ?role=, ?travelAgentId=, ?page= and ?limit= (defaults: page=1, limit=20, max=100).
func (s *Server) ListUsers(ctx context.Context, req gen.ListUsersRequestObject) (gen.ListUsersResponseObject, error) {
	filter := domain.UserFilter{Role: deref(req.Params.Role), TravelAgentID: deref(req.Params.TravelAgentId)}
	params := domain.NewPaginationParams(deref(req.Params.Page), deref(req.Params.Limit))

	result, err := s.users.List(ctx, filter, params)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.ListUsers422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	data := make([]gen.User, len(result.Items))
	for i, u := range result.Items {
		data[i] = userToResponse(u)
	}
	return gen.ListUsers200JSONResponse{
		Data: data,
		Pagination: gen.Pagination{
			Page:  result.Params.Page,
			Limit: result.Params.Limit,
			Total: result.Total,
		},
	}, nil
}

// GetUser handles GET /users/{id}.
func (s *Server) GetUser(ctx context.Context, req gen.GetUserRequestObject) (gen.GetUserResponseObject, error) {
	u, err := s.users.GetByID(ctx, req.Id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetUser404JSONResponse(notFoundBody("user not found")), nil
		}
		return nil, err
	}

	return gen.GetUser200JSONResponse(userToResponse(u)), nil
}

// UpdateUser handles PATCH /users/{id}.
func (s *Server) UpdateUser(ctx context.Context, req gen.UpdateUserRequestObject) (gen.UpdateUserResponseObject, error) {
	patch, err := requestToPatch(req.Body)
	if err != nil {
		return gen.UpdateUser422JSONResponse(requestBody(err.Error())), nil
	}

	u, err := s.users.Update(ctx, req.Id, patch)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return gen.UpdateUser404JSONResponse(notFoundBody("user not found")), nil
		case errors.Is(err, domain.ErrValidation):
			return gen.UpdateUser422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.UpdateUser200JSONResponse(userToResponse(u)), nil
}

// UpdateUserEmail handles PUT /users/{id}/email.
func (s *Server) UpdateUserEmail(ctx context.Context, req gen.UpdateUserEmailRequestObject) (gen.UpdateUserEmailResponseObject, error) {
	if req.Body == nil {
		return gen.UpdateUserEmail422JSONResponse(requestBody("request body is required")), nil
	}

	change, err := s.users.UpdateEmail(ctx, req.Id, req.Body.NewEmail)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return gen.UpdateUserEmail404JSONResponse(notFoundBody("user not found")), nil
		case errors.Is(err, domain.ErrConflict):
			return gen.UpdateUserEmail409JSONResponse(conflictBody(err)), nil
		case errors.Is(err, domain.ErrValidation):
			return gen.UpdateUserEmail422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.UpdateUserEmail200JSONResponse{UserId: change.UserID, OldEmail: change.OldEmail, NewEmail: change.NewEmail}, nil
}

// DeleteUser handles DELETE /users/{id}.
func (s *Server) DeleteUser(ctx context.Context, req gen.DeleteUserRequestObject) (gen.DeleteUserResponseObject, error) {
	if err := s.users.Delete(ctx, req.Id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.DeleteUser404JSONResponse(notFoundBody("user not found")), nil
		}
		return nil, err
	}

	return gen.DeleteUser204Response{}, nil
}

// --- mapping helpers --------------------------------------------------------

// requestToPatch converts the PATCH body. travelAgentId null becomes the
// empty string, which the repo stores as NULL.
func requestToPatch(body *gen.UpdateUserRequest) (domain.UserPatch, error) {
	if body == nil {
		return domain.UserPatch{}, errors.New("request body is required")
	}
	patch := domain.UserPatch{
		Name:     body.Name,
		PhotoURL: body.PhotoUrl,
		IsActive: body.IsActive,
	}
	if body.Roles != nil {
		patch.Roles = *body.Roles
	}
	if body.Profile != nil {
		patch.Profile = domain.Profile(*body.Profile)
	}
	if len(body.TravelAgentId) > 0 {
		var agent *string
		if err := json.Unmarshal(body.TravelAgentId, &agent); err != nil {
			return domain.UserPatch{}, errors.New("travelAgentId must be a string or null")
		}
		if agent == nil {
			agent = new(string)
		}
		patch.TravelAgentID = agent
	}
	return patch, nil
}

// userToResponse converts a domain.User into the generated gen.User type.
func userToResponse(u domain.User) gen.User {
	roles := u.Roles
	if roles == nil {
		roles = []string{}
	}
	profile := u.Profile
	if profile == nil {
		profile = domain.Profile{}
	}
	return gen.User{
		Id:            u.ID,
		Email:         u.Email,
		Name:          u.Name,
		PhotoUrl:      u.PhotoURL,
		Roles:         roles,
		IsActive:      u.IsActive,
		Profile:       profile,
		TravelAgentId: u.TravelAgentID,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
		LastLoginAt:   u.LastLoginAt,
	}
}
