package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/wanderwise/backend/internal/auth"
	"github.com/wanderwise/backend/internal/domain"
	"github.com/wanderwise/backend/internal/repo"
)

const (
	minPasswordLength = 8
	maxPasswordBytes  = 72
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// UserService implements the administrative account operations: creating
// staff accounts, patching users, changing emails, and deleting users.
// Authorization (admin only) is enforced by the HTTP layer.
type UserService struct {
	users repo.UserRepo
	tx    repo.Transactor
	hash  func(string) (string, error)
	newID func() string
}

// NewUserService constructs a UserService. users serves reads; tx runs the
// writes that must touch users and auth_accounts together.
func NewUserService(users repo.UserRepo, tx repo.Transactor) *UserService {
	return &UserService{users: users, tx: tx, hash: auth.HashPassword, newID: uuid.NewString}
}

// Create validates nu and inserts the user row and its credentials in one
// transaction, so a failure leaves neither behind.
// Returns domain.ErrValidation for bad input and domain.ErrConflict when the
// email is already registered.
func (s *UserService) Create(ctx context.Context, nu domain.NewUser) (domain.User, error) {
	nu.Email = strings.TrimSpace(nu.Email)
	nu.Name = strings.TrimSpace(nu.Name)
	if err := validateNewUser(nu); err != nil {
		return domain.User{}, err
	}

	hash, err := s.hash(nu.Password)
	if err != nil {
		return domain.User{}, fmt.Errorf("service.UserService.Create: hash password: %w", err)
	}

	u := domain.User{
		ID:       s.newID(),
		Email:    nu.Email,
		Name:     nu.Name,
		PhotoURL: nu.PhotoURL,
		Roles:    nu.Roles,
		IsActive: true,
		Profile:  domain.Profile{"phone": nil, "address": nil, "company": nil, "position": nil},
	}

	var created domain.User
	err = s.tx.WithinTx(ctx, func(r repo.Repos) error {
		var err error
		if created, err = r.Users.Create(ctx, u); err != nil {
			return err
		}
		return r.Accounts.Create(ctx, domain.Account{UserID: created.ID, Email: created.Email, PasswordHash: hash})
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("service.UserService.Create: %w", err)
	}
	return created, nil
}

// GetByID returns domain.ErrNotFound if no user has that ID.
func (s *UserService) GetByID(ctx context.Context, id string) (domain.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("service.UserService.GetByID: %w", err)
	}
	return u, nil
}

// GetByEmail returns domain.ErrNotFound if no user has that email.
func (s *UserService) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	u, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return domain.User{}, fmt.Errorf("service.UserService.GetByEmail: %w", err)
	}
	return u, nil
}

// List returns one page of users matching filter.
func (s *UserService) List(ctx context.Context, filter domain.UserFilter, p domain.PaginationParams) (domain.Page[domain.User], error) {
	if filter.Role != "" && !domain.IsKnownRole(filter.Role) {
		return domain.Page[domain.User]{}, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, filter.Role)
	}
	users, total, err := s.users.ListPaged(ctx, filter, p)
	if err != nil {
		return domain.Page[domain.User]{}, fmt.Errorf("service.UserService.List: %w", err)
	}
	return domain.Page[domain.User]{Items: users, Total: total, Params: p}, nil
}

// Update applies patch to the user with the given ID.
// Returns domain.ErrValidation for an empty patch, a blank name, or unknown
// roles, and domain.ErrNotFound if the user does not exist.
func (s *UserService) Update(ctx context.Context, id string, patch domain.UserPatch) (domain.User, error) {
	if err := validatePatch(patch); err != nil {
		return domain.User{}, err
	}
	u, err := s.users.Update(ctx, id, patch)
	if err != nil {
		return domain.User{}, fmt.Errorf("service.UserService.Update: %w", err)
	}
	return u, nil
}

// UpdateEmail moves the user and its credentials to newEmail in one
// transaction. Returns domain.ErrConflict if another user already uses it.
// Users imported without credentials have only their user row updated.
func (s *UserService) UpdateEmail(ctx context.Context, id, newEmail string) (domain.EmailChange, error) {
	newEmail = strings.TrimSpace(newEmail)
	if newEmail == "" {
		return domain.EmailChange{}, fmt.Errorf("%w: missing required fields: newEmail", domain.ErrValidation)
	}
	if !emailPattern.MatchString(newEmail) {
		return domain.EmailChange{}, fmt.Errorf("%w: invalid email format", domain.ErrValidation)
	}

	var change domain.EmailChange
	err := s.tx.WithinTx(ctx, func(r repo.Repos) error {
		current, err := r.Users.GetByID(ctx, id)
		if err != nil {
			return err
		}
		taken, err := r.Users.EmailTaken(ctx, newEmail, id)
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("%w: email address is already in use", domain.ErrConflict)
		}
		if _, err := r.Users.UpdateEmail(ctx, id, newEmail); err != nil {
			return err
		}
		if err := r.Accounts.UpdateEmail(ctx, id, newEmail); err != nil && !errors.Is(err, domain.ErrNotFound) {
			return err
		}
		change = domain.EmailChange{UserID: id, OldEmail: current.Email, NewEmail: newEmail}
		return nil
	})
	if err != nil {
		return domain.EmailChange{}, fmt.Errorf("service.UserService.UpdateEmail: %w", err)
	}
	return change, nil
}

// Delete removes the user; its credentials go with it.
// Returns domain.ErrNotFound if the user does not exist.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.UserService.Delete: %w", err)
	}
	return nil
}

func validateNewUser(nu domain.NewUser) error {
	var missing []string
	if nu.Email == "" {
		missing = append(missing, "email")
	}
	if nu.Password == "" {
		missing = append(missing, "password")
	}
	if nu.Name == "" {
		missing = append(missing, "name")
	}
	if nu.Roles == nil {
		missing = append(missing, "roles")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required fields: %s", domain.ErrValidation, strings.Join(missing, ", "))
	}
	if !emailPattern.MatchString(nu.Email) {
		return fmt.Errorf("%w: invalid email format", domain.ErrValidation)
	}
	if err := ValidatePassword(nu.Password); err != nil {
		return err
	}
	return validateRoles(nu.Roles)
}

func validatePatch(p domain.UserPatch) error {
	if p.IsEmpty() {
		return fmt.Errorf("%w: no fields to update", domain.ErrValidation)
	}
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return fmt.Errorf("%w: name must not be blank", domain.ErrValidation)
	}
	if p.Roles != nil {
		return validateRoles(p.Roles)
	}
	return nil
}

func validateRoles(roles []string) error {
	if len(roles) == 0 {
		return fmt.Errorf("%w: roles must be a non-empty array", domain.ErrValidation)
	}
	for _, r := range roles {
		if !domain.IsKnownRole(r) {
			return fmt.Errorf("%w: unknown role %q", domain.ErrValidation, r)
		}
	}
	return nil
}
