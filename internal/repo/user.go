package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/wanderwise/backend/internal/domain"
)

// UserRepo defines the persistence operations for users and travelers.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type UserRepo interface {
	// Create inserts a new user with the caller-assigned ID.
	// Returns domain.ErrConflict if the email is already taken.
	Create(ctx context.Context, u domain.User) (domain.User, error)

	// GetByID returns domain.ErrNotFound if no user has that ID.
	GetByID(ctx context.Context, id string) (domain.User, error)

	// GetByEmail looks a user up by exact email match.
	// Returns domain.ErrNotFound if no user has that email.
	GetByEmail(ctx context.Context, email string) (domain.User, error)

	// ClaimUnowned attaches an unowned traveler to an agent in one
	// conditional update. It returns domain.ErrNotFound when no row matched,
	// which covers both a missing ID and a traveler that already has an owner.
	ClaimUnowned(ctx context.Context, c Claim) (domain.User, error)

	// Update applies a partial update. Profile keys are merged over the
	// stored profile. Returns domain.ErrNotFound if no user has that ID.
	Update(ctx context.Context, id string, patch domain.UserPatch) (domain.User, error)

	// UpdateEmail changes a user's email. Returns domain.ErrNotFound if no
	// user has that ID and domain.ErrConflict if the email is taken.
	UpdateEmail(ctx context.Context, id, email string) (domain.User, error)

	// EmailTaken reports whether a user other than exceptID uses email.
	EmailTaken(ctx context.Context, email, exceptID string) (bool, error)

	// Delete removes a user. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id string) error

	// ListPaged returns one page of users matching filter, newest first,
	// and the total number of matching users.
	ListPaged(ctx context.Context, filter domain.UserFilter, p domain.PaginationParams) ([]domain.User, int64, error)

	// TouchLastLogin stamps last_login_at with the current time.
	TouchLastLogin(ctx context.Context, id string) error

	// Upsert inserts or fully overwrites a user by ID. Used by the legacy import.
	Upsert(ctx context.Context, u domain.User) error
}

// Claim is the write half of a traveler claim: the new owner plus the
// merged fields computed from the record that was read.
type Claim struct {
	UserID   string
	AgentID  string
	Name     string
	Profile  domain.Profile
	IsActive bool
}

// pgUserRepo is the Postgres implementation of UserRepo.
type pgUserRepo struct {
	db db
}

// NewUserRepo constructs a UserRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewUserRepo(db db) UserRepo {
	return &pgUserRepo{db: db}
}

const userColumns = `id, email, name, photo_url, roles, is_active, profile,
	assigned_travelers, travel_agent_id, created_at, updated_at, last_login_at`

func (r *pgUserRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	const q = `
		INSERT INTO users (id, email, name, photo_url, roles, is_active, profile,
		                   assigned_travelers, travel_agent_id)
		VALUES (@id, @email, @name, @photo_url, @roles, @is_active, @profile,
		        @assigned_travelers, @travel_agent_id)
		RETURNING ` + userColumns

	row := r.db.QueryRow(ctx, q, userArgs(u))
	result, err := scanUser(row)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.User{}, fmt.Errorf("repo.UserRepo.Create: %w", domain.ErrConflict)
		}
		return domain.User{}, fmt.Errorf("repo.UserRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgUserRepo) GetByID(ctx context.Context, id string) (domain.User, error) {
	q := `SELECT ` + userColumns + ` FROM users WHERE id = @id`

	result, err := scanUser(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.User{}, fmt.Errorf("repo.UserRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgUserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	q := `SELECT ` + userColumns + ` FROM users WHERE email = @email`

	result, err := scanUser(r.db.QueryRow(ctx, q, pgx.NamedArgs{"email": email}))
	if err != nil {
		return domain.User{}, fmt.Errorf("repo.UserRepo.GetByEmail: %w", err)
	}
	return result, nil
}

// ClaimUnowned sets the owner only while travel_agent_id is still NULL.
// Two agents racing for the same traveler cannot both match this WHERE
// clause: Postgres re-evaluates it on the locked row for the second writer.
func (r *pgUserRepo) ClaimUnowned(ctx context.Context, c Claim) (domain.User, error) {
	const q = `
		UPDATE users
		SET travel_agent_id = @agent_id,
		    name            = @name,
		    profile         = @profile,
		    is_active       = @is_active,
		    updated_at      = now()
		WHERE id = @id
		  AND travel_agent_id IS NULL
		RETURNING ` + userColumns

	args := pgx.NamedArgs{
		"id":        c.UserID,
		"agent_id":  c.AgentID,
		"name":      c.Name,
		"profile":   profileArg(c.Profile),
		"is_active": c.IsActive,
	}

	result, err := scanUser(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.User{}, fmt.Errorf("repo.UserRepo.ClaimUnowned: %w", err)
	}
	return result, nil
}

func (r *pgUserRepo) Update(ctx context.Context, id string, patch domain.UserPatch) (domain.User, error) {
	sets := []string{"updated_at = now()"}
	args := pgx.NamedArgs{"id": id}

	if patch.Name != nil {
		sets = append(sets, "name = @name")
		args["name"] = *patch.Name
	}
	if patch.PhotoURL != nil {
		sets = append(sets, "photo_url = @photo_url")
		args["photo_url"] = nilIfEmpty(*patch.PhotoURL)
	}
	if patch.Roles != nil {
		sets = append(sets, "roles = @roles")
		args["roles"] = patch.Roles
	}
	if patch.IsActive != nil {
		sets = append(sets, "is_active = @is_active")
		args["is_active"] = *patch.IsActive
	}
	if patch.Profile != nil {
		sets = append(sets, "profile = profile || @profile::jsonb")
		args["profile"] = profileArg(patch.Profile)
	}
	if patch.TravelAgentID != nil {
		// An empty agent ID releases the traveler back to unowned.
		sets = append(sets, "travel_agent_id = @travel_agent_id")
		args["travel_agent_id"] = nilIfEmpty(*patch.TravelAgentID)
	}

	q := `UPDATE users SET ` + strings.Join(sets, ", ") + `
		WHERE id = @id
		RETURNING ` + userColumns

	result, err := scanUser(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.User{}, fmt.Errorf("repo.UserRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgUserRepo) UpdateEmail(ctx context.Context, id, email string) (domain.User, error) {
	q := `
		UPDATE users
		SET email = @email, updated_at = now()
		WHERE id = @id
		RETURNING ` + userColumns

	result, err := scanUser(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id, "email": email}))
	if err != nil {
		if isUniqueViolation(err) {
			return domain.User{}, fmt.Errorf("repo.UserRepo.UpdateEmail: %w", domain.ErrConflict)
		}
		return domain.User{}, fmt.Errorf("repo.UserRepo.UpdateEmail: %w", err)
	}
	return result, nil
}

func (r *pgUserRepo) EmailTaken(ctx context.Context, email, exceptID string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM users WHERE email = @email AND id <> @id)`

	var taken bool
	if err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"email": email, "id": exceptID}).Scan(&taken); err != nil {
		return false, fmt.Errorf("repo.UserRepo.EmailTaken: %w", err)
	}
	return taken, nil
}

func (r *pgUserRepo) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM users WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.UserRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.UserRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *pgUserRepo) ListPaged(ctx context.Context, filter domain.UserFilter, p domain.PaginationParams) ([]domain.User, int64, error) {
	const where = `
		WHERE (@role = '' OR @role = ANY (roles))
		  AND (@agent_id = '' OR travel_agent_id = @agent_id)`

	args := pgx.NamedArgs{
		"role":     filter.Role,
		"agent_id": filter.TravelAgentID,
		"limit":    p.Limit,
		"offset":   p.Offset(),
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM users`+where, args).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.UserRepo.ListPaged: count: %w", err)
	}

	q := `SELECT ` + userColumns + ` FROM users` + where + `
		ORDER BY created_at DESC, id
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.UserRepo.ListPaged: %w", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.UserRepo.ListPaged: scan: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.UserRepo.ListPaged: rows: %w", err)
	}
	return users, total, nil
}

func (r *pgUserRepo) TouchLastLogin(ctx context.Context, id string) error {
	const q = `UPDATE users SET last_login_at = now() WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.UserRepo.TouchLastLogin: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.UserRepo.TouchLastLogin: %w", domain.ErrNotFound)
	}
	return nil
}

// Upsert writes every column from u, keeping the legacy timestamps when set.
func (r *pgUserRepo) Upsert(ctx context.Context, u domain.User) error {
	const q = `
		INSERT INTO users (id, email, name, photo_url, roles, is_active, profile,
		                   assigned_travelers, travel_agent_id,
		                   created_at, updated_at, last_login_at)
		VALUES (@id, @email, @name, @photo_url, @roles, @is_active, @profile,
		        @assigned_travelers, @travel_agent_id,
		        COALESCE(@created_at, now()), now(), @last_login_at)
		ON CONFLICT (id) DO UPDATE SET
		    email              = EXCLUDED.email,
		    name               = EXCLUDED.name,
		    photo_url          = EXCLUDED.photo_url,
		    roles              = EXCLUDED.roles,
		    is_active          = EXCLUDED.is_active,
		    profile            = EXCLUDED.profile,
		    assigned_travelers = EXCLUDED.assigned_travelers,
		    travel_agent_id    = EXCLUDED.travel_agent_id,
		    created_at         = EXCLUDED.created_at,
		    updated_at         = now(),
		    last_login_at      = EXCLUDED.last_login_at`

	args := userArgs(u)
	args["created_at"] = timeArg(u.CreatedAt)
	args["last_login_at"] = u.LastLoginAt

	if _, err := r.db.Exec(ctx, q, args); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("repo.UserRepo.Upsert: %w", domain.ErrConflict)
		}
		return fmt.Errorf("repo.UserRepo.Upsert: %w", err)
	}
	return nil
}

// userArgs maps the writable columns of u to named arguments.
func userArgs(u domain.User) pgx.NamedArgs {
	roles := u.Roles
	if roles == nil {
		roles = []string{}
	}
	return pgx.NamedArgs{
		"id":                 u.ID,
		"email":              u.Email,
		"name":               u.Name,
		"photo_url":          u.PhotoURL,
		"roles":              roles,
		"is_active":          u.IsActive,
		"profile":            profileArg(u.Profile),
		"assigned_travelers": u.AssignedTravelers, // nil becomes NULL
		"travel_agent_id":    u.TravelAgentID,
	}
}

// profileArg never returns nil: a nil map would be sent as SQL NULL and
// violate the NOT NULL constraint on profile.
func profileArg(p domain.Profile) map[string]any {
	if p == nil {
		return map[string]any{}
	}
	return p
}

// nilIfEmpty converts an empty string to a nil pointer so it is stored as NULL.
func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// scanUser maps a single database row into a domain.User.
func scanUser(s scanner) (domain.User, error) {
	var (
		u       domain.User
		profile map[string]any
	)

	err := s.Scan(&u.ID, &u.Email, &u.Name, &u.PhotoURL, &u.Roles, &u.IsActive, &profile,
		&u.AssignedTravelers, &u.TravelAgentID, &u.CreatedAt, &u.UpdatedAt, &u.LastLoginAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, err
	}

	u.Profile = domain.Profile(profile)
	if u.Profile == nil {
		u.Profile = domain.Profile{}
	}
	return u, nil
}
