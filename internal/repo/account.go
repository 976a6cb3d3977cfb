package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/wanderwise/backend/internal/domain"
)

// AccountRepo stores login credentials. One account per user; the row is
// removed with its user by ON DELETE CASCADE.
type AccountRepo interface {
	// Create inserts credentials for an existing user.
	// Returns domain.ErrConflict if the user or the email already has an account.
	Create(ctx context.Context, a domain.Account) error

	// Upsert inserts credentials or replaces the hash and email of an
	// existing account for the same user.
	Upsert(ctx context.Context, a domain.Account) error

	// GetByEmail returns domain.ErrNotFound if no account uses that email.
	GetByEmail(ctx context.Context, email string) (domain.Account, error)

	// UpdateEmail returns domain.ErrNotFound if the user has no account.
	UpdateEmail(ctx context.Context, userID, email string) error
}

type pgAccountRepo struct {
	db db
}

// NewAccountRepo constructs an AccountRepo backed by the provided db connection.
func NewAccountRepo(db db) AccountRepo {
	return &pgAccountRepo{db: db}
}

func (r *pgAccountRepo) Create(ctx context.Context, a domain.Account) error {
	const q = `
		INSERT INTO auth_accounts (user_id, email, password_hash)
		VALUES (@user_id, @email, @password_hash)`

	_, err := r.db.Exec(ctx, q, accountArgs(a))
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("repo.AccountRepo.Create: %w", domain.ErrConflict)
		}
		return fmt.Errorf("repo.AccountRepo.Create: %w", err)
	}
	return nil
}

func (r *pgAccountRepo) Upsert(ctx context.Context, a domain.Account) error {
	const q = `
		INSERT INTO auth_accounts (user_id, email, password_hash)
		VALUES (@user_id, @email, @password_hash)
		ON CONFLICT (user_id) DO UPDATE SET
		    email         = EXCLUDED.email,
		    password_hash = EXCLUDED.password_hash,
		    updated_at    = now()`

	_, err := r.db.Exec(ctx, q, accountArgs(a))
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("repo.AccountRepo.Upsert: %w", domain.ErrConflict)
		}
		return fmt.Errorf("repo.AccountRepo.Upsert: %w", err)
	}
	return nil
}

func (r *pgAccountRepo) GetByEmail(ctx context.Context, email string) (domain.Account, error) {
	const q = `
		SELECT user_id, email, password_hash
		FROM auth_accounts
		WHERE email = @email`

	var a domain.Account
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"email": email}).Scan(&a.UserID, &a.Email, &a.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Account{}, fmt.Errorf("repo.AccountRepo.GetByEmail: %w", domain.ErrNotFound)
		}
		return domain.Account{}, fmt.Errorf("repo.AccountRepo.GetByEmail: %w", err)
	}
	return a, nil
}

func (r *pgAccountRepo) UpdateEmail(ctx context.Context, userID, email string) error {
	const q = `
		UPDATE auth_accounts
		SET email = @email, updated_at = now()
		WHERE user_id = @user_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"user_id": userID, "email": email})
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("repo.AccountRepo.UpdateEmail: %w", domain.ErrConflict)
		}
		return fmt.Errorf("repo.AccountRepo.UpdateEmail: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.AccountRepo.UpdateEmail: %w", domain.ErrNotFound)
	}
	return nil
}

func accountArgs(a domain.Account) pgx.NamedArgs {
	return pgx.NamedArgs{
		"user_id":       a.UserID,
		"email":         a.Email,
		"password_hash": a.PasswordHash,
	}
}
