// Package repo contains all database access logic for the WanderWise backend.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// db is the minimal interface satisfied by *pgxpool.Pool, *pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup. Begin on a pgx.Tx opens a
// savepoint, so repos can nest their own transactions inside a test's.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// uniqueViolation is the Postgres SQLSTATE for unique_violation.
const uniqueViolation = "23505"

// isUniqueViolation reports whether err is a Postgres unique constraint failure.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// Repos groups the repositories that must share a transaction.
type Repos struct {
	Users    UserRepo
	Accounts AccountRepo
}

// Transactor runs a function against repos bound to a single transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(Repos) error) error
}

type pgTransactor struct {
	db db
}

// NewTransactor constructs a Transactor that opens transactions on db.
func NewTransactor(db db) Transactor {
	return &pgTransactor{db: db}
}

func (t *pgTransactor) WithinTx(ctx context.Context, fn func(Repos) error) error {
	return pgx.BeginFunc(ctx, t.db, func(tx pgx.Tx) error {
		return fn(Repos{
			Users:    NewUserRepo(tx),
			Accounts: NewAccountRepo(tx),
		})
	})
}

// timeArg converts a zero time to nil so it is stored as NULL (or picks up a
// column default through COALESCE).
func timeArg(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
