package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql
)

var errNoDatabaseURL = errors.New("no database configured: set DATABASE_URL or --database-url")

// openPool connects to the database and verifies it is reachable.
func (a *app) openPool(ctx context.Context) (*pgxpool.Pool, error) {
	if a.databaseURL == "" {
		return nil, errNoDatabaseURL
	}
	pool, err := pgxpool.New(ctx, a.databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return pool, nil
}

// openSQLDB opens a database/sql handle through the pgx stdlib driver, for goose.
func (a *app) openSQLDB(ctx context.Context) (*sql.DB, error) {
	if a.databaseURL == "" {
		return nil, errNoDatabaseURL
	}
	db, err := sql.Open("pgx", a.databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return db, nil
}
