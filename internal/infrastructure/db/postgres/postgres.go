// Package postgres implements the user and trip repositories on top of
// PostgreSQL via pgx.
//
// Expected schema:
//
//	CREATE TABLE users (
//	    id            BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//	    email         TEXT NOT NULL UNIQUE,
//	    password_hash TEXT NOT NULL,
//	    created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
//	    updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
//	);
//
//	CREATE TABLE trips (
//	    id          BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//	    user_id     BIGINT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
//	    destination TEXT NOT NULL,
//	    start_date  DATE NOT NULL,
//	    end_date    DATE NOT NULL,
//	    coordinates JSONB,
//	    itinerary   JSONB,
//	    created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
//	    updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
//	);
//	CREATE INDEX trips_user_id_idx ON trips (user_id);
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Config carries the connection settings for the pool.
type Config struct {
	URL     string
	Timeout time.Duration
}

// Connect opens a pgx pool and verifies connectivity before returning it.
func Connect(ctx context.Context, cfg Config) (*pgxpool.Pool, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return pool, nil
}

// db is the slice of pgx used by the repositories. *pgxpool.Pool, *pgx.Conn
// and pgx.Tx all satisfy it, so repositories run equally well inside or
// outside a transaction.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// scanner is the common subset of pgx.Row and pgx.Rows used by the row
// mapping helpers.
type scanner interface {
	Scan(dest ...any) error
}
