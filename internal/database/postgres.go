// internal/database/postgres.go
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	zlog "github.com/rs/zerolog/log"
)

// ====================================================================================
// PostgreSQL Connection Pool
// ====================================================================================

// NewPgxPool opens a small connection pool for dsn and verifies it with a ping.
// The client only keeps a session row there, so the pool is sized for a single
// user process rather than a server.
//
// Steps:
//  1. Parse the DSN.
//  2. Tune the pool.
//  3. Create the pool.
//  4. Ping (5s timeout); on failure the pool is closed before returning.
func NewPgxPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	zlog.Debug().Msg("Initializing PostgreSQL connection pool...")

	// --- Step 1: Parse DSN ---
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		// The DSN may contain a password: never log it.
		zlog.Error().Err(err).Msg("Failed to parse database DSN")
		return nil, fmt.Errorf("unable to parse database configuration: %w", err)
	}

	// --- Step 2: Pool parameters ---
	config.MaxConns = 2
	config.MinConns = 0
	config.MaxConnLifetime = time.Hour
	config.MaxConnIdleTime = 5 * time.Minute
	config.HealthCheckPeriod = time.Minute
	config.ConnConfig.ConnectTimeout = 5 * time.Second
	zlog.Debug().
		Str("host", config.ConnConfig.Host).
		Str("database", config.ConnConfig.Database).
		Int32("max_conns", config.MaxConns).
		Dur("connect_timeout", config.ConnConfig.ConnectTimeout).
		Msg("Connection pool parameters set")

	// --- Step 3: Create pool ---
	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		zlog.Error().Err(err).Msg("Failed to create database connection pool")
		return nil, fmt.Errorf("unable to create database connection pool: %w", err)
	}

	// --- Step 4: Ping ---
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err = pool.Ping(pingCtx); err != nil {
		zlog.Error().Err(err).Msg("Database ping failed. Closing unusable pool.")
		pool.Close()
		return nil, fmt.Errorf("unable to ping database after pool creation: %w", err)
	}

	zlog.Debug().Msg("Connected to PostgreSQL and verified connection pool")
	return pool, nil
}
