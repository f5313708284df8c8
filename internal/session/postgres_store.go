package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const createSessionsTable = `CREATE TABLE IF NOT EXISTS jardin_sessions (
	profile    TEXT PRIMARY KEY,
	token      TEXT NOT NULL,
	user_id    INTEGER NOT NULL,
	username   TEXT NOT NULL DEFAULT '',
	email      TEXT NOT NULL DEFAULT '',
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// PostgresStore keeps one session row per profile, for shared devices where
// several client installs point at the same database.
type PostgresStore struct {
	pool    *pgxpool.Pool
	profile string
}

// NewPostgresStore creates the sessions table if it does not exist.
// The store takes ownership of pool.
func NewPostgresStore(ctx context.Context, pool *pgxpool.Pool, profile string) (*PostgresStore, error) {
	if profile == "" {
		profile = "default"
	}
	if _, err := pool.Exec(ctx, createSessionsTable); err != nil {
		return nil, fmt.Errorf("failed to init session schema: %w", err)
	}
	return &PostgresStore{pool: pool, profile: profile}, nil
}

func (p *PostgresStore) Load(ctx context.Context) (*Session, error) {
	var s Session
	err := p.pool.QueryRow(ctx,
		`SELECT token, user_id, username, email FROM jardin_sessions WHERE profile = $1`,
		p.profile,
	).Scan(&s.Token, &s.UserID, &s.Username, &s.Email)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session for profile %q: %w", p.profile, err)
	}
	return &s, nil
}

func (p *PostgresStore) Save(ctx context.Context, s Session) error {
	_, err := p.pool.Exec(ctx,
		`INSERT INTO jardin_sessions (profile, token, user_id, username, email, updated_at)
		 VALUES ($1, $2, $3, $4, $5, now())
		 ON CONFLICT (profile) DO UPDATE SET
		 token = EXCLUDED.token, user_id = EXCLUDED.user_id,
		 username = EXCLUDED.username, email = EXCLUDED.email, updated_at = now()`,
		p.profile, s.Token, s.UserID, s.Username, s.Email)
	if err != nil {
		return fmt.Errorf("save session for profile %q: %w", p.profile, err)
	}
	return nil
}

func (p *PostgresStore) Clear(ctx context.Context) error {
	if _, err := p.pool.Exec(ctx, `DELETE FROM jardin_sessions WHERE profile = $1`, p.profile); err != nil {
		return fmt.Errorf("clear session for profile %q: %w", p.profile, err)
	}
	return nil
}

func (p *PostgresStore) Close() error {
	p.pool.Close()
	return nil
}
