// Package session keeps the signed-in user's token and identity between runs.
// The values are stored in plaintext; the backends differ only in where.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rakaarfi/jardin-inteligente-client/configs"
	"github.com/rakaarfi/jardin-inteligente-client/internal/database"
	"github.com/rakaarfi/jardin-inteligente-client/internal/utils"
	zlog "github.com/rs/zerolog/log"
)

var (
	// ErrSessionNotFound is returned by Store.Load when nothing is stored.
	ErrSessionNotFound = errors.New("session not found")
	// ErrNoSession is returned by Manager operations that need a signed-in user.
	ErrNoSession = errors.New("no active session")
)

// Session is the persisted auth state.
type Session struct {
	Token    string `json:"token"`
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Valid reports whether s holds a token and a user id.
func (s Session) Valid() bool {
	return s.Token != "" && s.UserID > 0
}

// Store persists one Session.
type Store interface {
	// Load returns ErrSessionNotFound when no session is stored.
	Load(ctx context.Context) (*Session, error)
	Save(ctx context.Context, s Session) error
	Clear(ctx context.Context) error
	Close() error
}

// Open returns the Store selected by cfg.Backend.
func Open(ctx context.Context, cfg configs.SessionConfig) (Store, error) {
	switch cfg.Backend {
	case configs.SessionBackendFile, "":
		return NewFileStore(cfg.FilePath)
	case configs.SessionBackendRedis:
		return NewRedisStore(ctx, cfg.RedisAddr, cfg.RedisDB, cfg.RedisKey)
	case configs.SessionBackendPostgres:
		pool, err := database.NewPgxPool(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		store, err := NewPostgresStore(ctx, pool, cfg.Profile)
		if err != nil {
			pool.Close()
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.Backend)
	}
}

// ====================================================================================
// Manager
// ====================================================================================

// Manager caches the session in memory and writes changes through to the Store.
// It implements apiclient.TokenSource.
type Manager struct {
	store Store
	now   func() time.Time

	mu      sync.RWMutex
	current *Session
}

// NewManager loads the stored session, if any. A store that fails to load is
// logged and treated as empty so the user can still sign in.
func NewManager(ctx context.Context, store Store) *Manager {
	m := &Manager{store: store, now: time.Now}

	s, err := store.Load(ctx)
	switch {
	case err == nil && s.Valid():
		m.current = s
	case err == nil, errors.Is(err, ErrSessionNotFound):
	default:
		zlog.Warn().Err(err).Msg("Session: failed to load stored session, starting signed out")
	}
	return m
}

func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return ""
	}
	return m.current.Token
}

func (m *Manager) UserID() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return 0
	}
	return m.current.UserID
}

func (m *Manager) Username() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return ""
	}
	return m.current.Username
}

// Current returns a copy of the session and whether one exists.
func (m *Manager) Current() (Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return Session{}, false
	}
	return *m.current, true
}

// IsLoggedIn reports whether a token is present and, when it carries an exp
// claim, has not expired.
func (m *Manager) IsLoggedIn() bool {
	token := m.Token()
	return token != "" && !utils.TokenExpired(token, m.now())
}

// Save persists s and makes it current.
func (m *Manager) Save(ctx context.Context, s Session) error {
	if !s.Valid() {
		return fmt.Errorf("refusing to save incomplete session (user_id=%d)", s.UserID)
	}
	if err := m.store.Save(ctx, s); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}

	m.mu.Lock()
	m.current = &s
	m.mu.Unlock()
	zlog.Debug().Int("user_id", s.UserID).Str("username", s.Username).Msg("Session: saved")
	return nil
}

// Clear forgets the session in memory and in the store. The in-memory copy is
// dropped even when the store fails.
func (m *Manager) Clear(ctx context.Context) error {
	m.mu.Lock()
	m.current = nil
	m.mu.Unlock()

	if err := m.store.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	zlog.Debug().Msg("Session: cleared")
	return nil
}

// Close releases the underlying store.
func (m *Manager) Close() error {
	return m.store.Close()
}
