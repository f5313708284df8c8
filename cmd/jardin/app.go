package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rakaarfi/jardin-inteligente-client/configs"
	"github.com/rakaarfi/jardin-inteligente-client/internal/apiclient"
	applogger "github.com/rakaarfi/jardin-inteligente-client/internal/logger"
	"github.com/rakaarfi/jardin-inteligente-client/internal/repository"
	"github.com/rakaarfi/jardin-inteligente-client/internal/screen"
	"github.com/rakaarfi/jardin-inteligente-client/internal/session"
	zlog "github.com/rs/zerolog/log"
)

// app holds everything a command needs, built once per invocation.
type app struct {
	cfg       *configs.Config
	sessions  *session.Manager
	api       *apiclient.Client
	logCloser io.Closer

	auth         repository.AuthRepository
	plants       repository.PlantRepository
	diagnoses    repository.DiagnosisRepository
	community    repository.CommunityRepository
	gamification repository.GamificationRepository

	out *screen.Renderer
}

func newApp(ctx context.Context, configPath string, plain bool, w io.Writer) (*app, error) {
	// --- Step 0: configuration ---
	cfg, err := configs.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	// --- Step 1: logger ---
	logCloser := applogger.SetupLogger(cfg.Log)

	// --- Step 2: session store ---
	store, err := session.Open(ctx, cfg.Session)
	if err != nil {
		if logCloser != nil {
			logCloser.Close()
		}
		return nil, fmt.Errorf("could not open the %s session store: %w", cfg.Session.Backend, err)
	}
	sessions := session.NewManager(ctx, store)

	// --- Step 3: API client and repositories ---
	api := apiclient.New(cfg.API, sessions)

	a := &app{
		cfg:          cfg,
		sessions:     sessions,
		api:          api,
		logCloser:    logCloser,
		auth:         repository.NewAuthRepository(api, sessions),
		plants:       repository.NewPlantRepository(api),
		diagnoses:    repository.NewDiagnosisRepository(api),
		community:    repository.NewCommunityRepository(api),
		gamification: repository.NewGamificationRepository(api),
	}
	if plain {
		a.out = screen.NewPlain(w)
	} else {
		a.out = screen.New(w)
	}

	zlog.Debug().Str("base_url", cfg.BaseURL()).Str("session_backend", cfg.Session.Backend).Msg("Client initialised")
	return a, nil
}

func (a *app) Close() {
	if err := a.sessions.Close(); err != nil {
		zlog.Warn().Err(err).Msg("Failed to close session store")
	}
	if a.logCloser != nil {
		if err := a.logCloser.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "[ERROR] Failed to close log file: %v\n", err)
		}
	}
}

// requireSession fails early, with the sign-in hint, when nobody is logged in.
func (a *app) requireSession() error {
	if a.auth.IsLoggedIn() {
		return nil
	}
	fmt.Fprintln(os.Stderr, "You need to sign in first: jardin login <email-or-username>")
	return errReported
}

// failed turns a message already rendered by a screen into the command's error.
func failed(msg string) error {
	if msg == "" {
		return nil
	}
	return errReported
}

func parseID(what, s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%s must be a positive number, got %q", what, s)
	}
	return id, nil
}

// optional returns nil for an empty flag value.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
