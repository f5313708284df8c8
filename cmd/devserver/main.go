package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rakaarfi/jardin-inteligente-client/configs"
	"github.com/rakaarfi/jardin-inteligente-client/internal/devserver"
	applogger "github.com/rakaarfi/jardin-inteligente-client/internal/logger"
	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// @title Jardín Inteligente API (contract stub)
// @version 1.0
// @description Backend contract of the Jardín Inteligente plant-care app, served with canned data for client development.

// @host localhost:8000
// @BasePath /

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description "Type 'Bearer YOUR_JWT_TOKEN' into the value field."

func main() {
	var configPath string
	rootCmd := &cobra.Command{
		Use:           "devserver",
		Short:         "Serve the Jardín Inteligente backend contract with in-memory data",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(configPath)
		},
	}
	rootCmd.Flags().StringVar(&configPath, "config", "", "path to a YAML config file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "[ERROR] %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	// --- Step 0: configuration ---
	cfg, err := configs.LoadConfig(configPath)
	if err != nil {
		return err
	}

	// --- Step 1: logger ---
	logCloser := applogger.SetupLogger(cfg.Log)
	if logCloser != nil {
		defer func() {
			zlog.Info().Msg("Closing log file...")
			if err := logCloser.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "[ERROR] Failed to close log file: %v\n", err)
			}
		}()
	}
	zlog.Info().Msg("Configuration loaded")

	if err := cfg.ValidateDevServer(); err != nil {
		return err
	}

	// --- Step 2: app ---
	srv, err := devserver.New(cfg.DevServer)
	if err != nil {
		return fmt.Errorf("could not build the dev server: %w", err)
	}

	// --- Step 3: serve until interrupted ---
	go func() {
		zlog.Info().Msgf("Server is starting on port %s...", cfg.DevServer.Port)
		if err := srv.App.Listen(fmt.Sprintf(":%s", cfg.DevServer.Port)); err != nil {
			zlog.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zlog.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.App.ShutdownWithContext(ctx); err != nil {
		zlog.Error().Err(err).Msg("Server forced to shut down")
	}
	zlog.Info().Msg("Server exited")
	return nil
}
