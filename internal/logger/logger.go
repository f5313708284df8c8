// internal/logger/logger.go
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rakaarfi/jardin-inteligente-client/configs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// SetupLogger configures the global Zerolog logger from the log section of the config.
// Console output goes to stderr (human-readable, or JSON when Format is "json") so that
// CLI screens on stdout stay clean. File output with rotation is optional (lumberjack).
//
// Returns an io.Closer for the log file (nil when file logging is off or failed to
// initialise); main should defer Close on it so buffered entries are flushed.
//
// Defaults when a value is missing or invalid:
//   - Level: info
//   - FilePath: ./logs/jardin.log
//   - FileMaxSizeMB: 100, FileMaxBackups: 5, FileMaxAgeDays: 30
func SetupLogger(cfg configs.LogConfig) io.Closer {
	// --- Global level ---
	logLevel, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		logLevel = zerolog.InfoLevel
		fmt.Fprintf(os.Stderr, "[WARN] Invalid or missing log level ('%s'), using default: %s\n", cfg.Level, logLevel.String())
	}
	zerolog.SetGlobalLevel(logLevel)

	// --- Writers ---
	var writers []io.Writer
	if cfg.Format != "json" {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	} else {
		writers = append(writers, os.Stderr)
	}

	var fileCloser io.Closer
	if cfg.FileEnabled {
		logFilePath := cfg.FilePath
		if logFilePath == "" {
			logFilePath = "./logs/jardin.log"
		}

		logDir := filepath.Dir(logFilePath)
		if err := os.MkdirAll(logDir, 0o744); err != nil {
			fmt.Fprintf(os.Stderr, "[ERROR] Can't create log directory '%s': %v. File logging disabled.\n", logDir, err)
		} else {
			fileWriter := &lumberjack.Logger{
				Filename:   logFilePath,
				MaxSize:    positiveOr(cfg.FileMaxSizeMB, 100),
				MaxBackups: positiveOr(cfg.FileMaxBackups, 5),
				MaxAge:     positiveOr(cfg.FileMaxAgeDays, 30),
				Compress:   cfg.FileCompress,
			}
			writers = append(writers, fileWriter)
			fileCloser = fileWriter
		}
	}

	multiWriter := zerolog.MultiLevelWriter(writers...)
	log.Logger = zerolog.New(multiWriter).With().Timestamp().Caller().Logger()

	log.Debug().Msgf("Global logger initialized. Level: %s. Format: %s. File Logging: %t.",
		zerolog.GlobalLevel().String(),
		cfg.Format,
		cfg.FileEnabled && fileCloser != nil)

	return fileCloser
}

func positiveOr(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
