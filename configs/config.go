// configs/config.go
package configs

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// This file loads the client configuration. Sources, lowest to highest priority:
//   1. built-in defaults (setDefaults)
//   2. an optional YAML file (--config flag or JARDIN_CONFIG)
//   3. a .env file in the working directory, loaded into the process environment
//   4. environment variables prefixed with JARDIN_ (dots become underscores,
//      e.g. api.base_url -> JARDIN_API_BASE_URL)

// EnvPrefix is the prefix shared by every environment variable the client reads.
const EnvPrefix = "JARDIN"

// Session store backends.
const (
	SessionBackendFile     = "file"
	SessionBackendRedis    = "redis"
	SessionBackendPostgres = "postgres"
)

// ====================================================================================
// Configuration Structs
// ====================================================================================

// Config is the full client configuration.
type Config struct {
	API       APIConfig       `mapstructure:"api"`
	Session   SessionConfig   `mapstructure:"session"`
	Log       LogConfig       `mapstructure:"log"`
	DevServer DevServerConfig `mapstructure:"devserver"`
}

// APIConfig controls how the client talks to the backend.
type APIConfig struct {
	BaseURL        string        `mapstructure:"base_url"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
	MaxRetries     int           `mapstructure:"max_retries"` // connection failures only
	LogHTTP        bool          `mapstructure:"log_http"`
}

// SessionConfig selects where the auth session (token, user id, username, email) is kept.
type SessionConfig struct {
	Backend     string `mapstructure:"backend"`
	FilePath    string `mapstructure:"file_path"`
	RedisAddr   string `mapstructure:"redis_addr"`
	RedisDB     int    `mapstructure:"redis_db"`
	RedisKey    string `mapstructure:"redis_key"`
	PostgresDSN string `mapstructure:"postgres_dsn"`
	Profile     string `mapstructure:"profile"`
}

// LogConfig mirrors the LOG_* knobs of the logger setup.
type LogConfig struct {
	Level          string `mapstructure:"level"`
	Format         string `mapstructure:"format"`
	FileEnabled    bool   `mapstructure:"file_enabled"`
	FilePath       string `mapstructure:"file_path"`
	FileMaxSizeMB  int    `mapstructure:"file_max_size_mb"`
	FileMaxBackups int    `mapstructure:"file_max_backups"`
	FileMaxAgeDays int    `mapstructure:"file_max_age_days"`
	FileCompress   bool   `mapstructure:"file_compress"`
}

// DevServerConfig configures the local contract stub server.
type DevServerConfig struct {
	Port         string        `mapstructure:"port"`
	JWTSecret    string        `mapstructure:"jwt_secret"`
	TokenTTL     time.Duration `mapstructure:"token_ttl"`
	AllowOrigins string        `mapstructure:"allow_origins"`
	RateLimit    int           `mapstructure:"rate_limit"`
}

// ====================================================================================
// Loading
// ====================================================================================

// LoadConfig reads configuration from defaults, an optional YAML file at path
// (empty path means "no file"), a .env file and JARDIN_* environment variables.
//
// A missing .env file is not an error: the variables may already be set in the
// environment. A missing YAML file given explicitly IS an error.
func LoadConfig(path string) (*Config, error) {
	// --- Step 1: .env into the process environment (existing vars win) ---
	if err := godotenv.Load(); err != nil {
		zlog.Debug().Msg("No .env file found, reading environment variables directly")
	} else {
		zlog.Debug().Msg("Loaded environment variables from .env file")
	}

	v := viper.New()
	setDefaults(v)

	// --- Step 2: optional YAML file ---
	if path == "" {
		path = os.Getenv(EnvPrefix + "_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		zlog.Debug().Str("path", path).Msg("Loaded config file")
	}

	// --- Step 3: environment overrides ---
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Session.FilePath = expandHome(cfg.Session.FilePath)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", "http://localhost:8000")
	v.SetDefault("api.connect_timeout", 60*time.Second)
	v.SetDefault("api.read_timeout", 60*time.Second)
	v.SetDefault("api.write_timeout", 60*time.Second)
	v.SetDefault("api.max_retries", 2)
	v.SetDefault("api.log_http", false)

	v.SetDefault("session.backend", SessionBackendFile)
	v.SetDefault("session.file_path", "~/.jardin/session.json")
	v.SetDefault("session.redis_addr", "localhost:6379")
	v.SetDefault("session.redis_db", 0)
	v.SetDefault("session.redis_key", "jardin:session")
	v.SetDefault("session.postgres_dsn", "")
	v.SetDefault("session.profile", "default")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.file_enabled", false)
	v.SetDefault("log.file_path", "./logs/jardin.log")
	v.SetDefault("log.file_max_size_mb", 100)
	v.SetDefault("log.file_max_backups", 5)
	v.SetDefault("log.file_max_age_days", 30)
	v.SetDefault("log.file_compress", false)

	v.SetDefault("devserver.port", "8000")
	v.SetDefault("devserver.jwt_secret", "")
	v.SetDefault("devserver.token_ttl", 7*24*time.Hour)
	v.SetDefault("devserver.allow_origins", "*")
	v.SetDefault("devserver.rate_limit", 200)
}

// ====================================================================================
// Validation
// ====================================================================================

// Validate checks the values that must be present for the selected backends.
// The devserver secret is checked separately by the devserver (ValidateDevServer),
// since the client never needs it.
func (c *Config) Validate() error {
	var problems []string

	u, err := url.Parse(c.API.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		problems = append(problems, fmt.Sprintf("api.base_url %q must be an absolute http(s) URL", c.API.BaseURL))
	}
	if c.API.MaxRetries < 0 {
		problems = append(problems, "api.max_retries must not be negative")
	}

	switch c.Session.Backend {
	case SessionBackendFile:
		if c.Session.FilePath == "" {
			problems = append(problems, "session.file_path is required for the file backend")
		}
	case SessionBackendRedis:
		if c.Session.RedisAddr == "" {
			problems = append(problems, "session.redis_addr is required for the redis backend")
		}
	case SessionBackendPostgres:
		if c.Session.PostgresDSN == "" {
			problems = append(problems, "session.postgres_dsn is required for the postgres backend")
		}
	default:
		problems = append(problems, fmt.Sprintf("unknown session.backend %q (want file, redis or postgres)", c.Session.Backend))
	}

	if len(problems) > 0 {
		return errors.New("invalid configuration: " + strings.Join(problems, "; "))
	}
	return nil
}

// ValidateDevServer checks the settings the contract stub server cannot start without.
func (c *Config) ValidateDevServer() error {
	if c.DevServer.JWTSecret == "" {
		return errors.New("invalid configuration: devserver.jwt_secret (JARDIN_DEVSERVER_JWT_SECRET) is required")
	}
	if c.DevServer.Port == "" {
		return errors.New("invalid configuration: devserver.port is required")
	}
	return nil
}

// BaseURL returns the API base URL without a trailing slash.
func (c *Config) BaseURL() string {
	return strings.TrimRight(c.API.BaseURL, "/")
}

func expandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return p
		}
		return filepath.Join(home, strings.TrimPrefix(p, "~"))
	}
	return p
}
