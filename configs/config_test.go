package configs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("JARDIN_CONFIG", "")
	t.Setenv("JARDIN_API_BASE_URL", "")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", cfg.API.BaseURL)
	assert.Equal(t, 60*time.Second, cfg.API.ConnectTimeout)
	assert.Equal(t, 2, cfg.API.MaxRetries)
	assert.Equal(t, SessionBackendFile, cfg.Session.Backend)
	assert.NotContains(t, cfg.Session.FilePath, "~", "home directory should be expanded")
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "jardin.yaml")
	yaml := `
api:
  base_url: http://10.0.2.2:8000
  read_timeout: 5s
session:
  backend: redis
  redis_key: garden:session
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))
	t.Setenv("JARDIN_API_BASE_URL", "https://plants.example.com/")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "https://plants.example.com/", cfg.API.BaseURL)
	assert.Equal(t, "https://plants.example.com", cfg.BaseURL())
	assert.Equal(t, 5*time.Second, cfg.API.ReadTimeout)
	assert.Equal(t, SessionBackendRedis, cfg.Session.Backend)
	assert.Equal(t, "garden:session", cfg.Session.RedisKey)
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	base := func() *Config {
		return &Config{
			API:     APIConfig{BaseURL: "http://localhost:8000"},
			Session: SessionConfig{Backend: SessionBackendFile, FilePath: "/tmp/s.json"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "Valid", mutate: func(c *Config) {}},
		{name: "Relative base URL", mutate: func(c *Config) { c.API.BaseURL = "localhost:8000" }, wantErr: "api.base_url"},
		{name: "Negative retries", mutate: func(c *Config) { c.API.MaxRetries = -1 }, wantErr: "max_retries"},
		{name: "Postgres without DSN", mutate: func(c *Config) { c.Session.Backend = SessionBackendPostgres }, wantErr: "postgres_dsn"},
		{name: "Unknown backend", mutate: func(c *Config) { c.Session.Backend = "sqlite" }, wantErr: "unknown session.backend"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := base()
			tc.mutate(c)
			err := c.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestConfig_ValidateDevServer(t *testing.T) {
	c := &Config{DevServer: DevServerConfig{Port: "8000"}}
	assert.Error(t, c.ValidateDevServer())

	c.DevServer.JWTSecret = "s3cret"
	assert.NoError(t, c.ValidateDevServer())
}
