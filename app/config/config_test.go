package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripshare/app/config"
)

// requiredEnv is the minimal environment a successful Load needs.
func requiredEnv() map[string]string {
	return map[string]string{
		"DB_PASSWORD":               "test_password",
		"JWT_SECRET":                "0123456789abcdef0123456789abcdef",
		"STORAGE_BUCKET":            "tripshare-photos",
		"STORAGE_ACCESS_KEY_ID":     "test-key",
		"STORAGE_SECRET_ACCESS_KEY": "test-secret",
	}
}

func setEnv(t *testing.T, envVars map[string]string) {
	t.Helper()
	os.Clearenv()
	for k, v := range envVars {
		t.Setenv(k, v)
	}
}

func TestConfig_Load(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		check   func(*testing.T, *config.Config)
		wantErr bool
	}{
		{
			name:    "default configuration",
			envVars: requiredEnv(),
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "8080", cfg.Port)
				assert.Equal(t, "0.0.0.0", cfg.Host)
				assert.Equal(t, "info", cfg.LogLevel)
				assert.Equal(t, "tripshare-postgres", cfg.DatabaseHost)
				assert.Equal(t, "5432", cfg.DatabasePort)
				assert.Equal(t, 12, cfg.HashCost)
				assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
				assert.Equal(t, 15*time.Minute, cfg.PresignTTL)
				assert.Equal(t, "auto", cfg.StorageRegion)
				assert.True(t, cfg.EnableMetrics)
				assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
			},
		},
		{
			name: "custom configuration",
			envVars: func() map[string]string {
				env := requiredEnv()
				env["PORT"] = "9000"
				env["LOG_LEVEL"] = "debug"
				env["HASH_COST"] = "14"
				env["SESSION_TTL"] = "2h"
				env["PRESIGN_TTL"] = "30m"
				env["ALLOWED_ORIGINS"] = "https://trips.example.com, https://staging.trips.example.com"
				return env
			}(),
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "9000", cfg.Port)
				assert.Equal(t, "debug", cfg.LogLevel)
				assert.Equal(t, 14, cfg.HashCost)
				assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
				assert.Equal(t, 30*time.Minute, cfg.PresignTTL)
				assert.Equal(t, []string{"https://trips.example.com", "https://staging.trips.example.com"}, cfg.AllowedOrigins)
			},
		},
		{
			name: "missing DB_PASSWORD",
			envVars: func() map[string]string {
				env := requiredEnv()
				delete(env, "DB_PASSWORD")
				return env
			}(),
			wantErr: true,
		},
		{
			name: "missing JWT_SECRET",
			envVars: func() map[string]string {
				env := requiredEnv()
				delete(env, "JWT_SECRET")
				return env
			}(),
			wantErr: true,
		},
		{
			name: "short JWT_SECRET rejected",
			envVars: func() map[string]string {
				env := requiredEnv()
				env["JWT_SECRET"] = "too-short"
				return env
			}(),
			wantErr: true,
		},
		{
			name: "missing storage credentials",
			envVars: func() map[string]string {
				env := requiredEnv()
				delete(env, "STORAGE_SECRET_ACCESS_KEY")
				return env
			}(),
			wantErr: true,
		},
		{
			name: "hash cost below safe range",
			envVars: func() map[string]string {
				env := requiredEnv()
				env["HASH_COST"] = "8"
				return env
			}(),
			wantErr: true,
		},
		{
			name: "hash cost above safe range",
			envVars: func() map[string]string {
				env := requiredEnv()
				env["HASH_COST"] = "25"
				return env
			}(),
			wantErr: true,
		},
		{
			name: "invalid port",
			envVars: func() map[string]string {
				env := requiredEnv()
				env["PORT"] = "not-a-port"
				return env
			}(),
			wantErr: true,
		},
		{
			name: "invalid log level",
			envVars: func() map[string]string {
				env := requiredEnv()
				env["LOG_LEVEL"] = "verbose"
				return env
			}(),
			wantErr: true,
		},
		{
			name: "invalid session TTL",
			envVars: func() map[string]string {
				env := requiredEnv()
				env["SESSION_TTL"] = "soon"
				return env
			}(),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnv(t, tt.envVars)

			cfg, err := config.Load()

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, cfg)
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestConfig_YAMLOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yamlContent := `
port: "9100"
log_level: warn
db_host: overlay-postgres
storage_bucket: overlay-bucket
allowed_origins:
  - https://overlay.example.com
`
	require.NoError(t, os.WriteFile(path, []byte(yamlContent), 0o600))

	env := requiredEnv()
	delete(env, "STORAGE_BUCKET") // provided by the overlay
	setEnv(t, env)
	t.Setenv("CONFIG_FILE", path)
	// Env var wins over the overlay value
	t.Setenv("LOG_LEVEL", "error")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "9100", cfg.Port)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, "overlay-postgres", cfg.DatabaseHost)
	assert.Equal(t, "overlay-bucket", cfg.StorageBucket)
	assert.Equal(t, []string{"https://overlay.example.com"}, cfg.AllowedOrigins)
}

func TestConfig_YAMLOverlayMissingFile(t *testing.T) {
	setEnv(t, requiredEnv())
	t.Setenv("CONFIG_FILE", "/nonexistent/config.yaml")

	cfg, err := config.Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
}
