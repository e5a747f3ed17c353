package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"tripshare/app/utils/security"
)

// Config holds all configuration for the tripshare service
type Config struct {
	// Server
	Port     string `yaml:"port"`
	Host     string `yaml:"host"`
	LogLevel string `yaml:"log_level"`

	// Database
	DatabaseHost     string `yaml:"db_host"`
	DatabasePort     string `yaml:"db_port"`
	DatabaseName     string `yaml:"db_name"`
	DatabaseUser     string `yaml:"db_user"`
	DatabasePassword string `yaml:"-"`
	DatabaseSSLMode  string `yaml:"db_ssl_mode"`

	// Access tokens and passwords
	HashCost int `yaml:"hash_cost"`

	// Sessions
	JWTSecret  string        `yaml:"-"`
	SessionTTL time.Duration `yaml:"-"`

	// Object storage (S3-compatible; R2 in production)
	StorageEndpoint        string        `yaml:"storage_endpoint"`
	StorageRegion          string        `yaml:"storage_region"`
	StorageBucket          string        `yaml:"storage_bucket"`
	StorageAccessKeyID     string        `yaml:"-"`
	StorageSecretAccessKey string        `yaml:"-"`
	PresignTTL             time.Duration `yaml:"-"`

	// Features
	EnableMetrics bool `yaml:"enable_metrics"`

	// CORS
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// Load reads configuration from environment variables, optionally overlaid
// by a YAML file named in CONFIG_FILE. Env vars win over the file; secrets
// are env-only.
func Load() (*Config, error) {
	config := &Config{}

	// YAML overlay first so env vars can override it
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadYAML(path, config); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	// Server configuration
	config.Port = getEnvOrDefault("PORT", defaultStr(config.Port, "8080"))
	config.Host = getEnvOrDefault("HOST", defaultStr(config.Host, "0.0.0.0"))
	config.LogLevel = getEnvOrDefault("LOG_LEVEL", defaultStr(config.LogLevel, "info"))

	// Database configuration
	config.DatabaseHost = getEnvOrDefault("DB_HOST", defaultStr(config.DatabaseHost, "tripshare-postgres"))
	config.DatabasePort = getEnvOrDefault("DB_PORT", defaultStr(config.DatabasePort, "5432"))
	config.DatabaseName = getEnvOrDefault("DB_NAME", defaultStr(config.DatabaseName, "tripshare_db"))
	config.DatabaseUser = getEnvOrDefault("DB_USER", defaultStr(config.DatabaseUser, "tripshare_user"))
	config.DatabasePassword = os.Getenv("DB_PASSWORD")
	if config.DatabasePassword == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}
	config.DatabaseSSLMode = getEnvOrDefault("DB_SSL_MODE", defaultStr(config.DatabaseSSLMode, "require"))

	// Hashing configuration
	var err error
	hashCostDefault := config.HashCost
	if hashCostDefault == 0 {
		hashCostDefault = 12
	}
	config.HashCost, err = getIntEnv("HASH_COST", hashCostDefault)
	if err != nil {
		return nil, fmt.Errorf("invalid HASH_COST: %w", err)
	}

	// Session configuration
	config.JWTSecret = os.Getenv("JWT_SECRET")
	if config.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if config.SessionTTL == 0 {
		config.SessionTTL = 24 * time.Hour
	}
	if ttlStr := os.Getenv("SESSION_TTL"); ttlStr != "" {
		config.SessionTTL, err = time.ParseDuration(ttlStr)
		if err != nil {
			return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
		}
	}

	// Storage configuration
	config.StorageEndpoint = getEnvOrDefault("STORAGE_ENDPOINT", config.StorageEndpoint)
	config.StorageRegion = getEnvOrDefault("STORAGE_REGION", defaultStr(config.StorageRegion, "auto"))
	config.StorageBucket = getEnvOrDefault("STORAGE_BUCKET", config.StorageBucket)
	if config.StorageBucket == "" {
		return nil, fmt.Errorf("STORAGE_BUCKET is required")
	}
	config.StorageAccessKeyID = os.Getenv("STORAGE_ACCESS_KEY_ID")
	config.StorageSecretAccessKey = os.Getenv("STORAGE_SECRET_ACCESS_KEY")
	if config.StorageAccessKeyID == "" || config.StorageSecretAccessKey == "" {
		return nil, fmt.Errorf("STORAGE_ACCESS_KEY_ID and STORAGE_SECRET_ACCESS_KEY are required")
	}
	if config.PresignTTL == 0 {
		config.PresignTTL = 15 * time.Minute
	}
	if ttlStr := os.Getenv("PRESIGN_TTL"); ttlStr != "" {
		config.PresignTTL, err = time.ParseDuration(ttlStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PRESIGN_TTL: %w", err)
		}
	}

	// Feature flags
	config.EnableMetrics = getBoolEnv("ENABLE_METRICS", true)

	// CORS
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		config.AllowedOrigins = splitAndTrim(origins)
	}
	if len(config.AllowedOrigins) == 0 {
		config.AllowedOrigins = []string{"http://localhost:3000"}
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Validate port
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("invalid port: %s", c.Port)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535: %s", c.Port)
	}

	// Validate log level
	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	// Validate bcrypt cost (the hasher revalidates at construction)
	if c.HashCost < security.MinHashCost || c.HashCost > security.MaxHashCost {
		return fmt.Errorf("hash cost must be between %d and %d, got: %d", security.MinHashCost, security.MaxHashCost, c.HashCost)
	}

	// Validate JWT secret length (minimum 32 bytes for HS256)
	if len(c.JWTSecret) < 32 {
		return fmt.Errorf("JWT secret must be at least 32 characters, got: %d", len(c.JWTSecret))
	}

	// Validate session TTL (minimum 1 minute)
	if c.SessionTTL < time.Minute {
		return fmt.Errorf("session TTL must be at least 1 minute, got: %v", c.SessionTTL)
	}

	// Validate presign TTL
	if c.PresignTTL < time.Minute || c.PresignTTL > 24*time.Hour {
		return fmt.Errorf("presign TTL must be between 1m and 24h, got: %v", c.PresignTTL)
	}

	return nil
}

// Helper functions

func loadYAML(path string, config *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, config)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	return strconv.Atoi(value)
}

func defaultStr(current, fallback string) string {
	if current != "" {
		return current
	}
	return fallback
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
