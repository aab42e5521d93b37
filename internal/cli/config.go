package cli

import (
	"os"
	"strconv"
	"time"
)

// Config is the CLI's environment-derived configuration.
type Config struct {
	ClientID   string        // Required for login/refresh: OAuth2 client ID
	BaseURL    string        // Optional: API host override (default: production)
	Timeout    time.Duration // Optional: per-request timeout (default: 30s)
	MaxRetries int           // Optional: attempts per request (default: 3)
	TokenFile  string        // Optional: token file path (default: user config dir)

	Env       string // Environment (dev, staging, prod) (default: dev)
	LogLevel  string // Log level (debug, info, warn, error) (default: info)
	LogFormat string // Log format (json, text) (default: text)
}

// LoadConfig reads configuration from EUROLEAGUE_* environment variables.
func LoadConfig() Config {
	return Config{
		ClientID:   os.Getenv("EUROLEAGUE_CLIENT_ID"),
		BaseURL:    getEnvOrDefault("EUROLEAGUE_BASE_URL", ""),
		Timeout:    getEnvDurationOrDefault("EUROLEAGUE_TIMEOUT", 30*time.Second),
		MaxRetries: getEnvIntOrDefault("EUROLEAGUE_MAX_RETRIES", 3),
		TokenFile:  os.Getenv("EUROLEAGUE_TOKEN_FILE"),
		Env:        getEnvOrDefault("ENV", "dev"),
		LogLevel:   getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:  getEnvOrDefault("LOG_FORMAT", "text"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
