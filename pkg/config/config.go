package config

import (
	"os"
	"strconv"
	"time"

	"github.com/geomaps/locationkit/pkg/errors"
)

// Config holds all SDK configuration
type Config struct {
	Geoapify GeoapifyConfig
	Log      LogConfig
}

// GeoapifyConfig holds Geoapify provider configuration
type GeoapifyConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string
	Env   string
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Geoapify: GeoapifyConfig{
			APIKey:  getEnv("GEOAPIFY_API_KEY", ""),
			BaseURL: getEnv("GEOAPIFY_BASE_URL", "https://api.geoapify.com/v1"),
			Timeout: time.Duration(getEnvAsInt("GEOAPIFY_TIMEOUT_SECONDS", 10)) * time.Second,
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			Env:   getEnv("APP_ENV", "production"),
		},
	}
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if c.Geoapify.APIKey == "" {
		return errors.NewValidationError("GEOAPIFY_API_KEY must be set")
	}
	if c.Geoapify.Timeout <= 0 {
		return errors.NewValidationError("GEOAPIFY_TIMEOUT_SECONDS must be positive")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
