package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "https://api.geoapify.com/v1", cfg.Geoapify.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Geoapify.Timeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "production", cfg.Log.Env)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("GEOAPIFY_API_KEY", "test-key")
	t.Setenv("GEOAPIFY_BASE_URL", "http://localhost:9999/v1")
	t.Setenv("GEOAPIFY_TIMEOUT_SECONDS", "3")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()

	assert.Equal(t, "test-key", cfg.Geoapify.APIKey)
	assert.Equal(t, "http://localhost:9999/v1", cfg.Geoapify.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Geoapify.Timeout)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestValidate(t *testing.T) {
	cfg := Load()
	cfg.Geoapify.APIKey = ""
	assert.Error(t, cfg.Validate())

	cfg.Geoapify.APIKey = "key"
	assert.NoError(t, cfg.Validate())

	cfg.Geoapify.Timeout = 0
	assert.Error(t, cfg.Validate())
}
