package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 256, cfg.CacheMaxSize)
	assert.Equal(t, 5*time.Minute, cfg.CacheDefaultTTL)
	assert.Equal(t, 100, cfg.RateLimitMaxEvents)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
	assert.True(t, cfg.EnableCORS)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", ":9090")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("CACHE_MAX_SIZE", "64")
	t.Setenv("CACHE_DEFAULT_TTL_SECONDS", "30")
	t.Setenv("RATE_LIMIT_MAX_EVENTS", "10")
	t.Setenv("RATE_LIMIT_WINDOW_SECONDS", "5")
	t.Setenv("ENABLE_CORS", "false")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.ServerAddress)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 64, cfg.CacheMaxSize)
	assert.Equal(t, 30*time.Second, cfg.CacheDefaultTTL)
	assert.Equal(t, 10, cfg.RateLimitMaxEvents)
	assert.Equal(t, 5*time.Second, cfg.RateLimitWindow)
	assert.False(t, cfg.EnableCORS)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"zero cache size", "CACHE_MAX_SIZE", "0"},
		{"negative cache size", "CACHE_MAX_SIZE", "-5"},
		{"zero rate limit", "RATE_LIMIT_MAX_EVENTS", "0"},
		{"zero window", "RATE_LIMIT_WINDOW_SECONDS", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestGetEnvIntIgnoresGarbage(t *testing.T) {
	t.Setenv("CACHE_MAX_SIZE", "not-a-number")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 256, cfg.CacheMaxSize)
}
