// Package config loads service configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string

	// Cache configuration
	CacheMaxSize    int
	CacheDefaultTTL time.Duration

	// Rate limiter configuration
	RateLimitMaxEvents int
	RateLimitWindow    time.Duration

	// Logging
	LogLevel string

	// Metrics
	MetricsNamespace string

	// CORS
	EnableCORS         bool
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables, applying
// development defaults for anything unset.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),

		CacheMaxSize:    getEnvInt("CACHE_MAX_SIZE", 256),
		CacheDefaultTTL: time.Duration(getEnvInt("CACHE_DEFAULT_TTL_SECONDS", 300)) * time.Second,

		RateLimitMaxEvents: getEnvInt("RATE_LIMIT_MAX_EVENTS", 100),
		RateLimitWindow:    time.Duration(getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60)) * time.Second,

		LogLevel:         getEnv("LOG_LEVEL", "info"),
		MetricsNamespace: getEnv("METRICS_NAMESPACE", "knowcore"),

		EnableCORS:         getEnvBool("ENABLE_CORS", true),
		CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.CacheMaxSize <= 0 {
		return fmt.Errorf("CACHE_MAX_SIZE must be positive, got %d", c.CacheMaxSize)
	}
	if c.RateLimitMaxEvents <= 0 {
		return fmt.Errorf("RATE_LIMIT_MAX_EVENTS must be positive, got %d", c.RateLimitMaxEvents)
	}
	if c.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW_SECONDS must be positive, got %s", c.RateLimitWindow)
	}
	return nil
}

// IsDevelopment checks if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
