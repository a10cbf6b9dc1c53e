package config

import (
	"fmt"
	"os"
	"strconv"
)

// Session backend selection
const (
	SessionBackendFile  = "file"
	SessionBackendRedis = "redis"
)

// Config holds application configuration
type Config struct {
	APIBaseURL      string
	ServerPort      string
	FrontendURL     string
	SessionBackend  string
	SessionDir      string
	RedisURL        string
	HTTPTimeoutSecs int
	LoginRateLimit  string
	EnableHSTS      bool
	ServerDebugMode bool
	OTELEnabled     bool
	OTELEndpoint    string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		APIBaseURL:      getEnv("API_BASE_URL", "https://localhost:7154"),
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		FrontendURL:     getEnv("FRONTEND_URL", "http://localhost:3000"),
		SessionBackend:  getEnv("SESSION_BACKEND", SessionBackendFile),
		SessionDir:      getEnv("SESSION_DIR", ""),
		RedisURL:        getEnv("REDIS_URL", ""),
		HTTPTimeoutSecs: getEnvInt("HTTP_TIMEOUT_SECONDS", 30),
		LoginRateLimit:  getEnv("LOGIN_RATE_LIMIT", "10-M"),
		EnableHSTS:      getEnvBool("ENABLE_HSTS", false),
		ServerDebugMode: getEnvBool("SERVER_DEBUG_MODE", false),
		OTELEnabled:     getEnvBool("OTEL_ENABLED", false),
		OTELEndpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("API_BASE_URL is required")
	}
	switch c.SessionBackend {
	case SessionBackendFile:
	case SessionBackendRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("REDIS_URL is required when SESSION_BACKEND is 'redis'")
		}
	default:
		return fmt.Errorf("invalid SESSION_BACKEND %q (must be 'file' or 'redis')", c.SessionBackend)
	}
	if c.HTTPTimeoutSecs <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT_SECONDS must be positive")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
