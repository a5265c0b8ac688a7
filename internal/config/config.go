package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for both binaries.
type Config struct {
	App           AppConfig
	Upstream      UpstreamConfig
	Logger        LoggerConfig
	Notifications NotificationConfig
	HRAPI         HRAPIConfig
}

// AppConfig controls console server behavior.
type AppConfig struct {
	Name    string
	Env     string
	Host    string
	Port    string
	Version string
}

// UpstreamConfig points the console at the remote HR API.
type UpstreamConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// NotificationConfig controls the self-expiring status messages.
type NotificationConfig struct {
	TTLSeconds int
}

// HRAPIConfig configures the local HR API stand-in.
type HRAPIConfig struct {
	Host            string
	Port            string
	PostgresDSN     string
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	CacheTTLSeconds int
}

// Load reads configuration from environment variables, applying defaults
// where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("HRAPI_REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid HRAPI_REDIS_DB: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:    getEnv("APP_NAME", "employee-console"),
			Env:     getEnv("APP_ENV", "development"),
			Host:    getEnv("APP_HOST", "0.0.0.0"),
			Port:    getEnv("APP_PORT", "3000"),
			Version: getEnv("APP_VERSION", "dev"),
		},
		Upstream: UpstreamConfig{
			BaseURL:        getEnv("UPSTREAM_BASE_URL", "http://localhost:8080/api"),
			TimeoutSeconds: getEnvAsInt("UPSTREAM_TIMEOUT_SECONDS", 10),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Notifications: NotificationConfig{
			TTLSeconds: getEnvAsInt("NOTIFY_TTL_SECONDS", 3),
		},
		HRAPI: HRAPIConfig{
			Host:            getEnv("HRAPI_HOST", "0.0.0.0"),
			Port:            getEnv("HRAPI_PORT", "8080"),
			PostgresDSN:     os.Getenv("HRAPI_POSTGRES_DSN"),
			RedisAddr:       getEnv("HRAPI_REDIS_ADDR", ""),
			RedisPassword:   os.Getenv("HRAPI_REDIS_PASSWORD"),
			RedisDB:         redisDB,
			CacheTTLSeconds: getEnvAsInt("HRAPI_CACHE_TTL_SECONDS", 30),
		},
	}

	return cfg, nil
}

// Addr returns the console bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// Timeout returns the upstream HTTP client timeout.
func (u UpstreamConfig) Timeout() time.Duration {
	if u.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(u.TimeoutSeconds) * time.Second
}

// TTL returns how long a notification stays visible.
func (n NotificationConfig) TTL() time.Duration {
	if n.TTLSeconds <= 0 {
		return 3 * time.Second
	}
	return time.Duration(n.TTLSeconds) * time.Second
}

// Addr returns the HR API bind address.
func (h HRAPIConfig) Addr() string {
	return fmt.Sprintf("%s:%s", h.Host, h.Port)
}

// CacheTTL returns how long cached list responses remain valid.
func (h HRAPIConfig) CacheTTL() time.Duration {
	if h.CacheTTLSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(h.CacheTTLSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}
