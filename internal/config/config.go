package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cmlabs-hris/hikvision-dashboard/internal/pkg/collation"
	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Upstream UpstreamConfig
	Breaker  BreakerConfig
	Report   ReportConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port               int
	Env                string
	LogLevel           string
	Version            string
	Locale             string
	Timezone           string
	CORSAllowedOrigins []string
}

// UpstreamConfig describes the attendance API the gateway reads from
type UpstreamConfig struct {
	BaseURL             string
	Timeout             time.Duration
	TopLateLimit        int
	HealthProbeInterval time.Duration
}

// BreakerConfig tunes the upstream circuit breaker
type BreakerConfig struct {
	MaxRequests      uint32
	Interval         time.Duration
	Timeout          time.Duration
	FailureThreshold uint32
}

type ReportConfig struct {
	// ExportBasePath prefixes the export download links, e.g. /api/v1
	ExportBasePath string
}

// Load reads .env (optional), the environment and, when DASHBOARD_CONFIG_FILE
// is set, a TOML overlay whose values take precedence.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Warn("No .env file loaded, using environment", "error", err)
	}

	config, err := fromEnv()
	if err != nil {
		return nil, err
	}

	if path := getEnv("DASHBOARD_CONFIG_FILE", ""); path != "" {
		file, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		if err := file.Apply(config); err != nil {
			return nil, fmt.Errorf("invalid config file %s: %w", path, err)
		}
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func fromEnv() (*Config, error) {
	config := &Config{}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:               appPort,
		Env:                getEnv("APP_ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		Version:            getEnv("APP_VERSION", "dev"),
		Locale:             getEnv("APP_LOCALE", collation.DefaultLocale),
		Timezone:           getEnv("APP_TIMEZONE", "Local"),
		CORSAllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
	}

	// Upstream attendance API
	timeout, err := getEnvDuration("UPSTREAM_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}
	probeInterval, err := getEnvDuration("HEALTH_PROBE_INTERVAL", time.Minute)
	if err != nil {
		return nil, err
	}
	topLateLimit, err := strconv.Atoi(getEnv("TOP_LATE_LIMIT", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid TOP_LATE_LIMIT: %w", err)
	}

	config.Upstream = UpstreamConfig{
		BaseURL:             getEnv("UPSTREAM_API_URL", "http://localhost:8000/api/v1"),
		Timeout:             timeout,
		TopLateLimit:        topLateLimit,
		HealthProbeInterval: probeInterval,
	}

	// Circuit breaker
	maxRequests, err := getEnvUint32("BREAKER_MAX_REQUESTS", 3)
	if err != nil {
		return nil, err
	}
	failureThreshold, err := getEnvUint32("BREAKER_FAILURE_THRESHOLD", 5)
	if err != nil {
		return nil, err
	}
	interval, err := getEnvDuration("BREAKER_INTERVAL", time.Minute)
	if err != nil {
		return nil, err
	}
	openTimeout, err := getEnvDuration("BREAKER_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}

	config.Breaker = BreakerConfig{
		MaxRequests:      maxRequests,
		Interval:         interval,
		Timeout:          openTimeout,
		FailureThreshold: failureThreshold,
	}

	config.Report = ReportConfig{
		ExportBasePath: getEnv("EXPORT_BASE_PATH", "/api/v1"),
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("APP_PORT must be between 1 and 65535")
	}
	if _, err := collation.New(c.App.Locale); err != nil {
		return fmt.Errorf("APP_LOCALE: %w", err)
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("APP_TIMEZONE: %w", err)
	}
	u, err := url.Parse(c.Upstream.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("UPSTREAM_API_URL must be an absolute URL")
	}
	if c.Upstream.Timeout <= 0 {
		return fmt.Errorf("UPSTREAM_TIMEOUT must be positive")
	}
	if c.Upstream.TopLateLimit < 1 || c.Upstream.TopLateLimit > 100 {
		return fmt.Errorf("TOP_LATE_LIMIT must be between 1 and 100")
	}
	if c.Upstream.HealthProbeInterval <= 0 {
		return fmt.Errorf("HEALTH_PROBE_INTERVAL must be positive")
	}
	if c.Breaker.FailureThreshold == 0 {
		return fmt.Errorf("BREAKER_FAILURE_THRESHOLD is required")
	}
	if c.Report.ExportBasePath == "" {
		return fmt.Errorf("EXPORT_BASE_PATH is required")
	}
	return nil
}

// Location returns the time zone periods are resolved in
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.App.Timezone)
}

// LogLevel maps LOG_LEVEL to a slog level, defaulting to info
func (c *Config) LogLevel() slog.Level {
	switch strings.ToLower(c.App.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(key string, fallback []string) []string {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	var result []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := getEnv(key, "")
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func getEnvUint32(key string, fallback uint32) (uint32, error) {
	value := getEnv(key, "")
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return uint32(n), nil
}
