// Package config provides configuration loading and validation for the
// tasksync binaries. Configuration is loaded from YAML files with environment
// variable overrides using a layered system:
// defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for both the taskview client and the
// taskapi reference server. Each binary reads the sections it needs.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Client    ClientConfig    `koanf:"client"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	View      ViewConfig      `koanf:"view"`
	Auth      AuthConfig      `koanf:"auth"`
	Store     StoreConfig     `koanf:"store"`
}

// ServerConfig holds HTTP server settings for the reference task API.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`

	// RequestTimeout bounds handler work. It must leave room inside
	// WriteTimeout for the 504 to be written.
	RequestTimeout time.Duration `koanf:"request_timeout"`

	// ShutdownTimeout is how long in-flight requests may drain after a
	// stop signal.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// LogConfig holds structured logging settings. File is only read by the
// terminal view, which cannot log to stderr while it owns the screen; when
// empty the view does not log.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	File   string `koanf:"file"`
}

// ClientConfig holds settings for the outbound task API client.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
// MaxAttempts of 1 disables retries.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds client-side rate limiting. A zero RequestsPerSecond
// disables the limiter.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

// ViewConfig holds settings for the task view. PageSize is fixed for the
// lifetime of a session.
type ViewConfig struct {
	PageSize int  `koanf:"page_size"`
	DarkMode bool `koanf:"dark_mode"`
}

// AuthConfig holds token settings for the reference task API.
type AuthConfig struct {
	JWTSecret string        `koanf:"jwt_secret"`
	Issuer    string        `koanf:"issuer"`
	TokenTTL  time.Duration `koanf:"token_ttl"`
}

// StoreConfig holds the reference task API's SQLite settings.
type StoreConfig struct {
	Path         string `koanf:"path"`
	MaxOpenConns int    `koanf:"max_open_conns"`
}
