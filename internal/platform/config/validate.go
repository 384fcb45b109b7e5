package config

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
)

// minSecretLength is the shortest HS256 signing key taskapi accepts.
const minSecretLength = 16

// problems collects every validation failure so one run reports them all.
type problems []error

func (p *problems) check(ok bool, format string, args ...any) {
	if !ok {
		*p = append(*p, fmt.Errorf(format, args...))
	}
}

func (p problems) err() error {
	return errors.Join(p...)
}

// Validate checks the sections both binaries read.
func (c *Config) Validate() error {
	var p problems
	c.Server.validate(&p)
	c.Log.validate(&p)
	c.Client.validate(&p)
	c.Telemetry.validate(&p)
	c.View.validate(&p)
	p.check(c.Auth.TokenTTL >= 0, "auth.token_ttl must not be negative")
	return p.err()
}

// ValidateServer checks what only taskapi needs: a signing key and a
// database path. taskview never signs tokens, so Validate leaves these out.
func (c *Config) ValidateServer() error {
	var p problems
	p.check(len(c.Auth.JWTSecret) >= minSecretLength, "auth.jwt_secret must be at least %d bytes", minSecretLength)
	p.check(c.Store.Path != "", "store.path must not be empty")
	p.check(c.Store.MaxOpenConns >= 1, "store.max_open_conns must be >= 1, got %d", c.Store.MaxOpenConns)
	return p.err()
}

func (s *ServerConfig) validate(p *problems) {
	p.check(s.Port >= 1 && s.Port <= 65535, "server.port must be between 1 and 65535, got %d", s.Port)
	p.check(s.ReadTimeout > 0, "server.read_timeout must be positive")
	p.check(s.WriteTimeout > 0, "server.write_timeout must be positive")
	p.check(s.RequestTimeout >= 0, "server.request_timeout must not be negative")
	p.check(s.ShutdownTimeout >= 0, "server.shutdown_timeout must not be negative")
	p.check(s.RequestTimeout < s.WriteTimeout || s.WriteTimeout <= 0,
		"server.request_timeout (%s) must be shorter than server.write_timeout (%s)", s.RequestTimeout, s.WriteTimeout)
}

func (l *LogConfig) validate(p *problems) {
	p.check(slices.Contains([]string{"debug", "info", "warn", "error"}, l.Level),
		"log.level must be one of debug, info, warn, error; got %q", l.Level)
	p.check(slices.Contains([]string{"json", "text"}, l.Format),
		"log.format must be json or text; got %q", l.Format)
}

func (cl *ClientConfig) validate(p *problems) {
	u, err := url.Parse(cl.BaseURL)
	p.check(err == nil && u.Scheme != "" && u.Host != "", "client.base_url must be an absolute URL, got %q", cl.BaseURL)
	p.check(cl.Timeout > 0, "client.timeout must be positive")
	p.check(cl.Retry.MaxAttempts >= 1, "client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts)
	p.check(cl.Retry.Multiplier > 0, "client.retry.multiplier must be positive, got %g", cl.Retry.Multiplier)
	p.check(cl.CircuitBreaker.MaxFailures >= 1,
		"client.circuit_breaker.max_failures must be >= 1, got %d", cl.CircuitBreaker.MaxFailures)

	rl := cl.RateLimit
	p.check(rl.RequestsPerSecond >= 0, "client.rate_limit.requests_per_second must be >= 0, got %g", rl.RequestsPerSecond)
	p.check(rl.RequestsPerSecond == 0 || rl.BurstSize >= 1, "client.rate_limit.burst_size must be >= 1, got %d", rl.BurstSize)
}

func (t *TelemetryConfig) validate(p *problems) {
	if !t.Enabled {
		return
	}
	p.check(t.Exporter == "stdout" || t.Exporter == "otlp", "telemetry.exporter must be stdout or otlp; got %q", t.Exporter)
	p.check(t.Exporter != "otlp" || t.Endpoint != "", "telemetry.endpoint is required for the otlp exporter")
}

func (v *ViewConfig) validate(p *problems) {
	p.check(v.PageSize >= 1, "view.page_size must be >= 1, got %d", v.PageSize)
}
