package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 1
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultPageSize     = 5
	defaultMaxOpenConns = 1
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":             "0.0.0.0",
		"server.port":             defaultServerPort,
		"server.read_timeout":     "5s",
		"server.write_timeout":    "10s",
		"server.idle_timeout":     "120s",
		"server.request_timeout":  "8s",
		"server.shutdown_timeout": "15s",

		"log.level":  "info",
		"log.format": "json",
		"log.file":   "",

		"client.base_url":                        "http://localhost:8080",
		"client.timeout":                         "15s",
		"client.retry.max_attempts":              defaultRetryMaxAttempts,
		"client.retry.initial_interval":          "100ms",
		"client.retry.max_interval":              "2s",
		"client.retry.multiplier":                defaultRetryMultiplier,
		"client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"client.rate_limit.requests_per_second":  0,
		"client.rate_limit.burst_size":           1,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "tasksync",

		"view.page_size": defaultPageSize,
		"view.dark_mode": false,

		"auth.jwt_secret": "",
		"auth.issuer":     "taskapi",
		"auth.token_ttl":  "24h",

		"store.path":           "taskapi.db",
		"store.max_open_conns": defaultMaxOpenConns,
	}
}
