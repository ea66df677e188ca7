package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultRateLimitRPS   = 50.0
	defaultRateLimitBurst = 10

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultBulkWorkers = 4
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"mailer.base_url":                        "http://localhost:8081",
		"mailer.timeout":                         "30s",
		"mailer.retry.max_attempts":              defaultRetryMaxAttempts,
		"mailer.retry.initial_interval":          "100ms",
		"mailer.retry.max_interval":              "10s",
		"mailer.retry.multiplier":                defaultRetryMultiplier,
		"mailer.rate_limit.requests_per_second":  defaultRateLimitRPS,
		"mailer.rate_limit.burst_size":           defaultRateLimitBurst,
		"mailer.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"mailer.circuit_breaker.timeout":         "30s",
		"mailer.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,

		"store.snapshot_path": "",

		"notify.bulk_workers": defaultBulkWorkers,

		"telemetry.enabled":  false,
		"telemetry.exporter": "stdout",
		"telemetry.endpoint": "",
	}
}
