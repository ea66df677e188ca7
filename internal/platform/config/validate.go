package config

import (
	"errors"
	"fmt"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Mailer.validate(),
		c.Notify.validate(),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (m *MailerConfig) validate() error {
	var errs []error

	if m.BaseURL == "" {
		errs = append(errs, errors.New("mailer.base_url must not be empty"))
	}
	if m.Timeout <= 0 {
		errs = append(errs, errors.New("mailer.timeout must be positive"))
	}
	if m.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("mailer.retry.max_attempts must be >= 1, got %d", m.Retry.MaxAttempts))
	}
	if m.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("mailer.retry.multiplier must be positive, got %f", m.Retry.Multiplier))
	}
	if m.RateLimit.RequestsPerSecond <= 0 {
		errs = append(errs, fmt.Errorf("mailer.rate_limit.requests_per_second must be positive, got %f",
			m.RateLimit.RequestsPerSecond))
	}
	if m.RateLimit.BurstSize < 1 {
		errs = append(errs, fmt.Errorf("mailer.rate_limit.burst_size must be >= 1, got %d", m.RateLimit.BurstSize))
	}
	if m.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("mailer.circuit_breaker.max_failures must be >= 1, got %d",
			m.CircuitBreaker.MaxFailures))
	}

	return errors.Join(errs...)
}

func (n *NotifyConfig) validate() error {
	if n.BulkWorkers < 1 {
		return fmt.Errorf("notify.bulk_workers must be >= 1, got %d", n.BulkWorkers)
	}
	return nil
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}
