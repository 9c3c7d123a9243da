package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically. All problems are reported together.
func (c *Config) Validate() error {
	var errs []error

	if len(c.Auth.JWTSecret) < 32 {
		errs = append(errs, fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret)))
	}
	if strings.TrimSpace(c.Auth.JWTIssuer) == "" {
		errs = append(errs, errors.New("auth.jwt_issuer must not be empty"))
	}
	if c.Auth.Leeway < 0 {
		errs = append(errs, fmt.Errorf("auth.leeway must be >= 0 (got %s)", c.Auth.Leeway))
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port))
	}
	if c.Server.MaxBodyBytes <= 0 {
		errs = append(errs, fmt.Errorf("server.max_body_bytes must be > 0 (got %d)", c.Server.MaxBodyBytes))
	}

	if c.Database.MinConns > c.Database.MaxConns {
		errs = append(errs, fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns))
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format))
	}

	if c.RateLimit.Enabled && c.RateLimit.RequestsPerMinute <= 0 {
		errs = append(errs, fmt.Errorf("rate_limit.requests_per_minute must be > 0 (got %d)", c.RateLimit.RequestsPerMinute))
	}

	if err := c.Timer.validate(); err != nil {
		errs = append(errs, fmt.Errorf("timer: %w", err))
	}

	return errors.Join(errs...)
}

func (t TimerConfig) validate() error {
	if t.MaxSessionHours <= 0 {
		return fmt.Errorf("max_session_hours must be > 0 (got %d)", t.MaxSessionHours)
	}
	if t.FutureSkew < 0 {
		return fmt.Errorf("future_skew must be >= 0 (got %s)", t.FutureSkew)
	}
	if t.ListDefaultLimit <= 0 || t.ListMaxLimit <= 0 {
		return fmt.Errorf("list limits must be > 0 (got default %d, max %d)", t.ListDefaultLimit, t.ListMaxLimit)
	}
	if t.ListDefaultLimit > t.ListMaxLimit {
		return fmt.Errorf("list_default_limit (%d) must not exceed list_max_limit (%d)", t.ListDefaultLimit, t.ListMaxLimit)
	}
	return nil
}
