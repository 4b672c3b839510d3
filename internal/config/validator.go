package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	validLogLevels  = []string{"debug", "info", "warn", "warning", "error"}
	validLogFormats = []string{"json", "text"}
)

// Validate checks value ranges and enumerations. All problems are reported together.
func (c *Config) Validate() error {
	var errs []error

	if c.Port < MinPort || c.Port > MaxPort {
		errs = append(errs, fmt.Errorf("invalid PORT value %d: must be between %d and %d", c.Port, MinPort, MaxPort))
	}
	if !oneOf(c.LogLevel, validLogLevels) {
		errs = append(errs, fmt.Errorf("invalid LOG_LEVEL %q: expected one of %s", c.LogLevel, strings.Join(validLogLevels, ", ")))
	}
	if !oneOf(c.LogFormat, validLogFormats) {
		errs = append(errs, fmt.Errorf("invalid LOG_FORMAT %q: expected one of %s", c.LogFormat, strings.Join(validLogFormats, ", ")))
	}
	if c.MaxBodyBytes <= 0 {
		errs = append(errs, fmt.Errorf("MAX_BODY_BYTES must be positive, got %d", c.MaxBodyBytes))
	}
	if c.RateLimitPerWindow < 0 {
		errs = append(errs, fmt.Errorf("RATE_LIMIT_PER_WINDOW must not be negative, got %d", c.RateLimitPerWindow))
	}
	if c.RateLimitEnabled() && c.RateLimitWindow <= 0 {
		errs = append(errs, fmt.Errorf("RATE_LIMIT_WINDOW must be positive when rate limiting is enabled"))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %s", c.ShutdownTimeout))
	}

	return errors.Join(errs...)
}

func oneOf(value string, allowed []string) bool {
	v := strings.ToLower(value)
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
