// Package config loads application settings from the environment.
package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `env:"PORT" envDefault:"3000"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"shooter-mock-api"`
	Version     string `env:"VERSION" envDefault:"1.0.0"`

	// RNGSeed of 0 seeds the gameplay random source from the clock
	RNGSeed int64 `env:"RNG_SEED" envDefault:"0"`

	MaxBodyBytes int64 `env:"MAX_BODY_BYTES" envDefault:"1048576"`

	// WeaponsFile replaces the built-in weapon catalog when set
	WeaponsFile string `env:"WEAPONS_FILE"`

	// RateLimitPerWindow of 0 disables the per-IP activity limit
	RateLimitPerWindow int           `env:"RATE_LIMIT_PER_WINDOW" envDefault:"0"`
	RateLimitWindow    time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"5m"`

	// TrustedProxies may set X-Forwarded-For; everyone else is keyed by remote address
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`

	CORSAllowedOrigin string        `env:"CORS_ALLOWED_ORIGIN" envDefault:"*"`
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load(EnvFile)

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

// RateLimitEnabled reports whether the per-IP activity limit is active
func (c *Config) RateLimitEnabled() bool {
	return c.RateLimitPerWindow > 0
}
