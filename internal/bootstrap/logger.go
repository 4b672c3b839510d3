package bootstrap

import (
	"log/slog"

	"github.com/osse101/shooter-mock-api/internal/config"
	"github.com/osse101/shooter-mock-api/internal/logger"
)

// SetupLogger initializes the default logger from the application config
// and records the effective settings.
func SetupLogger(cfg *config.Config) *slog.Logger {
	l := logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		sourceEnvironments[cfg.Environment],
	))

	l.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "format", cfg.LogFormat)
	l.Info(LogMsgStartingService,
		"environment", cfg.Environment,
		"version", cfg.Version)
	l.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"rng_seed", cfg.RNGSeed,
		"max_body_bytes", cfg.MaxBodyBytes,
		"rate_limit_per_window", cfg.RateLimitPerWindow,
		"rate_limit_window", cfg.RateLimitWindow,
		"cors_allowed_origin", cfg.CORSAllowedOrigin)

	return l
}
