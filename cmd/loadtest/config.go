package main

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// loadConfig describes one load run
type loadConfig struct {
	APIURL     string        `env:"API_URL" envDefault:"http://localhost:3000"`
	Players    int           `env:"LOADTEST_PLAYERS" envDefault:"50"`
	Workers    int           `env:"LOADTEST_WORKERS" envDefault:"10"`
	ShotsEach  int           `env:"LOADTEST_SHOTS" envDefault:"10"`
	ItemUses   int           `env:"LOADTEST_ITEM_USES" envDefault:"4"`
	Timeout    time.Duration `env:"LOADTEST_TIMEOUT" envDefault:"5s"`
	Seed       int64         `env:"LOADTEST_SEED" envDefault:"0"`
	FailOnUnexpected bool          `env:"LOADTEST_FAIL_ON_UNEXPECTED" envDefault:"true"`
}

func parseConfig() (loadConfig, error) {
	_ = godotenv.Load()

	var cfg loadConfig
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Players < 1 || cfg.Workers < 1 {
		return cfg, fmt.Errorf("LOADTEST_PLAYERS and LOADTEST_WORKERS must be positive")
	}
	return cfg, nil
}
