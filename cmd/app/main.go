package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/shooter-mock-api/internal/bootstrap"
	"github.com/osse101/shooter-mock-api/internal/catalog"
	"github.com/osse101/shooter-mock-api/internal/config"
	"github.com/osse101/shooter-mock-api/internal/gameplay"
	"github.com/osse101/shooter-mock-api/internal/random"
	"github.com/osse101/shooter-mock-api/internal/repository"
	"github.com/osse101/shooter-mock-api/internal/server"
	"github.com/osse101/shooter-mock-api/internal/sse"
)

// endpoints is printed once the listener is up
var endpoints = []string{
	"GET  /api/health",
	"POST /api/players",
	"GET  /api/players/{playerId}",
	"POST /api/players/{playerId}/shoot",
	"POST /api/enemies/spawn",
	"GET  /api/players/{playerId}/inventory",
	"POST /api/players/{playerId}/use-item",
	"POST /api/players/{playerId}/level-up",
	"GET  /api/stats",
	"GET  /api/weapons",
	"GET  /api/events",
	"GET  /metrics",
	"GET  /swagger/index.html",
}

// @title Shooter Mock API
// @version 1.0.0
// @description Mock gameplay API for load testing shooter clients.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := bootstrap.SetupLogger(cfg)

	hub := sse.NewHub()
	hub.Start()

	eventBus, err := bootstrap.InitializeEventSystem(hub)
	if err != nil {
		logger.Error("Failed to initialize event system", "error", err)
		os.Exit(1)
	}

	weapons, err := catalog.NewLoader().Load(cfg.WeaponsFile)
	if err != nil {
		logger.Error("Failed to load weapon catalog", "error", err)
		os.Exit(1)
	}

	svc := gameplay.NewService(
		repository.NewMemoryWithWeapons(weapons),
		random.NewSeeded(cfg.RNGSeed),
		eventBus,
		cfg.Version,
		nil,
	)

	srv := server.NewServer(cfg, svc, hub)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	fmt.Printf("🎮 Shooter mock API listening on http://localhost%s\n", srv.Addr())
	for _, e := range endpoints {
		fmt.Printf("   %s\n", e)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server: srv,
		Hub:    hub,
	})
}
