package bootstrap

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/shooter-mock-api/internal/config"
	"github.com/osse101/shooter-mock-api/internal/domain"
	"github.com/osse101/shooter-mock-api/internal/event"
	"github.com/osse101/shooter-mock-api/internal/server"
	"github.com/osse101/shooter-mock-api/internal/sse"
)

func TestInitializeEventSystem_ForwardsToHub(t *testing.T) {
	hub := sse.NewHub()
	hub.Start()
	defer hub.Stop()

	bus, err := InitializeEventSystem(hub)
	require.NoError(t, err)

	client := hub.Register(nil)
	// registration goes through the hub loop
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	require.NoError(t, bus.Publish(context.Background(), event.NewEnemySpawnedEvent(domain.Enemy{ID: "e1", Type: domain.EnemyZombie})))

	select {
	case evt := <-client.EventChannel:
		assert.Equal(t, string(event.EnemySpawned), evt.Type)
	case <-time.After(time.Second):
		t.Fatal("expected the spawn event on the SSE client")
	}
}

func TestSetupLogger_UsesConfig(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	cfg := &config.Config{LogLevel: "warn", LogFormat: "json", ServiceName: "svc", Version: "2.0.0", Environment: "prod"}
	l := SetupLogger(cfg)

	assert.False(t, l.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, l.Enabled(context.Background(), slog.LevelWarn))
	assert.Same(t, l, slog.Default())
}

func TestGracefulShutdown_ClosesStreams(t *testing.T) {
	var logs bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	hub := sse.NewHub()
	hub.Start()

	ts := httptest.NewServer(sse.Handler(hub))
	defer ts.Close()

	resp, err := http.Get(ts.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	srv := server.NewServer(&config.Config{Port: 0, MaxBodyBytes: 1024, RateLimitWindow: time.Minute}, nil, hub)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	GracefulShutdown(ctx, ShutdownComponents{Server: srv, Hub: hub})

	assert.Equal(t, 0, hub.ClientCount())
	assert.True(t, strings.Contains(logs.String(), LogMsgServerStopped))
}
