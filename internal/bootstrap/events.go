package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/shooter-mock-api/internal/event"
	"github.com/osse101/shooter-mock-api/internal/metrics"
	"github.com/osse101/shooter-mock-api/internal/sse"
)

// InitializeEventSystem creates the event bus and attaches its subscribers:
// the gameplay metrics collector and the SSE bridge feeding hub.
func InitializeEventSystem(hub *sse.Hub) (event.Bus, error) {
	eventBus := event.NewMemoryBus()

	if err := metrics.NewEventMetricsCollector().Register(eventBus); err != nil {
		return nil, fmt.Errorf("failed to register metrics collector: %w", err)
	}

	sse.NewSubscriber(hub, eventBus).Subscribe()

	slog.Info(LogMsgEventSystemInitialized, "event_types", len(event.GameplayTypes))
	return eventBus, nil
}
