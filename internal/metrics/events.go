package metrics

import (
	"context"

	"github.com/osse101/shooter-mock-api/internal/domain"
	"github.com/osse101/shooter-mock-api/internal/event"
	"github.com/osse101/shooter-mock-api/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all gameplay events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	for _, eventType := range event.GameplayTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.PlayerCreated:
		PlayersCreated.Inc()

	case event.WeaponFired:
		var p domain.WeaponFiredPayload
		if p, err = event.DecodePayload[domain.WeaponFiredPayload](evt.Payload); err == nil {
			outcome := OutcomeMiss
			if p.Hit {
				outcome = OutcomeHit
			}
			ShotsFired.WithLabelValues(p.WeaponID, outcome).Inc()
		}

	case event.EnemySpawned:
		var p domain.EnemySpawnedPayload
		if p, err = event.DecodePayload[domain.EnemySpawnedPayload](evt.Payload); err == nil {
			EnemiesSpawned.WithLabelValues(p.Type).Inc()
		}

	case event.ItemUsed:
		var p domain.ItemUsedPayload
		if p, err = event.DecodePayload[domain.ItemUsedPayload](evt.Payload); err == nil {
			outcome := OutcomeEmpty
			if p.Success {
				outcome = OutcomeSuccess
			}
			ItemsUsed.WithLabelValues(p.ItemType, outcome).Inc()
		}

	case event.PlayerLevelUp:
		LevelUps.Inc()
	}

	if err != nil {
		// A bad payload only costs a metric sample; never fail the publisher.
		log.Debug(LogMsgEventPayloadDecodeFailed, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
