// Package event provides the in-process event bus for gameplay notifications.
package event

import (
	"context"
	"fmt"
	"sync"

	"github.com/osse101/shooter-mock-api/internal/domain"
	"github.com/osse101/shooter-mock-api/internal/logger"
)

// Type represents the type of an event
type Type string

// Gameplay event types
const (
	PlayerCreated Type = domain.EventTypePlayerCreated
	WeaponFired   Type = domain.EventTypeWeaponFired
	EnemySpawned  Type = domain.EventTypeEnemySpawned
	ItemUsed      Type = domain.EventTypeItemUsed
	PlayerLevelUp Type = domain.EventTypePlayerLevelUp
)

// GameplayTypes lists every event type the gameplay service publishes
var GameplayTypes = []Type{PlayerCreated, WeaponFired, EnemySpawned, ItemUsed, PlayerLevelUp}

// Metadata defines the type for event metadata
type Metadata map[string]interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata,omitempty"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// Type-safe event constructors

// NewPlayerCreatedEvent creates a player created event
func NewPlayerCreatedEvent(player domain.Player) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PlayerCreated,
		Payload: domain.PlayerCreatedPayload{
			PlayerID: player.ID,
			Name:     player.Name,
		},
	}
}

// NewWeaponFiredEvent creates a weapon fired event. ammoLeft is the catalog ammo after the shot.
func NewWeaponFiredEvent(shot domain.ShotResult, ammoLeft int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    WeaponFired,
		Payload: domain.WeaponFiredPayload{
			PlayerID:      shot.PlayerID,
			WeaponID:      shot.WeaponID,
			Hit:           shot.Hit,
			AmmoLeft:      ammoLeft,
			TargetEnemyID: shot.TargetEnemyID,
		},
	}
}

// NewEnemySpawnedEvent creates an enemy spawned event
func NewEnemySpawnedEvent(enemy domain.Enemy) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    EnemySpawned,
		Payload: domain.EnemySpawnedPayload{
			EnemyID: enemy.ID,
			Type:    enemy.Type,
			Health:  enemy.Health,
		},
	}
}

// NewItemUsedEvent creates an item used event
func NewItemUsedEvent(playerID, itemType string, success bool) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemUsed,
		Payload: domain.ItemUsedPayload{
			PlayerID: playerID,
			ItemType: itemType,
			Success:  success,
		},
	}
}

// NewPlayerLevelUpEvent creates a level up event
func NewPlayerLevelUpEvent(playerID string, oldLevel, newLevel int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PlayerLevelUp,
		Payload: domain.PlayerLevelUpPayload{
			PlayerID: playerID,
			OldLevel: oldLevel,
			NewLevel: newLevel,
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	// Handlers run synchronously on the publisher's goroutine.
	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// PublishBestEffort publishes and logs a failure instead of returning it.
// Gameplay results never depend on subscribers; a nil bus is a no-op.
func PublishBestEffort(ctx context.Context, bus Bus, evt Event) {
	if bus == nil {
		return
	}
	if err := bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event_type", evt.Type, "error", err)
	}
}
