package event

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/shooter-mock-api/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	handled := false

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		if event.Type != eventType {
			t.Errorf("Expected event type %s, got %s", eventType, event.Type)
		}
		if event.Payload.(string) != "payload" {
			t.Errorf("Expected payload 'payload', got %v", event.Payload)
		}
		handled = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{
		Version: "1.0",
		Type:    eventType,
		Payload: "payload",
	})

	if err != nil {
		t.Errorf("Publish returned error: %v", err)
	}

	if !handled {
		t.Error("Handler was not called")
	}
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	count := 0

	handler := func(ctx context.Context, event Event) error {
		count++
		return nil
	}

	bus.Subscribe(eventType, handler)
	bus.Subscribe(eventType, handler)

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType})
	if err != nil {
		t.Errorf("Publish returned error: %v", err)
	}

	if count != 2 {
		t.Errorf("Expected 2 handlers to be called, got %d", count)
	}
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		return errors.New("handler error")
	})

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType})
	if err == nil {
		t.Error("Expected error from Publish, got nil")
	}
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	err := NewMemoryBus().Publish(context.Background(), Event{Type: WeaponFired})
	assert.NoError(t, err)
}

func TestPublishBestEffort_SwallowsErrors(t *testing.T) {
	bus := NewMemoryBus()
	calls := 0
	bus.Subscribe(ItemUsed, func(ctx context.Context, event Event) error {
		calls++
		return errors.New("subscriber down")
	})

	assert.NotPanics(t, func() {
		PublishBestEffort(context.Background(), bus, NewItemUsedEvent("p1", domain.ItemGrenade, true))
		PublishBestEffort(context.Background(), nil, NewItemUsedEvent("p1", domain.ItemGrenade, true))
	})
	assert.Equal(t, 1, calls)
}

func TestConstructors(t *testing.T) {
	shot := domain.ShotResult{PlayerID: "p1", WeaponID: domain.WeaponRifle, Hit: true, TargetEnemyID: "e1"}
	evt := NewWeaponFiredEvent(shot, 29)

	assert.Equal(t, WeaponFired, evt.Type)
	assert.Equal(t, EventSchemaVersion, evt.Version)

	payload, err := DecodePayload[domain.WeaponFiredPayload](evt.Payload)
	require.NoError(t, err)
	assert.Equal(t, 29, payload.AmmoLeft)
	assert.Equal(t, "e1", payload.TargetEnemyID)

	lvl := NewPlayerLevelUpEvent("p1", 1, 2)
	lp, err := DecodePayload[domain.PlayerLevelUpPayload](lvl.Payload)
	require.NoError(t, err)
	assert.Equal(t, 2, lp.NewLevel)
}

func TestDecodePayload_JSONFallback(t *testing.T) {
	raw := map[string]interface{}{"enemy_id": "e9", "type": "robot", "health": 42}

	got, err := DecodePayload[domain.EnemySpawnedPayload](raw)
	require.NoError(t, err)
	assert.Equal(t, domain.EnemySpawnedPayload{EnemyID: "e9", Type: "robot", Health: 42}, got)
}

func TestGetMetadataValue(t *testing.T) {
	evt := Event{Metadata: Metadata{"source": "api"}}
	assert.Equal(t, "api", evt.GetMetadataValue("source"))
	assert.Nil(t, Event{}.GetMetadataValue("source"))
}
