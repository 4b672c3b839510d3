package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/shooter-mock-api/internal/event"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers the bridge for every gameplay event type
func (s *Subscriber) Subscribe() {
	types := make([]string, 0, len(event.GameplayTypes))
	for _, t := range event.GameplayTypes {
		s.bus.Subscribe(t, s.forward)
		types = append(types, string(t))
	}
	slog.Info(LogMsgSubscriberReady, "types", types)
}

// forward rebroadcasts the bus payload unchanged under the bus event type
func (s *Subscriber) forward(_ context.Context, evt event.Event) error {
	s.hub.Broadcast(string(evt.Type), evt.Payload)
	slog.Debug(LogMsgEventBroadcast, "event_type", evt.Type)
	return nil
}
