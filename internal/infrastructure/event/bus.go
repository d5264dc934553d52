package event

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/Abdelrahman-cSharp/UShop/internal/domain/shared"
)

// InMemoryBus is a synchronous in-process event bus. Handlers run in
// the publisher's goroutine; a failing handler is logged but does not
// stop delivery to the remaining handlers.
type InMemoryBus struct {
	mu       sync.RWMutex
	handlers map[string][]shared.EventHandler
	all      []shared.EventHandler
	logger   *zap.Logger
}

// NewInMemoryBus creates a new in-memory event bus
func NewInMemoryBus(logger *zap.Logger) *InMemoryBus {
	return &InMemoryBus{
		handlers: make(map[string][]shared.EventHandler),
		logger:   logger,
	}
}

// Subscribe registers a handler for specific event types.
// With no event types the handler receives every event.
func (b *InMemoryBus) Subscribe(handler shared.EventHandler, eventTypes ...string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(eventTypes) == 0 {
		eventTypes = handler.EventTypes()
	}
	if len(eventTypes) == 0 {
		b.all = append(b.all, handler)
		return
	}
	for _, t := range eventTypes {
		b.handlers[t] = append(b.handlers[t], handler)
	}
}

// Publish delivers events to all matching handlers
func (b *InMemoryBus) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, event := range events {
		for _, handler := range b.all {
			b.dispatch(ctx, handler, event)
		}
		for _, handler := range b.handlers[event.EventType()] {
			b.dispatch(ctx, handler, event)
		}
	}
	return nil
}

func (b *InMemoryBus) dispatch(ctx context.Context, handler shared.EventHandler, event shared.DomainEvent) {
	if err := handler.Handle(ctx, event); err != nil {
		b.logger.Warn("event handler failed",
			zap.String("event_type", event.EventType()),
			zap.String("event_id", event.EventID().String()),
			zap.Error(err))
	}
}
