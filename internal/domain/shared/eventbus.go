package shared

import "context"

// EventHandler reacts to domain events. EventTypes narrows delivery to
// the named types; an empty slice subscribes to everything.
type EventHandler interface {
	Handle(ctx context.Context, event DomainEvent) error
	EventTypes() []string
}

// EventPublisher delivers events raised by aggregates after a
// successful save
type EventPublisher interface {
	Publish(ctx context.Context, events ...DomainEvent) error
}

// EventSubscriber registers handlers, optionally filtered by type
type EventSubscriber interface {
	Subscribe(handler EventHandler, eventTypes ...string)
}

// EventBus is both sides of the in-process event pipeline
type EventBus interface {
	EventPublisher
	EventSubscriber
}
