package events

import (
	"fmt"
	"time"
)

// DomainEvent is the contract every aggregate event satisfies. Events are
// immutable facts; handlers must not mutate them.
type DomainEvent interface {
	// GetAggregateID identifies the aggregate that raised the event,
	// formatted as "<kind>:<id>".
	GetAggregateID() string

	// GetEventType returns the dotted event name, e.g. "ticket.created".
	GetEventType() string

	// GetOccurredAt returns when the event was raised.
	GetOccurredAt() time.Time

	// GetVersion returns the event schema version.
	GetVersion() int
}

// BaseEvent carries the fields shared by every domain event. Concrete
// events embed it and add their own payload.
type BaseEvent struct {
	AggregateID string    `json:"aggregate_id"`
	EventType   string    `json:"event_type"`
	OccurredAt  time.Time `json:"occurred_at"`
	Version     int       `json:"version"`
}

// NewBaseEvent stamps a base event for the given aggregate. The aggregate
// ID is formatted as "<kind>:<id>" so handlers can route on it.
func NewBaseEvent(aggregateKind string, aggregateID uint, eventType string) BaseEvent {
	return BaseEvent{
		AggregateID: fmt.Sprintf("%s:%d", aggregateKind, aggregateID),
		EventType:   eventType,
		OccurredAt:  time.Now(),
		Version:     1,
	}
}

func (e BaseEvent) GetAggregateID() string {
	return e.AggregateID
}

func (e BaseEvent) GetEventType() string {
	return e.EventType
}

func (e BaseEvent) GetOccurredAt() time.Time {
	return e.OccurredAt
}

func (e BaseEvent) GetVersion() int {
	return e.Version
}

// EventHandler reacts to published events.
type EventHandler interface {
	Handle(event DomainEvent) error
	CanHandle(eventType string) bool
}

// EventPublisher is the write side of the dispatcher, injected into use
// cases so they stay unaware of the delivery mechanism.
type EventPublisher interface {
	Publish(event DomainEvent) error
	PublishAll(events []DomainEvent) error
}

// EventSubscriber is the read side, used at wiring time to attach handlers.
type EventSubscriber interface {
	Subscribe(eventType string, handler EventHandler) error
	Unsubscribe(eventType string, handler EventHandler) error
}

// EventDispatcher is the full dispatcher surface: publishing, subscription
// management, and lifecycle.
type EventDispatcher interface {
	EventPublisher
	EventSubscriber

	Start() error
	Stop() error
}
