package orbital

import (
	"sync"
)

// EventType identifies an orbital event notification.
type EventType string

// Orbital event types. The four tick-boundary conditions are level
// triggered: they fire on every tick the condition holds.
const (
	PeriapsisReached      EventType = "periapsis_reached"
	ApoapsisReached       EventType = "apoapsis_reached"
	AtmosphericEntry      EventType = "atmospheric_entry"
	EscapeVelocityReached EventType = "escape_velocity_reached"
	TransferComputed      EventType = "transfer_computed"
)

// Event is the interface all notifications implement.
type Event interface {
	Type() EventType
}

// TickEvent is raised by the event detector at a tick boundary.
type TickEvent struct {
	Kind    EventType
	SimTime float64 // elapsed simulation time, s
	Radius  float64 // current orbital radius, m
	Speed   float64 // current speed, m/s
}

// Type implements the Event interface.
func (e TickEvent) Type() EventType {
	return e.Kind
}

// TransferEvent carries the result of a transfer computation.
type TransferEvent struct {
	SimTime  float64
	Transfer TransferOrbit
}

// Type implements the Event interface.
func (e TransferEvent) Type() EventType {
	return TransferComputed
}

// Handler is a function that handles events.
type Handler func(Event)

// Bus manages event subscriptions and dispatching. Publishing happens at
// tick boundaries from the engine goroutine; subscription is safe from any
// goroutine.
type Bus struct {
	handlers map[EventType][]Handler
	mu       sync.RWMutex
}

// NewBus creates a new event bus.
func NewBus() *Bus {
	return &Bus{handlers: make(map[EventType][]Handler)}
}

// Subscribe registers a handler for a specific event type.
func (b *Bus) Subscribe(eventType EventType, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Publish sends an event to all subscribed handlers, synchronously.
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	handlers := b.handlers[event.Type()]
	b.mu.RUnlock()
	for _, handler := range handlers {
		handler(event)
	}
	eventsFired.WithLabelValues(string(event.Type())).Inc()
}
