package events

import (
	"log"
	"sync"
)

// EventHandler is a function that handles an event
type EventHandler func(event interface{})

// Publisher allows publishing events
type Publisher interface {
	Publish(eventType string, event interface{})
}

// Subscriber allows subscribing to events
type Subscriber interface {
	Subscribe(eventType string, handler EventHandler)
}

// EventBus provides both publishing and subscribing
type EventBus interface {
	Publisher
	Subscriber
}

// InMemoryBus implements EventBus with in-memory storage. Delivery is
// synchronous and in subscription order; dispatch itself is a single
// synchronous unit of work, so there is no queueing to hide behind.
type InMemoryBus struct {
	mu          sync.RWMutex
	subscribers map[string][]EventHandler
}

// NewEventBus creates a new in-memory event bus.
func NewEventBus() EventBus {
	return &InMemoryBus{
		subscribers: make(map[string][]EventHandler),
	}
}

// Subscribe adds a handler for a specific event type.
func (b *InMemoryBus) Subscribe(eventType string, handler EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.subscribers[eventType] = append(b.subscribers[eventType], handler)
}

// Publish sends an event to all subscribers of that event type. A panicking
// handler is logged and does not stop delivery to the remaining handlers.
func (b *InMemoryBus) Publish(eventType string, event interface{}) {
	for _, handler := range b.handlersFor(eventType) {
		func(h EventHandler) {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("Event handler panicked for topic %s: %v", eventType, r)
				}
			}()
			h(event)
		}(handler)
	}
}

// handlersFor snapshots handlers for the topic.
func (b *InMemoryBus) handlersFor(eventType string) []EventHandler {
	b.mu.RLock()
	defer b.mu.RUnlock()
	handlers := make([]EventHandler, len(b.subscribers[eventType]))
	copy(handlers, b.subscribers[eventType])
	return handlers
}
