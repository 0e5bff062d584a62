package events

import (
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var _ Bus = (*EventBus)(nil)

// EventBus is a synchronous event bus. Subscribers are notified in the order
// they were first registered.
type EventBus struct {
	subscribers  []Subscriber
	index        map[string]int
	funcHandlers map[string][]EventHandler
	mu           sync.RWMutex
	logger       zerolog.Logger
}

// NewEventBus creates a new event bus instance
func NewEventBus() *EventBus {
	return NewEventBusWithLogger(log.Logger)
}

// NewEventBusWithLogger creates a new event bus that logs through the given logger
func NewEventBusWithLogger(logger zerolog.Logger) *EventBus {
	return &EventBus{
		index:        make(map[string]int),
		funcHandlers: make(map[string][]EventHandler),
		logger:       logger.With().Str("component", "event_bus").Logger(),
	}
}

// Subscribe adds a new subscriber to the event bus. Re-subscribing an existing
// ID replaces the subscriber but keeps its position.
func (eb *EventBus) Subscribe(subscriber Subscriber) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	id := subscriber.ID()
	if i, exists := eb.index[id]; exists {
		eb.subscribers[i] = subscriber
	} else {
		eb.index[id] = len(eb.subscribers)
		eb.subscribers = append(eb.subscribers, subscriber)
	}
	eb.logger.Debug().
		Str("subscriber_id", id).
		Msg("Subscriber added to event bus")
}

// Unsubscribe removes a subscriber from the event bus. Unknown IDs are ignored.
func (eb *EventBus) Unsubscribe(subscriberID string) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	i, exists := eb.index[subscriberID]
	if !exists {
		return
	}

	eb.subscribers = append(eb.subscribers[:i], eb.subscribers[i+1:]...)
	delete(eb.index, subscriberID)
	for j := i; j < len(eb.subscribers); j++ {
		eb.index[eb.subscribers[j].ID()] = j
	}
	eb.logger.Debug().
		Str("subscriber_id", subscriberID).
		Msg("Subscriber removed from event bus")
}

// SubscribeFunc adds a function handler for specific event types
func (eb *EventBus) SubscribeFunc(eventType string, handler EventHandler) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	eb.funcHandlers[eventType] = append(eb.funcHandlers[eventType], handler)
	eb.logger.Debug().
		Str("event_type", eventType).
		Int("handler_count", len(eb.funcHandlers[eventType])).
		Msg("Function handler added to event bus")
}

// Publish sends an event to all interested subscribers synchronously
func (eb *EventBus) Publish(event Event) {
	eb.mu.RLock()
	subscribers := make([]Subscriber, len(eb.subscribers))
	copy(subscribers, eb.subscribers)
	handlers := eb.funcHandlers[event.Type()]
	eb.mu.RUnlock()

	eventType := event.Type()

	eb.logger.Debug().
		Str("event_type", eventType).
		Str("game_id", event.GameID()).
		Time("timestamp", event.Timestamp()).
		Msg("Publishing event")

	for _, subscriber := range subscribers {
		if !subscriber.InterestedIn(eventType) {
			continue
		}
		// One misbehaving subscriber must not starve the rest
		func() {
			defer func() {
				if r := recover(); r != nil {
					eb.logger.Error().
						Str("subscriber_id", subscriber.ID()).
						Str("event_type", eventType).
						Interface("panic", r).
						Msg("Subscriber panicked while handling event")
				}
			}()
			subscriber.HandleEvent(event)
		}()
	}

	for i, handler := range handlers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					eb.logger.Error().
						Str("event_type", eventType).
						Int("handler_index", i).
						Interface("panic", r).
						Msg("Function handler panicked while handling event")
				}
			}()
			handler(event)
		}()
	}
}

// GetSubscriberCount returns the number of subscribers
func (eb *EventBus) GetSubscriberCount() int {
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	return len(eb.subscribers)
}

// GetFuncHandlerCount returns the number of function handlers for a specific event type
func (eb *EventBus) GetFuncHandlerCount(eventType string) int {
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	return len(eb.funcHandlers[eventType])
}

// SubscriberIDs returns the registered subscriber IDs in notification order
func (eb *EventBus) SubscriberIDs() []string {
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	ids := make([]string, len(eb.subscribers))
	for i, s := range eb.subscribers {
		ids[i] = s.ID()
	}
	return ids
}
