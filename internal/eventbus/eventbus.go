package eventbus

import (
	"log"
	"runtime/debug"
	"sync"

	"codediff/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventDocumentAdded    = domain.EventDocumentAdded
	EventDocumentRemoved  = domain.EventDocumentRemoved
	EventDocumentEdited   = domain.EventDocumentEdited
	EventDocumentRenamed  = domain.EventDocumentRenamed
	EventDiffsRecomputed  = domain.EventDiffsRecomputed
	EventMatchesUpdated   = domain.EventMatchesUpdated
	EventReplaceApplied   = domain.EventReplaceApplied
	EventSummaryRequested = domain.EventSummaryRequested
	EventSummaryCompleted = domain.EventSummaryCompleted
	EventConfigLoaded     = domain.EventConfigLoaded
	EventConfigSaved      = domain.EventConfigSaved
	EventError            = domain.EventError
	EventAppReady         = domain.EventAppReady
)

// Re-export domain event types
type DocumentAddedEvent = domain.DocumentAddedEvent
type DocumentRemovedEvent = domain.DocumentRemovedEvent
type DocumentEditedEvent = domain.DocumentEditedEvent
type DocumentRenamedEvent = domain.DocumentRenamedEvent
type DiffsRecomputedEvent = domain.DiffsRecomputedEvent
type MatchesUpdatedEvent = domain.MatchesUpdatedEvent
type ReplaceAppliedEvent = domain.ReplaceAppliedEvent
type SummaryRequestedEvent = domain.SummaryRequestedEvent
type SummaryCompletedEvent = domain.SummaryCompletedEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent
type ErrorEvent = domain.ErrorEvent
type AppReadyEvent = domain.AppReadyEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
}

// subscription gives each registered handler a removable identity.
// Function values cannot be compared, so unsubscribe works on the
// wrapper's pointer instead.
type subscription struct {
	handler EventHandler
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu        sync.RWMutex
	handlers  map[EventType][]*subscription
	eventChan chan DomainEvent
	wg        sync.WaitGroup
	quit      chan struct{}
}

// New creates a new event bus
func New() EventBus {
	b := &bus{
		handlers:  make(map[EventType][]*subscription),
		eventChan: make(chan DomainEvent, 1000),
		quit:      make(chan struct{}),
	}

	// Start the event dispatcher
	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish publishes an event to all subscribers
func (b *bus) Publish(event DomainEvent) {
	// Skip logging for high-frequency events
	switch event.Type() {
	case EventMatchesUpdated, EventDiffsRecomputed:
		// Recomputed on every keystroke, too frequent to log
	default:
		log.Printf("EventBus: Publishing event %s", event.Type())
	}

	select {
	case b.eventChan <- event:
		// Event sent successfully
	default:
		// Channel full, log and drop
		log.Printf("Event bus channel full, dropping event: %v", event.Type())
	}
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub := &subscription{handler: handler}
	b.handlers[eventType] = append(b.handlers[eventType], sub)

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		handlers := b.handlers[eventType]
		for i, s := range handlers {
			if s == sub {
				b.handlers[eventType] = append(handlers[:i], handlers[i+1:]...)
				break
			}
		}
	}
}

// dispatch handles event distribution to subscribers
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.mu.RLock()
			handlers := b.handlers[event.Type()]
			// Make a copy to avoid holding lock during handler execution
			handlersCopy := make([]*subscription, len(handlers))
			copy(handlersCopy, handlers)
			b.mu.RUnlock()

			for _, sub := range handlersCopy {
				// Call handler in a goroutine to avoid blocking
				go func(h EventHandler, eventType EventType) {
					defer func() {
						if r := recover(); r != nil {
							log.Printf("Event handler panic for %s: %v\nStack: %s", eventType, r, debug.Stack())
						}
					}()
					h(event)
				}(sub.handler, event.Type())
			}

		case <-b.quit:
			// Drain remaining events
			for {
				select {
				case <-b.eventChan:
					// Discard event
				default:
					return
				}
			}
		}
	}
}
