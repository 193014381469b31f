package events

import (
	"context"
	"log/slog"
	"sync"

	"github.com/phrazzld/storefront-api/internal/redact"
)

// InMemoryEventEmitter is a simple implementation of the EventEmitter interface
// that stores registered handlers in memory and dispatches events to them
// synchronously, in registration order.
type InMemoryEventEmitter struct {
	handlers []EventHandler
	mu       sync.RWMutex
	logger   *slog.Logger
}

// NewInMemoryEventEmitter creates a new instance of InMemoryEventEmitter.
func NewInMemoryEventEmitter(logger *slog.Logger) *InMemoryEventEmitter {
	if logger == nil {
		logger = slog.Default()
	}
	return &InMemoryEventEmitter{
		handlers: make([]EventHandler, 0),
		logger:   logger.With("component", "in_memory_event_emitter"),
	}
}

// RegisterHandler adds a new event handler to receive events.
func (e *InMemoryEventEmitter) RegisterHandler(handler EventHandler) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.handlers = append(e.handlers, handler)
	e.logger.Debug("registered new event handler", "handler_count", len(e.handlers))
}

// EmitEvent publishes the given event to all registered handlers.
// If any handler returns an error, the event will still be sent to all other handlers,
// and the first error encountered will be returned.
func (e *InMemoryEventEmitter) EmitEvent(ctx context.Context, event *RecordChangedEvent) error {
	e.mu.RLock()
	handlers := make([]EventHandler, len(e.handlers))
	copy(handlers, e.handlers)
	e.mu.RUnlock()

	e.logger.Debug("emitting event",
		"event_id", event.ID,
		"resource", event.Resource,
		"action", event.Action,
		"handler_count", len(handlers))

	var firstErr error
	for i, handler := range handlers {
		if err := handler.HandleEvent(ctx, event); err != nil {
			e.logger.Error("handler failed to process event",
				"error", err,
				"handler_index", i,
				"event_id", event.ID,
				"resource", event.Resource)

			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}

// NewAuditHandler returns a handler that logs every change at INFO level.
// The record snapshot is logged at DEBUG level with emails and credentials
// redacted.
func NewAuditHandler(logger *slog.Logger) EventHandler {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "audit")
	return EventHandlerFunc(func(ctx context.Context, event *RecordChangedEvent) error {
		logger.InfoContext(ctx, "record changed",
			"event_id", event.ID,
			"resource", event.Resource,
			"action", event.Action,
			"record_id", event.RecordID,
			"count", event.Count)
		if len(event.Record) > 0 {
			logger.DebugContext(ctx, "record snapshot",
				"event_id", event.ID,
				"record", redact.String(string(event.Record)))
		}
		return nil
	})
}
