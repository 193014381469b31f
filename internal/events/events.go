package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Action names the kind of mutation a RecordChangedEvent describes.
type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

// RecordChangedEvent describes a single successful mutation of a store.
type RecordChangedEvent struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`
	// Resource is the resource collection name, e.g. "cars"
	Resource string `json:"resource"`
	// Action is the kind of mutation
	Action Action `json:"action"`
	// RecordID is the id of the affected record
	RecordID string `json:"record_id"`
	// Count is the number of records in the store after the mutation
	Count int `json:"count"`
	// Revision is the store revision Count was observed at
	Revision uint64 `json:"revision"`
	// Record holds the record as JSON after the mutation; empty for deletes
	Record json.RawMessage `json:"record,omitempty"`
	// OccurredAt is the timestamp when the event was created
	OccurredAt time.Time `json:"occurred_at"`
}

// NewRecordChangedEvent creates an event for the given mutation. count and
// revision describe the store after it. record may be nil, in which case no
// snapshot is attached.
func NewRecordChangedEvent(
	resource string,
	action Action,
	recordID string,
	count int,
	revision uint64,
	record interface{},
) (*RecordChangedEvent, error) {
	var raw json.RawMessage
	if record != nil {
		data, err := json.Marshal(record)
		if err != nil {
			return nil, err
		}
		raw = data
	}

	return &RecordChangedEvent{
		ID:         uuid.New(),
		Resource:   resource,
		Action:     action,
		RecordID:   recordID,
		Count:      count,
		Revision:   revision,
		Record:     raw,
		OccurredAt: time.Now().UTC(),
	}, nil
}

// EventHandler defines an interface for components that can handle events.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	// Returns an error if the event cannot be handled successfully.
	HandleEvent(ctx context.Context, event *RecordChangedEvent) error
}

// EventHandlerFunc adapts a function to the EventHandler interface.
type EventHandlerFunc func(ctx context.Context, event *RecordChangedEvent) error

// HandleEvent implements EventHandler.
func (f EventHandlerFunc) HandleEvent(ctx context.Context, event *RecordChangedEvent) error {
	return f(ctx, event)
}

// EventEmitter defines an interface for components that can emit events.
// This allows services to publish events without direct knowledge of handlers.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	// Returns an error if the event cannot be emitted.
	EmitEvent(ctx context.Context, event *RecordChangedEvent) error
}

// NopEmitter discards every event.
type NopEmitter struct{}

// EmitEvent implements EventEmitter.
func (NopEmitter) EmitEvent(context.Context, *RecordChangedEvent) error { return nil }
