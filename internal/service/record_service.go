package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/storefront-api/internal/events"
	"github.com/phrazzld/storefront-api/internal/store"
)

// recordService holds the store plumbing shared by the resource services.
// The typed services decide how records are built and merged.
type recordService[T any, P store.Record[T]] struct {
	resource string
	store    store.Repository[T]
	emitter  events.EventEmitter
	logger   *slog.Logger
}

func newRecordService[T any, P store.Record[T]](
	resource string,
	repo store.Repository[T],
	emitter events.EventEmitter,
	logger *slog.Logger,
) (*recordService[T, P], error) {
	if repo == nil {
		return nil, &ServiceError{
			Resource:  resource,
			Operation: "create_service",
			Message:   "store cannot be nil",
			Err:       ErrMissingDependency,
		}
	}
	if emitter == nil {
		emitter = events.NopEmitter{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &recordService[T, P]{
		resource: resource,
		store:    repo,
		emitter:  emitter,
		logger:   logger.With("component", resource+"_service"),
	}, nil
}

func (s *recordService[T, P]) list(ctx context.Context) ([]T, error) {
	records, err := s.store.List(ctx)
	if err != nil {
		s.logger.Error("failed to list records", "error", err)
		return nil, NewServiceError(s.resource, "list", "failed to list records", err)
	}

	s.logger.Debug("listed records", "count", len(records))
	return records, nil
}

func (s *recordService[T, P]) get(ctx context.Context, id string) (*T, error) {
	record, found, err := s.store.Get(ctx, id)
	if err != nil {
		s.logger.Error("failed to retrieve record", "error", err, "id", id)
		return nil, NewServiceError(s.resource, "get", "failed to retrieve record", err)
	}
	if !found {
		s.logger.Debug("record not found", "id", id)
		return nil, nil
	}

	return &record, nil
}

func (s *recordService[T, P]) create(ctx context.Context, build func(id string) T) (*T, error) {
	record, err := s.store.Insert(ctx, build)
	if err != nil {
		s.logger.Error("failed to create record", "error", err)
		return nil, NewServiceError(s.resource, "create", "failed to create record", err)
	}

	id := P(&record).RecordID()
	s.logger.Debug("record created", "id", id)
	s.publish(ctx, events.ActionCreated, id, record)
	return &record, nil
}

func (s *recordService[T, P]) update(ctx context.Context, id string, mutate func(*T)) (*T, error) {
	record, found, err := s.store.Update(ctx, id, mutate)
	if err != nil {
		s.logger.Error("failed to update record", "error", err, "id", id)
		return nil, NewServiceError(s.resource, "update", "failed to update record", err)
	}
	if !found {
		s.logger.Debug("record to update not found", "id", id)
		return nil, nil
	}

	s.logger.Debug("record updated", "id", id)
	s.publish(ctx, events.ActionUpdated, id, record)
	return &record, nil
}

func (s *recordService[T, P]) delete(ctx context.Context, id string) (bool, error) {
	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		s.logger.Error("failed to delete record", "error", err, "id", id)
		return false, NewServiceError(s.resource, "delete", "failed to delete record", err)
	}
	if !deleted {
		s.logger.Debug("record to delete not found", "id", id)
		return false, nil
	}

	s.logger.Debug("record deleted", "id", id)
	s.publish(ctx, events.ActionDeleted, id, nil)
	return true, nil
}

// publish emits a change event. The mutation has already happened, so a
// failure here is only logged.
func (s *recordService[T, P]) publish(ctx context.Context, action events.Action, id string, record interface{}) {
	// The snapshot may already include later mutations; its revision lets
	// handlers drop events that arrive out of order.
	snap := s.store.Snapshot()
	event, err := events.NewRecordChangedEvent(s.resource, action, id, snap.Count, snap.Revision, record)
	if err != nil {
		s.logger.Error("failed to build change event", "error", err, "id", id, "action", action)
		return
	}
	if err := s.emitter.EmitEvent(ctx, event); err != nil {
		s.logger.Warn("failed to emit change event",
			"error", err,
			"id", id,
			"action", action,
			"event_id", event.ID)
	}
}
