package memory

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/phrazzld/storefront-api/internal/domain"
	"github.com/phrazzld/storefront-api/internal/store"
)

// Collection implements store.Repository over an in-memory slice.
// Reads take the read lock; Insert, Update and Delete hold the write lock for
// the whole find-then-mutate sequence so id assignment stays consistent.
type Collection[T any, P store.Record[T]] struct {
	name   string
	ids    IDGenerator
	logger *slog.Logger

	mu       sync.RWMutex
	items    []T
	revision uint64
}

// NewCollection creates a collection named after its resource and seeded with
// a copy of seed. Every seed id is reported to ids so that new ids start after
// them. Duplicate seed ids are rejected with store.ErrDuplicateID.
// If logger is nil, a default logger will be used.
func NewCollection[T any, P store.Record[T]](
	name string,
	ids IDGenerator,
	seed []T,
	logger *slog.Logger,
) (*Collection[T, P], error) {
	if ids == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("id generator cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	items := make([]T, len(seed))
	copy(items, seed)

	seen := make(map[string]struct{}, len(items))
	for i := range items {
		id := P(&items[i]).RecordID()
		if _, dup := seen[id]; dup {
			return nil, store.NewStoreError(name, "seed", fmt.Sprintf("id %q used twice", id), store.ErrDuplicateID)
		}
		seen[id] = struct{}{}
		ids.Observe(id)
	}

	return &Collection[T, P]{
		name:   name,
		ids:    ids,
		items:  items,
		logger: logger.With(slog.String("component", "memory_store"), slog.String("resource", name)),
	}, nil
}

// Ensure Collection implements the resource repositories.
var (
	_ store.CarStore     = (*Collection[domain.Car, *domain.Car])(nil)
	_ store.OrderStore   = (*Collection[domain.Order, *domain.Order])(nil)
	_ store.ProductStore = (*Collection[domain.Product, *domain.Product])(nil)
	_ store.UserStore    = (*Collection[domain.User, *domain.User])(nil)
)

// List implements store.Repository.List.
func (c *Collection[T, P]) List(ctx context.Context) ([]T, error) {
	if err := c.checkContext(ctx, "list"); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	copy(out, c.items)
	return out, nil
}

// Get implements store.Repository.Get.
func (c *Collection[T, P]) Get(ctx context.Context, id string) (T, bool, error) {
	var zero T
	if err := c.checkContext(ctx, "get"); err != nil {
		return zero, false, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	i := c.indexOf(id)
	if i < 0 {
		return zero, false, nil
	}
	return c.items[i], true, nil
}

// Insert implements store.Repository.Insert.
func (c *Collection[T, P]) Insert(ctx context.Context, build func(id string) T) (T, error) {
	var zero T
	if err := c.checkContext(ctx, "insert"); err != nil {
		return zero, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.ids.Next(len(c.items))
	record := build(id)
	P(&record).SetRecordID(id)
	c.ids.Observe(id)
	c.items = append(c.items, record)
	c.revision++

	c.logger.Debug("record inserted", slog.String("id", id), slog.Int("count", len(c.items)))
	return record, nil
}

// Update implements store.Repository.Update.
func (c *Collection[T, P]) Update(ctx context.Context, id string, mutate func(*T)) (T, bool, error) {
	var zero T
	if err := c.checkContext(ctx, "update"); err != nil {
		return zero, false, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return zero, false, nil
	}

	record := c.items[i]
	original := P(&record).RecordID()
	mutate(&record)
	// id is protected: whatever mutate did, it survives the merge
	P(&record).SetRecordID(original)
	c.items[i] = record
	c.revision++

	c.logger.Debug("record updated", slog.String("id", original))
	return record, true, nil
}

// Delete implements store.Repository.Delete.
func (c *Collection[T, P]) Delete(ctx context.Context, id string) (bool, error) {
	if err := c.checkContext(ctx, "delete"); err != nil {
		return false, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return false, nil
	}
	c.items = slices.Delete(c.items, i, i+1)
	c.revision++

	c.logger.Debug("record deleted", slog.String("id", id), slog.Int("count", len(c.items)))
	return true, nil
}

// Len implements store.Repository.Len.
func (c *Collection[T, P]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Snapshot implements store.Repository.Snapshot.
func (c *Collection[T, P]) Snapshot() store.Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return store.Snapshot{Count: len(c.items), Revision: c.revision}
}

// Name returns the resource name the collection was created with.
func (c *Collection[T, P]) Name() string {
	return c.name
}

// indexOf returns the position of the first record with the id, or -1.
// The caller must hold the lock.
func (c *Collection[T, P]) indexOf(id string) int {
	for i := range c.items {
		if P(&c.items[i]).RecordID() == id {
			return i
		}
	}
	return -1
}

func (c *Collection[T, P]) checkContext(ctx context.Context, op string) error {
	if err := ctx.Err(); err != nil {
		return store.NewStoreError(c.name, op, "context done", fmt.Errorf("%w: %w", store.ErrAborted, err))
	}
	return nil
}
