package store

import (
	"context"

	"github.com/phrazzld/storefront-api/internal/domain"
)

// Record is the constraint satisfied by pointers to storable domain records.
// The id is owned by the repository: it is assigned on insert and restored
// after every update.
type Record[T any] interface {
	*T
	RecordID() string
	SetRecordID(id string)
}

// Repository is an ordered collection of records of one resource type.
// A missing record is reported through the bool result, never as an error;
// errors are reserved for faults such as an ended context.
type Repository[T any] interface {
	// List returns a snapshot of all records in insertion order.
	List(ctx context.Context) ([]T, error)

	// Get returns the first record whose id matches.
	Get(ctx context.Context, id string) (T, bool, error)

	// Insert assigns the next id, builds the record with it and appends it.
	Insert(ctx context.Context, build func(id string) T) (T, error)

	// Update applies mutate to the stored record in place and returns the
	// result. The record id cannot be changed by mutate.
	Update(ctx context.Context, id string, mutate func(*T)) (T, bool, error)

	// Delete removes the record, shifting subsequent records down.
	Delete(ctx context.Context, id string) (bool, error)

	// Len returns the number of records currently held.
	Len() int

	// Snapshot returns the record count together with the revision it was
	// observed at.
	Snapshot() Snapshot
}

// Snapshot is the size of a repository at one revision. The revision grows
// by one with every successful Insert, Update or Delete, so of two snapshots
// the one with the higher revision is the more recent.
type Snapshot struct {
	Count    int
	Revision uint64
}

// CarStore holds cars.
type CarStore = Repository[domain.Car]

// OrderStore holds orders.
type OrderStore = Repository[domain.Order]

// ProductStore holds products.
type ProductStore = Repository[domain.Product]

// UserStore holds users.
type UserStore = Repository[domain.User]
