package service

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/phrazzld/storefront-api/internal/domain"
	"github.com/phrazzld/storefront-api/internal/events"
	"github.com/phrazzld/storefront-api/internal/fixtures"
	"github.com/phrazzld/storefront-api/internal/platform/memory"
	"github.com/phrazzld/storefront-api/internal/store"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// recordingEmitter keeps every event it receives.
type recordingEmitter struct {
	mu     sync.Mutex
	events []*events.RecordChangedEvent
	err    error
}

func (e *recordingEmitter) EmitEvent(_ context.Context, event *events.RecordChangedEvent) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.events = append(e.events, event)
	return e.err
}

func (e *recordingEmitter) last() *events.RecordChangedEvent {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.events) == 0 {
		return nil
	}
	return e.events[len(e.events)-1]
}

func (e *recordingEmitter) count() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.events)
}

func newSeededCollection[T any, P store.Record[T]](t *testing.T, name string, seed []T) *memory.Collection[T, P] {
	t.Helper()
	c, err := memory.NewCollection[T, P](name, &memory.SequentialIDs{}, seed, discardLogger())
	require.NoError(t, err)
	return c
}

// MockCarStore is a mock implementation of store.CarStore
type MockCarStore struct {
	mock.Mock
}

func (m *MockCarStore) List(ctx context.Context) ([]domain.Car, error) {
	args := m.Called(ctx)
	cars, _ := args.Get(0).([]domain.Car)
	return cars, args.Error(1)
}

func (m *MockCarStore) Get(ctx context.Context, id string) (domain.Car, bool, error) {
	args := m.Called(ctx, id)
	car, _ := args.Get(0).(domain.Car)
	return car, args.Bool(1), args.Error(2)
}

func (m *MockCarStore) Insert(ctx context.Context, build func(id string) domain.Car) (domain.Car, error) {
	args := m.Called(ctx, build)
	car, _ := args.Get(0).(domain.Car)
	return car, args.Error(1)
}

func (m *MockCarStore) Update(ctx context.Context, id string, mutate func(*domain.Car)) (domain.Car, bool, error) {
	args := m.Called(ctx, id, mutate)
	car, _ := args.Get(0).(domain.Car)
	return car, args.Bool(1), args.Error(2)
}

func (m *MockCarStore) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCarStore) Len() int {
	return m.Called().Int(0)
}

func (m *MockCarStore) Snapshot() store.Snapshot {
	snap, _ := m.Called().Get(0).(store.Snapshot)
	return snap
}

func defaultSeed() fixtures.Set {
	return fixtures.Default()
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func floatPtr(f float64) *float64 { return &f }
