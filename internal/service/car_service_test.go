package service

import (
	"context"
	"testing"

	"github.com/phrazzld/storefront-api/internal/domain"
	"github.com/phrazzld/storefront-api/internal/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCarService(t *testing.T) (CarService, *recordingEmitter) {
	t.Helper()
	emitter := &recordingEmitter{}
	carStore := newSeededCollection[domain.Car](t, ResourceCars, defaultSeed().Cars)
	svc, err := NewCarService(carStore, emitter, discardLogger())
	require.NoError(t, err)
	return svc, emitter
}

func TestCarService_ListCars(t *testing.T) {
	svc, _ := newTestCarService(t)

	cars, err := svc.ListCars(context.Background())

	require.NoError(t, err)
	assert.Equal(t, defaultSeed().Cars, cars)
}

func TestCarService_GetCar(t *testing.T) {
	svc, _ := newTestCarService(t)
	ctx := context.Background()

	car, err := svc.GetCar(ctx, "2")
	require.NoError(t, err)
	require.NotNil(t, car)
	assert.Equal(t, "Honda", car.Brand)

	car, err = svc.GetCar(ctx, "999")
	require.NoError(t, err)
	assert.Nil(t, car)
}

func TestCarService_CreateCar(t *testing.T) {
	svc, emitter := newTestCarService(t)
	ctx := context.Background()

	car, err := svc.CreateCar(ctx, domain.CarInput{
		Brand: strPtr("Nissan"),
		Model: strPtr("Altima"),
		Year:  intPtr(2022),
		Color: strPtr("Blue"),
		Price: floatPtr(95000),
	})

	require.NoError(t, err)
	assert.Equal(t, &domain.Car{ID: "4", Brand: "Nissan", Model: "Altima", Year: 2022, Color: "Blue", Price: 95000}, car)

	cars, err := svc.ListCars(ctx)
	require.NoError(t, err)
	assert.Len(t, cars, 4)

	event := emitter.last()
	require.NotNil(t, event)
	assert.Equal(t, ResourceCars, event.Resource)
	assert.Equal(t, events.ActionCreated, event.Action)
	assert.Equal(t, "4", event.RecordID)
	assert.Equal(t, 4, event.Count)
}

func TestCarService_CreateCarWithoutFields(t *testing.T) {
	svc, _ := newTestCarService(t)

	car, err := svc.CreateCar(context.Background(), domain.CarInput{})

	require.NoError(t, err)
	assert.Equal(t, &domain.Car{ID: "4"}, car)
}

func TestCarService_UpdateCar(t *testing.T) {
	svc, emitter := newTestCarService(t)
	ctx := context.Background()

	car, err := svc.UpdateCar(ctx, "3", domain.CarInput{Color: strPtr("Green")})
	require.NoError(t, err)
	require.NotNil(t, car)
	assert.Equal(t, domain.Car{ID: "3", Brand: "Ford", Model: "Focus", Year: 2019, Color: "Green", Price: 75000}, *car)
	assert.Equal(t, events.ActionUpdated, emitter.last().Action)

	stored, err := svc.GetCar(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, car, stored)
}

func TestCarService_UpdateMissingCar(t *testing.T) {
	svc, emitter := newTestCarService(t)
	ctx := context.Background()

	car, err := svc.UpdateCar(ctx, "999", domain.CarInput{Color: strPtr("Green")})

	require.NoError(t, err)
	assert.Nil(t, car)
	assert.Zero(t, emitter.count(), "no event for a missing record")

	cars, err := svc.ListCars(ctx)
	require.NoError(t, err)
	assert.Equal(t, defaultSeed().Cars, cars)
}

func TestCarService_DeleteCar(t *testing.T) {
	svc, emitter := newTestCarService(t)
	ctx := context.Background()

	deleted, err := svc.DeleteCar(ctx, "999")
	require.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = svc.DeleteCar(ctx, "1")
	require.NoError(t, err)
	assert.True(t, deleted)

	cars, err := svc.ListCars(ctx)
	require.NoError(t, err)
	assert.Len(t, cars, 2)

	event := emitter.last()
	require.NotNil(t, event)
	assert.Equal(t, events.ActionDeleted, event.Action)
	assert.Equal(t, 2, event.Count)
	assert.Empty(t, event.Record)
}

func TestCarService_CreateAfterDeleteDoesNotReuseIDs(t *testing.T) {
	svc, _ := newTestCarService(t)
	ctx := context.Background()

	_, err := svc.DeleteCar(ctx, "2")
	require.NoError(t, err)

	car, err := svc.CreateCar(ctx, domain.CarInput{Brand: strPtr("Kia")})
	require.NoError(t, err)
	assert.Equal(t, "4", car.ID)

	existing, err := svc.GetCar(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, "Ford", existing.Brand)
}
