package service

import (
	"context"
	"errors"
	"testing"

	"github.com/phrazzld/storefront-api/internal/domain"
	"github.com/phrazzld/storefront-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewServices_NilStore(t *testing.T) {
	_, err := NewCarService(nil, nil, nil)
	assert.ErrorIs(t, err, ErrMissingDependency)

	_, err = NewOrderService(nil, nil, nil)
	assert.ErrorIs(t, err, ErrMissingDependency)

	_, err = NewProductService(nil, nil, nil)
	assert.ErrorIs(t, err, ErrMissingDependency)

	_, err = NewUserService(nil, nil, nil)
	assert.ErrorIs(t, err, ErrMissingDependency)

	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, ResourceUsers, svcErr.Resource)
	assert.Equal(t, "create_service", svcErr.Operation)
}

func TestCarService_StoreFaults(t *testing.T) {
	storeErr := store.NewStoreError(ResourceCars, "list", "context done", store.ErrAborted)
	ctx := context.Background()

	mockStore := &MockCarStore{}
	mockStore.On("List", ctx).Return(nil, storeErr)
	mockStore.On("Get", ctx, "1").Return(domain.Car{}, false, storeErr)
	mockStore.On("Insert", ctx, mock.Anything).Return(domain.Car{}, storeErr)
	mockStore.On("Update", ctx, "1", mock.Anything).Return(domain.Car{}, false, storeErr)
	mockStore.On("Delete", ctx, "1").Return(false, storeErr)

	emitter := &recordingEmitter{}
	svc, err := NewCarService(mockStore, emitter, discardLogger())
	require.NoError(t, err)

	_, err = svc.ListCars(ctx)
	assert.ErrorIs(t, err, store.ErrAborted)

	car, err := svc.GetCar(ctx, "1")
	assert.ErrorIs(t, err, store.ErrAborted)
	assert.Nil(t, car)

	_, err = svc.CreateCar(ctx, domain.CarInput{})
	assert.ErrorIs(t, err, store.ErrAborted)

	_, err = svc.UpdateCar(ctx, "1", domain.CarInput{})
	assert.ErrorIs(t, err, store.ErrAborted)

	deleted, err := svc.DeleteCar(ctx, "1")
	assert.ErrorIs(t, err, store.ErrAborted)
	assert.False(t, deleted)

	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "delete", svcErr.Operation)
	assert.Contains(t, err.Error(), "cars service delete failed")

	assert.Zero(t, emitter.count(), "failed operations publish nothing")
	mockStore.AssertExpectations(t)
}

func TestCarService_EmitterFailureDoesNotFailRequest(t *testing.T) {
	emitter := &recordingEmitter{err: errors.New("handler error")}
	carStore := newSeededCollection[domain.Car](t, ResourceCars, defaultSeed().Cars)
	svc, err := NewCarService(carStore, emitter, discardLogger())
	require.NoError(t, err)

	car, err := svc.CreateCar(context.Background(), domain.CarInput{Brand: strPtr("Nissan")})

	require.NoError(t, err)
	assert.Equal(t, "4", car.ID)
	assert.Equal(t, 1, emitter.count())
}

func TestServiceError(t *testing.T) {
	assert.Nil(t, NewServiceError(ResourceCars, "get", "failed", nil))

	cause := errors.New("boom")
	err := NewServiceError(ResourceOrders, "update", "failed to update record", cause)
	assert.EqualError(t, err, "orders service update failed: failed to update record: boom")
	assert.ErrorIs(t, err, cause)

	noCause := &ServiceError{Resource: ResourceUsers, Operation: "list", Message: "failed"}
	assert.EqualError(t, noCause, "users service list failed: failed")
}
