package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/storefront-api/internal/domain"
	"github.com/phrazzld/storefront-api/internal/events"
	"github.com/phrazzld/storefront-api/internal/store"
)

// ResourceCars is the collection name of the car resource.
const ResourceCars = "cars"

// CarService provides car-related operations.
type CarService interface {
	// ListCars returns every car in insertion order.
	ListCars(ctx context.Context) ([]domain.Car, error)

	// GetCar returns the car with the id, or nil if there is none.
	GetCar(ctx context.Context, id string) (*domain.Car, error)

	// CreateCar stores a new car built from the supplied fields.
	CreateCar(ctx context.Context, in domain.CarInput) (*domain.Car, error)

	// UpdateCar merges the supplied fields into an existing car.
	// Returns nil if the car does not exist.
	UpdateCar(ctx context.Context, id string, in domain.CarInput) (*domain.Car, error)

	// DeleteCar removes a car. Returns false if the car does not exist.
	DeleteCar(ctx context.Context, id string) (bool, error)
}

// carServiceImpl implements the CarService interface
type carServiceImpl struct {
	records *recordService[domain.Car, *domain.Car]
}

// NewCarService creates a new CarService. emitter and logger may be nil.
func NewCarService(carStore store.CarStore, emitter events.EventEmitter, logger *slog.Logger) (CarService, error) {
	records, err := newRecordService[domain.Car](ResourceCars, carStore, emitter, logger)
	if err != nil {
		return nil, err
	}
	return &carServiceImpl{records: records}, nil
}

// ListCars implements CarService.
func (s *carServiceImpl) ListCars(ctx context.Context) ([]domain.Car, error) {
	return s.records.list(ctx)
}

// GetCar implements CarService.
func (s *carServiceImpl) GetCar(ctx context.Context, id string) (*domain.Car, error) {
	return s.records.get(ctx, id)
}

// CreateCar implements CarService.
func (s *carServiceImpl) CreateCar(ctx context.Context, in domain.CarInput) (*domain.Car, error) {
	return s.records.create(ctx, func(id string) domain.Car {
		return domain.NewCar(id, in)
	})
}

// UpdateCar implements CarService.
func (s *carServiceImpl) UpdateCar(ctx context.Context, id string, in domain.CarInput) (*domain.Car, error) {
	return s.records.update(ctx, id, in.ApplyTo)
}

// DeleteCar implements CarService.
func (s *carServiceImpl) DeleteCar(ctx context.Context, id string) (bool, error) {
	return s.records.delete(ctx, id)
}
