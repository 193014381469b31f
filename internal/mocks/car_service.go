package mocks

import (
	"context"

	"github.com/phrazzld/storefront-api/internal/domain"
)

// MockCarService implements service.CarService for testing
type MockCarService struct {
	// Custom behavior functions
	ListCarsFn  func(ctx context.Context) ([]domain.Car, error)
	GetCarFn    func(ctx context.Context, id string) (*domain.Car, error)
	CreateCarFn func(ctx context.Context, in domain.CarInput) (*domain.Car, error)
	UpdateCarFn func(ctx context.Context, id string, in domain.CarInput) (*domain.Car, error)
	DeleteCarFn func(ctx context.Context, id string) (bool, error)

	// Default return values
	Cars         []domain.Car
	Car          *domain.Car
	Deleted      bool
	DefaultError error
}

// ListCars implements the CarService.ListCars method
func (m *MockCarService) ListCars(ctx context.Context) ([]domain.Car, error) {
	if m.ListCarsFn != nil {
		return m.ListCarsFn(ctx)
	}
	return m.Cars, m.DefaultError
}

// GetCar implements the CarService.GetCar method
func (m *MockCarService) GetCar(ctx context.Context, id string) (*domain.Car, error) {
	if m.GetCarFn != nil {
		return m.GetCarFn(ctx, id)
	}
	return m.Car, m.DefaultError
}

// CreateCar implements the CarService.CreateCar method
func (m *MockCarService) CreateCar(ctx context.Context, in domain.CarInput) (*domain.Car, error) {
	if m.CreateCarFn != nil {
		return m.CreateCarFn(ctx, in)
	}
	return m.Car, m.DefaultError
}

// UpdateCar implements the CarService.UpdateCar method
func (m *MockCarService) UpdateCar(ctx context.Context, id string, in domain.CarInput) (*domain.Car, error) {
	if m.UpdateCarFn != nil {
		return m.UpdateCarFn(ctx, id, in)
	}
	return m.Car, m.DefaultError
}

// DeleteCar implements the CarService.DeleteCar method
func (m *MockCarService) DeleteCar(ctx context.Context, id string) (bool, error) {
	if m.DeleteCarFn != nil {
		return m.DeleteCarFn(ctx, id)
	}
	return m.Deleted, m.DefaultError
}
