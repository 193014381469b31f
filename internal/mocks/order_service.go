package mocks

import (
	"context"

	"github.com/phrazzld/storefront-api/internal/domain"
)

// MockOrderService implements service.OrderService for testing
type MockOrderService struct {
	// Custom behavior functions
	ListOrdersFn  func(ctx context.Context) ([]domain.Order, error)
	GetOrderFn    func(ctx context.Context, id string) (*domain.Order, error)
	CreateOrderFn func(ctx context.Context, in domain.OrderInput) (*domain.Order, error)
	UpdateOrderFn func(ctx context.Context, id string, in domain.OrderInput) (*domain.Order, error)
	DeleteOrderFn func(ctx context.Context, id string) (bool, error)

	// Default return values
	Orders       []domain.Order
	Order        *domain.Order
	Deleted      bool
	DefaultError error
}

// ListOrders implements the OrderService.ListOrders method
func (m *MockOrderService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	if m.ListOrdersFn != nil {
		return m.ListOrdersFn(ctx)
	}
	return m.Orders, m.DefaultError
}

// GetOrder implements the OrderService.GetOrder method
func (m *MockOrderService) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	if m.GetOrderFn != nil {
		return m.GetOrderFn(ctx, id)
	}
	return m.Order, m.DefaultError
}

// CreateOrder implements the OrderService.CreateOrder method
func (m *MockOrderService) CreateOrder(ctx context.Context, in domain.OrderInput) (*domain.Order, error) {
	if m.CreateOrderFn != nil {
		return m.CreateOrderFn(ctx, in)
	}
	return m.Order, m.DefaultError
}

// UpdateOrder implements the OrderService.UpdateOrder method
func (m *MockOrderService) UpdateOrder(ctx context.Context, id string, in domain.OrderInput) (*domain.Order, error) {
	if m.UpdateOrderFn != nil {
		return m.UpdateOrderFn(ctx, id, in)
	}
	return m.Order, m.DefaultError
}

// DeleteOrder implements the OrderService.DeleteOrder method
func (m *MockOrderService) DeleteOrder(ctx context.Context, id string) (bool, error) {
	if m.DeleteOrderFn != nil {
		return m.DeleteOrderFn(ctx, id)
	}
	return m.Deleted, m.DefaultError
}
