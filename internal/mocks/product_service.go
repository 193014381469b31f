package mocks

import (
	"context"

	"github.com/phrazzld/storefront-api/internal/domain"
)

// MockProductService implements service.ProductService for testing
type MockProductService struct {
	// Custom behavior functions
	ListProductsFn  func(ctx context.Context) ([]domain.Product, error)
	GetProductFn    func(ctx context.Context, id string) (*domain.Product, error)
	CreateProductFn func(ctx context.Context, in domain.ProductInput) (*domain.Product, error)
	UpdateProductFn func(ctx context.Context, id string, in domain.ProductInput) (*domain.Product, error)
	DeleteProductFn func(ctx context.Context, id string) (bool, error)

	// Default return values
	Products     []domain.Product
	Product      *domain.Product
	Deleted      bool
	DefaultError error
}

// ListProducts implements the ProductService.ListProducts method
func (m *MockProductService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	if m.ListProductsFn != nil {
		return m.ListProductsFn(ctx)
	}
	return m.Products, m.DefaultError
}

// GetProduct implements the ProductService.GetProduct method
func (m *MockProductService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	if m.GetProductFn != nil {
		return m.GetProductFn(ctx, id)
	}
	return m.Product, m.DefaultError
}

// CreateProduct implements the ProductService.CreateProduct method
func (m *MockProductService) CreateProduct(ctx context.Context, in domain.ProductInput) (*domain.Product, error) {
	if m.CreateProductFn != nil {
		return m.CreateProductFn(ctx, in)
	}
	return m.Product, m.DefaultError
}

// UpdateProduct implements the ProductService.UpdateProduct method
func (m *MockProductService) UpdateProduct(ctx context.Context, id string, in domain.ProductInput) (*domain.Product, error) {
	if m.UpdateProductFn != nil {
		return m.UpdateProductFn(ctx, id, in)
	}
	return m.Product, m.DefaultError
}

// DeleteProduct implements the ProductService.DeleteProduct method
func (m *MockProductService) DeleteProduct(ctx context.Context, id string) (bool, error) {
	if m.DeleteProductFn != nil {
		return m.DeleteProductFn(ctx, id)
	}
	return m.Deleted, m.DefaultError
}
