package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/storefront-api/internal/domain"
	"github.com/phrazzld/storefront-api/internal/events"
	"github.com/phrazzld/storefront-api/internal/store"
)

// ResourceProducts is the collection name of the product resource.
const ResourceProducts = "products"

// ProductService provides product-related operations.
type ProductService interface {
	// ListProducts returns every product in insertion order.
	ListProducts(ctx context.Context) ([]domain.Product, error)

	// GetProduct returns the product with the id, or nil if there is none.
	GetProduct(ctx context.Context, id string) (*domain.Product, error)

	// CreateProduct stores a new product built from the supplied fields.
	CreateProduct(ctx context.Context, in domain.ProductInput) (*domain.Product, error)

	// UpdateProduct merges the supplied fields into an existing product.
	// Returns nil if the product does not exist.
	UpdateProduct(ctx context.Context, id string, in domain.ProductInput) (*domain.Product, error)

	// DeleteProduct removes a product. Returns false if the product does not exist.
	DeleteProduct(ctx context.Context, id string) (bool, error)
}

// productServiceImpl implements the ProductService interface
type productServiceImpl struct {
	records *recordService[domain.Product, *domain.Product]
}

// NewProductService creates a new ProductService. emitter and logger may be nil.
func NewProductService(productStore store.ProductStore, emitter events.EventEmitter, logger *slog.Logger) (ProductService, error) {
	records, err := newRecordService[domain.Product](ResourceProducts, productStore, emitter, logger)
	if err != nil {
		return nil, err
	}
	return &productServiceImpl{records: records}, nil
}

// ListProducts implements ProductService.
func (s *productServiceImpl) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.records.list(ctx)
}

// GetProduct implements ProductService.
func (s *productServiceImpl) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.records.get(ctx, id)
}

// CreateProduct implements ProductService.
func (s *productServiceImpl) CreateProduct(ctx context.Context, in domain.ProductInput) (*domain.Product, error) {
	return s.records.create(ctx, func(id string) domain.Product {
		return domain.NewProduct(id, in)
	})
}

// UpdateProduct implements ProductService.
func (s *productServiceImpl) UpdateProduct(ctx context.Context, id string, in domain.ProductInput) (*domain.Product, error) {
	return s.records.update(ctx, id, in.ApplyTo)
}

// DeleteProduct implements ProductService.
func (s *productServiceImpl) DeleteProduct(ctx context.Context, id string) (bool, error) {
	return s.records.delete(ctx, id)
}
