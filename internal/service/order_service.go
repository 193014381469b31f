package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/phrazzld/storefront-api/internal/domain"
	"github.com/phrazzld/storefront-api/internal/events"
	"github.com/phrazzld/storefront-api/internal/store"
)

// ResourceOrders is the collection name of the order resource.
const ResourceOrders = "orders"

// OrderService provides order-related operations.
type OrderService interface {
	// ListOrders returns every order in insertion order.
	ListOrders(ctx context.Context) ([]domain.Order, error)

	// GetOrder returns the order with the id, or nil if there is none.
	GetOrder(ctx context.Context, id string) (*domain.Order, error)

	// CreateOrder stores a new order. Items default to an empty list, total
	// to 0 and status to pending; createdAt is stamped with the current time.
	CreateOrder(ctx context.Context, in domain.OrderInput) (*domain.Order, error)

	// UpdateOrder merges the supplied fields into an existing order, leaving
	// its id and createdAt untouched. Returns nil if the order does not exist.
	UpdateOrder(ctx context.Context, id string, in domain.OrderInput) (*domain.Order, error)

	// DeleteOrder removes an order. Returns false if the order does not exist.
	DeleteOrder(ctx context.Context, id string) (bool, error)
}

// OrderServiceOption customises an order service.
type OrderServiceOption func(*orderServiceImpl)

// WithClock replaces the clock used to stamp createdAt.
func WithClock(now func() time.Time) OrderServiceOption {
	return func(s *orderServiceImpl) {
		if now != nil {
			s.now = now
		}
	}
}

// orderServiceImpl implements the OrderService interface
type orderServiceImpl struct {
	records *recordService[domain.Order, *domain.Order]
	now     func() time.Time
}

// NewOrderService creates a new OrderService. emitter and logger may be nil.
func NewOrderService(
	orderStore store.OrderStore,
	emitter events.EventEmitter,
	logger *slog.Logger,
	opts ...OrderServiceOption,
) (OrderService, error) {
	records, err := newRecordService[domain.Order](ResourceOrders, orderStore, emitter, logger)
	if err != nil {
		return nil, err
	}

	s := &orderServiceImpl{
		records: records,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// ListOrders implements OrderService.
func (s *orderServiceImpl) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return s.records.list(ctx)
}

// GetOrder implements OrderService.
func (s *orderServiceImpl) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	return s.records.get(ctx, id)
}

// CreateOrder implements OrderService.
func (s *orderServiceImpl) CreateOrder(ctx context.Context, in domain.OrderInput) (*domain.Order, error) {
	s.warnUnknownStatus(in, "")
	createdAt := s.now().UTC()
	return s.records.create(ctx, func(id string) domain.Order {
		return domain.NewOrder(id, in, createdAt)
	})
}

// UpdateOrder implements OrderService.
func (s *orderServiceImpl) UpdateOrder(ctx context.Context, id string, in domain.OrderInput) (*domain.Order, error) {
	s.warnUnknownStatus(in, id)
	return s.records.update(ctx, id, func(order *domain.Order) {
		createdAt := order.CreatedAt
		in.ApplyTo(order)
		order.CreatedAt = createdAt
	})
}

// DeleteOrder implements OrderService.
func (s *orderServiceImpl) DeleteOrder(ctx context.Context, id string) (bool, error) {
	return s.records.delete(ctx, id)
}

// warnUnknownStatus logs statuses outside the known set. They are stored anyway.
func (s *orderServiceImpl) warnUnknownStatus(in domain.OrderInput, id string) {
	if in.Status == nil || *in.Status == "" || in.Status.IsKnown() {
		return
	}
	s.records.logger.Warn("order status outside the known set",
		"status", string(*in.Status),
		"id", id)
}
