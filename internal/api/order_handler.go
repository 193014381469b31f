package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/storefront-api/internal/api/shared"
	"github.com/phrazzld/storefront-api/internal/domain"
	"github.com/phrazzld/storefront-api/internal/platform/logger"
	"github.com/phrazzld/storefront-api/internal/service"
)

const orderResource = "Order"

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService service.OrderService
	logger       *slog.Logger
}

// NewOrderHandler creates a new OrderHandler. logger may be nil.
func NewOrderHandler(orderService service.OrderService, logger *slog.Logger) *OrderHandler {
	if orderService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("orderService cannot be nil for OrderHandler")
	}
	return &OrderHandler{
		orderService: orderService,
		logger:       handlerLogger(logger, "order_handler"),
	}
}

// ListOrders handles GET /orders requests
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.ListOrders(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, nonNil(orders))
}

// GetOrder handles GET /orders/{id} requests
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	order, err := h.orderService.GetOrder(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if order == nil {
		respondNotFound(w, r, orderResource)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, order)
}

// CreateOrder handles POST /orders requests
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var in domain.OrderInput
	if !decodeInput(w, r, &in) {
		return
	}

	order, err := h.orderService.CreateOrder(r.Context(), in)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).
		DebugContext(r.Context(), "order created",
			slog.String("order_id", order.ID),
			slog.String("status", string(order.Status)),
			slog.Int("item_count", len(order.Items)))
	shared.RespondWithJSON(w, r, http.StatusCreated, order)
}

// UpdateOrder handles PUT /orders/{id} requests. A createdAt field in the
// body is ignored.
func (h *OrderHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var in domain.OrderInput
	if !decodeInput(w, r, &in) {
		return
	}

	order, err := h.orderService.UpdateOrder(r.Context(), id, in)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if order == nil {
		respondNotFound(w, r, orderResource)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, order)
}

// DeleteOrder handles DELETE /orders/{id} requests
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	deleted, err := h.orderService.DeleteOrder(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if !deleted {
		respondNotFound(w, r, orderResource)
		return
	}
	respondDeleted(w, r, orderResource)
}
