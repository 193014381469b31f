package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/storefront-api/internal/api/shared"
	"github.com/phrazzld/storefront-api/internal/domain"
	"github.com/phrazzld/storefront-api/internal/platform/logger"
	"github.com/phrazzld/storefront-api/internal/service"
)

const productResource = "Product"

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	productService service.ProductService
	logger         *slog.Logger
}

// NewProductHandler creates a new ProductHandler. logger may be nil.
func NewProductHandler(productService service.ProductService, logger *slog.Logger) *ProductHandler {
	if productService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("productService cannot be nil for ProductHandler")
	}
	return &ProductHandler{
		productService: productService,
		logger:         handlerLogger(logger, "product_handler"),
	}
}

// ListProducts handles GET /products requests
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.productService.ListProducts(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, nonNil(products))
}

// GetProduct handles GET /products/{id} requests
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	product, err := h.productService.GetProduct(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if product == nil {
		respondNotFound(w, r, productResource)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, product)
}

// CreateProduct handles POST /products requests
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var in domain.ProductInput
	if !decodeInput(w, r, &in) {
		return
	}

	product, err := h.productService.CreateProduct(r.Context(), in)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).
		DebugContext(r.Context(), "product created", slog.String("product_id", product.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, product)
}

// UpdateProduct handles PUT /products/{id} requests
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var in domain.ProductInput
	if !decodeInput(w, r, &in) {
		return
	}

	product, err := h.productService.UpdateProduct(r.Context(), id, in)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if product == nil {
		respondNotFound(w, r, productResource)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, product)
}

// DeleteProduct handles DELETE /products/{id} requests
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	deleted, err := h.productService.DeleteProduct(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if !deleted {
		respondNotFound(w, r, productResource)
		return
	}
	respondDeleted(w, r, productResource)
}
