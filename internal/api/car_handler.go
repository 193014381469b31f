package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/storefront-api/internal/api/shared"
	"github.com/phrazzld/storefront-api/internal/domain"
	"github.com/phrazzld/storefront-api/internal/platform/logger"
	"github.com/phrazzld/storefront-api/internal/service"
)

const carResource = "Car"

// CarHandler handles car-related HTTP requests
type CarHandler struct {
	carService service.CarService
	logger     *slog.Logger
}

// NewCarHandler creates a new CarHandler. logger may be nil.
func NewCarHandler(carService service.CarService, logger *slog.Logger) *CarHandler {
	if carService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("carService cannot be nil for CarHandler")
	}
	return &CarHandler{
		carService: carService,
		logger:     handlerLogger(logger, "car_handler"),
	}
}

// ListCars handles GET /cars requests
func (h *CarHandler) ListCars(w http.ResponseWriter, r *http.Request) {
	cars, err := h.carService.ListCars(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, nonNil(cars))
}

// GetCar handles GET /cars/{id} requests
func (h *CarHandler) GetCar(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	car, err := h.carService.GetCar(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if car == nil {
		respondNotFound(w, r, carResource)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, car)
}

// CreateCar handles POST /cars requests
func (h *CarHandler) CreateCar(w http.ResponseWriter, r *http.Request) {
	var in domain.CarInput
	if !decodeInput(w, r, &in) {
		return
	}

	car, err := h.carService.CreateCar(r.Context(), in)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).
		DebugContext(r.Context(), "car created", slog.String("car_id", car.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, car)
}

// UpdateCar handles PUT /cars/{id} requests
func (h *CarHandler) UpdateCar(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var in domain.CarInput
	if !decodeInput(w, r, &in) {
		return
	}

	car, err := h.carService.UpdateCar(r.Context(), id, in)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if car == nil {
		respondNotFound(w, r, carResource)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, car)
}

// DeleteCar handles DELETE /cars/{id} requests
func (h *CarHandler) DeleteCar(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	deleted, err := h.carService.DeleteCar(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if !deleted {
		respondNotFound(w, r, carResource)
		return
	}
	respondDeleted(w, r, carResource)
}
