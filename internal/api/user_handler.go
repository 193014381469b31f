package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/storefront-api/internal/api/shared"
	"github.com/phrazzld/storefront-api/internal/domain"
	"github.com/phrazzld/storefront-api/internal/platform/logger"
	"github.com/phrazzld/storefront-api/internal/service"
)

const userResource = "User"

// UserHandler serves /users. Emails are stored as given; uniqueness is not checked.
type UserHandler struct {
	userService service.UserService
	logger      *slog.Logger
}

// NewUserHandler creates a new UserHandler. logger may be nil.
func NewUserHandler(userService service.UserService, logger *slog.Logger) *UserHandler {
	if userService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("userService cannot be nil for UserHandler")
	}
	return &UserHandler{
		userService: userService,
		logger:      handlerLogger(logger, "user_handler"),
	}
}

// ListUsers handles GET /users requests
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, nonNil(users))
}

// GetUser handles GET /users/{id} requests
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	user, err := h.userService.GetUser(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if user == nil {
		respondNotFound(w, r, userResource)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, user)
}

// CreateUser handles POST /users requests
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var in domain.UserInput
	if !decodeInput(w, r, &in) {
		return
	}

	user, err := h.userService.CreateUser(r.Context(), in)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).
		DebugContext(r.Context(), "user created", slog.String("user_id", user.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, user)
}

// UpdateUser handles PUT /users/{id} requests
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var in domain.UserInput
	if !decodeInput(w, r, &in) {
		return
	}

	user, err := h.userService.UpdateUser(r.Context(), id, in)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if user == nil {
		respondNotFound(w, r, userResource)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, user)
}

// DeleteUser handles DELETE /users/{id} requests
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	deleted, err := h.userService.DeleteUser(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if !deleted {
		respondNotFound(w, r, userResource)
		return
	}
	respondDeleted(w, r, userResource)
}
