package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/storefront-api/internal/domain"
	"github.com/phrazzld/storefront-api/internal/events"
	"github.com/phrazzld/storefront-api/internal/store"
)

// ResourceUsers is the collection name of the user resource.
const ResourceUsers = "users"

// UserService provides user-related operations.
type UserService interface {
	// ListUsers returns every user in insertion order.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// GetUser returns the user with the id, or nil if there is none.
	GetUser(ctx context.Context, id string) (*domain.User, error)

	// CreateUser stores a new user built from the supplied fields.
	CreateUser(ctx context.Context, in domain.UserInput) (*domain.User, error)

	// UpdateUser merges the supplied fields into an existing user.
	// Returns nil if the user does not exist.
	UpdateUser(ctx context.Context, id string, in domain.UserInput) (*domain.User, error)

	// DeleteUser removes a user. Returns false if the user does not exist.
	DeleteUser(ctx context.Context, id string) (bool, error)
}

// userServiceImpl implements the UserService interface
type userServiceImpl struct {
	records *recordService[domain.User, *domain.User]
}

// NewUserService creates a new UserService. emitter and logger may be nil.
func NewUserService(userStore store.UserStore, emitter events.EventEmitter, logger *slog.Logger) (UserService, error) {
	records, err := newRecordService[domain.User](ResourceUsers, userStore, emitter, logger)
	if err != nil {
		return nil, err
	}
	return &userServiceImpl{records: records}, nil
}

// ListUsers implements UserService.
func (s *userServiceImpl) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.records.list(ctx)
}

// GetUser implements UserService.
func (s *userServiceImpl) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.records.get(ctx, id)
}

// CreateUser implements UserService.
func (s *userServiceImpl) CreateUser(ctx context.Context, in domain.UserInput) (*domain.User, error) {
	return s.records.create(ctx, func(id string) domain.User {
		return domain.NewUser(id, in)
	})
}

// UpdateUser implements UserService.
func (s *userServiceImpl) UpdateUser(ctx context.Context, id string, in domain.UserInput) (*domain.User, error) {
	return s.records.update(ctx, id, in.ApplyTo)
}

// DeleteUser implements UserService.
func (s *userServiceImpl) DeleteUser(ctx context.Context, id string) (bool, error) {
	return s.records.delete(ctx, id)
}
