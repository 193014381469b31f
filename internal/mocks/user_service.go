package mocks

import (
	"context"

	"github.com/phrazzld/storefront-api/internal/domain"
)

// MockUserService implements service.UserService for testing
type MockUserService struct {
	// Custom behavior functions
	ListUsersFn  func(ctx context.Context) ([]domain.User, error)
	GetUserFn    func(ctx context.Context, id string) (*domain.User, error)
	CreateUserFn func(ctx context.Context, in domain.UserInput) (*domain.User, error)
	UpdateUserFn func(ctx context.Context, id string, in domain.UserInput) (*domain.User, error)
	DeleteUserFn func(ctx context.Context, id string) (bool, error)

	// Default return values
	Users        []domain.User
	User         *domain.User
	Deleted      bool
	DefaultError error
}

// ListUsers implements the UserService.ListUsers method
func (m *MockUserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	if m.ListUsersFn != nil {
		return m.ListUsersFn(ctx)
	}
	return m.Users, m.DefaultError
}

// GetUser implements the UserService.GetUser method
func (m *MockUserService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	if m.GetUserFn != nil {
		return m.GetUserFn(ctx, id)
	}
	return m.User, m.DefaultError
}

// CreateUser implements the UserService.CreateUser method
func (m *MockUserService) CreateUser(ctx context.Context, in domain.UserInput) (*domain.User, error) {
	if m.CreateUserFn != nil {
		return m.CreateUserFn(ctx, in)
	}
	return m.User, m.DefaultError
}

// UpdateUser implements the UserService.UpdateUser method
func (m *MockUserService) UpdateUser(ctx context.Context, id string, in domain.UserInput) (*domain.User, error) {
	if m.UpdateUserFn != nil {
		return m.UpdateUserFn(ctx, id, in)
	}
	return m.User, m.DefaultError
}

// DeleteUser implements the UserService.DeleteUser method
func (m *MockUserService) DeleteUser(ctx context.Context, id string) (bool, error) {
	if m.DeleteUserFn != nil {
		return m.DeleteUserFn(ctx, id)
	}
	return m.Deleted, m.DefaultError
}
