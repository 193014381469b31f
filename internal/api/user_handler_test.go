package api

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/phrazzld/storefront-api/internal/domain"
	"github.com/phrazzld/storefront-api/internal/mocks"
	"github.com/stretchr/testify/assert"
)

func userRouter(svc *mocks.MockUserService) http.Handler {
	h := NewUserHandler(svc, discardLogger())
	return mount("users", crudHandler{h.ListUsers, h.GetUser, h.CreateUser, h.UpdateUser, h.DeleteUser})
}

func TestUserHandler_DeleteUser(t *testing.T) {
	deleted := map[string]bool{}
	svc := &mocks.MockUserService{
		DeleteUserFn: func(_ context.Context, id string) (bool, error) {
			if id != "1" || deleted[id] {
				return false, nil
			}
			deleted[id] = true
			return true, nil
		},
	}
	router := userRouter(svc)

	rec := serve(t, router, http.MethodDelete, "/users/999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"User not found"}`, rec.Body.String())

	rec = serve(t, router, http.MethodDelete, "/users/1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"User deleted successfully"}`, rec.Body.String())

	rec = serve(t, router, http.MethodDelete, "/users/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUserHandler_ListUsers(t *testing.T) {
	svc := &mocks.MockUserService{Users: []domain.User{
		{ID: "1", Name: "João Silva", Email: "joao@example.com", Age: 30},
	}}

	rec := serve(t, userRouter(svc), http.MethodGet, "/users", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":"1","name":"João Silva","email":"joao@example.com","age":30}]`, rec.Body.String())
}

func TestUserHandler_FailureDoesNotLeakError(t *testing.T) {
	svc := &mocks.MockUserService{DefaultError: errors.New("store exploded for joao@example.com")}

	rec := serve(t, userRouter(svc), http.MethodPost, "/users", `{"name":"x"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"An unexpected error occurred","trace_id":"test-trace-id"}`, rec.Body.String())
}
