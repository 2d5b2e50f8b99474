package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maintkit/cmms/internal/auth"
	"github.com/maintkit/cmms/internal/middleware"
	"github.com/maintkit/cmms/internal/models"
	"github.com/maintkit/cmms/internal/store"
)

func newAuthHandler(t *testing.T) (*AuthHandler, *store.Store) {
	t.Helper()
	authService, err := auth.NewService()
	require.NoError(t, err)
	s := store.New()
	return NewAuthHandler(authService, s), s
}

func registerUser(t *testing.T, h *AuthHandler, username, password string) models.User {
	t.Helper()
	req := postJSON(t, "/api/auth/register", models.RegisterRequest{
		Username:  username,
		Email:     username + "@example.com",
		Password:  password,
		Role:      models.RoleTechnician,
		FirstName: "Test",
		LastName:  "User",
	})
	rr := httptest.NewRecorder()
	h.Register(rr, req)
	require.Equal(t, http.StatusCreated, rr.Code)

	var user models.User
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&user))
	return user
}

func TestAuthHandler_Register(t *testing.T) {
	h, _ := newAuthHandler(t)

	user := registerUser(t, h, "joaosilva", "securepass123")
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "joaosilva", user.Username)
	assert.Equal(t, models.RoleTechnician, user.Role)
	assert.True(t, user.IsActive)
}

func TestAuthHandler_Register_Validation(t *testing.T) {
	h, _ := newAuthHandler(t)

	cases := []struct {
		name string
		req  models.RegisterRequest
		code int
	}{
		{"short username", models.RegisterRequest{Username: "ab", Email: "a@b.com", Password: "password123", Role: models.RoleViewer}, http.StatusBadRequest},
		{"bad email", models.RegisterRequest{Username: "validuser", Email: "nope", Password: "password123", Role: models.RoleViewer}, http.StatusBadRequest},
		{"short password", models.RegisterRequest{Username: "validuser", Email: "a@b.com", Password: "short", Role: models.RoleViewer}, http.StatusBadRequest},
		{"bad role", models.RegisterRequest{Username: "validuser", Email: "a@b.com", Password: "password123", Role: "superuser"}, http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			h.Register(rr, postJSON(t, "/api/auth/register", tc.req))
			assert.Equal(t, tc.code, rr.Code)
		})
	}
}

func TestAuthHandler_Register_DuplicateUsername(t *testing.T) {
	h, _ := newAuthHandler(t)
	registerUser(t, h, "joaosilva", "securepass123")

	req := postJSON(t, "/api/auth/register", models.RegisterRequest{
		Username: "joaosilva",
		Email:    "other@example.com",
		Password: "securepass123",
		Role:     models.RoleViewer,
	})
	rr := httptest.NewRecorder()
	h.Register(rr, req)

	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestAuthHandler_Login(t *testing.T) {
	h, _ := newAuthHandler(t)
	registerUser(t, h, "joaosilva", "securepass123")

	req := postJSON(t, "/api/auth/login", models.LoginRequest{
		Username: "joaosilva",
		Password: "securepass123",
	})
	rr := httptest.NewRecorder()
	h.Login(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp models.LoginResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.NotEmpty(t, resp.Token)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "joaosilva", resp.User.Username)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h, _ := newAuthHandler(t)
	registerUser(t, h, "joaosilva", "securepass123")

	// Wrong password
	rr := httptest.NewRecorder()
	h.Login(rr, postJSON(t, "/api/auth/login", models.LoginRequest{
		Username: "joaosilva",
		Password: "wrongpassword",
	}))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	// Unknown user
	rr = httptest.NewRecorder()
	h.Login(rr, postJSON(t, "/api/auth/login", models.LoginRequest{
		Username: "ghost",
		Password: "securepass123",
	}))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	// Missing fields
	rr = httptest.NewRecorder()
	h.Login(rr, postJSON(t, "/api/auth/login", models.LoginRequest{}))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAuthHandler_Me(t *testing.T) {
	h, _ := newAuthHandler(t)
	user := registerUser(t, h, "joaosilva", "securepass123")

	req := httptest.NewRequest("GET", "/api/auth/me", nil)
	ctx := context.WithValue(req.Context(), middleware.UserContextKey, &models.Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	})
	rr := httptest.NewRecorder()
	h.Me(rr, req.WithContext(ctx))

	require.Equal(t, http.StatusOK, rr.Code)
	var got models.User
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
	assert.Equal(t, user.ID, got.ID)
}

func TestAuthHandler_Me_NoContext(t *testing.T) {
	h, _ := newAuthHandler(t)

	rr := httptest.NewRecorder()
	h.Me(rr, httptest.NewRequest("GET", "/api/auth/me", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuthHandler_Login_InvalidJSON(t *testing.T) {
	h, _ := newAuthHandler(t)

	req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewBufferString("{oops"))
	rr := httptest.NewRecorder()
	h.Login(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
