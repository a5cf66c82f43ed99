package users_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickcart/models"
	"quickcart/ratelim"
	"quickcart/routes"
	"quickcart/store"
)

type envelope struct {
	Success    bool               `json:"success"`
	Data       json.RawMessage    `json:"data"`
	Error      string             `json:"error"`
	Message    string             `json:"message"`
	Details    []string           `json:"details"`
	Count      *int               `json:"count"`
	Pagination *models.Pagination `json:"pagination"`
}

func newTestRouter(t *testing.T) *httprouter.Router {
	t.Helper()
	store.Reset()
	return routes.NewRouter(ratelim.New(1000, time.Minute))
}

func do(t *testing.T, router *httprouter.Router, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func TestListUsersNeverExposesPasswords(t *testing.T) {
	router := newTestRouter(t)

	rec, env := do(t, router, http.MethodGet, "/api/users", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), `"password"`)

	var got []models.User
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Len(t, got, 4)
}

func TestListUsersFilterByRole(t *testing.T) {
	router := newTestRouter(t)

	_, env := do(t, router, http.MethodGet, "/api/users?role=customer", nil)
	var got []models.User
	require.NoError(t, json.Unmarshal(env.Data, &got))
	require.Len(t, got, 2)
	for _, u := range got {
		assert.Equal(t, "customer", u.Role)
	}
}

func TestCreateUserValidation(t *testing.T) {
	router := newTestRouter(t)

	rec, env := do(t, router, http.MethodPost, "/api/users", map[string]any{
		"name":     "",
		"email":    "not-an-email",
		"password": "abc",
		"role":     "wizard",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Validation failed", env.Error)
	assert.Contains(t, env.Details, "Name is required and cannot be empty")
	assert.Contains(t, env.Details, "Email must be a valid email address")
	assert.Contains(t, env.Details, "Password must be at least 6 characters long")
	assert.Contains(t, env.Details, "Role must be one of: admin, customer, seller")
}

func TestCreateUserDefaults(t *testing.T) {
	router := newTestRouter(t)

	rec, env := do(t, router, http.MethodPost, "/api/users", map[string]any{
		"name":     "New Customer",
		"email":    "new.customer@email.com",
		"password": "secret1",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), `"password"`)

	var got models.User
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, 5, got.ID)
	assert.Equal(t, "customer", got.Role)
	assert.Equal(t, "/images/default-avatar.jpg", got.Avatar)
	assert.True(t, got.IsActive)
	assert.False(t, got.IsEmailVerified)
	assert.Equal(t, "en", got.Preferences.Language)
	assert.Empty(t, got.Cart)
	assert.Nil(t, got.LastLogin)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	router := newTestRouter(t)

	rec, env := do(t, router, http.MethodPost, "/api/users", map[string]any{
		"name":     "Impostor",
		"email":    "john.smith@email.com",
		"password": "secret1",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Email already exists", env.Error)
}

func TestRegister(t *testing.T) {
	router := newTestRouter(t)

	rec, env := do(t, router, http.MethodPost, "/api/users/register", map[string]any{
		"name":            "  Fresh Signup  ",
		"email":           "Fresh.Signup@Email.com",
		"password":        "secret1",
		"confirmPassword": "secret1",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Registration successful! You can now log in.", env.Message)

	var got models.User
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "Fresh Signup", got.Name)
	assert.Equal(t, "fresh.signup@email.com", got.Email)
	assert.Equal(t, "customer", got.Role)
}

func TestRegisterPasswordMismatch(t *testing.T) {
	router := newTestRouter(t)

	rec, env := do(t, router, http.MethodPost, "/api/users/register", map[string]any{
		"name":            "Fresh Signup",
		"email":           "fresh@email.com",
		"password":        "secret1",
		"confirmPassword": "secret2",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Password mismatch", env.Error)
}

func TestRegisterDuplicateEmailCaseInsensitive(t *testing.T) {
	router := newTestRouter(t)

	rec, env := do(t, router, http.MethodPost, "/api/users/register", map[string]any{
		"name":            "Impostor",
		"email":           "JOHN.SMITH@EMAIL.COM",
		"password":        "secret1",
		"confirmPassword": "secret1",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Email already exists", env.Error)
}

func TestLogin(t *testing.T) {
	router := newTestRouter(t)

	rec, env := do(t, router, http.MethodPost, "/api/users/login", map[string]any{
		"email":    "john.smith@email.com",
		"password": "user123",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Login successful", env.Message)
	assert.NotContains(t, rec.Body.String(), `"password"`)

	var got models.User
	require.NoError(t, json.Unmarshal(env.Data, &got))
	require.NotNil(t, got.LastLogin)
	assert.WithinDuration(t, time.Now(), *got.LastLogin, time.Minute)
}

func TestLoginWrongPassword(t *testing.T) {
	router := newTestRouter(t)

	rec, env := do(t, router, http.MethodPost, "/api/users/login", map[string]any{
		"email":    "john.smith@email.com",
		"password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid credentials", env.Error)
	assert.Equal(t, "Invalid email or password", env.Message)
}

func TestLoginUnknownEmail(t *testing.T) {
	router := newTestRouter(t)

	rec, env := do(t, router, http.MethodPost, "/api/users/login", map[string]any{
		"email":    "ghost@email.com",
		"password": "whatever",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid credentials", env.Error)
}

func TestLoginMissingCredentials(t *testing.T) {
	router := newTestRouter(t)

	rec, env := do(t, router, http.MethodPost, "/api/users/login", map[string]any{"email": "a@b.com"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing credentials", env.Error)
}

func TestLoginDisabledAccount(t *testing.T) {
	router := newTestRouter(t)

	_, _ = store.Users.Update(3, func(u *models.User) { u.IsActive = false })

	rec, env := do(t, router, http.MethodPost, "/api/users/login", map[string]any{
		"email":    "sarah.johnson@email.com",
		"password": "user456",
	})
	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Account disabled", env.Error)
}

func TestUpdateUserEmailDuplicate(t *testing.T) {
	router := newTestRouter(t)

	rec, env := do(t, router, http.MethodPut, "/api/users/3", map[string]any{
		"email": "john.smith@email.com",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Email already exists", env.Error)
}

func TestUsersByRole(t *testing.T) {
	router := newTestRouter(t)

	rec, env := do(t, router, http.MethodGet, "/api/users/role/seller", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Users with role 'seller' retrieved successfully", env.Message)

	var got []models.User
	require.NoError(t, json.Unmarshal(env.Data, &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Seller Pro", got[0].Name)
	require.NotNil(t, env.Count)
	assert.Equal(t, 1, *env.Count)
}

func TestDeleteUser(t *testing.T) {
	router := newTestRouter(t)

	rec, _ := do(t, router, http.MethodDelete, "/api/users/2", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = do(t, router, http.MethodGet, "/api/users/2", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
