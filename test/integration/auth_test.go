package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"gastropass_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthFlow(t *testing.T) {
	ts := helpers.NewTestServer(t)

	registerBody := map[string]interface{}{
		"name":     "Maria Silva",
		"email":    "maria@test.com",
		"password": "super_password123",
		"estado":   "SP",
		"location": "São Paulo",
	}

	regRes, regBodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", registerBody)
	assert.Equal(t, http.StatusCreated, regRes.StatusCode)
	assert.Contains(t, regBodyStr, "maria@test.com")
	assert.NotContains(t, regBodyStr, "super_password123", "password must never appear in responses")

	logRes, logBodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "maria@test.com",
		"password": "super_password123",
	})
	assert.Equal(t, http.StatusOK, logRes.StatusCode)

	var loginResponse struct {
		Token string `json:"token"`
		User  struct {
			ID      string `json:"id"`
			IsAdmin bool   `json:"isAdmin"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal([]byte(logBodyStr), &loginResponse))
	assert.NotEmpty(t, loginResponse.Token)
	assert.False(t, loginResponse.User.IsAdmin)

	meRes, meBodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/users/me", loginResponse.Token, nil)
	assert.Equal(t, http.StatusOK, meRes.StatusCode)
	assert.Contains(t, meBodyStr, "Maria Silva")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	ts := helpers.NewTestServer(t)

	body := map[string]interface{}{
		"name":     "Primeira",
		"email":    "dup@test.com",
		"password": "password123",
	}
	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", body)
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	// Same email with a different case still collides.
	body["email"] = "DUP@test.com"
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", body)
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, bodyStr, "Email already exists")
}

func TestLogin_WrongPassword(t *testing.T) {
	ts := helpers.NewTestServer(t)
	helpers.RegisterAndLogin(t, ts, "Pedro", "pedro@test.com", "correct_password")

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "pedro@test.com",
		"password": "wrong_password",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, bodyStr, "Invalid email or password")
}

func TestRegister_WeakPassword(t *testing.T) {
	ts := helpers.NewTestServer(t)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"name":     "Curto",
		"email":    "curto@test.com",
		"password": "123",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestProtectedRoute_RequiresToken(t *testing.T) {
	ts := helpers.NewTestServer(t)

	res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/users/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/users/me", "not-a-real-token", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestAdminRoute_ForbiddenForRegularUser(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token, _ := helpers.RegisterAndLogin(t, ts, "Comum", "comum@test.com", "password123")

	res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/admin/users", token, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}
