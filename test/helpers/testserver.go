package helpers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"gastropass_backend/internal/app"
	"gastropass_backend/internal/config"
	"gastropass_backend/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type TestServer struct {
	Server *httptest.Server
	Store  *store.Store
}

// NewTestServer boots the full router against a fresh store in a temp dir.
// Environment (JWT_SECRET etc.) must be set before the first call; the
// integration TestMain takes care of that.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	config.LoadConfig()
	cfg := config.GetConfig()
	cfg.Store.Path = filepath.Join(t.TempDir(), "gastropass_test.db")

	st, err := store.Open(cfg.Store.Path)
	require.NoError(t, err, "opening the test store must not fail")

	router := app.SetupRouter(cfg, st)
	server := httptest.NewServer(router)

	t.Cleanup(server.Close)

	return &TestServer{
		Server: server,
		Store:  st,
	}
}

func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()
	url := ts.Server.URL + path

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err, "encoding request body")
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, url, reqBody)
	require.NoError(t, err, "building request")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err, "sending request")
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	require.NoError(t, err, "reading response body")

	return res, string(resBody)
}

// RegisterAndLogin registers a fresh user through the API and returns the
// token plus the user id.
func RegisterAndLogin(t *testing.T, ts *TestServer, name, email, password string) (string, string) {
	t.Helper()

	registerBody := map[string]interface{}{
		"name":     name,
		"email":    email,
		"password": password,
	}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", registerBody)
	assert.Equal(t, http.StatusCreated, res.StatusCode, "registration should succeed: "+bodyStr)

	var response struct {
		Token string `json:"token"`
		User  struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &response))
	require.NotEmpty(t, response.Token, "token must be present")

	return response.Token, response.User.ID
}

// UniqueEmail keeps parallel tests from colliding on the shared store.
func UniqueEmail(prefix string) string {
	return fmt.Sprintf("%s_%d@test.com", prefix, time.Now().UnixNano())
}

// LoginAdmin logs in with the seeded first-admin credentials.
func LoginAdmin(t *testing.T, ts *TestServer, email, password string) string {
	t.Helper()

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "admin login should succeed: "+bodyStr)

	var response struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &response))
	return response.Token
}
