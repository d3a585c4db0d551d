package integration_test

import (
	"net/http"
	"testing"

	"workhub_backend/internal/models"
	"workhub_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthAndSwagger(t *testing.T) {
	ts := NewTestServer(t)

	res, body := ts.SendRequest(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "ok")

	res, body = ts.SendRequest(t, http.MethodGet, "/swagger/doc.json", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "WorkHub API")
}

func TestAuthFlow(t *testing.T) {
	ts := NewTestServer(t)

	token, user := ts.RegisterAndLogin(t, "worker@test.com", models.UserRoleWorker)
	assert.Equal(t, models.UserRoleWorker, user.Role)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/me", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	me := Decode[dto.ProfileResponse](t, body)
	assert.Equal(t, "worker@test.com", me.User.Email)
	require.NotNil(t, me.Worker)
	assert.Nil(t, me.Client)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode, "revoked token is rejected")
}

func TestRegisterValidation(t *testing.T) {
	ts := NewTestServer(t)
	ts.RegisterAndLogin(t, "dup@test.com", models.UserRoleClient)

	tests := []struct {
		name string
		body map[string]any
		want int
	}{
		{"duplicate email", map[string]any{"email": "dup@test.com", "password": "password123", "name": "Dup", "role": "CLIENT"}, http.StatusConflict},
		{"admin role", map[string]any{"email": "a@test.com", "password": "password123", "name": "Adm", "role": "ADMIN"}, http.StatusBadRequest},
		{"short password", map[string]any{"email": "b@test.com", "password": "short", "name": "Bob", "role": "WORKER"}, http.StatusBadRequest},
		{"bad email", map[string]any{"email": "nope", "password": "password123", "name": "Bob", "role": "WORKER"}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", tt.body)
			assert.Equal(t, tt.want, res.StatusCode, body)
		})
	}
}

func TestUnauthenticatedAccess(t *testing.T) {
	ts := NewTestServer(t)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/tasks", "", taskBody())
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, body, `"code"`)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/admin/stats", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/tasks", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, "task board is public")
}

func TestWrongPassword(t *testing.T) {
	ts := NewTestServer(t)
	ts.RegisterAndLogin(t, "client@test.com", models.UserRoleClient)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]any{
		"email":    "client@test.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}
