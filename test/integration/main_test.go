package integration_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"workhub_backend/internal/app"
	"workhub_backend/internal/models"
	"workhub_backend/internal/services/dto"
	"workhub_backend/test/helpers"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestServer - приложение поверх SQLite в памяти за httptest.Server
type TestServer struct {
	App    *app.App
	DB     *gorm.DB
	Server *httptest.Server
}

// NewTestServer поднимает отдельный сервер и БД на каждый тест
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	cfg := helpers.TestConfig()
	cfg.Storage.BasePath = t.TempDir()
	db := helpers.NewTestDBWithConfig(t, cfg)

	application, err := app.NewWithDB(cfg, db)
	require.NoError(t, err)

	srv := httptest.NewServer(application.Router)
	t.Cleanup(func() {
		srv.Close()
		application.Services.NotificationService.Wait()
		_ = application.Close()
	})

	return &TestServer{App: application, DB: db, Server: srv}
}

// SendRequest отправляет JSON-запрос и возвращает ответ и тело строкой
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := ts.Server.Client().Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res, string(raw)
}

// Decode разбирает JSON тело ответа
func Decode[T any](t *testing.T, body string) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal([]byte(body), &out), body)
	return out
}

// RegisterAndLogin регистрирует пользователя через API и возвращает токен и его данные
func (ts *TestServer) RegisterAndLogin(t *testing.T, email string, role models.UserRole) (string, dto.UserDTO) {
	t.Helper()

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", map[string]any{
		"email":    email,
		"password": helpers.DefaultPassword,
		"name":     "Test " + string(role),
		"role":     role,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]any{
		"email":    email,
		"password": helpers.DefaultPassword,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	auth := Decode[dto.AuthResponse](t, body)
	return auth.AccessToken, auth.User
}

// CreateAdmin создает администратора напрямую в БД и логинится им
func (ts *TestServer) CreateAdmin(t *testing.T) string {
	t.Helper()

	admin := helpers.CreateUser(t, ts.DB, models.UserRoleAdmin)
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]any{
		"email":    admin.Email,
		"password": helpers.DefaultPassword,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	return Decode[dto.AuthResponse](t, body).AccessToken
}

func taskBody() map[string]any {
	return map[string]any{
		"title":       "Fix the kitchen sink",
		"description": "The kitchen sink leaks under the cabinet, needs a new gasket.",
		"category":    models.CategoryRepair,
		"budget":      "120.50",
		"location": map[string]any{
			"address":  "12 Abay Ave",
			"city":     "Almaty",
			"district": "Medeu",
		},
		"requiredSkills": []string{"plumbing"},
	}
}
