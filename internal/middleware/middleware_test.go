package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"workhub_backend/internal/auth"
	"workhub_backend/internal/models"
	"workhub_backend/pkg/apperrors"
	"workhub_backend/pkg/contextkeys"
	"workhub_backend/test/helpers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type memoryStore struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	err     error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{revoked: map[string]time.Time{}}
}

func (s *memoryStore) Revoke(_ context.Context, tokenID string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[tokenID] = expiresAt
	return nil
}

func (s *memoryStore) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return false, s.err
	}
	_, ok := s.revoked[tokenID]
	return ok, nil
}

func protectedRouter(jwt *auth.JWTManager, store *memoryStore, roles ...models.UserRole) *gin.Engine {
	r := gin.New()
	chain := []gin.HandlerFunc{AuthMiddleware(jwt, store)}
	if len(roles) > 0 {
		chain = append(chain, RequireRoles(roles...))
	}
	chain = append(chain, func(c *gin.Context) {
		role, _ := GetRole(c)
		claims, ok := GetClaims(c)
		c.JSON(http.StatusOK, gin.H{
			"userId":    GetUserID(c),
			"role":      role,
			"hasClaims": ok && claims != nil,
		})
	})
	r.GET("/private", chain...)
	return r
}

func doGet(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) apperrors.ErrorCode {
	t.Helper()
	var body apperrors.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	return body.Error.Code
}

func issue(t *testing.T, jwt *auth.JWTManager, role models.UserRole) (string, *auth.Claims) {
	t.Helper()
	token, claims, err := jwt.GenerateToken(&models.User{
		BaseModel: models.BaseModel{ID: "user-1"},
		Email:     "user@test.com",
		Role:      role,
	})
	require.NoError(t, err)
	return token, claims
}

func TestAuthMiddleware(t *testing.T) {
	jwt := auth.NewJWTManager("test-secret", time.Hour)
	store := newMemoryStore()
	r := protectedRouter(jwt, store)
	token, claims := issue(t, jwt, models.UserRoleWorker)

	t.Run("missing header", func(t *testing.T) {
		w := doGet(r, "/private", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		w := doGet(r, "/private", "not-a-jwt")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, apperrors.ErrInvalidToken.Code, errorCode(t, w))
	})

	t.Run("valid token", func(t *testing.T) {
		w := doGet(r, "/private", token)
		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "user-1", body["userId"])
		assert.Equal(t, string(models.UserRoleWorker), body["role"])
		assert.Equal(t, true, body["hasClaims"])
	})

	t.Run("revoked token", func(t *testing.T) {
		require.NoError(t, store.Revoke(context.Background(), claims.TokenID(), claims.ExpiresAt()))
		w := doGet(r, "/private", token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("store failure", func(t *testing.T) {
		failing := newMemoryStore()
		failing.err = errors.New("redis down")
		w := doGet(protectedRouter(jwt, failing), "/private", token)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestRequireRoles(t *testing.T) {
	jwt := auth.NewJWTManager("test-secret", time.Hour)
	r := protectedRouter(jwt, newMemoryStore(), models.UserRoleAdmin)

	workerToken, _ := issue(t, jwt, models.UserRoleWorker)
	w := doGet(r, "/private", workerToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	adminToken, _ := issue(t, jwt, models.UserRoleAdmin)
	w = doGet(r, "/private", adminToken)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestIDMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := doGet(r, "/", "")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "req-42")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-42", w.Header().Get("X-Request-ID"))
}

func TestCORSMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware([]string{"https://app.workhub.local"}))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://app.workhub.local")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "https://app.workhub.local", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestDBMiddleware(t *testing.T) {
	db := helpers.NewTestDB(t)
	r := gin.New()
	r.Use(DBMiddleware(db))
	r.GET("/", func(c *gin.Context) {
		val, ok := c.Get(string(contextkeys.DBContextKey))
		_, isDB := val.(*gorm.DB)
		if ok && isDB {
			c.Status(http.StatusOK)
			return
		}
		c.Status(http.StatusInternalServerError)
	})

	w := doGet(r, "/", "")
	assert.Equal(t, http.StatusOK, w.Code)
}
