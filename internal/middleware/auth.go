package middleware

import (
	"strings"

	"workhub_backend/internal/auth"
	"workhub_backend/internal/logger"
	"workhub_backend/internal/models"
	"workhub_backend/internal/tokens"
	"workhub_backend/pkg/apperrors"
	"workhub_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware - middleware проверки JWT и списка отозванных токенов
func AuthMiddleware(jwt *auth.JWTManager, revoked tokens.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, ok := bearerToken(c)
		if !ok {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authorization header missing or invalid"))
			return
		}

		claims, err := jwt.ParseToken(tokenStr)
		if err != nil {
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			return
		}

		isRevoked, err := revoked.IsRevoked(c.Request.Context(), claims.TokenID())
		if err != nil {
			logger.CtxWithError(c.Request.Context(), "revoked token lookup failed", err)
			apperrors.HandleError(c, apperrors.InternalError(err))
			return
		}
		if isRevoked {
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			return
		}

		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Set(string(contextkeys.UserIDKey), claims.UserID)
		c.Set(string(contextkeys.RoleKey), claims.Role)
		c.Set(string(contextkeys.ClaimsKey), claims)
		c.Next()
	}
}

// bearerToken берет токен из заголовка Authorization, для WebSocket-handshake также из ?access_token=
func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		token := strings.TrimPrefix(authHeader, "Bearer ")
		return token, token != ""
	}
	if authHeader == "" && c.IsWebsocket() {
		if token := c.Query("access_token"); token != "" {
			return token, true
		}
	}
	return "", false
}

// RequireRoles - middleware для проверки нескольких возможных ролей
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := make(map[models.UserRole]bool)
	for _, r := range roles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		role, ok := GetRole(c)
		if !ok {
			apperrors.HandleError(c, apperrors.NewForbiddenError("Access denied: no role"))
			return
		}
		if !roleSet[role] {
			apperrors.HandleError(c, apperrors.ErrInsufficientPermissions)
			return
		}
		c.Next()
	}
}

// GetUserID извлекает ID пользователя из контекста
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get(string(contextkeys.UserIDKey))
	if !exists {
		return ""
	}
	id, ok := userID.(string)
	if !ok {
		return ""
	}
	return id
}

func GetRole(c *gin.Context) (models.UserRole, bool) {
	val, exists := c.Get(string(contextkeys.RoleKey))
	if !exists {
		return "", false
	}
	role, ok := val.(models.UserRole)
	return role, ok
}

// GetClaims возвращает claims текущего токена
func GetClaims(c *gin.Context) (*auth.Claims, bool) {
	val, exists := c.Get(string(contextkeys.ClaimsKey))
	if !exists {
		return nil, false
	}
	claims, ok := val.(*auth.Claims)
	return claims, ok
}
