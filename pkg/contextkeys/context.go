package contextkeys

// Используем кастомный тип, чтобы избежать коллизий
type contextKey string

const (
	// DBContextKey - ключ, по которому в gin.Context лежит *gorm.DB
	DBContextKey = contextKey("db")
	// UserIDKey - ID аутентифицированного пользователя
	UserIDKey = contextKey("userID")
	// RoleKey - роль аутентифицированного пользователя
	RoleKey = contextKey("role")
	// ClaimsKey - *auth.Claims текущего access-токена (нужны для logout)
	ClaimsKey = contextKey("claims")
)
