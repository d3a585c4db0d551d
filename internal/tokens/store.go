package tokens

import (
	"context"
	"time"
)

// Store - разделяемое хранилище отозванных токенов (jti) с истечением.
// Запись живет не дольше самого токена.
type Store interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// Cleaner реализуют хранилища без встроенного TTL
type Cleaner interface {
	DeleteExpired(ctx context.Context) (int64, error)
}
