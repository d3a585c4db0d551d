package tokens

import (
	"context"
	"time"

	"workhub_backend/internal/models"
	"workhub_backend/internal/repositories"

	"gorm.io/gorm"
)

// SQLStore хранит отозванные jti в таблице revoked_tokens.
// Просроченные записи удаляет workers.TokenCleanupWorker.
type SQLStore struct {
	db   *gorm.DB
	repo repositories.RevokedTokenRepository
	now  func() time.Time
}

func NewSQLStore(db *gorm.DB, repo repositories.RevokedTokenRepository) *SQLStore {
	return &SQLStore{
		db:   db,
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (s *SQLStore) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if !expiresAt.After(s.now()) {
		return nil
	}
	return s.repo.Create(s.db.WithContext(ctx), &models.RevokedToken{
		TokenID:   tokenID,
		ExpiresAt: expiresAt.UTC(),
	})
}

func (s *SQLStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	return s.repo.IsRevoked(s.db.WithContext(ctx), tokenID, s.now())
}

func (s *SQLStore) DeleteExpired(ctx context.Context) (int64, error) {
	return s.repo.DeleteExpired(s.db.WithContext(ctx), s.now())
}
