package repositories

import (
	"time"

	"workhub_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RevokedTokenRepository - хранилище отозванных jti в БД
type RevokedTokenRepository interface {
	// Create сохраняет jti; повторный отзыв того же токена не является ошибкой
	Create(db *gorm.DB, token *models.RevokedToken) error

	// IsRevoked проверяет, что jti отозван и запись еще не истекла
	IsRevoked(db *gorm.DB, tokenID string, now time.Time) (bool, error)

	// DeleteExpired удаляет записи, срок которых прошел
	DeleteExpired(db *gorm.DB, now time.Time) (int64, error)
}

type revokedTokenRepository struct{}

func NewRevokedTokenRepository() RevokedTokenRepository {
	return &revokedTokenRepository{}
}

func (r *revokedTokenRepository) Create(db *gorm.DB, token *models.RevokedToken) error {
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(token).Error
}

func (r *revokedTokenRepository) IsRevoked(db *gorm.DB, tokenID string, now time.Time) (bool, error) {
	var count int64
	err := db.Model(&models.RevokedToken{}).
		Where("token_id = ? AND expires_at > ?", tokenID, now).
		Count(&count).Error
	return count > 0, err
}

func (r *revokedTokenRepository) DeleteExpired(db *gorm.DB, now time.Time) (int64, error) {
	result := db.Where("expires_at <= ?", now).Delete(&models.RevokedToken{})
	return result.RowsAffected, result.Error
}
