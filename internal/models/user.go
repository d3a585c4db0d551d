package models

import "time"

type User struct {
	BaseModel
	Email        string     `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string     `gorm:"not null"`
	Name         string     `gorm:"size:120;not null"`
	Role         UserRole   `gorm:"type:varchar(20);not null;index"`
	Status       UserStatus `gorm:"type:varchar(20);not null;default:'ACTIVE'"`
	LastLoginAt  *time.Time

	WorkerProfile *WorkerProfile `gorm:"foreignKey:UserID"`
	ClientProfile *ClientProfile `gorm:"foreignKey:UserID"`
}

// RevokedToken - отозванный access-токен (jti) до момента его истечения.
// Используется, когда Redis не настроен.
type RevokedToken struct {
	TokenID   string    `gorm:"type:varchar(64);primaryKey"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}
