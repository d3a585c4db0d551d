package database

import (
	"fmt"

	"workhub_backend/internal/logger"
	"workhub_backend/internal/models"

	"gorm.io/gorm"
)

// Models - все таблицы приложения в порядке миграции
func Models() []interface{} {
	return []interface{}{
		&models.User{},
		&models.WorkerProfile{},
		&models.ClientProfile{},
		&models.Task{},
		&models.TaskApplication{},
		&models.Review{},
		&models.TaskAttachment{},
		&models.Notification{},
		&models.RevokedToken{},
	}
}

// AutoMigrate выполняет миграцию всех моделей
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}
	logger.Info("AutoMigrate completed", "tables", len(Models()))
	return nil
}
