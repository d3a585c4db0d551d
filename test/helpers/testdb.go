package helpers

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"workhub_backend/database"
	"workhub_backend/internal/auth"
	"workhub_backend/internal/config"
	"workhub_backend/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const DefaultPassword = "password123"

// TestConfig - конфигурация для тестов: SQLite в памяти, AI и email выключены
func TestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.Server.LogLevel = "error"
	cfg.Database.Driver = "sqlite"
	cfg.Database.DSN = fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", uuid.NewString())
	cfg.Database.MaxOpenConns = 1
	cfg.Database.MaxIdleConns = 1
	cfg.Database.AutoMigrate = true
	cfg.JWT.Secret = "test-secret-test-secret-test-secret"
	cfg.JWT.TTL = 60
	cfg.Storage.Type = "local"
	cfg.Storage.BasePath = os.TempDir()
	cfg.Storage.MaxUploadMB = 1
	cfg.Storage.MaxPerTask = 3
	cfg.Storage.URLTTL = 60
	cfg.Storage.ImageQuality = 80
	return cfg
}

// NewTestDB открывает отдельную БД SQLite в памяти с примененными миграциями.
// Соединение закрывается по окончании теста.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	return NewTestDBWithConfig(t, TestConfig())
}

func NewTestDBWithConfig(t *testing.T, cfg *config.Config) *gorm.DB {
	t.Helper()

	db, err := database.Open(cfg)
	require.NoError(t, err, "failed to open test database")
	require.NoError(t, database.AutoMigrate(db), "failed to migrate test database")

	t.Cleanup(func() {
		_ = database.Close(db)
	})
	return db
}

// CreateUser создает активного пользователя с профилем, соответствующим роли
func CreateUser(t *testing.T, db *gorm.DB, role models.UserRole) *models.User {
	t.Helper()

	hash, err := auth.HashPassword(DefaultPassword)
	require.NoError(t, err)

	id := uuid.NewString()
	user := &models.User{
		BaseModel:    models.BaseModel{ID: id},
		Email:        strings.ToLower(fmt.Sprintf("%s_%s@test.com", role, id[:8])),
		PasswordHash: hash,
		Name:         "Test " + string(role),
		Role:         role,
		Status:       models.UserStatusActive,
	}
	require.NoError(t, db.Create(user).Error)

	switch role {
	case models.UserRoleWorker:
		profile := &models.WorkerProfile{
			UserID:       user.ID,
			HourlyRate:   decimal.NewFromInt(15),
			City:         "Almaty",
			District:     "Medeu",
			Availability: models.AvailabilityAvailable,
		}
		profile.SetSkills([]string{"plumbing"})
		require.NoError(t, db.Create(profile).Error)
	case models.UserRoleClient:
		require.NoError(t, db.Create(&models.ClientProfile{UserID: user.ID, City: "Almaty"}).Error)
	}
	return user
}
