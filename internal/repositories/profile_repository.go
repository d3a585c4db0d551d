package repositories

import (
	"errors"

	"workhub_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrProfileNotFound      = errors.New("profile not found")
	ErrProfileAlreadyExists = errors.New("profile already exists for this user")
	// ErrRatingConflict - агрегат рейтинга изменился между чтением и записью
	ErrRatingConflict = errors.New("worker rating was updated concurrently")
)

type ProfileRepository interface {
	// WorkerProfile
	CreateWorkerProfile(db *gorm.DB, profile *models.WorkerProfile) error
	FindWorkerProfileByUserID(db *gorm.DB, userID string) (*models.WorkerProfile, error)
	FindWorkerProfilesByUserIDs(db *gorm.DB, userIDs []string) (map[string]*models.WorkerProfile, error)
	UpdateWorkerProfile(db *gorm.DB, profile *models.WorkerProfile) error
	ApplyRating(db *gorm.DB, userID string, expectedCount int, average float64, count int) error
	SetRating(db *gorm.DB, userID string, average float64, count int) error
	IncrementCompletedTasks(db *gorm.DB, userID string) error
	ListWorkerRatings(db *gorm.DB) ([]models.WorkerProfile, error)

	// ClientProfile
	CreateClientProfile(db *gorm.DB, profile *models.ClientProfile) error
	FindClientProfileByUserID(db *gorm.DB, userID string) (*models.ClientProfile, error)
	UpdateClientProfile(db *gorm.DB, profile *models.ClientProfile) error
	IncrementTasksPosted(db *gorm.DB, userID string) error
}

type profileRepository struct{}

func NewProfileRepository() ProfileRepository {
	return &profileRepository{}
}

// --- WorkerProfile ---

func (r *profileRepository) CreateWorkerProfile(db *gorm.DB, profile *models.WorkerProfile) error {
	if err := db.Create(profile).Error; err != nil {
		if isDuplicate(err) {
			return ErrProfileAlreadyExists
		}
		return err
	}
	return nil
}

func (r *profileRepository) FindWorkerProfileByUserID(db *gorm.DB, userID string) (*models.WorkerProfile, error) {
	var profile models.WorkerProfile
	if err := db.First(&profile, "user_id = ?", userID).Error; err != nil {
		if isNotFound(err) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) FindWorkerProfilesByUserIDs(db *gorm.DB, userIDs []string) (map[string]*models.WorkerProfile, error) {
	result := make(map[string]*models.WorkerProfile, len(userIDs))
	if len(userIDs) == 0 {
		return result, nil
	}

	var profiles []models.WorkerProfile
	if err := db.Where("user_id IN ?", userIDs).Find(&profiles).Error; err != nil {
		return nil, err
	}
	for i := range profiles {
		result[profiles[i].UserID] = &profiles[i]
	}
	return result, nil
}

// UpdateWorkerProfile обновляет редактируемые поля (агрегаты рейтинга не трогает).
// Наличие профиля проверяет сервис: MySQL не считает строки без изменений затронутыми.
func (r *profileRepository) UpdateWorkerProfile(db *gorm.DB, profile *models.WorkerProfile) error {
	result := db.Model(&models.WorkerProfile{}).Where("user_id = ?", profile.UserID).Updates(map[string]interface{}{
		"skills":       profile.Skills,
		"bio":          profile.Bio,
		"experience":   profile.Experience,
		"hourly_rate":  profile.HourlyRate,
		"city":         profile.City,
		"district":     profile.District,
		"availability": profile.Availability,
	})
	return result.Error
}

// ApplyRating записывает новый агрегат, только если rating_count не изменился с момента чтения
func (r *profileRepository) ApplyRating(db *gorm.DB, userID string, expectedCount int, average float64, count int) error {
	result := db.Model(&models.WorkerProfile{}).
		Where("user_id = ? AND rating_count = ?", userID, expectedCount).
		Updates(map[string]interface{}{
			"rating_average": average,
			"rating_count":   count,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRatingConflict
	}
	return nil
}

// SetRating безусловно перезаписывает агрегат (используется при сверке)
func (r *profileRepository) SetRating(db *gorm.DB, userID string, average float64, count int) error {
	return db.Model(&models.WorkerProfile{}).Where("user_id = ?", userID).Updates(map[string]interface{}{
		"rating_average": average,
		"rating_count":   count,
	}).Error
}

func (r *profileRepository) IncrementCompletedTasks(db *gorm.DB, userID string) error {
	result := db.Model(&models.WorkerProfile{}).Where("user_id = ?", userID).
		UpdateColumn("completed_tasks", gorm.Expr("completed_tasks + ?", 1))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *profileRepository) ListWorkerRatings(db *gorm.DB) ([]models.WorkerProfile, error) {
	var profiles []models.WorkerProfile
	err := db.Select("id", "user_id", "rating_average", "rating_count").Find(&profiles).Error
	return profiles, err
}

// --- ClientProfile ---

func (r *profileRepository) CreateClientProfile(db *gorm.DB, profile *models.ClientProfile) error {
	if err := db.Create(profile).Error; err != nil {
		if isDuplicate(err) {
			return ErrProfileAlreadyExists
		}
		return err
	}
	return nil
}

func (r *profileRepository) FindClientProfileByUserID(db *gorm.DB, userID string) (*models.ClientProfile, error) {
	var profile models.ClientProfile
	if err := db.First(&profile, "user_id = ?", userID).Error; err != nil {
		if isNotFound(err) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) UpdateClientProfile(db *gorm.DB, profile *models.ClientProfile) error {
	result := db.Model(&models.ClientProfile{}).Where("user_id = ?", profile.UserID).Updates(map[string]interface{}{
		"company_name": profile.CompanyName,
		"phone":        profile.Phone,
		"city":         profile.City,
	})
	return result.Error
}

func (r *profileRepository) IncrementTasksPosted(db *gorm.DB, userID string) error {
	return db.Model(&models.ClientProfile{}).Where("user_id = ?", userID).
		UpdateColumn("tasks_posted", gorm.Expr("tasks_posted + ?", 1)).Error
}
