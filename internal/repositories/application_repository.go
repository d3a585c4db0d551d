package repositories

import (
	"errors"
	"time"

	"workhub_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound      = errors.New("application not found")
	ErrApplicationAlreadyExists = errors.New("application for this task and worker already exists")
	// ErrApplicationConflict - статус отклика изменился между чтением и записью
	ErrApplicationConflict = errors.New("application status changed concurrently")
)

type ApplicationRepository interface {
	Create(db *gorm.DB, app *models.TaskApplication) error
	FindByID(db *gorm.DB, id string) (*models.TaskApplication, error)
	FindByTaskAndWorker(db *gorm.DB, taskID, workerID string) (*models.TaskApplication, error)
	UpdateStatus(db *gorm.DB, app *models.TaskApplication, from models.ApplicationStatus) error
	FindByTask(db *gorm.DB, taskID string, status models.ApplicationStatus) ([]models.TaskApplication, error)
	FindByWorker(db *gorm.DB, workerID string, status models.ApplicationStatus, p Pagination) ([]models.TaskApplication, int64, error)
	RejectPending(db *gorm.DB, taskID string, at time.Time) (int64, error)
	CountByStatus(db *gorm.DB) (map[models.ApplicationStatus]int64, error)
}

type applicationRepository struct{}

func NewApplicationRepository() ApplicationRepository {
	return &applicationRepository{}
}

func (r *applicationRepository) Create(db *gorm.DB, app *models.TaskApplication) error {
	if err := db.Create(app).Error; err != nil {
		if isDuplicate(err) {
			return ErrApplicationAlreadyExists
		}
		return err
	}
	return nil
}

func (r *applicationRepository) FindByID(db *gorm.DB, id string) (*models.TaskApplication, error) {
	var app models.TaskApplication
	if err := db.First(&app, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepository) FindByTaskAndWorker(db *gorm.DB, taskID, workerID string) (*models.TaskApplication, error) {
	var app models.TaskApplication
	if err := db.First(&app, "task_id = ? AND worker_id = ?", taskID, workerID).Error; err != nil {
		if isNotFound(err) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

// UpdateStatus записывает новый статус, только если в БД все еще статус from
func (r *applicationRepository) UpdateStatus(db *gorm.DB, app *models.TaskApplication, from models.ApplicationStatus) error {
	res := db.Model(&models.TaskApplication{}).
		Where("id = ? AND status = ?", app.ID, from).
		Updates(map[string]interface{}{
			"status":       app.Status,
			"responded_at": app.RespondedAt,
			"updated_at":   time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrApplicationConflict
	}
	return nil
}

func (r *applicationRepository) FindByTask(db *gorm.DB, taskID string, status models.ApplicationStatus) ([]models.TaskApplication, error) {
	query := db.Where("task_id = ?", taskID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var apps []models.TaskApplication
	err := query.Order("applied_at ASC").Find(&apps).Error
	return apps, err
}

func (r *applicationRepository) FindByWorker(db *gorm.DB, workerID string, status models.ApplicationStatus, p Pagination) ([]models.TaskApplication, int64, error) {
	query := db.Model(&models.TaskApplication{}).Where("worker_id = ?", workerID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var apps []models.TaskApplication
	err := query.Scopes(paginate(p)).Order("applied_at DESC").Find(&apps).Error
	return apps, total, err
}

// RejectPending отклоняет все оставшиеся PENDING отклики задачи
func (r *applicationRepository) RejectPending(db *gorm.DB, taskID string, at time.Time) (int64, error) {
	res := db.Model(&models.TaskApplication{}).
		Where("task_id = ? AND status = ?", taskID, models.ApplicationStatusPending).
		Updates(map[string]interface{}{
			"status":       models.ApplicationStatusRejected,
			"responded_at": at,
			"updated_at":   at,
		})
	return res.RowsAffected, res.Error
}

func (r *applicationRepository) CountByStatus(db *gorm.DB) (map[models.ApplicationStatus]int64, error) {
	var rows []struct {
		Status models.ApplicationStatus
		Count  int64
	}
	if err := db.Model(&models.TaskApplication{}).Select("status, COUNT(*) AS count").Group("status").Scan(&rows).Error; err != nil {
		return nil, err
	}

	result := make(map[models.ApplicationStatus]int64, len(rows))
	for _, row := range rows {
		result[row.Status] = row.Count
	}
	return result, nil
}
