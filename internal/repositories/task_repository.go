package repositories

import (
	"errors"
	"time"

	"workhub_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrTaskNotFound = errors.New("task not found")
	// ErrOptimisticLock - задача изменена другим запросом после чтения
	ErrOptimisticLock = errors.New("optimistic locking conflict")
)

type TaskRepository interface {
	Create(db *gorm.DB, task *models.Task) error
	FindByID(db *gorm.DB, id string) (*models.Task, error)
	Update(db *gorm.DB, task *models.Task) error
	FindWithFilter(db *gorm.DB, filter TaskFilter) ([]models.Task, int64, error)
	FindOpen(db *gorm.DB, limit int) ([]models.Task, error)
	CountByStatus(db *gorm.DB) (map[models.TaskStatus]int64, error)
}

// TaskFilter - фильтры списка задач; пустые поля игнорируются
type TaskFilter struct {
	Status           models.TaskStatus
	Category         models.TaskCategory
	City             string
	ClientID         string
	AssignedWorkerID string
	Pagination
}

type taskRepository struct{}

func NewTaskRepository() TaskRepository {
	return &taskRepository{}
}

func (r *taskRepository) Create(db *gorm.DB, task *models.Task) error {
	if task.Version == 0 {
		task.Version = 1
	}
	return db.Create(task).Error
}

func (r *taskRepository) FindByID(db *gorm.DB, id string) (*models.Task, error) {
	var task models.Task
	if err := db.First(&task, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

// Update сохраняет изменяемые поля задачи при совпадении версии и увеличивает ее.
// При конфликте возвращает ErrOptimisticLock и не меняет task.
func (r *taskRepository) Update(db *gorm.DB, task *models.Task) error {
	now := time.Now().UTC()
	res := db.Model(&models.Task{}).
		Where("id = ? AND version = ?", task.ID, task.Version).
		Updates(map[string]interface{}{
			"title":              task.Title,
			"description":        task.Description,
			"category":           task.Category,
			"budget":             task.Budget,
			"currency":           task.Currency,
			"location_address":   task.Location.Address,
			"location_city":      task.Location.City,
			"location_district":  task.Location.District,
			"deadline":           task.Deadline,
			"status":             task.Status,
			"assigned_worker_id": task.AssignedWorkerID,
			"required_skills":    task.RequiredSkills,
			"estimated_duration": task.EstimatedDuration,
			"delivery_status":    task.DeliveryStatus,
			"delivery_message":   task.DeliveryMessage,
			"delivered_at":       task.DeliveredAt,
			"time_extension":     task.TimeExtension,
			"payment_status":     task.PaymentStatus,
			"paid_at":            task.PaidAt,
			"completed_at":       task.CompletedAt,
			"cancelled_at":       task.CancelledAt,
			"version":            task.Version + 1,
			"updated_at":         now,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrOptimisticLock
	}

	task.Version++
	task.UpdatedAt = now
	return nil
}

func (r *taskRepository) FindWithFilter(db *gorm.DB, filter TaskFilter) ([]models.Task, int64, error) {
	query := db.Model(&models.Task{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.City != "" {
		query = query.Where("location_city = ?", filter.City)
	}
	if filter.ClientID != "" {
		query = query.Where("client_id = ?", filter.ClientID)
	}
	if filter.AssignedWorkerID != "" {
		query = query.Where("assigned_worker_id = ?", filter.AssignedWorkerID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tasks []models.Task
	err := query.Scopes(paginate(filter.Pagination)).Order("created_at DESC").Find(&tasks).Error
	return tasks, total, err
}

func (r *taskRepository) FindOpen(db *gorm.DB, limit int) ([]models.Task, error) {
	if limit <= 0 {
		return nil, errors.New("limit must be positive")
	}
	var tasks []models.Task
	err := db.Where("status = ?", models.TaskStatusOpen).
		Order("created_at DESC").Limit(limit).Find(&tasks).Error
	return tasks, err
}

func (r *taskRepository) CountByStatus(db *gorm.DB) (map[models.TaskStatus]int64, error) {
	var rows []struct {
		Status models.TaskStatus
		Count  int64
	}
	if err := db.Model(&models.Task{}).Select("status, COUNT(*) AS count").Group("status").Scan(&rows).Error; err != nil {
		return nil, err
	}

	result := make(map[models.TaskStatus]int64, len(rows))
	for _, row := range rows {
		result[row.Status] = row.Count
	}
	return result, nil
}
