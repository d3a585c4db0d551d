package repositories

import (
	"errors"

	"workhub_backend/internal/models"

	"gorm.io/gorm"
)

var ErrAttachmentNotFound = errors.New("attachment not found")

type AttachmentRepository interface {
	Create(db *gorm.DB, attachment *models.TaskAttachment) error
	FindByID(db *gorm.DB, id string) (*models.TaskAttachment, error)
	FindByTask(db *gorm.DB, taskID string) ([]models.TaskAttachment, error)
	CountByTask(db *gorm.DB, taskID string) (int64, error)
	Delete(db *gorm.DB, id string) error
}

type attachmentRepository struct{}

func NewAttachmentRepository() AttachmentRepository {
	return &attachmentRepository{}
}

func (r *attachmentRepository) Create(db *gorm.DB, attachment *models.TaskAttachment) error {
	return db.Create(attachment).Error
}

func (r *attachmentRepository) FindByID(db *gorm.DB, id string) (*models.TaskAttachment, error) {
	var attachment models.TaskAttachment
	if err := db.First(&attachment, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			return nil, ErrAttachmentNotFound
		}
		return nil, err
	}
	return &attachment, nil
}

func (r *attachmentRepository) FindByTask(db *gorm.DB, taskID string) ([]models.TaskAttachment, error) {
	var attachments []models.TaskAttachment
	err := db.Where("task_id = ?", taskID).Order("created_at ASC").Find(&attachments).Error
	return attachments, err
}

func (r *attachmentRepository) CountByTask(db *gorm.DB, taskID string) (int64, error) {
	var count int64
	err := db.Model(&models.TaskAttachment{}).Where("task_id = ?", taskID).Count(&count).Error
	return count, err
}

func (r *attachmentRepository) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.TaskAttachment{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAttachmentNotFound
	}
	return nil
}
