package lifecycle

import (
	"fmt"

	"workhub_backend/internal/models"
)

// CanAttach - фото результата можно добавлять только пока задача IN_PROGRESS и не сдана
func CanAttach(t *models.Task, count int64, limit int) error {
	if t.Status != models.TaskStatusInProgress {
		return invalid("attachment", t.Status, models.TaskStatusInProgress, "task must be IN_PROGRESS")
	}
	if t.DeliveryStatus != models.DeliveryStatusNotDelivered {
		return invalid("attachment", t.DeliveryStatus, models.DeliveryStatusNotDelivered, "task has already been delivered")
	}
	if limit > 0 && count >= int64(limit) {
		return &ValidationError{Fields: map[string]string{"file": fmt.Sprintf("Task can have at most %d attachments", limit)}}
	}
	return nil
}

// CanDetach - удалить фото можно до сдачи задачи
func CanDetach(t *models.Task) error {
	if t.Status != models.TaskStatusInProgress || t.DeliveryStatus != models.DeliveryStatusNotDelivered {
		return invalid("attachment", t.DeliveryStatus, models.DeliveryStatusNotDelivered, "attachments are frozen after delivery")
	}
	return nil
}
