package lifecycle

import (
	"strings"
	"time"

	"workhub_backend/internal/models"
)

const (
	MinTitleLength       = 5
	MinDescriptionLength = 20
	MaxExtensionMessage  = 1000
	MaxDeliveryMessage   = 5000
)

// ValidateNewTask проверяет поля задачи перед созданием
func ValidateNewTask(t *models.Task, now time.Time) error {
	errs := taskFieldErrors(t)
	checkDeadline(errs, t, now)
	return errs.err()
}

// ValidateTaskEdit проверяет задачу после правки. Срок проверяется, только если он меняется:
// истекший срок открытой задачи не мешает править остальные поля.
func ValidateTaskEdit(t *models.Task, now time.Time, deadlineChanged bool) error {
	errs := taskFieldErrors(t)
	if deadlineChanged {
		checkDeadline(errs, t, now)
	}
	return errs.err()
}

func taskFieldErrors(t *models.Task) fieldErrors {
	errs := fieldErrors{}

	if len([]rune(strings.TrimSpace(t.Title))) < MinTitleLength {
		errs.add("title", "must be at least 5 characters long")
	}
	if len([]rune(strings.TrimSpace(t.Description))) < MinDescriptionLength {
		errs.add("description", "must be at least 20 characters long")
	}
	if t.Budget.IsNegative() {
		errs.add("budget", "must be greater than or equal to 0")
	}
	if !t.Category.IsValid() {
		errs.add("category", "unknown category")
	}
	if len(t.Currency) != 3 {
		errs.add("currency", "must be a 3-letter ISO code")
	}
	if strings.TrimSpace(t.Location.Address) == "" {
		errs.add("location.address", "This field is required")
	}
	if strings.TrimSpace(t.Location.City) == "" {
		errs.add("location.city", "This field is required")
	}
	if strings.TrimSpace(t.Location.District) == "" {
		errs.add("location.district", "This field is required")
	}
	return errs
}

func checkDeadline(errs fieldErrors, t *models.Task, now time.Time) {
	if t.Deadline != nil && !t.Deadline.After(now) {
		errs.add("deadline", "must be in the future")
	}
}

// InitTask выставляет начальное состояние новой задачи
func InitTask(t *models.Task) {
	t.Status = models.TaskStatusOpen
	t.AssignedWorkerID = nil
	t.DeliveryStatus = models.DeliveryStatusNotDelivered
	t.DeliveryMessage = ""
	t.DeliveredAt = nil
	t.TimeExtension = nil
	t.PaymentStatus = models.PaymentStatusNotPaid
	t.PaidAt = nil
	t.CompletedAt = nil
	t.CancelledAt = nil
	if t.Version == 0 {
		t.Version = 1
	}
}

// CanEdit - редактировать содержимое задачи можно только пока она OPEN
func CanEdit(t *models.Task) error {
	if t.Status != models.TaskStatusOpen {
		return invalid("task", t.Status, models.TaskStatusOpen, "task can only be edited while OPEN")
	}
	return nil
}

// AssignWorker: OPEN -> IN_PROGRESS
func AssignWorker(t *models.Task, workerID string) error {
	if !isAllowedTaskTransition(t.Status, models.TaskStatusInProgress) {
		return invalid("task", t.Status, models.TaskStatusInProgress, "worker can only be assigned to an OPEN task")
	}
	if workerID == "" {
		return &ValidationError{Fields: map[string]string{"workerId": "This field is required"}}
	}
	id := workerID
	t.AssignedWorkerID = &id
	t.Status = models.TaskStatusInProgress
	return nil
}

// Deliver: NOT_DELIVERED -> DELIVERED, только для IN_PROGRESS
func Deliver(t *models.Task, message string, now time.Time) error {
	if t.Status != models.TaskStatusInProgress {
		return invalid("delivery", t.Status, models.DeliveryStatusDelivered, "task must be IN_PROGRESS")
	}
	if t.DeliveryStatus != models.DeliveryStatusNotDelivered {
		return invalid("delivery", t.DeliveryStatus, models.DeliveryStatusDelivered, "task has already been delivered")
	}
	if len(message) > MaxDeliveryMessage {
		return &ValidationError{Fields: map[string]string{"message": "Must be at most 5000 characters"}}
	}

	delivered := now
	t.DeliveryStatus = models.DeliveryStatusDelivered
	t.DeliveryMessage = message
	t.DeliveredAt = &delivered
	return nil
}

// MarkReceived: DELIVERED -> RECEIVED.
// Задача должна оставаться IN_PROGRESS: отмененную задачу принять нельзя.
func MarkReceived(t *models.Task) error {
	if t.Status != models.TaskStatusInProgress {
		return invalid("delivery", t.DeliveryStatus, models.DeliveryStatusReceived, "task must be IN_PROGRESS")
	}
	if t.DeliveryStatus != models.DeliveryStatusDelivered {
		return invalid("delivery", t.DeliveryStatus, models.DeliveryStatusReceived, "task has not been delivered")
	}
	t.DeliveryStatus = models.DeliveryStatusReceived
	return nil
}

// Pay: NOT_PAID -> PAID и IN_PROGRESS -> COMPLETED
func Pay(t *models.Task, now time.Time) error {
	if t.Status != models.TaskStatusInProgress {
		return invalid("payment", t.Status, models.TaskStatusCompleted, "task must be IN_PROGRESS")
	}
	if t.DeliveryStatus != models.DeliveryStatusReceived {
		return invalid("payment", t.PaymentStatus, models.PaymentStatusPaid, "delivery has not been received")
	}
	if t.PaymentStatus != models.PaymentStatusNotPaid {
		return invalid("payment", t.PaymentStatus, models.PaymentStatusPaid, "task has already been paid")
	}

	paid := now
	t.PaymentStatus = models.PaymentStatusPaid
	t.PaidAt = &paid
	t.Status = models.TaskStatusCompleted
	t.CompletedAt = &paid
	return nil
}

// Cancel: OPEN|IN_PROGRESS -> CANCELLED.
// assignedWorkerId снимается: он задан только для IN_PROGRESS и COMPLETED.
func Cancel(t *models.Task, now time.Time) error {
	if !isAllowedTaskTransition(t.Status, models.TaskStatusCancelled) {
		return invalid("task", t.Status, models.TaskStatusCancelled, "only OPEN or IN_PROGRESS tasks can be cancelled")
	}

	cancelled := now
	t.Status = models.TaskStatusCancelled
	t.AssignedWorkerID = nil
	t.CancelledAt = &cancelled
	return nil
}

// RequestExtension создает PENDING запрос на продление.
// Предыдущий APPROVED/REJECTED запрос заменяется.
func RequestExtension(t *models.Task, requesterID, message string, newDeadline *time.Time, now time.Time) error {
	if t.Status != models.TaskStatusInProgress {
		return invalid("extension", t.Status, models.ExtensionStatusPending, "task must be IN_PROGRESS")
	}
	if t.HasPendingExtension() {
		return invalid("extension", models.ExtensionStatusPending, models.ExtensionStatusPending, "an extension request is already pending")
	}

	errs := fieldErrors{}
	message = strings.TrimSpace(message)
	if message == "" {
		errs.add("message", "This field is required")
	} else if len([]rune(message)) > MaxExtensionMessage {
		errs.add("message", "Must be at most 1000 characters")
	}
	if newDeadline != nil {
		if !newDeadline.After(now) {
			errs.add("newDeadline", "must be in the future")
		} else if t.Deadline != nil && !newDeadline.After(*t.Deadline) {
			errs.add("newDeadline", "must be later than the current deadline")
		}
	}
	if err := errs.err(); err != nil {
		return err
	}

	t.SetExtension(models.TimeExtensionRequest{
		RequestedBy: requesterID,
		RequestedAt: now,
		Message:     message,
		NewDeadline: newDeadline,
		Status:      models.ExtensionStatusPending,
	})
	return nil
}

// RespondExtension: PENDING -> APPROVED|REJECTED. При одобрении с новым сроком дедлайн переносится.
func RespondExtension(t *models.Task, approved bool, responseMessage string, now time.Time) (models.TimeExtensionRequest, error) {
	req, ok := t.Extension()
	target := models.ExtensionStatusRejected
	if approved {
		target = models.ExtensionStatusApproved
	}
	if !ok {
		return req, invalid("extension", "NONE", target, "no extension request exists")
	}
	if req.Status != models.ExtensionStatusPending {
		return req, invalid("extension", req.Status, target, "extension request is not pending")
	}
	if len([]rune(responseMessage)) > MaxExtensionMessage {
		return req, &ValidationError{Fields: map[string]string{"responseMessage": "Must be at most 1000 characters"}}
	}

	responded := now
	req.Status = target
	req.RespondedAt = &responded
	req.ResponseMessage = strings.TrimSpace(responseMessage)
	t.SetExtension(req)

	if approved && req.NewDeadline != nil {
		deadline := *req.NewDeadline
		t.Deadline = &deadline
	}
	return req, nil
}

func isAllowedTaskTransition(from, to models.TaskStatus) bool {
	switch from {
	case models.TaskStatusOpen:
		return to == models.TaskStatusInProgress || to == models.TaskStatusCancelled
	case models.TaskStatusInProgress:
		return to == models.TaskStatusCompleted || to == models.TaskStatusCancelled
	default:
		return false
	}
}
