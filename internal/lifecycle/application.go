package lifecycle

import (
	"strings"
	"time"

	"workhub_backend/internal/models"

	"github.com/shopspring/decimal"
)

const (
	MinCoverLetterLength = 20
	MaxCoverLetterLength = 1000
)

// CanApply - откликаться можно только на OPEN задачу
func CanApply(t *models.Task) error {
	if t.Status != models.TaskStatusOpen {
		return invalid("application", t.Status, models.ApplicationStatusPending, "task is not open for applications")
	}
	return nil
}

// ValidateApplication проверяет сопроводительное письмо и предложенный бюджет
func ValidateApplication(coverLetter string, proposedBudget decimal.NullDecimal) error {
	errs := fieldErrors{}

	n := len([]rune(strings.TrimSpace(coverLetter)))
	if n < MinCoverLetterLength {
		errs.add("coverLetter", "must be at least 20 characters long")
	} else if n > MaxCoverLetterLength {
		errs.add("coverLetter", "must be at most 1000 characters long")
	}
	if proposedBudget.Valid && proposedBudget.Decimal.IsNegative() {
		errs.add("proposedBudget", "must be greater than or equal to 0")
	}

	return errs.err()
}

// InitApplication выставляет начальное состояние отклика
func InitApplication(a *models.TaskApplication, now time.Time) {
	a.Status = models.ApplicationStatusPending
	a.AppliedAt = now
	a.RespondedAt = nil
}

// Accept: PENDING -> ACCEPTED и назначение исполнителя (OPEN -> IN_PROGRESS).
// Обе сущности меняются только если оба перехода допустимы.
func Accept(a *models.TaskApplication, t *models.Task, now time.Time) error {
	if a.TaskID != t.ID {
		return &ValidationError{Fields: map[string]string{"taskId": "application does not belong to this task"}}
	}
	if !isAllowedApplicationTransition(a.Status, models.ApplicationStatusAccepted) {
		return invalid("application", a.Status, models.ApplicationStatusAccepted, "application is not pending")
	}
	if t.Status != models.TaskStatusOpen {
		return invalid("application", a.Status, models.ApplicationStatusAccepted, "task is not OPEN")
	}

	if err := AssignWorker(t, a.WorkerID); err != nil {
		return err
	}
	responded := now
	a.Status = models.ApplicationStatusAccepted
	a.RespondedAt = &responded
	return nil
}

// Reject: PENDING -> REJECTED
func Reject(a *models.TaskApplication, now time.Time) error {
	if !isAllowedApplicationTransition(a.Status, models.ApplicationStatusRejected) {
		return invalid("application", a.Status, models.ApplicationStatusRejected, "application is not pending")
	}
	responded := now
	a.Status = models.ApplicationStatusRejected
	a.RespondedAt = &responded
	return nil
}

// Withdraw: PENDING -> WITHDRAWN
func Withdraw(a *models.TaskApplication, now time.Time) error {
	if !isAllowedApplicationTransition(a.Status, models.ApplicationStatusWithdrawn) {
		return invalid("application", a.Status, models.ApplicationStatusWithdrawn, "application is not pending")
	}
	responded := now
	a.Status = models.ApplicationStatusWithdrawn
	a.RespondedAt = &responded
	return nil
}

func isAllowedApplicationTransition(from, to models.ApplicationStatus) bool {
	if from != models.ApplicationStatusPending {
		return false
	}
	switch to {
	case models.ApplicationStatusAccepted, models.ApplicationStatusRejected, models.ApplicationStatusWithdrawn:
		return true
	}
	return false
}
