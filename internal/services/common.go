package services

import (
	"context"
	"errors"
	"time"

	"workhub_backend/internal/lifecycle"
	"workhub_backend/internal/models"
	"workhub_backend/internal/repositories"
	"workhub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// Actor - аутентифицированный пользователь, от имени которого выполняется операция
type Actor struct {
	ID   string
	Role models.UserRole
}

func (a Actor) IsAdmin() bool {
	return a.Role == models.UserRoleAdmin
}

// Clock - источник времени сервисов (подменяется в тестах)
type Clock func() time.Time

func systemClock() time.Time {
	return time.Now().UTC()
}

// ctxOf возвращает context запроса, привязанный к *gorm.DB через WithContext
func ctxOf(db *gorm.DB) context.Context {
	if db != nil && db.Statement != nil && db.Statement.Context != nil {
		return db.Statement.Context
	}
	return context.Background()
}

// lifecycleError переводит ошибки state machine в AppError
func lifecycleError(domain string, err error) error {
	var vErr *lifecycle.ValidationError
	if errors.As(err, &vErr) {
		return apperrors.ValidationError(vErr.Fields)
	}
	var tErr *lifecycle.TransitionError
	if errors.As(err, &tErr) {
		return apperrors.InvalidState(domain, tErr.Error())
	}
	return apperrors.InternalError(err)
}

func handleTaskError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrTaskNotFound):
		return apperrors.ErrTaskNotFound
	case errors.Is(err, repositories.ErrOptimisticLock):
		return apperrors.ErrTaskConcurrentUpdate.WithError(err)
	}
	return apperrors.InternalError(err)
}

func handleApplicationError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrApplicationNotFound):
		return apperrors.ErrApplicationNotFound
	case errors.Is(err, repositories.ErrApplicationAlreadyExists):
		return apperrors.ErrApplicationAlreadyExists
	case errors.Is(err, repositories.ErrApplicationConflict):
		return apperrors.ErrConflict(err, "application", "Application was modified concurrently, reload and retry")
	}
	return apperrors.InternalError(err)
}

func handleProfileError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrProfileNotFound):
		return apperrors.ErrProfileNotFound
	case errors.Is(err, repositories.ErrUserNotFound):
		return apperrors.ErrUserNotFound
	case errors.Is(err, repositories.ErrRatingConflict):
		return apperrors.ErrConflict(err, "review", "Worker rating was updated concurrently, retry")
	}
	return apperrors.InternalError(err)
}

func handleReviewError(err error) error {
	if errors.Is(err, repositories.ErrReviewAlreadyExists) {
		return apperrors.ErrReviewAlreadyExists
	}
	return apperrors.InternalError(err)
}

// commit фиксирует транзакцию
func commit(tx *gorm.DB) error {
	if err := tx.Commit().Error; err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func pageOf(page, pageSize int) repositories.Pagination {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return repositories.Pagination{Page: page, PageSize: pageSize}
}
