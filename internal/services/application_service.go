package services

import (
	"strings"

	"workhub_backend/internal/auth"
	"workhub_backend/internal/email"
	"workhub_backend/internal/lifecycle"
	"workhub_backend/internal/logger"
	"workhub_backend/internal/models"
	"workhub_backend/internal/repositories"
	"workhub_backend/internal/services/dto"
	"workhub_backend/pkg/apperrors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ApplicationService interface {
	Apply(db *gorm.DB, actor Actor, taskID string, req *dto.ApplyRequest) (*dto.ApplicationResponse, error)
	Get(db *gorm.DB, actor Actor, applicationID string) (*dto.ApplicationResponse, error)
	ListForTask(db *gorm.DB, actor Actor, taskID string, status models.ApplicationStatus) ([]*dto.ApplicationResponse, error)
	ListMine(db *gorm.DB, actor Actor, query *dto.ApplicationListQuery) (*dto.PaginatedResponse, error)

	Accept(db *gorm.DB, actor Actor, applicationID string) (*dto.AcceptResponse, error)
	Reject(db *gorm.DB, actor Actor, applicationID string) (*dto.ApplicationResponse, error)
	Withdraw(db *gorm.DB, actor Actor, applicationID string) (*dto.ApplicationResponse, error)
	RejectRemaining(db *gorm.DB, actor Actor, taskID string) (*dto.RejectRemainingResponse, error)
}

type ApplicationServiceImpl struct {
	appRepo       repositories.ApplicationRepository
	taskRepo      repositories.TaskRepository
	notifications NotificationService
	now           Clock
}

func NewApplicationService(
	appRepo repositories.ApplicationRepository,
	taskRepo repositories.TaskRepository,
	notifications NotificationService,
) *ApplicationServiceImpl {
	return &ApplicationServiceImpl{
		appRepo:       appRepo,
		taskRepo:      taskRepo,
		notifications: notifications,
		now:           systemClock,
	}
}

func (s *ApplicationServiceImpl) Apply(db *gorm.DB, actor Actor, taskID string, req *dto.ApplyRequest) (*dto.ApplicationResponse, error) {
	if !auth.HasPermission(actor.Role, auth.PermApplicationCreate) {
		return nil, apperrors.NewForbiddenError("Only workers can apply to tasks")
	}

	var budget decimal.NullDecimal
	if req.ProposedBudget != nil {
		budget = decimal.NewNullDecimal(*req.ProposedBudget)
	}
	coverLetter := strings.TrimSpace(req.CoverLetter)
	if err := lifecycle.ValidateApplication(coverLetter, budget); err != nil {
		return nil, lifecycleError("application", err)
	}

	task, err := s.taskRepo.FindByID(db, taskID)
	if err != nil {
		return nil, handleTaskError(err)
	}
	if err := lifecycle.CanApply(task); err != nil {
		return nil, lifecycleError("application", err)
	}

	if _, err := s.appRepo.FindByTaskAndWorker(db, taskID, actor.ID); err == nil {
		return nil, apperrors.ErrApplicationAlreadyExists
	} else if !apperrors.Is(err, repositories.ErrApplicationNotFound) {
		return nil, apperrors.InternalError(err)
	}

	app := &models.TaskApplication{
		TaskID:         taskID,
		WorkerID:       actor.ID,
		CoverLetter:    coverLetter,
		ProposedBudget: budget,
		EstimatedTime:  req.EstimatedTime,
	}
	lifecycle.InitApplication(app, s.now())

	// уникальный индекс (task_id, worker_id) ловит гонку двух одновременных откликов
	if err := s.appRepo.Create(db, app); err != nil {
		return nil, handleApplicationError(err)
	}

	logger.CtxInfo(ctxOf(db), "application created", "application_id", app.ID, "task_id", taskID, "worker_id", actor.ID)
	return dto.NewApplicationResponse(app), nil
}

// Get доступен откликнувшемуся исполнителю, владельцу задачи и администратору
func (s *ApplicationServiceImpl) Get(db *gorm.DB, actor Actor, applicationID string) (*dto.ApplicationResponse, error) {
	app, err := s.appRepo.FindByID(db, applicationID)
	if err != nil {
		return nil, handleApplicationError(err)
	}
	if app.WorkerID == actor.ID || auth.HasPermission(actor.Role, auth.PermApplicationsAny) {
		return dto.NewApplicationResponse(app), nil
	}

	task, err := s.taskRepo.FindByID(db, app.TaskID)
	if err != nil {
		return nil, handleTaskError(err)
	}
	if task.ClientID != actor.ID {
		return nil, apperrors.ErrInsufficientPermissions
	}
	return dto.NewApplicationResponse(app), nil
}

func (s *ApplicationServiceImpl) ListForTask(db *gorm.DB, actor Actor, taskID string, status models.ApplicationStatus) ([]*dto.ApplicationResponse, error) {
	task, err := s.taskRepo.FindByID(db, taskID)
	if err != nil {
		return nil, handleTaskError(err)
	}
	if task.ClientID != actor.ID && !auth.HasPermission(actor.Role, auth.PermApplicationsAny) {
		return nil, apperrors.ErrTaskNotOwner
	}

	apps, err := s.appRepo.FindByTask(db, taskID, status)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewApplicationResponses(apps), nil
}

func (s *ApplicationServiceImpl) ListMine(db *gorm.DB, actor Actor, query *dto.ApplicationListQuery) (*dto.PaginatedResponse, error) {
	if actor.Role != models.UserRoleWorker {
		return nil, apperrors.NewForbiddenError("Only workers have applications")
	}
	if query == nil {
		query = &dto.ApplicationListQuery{}
	}
	p := pageOf(query.Page, query.PageSize)

	apps, total, err := s.appRepo.FindByWorker(db, actor.ID, query.Status, p)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewPaginatedResponse(dto.NewApplicationResponses(apps), total, p.Page, p.PageSize), nil
}

// Accept назначает исполнителя. Отклик и задача меняются одной транзакцией:
// либо обе записи обновлены, либо ни одна. Остальные отклики не трогаются.
func (s *ApplicationServiceImpl) Accept(db *gorm.DB, actor Actor, applicationID string) (*dto.AcceptResponse, error) {
	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	app, task, err := s.loadForOwner(tx, actor, applicationID)
	if err != nil {
		return nil, err
	}

	from, taskFrom := app.Status, task.Status
	if err := lifecycle.Accept(app, task, s.now()); err != nil {
		return nil, lifecycleError("application", err)
	}
	if err := s.appRepo.UpdateStatus(tx, app, from); err != nil {
		return nil, handleApplicationError(err)
	}
	if err := s.taskRepo.Update(tx, task); err != nil {
		return nil, handleTaskError(err)
	}
	if err := commit(tx); err != nil {
		return nil, err
	}

	logger.TransitionLog("application", app.ID, string(from), string(app.Status), actor.ID)
	logger.TransitionLog("task", task.ID, string(taskFrom), string(task.Status), actor.ID)
	s.notifications.Notify(db, app.WorkerID, email.TemplateApplicationAccepted, "Your application was accepted",
		email.TemplateData{"TaskTitle": task.Title})

	return &dto.AcceptResponse{
		Application: dto.NewApplicationResponse(app),
		Task:        dto.NewTaskResponse(task),
	}, nil
}

func (s *ApplicationServiceImpl) Reject(db *gorm.DB, actor Actor, applicationID string) (*dto.ApplicationResponse, error) {
	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	app, task, err := s.loadForOwner(tx, actor, applicationID)
	if err != nil {
		return nil, err
	}

	from := app.Status
	if err := lifecycle.Reject(app, s.now()); err != nil {
		return nil, lifecycleError("application", err)
	}
	if err := s.appRepo.UpdateStatus(tx, app, from); err != nil {
		return nil, handleApplicationError(err)
	}
	if err := commit(tx); err != nil {
		return nil, err
	}

	logger.TransitionLog("application", app.ID, string(from), string(app.Status), actor.ID)
	s.notifications.Notify(db, app.WorkerID, email.TemplateApplicationRejected, "Your application was declined",
		email.TemplateData{"TaskTitle": task.Title})
	return dto.NewApplicationResponse(app), nil
}

func (s *ApplicationServiceImpl) Withdraw(db *gorm.DB, actor Actor, applicationID string) (*dto.ApplicationResponse, error) {
	app, err := s.appRepo.FindByID(db, applicationID)
	if err != nil {
		return nil, handleApplicationError(err)
	}
	if app.WorkerID != actor.ID {
		return nil, apperrors.ErrApplicationNotOwner
	}

	from := app.Status
	if err := lifecycle.Withdraw(app, s.now()); err != nil {
		return nil, lifecycleError("application", err)
	}
	if err := s.appRepo.UpdateStatus(db, app, from); err != nil {
		return nil, handleApplicationError(err)
	}

	logger.TransitionLog("application", app.ID, string(from), string(app.Status), actor.ID)
	return dto.NewApplicationResponse(app), nil
}

// RejectRemaining отклоняет все PENDING отклики задачи, которая уже не OPEN
func (s *ApplicationServiceImpl) RejectRemaining(db *gorm.DB, actor Actor, taskID string) (*dto.RejectRemainingResponse, error) {
	task, err := s.taskRepo.FindByID(db, taskID)
	if err != nil {
		return nil, handleTaskError(err)
	}
	if task.ClientID != actor.ID && !actor.IsAdmin() {
		return nil, apperrors.ErrTaskNotOwner
	}
	if task.Status == models.TaskStatusOpen {
		return nil, apperrors.InvalidState("application", "task is still open; accept or cancel it first")
	}

	rejected, err := s.appRepo.RejectPending(db, taskID, s.now())
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctxOf(db), "pending applications rejected", "task_id", taskID, "count", rejected, "actor_id", actor.ID)
	return &dto.RejectRemainingResponse{Rejected: rejected}, nil
}

// loadForOwner загружает отклик и его задачу, проверяя что actor - владелец задачи
func (s *ApplicationServiceImpl) loadForOwner(tx *gorm.DB, actor Actor, applicationID string) (*models.TaskApplication, *models.Task, error) {
	app, err := s.appRepo.FindByID(tx, applicationID)
	if err != nil {
		return nil, nil, handleApplicationError(err)
	}
	task, err := s.taskRepo.FindByID(tx, app.TaskID)
	if err != nil {
		return nil, nil, handleTaskError(err)
	}
	if !auth.HasPermission(actor.Role, auth.PermTaskManageOwn) || task.ClientID != actor.ID {
		return nil, nil, apperrors.ErrTaskNotOwner
	}
	return app, task, nil
}
