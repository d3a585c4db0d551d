package services

import (
	"strings"
	"time"

	"workhub_backend/internal/auth"
	"workhub_backend/internal/email"
	"workhub_backend/internal/lifecycle"
	"workhub_backend/internal/logger"
	"workhub_backend/internal/models"
	"workhub_backend/internal/repositories"
	"workhub_backend/internal/services/dto"
	"workhub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const defaultCurrency = "USD"

type TaskService interface {
	CreateTask(db *gorm.DB, actor Actor, req *dto.CreateTaskRequest) (*dto.TaskResponse, error)
	UpdateTask(db *gorm.DB, actor Actor, taskID string, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error)
	GetTask(db *gorm.DB, taskID string) (*dto.TaskResponse, error)
	ListTasks(db *gorm.DB, query *dto.TaskListQuery) (*dto.PaginatedResponse, error)
	ListMyTasks(db *gorm.DB, actor Actor, query *dto.TaskListQuery) (*dto.PaginatedResponse, error)

	Deliver(db *gorm.DB, actor Actor, taskID string, req *dto.DeliverRequest) (*dto.TaskResponse, error)
	MarkReceived(db *gorm.DB, actor Actor, taskID string) (*dto.TaskResponse, error)
	Pay(db *gorm.DB, actor Actor, taskID string) (*dto.TaskResponse, error)
	Cancel(db *gorm.DB, actor Actor, taskID string) (*dto.TaskResponse, error)

	RequestExtension(db *gorm.DB, actor Actor, taskID string, req *dto.ExtensionRequest) (*dto.TaskResponse, error)
	RespondExtension(db *gorm.DB, actor Actor, taskID string, req *dto.ExtensionDecisionRequest) (*dto.TaskResponse, error)
}

type TaskServiceImpl struct {
	taskRepo      repositories.TaskRepository
	profileRepo   repositories.ProfileRepository
	notifications NotificationService
	now           Clock
}

func NewTaskService(
	taskRepo repositories.TaskRepository,
	profileRepo repositories.ProfileRepository,
	notifications NotificationService,
) *TaskServiceImpl {
	return &TaskServiceImpl{
		taskRepo:      taskRepo,
		profileRepo:   profileRepo,
		notifications: notifications,
		now:           systemClock,
	}
}

// taskMutation - один переход задачи внутри транзакции
type taskMutation struct {
	entity    string
	state     func(t *models.Task) string
	authorize func(t *models.Task) error
	apply     func(t *models.Task, now time.Time) error
	// inTx - дополнительные записи в той же транзакции (после сохранения задачи)
	inTx func(tx *gorm.DB, t *models.Task) error
}

func taskStatus(t *models.Task) string     { return string(t.Status) }
func deliveryStatus(t *models.Task) string { return string(t.DeliveryStatus) }

func extensionStatus(t *models.Task) string {
	if ext, ok := t.Extension(); ok {
		return string(ext.Status)
	}
	return "NONE"
}

// mutate: чтение -> проверка прав -> переход -> запись с проверкой версии
func (s *TaskServiceImpl) mutate(db *gorm.DB, actor Actor, taskID string, m taskMutation) (*models.Task, error) {
	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	task, err := s.taskRepo.FindByID(tx, taskID)
	if err != nil {
		return nil, handleTaskError(err)
	}
	if err := m.authorize(task); err != nil {
		return nil, err
	}

	from := m.state(task)
	if err := m.apply(task, s.now()); err != nil {
		return nil, lifecycleError(m.entity, err)
	}
	if err := s.taskRepo.Update(tx, task); err != nil {
		return nil, handleTaskError(err)
	}
	if m.inTx != nil {
		if err := m.inTx(tx, task); err != nil {
			return nil, err
		}
	}
	if err := commit(tx); err != nil {
		return nil, err
	}

	logger.TransitionLog(m.entity, task.ID, from, m.state(task), actor.ID)
	return task, nil
}

func (s *TaskServiceImpl) ownerOnly(actor Actor) func(t *models.Task) error {
	return func(t *models.Task) error {
		if !auth.HasPermission(actor.Role, auth.PermTaskManageOwn) || t.ClientID != actor.ID {
			return apperrors.ErrTaskNotOwner
		}
		return nil
	}
}

func (s *TaskServiceImpl) assigneeOnly(actor Actor) func(t *models.Task) error {
	return func(t *models.Task) error {
		if !auth.HasPermission(actor.Role, auth.PermTaskDeliver) || !t.IsAssignedTo(actor.ID) {
			return apperrors.ErrTaskNotAssignee
		}
		return nil
	}
}

// ---------------- Create / Update ----------------

func (s *TaskServiceImpl) CreateTask(db *gorm.DB, actor Actor, req *dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	if !auth.HasPermission(actor.Role, auth.PermTaskCreate) {
		return nil, apperrors.NewForbiddenError("Only clients can create tasks")
	}

	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = defaultCurrency
	}
	task := &models.Task{
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Category:    req.Category,
		Budget:      req.Budget,
		Currency:    currency,
		Location: models.Location{
			Address:  strings.TrimSpace(req.Location.Address),
			City:     strings.TrimSpace(req.Location.City),
			District: strings.TrimSpace(req.Location.District),
		},
		Deadline:          utcPtr(req.Deadline),
		ClientID:          actor.ID,
		EstimatedDuration: strings.TrimSpace(req.EstimatedDuration),
	}
	task.SetRequiredSkills(normalizeSkills(req.RequiredSkills))

	if err := lifecycle.ValidateNewTask(task, s.now()); err != nil {
		return nil, lifecycleError("task", err)
	}
	lifecycle.InitTask(task)

	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	if err := s.taskRepo.Create(tx, task); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if err := s.profileRepo.IncrementTasksPosted(tx, actor.ID); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if err := commit(tx); err != nil {
		return nil, err
	}

	logger.CtxInfo(ctxOf(db), "task created", "task_id", task.ID, "client_id", actor.ID, "category", task.Category)
	return dto.NewTaskResponse(task), nil
}

func (s *TaskServiceImpl) UpdateTask(db *gorm.DB, actor Actor, taskID string, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	task, err := s.mutate(db, actor, taskID, taskMutation{
		entity:    "task",
		state:     taskStatus,
		authorize: s.ownerOnly(actor),
		apply: func(t *models.Task, now time.Time) error {
			if err := lifecycle.CanEdit(t); err != nil {
				return err
			}
			applyTaskPatch(t, req)
			return lifecycle.ValidateTaskEdit(t, now, req.Deadline != nil)
		},
	})
	if err != nil {
		return nil, err
	}
	return dto.NewTaskResponse(task), nil
}

func applyTaskPatch(t *models.Task, req *dto.UpdateTaskRequest) {
	if req.Title != nil {
		t.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		t.Description = strings.TrimSpace(*req.Description)
	}
	if req.Category != nil {
		t.Category = *req.Category
	}
	if req.Budget != nil {
		t.Budget = *req.Budget
	}
	if req.Location != nil {
		t.Location = models.Location{
			Address:  strings.TrimSpace(req.Location.Address),
			City:     strings.TrimSpace(req.Location.City),
			District: strings.TrimSpace(req.Location.District),
		}
	}
	if req.Deadline != nil {
		t.Deadline = utcPtr(req.Deadline)
	}
	if req.RequiredSkills != nil {
		t.SetRequiredSkills(normalizeSkills(req.RequiredSkills))
	}
	if req.EstimatedDuration != nil {
		t.EstimatedDuration = strings.TrimSpace(*req.EstimatedDuration)
	}
}

// ---------------- Reads ----------------

func (s *TaskServiceImpl) GetTask(db *gorm.DB, taskID string) (*dto.TaskResponse, error) {
	task, err := s.taskRepo.FindByID(db, taskID)
	if err != nil {
		return nil, handleTaskError(err)
	}
	return dto.NewTaskResponse(task), nil
}

// ListTasks - публичная лента; без фильтра статуса показываются только OPEN задачи
func (s *TaskServiceImpl) ListTasks(db *gorm.DB, query *dto.TaskListQuery) (*dto.PaginatedResponse, error) {
	filter := taskFilter(query)
	if filter.Status == "" {
		filter.Status = models.TaskStatusOpen
	}
	return s.list(db, filter)
}

// ListMyTasks - задачи клиента (созданные) или исполнителя (назначенные)
func (s *TaskServiceImpl) ListMyTasks(db *gorm.DB, actor Actor, query *dto.TaskListQuery) (*dto.PaginatedResponse, error) {
	filter := taskFilter(query)
	switch actor.Role {
	case models.UserRoleClient:
		filter.ClientID = actor.ID
	case models.UserRoleWorker:
		filter.AssignedWorkerID = actor.ID
	default:
		return nil, apperrors.NewForbiddenError("Only clients and workers have own tasks")
	}
	return s.list(db, filter)
}

func (s *TaskServiceImpl) list(db *gorm.DB, filter repositories.TaskFilter) (*dto.PaginatedResponse, error) {
	tasks, total, err := s.taskRepo.FindWithFilter(db, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewPaginatedResponse(dto.NewTaskResponses(tasks), total, filter.Page, filter.PageSize), nil
}

func taskFilter(query *dto.TaskListQuery) repositories.TaskFilter {
	if query == nil {
		query = &dto.TaskListQuery{}
	}
	return repositories.TaskFilter{
		Status:     query.Status,
		Category:   query.Category,
		City:       strings.TrimSpace(query.City),
		Pagination: pageOf(query.Page, query.PageSize),
	}
}

// ---------------- Delivery / payment ----------------

func (s *TaskServiceImpl) Deliver(db *gorm.DB, actor Actor, taskID string, req *dto.DeliverRequest) (*dto.TaskResponse, error) {
	task, err := s.mutate(db, actor, taskID, taskMutation{
		entity:    "delivery",
		state:     deliveryStatus,
		authorize: s.assigneeOnly(actor),
		apply: func(t *models.Task, now time.Time) error {
			return lifecycle.Deliver(t, strings.TrimSpace(req.Message), now)
		},
	})
	if err != nil {
		return nil, err
	}

	s.notifications.Notify(db, task.ClientID, email.TemplateTaskDelivered, "Task delivered",
		email.TemplateData{"TaskTitle": task.Title, "Message": task.DeliveryMessage})
	return dto.NewTaskResponse(task), nil
}

func (s *TaskServiceImpl) MarkReceived(db *gorm.DB, actor Actor, taskID string) (*dto.TaskResponse, error) {
	task, err := s.mutate(db, actor, taskID, taskMutation{
		entity:    "delivery",
		state:     deliveryStatus,
		authorize: s.ownerOnly(actor),
		apply: func(t *models.Task, _ time.Time) error {
			return lifecycle.MarkReceived(t)
		},
	})
	if err != nil {
		return nil, err
	}
	return dto.NewTaskResponse(task), nil
}

// Pay завершает задачу; счетчик completedTasks исполнителя растет в той же транзакции
func (s *TaskServiceImpl) Pay(db *gorm.DB, actor Actor, taskID string) (*dto.TaskResponse, error) {
	task, err := s.mutate(db, actor, taskID, taskMutation{
		entity:    "task",
		state:     taskStatus,
		authorize: s.ownerOnly(actor),
		apply:     lifecycle.Pay,
		inTx: func(tx *gorm.DB, t *models.Task) error {
			if err := s.profileRepo.IncrementCompletedTasks(tx, *t.AssignedWorkerID); err != nil {
				return handleProfileError(err)
			}
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	s.notifications.Notify(db, *task.AssignedWorkerID, email.TemplateTaskPaid, "Payment confirmed",
		email.TemplateData{"TaskTitle": task.Title})
	return dto.NewTaskResponse(task), nil
}

// Cancel доступен клиенту-владельцу и администратору
func (s *TaskServiceImpl) Cancel(db *gorm.DB, actor Actor, taskID string) (*dto.TaskResponse, error) {
	var assignee string
	task, err := s.mutate(db, actor, taskID, taskMutation{
		entity: "task",
		state:  taskStatus,
		authorize: func(t *models.Task) error {
			if auth.HasPermission(actor.Role, auth.PermTaskCancelAny) {
				return nil
			}
			return s.ownerOnly(actor)(t)
		},
		apply: func(t *models.Task, now time.Time) error {
			if t.AssignedWorkerID != nil {
				assignee = *t.AssignedWorkerID
			}
			return lifecycle.Cancel(t, now)
		},
	})
	if err != nil {
		return nil, err
	}

	if assignee != "" {
		s.notifications.Notify(db, assignee, email.TemplateTaskCancelled, "Task cancelled",
			email.TemplateData{"TaskTitle": task.Title})
	}
	if actor.IsAdmin() {
		s.notifications.Notify(db, task.ClientID, email.TemplateTaskCancelled, "Task cancelled",
			email.TemplateData{"TaskTitle": task.Title})
	}
	return dto.NewTaskResponse(task), nil
}

// ---------------- Extension ----------------

func (s *TaskServiceImpl) RequestExtension(db *gorm.DB, actor Actor, taskID string, req *dto.ExtensionRequest) (*dto.TaskResponse, error) {
	task, err := s.mutate(db, actor, taskID, taskMutation{
		entity:    "extension",
		state:     extensionStatus,
		authorize: s.assigneeOnly(actor),
		apply: func(t *models.Task, now time.Time) error {
			return lifecycle.RequestExtension(t, actor.ID, req.Message, utcPtr(req.NewDeadline), now)
		},
	})
	if err != nil {
		return nil, err
	}

	s.notifications.Notify(db, task.ClientID, email.TemplateExtensionRequested, "Extension requested",
		email.TemplateData{"TaskTitle": task.Title, "Message": req.Message})
	return dto.NewTaskResponse(task), nil
}

func (s *TaskServiceImpl) RespondExtension(db *gorm.DB, actor Actor, taskID string, req *dto.ExtensionDecisionRequest) (*dto.TaskResponse, error) {
	if req.Approved == nil {
		return nil, apperrors.NewValidationError("approved", "This field is required")
	}

	var decided models.TimeExtensionRequest
	task, err := s.mutate(db, actor, taskID, taskMutation{
		entity:    "extension",
		state:     extensionStatus,
		authorize: s.ownerOnly(actor),
		apply: func(t *models.Task, now time.Time) error {
			ext, err := lifecycle.RespondExtension(t, *req.Approved, req.ResponseMessage, now)
			decided = ext
			return err
		},
	})
	if err != nil {
		return nil, err
	}

	s.notifications.Notify(db, decided.RequestedBy, email.TemplateExtensionAnswered, "Extension request answered",
		email.TemplateData{
			"TaskTitle": task.Title,
			"Decision":  strings.ToLower(string(decided.Status)),
			"Message":   decided.ResponseMessage,
		})
	return dto.NewTaskResponse(task), nil
}

// ---------------- helpers ----------------

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}

func normalizeSkills(skills []string) []string {
	seen := make(map[string]struct{}, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
