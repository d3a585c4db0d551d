package services

import (
	"testing"
	"time"

	"workhub_backend/internal/auth"
	"workhub_backend/internal/email"
	"workhub_backend/internal/models"
	"workhub_backend/internal/services/dto"
	"workhub_backend/internal/storage"
	"workhub_backend/internal/tokens"
	"workhub_backend/pkg/apperrors"
	"workhub_backend/test/helpers"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db    *gorm.DB
	repos *Repositories
	mail  *email.MemoryProvider
	files *storage.LocalStorage
	svc   *ServiceContainer

	client *models.User
	worker *models.User
	admin  *models.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := helpers.NewTestDB(t)
	repos := NewRepositories()
	mail := &email.MemoryProvider{}
	files, err := storage.NewLocalStorage(storage.Config{BasePath: t.TempDir()})
	require.NoError(t, err)

	svc := NewServiceContainer(repos, Dependencies{
		JWT:              auth.NewJWTManager("test-secret-test-secret-test-secret", time.Hour),
		RevokedTokens:    tokens.NewSQLStore(db, repos.RevokedTokens),
		EmailProvider:    mail,
		Storage:          files,
		AttachmentLimits: AttachmentLimits{MaxBytes: 1 << 20, MaxPerTask: 2},
	})
	t.Cleanup(svc.NotificationService.Wait)

	return &fixture{
		db:     db,
		repos:  repos,
		mail:   mail,
		files:  files,
		svc:    svc,
		client: helpers.CreateUser(t, db, models.UserRoleClient),
		worker: helpers.CreateUser(t, db, models.UserRoleWorker),
		admin:  helpers.CreateUser(t, db, models.UserRoleAdmin),
	}
}

func actorOf(u *models.User) Actor {
	return Actor{ID: u.ID, Role: u.Role}
}

func newTaskRequest() *dto.CreateTaskRequest {
	return &dto.CreateTaskRequest{
		Title:          "Fix the kitchen sink",
		Description:    "The kitchen sink is leaking under the cabinet, needs a new gasket.",
		Category:       models.CategoryRepair,
		Budget:         decimal.NewFromInt(100),
		Location:       dto.LocationDTO{Address: "1 Abay Ave", City: "Almaty", District: "Medeu"},
		RequiredSkills: []string{"Plumbing"},
	}
}

func (f *fixture) createTask(t *testing.T) *dto.TaskResponse {
	t.Helper()
	task, err := f.svc.TaskService.CreateTask(f.db, actorOf(f.client), newTaskRequest())
	require.NoError(t, err)
	return task
}

func (f *fixture) apply(t *testing.T, taskID string, worker *models.User) *dto.ApplicationResponse {
	t.Helper()
	app, err := f.svc.ApplicationService.Apply(f.db, actorOf(worker), taskID, &dto.ApplyRequest{
		CoverLetter: "I have ten years of plumbing experience and my own tools.",
	})
	require.NoError(t, err)
	return app
}

// assignedTask - задача в IN_PROGRESS с назначенным f.worker
func (f *fixture) assignedTask(t *testing.T) *dto.TaskResponse {
	t.Helper()
	task := f.createTask(t)
	app := f.apply(t, task.ID, f.worker)
	accepted, err := f.svc.ApplicationService.Accept(f.db, actorOf(f.client), app.ID)
	require.NoError(t, err)
	return accepted.Task
}

// completedTask проводит задачу через сдачу, приемку и оплату
func (f *fixture) completedTask(t *testing.T) *dto.TaskResponse {
	t.Helper()
	task := f.assignedTask(t)
	_, err := f.svc.TaskService.Deliver(f.db, actorOf(f.worker), task.ID, &dto.DeliverRequest{Message: "done"})
	require.NoError(t, err)
	_, err = f.svc.TaskService.MarkReceived(f.db, actorOf(f.client), task.ID)
	require.NoError(t, err)
	paid, err := f.svc.TaskService.Pay(f.db, actorOf(f.client), task.ID)
	require.NoError(t, err)
	return paid
}

// httpStatus - HTTP-код, в который превратится ошибка сервиса
func httpStatus(t *testing.T, err error) int {
	t.Helper()
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok, "expected AppError, got %T: %v", err, err)
	return appErr.HTTPCode
}
