package services

import (
	"net/http"
	"testing"
	"time"

	"workhub_backend/internal/models"
	"workhub_backend/internal/services/dto"
	"workhub_backend/test/helpers"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTask(t *testing.T) {
	f := newFixture(t)

	task := f.createTask(t)
	assert.Equal(t, models.TaskStatusOpen, task.Status)
	assert.Equal(t, "USD", task.Currency)
	assert.Equal(t, []string{"plumbing"}, task.RequiredSkills)
	assert.Nil(t, task.AssignedWorkerID)
	assert.Equal(t, models.DeliveryStatusNotDelivered, task.DeliveryStatus)
	assert.Equal(t, models.PaymentStatusNotPaid, task.PaymentStatus)

	profile, err := f.repos.Profiles.FindClientProfileByUserID(f.db, f.client.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, profile.TasksPosted)
}

func TestCreateTaskRequiresClient(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.TaskService.CreateTask(f.db, actorOf(f.worker), newTaskRequest())
	assert.Equal(t, http.StatusForbidden, httpStatus(t, err))
}

func TestCreateTaskValidation(t *testing.T) {
	f := newFixture(t)

	req := newTaskRequest()
	req.Title = "Fix"
	req.Budget = decimal.NewFromInt(-10)
	_, err := f.svc.TaskService.CreateTask(f.db, actorOf(f.client), req)
	assert.Equal(t, http.StatusBadRequest, httpStatus(t, err))

	list, err := f.svc.TaskService.ListTasks(f.db, nil)
	require.NoError(t, err)
	assert.Zero(t, list.Total)
}

func TestUpdateTaskOnlyWhileOpen(t *testing.T) {
	f := newFixture(t)
	task := f.createTask(t)

	title := "Replace the kitchen faucet"
	updated, err := f.svc.TaskService.UpdateTask(f.db, actorOf(f.client), task.ID, &dto.UpdateTaskRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, title, updated.Title)
	assert.Greater(t, updated.Version, task.Version)

	_, err = f.svc.TaskService.UpdateTask(f.db, actorOf(f.admin), task.ID, &dto.UpdateTaskRequest{Title: &title})
	assert.Equal(t, http.StatusForbidden, httpStatus(t, err))

	assigned := f.assignedTask(t)
	_, err = f.svc.TaskService.UpdateTask(f.db, actorOf(f.client), assigned.ID, &dto.UpdateTaskRequest{Title: &title})
	assert.Equal(t, http.StatusConflict, httpStatus(t, err))
}

func TestUpdateTaskAfterDeadlinePassed(t *testing.T) {
	f := newFixture(t)
	task := f.createTask(t)

	past := time.Now().UTC().Add(-2 * time.Hour)
	require.NoError(t, f.db.Model(&models.Task{}).Where("id = ?", task.ID).Update("deadline", past).Error)

	title := "Replace the kitchen faucet"
	updated, err := f.svc.TaskService.UpdateTask(f.db, actorOf(f.client), task.ID, &dto.UpdateTaskRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, title, updated.Title)

	_, err = f.svc.TaskService.UpdateTask(f.db, actorOf(f.client), task.ID, &dto.UpdateTaskRequest{Deadline: &past})
	assert.Equal(t, http.StatusBadRequest, httpStatus(t, err))
}

func TestGetTaskNotFound(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.TaskService.GetTask(f.db, "missing")
	assert.Equal(t, http.StatusNotFound, httpStatus(t, err))
}

func TestListTasks(t *testing.T) {
	f := newFixture(t)
	f.createTask(t)
	f.assignedTask(t)

	open, err := f.svc.TaskService.ListTasks(f.db, &dto.TaskListQuery{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, open.Total, "public list shows only OPEN tasks by default")

	inProgress, err := f.svc.TaskService.ListTasks(f.db, &dto.TaskListQuery{Status: models.TaskStatusInProgress})
	require.NoError(t, err)
	assert.EqualValues(t, 1, inProgress.Total)

	mine, err := f.svc.TaskService.ListMyTasks(f.db, actorOf(f.client), nil)
	require.NoError(t, err)
	assert.EqualValues(t, 2, mine.Total)

	assignedToMe, err := f.svc.TaskService.ListMyTasks(f.db, actorOf(f.worker), nil)
	require.NoError(t, err)
	assert.EqualValues(t, 1, assignedToMe.Total)

	all, err := f.svc.AdminService.ListTasks(f.db, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 2, all.Total)
}

func TestDeliveryPaymentFlow(t *testing.T) {
	f := newFixture(t)
	task := f.assignedTask(t)

	_, err := f.svc.TaskService.Pay(f.db, actorOf(f.client), task.ID)
	assert.Equal(t, http.StatusConflict, httpStatus(t, err), "cannot pay before delivery")

	other := helpers.CreateUser(t, f.db, models.UserRoleWorker)
	_, err = f.svc.TaskService.Deliver(f.db, actorOf(other), task.ID, &dto.DeliverRequest{})
	assert.Equal(t, http.StatusForbidden, httpStatus(t, err), "only the assigned worker delivers")

	delivered, err := f.svc.TaskService.Deliver(f.db, actorOf(f.worker), task.ID, &dto.DeliverRequest{Message: "Replaced the gasket"})
	require.NoError(t, err)
	assert.Equal(t, models.DeliveryStatusDelivered, delivered.DeliveryStatus)
	assert.Equal(t, "Replaced the gasket", delivered.DeliveryMessage)

	_, err = f.svc.TaskService.MarkReceived(f.db, actorOf(f.worker), task.ID)
	assert.Equal(t, http.StatusForbidden, httpStatus(t, err), "only the client receives")

	received, err := f.svc.TaskService.MarkReceived(f.db, actorOf(f.client), task.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DeliveryStatusReceived, received.DeliveryStatus)

	_, err = f.svc.TaskService.MarkReceived(f.db, actorOf(f.client), task.ID)
	assert.Equal(t, http.StatusConflict, httpStatus(t, err), "second receipt is rejected")

	paid, err := f.svc.TaskService.Pay(f.db, actorOf(f.client), task.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusCompleted, paid.Status)
	assert.Equal(t, models.PaymentStatusPaid, paid.PaymentStatus)
	require.NotNil(t, paid.PaidAt)
	require.NotNil(t, paid.CompletedAt)

	profile, err := f.repos.Profiles.FindWorkerProfileByUserID(f.db, f.worker.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, profile.CompletedTasks)

	_, err = f.svc.TaskService.Pay(f.db, actorOf(f.client), task.ID)
	assert.Equal(t, http.StatusConflict, httpStatus(t, err), "double payment")

	f.svc.NotificationService.Wait()
	subjects := map[string]bool{}
	for _, m := range f.mail.Sent() {
		subjects[m.Subject] = true
	}
	assert.True(t, subjects["Task delivered"])
	assert.True(t, subjects["Payment confirmed"])
}

func TestCancelTask(t *testing.T) {
	f := newFixture(t)

	open := f.createTask(t)
	_, err := f.svc.TaskService.Cancel(f.db, actorOf(f.worker), open.ID)
	assert.Equal(t, http.StatusForbidden, httpStatus(t, err))

	cancelled, err := f.svc.TaskService.Cancel(f.db, actorOf(f.client), open.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusCancelled, cancelled.Status)
	require.NotNil(t, cancelled.CancelledAt)

	_, err = f.svc.TaskService.Cancel(f.db, actorOf(f.client), open.ID)
	assert.Equal(t, http.StatusConflict, httpStatus(t, err))

	assigned := f.assignedTask(t)
	byAdmin, err := f.svc.TaskService.Cancel(f.db, actorOf(f.admin), assigned.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusCancelled, byAdmin.Status)
	assert.Nil(t, byAdmin.AssignedWorkerID)

	_, err = f.svc.TaskService.Deliver(f.db, actorOf(f.worker), assigned.ID, &dto.DeliverRequest{})
	assert.Error(t, err)

	completed := f.completedTask(t)
	_, err = f.svc.TaskService.Cancel(f.db, actorOf(f.client), completed.ID)
	assert.Equal(t, http.StatusConflict, httpStatus(t, err))
}

func TestExtensionFlow(t *testing.T) {
	f := newFixture(t)
	task := f.assignedTask(t)

	approve := true
	_, err := f.svc.TaskService.RespondExtension(f.db, actorOf(f.client), task.ID, &dto.ExtensionDecisionRequest{Approved: &approve})
	assert.Equal(t, http.StatusConflict, httpStatus(t, err), "nothing to respond to")

	newDeadline := time.Now().Add(72 * time.Hour).UTC().Truncate(time.Second)
	requested, err := f.svc.TaskService.RequestExtension(f.db, actorOf(f.worker), task.ID, &dto.ExtensionRequest{
		Message:     "Waiting for spare parts",
		NewDeadline: &newDeadline,
	})
	require.NoError(t, err)
	require.NotNil(t, requested.TimeExtensionRequest)
	assert.Equal(t, models.ExtensionStatusPending, requested.TimeExtensionRequest.Status)
	assert.Equal(t, f.worker.ID, requested.TimeExtensionRequest.RequestedBy)

	_, err = f.svc.TaskService.RequestExtension(f.db, actorOf(f.worker), task.ID, &dto.ExtensionRequest{Message: "again"})
	assert.Equal(t, http.StatusConflict, httpStatus(t, err), "one pending request at a time")

	_, err = f.svc.TaskService.RespondExtension(f.db, actorOf(f.worker), task.ID, &dto.ExtensionDecisionRequest{Approved: &approve})
	assert.Equal(t, http.StatusForbidden, httpStatus(t, err))

	answered, err := f.svc.TaskService.RespondExtension(f.db, actorOf(f.client), task.ID, &dto.ExtensionDecisionRequest{
		Approved:        &approve,
		ResponseMessage: "Fine",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ExtensionStatusApproved, answered.TimeExtensionRequest.Status)
	require.NotNil(t, answered.Deadline)
	assert.True(t, newDeadline.Equal(*answered.Deadline))
}

func TestExtensionWithoutNewDeadline(t *testing.T) {
	f := newFixture(t)
	task := f.assignedTask(t)

	_, err := f.svc.TaskService.RequestExtension(f.db, actorOf(f.worker), task.ID, &dto.ExtensionRequest{Message: "A couple more days"})
	require.NoError(t, err)

	reject := false
	answered, err := f.svc.TaskService.RespondExtension(f.db, actorOf(f.client), task.ID, &dto.ExtensionDecisionRequest{Approved: &reject})
	require.NoError(t, err)
	assert.Equal(t, models.ExtensionStatusRejected, answered.TimeExtensionRequest.Status)
	assert.Nil(t, answered.Deadline)

	f.svc.NotificationService.Wait()
	var found bool
	for _, m := range f.mail.Sent() {
		if m.Subject == "Extension request answered" {
			found = true
			assert.Contains(t, m.HTMLBody, "rejected")
		}
	}
	assert.True(t, found)
}

func TestStaleTaskWriteIsRejected(t *testing.T) {
	f := newFixture(t)
	created := f.createTask(t)

	stale, err := f.repos.Tasks.FindByID(f.db, created.ID)
	require.NoError(t, err)

	title := "Replace the kitchen faucet"
	_, err = f.svc.TaskService.UpdateTask(f.db, actorOf(f.client), created.ID, &dto.UpdateTaskRequest{Title: &title})
	require.NoError(t, err)

	stale.Title = "Lost update"
	assert.Error(t, f.repos.Tasks.Update(f.db, stale))

	current, err := f.svc.TaskService.GetTask(f.db, created.ID)
	require.NoError(t, err)
	assert.Equal(t, title, current.Title)
}
