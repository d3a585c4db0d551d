package lifecycle

import (
	"errors"
	"strings"
	"testing"

	"workhub_backend/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPendingApplication(taskID, workerID string) *models.TaskApplication {
	a := &models.TaskApplication{
		BaseModel:   models.BaseModel{ID: "app-" + workerID},
		TaskID:      taskID,
		WorkerID:    workerID,
		CoverLetter: strings.Repeat("a", 30),
	}
	InitApplication(a, now)
	return a
}

func TestValidateApplication(t *testing.T) {
	assert.NoError(t, ValidateApplication(strings.Repeat("x", 20), decimal.NullDecimal{}))
	assert.NoError(t, ValidateApplication(strings.Repeat("x", 1000), decimal.NewNullDecimal(decimal.NewFromInt(100))))

	var vErr *ValidationError
	require.True(t, errors.As(ValidateApplication(strings.Repeat("x", 19), decimal.NullDecimal{}), &vErr))
	assert.Contains(t, vErr.Fields, "coverLetter")

	require.True(t, errors.As(ValidateApplication(strings.Repeat("x", 1001), decimal.NullDecimal{}), &vErr))
	assert.Contains(t, vErr.Fields, "coverLetter")

	require.True(t, errors.As(ValidateApplication(strings.Repeat("x", 50), decimal.NewNullDecimal(decimal.NewFromInt(-5))), &vErr))
	assert.Contains(t, vErr.Fields, "proposedBudget")
}

func TestCanApply(t *testing.T) {
	assert.NoError(t, CanApply(newOpenTask()))
	assert.True(t, errors.Is(CanApply(inProgressTask(t)), ErrInvalidState))
}

func TestAcceptAssignsWorker(t *testing.T) {
	task := newOpenTask()
	app := newPendingApplication(task.ID, "worker-7")

	require.NoError(t, Accept(app, task, now))
	assert.Equal(t, models.ApplicationStatusAccepted, app.Status)
	require.NotNil(t, app.RespondedAt)
	assert.Equal(t, models.TaskStatusInProgress, task.Status)
	assert.True(t, task.IsAssignedTo("worker-7"))
}

func TestAcceptRequiresOpenTask(t *testing.T) {
	task := inProgressTask(t)
	app := newPendingApplication(task.ID, "worker-9")

	err := Accept(app, task, now)
	assert.True(t, errors.Is(err, ErrInvalidState))
	assert.Equal(t, models.ApplicationStatusPending, app.Status)
	assert.True(t, task.IsAssignedTo("worker-1"))
}

func TestAcceptRejectsForeignTask(t *testing.T) {
	task := newOpenTask()
	app := newPendingApplication("other-task", "worker-1")
	assert.True(t, errors.Is(Accept(app, task, now), ErrValidation))
	assert.Equal(t, models.TaskStatusOpen, task.Status)
}

func TestTerminalApplicationStates(t *testing.T) {
	ops := map[string]func(a *models.TaskApplication) error{
		"reject":   func(a *models.TaskApplication) error { return Reject(a, now) },
		"withdraw": func(a *models.TaskApplication) error { return Withdraw(a, now) },
		"accept":   func(a *models.TaskApplication) error { return Accept(a, newOpenTask(), now) },
	}

	for _, terminal := range []models.ApplicationStatus{
		models.ApplicationStatusAccepted,
		models.ApplicationStatusRejected,
		models.ApplicationStatusWithdrawn,
	} {
		for name, op := range ops {
			t.Run(string(terminal)+"/"+name, func(t *testing.T) {
				app := newPendingApplication("task-1", "worker-1")
				app.Status = terminal
				assert.True(t, errors.Is(op(app), ErrInvalidState))
				assert.Equal(t, terminal, app.Status)
			})
		}
	}
}

func TestRejectAndWithdraw(t *testing.T) {
	app := newPendingApplication("task-1", "worker-1")
	require.NoError(t, Reject(app, now))
	assert.Equal(t, models.ApplicationStatusRejected, app.Status)
	assert.NotNil(t, app.RespondedAt)

	app = newPendingApplication("task-1", "worker-2")
	require.NoError(t, Withdraw(app, now))
	assert.Equal(t, models.ApplicationStatusWithdrawn, app.Status)
}
