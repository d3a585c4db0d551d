package services

import (
	"net/http"
	"testing"

	"workhub_backend/internal/models"
	"workhub_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateUserStatus(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.AdminService.UpdateUserStatus(f.db, actorOf(f.admin), f.admin.ID, &dto.UpdateUserStatusRequest{Status: models.UserStatusBanned})
	assert.Equal(t, http.StatusForbidden, httpStatus(t, err))

	_, err = f.svc.AdminService.UpdateUserStatus(f.db, actorOf(f.admin), "missing", &dto.UpdateUserStatusRequest{Status: models.UserStatusBanned})
	assert.Equal(t, http.StatusNotFound, httpStatus(t, err))

	_, err = f.svc.AdminService.UpdateUserStatus(f.db, actorOf(f.admin), f.worker.ID, &dto.UpdateUserStatusRequest{Status: "DELETED"})
	assert.Equal(t, http.StatusBadRequest, httpStatus(t, err))

	user, err := f.svc.AdminService.UpdateUserStatus(f.db, actorOf(f.admin), f.worker.ID, &dto.UpdateUserStatusRequest{Status: models.UserStatusBanned})
	require.NoError(t, err)
	assert.Equal(t, models.UserStatusBanned, user.Status)

	same, err := f.svc.AdminService.UpdateUserStatus(f.db, actorOf(f.admin), f.worker.ID, &dto.UpdateUserStatusRequest{Status: models.UserStatusBanned})
	require.NoError(t, err)
	assert.Equal(t, models.UserStatusBanned, same.Status)
}

func TestListUsers(t *testing.T) {
	f := newFixture(t)

	all, err := f.svc.AdminService.ListUsers(f.db, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 3, all.Total)

	workers, err := f.svc.AdminService.ListUsers(f.db, &dto.UserListQuery{Role: models.UserRoleWorker})
	require.NoError(t, err)
	assert.EqualValues(t, 1, workers.Total)
}

func TestPlatformStats(t *testing.T) {
	f := newFixture(t)
	task := f.completedTask(t)
	f.createTask(t)
	_, err := f.svc.ReviewService.Create(f.db, actorOf(f.client), reviewRequest(task.ID, f.worker.ID, 5))
	require.NoError(t, err)

	stats, err := f.svc.AdminService.Stats(f.db)
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.UsersByRole[models.UserRoleWorker])
	assert.EqualValues(t, 1, stats.TasksByStatus[models.TaskStatusCompleted])
	assert.EqualValues(t, 1, stats.TasksByStatus[models.TaskStatusOpen])
	assert.EqualValues(t, 1, stats.ApplicationsByStatus[models.ApplicationStatusAccepted])
	require.NotNil(t, stats.Reviews)
	assert.EqualValues(t, 1, stats.Reviews.TotalReviews)
	assert.EqualValues(t, 1, stats.Reviews.PositiveReviews)
}
