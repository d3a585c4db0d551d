package services

import (
	"net/http"
	"testing"

	"workhub_backend/internal/models"
	"workhub_backend/internal/services/dto"
	"workhub_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reviewRequest(taskID, workerID string, rating int) *dto.CreateReviewRequest {
	return &dto.CreateReviewRequest{TaskID: taskID, WorkerID: workerID, Rating: rating, Comment: "Good job"}
}

func TestCreateReviewUpdatesRating(t *testing.T) {
	f := newFixture(t)

	ratings := []int{5, 3, 4}
	for _, r := range ratings {
		task := f.completedTask(t)
		review, err := f.svc.ReviewService.Create(f.db, actorOf(f.client), reviewRequest(task.ID, f.worker.ID, r))
		require.NoError(t, err)
		assert.Equal(t, r, review.Rating)
	}

	rating, err := f.svc.ReviewService.GetWorkerRating(f.db, f.worker.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, rating.RatingCount)
	assert.InDelta(t, 4.0, rating.RatingAverage, 1e-9)
	assert.Equal(t, 3, rating.CompletedTasks)
	require.NotNil(t, rating.Summary)
	assert.EqualValues(t, 3, rating.Summary.TotalReviews)

	list, err := f.svc.ReviewService.ListByWorker(f.db, f.worker.ID, 1, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, list.Total)
	assert.True(t, list.HasMore)
}

func TestDuplicateReview(t *testing.T) {
	f := newFixture(t)
	task := f.completedTask(t)

	_, err := f.svc.ReviewService.Create(f.db, actorOf(f.client), reviewRequest(task.ID, f.worker.ID, 5))
	require.NoError(t, err)

	_, err = f.svc.ReviewService.Create(f.db, actorOf(f.client), reviewRequest(task.ID, f.worker.ID, 1))
	assert.Equal(t, http.StatusConflict, httpStatus(t, err))

	profile, err := f.repos.Profiles.FindWorkerProfileByUserID(f.db, f.worker.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, profile.RatingCount)
	assert.InDelta(t, 5.0, profile.RatingAverage, 1e-9)
}

func TestReviewRules(t *testing.T) {
	f := newFixture(t)
	completed := f.completedTask(t)
	inProgress := f.assignedTask(t)
	stranger := helpers.CreateUser(t, f.db, models.UserRoleClient)
	otherWorker := helpers.CreateUser(t, f.db, models.UserRoleWorker)

	tests := []struct {
		name  string
		actor Actor
		req   *dto.CreateReviewRequest
		want  int
	}{
		{"worker cannot review", actorOf(f.worker), reviewRequest(completed.ID, f.worker.ID, 5), http.StatusForbidden},
		{"not the task client", actorOf(stranger), reviewRequest(completed.ID, f.worker.ID, 5), http.StatusForbidden},
		{"task not completed", actorOf(f.client), reviewRequest(inProgress.ID, f.worker.ID, 5), http.StatusConflict},
		{"worker not assigned", actorOf(f.client), reviewRequest(completed.ID, otherWorker.ID, 5), http.StatusConflict},
		{"rating out of range", actorOf(f.client), reviewRequest(completed.ID, f.worker.ID, 6), http.StatusBadRequest},
		{"unknown task", actorOf(f.client), reviewRequest("missing", f.worker.ID, 5), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.ReviewService.Create(f.db, tt.actor, tt.req)
			assert.Equal(t, tt.want, httpStatus(t, err))
		})
	}

	reviews, err := f.svc.ReviewService.ListByTask(f.db, completed.ID)
	require.NoError(t, err)
	assert.Empty(t, reviews)
}

func TestReconcileFixesDrift(t *testing.T) {
	f := newFixture(t)
	task := f.completedTask(t)
	_, err := f.svc.ReviewService.Create(f.db, actorOf(f.client), reviewRequest(task.ID, f.worker.ID, 4))
	require.NoError(t, err)

	idle := helpers.CreateUser(t, f.db, models.UserRoleWorker)
	require.NoError(t, f.repos.Profiles.SetRating(f.db, f.worker.ID, 1.5, 7))
	require.NoError(t, f.repos.Profiles.SetRating(f.db, idle.ID, 3, 2))

	res, err := f.svc.AdminService.Reconcile(f.db)
	require.NoError(t, err)
	assert.Equal(t, 2, res.ProfilesFixed)
	assert.GreaterOrEqual(t, res.ProfilesChecked, 2)

	profile, err := f.repos.Profiles.FindWorkerProfileByUserID(f.db, f.worker.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, profile.RatingCount)
	assert.InDelta(t, 4.0, profile.RatingAverage, 1e-9)

	idleProfile, err := f.repos.Profiles.FindWorkerProfileByUserID(f.db, idle.ID)
	require.NoError(t, err)
	assert.Zero(t, idleProfile.RatingCount)
	assert.Zero(t, idleProfile.RatingAverage)

	again, err := f.svc.ReviewService.Reconcile(f.db)
	require.NoError(t, err)
	assert.Zero(t, again.ProfilesFixed)
}
