package integration_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"workhub_backend/internal/models"
	"workhub_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pagedTasks struct {
	Data  []dto.TaskResponse `json:"data"`
	Total int64              `json:"total"`
}

func (ts *TestServer) createTask(t *testing.T, token string) dto.TaskResponse {
	t.Helper()
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/tasks", token, taskBody())
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	return Decode[dto.TaskResponse](t, body)
}

func (ts *TestServer) apply(t *testing.T, token, taskID string) dto.ApplicationResponse {
	t.Helper()
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/tasks/"+taskID+"/applications", token, map[string]any{
		"coverLetter": strings.Repeat("I fix sinks every day. ", 3),
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	return Decode[dto.ApplicationResponse](t, body)
}

func TestTaskLifecycleEndToEnd(t *testing.T) {
	ts := NewTestServer(t)
	clientToken, client := ts.RegisterAndLogin(t, "client@test.com", models.UserRoleClient)
	workerToken, worker := ts.RegisterAndLogin(t, "worker@test.com", models.UserRoleWorker)
	otherToken, _ := ts.RegisterAndLogin(t, "other@test.com", models.UserRoleWorker)

	task := ts.createTask(t, clientToken)
	assert.Equal(t, models.TaskStatusOpen, task.Status)
	assert.Equal(t, client.ID, task.ClientID)
	assert.Equal(t, "USD", task.Currency)

	// исполнитель не может создавать задачи
	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/tasks", workerToken, taskBody())
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	// лента показывает открытую задачу
	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/tasks?city=Almaty", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.EqualValues(t, 1, Decode[pagedTasks](t, body).Total)

	app := ts.apply(t, workerToken, task.ID)
	assert.Equal(t, models.ApplicationStatusPending, app.Status)
	sibling := ts.apply(t, otherToken, task.ID)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/tasks/"+task.ID+"/applications", workerToken, map[string]any{
		"coverLetter": strings.Repeat("Second attempt here. ", 3),
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode, "one application per worker")

	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/applications/"+app.ID+"/accept", clientToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	accepted := Decode[dto.AcceptResponse](t, body)
	assert.Equal(t, models.ApplicationStatusAccepted, accepted.Application.Status)
	assert.Equal(t, models.TaskStatusInProgress, accepted.Task.Status)
	require.NotNil(t, accepted.Task.AssignedWorkerID)
	assert.Equal(t, worker.ID, *accepted.Task.AssignedWorkerID)

	// второй отклик остается PENDING до явной очистки
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/applications/"+sibling.ID, clientToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Equal(t, models.ApplicationStatusPending, Decode[dto.ApplicationResponse](t, body).Status)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/tasks/"+task.ID+"/applications/reject-remaining", clientToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.EqualValues(t, 1, Decode[dto.RejectRemainingResponse](t, body).Rejected)

	// оплата до сдачи работы невозможна; исполнитель не может оплачивать
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/tasks/"+task.ID+"/pay", clientToken, nil)
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/tasks/"+task.ID+"/pay", workerToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/tasks/"+task.ID+"/deliver", workerToken, map[string]any{
		"message": "Gasket replaced",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Equal(t, models.DeliveryStatusDelivered, Decode[dto.TaskResponse](t, body).DeliveryStatus)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/tasks/"+task.ID+"/receive", clientToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/tasks/"+task.ID+"/pay", clientToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	paid := Decode[dto.TaskResponse](t, body)
	assert.Equal(t, models.TaskStatusCompleted, paid.Status)
	assert.Equal(t, models.PaymentStatusPaid, paid.PaymentStatus)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/tasks/"+task.ID+"/cancel", clientToken, nil)
	assert.Equal(t, http.StatusConflict, res.StatusCode, "completed task cannot be cancelled")

	review := map[string]any{
		"taskId":         task.ID,
		"workerId":       worker.ID,
		"rating":         4,
		"comment":        "Quick and clean",
		"quality":        5,
		"wouldHireAgain": true,
	}
	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/reviews", clientToken, review)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/reviews", clientToken, review)
	assert.Equal(t, http.StatusConflict, res.StatusCode, "one review per task and worker")

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/workers/"+worker.ID+"/rating", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	rating := Decode[dto.WorkerRatingResponse](t, body)
	assert.InDelta(t, 4.0, rating.RatingAverage, 1e-9)
	assert.Equal(t, 1, rating.RatingCount)
	assert.Equal(t, 1, rating.CompletedTasks)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/workers/"+worker.ID, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	profile := Decode[dto.WorkerProfileResponse](t, body)
	assert.Equal(t, 1, profile.RatingCount)
}

func TestExtensionEndToEnd(t *testing.T) {
	ts := NewTestServer(t)
	clientToken, _ := ts.RegisterAndLogin(t, "client@test.com", models.UserRoleClient)
	workerToken, _ := ts.RegisterAndLogin(t, "worker@test.com", models.UserRoleWorker)

	task := ts.createTask(t, clientToken)
	app := ts.apply(t, workerToken, task.ID)
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/applications/"+app.ID+"/accept", clientToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/tasks/"+task.ID+"/extension/respond", clientToken, map[string]any{"approved": true})
	assert.Equal(t, http.StatusConflict, res.StatusCode, "nothing to respond to")

	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/tasks/"+task.ID+"/extension", workerToken, map[string]any{
		"message": "Waiting for a spare part",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	ext := Decode[dto.TaskResponse](t, body).TimeExtensionRequest
	require.NotNil(t, ext)
	assert.Equal(t, models.ExtensionStatusPending, ext.Status)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/tasks/"+task.ID+"/extension", workerToken, map[string]any{
		"message": "Again",
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode, "one pending request at a time")

	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/tasks/"+task.ID+"/extension/respond", clientToken, map[string]any{
		"approved":        false,
		"responseMessage": "Please hurry",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Equal(t, models.ExtensionStatusRejected, Decode[dto.TaskResponse](t, body).TimeExtensionRequest.Status)
}

func TestMatchingAndAssistant(t *testing.T) {
	ts := NewTestServer(t)
	clientToken, _ := ts.RegisterAndLogin(t, "client@test.com", models.UserRoleClient)
	workerToken, worker := ts.RegisterAndLogin(t, "worker@test.com", models.UserRoleWorker)

	task := ts.createTask(t, clientToken)
	ts.apply(t, workerToken, task.ID)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/matching/recommendations?limit=5", workerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	recs := Decode[[]dto.TaskRecommendation](t, body)
	require.Len(t, recs, 1)
	assert.Equal(t, task.ID, recs[0].Task.ID)
	assert.GreaterOrEqual(t, recs[0].Score, 0)
	assert.LessOrEqual(t, recs[0].Score, 100)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/matching/tasks/"+task.ID+"/applications", clientToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Len(t, Decode[[]dto.ApplicationRanking](t, body), 1)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/matching/tasks/"+task.ID+"/applications", workerToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, body = ts.SendRequest(t, http.MethodGet, fmt.Sprintf("/api/v1/matching/tasks/%s/workers/%s", task.ID, worker.ID), clientToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, `"score"`)

	// без настроенного AI ассистент отвечает запасным текстом
	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/assistant", workerToken, map[string]any{
		"message": "How do I get more tasks?",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	answer := Decode[dto.AssistantResponse](t, body)
	assert.True(t, answer.Degraded)
	assert.NotEmpty(t, answer.Reply)
}

func TestAdminEndpoints(t *testing.T) {
	ts := NewTestServer(t)
	clientToken, _ := ts.RegisterAndLogin(t, "client@test.com", models.UserRoleClient)
	workerToken, worker := ts.RegisterAndLogin(t, "worker@test.com", models.UserRoleWorker)
	adminToken := ts.CreateAdmin(t)

	task := ts.createTask(t, clientToken)

	res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/admin/stats", clientToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/admin/stats", adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	stats := Decode[dto.PlatformStats](t, body)
	assert.EqualValues(t, 1, stats.TasksByStatus[models.TaskStatusOpen])
	assert.EqualValues(t, 1, stats.UsersByRole[models.UserRoleWorker])

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/admin/users?role=WORKER", adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, worker.Email)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/admin/tasks/"+task.ID+"/cancel", adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Equal(t, models.TaskStatusCancelled, Decode[dto.TaskResponse](t, body).Status)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/admin/ratings/reconcile", adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Equal(t, 0, Decode[dto.ReconcileResult](t, body).ProfilesFixed)

	// заблокированный пользователь не может войти
	res, body = ts.SendRequest(t, http.MethodPatch, "/api/v1/admin/users/"+worker.ID+"/status", adminToken, map[string]any{
		"status": models.UserStatusSuspended,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]any{
		"email":    "worker@test.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	// уже выданный токен действует до истечения
	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/me", workerToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}
