package integration_test

import (
	"bytes"
	"image"
	"image/color"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"testing"
	"time"

	"workhub_backend/internal/email"
	"workhub_backend/internal/imageprocessor"
	"workhub_backend/internal/models"
	"workhub_backend/internal/services/dto"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assignedTask создает задачу и назначает исполнителя через API
func (ts *TestServer) assignedTask(t *testing.T, clientToken, workerToken string) dto.TaskResponse {
	t.Helper()
	task := ts.createTask(t, clientToken)
	app := ts.apply(t, workerToken, task.ID)
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/applications/"+app.ID+"/accept", clientToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	accepted := Decode[dto.AcceptResponse](t, body)
	require.NotNil(t, accepted.Task)
	return *accepted.Task
}

func (ts *TestServer) upload(t *testing.T, token, taskID, name string, data []byte) (*http.Response, string) {
	t.Helper()

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	part, err := form.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, form.Close())

	req, err := http.NewRequest(http.MethodPost, ts.Server.URL+"/api/v1/tasks/"+taskID+"/attachments", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	res, err := ts.Server.Client().Do(req)
	require.NoError(t, err)
	defer res.Body.Close()
	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res, string(raw)
}

func photo(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.NRGBA{G: 255, A: 255})
	data, err := imageprocessor.EncodePNG(img)
	require.NoError(t, err)
	return data
}

func TestAttachmentsEndToEnd(t *testing.T) {
	ts := NewTestServer(t)
	clientToken, _ := ts.RegisterAndLogin(t, "client@test.com", models.UserRoleClient)
	workerToken, worker := ts.RegisterAndLogin(t, "worker@test.com", models.UserRoleWorker)
	strangerToken, _ := ts.RegisterAndLogin(t, "stranger@test.com", models.UserRoleWorker)

	task := ts.assignedTask(t, clientToken, workerToken)

	res, body := ts.upload(t, workerToken, task.ID, "sink.png", photo(t, 900, 600))
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	attachment := Decode[dto.AttachmentResponse](t, body)
	assert.Equal(t, worker.ID, attachment.UploadedBy)
	assert.Equal(t, "image/png", attachment.MimeType)
	assert.Equal(t, 900, attachment.Width)
	assert.True(t, strings.HasPrefix(attachment.URL, "/files/tasks/"+task.ID+"/"), attachment.URL)

	// файл раздается статикой
	res, _ = ts.SendRequest(t, http.MethodGet, attachment.ThumbnailURL, "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = ts.upload(t, clientToken, task.ID, "x.png", photo(t, 10, 10))
	assert.Equal(t, http.StatusForbidden, res.StatusCode, "only the assignee uploads")

	res, _ = ts.upload(t, workerToken, task.ID, "notes.txt", []byte("not an image at all"))
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	res, _ = ts.upload(t, workerToken, task.ID, "huge.bin", bytes.Repeat([]byte{1}, 3<<20))
	assert.Equal(t, http.StatusRequestEntityTooLarge, res.StatusCode)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/tasks/"+task.ID+"/attachments", clientToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Len(t, Decode[[]dto.AttachmentResponse](t, body), 1)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/tasks/"+task.ID+"/attachments", strangerToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	second := Decode[dto.AttachmentResponse](t, func() string {
		res, body := ts.upload(t, workerToken, task.ID, "second.png", photo(t, 50, 50))
		require.Equal(t, http.StatusCreated, res.StatusCode, body)
		return body
	}())
	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/v1/tasks/"+task.ID+"/attachments/"+second.ID, workerToken, nil)
	assert.Equal(t, http.StatusNoContent, res.StatusCode)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/tasks/"+task.ID+"/deliver", workerToken, map[string]any{"message": "See photos"})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	res, _ = ts.upload(t, workerToken, task.ID, "late.png", photo(t, 10, 10))
	assert.Equal(t, http.StatusConflict, res.StatusCode, "attachments are frozen after delivery")

	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/v1/tasks/"+task.ID+"/attachments/"+attachment.ID, workerToken, nil)
	assert.Equal(t, http.StatusConflict, res.StatusCode)
}

func TestRealtimeNotification(t *testing.T) {
	ts := NewTestServer(t)
	clientToken, _ := ts.RegisterAndLogin(t, "client@test.com", models.UserRoleClient)
	workerToken, _ := ts.RegisterAndLogin(t, "worker@test.com", models.UserRoleWorker)
	task := ts.assignedTask(t, clientToken, workerToken)

	wsURL := "ws" + strings.TrimPrefix(ts.Server.URL, "http") + "/api/v1/ws"

	_, res, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.Error(t, err)
	require.NotNil(t, res)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL+"?access_token="+clientToken, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return ts.App.Hub.IsClientConnected(task.ClientID) }, time.Second, 10*time.Millisecond)

	res2, body := ts.SendRequest(t, http.MethodPost, "/api/v1/tasks/"+task.ID+"/deliver", workerToken, map[string]any{"message": "Done"})
	require.Equal(t, http.StatusOK, res2.StatusCode, body)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))
	var event dto.Event
	require.NoError(t, conn.ReadJSON(&event))
	assert.Equal(t, email.TemplateTaskDelivered, event.Type)
	assert.Equal(t, "Task delivered", event.Subject)
	require.NotEmpty(t, event.ID)

	// то же событие лежит в ленте
	res2, body = ts.SendRequest(t, http.MethodGet, "/api/v1/me/notifications/unread-count", clientToken, nil)
	require.Equal(t, http.StatusOK, res2.StatusCode, body)
	assert.EqualValues(t, 1, Decode[dto.UnreadCountResponse](t, body).Unread)

	res2, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/me/notifications/"+event.ID+"/read", workerToken, nil)
	assert.Equal(t, http.StatusNotFound, res2.StatusCode)

	res2, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/me/notifications/"+event.ID+"/read", clientToken, nil)
	assert.Equal(t, http.StatusNoContent, res2.StatusCode)

	res2, body = ts.SendRequest(t, http.MethodGet, "/api/v1/me/notifications?unreadOnly=true", clientToken, nil)
	require.Equal(t, http.StatusOK, res2.StatusCode, body)
	assert.EqualValues(t, 0, Decode[dto.PaginatedResponse](t, body).Total)
}
