package ws

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"workhub_backend/internal/services/dto"
	"workhub_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, userID string) (*WebSocketManager, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctx, cancel := context.WithCancel(context.Background())
	manager := NewWebSocketManager()
	go manager.Run(ctx)

	router := gin.New()
	group := router.Group("", func(c *gin.Context) {
		c.Set(string(contextkeys.UserIDKey), userID)
		c.Next()
	})
	NewWebSocketHandler(manager, []string{"*"}).RegisterRoutes(group)

	srv := httptest.NewServer(router)
	t.Cleanup(func() {
		cancel()
		srv.Close()
	})
	return manager, "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestPublishReachesEveryConnection(t *testing.T) {
	manager, url := newTestServer(t, "user-1")

	first := dial(t, url)
	second := dial(t, url)
	require.Eventually(t, func() bool { return manager.GetClientCount() == 2 }, time.Second, 10*time.Millisecond)
	assert.True(t, manager.IsClientConnected("user-1"))
	assert.False(t, manager.IsClientConnected("user-2"))

	manager.Publish("user-2", dto.Event{Type: "ignored"})
	manager.Publish("user-1", dto.Event{
		Type:    "task_delivered",
		Subject: "Task delivered",
		Data:    map[string]any{"TaskID": "task-1"},
		SentAt:  time.Now().UTC(),
	})

	for _, conn := range []*websocket.Conn{first, second} {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		var got dto.Event
		require.NoError(t, conn.ReadJSON(&got))
		assert.Equal(t, "task_delivered", got.Type)
		assert.Equal(t, "Task delivered", got.Subject)
		assert.Equal(t, "task-1", got.Data["TaskID"])
	}
}

func TestClosedConnectionIsUnregistered(t *testing.T) {
	manager, url := newTestServer(t, "user-1")

	conn := dial(t, url)
	require.Eventually(t, func() bool { return manager.IsClientConnected("user-1") }, time.Second, 10*time.Millisecond)

	require.NoError(t, conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "bye")))
	conn.Close()

	require.Eventually(t, func() bool { return !manager.IsClientConnected("user-1") }, 2*time.Second, 10*time.Millisecond)
}

func TestOriginChecker(t *testing.T) {
	check := originChecker([]string{"https://app.workhub.io"})

	req := httptest.NewRequest("GET", "/ws", nil)
	assert.True(t, check(req), "no origin header")

	req.Header.Set("Origin", "https://app.workhub.io")
	assert.True(t, check(req))

	req.Header.Set("Origin", "https://evil.example")
	assert.False(t, check(req))

	assert.True(t, originChecker(nil)(req))
}
