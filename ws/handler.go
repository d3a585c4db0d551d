package ws

import (
	"net/http"
	"strings"

	"workhub_backend/internal/logger"
	"workhub_backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type WebSocketHandler struct {
	Manager  *WebSocketManager
	upgrader websocket.Upgrader
}

// NewWebSocketHandler - allowedOrigins как в CORS; "*" или пустой список разрешают любой origin
func NewWebSocketHandler(manager *WebSocketManager, allowedOrigins []string) *WebSocketHandler {
	return &WebSocketHandler{
		Manager: manager,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
	}
}

func (h *WebSocketHandler) RegisterRoutes(protected *gin.RouterGroup) {
	protected.GET("/ws", h.ServeWS)
}

// ServeWS godoc
// @Summary Поток событий пользователя
// @Description WebSocket. Токен передается заголовком Authorization или параметром access_token.
// @Tags realtime
// @Security BearerAuth
// @Param access_token query string false "JWT для браузерных клиентов"
// @Success 101
// @Router /ws [get]
func (h *WebSocketHandler) ServeWS(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.CtxWarn(c.Request.Context(), "websocket upgrade failed", "error", err)
		return
	}

	client := newClient(h.Manager, conn, userID)
	if !h.Manager.join(client) {
		_ = conn.Close()
		return
	}

	go client.readPump()
	go client.writePump()
}

func originChecker(allowed []string) func(r *http.Request) bool {
	set := make(map[string]bool, len(allowed))
	for _, o := range allowed {
		o = strings.TrimSpace(o)
		if o == "*" {
			return func(*http.Request) bool { return true }
		}
		if o != "" {
			set[o] = true
		}
	}
	if len(set) == 0 {
		return func(*http.Request) bool { return true }
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || set[origin]
	}
}
