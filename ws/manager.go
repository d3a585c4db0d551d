package ws

import (
	"context"
	"sync"

	"workhub_backend/internal/logger"
	"workhub_backend/internal/services/dto"
)

// WebSocketManager хранит открытые соединения по пользователям.
// У одного пользователя может быть несколько соединений (вкладки, устройства).
type WebSocketManager struct {
	clients    map[string]map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	mu         sync.RWMutex
}

func NewWebSocketManager() *WebSocketManager {
	return &WebSocketManager{
		clients:    make(map[string]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

// join регистрирует клиента; false если менеджер уже остановлен
func (manager *WebSocketManager) join(client *Client) bool {
	select {
	case manager.register <- client:
		return true
	case <-manager.done:
		return false
	}
}

func (manager *WebSocketManager) leave(client *Client) {
	select {
	case manager.unregister <- client:
	case <-manager.done:
	}
}

// Run обрабатывает подключения до отмены ctx, затем закрывает все соединения
func (manager *WebSocketManager) Run(ctx context.Context) {
	for {
		select {
		case client := <-manager.register:
			manager.mu.Lock()
			conns, ok := manager.clients[client.UserID]
			if !ok {
				conns = make(map[*Client]struct{})
				manager.clients[client.UserID] = conns
			}
			conns[client] = struct{}{}
			manager.mu.Unlock()
			logger.Debug("websocket client registered", "user_id", client.UserID, "connections", len(conns))

		case client := <-manager.unregister:
			manager.remove(client)

		case <-ctx.Done():
			close(manager.done)
			manager.mu.Lock()
			for userID, conns := range manager.clients {
				for client := range conns {
					close(client.Send)
				}
				delete(manager.clients, userID)
			}
			manager.mu.Unlock()
			return
		}
	}
}

func (manager *WebSocketManager) remove(client *Client) {
	manager.mu.Lock()
	defer manager.mu.Unlock()

	conns, ok := manager.clients[client.UserID]
	if !ok {
		return
	}
	if _, ok := conns[client]; !ok {
		return
	}
	close(client.Send)
	delete(conns, client)
	if len(conns) == 0 {
		delete(manager.clients, client.UserID)
	}
	logger.Debug("websocket client unregistered", "user_id", client.UserID)
}

// Publish отправляет событие во все соединения пользователя.
// Клиент с переполненной очередью отключается.
func (manager *WebSocketManager) Publish(userID string, event dto.Event) {
	manager.mu.RLock()
	defer manager.mu.RUnlock()

	for client := range manager.clients[userID] {
		select {
		case client.Send <- event:
		default:
			logger.Warn("websocket send queue is full, disconnecting", "user_id", userID)
			go manager.leave(client)
		}
	}
}

// GetClientCount возвращает количество открытых соединений
func (manager *WebSocketManager) GetClientCount() int {
	manager.mu.RLock()
	defer manager.mu.RUnlock()

	total := 0
	for _, conns := range manager.clients {
		total += len(conns)
	}
	return total
}

// IsClientConnected проверяет, есть ли у пользователя открытое соединение
func (manager *WebSocketManager) IsClientConnected(userID string) bool {
	manager.mu.RLock()
	defer manager.mu.RUnlock()
	return len(manager.clients[userID]) > 0
}
