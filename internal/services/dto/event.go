package dto

import "time"

// Event - уведомление, отправляемое в открытые WebSocket-соединения пользователя
type Event struct {
	ID      string         `json:"id,omitempty"`
	Type    string         `json:"type"`
	Subject string         `json:"subject"`
	Data    map[string]any `json:"data,omitempty"`
	SentAt  time.Time      `json:"sentAt"`
}
