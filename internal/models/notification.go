package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Notification - уведомление в ленте пользователя (дублирует письмо и WebSocket-событие)
type Notification struct {
	BaseModel
	UserID string `gorm:"type:varchar(36);not null;index:idx_notifications_user_read,priority:1"`
	Type   string `gorm:"size:50;not null"` // имя шаблона: task_delivered, task_paid, ...
	Title  string `gorm:"size:255;not null"`
	Data   datatypes.JSON
	IsRead bool `gorm:"not null;default:false;index:idx_notifications_user_read,priority:2"`
	ReadAt *time.Time
}

func (n *Notification) GetData() map[string]any {
	out := map[string]any{}
	if len(n.Data) > 0 {
		_ = json.Unmarshal(n.Data, &out)
	}
	return out
}

func (n *Notification) SetData(data map[string]any) {
	if len(data) == 0 {
		n.Data = datatypes.JSON("{}")
		return
	}
	raw, err := json.Marshal(data)
	if err != nil {
		raw = []byte("{}")
	}
	n.Data = datatypes.JSON(raw)
}
