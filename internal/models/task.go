package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Task struct {
	BaseModel
	Title             string          `gorm:"size:200;not null"`
	Description       string          `gorm:"type:text;not null"`
	Category          TaskCategory    `gorm:"type:varchar(32);not null;index"`
	Budget            decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Currency          string          `gorm:"type:varchar(3);not null"`
	Location          Location        `gorm:"embedded;embeddedPrefix:location_"`
	Deadline          *time.Time
	Status            TaskStatus `gorm:"type:varchar(20);not null;index"`
	ClientID          string     `gorm:"type:varchar(36);not null;index"`
	AssignedWorkerID  *string    `gorm:"type:varchar(36);index"`
	RequiredSkills    datatypes.JSON
	EstimatedDuration string `gorm:"size:100"`

	DeliveryStatus  DeliveryStatus `gorm:"type:varchar(20);not null"`
	DeliveryMessage string         `gorm:"type:text"`
	DeliveredAt     *time.Time

	// TimeExtension - JSON-документ TimeExtensionRequest или NULL, если запросов не было
	TimeExtension datatypes.JSON

	PaymentStatus PaymentStatus `gorm:"type:varchar(20);not null"`
	PaidAt        *time.Time
	CompletedAt   *time.Time
	CancelledAt   *time.Time

	// Version - счетчик оптимистической блокировки
	Version int64 `gorm:"not null;default:1"`
}

// TimeExtensionRequest - запрос исполнителя на перенос дедлайна
type TimeExtensionRequest struct {
	RequestedBy     string          `json:"requestedBy"`
	RequestedAt     time.Time       `json:"requestedAt"`
	Message         string          `json:"message"`
	NewDeadline     *time.Time      `json:"newDeadline,omitempty"`
	Status          ExtensionStatus `json:"status"`
	RespondedAt     *time.Time      `json:"respondedAt,omitempty"`
	ResponseMessage string          `json:"responseMessage,omitempty"`
}

// Extension возвращает текущий запрос на продление, если он когда-либо создавался
func (t *Task) Extension() (TimeExtensionRequest, bool) {
	var req TimeExtensionRequest
	if len(t.TimeExtension) == 0 || string(t.TimeExtension) == "null" {
		return req, false
	}
	if err := json.Unmarshal(t.TimeExtension, &req); err != nil {
		return TimeExtensionRequest{}, false
	}
	return req, true
}

// SetExtension сохраняет запрос на продление в JSON-колонку
func (t *Task) SetExtension(req TimeExtensionRequest) {
	data, _ := json.Marshal(req)
	t.TimeExtension = datatypes.JSON(data)
}

// HasPendingExtension - есть ли необработанный запрос на продление
func (t *Task) HasPendingExtension() bool {
	req, ok := t.Extension()
	return ok && req.Status == ExtensionStatusPending
}

func (t *Task) GetRequiredSkills() []string {
	return stringsFromJSON(t.RequiredSkills)
}

func (t *Task) SetRequiredSkills(skills []string) {
	t.RequiredSkills = stringsToJSON(skills)
}

// IsAssignedTo - назначена ли задача указанному исполнителю
func (t *Task) IsAssignedTo(workerID string) bool {
	return t.AssignedWorkerID != nil && *t.AssignedWorkerID == workerID
}
