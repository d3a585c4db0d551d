package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TaskApplication - отклик исполнителя на задачу. Пара (TaskID, WorkerID) уникальна.
type TaskApplication struct {
	BaseModel
	TaskID         string              `gorm:"type:varchar(36);not null;uniqueIndex:idx_task_applications_task_worker"`
	WorkerID       string              `gorm:"type:varchar(36);not null;uniqueIndex:idx_task_applications_task_worker;index:idx_task_applications_worker"`
	CoverLetter    string              `gorm:"type:text;not null"`
	ProposedBudget decimal.NullDecimal `gorm:"type:decimal(12,2)"`
	EstimatedTime  *string             `gorm:"size:100"`
	Status         ApplicationStatus   `gorm:"type:varchar(20);not null;index"`
	AppliedAt      time.Time           `gorm:"not null"`
	RespondedAt    *time.Time
}
