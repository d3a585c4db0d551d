package dto

import (
	"time"

	"workhub_backend/internal/models"

	"github.com/shopspring/decimal"
)

type LocationDTO struct {
	Address  string `json:"address" validate:"required,max=255"`
	City     string `json:"city" validate:"required,max=100"`
	District string `json:"district" validate:"required,max=100"`
}

// CreateTaskRequest - бюджет и длины полей дополнительно проверяет lifecycle.ValidateNewTask
type CreateTaskRequest struct {
	Title             string              `json:"title" validate:"required,max=200"`
	Description       string              `json:"description" validate:"required,max=5000"`
	Category          models.TaskCategory `json:"category" validate:"required,is-task-category"`
	Budget            decimal.Decimal     `json:"budget"`
	Currency          string              `json:"currency" validate:"omitempty,is-currency"`
	Location          LocationDTO         `json:"location"`
	Deadline          *time.Time          `json:"deadline,omitempty"`
	RequiredSkills    []string            `json:"requiredSkills" validate:"max=20,dive,required,max=50"`
	EstimatedDuration string              `json:"estimatedDuration" validate:"max=100"`
}

// UpdateTaskRequest - частичное обновление, только пока задача OPEN
type UpdateTaskRequest struct {
	Title             *string              `json:"title,omitempty" validate:"omitempty,max=200"`
	Description       *string              `json:"description,omitempty" validate:"omitempty,max=5000"`
	Category          *models.TaskCategory `json:"category,omitempty" validate:"omitempty,is-task-category"`
	Budget            *decimal.Decimal     `json:"budget,omitempty"`
	Location          *LocationDTO         `json:"location,omitempty"`
	Deadline          *time.Time           `json:"deadline,omitempty"`
	RequiredSkills    []string             `json:"requiredSkills,omitempty" validate:"omitempty,max=20,dive,required,max=50"`
	EstimatedDuration *string              `json:"estimatedDuration,omitempty" validate:"omitempty,max=100"`
}

type DeliverRequest struct {
	Message string `json:"message" validate:"max=5000"`
}

type ExtensionRequest struct {
	Message     string     `json:"message" validate:"required,max=1000"`
	NewDeadline *time.Time `json:"newDeadline,omitempty"`
}

type ExtensionDecisionRequest struct {
	Approved        *bool  `json:"approved" validate:"required"`
	ResponseMessage string `json:"responseMessage" validate:"max=1000"`
}

// TaskListQuery - фильтры списка задач (query-параметры)
type TaskListQuery struct {
	Status   models.TaskStatus   `form:"status"`
	Category models.TaskCategory `form:"category" validate:"omitempty,is-task-category"`
	City     string              `form:"city"`
	Page     int                 `form:"page" validate:"omitempty,min=1"`
	PageSize int                 `form:"pageSize" validate:"omitempty,min=1,max=100"`
}

type ExtensionDTO struct {
	RequestedBy     string                 `json:"requestedBy"`
	RequestedAt     time.Time              `json:"requestedAt"`
	Message         string                 `json:"message"`
	NewDeadline     *time.Time             `json:"newDeadline,omitempty"`
	Status          models.ExtensionStatus `json:"status"`
	RespondedAt     *time.Time             `json:"respondedAt,omitempty"`
	ResponseMessage string                 `json:"responseMessage,omitempty"`
}

type TaskResponse struct {
	ID                   string                `json:"id"`
	Title                string                `json:"title"`
	Description          string                `json:"description"`
	Category             models.TaskCategory   `json:"category"`
	Budget               decimal.Decimal       `json:"budget"`
	Currency             string                `json:"currency"`
	Location             LocationDTO           `json:"location"`
	Deadline             *time.Time            `json:"deadline,omitempty"`
	Status               models.TaskStatus     `json:"status"`
	ClientID             string                `json:"clientId"`
	AssignedWorkerID     *string               `json:"assignedWorkerId,omitempty"`
	RequiredSkills       []string              `json:"requiredSkills"`
	EstimatedDuration    string                `json:"estimatedDuration,omitempty"`
	DeliveryStatus       models.DeliveryStatus `json:"deliveryStatus"`
	DeliveryMessage      string                `json:"deliveryMessage,omitempty"`
	DeliveredAt          *time.Time            `json:"deliveredAt,omitempty"`
	TimeExtensionRequest *ExtensionDTO         `json:"timeExtensionRequest,omitempty"`
	PaymentStatus        models.PaymentStatus  `json:"paymentStatus"`
	PaidAt               *time.Time            `json:"paidAt,omitempty"`
	CompletedAt          *time.Time            `json:"completedAt,omitempty"`
	CancelledAt          *time.Time            `json:"cancelledAt,omitempty"`
	Version              int64                 `json:"version"`
	CreatedAt            time.Time             `json:"createdAt"`
	UpdatedAt            time.Time             `json:"updatedAt"`
}

func NewTaskResponse(t *models.Task) *TaskResponse {
	resp := &TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Category:    t.Category,
		Budget:      t.Budget,
		Currency:    t.Currency,
		Location: LocationDTO{
			Address:  t.Location.Address,
			City:     t.Location.City,
			District: t.Location.District,
		},
		Deadline:          t.Deadline,
		Status:            t.Status,
		ClientID:          t.ClientID,
		AssignedWorkerID:  t.AssignedWorkerID,
		RequiredSkills:    t.GetRequiredSkills(),
		EstimatedDuration: t.EstimatedDuration,
		DeliveryStatus:    t.DeliveryStatus,
		DeliveryMessage:   t.DeliveryMessage,
		DeliveredAt:       t.DeliveredAt,
		PaymentStatus:     t.PaymentStatus,
		PaidAt:            t.PaidAt,
		CompletedAt:       t.CompletedAt,
		CancelledAt:       t.CancelledAt,
		Version:           t.Version,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}
	if ext, ok := t.Extension(); ok {
		resp.TimeExtensionRequest = NewExtensionDTO(ext)
	}
	return resp
}

func NewExtensionDTO(ext models.TimeExtensionRequest) *ExtensionDTO {
	return &ExtensionDTO{
		RequestedBy:     ext.RequestedBy,
		RequestedAt:     ext.RequestedAt,
		Message:         ext.Message,
		NewDeadline:     ext.NewDeadline,
		Status:          ext.Status,
		RespondedAt:     ext.RespondedAt,
		ResponseMessage: ext.ResponseMessage,
	}
}

func NewTaskResponses(tasks []models.Task) []*TaskResponse {
	out := make([]*TaskResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, NewTaskResponse(&tasks[i]))
	}
	return out
}
