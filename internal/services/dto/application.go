package dto

import (
	"time"

	"workhub_backend/internal/models"

	"github.com/shopspring/decimal"
)

type ApplyRequest struct {
	CoverLetter    string           `json:"coverLetter" validate:"required"`
	ProposedBudget *decimal.Decimal `json:"proposedBudget,omitempty"`
	EstimatedTime  *string          `json:"estimatedTime,omitempty" validate:"omitempty,max=100"`
}

type ApplicationListQuery struct {
	Status   models.ApplicationStatus `form:"status"`
	Page     int                      `form:"page" validate:"omitempty,min=1"`
	PageSize int                      `form:"pageSize" validate:"omitempty,min=1,max=100"`
}

type ApplicationResponse struct {
	ID             string                   `json:"id"`
	TaskID         string                   `json:"taskId"`
	WorkerID       string                   `json:"workerId"`
	CoverLetter    string                   `json:"coverLetter"`
	ProposedBudget *decimal.Decimal         `json:"proposedBudget,omitempty"`
	EstimatedTime  *string                  `json:"estimatedTime,omitempty"`
	Status         models.ApplicationStatus `json:"status"`
	AppliedAt      time.Time                `json:"appliedAt"`
	RespondedAt    *time.Time               `json:"respondedAt,omitempty"`
}

// AcceptResponse - принятый отклик вместе с обновленной задачей
type AcceptResponse struct {
	Application *ApplicationResponse `json:"application"`
	Task        *TaskResponse        `json:"task"`
}

type RejectRemainingResponse struct {
	Rejected int64 `json:"rejected"`
}

func NewApplicationResponse(a *models.TaskApplication) *ApplicationResponse {
	resp := &ApplicationResponse{
		ID:            a.ID,
		TaskID:        a.TaskID,
		WorkerID:      a.WorkerID,
		CoverLetter:   a.CoverLetter,
		EstimatedTime: a.EstimatedTime,
		Status:        a.Status,
		AppliedAt:     a.AppliedAt,
		RespondedAt:   a.RespondedAt,
	}
	if a.ProposedBudget.Valid {
		budget := a.ProposedBudget.Decimal
		resp.ProposedBudget = &budget
	}
	return resp
}

func NewApplicationResponses(apps []models.TaskApplication) []*ApplicationResponse {
	out := make([]*ApplicationResponse, 0, len(apps))
	for i := range apps {
		out = append(out, NewApplicationResponse(&apps[i]))
	}
	return out
}
