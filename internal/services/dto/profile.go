package dto

import (
	"workhub_backend/internal/models"

	"github.com/shopspring/decimal"
)

type UpdateWorkerProfileRequest struct {
	Skills       []string             `json:"skills,omitempty" validate:"omitempty,max=30,dive,required,max=50"`
	Bio          *string              `json:"bio,omitempty" validate:"omitempty,max=2000"`
	Experience   *int                 `json:"experience,omitempty" validate:"omitempty,min=0,max=80"`
	HourlyRate   *decimal.Decimal     `json:"hourlyRate,omitempty"`
	City         *string              `json:"city,omitempty" validate:"omitempty,max=100"`
	District     *string              `json:"district,omitempty" validate:"omitempty,max=100"`
	Availability *models.Availability `json:"availability,omitempty" validate:"omitempty,is-availability"`
}

type UpdateClientProfileRequest struct {
	CompanyName *string `json:"companyName,omitempty" validate:"omitempty,max=200"`
	Phone       *string `json:"phone,omitempty" validate:"omitempty,max=50"`
	City        *string `json:"city,omitempty" validate:"omitempty,max=100"`
}

type WorkerProfileResponse struct {
	UserID         string              `json:"userId"`
	Skills         []string            `json:"skills"`
	Bio            string              `json:"bio,omitempty"`
	Experience     int                 `json:"experience"`
	HourlyRate     decimal.Decimal     `json:"hourlyRate"`
	City           string              `json:"city,omitempty"`
	District       string              `json:"district,omitempty"`
	Availability   models.Availability `json:"availability"`
	RatingAverage  float64             `json:"ratingAverage"`
	RatingCount    int                 `json:"ratingCount"`
	CompletedTasks int                 `json:"completedTasks"`
}

type ClientProfileResponse struct {
	UserID      string `json:"userId"`
	CompanyName string `json:"companyName,omitempty"`
	Phone       string `json:"phone,omitempty"`
	City        string `json:"city,omitempty"`
	TasksPosted int    `json:"tasksPosted"`
}

type ProfileResponse struct {
	User   UserDTO                `json:"user"`
	Worker *WorkerProfileResponse `json:"worker,omitempty"`
	Client *ClientProfileResponse `json:"client,omitempty"`
}

func NewWorkerProfileResponse(p *models.WorkerProfile) *WorkerProfileResponse {
	return &WorkerProfileResponse{
		UserID:         p.UserID,
		Skills:         p.GetSkills(),
		Bio:            p.Bio,
		Experience:     p.Experience,
		HourlyRate:     p.HourlyRate,
		City:           p.City,
		District:       p.District,
		Availability:   p.Availability,
		RatingAverage:  p.RatingAverage,
		RatingCount:    p.RatingCount,
		CompletedTasks: p.CompletedTasks,
	}
}

func NewClientProfileResponse(p *models.ClientProfile) *ClientProfileResponse {
	return &ClientProfileResponse{
		UserID:      p.UserID,
		CompanyName: p.CompanyName,
		Phone:       p.Phone,
		City:        p.City,
		TasksPosted: p.TasksPosted,
	}
}
