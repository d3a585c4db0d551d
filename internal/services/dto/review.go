package dto

import (
	"time"

	"workhub_backend/internal/models"
	"workhub_backend/internal/repositories"
)

type CreateReviewRequest struct {
	TaskID          string   `json:"taskId" validate:"required"`
	WorkerID        string   `json:"workerId" validate:"required"`
	Rating          int      `json:"rating" validate:"required,min=1,max=5"`
	Comment         string   `json:"comment" validate:"max=2000"`
	Skills          []string `json:"skills" validate:"max=20,dive,required,max=50"`
	Professionalism *int     `json:"professionalism,omitempty" validate:"omitempty,min=1,max=5"`
	Communication   *int     `json:"communication,omitempty" validate:"omitempty,min=1,max=5"`
	Quality         *int     `json:"quality,omitempty" validate:"omitempty,min=1,max=5"`
	Timeliness      *int     `json:"timeliness,omitempty" validate:"omitempty,min=1,max=5"`
	WouldHireAgain  *bool    `json:"wouldHireAgain,omitempty"`
}

type ReviewResponse struct {
	ID              string    `json:"id"`
	TaskID          string    `json:"taskId"`
	WorkerID        string    `json:"workerId"`
	ClientID        string    `json:"clientId"`
	Rating          int       `json:"rating"`
	Comment         string    `json:"comment,omitempty"`
	Skills          []string  `json:"skills"`
	Professionalism *int      `json:"professionalism,omitempty"`
	Communication   *int      `json:"communication,omitempty"`
	Quality         *int      `json:"quality,omitempty"`
	Timeliness      *int      `json:"timeliness,omitempty"`
	WouldHireAgain  *bool     `json:"wouldHireAgain,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// WorkerRatingResponse - агрегат профиля и сводка, посчитанная по отзывам
type WorkerRatingResponse struct {
	WorkerID       string                      `json:"workerId"`
	RatingAverage  float64                     `json:"ratingAverage"`
	RatingCount    int                         `json:"ratingCount"`
	CompletedTasks int                         `json:"completedTasks"`
	Summary        *repositories.RatingSummary `json:"summary"`
}

func NewReviewResponse(r *models.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:              r.ID,
		TaskID:          r.TaskID,
		WorkerID:        r.WorkerID,
		ClientID:        r.ClientID,
		Rating:          r.Rating,
		Comment:         r.Comment,
		Skills:          r.GetSkills(),
		Professionalism: r.Professionalism,
		Communication:   r.Communication,
		Quality:         r.Quality,
		Timeliness:      r.Timeliness,
		WouldHireAgain:  r.WouldHireAgain,
		CreatedAt:       r.CreatedAt,
	}
}

func NewReviewResponses(reviews []models.Review) []*ReviewResponse {
	out := make([]*ReviewResponse, 0, len(reviews))
	for i := range reviews {
		out = append(out, NewReviewResponse(&reviews[i]))
	}
	return out
}
