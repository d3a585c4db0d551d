package dto

import (
	"workhub_backend/internal/models"
	"workhub_backend/internal/repositories"
)

type UserListQuery struct {
	Role     models.UserRole   `form:"role" validate:"omitempty,is-user-role"`
	Status   models.UserStatus `form:"status" validate:"omitempty,is-user-status"`
	Search   string            `form:"search" validate:"max=100"`
	Page     int               `form:"page" validate:"omitempty,min=1"`
	PageSize int               `form:"pageSize" validate:"omitempty,min=1,max=100"`
}

type UpdateUserStatusRequest struct {
	Status models.UserStatus `json:"status" validate:"required,is-user-status"`
}

type PlatformStats struct {
	UsersByRole          map[models.UserRole]int64          `json:"usersByRole"`
	TasksByStatus        map[models.TaskStatus]int64        `json:"tasksByStatus"`
	ApplicationsByStatus map[models.ApplicationStatus]int64 `json:"applicationsByStatus"`
	Reviews              *repositories.PlatformReviewStats  `json:"reviews"`
}

// ReconcileResult - итог сверки рейтингов с таблицей отзывов
type ReconcileResult struct {
	ProfilesChecked int `json:"profilesChecked"`
	ProfilesFixed   int `json:"profilesFixed"`
}
