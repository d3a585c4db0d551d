package handlers

import (
	"workhub_backend/internal/services"
	"workhub_backend/internal/validator"
)

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	ProfileHandler      *ProfileHandler
	TaskHandler         *TaskHandler
	ApplicationHandler  *ApplicationHandler
	ReviewHandler       *ReviewHandler
	MatchingHandler     *MatchingHandler
	AdminHandler        *AdminHandler
	AttachmentHandler   *AttachmentHandler
	NotificationHandler *NotificationHandler
}

func NewAppHandlers(svc *services.ServiceContainer, v *validator.Validator, maxUploadBytes int64) *AppHandlers {
	base := NewBaseHandler(v)
	return &AppHandlers{
		AuthHandler:         NewAuthHandler(base, svc.AuthService),
		ProfileHandler:      NewProfileHandler(base, svc.ProfileService),
		TaskHandler:         NewTaskHandler(base, svc.TaskService),
		ApplicationHandler:  NewApplicationHandler(base, svc.ApplicationService),
		ReviewHandler:       NewReviewHandler(base, svc.ReviewService),
		MatchingHandler:     NewMatchingHandler(base, svc.MatchingService, svc.AssistantService),
		AdminHandler:        NewAdminHandler(base, svc.AdminService, svc.TaskService),
		AttachmentHandler:   NewAttachmentHandler(base, svc.AttachmentService, maxUploadBytes),
		NotificationHandler: NewNotificationHandler(base, svc.NotificationService),
	}
}
