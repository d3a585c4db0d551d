package services

import (
	"workhub_backend/internal/ai"
	"workhub_backend/internal/auth"
	"workhub_backend/internal/email"
	"workhub_backend/internal/imageprocessor"
	"workhub_backend/internal/repositories"
	"workhub_backend/internal/storage"
	"workhub_backend/internal/tokens"
)

// Repositories - набор репозиториев, общий для всех сервисов
type Repositories struct {
	Users         repositories.UserRepository
	Profiles      repositories.ProfileRepository
	Tasks         repositories.TaskRepository
	Applications  repositories.ApplicationRepository
	Reviews       repositories.ReviewRepository
	RevokedTokens repositories.RevokedTokenRepository
	Attachments   repositories.AttachmentRepository
	Notifications repositories.NotificationRepository
}

func NewRepositories() *Repositories {
	return &Repositories{
		Users:         repositories.NewUserRepository(),
		Profiles:      repositories.NewProfileRepository(),
		Tasks:         repositories.NewTaskRepository(),
		Applications:  repositories.NewApplicationRepository(),
		Reviews:       repositories.NewReviewRepository(),
		RevokedTokens: repositories.NewRevokedTokenRepository(),
		Attachments:   repositories.NewAttachmentRepository(),
		Notifications: repositories.NewNotificationRepository(),
	}
}

// Dependencies - внешние зависимости сервисов
type Dependencies struct {
	JWT              *auth.JWTManager
	RevokedTokens    tokens.Store
	Scorer           ai.Scorer
	Assistant        *ai.Assistant
	EmailProvider    email.Provider
	ScoreConcurrency int
	Storage          storage.Storage // обязателен для AttachmentService
	Images           *imageprocessor.Processor
	AttachmentLimits AttachmentLimits
	Publisher        Publisher
}

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService         AuthService
	ProfileService      ProfileService
	TaskService         TaskService
	ApplicationService  ApplicationService
	ReviewService       ReviewService
	MatchingService     MatchingService
	AssistantService    AssistantService
	AdminService        AdminService
	NotificationService NotificationService
	AttachmentService   AttachmentService
}

func NewServiceContainer(repos *Repositories, deps Dependencies) *ServiceContainer {
	provider := deps.EmailProvider
	if provider == nil {
		provider = email.NoopProvider{}
	}
	scorer := deps.Scorer
	if scorer == nil {
		scorer = ai.NewRuleScorer()
	}
	assistant := deps.Assistant
	if assistant == nil {
		assistant = ai.NewAssistant(nil)
	}

	images := deps.Images
	if images == nil {
		images = imageprocessor.NewProcessor(0)
	}

	notifications := NewNotificationService(provider, email.NewTemplateManager(), repos.Users, repos.Notifications, deps.Publisher)
	reviews := NewReviewService(repos.Reviews, repos.Tasks, repos.Profiles)

	return &ServiceContainer{
		AuthService:        NewAuthService(repos.Users, repos.Profiles, deps.JWT, deps.RevokedTokens),
		ProfileService:     NewProfileService(repos.Users, repos.Profiles),
		TaskService:        NewTaskService(repos.Tasks, repos.Profiles, notifications),
		ApplicationService: NewApplicationService(repos.Applications, repos.Tasks, notifications),
		ReviewService:      reviews,
		MatchingService: NewMatchingService(scorer, repos.Tasks, repos.Applications, repos.Profiles,
			deps.ScoreConcurrency),
		AssistantService:    NewAssistantService(assistant),
		AdminService:        NewAdminService(repos.Users, repos.Tasks, repos.Applications, repos.Reviews, reviews),
		NotificationService: notifications,
		AttachmentService:   NewAttachmentService(repos.Attachments, repos.Tasks, deps.Storage, images, deps.AttachmentLimits),
	}
}
