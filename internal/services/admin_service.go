package services

import (
	"strings"

	"workhub_backend/internal/logger"
	"workhub_backend/internal/repositories"
	"workhub_backend/internal/services/dto"
	"workhub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AdminService interface {
	ListUsers(db *gorm.DB, query *dto.UserListQuery) (*dto.PaginatedResponse, error)
	UpdateUserStatus(db *gorm.DB, actor Actor, userID string, req *dto.UpdateUserStatusRequest) (*dto.UserDTO, error)
	ListTasks(db *gorm.DB, query *dto.TaskListQuery) (*dto.PaginatedResponse, error)
	Stats(db *gorm.DB) (*dto.PlatformStats, error)
	Reconcile(db *gorm.DB) (*dto.ReconcileResult, error)
}

type AdminServiceImpl struct {
	userRepo   repositories.UserRepository
	taskRepo   repositories.TaskRepository
	appRepo    repositories.ApplicationRepository
	reviewRepo repositories.ReviewRepository
	reviews    ReviewService
}

func NewAdminService(
	userRepo repositories.UserRepository,
	taskRepo repositories.TaskRepository,
	appRepo repositories.ApplicationRepository,
	reviewRepo repositories.ReviewRepository,
	reviews ReviewService,
) *AdminServiceImpl {
	return &AdminServiceImpl{
		userRepo:   userRepo,
		taskRepo:   taskRepo,
		appRepo:    appRepo,
		reviewRepo: reviewRepo,
		reviews:    reviews,
	}
}

func (s *AdminServiceImpl) ListUsers(db *gorm.DB, query *dto.UserListQuery) (*dto.PaginatedResponse, error) {
	if query == nil {
		query = &dto.UserListQuery{}
	}
	filter := repositories.UserFilter{
		Role:       query.Role,
		Status:     query.Status,
		Search:     strings.TrimSpace(query.Search),
		Pagination: pageOf(query.Page, query.PageSize),
	}

	users, total, err := s.userRepo.FindWithFilter(db, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	out := make([]dto.UserDTO, 0, len(users))
	for i := range users {
		out = append(out, dto.NewUserDTO(&users[i]))
	}
	return dto.NewPaginatedResponse(out, total, filter.Page, filter.PageSize), nil
}

// UpdateUserStatus блокирует или разблокирует пользователя; менять свой статус нельзя
func (s *AdminServiceImpl) UpdateUserStatus(db *gorm.DB, actor Actor, userID string, req *dto.UpdateUserStatusRequest) (*dto.UserDTO, error) {
	if actor.ID == userID {
		return nil, apperrors.ErrCannotModifySelf
	}
	if !req.Status.IsValid() {
		return nil, apperrors.NewValidationError("status", "Invalid user status")
	}

	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		return nil, handleProfileError(err)
	}
	from := user.Status
	if from == req.Status {
		resp := dto.NewUserDTO(user)
		return &resp, nil
	}
	if err := s.userRepo.UpdateStatus(db, userID, req.Status); err != nil {
		return nil, handleProfileError(err)
	}
	user.Status = req.Status

	logger.TransitionLog("user", user.ID, string(from), string(user.Status), actor.ID)
	resp := dto.NewUserDTO(user)
	return &resp, nil
}

// ListTasks - все задачи без фильтра статуса по умолчанию
func (s *AdminServiceImpl) ListTasks(db *gorm.DB, query *dto.TaskListQuery) (*dto.PaginatedResponse, error) {
	filter := taskFilter(query)
	tasks, total, err := s.taskRepo.FindWithFilter(db, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewPaginatedResponse(dto.NewTaskResponses(tasks), total, filter.Page, filter.PageSize), nil
}

func (s *AdminServiceImpl) Stats(db *gorm.DB) (*dto.PlatformStats, error) {
	users, err := s.userRepo.CountByRole(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	tasks, err := s.taskRepo.CountByStatus(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	apps, err := s.appRepo.CountByStatus(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	reviews, err := s.reviewRepo.GetPlatformReviewStats(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.PlatformStats{
		UsersByRole:          users,
		TasksByStatus:        tasks,
		ApplicationsByStatus: apps,
		Reviews:              reviews,
	}, nil
}

func (s *AdminServiceImpl) Reconcile(db *gorm.DB) (*dto.ReconcileResult, error) {
	return s.reviews.Reconcile(db)
}
