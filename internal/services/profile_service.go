package services

import (
	"strings"

	"workhub_backend/internal/logger"
	"workhub_backend/internal/models"
	"workhub_backend/internal/repositories"
	"workhub_backend/internal/services/dto"
	"workhub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ProfileService interface {
	GetMe(db *gorm.DB, actor Actor) (*dto.ProfileResponse, error)
	GetWorkerProfile(db *gorm.DB, workerID string) (*dto.WorkerProfileResponse, error)
	UpdateWorkerProfile(db *gorm.DB, actor Actor, req *dto.UpdateWorkerProfileRequest) (*dto.WorkerProfileResponse, error)
	UpdateClientProfile(db *gorm.DB, actor Actor, req *dto.UpdateClientProfileRequest) (*dto.ClientProfileResponse, error)
}

type ProfileServiceImpl struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
}

func NewProfileService(userRepo repositories.UserRepository, profileRepo repositories.ProfileRepository) *ProfileServiceImpl {
	return &ProfileServiceImpl{userRepo: userRepo, profileRepo: profileRepo}
}

// GetMe - текущий пользователь и профиль его роли
func (s *ProfileServiceImpl) GetMe(db *gorm.DB, actor Actor) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindByID(db, actor.ID)
	if err != nil {
		return nil, handleProfileError(err)
	}
	resp := &dto.ProfileResponse{User: dto.NewUserDTO(user)}

	switch user.Role {
	case models.UserRoleWorker:
		profile, err := s.profileRepo.FindWorkerProfileByUserID(db, user.ID)
		if err != nil {
			return nil, handleProfileError(err)
		}
		resp.Worker = dto.NewWorkerProfileResponse(profile)
	case models.UserRoleClient:
		profile, err := s.profileRepo.FindClientProfileByUserID(db, user.ID)
		if err != nil {
			return nil, handleProfileError(err)
		}
		resp.Client = dto.NewClientProfileResponse(profile)
	}
	return resp, nil
}

func (s *ProfileServiceImpl) GetWorkerProfile(db *gorm.DB, workerID string) (*dto.WorkerProfileResponse, error) {
	profile, err := s.profileRepo.FindWorkerProfileByUserID(db, workerID)
	if err != nil {
		return nil, handleProfileError(err)
	}
	return dto.NewWorkerProfileResponse(profile), nil
}

// UpdateWorkerProfile меняет только переданные поля; рейтинг и счетчики не редактируются
func (s *ProfileServiceImpl) UpdateWorkerProfile(db *gorm.DB, actor Actor, req *dto.UpdateWorkerProfileRequest) (*dto.WorkerProfileResponse, error) {
	if actor.Role != models.UserRoleWorker {
		return nil, apperrors.NewForbiddenError("Only workers have a worker profile")
	}
	profile, err := s.profileRepo.FindWorkerProfileByUserID(db, actor.ID)
	if err != nil {
		return nil, handleProfileError(err)
	}

	if req.Skills != nil {
		profile.SetSkills(normalizeSkills(req.Skills))
	}
	if req.Bio != nil {
		profile.Bio = strings.TrimSpace(*req.Bio)
	}
	if req.Experience != nil {
		profile.Experience = *req.Experience
	}
	if req.HourlyRate != nil {
		if req.HourlyRate.IsNegative() {
			return nil, apperrors.NewValidationError("hourlyRate", "Value must be greater than or equal to 0")
		}
		profile.HourlyRate = *req.HourlyRate
	}
	if req.City != nil {
		profile.City = strings.TrimSpace(*req.City)
	}
	if req.District != nil {
		profile.District = strings.TrimSpace(*req.District)
	}
	if req.Availability != nil {
		profile.Availability = *req.Availability
	}

	if err := s.profileRepo.UpdateWorkerProfile(db, profile); err != nil {
		return nil, handleProfileError(err)
	}
	logger.CtxInfo(ctxOf(db), "worker profile updated", "user_id", actor.ID)
	return dto.NewWorkerProfileResponse(profile), nil
}

func (s *ProfileServiceImpl) UpdateClientProfile(db *gorm.DB, actor Actor, req *dto.UpdateClientProfileRequest) (*dto.ClientProfileResponse, error) {
	if actor.Role != models.UserRoleClient {
		return nil, apperrors.NewForbiddenError("Only clients have a client profile")
	}
	profile, err := s.profileRepo.FindClientProfileByUserID(db, actor.ID)
	if err != nil {
		return nil, handleProfileError(err)
	}

	if req.CompanyName != nil {
		profile.CompanyName = strings.TrimSpace(*req.CompanyName)
	}
	if req.Phone != nil {
		profile.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.City != nil {
		profile.City = strings.TrimSpace(*req.City)
	}

	if err := s.profileRepo.UpdateClientProfile(db, profile); err != nil {
		return nil, handleProfileError(err)
	}
	return dto.NewClientProfileResponse(profile), nil
}
