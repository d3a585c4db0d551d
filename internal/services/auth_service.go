package services

import (
	"context"
	"errors"
	"strings"

	"workhub_backend/internal/auth"
	"workhub_backend/internal/logger"
	"workhub_backend/internal/models"
	"workhub_backend/internal/repositories"
	"workhub_backend/internal/services/dto"
	"workhub_backend/internal/tokens"
	"workhub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Logout(ctx context.Context, claims *auth.Claims) error
	SeedAdmin(db *gorm.DB, email, password string) (bool, error)
}

type AuthServiceImpl struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
	jwt         *auth.JWTManager
	revoked     tokens.Store
	now         Clock
}

func NewAuthService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	jwt *auth.JWTManager,
	revoked tokens.Store,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		jwt:         jwt,
		revoked:     revoked,
		now:         systemClock,
	}
}

// Register - регистрация клиента или исполнителя вместе с пустым профилем роли
func (s *AuthServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if req.Role != models.UserRoleClient && req.Role != models.UserRoleWorker {
		return nil, apperrors.NewValidationError("role", "Invalid role")
	}
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.NewValidationError("password", err.Error())
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	user := &models.User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hash,
		Name:         strings.TrimSpace(req.Name),
		Role:         req.Role,
		Status:       models.UserStatusActive,
	}

	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	if err := s.createUserWithProfile(tx, user); err != nil {
		return nil, err
	}
	if err := commit(tx); err != nil {
		return nil, err
	}

	logger.CtxInfo(ctxOf(db), "user registered", "user_id", user.ID, "role", user.Role)
	return s.issue(user)
}

func (s *AuthServiceImpl) createUserWithProfile(tx *gorm.DB, user *models.User) error {
	if err := s.userRepo.Create(tx, user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return apperrors.ErrEmailAlreadyExists
		}
		return apperrors.InternalError(err)
	}

	switch user.Role {
	case models.UserRoleWorker:
		profile := &models.WorkerProfile{UserID: user.ID, Availability: models.AvailabilityAvailable}
		profile.SetSkills(nil)
		if err := s.profileRepo.CreateWorkerProfile(tx, profile); err != nil {
			return apperrors.InternalError(err)
		}
	case models.UserRoleClient:
		if err := s.profileRepo.CreateClientProfile(tx, &models.ClientProfile{UserID: user.ID}); err != nil {
			return apperrors.InternalError(err)
		}
	}
	return nil
}

// Login - вход по email и паролю; заблокированные и неактивные аккаунты не пускаются
func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(db, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}
	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if user.Status != models.UserStatusActive {
		return nil, apperrors.ErrUserInactive
	}

	now := s.now()
	if err := s.userRepo.UpdateLastLogin(db, user.ID, now); err != nil {
		logger.CtxWarn(ctxOf(db), "failed to update last login", "user_id", user.ID, "error", err)
	} else {
		user.LastLoginAt = &now
	}

	return s.issue(user)
}

// Logout отзывает токен до момента его истечения
func (s *AuthServiceImpl) Logout(ctx context.Context, claims *auth.Claims) error {
	if claims == nil || claims.TokenID() == "" {
		return apperrors.ErrInvalidToken
	}
	if err := s.revoked.Revoke(ctx, claims.TokenID(), claims.ExpiresAt()); err != nil {
		return apperrors.InternalError(err)
	}
	logger.CtxInfo(ctx, "user logged out", "user_id", claims.UserID)
	return nil
}

// SeedAdmin создает первого администратора, если пользователя с таким email еще нет.
// Возвращает true, если администратор был создан.
func (s *AuthServiceImpl) SeedAdmin(db *gorm.DB, email, password string) (bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return false, nil
	}

	if _, err := s.userRepo.FindByEmail(db, email); err == nil {
		return false, nil
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		return false, apperrors.InternalError(err)
	}

	if err := auth.ValidatePassword(password); err != nil {
		return false, apperrors.NewValidationError("password", err.Error())
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return false, apperrors.InternalError(err)
	}

	admin := &models.User{
		Email:        email,
		PasswordHash: hash,
		Name:         "Administrator",
		Role:         models.UserRoleAdmin,
		Status:       models.UserStatusActive,
	}
	if err := s.createUserWithProfile(db, admin); err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return false, nil
		}
		return false, err
	}

	logger.CtxInfo(ctxOf(db), "first admin created", "user_id", admin.ID, "email", admin.Email)
	return true, nil
}

func (s *AuthServiceImpl) issue(user *models.User) (*dto.AuthResponse, error) {
	token, claims, err := s.jwt.GenerateToken(user)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.AuthResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   claims.ExpiresAt(),
		User:        dto.NewUserDTO(user),
	}, nil
}
