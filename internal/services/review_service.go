package services

import (
	"errors"
	"math"
	"strings"

	"workhub_backend/internal/auth"
	"workhub_backend/internal/lifecycle"
	"workhub_backend/internal/logger"
	"workhub_backend/internal/models"
	"workhub_backend/internal/repositories"
	"workhub_backend/internal/services/dto"
	"workhub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// ratingAttempts - сколько раз повторяется запись отзыва при конфликте агрегата
const ratingAttempts = 3

type ReviewService interface {
	Create(db *gorm.DB, actor Actor, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error)
	ListByWorker(db *gorm.DB, workerID string, page, pageSize int) (*dto.PaginatedResponse, error)
	ListByTask(db *gorm.DB, taskID string) ([]*dto.ReviewResponse, error)
	GetWorkerRating(db *gorm.DB, workerID string) (*dto.WorkerRatingResponse, error)
	Reconcile(db *gorm.DB) (*dto.ReconcileResult, error)
}

type ReviewServiceImpl struct {
	reviewRepo  repositories.ReviewRepository
	taskRepo    repositories.TaskRepository
	profileRepo repositories.ProfileRepository
}

func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	taskRepo repositories.TaskRepository,
	profileRepo repositories.ProfileRepository,
) *ReviewServiceImpl {
	return &ReviewServiceImpl{
		reviewRepo:  reviewRepo,
		taskRepo:    taskRepo,
		profileRepo: profileRepo,
	}
}

// Create сохраняет отзыв и обновляет агрегат рейтинга исполнителя одной транзакцией
func (s *ReviewServiceImpl) Create(db *gorm.DB, actor Actor, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	if !auth.HasPermission(actor.Role, auth.PermReviewCreate) {
		return nil, apperrors.ErrReviewNotAllowed
	}
	subs := lifecycle.SubRatings{
		Professionalism: req.Professionalism,
		Communication:   req.Communication,
		Quality:         req.Quality,
		Timeliness:      req.Timeliness,
	}
	if err := lifecycle.ValidateReview(req.Rating, subs); err != nil {
		return nil, lifecycleError("review", err)
	}

	var review *models.Review
	var err error
	for attempt := 1; attempt <= ratingAttempts; attempt++ {
		review, err = s.create(db, actor, req, subs)
		if !errors.Is(err, repositories.ErrRatingConflict) {
			break
		}
		logger.CtxWarn(ctxOf(db), "rating aggregate conflict, retrying", "worker_id", req.WorkerID, "attempt", attempt)
	}
	if err != nil {
		if errors.Is(err, repositories.ErrRatingConflict) {
			return nil, handleProfileError(err)
		}
		return nil, err
	}

	logger.CtxInfo(ctxOf(db), "review created", "review_id", review.ID, "task_id", review.TaskID, "worker_id", review.WorkerID, "rating", review.Rating)
	return dto.NewReviewResponse(review), nil
}

func (s *ReviewServiceImpl) create(db *gorm.DB, actor Actor, req *dto.CreateReviewRequest, subs lifecycle.SubRatings) (*models.Review, error) {
	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	task, err := s.taskRepo.FindByID(tx, req.TaskID)
	if err != nil {
		return nil, handleTaskError(err)
	}
	if task.ClientID != actor.ID {
		return nil, apperrors.ErrReviewNotAllowed
	}
	if err := lifecycle.CanReview(task, actor.ID, req.WorkerID); err != nil {
		return nil, lifecycleError("review", err)
	}

	exists, err := s.reviewRepo.ExistsForTaskAndWorker(tx, req.TaskID, req.WorkerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrReviewAlreadyExists
	}

	profile, err := s.profileRepo.FindWorkerProfileByUserID(tx, req.WorkerID)
	if err != nil {
		return nil, handleProfileError(err)
	}

	review := &models.Review{
		TaskID:          req.TaskID,
		WorkerID:        req.WorkerID,
		ClientID:        actor.ID,
		Rating:          req.Rating,
		Comment:         strings.TrimSpace(req.Comment),
		Professionalism: subs.Professionalism,
		Communication:   subs.Communication,
		Quality:         subs.Quality,
		Timeliness:      subs.Timeliness,
		WouldHireAgain:  req.WouldHireAgain,
	}
	review.SetSkills(normalizeSkills(req.Skills))
	if err := s.reviewRepo.Create(tx, review); err != nil {
		return nil, handleReviewError(err)
	}

	avg, count := lifecycle.NextRating(profile.RatingAverage, profile.RatingCount, req.Rating)
	if err := s.profileRepo.ApplyRating(tx, req.WorkerID, profile.RatingCount, avg, count); err != nil {
		if errors.Is(err, repositories.ErrRatingConflict) {
			return nil, err
		}
		return nil, handleProfileError(err)
	}

	if err := commit(tx); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewServiceImpl) ListByWorker(db *gorm.DB, workerID string, page, pageSize int) (*dto.PaginatedResponse, error) {
	p := pageOf(page, pageSize)
	reviews, total, err := s.reviewRepo.FindByWorker(db, workerID, p)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewPaginatedResponse(dto.NewReviewResponses(reviews), total, p.Page, p.PageSize), nil
}

func (s *ReviewServiceImpl) ListByTask(db *gorm.DB, taskID string) ([]*dto.ReviewResponse, error) {
	if _, err := s.taskRepo.FindByID(db, taskID); err != nil {
		return nil, handleTaskError(err)
	}
	reviews, err := s.reviewRepo.FindByTask(db, taskID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewReviewResponses(reviews), nil
}

func (s *ReviewServiceImpl) GetWorkerRating(db *gorm.DB, workerID string) (*dto.WorkerRatingResponse, error) {
	profile, err := s.profileRepo.FindWorkerProfileByUserID(db, workerID)
	if err != nil {
		return nil, handleProfileError(err)
	}
	summary, err := s.reviewRepo.GetRatingSummary(db, workerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.WorkerRatingResponse{
		WorkerID:       workerID,
		RatingAverage:  profile.RatingAverage,
		RatingCount:    profile.RatingCount,
		CompletedTasks: profile.CompletedTasks,
		Summary:        summary,
	}, nil
}

// Reconcile пересчитывает агрегаты рейтинга по таблице reviews и исправляет расхождения
func (s *ReviewServiceImpl) Reconcile(db *gorm.DB) (*dto.ReconcileResult, error) {
	aggregates, err := s.reviewRepo.AggregateByWorker(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	profiles, err := s.profileRepo.ListWorkerRatings(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := &dto.ReconcileResult{ProfilesChecked: len(profiles)}
	for _, p := range profiles {
		want := aggregates[p.UserID]
		if p.RatingCount == want.Count && math.Abs(p.RatingAverage-want.Average) < 1e-9 {
			continue
		}
		if err := s.profileRepo.SetRating(db, p.UserID, want.Average, want.Count); err != nil {
			return result, apperrors.InternalError(err)
		}
		result.ProfilesFixed++
		logger.CtxWarn(ctxOf(db), "worker rating drift fixed",
			"worker_id", p.UserID,
			"stored_average", p.RatingAverage, "stored_count", p.RatingCount,
			"average", want.Average, "count", want.Count)
	}
	return result, nil
}
