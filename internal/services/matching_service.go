package services

import (
	"context"
	"sort"

	"workhub_backend/internal/ai"
	"workhub_backend/internal/auth"
	"workhub_backend/internal/logger"
	"workhub_backend/internal/models"
	"workhub_backend/internal/repositories"
	"workhub_backend/internal/services/dto"
	"workhub_backend/pkg/apperrors"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	defaultRecommendations = 10
	// recommendationPool - сколько последних открытых задач оценивается для рекомендаций
	recommendationPool = 100
)

type MatchingService interface {
	Score(db *gorm.DB, actor Actor, workerID, taskID string) (*models.MatchResult, error)
	RecommendTasks(db *gorm.DB, actor Actor, limit int) ([]*dto.TaskRecommendation, error)
	RankApplications(db *gorm.DB, actor Actor, taskID string) ([]*dto.ApplicationRanking, error)
}

type MatchingServiceImpl struct {
	scorer      ai.Scorer
	taskRepo    repositories.TaskRepository
	appRepo     repositories.ApplicationRepository
	profileRepo repositories.ProfileRepository
	concurrency int
}

func NewMatchingService(
	scorer ai.Scorer,
	taskRepo repositories.TaskRepository,
	appRepo repositories.ApplicationRepository,
	profileRepo repositories.ProfileRepository,
	concurrency int,
) *MatchingServiceImpl {
	if concurrency < 1 {
		concurrency = 4
	}
	return &MatchingServiceImpl{
		scorer:      scorer,
		taskRepo:    taskRepo,
		appRepo:     appRepo,
		profileRepo: profileRepo,
		concurrency: concurrency,
	}
}

// Score - оценка пары исполнитель/задача. Исполнитель может оценить только себя.
func (s *MatchingServiceImpl) Score(db *gorm.DB, actor Actor, workerID, taskID string) (*models.MatchResult, error) {
	if actor.Role == models.UserRoleWorker && actor.ID != workerID {
		return nil, apperrors.ErrInsufficientPermissions
	}

	task, err := s.taskRepo.FindByID(db, taskID)
	if err != nil {
		return nil, handleTaskError(err)
	}
	if actor.Role == models.UserRoleClient && task.ClientID != actor.ID {
		return nil, apperrors.ErrTaskNotOwner
	}
	profile, err := s.profileRepo.FindWorkerProfileByUserID(db, workerID)
	if err != nil {
		return nil, handleProfileError(err)
	}

	result := s.scorer.Score(ctxOf(db), profile, task)
	return &result, nil
}

// RecommendTasks подбирает открытые задачи для исполнителя, лучшие первыми
func (s *MatchingServiceImpl) RecommendTasks(db *gorm.DB, actor Actor, limit int) ([]*dto.TaskRecommendation, error) {
	if !auth.HasPermission(actor.Role, auth.PermMatchingRecommend) {
		return nil, apperrors.NewForbiddenError("Only workers receive task recommendations")
	}
	if limit <= 0 {
		limit = defaultRecommendations
	}

	profile, err := s.profileRepo.FindWorkerProfileByUserID(db, actor.ID)
	if err != nil {
		return nil, handleProfileError(err)
	}
	tasks, err := s.taskRepo.FindOpen(db, recommendationPool)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	ctx := ctxOf(db)
	results := s.scoreAll(ctx, len(tasks), func(i int) (*models.WorkerProfile, *models.Task) {
		return profile, &tasks[i]
	})

	out := make([]*dto.TaskRecommendation, 0, len(tasks))
	for i := range tasks {
		out = append(out, &dto.TaskRecommendation{
			Task:    dto.NewTaskResponse(&tasks[i]),
			Score:   results[i].Score,
			Reasons: results[i].Reasons,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if len(out) > limit {
		out = out[:limit]
	}

	logger.CtxDebug(ctx, "tasks recommended", "worker_id", actor.ID, "candidates", len(tasks), "returned", len(out))
	return out, nil
}

// RankApplications сортирует PENDING отклики задачи по совместимости
func (s *MatchingServiceImpl) RankApplications(db *gorm.DB, actor Actor, taskID string) ([]*dto.ApplicationRanking, error) {
	if !auth.HasPermission(actor.Role, auth.PermMatchingRank) {
		return nil, apperrors.ErrInsufficientPermissions
	}
	task, err := s.taskRepo.FindByID(db, taskID)
	if err != nil {
		return nil, handleTaskError(err)
	}
	if task.ClientID != actor.ID && !actor.IsAdmin() {
		return nil, apperrors.ErrTaskNotOwner
	}

	apps, err := s.appRepo.FindByTask(db, taskID, models.ApplicationStatusPending)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	workerIDs := make([]string, 0, len(apps))
	for _, a := range apps {
		workerIDs = append(workerIDs, a.WorkerID)
	}
	profiles, err := s.profileRepo.FindWorkerProfilesByUserIDs(db, workerIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	results := s.scoreAll(ctxOf(db), len(apps), func(i int) (*models.WorkerProfile, *models.Task) {
		profile, ok := profiles[apps[i].WorkerID]
		if !ok {
			// профиль удален: оцениваем по пустому, чтобы отклик остался в списке
			profile = &models.WorkerProfile{UserID: apps[i].WorkerID}
		}
		return profile, task
	})

	out := make([]*dto.ApplicationRanking, 0, len(apps))
	for i := range apps {
		out = append(out, &dto.ApplicationRanking{
			Application: dto.NewApplicationResponse(&apps[i]),
			Score:       results[i].Score,
			Reasons:     results[i].Reasons,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out, nil
}

// scoreAll оценивает n пар параллельно, не более s.concurrency одновременно.
func (s *MatchingServiceImpl) scoreAll(ctx context.Context, n int, pair func(i int) (*models.WorkerProfile, *models.Task)) []models.MatchResult {
	results := make([]models.MatchResult, n)

	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			profile, task := pair(i)
			results[i] = s.scorer.Score(ctx, profile, task)
			return nil
		})
	}
	_ = g.Wait()
	return results
}
