package repositories

import (
	"errors"
	"time"

	"workhub_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrReviewNotFound      = errors.New("review not found")
	ErrReviewAlreadyExists = errors.New("review for this task and worker already exists")
)

type ReviewRepository interface {
	Create(db *gorm.DB, review *models.Review) error
	ExistsForTaskAndWorker(db *gorm.DB, taskID, workerID string) (bool, error)
	FindByWorker(db *gorm.DB, workerID string, p Pagination) ([]models.Review, int64, error)
	FindByTask(db *gorm.DB, taskID string) ([]models.Review, error)
	GetRatingSummary(db *gorm.DB, workerID string) (*RatingSummary, error)
	AggregateByWorker(db *gorm.DB) (map[string]WorkerRatingAggregate, error)
	GetPlatformReviewStats(db *gorm.DB) (*PlatformReviewStats, error)
}

// RatingSummary - сводка по отзывам исполнителя, считается по таблице reviews
type RatingSummary struct {
	AverageRating      float64       `json:"averageRating"`
	TotalReviews       int64         `json:"totalReviews"`
	RatingDistribution map[int]int64 `json:"ratingDistribution"`
	WouldHireAgainRate float64       `json:"wouldHireAgainRate"`
	RecentReviews      int64         `json:"recentReviews"` // за 30 дней
}

// WorkerRatingAggregate - агрегат рейтинга, пересчитанный из отзывов
type WorkerRatingAggregate struct {
	WorkerID string
	Average  float64
	Count    int
}

type PlatformReviewStats struct {
	TotalReviews    int64   `json:"totalReviews"`
	AverageRating   float64 `json:"averageRating"`
	PositiveReviews int64   `json:"positiveReviews"` // 4-5 звезд
	RecentReviews   int64   `json:"recentReviews"`
}

type reviewRepository struct{}

func NewReviewRepository() ReviewRepository {
	return &reviewRepository{}
}

func (r *reviewRepository) Create(db *gorm.DB, review *models.Review) error {
	if err := db.Create(review).Error; err != nil {
		if isDuplicate(err) {
			return ErrReviewAlreadyExists
		}
		return err
	}
	return nil
}

func (r *reviewRepository) ExistsForTaskAndWorker(db *gorm.DB, taskID, workerID string) (bool, error) {
	var count int64
	err := db.Model(&models.Review{}).Where("task_id = ? AND worker_id = ?", taskID, workerID).Count(&count).Error
	return count > 0, err
}

func (r *reviewRepository) FindByWorker(db *gorm.DB, workerID string, p Pagination) ([]models.Review, int64, error) {
	query := db.Model(&models.Review{}).Where("worker_id = ?", workerID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reviews []models.Review
	err := query.Scopes(paginate(p)).Order("created_at DESC").Find(&reviews).Error
	return reviews, total, err
}

func (r *reviewRepository) FindByTask(db *gorm.DB, taskID string) ([]models.Review, error) {
	var reviews []models.Review
	err := db.Where("task_id = ?", taskID).Order("created_at DESC").Find(&reviews).Error
	return reviews, err
}

func (r *reviewRepository) GetRatingSummary(db *gorm.DB, workerID string) (*RatingSummary, error) {
	summary := &RatingSummary{RatingDistribution: make(map[int]int64, 5)}
	for i := 1; i <= 5; i++ {
		summary.RatingDistribution[i] = 0
	}

	var rows []struct {
		Rating int
		Count  int64
	}
	if err := db.Model(&models.Review{}).Where("worker_id = ?", workerID).
		Select("rating, COUNT(*) AS count").Group("rating").Scan(&rows).Error; err != nil {
		return nil, err
	}

	var sum int64
	for _, row := range rows {
		summary.RatingDistribution[row.Rating] = row.Count
		summary.TotalReviews += row.Count
		sum += int64(row.Rating) * row.Count
	}
	if summary.TotalReviews == 0 {
		return summary, nil
	}
	summary.AverageRating = float64(sum) / float64(summary.TotalReviews)

	var answered, hireAgain int64
	if err := db.Model(&models.Review{}).Where("worker_id = ? AND would_hire_again IS NOT NULL", workerID).
		Count(&answered).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Review{}).Where("worker_id = ? AND would_hire_again = ?", workerID, true).
		Count(&hireAgain).Error; err != nil {
		return nil, err
	}
	if answered > 0 {
		summary.WouldHireAgainRate = float64(hireAgain) / float64(answered)
	}

	monthAgo := time.Now().AddDate(0, -1, 0)
	if err := db.Model(&models.Review{}).Where("worker_id = ? AND created_at >= ?", workerID, monthAgo).
		Count(&summary.RecentReviews).Error; err != nil {
		return nil, err
	}
	return summary, nil
}

func (r *reviewRepository) AggregateByWorker(db *gorm.DB) (map[string]WorkerRatingAggregate, error) {
	var rows []struct {
		WorkerID string
		Total    int64
		Count    int64
	}
	if err := db.Model(&models.Review{}).
		Select("worker_id, SUM(rating) AS total, COUNT(*) AS count").
		Group("worker_id").Scan(&rows).Error; err != nil {
		return nil, err
	}

	result := make(map[string]WorkerRatingAggregate, len(rows))
	for _, row := range rows {
		if row.Count == 0 {
			continue
		}
		result[row.WorkerID] = WorkerRatingAggregate{
			WorkerID: row.WorkerID,
			Average:  float64(row.Total) / float64(row.Count),
			Count:    int(row.Count),
		}
	}
	return result, nil
}

func (r *reviewRepository) GetPlatformReviewStats(db *gorm.DB) (*PlatformReviewStats, error) {
	var stats PlatformReviewStats

	if err := db.Model(&models.Review{}).Count(&stats.TotalReviews).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Review{}).Select("COALESCE(AVG(rating), 0)").Scan(&stats.AverageRating).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Review{}).Where("rating >= ?", 4).Count(&stats.PositiveReviews).Error; err != nil {
		return nil, err
	}

	monthAgo := time.Now().AddDate(0, -1, 0)
	if err := db.Model(&models.Review{}).Where("created_at >= ?", monthAgo).Count(&stats.RecentReviews).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}
