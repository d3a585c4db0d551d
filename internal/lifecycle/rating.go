package lifecycle

import (
	"workhub_backend/internal/models"
)

const (
	MinRating = 1
	MaxRating = 5
)

// SubRatings - необязательные оценки по критериям
type SubRatings struct {
	Professionalism *int
	Communication   *int
	Quality         *int
	Timeliness      *int
}

// ValidateReview проверяет основную оценку и оценки по критериям
func ValidateReview(rating int, subs SubRatings) error {
	errs := fieldErrors{}
	if rating < MinRating || rating > MaxRating {
		errs.add("rating", "must be between 1 and 5")
	}
	check := func(field string, v *int) {
		if v != nil && (*v < MinRating || *v > MaxRating) {
			errs.add(field, "must be between 1 and 5")
		}
	}
	check("professionalism", subs.Professionalism)
	check("communication", subs.Communication)
	check("quality", subs.Quality)
	check("timeliness", subs.Timeliness)
	return errs.err()
}

// CanReview - отзыв возможен только от клиента завершенной задачи и только о назначенном исполнителе
func CanReview(t *models.Task, clientID, workerID string) error {
	if t.Status != models.TaskStatusCompleted {
		return invalid("review", t.Status, models.TaskStatusCompleted, "task is not completed")
	}
	if t.ClientID != clientID || !t.IsAssignedTo(workerID) {
		return invalid("review", t.Status, models.TaskStatusCompleted, "reviewer must be the task client and the reviewee its assigned worker")
	}
	return nil
}

// NextRating - инкрементальное среднее: (avg*count + rating) / (count+1)
func NextRating(average float64, count, rating int) (float64, int) {
	if count < 0 {
		count = 0
	}
	newCount := count + 1
	return (average*float64(count) + float64(rating)) / float64(newCount), newCount
}

// AggregateRatings пересчитывает среднее с нуля (для сверки агрегатов)
func AggregateRatings(ratings []int) (float64, int) {
	if len(ratings) == 0 {
		return 0, 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return float64(sum) / float64(len(ratings)), len(ratings)
}
