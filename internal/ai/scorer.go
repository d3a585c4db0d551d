package ai

import (
	"context"
	"encoding/json"

	"workhub_backend/internal/logger"
	"workhub_backend/internal/models"
)

const (
	DefaultScore  = 50
	DefaultReason = "Automatic scoring is unavailable, neutral score assigned"
)

// Scorer оценивает совместимость исполнителя и задачи. Ошибок не возвращает:
// при любом сбое выдается нейтральная оценка.
type Scorer interface {
	Score(ctx context.Context, profile *models.WorkerProfile, task *models.Task) models.MatchResult
}

const matchSystemPrompt = `You rate how well a freelance worker fits a task.
Reply with a single JSON object: {"score": <integer 0-100>, "reasons": [<short strings>]}.`

type matchContext struct {
	Worker struct {
		Skills        []string `json:"skills"`
		Experience    int      `json:"experienceYears"`
		HourlyRate    string   `json:"hourlyRate"`
		City          string   `json:"city"`
		District      string   `json:"district"`
		Availability  string   `json:"availability"`
		RatingAverage float64  `json:"ratingAverage"`
		RatingCount   int      `json:"ratingCount"`
		Completed     int      `json:"completedTasks"`
	} `json:"worker"`
	Task struct {
		Title             string   `json:"title"`
		Description       string   `json:"description"`
		Category          string   `json:"category"`
		Budget            string   `json:"budget"`
		Currency          string   `json:"currency"`
		City              string   `json:"city"`
		District          string   `json:"district"`
		RequiredSkills    []string `json:"requiredSkills"`
		EstimatedDuration string   `json:"estimatedDuration,omitempty"`
	} `json:"task"`
}

// LLMScorer делегирует оценку модели и разбирает ответ
type LLMScorer struct {
	completer ChatCompleter
}

func NewLLMScorer(completer ChatCompleter) *LLMScorer {
	return &LLMScorer{completer: completer}
}

func (s *LLMScorer) Score(ctx context.Context, profile *models.WorkerProfile, task *models.Task) models.MatchResult {
	result := models.MatchResult{WorkerID: profile.UserID, TaskID: task.ID}

	payload, err := json.Marshal(buildMatchContext(profile, task))
	if err != nil {
		return neutral(result)
	}

	reply, err := s.completer.Complete(ctx, []Message{
		{Role: RoleSystem, Content: matchSystemPrompt},
		{Role: RoleUser, Content: string(payload)},
	})
	if err != nil {
		logger.CtxWarn(ctx, "AI scoring failed, using neutral score",
			"worker_id", profile.UserID, "task_id", task.ID, "error", err)
		return neutral(result)
	}

	score, reasons, ok := ParseMatchReply(reply)
	if !ok {
		logger.CtxWarn(ctx, "AI scoring reply not understood, using neutral score",
			"worker_id", profile.UserID, "task_id", task.ID)
		return neutral(result)
	}
	if len(reasons) == 0 {
		reasons = []string{"Score provided by AI without explanation"}
	}

	result.Score = score
	result.Reasons = reasons
	return result
}

func buildMatchContext(profile *models.WorkerProfile, task *models.Task) matchContext {
	var mc matchContext
	mc.Worker.Skills = profile.GetSkills()
	mc.Worker.Experience = profile.Experience
	mc.Worker.HourlyRate = profile.HourlyRate.StringFixed(2)
	mc.Worker.City = profile.City
	mc.Worker.District = profile.District
	mc.Worker.Availability = string(profile.Availability)
	mc.Worker.RatingAverage = profile.RatingAverage
	mc.Worker.RatingCount = profile.RatingCount
	mc.Worker.Completed = profile.CompletedTasks

	mc.Task.Title = task.Title
	mc.Task.Description = task.Description
	mc.Task.Category = string(task.Category)
	mc.Task.Budget = task.Budget.StringFixed(2)
	mc.Task.Currency = task.Currency
	mc.Task.City = task.Location.City
	mc.Task.District = task.Location.District
	mc.Task.RequiredSkills = task.GetRequiredSkills()
	mc.Task.EstimatedDuration = task.EstimatedDuration
	return mc
}

func neutral(result models.MatchResult) models.MatchResult {
	result.Score = DefaultScore
	result.Reasons = []string{DefaultReason}
	return result
}
