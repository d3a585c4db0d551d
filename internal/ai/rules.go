package ai

import (
	"context"
	"math"
	"strings"

	"workhub_backend/internal/models"
)

// RuleScorer - детерминированная эвристика, когда AI выключен в конфиге.
// Веса: навыки 35, город 20, район 5, бюджет 15, рейтинг 15, доступность 10.
type RuleScorer struct{}

func NewRuleScorer() *RuleScorer {
	return &RuleScorer{}
}

func (s *RuleScorer) Score(_ context.Context, profile *models.WorkerProfile, task *models.Task) models.MatchResult {
	score := 0.0
	reasons := []string{}

	// Навыки (35)
	skillScore, matched := skillOverlap(task.GetRequiredSkills(), profile.GetSkills())
	score += skillScore
	if matched > 0 {
		reasons = append(reasons, "Has required skills")
	}

	// Локация (20 + 5)
	if profile.City != "" && strings.EqualFold(profile.City, task.Location.City) {
		score += 20
		reasons = append(reasons, "Same city")
		if profile.District != "" && strings.EqualFold(profile.District, task.Location.District) {
			score += 5
			reasons = append(reasons, "Same district")
		}
	}

	// Бюджет против ставки (15)
	switch {
	case profile.HourlyRate.IsZero():
		score += 7
	case profile.HourlyRate.LessThanOrEqual(task.Budget):
		score += 15
		reasons = append(reasons, "Hourly rate fits the budget")
	}

	// Рейтинг (15)
	switch {
	case profile.RatingCount == 0:
		score += 5
	case profile.RatingAverage >= 4.5:
		score += 15
		reasons = append(reasons, "High rating")
	case profile.RatingAverage >= 4.0:
		score += 10
	case profile.RatingAverage >= 3.0:
		score += 5
	}

	// Доступность (10)
	switch profile.Availability {
	case models.AvailabilityAvailable:
		score += 10
		reasons = append(reasons, "Available now")
	case models.AvailabilityBusy:
		score += 4
	}

	if len(reasons) == 0 {
		reasons = append(reasons, "Low overall compatibility")
	}

	return models.MatchResult{
		WorkerID: profile.UserID,
		TaskID:   task.ID,
		Score:    clamp(score),
		Reasons:  reasons,
	}
}

// skillOverlap - доля требуемых навыков, которые есть у исполнителя (0..35)
func skillOverlap(required, have []string) (float64, int) {
	if len(required) == 0 {
		return 17.5, 0
	}

	owned := make(map[string]struct{}, len(have))
	for _, s := range have {
		owned[strings.ToLower(strings.TrimSpace(s))] = struct{}{}
	}

	matches := 0
	for _, r := range required {
		if _, ok := owned[strings.ToLower(strings.TrimSpace(r))]; ok {
			matches++
		}
	}
	return math.Round(float64(matches)/float64(len(required))*35.0*10) / 10, matches
}
