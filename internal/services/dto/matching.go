package dto

// TaskRecommendation - открытая задача с оценкой совместимости для исполнителя
type TaskRecommendation struct {
	Task    *TaskResponse `json:"task"`
	Score   int           `json:"score"`
	Reasons []string      `json:"reasons"`
}

// ApplicationRanking - отклик с оценкой совместимости исполнителя
type ApplicationRanking struct {
	Application *ApplicationResponse `json:"application"`
	Score       int                  `json:"score"`
	Reasons     []string             `json:"reasons"`
}

type RecommendQuery struct {
	Limit int `form:"limit" validate:"omitempty,min=1,max=50"`
}

type ChatMessage struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required,max=2000"`
}

type AssistantRequest struct {
	Message string        `json:"message" validate:"required,min=1,max=2000"`
	History []ChatMessage `json:"history,omitempty" validate:"omitempty,max=20,dive"`
}

type AssistantResponse struct {
	Reply    string `json:"reply"`
	Degraded bool   `json:"degraded"`
}
