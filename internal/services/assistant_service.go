package services

import (
	"context"
	"strings"

	"workhub_backend/internal/ai"
	"workhub_backend/internal/logger"
	"workhub_backend/internal/services/dto"
	"workhub_backend/pkg/apperrors"
)

type AssistantService interface {
	Ask(ctx context.Context, actor Actor, req *dto.AssistantRequest) (*dto.AssistantResponse, error)
}

type assistantService struct {
	assistant *ai.Assistant
}

func NewAssistantService(assistant *ai.Assistant) AssistantService {
	return &assistantService{assistant: assistant}
}

func (s *assistantService) Ask(ctx context.Context, actor Actor, req *dto.AssistantRequest) (*dto.AssistantResponse, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, apperrors.NewValidationError("message", "This field is required")
	}
	if len([]rune(message)) > ai.MaxAssistantMessage {
		return nil, apperrors.NewValidationError("message", "Message is too long")
	}

	history := make([]ai.Message, 0, len(req.History))
	for _, m := range req.History {
		history = append(history, ai.Message{Role: m.Role, Content: m.Content})
	}

	answer := s.assistant.Ask(ctx, message, history)
	logger.CtxDebug(ctx, "assistant answered", "user_id", actor.ID, "degraded", answer.Degraded)
	return &dto.AssistantResponse{Reply: answer.Reply, Degraded: answer.Degraded}, nil
}
