package ai

import (
	"context"
	"strings"

	"workhub_backend/internal/logger"
)

const (
	MaxAssistantMessage = 2000
	maxHistoryMessages  = 10

	FallbackAnswer = "The assistant is temporarily unavailable. Please try again later or contact support."
)

const assistantSystemPrompt = `You are the help assistant of a task marketplace where clients post tasks and workers apply to them.
Answer briefly and only about using the marketplace.`

// Answer - ответ ассистента. Degraded=true, если внешний сервис не ответил.
type Answer struct {
	Reply    string `json:"reply"`
	Degraded bool   `json:"degraded"`
}

type Assistant struct {
	completer ChatCompleter
}

// NewAssistant; completer может быть nil - тогда всегда возвращается запасной ответ
func NewAssistant(completer ChatCompleter) *Assistant {
	return &Assistant{completer: completer}
}

func (a *Assistant) Ask(ctx context.Context, message string, history []Message) Answer {
	if a.completer == nil {
		return Answer{Reply: FallbackAnswer, Degraded: true}
	}

	if len(history) > maxHistoryMessages {
		history = history[len(history)-maxHistoryMessages:]
	}

	messages := make([]Message, 0, len(history)+2)
	messages = append(messages, Message{Role: RoleSystem, Content: assistantSystemPrompt})
	for _, m := range history {
		if m.Role != RoleUser && m.Role != RoleAssistant {
			continue
		}
		messages = append(messages, m)
	}
	messages = append(messages, Message{Role: RoleUser, Content: message})

	reply, err := a.completer.Complete(ctx, messages)
	if err != nil {
		logger.CtxWarn(ctx, "assistant completion failed", "error", err)
		return Answer{Reply: FallbackAnswer, Degraded: true}
	}
	return Answer{Reply: strings.TrimSpace(reply)}
}
