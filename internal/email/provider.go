package email

import (
	"context"
	"sync"

	"workhub_backend/internal/logger"
)

// Provider определяет интерфейс для отправки email
type Provider interface {
	// Send отправляет email сообщение
	Send(ctx context.Context, email *Email) error

	// Validate проверяет конфигурацию провайдера
	Validate() error
}

// NoopProvider только пишет письмо в лог (email выключен в конфиге)
type NoopProvider struct{}

func (NoopProvider) Send(ctx context.Context, email *Email) error {
	logger.CtxDebug(ctx, "email disabled, message dropped", "to", email.To, "subject", email.Subject)
	return nil
}

func (NoopProvider) Validate() error { return nil }

// MemoryProvider складывает письма в память. Используется в тестах.
type MemoryProvider struct {
	mu   sync.Mutex
	sent []Email
}

func (p *MemoryProvider) Send(_ context.Context, email *Email) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sent = append(p.sent, *email)
	return nil
}

func (p *MemoryProvider) Validate() error { return nil }

// Sent возвращает копию отправленных писем
func (p *MemoryProvider) Sent() []Email {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Email, len(p.sent))
	copy(out, p.sent)
	return out
}
