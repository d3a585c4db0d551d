package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"workhub_backend/internal/email"
	"workhub_backend/internal/logger"
	"workhub_backend/internal/models"
	"workhub_backend/internal/repositories"
	"workhub_backend/internal/services/dto"
	"workhub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// Publisher доставляет событие в открытые соединения пользователя. Не блокирует.
type Publisher interface {
	Publish(userID string, event dto.Event)
}

// NotificationService сохраняет уведомление в ленту пользователя, публикует его в WebSocket и отправляет письмо.
// Доставка асинхронная: ошибки только логируются и не влияют на результат операции.
type NotificationService interface {
	Notify(db *gorm.DB, userID, template, subject string, data email.TemplateData)
	// Wait дожидается доставки всех уведомлений (при остановке сервера и в тестах)
	Wait()

	List(db *gorm.DB, actor Actor, query *dto.NotificationListQuery) (*dto.PaginatedResponse, error)
	UnreadCount(db *gorm.DB, actor Actor) (*dto.UnreadCountResponse, error)
	MarkRead(db *gorm.DB, actor Actor, notificationID string) error
	MarkAllRead(db *gorm.DB, actor Actor) (*dto.MarkAllReadResponse, error)
	// Cleanup удаляет прочитанные уведомления старше retention
	Cleanup(db *gorm.DB, retention time.Duration) (int64, error)
}

type notificationService struct {
	provider  email.Provider
	templates *email.TemplateManager
	userRepo  repositories.UserRepository
	feedRepo  repositories.NotificationRepository
	publisher Publisher
	now       Clock
	wg        sync.WaitGroup
}

func NewNotificationService(
	provider email.Provider,
	templates *email.TemplateManager,
	userRepo repositories.UserRepository,
	feedRepo repositories.NotificationRepository,
	publisher Publisher,
) NotificationService {
	return &notificationService{
		provider:  provider,
		templates: templates,
		userRepo:  userRepo,
		feedRepo:  feedRepo,
		publisher: publisher,
		now:       systemClock,
	}
}

func (s *notificationService) Notify(db *gorm.DB, userID, template, subject string, data email.TemplateData) {
	if userID == "" {
		return
	}
	ctx := context.WithoutCancel(ctxOf(db))
	pool := db.Session(&gorm.Session{NewDB: true, Context: ctx})

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		notification := &models.Notification{UserID: userID, Type: template, Title: subject}
		notification.SetData(data)
		if err := s.feedRepo.Create(pool, notification); err != nil {
			logger.CtxWithError(ctx, "notification persist failed", err, "template", template, "user_id", userID)
			notification.ID = ""
		}

		if s.publisher != nil {
			s.publisher.Publish(userID, dto.Event{
				ID:      notification.ID,
				Type:    template,
				Subject: subject,
				Data:    data,
				SentAt:  s.now(),
			})
		}

		s.sendEmail(ctx, pool, userID, template, subject, data)
	}()
}

func (s *notificationService) sendEmail(ctx context.Context, pool *gorm.DB, userID, template, subject string, data email.TemplateData) {
	user, err := s.userRepo.FindByID(pool, userID)
	if err != nil {
		logger.CtxWithError(ctx, "notification recipient lookup failed", err, "user_id", userID)
		return
	}

	payload := email.TemplateData{"Name": user.Name}
	for k, v := range data {
		payload[k] = v
	}
	body, err := s.templates.Render(template, payload)
	if err != nil {
		logger.CtxWithError(ctx, "notification render failed", err, "template", template)
		return
	}

	msg := &email.Email{To: []string{user.Email}, Subject: subject, HTMLBody: body}
	if err := s.provider.Send(ctx, msg); err != nil {
		logger.CtxWithError(ctx, "notification send failed", err, "template", template, "user_id", userID)
		return
	}
	logger.CtxDebug(ctx, "notification sent", "template", template, "user_id", userID)
}

func (s *notificationService) Wait() {
	s.wg.Wait()
}

func (s *notificationService) List(db *gorm.DB, actor Actor, query *dto.NotificationListQuery) (*dto.PaginatedResponse, error) {
	page := pageOf(query.Page, query.PageSize)
	items, total, err := s.feedRepo.FindUserNotifications(db, actor.ID, repositories.NotificationCriteria{
		UnreadOnly: query.UnreadOnly,
		Type:       query.Type,
		Pagination: page,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := make([]*dto.NotificationResponse, 0, len(items))
	for i := range items {
		result = append(result, dto.NewNotificationResponse(&items[i]))
	}
	return dto.NewPaginatedResponse(result, total, page.Page, page.PageSize), nil
}

func (s *notificationService) UnreadCount(db *gorm.DB, actor Actor) (*dto.UnreadCountResponse, error) {
	count, err := s.feedRepo.GetUnreadCount(db, actor.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.UnreadCountResponse{Unread: count}, nil
}

func (s *notificationService) MarkRead(db *gorm.DB, actor Actor, notificationID string) error {
	if err := s.feedRepo.MarkAsRead(db, actor.ID, notificationID, s.now()); err != nil {
		if errors.Is(err, repositories.ErrNotificationNotFound) {
			return apperrors.ErrNotificationNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *notificationService) MarkAllRead(db *gorm.DB, actor Actor) (*dto.MarkAllReadResponse, error) {
	updated, err := s.feedRepo.MarkAllAsRead(db, actor.ID, s.now())
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.MarkAllReadResponse{Updated: updated}, nil
}

func (s *notificationService) Cleanup(db *gorm.DB, retention time.Duration) (int64, error) {
	return s.feedRepo.DeleteReadOlderThan(db, s.now().Add(-retention))
}
