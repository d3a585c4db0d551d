package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"workhub_backend/internal/imageprocessor"
	"workhub_backend/internal/lifecycle"
	"workhub_backend/internal/logger"
	"workhub_backend/internal/models"
	"workhub_backend/internal/repositories"
	"workhub_backend/internal/services/dto"
	"workhub_backend/internal/storage"
	"workhub_backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttachmentLimits - ограничения на фото результата
type AttachmentLimits struct {
	MaxBytes   int64
	MaxPerTask int
	URLTTL     time.Duration
}

type AttachmentService interface {
	Upload(db *gorm.DB, actor Actor, taskID string, file *dto.UploadFile) (*dto.AttachmentResponse, error)
	ListByTask(db *gorm.DB, actor Actor, taskID string) ([]*dto.AttachmentResponse, error)
	Delete(db *gorm.DB, actor Actor, taskID, attachmentID string) error
}

type AttachmentServiceImpl struct {
	attachmentRepo repositories.AttachmentRepository
	taskRepo       repositories.TaskRepository
	files          storage.Storage
	images         *imageprocessor.Processor
	limits         AttachmentLimits
}

func NewAttachmentService(
	attachmentRepo repositories.AttachmentRepository,
	taskRepo repositories.TaskRepository,
	files storage.Storage,
	images *imageprocessor.Processor,
	limits AttachmentLimits,
) *AttachmentServiceImpl {
	if limits.URLTTL <= 0 {
		limits.URLTTL = time.Hour
	}
	return &AttachmentServiceImpl{
		attachmentRepo: attachmentRepo,
		taskRepo:       taskRepo,
		files:          files,
		images:         images,
		limits:         limits,
	}
}

// Upload сохраняет фото и превью в хранилище, затем запись в БД.
// Если запись не удалась, файлы удаляются.
func (s *AttachmentServiceImpl) Upload(db *gorm.DB, actor Actor, taskID string, file *dto.UploadFile) (*dto.AttachmentResponse, error) {
	if len(file.Data) == 0 {
		return nil, apperrors.NewValidationError("file", "This field is required")
	}
	if s.limits.MaxBytes > 0 && int64(len(file.Data)) > s.limits.MaxBytes {
		return nil, apperrors.NewValidationError("file", fmt.Sprintf("File must be at most %d bytes", s.limits.MaxBytes))
	}

	img, err := s.images.Decode(file.Data)
	if err != nil {
		return nil, apperrors.NewValidationError("file", "Only JPEG and PNG images are supported")
	}

	ctx := ctxOf(db)
	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	task, err := s.taskRepo.FindByID(tx, taskID)
	if err != nil {
		return nil, handleTaskError(err)
	}
	if !task.IsAssignedTo(actor.ID) {
		return nil, apperrors.ErrTaskNotAssignee
	}
	count, err := s.attachmentRepo.CountByTask(tx, taskID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if err := lifecycle.CanAttach(task, count, s.limits.MaxPerTask); err != nil {
		return nil, lifecycleError("attachment", err)
	}

	thumb, err := s.images.Thumbnail(img, imageprocessor.ThumbnailSide)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	id := uuid.NewString()
	attachment := &models.TaskAttachment{
		BaseModel:       models.BaseModel{ID: id},
		TaskID:          taskID,
		UploadedBy:      actor.ID,
		OriginalName:    sanitizeFileName(file.Name),
		MimeType:        img.MimeType,
		Size:            int64(len(file.Data)),
		Width:           img.Width,
		Height:          img.Height,
		Path:            fmt.Sprintf("tasks/%s/%s.%s", taskID, id, extensionOf(img.Format)),
		ThumbnailPath:   fmt.Sprintf("tasks/%s/%s_thumb.jpg", taskID, id),
		StorageProvider: s.files.Provider(),
	}

	if err := s.files.Save(ctx, attachment.Path, bytes.NewReader(file.Data), attachment.MimeType); err != nil {
		return nil, apperrors.ExternalService(err, "attachment", "File storage is unavailable")
	}
	if err := s.files.Save(ctx, attachment.ThumbnailPath, bytes.NewReader(thumb), "image/jpeg"); err != nil {
		s.removeFiles(ctx, attachment)
		return nil, apperrors.ExternalService(err, "attachment", "File storage is unavailable")
	}

	if err := s.attachmentRepo.Create(tx, attachment); err != nil {
		s.removeFiles(ctx, attachment)
		return nil, apperrors.InternalError(err)
	}
	if err := commit(tx); err != nil {
		s.removeFiles(ctx, attachment)
		return nil, err
	}

	logger.CtxInfo(ctx, "attachment uploaded", "attachment_id", attachment.ID, "task_id", taskID, "size", attachment.Size)
	return s.toResponse(ctx, attachment)
}

// ListByTask - вложения видят клиент, назначенный исполнитель и администратор
func (s *AttachmentServiceImpl) ListByTask(db *gorm.DB, actor Actor, taskID string) ([]*dto.AttachmentResponse, error) {
	task, err := s.taskRepo.FindByID(db, taskID)
	if err != nil {
		return nil, handleTaskError(err)
	}
	if !actor.IsAdmin() && task.ClientID != actor.ID && !task.IsAssignedTo(actor.ID) {
		return nil, apperrors.ErrAttachmentNotAllowed
	}

	attachments, err := s.attachmentRepo.FindByTask(db, taskID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	ctx := ctxOf(db)
	result := make([]*dto.AttachmentResponse, 0, len(attachments))
	for i := range attachments {
		resp, err := s.toResponse(ctx, &attachments[i])
		if err != nil {
			return nil, err
		}
		result = append(result, resp)
	}
	return result, nil
}

// Delete - исполнитель может убрать свое фото до сдачи задачи
func (s *AttachmentServiceImpl) Delete(db *gorm.DB, actor Actor, taskID, attachmentID string) error {
	tx := db.Begin()
	if tx.Error != nil {
		return apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	attachment, err := s.attachmentRepo.FindByID(tx, attachmentID)
	if err != nil {
		return handleAttachmentError(err)
	}
	if attachment.TaskID != taskID {
		return apperrors.ErrAttachmentNotFound
	}
	if attachment.UploadedBy != actor.ID {
		return apperrors.ErrTaskNotAssignee
	}

	task, err := s.taskRepo.FindByID(tx, taskID)
	if err != nil {
		return handleTaskError(err)
	}
	if err := lifecycle.CanDetach(task); err != nil {
		return lifecycleError("attachment", err)
	}

	if err := s.attachmentRepo.Delete(tx, attachmentID); err != nil {
		return handleAttachmentError(err)
	}
	if err := commit(tx); err != nil {
		return err
	}

	ctx := ctxOf(db)
	s.removeFiles(ctx, attachment)
	logger.CtxInfo(ctx, "attachment deleted", "attachment_id", attachmentID, "task_id", taskID)
	return nil
}

func (s *AttachmentServiceImpl) toResponse(ctx context.Context, a *models.TaskAttachment) (*dto.AttachmentResponse, error) {
	url, err := s.files.URL(ctx, a.Path, s.limits.URLTTL)
	if err != nil {
		return nil, apperrors.ExternalService(err, "attachment", "File storage is unavailable")
	}
	var thumbURL string
	if a.ThumbnailPath != "" {
		if thumbURL, err = s.files.URL(ctx, a.ThumbnailPath, s.limits.URLTTL); err != nil {
			return nil, apperrors.ExternalService(err, "attachment", "File storage is unavailable")
		}
	}
	return dto.NewAttachmentResponse(a, url, thumbURL), nil
}

// removeFiles - ошибки только логируются, запись в БД уже отменена или удалена
func (s *AttachmentServiceImpl) removeFiles(ctx context.Context, a *models.TaskAttachment) {
	for _, path := range []string{a.Path, a.ThumbnailPath} {
		if path == "" {
			continue
		}
		if err := s.files.Delete(ctx, path); err != nil {
			logger.CtxWarn(ctx, "failed to remove stored file", "path", path, "error", err)
		}
	}
}

func handleAttachmentError(err error) error {
	if errors.Is(err, repositories.ErrAttachmentNotFound) {
		return apperrors.ErrAttachmentNotFound
	}
	return apperrors.InternalError(err)
}

func extensionOf(format string) string {
	if format == "jpeg" {
		return "jpg"
	}
	return format
}

func sanitizeFileName(name string) string {
	name = strings.TrimSpace(filepath.Base(strings.ReplaceAll(name, "\\", "/")))
	if name == "." || name == "/" {
		return ""
	}
	if r := []rune(name); len(r) > 255 {
		name = string(r[:255])
	}
	return name
}
