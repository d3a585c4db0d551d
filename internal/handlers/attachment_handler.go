package handlers

import (
	"errors"
	"io"
	"net/http"

	"workhub_backend/internal/services"
	"workhub_backend/internal/services/dto"
	"workhub_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// multipartOverhead - запас на заголовки multipart сверх размера файла
const multipartOverhead = 1 << 20

var errFileTooLarge = apperrors.New(apperrors.CodeValidationFailed, "attachment", "File is too large", http.StatusRequestEntityTooLarge)

type AttachmentHandler struct {
	*BaseHandler
	attachmentService services.AttachmentService
	maxBytes          int64
}

func NewAttachmentHandler(base *BaseHandler, attachmentService services.AttachmentService, maxBytes int64) *AttachmentHandler {
	return &AttachmentHandler{
		BaseHandler:       base,
		attachmentService: attachmentService,
		maxBytes:          maxBytes,
	}
}

func (h *AttachmentHandler) RegisterRoutes(protected *gin.RouterGroup) {
	protected.POST("/tasks/:id/attachments", h.Upload)
	protected.GET("/tasks/:id/attachments", h.List)
	protected.DELETE("/tasks/:id/attachments/:attachmentId", h.Delete)
}

// Upload godoc
// @Summary Прикрепить фото результата работы
// @Description Только назначенный исполнитель, пока задача IN_PROGRESS и не сдана. JPEG или PNG.
// @Tags attachments
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID задачи"
// @Param file formData file true "Изображение"
// @Success 201 {object} dto.AttachmentResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 409 {object} apperrors.ErrorResponse "Задача уже сдана"
// @Failure 413 {object} apperrors.ErrorResponse
// @Router /tasks/{id}/attachments [post]
func (h *AttachmentHandler) Upload(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	if h.maxBytes > 0 {
		if c.Request.ContentLength > h.maxBytes+multipartOverhead {
			apperrors.HandleError(c, errFileTooLarge)
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes+multipartOverhead)
	}
	header, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			apperrors.HandleError(c, errFileTooLarge)
			return
		}
		apperrors.HandleError(c, apperrors.NewValidationError("file", "This field is required"))
		return
	}

	f, err := header.Open()
	if err != nil {
		h.HandleServiceError(c, apperrors.InternalError(err))
		return
	}
	defer f.Close()

	var reader io.Reader = f
	if h.maxBytes > 0 {
		reader = io.LimitReader(f, h.maxBytes+1)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		h.HandleServiceError(c, apperrors.InternalError(err))
		return
	}

	attachment, err := h.attachmentService.Upload(h.GetDB(c), actor, c.Param("id"), &dto.UploadFile{
		Name: header.Filename,
		Data: data,
	})
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, attachment)
}

// List godoc
// @Summary Фото результата по задаче
// @Tags attachments
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID задачи"
// @Success 200 {array} dto.AttachmentResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Router /tasks/{id}/attachments [get]
func (h *AttachmentHandler) List(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	attachments, err := h.attachmentService.ListByTask(h.GetDB(c), actor, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, attachments)
}

func (h *AttachmentHandler) Delete(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	if err := h.attachmentService.Delete(h.GetDB(c), actor, c.Param("id"), c.Param("attachmentId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
