package handlers

import (
	"net/http"

	"workhub_backend/internal/services"
	"workhub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	*BaseHandler
	reviewService services.ReviewService
}

func NewReviewHandler(base *BaseHandler, reviewService services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		BaseHandler:   base,
		reviewService: reviewService,
	}
}

func (h *ReviewHandler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.GET("/workers/:id/reviews", h.ListByWorker)
	public.GET("/workers/:id/rating", h.GetWorkerRating)
	public.GET("/tasks/:id/reviews", h.ListByTask)

	protected.POST("/reviews", h.Create)
}

// Create godoc
// @Summary Оставить отзыв исполнителю по завершенной задаче
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateReviewRequest true "Отзыв"
// @Success 201 {object} dto.ReviewResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 409 {object} apperrors.ErrorResponse "Отзыв уже есть или задача не завершена"
// @Router /reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}
	var req dto.CreateReviewRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	review, err := h.reviewService.Create(h.GetDB(c), actor, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

func (h *ReviewHandler) ListByWorker(c *gin.Context) {
	page, pageSize := ParsePagination(c)

	list, err := h.reviewService.ListByWorker(h.GetDB(c), c.Param("id"), page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *ReviewHandler) ListByTask(c *gin.Context) {
	reviews, err := h.reviewService.ListByTask(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// GetWorkerRating godoc
// @Summary Рейтинг исполнителя
// @Tags reviews
// @Produce json
// @Param id path string true "ID исполнителя"
// @Success 200 {object} dto.WorkerRatingResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /workers/{id}/rating [get]
func (h *ReviewHandler) GetWorkerRating(c *gin.Context) {
	rating, err := h.reviewService.GetWorkerRating(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rating)
}
