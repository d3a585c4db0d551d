package handlers

import (
	"net/http"

	"workhub_backend/internal/models"
	"workhub_backend/internal/services"
	"workhub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	appService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, appService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler: base,
		appService:  appService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(protected *gin.RouterGroup) {
	protected.POST("/tasks/:id/applications", h.Apply)
	protected.GET("/tasks/:id/applications", h.ListForTask)
	protected.POST("/tasks/:id/applications/reject-remaining", h.RejectRemaining)

	apps := protected.Group("/applications")
	{
		apps.GET("/my", h.ListMine)
		apps.GET("/:id", h.Get)
		apps.POST("/:id/accept", h.Accept)
		apps.POST("/:id/reject", h.Reject)
		apps.POST("/:id/withdraw", h.Withdraw)
	}
}

// Apply godoc
// @Summary Откликнуться на задачу
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID задачи"
// @Param request body dto.ApplyRequest true "Отклик"
// @Success 201 {object} dto.ApplicationResponse
// @Failure 409 {object} apperrors.ErrorResponse "Повторный отклик или задача не OPEN"
// @Router /tasks/{id}/applications [post]
func (h *ApplicationHandler) Apply(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}
	var req dto.ApplyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	app, err := h.appService.Apply(h.GetDB(c), actor, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, app)
}

func (h *ApplicationHandler) ListForTask(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	status := models.ApplicationStatus(c.Query("status"))
	apps, err := h.appService.ListForTask(h.GetDB(c), actor, c.Param("id"), status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

func (h *ApplicationHandler) ListMine(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}
	var query dto.ApplicationListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	list, err := h.appService.ListMine(h.GetDB(c), actor, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *ApplicationHandler) Get(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	app, err := h.appService.Get(h.GetDB(c), actor, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// Accept godoc
// @Summary Принять отклик и назначить исполнителя
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID отклика"
// @Success 200 {object} dto.AcceptResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 409 {object} apperrors.ErrorResponse
// @Router /applications/{id}/accept [post]
func (h *ApplicationHandler) Accept(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	res, err := h.appService.Accept(h.GetDB(c), actor, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *ApplicationHandler) Reject(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	app, err := h.appService.Reject(h.GetDB(c), actor, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

func (h *ApplicationHandler) Withdraw(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	app, err := h.appService.Withdraw(h.GetDB(c), actor, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

func (h *ApplicationHandler) RejectRemaining(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	res, err := h.appService.RejectRemaining(h.GetDB(c), actor, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
