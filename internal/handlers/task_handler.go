package handlers

import (
	"net/http"

	"workhub_backend/internal/services"
	"workhub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TaskHandler struct {
	*BaseHandler
	taskService services.TaskService
}

func NewTaskHandler(base *BaseHandler, taskService services.TaskService) *TaskHandler {
	return &TaskHandler{
		BaseHandler: base,
		taskService: taskService,
	}
}

func (h *TaskHandler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.GET("/tasks", h.ListTasks)
	public.GET("/tasks/:id", h.GetTask)

	tasks := protected.Group("/tasks")
	{
		tasks.POST("", h.CreateTask)
		tasks.GET("/my", h.ListMyTasks)
		tasks.PATCH("/:id", h.UpdateTask)
		tasks.POST("/:id/cancel", h.Cancel)

		tasks.POST("/:id/deliver", h.Deliver)
		tasks.POST("/:id/receive", h.MarkReceived)
		tasks.POST("/:id/pay", h.Pay)

		tasks.POST("/:id/extension", h.RequestExtension)
		tasks.POST("/:id/extension/respond", h.RespondExtension)
	}
}

// CreateTask godoc
// @Summary Создать задачу
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param task body dto.CreateTaskRequest true "Задача"
// @Success 201 {object} dto.TaskResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 403 {object} apperrors.ErrorResponse "Только клиент"
// @Router /tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}
	var req dto.CreateTaskRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	task, err := h.taskService.CreateTask(h.GetDB(c), actor, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}
	var req dto.UpdateTaskRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	task, err := h.taskService.UpdateTask(h.GetDB(c), actor, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// GetTask godoc
// @Summary Получить задачу
// @Tags tasks
// @Produce json
// @Param id path string true "ID задачи"
// @Success 200 {object} dto.TaskResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /tasks/{id} [get]
func (h *TaskHandler) GetTask(c *gin.Context) {
	task, err := h.taskService.GetTask(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// ListTasks godoc
// @Summary Лента задач (по умолчанию только OPEN)
// @Tags tasks
// @Produce json
// @Param status query string false "Статус"
// @Param category query string false "Категория"
// @Param city query string false "Город"
// @Param page query int false "Страница"
// @Param pageSize query int false "Размер страницы"
// @Success 200 {object} dto.PaginatedResponse
// @Router /tasks [get]
func (h *TaskHandler) ListTasks(c *gin.Context) {
	var query dto.TaskListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	list, err := h.taskService.ListTasks(h.GetDB(c), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *TaskHandler) ListMyTasks(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}
	var query dto.TaskListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	list, err := h.taskService.ListMyTasks(h.GetDB(c), actor, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Deliver godoc
// @Summary Сдать работу (исполнитель)
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID задачи"
// @Param request body dto.DeliverRequest false "Сообщение"
// @Success 200 {object} dto.TaskResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 409 {object} apperrors.ErrorResponse
// @Router /tasks/{id}/deliver [post]
func (h *TaskHandler) Deliver(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}
	var req dto.DeliverRequest
	if c.Request.ContentLength != 0 && !h.BindAndValidate_JSON(c, &req) {
		return
	}

	task, err := h.taskService.Deliver(h.GetDB(c), actor, c.Param("id"), &req)
	h.respond(c, task, err)
}

func (h *TaskHandler) MarkReceived(c *gin.Context) {
	h.transition(c, h.taskService.MarkReceived)
}

func (h *TaskHandler) Pay(c *gin.Context) {
	h.transition(c, h.taskService.Pay)
}

func (h *TaskHandler) Cancel(c *gin.Context) {
	h.transition(c, h.taskService.Cancel)
}

func (h *TaskHandler) RequestExtension(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}
	var req dto.ExtensionRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	task, err := h.taskService.RequestExtension(h.GetDB(c), actor, c.Param("id"), &req)
	h.respond(c, task, err)
}

func (h *TaskHandler) RespondExtension(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}
	var req dto.ExtensionDecisionRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	task, err := h.taskService.RespondExtension(h.GetDB(c), actor, c.Param("id"), &req)
	h.respond(c, task, err)
}

type taskTransition func(db *gorm.DB, actor services.Actor, taskID string) (*dto.TaskResponse, error)

// transition - переходы без тела запроса
func (h *TaskHandler) transition(c *gin.Context, op taskTransition) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}
	task, err := op(h.GetDB(c), actor, c.Param("id"))
	h.respond(c, task, err)
}

func (h *TaskHandler) respond(c *gin.Context, task *dto.TaskResponse, err error) {
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}
