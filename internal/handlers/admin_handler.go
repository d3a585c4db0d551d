package handlers

import (
	"net/http"

	"workhub_backend/internal/services"
	"workhub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// AdminHandler - операции администратора; группа закрыта RequireRoles(ADMIN)
type AdminHandler struct {
	*BaseHandler
	adminService services.AdminService
	taskService  services.TaskService
}

func NewAdminHandler(base *BaseHandler, adminService services.AdminService, taskService services.TaskService) *AdminHandler {
	return &AdminHandler{
		BaseHandler:  base,
		adminService: adminService,
		taskService:  taskService,
	}
}

func (h *AdminHandler) RegisterRoutes(admin *gin.RouterGroup) {
	admin.GET("/users", h.ListUsers)
	admin.PATCH("/users/:id/status", h.UpdateUserStatus)
	admin.GET("/tasks", h.ListTasks)
	admin.POST("/tasks/:id/cancel", h.CancelTask)
	admin.GET("/stats", h.Stats)
	admin.POST("/ratings/reconcile", h.Reconcile)
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	var query dto.UserListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	list, err := h.adminService.ListUsers(h.GetDB(c), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// UpdateUserStatus godoc
// @Summary Заблокировать или разблокировать пользователя
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID пользователя"
// @Param request body dto.UpdateUserStatusRequest true "Новый статус"
// @Success 200 {object} dto.UserDTO
// @Failure 403 {object} apperrors.ErrorResponse "Нельзя менять свой статус"
// @Router /admin/users/{id}/status [patch]
func (h *AdminHandler) UpdateUserStatus(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}
	var req dto.UpdateUserStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	user, err := h.adminService.UpdateUserStatus(h.GetDB(c), actor, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *AdminHandler) ListTasks(c *gin.Context) {
	var query dto.TaskListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	list, err := h.adminService.ListTasks(h.GetDB(c), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// CancelTask - принудительная отмена задачи администратором
func (h *AdminHandler) CancelTask(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	task, err := h.taskService.Cancel(h.GetDB(c), actor, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.adminService.Stats(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *AdminHandler) Reconcile(c *gin.Context) {
	res, err := h.adminService.Reconcile(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
