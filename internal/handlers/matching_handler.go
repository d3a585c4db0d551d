package handlers

import (
	"net/http"

	"workhub_backend/internal/services"
	"workhub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type MatchingHandler struct {
	*BaseHandler
	matchingService  services.MatchingService
	assistantService services.AssistantService
}

func NewMatchingHandler(base *BaseHandler, matchingService services.MatchingService, assistantService services.AssistantService) *MatchingHandler {
	return &MatchingHandler{
		BaseHandler:      base,
		matchingService:  matchingService,
		assistantService: assistantService,
	}
}

func (h *MatchingHandler) RegisterRoutes(protected *gin.RouterGroup) {
	matching := protected.Group("/matching")
	{
		matching.GET("/recommendations", h.RecommendTasks)
		matching.GET("/tasks/:id/applications", h.RankApplications)
		matching.GET("/tasks/:id/workers/:workerId", h.Score)
	}
	protected.POST("/assistant", h.Ask)
}

// RecommendTasks godoc
// @Summary Рекомендованные задачи для исполнителя
// @Tags matching
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Сколько задач вернуть (по умолчанию 10)"
// @Success 200 {array} dto.TaskRecommendation
// @Router /matching/recommendations [get]
func (h *MatchingHandler) RecommendTasks(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}
	var query dto.RecommendQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	recs, err := h.matchingService.RecommendTasks(h.GetDB(c), actor, query.Limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, recs)
}

// RankApplications godoc
// @Summary Отклики задачи, отсортированные по совместимости
// @Tags matching
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID задачи"
// @Success 200 {array} dto.ApplicationRanking
// @Router /matching/tasks/{id}/applications [get]
func (h *MatchingHandler) RankApplications(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	ranked, err := h.matchingService.RankApplications(h.GetDB(c), actor, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ranked)
}

func (h *MatchingHandler) Score(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	result, err := h.matchingService.Score(h.GetDB(c), actor, c.Param("workerId"), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Ask godoc
// @Summary Вопрос AI-ассистенту
// @Description При недоступности модели возвращается запасной ответ с degraded=true
// @Tags assistant
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AssistantRequest true "Вопрос"
// @Success 200 {object} dto.AssistantResponse
// @Router /assistant [post]
func (h *MatchingHandler) Ask(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}
	var req dto.AssistantRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	answer, err := h.assistantService.Ask(c.Request.Context(), actor, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, answer)
}
