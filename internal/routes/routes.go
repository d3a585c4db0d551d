package routes

import (
	"net/http"

	_ "workhub_backend/docs"
	"workhub_backend/internal/handlers"
	"workhub_backend/internal/logger"
	"workhub_backend/internal/middleware"
	"workhub_backend/internal/models"
	"workhub_backend/ws"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes регистрирует все HTTP маршруты.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	realtime *ws.WebSocketHandler,
	authMiddleware gin.HandlerFunc,
) {
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	ginRouter.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Регистрация HTTP API v1
	api := ginRouter.Group("/api/v1")
	protected := api.Group("")
	protected.Use(authMiddleware)
	{
		appHandlers.AuthHandler.RegisterRoutes(api, protected)
		appHandlers.ProfileHandler.RegisterRoutes(api, protected)
		appHandlers.TaskHandler.RegisterRoutes(api, protected)
		appHandlers.ApplicationHandler.RegisterRoutes(protected)
		appHandlers.ReviewHandler.RegisterRoutes(api, protected)
		appHandlers.MatchingHandler.RegisterRoutes(protected)
		appHandlers.AttachmentHandler.RegisterRoutes(protected)
		appHandlers.NotificationHandler.RegisterRoutes(protected)
		realtime.RegisterRoutes(protected)
	}

	admin := api.Group("/admin")
	admin.Use(authMiddleware, middleware.RequireRoles(models.UserRoleAdmin))
	appHandlers.AdminHandler.RegisterRoutes(admin)

	logger.Info("HTTP routes registered", "routes", len(ginRouter.Routes()))
}
