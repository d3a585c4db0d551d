package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"workhub_backend/database"
	"workhub_backend/internal/ai"
	"workhub_backend/internal/auth"
	"workhub_backend/internal/config"
	"workhub_backend/internal/email"
	"workhub_backend/internal/handlers"
	"workhub_backend/internal/imageprocessor"
	"workhub_backend/internal/logger"
	"workhub_backend/internal/middleware"
	"workhub_backend/internal/routes"
	"workhub_backend/internal/services"
	"workhub_backend/internal/storage"
	"workhub_backend/internal/tokens"
	"workhub_backend/internal/validator"
	"workhub_backend/internal/workers"
	"workhub_backend/pkg/apperrors"
	"workhub_backend/ws"

	"github.com/gin-gonic/gin"
	"github.com/redis/rueidis"
	"gorm.io/gorm"
)

// App - собранное приложение: БД, сервисы и HTTP роутер
type App struct {
	Config   *config.Config
	DB       *gorm.DB
	Router   *gin.Engine
	Services *services.ServiceContainer
	Hub      *ws.WebSocketManager
	Files    storage.Storage

	repos   *services.Repositories
	revoked tokens.Store
	redis   rueidis.Client
	stopHub context.CancelFunc
}

// New подключается к БД (с миграцией, если включена) и собирает приложение
func New(cfg *config.Config) (*App, error) {
	logger.Info("Connecting to database...", "driver", cfg.Database.Driver)
	db, err := database.Open(cfg)
	if err != nil {
		return nil, err
	}
	logger.Info("Database connected")

	if cfg.Database.AutoMigrate {
		if err := database.AutoMigrate(db); err != nil {
			_ = database.Close(db)
			return nil, err
		}
	}

	a, err := NewWithDB(cfg, db)
	if err != nil {
		_ = database.Close(db)
		return nil, err
	}
	return a, nil
}

// NewWithDB собирает приложение поверх уже открытой БД
func NewWithDB(cfg *config.Config, db *gorm.DB) (*App, error) {
	apperrors.SetDebug(cfg.IsDevelopment())

	a := &App{
		Config: cfg,
		DB:     db,
		repos:  services.NewRepositories(),
	}

	if err := a.initRevocationStore(); err != nil {
		return nil, err
	}

	files, err := initStorage(cfg)
	if err != nil {
		a.closeRedis()
		return nil, err
	}
	a.Files = files

	hubCtx, stopHub := context.WithCancel(context.Background())
	a.Hub = ws.NewWebSocketManager()
	a.stopHub = stopHub
	go a.Hub.Run(hubCtx)

	jwtManager := auth.NewJWTManager(cfg.JWT.Secret, cfg.TokenTTL())
	a.Services = services.NewServiceContainer(a.repos, services.Dependencies{
		JWT:           jwtManager,
		RevokedTokens: a.revoked,
		Scorer:        a.initScorer(),
		Assistant:     a.initAssistant(),
		EmailProvider: initEmailProvider(cfg),
		Storage:       files,
		Images:        imageprocessor.NewProcessor(cfg.Storage.ImageQuality),
		AttachmentLimits: services.AttachmentLimits{
			MaxBytes:   cfg.MaxUploadBytes(),
			MaxPerTask: cfg.Storage.MaxPerTask,
			URLTTL:     cfg.StorageURLTTL(),
		},
		Publisher: a.Hub,
	})

	origins := splitOrigins(cfg.Server.CORSOrigins)
	appHandlers := handlers.NewAppHandlers(a.Services, validator.New(), cfg.MaxUploadBytes())
	a.Router = initializeGinRouter(cfg, db, origins)
	if local, ok := files.(*storage.LocalStorage); ok {
		a.Router.Static("/files", local.BasePath())
	}
	routes.RegisterRoutes(a.Router, appHandlers, ws.NewWebSocketHandler(a.Hub, origins),
		middleware.AuthMiddleware(jwtManager, a.revoked))

	return a, nil
}

func initStorage(cfg *config.Config) (storage.Storage, error) {
	files, err := storage.NewStorage(storage.Config{
		Type:       cfg.Storage.Type,
		BasePath:   cfg.Storage.BasePath,
		BaseURL:    cfg.Storage.BaseURL,
		Bucket:     cfg.Storage.Bucket,
		Region:     cfg.Storage.Region,
		AccessKey:  cfg.Storage.AccessKey,
		SecretKey:  cfg.Storage.SecretKey,
		Endpoint:   cfg.Storage.Endpoint,
		PublicRead: cfg.Storage.PublicRead,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to init file storage: %w", err)
	}
	logger.Info("File storage initialized", "provider", files.Provider())
	return files, nil
}

func (a *App) initRevocationStore() error {
	cfg := a.Config
	if cfg.Redis.Addr == "" {
		logger.Info("Token revocation store: SQL table")
		a.revoked = tokens.NewSQLStore(a.DB, a.repos.RevokedTokens)
		return nil
	}

	client, err := tokens.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password)
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	logger.Info("Token revocation store: redis", "addr", cfg.Redis.Addr)
	a.redis = client
	a.revoked = tokens.NewRedisStore(client, cfg.Redis.KeyPrefix)
	return nil
}

func (a *App) completer() ai.ChatCompleter {
	cfg := a.Config
	if !cfg.AI.Enabled {
		return nil
	}
	return ai.NewOpenAIClient(ai.ClientConfig{
		APIKey:  cfg.AI.APIKey,
		BaseURL: cfg.AI.BaseURL,
		Model:   cfg.AI.Model,
		Timeout: cfg.AITimeout(),
	})
}

func (a *App) initScorer() ai.Scorer {
	if c := a.completer(); c != nil {
		logger.Info("Match scorer: LLM", "model", a.Config.AI.Model)
		return ai.NewLLMScorer(c)
	}
	logger.Info("Match scorer: rule-based")
	return ai.NewRuleScorer()
}

func (a *App) initAssistant() *ai.Assistant {
	return ai.NewAssistant(a.completer())
}

func initEmailProvider(cfg *config.Config) email.Provider {
	if !cfg.Email.Enabled {
		logger.Warn("Email notifications disabled, using no-op provider")
		return email.NoopProvider{}
	}

	return email.NewSMTPProvider(email.SMTPConfig{
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
	})
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB, origins []string) *gin.Engine {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(origins))
	router.Use(middleware.DBMiddleware(db))
	return router
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// SeedAdmin создает первого администратора из конфига, если его еще нет
func (a *App) SeedAdmin() error {
	adminEmail := a.Config.FirstAdminEmail
	adminPassword := a.Config.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	created, err := a.Services.AuthService.SeedAdmin(a.DB, adminEmail, adminPassword)
	if err != nil {
		return fmt.Errorf("failed to seed first admin: %w", err)
	}
	if created {
		logger.Info("First admin user created", "email", adminEmail)
	} else {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
	}
	return nil
}

// StartWorkers запускает фоновые воркеры; они останавливаются при отмене ctx
func (a *App) StartWorkers(ctx context.Context) {
	cfg := a.Config
	workers.NewRatingWorker(a.DB, a.Services.ReviewService,
		time.Duration(cfg.Workers.RatingReconcileInterval)*time.Minute).Start(ctx)

	workers.NewNotificationCleanupWorker(a.DB, a.Services.NotificationService,
		time.Duration(cfg.Workers.NotificationCleanup)*time.Minute,
		time.Duration(cfg.Workers.NotificationRetention)*24*time.Hour).Start(ctx)

	// Redis удаляет записи по TTL сам
	if cleaner, ok := a.revoked.(tokens.Cleaner); ok {
		workers.NewTokenCleanupWorker(cleaner,
			time.Duration(cfg.Workers.TokenCleanupInterval)*time.Minute).Start(ctx)
	}
}

// Run обслуживает HTTP до отмены ctx, затем корректно останавливает сервер
func (a *App) Run(ctx context.Context) error {
	if err := a.SeedAdmin(); err != nil {
		return err
	}

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()
	a.StartWorkers(workerCtx)

	srv := &http.Server{
		Addr:              a.Config.Address(),
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server startup error: %w", err)
		}
	case <-ctx.Done():
	}

	logger.Info("Shutting down server...")
	stopWorkers()

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(a.Config.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	a.Services.NotificationService.Wait()
	logger.Info("Server stopped")
	return nil
}

// Close закрывает WebSocket-соединения и освобождает БД и Redis
func (a *App) Close() error {
	if a.stopHub != nil {
		a.stopHub()
	}
	a.closeRedis()
	return database.Close(a.DB)
}

func (a *App) closeRedis() {
	if a.redis != nil {
		a.redis.Close()
		a.redis = nil
	}
}
