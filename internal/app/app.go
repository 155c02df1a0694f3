package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"studymate_backend/internal/config"
	"studymate_backend/internal/controller"
	"studymate_backend/internal/repository"
	"studymate_backend/internal/service"
	"studymate_backend/pkg/database"
	"studymate_backend/pkg/logger"
	"studymate_backend/pkg/monitoring"
	"studymate_backend/pkg/security"
	"studymate_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user      *repository.UserRepository
	project   *repository.ProjectRepository
	studyPlan *repository.StudyPlanRepository
	flashcard *repository.FlashcardRepository
	qa        *repository.QARepository
	roadmap   *repository.RoadmapRepository
	slide     *repository.SlideRepository
	summary   *repository.SummaryRepository
}

type services struct {
	auth      *service.AuthService
	storage   *service.StorageService
	upload    *service.UploadService
	project   *service.ProjectService
	studyPlan *service.StudyPlanService
	flashcard *service.FlashcardService
	qa        *service.QAService
	roadmap   *service.RoadmapService
	slides    *service.SlidesService
	summary   *service.SummaryService
	chat      *service.ChatService
}

type controllers struct {
	auth     *controller.AuthController
	project  *controller.ProjectController
	artifact *controller.ArtifactController
	generate *controller.GenerateController
	upload   *controller.UploadController
	chat     *controller.ChatController
	health   *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig runs every registered callback against a freshly loaded config.
func (a *App) ApplyConfig(cfg *config.Config) {
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:      repository.NewUserRepository(db),
		project:   repository.NewProjectRepository(db),
		studyPlan: repository.NewStudyPlanRepository(db),
		flashcard: repository.NewFlashcardRepository(db),
		qa:        repository.NewQARepository(db),
		roadmap:   repository.NewRoadmapRepository(db),
		slide:     repository.NewSlideRepository(db),
		summary:   repository.NewSummaryRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	ai := service.NewAIService(cfg.AI)

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.upload = service.NewUploadService(repos.project, s.storage)
	s.project = service.NewProjectService(repos.project, repos.studyPlan, repos.flashcard, repos.qa)
	s.studyPlan = service.NewStudyPlanService(repos.studyPlan, repos.project, ai)
	s.flashcard = service.NewFlashcardService(repos.flashcard, repos.project, ai)
	s.qa = service.NewQAService(repos.qa, repos.project, ai)
	s.roadmap = service.NewRoadmapService(repos.roadmap, repos.project, ai)
	s.slides = service.NewSlidesService(repos.slide, repos.project, ai)
	s.summary = service.NewSummaryService(repos.summary, repos.project, ai)
	s.chat = service.NewChatService(repos.project, ai, rdb)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, cfg *config.Config) *controllers {
	return &controllers{
		auth:     controller.NewAuthController(s.auth, cfg.Server.FrontendURL),
		project:  controller.NewProjectController(s.project),
		artifact: controller.NewArtifactController(s.studyPlan, s.flashcard, s.qa, s.roadmap, s.slides, s.summary),
		generate: controller.NewGenerateController(s.studyPlan, s.flashcard, s.qa, s.roadmap, s.slides, s.summary),
		upload:   controller.NewUploadController(s.upload),
		chat:     controller.NewChatController(s.chat),
		health:   controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	// Release deployments migrate only when asked to.
	if cfg.Server.Mode != "release" || cfg.ForceMigrate {
		if err := database.Migrate(db); err != nil {
			logger.Log.Fatal("Failed to migrate database", zap.Error(err))
		}
		logger.Log.Info("Database migration completed")
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// Redis only backs the chat cache, the app works without it.
		logger.Log.Warn("Redis unavailable, chat caching disabled", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db, cfg)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("studymate-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	app.RegisterConfigCallback(func(newCfg *config.Config) {
		// Middleware and service wiring keep their startup settings; only
		// the stored config is refreshed until the next restart.
		app.Config = newCfg
		logger.Log.Info("Configuration reloaded")
	})

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
