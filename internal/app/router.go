package app

import (
	"studymate_backend/docs"
	"studymate_backend/internal/config"
	"studymate_backend/internal/middleware"
	"studymate_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
		public.GET("/auth/google", c.auth.GoogleLogin)
		public.GET("/auth/google/callback", c.auth.GoogleCallback)
	}

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/auth/me", c.auth.Me)

		projects := authGroup.Group("/projects")
		{
			projects.POST("", c.project.Create)
			projects.GET("", c.project.List)
			projects.GET("/:projectId", c.project.Get)
			projects.PUT("/:projectId", c.project.Update)
			projects.DELETE("/:projectId", c.project.Delete)
			projects.PUT("/:projectId/progress", c.project.UpdateProgress)

			projects.GET("/:projectId/study-plan", c.artifact.GetStudyPlan)
			projects.GET("/:projectId/flashcards", c.artifact.GetFlashcards)
			projects.GET("/:projectId/qa", c.artifact.GetQA)
			projects.GET("/:projectId/roadmap", c.artifact.GetRoadmap)
			projects.GET("/:projectId/slides", c.artifact.GetSlides)
		}

		generate := authGroup.Group("/generate")
		{
			generate.POST("/study-plan", c.generate.StudyPlan)
			generate.POST("/flashcards", c.generate.FlashcardsGen)
			generate.POST("/qa", c.generate.QAGen)
			generate.POST("/roadmap", c.generate.Roadmap)
			generate.POST("/slides", c.generate.SlidesGen)
			generate.POST("/summary", c.generate.Summary)
		}

		authGroup.PUT("/study-plans/:studyPlanId/items/:itemIndex/status", c.artifact.UpdateStudyPlanItemStatus)
		authGroup.GET("/summary/:projectId", c.artifact.GetSummary)
		authGroup.POST("/upload/:projectId", c.upload.Upload)
		authGroup.POST("/chat/:projectId", c.chat.Chat)
	}
}
