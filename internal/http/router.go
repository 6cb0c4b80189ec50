package http

import (
	"github.com/gin-gonic/gin"
	httpH "github.com/yungbote/skillpath-backend/internal/http/handlers"
	httpMW "github.com/yungbote/skillpath-backend/internal/http/middleware"
	"github.com/yungbote/skillpath-backend/internal/platform/logger"
)

type RouterConfig struct {
	Logger         *logger.Logger
	AuthHandler    *httpH.AuthHandler
	AuthMiddleware *httpMW.AuthMiddleware
	UserHandler    *httpH.UserHandler
	PublicHandler  *httpH.PublicHandler

	RoadmapHandler *httpH.RoadmapHandler
	TutorHandler   *httpH.TutorHandler

	HealthHandler *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.Default()
	r.Use(httpMW.AttachRequestContext())
	r.Use(httpMW.CORS())
	if cfg.Logger != nil {
		r.Use(httpMW.RequestLogger(cfg.Logger))
	}

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		// Auth (public)
		if cfg.AuthHandler != nil {
			api.POST("/register", cfg.AuthHandler.Register)
			api.POST("/login", cfg.AuthHandler.Login)
			api.POST("/refresh", cfg.AuthHandler.Refresh)
		}

		// Public profiles
		if cfg.PublicHandler != nil {
			api.GET("/public/profile/:id", cfg.PublicHandler.GetProfile)
		}
	}

	protected := api.Group("/")
	{
		// Middleware
		if cfg.AuthMiddleware != nil {
			protected.Use(cfg.AuthMiddleware.RequireAuth())
		}

		// Auth (protected)
		if cfg.AuthHandler != nil {
			protected.POST("/logout", cfg.AuthHandler.Logout)
		}

		// User (Me)
		if cfg.UserHandler != nil {
			protected.GET("/me", cfg.UserHandler.GetMe)
		}

		roadmap := protected.Group("/roadmap")
		{
			// AI tutor
			if cfg.TutorHandler != nil {
				roadmap.POST("/generate", cfg.TutorHandler.Generate)
				roadmap.POST("/explain", cfg.TutorHandler.Explain)
				roadmap.POST("/chat", cfg.TutorHandler.Chat)
				roadmap.POST("/:id/schedule", cfg.TutorHandler.Schedule)
			}

			// Roadmap CRUD
			if cfg.RoadmapHandler != nil {
				roadmap.POST("/save", cfg.RoadmapHandler.Save)
				roadmap.GET("/user/all", cfg.RoadmapHandler.ListMine)
				roadmap.GET("/:id", cfg.RoadmapHandler.Get)
				roadmap.PUT("/:id/update", cfg.RoadmapHandler.Update)
				roadmap.DELETE("/:id", cfg.RoadmapHandler.Delete)
				roadmap.PUT("/:id/topic/time", cfg.RoadmapHandler.LogTopicTime)
				roadmap.GET("/:id/certificate", cfg.RoadmapHandler.Certificate)
			}
		}
	}

	return r
}
