package app

import (
	"github.com/yungbote/skillpath-backend/internal/http"
	httpH "github.com/yungbote/skillpath-backend/internal/http/handlers"
	httpMW "github.com/yungbote/skillpath-backend/internal/http/middleware"
	"github.com/yungbote/skillpath-backend/internal/platform/logger"
)

type Middleware struct {
	Auth *httpMW.AuthMiddleware
}

type Handlers struct {
	Health  *httpH.HealthHandler
	Auth    *httpH.AuthHandler
	User    *httpH.UserHandler
	Public  *httpH.PublicHandler
	Roadmap *httpH.RoadmapHandler
	Tutor   *httpH.TutorHandler
}

func wireHandlers(log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:  httpH.NewHealthHandler(),
		Auth:    httpH.NewAuthHandler(services.Auth),
		User:    httpH.NewUserHandler(services.User),
		Public:  httpH.NewPublicHandler(services.User),
		Roadmap: httpH.NewRoadmapHandler(services.Roadmap, services.Certificate),
		Tutor:   httpH.NewTutorHandler(services.Tutor),
	}
}

func wireMiddleware(log *logger.Logger, services Services) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		Auth: httpMW.NewAuthMiddleware(log, services.Auth),
	}
}

func wireServer(log *logger.Logger, handlers Handlers, middleware Middleware) *http.Server {
	return http.NewServer(http.RouterConfig{
		Logger:         log,
		HealthHandler:  handlers.Health,
		AuthHandler:    handlers.Auth,
		AuthMiddleware: middleware.Auth,
		UserHandler:    handlers.User,
		PublicHandler:  handlers.Public,
		RoadmapHandler: handlers.Roadmap,
		TutorHandler:   handlers.Tutor,
	})
}
