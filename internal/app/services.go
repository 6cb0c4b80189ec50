package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/skillpath-backend/internal/platform/logger"
	"github.com/yungbote/skillpath-backend/internal/services"
)

type Services struct {
	Auth        services.AuthService
	User        services.UserService
	Roadmap     services.RoadmapService
	Tutor       services.TutorService
	Certificate services.CertificateService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, repos Repos, clients Clients) Services {
	log.Info("Wiring services...")
	return Services{
		Auth:        services.NewAuthService(db, log, repos.User, repos.UserToken, cfg.JWTSecretKey, cfg.AccessTokenTTL, cfg.RefreshTokenTTL),
		User:        services.NewUserService(db, log, repos.User, repos.Roadmap),
		Roadmap:     services.NewRoadmapService(db, log, repos.Roadmap),
		Tutor:       services.NewTutorService(db, log, clients.Gemini, repos.Roadmap),
		Certificate: services.NewCertificateService(db, log, repos.Roadmap, repos.User),
	}
}
