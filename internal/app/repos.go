package app

import (
	"gorm.io/gorm"

	roadmapRepos "github.com/yungbote/skillpath-backend/internal/data/repos/roadmap"
	userRepos "github.com/yungbote/skillpath-backend/internal/data/repos/user"
	"github.com/yungbote/skillpath-backend/internal/platform/logger"
)

type Repos struct {
	User      userRepos.UserRepo
	UserToken userRepos.UserTokenRepo
	Roadmap   roadmapRepos.RoadmapRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:      userRepos.NewUserRepo(db, log),
		UserToken: userRepos.NewUserTokenRepo(db, log),
		Roadmap:   roadmapRepos.NewRoadmapRepo(db, log),
	}
}
