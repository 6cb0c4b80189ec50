package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	roadmapRepos "github.com/yungbote/skillpath-backend/internal/data/repos/roadmap"
	userRepos "github.com/yungbote/skillpath-backend/internal/data/repos/user"
	"github.com/yungbote/skillpath-backend/internal/domain/roadmap"
	types "github.com/yungbote/skillpath-backend/internal/domain/user"
	"github.com/yungbote/skillpath-backend/internal/platform/apierr"
	"github.com/yungbote/skillpath-backend/internal/platform/ctxutil"
	"github.com/yungbote/skillpath-backend/internal/platform/logger"
)

// PublicUser carries the display fields safe for an unauthenticated reader:
// no email, no credentials.
type PublicUser struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	CreatedAt time.Time `json:"createdAt"`
}

type ProfileStats struct {
	Joined         time.Time `json:"joined"`
	CompletedCount int       `json:"completedCount"`
	TotalCount     int       `json:"totalCount"`
	TopSkills      []string  `json:"topSkills"`
}

type PublicProfile struct {
	User     PublicUser         `json:"user"`
	Stats    ProfileStats       `json:"stats"`
	Roadmaps []*roadmap.Roadmap `json:"roadmaps"`
}

type UserService interface {
	GetMe(ctx context.Context) (*types.User, error)
	GetPublicProfile(ctx context.Context, userID uuid.UUID) (*PublicProfile, error)
}

type userService struct {
	db          *gorm.DB
	log         *logger.Logger
	userRepo    userRepos.UserRepo
	roadmapRepo roadmapRepos.RoadmapRepo
}

func NewUserService(db *gorm.DB, log *logger.Logger, userRepo userRepos.UserRepo, roadmapRepo roadmapRepos.RoadmapRepo) UserService {
	serviceLog := log.With("service", "UserService")
	return &userService{db: db, log: serviceLog, userRepo: userRepo, roadmapRepo: roadmapRepo}
}

func (us *userService) GetMe(ctx context.Context) (*types.User, error) {
	rd := ctxutil.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, errors.New("not authenticated")
	}
	users, err := us.userRepo.GetByIDs(ctx, nil, []uuid.UUID{rd.UserID})
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if len(users) == 0 {
		return nil, apierr.New(http.StatusNotFound, "not_found", errors.New("user not found"))
	}
	return users[0], nil
}

func (us *userService) GetPublicProfile(ctx context.Context, userID uuid.UUID) (*PublicProfile, error) {
	users, err := us.userRepo.GetByIDs(ctx, nil, []uuid.UUID{userID})
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if len(users) == 0 {
		return nil, apierr.New(http.StatusNotFound, "not_found", errors.New("user not found"))
	}
	user := users[0]

	roadmaps, err := us.roadmapRepo.GetByUserIDs(ctx, nil, []uuid.UUID{userID})
	if err != nil {
		return nil, fmt.Errorf("load roadmaps: %w", err)
	}

	var topSkills []string
	completedCount := 0
	for _, rm := range roadmaps {
		if !rm.IsCompleted {
			continue
		}
		completedCount++
		if len(topSkills) < 3 {
			topSkills = append(topSkills, rm.Skill)
		}
	}

	return &PublicProfile{
		User: PublicUser{
			ID:        user.ID,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			CreatedAt: user.CreatedAt,
		},
		Stats: ProfileStats{
			Joined:         user.CreatedAt,
			CompletedCount: completedCount,
			TotalCount:     len(roadmaps),
			TopSkills:      topSkills,
		},
		Roadmaps: roadmaps,
	}, nil
}
