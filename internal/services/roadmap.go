package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"gorm.io/gorm"

	roadmapRepos "github.com/yungbote/skillpath-backend/internal/data/repos/roadmap"
	"github.com/yungbote/skillpath-backend/internal/domain/roadmap"
	"github.com/yungbote/skillpath-backend/internal/platform/apierr"
	"github.com/yungbote/skillpath-backend/internal/platform/logger"
)

type RoadmapService interface {
	Save(ctx context.Context, userID uuid.UUID, skill, description string, phases []roadmap.Phase, capstone *roadmap.Task) (*roadmap.Roadmap, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*roadmap.Roadmap, error)
	Get(ctx context.Context, roadmapID, userID uuid.UUID) (*roadmap.Roadmap, error)
	Update(ctx context.Context, roadmapID, userID uuid.UUID, phases []roadmap.Phase, capstone *roadmap.Task, isCompleted bool) (*roadmap.Roadmap, error)
	Delete(ctx context.Context, roadmapID, userID uuid.UUID) error
	LogTopicTime(ctx context.Context, roadmapID, userID uuid.UUID, phaseIndex, topicIndex int, timeSpentSeconds float64) (*roadmap.Roadmap, error)
}

type roadmapService struct {
	db          *gorm.DB
	log         *logger.Logger
	roadmapRepo roadmapRepos.RoadmapRepo
}

func NewRoadmapService(db *gorm.DB, log *logger.Logger, roadmapRepo roadmapRepos.RoadmapRepo) RoadmapService {
	serviceLog := log.With("service", "RoadmapService")
	return &roadmapService{db: db, log: serviceLog, roadmapRepo: roadmapRepo}
}

func (rs *roadmapService) Save(ctx context.Context, userID uuid.UUID, skill, description string, phases []roadmap.Phase, capstone *roadmap.Task) (*roadmap.Roadmap, error) {
	rm := &roadmap.Roadmap{
		ID:          uuid.New(),
		UserID:      userID,
		Skill:       skill,
		Description: description,
		Phases:      phases,
	}
	rm.SetCapstone(capstone)
	roadmap.RecomputeCompletion(rm)

	created, err := rs.roadmapRepo.Create(ctx, nil, []*roadmap.Roadmap{rm})
	if err != nil {
		return nil, fmt.Errorf("create roadmap: %w", err)
	}
	return created[0], nil
}

func (rs *roadmapService) ListByUser(ctx context.Context, userID uuid.UUID) ([]*roadmap.Roadmap, error) {
	results, err := rs.roadmapRepo.GetByUserIDs(ctx, nil, []uuid.UUID{userID})
	if err != nil {
		return nil, fmt.Errorf("list roadmaps: %w", err)
	}
	return results, nil
}

// getOwned loads one roadmap: 404 when absent, 401 when owned by someone else.
func (rs *roadmapService) getOwned(ctx context.Context, roadmapID, userID uuid.UUID) (*roadmap.Roadmap, error) {
	found, err := rs.roadmapRepo.GetByIDs(ctx, nil, []uuid.UUID{roadmapID})
	if err != nil {
		return nil, fmt.Errorf("load roadmap: %w", err)
	}
	if len(found) == 0 {
		return nil, apierr.New(http.StatusNotFound, "not_found", errors.New("roadmap not found"))
	}
	if found[0].UserID != userID {
		return nil, apierr.New(http.StatusUnauthorized, "not_owner", errors.New("user not authorized"))
	}
	return found[0], nil
}

func (rs *roadmapService) Get(ctx context.Context, roadmapID, userID uuid.UUID) (*roadmap.Roadmap, error) {
	return rs.getOwned(ctx, roadmapID, userID)
}

func (rs *roadmapService) Update(ctx context.Context, roadmapID, userID uuid.UUID, phases []roadmap.Phase, capstone *roadmap.Task, isCompleted bool) (*roadmap.Roadmap, error) {
	rm, err := rs.getOwned(ctx, roadmapID, userID)
	if err != nil {
		return nil, err
	}

	rm.Phases = phases
	rm.SetCapstone(capstone)
	rm.IsCompleted = isCompleted
	// IsCompleted is derived-but-persisted: the stored value always reflects
	// the leaf flags, whatever the client claimed.
	roadmap.RecomputeCompletion(rm)

	if err := rs.roadmapRepo.Save(ctx, nil, rm); err != nil {
		return nil, fmt.Errorf("save roadmap: %w", err)
	}
	return rm, nil
}

func (rs *roadmapService) Delete(ctx context.Context, roadmapID, userID uuid.UUID) error {
	rm, err := rs.getOwned(ctx, roadmapID, userID)
	if err != nil {
		return err
	}
	if err := rs.roadmapRepo.Delete(ctx, nil, rm.ID); err != nil {
		return fmt.Errorf("delete roadmap: %w", err)
	}
	return nil
}

func (rs *roadmapService) LogTopicTime(ctx context.Context, roadmapID, userID uuid.UUID, phaseIndex, topicIndex int, timeSpentSeconds float64) (*roadmap.Roadmap, error) {
	found, err := rs.roadmapRepo.GetByIDs(ctx, nil, []uuid.UUID{roadmapID})
	if err != nil {
		return nil, fmt.Errorf("load roadmap: %w", err)
	}
	if len(found) == 0 || found[0].UserID != userID {
		return nil, apierr.New(http.StatusNotFound, "not_found", errors.New("roadmap not found"))
	}
	rm := found[0]

	if phaseIndex < 0 || phaseIndex >= len(rm.Phases) {
		return nil, apierr.New(http.StatusBadRequest, "invalid_request", errors.New("phase index out of range"))
	}
	if topicIndex < 0 || topicIndex >= len(rm.Phases[phaseIndex].Topics) {
		return nil, apierr.New(http.StatusBadRequest, "invalid_request", errors.New("topic index out of range"))
	}
	if timeSpentSeconds < 0 {
		return nil, apierr.New(http.StatusBadRequest, "invalid_request", errors.New("time spent must be non-negative"))
	}

	// timeSpent accumulates in minutes and never decreases.
	rm.Phases[phaseIndex].Topics[topicIndex].TimeSpent += timeSpentSeconds / 60

	if err := rs.roadmapRepo.Save(ctx, nil, rm); err != nil {
		return nil, fmt.Errorf("save roadmap: %w", err)
	}
	return rm, nil
}
