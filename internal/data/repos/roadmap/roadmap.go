package roadmap

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/skillpath-backend/internal/domain/roadmap"
	"github.com/yungbote/skillpath-backend/internal/platform/logger"
)

type RoadmapRepo interface {
	Create(ctx context.Context, tx *gorm.DB, roadmaps []*types.Roadmap) ([]*types.Roadmap, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, roadmapIDs []uuid.UUID) ([]*types.Roadmap, error)
	// GetByUserIDs returns roadmaps newest first.
	GetByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*types.Roadmap, error)
	Save(ctx context.Context, tx *gorm.DB, roadmap *types.Roadmap) error
	Delete(ctx context.Context, tx *gorm.DB, roadmapID uuid.UUID) error
}

type roadmapRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRoadmapRepo(db *gorm.DB, baseLog *logger.Logger) RoadmapRepo {
	repoLog := baseLog.With("repo", "RoadmapRepo")
	return &roadmapRepo{db: db, log: repoLog}
}

func (rr *roadmapRepo) Create(ctx context.Context, tx *gorm.DB, roadmaps []*types.Roadmap) ([]*types.Roadmap, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	if len(roadmaps) == 0 {
		return []*types.Roadmap{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&roadmaps).Error; err != nil {
		return nil, err
	}
	return roadmaps, nil
}

func (rr *roadmapRepo) GetByIDs(ctx context.Context, tx *gorm.DB, roadmapIDs []uuid.UUID) ([]*types.Roadmap, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	var results []*types.Roadmap
	if len(roadmapIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("id IN ?", roadmapIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (rr *roadmapRepo) GetByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*types.Roadmap, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	var results []*types.Roadmap
	if len(userIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// Save writes the whole aggregate back; every mutation is a full
// read-modify-write of one row.
func (rr *roadmapRepo) Save(ctx context.Context, tx *gorm.DB, roadmap *types.Roadmap) error {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	return transaction.WithContext(ctx).Save(roadmap).Error
}

func (rr *roadmapRepo) Delete(ctx context.Context, tx *gorm.DB, roadmapID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", roadmapID).
		Delete(&types.Roadmap{}).Error
}
