package roadmap

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/yungbote/skillpath-backend/internal/data/repos/testutil"
	types "github.com/yungbote/skillpath-backend/internal/domain/roadmap"
)

func seed(t *testing.T, repo RoadmapRepo, userID uuid.UUID, skill string) *types.Roadmap {
	t.Helper()
	rm := &types.Roadmap{
		ID:     uuid.New(),
		UserID: userID,
		Skill:  skill,
		Phases: []types.Phase{
			{
				PhaseName: "Beginner",
				Topics:    []types.Topic{{TopicName: "Basics"}},
			},
		},
	}
	rm.SetCapstone(&types.Task{Title: "Capstone", Description: "Final project"})
	if _, err := repo.Create(context.Background(), nil, []*types.Roadmap{rm}); err != nil {
		t.Fatalf("create roadmap: %v", err)
	}
	return rm
}

func TestRoadmapRepoDocumentRoundTrip(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewRoadmapRepo(tx, testutil.Logger(t))

	seeded := seed(t, repo, uuid.New(), "Go")

	found, err := repo.GetByIDs(ctx, nil, []uuid.UUID{seeded.ID})
	if err != nil {
		t.Fatalf("get by ids: %v", err)
	}
	if len(found) != 1 {
		t.Fatalf("expected 1 roadmap, got %d", len(found))
	}
	rm := found[0]
	if len(rm.Phases) != 1 || rm.Phases[0].Topics[0].TopicName != "Basics" {
		t.Fatalf("phase document did not survive the round trip: %+v", rm.Phases)
	}
	capstone := rm.Capstone()
	if capstone == nil || capstone.Title != "Capstone" {
		t.Fatalf("capstone did not survive the round trip: %+v", capstone)
	}
}

func TestRoadmapRepoSavePersistsMutations(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewRoadmapRepo(tx, testutil.Logger(t))

	seeded := seed(t, repo, uuid.New(), "Go")
	seeded.Phases[0].Topics[0].Completed = true
	seeded.Phases[0].Topics[0].DueDate = "2026-09-02"
	seeded.Phases[0].Topics[0].TimeSpent = 12.5
	if err := repo.Save(ctx, nil, seeded); err != nil {
		t.Fatalf("save roadmap: %v", err)
	}

	found, err := repo.GetByIDs(ctx, nil, []uuid.UUID{seeded.ID})
	if err != nil {
		t.Fatalf("get by ids: %v", err)
	}
	topic := found[0].Phases[0].Topics[0]
	if !topic.Completed || topic.DueDate != "2026-09-02" || topic.TimeSpent != 12.5 {
		t.Fatalf("mutations not persisted: %+v", topic)
	}
}

func TestRoadmapRepoGetByUserIDsNewestFirst(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewRoadmapRepo(tx, testutil.Logger(t))

	userID := uuid.New()
	seed(t, repo, userID, "Go")
	seed(t, repo, userID, "Rust")
	seed(t, repo, uuid.New(), "SQL")

	mine, err := repo.GetByUserIDs(ctx, nil, []uuid.UUID{userID})
	if err != nil {
		t.Fatalf("get by user ids: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("expected 2 roadmaps, got %d", len(mine))
	}
	for _, rm := range mine {
		if rm.UserID != userID {
			t.Fatalf("returned a roadmap owned by someone else: %+v", rm)
		}
	}
}

func TestRoadmapRepoDelete(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewRoadmapRepo(tx, testutil.Logger(t))

	seeded := seed(t, repo, uuid.New(), "Go")
	if err := repo.Delete(ctx, nil, seeded.ID); err != nil {
		t.Fatalf("delete roadmap: %v", err)
	}

	found, err := repo.GetByIDs(ctx, nil, []uuid.UUID{seeded.ID})
	if err != nil {
		t.Fatalf("get after delete: %v", err)
	}
	if len(found) != 0 {
		t.Fatalf("expected roadmap gone, got %d", len(found))
	}
}
