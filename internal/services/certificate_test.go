package services

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	roadmapRepos "github.com/yungbote/skillpath-backend/internal/data/repos/roadmap"
	"github.com/yungbote/skillpath-backend/internal/data/repos/testutil"
	userRepos "github.com/yungbote/skillpath-backend/internal/data/repos/user"
	"github.com/yungbote/skillpath-backend/internal/domain/roadmap"
	types "github.com/yungbote/skillpath-backend/internal/domain/user"
	"github.com/yungbote/skillpath-backend/internal/platform/apierr"
)

func newCertificateForTest(t *testing.T) (CertificateService, roadmapRepos.RoadmapRepo, userRepos.UserRepo) {
	t.Helper()
	log := testutil.Logger(t)
	tx := testutil.Tx(t, testutil.DB(t))
	roadmapRepo := roadmapRepos.NewRoadmapRepo(tx, log)
	userRepo := userRepos.NewUserRepo(tx, log)
	return NewCertificateService(tx, log, roadmapRepo, userRepo), roadmapRepo, userRepo
}

func TestRenderGuards(t *testing.T) {
	svc, repo, _ := newCertificateForTest(t)
	ctx := context.Background()
	ownerID := uuid.New()

	rm := &roadmap.Roadmap{ID: uuid.New(), UserID: ownerID, Skill: "Go"}
	_, err := repo.Create(ctx, nil, []*roadmap.Roadmap{rm})
	require.NoError(t, err)

	var apiErr *apierr.Error

	_, err = svc.Render(ctx, uuid.New(), ownerID)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Status)

	_, err = svc.Render(ctx, rm.ID, uuid.New())
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 401, apiErr.Status)

	// Completed is a hard gate: an unfinished roadmap never renders.
	_, err = svc.Render(ctx, rm.ID, ownerID)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 409, apiErr.Status)
	assert.Equal(t, "not_completed", apiErr.Code)
}

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestRenderProducesPNG(t *testing.T) {
	if os.Getenv("CERTIFICATE_FONT") == "" {
		t.Skip("CERTIFICATE_FONT not set")
	}

	svc, roadmapRepo, userRepo := newCertificateForTest(t)
	ctx := context.Background()

	owner := &types.User{ID: uuid.New(), Email: "cert@example.com", FirstName: "Ada", LastName: "Lovelace", Password: "hash"}
	_, err := userRepo.Create(ctx, nil, []*types.User{owner})
	require.NoError(t, err)

	rm := &roadmap.Roadmap{
		ID:     uuid.New(),
		UserID: owner.ID,
		Skill:  "Go",
		Phases: []roadmap.Phase{
			{PhaseName: "Beginner", Topics: []roadmap.Topic{{TopicName: "Syntax", Completed: true}}},
		},
		IsCompleted: true,
	}
	_, err = roadmapRepo.Create(ctx, nil, []*roadmap.Roadmap{rm})
	require.NoError(t, err)

	png, err := svc.Render(ctx, rm.ID, owner.ID)
	require.NoError(t, err)
	require.NotEmpty(t, png)
	assert.True(t, bytes.HasPrefix(png, pngMagic), "expected PNG magic header")
}
