package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	roadmapRepos "github.com/yungbote/skillpath-backend/internal/data/repos/roadmap"
	"github.com/yungbote/skillpath-backend/internal/data/repos/testutil"
	"github.com/yungbote/skillpath-backend/internal/domain/roadmap"
	"github.com/yungbote/skillpath-backend/internal/platform/apierr"
)

func newRoadmapForTest(t *testing.T) (RoadmapService, roadmapRepos.RoadmapRepo) {
	t.Helper()
	log := testutil.Logger(t)
	tx := testutil.Tx(t, testutil.DB(t))
	repo := roadmapRepos.NewRoadmapRepo(tx, log)
	return NewRoadmapService(tx, log, repo), repo
}

func phasesFixture() []roadmap.Phase {
	return []roadmap.Phase{
		{
			PhaseName: "Beginner",
			Topics: []roadmap.Topic{
				{TopicName: "Syntax"},
				{TopicName: "Slices"},
			},
		},
	}
}

func TestSaveRecomputesCompletion(t *testing.T) {
	svc, _ := newRoadmapForTest(t)

	rm, err := svc.Save(context.Background(), uuid.New(), "Go", "Learn Go", phasesFixture(), &roadmap.Task{Title: "CLI"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, rm.ID)
	assert.False(t, rm.IsCompleted)
}

func TestGetOwnershipCodes(t *testing.T) {
	svc, _ := newRoadmapForTest(t)
	ownerID := uuid.New()

	rm, err := svc.Save(context.Background(), ownerID, "Go", "", phasesFixture(), nil)
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), uuid.New(), ownerID)
	var apiErr *apierr.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Status)

	_, err = svc.Get(context.Background(), rm.ID, uuid.New())
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 401, apiErr.Status)

	got, err := svc.Get(context.Background(), rm.ID, ownerID)
	require.NoError(t, err)
	assert.Equal(t, rm.ID, got.ID)
}

func TestUpdateOverridesClaimedCompletion(t *testing.T) {
	svc, repo := newRoadmapForTest(t)
	ownerID := uuid.New()

	rm, err := svc.Save(context.Background(), ownerID, "Go", "", phasesFixture(), nil)
	require.NoError(t, err)

	// Client claims completion but one topic is still open.
	phases := phasesFixture()
	phases[0].Topics[0].Completed = true
	updated, err := svc.Update(context.Background(), rm.ID, ownerID, phases, nil, true)
	require.NoError(t, err)
	assert.False(t, updated.IsCompleted)

	phases[0].Topics[1].Completed = true
	updated, err = svc.Update(context.Background(), rm.ID, ownerID, phases, nil, false)
	require.NoError(t, err)
	assert.True(t, updated.IsCompleted)

	reloaded, err := repo.GetByIDs(context.Background(), nil, []uuid.UUID{rm.ID})
	require.NoError(t, err)
	require.Len(t, reloaded, 1)
	assert.True(t, reloaded[0].IsCompleted)
}

func TestDeleteRemovesRoadmap(t *testing.T) {
	svc, repo := newRoadmapForTest(t)
	ownerID := uuid.New()

	rm, err := svc.Save(context.Background(), ownerID, "Go", "", phasesFixture(), nil)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), rm.ID, ownerID))

	found, err := repo.GetByIDs(context.Background(), nil, []uuid.UUID{rm.ID})
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestLogTopicTimeAccumulatesMinutes(t *testing.T) {
	svc, _ := newRoadmapForTest(t)
	ownerID := uuid.New()

	rm, err := svc.Save(context.Background(), ownerID, "Go", "", phasesFixture(), nil)
	require.NoError(t, err)

	updated, err := svc.LogTopicTime(context.Background(), rm.ID, ownerID, 0, 0, 90)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, updated.Phases[0].Topics[0].TimeSpent, 1e-9)

	updated, err = svc.LogTopicTime(context.Background(), rm.ID, ownerID, 0, 0, 30)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, updated.Phases[0].Topics[0].TimeSpent, 1e-9)
}

func TestLogTopicTimeValidation(t *testing.T) {
	svc, _ := newRoadmapForTest(t)
	ownerID := uuid.New()

	rm, err := svc.Save(context.Background(), ownerID, "Go", "", phasesFixture(), nil)
	require.NoError(t, err)

	var apiErr *apierr.Error

	_, err = svc.LogTopicTime(context.Background(), rm.ID, ownerID, 5, 0, 60)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.Status)

	_, err = svc.LogTopicTime(context.Background(), rm.ID, ownerID, 0, 9, 60)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.Status)

	_, err = svc.LogTopicTime(context.Background(), rm.ID, ownerID, 0, 0, -1)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.Status)

	// Absent and non-owner collapse to 404 on this route.
	_, err = svc.LogTopicTime(context.Background(), rm.ID, uuid.New(), 0, 0, 60)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Status)
}
