package leaderboard_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KirkDiggler/wordduel/internal/models"
	"github.com/KirkDiggler/wordduel/internal/repositories/leaderboard"
	"github.com/KirkDiggler/wordduel/internal/repositories/leaderboard/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestArchived_SaveSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	primary := mocks.NewMockRepository(ctrl)
	archive := mocks.NewMockRepository(ctrl)

	repo, err := leaderboard.NewArchived(&leaderboard.ArchivedConfig{Primary: primary, Archive: archive})
	require.NoError(t, err)

	input := &leaderboard.SaveSnapshotInput{Snapshot: &models.LeaderboardSnapshot{
		Difficulty:   models.DifficultyMedium,
		CalculatedAt: time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC),
	}}

	gomock.InOrder(
		primary.EXPECT().SaveSnapshot(gomock.Any(), input).Return(nil),
		archive.EXPECT().SaveSnapshot(gomock.Any(), input).Return(errors.New("archive down")),
	)

	// Archive failure does not fail the save
	assert.NoError(t, repo.SaveSnapshot(context.Background(), input))
}

func TestArchived_PrimaryFailureSkipsArchive(t *testing.T) {
	ctrl := gomock.NewController(t)
	primary := mocks.NewMockRepository(ctrl)
	archive := mocks.NewMockRepository(ctrl)

	repo, err := leaderboard.NewArchived(&leaderboard.ArchivedConfig{Primary: primary, Archive: archive})
	require.NoError(t, err)

	input := &leaderboard.SaveSnapshotInput{Snapshot: &models.LeaderboardSnapshot{Difficulty: models.DifficultyMedium}}
	primary.EXPECT().SaveSnapshot(gomock.Any(), input).Return(errors.New("redis down"))

	assert.Error(t, repo.SaveSnapshot(context.Background(), input))
}

func TestArchived_GetSnapshotReadsPrimary(t *testing.T) {
	ctrl := gomock.NewController(t)
	primary := mocks.NewMockRepository(ctrl)
	archive := mocks.NewMockRepository(ctrl)

	repo, err := leaderboard.NewArchived(&leaderboard.ArchivedConfig{Primary: primary, Archive: archive})
	require.NoError(t, err)

	want := &models.LeaderboardSnapshot{Difficulty: models.DifficultyHard}
	primary.EXPECT().
		GetSnapshot(gomock.Any(), &leaderboard.GetSnapshotInput{Difficulty: models.DifficultyHard}).
		Return(want, nil)

	got, err := repo.GetSnapshot(context.Background(), &leaderboard.GetSnapshotInput{Difficulty: models.DifficultyHard})
	require.NoError(t, err)
	assert.Same(t, want, got)
}

func TestArchived_GetSnapshotFallsBackToArchive(t *testing.T) {
	ctrl := gomock.NewController(t)
	primary := mocks.NewMockRepository(ctrl)
	archive := mocks.NewMockRepository(ctrl)

	repo, err := leaderboard.NewArchived(&leaderboard.ArchivedConfig{Primary: primary, Archive: archive})
	require.NoError(t, err)

	input := &leaderboard.GetSnapshotInput{Difficulty: models.DifficultyEasy}
	want := &models.LeaderboardSnapshot{Difficulty: models.DifficultyEasy}
	gomock.InOrder(
		primary.EXPECT().GetSnapshot(gomock.Any(), input).Return(nil, leaderboard.ErrSnapshotNotFound),
		archive.EXPECT().GetSnapshot(gomock.Any(), input).Return(want, nil),
	)

	got, err := repo.GetSnapshot(context.Background(), input)
	require.NoError(t, err)
	assert.Same(t, want, got)
}

func TestArchived_GetSnapshotMissingEverywhere(t *testing.T) {
	testCases := []struct {
		name       string
		archiveErr error
	}{
		{name: "archive has none", archiveErr: leaderboard.ErrSnapshotNotFound},
		{name: "archive unreachable", archiveErr: errors.New("database locked")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			primary := mocks.NewMockRepository(ctrl)
			archive := mocks.NewMockRepository(ctrl)

			repo, err := leaderboard.NewArchived(&leaderboard.ArchivedConfig{Primary: primary, Archive: archive})
			require.NoError(t, err)

			primary.EXPECT().GetSnapshot(gomock.Any(), gomock.Any()).Return(nil, leaderboard.ErrSnapshotNotFound)
			archive.EXPECT().GetSnapshot(gomock.Any(), gomock.Any()).Return(nil, tc.archiveErr)

			_, err = repo.GetSnapshot(context.Background(), &leaderboard.GetSnapshotInput{Difficulty: models.DifficultyEasy})
			assert.ErrorIs(t, err, leaderboard.ErrSnapshotNotFound)
		})
	}
}

func TestArchived_GetSnapshotPrimaryErrorSkipsArchive(t *testing.T) {
	ctrl := gomock.NewController(t)
	primary := mocks.NewMockRepository(ctrl)
	archive := mocks.NewMockRepository(ctrl)

	repo, err := leaderboard.NewArchived(&leaderboard.ArchivedConfig{Primary: primary, Archive: archive})
	require.NoError(t, err)

	primary.EXPECT().GetSnapshot(gomock.Any(), gomock.Any()).Return(nil, errors.New("redis down"))

	_, err = repo.GetSnapshot(context.Background(), &leaderboard.GetSnapshotInput{Difficulty: models.DifficultyEasy})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, leaderboard.ErrSnapshotNotFound)
}

func TestNewArchived_RequiresBothStores(t *testing.T) {
	_, err := leaderboard.NewArchived(&leaderboard.ArchivedConfig{})
	assert.Error(t, err)

	_, err = leaderboard.NewArchived(nil)
	assert.Error(t, err)
}
