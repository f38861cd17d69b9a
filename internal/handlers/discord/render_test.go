package discord

import (
	"testing"
	"time"

	"github.com/KirkDiggler/wordduel/internal/models"
	"github.com/KirkDiggler/wordduel/internal/services/solo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderGuess(t *testing.T) {
	testCases := []struct {
		name     string
		guess    *models.Guess
		expected string
	}{
		{
			name:     "dots then circles",
			guess:    &models.Guess{Word: "CRANE", Dots: 3, Circles: 1},
			expected: "`C R A N E` ●●●○",
		},
		{
			name:     "no marks",
			guess:    &models.Guess{Word: "BLUSH"},
			expected: "`B L U S H` -",
		},
		{
			name:     "hint",
			guess:    &models.Guess{Word: "_R___", Dots: 1, IsHint: true},
			expected: "`_ R _ _ _` hint",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, renderGuess(tc.guess))
		})
	}
}

func TestRenderBoard_EmptyGame(t *testing.T) {
	embed := renderBoard(&solo.GameView{
		ID:         "g1",
		Difficulty: models.DifficultyEasy,
		WordLength: 4,
		Status:     models.SoloGameStatusActive,
	}, "")

	assert.Equal(t, "_ _ _ _", embed.Description)
	assert.Equal(t, "game g1", embed.Footer.Text)
	assert.Equal(t, colorInfo, embed.Color)
}

func TestRenderBoard_Solved(t *testing.T) {
	embed := renderBoard(&solo.GameView{
		ID:         "g1",
		Difficulty: models.DifficultyMedium,
		WordLength: 5,
		Guesses: []*models.Guess{
			{Word: "_R___", IsHint: true},
			{Word: "CRANE", Dots: 5, IsCorrect: true},
		},
		HintsUsed: 1,
		Status:    models.SoloGameStatusSolved,
		Score:     4,
	}, "")

	require.Len(t, embed.Fields, 3)
	assert.Equal(t, "1", embed.Fields[0].Value, "hint rows are not guesses")
	assert.Equal(t, "4", embed.Fields[2].Value)
	assert.Nil(t, boardButtons(&solo.GameView{Status: models.SoloGameStatusSolved}))
}

func TestRenderLeaderboard_Empty(t *testing.T) {
	embed := renderLeaderboard(&models.LeaderboardSnapshot{
		Difficulty:   models.DifficultyHard,
		CalculatedAt: time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC),
		Entries:      []*models.LeaderboardEntry{},
	})

	assert.Contains(t, embed.Description, "Nobody qualifies yet")
	assert.Equal(t, "0 eligible players, updated 2025-04-19 12:00 UTC", embed.Footer.Text)
}
