package match

import (
	"testing"
	"time"

	"github.com/KirkDiggler/wordduel/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestFinishOrder(t *testing.T) {
	t0 := time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	t1 := t0.Add(time.Second)

	testCases := []struct {
		name           string
		match          *models.Match
		expectedFirst  string
		expectedSecond string
	}{
		{
			name: "recorded order wins",
			match: &models.Match{
				MaxAttempts:      25,
				FirstFinisherID:  "b",
				SecondFinisherID: "a",
				Player1:          &models.PlayerSlot{UID: "a", Solved: true, Attempts: 1, SolveTime: &t0},
				Player2:          &models.PlayerSlot{UID: "b", Solved: true, Attempts: 1, SolveTime: &t1},
			},
			expectedFirst:  "b",
			expectedSecond: "a",
		},
		{
			name: "second filled in from finished opponent",
			match: &models.Match{
				MaxAttempts:     25,
				FirstFinisherID: "a",
				Player1:         &models.PlayerSlot{UID: "a", Solved: true, Attempts: 1},
				Player2:         &models.PlayerSlot{UID: "b", Attempts: 25},
			},
			expectedFirst:  "a",
			expectedSecond: "b",
		},
		{
			name: "earlier solve time first",
			match: &models.Match{
				MaxAttempts: 25,
				Player1:     &models.PlayerSlot{UID: "a", Solved: true, Attempts: 3, SolveTime: &t1},
				Player2:     &models.PlayerSlot{UID: "b", Solved: true, Attempts: 5, SolveTime: &t0},
			},
			expectedFirst:  "b",
			expectedSecond: "a",
		},
		{
			name: "equal solve times go to player1",
			match: &models.Match{
				MaxAttempts: 25,
				Player1:     &models.PlayerSlot{UID: "a", Solved: true, Attempts: 3, SolveTime: &t0},
				Player2:     &models.PlayerSlot{UID: "b", Solved: true, Attempts: 5, SolveTime: &t0},
			},
			expectedFirst:  "a",
			expectedSecond: "b",
		},
		{
			name: "only one finished",
			match: &models.Match{
				MaxAttempts: 25,
				Player1:     &models.PlayerSlot{UID: "a", Attempts: 2},
				Player2:     &models.PlayerSlot{UID: "b", Solved: true, Attempts: 2, SolveTime: &t0},
			},
			expectedFirst: "b",
		},
		{
			name: "nobody finished",
			match: &models.Match{
				MaxAttempts: 25,
				Player1:     &models.PlayerSlot{UID: "a"},
				Player2:     &models.PlayerSlot{UID: "b"},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			first, second := finishOrder(tc.match)
			assert.Equal(t, tc.expectedFirst, first)
			assert.Equal(t, tc.expectedSecond, second)
		})
	}
}

func TestDecide(t *testing.T) {
	testCases := []struct {
		name           string
		p1             *models.PlayerSlot
		p2             *models.PlayerSlot
		expectedWinner string
		expectedTie    bool
	}{
		{
			name:           "both solved fewer attempts wins",
			p1:             &models.PlayerSlot{UID: "a", Solved: true, Attempts: 4},
			p2:             &models.PlayerSlot{UID: "b", Solved: true, Attempts: 6},
			expectedWinner: "a",
		},
		{
			name:        "both solved equal attempts ties",
			p1:          &models.PlayerSlot{UID: "a", Solved: true, Attempts: 4},
			p2:          &models.PlayerSlot{UID: "b", Solved: true, Attempts: 4},
			expectedTie: true,
		},
		{
			name:           "only one solved wins regardless of attempts",
			p1:             &models.PlayerSlot{UID: "a", Attempts: 25},
			p2:             &models.PlayerSlot{UID: "b", Solved: true, Attempts: 20},
			expectedWinner: "b",
		},
		{
			name:        "neither solved ties",
			p1:          &models.PlayerSlot{UID: "a", Attempts: 25},
			p2:          &models.PlayerSlot{UID: "b", Attempts: 25},
			expectedTie: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			o := decide(&models.Match{MaxAttempts: 25, Player1: tc.p1, Player2: tc.p2})
			assert.Equal(t, tc.expectedWinner, o.winnerID)
			assert.Equal(t, tc.expectedTie, o.tie)
			assert.False(t, o.winnerID != "" && o.tie, "winner and tie are exclusive")
		})
	}
}

func TestProject_HidesOpponentWordUntilTerminal(t *testing.T) {
	m := &models.Match{
		ID:          "m1",
		MaxAttempts: 25,
		Status:      models.MatchStatusActive,
		Player1:     &models.PlayerSlot{UID: "a", Word: "CRANE", WordSet: true},
		Player2:     &models.PlayerSlot{UID: "b", Word: "PLANT", WordSet: true},
	}

	state := project(m, "a")
	assert.Equal(t, "CRANE", state.You.Word)
	assert.Empty(t, state.Opponent.Word)
	assert.True(t, state.Opponent.WordSet)
	assert.NotNil(t, state.You.Guesses)
	assert.True(t, state.YourTurnAvailable)

	m.Status = models.MatchStatusCompleted
	state = project(m, "a")
	assert.Equal(t, "PLANT", state.Opponent.Word)
	assert.False(t, state.YourTurnAvailable)

	assert.Nil(t, project(m, "c"))
}
