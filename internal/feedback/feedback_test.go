package feedback

import (
	"math/rand"
	"testing"

	"github.com/KirkDiggler/wordduel/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	c = models.LetterOutcomeCorrect
	p = models.LetterOutcomePresent
	n = models.LetterOutcomeNone
)

func TestScore(t *testing.T) {
	tests := []struct {
		name     string
		guess    string
		target   string
		dots     int
		circles  int
		outcomes []models.LetterOutcome
	}{
		{
			name:     "crane against trace",
			guess:    "CRANE",
			target:   "TRACE",
			dots:     3,
			circles:  1,
			outcomes: []models.LetterOutcome{p, c, c, n, c},
		},
		{
			name:     "exact match",
			guess:    "TRACE",
			target:   "TRACE",
			dots:     5,
			circles:  0,
			outcomes: []models.LetterOutcome{c, c, c, c, c},
		},
		{
			name:     "anagram without shared positions",
			guess:    "BCDA",
			target:   "ABCD",
			dots:     0,
			circles:  4,
			outcomes: []models.LetterOutcome{p, p, p, p},
		},
		{
			name:     "case insensitive",
			guess:    "crane",
			target:   "Trace",
			dots:     3,
			circles:  1,
			outcomes: []models.LetterOutcome{p, c, c, n, c},
		},
		{
			name:     "duplicate in guess, dot consumes a target letter first",
			guess:    "EERIE",
			target:   "THERE",
			dots:     1,
			circles:  2,
			outcomes: []models.LetterOutcome{p, n, p, n, c},
		},
		{
			name:     "duplicate in guess beyond target count",
			guess:    "LLAMA",
			target:   "HELLO",
			dots:     0,
			circles:  2,
			outcomes: []models.LetterOutcome{p, p, n, n, n},
		},
		{
			name:     "duplicate in target, single in guess",
			guess:    "ROBOT",
			target:   "FLOOR",
			dots:     1,
			circles:  2,
			outcomes: []models.LetterOutcome{p, p, n, c, n},
		},
		{
			name:     "nothing shared",
			guess:    "MYTH",
			target:   "CLUE",
			dots:     0,
			circles:  0,
			outcomes: []models.LetterOutcome{n, n, n, n},
		},
		{
			name:     "empty strings",
			guess:    "",
			target:   "",
			outcomes: []models.LetterOutcome{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Score(tt.guess, tt.target)
			require.NoError(t, err)
			assert.Equal(t, tt.dots, res.Dots)
			assert.Equal(t, tt.circles, res.Circles)
			assert.Equal(t, tt.outcomes, res.PerLetterOutcome)
		})
	}
}

func TestScore_LengthMismatch(t *testing.T) {
	_, err := Score("CRANES", "TRACE")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestScore_IsCorrect(t *testing.T) {
	res, err := Score("trace", "TRACE")
	require.NoError(t, err)
	assert.True(t, res.IsCorrect())

	res, err = Score("crane", "TRACE")
	require.NoError(t, err)
	assert.False(t, res.IsCorrect())
}

// Random equal-length pairs over a small alphabet to force duplicates.
func TestScore_Bounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	alphabet := []rune("ABCDE")

	randomWord := func(l int) string {
		w := make([]rune, l)
		for i := range w {
			w[i] = alphabet[rng.Intn(len(alphabet))]
		}
		return string(w)
	}

	for i := 0; i < 2000; i++ {
		l := 1 + rng.Intn(7)
		guess, target := randomWord(l), randomWord(l)

		res, err := Score(guess, target)
		require.NoError(t, err)
		require.GreaterOrEqual(t, res.Dots, 0)
		require.GreaterOrEqual(t, res.Circles, 0)
		require.LessOrEqual(t, res.Dots+res.Circles, l, "guess=%s target=%s", guess, target)
		require.Len(t, res.PerLetterOutcome, l)

		self, err := Score(target, target)
		require.NoError(t, err)
		require.Equal(t, l, self.Dots)
		require.Equal(t, 0, self.Circles)
	}
}
