// Package feedback scores a guess against a hidden target word.
//
// A dot marks a letter in the right position and a circle marks a letter that
// occurs elsewhere in the target. Duplicate letters are matched against the
// target's letter multiset, so a letter never earns more marks than the number
// of times it occurs in the target.
package feedback

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/KirkDiggler/wordduel/internal/models"
)

// Result is the feedback for one guess
type Result struct {
	Dots             int
	Circles          int
	PerLetterOutcome []models.LetterOutcome
}

// IsCorrect reports whether every position was a dot
func (r *Result) IsCorrect() bool {
	return r.Dots == len(r.PerLetterOutcome)
}

// Score compares guess to target case-insensitively.
// Returns ErrInvalidInput when the lengths differ.
func Score(guess, target string) (*Result, error) {
	g := []rune(strings.ToUpper(guess))
	t := []rune(strings.ToUpper(target))
	if len(g) != len(t) {
		return nil, fmt.Errorf("%w: guess has %d letters, target has %d",
			ErrInvalidInput, utf8.RuneCountInString(guess), utf8.RuneCountInString(target))
	}

	remaining := make(map[rune]int, len(t))
	for _, r := range t {
		remaining[r]++
	}

	result := &Result{
		PerLetterOutcome: make([]models.LetterOutcome, len(g)),
	}

	// Exact matches consume their letters first so a later misplaced duplicate
	// cannot steal a count that belongs to a dot.
	for i := range g {
		if g[i] == t[i] {
			result.PerLetterOutcome[i] = models.LetterOutcomeCorrect
			result.Dots++
			remaining[g[i]]--
		}
	}

	for i := range g {
		if result.PerLetterOutcome[i] == models.LetterOutcomeCorrect {
			continue
		}
		if remaining[g[i]] > 0 {
			result.PerLetterOutcome[i] = models.LetterOutcomePresent
			result.Circles++
			remaining[g[i]]--
			continue
		}
		result.PerLetterOutcome[i] = models.LetterOutcomeNone
	}

	return result, nil
}
