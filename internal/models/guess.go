package models

import "time"

// LetterOutcome is the feedback for one position of a guess
type LetterOutcome string

const (
	// LetterOutcomeNone means the letter does not occur in the remaining target letters
	LetterOutcomeNone LetterOutcome = "none"

	// LetterOutcomePresent means the letter occurs elsewhere in the target (a circle)
	LetterOutcomePresent LetterOutcome = "present"

	// LetterOutcomeCorrect means the letter is in the right position (a dot)
	LetterOutcomeCorrect LetterOutcome = "correct"
)

// Guess is one scored guess. Immutable once appended to a slot.
type Guess struct {
	Word             string          `json:"word"`
	Dots             int             `json:"dots"`
	Circles          int             `json:"circles"`
	PerLetterOutcome []LetterOutcome `json:"perLetterOutcome"`
	IsCorrect        bool            `json:"isCorrect"`
	IsHint           bool            `json:"isHint,omitempty"`
	Timestamp        time.Time       `json:"timestamp"`
}

// CountNonHint returns the number of guesses that count as attempts
func CountNonHint(guesses []*Guess) int {
	n := 0
	for _, g := range guesses {
		if !g.IsHint {
			n++
		}
	}
	return n
}
