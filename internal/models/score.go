package models

import "time"

// HintPenalty is the score cost of one hint in solo mode
const HintPenalty = 3

// SoloScoreRecord is one completed solo game. Append-only.
type SoloScoreRecord struct {
	ID         string     `json:"id"`
	UserID     string     `json:"userId"`
	Difficulty Difficulty `json:"difficulty"`

	// Score is the non-hint guess count plus HintPenalty per hint; lower is better
	Score     int       `json:"score"`
	UsedHints int       `json:"usedHints"`
	Timestamp time.Time `json:"timestamp"`
}

// SoloScore computes the score of a finished solo game
func SoloScore(nonHintGuesses, hintsUsed int) int {
	return nonHintGuesses + HintPenalty*hintsUsed
}
