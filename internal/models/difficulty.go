package models

// Difficulty is a ranking tier. Each tier plays words of a fixed length.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// AllDifficulties lists every tier in ranking order
var AllDifficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// WordLength returns the word length played at this tier, or 0 for an unknown tier
func (d Difficulty) WordLength() int {
	switch d {
	case DifficultyEasy:
		return 4
	case DifficultyMedium:
		return 5
	case DifficultyHard:
		return 6
	}
	return 0
}

// Valid reports whether d is a known tier
func (d Difficulty) Valid() bool {
	return d.WordLength() > 0
}
