package models

import "time"

// SoloGameStatus represents the current state of a solo game
type SoloGameStatus string

const (
	SoloGameStatusActive    SoloGameStatus = "active"
	SoloGameStatusSolved    SoloGameStatus = "solved"
	SoloGameStatusAbandoned SoloGameStatus = "abandoned"
)

// SoloGame is an in-progress or finished solo game against a drawn word
type SoloGame struct {
	ID                string         `json:"id"`
	UserID            string         `json:"userId"`
	Difficulty        Difficulty     `json:"difficulty"`
	Target            string         `json:"target"`
	Guesses           []*Guess       `json:"guesses"`
	HintsUsed         int            `json:"hintsUsed"`
	RevealedPositions []int          `json:"revealedPositions"`
	Status            SoloGameStatus `json:"status"`
	StartedAt         time.Time      `json:"startedAt"`
	FinishedAt        *time.Time     `json:"finishedAt,omitempty"`

	// Version is the stored revision this copy was read at; 0 for a new game
	Version int64 `json:"-"`
}
