package models

import (
	"time"
)

// MatchStatus represents the current state of a PvP match
type MatchStatus string

const (
	// MatchStatusPending indicates at least one secret word is still missing
	MatchStatusPending MatchStatus = "pending"

	// MatchStatusActive indicates both players are guessing
	MatchStatusActive MatchStatus = "active"

	// MatchStatusWaitingForOpponent indicates one side has finished and the other has not
	MatchStatusWaitingForOpponent MatchStatus = "waiting_for_opponent"

	// MatchStatusCompleted indicates the match was resolved
	MatchStatusCompleted MatchStatus = "completed"

	// MatchStatusAbandoned indicates the match ended by forfeit
	MatchStatusAbandoned MatchStatus = "abandoned"
)

// IsTerminal reports whether no further writes are accepted
func (s MatchStatus) IsTerminal() bool {
	return s == MatchStatusCompleted || s == MatchStatusAbandoned
}

// IsPlayable reports whether guesses are accepted
func (s MatchStatus) IsPlayable() bool {
	return s == MatchStatusActive || s == MatchStatusWaitingForOpponent
}

// DefaultMaxAttempts is used when a match is created without an explicit limit
const DefaultMaxAttempts = 25

// PlayerSlot is one player's half of a match
type PlayerSlot struct {
	// UID is the player's user ID
	UID string `json:"uid"`

	// Word is the secret word the opponent is guessing
	Word string `json:"word,omitempty"`

	// WordSet indicates the secret word has been chosen
	WordSet bool `json:"wordSet"`

	// Guesses made by this player against the opponent's word, in submission order
	Guesses []*Guess `json:"guesses"`

	// Solved indicates the player guessed the opponent's word
	Solved bool `json:"solved"`

	// Attempts counts non-hint guesses
	Attempts int `json:"attempts"`

	// SolveTime is when the player solved, nil until then
	SolveTime *time.Time `json:"solveTime,omitempty"`

	// FinishedAt is when the slot became finished by solving or exhausting attempts
	FinishedAt *time.Time `json:"finishedAt,omitempty"`
}

// IsFinished reports whether the slot has reached a terminal personal state
func (p *PlayerSlot) IsFinished(maxAttempts int) bool {
	return p.Solved || p.Attempts >= maxAttempts
}

// Match is the shared record of one PvP contest
type Match struct {
	ID          string      `json:"id"`
	Difficulty  Difficulty  `json:"difficulty,omitempty"`
	WordLength  int         `json:"wordLength"`
	MaxAttempts int         `json:"maxAttempts"`
	Player1     *PlayerSlot `json:"player1"`
	Player2     *PlayerSlot `json:"player2"`
	Status      MatchStatus `json:"status"`

	FirstFinisherID  string `json:"firstFinisherId,omitempty"`
	SecondFinisherID string `json:"secondFinisherId,omitempty"`
	WinnerID         string `json:"winnerId,omitempty"`
	Tie              bool   `json:"tie"`
	ForfeitedBy      string `json:"forfeitedBy,omitempty"`

	NotificationsSent bool     `json:"notificationsSent"`
	ResultsSeenBy     []string `json:"resultsSeenBy"`

	CreatedAt    time.Time  `json:"createdAt"`
	LastActivity time.Time  `json:"lastActivity"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
}

// Slot returns the slot owned by uid, or nil
func (m *Match) Slot(uid string) *PlayerSlot {
	switch {
	case m.Player1 != nil && m.Player1.UID == uid:
		return m.Player1
	case m.Player2 != nil && m.Player2.UID == uid:
		return m.Player2
	}
	return nil
}

// Opponent returns the slot not owned by uid, or nil if uid is not a participant
func (m *Match) Opponent(uid string) *PlayerSlot {
	switch {
	case m.Player1 != nil && m.Player1.UID == uid:
		return m.Player2
	case m.Player2 != nil && m.Player2.UID == uid:
		return m.Player1
	}
	return nil
}

// BothFinished reports whether both slots are finished
func (m *Match) BothFinished() bool {
	return m.Player1.IsFinished(m.MaxAttempts) && m.Player2.IsFinished(m.MaxAttempts)
}

// HasSeenResult reports whether uid has acknowledged the final result
func (m *Match) HasSeenResult(uid string) bool {
	for _, id := range m.ResultsSeenBy {
		if id == uid {
			return true
		}
	}
	return false
}
