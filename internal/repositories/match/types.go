package match

import (
	"time"

	"github.com/KirkDiggler/wordduel/internal/models"
)

// Slot names one half of a match in storage
type Slot string

const (
	SlotPlayer1 Slot = "p1"
	SlotPlayer2 Slot = "p2"
)

// EventType names the kind of change published for a match
type EventType string

const (
	EventWordSet   EventType = "word_set"
	EventGuess     EventType = "guess"
	EventCompleted EventType = "completed"
	EventSeen      EventType = "seen"
)

// Event is published on the match's channel after every write
type Event struct {
	MatchID string    `json:"matchId"`
	Type    EventType `json:"type"`
	UID     string    `json:"uid,omitempty"`
}

type CreateMatchInput struct {
	Match *models.Match
}

type GetMatchInput struct {
	MatchID string
}

type SetWordInput struct {
	MatchID string
	Slot    Slot
	UID     string
	Word    string
	Now     time.Time
}

type SetWordOutput struct {
	// Activated is true when this write set the second word
	Activated bool
}

type AppendGuessInput struct {
	MatchID string
	Slot    Slot
	UID     string
	Guess   *models.Guess

	// ExpectedAttempts is the attempts value the guess was made against
	ExpectedAttempts int
}

type AppendGuessOutput struct {
	// Attempts is the slot's attempts counter after the increment
	Attempts int
}

type CompleteInput struct {
	MatchID          string
	Status           models.MatchStatus
	WinnerID         string
	Tie              bool
	FirstFinisherID  string
	SecondFinisherID string
	ForfeitedBy      string
	Now              time.Time

	// ExpectedAttempts, when set, requires both counters to be unchanged
	// since the read the result was computed from
	ExpectedAttempts *[2]int
}

type CompleteOutput struct {
	// Completed is true only for the call that moved the match to a terminal status
	Completed bool
}

type ClaimNotificationInput struct {
	MatchID string
}

type MarkResultsSeenInput struct {
	MatchID string
	UID     string
}

type ListActiveInput struct {
}

type ListActiveOutput struct {
	MatchIDs []string
}

type SubscribeInput struct {
	MatchID string
}
