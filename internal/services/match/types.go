package match

import (
	"time"

	"github.com/KirkDiggler/wordduel/internal/common/clock"
	"github.com/KirkDiggler/wordduel/internal/common/uuid"
	"github.com/KirkDiggler/wordduel/internal/metrics"
	"github.com/KirkDiggler/wordduel/internal/models"
	matchRepo "github.com/KirkDiggler/wordduel/internal/repositories/match"
	playerRepo "github.com/KirkDiggler/wordduel/internal/repositories/player"
	"github.com/KirkDiggler/wordduel/internal/services/notifier"
	"github.com/KirkDiggler/wordduel/internal/services/words"
	"go.uber.org/zap"
)

// Config holds configuration for the match service
type Config struct {
	// MaxAttempts is used for matches created without an explicit limit
	MaxAttempts int

	// InactivityTimeout is how long a match may go without a write before the sweeper times it out
	InactivityTimeout time.Duration

	// NotifyTimeout bounds one notification send
	NotifyTimeout time.Duration

	// Repository dependencies
	MatchRepo  matchRepo.Repository
	PlayerRepo playerRepo.Repository // optional, used for names in notifications

	// Service dependencies
	Dictionary    words.Dictionary
	WordSource    words.Source
	Notifier      notifier.Sender
	Messages      *notifier.Messages // optional
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
	Metrics       *metrics.Metrics // optional
	Logger        *zap.SugaredLogger
}

// CreateMatchInput contains parameters for creating a match
type CreateMatchInput struct {
	Player1ID string
	Player2ID string

	// Difficulty picks the word length. WordLength is used when Difficulty is empty.
	Difficulty models.Difficulty
	WordLength int

	// MaxAttempts overrides the configured limit when positive
	MaxAttempts int
}

// CreateMatchOutput contains the new pending match
type CreateMatchOutput struct {
	Match *models.Match
}

// SetSecretWordInput contains parameters for choosing a secret word
type SetSecretWordInput struct {
	MatchID string
	UID     string
	Word    string
}

// SetSecretWordOutput reports whether the match started
type SetSecretWordOutput struct {
	// Activated is true when this word was the second one and the match is now active
	Activated bool
}

// DrawSecretWordInput contains parameters for drawing a random secret word
type DrawSecretWordInput struct {
	MatchID string
	UID     string
}

// DrawSecretWordOutput contains the drawn word
type DrawSecretWordOutput struct {
	Word      string
	Activated bool
}

// SubmitGuessInput contains parameters for a guess
type SubmitGuessInput struct {
	MatchID string
	UID     string
	Word    string

	// ExpectedAttempts is the attempts value the client last saw. Nil uses the value just read.
	ExpectedAttempts *int
}

// SubmitGuessOutput contains the scored guess and the resulting state
type SubmitGuessOutput struct {
	Guess    *models.Guess
	Attempts int

	// Finished is true when this guess finished the caller's slot
	Finished bool

	// Resolved is true when this guess completed the match
	Resolved bool

	// State is nil when the match could not be reloaded after the write
	State *MatchState
}

// ForfeitInput contains parameters for forfeiting
type ForfeitInput struct {
	MatchID string
	UID     string
}

// ForfeitOutput contains the terminal match
type ForfeitOutput struct {
	Match *models.Match
}

// TimeoutInput contains parameters for timing out a match
type TimeoutInput struct {
	MatchID string
}

// TimeoutOutput reports whether this call ended the match
type TimeoutOutput struct {
	TimedOut bool
	Match    *models.Match
}

// SweepInactiveOutput summarises one inactivity sweep
type SweepInactiveOutput struct {
	Checked  int
	TimedOut []string
}

// ResolveInput contains parameters for resolving a finished match
type ResolveInput struct {
	MatchID string
}

// ResolveOutput reports what a resolution attempt did
type ResolveOutput struct {
	// Resolved is true only for the call that completed the match
	Resolved bool

	// Notified is true only for the call that sent the completion notification
	Notified bool

	Match *models.Match
}

// GetMatchStateInput contains parameters for reading a match projection
type GetMatchStateInput struct {
	MatchID string
	UID     string
}

// MarkResultsSeenInput contains parameters for acknowledging a result
type MarkResultsSeenInput struct {
	MatchID string
	UID     string
}

// SlotView is one slot as shown to a participant
type SlotView struct {
	UID      string          `json:"uid"`
	Word     string          `json:"word,omitempty"`
	WordSet  bool            `json:"wordSet"`
	Guesses  []*models.Guess `json:"guesses"`
	Attempts int             `json:"attempts"`
	Solved   bool            `json:"solved"`
	Finished bool            `json:"finished"`
}

// MatchState is the read-only projection of a match for one participant.
// The opponent's secret word stays hidden until the match is terminal.
type MatchState struct {
	MatchID     string             `json:"matchId"`
	Status      models.MatchStatus `json:"status"`
	Difficulty  models.Difficulty  `json:"difficulty,omitempty"`
	WordLength  int                `json:"wordLength"`
	MaxAttempts int                `json:"maxAttempts"`

	You      *SlotView `json:"you"`
	Opponent *SlotView `json:"opponent"`

	// YourTurnAvailable is true when the caller may submit a guess now
	YourTurnAvailable bool `json:"yourTurnAvailable"`

	FirstFinisherID  string `json:"firstFinisherId,omitempty"`
	SecondFinisherID string `json:"secondFinisherId,omitempty"`
	WinnerID         string `json:"winnerId,omitempty"`
	Tie              bool   `json:"tie"`
	ForfeitedBy      string `json:"forfeitedBy,omitempty"`
	ResultSeen       bool   `json:"resultSeen"`

	LastActivity time.Time `json:"lastActivity"`
}
