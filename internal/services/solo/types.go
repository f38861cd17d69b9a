package solo

import (
	"github.com/KirkDiggler/wordduel/internal/common/clock"
	"github.com/KirkDiggler/wordduel/internal/common/uuid"
	"github.com/KirkDiggler/wordduel/internal/models"
	playerRepo "github.com/KirkDiggler/wordduel/internal/repositories/player"
	scoreRepo "github.com/KirkDiggler/wordduel/internal/repositories/score"
	soloRepo "github.com/KirkDiggler/wordduel/internal/repositories/solo"
	"github.com/KirkDiggler/wordduel/internal/services/words"
	"go.uber.org/zap"
)

// Config holds configuration for the solo service
type Config struct {
	// Repository dependencies
	SoloRepo   soloRepo.Repository
	ScoreRepo  scoreRepo.Repository
	PlayerRepo playerRepo.Repository

	// Service dependencies
	Dictionary    words.Dictionary
	WordSource    words.Source
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
	Logger        *zap.SugaredLogger
}

// StartGameInput contains parameters for starting a solo game
type StartGameInput struct {
	UserID     string
	Difficulty models.Difficulty
}

// StartGameOutput contains the game to play
type StartGameOutput struct {
	Game *GameView

	// Resumed is true when an unfinished game at this difficulty was returned
	Resumed bool
}

// SubmitGuessInput contains parameters for a solo guess
type SubmitGuessInput struct {
	GameID string
	UserID string
	Word   string
}

// SubmitGuessOutput contains the scored guess
type SubmitGuessOutput struct {
	Guess *models.Guess
	Game  *GameView

	// Record is the score recorded when this guess solved the game
	Record *models.SoloScoreRecord
}

// UseHintInput contains parameters for revealing a letter
type UseHintInput struct {
	GameID string
	UserID string
}

// UseHintOutput contains the revealed letter
type UseHintOutput struct {
	Position int
	Letter   string
	Game     *GameView
}

// AbandonInput contains parameters for giving up a game
type AbandonInput struct {
	GameID string
	UserID string
}

// GetGameInput contains parameters for reading a game
type GetGameInput struct {
	GameID string
	UserID string
}

// RecordSoloScoreInput contains a finished game's result
type RecordSoloScoreInput struct {
	UserID     string
	Difficulty models.Difficulty
	Score      int
	UsedHints  int
}

// RecordSoloScoreOutput contains the stored record
type RecordSoloScoreOutput struct {
	Record *models.SoloScoreRecord
}

// SetUsernameInput contains parameters for naming a player
type SetUsernameInput struct {
	UserID   string
	Username string
}

// GameView is a solo game as shown to its player. The target is hidden
// until the game is over.
type GameView struct {
	ID                string                `json:"id"`
	Difficulty        models.Difficulty     `json:"difficulty"`
	WordLength        int                   `json:"wordLength"`
	Guesses           []*models.Guess       `json:"guesses"`
	HintsUsed         int                   `json:"hintsUsed"`
	RevealedPositions []int                 `json:"revealedPositions"`
	Status            models.SoloGameStatus `json:"status"`
	Target            string                `json:"target,omitempty"`
	Score             int                   `json:"score,omitempty"`
}
