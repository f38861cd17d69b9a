package solo

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/wordduel/internal/services/solo Service

import "context"

// Service defines the interface for the companion solo mode
type Service interface {
	// StartGame draws a target word, or resumes the player's unfinished game
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// SubmitGuess scores a guess; solving records the game's score
	SubmitGuess(ctx context.Context, input *SubmitGuessInput) (*SubmitGuessOutput, error)

	// UseHint reveals one letter of the target at a score penalty
	UseHint(ctx context.Context, input *UseHintInput) (*UseHintOutput, error)

	// Abandon gives up a game without recording a score
	Abandon(ctx context.Context, input *AbandonInput) (*GameView, error)

	// GetGame returns the player's view of a game
	GetGame(ctx context.Context, input *GetGameInput) (*GameView, error)

	// RecordSoloScore appends a finished game to the player's score log
	RecordSoloScore(ctx context.Context, input *RecordSoloScoreInput) (*RecordSoloScoreOutput, error)

	// SetUsername sets the name shown on leaderboards
	SetUsername(ctx context.Context, input *SetUsernameInput) error
}
