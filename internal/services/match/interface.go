package match

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/wordduel/internal/services/match Service

import (
	"context"

	matchRepo "github.com/KirkDiggler/wordduel/internal/repositories/match"
)

// Service defines the interface for the PvP match lifecycle
type Service interface {
	// CreateMatch creates a pending match between two players
	CreateMatch(ctx context.Context, input *CreateMatchInput) (*CreateMatchOutput, error)

	// SetSecretWord stores the word the opponent will guess
	SetSecretWord(ctx context.Context, input *SetSecretWordInput) (*SetSecretWordOutput, error)

	// DrawSecretWord picks a random secret word for the caller
	DrawSecretWord(ctx context.Context, input *DrawSecretWordInput) (*DrawSecretWordOutput, error)

	// SubmitGuess scores a guess against the opponent's word and records it
	SubmitGuess(ctx context.Context, input *SubmitGuessInput) (*SubmitGuessOutput, error)

	// Forfeit ends the match immediately in the opponent's favour
	Forfeit(ctx context.Context, input *ForfeitInput) (*ForfeitOutput, error)

	// Timeout ends an inactive match, evaluating the current state as final
	Timeout(ctx context.Context, input *TimeoutInput) (*TimeoutOutput, error)

	// SweepInactive times out every match whose last activity is older than the configured threshold
	SweepInactive(ctx context.Context) (*SweepInactiveOutput, error)

	// Resolve completes a match whose slots are both finished. Safe to call any number of times.
	Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error)

	// GetMatchState returns the caller's view of a match
	GetMatchState(ctx context.Context, input *GetMatchStateInput) (*MatchState, error)

	// MarkResultsSeen records that the caller has viewed the final result
	MarkResultsSeen(ctx context.Context, input *MarkResultsSeenInput) error

	// Subscribe streams change events for a match
	Subscribe(ctx context.Context, matchID string) (*matchRepo.Subscription, error)

	// Watch resolves the match whenever a change leaves both sides finished.
	// It returns once the match is terminal or ctx is done.
	Watch(ctx context.Context, matchID string) error
}
