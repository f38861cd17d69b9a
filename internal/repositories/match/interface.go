package match

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/wordduel/internal/repositories/match Repository

import (
	"context"

	"github.com/KirkDiggler/wordduel/internal/models"
)

// Repository defines the interface for match record persistence.
// Every mutating call is a single atomic operation against the shared record.
type Repository interface {
	// CreateMatch persists a new pending match
	CreateMatch(ctx context.Context, input *CreateMatchInput) error

	// GetMatch retrieves a match with both guess histories
	GetMatch(ctx context.Context, input *GetMatchInput) (*models.Match, error)

	// SetWord stores a player's secret word and activates the match once both are set
	SetWord(ctx context.Context, input *SetWordInput) (*SetWordOutput, error)

	// AppendGuess appends a guess to a slot if the slot's attempts counter still matches
	AppendGuess(ctx context.Context, input *AppendGuessInput) (*AppendGuessOutput, error)

	// Complete moves a non-terminal match to a terminal status exactly once
	Complete(ctx context.Context, input *CompleteInput) (*CompleteOutput, error)

	// ClaimNotification flips notificationsSent and reports whether this call flipped it
	ClaimNotification(ctx context.Context, input *ClaimNotificationInput) (bool, error)

	// MarkResultsSeen records that a player has viewed the final result
	MarkResultsSeen(ctx context.Context, input *MarkResultsSeenInput) error

	// ListActive returns the IDs of every non-terminal match
	ListActive(ctx context.Context, input *ListActiveInput) (*ListActiveOutput, error)

	// Subscribe delivers an event for every change to one match
	Subscribe(ctx context.Context, input *SubscribeInput) (*Subscription, error)
}
