package score

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/wordduel/internal/repositories/score Repository

import (
	"context"
)

// Repository defines the interface for the append-only solo score log
type Repository interface {
	// AddRecord appends a completed solo game
	AddRecord(ctx context.Context, input *AddRecordInput) error

	// ListPlayers returns every user with at least one record at a difficulty
	ListPlayers(ctx context.Context, input *ListPlayersInput) (*ListPlayersOutput, error)

	// GetRecords returns a user's records at a difficulty, newest first
	GetRecords(ctx context.Context, input *GetRecordsInput) (*GetRecordsOutput, error)
}
