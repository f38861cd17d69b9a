package leaderboard

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/wordduel/internal/repositories/leaderboard Repository

import (
	"context"

	"github.com/KirkDiggler/wordduel/internal/models"
)

// Repository defines the interface for leaderboard snapshot persistence.
// There is one snapshot per difficulty and saving replaces it.
type Repository interface {
	// SaveSnapshot replaces the snapshot for the snapshot's difficulty
	SaveSnapshot(ctx context.Context, input *SaveSnapshotInput) error

	// GetSnapshot retrieves the current snapshot for a difficulty
	GetSnapshot(ctx context.Context, input *GetSnapshotInput) (*models.LeaderboardSnapshot, error)
}
