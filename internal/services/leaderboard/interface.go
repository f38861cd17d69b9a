package leaderboard

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/wordduel/internal/services/leaderboard Service

import (
	"context"

	"github.com/KirkDiggler/wordduel/internal/models"
)

// Service defines the interface for the ranking aggregator
type Service interface {
	// Run recomputes and replaces the snapshot of each requested difficulty.
	// A failed tier keeps its previous snapshot and yields *PartialFailureError.
	Run(ctx context.Context, input *RunInput) (*RunOutput, error)

	// GetSnapshot returns the current snapshot for a difficulty
	GetSnapshot(ctx context.Context, input *GetSnapshotInput) (*models.LeaderboardSnapshot, error)
}
