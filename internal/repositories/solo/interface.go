package solo

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/wordduel/internal/repositories/solo Repository

import (
	"context"

	"github.com/KirkDiggler/wordduel/internal/models"
)

// Repository defines the interface for solo game persistence
type Repository interface {
	// SaveGame persists a solo game read at game.Version, bumping the version
	SaveGame(ctx context.Context, input *SaveGameInput) error

	// GetGame retrieves a solo game by ID
	GetGame(ctx context.Context, input *GetGameInput) (*models.SoloGame, error)

	// GetActiveGameByUser retrieves a user's in-progress game at a difficulty
	GetActiveGameByUser(ctx context.Context, input *GetActiveGameByUserInput) (*models.SoloGame, error)
}
