package player

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/wordduel/internal/repositories/player Repository

import (
	"context"

	"github.com/KirkDiggler/wordduel/internal/models"
)

// Repository defines the interface for player profile persistence
type Repository interface {
	// SaveUsername sets a player's display name
	SaveUsername(ctx context.Context, input *SaveUsernameInput) error

	// GetProfile retrieves a player's profile; unknown players get an empty profile
	GetProfile(ctx context.Context, input *GetProfileInput) (*models.PlayerProfile, error)

	// GetProfiles retrieves several profiles in one round trip
	GetProfiles(ctx context.Context, input *GetProfilesInput) (*GetProfilesOutput, error)

	// TouchSoloActivity advances a player's last solo activity timestamp
	TouchSoloActivity(ctx context.Context, input *TouchSoloActivityInput) error
}
