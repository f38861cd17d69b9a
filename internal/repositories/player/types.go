package player

import (
	"time"

	"github.com/KirkDiggler/wordduel/internal/models"
)

// SaveUsernameInput contains parameters for saving a display name
type SaveUsernameInput struct {
	UserID   string
	Username string
}

// GetProfileInput contains parameters for retrieving a profile
type GetProfileInput struct {
	UserID string
}

// GetProfilesInput contains parameters for retrieving several profiles
type GetProfilesInput struct {
	UserIDs []string
}

// GetProfilesOutput contains profiles keyed by user ID
type GetProfilesOutput struct {
	Profiles map[string]*models.PlayerProfile
}

// TouchSoloActivityInput contains parameters for recording solo activity
type TouchSoloActivityInput struct {
	UserID string
	At     time.Time
}
