package models

import (
	"time"
)

// PlayerProfile holds the per-user data the leaderboard reads
type PlayerProfile struct {
	// UserID is the player's user ID
	UserID string `json:"userId"`

	// Username is the display name shown on leaderboards
	Username string `json:"username"`

	// LastSoloActivity is when the player last finished a solo game
	LastSoloActivity *time.Time `json:"lastSoloActivity,omitempty"`
}
