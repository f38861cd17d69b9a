package leaderboard

import (
	"time"

	"github.com/KirkDiggler/wordduel/internal/common/clock"
	"github.com/KirkDiggler/wordduel/internal/metrics"
	"github.com/KirkDiggler/wordduel/internal/models"
	leaderboardRepo "github.com/KirkDiggler/wordduel/internal/repositories/leaderboard"
	playerRepo "github.com/KirkDiggler/wordduel/internal/repositories/player"
	scoreRepo "github.com/KirkDiggler/wordduel/internal/repositories/score"
	"go.uber.org/zap"
)

const (
	DefaultMinGames         = 20
	DefaultRollingWindow    = 20
	DefaultInactivityWindow = 7 * 24 * time.Hour
	DefaultTopN             = 100

	recentWindow       = 3 * 24 * time.Hour
	frequencyWindow    = 7 * 24 * time.Hour
	frequencyThreshold = 10
	bonusStep          = -0.5
	bonusCap           = -1.0
)

// Config holds configuration for the ranking aggregator
type Config struct {
	// MinGames is the number of records a player needs to be ranked
	MinGames int

	// RollingWindow is how many of the newest records make up the base score
	RollingWindow int

	// InactivityWindow excludes players whose last solo activity is older
	InactivityWindow time.Duration

	// TopN caps the number of ranked entries per snapshot
	TopN int

	ScoreRepo       scoreRepo.Repository
	PlayerRepo      playerRepo.Repository
	LeaderboardRepo leaderboardRepo.Repository
	Clock           clock.Clock

	// Optional
	Metrics *metrics.Metrics
	Logger  *zap.SugaredLogger
}

// RunInput contains parameters for an aggregation run
type RunInput struct {
	// Difficulties to recompute; empty means every tier
	Difficulties []models.Difficulty
}

// TierResult is the outcome of one difficulty within a run
type TierResult struct {
	Difficulty models.Difficulty           `json:"difficulty"`
	Snapshot   *models.LeaderboardSnapshot `json:"snapshot,omitempty"`
	Error      string                      `json:"error,omitempty"`
}

// RunOutput contains one result per requested difficulty, in request order
type RunOutput struct {
	Results []*TierResult `json:"results"`
}

// GetSnapshotInput contains parameters for reading a snapshot
type GetSnapshotInput struct {
	Difficulty models.Difficulty
}
