package leaderboard

import (
	"fmt"
	"sort"
	"strings"

	"github.com/KirkDiggler/wordduel/internal/models"
)

// LeaderboardError is a custom error type for ranking errors
type LeaderboardError string

// Error implements the error interface
func (e LeaderboardError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrAggregationPartialFailure LeaderboardError = "leaderboard aggregation failed for some difficulties"
	ErrSnapshotNotFound          LeaderboardError = "leaderboard snapshot not found"
	ErrInvalidDifficulty         LeaderboardError = "unknown difficulty"
	ErrNilConfig                 LeaderboardError = "config cannot be nil"
	ErrNilScoreRepo              LeaderboardError = "score repository cannot be nil"
	ErrNilPlayerRepo             LeaderboardError = "player repository cannot be nil"
	ErrNilLeaderboardRepo        LeaderboardError = "leaderboard repository cannot be nil"
	ErrNilClock                  LeaderboardError = "clock cannot be nil"
)

// PartialFailureError reports the tiers that failed during a run.
// The remaining tiers were saved.
type PartialFailureError struct {
	Failures map[models.Difficulty]error
}

// Error implements the error interface
func (e *PartialFailureError) Error() string {
	keys := make([]string, 0, len(e.Failures))
	for d := range e.Failures {
		keys = append(keys, string(d))
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %v", k, e.Failures[models.Difficulty(k)]))
	}

	return fmt.Sprintf("%s (%s)", ErrAggregationPartialFailure, strings.Join(parts, "; "))
}

// Is lets errors.Is match ErrAggregationPartialFailure
func (e *PartialFailureError) Is(target error) bool {
	return target == ErrAggregationPartialFailure
}

// Unwrap exposes the per-tier errors
func (e *PartialFailureError) Unwrap() []error {
	errs := make([]error, 0, len(e.Failures))
	for _, err := range e.Failures {
		errs = append(errs, err)
	}
	return errs
}
