package leaderboard

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/KirkDiggler/wordduel/internal/common/clock"
	"github.com/KirkDiggler/wordduel/internal/common/logger"
	"github.com/KirkDiggler/wordduel/internal/metrics"
	"github.com/KirkDiggler/wordduel/internal/models"
	leaderboardRepo "github.com/KirkDiggler/wordduel/internal/repositories/leaderboard"
	playerRepo "github.com/KirkDiggler/wordduel/internal/repositories/player"
	scoreRepo "github.com/KirkDiggler/wordduel/internal/repositories/score"
	"go.uber.org/zap"
)

// service implements the Service interface
type service struct {
	minGames         int
	rollingWindow    int
	inactivityWindow time.Duration
	topN             int

	scoreRepo       scoreRepo.Repository
	playerRepo      playerRepo.Repository
	leaderboardRepo leaderboardRepo.Repository
	clock           clock.Clock
	metrics         *metrics.Metrics
	log             *zap.SugaredLogger
}

// New creates a new ranking aggregator
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.ScoreRepo == nil {
		return nil, ErrNilScoreRepo
	}

	if cfg.PlayerRepo == nil {
		return nil, ErrNilPlayerRepo
	}

	if cfg.LeaderboardRepo == nil {
		return nil, ErrNilLeaderboardRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	s := &service{
		minGames:         cfg.MinGames,
		rollingWindow:    cfg.RollingWindow,
		inactivityWindow: cfg.InactivityWindow,
		topN:             cfg.TopN,
		scoreRepo:        cfg.ScoreRepo,
		playerRepo:       cfg.PlayerRepo,
		leaderboardRepo:  cfg.LeaderboardRepo,
		clock:            cfg.Clock,
		metrics:          cfg.Metrics,
		log:              logger.OrNop(cfg.Logger),
	}

	if s.minGames <= 0 {
		s.minGames = DefaultMinGames
	}
	if s.rollingWindow <= 0 {
		s.rollingWindow = DefaultRollingWindow
	}
	if s.inactivityWindow <= 0 {
		s.inactivityWindow = DefaultInactivityWindow
	}
	if s.topN <= 0 {
		s.topN = DefaultTopN
	}

	return s, nil
}

// Run recomputes each tier in turn. A tier's snapshot is saved only after it
// is fully computed, so a failure leaves the previous snapshot in place.
func (s *service) Run(ctx context.Context, input *RunInput) (*RunOutput, error) {
	difficulties := models.AllDifficulties
	if input != nil && len(input.Difficulties) > 0 {
		difficulties = input.Difficulties
	}

	start := time.Now()
	defer func() {
		s.metrics.ObserveRunDuration(time.Since(start))
	}()

	output := &RunOutput{Results: make([]*TierResult, 0, len(difficulties))}
	failures := make(map[models.Difficulty]error)

	for _, difficulty := range difficulties {
		result := &TierResult{Difficulty: difficulty}
		output.Results = append(output.Results, result)

		snapshot, err := s.runTier(ctx, difficulty)
		if err != nil {
			s.log.Errorw("leaderboard tier failed", "difficulty", difficulty, "error", err)
			s.metrics.ObserveLeaderboardTier(string(difficulty), 0, err)
			failures[difficulty] = err
			result.Error = err.Error()
			continue
		}

		s.metrics.ObserveLeaderboardTier(string(difficulty), snapshot.TotalEligible, nil)
		s.log.Infow("leaderboard tier computed",
			"difficulty", difficulty,
			"eligible", snapshot.TotalEligible,
			"ranked", len(snapshot.Entries))
		result.Snapshot = snapshot
	}

	if len(failures) > 0 {
		return output, &PartialFailureError{Failures: failures}
	}

	return output, nil
}

// GetSnapshot returns the current snapshot for a difficulty
func (s *service) GetSnapshot(ctx context.Context, input *GetSnapshotInput) (*models.LeaderboardSnapshot, error) {
	if input == nil || !input.Difficulty.Valid() {
		return nil, ErrInvalidDifficulty
	}

	snapshot, err := s.leaderboardRepo.GetSnapshot(ctx, &leaderboardRepo.GetSnapshotInput{
		Difficulty: input.Difficulty,
	})
	if err != nil {
		if errors.Is(err, leaderboardRepo.ErrSnapshotNotFound) {
			return nil, ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}

	return snapshot, nil
}

func (s *service) runTier(ctx context.Context, difficulty models.Difficulty) (*models.LeaderboardSnapshot, error) {
	if !difficulty.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDifficulty, difficulty)
	}

	snapshot, err := s.computeSnapshot(ctx, difficulty)
	if err != nil {
		return nil, err
	}

	if err := s.leaderboardRepo.SaveSnapshot(ctx, &leaderboardRepo.SaveSnapshotInput{
		Snapshot: snapshot,
	}); err != nil {
		return nil, fmt.Errorf("failed to save snapshot: %w", err)
	}

	return snapshot, nil
}

func (s *service) computeSnapshot(ctx context.Context, difficulty models.Difficulty) (*models.LeaderboardSnapshot, error) {
	now := s.clock.Now()

	players, err := s.scoreRepo.ListPlayers(ctx, &scoreRepo.ListPlayersInput{Difficulty: difficulty})
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}

	profiles := map[string]*models.PlayerProfile{}
	if len(players.UserIDs) > 0 {
		out, err := s.playerRepo.GetProfiles(ctx, &playerRepo.GetProfilesInput{UserIDs: players.UserIDs})
		if err != nil {
			return nil, fmt.Errorf("failed to get profiles: %w", err)
		}
		profiles = out.Profiles
	}

	entries := make([]*models.LeaderboardEntry, 0, len(players.UserIDs))
	for _, userID := range players.UserIDs {
		records, err := s.scoreRepo.GetRecords(ctx, &scoreRepo.GetRecordsInput{
			UserID:     userID,
			Difficulty: difficulty,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to get records for %s: %w", userID, err)
		}

		entry := s.rate(userID, profiles[userID], records.Records, now)
		if entry != nil {
			entries = append(entries, entry)
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.FinalScore != b.FinalScore {
			return a.FinalScore < b.FinalScore
		}
		if a.GamesCount != b.GamesCount {
			return a.GamesCount > b.GamesCount
		}
		return a.UserID < b.UserID
	})

	total := len(entries)
	if len(entries) > s.topN {
		entries = entries[:s.topN]
	}

	for i, entry := range entries {
		entry.Rank = i + 1
		entry.BaseScore = round2(entry.BaseScore)
		entry.ActivityBonus = round2(entry.ActivityBonus)
		entry.FinalScore = round2(entry.FinalScore)
	}

	return &models.LeaderboardSnapshot{
		Difficulty:    difficulty,
		CalculatedAt:  now,
		Entries:       entries,
		TotalEligible: total,
	}, nil
}

// rate scores one player, or returns nil when they are not eligible.
// records must be newest first.
func (s *service) rate(userID string, profile *models.PlayerProfile, records []*models.SoloScoreRecord, now time.Time) *models.LeaderboardEntry {
	if len(records) < s.minGames {
		return nil
	}

	var lastActivity time.Time
	if profile != nil && profile.LastSoloActivity != nil {
		lastActivity = *profile.LastSoloActivity
	} else {
		lastActivity = records[0].Timestamp
	}

	if now.Sub(lastActivity) > s.inactivityWindow {
		return nil
	}

	window := records
	if len(window) > s.rollingWindow {
		window = window[:s.rollingWindow]
	}

	sum := 0
	for _, record := range window {
		sum += record.Score
	}
	base := float64(sum) / float64(len(window))

	bonus := activityBonus(records, now)

	entry := &models.LeaderboardEntry{
		UserID:           userID,
		BaseScore:        base,
		ActivityBonus:    bonus,
		FinalScore:       base + bonus,
		GamesCount:       len(records),
		LastSoloActivity: &lastActivity,
	}
	if profile != nil {
		entry.Username = profile.Username
	}

	return entry
}

// activityBonus rewards recent play. Both conditions are checked before the cap.
func activityBonus(records []*models.SoloScoreRecord, now time.Time) float64 {
	playedRecently := false
	lastWeek := 0
	for _, record := range records {
		age := now.Sub(record.Timestamp)
		if age <= recentWindow {
			playedRecently = true
		}
		if age <= frequencyWindow {
			lastWeek++
		}
	}

	bonus := 0.0
	if playedRecently {
		bonus += bonusStep
	}
	if lastWeek >= frequencyThreshold {
		bonus += bonusStep
	}

	return math.Max(bonus, bonusCap)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
