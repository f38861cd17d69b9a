package leaderboard

import "github.com/KirkDiggler/wordduel/internal/models"

type SaveSnapshotInput struct {
	Snapshot *models.LeaderboardSnapshot
}

type GetSnapshotInput struct {
	Difficulty models.Difficulty
}
