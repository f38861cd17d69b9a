package models

import "time"

// LeaderboardEntry is one ranked player in a snapshot
type LeaderboardEntry struct {
	UserID           string     `json:"userId"`
	Username         string     `json:"username"`
	BaseScore        float64    `json:"baseScore"`
	ActivityBonus    float64    `json:"activityBonus"`
	FinalScore       float64    `json:"finalScore"`
	GamesCount       int        `json:"gamesCount"`
	LastSoloActivity *time.Time `json:"lastSoloActivity,omitempty"`
	Rank             int        `json:"rank"`
}

// LeaderboardSnapshot is the computed ranking for one difficulty.
// Each aggregation run replaces it wholesale.
type LeaderboardSnapshot struct {
	Difficulty    Difficulty          `json:"difficulty"`
	CalculatedAt  time.Time           `json:"calculatedAt"`
	Entries       []*LeaderboardEntry `json:"entries"`
	TotalEligible int                 `json:"totalEligible"`
}
