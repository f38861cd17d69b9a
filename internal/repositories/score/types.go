package score

import "github.com/KirkDiggler/wordduel/internal/models"

type AddRecordInput struct {
	Record *models.SoloScoreRecord
}

type ListPlayersInput struct {
	Difficulty models.Difficulty
}

type ListPlayersOutput struct {
	UserIDs []string
}

type GetRecordsInput struct {
	UserID     string
	Difficulty models.Difficulty

	// Limit caps the number of records returned; 0 returns all
	Limit int
}

type GetRecordsOutput struct {
	Records []*models.SoloScoreRecord
}
