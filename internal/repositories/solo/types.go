package solo

import "github.com/KirkDiggler/wordduel/internal/models"

type SaveGameInput struct {
	Game *models.SoloGame

	// Record is appended to the score log in the same write; optional
	Record *models.SoloScoreRecord
}

type GetGameInput struct {
	GameID string
}

type GetActiveGameByUserInput struct {
	UserID     string
	Difficulty models.Difficulty
}
