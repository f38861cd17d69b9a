package solo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/KirkDiggler/wordduel/internal/common/clock"
	"github.com/KirkDiggler/wordduel/internal/common/logger"
	"github.com/KirkDiggler/wordduel/internal/common/uuid"
	"github.com/KirkDiggler/wordduel/internal/feedback"
	"github.com/KirkDiggler/wordduel/internal/models"
	playerRepo "github.com/KirkDiggler/wordduel/internal/repositories/player"
	scoreRepo "github.com/KirkDiggler/wordduel/internal/repositories/score"
	soloRepo "github.com/KirkDiggler/wordduel/internal/repositories/solo"
	"github.com/KirkDiggler/wordduel/internal/services/words"
	"go.uber.org/zap"
)

const maxUsernameLength = 32

// service implements the Service interface
type service struct {
	soloRepo      soloRepo.Repository
	scoreRepo     scoreRepo.Repository
	playerRepo    playerRepo.Repository
	dictionary    words.Dictionary
	wordSource    words.Source
	clock         clock.Clock
	uuidGenerator uuid.UUID
	log           *zap.SugaredLogger
}

// New creates a new solo service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.SoloRepo == nil {
		return nil, ErrNilSoloRepo
	}

	if cfg.ScoreRepo == nil {
		return nil, ErrNilScoreRepo
	}

	if cfg.PlayerRepo == nil {
		return nil, ErrNilPlayerRepo
	}

	if cfg.Dictionary == nil {
		return nil, ErrNilDictionary
	}

	if cfg.WordSource == nil {
		return nil, ErrNilWordSource
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		soloRepo:      cfg.SoloRepo,
		scoreRepo:     cfg.ScoreRepo,
		playerRepo:    cfg.PlayerRepo,
		dictionary:    cfg.Dictionary,
		wordSource:    cfg.WordSource,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		log:           logger.OrNop(cfg.Logger),
	}, nil
}

// ComputeScore is the solo score of a finished game; lower is better
func ComputeScore(nonHintGuesses, hintsUsed int) int {
	return models.SoloScore(nonHintGuesses, hintsUsed)
}

// StartGame draws a target word, or resumes the player's unfinished game
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	if !input.Difficulty.Valid() {
		return nil, ErrInvalidDiff
	}

	// Check if the player already has a game at this difficulty
	existing, err := s.soloRepo.GetActiveGameByUser(ctx, &soloRepo.GetActiveGameByUserInput{
		UserID:     input.UserID,
		Difficulty: input.Difficulty,
	})
	if err == nil && existing != nil {
		return &StartGameOutput{
			Game:    toView(existing),
			Resumed: true,
		}, nil
	}

	// Only proceed if the error is "not found"
	if err != nil && !errors.Is(err, soloRepo.ErrGameNotFound) {
		return nil, fmt.Errorf("failed to check for active game: %w", err)
	}

	target, err := s.wordSource.DrawRandomWord(input.Difficulty.WordLength())
	if err != nil {
		return nil, fmt.Errorf("failed to draw target word: %w", err)
	}

	game := &models.SoloGame{
		ID:                s.uuidGenerator.NewUUID(),
		UserID:            input.UserID,
		Difficulty:        input.Difficulty,
		Target:            strings.ToUpper(target),
		Guesses:           []*models.Guess{},
		RevealedPositions: []int{},
		Status:            models.SoloGameStatusActive,
		StartedAt:         s.clock.Now(),
	}

	err = s.soloRepo.SaveGame(ctx, &soloRepo.SaveGameInput{Game: game})
	if errors.Is(err, soloRepo.ErrActiveGameExists) {
		// A concurrent start won; resume its game
		existing, err := s.soloRepo.GetActiveGameByUser(ctx, &soloRepo.GetActiveGameByUserInput{
			UserID:     input.UserID,
			Difficulty: input.Difficulty,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to get active game: %w", err)
		}
		return &StartGameOutput{Game: toView(existing), Resumed: true}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	return &StartGameOutput{Game: toView(game)}, nil
}

// SubmitGuess scores a guess against the target. Solving finishes the game
// and records its score in the same write, so a game is scored once.
func (s *service) SubmitGuess(ctx context.Context, input *SubmitGuessInput) (*SubmitGuessOutput, error) {
	if input == nil {
		return nil, ErrGameNotFound
	}

	game, err := s.activeGame(ctx, input.GameID, input.UserID)
	if err != nil {
		return nil, err
	}

	length := game.Difficulty.WordLength()
	word := strings.ToUpper(strings.TrimSpace(input.Word))
	if len(word) != length || !s.dictionary.IsValidWord(word, length) {
		return nil, ErrInvalidWord
	}

	result, err := feedback.Score(word, game.Target)
	if err != nil {
		return nil, fmt.Errorf("failed to score guess: %w", err)
	}

	now := s.clock.Now()
	guess := &models.Guess{
		Word:             word,
		Dots:             result.Dots,
		Circles:          result.Circles,
		PerLetterOutcome: result.PerLetterOutcome,
		IsCorrect:        result.IsCorrect(),
		Timestamp:        now,
	}
	game.Guesses = append(game.Guesses, guess)

	save := &soloRepo.SaveGameInput{Game: game}
	if guess.IsCorrect {
		game.Status = models.SoloGameStatusSolved
		game.FinishedAt = &now
		save.Record = &models.SoloScoreRecord{
			ID:         s.uuidGenerator.NewUUID(),
			UserID:     game.UserID,
			Difficulty: game.Difficulty,
			Score:      ComputeScore(models.CountNonHint(game.Guesses), game.HintsUsed),
			UsedHints:  game.HintsUsed,
			Timestamp:  now,
		}
	}

	if err := s.saveGame(ctx, save); err != nil {
		return nil, err
	}

	if save.Record != nil {
		s.touchSoloActivity(ctx, game.UserID, now)
		s.log.Debugw("solo game solved", "uid", game.UserID, "difficulty", game.Difficulty, "score", save.Record.Score)
	}

	return &SubmitGuessOutput{
		Guess:  guess,
		Game:   toView(game),
		Record: save.Record,
	}, nil
}

// UseHint reveals the leftmost letter not yet revealed. The last letter is
// never revealed.
func (s *service) UseHint(ctx context.Context, input *UseHintInput) (*UseHintOutput, error) {
	if input == nil {
		return nil, ErrGameNotFound
	}

	game, err := s.activeGame(ctx, input.GameID, input.UserID)
	if err != nil {
		return nil, err
	}

	target := []rune(game.Target)
	if len(game.RevealedPositions) >= len(target)-1 {
		return nil, ErrNoHintsLeft
	}

	revealed := make(map[int]bool, len(game.RevealedPositions))
	for _, p := range game.RevealedPositions {
		revealed[p] = true
	}

	position := 0
	for revealed[position] {
		position++
	}

	mask := []rune(strings.Repeat("_", len(target)))
	mask[position] = target[position]
	outcomes := make([]models.LetterOutcome, len(target))
	for i := range outcomes {
		outcomes[i] = models.LetterOutcomeNone
	}
	outcomes[position] = models.LetterOutcomeCorrect

	game.RevealedPositions = append(game.RevealedPositions, position)
	game.HintsUsed++
	game.Guesses = append(game.Guesses, &models.Guess{
		Word:             string(mask),
		Dots:             1,
		PerLetterOutcome: outcomes,
		IsHint:           true,
		Timestamp:        s.clock.Now(),
	})

	if err := s.saveGame(ctx, &soloRepo.SaveGameInput{Game: game}); err != nil {
		return nil, err
	}

	return &UseHintOutput{
		Position: position,
		Letter:   string(target[position]),
		Game:     toView(game),
	}, nil
}

// Abandon gives up a game without recording a score
func (s *service) Abandon(ctx context.Context, input *AbandonInput) (*GameView, error) {
	if input == nil {
		return nil, ErrGameNotFound
	}

	game, err := s.activeGame(ctx, input.GameID, input.UserID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	game.Status = models.SoloGameStatusAbandoned
	game.FinishedAt = &now

	if err := s.saveGame(ctx, &soloRepo.SaveGameInput{Game: game}); err != nil {
		return nil, err
	}

	return toView(game), nil
}

// GetGame returns the player's view of a game
func (s *service) GetGame(ctx context.Context, input *GetGameInput) (*GameView, error) {
	if input == nil {
		return nil, ErrGameNotFound
	}

	game, err := s.ownedGame(ctx, input.GameID, input.UserID)
	if err != nil {
		return nil, err
	}

	return toView(game), nil
}

// RecordSoloScore appends a finished game to the score log and moves the
// player's last solo activity forward
func (s *service) RecordSoloScore(ctx context.Context, input *RecordSoloScoreInput) (*RecordSoloScoreOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	if !input.Difficulty.Valid() {
		return nil, ErrInvalidDiff
	}

	if input.Score < 1 || input.UsedHints < 0 {
		return nil, ErrInvalidScore
	}

	now := s.clock.Now()
	record := &models.SoloScoreRecord{
		ID:         s.uuidGenerator.NewUUID(),
		UserID:     input.UserID,
		Difficulty: input.Difficulty,
		Score:      input.Score,
		UsedHints:  input.UsedHints,
		Timestamp:  now,
	}

	if err := s.scoreRepo.AddRecord(ctx, &scoreRepo.AddRecordInput{Record: record}); err != nil {
		return nil, fmt.Errorf("failed to add score record: %w", err)
	}

	s.touchSoloActivity(ctx, input.UserID, now)
	s.log.Debugw("solo score recorded", "uid", input.UserID, "difficulty", input.Difficulty, "score", input.Score)

	return &RecordSoloScoreOutput{Record: record}, nil
}

// SetUsername sets the name shown on leaderboards
func (s *service) SetUsername(ctx context.Context, input *SetUsernameInput) error {
	if input == nil || input.UserID == "" {
		return errors.New("input and user ID cannot be empty")
	}

	name := strings.TrimSpace(input.Username)
	if name == "" || utf8.RuneCountInString(name) > maxUsernameLength {
		return ErrInvalidUsername
	}

	if err := s.playerRepo.SaveUsername(ctx, &playerRepo.SaveUsernameInput{
		UserID:   input.UserID,
		Username: name,
	}); err != nil {
		return fmt.Errorf("failed to save username: %w", err)
	}

	return nil
}

// saveGame writes a game read earlier, reporting a concurrent change as
// ErrStaleState
func (s *service) saveGame(ctx context.Context, input *soloRepo.SaveGameInput) error {
	if err := s.soloRepo.SaveGame(ctx, input); err != nil {
		if errors.Is(err, soloRepo.ErrStaleGame) {
			return ErrStaleState
		}
		return fmt.Errorf("failed to save game: %w", err)
	}
	return nil
}

// touchSoloActivity moves the profile's last solo activity forward. The
// record is the source of truth; a stale profile timestamp only falls back
// to the newest record during aggregation.
func (s *service) touchSoloActivity(ctx context.Context, userID string, at time.Time) {
	if err := s.playerRepo.TouchSoloActivity(ctx, &playerRepo.TouchSoloActivityInput{
		UserID: userID,
		At:     at,
	}); err != nil {
		s.log.Warnw("failed to update last solo activity", "uid", userID, "error", err)
	}
}

func (s *service) ownedGame(ctx context.Context, gameID, userID string) (*models.SoloGame, error) {
	if gameID == "" {
		return nil, ErrGameNotFound
	}

	game, err := s.soloRepo.GetGame(ctx, &soloRepo.GetGameInput{GameID: gameID})
	if err != nil {
		if errors.Is(err, soloRepo.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	if game.UserID != userID {
		return nil, ErrNotOwner
	}

	return game, nil
}

func (s *service) activeGame(ctx context.Context, gameID, userID string) (*models.SoloGame, error) {
	game, err := s.ownedGame(ctx, gameID, userID)
	if err != nil {
		return nil, err
	}

	if game.Status != models.SoloGameStatusActive {
		return nil, ErrGameNotActive
	}

	return game, nil
}

func toView(game *models.SoloGame) *GameView {
	view := &GameView{
		ID:                game.ID,
		Difficulty:        game.Difficulty,
		WordLength:        game.Difficulty.WordLength(),
		Guesses:           game.Guesses,
		HintsUsed:         game.HintsUsed,
		RevealedPositions: game.RevealedPositions,
		Status:            game.Status,
	}

	if view.Guesses == nil {
		view.Guesses = []*models.Guess{}
	}
	if view.RevealedPositions == nil {
		view.RevealedPositions = []int{}
	}

	if game.Status != models.SoloGameStatusActive {
		view.Target = game.Target
	}
	if game.Status == models.SoloGameStatusSolved {
		view.Score = ComputeScore(models.CountNonHint(game.Guesses), game.HintsUsed)
	}

	return view
}
