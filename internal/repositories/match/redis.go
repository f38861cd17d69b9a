package match

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/wordduel/internal/common/logger"
	"github.com/KirkDiggler/wordduel/internal/models"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	// Key prefixes for Redis
	matchKeyPrefix   = "match:"
	activeMatchesKey = "active_matches"
)

var (
	// ErrMatchNotFound is returned when a match does not exist
	ErrMatchNotFound = errors.New("match not found")

	// ErrMatchExists is returned when creating a match whose ID is taken
	ErrMatchExists = errors.New("match already exists")

	// ErrMatchNotPending is returned when setting a word after the match started
	ErrMatchNotPending = errors.New("match is not pending")

	// ErrWordAlreadySet is returned when a slot's secret word was already chosen
	ErrWordAlreadySet = errors.New("word already set")

	// ErrMatchTerminal is returned when a guess targets a match that is not playable
	ErrMatchTerminal = errors.New("match is not accepting guesses")

	// ErrSlotFinished is returned when a guess targets a solved or exhausted slot
	ErrSlotFinished = errors.New("slot is finished")

	// ErrStaleAttempts is returned when the attempts counter moved since it was read
	ErrStaleAttempts = errors.New("attempts counter changed")
)

// Config holds configuration for the Redis match repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Logger for publish failures; optional
	Logger *zap.SugaredLogger
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	log    *zap.SugaredLogger
}

// NewRedis creates a new Redis-backed match repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
		log:    logger.OrNop(cfg.Logger),
	}, nil
}

func matchKey(matchID string) string {
	return matchKeyPrefix + matchID
}

func guessesKey(matchID string, slot Slot) string {
	return fmt.Sprintf("%s%s:guesses:%s", matchKeyPrefix, matchID, slot)
}

func seenKey(matchID string) string {
	return fmt.Sprintf("%s%s:seen", matchKeyPrefix, matchID)
}

func eventsChannel(matchID string) string {
	return fmt.Sprintf("%s%s:events", matchKeyPrefix, matchID)
}

// CreateMatch persists a new match to Redis
func (r *redisRepository) CreateMatch(ctx context.Context, input *CreateMatchInput) error {
	if input == nil || input.Match == nil {
		return errors.New("input and match cannot be nil")
	}

	m := input.Match
	if m.ID == "" || m.Player1 == nil || m.Player2 == nil {
		return errors.New("match ID and both players are required")
	}

	created, err := r.client.HSetNX(ctx, matchKey(m.ID), "id", m.ID).Result()
	if err != nil {
		return fmt.Errorf("failed to create match: %w", err)
	}
	if !created {
		return ErrMatchExists
	}

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, matchKey(m.ID), toHash(m))
	if !m.Status.IsTerminal() {
		pipe.SAdd(ctx, activeMatchesKey, m.ID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save match: %w", err)
	}

	return nil
}

// GetMatch retrieves a match by ID from Redis
func (r *redisRepository) GetMatch(ctx context.Context, input *GetMatchInput) (*models.Match, error) {
	if input == nil || input.MatchID == "" {
		return nil, errors.New("input and match ID cannot be empty")
	}

	pipe := r.client.Pipeline()
	fieldsCmd := pipe.HGetAll(ctx, matchKey(input.MatchID))
	p1Cmd := pipe.LRange(ctx, guessesKey(input.MatchID, SlotPlayer1), 0, -1)
	p2Cmd := pipe.LRange(ctx, guessesKey(input.MatchID, SlotPlayer2), 0, -1)
	seenCmd := pipe.SMembers(ctx, seenKey(input.MatchID))
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	fields := fieldsCmd.Val()
	if len(fields) == 0 {
		return nil, ErrMatchNotFound
	}

	m, err := fromHash(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to decode match %s: %w", input.MatchID, err)
	}

	if m.Player1.Guesses, err = decodeGuesses(p1Cmd.Val()); err != nil {
		return nil, fmt.Errorf("failed to decode guesses for %s: %w", input.MatchID, err)
	}
	if m.Player2.Guesses, err = decodeGuesses(p2Cmd.Val()); err != nil {
		return nil, fmt.Errorf("failed to decode guesses for %s: %w", input.MatchID, err)
	}
	m.ResultsSeenBy = seenCmd.Val()

	return m, nil
}

// SetWord stores a secret word while the match is pending
func (r *redisRepository) SetWord(ctx context.Context, input *SetWordInput) (*SetWordOutput, error) {
	if input == nil || input.MatchID == "" || input.Word == "" {
		return nil, errors.New("input, match ID and word cannot be empty")
	}

	activated, err := setWordScript.Run(ctx, r.client,
		[]string{matchKey(input.MatchID)},
		string(input.Slot), input.Word, input.Now.UnixMilli(),
	).Int()
	if err != nil {
		return nil, scriptError("set word", err)
	}

	r.publish(ctx, &Event{MatchID: input.MatchID, Type: EventWordSet, UID: input.UID})

	return &SetWordOutput{Activated: activated == 1}, nil
}

// AppendGuess appends a guess and increments the slot's attempts counter atomically
func (r *redisRepository) AppendGuess(ctx context.Context, input *AppendGuessInput) (*AppendGuessOutput, error) {
	if input == nil || input.MatchID == "" || input.Guess == nil {
		return nil, errors.New("input, match ID and guess cannot be empty")
	}

	guessJSON, err := json.Marshal(input.Guess)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal guess: %w", err)
	}

	attempts, err := appendGuessScript.Run(ctx, r.client,
		[]string{matchKey(input.MatchID), guessesKey(input.MatchID, input.Slot)},
		string(input.Slot), input.ExpectedAttempts, guessJSON, boolField(input.Guess.IsCorrect),
		input.Guess.Timestamp.UnixMilli(),
	).Int()
	if err != nil {
		return nil, scriptError("append guess", err)
	}

	r.publish(ctx, &Event{MatchID: input.MatchID, Type: EventGuess, UID: input.UID})

	return &AppendGuessOutput{Attempts: attempts}, nil
}

// Complete is the conditional write that ends a match
func (r *redisRepository) Complete(ctx context.Context, input *CompleteInput) (*CompleteOutput, error) {
	if input == nil || input.MatchID == "" {
		return nil, errors.New("input and match ID cannot be empty")
	}

	if !input.Status.IsTerminal() {
		return nil, fmt.Errorf("cannot complete match with status %q", input.Status)
	}

	expected1, expected2 := "", ""
	if input.ExpectedAttempts != nil {
		expected1 = strconv.Itoa(input.ExpectedAttempts[0])
		expected2 = strconv.Itoa(input.ExpectedAttempts[1])
	}

	flipped, err := completeScript.Run(ctx, r.client,
		[]string{matchKey(input.MatchID), activeMatchesKey},
		string(input.Status), input.WinnerID, boolField(input.Tie),
		input.FirstFinisherID, input.SecondFinisherID, input.ForfeitedBy,
		input.Now.UnixMilli(), input.MatchID, expected1, expected2,
	).Int()
	if err != nil {
		return nil, scriptError("complete match", err)
	}

	if flipped == 1 {
		r.publish(ctx, &Event{MatchID: input.MatchID, Type: EventCompleted})
	}

	return &CompleteOutput{Completed: flipped == 1}, nil
}

// ClaimNotification sets notifications_sent only if it was never set
func (r *redisRepository) ClaimNotification(ctx context.Context, input *ClaimNotificationInput) (bool, error) {
	if input == nil || input.MatchID == "" {
		return false, errors.New("input and match ID cannot be empty")
	}

	claimed, err := r.client.HSetNX(ctx, matchKey(input.MatchID), "notifications_sent", "1").Result()
	if err != nil {
		return false, fmt.Errorf("failed to claim notification: %w", err)
	}

	return claimed, nil
}

// MarkResultsSeen adds the player to the match's seen set
func (r *redisRepository) MarkResultsSeen(ctx context.Context, input *MarkResultsSeenInput) error {
	if input == nil || input.MatchID == "" || input.UID == "" {
		return errors.New("input, match ID and UID cannot be empty")
	}

	if err := r.client.SAdd(ctx, seenKey(input.MatchID), input.UID).Err(); err != nil {
		return fmt.Errorf("failed to mark results seen: %w", err)
	}

	r.publish(ctx, &Event{MatchID: input.MatchID, Type: EventSeen, UID: input.UID})

	return nil
}

// ListActive returns every match that has not reached a terminal status
func (r *redisRepository) ListActive(ctx context.Context, input *ListActiveInput) (*ListActiveOutput, error) {
	ids, err := r.client.SMembers(ctx, activeMatchesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get active match IDs: %w", err)
	}

	return &ListActiveOutput{MatchIDs: ids}, nil
}

// publish notifies subscribers. The write has already committed, so a failed
// publish is logged rather than returned.
func (r *redisRepository) publish(ctx context.Context, event *Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		r.log.Errorw("failed to marshal match event", "match_id", event.MatchID, "error", err)
		return
	}

	if err := r.client.Publish(ctx, eventsChannel(event.MatchID), payload).Err(); err != nil {
		r.log.Warnw("failed to publish match event", "match_id", event.MatchID, "type", event.Type, "error", err)
	}
}

// scriptError maps script error replies to repository errors
func scriptError(op string, err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, replyNotFound):
		return ErrMatchNotFound
	case strings.Contains(msg, replyNotPending):
		return ErrMatchNotPending
	case strings.Contains(msg, replyWordSet):
		return ErrWordAlreadySet
	case strings.Contains(msg, replyNotActive):
		return ErrMatchTerminal
	case strings.Contains(msg, replySlotFinished):
		return ErrSlotFinished
	case strings.Contains(msg, replyStaleAttempts):
		return ErrStaleAttempts
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}

func toHash(m *models.Match) map[string]interface{} {
	fields := map[string]interface{}{
		"id":                 m.ID,
		"difficulty":         string(m.Difficulty),
		"word_length":        m.WordLength,
		"max_attempts":       m.MaxAttempts,
		"status":             string(m.Status),
		"first_finisher_id":  m.FirstFinisherID,
		"second_finisher_id": m.SecondFinisherID,
		"winner_id":          m.WinnerID,
		"tie":                boolField(m.Tie),
		"forfeited_by":       m.ForfeitedBy,
		"created_at":         m.CreatedAt.UnixMilli(),
		"last_activity":      m.LastActivity.UnixMilli(),
	}
	if m.CompletedAt != nil {
		fields["completed_at"] = m.CompletedAt.UnixMilli()
	}

	for slot, p := range map[Slot]*models.PlayerSlot{SlotPlayer1: m.Player1, SlotPlayer2: m.Player2} {
		prefix := string(slot) + "_"
		fields[prefix+"uid"] = p.UID
		fields[prefix+"word"] = p.Word
		fields[prefix+"word_set"] = boolField(p.WordSet)
		fields[prefix+"solved"] = boolField(p.Solved)
		fields[prefix+"attempts"] = p.Attempts
		if p.SolveTime != nil {
			fields[prefix+"solve_time"] = p.SolveTime.UnixMilli()
		}
		if p.FinishedAt != nil {
			fields[prefix+"finished_at"] = p.FinishedAt.UnixMilli()
		}
	}

	return fields
}

func fromHash(fields map[string]string) (*models.Match, error) {
	wordLength, err := strconv.Atoi(fields["word_length"])
	if err != nil {
		return nil, fmt.Errorf("word_length: %w", err)
	}
	maxAttempts, err := strconv.Atoi(fields["max_attempts"])
	if err != nil {
		return nil, fmt.Errorf("max_attempts: %w", err)
	}

	m := &models.Match{
		ID:                fields["id"],
		Difficulty:        models.Difficulty(fields["difficulty"]),
		WordLength:        wordLength,
		MaxAttempts:       maxAttempts,
		Status:            models.MatchStatus(fields["status"]),
		FirstFinisherID:   fields["first_finisher_id"],
		SecondFinisherID:  fields["second_finisher_id"],
		WinnerID:          fields["winner_id"],
		Tie:               fields["tie"] == "1",
		ForfeitedBy:       fields["forfeited_by"],
		NotificationsSent: fields["notifications_sent"] == "1",
		CompletedAt:       msField(fields["completed_at"]),
	}
	if t := msField(fields["created_at"]); t != nil {
		m.CreatedAt = *t
	}
	if t := msField(fields["last_activity"]); t != nil {
		m.LastActivity = *t
	}

	for _, slot := range []Slot{SlotPlayer1, SlotPlayer2} {
		prefix := string(slot) + "_"
		attempts := 0
		if v := fields[prefix+"attempts"]; v != "" {
			if attempts, err = strconv.Atoi(v); err != nil {
				return nil, fmt.Errorf("%sattempts: %w", prefix, err)
			}
		}

		p := &models.PlayerSlot{
			UID:        fields[prefix+"uid"],
			Word:       fields[prefix+"word"],
			WordSet:    fields[prefix+"word_set"] == "1",
			Guesses:    []*models.Guess{},
			Solved:     fields[prefix+"solved"] == "1",
			Attempts:   attempts,
			SolveTime:  msField(fields[prefix+"solve_time"]),
			FinishedAt: msField(fields[prefix+"finished_at"]),
		}
		if slot == SlotPlayer1 {
			m.Player1 = p
		} else {
			m.Player2 = p
		}
	}

	return m, nil
}

func decodeGuesses(raw []string) ([]*models.Guess, error) {
	guesses := make([]*models.Guess, 0, len(raw))
	for _, g := range raw {
		var guess models.Guess
		if err := json.Unmarshal([]byte(g), &guess); err != nil {
			return nil, err
		}
		guesses = append(guesses, &guess)
	}
	return guesses, nil
}

func boolField(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func msField(v string) *time.Time {
	if v == "" {
		return nil
	}
	ms, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil
	}
	t := time.UnixMilli(ms).UTC()
	return &t
}
