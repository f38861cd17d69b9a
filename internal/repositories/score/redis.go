package score

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/wordduel/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	scoresKeyPrefix  = "solo_scores:"
	playersKeyPrefix = "solo_players:"
)

// Config holds configuration for the Redis score repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis.
// Each user+difficulty pair is a sorted set of record JSON scored by timestamp.
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed score repository
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
	}, nil
}

func scoresKey(difficulty models.Difficulty, userID string) string {
	return fmt.Sprintf("%s%s:%s", scoresKeyPrefix, difficulty, userID)
}

func playersKey(difficulty models.Difficulty) string {
	return playersKeyPrefix + string(difficulty)
}

// Keys returns the sorted set of a player's records and the set of players
// at a difficulty, for writers that append a record inside their own
// transaction.
func Keys(difficulty models.Difficulty, userID string) (records, players string) {
	return scoresKey(difficulty, userID), playersKey(difficulty)
}

// AddRecord appends a score record to Redis
func (r *redisRepository) AddRecord(ctx context.Context, input *AddRecordInput) error {
	if input == nil || input.Record == nil {
		return errors.New("input and record cannot be nil")
	}

	record := input.Record
	if record.ID == "" || record.UserID == "" {
		return errors.New("record ID and user ID cannot be empty")
	}

	if !record.Difficulty.Valid() {
		return fmt.Errorf("unknown difficulty %q", record.Difficulty)
	}

	if record.Timestamp.IsZero() {
		return errors.New("record timestamp cannot be zero")
	}

	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal score record: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.ZAdd(ctx, scoresKey(record.Difficulty, record.UserID), redis.Z{
		Score:  float64(record.Timestamp.UnixMilli()),
		Member: recordJSON,
	})
	pipe.SAdd(ctx, playersKey(record.Difficulty), record.UserID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to add score record: %w", err)
	}

	return nil
}

// ListPlayers returns all users with records at a difficulty
func (r *redisRepository) ListPlayers(ctx context.Context, input *ListPlayersInput) (*ListPlayersOutput, error) {
	if input == nil || input.Difficulty == "" {
		return nil, errors.New("input and difficulty cannot be empty")
	}

	userIDs, err := r.client.SMembers(ctx, playersKey(input.Difficulty)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}

	return &ListPlayersOutput{UserIDs: userIDs}, nil
}

// GetRecords returns records newest first
func (r *redisRepository) GetRecords(ctx context.Context, input *GetRecordsInput) (*GetRecordsOutput, error) {
	if input == nil || input.UserID == "" || input.Difficulty == "" {
		return nil, errors.New("input, user ID and difficulty cannot be empty")
	}

	stop := int64(-1)
	if input.Limit > 0 {
		stop = int64(input.Limit - 1)
	}

	raw, err := r.client.ZRevRange(ctx, scoresKey(input.Difficulty, input.UserID), 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get score records: %w", err)
	}

	records := make([]*models.SoloScoreRecord, 0, len(raw))
	for _, item := range raw {
		var record models.SoloScoreRecord
		if err := json.Unmarshal([]byte(item), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal score record: %w", err)
		}
		records = append(records, &record)
	}

	return &GetRecordsOutput{Records: records}, nil
}
