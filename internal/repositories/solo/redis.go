package solo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/wordduel/internal/models"
	scoreRepo "github.com/KirkDiggler/wordduel/internal/repositories/score"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	gameKeyPrefix       = "solo_game:"
	userActiveKeyPrefix = "solo_active:"

	// Finished games are kept for a while so clients can show the result
	finishedGameTTL = 7 * 24 * time.Hour
)

var (
	// ErrGameNotFound is returned when a game is not found
	ErrGameNotFound = errors.New("solo game not found")

	// ErrStaleGame is returned when the game changed after it was read
	ErrStaleGame = errors.New("solo game changed since it was read")

	// ErrActiveGameExists is returned when a new game would replace the
	// player's unfinished game at the same difficulty
	ErrActiveGameExists = errors.New("player already has an active game")
)

// Config holds configuration for the Redis solo game repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed solo game repository
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

func userActiveKey(userID string, difficulty models.Difficulty) string {
	return fmt.Sprintf("%s%s:%s", userActiveKeyPrefix, userID, difficulty)
}

// SaveGame writes a game if it is unchanged since it was read. A new game
// (version 0) fails if the player already has an active one. A record in
// the input is appended to the score log atomically with the game. On
// success game.Version holds the new version.
func (r *redisRepository) SaveGame(ctx context.Context, input *SaveGameInput) error {
	if input == nil || input.Game == nil {
		return errors.New("input and game cannot be nil")
	}

	game := input.Game
	if game.ID == "" || game.UserID == "" {
		return errors.New("game ID and user ID cannot be empty")
	}

	// Marshal the game to JSON
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("failed to marshal game: %w", err)
	}

	active := "0"
	if game.Status == models.SoloGameStatusActive {
		active = "1"
	}

	recordJSON := ""
	var recordAt int64
	if input.Record != nil {
		raw, err := json.Marshal(input.Record)
		if err != nil {
			return fmt.Errorf("failed to marshal score record: %w", err)
		}
		recordJSON = string(raw)
		recordAt = input.Record.Timestamp.UnixMilli()
	}

	recordsKey, playersKey := scoreRepo.Keys(game.Difficulty, game.UserID)
	keys := []string{
		gameKeyPrefix + game.ID,
		userActiveKey(game.UserID, game.Difficulty),
		recordsKey,
		playersKey,
	}

	version, err := saveGameScript.Run(ctx, r.client, keys,
		game.Version,
		gameJSON,
		active,
		game.ID,
		int64(finishedGameTTL/time.Second),
		recordJSON,
		recordAt,
		game.UserID,
	).Int64()
	if err != nil {
		switch {
		case strings.Contains(err.Error(), replyStale):
			return ErrStaleGame
		case strings.Contains(err.Error(), replyActiveExists):
			return ErrActiveGameExists
		}
		return fmt.Errorf("failed to save game: %w", err)
	}

	game.Version = version
	return nil
}

// GetGame retrieves a game by ID from Redis
func (r *redisRepository) GetGame(ctx context.Context, input *GetGameInput) (*models.SoloGame, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	values, err := r.client.HMGet(ctx, gameKeyPrefix+input.GameID, "data", "version").Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	gameJSON, ok := values[0].(string)
	if !ok {
		return nil, ErrGameNotFound
	}

	var game models.SoloGame
	if err := json.Unmarshal([]byte(gameJSON), &game); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	if raw, ok := values[1].(string); ok {
		version, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse game version: %w", err)
		}
		game.Version = version
	}

	return &game, nil
}

// GetActiveGameByUser retrieves a user's active game from Redis
func (r *redisRepository) GetActiveGameByUser(ctx context.Context, input *GetActiveGameByUserInput) (*models.SoloGame, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	gameID, err := r.client.Get(ctx, userActiveKey(input.UserID, input.Difficulty)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get active game ID for user: %w", err)
	}

	return r.GetGame(ctx, &GetGameInput{
		GameID: gameID,
	})
}
