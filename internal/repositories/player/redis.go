package player

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/KirkDiggler/wordduel/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for Redis
	playerKeyPrefix = "player:"

	fieldUsername         = "username"
	fieldLastSoloActivity = "last_solo_activity"
)

// Config holds configuration for the Redis player repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// Only moves the timestamp forward so late-arriving records cannot rewind it.
// KEYS[1] player hash, ARGV[1] timestamp (unix ms)
var touchScript = redis.NewScript(`
local current = tonumber(redis.call('HGET', KEYS[1], 'last_solo_activity') or '0')
if tonumber(ARGV[1]) > current then
  redis.call('HSET', KEYS[1], 'last_solo_activity', ARGV[1])
  return 1
end
return 0
`)

// NewRedis creates a new Redis-backed player repository
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

// SaveUsername persists a display name to Redis
func (r *redisRepository) SaveUsername(ctx context.Context, input *SaveUsernameInput) error {
	if input == nil || input.UserID == "" {
		return errors.New("input and user ID cannot be empty")
	}

	if err := r.client.HSet(ctx, playerKeyPrefix+input.UserID, fieldUsername, input.Username).Err(); err != nil {
		return fmt.Errorf("failed to save username: %w", err)
	}

	return nil
}

// GetProfile retrieves a profile from Redis
func (r *redisRepository) GetProfile(ctx context.Context, input *GetProfileInput) (*models.PlayerProfile, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	fields, err := r.client.HGetAll(ctx, playerKeyPrefix+input.UserID).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	return toProfile(input.UserID, fields), nil
}

// GetProfiles retrieves several profiles from Redis using a pipeline
func (r *redisRepository) GetProfiles(ctx context.Context, input *GetProfilesInput) (*GetProfilesOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	profiles := make(map[string]*models.PlayerProfile, len(input.UserIDs))
	if len(input.UserIDs) == 0 {
		return &GetProfilesOutput{Profiles: profiles}, nil
	}

	pipe := r.client.Pipeline()
	playerCommands := make(map[string]*redis.MapStringStringCmd, len(input.UserIDs))
	for _, userID := range input.UserIDs {
		playerCommands[userID] = pipe.HGetAll(ctx, playerKeyPrefix+userID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to get players: %w", err)
	}

	for userID, cmd := range playerCommands {
		profiles[userID] = toProfile(userID, cmd.Val())
	}

	return &GetProfilesOutput{Profiles: profiles}, nil
}

// TouchSoloActivity records solo activity if it is newer than what is stored
func (r *redisRepository) TouchSoloActivity(ctx context.Context, input *TouchSoloActivityInput) error {
	if input == nil || input.UserID == "" {
		return errors.New("input and user ID cannot be empty")
	}

	err := touchScript.Run(ctx, r.client, []string{playerKeyPrefix + input.UserID}, input.At.UnixMilli()).Err()
	if err != nil {
		return fmt.Errorf("failed to record solo activity: %w", err)
	}

	return nil
}

func toProfile(userID string, fields map[string]string) *models.PlayerProfile {
	profile := &models.PlayerProfile{
		UserID:   userID,
		Username: fields[fieldUsername],
	}

	if v := fields[fieldLastSoloActivity]; v != "" {
		if ms, err := strconv.ParseInt(v, 10, 64); err == nil {
			t := time.UnixMilli(ms).UTC()
			profile.LastSoloActivity = &t
		}
	}

	return profile
}
