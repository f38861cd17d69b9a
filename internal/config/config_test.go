package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 25, cfg.Match.MaxAttempts)
	assert.Equal(t, 72*time.Hour, cfg.Match.InactivityTimeout)
	assert.Equal(t, 5*time.Minute, cfg.Match.SweepInterval)
	assert.Equal(t, []string{"easy", "medium", "hard"}, cfg.Leaderboard.Difficulties)
	assert.Equal(t, 20, cfg.Leaderboard.MinGames)
	assert.Equal(t, 20, cfg.Leaderboard.RollingWindow)
	assert.Equal(t, 7*24*time.Hour, cfg.Leaderboard.InactivityWindow)
	assert.Equal(t, 100, cfg.Leaderboard.TopN)
	assert.Empty(t, cfg.Leaderboard.ArchiveDSN)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Discord.Commands)
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := `
server:
  http_address: ":9090"
match:
  max_attempts: 10
  inactivity_timeout: 1h
leaderboard:
  difficulties: [medium]
  cron_secret: from-file
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))

	t.Setenv("WORDDUEL_LEADERBOARD_CRON_SECRET", "from-env")
	t.Setenv("WORDDUEL_REDIS_ADDR", "redis:6379")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.HTTPAddress)
	assert.Equal(t, 10, cfg.Match.MaxAttempts)
	assert.Equal(t, time.Hour, cfg.Match.InactivityTimeout)
	assert.Equal(t, []string{"medium"}, cfg.Leaderboard.Difficulties)
	assert.Equal(t, "from-env", cfg.Leaderboard.CronSecret)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
}

func TestLoad_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("match: [unclosed"), 0o600))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestLoad_RejectsNonPositiveAttempts(t *testing.T) {
	t.Setenv("WORDDUEL_MATCH_MAX_ATTEMPTS", "0")

	_, err := Load(t.TempDir())
	assert.Error(t, err)
}

func TestLoad_DiscordCommandsNeedToken(t *testing.T) {
	t.Setenv("WORDDUEL_DISCORD_COMMANDS", "true")

	_, err := Load(t.TempDir())
	assert.Error(t, err)

	t.Setenv("WORDDUEL_DISCORD_TOKEN", "token")
	t.Setenv("WORDDUEL_DISCORD_GUILD_ID", "guild-1")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.True(t, cfg.Discord.Commands)
	assert.Equal(t, "guild-1", cfg.Discord.GuildID)
}
