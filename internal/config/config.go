// Package config loads process configuration from an optional config.yaml
// and WORDDUEL_ environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. WORDDUEL_REDIS_ADDR
const EnvPrefix = "WORDDUEL"

type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Redis       RedisConfig       `mapstructure:"redis"`
	Match       MatchConfig       `mapstructure:"match"`
	Leaderboard LeaderboardConfig `mapstructure:"leaderboard"`
	Words       WordsConfig       `mapstructure:"words"`
	Discord     DiscordConfig     `mapstructure:"discord"`
	Log         LogConfig         `mapstructure:"log"`
}

type ServerConfig struct {
	HTTPAddress string `mapstructure:"http_address"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type MatchConfig struct {
	MaxAttempts       int           `mapstructure:"max_attempts"`
	InactivityTimeout time.Duration `mapstructure:"inactivity_timeout"`
	SweepInterval     time.Duration `mapstructure:"sweep_interval"`
	NotifyTimeout     time.Duration `mapstructure:"notify_timeout"`
}

type LeaderboardConfig struct {
	Difficulties     []string      `mapstructure:"difficulties"`
	MinGames         int           `mapstructure:"min_games"`
	RollingWindow    int           `mapstructure:"rolling_window"`
	InactivityWindow time.Duration `mapstructure:"inactivity_window"`
	TopN             int           `mapstructure:"top_n"`
	CronSecret       string        `mapstructure:"cron_secret"`

	// ArchiveDSN enables the postgres snapshot archive when set
	ArchiveDSN string `mapstructure:"archive_dsn"`
}

type WordsConfig struct {
	// Path to a word list; empty uses the built-in list
	Path string `mapstructure:"path"`
}

type DiscordConfig struct {
	// Token selects the Discord notifier; empty logs notifications instead
	Token string `mapstructure:"token"`

	// Commands enables the /wordduel slash commands; requires Token
	Commands      bool   `mapstructure:"commands"`
	ApplicationID string `mapstructure:"application_id"`
	GuildID       string `mapstructure:"guild_id"`
}

type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

var defaults = map[string]any{
	"server.http_address":           ":8080",
	"redis.addr":                    "localhost:6379",
	"redis.password":                "",
	"redis.db":                      0,
	"match.max_attempts":            25,
	"match.inactivity_timeout":      "72h",
	"match.sweep_interval":          "5m",
	"match.notify_timeout":          "10s",
	"leaderboard.difficulties":      []string{"easy", "medium", "hard"},
	"leaderboard.min_games":         20,
	"leaderboard.rolling_window":    20,
	"leaderboard.inactivity_window": "168h",
	"leaderboard.top_n":             100,
	"leaderboard.cron_secret":       "",
	"leaderboard.archive_dsn":       "",
	"words.path":                    "",
	"discord.token":                 "",
	"discord.commands":              false,
	"discord.application_id":        "",
	"discord.guild_id":              "",
	"log.level":                     "info",
	"log.development":               false,
}

// Load reads config.yaml from path if present. Environment variables win over
// the file and the file wins over defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.AddConfigPath(path)
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Match.MaxAttempts < 1 {
		return fmt.Errorf("match.max_attempts must be positive, got %d", c.Match.MaxAttempts)
	}

	if c.Match.SweepInterval <= 0 {
		return errors.New("match.sweep_interval must be positive")
	}

	if len(c.Leaderboard.Difficulties) == 0 {
		return errors.New("leaderboard.difficulties cannot be empty")
	}

	if c.Discord.Commands && c.Discord.Token == "" {
		return errors.New("discord.commands requires discord.token")
	}

	return nil
}
