package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/wordduel/internal/common/clock"
	"github.com/KirkDiggler/wordduel/internal/common/logger"
	"github.com/KirkDiggler/wordduel/internal/common/uuid"
	"github.com/KirkDiggler/wordduel/internal/config"
	"github.com/KirkDiggler/wordduel/internal/handlers/api"
	"github.com/KirkDiggler/wordduel/internal/handlers/discord"
	"github.com/KirkDiggler/wordduel/internal/metrics"
	"github.com/KirkDiggler/wordduel/internal/models"
	leaderboardRepo "github.com/KirkDiggler/wordduel/internal/repositories/leaderboard"
	matchRepo "github.com/KirkDiggler/wordduel/internal/repositories/match"
	playerRepo "github.com/KirkDiggler/wordduel/internal/repositories/player"
	scoreRepo "github.com/KirkDiggler/wordduel/internal/repositories/score"
	soloRepo "github.com/KirkDiggler/wordduel/internal/repositories/solo"
	leaderboardService "github.com/KirkDiggler/wordduel/internal/services/leaderboard"
	matchService "github.com/KirkDiggler/wordduel/internal/services/match"
	"github.com/KirkDiggler/wordduel/internal/services/notifier"
	soloService "github.com/KirkDiggler/wordduel/internal/services/solo"
	"github.com/KirkDiggler/wordduel/internal/services/words"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", ".", "directory containing config.yaml")
	flag.Parse()

	// A missing .env is fine; the environment may already be populated
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	sugar, err := logger.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = sugar.Sync() }()

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	// Test Redis connection
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		sugar.Fatalw("failed to connect to Redis", "addr", cfg.Redis.Addr, "error", err)
	}

	// Initialize repositories
	matches, err := matchRepo.NewRedis(&matchRepo.Config{
		RedisClient: redisClient,
		Logger:      sugar,
	})
	if err != nil {
		sugar.Fatalw("failed to create match repository", "error", err)
	}

	players, err := playerRepo.NewRedis(&playerRepo.Config{RedisClient: redisClient})
	if err != nil {
		sugar.Fatalw("failed to create player repository", "error", err)
	}

	scores, err := scoreRepo.NewRedis(&scoreRepo.Config{RedisClient: redisClient})
	if err != nil {
		sugar.Fatalw("failed to create score repository", "error", err)
	}

	soloGames, err := soloRepo.NewRedis(&soloRepo.Config{RedisClient: redisClient})
	if err != nil {
		sugar.Fatalw("failed to create solo repository", "error", err)
	}

	snapshots, err := newSnapshotStore(cfg, redisClient, sugar)
	if err != nil {
		sugar.Fatalw("failed to create leaderboard repository", "error", err)
	}

	// Supporting services
	wordList, err := words.New(&words.Config{Path: cfg.Words.Path})
	if err != nil {
		sugar.Fatalw("failed to load word list", "path", cfg.Words.Path, "error", err)
	}
	sugar.Infow("word list loaded",
		"easy", wordList.Count(models.DifficultyEasy.WordLength()),
		"medium", wordList.Count(models.DifficultyMedium.WordLength()),
		"hard", wordList.Count(models.DifficultyHard.WordLength()))

	sender := notifier.NewLog(sugar)
	if cfg.Discord.Token != "" {
		sender, err = notifier.NewDiscord(&notifier.DiscordConfig{Token: cfg.Discord.Token})
		if err != nil {
			sugar.Fatalw("failed to create Discord notifier", "error", err)
		}
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New("wordduel", registry)

	realClock := &clock.DefaultClock{}
	ids := uuid.New()

	// Core services
	matchSvc, err := matchService.New(&matchService.Config{
		MaxAttempts:       cfg.Match.MaxAttempts,
		InactivityTimeout: cfg.Match.InactivityTimeout,
		NotifyTimeout:     cfg.Match.NotifyTimeout,
		MatchRepo:         matches,
		PlayerRepo:        players,
		Dictionary:        wordList,
		WordSource:        wordList,
		Notifier:          sender,
		Messages:          notifier.NewMessages(time.Now().UnixNano()),
		Clock:             realClock,
		UUIDGenerator:     ids,
		Metrics:           m,
		Logger:            sugar.With("service", "match"),
	})
	if err != nil {
		sugar.Fatalw("failed to create match service", "error", err)
	}

	soloSvc, err := soloService.New(&soloService.Config{
		SoloRepo:      soloGames,
		ScoreRepo:     scores,
		PlayerRepo:    players,
		Dictionary:    wordList,
		WordSource:    wordList,
		Clock:         realClock,
		UUIDGenerator: ids,
		Logger:        sugar.With("service", "solo"),
	})
	if err != nil {
		sugar.Fatalw("failed to create solo service", "error", err)
	}

	leaderboardSvc, err := leaderboardService.New(&leaderboardService.Config{
		MinGames:         cfg.Leaderboard.MinGames,
		RollingWindow:    cfg.Leaderboard.RollingWindow,
		InactivityWindow: cfg.Leaderboard.InactivityWindow,
		TopN:             cfg.Leaderboard.TopN,
		ScoreRepo:        scores,
		PlayerRepo:       players,
		LeaderboardRepo:  snapshots,
		Clock:            realClock,
		Metrics:          m,
		Logger:           sugar.With("service", "leaderboard"),
	})
	if err != nil {
		sugar.Fatalw("failed to create leaderboard service", "error", err)
	}

	server, err := api.New(&api.Config{
		MatchService:       matchSvc,
		SoloService:        soloSvc,
		LeaderboardService: leaderboardSvc,
		CronSecret:         cfg.Leaderboard.CronSecret,
		Difficulties:       cfg.Leaderboard.Difficulties,
		Gatherer:           registry,
		HealthCheck: func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		},
		Logger: sugar.With("component", "http"),
	})
	if err != nil {
		sugar.Fatalw("failed to create HTTP server", "error", err)
	}

	if cfg.Leaderboard.CronSecret == "" {
		sugar.Warn("leaderboard.cron_secret is empty, scheduled trigger routes are disabled")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go matchSvc.RunSweeper(ctx, cfg.Match.SweepInterval)

	if cfg.Discord.Commands {
		bot, err := discord.New(&discord.Config{
			Token:              cfg.Discord.Token,
			ApplicationID:      cfg.Discord.ApplicationID,
			GuildID:            cfg.Discord.GuildID,
			SoloService:        soloSvc,
			LeaderboardService: leaderboardSvc,
			Logger:             sugar.With("component", "discord"),
		})
		if err != nil {
			sugar.Fatalw("failed to create Discord bot", "error", err)
		}
		if err := bot.Start(); err != nil {
			sugar.Fatalw("failed to start Discord bot", "error", err)
		}
		defer func() {
			if err := bot.Stop(); err != nil {
				sugar.Errorw("error stopping Discord bot", "error", err)
			}
		}()
	}

	httpServer := &http.Server{
		Addr:              cfg.Server.HTTPAddress,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		sugar.Infow("HTTP server listening", "addr", cfg.Server.HTTPAddress)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sugar.Errorw("HTTP server failed", "error", err)
			stop()
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	<-ctx.Done()

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelShutdown()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		sugar.Errorw("error stopping HTTP server", "error", err)
	}

	sugar.Info("server has been shut down")
}

// newSnapshotStore returns the Redis snapshot store, mirrored to postgres
// when an archive DSN is configured
func newSnapshotStore(cfg *config.Config, client *redis.Client, sugar *zap.SugaredLogger) (leaderboardRepo.Repository, error) {
	primary, err := leaderboardRepo.NewRedis(&leaderboardRepo.Config{RedisClient: client})
	if err != nil {
		return nil, err
	}

	if cfg.Leaderboard.ArchiveDSN == "" {
		return primary, nil
	}

	archive, err := leaderboardRepo.NewGorm(&leaderboardRepo.GormConfig{DSN: cfg.Leaderboard.ArchiveDSN})
	if err != nil {
		return nil, err
	}

	archived, err := leaderboardRepo.NewArchived(&leaderboardRepo.ArchivedConfig{
		Primary: primary,
		Archive: archive,
		Logger:  sugar.With("component", "snapshot_archive"),
	})
	if err != nil {
		return nil, err
	}

	return archived, nil
}
