// Package api exposes the match, solo and leaderboard services over HTTP.
// Callers are identified by the X-User-ID header set by the fronting
// authentication layer.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/KirkDiggler/wordduel/internal/common/logger"
	"github.com/KirkDiggler/wordduel/internal/services/leaderboard"
	"github.com/KirkDiggler/wordduel/internal/services/match"
	"github.com/KirkDiggler/wordduel/internal/services/solo"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const (
	// UserHeader carries the authenticated caller's user ID
	UserHeader = "X-User-ID"

	// CronHeader carries the shared secret for scheduled triggers
	CronHeader = "X-Cron-Secret"

	maxBodyBytes = 1 << 16
)

// Config holds configuration for the HTTP server
type Config struct {
	MatchService       match.Service
	SoloService        solo.Service
	LeaderboardService leaderboard.Service

	// CronSecret guards the /internal routes; empty disables them
	CronSecret string

	// Difficulties run when a trigger does not name any
	Difficulties []string

	// Gatherer backs /metrics; nil uses the default registry
	Gatherer prometheus.Gatherer

	// HealthCheck backs /healthz; nil always reports healthy
	HealthCheck func(ctx context.Context) error

	Logger *zap.SugaredLogger
}

// Server routes HTTP requests to the services
type Server struct {
	matchService       match.Service
	soloService        solo.Service
	leaderboardService leaderboard.Service
	cronSecret         string
	difficulties       []string
	healthCheck        func(ctx context.Context) error
	upgrader           websocket.Upgrader
	mux                *http.ServeMux
	log                *zap.SugaredLogger
}

// New creates a new HTTP server
func New(cfg *Config) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.MatchService == nil {
		return nil, errors.New("match service cannot be nil")
	}

	if cfg.SoloService == nil {
		return nil, errors.New("solo service cannot be nil")
	}

	if cfg.LeaderboardService == nil {
		return nil, errors.New("leaderboard service cannot be nil")
	}

	gatherer := cfg.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	s := &Server{
		matchService:       cfg.MatchService,
		soloService:        cfg.SoloService,
		leaderboardService: cfg.LeaderboardService,
		cronSecret:         cfg.CronSecret,
		difficulties:       cfg.Difficulties,
		healthCheck:        cfg.HealthCheck,
		upgrader: websocket.Upgrader{
			HandshakeTimeout: 10 * time.Second,
		},
		mux: http.NewServeMux(),
		log: logger.OrNop(cfg.Logger),
	}

	s.registerRoutes(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	return s, nil
}

// Handler returns the root handler
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes(metrics http.Handler) {
	// Matches
	s.mux.HandleFunc("POST /matches", s.withUser(s.handleCreateMatch))
	s.mux.HandleFunc("GET /matches/{id}", s.withUser(s.handleGetMatch))
	s.mux.HandleFunc("PUT /matches/{id}/word", s.withUser(s.handleSetWord))
	s.mux.HandleFunc("POST /matches/{id}/guesses", s.withUser(s.handleMatchGuess))
	s.mux.HandleFunc("POST /matches/{id}/forfeit", s.withUser(s.handleForfeit))
	s.mux.HandleFunc("POST /matches/{id}/seen", s.withUser(s.handleSeen))
	s.mux.HandleFunc("GET /matches/{id}/live", s.withUser(s.handleLive))

	// Solo
	s.mux.HandleFunc("POST /solo/games", s.withUser(s.handleStartSolo))
	s.mux.HandleFunc("GET /solo/games/{id}", s.withUser(s.handleGetSolo))
	s.mux.HandleFunc("POST /solo/games/{id}/guesses", s.withUser(s.handleSoloGuess))
	s.mux.HandleFunc("POST /solo/games/{id}/hint", s.withUser(s.handleHint))
	s.mux.HandleFunc("POST /solo/games/{id}/abandon", s.withUser(s.handleAbandon))
	s.mux.HandleFunc("POST /solo/scores", s.withUser(s.handleRecordScore))
	s.mux.HandleFunc("PUT /players/me/username", s.withUser(s.handleSetUsername))

	// Leaderboards
	s.mux.HandleFunc("GET /leaderboards/{difficulty}", s.handleGetLeaderboard)

	// Scheduled triggers
	s.mux.HandleFunc("POST /internal/leaderboards/run", s.withCronSecret(s.handleRunLeaderboards))
	s.mux.HandleFunc("POST /internal/matches/sweep", s.withCronSecret(s.handleSweep))

	// Operations
	s.mux.Handle("GET /metrics", metrics)
	s.mux.HandleFunc("GET /healthz", s.handleHealth)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.healthCheck != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := s.healthCheck(ctx); err != nil {
			s.log.Warnw("health check failed", "error", err)
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
