package api

import (
	"errors"
	"net/http"

	"github.com/KirkDiggler/wordduel/internal/models"
	"github.com/KirkDiggler/wordduel/internal/services/leaderboard"
)

type runRequest struct {
	Difficulties []models.Difficulty `json:"difficulties"`
}

func (s *Server) handleGetLeaderboard(w http.ResponseWriter, r *http.Request) {
	snapshot, err := s.leaderboardService.GetSnapshot(r.Context(), &leaderboard.GetSnapshotInput{
		Difficulty: models.Difficulty(r.PathValue("difficulty")),
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, snapshot)
}

// handleRunLeaderboards recomputes the requested tiers. A run where some
// tiers failed answers 207 with per-tier results.
func (s *Server) handleRunLeaderboards(w http.ResponseWriter, r *http.Request) {
	var req runRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	difficulties := req.Difficulties
	if len(difficulties) == 0 {
		for _, d := range s.difficulties {
			difficulties = append(difficulties, models.Difficulty(d))
		}
	}

	out, err := s.leaderboardService.Run(r.Context(), &leaderboard.RunInput{Difficulties: difficulties})
	if err != nil {
		if errors.Is(err, leaderboard.ErrAggregationPartialFailure) && out != nil {
			s.log.Warnw("leaderboard run partially failed", "error", err)
			writeJSON(w, http.StatusMultiStatus, out)
			return
		}
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, out)
}
