package api

import (
	"net/http"

	"github.com/KirkDiggler/wordduel/internal/models"
	"github.com/KirkDiggler/wordduel/internal/services/match"
)

type createMatchRequest struct {
	OpponentID  string            `json:"opponentId"`
	Difficulty  models.Difficulty `json:"difficulty"`
	WordLength  int               `json:"wordLength"`
	MaxAttempts int               `json:"maxAttempts"`
}

type setWordRequest struct {
	Word string `json:"word"`

	// Random draws the word instead
	Random bool `json:"random"`
}

type setWordResponse struct {
	Word      string `json:"word,omitempty"`
	Activated bool   `json:"activated"`
}

type guessRequest struct {
	Word             string `json:"word"`
	ExpectedAttempts *int   `json:"expectedAttempts"`
}

type matchGuessResponse struct {
	Guess    *models.Guess     `json:"guess"`
	Attempts int               `json:"attempts"`
	Finished bool              `json:"finished"`
	Resolved bool              `json:"resolved"`
	State    *match.MatchState `json:"state"`
}

type sweepResponse struct {
	Checked  int      `json:"checked"`
	TimedOut []string `json:"timedOut"`
}

func (s *Server) handleCreateMatch(w http.ResponseWriter, r *http.Request, uid string) {
	var req createMatchRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	created, err := s.matchService.CreateMatch(r.Context(), &match.CreateMatchInput{
		Player1ID:   uid,
		Player2ID:   req.OpponentID,
		Difficulty:  req.Difficulty,
		WordLength:  req.WordLength,
		MaxAttempts: req.MaxAttempts,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	state, err := s.matchService.GetMatchState(r.Context(), &match.GetMatchStateInput{
		MatchID: created.Match.ID,
		UID:     uid,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, state)
}

func (s *Server) handleGetMatch(w http.ResponseWriter, r *http.Request, uid string) {
	state, err := s.matchService.GetMatchState(r.Context(), &match.GetMatchStateInput{
		MatchID: r.PathValue("id"),
		UID:     uid,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, state)
}

func (s *Server) handleSetWord(w http.ResponseWriter, r *http.Request, uid string) {
	var req setWordRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	matchID := r.PathValue("id")

	if req.Random {
		drawn, err := s.matchService.DrawSecretWord(r.Context(), &match.DrawSecretWordInput{
			MatchID: matchID,
			UID:     uid,
		})
		if err != nil {
			s.writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, &setWordResponse{Word: drawn.Word, Activated: drawn.Activated})
		return
	}

	set, err := s.matchService.SetSecretWord(r.Context(), &match.SetSecretWordInput{
		MatchID: matchID,
		UID:     uid,
		Word:    req.Word,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, &setWordResponse{Activated: set.Activated})
}

func (s *Server) handleMatchGuess(w http.ResponseWriter, r *http.Request, uid string) {
	var req guessRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	out, err := s.matchService.SubmitGuess(r.Context(), &match.SubmitGuessInput{
		MatchID:          r.PathValue("id"),
		UID:              uid,
		Word:             req.Word,
		ExpectedAttempts: req.ExpectedAttempts,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, &matchGuessResponse{
		Guess:    out.Guess,
		Attempts: out.Attempts,
		Finished: out.Finished,
		Resolved: out.Resolved,
		State:    out.State,
	})
}

func (s *Server) handleForfeit(w http.ResponseWriter, r *http.Request, uid string) {
	matchID := r.PathValue("id")

	if _, err := s.matchService.Forfeit(r.Context(), &match.ForfeitInput{
		MatchID: matchID,
		UID:     uid,
	}); err != nil {
		s.writeError(w, r, err)
		return
	}

	s.handleGetMatch(w, r, uid)
}

func (s *Server) handleSeen(w http.ResponseWriter, r *http.Request, uid string) {
	if err := s.matchService.MarkResultsSeen(r.Context(), &match.MarkResultsSeenInput{
		MatchID: r.PathValue("id"),
		UID:     uid,
	}); err != nil {
		s.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSweep(w http.ResponseWriter, r *http.Request) {
	out, err := s.matchService.SweepInactive(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	timedOut := out.TimedOut
	if timedOut == nil {
		timedOut = []string{}
	}

	writeJSON(w, http.StatusOK, &sweepResponse{Checked: out.Checked, TimedOut: timedOut})
}
