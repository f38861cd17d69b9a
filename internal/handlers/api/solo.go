package api

import (
	"net/http"

	"github.com/KirkDiggler/wordduel/internal/models"
	"github.com/KirkDiggler/wordduel/internal/services/solo"
)

type startSoloRequest struct {
	Difficulty models.Difficulty `json:"difficulty"`
}

type soloGuessRequest struct {
	Word string `json:"word"`
}

type recordScoreRequest struct {
	Difficulty models.Difficulty `json:"difficulty"`
	Score      int               `json:"score"`
	UsedHints  int               `json:"usedHints"`
}

type usernameRequest struct {
	Username string `json:"username"`
}

type startSoloResponse struct {
	Game    *solo.GameView `json:"game"`
	Resumed bool           `json:"resumed"`
}

type soloGuessResponse struct {
	Guess  *models.Guess           `json:"guess"`
	Game   *solo.GameView          `json:"game"`
	Record *models.SoloScoreRecord `json:"record,omitempty"`
}

type hintResponse struct {
	Position int            `json:"position"`
	Letter   string         `json:"letter"`
	Game     *solo.GameView `json:"game"`
}

func (s *Server) handleStartSolo(w http.ResponseWriter, r *http.Request, uid string) {
	var req startSoloRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	out, err := s.soloService.StartGame(r.Context(), &solo.StartGameInput{
		UserID:     uid,
		Difficulty: req.Difficulty,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	status := http.StatusCreated
	if out.Resumed {
		status = http.StatusOK
	}

	writeJSON(w, status, &startSoloResponse{Game: out.Game, Resumed: out.Resumed})
}

func (s *Server) handleGetSolo(w http.ResponseWriter, r *http.Request, uid string) {
	game, err := s.soloService.GetGame(r.Context(), &solo.GetGameInput{
		GameID: r.PathValue("id"),
		UserID: uid,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, game)
}

func (s *Server) handleSoloGuess(w http.ResponseWriter, r *http.Request, uid string) {
	var req soloGuessRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	out, err := s.soloService.SubmitGuess(r.Context(), &solo.SubmitGuessInput{
		GameID: r.PathValue("id"),
		UserID: uid,
		Word:   req.Word,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, &soloGuessResponse{Guess: out.Guess, Game: out.Game, Record: out.Record})
}

func (s *Server) handleHint(w http.ResponseWriter, r *http.Request, uid string) {
	out, err := s.soloService.UseHint(r.Context(), &solo.UseHintInput{
		GameID: r.PathValue("id"),
		UserID: uid,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, &hintResponse{Position: out.Position, Letter: out.Letter, Game: out.Game})
}

func (s *Server) handleAbandon(w http.ResponseWriter, r *http.Request, uid string) {
	game, err := s.soloService.Abandon(r.Context(), &solo.AbandonInput{
		GameID: r.PathValue("id"),
		UserID: uid,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, game)
}

func (s *Server) handleRecordScore(w http.ResponseWriter, r *http.Request, uid string) {
	var req recordScoreRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	out, err := s.soloService.RecordSoloScore(r.Context(), &solo.RecordSoloScoreInput{
		UserID:     uid,
		Difficulty: req.Difficulty,
		Score:      req.Score,
		UsedHints:  req.UsedHints,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, out.Record)
}

func (s *Server) handleSetUsername(w http.ResponseWriter, r *http.Request, uid string) {
	var req usernameRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	if err := s.soloService.SetUsername(r.Context(), &solo.SetUsernameInput{
		UserID:   uid,
		Username: req.Username,
	}); err != nil {
		s.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
