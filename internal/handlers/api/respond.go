package api

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/KirkDiggler/wordduel/internal/feedback"
	"github.com/KirkDiggler/wordduel/internal/services/leaderboard"
	"github.com/KirkDiggler/wordduel/internal/services/match"
	"github.com/KirkDiggler/wordduel/internal/services/solo"
)

// errBadRequest marks request decoding failures
var errBadRequest = errors.New("bad request")

type userHandler func(w http.ResponseWriter, r *http.Request, uid string)

type errorResponse struct {
	Error string `json:"error"`
	Retry bool   `json:"retry,omitempty"`
}

var errorStatuses = []struct {
	err    error
	status int
}{
	{match.ErrMatchNotFound, http.StatusNotFound},
	{solo.ErrGameNotFound, http.StatusNotFound},
	{leaderboard.ErrSnapshotNotFound, http.StatusNotFound},

	{match.ErrNotParticipant, http.StatusForbidden},
	{solo.ErrNotOwner, http.StatusForbidden},

	{match.ErrStaleState, http.StatusConflict},
	{solo.ErrStaleState, http.StatusConflict},
	{match.ErrMatchNotActive, http.StatusConflict},
	{match.ErrMatchNotPending, http.StatusConflict},
	{match.ErrMatchNotFinished, http.StatusConflict},
	{match.ErrSlotFinished, http.StatusConflict},
	{match.ErrWordAlreadySet, http.StatusConflict},
	{solo.ErrGameNotActive, http.StatusConflict},
	{solo.ErrNoHintsLeft, http.StatusConflict},

	{errBadRequest, http.StatusBadRequest},
	{feedback.ErrInvalidInput, http.StatusBadRequest},
	{match.ErrInvalidWord, http.StatusBadRequest},
	{match.ErrInvalidPlayers, http.StatusBadRequest},
	{match.ErrInvalidLength, http.StatusBadRequest},
	{solo.ErrInvalidWord, http.StatusBadRequest},
	{solo.ErrInvalidDiff, http.StatusBadRequest},
	{solo.ErrInvalidScore, http.StatusBadRequest},
	{solo.ErrInvalidUsername, http.StatusBadRequest},
	{leaderboard.ErrInvalidDifficulty, http.StatusBadRequest},
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

// writeError maps service errors to status codes. Unknown errors are logged
// and hidden from the caller.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	for _, candidate := range errorStatuses {
		if errors.Is(err, candidate.err) {
			writeJSON(w, candidate.status, &errorResponse{
				Error: err.Error(),
				Retry: errors.Is(err, match.ErrStaleState) || errors.Is(err, solo.ErrStaleState),
			})
			return
		}
	}

	s.log.Errorw("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	writeJSON(w, http.StatusInternalServerError, &errorResponse{Error: "internal error"})
}

// decode reads a JSON body. An empty body leaves dst untouched.
func decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}

	return nil
}

func (s *Server) withUser(next userHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid := r.Header.Get(UserHeader)
		if uid == "" {
			writeJSON(w, http.StatusUnauthorized, &errorResponse{Error: "missing " + UserHeader})
			return
		}
		next(w, r, uid)
	}
}

func (s *Server) withCronSecret(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		given := r.Header.Get(CronHeader)
		if s.cronSecret == "" || subtle.ConstantTimeCompare([]byte(given), []byte(s.cronSecret)) != 1 {
			writeJSON(w, http.StatusForbidden, &errorResponse{Error: "forbidden"})
			return
		}
		next(w, r)
	}
}
