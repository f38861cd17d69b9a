package api

import (
	"context"
	"net/http"
	"time"

	"github.com/KirkDiggler/wordduel/internal/services/match"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
)

// liveMessage is one frame of the live feed
type liveMessage struct {
	// Event is the change that produced this state, or "snapshot" for the first frame
	Event string            `json:"event"`
	State *match.MatchState `json:"state"`
}

// handleLive streams the caller's projection after every change to the match
// and resolves it once both sides finish. The connection closes normally once
// the match is terminal.
func (s *Server) handleLive(w http.ResponseWriter, r *http.Request, uid string) {
	matchID := r.PathValue("id")
	stateInput := &match.GetMatchStateInput{MatchID: matchID, UID: uid}

	// Reject non-participants before upgrading
	if _, err := s.matchService.GetMatchState(r.Context(), stateInput); err != nil {
		s.writeError(w, r, err)
		return
	}

	sub, err := s.matchService.Subscribe(r.Context(), matchID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	defer sub.Close()

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warnw("websocket upgrade failed", "match_id", matchID, "uid", uid, "error", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Client frames are ignored; reading keeps pongs flowing and notices the close
	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	// Each connected client also acts as a resolver for the match
	go func() {
		if err := s.matchService.Watch(ctx, matchID); err != nil && ctx.Err() == nil {
			s.log.Warnw("match watch ended", "match_id", matchID, "error", err)
		}
	}()

	go func() {
		defer cancel()
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	// Read after subscribing so nothing between the check and the subscription is lost
	send := func(event string) (terminal bool, ok bool) {
		state, err := s.matchService.GetMatchState(ctx, stateInput)
		if err != nil {
			s.log.Warnw("live feed read failed", "match_id", matchID, "uid", uid, "error", err)
			return false, false
		}

		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(&liveMessage{Event: event, State: state}); err != nil {
			return false, false
		}

		return state.Status.IsTerminal(), true
	}

	closeNormal := func() {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "match over"),
			time.Now().Add(writeWait))
	}

	terminal, ok := send("snapshot")
	if !ok {
		return
	}
	if terminal {
		closeNormal()
		return
	}

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		case event, open := <-sub.Events():
			if !open {
				return
			}

			terminal, ok := send(string(event.Type))
			if !ok {
				return
			}
			if terminal {
				closeNormal()
				return
			}
		}
	}
}
