package match

import (
	"time"

	"github.com/KirkDiggler/wordduel/internal/models"
)

// outcome is the deterministic result of a match's current slot states
type outcome struct {
	winnerID string
	tie      bool
	firstID  string
	secondID string
}

// decide applies the winner rules in order: both solved goes to fewer
// attempts (equal is a tie), one solved wins, neither solved is a tie.
func decide(m *models.Match) outcome {
	p1, p2 := m.Player1, m.Player2

	var o outcome
	switch {
	case p1.Solved && p2.Solved:
		switch {
		case p1.Attempts < p2.Attempts:
			o.winnerID = p1.UID
		case p2.Attempts < p1.Attempts:
			o.winnerID = p2.UID
		default:
			o.tie = true
		}
	case p1.Solved:
		o.winnerID = p1.UID
	case p2.Solved:
		o.winnerID = p2.UID
	default:
		o.tie = true
	}

	o.firstID, o.secondID = finishOrder(m)

	return o
}

// finishOrder keeps the order recorded when the slots finished. Without one,
// the earlier finish time goes first and equal times go to player1.
func finishOrder(m *models.Match) (string, string) {
	if first := m.FirstFinisherID; first != "" {
		second := m.SecondFinisherID
		if second == "" {
			if other := m.Opponent(first); other != nil && other.IsFinished(m.MaxAttempts) {
				second = other.UID
			}
		}
		return first, second
	}

	p1, p2 := m.Player1, m.Player2
	f1, f2 := p1.IsFinished(m.MaxAttempts), p2.IsFinished(m.MaxAttempts)

	switch {
	case f1 && f2:
		if earlier(finishTime(p2), finishTime(p1)) {
			return p2.UID, p1.UID
		}
		return p1.UID, p2.UID
	case f1:
		return p1.UID, ""
	case f2:
		return p2.UID, ""
	}

	return "", ""
}

func finishTime(slot *models.PlayerSlot) *time.Time {
	if slot.Solved && slot.SolveTime != nil {
		return slot.SolveTime
	}
	return slot.FinishedAt
}

// earlier reports whether a is strictly before b. A missing time is never earlier.
func earlier(a, b *time.Time) bool {
	if a == nil {
		return false
	}
	return b == nil || a.Before(*b)
}

func (o outcome) applyTo(m *models.Match) {
	m.WinnerID = o.winnerID
	m.Tie = o.tie
	m.FirstFinisherID = o.firstID
	m.SecondFinisherID = o.secondID
}

// project builds uid's view of m, or nil if uid is not a participant
func project(m *models.Match, uid string) *MatchState {
	you := m.Slot(uid)
	opponent := m.Opponent(uid)
	if you == nil || opponent == nil {
		return nil
	}

	terminal := m.Status.IsTerminal()

	return &MatchState{
		MatchID:           m.ID,
		Status:            m.Status,
		Difficulty:        m.Difficulty,
		WordLength:        m.WordLength,
		MaxAttempts:       m.MaxAttempts,
		You:               view(you, m.MaxAttempts, true),
		Opponent:          view(opponent, m.MaxAttempts, terminal),
		YourTurnAvailable: m.Status.IsPlayable() && !you.IsFinished(m.MaxAttempts),
		FirstFinisherID:   m.FirstFinisherID,
		SecondFinisherID:  m.SecondFinisherID,
		WinnerID:          m.WinnerID,
		Tie:               m.Tie,
		ForfeitedBy:       m.ForfeitedBy,
		ResultSeen:        m.HasSeenResult(uid),
		LastActivity:      m.LastActivity,
	}
}

func view(slot *models.PlayerSlot, maxAttempts int, showWord bool) *SlotView {
	v := &SlotView{
		UID:      slot.UID,
		WordSet:  slot.WordSet,
		Guesses:  slot.Guesses,
		Attempts: slot.Attempts,
		Solved:   slot.Solved,
		Finished: slot.IsFinished(maxAttempts),
	}
	if v.Guesses == nil {
		v.Guesses = []*models.Guess{}
	}
	if showWord {
		v.Word = slot.Word
	}
	return v
}
