package notifier

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// Messages builds result notifications, picking a random line per outcome
type Messages struct {
	mu   sync.Mutex
	rand *rand.Rand
}

// NewMessages creates a message builder. A zero seed uses the current time.
func NewMessages(seed int64) *Messages {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Messages{
		rand: rand.New(rand.NewSource(seed)),
	}
}

// ResultMessage returns the notification for a finished match
func (m *Messages) ResultMessage(input *ResultMessageInput) *Notification {
	opponent := input.OpponentName
	if opponent == "" {
		opponent = "your opponent"
	}

	var (
		title string
		lines []string
	)

	switch input.Kind {
	case KindWin:
		title = "You won!"
		lines = []string{
			fmt.Sprintf("You cracked it in %d and %s needed %d. Victory is yours.", input.Attempts, opponent, input.OpponentAttempts),
			fmt.Sprintf("%d guesses beats %d. Nicely done.", input.Attempts, input.OpponentAttempts),
			fmt.Sprintf("%s finished, but you got there first on points. You win!", opponent),
		}
	case KindLoss:
		title = "Match over"
		lines = []string{
			fmt.Sprintf("%s found your word in %d. You needed %d. Rematch?", opponent, input.OpponentAttempts, input.Attempts),
			fmt.Sprintf("So close. %s edged you out this time.", opponent),
			"The dots were not with you today. Better luck next match.",
		}
	case KindTie:
		title = "It's a tie"
		lines = []string{
			fmt.Sprintf("You and %s finished dead even.", opponent),
			"Nobody blinked. The match ends in a tie.",
			"Evenly matched! Call it a draw.",
		}
	default:
		title = "You won by forfeit"
		lines = []string{
			fmt.Sprintf("%s threw in the towel. The win is yours.", opponent),
			fmt.Sprintf("%s forfeited. Take the W.", opponent),
		}
	}

	return &Notification{
		Kind:    input.Kind,
		MatchID: input.MatchID,
		Title:   title,
		Body:    m.pick(lines),
	}
}

func (m *Messages) pick(lines []string) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return lines[m.rand.Intn(len(lines))]
}
