package notifier

// Kind identifies which match outcome a notification describes
type Kind string

const (
	KindWin             Kind = "win"
	KindLoss            Kind = "loss"
	KindTie             Kind = "tie"
	KindOpponentForfeit Kind = "opponent_forfeit"
)

// Notification is the payload handed to a Sender
type Notification struct {
	Kind    Kind   `json:"kind"`
	MatchID string `json:"matchId"`
	Title   string `json:"title"`
	Body    string `json:"body"`
}

// ResultMessageInput describes the outcome from the recipient's point of view
type ResultMessageInput struct {
	MatchID string

	// Kind of outcome for the recipient
	Kind Kind

	// OpponentName is shown in the message when known
	OpponentName string

	// Attempts the recipient and the opponent used
	Attempts         int
	OpponentAttempts int
}
