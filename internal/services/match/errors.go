package match

// MatchError is a custom error type for match-related errors
type MatchError string

// Error implements the error interface
func (e MatchError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrMatchNotFound    MatchError = "match not found"
	ErrMatchNotActive   MatchError = "match is not active"
	ErrMatchNotPending  MatchError = "match is not waiting for secret words"
	ErrMatchNotFinished MatchError = "match has not finished"
	ErrStaleState       MatchError = "match state changed, reload and retry"
	ErrNotParticipant   MatchError = "player is not in this match"
	ErrInvalidWord      MatchError = "word is not valid for this match"
	ErrInvalidPlayers   MatchError = "a match needs two different players"
	ErrInvalidLength    MatchError = "unsupported word length"
	ErrSlotFinished     MatchError = "player has already finished"
	ErrWordAlreadySet   MatchError = "secret word already set"
	ErrNilConfig        MatchError = "config cannot be nil"
	ErrNilMatchRepo     MatchError = "match repository cannot be nil"
	ErrNilDictionary    MatchError = "dictionary cannot be nil"
	ErrNilWordSource    MatchError = "word source cannot be nil"
	ErrNilNotifier      MatchError = "notifier cannot be nil"
	ErrNilClock         MatchError = "clock cannot be nil"
	ErrNilUUIDGenerator MatchError = "UUID generator cannot be nil"
)
