package solo

// SoloError is a custom error type for solo game errors
type SoloError string

// Error implements the error interface
func (e SoloError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrGameNotFound     SoloError = "game not found"
	ErrGameNotActive    SoloError = "game is not active"
	ErrNotOwner         SoloError = "game belongs to another player"
	ErrInvalidWord      SoloError = "word is not valid for this game"
	ErrInvalidDiff      SoloError = "unknown difficulty"
	ErrInvalidScore     SoloError = "score must be positive and hints cannot be negative"
	ErrInvalidUsername  SoloError = "username must be 1 to 32 characters"
	ErrNoHintsLeft      SoloError = "no hints left"
	ErrStaleState       SoloError = "game changed since it was read, reload and retry"
	ErrNilConfig        SoloError = "config cannot be nil"
	ErrNilSoloRepo      SoloError = "solo game repository cannot be nil"
	ErrNilScoreRepo     SoloError = "score repository cannot be nil"
	ErrNilPlayerRepo    SoloError = "player repository cannot be nil"
	ErrNilDictionary    SoloError = "dictionary cannot be nil"
	ErrNilWordSource    SoloError = "word source cannot be nil"
	ErrNilClock         SoloError = "clock cannot be nil"
	ErrNilUUIDGenerator SoloError = "UUID generator cannot be nil"
)
