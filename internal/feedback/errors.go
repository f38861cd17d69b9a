package feedback

// FeedbackError is a custom error type for scoring errors
type FeedbackError string

// Error implements the error interface
func (e FeedbackError) Error() string {
	return string(e)
}

const (
	// ErrInvalidInput is returned when the guess and target lengths differ
	ErrInvalidInput FeedbackError = "guess and target must have the same length"
)
