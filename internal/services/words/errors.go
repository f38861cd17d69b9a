package words

// WordsError is a custom error type for word list errors
type WordsError string

// Error implements the error interface
func (e WordsError) Error() string {
	return string(e)
}

const (
	ErrNoWordsOfLength WordsError = "no words of requested length"
	ErrEmptyWordList   WordsError = "word list is empty"
)
