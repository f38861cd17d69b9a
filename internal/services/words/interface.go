package words

//go:generate mockgen -package=mocks -destination=mocks/mock_dictionary.go github.com/KirkDiggler/wordduel/internal/services/words Dictionary
//go:generate mockgen -package=mocks -destination=mocks/mock_source.go github.com/KirkDiggler/wordduel/internal/services/words Source

// Dictionary answers whether a word is playable at a given length
type Dictionary interface {
	IsValidWord(word string, length int) bool
}

// Source draws random target words
type Source interface {
	DrawRandomWord(length int) (string, error)
}
