package words

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"sync"
	"time"
	"unicode"
)

//go:embed words.txt
var builtin string

// List is a word list backed Dictionary and Source
type List struct {
	mu       sync.Mutex
	random   *rand.Rand
	byLength map[int][]string
	known    map[string]struct{}
}

// Config for the word list
type Config struct {
	// Path to a newline separated word list. Empty uses the built-in list.
	Path string

	// Optional seed for testing
	Seed int64
}

// New creates a word list from the configured file or the built-in list
func New(cfg *Config) (*List, error) {
	var (
		path string
		seed int64
	)
	if cfg != nil {
		path = cfg.Path
		seed = cfg.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var r io.Reader = strings.NewReader(builtin)
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open word list: %w", err)
		}
		defer f.Close()
		r = f
	}

	list, err := load(r)
	if err != nil {
		return nil, err
	}
	list.random = rand.New(rand.NewSource(seed))

	return list, nil
}

func load(r io.Reader) (*List, error) {
	list := &List{
		byLength: make(map[int][]string),
		known:    make(map[string]struct{}),
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.ToUpper(strings.TrimSpace(scanner.Text()))
		if word == "" || strings.HasPrefix(word, "#") || !alphabetic(word) {
			continue
		}
		if _, ok := list.known[word]; ok {
			continue
		}
		list.known[word] = struct{}{}
		list.byLength[len(word)] = append(list.byLength[len(word)], word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}

	if len(list.known) == 0 {
		return nil, ErrEmptyWordList
	}

	return list, nil
}

func alphabetic(word string) bool {
	for _, r := range word {
		if r > unicode.MaxASCII || !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// IsValidWord reports whether word is in the list and has the given length
func (l *List) IsValidWord(word string, length int) bool {
	if len(word) != length {
		return false
	}
	_, ok := l.known[strings.ToUpper(word)]
	return ok
}

// DrawRandomWord picks a random word of the given length
func (l *List) DrawRandomWord(length int) (string, error) {
	candidates := l.byLength[length]
	if len(candidates) == 0 {
		return "", fmt.Errorf("%w: %d", ErrNoWordsOfLength, length)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	return candidates[l.random.Intn(len(candidates))], nil
}

// Count returns how many words of the given length are known
func (l *List) Count(length int) int {
	return len(l.byLength[length])
}
