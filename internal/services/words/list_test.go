package words

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinListCoversEveryDifficulty(t *testing.T) {
	list, err := New(&Config{Seed: 1})
	require.NoError(t, err)

	for _, length := range []int{4, 5, 6} {
		assert.Greater(t, list.Count(length), 100, "length %d", length)
	}
}

func TestIsValidWord(t *testing.T) {
	list, err := New(&Config{Seed: 1})
	require.NoError(t, err)

	assert.True(t, list.IsValidWord("CRANE", 5))
	assert.True(t, list.IsValidWord("crane", 5), "lookup is case-insensitive")
	assert.False(t, list.IsValidWord("CRANE", 4), "length must match")
	assert.False(t, list.IsValidWord("ZZZZZ", 5))
	assert.False(t, list.IsValidWord("", 0))
}

func TestDrawRandomWord(t *testing.T) {
	list, err := New(&Config{Seed: 42})
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		word, err := list.DrawRandomWord(6)
		require.NoError(t, err)
		assert.Len(t, word, 6)
		assert.True(t, list.IsValidWord(word, 6))
	}

	_, err = list.DrawRandomWord(9)
	assert.ErrorIs(t, err, ErrNoWordsOfLength)
}

func TestDrawRandomWord_SeedIsDeterministic(t *testing.T) {
	a, err := New(&Config{Seed: 7})
	require.NoError(t, err)
	b, err := New(&Config{Seed: 7})
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		wa, _ := a.DrawRandomWord(5)
		wb, _ := b.DrawRandomWord(5)
		assert.Equal(t, wa, wb)
	}
}

func TestNew_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	content := strings.Join([]string{"# comment", "melon", "MELON", "lemon", "kiwi", "it's", ""}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	list, err := New(&Config{Path: path, Seed: 3})
	require.NoError(t, err)

	assert.Equal(t, 2, list.Count(5), "duplicates are collapsed")
	assert.Equal(t, 1, list.Count(4), "non-alphabetic entries are skipped")
	assert.True(t, list.IsValidWord("KIWI", 4))
	assert.False(t, list.IsValidWord("CRANE", 5), "file replaces the built-in list")
}

func TestNew_Errors(t *testing.T) {
	_, err := New(&Config{Path: filepath.Join(t.TempDir(), "missing.txt")})
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, []byte("# nothing\n"), 0o600))
	_, err = New(&Config{Path: path})
	assert.ErrorIs(t, err, ErrEmptyWordList)
}
