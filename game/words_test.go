package game

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeGuess(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "arbol", normalizeGuess(" Árbol "))
	assert.Equal(t, "cafe", normalizeGuess("CAFÉ"))
	assert.Equal(t, "apple", normalizeGuess("apple"))
	assert.Equal(t, "ice cream", normalizeGuess("Ice Cream"))
}

func TestWordBank_SampleFiltersByLength(t *testing.T) {
	t.Parallel()
	bank := newWordBankFrom([]string{"cat", "dog", "sun", "horse", "melon"})

	got := bank.Sample(3, 3)
	require.Len(t, got, 3)
	seen := map[string]bool{}
	for _, w := range got {
		assert.Equal(t, 3, utf8.RuneCountInString(w))
		assert.False(t, seen[w], "sampled %q twice", w)
		seen[w] = true
	}

	// a length nothing matches falls back to the whole bank
	got = bank.Sample(2, 9)
	assert.Len(t, got, 2)

	// asking for more than the pool holds truncates
	got = bank.Sample(10, 3)
	assert.Len(t, got, 3)
}

func TestWordSampler_CombinationJoinsWords(t *testing.T) {
	t.Parallel()
	bank := newWordBankFrom([]string{"red", "blue", "green", "pink"})
	gen := bank.Generator(Settings{GameMode: ModeCombination, WordCount: 2})

	choices := gen.Choices(3)
	require.Len(t, choices, 3)
	for _, c := range choices {
		parts := strings.Fields(c)
		require.Len(t, parts, 2)
		assert.NotEqual(t, parts[0], parts[1])
	}
}

func TestWordBank_EmbeddedBankLoads(t *testing.T) {
	t.Parallel()
	bank := NewWordBank()
	assert.Greater(t, bank.Size(), 100)

	gen := bank.Generator(DefaultSettings())
	assert.Len(t, gen.Choices(3), 3)
}
