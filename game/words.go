package game

import (
	_ "embed"
	"math/rand"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

//go:embed words.txt
var rawWords string

// normalizeGuess lowercases, trims and strips accents so "Árbol " matches
// "arbol".
func normalizeGuess(s string) string {
	s = strings.ToLower(s)
	s = strings.TrimSpace(s)
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}

type WordBank struct {
	words []string
}

func NewWordBank() *WordBank {
	lines := strings.Split(rawWords, "\n")
	words := make([]string, 0, len(lines))
	for _, line := range lines {
		w := strings.TrimSpace(line)
		if w == "" {
			continue
		}
		words = append(words, w)
	}
	return &WordBank{words: words}
}

func newWordBankFrom(words []string) *WordBank {
	return &WordBank{words: words}
}

func (b *WordBank) Size() int {
	return len(b.words)
}

// filtered returns the words matching the requested rune length, or the
// whole bank when length is 0 or nothing matches.
func (b *WordBank) filtered(length int) []string {
	if length <= 0 {
		return b.words
	}
	out := make([]string, 0, len(b.words))
	for _, w := range b.words {
		if utf8.RuneCountInString(w) == length {
			out = append(out, w)
		}
	}
	if len(out) == 0 {
		return b.words
	}
	return out
}

// Sample draws count distinct words of the given length.
func (b *WordBank) Sample(count, length int) []string {
	pool := b.filtered(length)
	if count > len(pool) {
		count = len(pool)
	}
	picked := rand.Perm(len(pool))[:count]
	out := make([]string, 0, count)
	for _, i := range picked {
		out = append(out, pool[i])
	}
	return out
}

// Generator binds the bank to a room's settings.
func (b *WordBank) Generator(s Settings) WordGenerator {
	return wordSampler{bank: b, settings: s}
}

type wordSampler struct {
	bank     *WordBank
	settings Settings
}

// Choices returns the candidate words offered to the drawer. In
// combination mode each choice is wordCount random words joined with
// spaces, which the guessers must reproduce in full.
func (ws wordSampler) Choices(count int) []string {
	if ws.settings.GameMode == ModeCombination {
		out := make([]string, 0, count)
		for i := 0; i < count; i++ {
			out = append(out, strings.Join(ws.bank.Sample(ws.settings.WordCount, ws.settings.WordLength), " "))
		}
		return out
	}
	return ws.bank.Sample(count, ws.settings.WordLength)
}
