package analyzer

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"
)

// WordTokenizer splits English text into word-level tokens using
// Treebank-style rules: punctuation is split off, clitics are separated
// from their stem ("don't" -> "do", "n't") and a trailing period becomes
// its own token unless the word carries other periods ("e.g.", "U.S.").
type WordTokenizer struct{}

// NewWordTokenizer creates a new WordTokenizer.
func NewWordTokenizer() *WordTokenizer {
	return &WordTokenizer{}
}

// EnsureReady has nothing to load; it only reports a cancelled context.
func (t *WordTokenizer) EnsureReady(ctx context.Context) error {
	return ctx.Err()
}

// Tokenize splits text into tokens, preserving source order.
func (t *WordTokenizer) Tokenize(text string) []string {
	var tokens []string
	for _, field := range strings.Fields(text) {
		tokens = splitField(tokens, field)
	}
	return tokens
}

// splitField cuts a whitespace-free field at separator punctuation and
// hands the remaining word pieces to splitWord.
func splitField(tokens []string, field string) []string {
	runes := []rune(field)
	start := 0

	for i := 0; i < len(runes); i++ {
		n := separatorLen(runes, i)
		if n == 0 {
			continue
		}
		if i > start {
			tokens = splitWord(tokens, string(runes[start:i]))
		}
		tokens = append(tokens, string(runes[i:i+n]))
		i += n - 1
		start = i + 1
	}
	if start < len(runes) {
		tokens = splitWord(tokens, string(runes[start:]))
	}

	return tokens
}

// separatorLen returns the rune length of the separator starting at i, or 0.
func separatorLen(runes []rune, i int) int {
	r := runes[i]
	switch r {
	case ';', '@', '#', '$', '%', '&', '?', '!', '(', ')', '[', ']', '{', '}', '<', '>',
		'"', '“', '”', '«', '»', '…':
		return 1
	case ',', ':':
		// "1,000" and "10:30" stay whole.
		if i+1 < len(runes) && unicode.IsDigit(runes[i+1]) {
			return 0
		}
		return 1
	case '.':
		if i+2 < len(runes) && runes[i+1] == '.' && runes[i+2] == '.' {
			return 3
		}
	case '-':
		if i+1 < len(runes) && runes[i+1] == '-' {
			return 2
		}
	}
	return 0
}

// clitics are split off the end of a word, matched case-insensitively.
var clitics = []string{"n't", "'ll", "'re", "'ve", "'s", "'m", "'d"}

// compounds are whole words the Treebank rules split in two.
var compounds = map[string]int{
	"cannot": 3,
	"gonna":  3,
	"gotta":  3,
	"wanna":  3,
	"gimme":  3,
	"lemme":  3,
}

func splitWord(tokens []string, word string) []string {
	for word != "" {
		r, size := utf8.DecodeRuneInString(word)
		if !isQuote(r) {
			break
		}
		tokens = append(tokens, word[:size])
		word = word[size:]
	}

	// Trailing punctuation, collected outermost first.
	var suffix []string
	for word != "" {
		r, size := utf8.DecodeLastRuneInString(word)
		if size == len(word) {
			break
		}
		if isQuote(r) || (r == '.' && strings.Count(word, ".") == 1) {
			suffix = append(suffix, word[len(word)-size:])
			word = word[:len(word)-size]
			continue
		}
		break
	}

	if at, ok := compounds[strings.ToLower(word)]; ok {
		tokens = append(tokens, word[:at], word[at:])
	} else {
		stem, clitic := splitClitic(word)
		if stem != "" {
			tokens = append(tokens, stem)
		}
		if clitic != "" {
			tokens = append(tokens, clitic)
		}
	}

	for i := len(suffix) - 1; i >= 0; i-- {
		tokens = append(tokens, suffix[i])
	}
	return tokens
}

// splitClitic separates a trailing clitic. Both ASCII and typographic
// apostrophes are recognised.
func splitClitic(word string) (string, string) {
	for _, c := range clitics {
		for _, variant := range []string{c, strings.ReplaceAll(c, "'", "’")} {
			if len(word) <= len(variant) {
				continue
			}
			cut := len(word) - len(variant)
			if !strings.EqualFold(word[cut:], variant) {
				continue
			}
			last, _ := utf8.DecodeLastRuneInString(word[:cut])
			if isQuote(last) {
				continue
			}
			return word[:cut], word[cut:]
		}
	}
	return word, ""
}

func isQuote(r rune) bool {
	switch r {
	case '\'', '‘', '’', '`':
		return true
	}
	return false
}
