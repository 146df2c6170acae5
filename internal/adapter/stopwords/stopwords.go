package stopwords

import (
	"bufio"
	_ "embed"
	"io"
	"sort"
	"strings"
)

// ListName is the cache key of the English stopword list.
const ListName = "english"

//go:embed english.txt
var englishList string

// English returns the built-in English stopword list.
func English() []string {
	words, _ := Parse(strings.NewReader(englishList))
	return words
}

// Set is a read-only-after-load set of lowercase stopwords.
type Set map[string]struct{}

// NewSet builds a Set from words, lowercasing each.
func NewSet(words []string) Set {
	s := make(Set, len(words))
	s.Add(words...)
	return s
}

// Add inserts words into the set.
func (s Set) Add(words ...string) {
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			s[w] = struct{}{}
		}
	}
}

// Contains reports whether word is in the set. word must already be lowercase.
func (s Set) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// Sorted returns the words in lexical order.
func (s Set) Sorted() []string {
	words := make([]string, 0, len(s))
	for w := range s {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// Parse reads a newline-separated word list. Blank lines and lines starting
// with '#' are skipped.
func Parse(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, strings.ToLower(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}
