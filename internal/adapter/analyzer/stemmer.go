package analyzer

import (
	"github.com/kljensen/snowball"
)

// SnowballStemmer reduces words to their Snowball (Porter2) stem.
type SnowballStemmer struct {
	language string
}

// NewSnowballStemmer creates an English Snowball stemmer.
func NewSnowballStemmer() *SnowballStemmer {
	return &SnowballStemmer{language: "english"}
}

// Stem returns the stem of word, or word itself if it cannot be stemmed.
func (s *SnowballStemmer) Stem(word string) string {
	stemmed, err := snowball.Stem(word, s.language, false)
	if err != nil || stemmed == "" {
		return word
	}
	return stemmed
}
