package analyzer

import (
	"strings"
	"unicode"
)

// CleanWord drops every rune of word that is not a letter and lowercases the
// rest. Uppercase letters with no lowercase form are dropped too. The result
// may be empty.
func CleanWord(word string) string {
	return strings.Map(func(r rune) rune {
		if !unicode.IsLetter(r) {
			return -1
		}
		r = unicode.ToLower(r)
		if unicode.IsUpper(r) {
			return -1
		}
		return r
	}, word)
}
