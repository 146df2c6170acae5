package analyzer

import (
	"testing"
	"unicode"
)

func TestCleanWord(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Fox3", "fox"},
		{"jumps!!", "jumps"},
		{"42", ""},
		{"...", ""},
		{"n't", "nt"},
		{"well-known", "wellknown"},
		{"CAFÉ", "café"},
		{"Straße", "straße"},
		{"İstanbul", "istanbul"},
		{"Cafe\u0301", "cafe"},
		{"\U0001D400bc", "bc"},
		{"\U0001D400", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := CleanWord(tt.input); got != tt.expected {
			t.Errorf("CleanWord(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestCleanWord_OnlyLowercaseLetters(t *testing.T) {
	inputs := []string{"A1b2C3", "Ǆemal", "ΣΊΣΥΦΟΣ", "x_y-z", "日本語テキスト", "\U0001D400\U0001D401C"}
	for _, in := range inputs {
		for _, r := range CleanWord(in) {
			if !unicode.IsLetter(r) {
				t.Errorf("CleanWord(%q) kept non-letter %q", in, r)
			}
			if unicode.IsUpper(r) {
				t.Errorf("CleanWord(%q) kept uppercase %q", in, r)
			}
		}
	}
}
