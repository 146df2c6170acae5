package analyzer

import "testing"

func TestSnowballStemmer_Stem(t *testing.T) {
	s := NewSnowballStemmer()

	tests := []struct {
		input    string
		expected string
	}{
		{"running", "run"},
		{"dogs", "dog"},
		{"jumps", "jump"},
		{"fox", "fox"},
	}

	for _, tt := range tests {
		if got := s.Stem(tt.input); got != tt.expected {
			t.Errorf("Stem(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestSnowballStemmer_EmptyInput(t *testing.T) {
	s := NewSnowballStemmer()
	if got := s.Stem(""); got != "" {
		t.Errorf("expected empty stem, got %q", got)
	}
}
