package port

import "context"

// StopwordSet reports whether a lowercased word is a stopword.
// EnsureReady must succeed before Contains is consulted.
type StopwordSet interface {
	EnsureReady(ctx context.Context) error

	Contains(word string) bool
}
