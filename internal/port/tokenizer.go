package port

import "context"

type Tokenizer interface {
	EnsureReady(ctx context.Context) error

	Tokenize(text string) []string
}
