package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"textclean/internal/adapter/analyzer"
	"textclean/internal/adapter/fs"
	"textclean/internal/domain"
	"textclean/internal/port"
)

// CleanUseCase removes stopwords, digits and punctuation from text, lowercases
// what is left and keeps at most a given number of words.
// It is not safe for concurrent use.
type CleanUseCase struct {
	tokenizer port.Tokenizer
	stopwords port.StopwordSet
	stemmer   port.Stemmer // optional
	lower     cases.Caser
	logger    zerolog.Logger
}

// NewCleanUseCase creates a new clean use case. stemmer may be nil.
func NewCleanUseCase(
	tokenizer port.Tokenizer,
	stopwords port.StopwordSet,
	stemmer port.Stemmer,
	logger zerolog.Logger,
) *CleanUseCase {
	return &CleanUseCase{
		tokenizer: tokenizer,
		stopwords: stopwords,
		stemmer:   stemmer,
		lower:     cases.Lower(language.English),
		logger:    logger,
	}
}

// Process cleans the file at inputPath and writes the result to outputPath.
// Nothing is written unless reading and cleaning succeed.
func (u *CleanUseCase) Process(ctx context.Context, inputPath, outputPath string, limit int) (*domain.CleanResult, error) {
	if err := ValidateLimit(limit); err != nil {
		return nil, err
	}

	text, err := fs.ReadText(inputPath)
	if err != nil {
		return nil, err
	}

	words, stats, err := u.Clean(ctx, text, limit)
	if err != nil {
		return nil, err
	}

	if err := fs.WriteText(outputPath, strings.Join(words, " ")); err != nil {
		return nil, err
	}

	u.logger.Debug().
		Str("input", inputPath).
		Str("output", outputPath).
		Int("tokens", stats.Tokens).
		Int("stopwords", stats.StopwordsRemoved).
		Int("words", stats.Words).
		Bool("truncated", stats.Truncated).
		Msg("text cleaned")

	return &domain.CleanResult{
		InputPath:  inputPath,
		OutputPath: outputPath,
		Limit:      limit,
		Stats:      stats,
	}, nil
}

// EnsureReady prepares the tokenizer and the stopword set. It is safe to call
// repeatedly; the collaborators load only once.
func (u *CleanUseCase) EnsureReady(ctx context.Context) error {
	if err := u.tokenizer.EnsureReady(ctx); err != nil {
		return domain.NewError(domain.InternalFailure, "", fmt.Errorf("failed to prepare tokenizer: %w", err))
	}
	if err := u.stopwords.EnsureReady(ctx); err != nil {
		return domain.NewError(domain.InternalFailure, "", fmt.Errorf("failed to prepare stopwords: %w", err))
	}
	return nil
}

// Clean runs the in-memory part of the pipeline and returns the kept words
// in source order.
func (u *CleanUseCase) Clean(ctx context.Context, text string, limit int) ([]string, domain.CleanStats, error) {
	var stats domain.CleanStats

	if err := ValidateLimit(limit); err != nil {
		return nil, stats, err
	}
	if err := u.EnsureReady(ctx); err != nil {
		return nil, stats, err
	}

	tokens := u.tokenizer.Tokenize(text)
	stats.Tokens = len(tokens)

	words := make([]string, 0, len(tokens))
	for _, token := range tokens {
		// The stopword check sees the whole token; stripping comes after.
		if u.stopwords.Contains(u.lower.String(token)) {
			stats.StopwordsRemoved++
			continue
		}

		word := analyzer.CleanWord(token)
		if word == "" {
			stats.EmptyDiscarded++
			continue
		}
		if u.stemmer != nil {
			word = u.stemmer.Stem(word)
		}
		words = append(words, word)
	}

	if len(words) > limit {
		words = words[:limit]
		stats.Truncated = true
	}
	stats.Words = len(words)

	return words, stats, nil
}

// ValidateLimit rejects negative word limits.
func ValidateLimit(limit int) error {
	if limit < 0 {
		return domain.NewError(domain.InvalidLimit, "", fmt.Errorf("limit must be >= 0, got %d", limit))
	}
	return nil
}
