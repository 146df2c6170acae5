package stopwords

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"textclean/internal/domain"
)

const (
	SourceEmbedded = "embedded"
	SourceCache    = "cache"

	maxListBytes = 1 << 20
)

// Cache persists fetched stopword lists between runs.
type Cache interface {
	GetList(name string) (domain.StopwordList, bool, error)
	PutList(list domain.StopwordList) error
}

// Options configures where the Provider loads its list from.
type Options struct {
	// URL of a newline-separated list. Empty means the built-in list.
	URL string
	// Cache is optional.
	Cache  Cache
	Client *http.Client
}

// Provider loads the stopword set once, on first EnsureReady, and serves
// lookups from it for the rest of the process.
type Provider struct {
	opts   Options
	logger zerolog.Logger

	once   sync.Once
	set    Set
	source string
	err    error
}

// NewProvider creates a Provider. Nothing is loaded until EnsureReady.
func NewProvider(opts Options, logger zerolog.Logger) *Provider {
	if opts.Client == nil {
		opts.Client = &http.Client{Timeout: 30 * time.Second}
	}
	return &Provider{opts: opts, logger: logger}
}

// EnsureReady loads the list. Later calls return the first call's result.
func (p *Provider) EnsureReady(ctx context.Context) error {
	p.once.Do(func() {
		words, source, err := p.resolve(ctx)
		if err != nil {
			p.err = err
			return
		}
		p.set = NewSet(words)
		p.source = source
		p.logger.Debug().
			Str("source", source).
			Int("words", len(p.set)).
			Msg("stopwords ready")
	})
	return p.err
}

// Contains reports whether the lowercase word is a stopword.
func (p *Provider) Contains(word string) bool {
	return p.set.Contains(word)
}

// Source names where the active list came from.
func (p *Provider) Source() string {
	return p.source
}

// Words returns the active list, sorted.
func (p *Provider) Words() []string {
	return p.set.Sorted()
}

func (p *Provider) resolve(ctx context.Context) ([]string, string, error) {
	if p.opts.URL == "" {
		return English(), SourceEmbedded, nil
	}

	if p.opts.Cache != nil {
		list, ok, err := p.opts.Cache.GetList(ListName)
		if err != nil {
			return nil, "", fmt.Errorf("failed to read stopword cache: %w", err)
		}
		if ok && list.Source == p.opts.URL {
			return list.Words, SourceCache, nil
		}
	}

	p.logger.Info().Str("url", p.opts.URL).Msg("downloading stopwords")
	words, err := Fetch(ctx, p.opts.Client, p.opts.URL)
	if err != nil {
		return nil, "", err
	}

	if p.opts.Cache != nil {
		list := domain.StopwordList{
			Name:      ListName,
			Words:     words,
			Source:    p.opts.URL,
			FetchedAt: time.Now().UTC(),
		}
		if err := p.opts.Cache.PutList(list); err != nil {
			return nil, "", fmt.Errorf("failed to cache stopwords: %w", err)
		}
	}

	return words, p.opts.URL, nil
}

// Fetch downloads a newline-separated stopword list.
func Fetch(ctx context.Context, client *http.Client, url string) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download stopwords: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download stopwords: %s returned %s", url, resp.Status)
	}

	words, err := Parse(io.LimitReader(resp.Body, maxListBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read stopwords: %w", err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("stopword list at %s is empty", url)
	}
	return words, nil
}
