package cli

import (
	"fmt"

	"textclean/config"
	"textclean/internal/adapter/analyzer"
	"textclean/internal/adapter/stopwords"
	"textclean/internal/adapter/store"
	"textclean/internal/port"
	"textclean/internal/usecase"
)

// openStore opens the resource cache, creating its directory if needed.
func (a *app) openStore() (*store.ResourceStore, string, error) {
	dir, err := a.cfg.CacheDir()
	if err != nil {
		return nil, "", err
	}
	if err := config.EnsureCacheDir(dir); err != nil {
		return nil, "", fmt.Errorf("failed to create cache directory: %w", err)
	}

	dbPath := config.ResourceDBPath(dir)
	st, err := store.NewResourceStore(dbPath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open resource cache: %w", err)
	}
	return st, dbPath, nil
}

// newStopwords builds the stopword provider. The cache is only opened when a
// remote list is configured.
func (a *app) newStopwords() (*stopwords.Provider, func(), error) {
	opts := stopwords.Options{
		URL: a.cfg.Stopwords.URL,
	}
	cleanup := func() {}

	if opts.URL != "" {
		st, _, err := a.openStore()
		if err != nil {
			return nil, cleanup, err
		}
		opts.Cache = st
		cleanup = func() { st.Close() }
	}

	return stopwords.NewProvider(opts, a.logger), cleanup, nil
}

func (a *app) newCleaner() (*usecase.CleanUseCase, func(), error) {
	provider, cleanup, err := a.newStopwords()
	if err != nil {
		return nil, cleanup, err
	}

	var stemmer port.Stemmer
	if a.cfg.Clean.Stem {
		stemmer = analyzer.NewSnowballStemmer()
	}

	return usecase.NewCleanUseCase(analyzer.NewWordTokenizer(), provider, stemmer, a.logger), cleanup, nil
}
