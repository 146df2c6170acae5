package cli

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"textclean/internal/adapter/stopwords"
	"textclean/internal/domain"
)

func newStopwordsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stopwords",
		Short: "Inspect and manage the stopword list",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Print the active stopword list, one word per line",
		Args:  cobra.NoArgs,
		RunE:  a.runStopwordsList,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "fetch",
		Short: "Download stopwords.url into the resource cache",
		Args:  cobra.NoArgs,
		RunE:  a.runStopwordsFetch,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove cached stopword lists",
		Args:  cobra.NoArgs,
		RunE:  a.runStopwordsClear,
	})

	return cmd
}

func (a *app) runStopwordsList(cmd *cobra.Command, _ []string) error {
	provider, cleanup, err := a.newStopwords()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := provider.EnsureReady(cmd.Context()); err != nil {
		return fmt.Errorf("failed to load stopwords: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, w := range provider.Words() {
		fmt.Fprintln(out, w)
	}
	a.logger.Debug().Str("source", provider.Source()).Msg("stopwords listed")
	return nil
}

func (a *app) runStopwordsFetch(cmd *cobra.Command, _ []string) error {
	url := a.cfg.Stopwords.URL
	if url == "" {
		return fmt.Errorf("stopwords.url is not configured")
	}

	st, dbPath, err := a.openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
	defer cancel()

	words, err := stopwords.Fetch(ctx, http.DefaultClient, url)
	if err != nil {
		return err
	}

	list := domain.StopwordList{
		Name:      stopwords.ListName,
		Words:     words,
		Source:    url,
		FetchedAt: time.Now().UTC(),
	}
	if err := st.PutList(list); err != nil {
		return fmt.Errorf("failed to cache stopwords: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Fetched %d stopwords from %s\n", len(words), url)
	fmt.Fprintf(cmd.OutOrStdout(), "Cache stored at: %s\n", dbPath)
	return nil
}

func (a *app) runStopwordsClear(cmd *cobra.Command, _ []string) error {
	st, dbPath, err := a.openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Clear(); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Resource cache cleared: %s\n", dbPath)
	return nil
}
