package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"textclean/internal/adapter/fs"
	"textclean/internal/adapter/langdetect"
)

func (a *app) runClean(cmd *cobra.Command, args []string) error {
	inputPath, outputPath := args[0], args[1]

	limit, err := parseLimit(args[2])
	if err != nil {
		return err
	}

	// Input errors take precedence over resource cache errors.
	if err := fs.CheckInput(inputPath); err != nil {
		return err
	}

	cleaner, cleanup, err := a.newCleaner()
	if err != nil {
		return err
	}
	defer cleanup()

	if a.cfg.Clean.DetectLanguage {
		a.checkLanguage(inputPath)
	}

	result, err := cleaner.Process(cmd.Context(), inputPath, outputPath, limit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Processed text saved to '%s'\n", result.OutputPath)
	fmt.Fprintln(out, "All numbers, symbols, and stopwords have been removed.")
	return nil
}

// checkLanguage warns when the input does not look English. The stopword
// list is English only; the output is not affected.
func (a *app) checkLanguage(path string) {
	text, err := fs.ReadText(path)
	if err != nil {
		return
	}
	if a.detector == nil {
		a.detector = langdetect.NewDetector()
	}

	code := a.detector.Detect(text)
	if code != "" && code != "en" {
		a.logger.Warn().
			Str("file", path).
			Str("language", code).
			Msg("input does not look like English; only English stopwords are removed")
	}
}
