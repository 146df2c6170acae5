package cli

import (
	"fmt"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"textclean/internal/adapter/fs"
	"textclean/internal/usecase"
)

func newBatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "batch <input-dir> <output-dir> <limit>",
		Short: "Clean every matching file in a directory",
		Long: `Clean every file under <input-dir> matching batch.includes (default **/*.txt)
and write each result to the same relative path under <output-dir>.
A file that fails is reported and skipped; the others are still processed.

Examples:
  textclean batch ./raw ./clean 100
  textclean batch ./corpus /tmp/out 0 --stem`,
		Args: cobra.ExactArgs(3),
		RunE: a.runBatch,
	}
}

func (a *app) runBatch(cmd *cobra.Command, args []string) error {
	inputDir, outputDir := args[0], args[1]

	limit, err := parseLimit(args[2])
	if err != nil {
		return err
	}

	cleaner, cleanup, err := a.newCleaner()
	if err != nil {
		return err
	}
	defer cleanup()

	walker := fs.NewWalker(a.cfg.Batch.Includes, a.cfg.Batch.Excludes)
	batchUC := usecase.NewBatchUseCase(cleaner, walker, a.logger)

	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()
	fmt.Fprintf(out, "Cleaning %s...\n", inputDir)

	var bar *progressbar.ProgressBar
	var barMu sync.Mutex
	var startTime time.Time

	progressCallback := func(processed, total int, currentFile string) {
		barMu.Lock()
		defer barMu.Unlock()

		if bar == nil {
			startTime = time.Now()
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWriter(errOut),
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowBytes(false),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("[cyan]Cleaning[reset]"),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
				progressbar.OptionOnCompletion(func() {
					fmt.Fprintln(errOut)
				}),
			)
		}

		bar.Set(processed)

		elapsed := time.Since(startTime)
		rate := float64(processed) / elapsed.Seconds()
		if rate > 0 {
			eta := time.Duration(float64(total-processed)/rate) * time.Second
			bar.Describe(fmt.Sprintf("[cyan]Cleaning[reset] ETA: %s", formatDuration(eta)))
		}
	}

	result, err := batchUC.Run(cmd.Context(), inputDir, outputDir, limit, progressCallback)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\nBatch complete:\n")
	fmt.Fprintf(out, "  Files cleaned: %d\n", result.FilesProcessed)
	fmt.Fprintf(out, "  Files failed:  %d\n", result.FilesFailed)
	fmt.Fprintf(out, "  Words written: %d\n", result.Words)

	if len(result.Errors) > 0 {
		fmt.Fprintf(out, "\nWarnings:\n")
		for _, e := range result.Errors {
			fmt.Fprintf(out, "  - %s\n", e)
		}
		return fmt.Errorf("%d of %d files failed", result.FilesFailed, result.FilesFailed+result.FilesProcessed)
	}

	fmt.Fprintf(out, "\nOutput stored at: %s\n", outputDir)
	return nil
}

// formatDuration formats a duration in a human-readable way.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return "<1s"
	}
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm%ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh%dm", h, m)
}
