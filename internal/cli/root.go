package cli

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"textclean/config"
	"textclean/internal/domain"
	"textclean/internal/logging"
	"textclean/internal/port"
)

// app carries state shared by all commands of one invocation.
type app struct {
	cfgFile  string
	stem     bool
	cfg      *config.Config
	logger   zerolog.Logger
	detector port.LanguageDetector
}

// negativeFlag matches pflag's complaint about a negative number argument.
var negativeFlag = regexp.MustCompile(`in -(\d+)$`)

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "textclean <input> <output> <limit>",
		Short: "Remove stopwords, numbers and punctuation from a text file",
		Long: `textclean reads a UTF-8 text file, drops English stopwords, strips every
character that is not a letter, lowercases the remaining words and writes at
most <limit> of them, space separated, to the output file.

Example usage:
  textclean input.txt output.txt 100     # Clean one file
  textclean batch ./raw ./clean 100      # Clean every .txt file in a directory
  textclean stopwords list               # Show the active stopword list`,
		Args:              cobra.ExactArgs(3),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.load,
		RunE:              a.runClean,
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetFlagErrorFunc(flagError)

	cmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./textclean.yaml)")
	cmd.PersistentFlags().BoolVar(&a.stem, "stem", false, "stem cleaned words (overrides clean.stem)")

	cmd.AddCommand(newBatchCmd(a))
	cmd.AddCommand(newStopwordsCmd(a))

	return cmd
}

// Execute runs the CLI against the process arguments and returns the exit code.
func Execute() int {
	return Run(os.Args[1:], os.Stdout, os.Stderr)
}

// Run runs the CLI with explicit arguments and streams.
func Run(args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return domain.KindOf(err).ExitCode()
	}
	return 0
}

func (a *app) load(cmd *cobra.Command, _ []string) error {
	var err error

	if a.cfgFile != "" {
		a.cfg, err = config.Load(a.cfgFile)
	} else {
		var wd string
		wd, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
		a.cfg, err = config.LoadFromDir(wd)
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if f := cmd.Flag("stem"); f != nil && f.Changed {
		a.cfg.Clean.Stem = a.stem
	}

	a.logger, err = logging.New(a.cfg.Logging.Level, cmd.ErrOrStderr())
	return err
}

// parseLimit parses the <limit> argument.
func parseLimit(raw string) (int, error) {
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewError(domain.InvalidLimit, "", fmt.Errorf("%q is not an integer", raw))
	}
	if limit < 0 {
		return 0, domain.NewError(domain.InvalidLimit, "", fmt.Errorf("limit must be >= 0, got %d", limit))
	}
	return limit, nil
}

// flagError reports "-5" style arguments, which pflag sees as unknown
// shorthand flags, as an invalid limit.
func flagError(_ *cobra.Command, err error) error {
	if m := negativeFlag.FindStringSubmatch(err.Error()); m != nil {
		return domain.NewError(domain.InvalidLimit, "", fmt.Errorf("limit must be >= 0, got -%s", m[1]))
	}
	return err
}
