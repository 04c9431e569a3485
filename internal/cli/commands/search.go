package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ccollicutt/minigrep/pkg/config"
	"github.com/ccollicutt/minigrep/pkg/logging"
	"github.com/ccollicutt/minigrep/pkg/output"
	"github.com/ccollicutt/minigrep/pkg/search"
)

// UsageText is printed for -h/--help and when the pattern or paths are missing.
const UsageText = `Usage: grep [OPTIONS] <pattern> <files...>
Options:
-i                Case-insensitive search
-n                Print line numbers
-v                Invert match (exclude lines that match the pattern)
-r                Recursive directory search
-f                Print filenames
-c                Enable colored output
-h, --help        Show help information
`

// SearchOptions holds command-line options for the search command.
type SearchOptions struct {
	IgnoreCase   bool
	LineNumbers  bool
	Invert       bool
	Recursive    bool
	ShowFilename bool
	Colorize     bool

	// ConfigFile is an optional settings file path.
	ConfigFile string
}

// NewSearchCommand creates the search command, which is the whole tool.
func NewSearchCommand() *cobra.Command {
	opts := &SearchOptions{}

	cmd := &cobra.Command{
		Use:   "grep [OPTIONS] <pattern> <paths...>",
		Short: "Print lines containing a literal pattern",
		Long: `Search files for lines containing a literal pattern.

Each path may be a file or a directory. Directories are searched one level
deep, or fully with -r. Paths that do not exist or files that cannot be
read are reported on stderr and skipped.`,
		Args:          cobra.ArbitraryArgs,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, args, opts)
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&opts.IgnoreCase, "ignore-case", "i", false, "Case-insensitive search")
	flags.BoolVarP(&opts.LineNumbers, "line-number", "n", false, "Print line numbers")
	flags.BoolVarP(&opts.Invert, "invert-match", "v", false, "Invert match (exclude lines that match the pattern)")
	flags.BoolVarP(&opts.Recursive, "recursive", "r", false, "Recursive directory search")
	flags.BoolVarP(&opts.ShowFilename, "with-filename", "f", false, "Print filenames")
	flags.BoolVarP(&opts.Colorize, "colorize", "c", false, "Enable colored output")
	flags.StringVar(&opts.ConfigFile, "config", "", "Settings file (default $"+config.EnvConfigFile+")")

	cmd.SetHelpFunc(func(cmd *cobra.Command, _ []string) {
		_, _ = fmt.Fprint(cmd.OutOrStdout(), UsageText)
	})
	cmd.SetUsageFunc(func(cmd *cobra.Command) error {
		_, err := fmt.Fprint(cmd.OutOrStdout(), UsageText)
		return err
	})
	cmd.SetVersionTemplate(versionTemplate)

	return cmd
}

func runSearch(cmd *cobra.Command, args []string, opts *SearchOptions) error {
	if len(args) < 2 {
		return cmd.Usage()
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	settings, err := config.Resolve(ctx, opts.ConfigFile)
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	logger, closer, err := logging.New(settings, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	defer closeLog(logger, closer)

	searchOpts := opts.toOptions(args[0], args[1:])
	stdout := cmd.OutOrStdout()

	highlighter := output.NewHighlighter(settings.Color, settings.HighlightColor, stdout)
	searcher, err := search.NewSearcher(searchOpts,
		search.WithOutput(stdout),
		search.WithLogger(logger),
		search.WithFormatter(output.NewTextFormatter(searchOpts, highlighter)),
	)
	if err != nil {
		return err
	}

	summary, err := searcher.Run(ctx)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	logger.WithField("files", summary.FilesScanned).
		WithField("lines", summary.LinesSelected).
		WithField("failures", len(summary.Failures)).
		Debug("search complete")

	return nil
}

// closeLog releases the diagnostics file, reporting a failed flush on the logger.
func closeLog(logger logrus.FieldLogger, closer io.Closer) {
	if err := closer.Close(); err != nil {
		logger.WithError(err).Warn("closing log file")
	}
}

// toOptions builds the immutable search options from parsed flags.
func (o *SearchOptions) toOptions(pattern string, paths []string) config.Options {
	return config.Options{
		Pattern:      pattern,
		Paths:        paths,
		IgnoreCase:   o.IgnoreCase,
		LineNumbers:  o.LineNumbers,
		Invert:       o.Invert,
		Recursive:    o.Recursive,
		ShowFilename: o.ShowFilename,
		Colorize:     o.Colorize,
	}
}
