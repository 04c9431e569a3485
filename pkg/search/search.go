// Package search runs a search: it enumerates files, filters their lines
// and writes the rendered result for each file in turn.
package search

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/ccollicutt/minigrep/pkg/config"
	"github.com/ccollicutt/minigrep/pkg/matcher"
	"github.com/ccollicutt/minigrep/pkg/output"
	"github.com/ccollicutt/minigrep/pkg/source"
)

// Searcher processes the search paths one file at a time.
type Searcher struct {
	opts      config.Options
	formatter output.Formatter
	logger    logrus.FieldLogger
	stdout    io.Writer
}

// SearcherOption configures searcher behavior.
type SearcherOption func(*Searcher)

// WithFormatter sets the formatter for selected lines.
func WithFormatter(f output.Formatter) SearcherOption {
	return func(s *Searcher) {
		s.formatter = f
	}
}

// WithLogger sets where path and read failures are reported.
func WithLogger(l logrus.FieldLogger) SearcherOption {
	return func(s *Searcher) {
		s.logger = l
	}
}

// WithOutput sets the writer receiving rendered lines.
func WithOutput(w io.Writer) SearcherOption {
	return func(s *Searcher) {
		s.stdout = w
	}
}

// Summary describes a completed run.
type Summary struct {
	// FilesScanned is the number of files read and matched.
	FilesScanned int
	// LinesSelected is the number of lines written.
	LinesSelected int
	// Failures lists the paths that were reported and skipped.
	Failures []string
}

// NewSearcher creates a searcher. Without options it writes plain text to
// stdout and reports failures through the standard logrus logger.
func NewSearcher(opts config.Options, sopts ...SearcherOption) (*Searcher, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	s := &Searcher{
		opts:   opts,
		logger: logrus.StandardLogger(),
		stdout: os.Stdout,
	}
	for _, opt := range sopts {
		opt(s)
	}
	if s.formatter == nil {
		s.formatter = output.NewTextFormatter(opts, nil)
	}

	return s, nil
}

// Run searches every path. A path that does not exist or a file that cannot
// be read is reported and skipped; only a failure to write output or a
// cancelled context stops the run.
func (s *Searcher) Run(ctx context.Context) (*Summary, error) {
	summary := &Summary{}

	targets, err := source.Expand(ctx, s.opts.Paths, s.opts.Recursive)
	if err != nil {
		return nil, fmt.Errorf("expanding paths: %w", err)
	}

	for _, target := range targets {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if target.Err != nil {
			s.report(summary, target.Path, target.Err)
			continue
		}

		n, err := s.searchFile(target.Path)
		if err != nil {
			var readErr *source.ReadError
			if errors.As(err, &readErr) {
				s.report(summary, target.Path, err)
				continue
			}
			return nil, err
		}

		summary.FilesScanned++
		summary.LinesSelected += n
	}

	return summary, nil
}

// searchFile reads, matches and renders one file. The contents are released
// when it returns.
func (s *Searcher) searchFile(path string) (int, error) {
	contents, err := source.ReadFile(path)
	if err != nil {
		return 0, err
	}

	result := matcher.Match(contents, s.opts)
	s.logger.WithField("path", path).Debugf("selected %d line(s)", len(result))

	if err := s.formatter.Format(s.stdout, path, result); err != nil {
		return 0, err
	}
	return len(result), nil
}

func (s *Searcher) report(summary *Summary, path string, err error) {
	s.logger.WithField("path", path).Error(err)
	summary.Failures = append(summary.Failures, path)
}
