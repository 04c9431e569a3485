package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ccollicutt/minigrep/pkg/config"
	"github.com/ccollicutt/minigrep/pkg/matcher"
)

// TextFormatter formats selected lines as plain text with optional
// filename and line number prefixes and highlighted matches.
type TextFormatter struct {
	opts        config.Options
	finder      *matcher.Finder
	highlighter Highlighter
}

// NewTextFormatter creates a text formatter for the given options.
// A nil highlighter leaves matches unmarked.
func NewTextFormatter(opts config.Options, hl Highlighter) *TextFormatter {
	if hl == nil {
		hl = PlainHighlighter{}
	}
	return &TextFormatter{
		opts:        opts,
		finder:      matcher.NewFinder(opts.Pattern, opts.IgnoreCase),
		highlighter: hl,
	}
}

// Render returns the formatted lines for result.
func (f *TextFormatter) Render(label string, result matcher.Result) []string {
	lines := make([]string, 0, len(result))
	for _, line := range result {
		lines = append(lines, f.renderLine(label, line))
	}
	return lines
}

// Format writes the formatted lines for result to w.
func (f *TextFormatter) Format(w io.Writer, label string, result matcher.Result) error {
	for _, line := range f.Render(label, result) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}
	return nil
}

func (f *TextFormatter) renderLine(label string, line matcher.Line) string {
	text := line.Text
	if f.opts.Colorize && !f.opts.Invert {
		text = f.highlight(text)
	}

	switch {
	case f.opts.ShowFilename && f.opts.LineNumbers:
		return label + ": " + strconv.Itoa(line.Num) + ": " + text
	case f.opts.ShowFilename:
		return label + ": " + text
	case f.opts.LineNumbers:
		return strconv.Itoa(line.Num) + ": " + text
	default:
		return text
	}
}

// highlight wraps every leftmost, non-overlapping occurrence of the pattern.
func (f *TextFormatter) highlight(text string) string {
	// An empty pattern matches everywhere with zero width.
	if f.opts.Pattern == "" {
		return text
	}

	var sb strings.Builder
	rest := text
	for {
		start, end := f.finder.Index(rest)
		if start < 0 {
			break
		}
		sb.WriteString(rest[:start])
		sb.WriteString(f.highlighter.Highlight(rest[start:end]))
		rest = rest[end:]
	}
	sb.WriteString(rest)
	return sb.String()
}
