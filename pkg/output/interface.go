// Package output renders search results as printable lines.
package output

import (
	"io"

	"github.com/ccollicutt/minigrep/pkg/matcher"
)

// Formatter renders the selected lines of one file.
type Formatter interface {
	// Render returns one output line per selected line, in result order.
	// Render has no side effects.
	Render(label string, result matcher.Result) []string

	// Format renders the result and writes each line to w.
	Format(w io.Writer, label string, result matcher.Result) error
}

// Highlighter marks a matched substring for display.
type Highlighter interface {
	Highlight(s string) string
}
