// Package matcher selects the lines of a file that belong to a search result.
package matcher

import (
	"strings"

	"github.com/ccollicutt/minigrep/pkg/config"
)

// Line is a selected source line.
type Line struct {
	// Num is the 1-based line number in the source file.
	Num int
	// Text is the line content without its line terminator.
	Text string
}

// Result is the ordered set of selected lines, strictly increasing by Num.
type Result []Line

// Match returns the lines of contents that contain the pattern, or with
// opts.Invert the lines that do not. Match is a pure function of its inputs.
func Match(contents string, opts config.Options) Result {
	finder := NewFinder(opts.Pattern, opts.IgnoreCase)

	var result Result
	for i, text := range SplitLines(contents) {
		if finder.Contains(text) != opts.Invert {
			result = append(result, Line{Num: i + 1, Text: text})
		}
	}
	return result
}

// SplitLines splits contents on "\n", dropping a "\r" before each "\n".
// A single trailing newline does not produce an empty final line and empty
// contents have no lines.
func SplitLines(contents string) []string {
	if contents == "" {
		return nil
	}
	contents = strings.TrimSuffix(contents, "\n")
	lines := strings.Split(contents, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
