package output

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/ccollicutt/minigrep/pkg/config"
)

var colorAttributes = map[string]color.Attribute{
	"red":     color.FgRed,
	"green":   color.FgGreen,
	"yellow":  color.FgYellow,
	"blue":    color.FgBlue,
	"magenta": color.FgMagenta,
	"cyan":    color.FgCyan,
	"white":   color.FgWhite,
}

// ColorHighlighter wraps matches in ANSI color codes.
type ColorHighlighter struct {
	color *color.Color
}

// NewColorHighlighter creates a bold highlighter in the named color.
// Unknown names fall back to red.
func NewColorHighlighter(name string) *ColorHighlighter {
	attr, ok := colorAttributes[name]
	if !ok {
		attr = color.FgRed
	}
	c := color.New(attr, color.Bold)
	// The caller has already decided to color; ignore the library's own
	// TTY and NO_COLOR detection.
	c.EnableColor()
	return &ColorHighlighter{color: c}
}

// Highlight returns s wrapped in color codes.
func (h *ColorHighlighter) Highlight(s string) string {
	return h.color.Sprint(s)
}

// PlainHighlighter leaves text unchanged.
type PlainHighlighter struct{}

// Highlight returns s.
func (PlainHighlighter) Highlight(s string) string {
	return s
}

// NewHighlighter returns the highlighter the color policy selects for out.
func NewHighlighter(mode config.ColorMode, colorName string, out io.Writer) Highlighter {
	if !ShouldColor(mode, out) {
		return PlainHighlighter{}
	}
	return NewColorHighlighter(colorName)
}

// ShouldColor applies the color policy:
//   - always: color
//   - never: plain
//   - auto: color only when out is a terminal, NO_COLOR is unset and TERM
//     is not "dumb"
func ShouldColor(mode config.ColorMode, out io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}

	f, ok := out.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
