// Package config provides the search options and the optional settings file for grep.
package config

// Options is the immutable set of choices for one invocation.
// It is built once from the command line and passed by value.
type Options struct {
	// Pattern is the literal text searched for. An explicitly supplied
	// empty pattern is valid and matches every line.
	Pattern string

	// Paths lists the files and directories to search.
	Paths []string

	IgnoreCase   bool // -i
	LineNumbers  bool // -n
	Invert       bool // -v
	Recursive    bool // -r
	ShowFilename bool // -f
	Colorize     bool // -c
}

// ColorMode decides when highlight codes are emitted.
type ColorMode string

const (
	// ColorAuto highlights only when stdout is a color-capable terminal.
	ColorAuto ColorMode = "auto"
	// ColorAlways highlights regardless of the output device.
	ColorAlways ColorMode = "always"
	// ColorNever never highlights, even with -c.
	ColorNever ColorMode = "never"
)

// Settings is the optional settings file structure loaded from YAML.
// Settings affect presentation and diagnostics, never match semantics.
type Settings struct {
	// Color is the highlight policy (auto, always, never).
	Color ColorMode `yaml:"color"`

	// HighlightColor names the foreground color for matches.
	HighlightColor string `yaml:"highlight_color"`

	// LogLevel is the minimum level for diagnostics on stderr.
	LogLevel string `yaml:"log_level"`

	// LogFile, when set, additionally receives diagnostics (rotated).
	LogFile string `yaml:"log_file,omitempty"`
}
