package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// ErrNoPaths is returned when options carry no search paths.
var ErrNoPaths = errors.New("at least one path is required")

// HighlightColors lists the accepted highlight_color names.
var HighlightColors = []string{"red", "green", "yellow", "blue", "magenta", "cyan", "white"}

// Validate checks that options are complete enough to run a search.
func (o Options) Validate() error {
	if len(o.Paths) == 0 {
		return ErrNoPaths
	}
	return nil
}

// Load reads and validates a settings file.
func Load(_ context.Context, path string) (*Settings, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided settings path is expected
	if err != nil {
		return nil, fmt.Errorf("reading settings file: %w", err)
	}

	s := DefaultSettings()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parsing settings file: %w", err)
	}

	s.applyEnvironmentOverrides()

	if err := Validate(s); err != nil {
		return nil, fmt.Errorf("validating settings: %w", err)
	}

	return s, nil
}

// Resolve returns the effective settings. An explicit path wins over
// $GREP_CONFIG; with neither, defaults plus environment overrides apply.
func Resolve(ctx context.Context, path string) (*Settings, error) {
	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	if path != "" {
		return Load(ctx, path)
	}

	s := DefaultSettings()
	s.applyEnvironmentOverrides()
	if err := Validate(s); err != nil {
		return nil, fmt.Errorf("validating settings: %w", err)
	}
	return s, nil
}

// Validate checks settings for errors and fills empty fields with defaults.
func Validate(s *Settings) error {
	switch s.Color {
	case "":
		s.Color = DefaultColorMode
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color: invalid mode %q (must be auto, always, or never)", s.Color)
	}

	if s.HighlightColor == "" {
		s.HighlightColor = DefaultHighlightColor
	}
	s.HighlightColor = strings.ToLower(s.HighlightColor)
	if !isHighlightColor(s.HighlightColor) {
		return fmt.Errorf("highlight_color: unknown color %q (must be one of %s)",
			s.HighlightColor, strings.Join(HighlightColors, ", "))
	}

	if s.LogLevel == "" {
		s.LogLevel = DefaultLogLevel
	}
	if _, err := logrus.ParseLevel(s.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}

	return nil
}

func isHighlightColor(name string) bool {
	for _, c := range HighlightColors {
		if c == name {
			return true
		}
	}
	return false
}
