package config

import (
	"os"
	"strings"
)

// Default values for settings.
const (
	DefaultColorMode      = ColorAuto
	DefaultHighlightColor = "red"
	DefaultLogLevel       = "warn"
)

// Environment variable names.
const (
	EnvConfigFile = "GREP_CONFIG"
	EnvColorMode  = "GREP_COLOR"
	EnvLogLevel   = "GREP_LOG_LEVEL"
)

// DefaultSettings returns settings used when no settings file is present.
func DefaultSettings() *Settings {
	return &Settings{
		Color:          DefaultColorMode,
		HighlightColor: DefaultHighlightColor,
		LogLevel:       DefaultLogLevel,
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the settings.
func (s *Settings) applyEnvironmentOverrides() {
	if mode := os.Getenv(EnvColorMode); mode != "" {
		s.Color = ColorMode(strings.ToLower(mode))
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		s.LogLevel = level
	}
}
