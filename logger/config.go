package logger

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidColorMode is returned by ParseColorMode for unknown modes.
var ErrInvalidColorMode = errors.New("invalid color mode")

// ColorMode controls ANSI styling of terminal output.
type ColorMode int

const (
	// ColorAuto styles output only when it is a terminal.
	ColorAuto ColorMode = iota
	// ColorAlways styles output regardless of where it goes.
	ColorAlways
	// ColorNever writes plain text.
	ColorNever
)

// ParseColorMode parses "auto", "always"/"true"/"on" or "never"/"false"/"off".
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ColorAuto, nil
	case "always", "true", "on", "1":
		return ColorAlways, nil
	case "never", "false", "off", "0":
		return ColorNever, nil
	}
	return ColorAuto, errors.Wrapf(ErrInvalidColorMode, "parse %q", s)
}

// Config defines the initial shared settings.
type Config struct {
	// Level is the initial threshold. An out-of-range value is treated as
	// nil; use Settings.SetLevel to have it rejected.
	// Default: nil (DebugLevel)
	Level *Level
	// LabelPadWidth is the minimum width of the [label] segment.
	// Default: 0 (no padding)
	LabelPadWidth int
	// FilePath appends every line to this file; empty disables file logging.
	// Default: "" (file logging disabled)
	FilePath string
	// Color controls ANSI styling of terminal lines. Files are always plain.
	// Default: ColorAuto
	Color ColorMode
	// Output is the terminal sink.
	// Default: nil (os.Stdout)
	Output io.Writer
}

// Environment variables read by ConfigFromEnv.
const (
	EnvLevel      = "LOGGER_LEVEL"
	EnvFile       = "LOGGER_FILE"
	EnvLabelWidth = "LOGGER_LABEL_WIDTH"
	EnvColor      = "LOGGER_COLOR"
)

// ConfigFromEnv builds a Config from LOGGER_* environment variables.
// Unset variables keep their defaults. A malformed label width falls back to 0.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if v, ok := os.LookupEnv(EnvLevel); ok && strings.TrimSpace(v) != "" {
		lvl, err := ParseLevel(v)
		if err != nil {
			return Config{}, errors.Wrap(err, EnvLevel)
		}
		cfg.Level = &lvl
	}
	cfg.FilePath = os.Getenv(EnvFile)
	if v, ok := os.LookupEnv(EnvLabelWidth); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n > 0 {
			cfg.LabelPadWidth = n
		}
	}
	if v, ok := os.LookupEnv(EnvColor); ok {
		mode, err := ParseColorMode(v)
		if err != nil {
			return Config{}, errors.Wrap(err, EnvColor)
		}
		cfg.Color = mode
	}
	return cfg, nil
}
