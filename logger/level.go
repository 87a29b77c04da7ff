package logger

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidLevel is returned when a value does not map to a known severity.
var ErrInvalidLevel = errors.New("invalid log level")

// Level defines log severity. Lower values are more important; a threshold
// admits every level whose value is less than or equal to it.
type Level int

const (
	// ErrorLevel admits only errors.
	ErrorLevel Level = iota
	// WarnLevel admits warnings and errors.
	WarnLevel
	// InfoLevel admits informational messages and above.
	InfoLevel
	// DebugLevel admits everything.
	DebugLevel
)

var levelNames = [...]string{"ERROR", "WARN", "INFO", "DEBUG"}

// AllLevels returns all supported levels, most important first.
func AllLevels() []Level {
	return []Level{ErrorLevel, WarnLevel, InfoLevel, DebugLevel}
}

// Valid reports whether l is one of the known levels.
func (l Level) Valid() bool {
	return l >= ErrorLevel && l <= DebugLevel
}

func (l Level) String() string {
	if !l.Valid() {
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
	return levelNames[l]
}

// Admits reports whether a message at level x passes threshold l.
func (l Level) Admits(x Level) bool {
	return x <= l
}

// ParseLevel parses a level name or its numeric value (0-3).
// Names are case-insensitive; WARNING is accepted for WARN.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ERROR", "0":
		return ErrorLevel, nil
	case "WARN", "WARNING", "1":
		return WarnLevel, nil
	case "INFO", "2":
		return InfoLevel, nil
	case "DEBUG", "3":
		return DebugLevel, nil
	}
	return 0, errors.Wrapf(ErrInvalidLevel, "parse %q", s)
}

// Kind selects the tag and styling of an emitted line. The four severities
// are gated by the threshold; KindLog and KindHighlight never are.
type Kind int

const (
	KindError Kind = iota
	KindWarn
	KindInfo
	KindDebug
	KindLog
	KindHighlight
)

// tagWidth is the width of the longest tag ("ERROR", "*****").
const tagWidth = 5

func (k Kind) tag() string {
	switch k {
	case KindError, KindWarn, KindInfo, KindDebug:
		return Level(k).String()
	case KindLog:
		return "LOG"
	case KindHighlight:
		return "*****"
	}
	return "?"
}

// level returns the severity a kind is gated on, and false for ungated kinds.
func (k Kind) level() (Level, bool) {
	if k >= KindError && k <= KindDebug {
		return Level(k), true
	}
	return 0, false
}
