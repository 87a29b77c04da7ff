package logger

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-runewidth"
)

// TimeLayout is the timestamp layout at the start of every line.
const TimeLayout = "2006/01/02 15:04:05"

// now is replaced in tests.
var now = time.Now

// Logger renders one line per call and hands it to the shared sink when the
// call passes the shared threshold. Loggers own only their label; the
// threshold, label width and destinations belong to Settings.
type Logger struct {
	settings *Settings

	mu    sync.RWMutex
	label string
}

// New returns a Logger bound to s with the given label (may be empty).
func New(s *Settings, label string) *Logger {
	if s == nil {
		s = DefaultSettings()
	}
	return &Logger{settings: s, label: label}
}

// Create returns a new Logger with label that shares l's settings.
func (l *Logger) Create(label string) *Logger {
	return New(l.settings, label)
}

// Settings returns the shared settings l is bound to.
func (l *Logger) Settings() *Settings {
	return l.settings
}

// SetLabel sets the label; empty clears it.
func (l *Logger) SetLabel(label string) *Logger {
	l.mu.Lock()
	l.label = label
	l.mu.Unlock()
	return l
}

// Label returns the label.
func (l *Logger) Label() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.label
}

// --- Shared settings (affect every Logger bound to the same Settings) ---

// SetLevel sets the shared threshold.
func (l *Logger) SetLevel(level Level) error {
	return l.settings.SetLevel(level)
}

// SetLevelName sets the shared threshold from a case-insensitive name or 0-3.
func (l *Logger) SetLevelName(name string) error {
	return l.settings.SetLevelName(name)
}

// SetDebugging toggles debug output for every Logger sharing l's settings.
//
// Deprecated: use SetLevel.
func (l *Logger) SetDebugging(on bool) *Logger {
	l.settings.SetDebugging(on)
	return l
}

// Level returns the shared threshold.
func (l *Logger) Level() Level {
	return l.settings.Level()
}

// LevelName returns the name of the shared threshold.
func (l *Logger) LevelName() string {
	return l.settings.Level().String()
}

// IsDebugEnabled reports whether the shared threshold is DebugLevel.
func (l *Logger) IsDebugEnabled() bool {
	return l.settings.Level() == DebugLevel
}

// SetLabelPadWidth sets the shared minimum label width; 0 disables padding.
func (l *Logger) SetLabelPadWidth(width int) *Logger {
	l.settings.SetLabelPadWidth(width)
	return l
}

// SetOutputFile sets the shared append destination; empty disables it.
func (l *Logger) SetOutputFile(path string) *Logger {
	l.settings.SetOutputFile(path)
	return l
}

// --- Emission ---

// Emit renders values as one line of the given kind and writes it, unless
// kind is a severity the threshold rejects.
func (l *Logger) Emit(kind Kind, values ...Value) *Logger {
	if level, gated := kind.level(); gated && !l.settings.Enabled(level) {
		return l
	}
	l.settings.sink.Write(kind, l.render(kind, values))
	return l
}

func (l *Logger) emitArgs(kind Kind, args []any) *Logger {
	if level, gated := kind.level(); gated && !l.settings.Enabled(level) {
		return l
	}
	return l.Emit(kind, valuesOf(args)...)
}

func (l *Logger) emitf(kind Kind, format string, args []any) *Logger {
	if level, gated := kind.level(); gated && !l.settings.Enabled(level) {
		return l
	}
	return l.Emit(kind, String(fmt.Sprintf(format, args...)))
}

// render builds "<timestamp> [TAG] [label] values...".
func (l *Logger) render(kind Kind, values []Value) string {
	var b strings.Builder
	b.WriteString(now().Format(TimeLayout))
	b.WriteString(" [")
	b.WriteString(runewidth.FillRight(kind.tag(), tagWidth))
	b.WriteString("]")

	if label := l.Label(); label != "" {
		b.WriteString(" [")
		if width := l.settings.LabelPadWidth(); width > 0 {
			label = runewidth.FillRight(label, width)
		}
		b.WriteString(label)
		b.WriteString("]")
	}

	if msg := joinValues(values); len(values) > 0 {
		b.WriteString(" ")
		b.WriteString(msg)
	}
	return b.String()
}

// Error logs args at ErrorLevel.
func (l *Logger) Error(args ...any) *Logger { return l.emitArgs(KindError, args) }

// Warn logs args at WarnLevel.
func (l *Logger) Warn(args ...any) *Logger { return l.emitArgs(KindWarn, args) }

// Info logs args at InfoLevel.
func (l *Logger) Info(args ...any) *Logger { return l.emitArgs(KindInfo, args) }

// Debug logs args at DebugLevel.
func (l *Logger) Debug(args ...any) *Logger { return l.emitArgs(KindDebug, args) }

// Log logs args with the LOG tag. It is never filtered.
func (l *Logger) Log(args ...any) *Logger { return l.emitArgs(KindLog, args) }

// Highlight logs args with the ***** tag, styled to stand out. It is never filtered.
func (l *Logger) Highlight(args ...any) *Logger { return l.emitArgs(KindHighlight, args) }

// Silly is an alias for Highlight.
func (l *Logger) Silly(args ...any) *Logger { return l.emitArgs(KindHighlight, args) }

// Errorf logs a message formatted with fmt.Sprintf at ErrorLevel.
func (l *Logger) Errorf(format string, args ...any) *Logger {
	return l.emitf(KindError, format, args)
}

// Warnf logs a message formatted with fmt.Sprintf at WarnLevel.
func (l *Logger) Warnf(format string, args ...any) *Logger {
	return l.emitf(KindWarn, format, args)
}

// Infof logs a message formatted with fmt.Sprintf at InfoLevel.
func (l *Logger) Infof(format string, args ...any) *Logger {
	return l.emitf(KindInfo, format, args)
}

// Debugf logs a message formatted with fmt.Sprintf at DebugLevel.
func (l *Logger) Debugf(format string, args ...any) *Logger {
	return l.emitf(KindDebug, format, args)
}

// Logf logs a message formatted with fmt.Sprintf with the LOG tag.
func (l *Logger) Logf(format string, args ...any) *Logger {
	return l.emitf(KindLog, format, args)
}

// Highlightf logs a message formatted with fmt.Sprintf with the ***** tag.
func (l *Logger) Highlightf(format string, args ...any) *Logger {
	return l.emitf(KindHighlight, format, args)
}
