package logger

import (
	"log"
	"strings"
	"sync"
	"sync/atomic"
)

var (
	defaultSettings     *Settings
	defaultSettingsOnce sync.Once

	// std is the Logger behind the package-level functions.
	std atomic.Pointer[Logger]
)

// DefaultSettings returns the process-wide settings used by the
// package-level functions and by New(nil, ...). They are read once from the
// LOGGER_* environment variables; output goes to os.Stdout.
func DefaultSettings() *Settings {
	defaultSettingsOnce.Do(func() {
		defaultSettings = NewSettings(defaultConfig())
	})
	return defaultSettings
}

// defaultConfig is ConfigFromEnv with malformed variables ignored.
func defaultConfig() Config {
	cfg, err := ConfigFromEnv()
	if err != nil {
		return Config{}
	}
	return cfg
}

// Default returns the Logger the package-level functions write through.
func Default() *Logger {
	if l := std.Load(); l != nil {
		return l
	}
	std.CompareAndSwap(nil, New(DefaultSettings(), ""))
	return std.Load()
}

// Create returns a Logger with label bound to the default settings.
func Create(label string) *Logger {
	return New(DefaultSettings(), label)
}

// BindAsGlobalConsole makes l the target of the package-level functions
// (Log, Info, Warn, Error, Debug, Highlight and their f variants) and
// routes the standard library's default log.Logger through l.Log.
func (l *Logger) BindAsGlobalConsole() *Logger {
	std.Store(l)
	log.SetFlags(0)
	log.SetPrefix("")
	log.SetOutput(stdlogWriter{l})
	return l
}

// stdlogWriter adapts Logger.Log to io.Writer for the log package.
type stdlogWriter struct {
	l *Logger
}

func (w stdlogWriter) Write(p []byte) (int, error) {
	w.l.Log(strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}

// --- Package-level functions (write through Default) ---

// Error logs args at ErrorLevel on the default Logger.
func Error(args ...any) { Default().Error(args...) }

// Warn logs args at WarnLevel on the default Logger.
func Warn(args ...any) { Default().Warn(args...) }

// Info logs args at InfoLevel on the default Logger.
func Info(args ...any) { Default().Info(args...) }

// Debug logs args at DebugLevel on the default Logger.
func Debug(args ...any) { Default().Debug(args...) }

// Log logs args with the LOG tag on the default Logger.
func Log(args ...any) { Default().Log(args...) }

// Highlight logs args with the ***** tag on the default Logger.
func Highlight(args ...any) { Default().Highlight(args...) }

func Errorf(format string, args ...any) { Default().Errorf(format, args...) }
func Warnf(format string, args ...any) { Default().Warnf(format, args...) }
func Infof(format string, args ...any) { Default().Infof(format, args...) }
func Debugf(format string, args ...any) { Default().Debugf(format, args...) }
func Logf(format string, args ...any) { Default().Logf(format, args...) }
func Highlightf(format string, args ...any) { Default().Highlightf(format, args...) }
