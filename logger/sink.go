package logger

import (
	"io"
	"os"
	"sync"
)

// Sink writes rendered lines to the terminal and, when configured, appends
// them to a file. The terminal write is synchronous. File appends run in the
// background and their failures are dropped.
type Sink struct {
	// serializes terminal writes so concurrent lines never interleave
	mu     sync.Mutex
	out    io.Writer
	colors *palette
	syslog bool

	fileMu sync.RWMutex
	file   string

	pending sync.WaitGroup
}

// NewSink returns a sink writing to out (os.Stdout when nil).
func NewSink(out io.Writer, mode ColorMode) *Sink {
	if out == nil {
		out = os.Stdout
	}
	colors := newPalette(out, mode)
	return &Sink{
		out:    out,
		colors: colors,
		syslog: colors == nil && shouldUseSyslogPrefix(),
	}
}

// SetFile sets the append destination; empty disables file output.
func (s *Sink) SetFile(path string) {
	s.fileMu.Lock()
	s.file = path
	s.fileMu.Unlock()
}

// File returns the append destination, or "" when disabled.
func (s *Sink) File() string {
	s.fileMu.RLock()
	defer s.fileMu.RUnlock()
	return s.file
}

// Write delivers line to every destination. It never fails.
func (s *Sink) Write(kind Kind, line string) {
	if path := s.File(); path != "" {
		s.pending.Add(1)
		go func() {
			defer s.pending.Done()
			_ = appendLine(path, line)
		}()
	}

	term := s.colors.render(kind, line)
	if s.syslog {
		term = syslogPrefixForKind(kind) + term
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = io.WriteString(s.out, term+"\n")
}

// Flush waits for background file appends to finish.
func (s *Sink) Flush() {
	s.pending.Wait()
}

// Close flushes pending appends. No file handle is held between writes,
// so there is nothing else to release.
func (s *Sink) Close() error {
	s.Flush()
	return nil
}

// appendLine opens path for appending, writes one line and closes it.
func appendLine(path, line string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(f, line+"\n"); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func shouldUseSyslogPrefix() bool {
	return os.Getenv("JOURNAL_STREAM") != ""
}

func syslogPrefixForKind(kind Kind) string {
	switch kind {
	case KindError:
		return "<3>"
	case KindWarn:
		return "<4>"
	case KindInfo, KindLog, KindHighlight:
		return "<6>"
	case KindDebug:
		return "<7>"
	default:
		return ""
	}
}
