package logger

import (
	"sync"

	"github.com/pkg/errors"
)

// Settings is the state shared by every Logger created from it: the
// severity threshold, the label pad width and the sink (terminal plus
// optional file). A change made through any Logger is seen by all of them.
// Concurrent setters resolve last-write-wins.
type Settings struct {
	mu            sync.RWMutex
	threshold     Level
	labelPadWidth int

	sink *Sink
}

// NewSettings returns settings initialized from cfg.
func NewSettings(cfg Config) *Settings {
	s := &Settings{
		threshold: DebugLevel,
		sink:      NewSink(cfg.Output, cfg.Color),
	}
	if cfg.Level != nil && cfg.Level.Valid() {
		s.threshold = *cfg.Level
	}
	s.SetLabelPadWidth(cfg.LabelPadWidth)
	s.sink.SetFile(cfg.FilePath)
	return s
}

// Level returns the current threshold.
func (s *Settings) Level() Level {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.threshold
}

// SetLevel replaces the threshold. Unknown levels are rejected and leave
// the threshold unchanged.
func (s *Settings) SetLevel(l Level) error {
	if !l.Valid() {
		return errors.Wrapf(ErrInvalidLevel, "level %d out of range", int(l))
	}
	s.mu.Lock()
	s.threshold = l
	s.mu.Unlock()
	return nil
}

// SetLevelName parses name with ParseLevel and applies it.
func (s *Settings) SetLevelName(name string) error {
	l, err := ParseLevel(name)
	if err != nil {
		return err
	}
	return s.SetLevel(l)
}

// SetDebugging maps the legacy on/off switch onto the threshold:
// true is DebugLevel, false is InfoLevel.
//
// Deprecated: use SetLevel.
func (s *Settings) SetDebugging(on bool) {
	l := InfoLevel
	if on {
		l = DebugLevel
	}
	_ = s.SetLevel(l)
}

// Enabled reports whether messages at level l pass the threshold.
func (s *Settings) Enabled(l Level) bool {
	return s.Level().Admits(l)
}

// LabelPadWidth returns the minimum width of the label segment.
func (s *Settings) LabelPadWidth() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.labelPadWidth
}

// SetLabelPadWidth sets the minimum label width. Zero or negative disables padding.
func (s *Settings) SetLabelPadWidth(width int) {
	if width < 0 {
		width = 0
	}
	s.mu.Lock()
	s.labelPadWidth = width
	s.mu.Unlock()
}

// OutputFile returns the append destination, or "" when disabled.
func (s *Settings) OutputFile() string {
	return s.sink.File()
}

// SetOutputFile sets the append destination; empty disables file output.
func (s *Settings) SetOutputFile(path string) {
	s.sink.SetFile(path)
}

// Sink returns the sink lines are written to.
func (s *Settings) Sink() *Sink {
	return s.sink
}

// Flush waits for background file appends to finish.
func (s *Settings) Flush() {
	s.sink.Flush()
}
