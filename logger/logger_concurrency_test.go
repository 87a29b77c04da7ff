package logger

import (
	"bytes"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// TestConcurrency_MultipleLevels verifies that concurrent emission at
// different levels never produces garbled lines.
func TestConcurrency_MultipleLevels(t *testing.T) {
	var out bytes.Buffer
	s := NewSettings(Config{Output: &out, Color: ColorNever})
	root := New(s, "")

	const numGoroutines = 200
	const messagesPerGoroutine = 50

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			l := root.Create("worker")
			for j := 0; j < messagesPerGoroutine; j++ {
				l.Debugf("goroutine-%d-debug-%d", id, j)
				l.Infof("goroutine-%d-info-%d", id, j)
				l.Warnf("goroutine-%d-warn-%d", id, j)
				l.Errorf("goroutine-%d-error-%d", id, j)
			}
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	expectedLines := numGoroutines * messagesPerGoroutine * 4
	if len(lines) != expectedLines {
		t.Fatalf("expected %d log lines, got %d", expectedLines, len(lines))
	}

	for i, line := range lines {
		hasLevelTag := strings.Contains(line, "[DEBUG] [worker]") ||
			strings.Contains(line, "[INFO ] [worker]") ||
			strings.Contains(line, "[WARN ] [worker]") ||
			strings.Contains(line, "[ERROR] [worker]")
		if !hasLevelTag || strings.Count(line, "goroutine-") != 1 {
			t.Fatalf("line %d appears garbled: %q", i, line)
		}
	}
}

// TestConcurrency_FileAppends verifies every admitted line reaches the file
// once appends have been flushed.
func TestConcurrency_FileAppends(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "concurrent.log")
	var out bytes.Buffer
	s := NewSettings(Config{Output: &out, Color: ColorNever, FilePath: logPath})
	root := New(s, "")

	const numGoroutines = 50
	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			root.Info("concurrent-log", "goroutine_id", id)
		}(i)
	}
	wg.Wait()
	s.Flush()

	log := readLog(t, logPath)
	if got := strings.Count(log, "concurrent-log"); got != numGoroutines {
		t.Fatalf("expected %d file lines, got %d: %q", numGoroutines, got, log)
	}
}

// TestConcurrency_SettersLastWriteWins exercises concurrent threshold changes
// alongside emission; the final threshold must be one of the written values.
func TestConcurrency_SettersLastWriteWins(t *testing.T) {
	var out bytes.Buffer
	s := NewSettings(Config{Output: &out, Color: ColorNever})
	root := New(s, "")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(lvl Level) {
			defer wg.Done()
			_ = root.SetLevel(lvl)
			root.SetLabelPadWidth(int(lvl))
		}(Level(i % 4))
		go func() {
			defer wg.Done()
			root.Create("x").Info("tick")
		}()
	}
	wg.Wait()

	if !root.Level().Valid() {
		t.Fatalf("threshold left invalid: %v", root.Level())
	}
}
