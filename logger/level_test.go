package logger

import (
	"testing"

	"github.com/pkg/errors"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"error":   ErrorLevel,
		"ERROR":   ErrorLevel,
		"0":       ErrorLevel,
		"Warn":    WarnLevel,
		"warning": WarnLevel,
		"1":       WarnLevel,
		" info ":  InfoLevel,
		"2":       InfoLevel,
		"DEBUG":   DebugLevel,
		"3":       DebugLevel,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}

	for _, bad := range []string{"", "VERBOSE", "4", "-1", "trace"} {
		if _, err := ParseLevel(bad); !errors.Is(err, ErrInvalidLevel) {
			t.Fatalf("ParseLevel(%q) error = %v, want ErrInvalidLevel", bad, err)
		}
	}
}

func TestLevelString(t *testing.T) {
	want := []string{"ERROR", "WARN", "INFO", "DEBUG"}
	for i, l := range AllLevels() {
		if l.String() != want[i] {
			t.Fatalf("Level(%d).String() = %q, want %q", i, l.String(), want[i])
		}
	}
	if got := Level(7).String(); got != "LEVEL(7)" {
		t.Fatalf("out of range String() = %q", got)
	}
}

func TestLevelAdmits(t *testing.T) {
	if !DebugLevel.Admits(ErrorLevel) || !DebugLevel.Admits(DebugLevel) {
		t.Fatalf("DEBUG should admit everything")
	}
	if ErrorLevel.Admits(WarnLevel) {
		t.Fatalf("ERROR should admit only ERROR")
	}
}

func TestKindTags(t *testing.T) {
	cases := map[Kind]string{
		KindError:     "ERROR",
		KindWarn:      "WARN",
		KindInfo:      "INFO",
		KindDebug:     "DEBUG",
		KindLog:       "LOG",
		KindHighlight: "*****",
	}
	for k, want := range cases {
		if got := k.tag(); got != want {
			t.Fatalf("Kind(%d).tag() = %q, want %q", k, got, want)
		}
		if len(k.tag()) > tagWidth {
			t.Fatalf("tag %q wider than %d", k.tag(), tagWidth)
		}
	}
	if _, gated := KindLog.level(); gated {
		t.Fatalf("LOG must not be gated")
	}
	if _, gated := KindHighlight.level(); gated {
		t.Fatalf("highlight must not be gated")
	}
}
