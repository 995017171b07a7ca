package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestMake_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	l := Make(&buf, WithLevel(LevelWarn), WithFormat(FormatJSON), WithPretty(false))

	l.Debug("dropped")
	l.Info("dropped")
	l.Warn("kept warn")
	l.Error("kept error")

	output := buf.String()

	for _, dropped := range []string{"dropped"} {
		if strings.Contains(output, dropped) {
			t.Errorf("output contains filtered message %q: %s", dropped, output)
		}
	}

	for _, kept := range []string{"kept warn", "kept error"} {
		if !strings.Contains(output, kept) {
			t.Errorf("output missing message %q: %s", kept, output)
		}
	}
}

func TestMake_TraceLevel(t *testing.T) {
	var buf bytes.Buffer

	l := Make(&buf, WithLevel(LevelTrace), WithFormat(FormatJSON), WithPretty(false))

	l.Trace("trace message")

	output := buf.String()
	if !strings.Contains(output, "trace message") {
		t.Fatalf("trace message not logged: %s", output)
	}

	// Level renders as "TRACE", not slog's "DEBUG-4".
	if !strings.Contains(output, "TRACE") {
		t.Errorf("output missing TRACE level: %s", output)
	}
}

func TestLogger_ZeroValueDiscards(t *testing.T) {
	var l Logger

	// Must not panic.
	l.Info("nothing", slog.String("key", "value"))
	l.Error("nothing")

	if l.Level() != DefaultLevel {
		t.Errorf("zero logger Level() = %v, want %v", l.Level(), DefaultLevel)
	}

	if l.Format() != DefaultFormat {
		t.Errorf("zero logger Format() = %v, want %v", l.Format(), DefaultFormat)
	}
}

func TestLogger_WithAttrs(t *testing.T) {
	var buf bytes.Buffer

	l := Make(&buf, WithFormat(FormatJSON), WithPretty(false))
	l = l.With(slog.String("component", "engine"))

	l.Info("message")

	if !strings.Contains(buf.String(), `"component":"engine"`) {
		t.Errorf("output missing wrapped attribute: %s", buf.String())
	}
}

func TestLogger_WrapOverrides(t *testing.T) {
	var buf bytes.Buffer

	l := Make(&buf, WithLevel(LevelError), WithFormat(FormatJSON), WithPretty(false))

	wrapped := l.Wrap(WithLevel(LevelDebug))

	wrapped.Debug("visible")

	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("wrapped logger dropped message: %s", buf.String())
	}

	if l.Level() != LevelError {
		t.Errorf("Wrap mutated the original logger level")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"trace", LevelTrace},
		{"TRACE", LevelTrace},
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"bogus", DefaultLevel},
		{"", DefaultLevel},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
	}{
		{"json", FormatJSON},
		{"text", FormatText},
		{" TEXT ", FormatText},
		{"bogus", DefaultFormat},
	}

	for _, tt := range tests {
		if got := ParseFormat(tt.input); got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestWithTimeLayout_NoneDisablesTimestamps(t *testing.T) {
	var buf bytes.Buffer

	l := Make(&buf,
		WithFormat(FormatJSON),
		WithPretty(false),
		WithTimeLayout("none"),
	)

	l.Info("message")

	if strings.Contains(buf.String(), `"time"`) {
		t.Errorf("output contains timestamp: %s", buf.String())
	}
}
