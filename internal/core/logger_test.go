package core

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	cases := map[string]LogLevel{
		"debug":   LogLevelDebug,
		"INFO":    LogLevelInfo,
		"warning": LogLevelWarn,
		" error ": LogLevelError,
		"bogus":   LogLevelInfo,
	}
	for in, want := range cases {
		if got := ParseLogLevel(in); got != want {
			t.Fatalf("ParseLogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestStdLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerTo(log.New(&buf, "", 0), "warn")
	l.Debugf("hidden %d", 1)
	l.Infof("hidden %d", 2)
	l.Warnf("tick took %dms", 40)
	l.Errorf("boom")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("messages below warn leaked: %q", out)
	}
	if !strings.Contains(out, "[WARN] tick took 40ms") {
		t.Fatalf("missing warn line: %q", out)
	}
	if !strings.Contains(out, "[ERROR] boom") {
		t.Fatalf("missing error line: %q", out)
	}
	var _ Logger = NopLogger{}
	var _ Logger = l
}
