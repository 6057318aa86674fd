package app

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(LoggerConfig{Level: LogLevelWarn, Output: &buf})

	log.Debug("hidden")
	log.Info("hidden")
	log.Warn("shown")
	log.Error("also shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("low severity messages leaked: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "[ERROR]") {
		t.Errorf("missing expected output: %q", out)
	}
}

func TestLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(LoggerConfig{Level: LogLevelDebug, Output: &buf, Prefix: "textobj"})

	log.WithComponent("watch").WithField("path", "a.toml").Info("reload")

	out := buf.String()
	for _, want := range []string{"textobj", "component=watch", "path=a.toml", "reload"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LogLevelDebug},
		{"WARN", LogLevelWarn},
		{"warning", LogLevelWarn},
		{"error", LogLevelError},
		{"bogus", LogLevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLogLevel(tt.in); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNullLoggerSilent(t *testing.T) {
	var buf bytes.Buffer
	NullLogger.SetOutput(&buf)
	NullLogger.Error("nothing")
	if buf.Len() != 0 {
		t.Errorf("null logger wrote %q", buf.String())
	}
}
