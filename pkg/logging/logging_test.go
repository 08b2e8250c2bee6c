package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{" error ", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLevelFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	if got := LevelFromEnv(); got != slog.LevelError {
		t.Errorf("expected ERROR, got %v", got)
	}
}

func TestConfigure(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	Configure(Options{Level: slog.LevelWarn, Output: &buf})

	slog.Info("hidden")
	slog.Warn("shown", "recipe", "Soup")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("INFO should be filtered at WARN level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "recipe=Soup") {
		t.Errorf("expected warning with attributes, got %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("expected no color codes for a buffer, got %q", out)
	}
}
