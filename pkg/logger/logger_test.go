package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"off", LevelNone, false},
		{"loud", LevelInfo, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewJSON(&buf, LevelWarn)

	l.Info("dropped %d", 1)
	l.Warn("kept %s", "this")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines: %q", len(lines), buf.String())
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatal(err)
	}
	if entry["level"] != "warn" || entry["message"] != "kept this" || entry["component"] != component {
		t.Errorf("entry = %v", entry)
	}
}

func TestSetLevelAndOutput(t *testing.T) {
	var first, second bytes.Buffer
	l := New(&first, LevelError)
	l.Debug("hidden")
	if first.Len() != 0 {
		t.Errorf("debug written at error level: %q", first.String())
	}

	l.SetLevel(LevelDebug)
	l.SetOutput(&second)
	l.Debug("visible")
	if !strings.Contains(second.String(), "visible") {
		t.Errorf("output = %q", second.String())
	}
	if l.Level() != LevelDebug {
		t.Errorf("Level() = %v", l.Level())
	}
}

func TestDefaultLogger(t *testing.T) {
	prev := Default()
	defer SetDefault(prev)

	var buf bytes.Buffer
	SetDefault(New(&buf, LevelInfo))
	Info("hello %s", "world")
	Disable()
	Error("silenced")

	out := buf.String()
	if !strings.Contains(out, "hello world") || strings.Contains(out, "silenced") {
		t.Errorf("output = %q", out)
	}
}
