package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelWarn, &buf)

	l.Debug("debug message", nil)
	l.Info("info message", nil)
	l.Warn("warn message", nil)
	l.Error("error message", nil, errors.New("boom"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 entries at warn level, got %d: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "warn message") {
		t.Errorf("first entry should be the warning: %s", lines[0])
	}
	if !strings.Contains(lines[1], "boom") {
		t.Errorf("error entry should carry the error string: %s", lines[1])
	}
}

func TestLoggerStructuredOutput(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelDebug, &buf)

	l.Info("fetched listing", Fields{"events": 12, "url": "https://example.com/events"})

	var entry LogEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if entry.Level != "INFO" {
		t.Errorf("unexpected level: %s", entry.Level)
	}
	if entry.Message != "fetched listing" {
		t.Errorf("unexpected message: %s", entry.Message)
	}
	if entry.Fields["url"] != "https://example.com/events" {
		t.Errorf("unexpected fields: %+v", entry.Fields)
	}
	if entry.Timestamp == "" {
		t.Error("timestamp should be set")
	}
}
