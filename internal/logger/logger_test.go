package logger

import (
	"encoding/json"
	"errors"
	"os"
	"testing"
)

func TestLogger_Log(t *testing.T) {
	tmpFile, err := os.CreateTemp("", "log-test-*")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpFile.Name()) // nolint:errcheck
	defer tmpFile.Close()           // nolint:errcheck

	logger := New(LevelInfo, tmpFile)

	tests := []struct {
		name    string
		level   Level
		message string
		fields  Fields
		err     error
		want    bool // should log
	}{
		{
			name:    "info message",
			level:   LevelInfo,
			message: "page fetched",
			fields:  Fields{"month": "July", "day": 4},
			want:    true,
		},
		{
			name:    "debug below threshold",
			level:   LevelDebug,
			message: "resolving link",
			want:    false, // won't log (below INFO)
		},
		{
			name:    "error with err",
			level:   LevelError,
			message: "page fetch failed",
			err:     errors.New("connection refused"),
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before, _ := tmpFile.Seek(0, 2)

			logger.log(tt.level, tt.message, tt.fields, tt.err)

			after, _ := tmpFile.Seek(0, 2)
			logged := after > before

			if logged != tt.want {
				t.Errorf("log() logged = %v, want %v", logged, tt.want)
			}
		})
	}
}

func TestLogEntry_JSON(t *testing.T) {
	entry := LogEntry{
		Timestamp: "2026-01-01T00:00:00Z",
		Level:     "WARN",
		Message:   "skipping entry",
		Fields:    Fields{"reason": "bad year token"},
	}

	data, err := json.Marshal(entry)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded LogEntry
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if decoded.Message != entry.Message {
		t.Errorf("message = %q, want %q", decoded.Message, entry.Message)
	}
	if decoded.Level != entry.Level {
		t.Errorf("level = %q, want %q", decoded.Level, entry.Level)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"verbose", LevelInfo}, // unknown defaults to info
		{"", LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestMetrics_Counters(t *testing.T) {
	m := NewMetrics()

	m.IncrCounter("wiki.calls")
	m.IncrCounter("wiki.calls")
	m.AddCounter("wiki.calls", 3)
	m.IncrCounter("events.extracted")

	snapshot := m.GetSnapshot()

	if snapshot["wiki.calls"] != 5 {
		t.Errorf("wiki.calls = %d, want 5", snapshot["wiki.calls"])
	}
	if snapshot["events.extracted"] != 1 {
		t.Errorf("events.extracted = %d, want 1", snapshot["events.extracted"])
	}

	// Snapshot is a copy; later updates must not leak into it.
	m.IncrCounter("wiki.calls")
	if snapshot["wiki.calls"] != 5 {
		t.Error("snapshot mutated by a later counter update")
	}
}
