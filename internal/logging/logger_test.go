// Package logging provides unit tests for the structured logger.
package logging

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
)

func decodeEntries(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var e map[string]interface{}
		if err := json.Unmarshal([]byte(line), &e); err != nil {
			t.Fatalf("Failed to decode log line %q: %v", line, err)
		}
		entries = append(entries, e)
	}
	return entries
}

func TestLoggerWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelDebug)

	logger.Info("note created", Fields{"note_id": "abc", "user_id": "u1"})

	entries := decodeEntries(t, &buf)
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e["level"] != "INFO" {
		t.Errorf("Expected level INFO, got %v", e["level"])
	}
	if e["message"] != "note created" {
		t.Errorf("Expected message 'note created', got %v", e["message"])
	}
	fields, ok := e["fields"].(map[string]interface{})
	if !ok {
		t.Fatalf("Expected fields object, got %T", e["fields"])
	}
	if fields["note_id"] != "abc" {
		t.Errorf("Expected note_id abc, got %v", fields["note_id"])
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelWarn)

	logger.Debug("not written")
	logger.Info("not written either")
	logger.Warn("written")
	logger.Error("also written", fmt.Errorf("boom"))

	entries := decodeEntries(t, &buf)
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0]["level"] != "WARN" {
		t.Errorf("Expected first entry WARN, got %v", entries[0]["level"])
	}
	if entries[1]["error"] != "boom" {
		t.Errorf("Expected error field 'boom', got %v", entries[1]["error"])
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   LevelDebug,
		"WARN":    LevelWarn,
		"Error":   LevelError,
		"info":    LevelInfo,
		"":        LevelInfo,
		"verbose": LevelInfo,
	}
	for input, want := range cases {
		if got := ParseLevel(input); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestLoggerMergesFields(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelDebug)

	logger.Info("merged", Fields{"a": "1"}, Fields{"b": "2"})

	entries := decodeEntries(t, &buf)
	fields := entries[0]["fields"].(map[string]interface{})
	if fields["a"] != "1" || fields["b"] != "2" {
		t.Errorf("Expected merged fields, got %v", fields)
	}
}
