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
	log := New(Config{Level: WARN, Format: JSONFormat, Output: &buf})

	log.Debug("debug message")
	log.Info("info message")
	log.Warn("warn message")
	log.Error("error message", nil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Errorf("Expected 2 log lines with WARN level, got %d", len(lines))
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: INFO, Format: JSONFormat, Output: &buf, Component: "figures"})

	log.Info("figure built", map[string]interface{}{
		"stations": 3,
		"kind":     "maxsum",
	})

	var entry Entry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to parse JSON output: %v", err)
	}
	if entry.Level != "INFO" {
		t.Errorf("Expected level INFO, got %s", entry.Level)
	}
	if entry.Message != "figure built" {
		t.Errorf("Expected message 'figure built', got %s", entry.Message)
	}
	if entry.Component != "figures" {
		t.Errorf("Expected component 'figures', got %s", entry.Component)
	}
	if entry.Fields["kind"] != "maxsum" {
		t.Errorf("Expected field kind='maxsum', got %v", entry.Fields["kind"])
	}
	if entry.Fields["stations"] != float64(3) { // JSON numbers are float64
		t.Errorf("Expected field stations=3, got %v", entry.Fields["stations"])
	}
}

func TestTextFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: INFO, Format: TextFormat, Output: &buf, Component: "server"})

	log.Info("request served", map[string]interface{}{"path": "/health"})

	output := buf.String()
	if !strings.Contains(output, "INFO") {
		t.Error("Expected output to contain 'INFO'")
	}
	if !strings.Contains(output, "[server]") {
		t.Error("Expected output to contain '[server]'")
	}
	if !strings.Contains(output, "path=/health") {
		t.Error("Expected output to contain 'path=/health'")
	}
}

func TestErrorLogging(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: ERROR, Format: JSONFormat, Output: &buf})

	log.Error("operation failed", errors.New("boom"), map[string]interface{}{"op": "fetch"})

	var entry Entry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to parse JSON output: %v", err)
	}
	if entry.Error != "boom" {
		t.Errorf("Expected error 'boom', got %s", entry.Error)
	}
	if entry.Fields["op"] != "fetch" {
		t.Errorf("Expected op field 'fetch', got %v", entry.Fields["op"])
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	base := New(Config{Level: INFO, Format: JSONFormat, Output: &buf, Component: "base"})

	base.WithComponent("storage").Info("stored")

	var entry Entry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to parse JSON output: %v", err)
	}
	if entry.Component != "storage" {
		t.Errorf("Expected component 'storage', got %s", entry.Component)
	}
}

func TestGlobalLogger(t *testing.T) {
	var buf bytes.Buffer
	original := Global()
	defer SetGlobal(original)

	SetGlobal(New(Config{Level: INFO, Format: JSONFormat, Output: &buf}))

	Info("global info message")
	Warn("global warn message")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 log lines, got %d", len(lines))
	}

	var entry Entry
	if err := json.Unmarshal([]byte(lines[1]), &entry); err != nil {
		t.Fatalf("Failed to parse JSON output: %v", err)
	}
	if entry.Level != "WARN" || entry.Message != "global warn message" {
		t.Errorf("Second line incorrect: level=%s, message=%s", entry.Level, entry.Message)
	}
}

func TestFormattedLogging(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: INFO, Format: JSONFormat, Output: &buf})

	log.Infof("loaded %d rows from %s", 731, "rainfall.csv")

	var entry Entry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to parse JSON output: %v", err)
	}
	if entry.Message != "loaded 731 rows from rainfall.csv" {
		t.Errorf("Unexpected message: %s", entry.Message)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
		ok       bool
	}{
		{"debug", DEBUG, true},
		{"INFO", INFO, true},
		{"Warn", WARN, true},
		{"warning", WARN, true},
		{"error", ERROR, true},
		{"fatal", FATAL, true},
		{"bogus", INFO, false},
	}
	for _, tt := range tests {
		level, ok := ParseLevel(tt.input)
		if level != tt.expected || ok != tt.ok {
			t.Errorf("ParseLevel(%q) = (%v, %v), want (%v, %v)", tt.input, level, ok, tt.expected, tt.ok)
		}
	}
}

func TestParseFormat(t *testing.T) {
	if format, ok := ParseFormat("text"); format != TextFormat || !ok {
		t.Errorf("ParseFormat(text) = (%v, %v)", format, ok)
	}
	if format, ok := ParseFormat("JSON"); format != JSONFormat || !ok {
		t.Errorf("ParseFormat(JSON) = (%v, %v)", format, ok)
	}
	if _, ok := ParseFormat("yaml"); ok {
		t.Error("ParseFormat(yaml) should not be recognized")
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{DEBUG, "DEBUG"},
		{INFO, "INFO"},
		{WARN, "WARN"},
		{ERROR, "ERROR"},
		{FATAL, "FATAL"},
	}
	for _, tt := range tests {
		if tt.level.String() != tt.expected {
			t.Errorf("Expected %s, got %s", tt.expected, tt.level.String())
		}
	}
}
