package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter("warn", &buf)

	logger.Info("should be dropped")
	logger.Warn("should be kept", "key", "value")

	out := buf.String()
	if strings.Contains(out, "should be dropped") {
		t.Fatalf("info record emitted at warn level: %s", out)
	}
	if !strings.Contains(out, "should be kept") {
		t.Fatalf("warn record missing: %s", out)
	}
}

func TestWithAddsAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter("info", &buf).With("identity", "15551234567")

	logger.Info("turn processed")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("log output is not JSON: %v", err)
	}
	if record["identity"] != "15551234567" {
		t.Fatalf("expected identity attribute, got %#v", record)
	}
}

func TestUnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter("chatty", &buf)

	logger.Debug("hidden")
	logger.Info("visible")

	if strings.Contains(buf.String(), "hidden") {
		t.Fatalf("debug record emitted at fallback level")
	}
	if !strings.Contains(buf.String(), "visible") {
		t.Fatalf("info record missing at fallback level")
	}
}
