package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"garbage", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.input); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestConsoleHandlerOutput(t *testing.T) {
	var buf bytes.Buffer
	lvl := new(slog.LevelVar)
	handler := &consoleHandler{writer: &buf, level: lvl}
	logger := slog.New(handler)

	logger.Info("loaded documents",
		slog.String(FieldComponent, "loader"),
		slog.String(FieldCategory, "shows"),
		slog.Int("count", 3),
	)

	line := buf.String()
	if !strings.Contains(line, "[loader]") {
		t.Errorf("missing component marker: %q", line)
	}
	if !strings.Contains(line, "loaded documents") {
		t.Errorf("missing message: %q", line)
	}
	if !strings.Contains(line, "category=shows") || !strings.Contains(line, "count=3") {
		t.Errorf("missing attrs: %q", line)
	}
	if strings.Contains(line, "\x1b[") {
		t.Errorf("color codes written to non-terminal: %q", line)
	}
}

func TestConsoleHandlerLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	lvl := new(slog.LevelVar)
	lvl.Set(slog.LevelWarn)
	handler := &consoleHandler{writer: &buf, level: lvl}

	if handler.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info enabled at warn level")
	}
	if !handler.Enabled(context.Background(), slog.LevelError) {
		t.Error("error not enabled at warn level")
	}
}

func TestConsoleHandlerGroups(t *testing.T) {
	var buf bytes.Buffer
	lvl := new(slog.LevelVar)
	var handler slog.Handler = &consoleHandler{writer: &buf, level: lvl}
	handler = handler.WithGroup("photos").WithAttrs([]slog.Attr{slog.String("album", "abc")})

	logger := slog.New(handler)
	logger.Info("fetched")

	if !strings.Contains(buf.String(), "photos.album=abc") {
		t.Errorf("grouped attr not rendered: %q", buf.String())
	}
}

func TestJSONHandlerShape(t *testing.T) {
	var buf bytes.Buffer
	lvl := new(slog.LevelVar)
	logger := slog.New(newJSONHandler(&buf, lvl))

	logger.Warn("person collision", slog.String("person_id", "fred_bloggs"))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("unmarshal log line: %v", err)
	}
	if record["level"] != "warn" {
		t.Errorf("level = %v, want warn", record["level"])
	}
	if record["msg"] != "person collision" {
		t.Errorf("msg = %v", record["msg"])
	}
	if _, ok := record["ts"]; !ok {
		t.Error("missing ts field")
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("New accepted unknown format")
	}
}
