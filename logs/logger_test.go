package logs_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/metaphox/quest-lang/logs"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		want slog.Level
	}{
		{"", slog.LevelWarn},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := logs.ParseLevel(tt.name)
		if err != nil || got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v", tt.name, got, err, tt.want)
		}
	}
	if _, err := logs.ParseLevel("loud"); err == nil {
		t.Error("ParseLevel(loud) succeeded")
	}
}

func TestNew_TextLevelAndRunID(t *testing.T) {
	var buf bytes.Buffer
	logger, closeFn, err := logs.New(logs.Options{Writer: &buf, Level: "info"})
	if err != nil {
		t.Fatal(err)
	}
	defer closeFn()

	logger.Debug("hidden")
	logger.With("phase", "parse").Info("shown", "statements", 3)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug record leaked at info level:\n%s", out)
	}
	for _, want := range []string{"msg=shown", "phase=parse", "statements=3", "run="} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestNew_FileReceivesJSON(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "questc.log")
	logger, closeFn, err := logs.New(logs.Options{Writer: &buf, Level: "debug", File: path})
	if err != nil {
		t.Fatal(err)
	}
	logger.Debug("tokenized", "tokens", 4)
	if err := closeFn(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var rec map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(data), &rec); err != nil {
		t.Fatalf("log file is not JSON: %v\n%s", err, data)
	}
	if rec["msg"] != "tokenized" || rec["tokens"] != float64(4) {
		t.Errorf("record: %v", rec)
	}
	if run, _ := rec["run"].(string); run == "" {
		t.Error("record has no run ID")
	}
	if !strings.Contains(buf.String(), "msg=tokenized") {
		t.Errorf("text sink missed the record:\n%s", buf.String())
	}
}

func TestNew_JSONWriter(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := logs.New(logs.Options{Writer: &buf, Format: "json", Level: "warn"})
	if err != nil {
		t.Fatal(err)
	}
	logger.Warn("careful")
	if !strings.HasPrefix(buf.String(), "{") {
		t.Errorf("expected JSON output, got %q", buf.String())
	}
}

func TestNew_Errors(t *testing.T) {
	if _, _, err := logs.New(logs.Options{Format: "xml"}); err == nil {
		t.Error("unknown format accepted")
	}
	if _, _, err := logs.New(logs.Options{Level: "loud"}); err == nil {
		t.Error("unknown level accepted")
	}
	dir := filepath.Join(t.TempDir(), "missing", "questc.log")
	if _, _, err := logs.New(logs.Options{File: dir}); err == nil {
		t.Error("unwritable log file accepted")
	}
}
