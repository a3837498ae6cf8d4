package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":  slog.LevelDebug,
		" info ": slog.LevelInfo,
		"WARN":   slog.LevelWarn,
		"error":  slog.LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil {
			t.Fatalf("ParseLevel(%q) returned error: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := ParseLevel("chatty"); err == nil {
		t.Fatalf("ParseLevel(chatty) returned nil error")
	}
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "taskpane.log")

	logger, closeFn, err := New(path, slog.LevelInfo)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Debug("hidden")
	logger.Info("store changed", "key", "task")
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "store changed") || !strings.Contains(out, "key=task") {
		t.Fatalf("log = %q, want the info record", out)
	}
	if strings.Contains(out, "hidden") {
		t.Fatalf("log = %q, debug record should be filtered", out)
	}
}

func TestNew_EmptyPathDiscards(t *testing.T) {
	logger, closeFn, err := New("", slog.LevelDebug)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("nowhere")
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestNewWriter(t *testing.T) {
	var buf bytes.Buffer
	NewWriter(&buf, slog.LevelWarn).Warn("duplicate store key", "key", "app")
	if !strings.Contains(buf.String(), "level=WARN") {
		t.Fatalf("output = %q, want level=WARN", buf.String())
	}
}
