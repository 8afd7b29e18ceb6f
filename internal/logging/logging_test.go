package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, false)
	logger.Debug("hidden")
	logger.Info("shown", "theme", "grey")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("expected debug output to be suppressed, got %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "theme=grey") {
		t.Fatalf("expected info output with fields, got %q", out)
	}

	buf.Reset()
	New(&buf, true).Debug("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Fatalf("expected debug output, got %q", buf.String())
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "tuiclock.log")
	logger, closer, err := OpenFile(path, false)
	if err != nil {
		t.Fatalf("open log file: %v", err)
	}
	logger.Warn("alarm refresh failed", "err", "boom")
	if err := closer.Close(); err != nil {
		t.Fatalf("close log file: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "alarm refresh failed") || !strings.Contains(string(data), "err=boom") {
		t.Fatalf("unexpected log contents %q", data)
	}
}
