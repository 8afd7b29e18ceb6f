package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if cfg.Clock.Theme != nil || cfg.Colors.Hour != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
	if _, err := LoadConfig(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestLoadConfigDecodes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `[clock]
theme = "amber"
seconds = false
frame-ms = 250

[colors]
second = "#FF0000"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Clock.Theme == nil || *cfg.Clock.Theme != "amber" {
		t.Fatalf("unexpected theme %v", cfg.Clock.Theme)
	}
	if cfg.Clock.Seconds == nil || *cfg.Clock.Seconds {
		t.Fatalf("expected seconds=false")
	}
	if cfg.Clock.FrameMs == nil || *cfg.Clock.FrameMs != 250 {
		t.Fatalf("unexpected frame-ms %v", cfg.Clock.FrameMs)
	}
	if cfg.Clock.Smooth != nil {
		t.Fatalf("expected unset smooth to stay nil")
	}
	if cfg.Colors.Second == nil || *cfg.Colors.Second != "#FF0000" {
		t.Fatalf("unexpected second color %v", cfg.Colors.Second)
	}
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[clock]\nthemes = \"grey\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, err := LoadConfig(path)
	if err == nil || !strings.Contains(err.Error(), "clock.themes") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestDefaultPaths(t *testing.T) {
	root := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	xdg.Reload()

	if got, want := DefaultConfigPath(), filepath.Join(root, "config", "tuiclock", "config.toml"); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if got, want := DefaultDBPath(), filepath.Join(root, "data", "tuiclock", "tuiclock.db"); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if got, want := DefaultLogPath(), filepath.Join(root, "state", "tuiclock", "tuiclock.log"); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
