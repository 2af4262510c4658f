package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadTetris("")
	if err != nil {
		t.Fatalf("LoadTetris(\"\") error: %v", err)
	}
	if cfg != DefaultTetrisConfig() {
		t.Errorf("embedded config = %+v, expected %+v", cfg, DefaultTetrisConfig())
	}
}

func TestLoadTetrisCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	data := "timing:\n  fall_interval_ms: 650\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadTetris(path)
	if err != nil {
		t.Fatalf("LoadTetris error: %v", err)
	}
	if cfg.Timing.FallInterval() != 650*time.Millisecond {
		t.Errorf("FallInterval() = %v, expected 650ms", cfg.Timing.FallInterval())
	}
	// Unset values keep their defaults
	if cfg.Timing.SoftDropIntervalMS != 100 {
		t.Errorf("SoftDropIntervalMS = %d, expected default 100", cfg.Timing.SoftDropIntervalMS)
	}
	if cfg.Render.Cell != "██" {
		t.Errorf("Render.Cell = %q, expected default", cfg.Render.Cell)
	}
}

func TestLoadTetrisUserDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".arcade", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	data := "render:\n  show_help: false\n"
	if err := os.WriteFile(filepath.Join(dir, "tetris.yaml"), []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadTetris("")
	if err != nil {
		t.Fatalf("LoadTetris error: %v", err)
	}
	if cfg.Render.ShowHelp {
		t.Error("user config should disable help line")
	}
}

func TestLoadTetrisErrors(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("timing: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("timing:\n  fall_interval_ms: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{"missing file", filepath.Join(dir, "nope.yaml"), "failed to read config"},
		{"malformed yaml", bad, "failed to parse config"},
		{"invalid values", invalid, "fall_interval_ms must be positive"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := LoadTetris(tc.path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error = %q, expected it to contain %q", err, tc.wantErr)
			}
			if cfg != DefaultTetrisConfig() {
				t.Error("failed load should return the default config")
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*TetrisConfig)
		valid  bool
	}{
		{"defaults", func(*TetrisConfig) {}, true},
		{"negative fall", func(c *TetrisConfig) { c.Timing.FallIntervalMS = -1 }, false},
		{"soft drop slower than gravity", func(c *TetrisConfig) { c.Timing.SoftDropIntervalMS = 900 }, false},
		{"negative release", func(c *TetrisConfig) { c.Timing.SoftDropReleaseMS = -5 }, false},
		{"single char cell", func(c *TetrisConfig) { c.Render.Cell = "#" }, false},
		{"ascii cell", func(c *TetrisConfig) { c.Render.Cell = "[]" }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err == nil) != tc.valid {
				t.Errorf("Validate() = %v, valid expected %v", err, tc.valid)
			}
		})
	}
}

func TestSpeedPresets(t *testing.T) {
	tests := []struct {
		in     string
		fallMS int
	}{
		{"slow", 800},
		{"normal", 500},
		{"fast", 300},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			p, err := ParseSpeedPreset(tc.in)
			if err != nil {
				t.Fatalf("ParseSpeedPreset(%q) error: %v", tc.in, err)
			}
			cfg := DefaultTetrisConfig()
			ApplyTetrisPreset(&cfg, p)
			if cfg.Timing.FallIntervalMS != tc.fallMS {
				t.Errorf("FallIntervalMS = %d, expected %d", cfg.Timing.FallIntervalMS, tc.fallMS)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}

	if _, err := ParseSpeedPreset("ludicrous"); err == nil {
		t.Error("unknown preset should be rejected")
	}

	cfg := DefaultTetrisConfig()
	cfg.Timing.FallIntervalMS = 999
	ApplyTetrisPreset(&cfg, "")
	if cfg.Timing.FallIntervalMS != 999 {
		t.Error("empty preset should leave config untouched")
	}
}
