package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestTarget(t *testing.T) {
	cfg := &App{
		NormalTarget:  8 * time.Hour,
		ReducedTarget: 7*time.Hour + 30*time.Minute,
	}

	if got := cfg.Target(false); got != 8*time.Hour {
		t.Errorf("expected 8h, but got: %s", got)
	}

	if got := cfg.Target(true); got != 7*time.Hour+30*time.Minute {
		t.Errorf("expected 7h30m, but got: %s", got)
	}
}

func TestParseTarget(t *testing.T) {
	cases := []struct {
		input    string
		expected time.Duration
	}{
		{"8h", 8 * time.Hour},
		{"7h30m", 7*time.Hour + 30*time.Minute},
		{"90m", 90 * time.Minute},
		{"", defaultNormalTarget},
		{"eight hours", defaultNormalTarget},
		{"-2h", defaultNormalTarget},
		{"0s", defaultNormalTarget},
	}

	for _, tc := range cases {
		got := parseTarget(tc.input, defaultNormalTarget)
		if got != tc.expected {
			t.Errorf(
				"parseTarget(%q) = %s, want %s",
				tc.input, got, tc.expected,
			)
		}
	}
}

func TestLoadFromFileWritesDefaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	cfg := &App{}

	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := os.Stat(configPath); err != nil {
		t.Errorf("expected the default config file to be written: %v", err)
	}

	if cfg.NormalTarget != defaultNormalTarget {
		t.Errorf("expected %s, but got: %s", defaultNormalTarget, cfg.NormalTarget)
	}

	if cfg.ReducedTarget != defaultReducedTarget {
		t.Errorf("expected %s, but got: %s", defaultReducedTarget, cfg.ReducedTarget)
	}

	if !cfg.Notify || !cfg.DarkTheme || cfg.TwentyFourHour {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadFromFileReadsValues(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	content := []byte(`targets:
  normal: 6h
  reduced: 5h
settings:
  24hr_clock: true
  notify: false
  cmd: "true"
`)

	if err := os.WriteFile(configPath, content, 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg := &App{}

	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.NormalTarget != 6*time.Hour {
		t.Errorf("expected 6h, but got: %s", cfg.NormalTarget)
	}

	if cfg.ReducedTarget != 5*time.Hour {
		t.Errorf("expected 5h, but got: %s", cfg.ReducedTarget)
	}

	if !cfg.TwentyFourHour || cfg.Notify {
		t.Errorf("unexpected settings: %+v", cfg)
	}

	if cfg.SessionCmd != "true" {
		t.Errorf("expected true, but got: %s", cfg.SessionCmd)
	}
}
