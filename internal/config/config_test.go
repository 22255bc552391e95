package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MinActions != 30 {
		t.Errorf("MinActions = %d, want 30", cfg.MinActions)
	}
	if cfg.MinSetActions != 100 {
		t.Errorf("MinSetActions = %d, want 100", cfg.MinSetActions)
	}
	if cfg.MainTeam != "France Avenir" {
		t.Errorf("MainTeam = %q, want %q", cfg.MainTeam, "France Avenir")
	}
	if cfg.Threshold("Reception") != 40 {
		t.Errorf("Threshold(Reception) = %v, want 40", cfg.Threshold("Reception"))
	}
	if cfg.Threshold("Unknown") != 0 {
		t.Errorf("Threshold(Unknown) = %v, want 0", cfg.Threshold("Unknown"))
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("VBMETRICS_MIN_ACTIONS", "5")
	t.Setenv("VBMETRICS_MAIN_TEAM", "Paris Volley")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MinActions != 5 {
		t.Errorf("MinActions = %d, want 5", cfg.MinActions)
	}
	if cfg.MainTeam != "Paris Volley" {
		t.Errorf("MainTeam = %q, want %q", cfg.MainTeam, "Paris Volley")
	}
	// Untouched fields keep their defaults.
	if cfg.MinSetActions != 100 {
		t.Errorf("MinSetActions = %d, want 100", cfg.MinSetActions)
	}
}

func TestFileThenEnvPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	yml := "min_actions: 10\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(yml), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("VBMETRICS_CONFIG", path)
	t.Setenv("VBMETRICS_MIN_ACTIONS", "7")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	// Env wins over the file; the file wins over defaults.
	if cfg.MinActions != 7 {
		t.Errorf("MinActions = %d, want 7 (env over file)", cfg.MinActions)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug (from file)", cfg.LogLevel)
	}
}

func TestNegativeCutoffRejected(t *testing.T) {
	t.Setenv("VBMETRICS_MIN_ACTIONS", "-1")
	if _, err := Load(); err == nil {
		t.Error("expected error for negative cutoff")
	}
}
