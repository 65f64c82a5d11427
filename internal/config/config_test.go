package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/chris-regnier/ansicolor/internal/ansi"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Grammar != "strict" {
		t.Errorf("expected grammar 'strict', got %q", cfg.Grammar)
	}
	if cfg.EscapeGrammar() != ansi.GrammarStrict {
		t.Errorf("expected strict grammar, got %v", cfg.EscapeGrammar())
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("expected log_level 'warn', got %q", cfg.LogLevel)
	}
	if d, _ := cfg.NotifyDuration(); d != 2*time.Second {
		t.Errorf("expected 2s notify timeout, got %s", d)
	}
	if cfg.MaxWidth != 100 {
		t.Errorf("expected max_width 100, got %d", cfg.MaxWidth)
	}
	if cfg.Theme.Preset != "default-dark" {
		t.Errorf("expected preset 'default-dark', got %q", cfg.Theme.Preset)
	}
	if cfg.View.TitlePrefix != "Preview " {
		t.Errorf("expected title prefix 'Preview ', got %q", cfg.View.TitlePrefix)
	}
}

func TestLoadFromFile(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.toml")

	content := `
grammar = "lenient"
notify_timeout = "500ms"
max_width = 80

[theme]
preset = "default-light"
primary = "#FF0000"
markdown_style = "light"

[view]
title_prefix = "ANSI: "
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.EscapeGrammar() != ansi.GrammarLenient {
		t.Errorf("expected lenient grammar, got %q", cfg.Grammar)
	}
	if d, _ := cfg.NotifyDuration(); d != 500*time.Millisecond {
		t.Errorf("expected 500ms, got %s", d)
	}
	if cfg.MaxWidth != 80 {
		t.Errorf("expected max_width 80, got %d", cfg.MaxWidth)
	}
	if cfg.Theme.Preset != "default-light" {
		t.Errorf("expected preset 'default-light', got %q", cfg.Theme.Preset)
	}
	if cfg.Theme.Primary != "#FF0000" {
		t.Errorf("expected primary '#FF0000', got %q", cfg.Theme.Primary)
	}
	if cfg.View.TitlePrefix != "ANSI: " {
		t.Errorf("expected title prefix 'ANSI: ', got %q", cfg.View.TitlePrefix)
	}
}

func TestLoadFromXDG(t *testing.T) {
	isolate(t)
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	if err := os.MkdirAll(filepath.Join(xdg, "ansicolor"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(xdg, "ansicolor", "config.toml"), []byte(`log_level = "debug"`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected log_level 'debug', got %q", cfg.LogLevel)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("ANSICOLOR_GRAMMAR", "lenient")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Grammar != "lenient" {
		t.Errorf("expected grammar from env, got %q", cfg.Grammar)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	isolate(t)
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

func TestLoadRejectsUnknownGrammar(t *testing.T) {
	isolate(t)
	t.Setenv("ANSICOLOR_GRAMMAR", "both")

	_, err := Load("")
	if !errors.Is(err, ansi.ErrUnknownGrammar) {
		t.Errorf("expected ErrUnknownGrammar, got %v", err)
	}
}

func TestValidateNotifyTimeout(t *testing.T) {
	cfg := &Config{NotifyTimeout: "soon"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unparsable timeout")
	}
	cfg = &Config{NotifyTimeout: "-1s"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative timeout")
	}
	cfg = &Config{}
	if err := cfg.Validate(); err != nil {
		t.Errorf("zero config should validate, got %v", err)
	}
}
