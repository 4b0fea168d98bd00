package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Logging.Level != "info" || Enabled(cfg.Metrics.Enabled) || Enabled(cfg.Options.AllowLiterals) {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeConfig(t, "profile.toml", `
phrases = ["dont do", "this * selfservice"]

[dictionary]
"he'll" = "contraction"
hell = true

[options]
allow_literals = true

[logging]
level = "debug"

[metrics]
enabled = true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cfg.Phrases) != 2 || cfg.Phrases[1] != "this * selfservice" {
		t.Fatalf("unexpected phrases: %v", cfg.Phrases)
	}
	if len(cfg.Dictionary) != 2 {
		t.Fatalf("unexpected dictionary: %v", cfg.Dictionary)
	}
	if !Enabled(cfg.Options.AllowLiterals) || Enabled(cfg.Options.AllowApostrophes) {
		t.Fatalf("expected allow_literals merged onto defaults: %+v", cfg.Options)
	}
	if cfg.Logging.Level != "debug" || !Enabled(cfg.Metrics.Enabled) {
		t.Fatalf("unexpected logging/metrics: %+v %+v", cfg.Logging, cfg.Metrics)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, "profile.yml", `
phrases:
  - blocklevel
options:
  allow_dashes: true
  allow_apostrophes: true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cfg.Phrases) != 1 || cfg.Phrases[0] != "blocklevel" {
		t.Fatalf("unexpected phrases: %v", cfg.Phrases)
	}
	if !Enabled(cfg.Options.AllowDashes) || !Enabled(cfg.Options.AllowApostrophes) {
		t.Fatalf("unexpected options: %+v", cfg.Options)
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("expected default logging level, got %q", cfg.Logging.Level)
	}
}

func TestLoadRejectsUnknownExtension(t *testing.T) {
	path := writeConfig(t, "profile.json", `{}`)
	if _, err := Load(path); err == nil {
		t.Fatalf("expected an error for unsupported extensions")
	}
}

func TestLoadReportsParseErrors(t *testing.T) {
	path := writeConfig(t, "broken.toml", `phrases = [`)
	if _, err := Load(path); err == nil {
		t.Fatalf("expected a parse error")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected a read error")
	}
}
