package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// File captures a search profile: the phrases to look for and how to match them.
type File struct {
	Phrases    []string       `toml:"phrases" yaml:"phrases"`
	Dictionary map[string]any `toml:"dictionary" yaml:"dictionary"`
	Options    OptionsConfig  `toml:"options" yaml:"options"`
	Logging    LoggingConfig  `toml:"logging" yaml:"logging"`
	Metrics    MetricsConfig  `toml:"metrics" yaml:"metrics"`
}

// OptionsConfig mirrors the matching options exposed by the search package.
type OptionsConfig struct {
	AllowApostrophes *bool `toml:"allow_apostrophes" yaml:"allow_apostrophes"`
	AllowDashes      *bool `toml:"allow_dashes" yaml:"allow_dashes"`
	AllowLiterals    *bool `toml:"allow_literals" yaml:"allow_literals"`
}

// LoggingConfig selects the minimum level of emitted records.
type LoggingConfig struct {
	Level string `toml:"level" yaml:"level"`
}

// MetricsConfig enables search telemetry.
type MetricsConfig struct {
	Enabled *bool `toml:"enabled" yaml:"enabled"`
}

// DefaultConfig returns the baseline configuration used when no file is supplied.
func DefaultConfig() File {
	return File{
		Options: OptionsConfig{
			AllowApostrophes: boolPtr(false),
			AllowDashes:      boolPtr(false),
			AllowLiterals:    boolPtr(false),
		},
		Logging: LoggingConfig{Level: "info"},
		Metrics: MetricsConfig{Enabled: boolPtr(false)},
	}
}

// Load reads the provided config path, merging it onto the defaults.
func Load(path string) (File, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read config: %w", err)
	}

	fileCfg, err := Parse(content, filepath.Ext(path))
	if err != nil {
		return File{}, err
	}

	return mergeConfig(cfg, fileCfg), nil
}

// Parse decodes content according to the file extension (.toml, .yaml, .yml).
func Parse(content []byte, ext string) (File, error) {
	var fileCfg File
	switch strings.ToLower(ext) {
	case ".toml":
		if err := toml.Unmarshal(content, &fileCfg); err != nil {
			return File{}, fmt.Errorf("parse toml: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &fileCfg); err != nil {
			return File{}, fmt.Errorf("parse yaml: %w", err)
		}
	default:
		return File{}, errors.New("config file must be .toml, .yaml, or .yml")
	}
	return fileCfg, nil
}

func mergeConfig(base, override File) File {
	if len(override.Phrases) > 0 {
		base.Phrases = override.Phrases
	}
	if len(override.Dictionary) > 0 {
		base.Dictionary = override.Dictionary
	}

	if override.Options.AllowApostrophes != nil {
		base.Options.AllowApostrophes = override.Options.AllowApostrophes
	}
	if override.Options.AllowDashes != nil {
		base.Options.AllowDashes = override.Options.AllowDashes
	}
	if override.Options.AllowLiterals != nil {
		base.Options.AllowLiterals = override.Options.AllowLiterals
	}

	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}

	if override.Metrics.Enabled != nil {
		base.Metrics.Enabled = override.Metrics.Enabled
	}

	return base
}

// Enabled dereferences an optional flag, treating nil as false.
func Enabled(flag *bool) bool {
	return flag != nil && *flag
}

func boolPtr(v bool) *bool {
	return &v
}
