package phrasesearch

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"phrasesearch/internal/config"
	"phrasesearch/nlcst"
	"phrasesearch/telemetry"
)

// Profile is a reusable search setup loaded from a TOML or YAML file.
type Profile struct {
	Phrases        PhraseList
	Options        Options
	MetricsEnabled bool
}

// LoadProfile reads a profile file. The phrase list holds the file's phrases
// followed by the sorted keys of its dictionary. Logs go to stderr as JSON at
// the configured level.
func LoadProfile(path string) (Profile, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return Profile{}, err
	}
	return newProfile(cfg, os.Stderr)
}

func newProfile(cfg config.File, logOutput io.Writer) (Profile, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Logging.Level)); err != nil {
		return Profile{}, fmt.Errorf("logging level: %w", err)
	}
	logger := slog.New(slog.NewJSONHandler(logOutput, &slog.HandlerOptions{Level: level}))

	phrases := make(PhraseList, 0, len(cfg.Phrases)+len(cfg.Dictionary))
	phrases = append(phrases, cfg.Phrases...)
	phrases = append(phrases, PhraseKeySet(cfg.Dictionary).List()...)

	return Profile{
		Phrases: phrases,
		Options: Options{
			AllowApostrophes: config.Enabled(cfg.Options.AllowApostrophes),
			AllowDashes:      config.Enabled(cfg.Options.AllowDashes),
			AllowLiterals:    config.Enabled(cfg.Options.AllowLiterals),
			Logger:           logger,
		},
		MetricsEnabled: config.Enabled(cfg.Metrics.Enabled),
	}, nil
}

// WithTelemetry returns a copy of the profile recording into tel.
func (p Profile) WithTelemetry(tel *telemetry.Telemetry) Profile {
	p.Options.Recorder = tel
	return p
}

// Telemetry builds telemetry according to the profile's metrics setting.
func (p Profile) Telemetry() *telemetry.Telemetry {
	return telemetry.New(p.Options.Logger, p.MetricsEnabled)
}

// Search runs Search over tree with the profile's phrases and options.
func (p Profile) Search(tree *nlcst.Node, handler Handler) error {
	return Search(tree, p.Phrases, handler, p.Options)
}
