package phrasesearch

import (
	"fmt"
	"log/slog"

	"phrasesearch/internal/index"
	"phrasesearch/normalize"
)

// Stats summarizes one search call.
type Stats = index.Stats

// Recorder receives the statistics of every search call.
type Recorder interface {
	RecordSearch(stats Stats)
}

// Options configures a search.
type Options struct {
	// AllowApostrophes keeps apostrophes significant when comparing words.
	AllowApostrophes bool
	// AllowDashes keeps dashes significant when comparing words.
	AllowDashes bool
	// AllowLiterals also matches words used as literals, such as quoted or
	// parenthesized words.
	AllowLiterals bool

	// Logger receives debug records. Nil discards them.
	Logger *slog.Logger
	// Recorder, when set, receives per-call statistics.
	Recorder Recorder
}

func (o Options) normalizeOptions() normalize.Options {
	return normalize.Options{AllowApostrophes: o.AllowApostrophes, AllowDashes: o.AllowDashes}
}

// resolveOptions maps the accepted option shapes onto Options. A bare bool is
// the legacy shorthand for AllowApostrophes.
func resolveOptions(options any) (Options, error) {
	switch o := options.(type) {
	case nil:
		return Options{}, nil
	case bool:
		return Options{AllowApostrophes: o}, nil
	case Options:
		return o, nil
	case *Options:
		if o == nil {
			return Options{}, nil
		}
		return *o, nil
	default:
		return Options{}, fmt.Errorf("%w, got %T", ErrInvalidOptions, options)
	}
}
