// Package phrasesearch finds phrases in natural language syntax trees.
//
// A phrase is a space-separated sequence of words, such as "dont do" or
// "this * selfservice", where "*" matches any single word. Words are compared
// by their normalized form, white space between words is skipped, and words
// used as literals (quoted or bracketed) are ignored unless allowed.
package phrasesearch

import (
	"fmt"
	"io"
	"log/slog"

	"phrasesearch/internal/index"
	"phrasesearch/literal"
	"phrasesearch/nlcst"
	"phrasesearch/normalize"
)

// Handler receives a match: the sibling nodes from the first through the last
// matched word (white space included), the index of the first node in parent,
// and the phrase as given. A non-nil error stops the search and is returned
// by Search as is.
type Handler func(nodes []*nlcst.Node, index int, parent *nlcst.Node, phrase string) error

// Match is a single result collected by FindAll.
type Match struct {
	Nodes  []*nlcst.Node
	Index  int
	Parent *nlcst.Node
	Phrase string
}

// Search calls handler for every run of sibling nodes in tree that matches
// one of phrases.
//
// phrases is a []string, a Phrases value, or a map with string keys whose
// values are ignored. options is nil, an Options value, or a bool meaning
// Options{AllowApostrophes: b}.
//
// handler may be nil to validate inputs; the first match then fails with
// ErrHandlerMissing.
func Search(tree *nlcst.Node, phrases any, handler Handler, options any) error {
	if tree == nil || tree.Kind == "" {
		return ErrInvalidTree
	}

	list, err := resolvePhrases(phrases)
	if err != nil {
		return err
	}

	opts, err := resolveOptions(options)
	if err != nil {
		return err
	}

	return search(tree, list, handler, opts)
}

// FindAll collects every match of phrases in tree.
func FindAll(tree *nlcst.Node, phrases any, options any) ([]Match, error) {
	var matches []Match
	err := Search(tree, phrases, func(nodes []*nlcst.Node, index int, parent *nlcst.Node, phrase string) error {
		matches = append(matches, Match{Nodes: nodes, Index: index, Parent: parent, Phrase: phrase})
		return nil
	}, options)
	if err != nil {
		return nil, err
	}
	return matches, nil
}

func search(tree *nlcst.Node, phrases []string, handler Handler, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	normOpts := opts.normalizeOptions()
	analyzer := index.NewAnalyzer(func(value string) string {
		return normalize.String(value, normOpts)
	})
	phraseIndex := index.BuildPhraseIndex(phrases, analyzer)
	logger.Debug("phrase index built", "phrases", phraseIndex.Len(), "buckets", phraseIndex.Buckets())

	cfg := index.SearcherConfig{
		NormalizeWord: func(n *nlcst.Node) string {
			return normalize.Node(n, normOpts)
		},
		Logger: logger,
	}
	if !opts.AllowLiterals {
		cfg.IsLiteral = literal.IsLiteral
	}

	var fn index.MatchFunc
	if handler != nil {
		fn = index.MatchFunc(handler)
	}

	stats, err := index.NewSearcher(phraseIndex, cfg).Search(tree, fn)
	if opts.Recorder != nil {
		opts.Recorder.RecordSearch(stats)
	}
	logger.Debug("search completed",
		"words", stats.Words,
		"literals", stats.Literals,
		"candidates", stats.Candidates,
		"matches", stats.Matches,
		"duration", stats.Duration,
		"aborted", err != nil,
	)
	return err
}

// String returns a short description of a match, e.g. `"dont do" at 0 (3 nodes)`.
func (m Match) String() string {
	return fmt.Sprintf("%q at %d (%d nodes)", m.Phrase, m.Index, len(m.Nodes))
}
