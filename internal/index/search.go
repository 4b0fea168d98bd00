package index

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"phrasesearch/nlcst"
)

// ErrHandlerMissing is returned when a phrase matches and no handler was
// supplied to receive it.
var ErrHandlerMissing = errors.New("phrase matched but no handler was supplied")

// MatchFunc receives a match: the sibling nodes from the anchor word through
// the last matched word, the anchor's index in parent, and the phrase.
type MatchFunc func(nodes []*nlcst.Node, index int, parent *nlcst.Node, phrase string) error

// Stats summarizes a single search pass.
type Stats struct {
	Phrases    int
	Buckets    int
	Words      int
	Literals   int
	Candidates int
	Matches    int
	Duration   time.Duration
}

// SearcherConfig wires the collaborators used while walking a tree.
type SearcherConfig struct {
	// NormalizeWord returns the comparison key of a word node.
	NormalizeWord func(*nlcst.Node) string
	// IsLiteral reports whether the child of parent at index is a literal.
	// Nil disables literal exclusion.
	IsLiteral func(parent *nlcst.Node, index int) bool
	Logger    *slog.Logger
}

// Searcher matches the phrases of an index against the words of a tree.
type Searcher struct {
	index         *PhraseIndex
	normalizeWord func(*nlcst.Node) string
	isLiteral     func(*nlcst.Node, int) bool
	logger        *slog.Logger
}

// NewSearcher constructs a Searcher over idx.
func NewSearcher(idx *PhraseIndex, cfg SearcherConfig) *Searcher {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	normalizeWord := cfg.NormalizeWord
	if normalizeWord == nil {
		normalizeWord = nlcst.ToString
	}

	return &Searcher{
		index:         idx,
		normalizeWord: normalizeWord,
		isLiteral:     cfg.IsLiteral,
		logger:        logger,
	}
}

// Search visits every word of tree in document order and calls fn for each
// phrase that matches starting at that word. Matches are not exclusive. An
// error from fn stops the search and is returned unchanged.
func (s *Searcher) Search(tree *nlcst.Node, fn MatchFunc) (Stats, error) {
	start := time.Now()
	stats := Stats{Phrases: s.index.Len(), Buckets: s.index.Buckets()}

	err := nlcst.Visit(tree, nlcst.KindWord, func(node *nlcst.Node, position int, parent *nlcst.Node) error {
		if parent == nil {
			return nil
		}
		stats.Words++

		if s.isLiteral != nil && s.isLiteral(parent, position) {
			stats.Literals++
			return nil
		}

		word := s.normalizeWord(node)
		for _, entry := range s.index.Lookup(word) {
			stats.Candidates++
			nodes := s.extend(entry, word, position, parent)
			if nodes == nil {
				continue
			}

			stats.Matches++
			s.logger.Debug("phrase matched", "phrase", entry.Phrase, "index", position, "nodes", len(nodes))
			if fn == nil {
				return fmt.Errorf("%w: %q at index %d", ErrHandlerMissing, entry.Phrase, position)
			}
			if err := fn(nodes, position, parent, entry.Phrase); err != nil {
				return err
			}
		}
		return nil
	})

	stats.Duration = time.Since(start)
	return stats, err
}

// extend tries to match entry from the word at position in parent. It returns
// the contiguous siblings covered by the match, including interior white
// space, or nil when the phrase does not match.
func (s *Searcher) extend(entry Entry, word string, position int, parent *nlcst.Node) []*nlcst.Node {
	anchor := entry.Anchor()
	if !anchor.IsWildcard() && anchor.Key != word {
		return nil
	}

	siblings := parent.Children
	cursor := position + 1

	for _, expression := range entry.Expressions[1:] {
		for cursor < len(siblings) && siblings[cursor].Kind == nlcst.KindWhiteSpace {
			cursor++
		}

		if cursor >= len(siblings) || siblings[cursor].Kind != nlcst.KindWord {
			return nil
		}
		if !expression.IsWildcard() && expression.Key != s.normalizeWord(siblings[cursor]) {
			return nil
		}
		cursor++
	}

	return siblings[position:cursor:cursor]
}
