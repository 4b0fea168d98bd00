package phrasesearch

import (
	"errors"

	"phrasesearch/internal/index"
)

var (
	// ErrInvalidTree is returned when the tree is nil or has no kind.
	ErrInvalidTree = errors.New("phrasesearch: expected node")
	// ErrInvalidPhrases is returned when phrases is neither a list nor a
	// string-keyed map.
	ErrInvalidPhrases = errors.New("phrasesearch: expected list or map for phrases")
	// ErrInvalidOptions is returned when options is neither a bool nor an
	// Options value.
	ErrInvalidOptions = errors.New("phrasesearch: expected bool or Options for options")
	// ErrHandlerMissing is returned at the first match when no handler was
	// supplied.
	ErrHandlerMissing = index.ErrHandlerMissing
)
