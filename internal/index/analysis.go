package index

import "strings"

// Wildcard is the phrase token that matches any single word.
const Wildcard = "*"

// Expression is one space-delimited token of a phrase with its comparison key.
type Expression struct {
	Value    string
	Key      string
	Position int
}

// IsWildcard reports whether the expression matches any word.
func (e Expression) IsWildcard() bool {
	return e.Value == Wildcard
}

// Analyzer splits phrases into expressions, normalizing each token once.
type Analyzer struct {
	normalize func(string) string
}

// NewAnalyzer constructs an analyzer using normalize to derive token keys.
func NewAnalyzer(normalize func(string) string) *Analyzer {
	if normalize == nil {
		normalize = func(value string) string { return value }
	}
	return &Analyzer{normalize: normalize}
}

// Analyze splits phrase on single spaces. Runs of spaces yield empty tokens,
// which never match a word.
func (a *Analyzer) Analyze(phrase string) []Expression {
	tokens := strings.Split(phrase, " ")
	expressions := make([]Expression, 0, len(tokens))
	for idx, token := range tokens {
		expressions = append(expressions, Expression{
			Value:    token,
			Key:      a.normalize(token),
			Position: idx,
		})
	}
	return expressions
}

// Anchor returns the normalized first token of phrase.
func (a *Analyzer) Anchor(phrase string) string {
	first, _, _ := strings.Cut(phrase, " ")
	return a.normalize(first)
}
