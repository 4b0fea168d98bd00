// Package literal detects words used as literals: quoted, bracketed, or set
// apart by delimiters, as in `the word "do" is short`.
package literal

import "phrasesearch/nlcst"

// single lists delimiters that mark a literal at the start or end of a
// sentence, e.g. "Example: ..." or "... — example".
var single = []string{"-", "–", "—", ":", ";"}

// pairs maps an opening delimiter to its accepted closing delimiters.
var pairs = map[string][]string{
	",": {","},
	"-": {"-"},
	"–": {"–"},
	"—": {"—"},
	`"`: {`"`},
	"'": {"'"},
	"‘": {"’"},
	"‚": {"’"},
	"’": {"’", "‚"},
	"“": {"”"},
	"”": {"”"},
	"„": {"”", "“"},
	"«": {"»"},
	"»": {"«"},
	"‹": {"›"},
	"›": {"‹"},
	"(": {")"},
	"[": {"]"},
	"{": {"}"},
	"⟨": {"⟩"},
	"「": {"」"},
}

// IsLiteral reports whether the child of parent at index is a literal.
// Out of range positions and nil parents are never literal.
func IsLiteral(parent *nlcst.Node, index int) bool {
	if parent == nil || index < 0 || index >= len(parent.Children) {
		return false
	}

	if !containsWord(parent, -1, index) && siblingDelimiter(parent, index, 1, inSet(single)) != nil {
		return true
	}
	if !containsWord(parent, index, len(parent.Children)) && siblingDelimiter(parent, index, -1, inSet(single)) != nil {
		return true
	}
	return isWrapped(parent, index)
}

// IsLiteralNode is IsLiteral for a child given by reference.
func IsLiteralNode(parent, child *nlcst.Node) bool {
	if parent == nil {
		return false
	}
	for i, c := range parent.Children {
		if c == child {
			return IsLiteral(parent, i)
		}
	}
	return false
}

func isWrapped(parent *nlcst.Node, index int) bool {
	previous := siblingDelimiter(parent, index, -1, func(value string) bool {
		_, ok := pairs[value]
		return ok
	})
	if previous == nil {
		return false
	}
	closers := pairs[nlcst.ToString(previous)]
	return siblingDelimiter(parent, index, 1, inSet(closers)) != nil
}

// siblingDelimiter walks from index in direction step, skipping white space,
// and returns the first other sibling when accept matches its text. Words and
// source nodes end the search.
func siblingDelimiter(parent *nlcst.Node, index, step int, accept func(string) bool) *nlcst.Node {
	for i := index + step; i >= 0 && i < len(parent.Children); i += step {
		sibling := parent.Children[i]
		switch sibling.Kind {
		case nlcst.KindWord, nlcst.KindSource:
			return nil
		case nlcst.KindWhiteSpace:
			continue
		}
		if accept(nlcst.ToString(sibling)) {
			return sibling
		}
		return nil
	}
	return nil
}

// containsWord reports whether a word sits strictly between start and end.
func containsWord(parent *nlcst.Node, start, end int) bool {
	for i := start + 1; i < end; i++ {
		if parent.Children[i].Kind == nlcst.KindWord {
			return true
		}
	}
	return false
}

func inSet(values []string) func(string) bool {
	return func(value string) bool {
		for _, v := range values {
			if v == value {
				return true
			}
		}
		return false
	}
}
