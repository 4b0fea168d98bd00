// Package normalize turns words and phrase tokens into comparison keys.
package normalize

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"phrasesearch/nlcst"
)

// Options controls which characters survive normalization.
type Options struct {
	// AllowApostrophes keeps apostrophes, so "he'll" and "hell" differ.
	AllowApostrophes bool
	// AllowDashes keeps dashes, so "block-level" and "blocklevel" differ.
	AllowDashes bool
}

var apostrophes = strings.NewReplacer("’", "'", "‘", "'", "ʼ", "'")

// String normalizes a raw value. The result is lower-cased with apostrophe
// variants folded to ', then stripped of apostrophes and dashes unless
// allowed by opts.
func String(value string, opts Options) string {
	// Casers keep state, so one is built per call.
	result := apostrophes.Replace(cases.Lower(language.Und).String(value))

	switch {
	case opts.AllowApostrophes && opts.AllowDashes:
		return result
	case opts.AllowApostrophes:
		return strings.ReplaceAll(result, "-", "")
	case opts.AllowDashes:
		return strings.ReplaceAll(result, "'", "")
	default:
		return strings.NewReplacer("'", "", "-", "").Replace(result)
	}
}

// Node normalizes the text content of a node.
func Node(n *nlcst.Node, opts Options) string {
	return String(nlcst.ToString(n), opts)
}
