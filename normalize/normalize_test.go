package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"phrasesearch/nlcst"
)

func TestString(t *testing.T) {
	cases := []struct {
		name  string
		value string
		opts  Options
		want  string
	}{
		{"lowercases", "Block", Options{}, "block"},
		{"strips apostrophes", "Don't", Options{}, "dont"},
		{"folds curly apostrophe", "Don’t", Options{}, "dont"},
		{"strips dashes", "Block-level", Options{}, "blocklevel"},
		{"keeps apostrophes", "He’ll", Options{AllowApostrophes: true}, "he'll"},
		{"keeps apostrophes drops dashes", "it's-a", Options{AllowApostrophes: true}, "it'sa"},
		{"keeps dashes", "Block-level", Options{AllowDashes: true}, "block-level"},
		{"keeps dashes drops every apostrophe", "o'neil's-x", Options{AllowDashes: true}, "oneils-x"},
		{"keeps both", "O’Neil-X", Options{AllowApostrophes: true, AllowDashes: true}, "o'neil-x"},
		{"wildcard survives", "*", Options{}, "*"},
		{"empty", "", Options{}, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, String(tc.value, tc.opts))
		})
	}
}

func TestNode(t *testing.T) {
	word := nlcst.Word(nlcst.Text("Don"), nlcst.Punctuation("’"), nlcst.Text("t"))
	assert.Equal(t, "dont", Node(word, Options{}))
	assert.Equal(t, "don't", Node(word, Options{AllowApostrophes: true}))
}

func TestStringIsDeterministic(t *testing.T) {
	assert.Equal(t, String("Self-Service", Options{}), String("self-service", Options{}))
}
