package index

import (
	"strings"
	"testing"
)

func phrasesOf(entries []Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Phrase)
	}
	return out
}

func TestPhraseIndexBucketsByAnchor(t *testing.T) {
	idx := BuildPhraseIndex([]string{"Dont do", "do", "dont", "that or this"}, NewAnalyzer(strings.ToLower))

	if idx.Len() != 4 {
		t.Fatalf("expected 4 phrases, got %d", idx.Len())
	}
	if idx.Buckets() != 3 {
		t.Fatalf("expected 3 buckets, got %d", idx.Buckets())
	}

	got := phrasesOf(idx.Lookup("dont"))
	if strings.Join(got, "|") != "Dont do|dont" {
		t.Fatalf("expected insertion order within bucket, got %v", got)
	}

	if res := idx.Lookup("missing"); res != nil {
		t.Fatalf("expected no candidates, got %v", phrasesOf(res))
	}
}

func TestPhraseIndexWildcardBucketComesFirst(t *testing.T) {
	idx := BuildPhraseIndex([]string{"hell", "* selfservice", "hell yes", "* hell"}, NewAnalyzer(strings.ToLower))

	got := phrasesOf(idx.Lookup("hell"))
	want := []string{"* selfservice", "* hell", "hell", "hell yes"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("expected %v got %v", want, got)
	}

	other := phrasesOf(idx.Lookup("anything"))
	if strings.Join(other, "|") != "* selfservice|* hell" {
		t.Fatalf("expected wildcard phrases for every word, got %v", other)
	}
}

func TestPhraseIndexKeepsDuplicates(t *testing.T) {
	idx := BuildPhraseIndex([]string{"do", "do"}, NewAnalyzer(nil))
	if got := idx.Lookup("do"); len(got) != 2 {
		t.Fatalf("expected duplicate phrases to be kept, got %d", len(got))
	}
}

func TestPhraseIndexLookupDoesNotAlias(t *testing.T) {
	idx := BuildPhraseIndex([]string{"* a", "b"}, NewAnalyzer(nil))
	first := idx.Lookup("b")
	first[0] = Entry{Phrase: "mutated"}

	second := idx.Lookup("b")
	if second[0].Phrase != "* a" {
		t.Fatalf("lookup results must not alias index storage, got %v", phrasesOf(second))
	}
}

func TestPhraseIndexEmptyPhraseAnchorsOnEmptyKey(t *testing.T) {
	idx := BuildPhraseIndex([]string{""}, NewAnalyzer(nil))
	if got := idx.Lookup(""); len(got) != 1 || got[0].Phrase != "" {
		t.Fatalf("expected the empty phrase under the empty key, got %v", phrasesOf(got))
	}
}
