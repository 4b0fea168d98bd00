package index

// Entry is an indexed phrase together with its analyzed expressions.
type Entry struct {
	Phrase      string
	Expressions []Expression
}

// Anchor returns the first expression of the phrase.
func (e Entry) Anchor() Expression {
	return e.Expressions[0]
}

// PhraseIndex buckets phrases by the comparison key of their first word. The
// wildcard bucket holds phrases that start with "*".
type PhraseIndex struct {
	analyzer *Analyzer
	byWord   map[string][]Entry
	total    int
}

// NewPhraseIndex constructs an empty index using analyzer to split phrases.
func NewPhraseIndex(analyzer *Analyzer) *PhraseIndex {
	return &PhraseIndex{
		analyzer: analyzer,
		byWord:   map[string][]Entry{Wildcard: nil},
	}
}

// BuildPhraseIndex indexes phrases in order.
func BuildPhraseIndex(phrases []string, analyzer *Analyzer) *PhraseIndex {
	idx := NewPhraseIndex(analyzer)
	for _, phrase := range phrases {
		idx.Add(phrase)
	}
	return idx
}

// Add appends phrase to the bucket of its anchor. Duplicates are kept.
func (idx *PhraseIndex) Add(phrase string) {
	expressions := idx.analyzer.Analyze(phrase)
	anchor := expressions[0].Key
	idx.byWord[anchor] = append(idx.byWord[anchor], Entry{Phrase: phrase, Expressions: expressions})
	idx.total++
}

// Lookup returns the candidates for a normalized word: the wildcard bucket
// followed by the word's own bucket.
func (idx *PhraseIndex) Lookup(word string) []Entry {
	wildcard := idx.byWord[Wildcard]
	exact := idx.byWord[word]
	if len(wildcard)+len(exact) == 0 {
		return nil
	}

	candidates := make([]Entry, 0, len(wildcard)+len(exact))
	candidates = append(candidates, wildcard...)
	return append(candidates, exact...)
}

// Len returns the number of indexed phrases.
func (idx *PhraseIndex) Len() int {
	return idx.total
}

// Buckets returns the number of distinct non-empty anchors.
func (idx *PhraseIndex) Buckets() int {
	buckets := 0
	for _, entries := range idx.byWord {
		if len(entries) > 0 {
			buckets++
		}
	}
	return buckets
}
