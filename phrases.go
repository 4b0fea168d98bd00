package phrasesearch

import (
	"fmt"
	"reflect"
	"sort"
)

// Phrases is the set of phrases to search for: a PhraseList or a
// PhraseKeySet.
type Phrases interface {
	List() []string
}

// PhraseList is an ordered list of phrases. Matches starting at the same word
// are reported in list order.
type PhraseList []string

// List returns the phrases in order.
func (p PhraseList) List() []string {
	return []string(p)
}

// PhraseKeySet uses the keys of a map as phrases; values are ignored. Keys are
// searched in lexical order.
type PhraseKeySet map[string]any

// List returns the sorted keys.
func (p PhraseKeySet) List() []string {
	keys := make([]string, 0, len(p))
	for key := range p {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// resolvePhrases turns the accepted phrase shapes into an ordered list.
func resolvePhrases(phrases any) ([]string, error) {
	switch p := phrases.(type) {
	case nil:
		return nil, ErrInvalidPhrases
	case []string:
		return p, nil
	case Phrases:
		return p.List(), nil
	case map[string]any:
		return PhraseKeySet(p).List(), nil
	}

	v := reflect.ValueOf(phrases)
	if v.Kind() == reflect.Map && v.Type().Key().Kind() == reflect.String {
		keys := make([]string, 0, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			keys = append(keys, iter.Key().String())
		}
		sort.Strings(keys)
		return keys, nil
	}

	return nil, fmt.Errorf("%w, got %T", ErrInvalidPhrases, phrases)
}
