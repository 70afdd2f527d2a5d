package crawldex

import (
	"maps"
	"slices"
)

// SearchResult holds the outcome of an AND query.
type SearchResult struct {
	// Terms are the tokenized query words in query order.
	Terms []string

	// URLs are the pages containing every term, sorted ascending.
	URLs []string

	// Missing is the first term absent from the index, if any.
	// A missing term ends the search with no matches.
	Missing string
}

// Search returns the pages of idx that contain every word of phrase.
// The phrase is normalized with Tokenize, the same way page text is indexed.
// Returns EINVALID if the phrase contains no searchable terms.
func Search(idx *Index, phrase string) (*SearchResult, error) {
	terms := Tokenize(phrase)
	if len(terms) == 0 {
		return nil, Errorf(EINVALID, "empty query: provide at least one search term")
	}
	if idx == nil {
		idx = NewIndex()
	}

	result := &SearchResult{Terms: terms, URLs: []string{}}

	first := terms[0]
	if !idx.Has(first) {
		result.Missing = first
		return result, nil
	}

	matches := make(map[string]struct{})
	for url := range idx.words[first] {
		matches[url] = struct{}{}
	}

	for _, term := range terms[1:] {
		postings, ok := idx.words[term]
		if !ok {
			result.Missing = term
			return result, nil
		}
		for url := range matches {
			if _, ok := postings[url]; !ok {
				delete(matches, url)
			}
		}
		if len(matches) == 0 {
			break
		}
	}

	result.URLs = slices.Sorted(maps.Keys(matches))
	return result, nil
}
