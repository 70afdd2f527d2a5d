package crawldex

import (
	"bytes"
	"cmp"
	"encoding/json"
	"maps"
	"slices"
)

// Postings maps a canonical URL to the number of times a word occurs on it.
type Postings map[string]int

// Posting is a single URL and count pair.
type Posting struct {
	URL   string
	Count int
}

// Ranked returns the postings ordered by descending count.
// Ties are broken by URL so the order is stable.
func (p Postings) Ranked() []Posting {
	ranked := make([]Posting, 0, len(p))
	for url, count := range p {
		ranked = append(ranked, Posting{URL: url, Count: count})
	}
	slices.SortFunc(ranked, func(a, b Posting) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.URL, b.URL)
	})
	return ranked
}

// Index is an inverted index from word to Postings.
//
// Every stored count is at least 1 and a (word, URL) pair appears at most
// once. The zero value is an empty index ready to use. An Index is not safe
// for concurrent use.
type Index struct {
	words map[string]Postings
}

// NewIndex returns an empty Index.
func NewIndex() *Index {
	return &Index{words: make(map[string]Postings)}
}

// Update records the word counts of one page. An existing count for the same
// (word, URL) pair is overwritten, not accumulated. Counts below 1 are ignored.
func (idx *Index) Update(url string, counts map[string]int) {
	if idx.words == nil {
		idx.words = make(map[string]Postings)
	}
	for word, count := range counts {
		if count < 1 {
			continue
		}
		postings, ok := idx.words[word]
		if !ok {
			postings = make(Postings)
			idx.words[word] = postings
		}
		postings[url] = count
	}
}

// Postings returns a copy of the postings for word.
// Returns an empty, non-nil Postings if the word is not indexed.
func (idx *Index) Postings(word string) Postings {
	postings, ok := idx.words[word]
	if !ok {
		return Postings{}
	}
	return maps.Clone(postings)
}

// Has returns true if the word is indexed.
func (idx *Index) Has(word string) bool {
	_, ok := idx.words[word]
	return ok
}

// WordCount returns the number of distinct indexed words.
func (idx *Index) WordCount() int {
	return len(idx.words)
}

// IsEmpty returns true if no words are indexed.
func (idx *Index) IsEmpty() bool {
	return len(idx.words) == 0
}

// Words returns the indexed words in ascending order.
func (idx *Index) Words() []string {
	return slices.Sorted(maps.Keys(idx.words))
}

// Serialize encodes the index as indented JSON. Map keys are sorted, so equal
// indexes always serialize to identical bytes.
func (idx *Index) Serialize() ([]byte, error) {
	words := idx.words
	if words == nil {
		words = map[string]Postings{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(words); err != nil {
		return nil, Errorf(EINTERNAL, "encode index: %v", err)
	}
	return buf.Bytes(), nil
}

// DeserializeIndex decodes an index produced by Serialize.
// Words with no postings are dropped. Returns ECORRUPT if the data is not a
// JSON object mapping words to objects of positive integer counts.
func DeserializeIndex(data []byte) (*Index, error) {
	var raw map[string]map[string]int
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, Errorf(ECORRUPT, "invalid index data: %v", err)
	}
	if raw == nil {
		return nil, Errorf(ECORRUPT, "invalid index data: not an object")
	}

	idx := NewIndex()
	for word, postings := range raw {
		if len(postings) == 0 {
			continue
		}
		for url, count := range postings {
			if count < 1 {
				return nil, Errorf(ECORRUPT, "invalid index data: count %d for %q on %s", count, word, url)
			}
		}
		idx.words[word] = Postings(postings)
	}
	return idx, nil
}
