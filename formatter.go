package crawldex

import (
	"fmt"
	"strings"
)

// FormatPostings formats the postings of a word for display, one URL per
// line, highest count first.
func FormatPostings(word string, postings Postings) string {
	if len(postings) == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Inverted index for %q\n", word)
	for _, p := range postings.Ranked() {
		fmt.Fprintf(&b, "  %s: %d occurrence(s)\n", p.URL, p.Count)
	}
	return b.String()
}
