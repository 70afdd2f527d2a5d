package main

import (
	"fmt"

	"github.com/fwojciec/crawldex"
)

// Run executes the print command.
func (c *PrintCmd) Run(deps *Dependencies) error {
	if err := ensureIndex(deps); err != nil {
		return err
	}

	words := crawldex.Tokenize(c.Word)
	if len(words) != 1 {
		fmt.Fprintln(deps.Stderr, "Please provide a single word to print the index for.")
		return nil
	}
	word := words[0]

	postings := deps.Index.Postings(word)
	if len(postings) == 0 {
		fmt.Fprintf(deps.Stdout, "Word %q not found in the index.\n", word)
		return nil
	}

	fmt.Fprint(deps.Stdout, crawldex.FormatPostings(word, postings))
	return nil
}
