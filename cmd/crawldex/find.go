package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/crawldex"
)

// Run executes the find command.
func (c *FindCmd) Run(deps *Dependencies) error {
	if err := ensureIndex(deps); err != nil {
		return err
	}

	phrase := strings.Join(c.Query, " ")
	result, err := crawldex.Search(deps.Index, phrase)
	if crawldex.ErrorCode(err) == crawldex.EINVALID {
		fmt.Fprintln(deps.Stderr, "Please provide valid search terms.")
		return nil
	} else if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", crawldex.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Searching for pages containing: %q (keywords: %s)\n", phrase, strings.Join(result.Terms, ", "))

	switch {
	case result.Missing != "":
		fmt.Fprintf(deps.Stdout, "Search term %q not found in index. No pages match.\n", result.Missing)
	case len(result.URLs) == 0:
		fmt.Fprintln(deps.Stdout, "No pages contain all search terms.")
	default:
		fmt.Fprintln(deps.Stdout, "Pages containing all search terms:")
		for _, u := range result.URLs {
			fmt.Fprintln(deps.Stdout, u)
		}
	}

	return nil
}
