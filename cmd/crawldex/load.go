package main

import (
	"fmt"

	"github.com/fwojciec/crawldex"
)

// Run executes the load command.
func (c *LoadCmd) Run(deps *Dependencies) error {
	input := c.Input
	if input == "" {
		input = deps.Config.IndexPath
	}
	return loadIndex(deps, input)
}

// loadIndex replaces the session index with the index stored at path.
// On failure the session index is reset to empty.
func loadIndex(deps *Dependencies, path string) error {
	idx, err := deps.Stores(path).LoadIndex(deps.Ctx)
	if err != nil {
		deps.Index = crawldex.NewIndex()
		switch crawldex.ErrorCode(err) {
		case crawldex.ENOTFOUND:
			fmt.Fprintf(deps.Stderr, "error: index file not found at %s. Build the index first with 'crawldex build'.\n", path)
		case crawldex.ECORRUPT:
			fmt.Fprintf(deps.Stderr, "error: index file %s is corrupted: %s\n", path, crawldex.ErrorMessage(err))
		default:
			fmt.Fprintf(deps.Stderr, "error: loading index from %s: %s\n", path, crawldex.ErrorMessage(err))
		}
		return err
	}

	deps.Index = idx
	fmt.Fprintf(deps.Stdout, "Index loaded from %s (%d words)\n", path, idx.WordCount())
	return nil
}

// ensureIndex loads the default index file when the session index is empty.
func ensureIndex(deps *Dependencies) error {
	if deps.Index != nil && !deps.Index.IsEmpty() {
		return nil
	}
	fmt.Fprintf(deps.Stdout, "Loading default index file: %s\n", deps.Config.IndexPath)
	return loadIndex(deps, deps.Config.IndexPath)
}
