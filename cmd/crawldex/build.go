package main

import (
	"fmt"

	"github.com/fwojciec/crawldex"
	"github.com/fwojciec/crawldex/crawl"
)

// Run executes the build command.
func (c *BuildCmd) Run(deps *Dependencies) error {
	if deps.Crawler == nil {
		err := crawldex.Errorf(crawldex.EINTERNAL, "crawler not configured")
		fmt.Fprintf(deps.Stderr, "error: %s\n", crawldex.ErrorMessage(err))
		return err
	}

	// Apply user-specified crawl settings
	if c.Delay != nil {
		if *c.Delay < 0 {
			err := crawldex.Errorf(crawldex.EINVALID, "delay must not be negative")
			fmt.Fprintf(deps.Stderr, "error: %s\n", crawldex.ErrorMessage(err))
			return err
		}
		deps.Crawler.RateLimiter = crawl.NewDomainLimiter(*c.Delay)
	}
	if c.MaxPages != nil {
		if *c.MaxPages < 0 {
			err := crawldex.Errorf(crawldex.EINVALID, "max pages must not be negative")
			fmt.Fprintf(deps.Stderr, "error: %s\n", crawldex.ErrorMessage(err))
			return err
		}
		deps.Crawler.MaxPages = *c.MaxPages
	}

	startURL := c.StartURL
	if startURL == "" {
		startURL = deps.Config.BaseURL
	}
	output := c.Output
	if output == "" {
		output = deps.Config.IndexPath
	}

	fmt.Fprintf(deps.Stdout, "Starting crawl from %s...\n", startURL)

	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "Crawled: %s (%d new links)\n", event.URL, event.Links)
		case crawl.ProgressSkipped:
			fmt.Fprintf(deps.Stdout, "Skipping (already visited): %s\n", event.URL)
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stdout, "Error crawling %s: %s\n", event.URL, crawldex.ErrorMessage(event.Error))
		}
	}

	result, err := deps.Crawler.Crawl(deps.Ctx, startURL, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", crawldex.ErrorMessage(err))
		return err
	}
	deps.Index = result.Index

	fmt.Fprintln(deps.Stdout, "Crawl finished.")
	fmt.Fprintf(deps.Stdout, "Total pages crawled: %d\n", result.Visited)
	fmt.Fprintf(deps.Stdout, "Total unique words indexed: %d\n", result.Words)

	// A failed save keeps the session index and does not fail the build.
	if err := deps.Stores(output).SaveIndex(deps.Ctx, result.Index); err != nil {
		fmt.Fprintf(deps.Stderr, "error: saving index to %s: %s\n", output, crawldex.ErrorMessage(err))
	} else {
		fmt.Fprintf(deps.Stdout, "Index saved to %s\n", output)
	}

	c.writeMetrics(deps, result.Index)

	return nil
}

// writeMetrics writes crawl metrics when a metrics file is configured.
// Failures are reported and otherwise ignored.
func (c *BuildCmd) writeMetrics(deps *Dependencies, idx *crawldex.Index) {
	path := c.Metrics
	if path == "" {
		path = deps.Config.MetricsFile
	}
	if path == "" || deps.Metrics == nil {
		return
	}

	deps.Metrics.ObserveIndex(idx)
	if err := deps.Metrics.WriteFile(path); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", crawldex.ErrorMessage(err))
		return
	}
	fmt.Fprintf(deps.Stdout, "Metrics written to %s\n", path)
}
