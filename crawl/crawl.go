// Package crawl provides the crawl-and-index pipeline. It coordinates the
// URL frontier, page fetching and parsing, link normalization and index
// updates for a single bounded crawl.
package crawl

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"github.com/fwojciec/crawldex"
	"github.com/google/uuid"
)

// Frontier configuration.
const (
	// frontierExpectedURLs is the expected number of URLs for Bloom filter sizing.
	frontierExpectedURLs = 10000
	// frontierFalsePositiveRate is the acceptable false positive rate of the prefilter.
	frontierFalsePositiveRate = 0.01
)

// Crawler walks a single host breadth-first and builds an inverted index of
// the pages it visits.
//
// Pages are processed strictly one at a time with at most one request in
// flight. The RateLimiter inserts the politeness delay between the end of one
// fetch and the start of the next. Failed fetches are not retried.
type Crawler struct {
	Fetcher     crawldex.Fetcher
	Parser      crawldex.Parser
	RateLimiter crawldex.DomainLimiter
	Logger      *slog.Logger

	// NewFrontier creates the URL frontier for each crawl. Defaults to a
	// Bloom-prefiltered FIFO frontier.
	NewFrontier func() crawldex.URLFrontier

	// MaxPages stops the crawl after this many visited pages. Zero means
	// the crawl runs until the frontier is empty.
	MaxPages int
}

// Result holds the outcome of a crawl.
type Result struct {
	CrawlID string
	Index   *crawldex.Index

	// Visited counts every URL marked visited, including failed ones.
	Visited int
	Failed  int
	Skipped int

	// Words is the number of distinct words in Index.
	Words int
}

// ProgressEvent reports progress during a crawl.
type ProgressEvent struct {
	Type    ProgressType
	URL     string
	Visited int
	Pending int
	Links   int
	Error   error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressSkipped
	ProgressFinished
)

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// Crawl crawls from startURL until the frontier is empty and returns a fresh
// index of every page visited. Links are followed only on the host of
// startURL. The progress callback, if provided, receives events as crawling
// proceeds.
//
// Returns EINVALID if startURL is not an absolute http(s) URL. Page-level
// failures never fail the crawl; they are counted in Result.Failed.
func (c *Crawler) Crawl(ctx context.Context, startURL string, progress ProgressFunc) (*Result, error) {
	normalizer, err := NewNormalizer(startURL)
	if err != nil {
		return nil, err
	}
	start, ok := normalizer.Normalize(startURL, startURL)
	if !ok {
		return nil, crawldex.Errorf(crawldex.EINVALID, "invalid start URL %q", startURL)
	}

	result := &Result{
		CrawlID: uuid.NewString(),
		Index:   crawldex.NewIndex(),
	}
	logger := c.logger().With("crawl", result.CrawlID)

	frontier := c.newFrontier()
	frontier.Push(start)

	processor := &Processor{
		Fetcher:    c.Fetcher,
		Parser:     c.Parser,
		Normalizer: normalizer,
	}

	notify := func(event ProgressEvent) {
		if progress == nil {
			return
		}
		event.Visited = frontier.VisitedCount()
		event.Pending = frontier.Len()
		progress(event)
	}

	logger.Info("crawl started", "url", start, "host", normalizer.Host())
	notify(ProgressEvent{Type: ProgressStarted, URL: start})

	begin := time.Now()
	for {
		if c.MaxPages > 0 && frontier.VisitedCount() >= c.MaxPages {
			logger.Warn("page limit reached", "limit", c.MaxPages, "pending", frontier.Len())
			break
		}
		if ctx.Err() != nil {
			logger.Warn("crawl interrupted", "err", ctx.Err())
			break
		}

		link, ok := frontier.Pop()
		if !ok {
			break
		}

		if frontier.Visited(link) {
			result.Skipped++
			logger.Debug("skipping visited url", "url", link)
			notify(ProgressEvent{Type: ProgressSkipped, URL: link})
			continue
		}
		frontier.MarkVisited(link)

		host := hostOf(link)
		if err := c.wait(ctx, logger, host); err != nil {
			logger.Warn("crawl interrupted", "url", link, "err", err)
			break
		}

		page := processor.Process(ctx, result.Index, link)
		if c.RateLimiter != nil {
			c.RateLimiter.Done(host)
		}
		if page.Err != nil {
			result.Failed++
			logger.Warn("page failed",
				"url", link,
				"stage", page.Stage.String(),
				"err", page.Err,
			)
			notify(ProgressEvent{Type: ProgressFailed, URL: link, Error: page.Err})
			continue
		}

		added := 0
		for _, discovered := range page.Links {
			if frontier.Push(discovered) {
				added++
			}
		}

		logger.Debug("page indexed",
			"url", link,
			"hash", page.Hash,
			"tokens", page.Tokens,
			"words", page.Words,
			"links", len(page.Links),
			"queued", added,
		)
		notify(ProgressEvent{Type: ProgressCompleted, URL: link, Links: added})
	}

	result.Visited = frontier.VisitedCount()
	result.Words = result.Index.WordCount()

	logger.Info("crawl finished",
		"visited", result.Visited,
		"failed", result.Failed,
		"words", result.Words,
		"duration", time.Since(begin),
	)
	notify(ProgressEvent{Type: ProgressFinished})

	return result, nil
}

// wait applies the rate limiter for the host.
func (c *Crawler) wait(ctx context.Context, logger *slog.Logger, host string) error {
	if c.RateLimiter == nil {
		return nil
	}

	begin := time.Now()
	if err := c.RateLimiter.Wait(ctx, host); err != nil {
		return err
	}
	if waited := time.Since(begin); waited > time.Millisecond {
		logger.Debug("politeness delay", "host", host, "waited", waited)
	}
	return nil
}

func (c *Crawler) newFrontier() crawldex.URLFrontier {
	if c.NewFrontier != nil {
		return c.NewFrontier()
	}
	return NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate)
}

func hostOf(link string) string {
	u, err := url.Parse(link)
	if err != nil {
		return ""
	}
	return u.Host
}

func (c *Crawler) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.DiscardHandler)
}
