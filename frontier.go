package crawldex

import "context"

// URLFrontier manages the crawl queue and the visited set.
//
// A URL enters the visited set exactly once, when the caller dequeues it for
// processing. Pop does not mark the URL visited; the caller checks Visited,
// skips when true, and otherwise calls MarkVisited before fetching.
type URLFrontier interface {
	// Push appends a URL to the queue.
	// Returns false if the URL is already visited or pending.
	Push(url string) bool

	// Pop removes and returns the oldest pending URL.
	// Returns false if the frontier is empty.
	Pop() (string, bool)

	// MarkVisited records the URL as processed.
	MarkVisited(url string)

	// Visited returns true if the URL has been marked visited.
	Visited(url string) bool

	// Len returns the number of URLs in the queue.
	Len() int

	// VisitedCount returns the number of visited URLs.
	VisitedCount() int
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error

	// Done records that a request to the domain has completed.
	Done(domain string)
}
