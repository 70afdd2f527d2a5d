package crawl

import (
	"github.com/fwojciec/crawldex"
	"github.com/fwojciec/crawldex/bloom"
)

// Compile-time interface verification.
var _ crawldex.URLFrontier = (*Frontier)(nil)

// Frontier is an in-memory FIFO URL frontier with a visited set.
//
// A Bloom filter tracks every URL that was ever pushed or visited. Push and
// Visited consult it first and fall back to the exact sets only on a possible
// hit, so false positives never suppress a URL.
//
// Frontier is not safe for concurrent use. The crawl loop is the only caller
// and processes one URL at a time, which is what makes the push-time check
// sufficient: nothing can be pushed between a Pop and the MarkVisited that
// follows it.
type Frontier struct {
	seen    *bloom.Filter
	queue   []string
	pending map[string]struct{}
	visited map[string]struct{}
}

// NewFrontier creates a new Frontier sized for n expected URLs
// with the given false positive rate for the prefilter.
func NewFrontier(n uint, fpRate float64) *Frontier {
	return &Frontier{
		seen:    bloom.NewFilter(n, fpRate),
		pending: make(map[string]struct{}),
		visited: make(map[string]struct{}),
	}
}

// Push appends a URL to the queue.
// Returns false if the URL is already visited or pending.
func (f *Frontier) Push(url string) bool {
	if f.seen.Test(url) {
		if _, ok := f.visited[url]; ok {
			return false
		}
		if _, ok := f.pending[url]; ok {
			return false
		}
	}
	f.seen.Add(url)
	f.pending[url] = struct{}{}
	f.queue = append(f.queue, url)
	return true
}

// Pop removes and returns the oldest pending URL.
// The bool result is false if the frontier is empty.
// The URL is not marked visited.
func (f *Frontier) Pop() (string, bool) {
	if len(f.queue) == 0 {
		return "", false
	}
	url := f.queue[0]
	f.queue[0] = ""
	f.queue = f.queue[1:]
	delete(f.pending, url)
	return url, true
}

// MarkVisited records the URL as processed.
func (f *Frontier) MarkVisited(url string) {
	f.seen.Add(url)
	f.visited[url] = struct{}{}
}

// Visited returns true if the URL has been marked visited.
func (f *Frontier) Visited(url string) bool {
	if !f.seen.Test(url) {
		return false
	}
	_, ok := f.visited[url]
	return ok
}

// Len returns the number of URLs in the queue.
func (f *Frontier) Len() int {
	return len(f.queue)
}

// VisitedCount returns the number of visited URLs.
func (f *Frontier) VisitedCount() int {
	return len(f.visited)
}
