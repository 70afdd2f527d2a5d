package crawl

import (
	"context"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/crawldex"
)

// Stage identifies where processing of a page stopped.
type Stage int

const (
	StageDone Stage = iota
	StageFetch
	StageParse
)

// String returns the stage name used in logs.
func (s Stage) String() string {
	switch s {
	case StageFetch:
		return "fetch"
	case StageParse:
		return "parse"
	default:
		return "done"
	}
}

// PageResult holds the outcome of processing a single URL.
type PageResult struct {
	URL string

	// Links are the accepted canonical links in document order.
	// Duplicates are kept; the frontier deduplicates.
	Links []string

	// Tokens is the number of words on the page, Words the number of
	// distinct ones.
	Tokens int
	Words  int

	// Hash is the xxhash of the fetched body.
	Hash string

	Stage Stage
	Err   error
}

// Processor fetches, parses and indexes one page at a time.
type Processor struct {
	Fetcher    crawldex.Fetcher
	Parser     crawldex.Parser
	Normalizer *Normalizer
}

// Process fetches url, records its word counts in idx and returns the links
// it discovered. Failures are reported in the result, never returned or
// panicked: a fetch failure yields no links, a parse failure yields no links
// and leaves idx untouched.
func (p *Processor) Process(ctx context.Context, idx *crawldex.Index, url string) *PageResult {
	result := &PageResult{URL: url}

	html, err := p.Fetcher.Fetch(ctx, url)
	if err != nil {
		result.Stage = StageFetch
		if crawldex.ErrorCode(err) != crawldex.EFETCH {
			err = crawldex.Errorf(crawldex.EFETCH, "fetch %s: %v", url, err)
		}
		result.Err = err
		return result
	}
	result.Hash = computeHash(html)

	page, err := p.parse(html)
	if err != nil {
		result.Stage = StageParse
		if crawldex.ErrorCode(err) != crawldex.EPARSE {
			err = crawldex.Errorf(crawldex.EPARSE, "parse %s: %v", url, err)
		}
		result.Err = err
		return result
	}

	tokens := crawldex.Tokenize(page.Text)
	counts := crawldex.CountWords(tokens)
	idx.Update(url, counts)
	result.Tokens = len(tokens)
	result.Words = len(counts)

	for _, href := range page.Links {
		if link, ok := p.Normalizer.Normalize(url, href); ok {
			result.Links = append(result.Links, link)
		}
	}

	return result
}

// parse runs the parser and converts a panic into an EPARSE error.
func (p *Processor) parse(html string) (page *crawldex.ParsedPage, err error) {
	defer func() {
		if r := recover(); r != nil {
			page, err = nil, crawldex.Errorf(crawldex.EPARSE, "parser panic: %v", r)
		}
	}()

	page, err = p.Parser.Parse(html)
	if err == nil && page == nil {
		err = crawldex.Errorf(crawldex.EPARSE, "parser returned no page")
	}
	return page, err
}

// computeHash computes a hash of the content using xxhash.
func computeHash(content string) string {
	h := xxhash.Sum64String(content)
	return fmt.Sprintf("%x", h)
}
