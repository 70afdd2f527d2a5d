package crawl

import (
	"context"
	"time"

	"github.com/fwojciec/crawldex"
	"golang.org/x/time/rate"
)

var _ crawldex.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter enforces a fixed politeness delay between successive requests
// to the same domain using token buckets with a burst of 1. The delay runs
// from the completion of one request to the start of the next, so fetch time
// never shortens the pause. The first request to a domain never waits.
//
// DomainLimiter is not safe for concurrent use.
type DomainLimiter struct {
	limiters map[string]*rate.Limiter
	limit    rate.Limit
}

// NewDomainLimiter creates a new DomainLimiter allowing one request per delay
// for each domain. A delay of zero or less disables waiting.
func NewDomainLimiter(delay time.Duration) *DomainLimiter {
	limit := rate.Inf
	if delay > 0 {
		limit = rate.Every(delay)
	}
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    limit,
	}
}

// Wait blocks until the delay since the last completed request to the domain
// has elapsed. Returns an error if the context is canceled before the wait
// completes.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	limiter, ok := d.limiters[domain]
	if !ok {
		limiter = rate.NewLimiter(d.limit, 1)
		d.limiters[domain] = limiter
	}
	return limiter.Wait(ctx)
}

// Done records that a request to the domain has completed. The next Wait for
// the domain blocks for the full delay counted from now.
func (d *DomainLimiter) Done(domain string) {
	limiter := rate.NewLimiter(d.limit, 1)
	limiter.Allow()
	d.limiters[domain] = limiter
}
