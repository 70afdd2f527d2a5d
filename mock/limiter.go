package mock

import (
	"context"

	"github.com/fwojciec/crawldex"
)

var _ crawldex.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of crawldex.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
	DoneFn func(domain string)
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}

func (l *DomainLimiter) Done(domain string) {
	if l.DoneFn == nil {
		return
	}
	l.DoneFn(domain)
}
