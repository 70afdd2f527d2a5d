// Package bloom provides a probabilistic membership prefilter for URL sets.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter answers "definitely absent" or "possibly present" for strings.
// A false result from Test is exact; a true result must be confirmed against
// an exact set by the caller.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected items
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add records s in the filter.
func (f *Filter) Add(s string) {
	f.f.AddString(s)
}

// Test returns false if s was never added.
func (f *Filter) Test(s string) bool {
	return f.f.TestString(s)
}
