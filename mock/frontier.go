package mock

import "github.com/fwojciec/crawldex"

var _ crawldex.URLFrontier = (*URLFrontier)(nil)

// URLFrontier is a mock implementation of crawldex.URLFrontier.
type URLFrontier struct {
	PushFn         func(url string) bool
	PopFn          func() (string, bool)
	MarkVisitedFn  func(url string)
	VisitedFn      func(url string) bool
	LenFn          func() int
	VisitedCountFn func() int
}

func (f *URLFrontier) Push(url string) bool {
	return f.PushFn(url)
}

func (f *URLFrontier) Pop() (string, bool) {
	return f.PopFn()
}

func (f *URLFrontier) MarkVisited(url string) {
	f.MarkVisitedFn(url)
}

func (f *URLFrontier) Visited(url string) bool {
	return f.VisitedFn(url)
}

func (f *URLFrontier) Len() int {
	return f.LenFn()
}

func (f *URLFrontier) VisitedCount() int {
	return f.VisitedCountFn()
}
