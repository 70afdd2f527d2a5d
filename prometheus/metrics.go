// Package prometheus records crawl metrics with the Prometheus client and
// writes them in the text exposition format.
package prometheus

import (
	"context"
	"time"

	"github.com/fwojciec/crawldex"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for a crawl.
type Metrics struct {
	Registry *prometheus.Registry

	FetchesTotal  *prometheus.CounterVec
	FetchDuration prometheus.Histogram
	FetchedBytes  prometheus.Counter
	IndexedWords  prometheus.Gauge
}

// NewMetrics creates the collectors and registers them on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		FetchesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "crawldex_fetches_total",
				Help: "Total page fetches by result (ok, error).",
			},
			[]string{"result"},
		),
		FetchDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "crawldex_fetch_duration_seconds",
				Help:    "Page fetch latency in seconds.",
				Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
		),
		FetchedBytes: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "crawldex_fetched_bytes_total",
				Help: "Total bytes of HTML fetched.",
			},
		),
		IndexedWords: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "crawldex_indexed_words",
				Help: "Number of distinct words in the last built index.",
			},
		),
	}

	m.Registry.MustRegister(
		m.FetchesTotal,
		m.FetchDuration,
		m.FetchedBytes,
		m.IndexedWords,
	)
	return m
}

// ObserveIndex records the size of idx.
func (m *Metrics) ObserveIndex(idx *crawldex.Index) {
	m.IndexedWords.Set(float64(idx.WordCount()))
}

// WriteFile writes every registered metric to path in the text format.
// The file is written atomically.
func (m *Metrics) WriteFile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.Registry); err != nil {
		return crawldex.Errorf(crawldex.EINTERNAL, "write metrics: %v", err)
	}
	return nil
}

// Ensure Fetcher implements crawldex.Fetcher.
var _ crawldex.Fetcher = (*Fetcher)(nil)

// Fetcher wraps a Fetcher and records fetch counts, latency and size.
type Fetcher struct {
	next    crawldex.Fetcher
	metrics *Metrics
}

// NewFetcher creates a new Fetcher.
func NewFetcher(next crawldex.Fetcher, metrics *Metrics) *Fetcher {
	return &Fetcher{next: next, metrics: metrics}
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	begin := time.Now()
	html, err := f.next.Fetch(ctx, url)
	f.metrics.FetchDuration.Observe(time.Since(begin).Seconds())
	if err != nil {
		f.metrics.FetchesTotal.WithLabelValues("error").Inc()
		return html, err
	}
	f.metrics.FetchesTotal.WithLabelValues("ok").Inc()
	f.metrics.FetchedBytes.Add(float64(len(html)))
	return html, nil
}

// Close delegates to the wrapped fetcher.
func (f *Fetcher) Close() error {
	return f.next.Close()
}
