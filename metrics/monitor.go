// Package metrics exposes search activity as Prometheus metrics.
package metrics

import (
	"github.com/clemsciences/cltk-query/core"
	"github.com/clemsciences/cltk-query/results"
	"github.com/clemsciences/cltk-query/search"
	"github.com/prometheus/client_golang/prometheus"
)

// Monitor is a search.SearchMonitor that records Prometheus metrics.
// It is safe for concurrent use.
type Monitor struct {
	SearchesTotal       *prometheus.CounterVec
	WindowsTestedTotal  prometheus.Counter
	WindowsMatchedTotal prometheus.Counter
	MatchesPerDocument  prometheus.Histogram
}

var _ search.SearchMonitor = (*Monitor)(nil)

// NewMonitor creates the collectors and registers them on reg.
func NewMonitor(reg prometheus.Registerer) (*Monitor, error) {
	m := &Monitor{
		SearchesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cltkquery_searches_total",
				Help: "Total document searches by query shape (word, sequence).",
			},
			[]string{"shape"},
		),
		WindowsTestedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "cltkquery_windows_tested_total",
				Help: "Total candidate positions tested against a query.",
			},
		),
		WindowsMatchedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "cltkquery_windows_matched_total",
				Help: "Total candidate positions that satisfied a query.",
			},
		),
		MatchesPerDocument: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "cltkquery_matches_per_document",
				Help:    "Number of matches found per searched document.",
				Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 500},
			},
		),
	}

	for _, c := range []prometheus.Collector{
		m.SearchesTotal,
		m.WindowsTestedTotal,
		m.WindowsMatchedTotal,
		m.MatchesPerDocument,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Start counts a search by query shape.
func (m *Monitor) Start(_ *core.Document, query core.Query) {
	shape := "word"
	if query.IsSequence() {
		shape = "sequence"
	}
	m.SearchesTotal.WithLabelValues(shape).Inc()
}

// WindowTested counts a tested position and, if it matched, a matched one.
func (m *Monitor) WindowTested(_ int, matched bool) {
	m.WindowsTestedTotal.Inc()
	if matched {
		m.WindowsMatchedTotal.Inc()
	}
}

// Finish records the number of matches found in the document.
func (m *Monitor) Finish(result *results.SearchResult) {
	m.MatchesPerDocument.Observe(float64(result.Total()))
}

// WriteTextfile writes every metric gathered by g to path in the Prometheus
// text format, for one-shot runs that have no scrape endpoint.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
