// Package metrics defines the Prometheus collectors for a classification
// run and writes them to a textfile on exit.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/rcliao/lexcount/internal/model"
)

// Metrics holds the collectors for one run. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	TokensScanned        prometheus.Counter
	TokensMatched        prometheus.Counter
	SegmentsFlushed      prometheus.Counter
	CategoryHits         *prometheus.CounterVec
	DictionaryEntries    prometheus.Gauge
	DictionaryCategories prometheus.Gauge

	registry   *prometheus.Registry
	categories []string
}

// New creates the collectors and registers them on a private registry.
func New() *Metrics {
	m := &Metrics{
		TokensScanned: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "lexcount_tokens_scanned_total",
				Help: "Total number of input tokens read.",
			},
		),
		TokensMatched: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "lexcount_tokens_matched_total",
				Help: "Total number of tokens that matched a dictionary entry.",
			},
		),
		SegmentsFlushed: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "lexcount_segments_flushed_total",
				Help: "Total number of segment records emitted.",
			},
		),
		CategoryHits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lexcount_category_hits_total",
				Help: "Total category hits across all segments.",
			},
			[]string{"category"},
		),
		DictionaryEntries: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "lexcount_dictionary_entries",
				Help: "Number of deduplicated dictionary entries.",
			},
		),
		DictionaryCategories: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "lexcount_dictionary_categories",
				Help: "Number of dictionary categories.",
			},
		),
		registry: prometheus.NewRegistry(),
	}

	m.registry.MustRegister(
		m.TokensScanned,
		m.TokensMatched,
		m.SegmentsFlushed,
		m.CategoryHits,
		m.DictionaryEntries,
		m.DictionaryCategories,
	)
	return m
}

// SetDictionary records the dictionary shape and the category order used
// to label segment counts.
func (m *Metrics) SetDictionary(categories []string, entries int) {
	if m == nil {
		return
	}
	m.categories = categories
	m.DictionaryCategories.Set(float64(len(categories)))
	m.DictionaryEntries.Set(float64(entries))
}

// ObserveToken counts one scanned token.
func (m *Metrics) ObserveToken(matched bool) {
	if m == nil {
		return
	}
	m.TokensScanned.Inc()
	if matched {
		m.TokensMatched.Inc()
	}
}

// ObserveSegment adds an emitted record's category counts.
func (m *Metrics) ObserveSegment(rec model.Record) {
	if m == nil {
		return
	}
	m.SegmentsFlushed.Inc()
	for i, n := range rec.Counts {
		if n > 0 && i < len(m.categories) {
			m.CategoryHits.WithLabelValues(m.categories[i]).Add(float64(n))
		}
	}
}

// Gatherer exposes the private registry.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// WriteFile writes every metric in the text exposition format.
func (m *Metrics) WriteFile(path string) error {
	if m == nil {
		return nil
	}
	return prometheus.WriteToTextfile(path, m.registry)
}
