// Package metrics exposes rating pipeline diagnostics as Prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// RatingMetrics counts the degraded-but-not-fatal outcomes of the rating
// pipeline: defaulted destinations, ambiguous prefixes, classifier
// fallbacks and substituted timestamps.
type RatingMetrics struct {
	RecordsRated          prometheus.Counter
	DefaultedDestinations prometheus.Counter
	AmbiguousPrefixes     prometheus.Counter
	ClassifierFallbacks   prometheus.Counter
	TimestampFallbacks    prometheus.Counter
	BatchDuration         prometheus.Histogram
}

func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func New(reg *prometheus.Registry) *RatingMetrics {
	m := &RatingMetrics{
		RecordsRated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "callrater_records_rated_total",
			Help: "Number of CDR lines rated.",
		}),
		DefaultedDestinations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "callrater_defaulted_destinations_total",
			Help: "Number of destinations rated at the default rate.",
		}),
		AmbiguousPrefixes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "callrater_ambiguous_prefixes_total",
			Help: "Number of resolutions that skipped an ambiguous dial-plan match.",
		}),
		ClassifierFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "callrater_classifier_fallbacks_total",
			Help: "Number of resolutions served by the phone-number classifier.",
		}),
		TimestampFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "callrater_timestamp_fallbacks_total",
			Help: "Number of records whose timestamps were substituted with the current time.",
		}),
		BatchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "callrater_batch_duration_seconds",
			Help:    "Wall time spent rating one batch of CDR lines.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(
		m.RecordsRated,
		m.DefaultedDestinations,
		m.AmbiguousPrefixes,
		m.ClassifierFallbacks,
		m.TimestampFallbacks,
		m.BatchDuration,
	)
	return m
}

// NewNop returns metrics backed by a throwaway registry, for tests and the
// batch converter.
func NewNop() *RatingMetrics {
	return New(prometheus.NewRegistry())
}
