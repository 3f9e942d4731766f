// Package metrics records search activity as Prometheus metrics.
//
// A Recorder implements search.Observer; pass it with search.WithObserver and
// every finished call is counted under its strategy label.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/lvsearch/search"
)

// Outcome label values for lvsearch_searches_total.
const (
	OutcomeFound     = "found"
	OutcomeExhausted = "exhausted"
	OutcomeError     = "error"
)

// Recorder holds the search collectors.
type Recorder struct {
	searches  *prometheus.CounterVec
	expanded  *prometheus.CounterVec
	generated *prometheus.CounterVec
	cost      *prometheus.HistogramVec
	duration  *prometheus.HistogramVec
}

var _ search.Observer = (*Recorder)(nil)

// New creates a Recorder and registers its collectors with reg.
// A nil reg leaves the collectors unregistered.
func New(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		searches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lvsearch_searches_total",
				Help: "Total number of search calls by strategy and outcome",
			},
			[]string{"strategy", "outcome"},
		),
		expanded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lvsearch_expanded_states_total",
				Help: "Total number of states expanded",
			},
			[]string{"strategy"},
		),
		generated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lvsearch_generated_states_total",
				Help: "Total number of successor entries pushed onto a frontier",
			},
			[]string{"strategy"},
		),
		cost: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "lvsearch_solution_cost",
				Help:    "Cost of the solutions found",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"strategy"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "lvsearch_search_duration_seconds",
				Help:    "Wall-clock duration of search calls",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"strategy"},
		),
	}
	if reg != nil {
		reg.MustRegister(r.searches, r.expanded, r.generated, r.cost, r.duration)
	}

	return r
}

// ObserveSearch records one finished search call.
func (r *Recorder) ObserveSearch(s search.Summary) {
	strategy := s.Strategy.String()
	r.searches.WithLabelValues(strategy, Outcome(s)).Inc()
	r.expanded.WithLabelValues(strategy).Add(float64(s.Expanded))
	r.generated.WithLabelValues(strategy).Add(float64(s.Generated))
	r.duration.WithLabelValues(strategy).Observe(s.Duration.Seconds())
	if s.Err == nil && s.Found {
		r.cost.WithLabelValues(strategy).Observe(s.Cost)
	}
}

// Outcome classifies a summary as found, exhausted or error.
func Outcome(s search.Summary) string {
	switch {
	case s.Err != nil:
		return OutcomeError
	case s.Found:
		return OutcomeFound
	default:
		return OutcomeExhausted
	}
}
