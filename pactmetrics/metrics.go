package pactmetrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors for one engine instance. Each instance
// carries its own prometheus.Registry rather than registering against
// the global default, so multiple engines (or tests) can coexist without
// a duplicate-registration panic.
type Metrics struct {
	Registry *prometheus.Registry

	buildDuration         *prometheus.HistogramVec
	executeDuration       *prometheus.HistogramVec
	bestMatcherSelections *prometheus.CounterVec
}

// New registers and returns a fresh set of collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		Registry: reg,
		buildDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "pact_matching",
			Subsystem: "planbuild",
			Name:      "duration_seconds",
			Help:      "Time to compile an expected interaction into an execution plan.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"axis"}),
		executeDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "pact_matching",
			Subsystem: "planexec",
			Name:      "duration_seconds",
			Help:      "Time to evaluate an execution plan against an actual interaction.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"axis"}),
		bestMatcherSelections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pact_matching",
			Subsystem: "matchrule",
			Name:      "best_matcher_selections_total",
			Help:      "Count of select_best_matcher calls, by category and whether the result was cascaded.",
		}, []string{"category", "cascaded"}),
	}

	reg.MustRegister(m.buildDuration, m.executeDuration, m.bestMatcherSelections)
	return m
}

// ObserveBuild records how long building the plan for axis ("request" or
// "response") took.
func (m *Metrics) ObserveBuild(axis string, d time.Duration) {
	m.buildDuration.WithLabelValues(axis).Observe(d.Seconds())
}

// ObserveExecute records how long executing the plan for axis took.
func (m *Metrics) ObserveExecute(axis string, d time.Duration) {
	m.executeDuration.WithLabelValues(axis).Observe(d.Seconds())
}

// ObserveBestMatcherSelection increments the counter for one
// select_best_matcher call.
func (m *Metrics) ObserveBestMatcherSelection(category string, cascaded bool) {
	m.bestMatcherSelections.WithLabelValues(category, strconv.FormatBool(cascaded)).Inc()
}
