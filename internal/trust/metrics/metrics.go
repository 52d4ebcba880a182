package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the trust module.
type Metrics struct {
	// Identity evaluation outcomes by verdict
	Evaluations *prometheus.CounterVec

	// Dependent-app checks by result (hit, cached, not_installed, lookup_failed, no)
	DependentChecks *prometheus.CounterVec

	// Registry lookup latency for dependent checks
	LookupLatency prometheus.Histogram
}

// New creates a new Metrics instance with all trust module metrics registered.
func New() *Metrics {
	return &Metrics{
		Evaluations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "apptrust_identity_evaluations_total",
			Help: "Total identity evaluations by resulting verdict",
		}, []string{"verdict"}),

		DependentChecks: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "apptrust_dependent_checks_total",
			Help: "Total dependent-app checks by result",
		}, []string{"result"}),

		LookupLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "apptrust_registry_lookup_duration_seconds",
			Help:    "Duration of package registry lookups during dependent-app checks",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),
	}
}

// IncrementEvaluation records an identity evaluation verdict.
func (m *Metrics) IncrementEvaluation(verdict string) {
	if m != nil {
		m.Evaluations.WithLabelValues(verdict).Inc()
	}
}

// IncrementDependentCheck records a dependent-app check result.
func (m *Metrics) IncrementDependentCheck(result string) {
	if m != nil {
		m.DependentChecks.WithLabelValues(result).Inc()
	}
}

// ObserveLookupLatency records the duration of a registry lookup.
func (m *Metrics) ObserveLookupLatency(d time.Duration) {
	if m != nil {
		m.LookupLatency.Observe(d.Seconds())
	}
}
