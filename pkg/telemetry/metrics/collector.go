// Package metrics provides Prometheus metrics for the lint and analysis
// engines: call counters labelled by outcome, violation counters by
// severity and category, score distribution, and scan latency.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"adlint-hq/saturn/pkg/compliance"
	"adlint-hq/saturn/pkg/experiment"
)

// Collector registers and records all Saturn metrics.
type Collector struct {
	registry *prometheus.Registry

	lintTotal      *prometheus.CounterVec
	violationTotal *prometheus.CounterVec
	lintScore      prometheus.Histogram
	lintDuration   prometheus.Histogram
	analysisTotal  *prometheus.CounterVec
	breachTotal    *prometheus.CounterVec
}

// NewCollector creates a metrics collector on the given registry. A nil
// registry gets a fresh private one.
func NewCollector(registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	factory := promauto.With(registry)

	return &Collector{
		registry: registry,

		lintTotal: factory.NewCounterVec(counterOpts(
			"saturn_lint_total",
			"Total lint calls by platform, vertical, and overall status.",
		), []string{"platform", "vertical", "overall"}),

		violationTotal: factory.NewCounterVec(counterOpts(
			"saturn_lint_violations_total",
			"Total violations detected, by severity and category.",
		), []string{"severity", "category"}),

		lintScore: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "saturn_lint_score",
			Help:    "Distribution of compliance scores.",
			Buckets: []float64{0, 20, 40, 60, 80, 90, 95, 100},
		}),

		lintDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name: "saturn_lint_duration_seconds",
			Help: "Lint call latency in seconds.",
			// Pattern scanning is sub-millisecond in the common case.
			Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.05},
		}),

		analysisTotal: factory.NewCounterVec(counterOpts(
			"saturn_experiment_analyses_total",
			"Total experiment analyses by recommendation.",
		), []string{"recommendation"}),

		breachTotal: factory.NewCounterVec(counterOpts(
			"saturn_guardrail_breaches_total",
			"Total guardrail breaches by metric.",
		), []string{"metric"}),
	}
}

// ObserveLint records one lint call.
func (c *Collector) ObserveLint(platform, vertical string, result *compliance.Result, duration time.Duration) {
	c.lintTotal.WithLabelValues(platform, vertical, string(result.Overall)).Inc()
	c.lintScore.Observe(float64(result.Score))
	c.lintDuration.Observe(duration.Seconds())

	for _, v := range result.Violations {
		c.violationTotal.WithLabelValues(string(v.Severity), string(v.Category)).Inc()
	}
}

// ObserveAnalysis records one experiment analysis.
func (c *Collector) ObserveAnalysis(analysis *experiment.Analysis, breaches []experiment.Breach) {
	c.analysisTotal.WithLabelValues(string(analysis.Recommendation)).Inc()
	for _, b := range breaches {
		c.breachTotal.WithLabelValues(b.Guardrail.Metric).Inc()
	}
}

// Handler returns the Prometheus exposition handler for this collector's
// registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
		ErrorHandling:     promhttp.ContinueOnError,
	})
}

// Registry returns the underlying registry, for tests and composition.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

func counterOpts(name, help string) prometheus.CounterOpts {
	return prometheus.CounterOpts{Name: name, Help: help}
}
