package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/l10ncheck/pkg/report"
	"github.com/dmitrymomot/l10ncheck/pkg/verifier"
)

const namespace = "l10ncheck"

// Run results recorded by the runs counter.
const (
	ResultClean    = "clean"
	ResultFindings = "findings"
	ResultError    = "error"
)

// Collector holds the l10ncheck metrics on its own registry.
type Collector struct {
	registry *prometheus.Registry
	findings *prometheus.GaugeVec
	runs     *prometheus.CounterVec
	types    prometheus.Gauge
}

// New creates a Collector with a fresh registry.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		findings: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "findings",
			Help:      "Findings of the latest verification run by key type, locale and kind.",
		}, []string{"key_type", "locale", "kind"}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Verification runs by result.",
		}, []string{"result"}),
		types: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "key_types",
			Help:      "Key types verified in the latest run.",
		}),
	}
	c.registry.MustRegister(c.findings, c.runs, c.types)
	return c
}

// Observe replaces the findings gauge with the contents of rep and counts
// the run. Label sets from earlier runs that are now clean are dropped.
func (c *Collector) Observe(rep *report.Report) {
	c.findings.Reset()
	for _, res := range rep.Results {
		locale := res.Locale.String()
		for kind, n := range res.Counts() {
			c.findings.WithLabelValues(res.KeyType, locale, string(kind)).Set(float64(n))
		}
	}
	c.types.Set(float64(len(rep.KeyTypes())))
	c.runs.WithLabelValues(RunResult(rep)).Inc()
}

// RunResult classifies a report for the runs counter.
func RunResult(rep *report.Report) string {
	switch {
	case rep.HasErrors():
		return ResultError
	case rep.HasFindings():
		return ResultFindings
	default:
		return ResultClean
	}
}

// Findings returns the gauge value for one label set.
func (c *Collector) Findings(keyType, locale string, kind verifier.Kind) prometheus.Gauge {
	return c.findings.WithLabelValues(keyType, locale, string(kind))
}

// Registry returns the registry the metrics are registered on.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
