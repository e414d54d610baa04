package metrics

import (
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	once sync.Once

	buildDuration  prom.Histogram
	healthDuration prom.Histogram
	nodeCount      prom.Gauge
	edgeCount      prom.Gauge
	cycleCount     prom.Gauge
	healthOutcome  *prom.CounterVec
}

// NewPrometheusRecorder constructs and registers skillgraph's Prometheus
// metrics against reg (a nil reg creates a fresh registry). Calling it twice
// with the same registry panics, since MustRegister rejects duplicates.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{}
	pr.once.Do(func() {
		pr.buildDuration = prom.NewHistogram(prom.HistogramOpts{
			Namespace: "skillgraph",
			Name:      "build_duration_seconds",
			Help:      "Duration of a full BuildGraph pipeline run",
			Buckets:   prom.DefBuckets,
		})
		pr.healthDuration = prom.NewHistogram(prom.HistogramOpts{
			Namespace: "skillgraph",
			Name:      "health_check_duration_seconds",
			Help:      "Duration of a RunHealthChecks run",
			Buckets:   prom.DefBuckets,
		})
		pr.nodeCount = prom.NewGauge(prom.GaugeOpts{
			Namespace: "skillgraph",
			Name:      "graph_nodes",
			Help:      "Node count of the last built graph",
		})
		pr.edgeCount = prom.NewGauge(prom.GaugeOpts{
			Namespace: "skillgraph",
			Name:      "graph_edges",
			Help:      "Edge count of the last built graph",
		})
		pr.cycleCount = prom.NewGauge(prom.GaugeOpts{
			Namespace: "skillgraph",
			Name:      "graph_cycles",
			Help:      "Cycle count of the last built graph",
		})
		pr.healthOutcome = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "skillgraph",
			Name:      "health_rule_outcomes_total",
			Help:      "Health rule outcomes by rule and verdict",
		}, []string{"rule", "outcome"})
		reg.MustRegister(pr.buildDuration, pr.healthDuration, pr.nodeCount, pr.edgeCount, pr.cycleCount, pr.healthOutcome)
	})
	return pr
}

func (pr *PrometheusRecorder) ObserveBuildDuration(d time.Duration) {
	pr.buildDuration.Observe(d.Seconds())
}

func (pr *PrometheusRecorder) SetGraphCounts(nodes, edges, cycles int) {
	pr.nodeCount.Set(float64(nodes))
	pr.edgeCount.Set(float64(edges))
	pr.cycleCount.Set(float64(cycles))
}

func (pr *PrometheusRecorder) ObserveHealthDuration(d time.Duration) {
	pr.healthDuration.Observe(d.Seconds())
}

func (pr *PrometheusRecorder) IncHealthRuleOutcome(rule string, outcome HealthOutcomeLabel) {
	pr.healthOutcome.WithLabelValues(rule, string(outcome)).Inc()
}

var _ Recorder = (*PrometheusRecorder)(nil)
