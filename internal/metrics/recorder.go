// Package metrics provides observability hooks for skillgraph builds and
// health checks, grounded on the teacher's internal/metrics package: a
// Recorder interface, a zero-overhead NoopRecorder default, and a
// Prometheus-backed implementation. The CLI commands always use
// NoopRecorder; PrometheusRecorder is not wired into them.
package metrics

import "time"

// HealthOutcomeLabel dimensions the per-rule health counter.
type HealthOutcomeLabel string

const (
	HealthOutcomePass HealthOutcomeLabel = "pass"
	HealthOutcomeWarn HealthOutcomeLabel = "warn"
	HealthOutcomeFail HealthOutcomeLabel = "fail"
)

// Recorder defines the observability hooks a build/health run reports
// through. All methods must be safe for nil-free zero values (NoopRecorder)
// so callers can inject it unconditionally.
type Recorder interface {
	ObserveBuildDuration(d time.Duration)
	SetGraphCounts(nodes, edges, cycles int)
	ObserveHealthDuration(d time.Duration)
	IncHealthRuleOutcome(rule string, outcome HealthOutcomeLabel)
}

// NoopRecorder is a Recorder that does nothing, the default when metrics
// are not configured.
type NoopRecorder struct{}

var _ Recorder = NoopRecorder{}

func (NoopRecorder) ObserveBuildDuration(time.Duration)              {}
func (NoopRecorder) SetGraphCounts(int, int, int)                    {}
func (NoopRecorder) ObserveHealthDuration(time.Duration)             {}
func (NoopRecorder) IncHealthRuleOutcome(string, HealthOutcomeLabel) {}
