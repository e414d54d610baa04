package metrics

import (
	"github.com/inful/skillgraph/internal/graph"
	"github.com/inful/skillgraph/internal/health"
)

// RecordGraph reports g's summary counters to rec.
func RecordGraph(rec Recorder, g graph.Graph) {
	rec.SetGraphCounts(g.Meta.NodeCount, g.Meta.EdgeCount, g.Meta.CycleCount)
}

// RecordHealth reports each rule verdict in report to rec and the overall
// check duration.
func RecordHealth(rec Recorder, report health.Report) {
	rec.ObserveHealthDuration(report.Duration)
	for _, r := range report.Results {
		rec.IncHealthRuleOutcome(r.RuleID, HealthOutcomeLabel(r.Status))
	}
}
