package main

import (
	"context"
	"fmt"

	"github.com/inful/skillgraph/internal/adapter"
	"github.com/inful/skillgraph/internal/engine"
	"github.com/inful/skillgraph/internal/metrics"
)

// HealthCmd runs the health report only, without building or printing a
// graph, and emits the result as JSON.
type HealthCmd struct {
	Root string `help:"Root directory to scan" default:"." type:"path"`
	Out  string `short:"o" help:"Output file (default: stdout)"`
}

func (h *HealthCmd) Run(root *CLI) error {
	a := adapter.NewNative(h.Root)

	rec := metrics.Recorder(metrics.NoopRecorder{})
	report := engine.RunHealthChecks(context.Background(), a)
	metrics.RecordHealth(rec, report)

	if err := writeJSON(h.Out, report); err != nil {
		return err
	}
	if report.Overall == "fail" {
		return fmt.Errorf("health checks failed")
	}
	return nil
}
