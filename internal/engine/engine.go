// Package engine wires the Scanner, Schema Validator, Graph Builder,
// Reference Resolver, Cycle Condenser and Adjacency Exporter into the two
// top-level asynchronous entry points the core exposes: BuildGraph and
// RunHealthChecks (spec §9: "one top-level async entry point per
// artifact").
package engine

import (
	"context"

	"github.com/inful/skillgraph/internal/adapter"
	"github.com/inful/skillgraph/internal/config"
	"github.com/inful/skillgraph/internal/graph"
	"github.com/inful/skillgraph/internal/health"
	"github.com/inful/skillgraph/internal/resolver"
	"github.com/inful/skillgraph/internal/scanner"
	"github.com/inful/skillgraph/internal/validate"
)

// BuildGraph runs the full pipeline once against a and returns the
// sorted, cycle-condensed Graph. The pipeline is pure aside from the
// adapter reads performed by the Scanner.
func BuildGraph(ctx context.Context, a adapter.Adapter, opts config.BuildOptions) graph.Graph {
	docs := scanner.Scan(ctx, a)

	records := make([]*validate.Record, 0, len(docs))
	for _, doc := range docs {
		outcome := validate.Validate(doc.RelPath, doc.Text)
		if !outcome.HadHeader {
			continue
		}
		rec := outcome.Record
		records = append(records, &rec)
	}

	res := resolver.New(records)
	raw := graph.Build(records, res)
	condensed := graph.Condense(raw, opts.CondenseCycles)

	return graph.Assemble(raw, condensed, opts.AdjacencyOptions.ToGraph())
}

// RunHealthChecks runs the Health Reporter's six rules against a. It
// builds its own lightweight resolver from a fresh scan so the references
// rule can judge wiki-link targets without depending on a prior
// BuildGraph call — the Health Reporter "does not depend on the graph"
// (spec §2).
func RunHealthChecks(ctx context.Context, a adapter.Adapter) health.Report {
	docs := scanner.Scan(ctx, a)

	records := make([]*validate.Record, 0, len(docs))
	for _, doc := range docs {
		outcome := validate.Validate(doc.RelPath, doc.Text)
		if !outcome.HadHeader {
			continue
		}
		rec := outcome.Record
		records = append(records, &rec)
	}
	res := resolver.New(records)

	resolve := func(target string) (string, bool) {
		result := res.Resolve(target)
		return result.ID, result.Found
	}

	return health.Run(ctx, a, resolve)
}
