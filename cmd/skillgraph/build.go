package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/inful/skillgraph/internal/adapter"
	"github.com/inful/skillgraph/internal/config"
	"github.com/inful/skillgraph/internal/engine"
	"github.com/inful/skillgraph/internal/metrics"
	"github.com/inful/skillgraph/internal/store"
)

// BuildCmd runs the full pipeline once against a native adapter and emits
// the resulting graph as JSON.
type BuildCmd struct {
	Root           string `help:"Root directory to scan" default:"." type:"path"`
	NoCondense     bool   `name:"no-condense" help:"Disable cycle condensation"`
	IncludeGhosts  bool   `name:"include-ghosts" help:"Include ghost nodes in adjacency views"`
	IncludeScripts bool   `name:"include-scripts" help:"Include script nodes in adjacency views"`
	IncludeCycles  bool   `name:"include-cycles" help:"Include cycle supernodes in adjacency views"`
	Out            string `short:"o" help:"Output file (default: stdout)"`
}

func (b *BuildCmd) Run(root *CLI) error {
	opts, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if b.NoCondense {
		opts.CondenseCycles = false
	}
	opts.AdjacencyOptions.IncludeGhost = opts.AdjacencyOptions.IncludeGhost || b.IncludeGhosts
	opts.AdjacencyOptions.IncludeScripts = opts.AdjacencyOptions.IncludeScripts || b.IncludeScripts
	opts.AdjacencyOptions.IncludeCycles = opts.AdjacencyOptions.IncludeCycles || b.IncludeCycles

	a := adapter.NewNative(b.Root)

	rec := metrics.Recorder(metrics.NoopRecorder{})
	start := time.Now()
	g := engine.BuildGraph(context.Background(), a, opts)
	rec.ObserveBuildDuration(time.Since(start))
	metrics.RecordGraph(rec, g)

	if dsn := os.Getenv("SKILLGRAPH_HISTORY_DSN"); dsn != "" {
		if hist, err := store.NewSQLiteHistory(dsn); err == nil {
			defer hist.Close()
			manifest := store.NewManifest(b.Root, g)
			_ = hist.Append(context.Background(), manifest)
		}
	}

	return writeJSON(b.Out, g)
}

func writeJSON(out string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	data = append(data, '\n')

	if out == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(out, data, 0o644)
}
