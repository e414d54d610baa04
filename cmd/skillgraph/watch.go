package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/inful/skillgraph/internal/adapter"
	"github.com/inful/skillgraph/internal/config"
	"github.com/inful/skillgraph/internal/engine"
	"github.com/inful/skillgraph/internal/logfields"
	"github.com/inful/skillgraph/internal/metrics"
	"github.com/inful/skillgraph/internal/publish"
	"github.com/inful/skillgraph/internal/store"
	"github.com/inful/skillgraph/internal/watch"
)

// WatchCmd watches a root directory and re-runs the full pipeline on every
// debounced change, logging a summary of each rebuild instead of printing
// the graph (see SPEC_FULL.md §4.13).
type WatchCmd struct {
	Root     string        `help:"Root directory to watch" default:"." type:"path"`
	Interval time.Duration `help:"Minimum interval between rebuilds" default:"2s"`
}

func (w *WatchCmd) Run(root *CLI) error {
	opts, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	a := adapter.NewNative(w.Root)
	rec := metrics.Recorder(metrics.NoopRecorder{})

	var pub *publish.Publisher
	if url := os.Getenv("SKILLGRAPH_NATS_URL"); url != "" {
		p, err := publish.New(url, "skillgraph.events")
		if err != nil {
			slog.Warn("nats connect failed, continuing without publishing", logfields.Error(err))
		} else {
			pub = p
			defer pub.Close()
		}
	}

	var hist store.History
	if dsn := os.Getenv("SKILLGRAPH_HISTORY_DSN"); dsn != "" {
		h, err := store.NewSQLiteHistory(dsn)
		if err != nil {
			slog.Warn("history store unavailable, continuing without it", logfields.Error(err))
		} else {
			hist = h
			defer h.Close()
		}
	}

	rebuild := func(ctx context.Context) {
		buildID := uuid.NewString()

		start := time.Now()
		g := engine.BuildGraph(ctx, a, opts)
		rec.ObserveBuildDuration(time.Since(start))
		metrics.RecordGraph(rec, g)

		report := engine.RunHealthChecks(ctx, a)
		metrics.RecordHealth(rec, report)

		slog.Info("rebuild complete",
			logfields.Root(w.Root),
			"nodes", g.Meta.NodeCount,
			"edges", g.Meta.EdgeCount,
			"cycles", g.Meta.CycleCount,
			"health", report.Overall,
		)

		if hist != nil {
			manifest := store.NewManifest(w.Root, g)
			manifest.ID = buildID
			if err := hist.Append(ctx, manifest); err != nil {
				slog.Warn("failed to record build history", logfields.Error(err))
			}
		}

		pub.PublishBuild(buildID, g)
		pub.PublishHealth(buildID, report)
	}

	watcher, err := watch.New(w.Root, w.Interval, rebuild)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rebuild(ctx)

	return watcher.Run(ctx)
}
