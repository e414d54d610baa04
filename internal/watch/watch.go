// Package watch combines fsnotify (detect that something under a root
// changed) with gocron (debounce a burst of file-save events into one
// rebuild) to drive repeated full engine.BuildGraph / RunHealthChecks
// runs. Grounded on the teacher's internal/daemon/config_watcher.go for
// the fsnotify watch-loop/debounce shape; gocron replaces its hand-rolled
// debounce timer with a minimum-interval scheduled job.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-co-op/gocron/v2"

	"github.com/inful/skillgraph/internal/logfields"
)

// Watcher triggers onRebuild at most once per MinInterval whenever
// fsnotify observes a change somewhere under Root, and never performs a
// partial rebuild — every trigger calls onRebuild for a fresh full scan,
// honoring the core's no-incremental-re-indexing non-goal.
type Watcher struct {
	root        string
	minInterval time.Duration
	onRebuild   func(context.Context)
	fsWatcher   *fsnotify.Watcher
	scheduler   gocron.Scheduler
	mu          sync.Mutex
	pending     bool
}

// New constructs a Watcher over root, debounced to at most one rebuild per
// minInterval, calling onRebuild on every trigger.
func New(root string, minInterval time.Duration, onRebuild func(context.Context)) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("create scheduler: %w", err)
	}

	return &Watcher{
		root:        root,
		minInterval: minInterval,
		onRebuild:   onRebuild,
		fsWatcher:   fsWatcher,
		scheduler:   scheduler,
	}, nil
}

// Run watches root recursively and drives rebuilds until ctx is canceled.
func (w *Watcher) Run(ctx context.Context) error {
	if err := addRecursive(w.fsWatcher, w.root); err != nil {
		return fmt.Errorf("watch root %s: %w", w.root, err)
	}

	if _, err := w.scheduler.NewJob(
		gocron.DurationJob(w.minInterval),
		gocron.NewTask(func() { w.flushIfPending(ctx) }),
	); err != nil {
		return fmt.Errorf("schedule debounce job: %w", err)
	}
	w.scheduler.Start()
	defer func() { _ = w.scheduler.Shutdown() }()

	slog.Info("watch started", logfields.Root(w.root))

	for {
		select {
		case <-ctx.Done():
			return w.fsWatcher.Close()
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return nil
			}
			w.markPending(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watch error", logfields.Error(err))
		}
	}
}

func (w *Watcher) markPending(event fsnotify.Event) {
	slog.Debug("change detected", logfields.Path(event.Name))
	w.mu.Lock()
	w.pending = true
	w.mu.Unlock()
}

func (w *Watcher) flushIfPending(ctx context.Context) {
	w.mu.Lock()
	trigger := w.pending
	w.pending = false
	w.mu.Unlock()

	if !trigger {
		return
	}
	slog.Info("rebuild triggered", logfields.Root(w.root))
	w.onRebuild(ctx)
}

func addRecursive(fsWatcher *fsnotify.Watcher, root string) error {
	return walkDirs(root, func(dir string) error {
		return fsWatcher.Add(dir)
	})
}
