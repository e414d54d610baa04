package watch

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func TestWalkDirs_SkipsHidden(t *testing.T) {
	root := t.TempDir()
	mustMkdir(t, filepath.Join(root, "sub"))
	mustMkdir(t, filepath.Join(root, ".git"))
	mustMkdir(t, filepath.Join(root, ".git", "objects"))

	var visited []string
	if err := walkDirs(root, func(dir string) error {
		visited = append(visited, dir)
		return nil
	}); err != nil {
		t.Fatalf("walkDirs: %v", err)
	}
	sort.Strings(visited)

	for _, v := range visited {
		if filepath.Base(v) == ".git" || filepath.Base(v) == "objects" {
			t.Fatalf("expected hidden directories to be skipped, got %v", visited)
		}
	}
	if len(visited) != 2 {
		t.Fatalf("expected root and sub visited, got %v", visited)
	}
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
}

func TestWatcher_FlushOnlyWhenPending(t *testing.T) {
	calls := 0
	w := &Watcher{onRebuild: func(context.Context) { calls++ }}

	w.flushIfPending(context.Background())
	if calls != 0 {
		t.Fatalf("expected no rebuild without a pending change, got %d calls", calls)
	}

	w.mu.Lock()
	w.pending = true
	w.mu.Unlock()

	w.flushIfPending(context.Background())
	if calls != 1 {
		t.Fatalf("expected exactly one rebuild after a pending change, got %d calls", calls)
	}

	w.flushIfPending(context.Background())
	if calls != 1 {
		t.Fatalf("expected pending flag to reset after flush, got %d calls", calls)
	}
}
