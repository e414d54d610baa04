package adapter

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/inful/skillgraph/internal/gitrepo"
)

// Native is the Adapter variant backed by a real local filesystem path.
type Native struct {
	root string
}

var _ Adapter = Native{}

// NewNative constructs a Native adapter rooted at root.
func NewNative(root string) Native {
	return Native{root: root}
}

// Root returns the filesystem path this adapter is rooted at.
func (a Native) Root() string { return a.root }

func (a Native) resolve(p string) string {
	if p == "" {
		return a.root
	}
	return filepath.Join(a.root, filepath.FromSlash(p))
}

func (a Native) ReadFile(ctx context.Context, p string) (string, bool) {
	if ctx.Err() != nil {
		return "", false
	}
	data, err := os.ReadFile(a.resolve(p))
	if err != nil {
		return "", false
	}
	return string(data), true
}

func (a Native) ListDir(ctx context.Context, p string) []string {
	if ctx.Err() != nil {
		return []string{}
	}
	entries, err := os.ReadDir(a.resolve(p))
	if err != nil {
		return []string{}
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func (a Native) Exists(ctx context.Context, p string) bool {
	if ctx.Err() != nil {
		return false
	}
	_, err := os.Stat(a.resolve(p))
	return err == nil
}

func (a Native) IsRepo(ctx context.Context) bool {
	if ctx.Err() != nil {
		return false
	}
	return gitrepo.IsRepo(a.root)
}

func (a Native) HasTrackingMarker(ctx context.Context) bool {
	if ctx.Err() != nil {
		return false
	}
	return gitrepo.HasTrackingMarker(a.root)
}

func (a Native) DocumentCount(ctx context.Context) int {
	if ctx.Err() != nil {
		return 0
	}
	count := 0
	_ = filepath.WalkDir(a.root, func(p string, d os.DirEntry, err error) error {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err != nil {
			return nil //nolint:nilerr // benign-default contract: unreadable entries are skipped, not surfaced
		}
		name := d.Name()
		if d.IsDir() {
			if name != "." && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(name, ".") {
			return nil
		}
		if strings.HasSuffix(strings.ToLower(name), ".md") {
			count++
		}
		return nil
	})
	return count
}
