package adapter

import (
	"context"
	"io/fs"
	"path"
	"strings"
)

// FS is the "sandboxed-directory-handle" adapter variant of spec §4.1.
//
// A native OS path can escape its starting directory via "..", symlinks,
// or absolute paths — dangerous for a capability granted by a host that
// expects the engine to stay inside a subtree. io/fs.FS has the property
// the spec actually wants: a value of this type can only ever address
// entries inside the root it was constructed from, which is the Go
// analogue of a browser's capability-scoped directory handle. Any fs.FS
// works here — an os.DirFS, an embed.FS, a zip.Reader, or an
// fstest.MapFS used in tests.
type FS struct {
	fsys fs.FS
}

var _ Adapter = FS{}

// NewFS constructs a sandboxed adapter over fsys.
func NewFS(fsys fs.FS) FS {
	return FS{fsys: fsys}
}

func (a FS) ReadFile(_ context.Context, p string) (string, bool) {
	p = cleanFSPath(p)
	data, err := fs.ReadFile(a.fsys, p)
	if err != nil {
		return "", false
	}
	return string(data), true
}

func (a FS) ListDir(_ context.Context, p string) []string {
	p = cleanFSPath(p)
	entries, err := fs.ReadDir(a.fsys, p)
	if err != nil {
		return []string{}
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func (a FS) Exists(_ context.Context, p string) bool {
	p = cleanFSPath(p)
	_, err := fs.Stat(a.fsys, p)
	return err == nil
}

// IsRepo reports whether a .git entry is present at the adapter's root.
// The sandboxed variant never shells out to a VCS tool; it only inspects
// the tree it was granted.
func (a FS) IsRepo(ctx context.Context) bool {
	return a.Exists(ctx, ".git")
}

// HasTrackingMarker reports whether .git/HEAD exists and is non-empty. The
// reference it names is not resolved.
func (a FS) HasTrackingMarker(ctx context.Context) bool {
	content, ok := a.ReadFile(ctx, ".git/HEAD")
	return ok && strings.TrimSpace(content) != ""
}

func (a FS) DocumentCount(context.Context) int {
	count := 0
	_ = fs.WalkDir(a.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if p != "." && strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") {
			return nil
		}
		if strings.HasSuffix(strings.ToLower(d.Name()), ".md") {
			count++
		}
		return nil
	})
	return count
}

func cleanFSPath(p string) string {
	if p == "" {
		return "."
	}
	return path.Clean(p)
}
