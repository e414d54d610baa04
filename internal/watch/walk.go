package watch

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// walkDirs calls fn for root and every non-hidden subdirectory beneath it,
// so fsnotify can be registered against the whole tree (fsnotify watches
// are non-recursive by design).
func walkDirs(root string, fn func(dir string) error) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		name := d.Name()
		if path != root && strings.HasPrefix(name, ".") {
			return filepath.SkipDir
		}
		return fn(path)
	})
}
