// Package scanner implements the Scanner (spec §4.2): a recursive walk of
// an adapter's root that yields every candidate document's text.
package scanner

import (
	"context"
	"sort"
	"strings"

	"github.com/inful/skillgraph/internal/adapter"
)

// Document is one discovered candidate: its path relative to the adapter
// root and its raw text.
type Document struct {
	RelPath string
	Text    string
}

// Scan walks root (via a.ListDir) depth-first, skipping hidden ("."-prefixed)
// entries, and reads every file ending in ".md" (case-insensitive) through
// a.ReadFile. Entries for which read_file returns a null result are skipped
// rather than surfaced as errors. Directories are recognized implicitly — a
// non-empty ListDir result — since the adapter has no is_dir operation.
//
// The returned documents are sorted by RelPath, so the order is stable run
// to run against the same adapter.
func Scan(ctx context.Context, a adapter.Adapter) []Document {
	var docs []Document
	walk(ctx, a, "", &docs)
	sort.Slice(docs, func(i, j int) bool { return docs[i].RelPath < docs[j].RelPath })
	return docs
}

func walk(ctx context.Context, a adapter.Adapter, dir string, docs *[]Document) {
	if ctx.Err() != nil {
		return
	}
	entries := a.ListDir(ctx, dir)
	sort.Strings(entries)

	for _, name := range entries {
		if ctx.Err() != nil {
			return
		}
		if strings.HasPrefix(name, ".") {
			continue
		}

		rel := name
		if dir != "" {
			rel = dir + "/" + name
		}

		if isDocument(name) {
			text, ok := a.ReadFile(ctx, rel)
			if !ok {
				continue
			}
			*docs = append(*docs, Document{RelPath: rel, Text: text})
			continue
		}

		// No is_dir call by design (spec §4.2): a directory is recognized by
		// a non-empty list_dir result for the same relative path.
		if sub := a.ListDir(ctx, rel); len(sub) > 0 {
			walk(ctx, a, rel, docs)
		}
	}
}

func isDocument(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".md")
}
