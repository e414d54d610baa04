// Package adapter defines the I/O Adapter contract (spec §4.1): the
// engine's only boundary to the outside world. Every operation is
// asynchronous-shaped (context-aware) and fails to a benign default rather
// than propagating an error — callers never need to distinguish "file
// absent" from "file unreadable".
package adapter

import "context"

// Adapter abstracts filesystem-shaped operations over a rooted tree.
// list_dir must not recurse; hidden-entry filtering ("." prefix) is left
// to consumers, not the adapter.
type Adapter interface {
	// ReadFile returns the text contents of path (relative to the root),
	// or ("", false) if the file is absent or unreadable.
	ReadFile(ctx context.Context, path string) (content string, ok bool)

	// ListDir lists entry names directly under path (empty path = root),
	// non-recursively. Returns an empty slice on any failure.
	ListDir(ctx context.Context, path string) []string

	// Exists reports whether path refers to something in the tree.
	Exists(ctx context.Context, path string) bool

	// IsRepo reports whether the root is backed by a version-control
	// repository. The core does not interpret this beyond the boolean.
	IsRepo(ctx context.Context) bool

	// HasTrackingMarker reports whether the version-control marker the
	// health reporter cares about (e.g. a resolvable HEAD) is present.
	HasTrackingMarker(ctx context.Context) bool

	// DocumentCount returns the number of documents the adapter believes
	// the tree holds, or 0 on failure. This is a cheap hint; the scanner
	// does its own counting from a real walk.
	DocumentCount(ctx context.Context) int
}

// Capabilities lists the six Adapter operations by name, for capability
// checking (spec §4.1: "a capability check reports which of the six
// operations are missing from a candidate adapter").
var Capabilities = []string{
	"read_file",
	"list_dir",
	"exists",
	"is_repo",
	"has_tracking_marker",
	"document_count",
}

// Prober is implemented by adapters that can report which of the six
// contract operations they genuinely support, as opposed to silently
// returning the benign default for an operation they never implemented.
// Adapters that support everything need not implement this interface —
// CheckCapabilities treats a missing Prober as "supports everything".
type Prober interface {
	Supports(op string) bool
}

// CheckCapabilities reports which of the Capabilities the given adapter is
// missing, letting a host fail cleanly at startup instead of mid-pipeline.
func CheckCapabilities(a Adapter) (missing []string) {
	prober, ok := a.(Prober)
	if !ok {
		return nil
	}
	for _, op := range Capabilities {
		if !prober.Supports(op) {
			missing = append(missing, op)
		}
	}
	return missing
}
