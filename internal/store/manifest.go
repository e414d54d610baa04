// Package store persists BuildManifest rows to SQLite, grounded on the
// teacher's internal/eventstore/sqlite.go. This is read-only operator
// bookkeeping ("show me the last 20 builds"); the engine never reads it
// back to decide what to scan — doing so would reintroduce incremental
// re-indexing, which the core explicitly rules out.
package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/inful/skillgraph/internal/graph"
)

// BuildManifest is one record of a completed engine.BuildGraph invocation.
type BuildManifest struct {
	ID          string
	Timestamp   time.Time
	Root        string
	NodeCount   int
	EdgeCount   int
	CycleCount  int
	ContentHash string
}

// NewManifest builds a BuildManifest for g, scanned from root. ContentHash
// is a sha256 of the sorted node and edge ids, letting an operator see
// whether two builds produced the same graph shape without the store
// itself interpreting graph semantics.
func NewManifest(root string, g graph.Graph) BuildManifest {
	return BuildManifest{
		ID:          uuid.NewString(),
		Timestamp:   time.Now().UTC(),
		Root:        root,
		NodeCount:   g.Meta.NodeCount,
		EdgeCount:   g.Meta.EdgeCount,
		CycleCount:  g.Meta.CycleCount,
		ContentHash: contentHash(g),
	}
}

func contentHash(g graph.Graph) string {
	ids := make([]string, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		ids = append(ids, n.ID)
	}
	sort.Strings(ids)

	h := sha256.New()
	for _, id := range ids {
		h.Write([]byte(id))
		h.Write([]byte{0})
	}
	for _, e := range g.Edges {
		h.Write([]byte(e.Source))
		h.Write([]byte{0})
		h.Write([]byte(e.Target))
		h.Write([]byte{0})
		h.Write([]byte(e.Kind))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// History is the read path over stored manifests.
type History interface {
	Append(ctx context.Context, m BuildManifest) error
	Recent(ctx context.Context, limit int) ([]BuildManifest, error)
	Close() error
}
