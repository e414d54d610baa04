package store

import (
	"context"
	"testing"

	"github.com/inful/skillgraph/internal/graph"
)

func TestSQLiteHistory_AppendAndRecent(t *testing.T) {
	h, err := NewSQLiteHistory(":memory:")
	if err != nil {
		t.Fatalf("open history: %v", err)
	}
	defer h.Close()

	ctx := context.Background()
	g := graph.Graph{Meta: graph.Meta{NodeCount: 2, EdgeCount: 1, CycleCount: 0}}
	m := NewManifest("/repo", g)

	if err := h.Append(ctx, m); err != nil {
		t.Fatalf("append: %v", err)
	}

	recent, err := h.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 1 || recent[0].ID != m.ID {
		t.Fatalf("expected one manifest with id %q, got %+v", m.ID, recent)
	}
	if recent[0].NodeCount != 2 || recent[0].ContentHash == "" {
		t.Fatalf("unexpected manifest fields: %+v", recent[0])
	}
}

func TestNewManifest_DeterministicHash(t *testing.T) {
	g := graph.Graph{
		Nodes: []graph.Node{{ID: "a"}, {ID: "b"}},
		Edges: []graph.Edge{{Source: "a", Target: "b", Kind: graph.EdgeKindRelated}},
		Meta:  graph.Meta{NodeCount: 2, EdgeCount: 1},
	}
	m1 := NewManifest("/repo", g)
	m2 := NewManifest("/repo", g)

	if m1.ContentHash != m2.ContentHash {
		t.Fatalf("expected identical content hash for identical graphs, got %q vs %q", m1.ContentHash, m2.ContentHash)
	}
	if m1.ID == m2.ID {
		t.Fatalf("expected distinct manifest ids")
	}
}
