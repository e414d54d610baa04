package engine

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/inful/skillgraph/internal/adapter"
	"github.com/inful/skillgraph/internal/config"
)

func TestBuildGraph_EndToEnd(t *testing.T) {
	fsys := fstest.MapFS{
		".git/HEAD": {Data: []byte("ref: refs/heads/main\n")},
		"a.md": {Data: []byte("---\nname: A\nrelated: [b]\n---\n# Description\nsee [[b]] and [[missing]]\n")},
		"b.md": {Data: []byte("---\nname: B\nrelated: [a]\n---\n# Output\nback to [[A]]\n")},
	}
	a := adapter.NewFS(fsys)

	g := BuildGraph(context.Background(), a, config.Default())

	if g.Meta.CycleCount != 1 {
		t.Fatalf("expected one cycle from the A<->B relation, got %+v", g.Meta)
	}
	if g.Meta.NodeCount == 0 {
		t.Fatalf("expected non-empty node set")
	}

	foundGhost := false
	for _, n := range g.Nodes {
		if n.Kind == "unresolved" {
			foundGhost = true
		}
	}
	if !foundGhost {
		t.Fatalf("expected a ghost node for the unresolved [[missing]] reference in the full node list: %+v", g.Nodes)
	}
}

func TestBuildGraph_Deterministic(t *testing.T) {
	fsys := fstest.MapFS{
		"a.md": {Data: []byte("---\nname: A\n---\nbody\n")},
		"b.md": {Data: []byte("---\nname: B\n---\nbody [[A]]\n")},
	}
	a := adapter.NewFS(fsys)

	first := BuildGraph(context.Background(), a, config.Default())
	second := BuildGraph(context.Background(), a, config.Default())

	if len(first.Nodes) != len(second.Nodes) || len(first.Edges) != len(second.Edges) {
		t.Fatalf("expected identical graph shape across runs")
	}
	for i := range first.Nodes {
		if first.Nodes[i].ID != second.Nodes[i].ID || first.Nodes[i].Kind != second.Nodes[i].Kind {
			t.Fatalf("node %d differs: %+v vs %+v", i, first.Nodes[i], second.Nodes[i])
		}
	}
}

func TestRunHealthChecks_EndToEnd(t *testing.T) {
	fsys := fstest.MapFS{
		".git/HEAD": {Data: []byte("ref: refs/heads/main\n")},
		"a.md": {Data: []byte("---\nname: A\n---\n# Description\nsee [[missing]]\n")},
	}
	a := adapter.NewFS(fsys)

	report := RunHealthChecks(context.Background(), a)
	if len(report.Results) != 6 {
		t.Fatalf("expected 6 rule results, got %d", len(report.Results))
	}
}
