package graph

import (
	"testing"

	"github.com/inful/skillgraph/internal/resolver"
	"github.com/inful/skillgraph/internal/validate"
)

func rec(id, name string, kind validate.Kind, related ...string) *validate.Record {
	return &validate.Record{
		ID:          id,
		DisplayName: name,
		Kind:        kind,
		Related:     related,
		FileStem:    id,
	}
}

func TestBuild_GhostReference(t *testing.T) {
	a := rec("a", "A", validate.KindSkill, "missing-thing")
	res := resolver.New([]*validate.Record{a})
	u := Build([]*validate.Record{a}, res)

	ghost, ok := u.Nodes["unresolved:missing-thing"]
	if !ok {
		t.Fatalf("expected ghost node for unresolved reference, nodes: %+v", u.Nodes)
	}
	if !ghost.IsGhost || ghost.Kind != NodeKindUnresolved {
		t.Fatalf("expected ghost/unresolved node, got %+v", ghost)
	}
	if len(u.Edges) != 1 || u.Edges[0].Target != "unresolved:missing-thing" {
		t.Fatalf("expected one edge to the ghost, got %+v", u.Edges)
	}
}

func TestBuild_ScriptEdge(t *testing.T) {
	a := &validate.Record{ID: "a", DisplayName: "A", Kind: validate.KindSkill, Scripts: []string{"scripts/run.sh"}}
	res := resolver.New([]*validate.Record{a})
	u := Build([]*validate.Record{a}, res)

	scriptID := scriptNodeID("scripts/run.sh")
	n, ok := u.Nodes[scriptID]
	if !ok || n.Kind != NodeKindScript {
		t.Fatalf("expected script node %q, nodes: %+v", scriptID, u.Nodes)
	}
	found := false
	for _, e := range u.Edges {
		if e.Source == "a" && e.Target == scriptID && e.Kind == EdgeKindScripts {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected scripts edge a -> %s, got %+v", scriptID, u.Edges)
	}
}

func TestCondense_BidirectionalPair(t *testing.T) {
	a := rec("a", "A", validate.KindSkill, "b")
	b := rec("b", "B", validate.KindSkill, "a")
	res := resolver.New([]*validate.Record{a, b})
	u := Build([]*validate.Record{a, b}, res)

	c := Condense(u, true)

	if len(c.Cycles) != 1 {
		t.Fatalf("expected one cycle, got %d: %+v", len(c.Cycles), c.Cycles)
	}
	cyc := c.Cycles[0]
	if cyc.ID != "cycle:1" || cyc.Label != "cycle(2)" {
		t.Fatalf("unexpected cycle shape: %+v", cyc)
	}
	if len(cyc.Members) != 2 || cyc.Members[0] != "a" || cyc.Members[1] != "b" {
		t.Fatalf("expected sorted members [a b], got %+v", cyc.Members)
	}
	if _, ok := c.Nodes["a"]; ok {
		t.Fatalf("member node a should have been absorbed into the supernode")
	}
	if _, ok := c.Nodes["cycle:1"]; !ok {
		t.Fatalf("expected supernode cycle:1 in condensed nodes")
	}
	for _, e := range c.Edges {
		if e.Source == e.Target {
			t.Fatalf("condensed edges must not contain self-loops, got %+v", e)
		}
	}
}

func TestCondense_SelfLoop(t *testing.T) {
	a := rec("a", "A", validate.KindSkill, "a")
	res := resolver.New([]*validate.Record{a})
	u := Build([]*validate.Record{a}, res)

	c := Condense(u, true)

	if len(c.Cycles) != 1 {
		t.Fatalf("expected a size-1 cycle from a self-loop, got %+v", c.Cycles)
	}
	if c.Cycles[0].Label != "cycle(1)" {
		t.Fatalf("expected cycle(1) label, got %q", c.Cycles[0].Label)
	}
}

func TestCondense_Disabled(t *testing.T) {
	a := rec("a", "A", validate.KindSkill, "b")
	b := rec("b", "B", validate.KindSkill, "a")
	res := resolver.New([]*validate.Record{a, b})
	u := Build([]*validate.Record{a, b}, res)

	c := Condense(u, false)

	if c.Cycles != nil {
		t.Fatalf("expected no cycles when condensation disabled, got %+v", c.Cycles)
	}
	if len(c.Nodes) != 2 {
		t.Fatalf("expected both nodes to remain uncondensed, got %+v", c.Nodes)
	}
}

func TestAssemble_Deterministic(t *testing.T) {
	a := rec("a", "A", validate.KindSkill, "b")
	b := rec("b", "B", validate.KindSkill, "a")
	res := resolver.New([]*validate.Record{a, b})

	buildOnce := func() Graph {
		u := Build([]*validate.Record{a, b}, res)
		c := Condense(u, true)
		return Assemble(u, c, DefaultAdjacencyOptions())
	}
	first := buildOnce()
	second := buildOnce()

	if len(first.Nodes) != len(second.Nodes) || len(first.Edges) != len(second.Edges) {
		t.Fatalf("expected identical shapes across runs")
	}
	for i := range first.Nodes {
		if first.Nodes[i].ID != second.Nodes[i].ID {
			t.Fatalf("node order differs at %d: %q vs %q", i, first.Nodes[i].ID, second.Nodes[i].ID)
		}
	}
}

func TestExportAdjacency_DefaultExcludesGhosts(t *testing.T) {
	a := rec("a", "A", validate.KindSkill, "missing")
	res := resolver.New([]*validate.Record{a})
	u := Build([]*validate.Record{a}, res)

	adj := ExportAdjacency(u.Nodes, u.Edges, DefaultAdjacencyOptions())
	entry, ok := adj["a"]
	if !ok {
		t.Fatalf("expected adjacency entry for real node a")
	}
	if len(entry.All) != 0 {
		t.Fatalf("expected ghost target to be excluded by default, got %+v", entry.All)
	}
	if _, ok := adj["unresolved:missing"]; ok {
		t.Fatalf("ghost node should not get its own adjacency entry by default")
	}
}

func TestExportAdjacency_IncludeGhost(t *testing.T) {
	a := rec("a", "A", validate.KindSkill, "missing")
	res := resolver.New([]*validate.Record{a})
	u := Build([]*validate.Record{a}, res)

	adj := ExportAdjacency(u.Nodes, u.Edges, AdjacencyOptions{IncludeGhost: true})
	entry := adj["a"]
	if len(entry.Related) != 1 || entry.Related[0] != "unresolved:missing" {
		t.Fatalf("expected related edge to ghost when included, got %+v", entry)
	}
}
