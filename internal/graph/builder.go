package graph

import (
	"strings"

	"github.com/inful/skillgraph/internal/resolver"
	"github.com/inful/skillgraph/internal/validate"
)

// Unsorted is the raw (nodes, edges) output of the Builder, before
// condensation and sorting.
type Unsorted struct {
	Nodes map[string]*Node
	Edges []Edge
}

// Build runs the Graph Builder (spec §4.5) over records, resolving related
// and wiki-link references through res and inserting script nodes/edges.
func Build(records []*validate.Record, res *resolver.Resolver) Unsorted {
	b := &builder{
		nodes:    map[string]*Node{},
		edgeSeen: map[edgeKey]bool{},
	}
	for _, rec := range records {
		b.upsertRecordNode(rec)
	}
	for _, rec := range records {
		b.insertScriptEdges(rec)
		b.insertResolvedEdges(rec, rec.Related, EdgeKindRelated, res)
		b.insertWikiEdges(rec, res)
	}
	return Unsorted{Nodes: b.nodes, Edges: b.edges}
}

type builder struct {
	nodes    map[string]*Node
	edges    []Edge
	edgeSeen map[edgeKey]bool
}

func kindOf(k validate.Kind) NodeKind {
	switch k {
	case validate.KindSubagent:
		return NodeKindSubagent
	case validate.KindHook:
		return NodeKindHook
	case validate.KindCommand:
		return NodeKindCommand
	case validate.KindMOC:
		return NodeKindMOC
	case validate.KindScript:
		return NodeKindScript
	default:
		return NodeKindSkill
	}
}

// upsertRecordNode inserts (or promotes) the node for a validated record.
//
// Promotion rule (spec §3 invariants): if the id already exists as a ghost
// and the incoming node is real, the ghost is promoted in place — kind,
// label and is_ghost are overwritten, but the node id never changes. A
// real-over-real collision keeps the first-inserted node's attributes
// (first record wins for display).
func (b *builder) upsertRecordNode(rec *validate.Record) {
	incoming := &Node{
		ID:      rec.ID,
		Label:   rec.DisplayName,
		Kind:    kindOf(rec.Kind),
		IsGhost: false,
	}
	b.upsert(incoming)
}

// upsert merges incoming into the node map per the rules above.
func (b *builder) upsert(incoming *Node) {
	existing, ok := b.nodes[incoming.ID]
	if !ok {
		cp := *incoming
		b.nodes[incoming.ID] = &cp
		return
	}

	if existing.IsGhost && !incoming.IsGhost {
		existing.Kind = incoming.Kind
		existing.Label = incoming.Label
		existing.IsGhost = false
		existing.Members = incoming.Members
		return
	}

	// Real-over-real or ghost-over-ghost: first insertion wins for display.
}

func (b *builder) insertScriptEdges(rec *validate.Record) {
	for _, raw := range rec.Scripts {
		p := strings.TrimSpace(raw)
		if p == "" {
			continue
		}
		id := scriptNodeID(p)
		b.upsert(&Node{ID: id, Label: scriptLabel(p), Kind: NodeKindScript})
		b.addEdge(Edge{Source: rec.ID, Target: id, Kind: EdgeKindScripts})
	}
}

func scriptLabel(p string) string {
	if idx := strings.LastIndexByte(p, '/'); idx >= 0 && idx+1 < len(p) {
		return p[idx+1:]
	}
	return p
}

func (b *builder) insertResolvedEdges(rec *validate.Record, targets []string, kind EdgeKind, res *resolver.Resolver) {
	for _, raw := range targets {
		b.insertOneResolvedEdge(rec, raw, kind, res)
	}
}

func (b *builder) insertWikiEdges(rec *validate.Record, res *resolver.Resolver) {
	for _, link := range rec.WikiLinks {
		b.insertOneResolvedEdge(rec, link.Target, EdgeKindWiki, res)
	}
}

func (b *builder) insertOneResolvedEdge(rec *validate.Record, raw string, kind EdgeKind, res *resolver.Resolver) {
	result := res.Resolve(raw)
	if !result.Found {
		b.upsert(&Node{ID: result.ID, Label: result.DisplayName, Kind: NodeKindUnresolved, IsGhost: true})
	}
	b.addEdge(Edge{
		Source:    rec.ID,
		Target:    result.ID,
		Kind:      kind,
		MatchedBy: string(result.MatchedBy),
	})
}

func (b *builder) addEdge(e Edge) {
	key := keyOf(e)
	if b.edgeSeen[key] {
		return
	}
	b.edgeSeen[key] = true
	b.edges = append(b.edges, e)
}
