package graph

import "sort"

// AdjacencyOptions controls which node kinds the Adjacency Exporter
// includes as possible targets (spec §4.7). Real document nodes are
// always included; the default excludes ghosts, scripts and cycles.
type AdjacencyOptions struct {
	IncludeGhost   bool
	IncludeScripts bool
	IncludeCycles  bool
}

// DefaultAdjacencyOptions matches spec §6's documented default.
func DefaultAdjacencyOptions() AdjacencyOptions {
	return AdjacencyOptions{}
}

// Adjacency is the per-node view grouped by reference kind (spec §4.7).
type Adjacency struct {
	All     []string `json:"all"`
	Wiki    []string `json:"wiki"`
	Related []string `json:"related"`
	Scripts []string `json:"scripts"`
}

// ExportAdjacency emits id -> Adjacency for nodes and edges, applying
// AdjacencyOptions to both which source nodes get an entry and which
// targets are reachable (targets of an excluded kind are dropped from
// every edge list, not just filtered at the top level).
func ExportAdjacency(nodes map[string]*Node, edges []Edge, opts AdjacencyOptions) map[string]Adjacency {
	out := map[string]Adjacency{}

	byKind := map[string]struct {
		wiki, related, scripts map[string]bool
	}{}
	ensure := func(id string) {
		if _, ok := byKind[id]; !ok {
			byKind[id] = struct {
				wiki, related, scripts map[string]bool
			}{map[string]bool{}, map[string]bool{}, map[string]bool{}}
		}
	}

	for _, e := range edges {
		if !targetAllowed(nodes[e.Target], opts) {
			continue
		}
		if !sourceAllowed(nodes[e.Source], opts) {
			continue
		}
		ensure(e.Source)
		switch e.Kind {
		case EdgeKindWiki:
			byKind[e.Source].wiki[e.Target] = true
		case EdgeKindRelated:
			byKind[e.Source].related[e.Target] = true
		case EdgeKindScripts:
			byKind[e.Source].scripts[e.Target] = true
		}
	}

	for id, n := range nodes {
		if !sourceAllowed(n, opts) {
			continue
		}
		sets, ok := byKind[id]
		if !ok {
			out[id] = Adjacency{All: []string{}, Wiki: []string{}, Related: []string{}, Scripts: []string{}}
			continue
		}
		all := map[string]bool{}
		for k := range sets.wiki {
			all[k] = true
		}
		for k := range sets.related {
			all[k] = true
		}
		for k := range sets.scripts {
			all[k] = true
		}
		out[id] = Adjacency{
			All:     sortedKeys(all),
			Wiki:    sortedKeys(sets.wiki),
			Related: sortedKeys(sets.related),
			Scripts: sortedKeys(sets.scripts),
		}
	}
	return out
}

func sourceAllowed(n *Node, opts AdjacencyOptions) bool {
	if n == nil {
		return false
	}
	switch n.Kind {
	case NodeKindUnresolved:
		return opts.IncludeGhost
	case NodeKindScript:
		return opts.IncludeScripts
	case NodeKindCycle:
		return opts.IncludeCycles
	default:
		return true
	}
}

func targetAllowed(n *Node, opts AdjacencyOptions) bool {
	return sourceAllowed(n, opts)
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
