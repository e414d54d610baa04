package graph

import "sort"

// Meta carries summary counters for the final Graph output (spec §6).
type Meta struct {
	NodeCount  int `json:"node_count"`
	EdgeCount  int `json:"edge_count"`
	CycleCount int `json:"cycle_count"`
}

// Graph is the complete, sorted output of the indexing pipeline (spec §6):
// sorted nodes, sorted edges, both post- and pre-condensation adjacency
// views, the cycle list, and summary counters.
type Graph struct {
	Nodes        []Node               `json:"nodes"`
	Edges        []Edge               `json:"edges"`
	Adjacency    map[string]Adjacency `json:"adjacency"`
	RawAdjacency map[string]Adjacency `json:"raw_adjacency"`
	Cycles       []Cycle              `json:"cycles"`
	Meta         Meta                 `json:"meta"`
}

// Assemble sorts the raw and condensed graphs and exports both adjacency
// views, producing the final output contract.
//
// raw is the Unsorted builder output prior to condensation; condensed is
// the result of Condense(raw, ...). Exporting adjacency from raw directly
// lets raw_adjacency reflect pre-cycle reality even when condensation is
// enabled.
func Assemble(raw Unsorted, condensed Condensed, opts AdjacencyOptions) Graph {
	sortedNodes := sortNodes(condensed.Nodes)
	sortedEdges := sortEdges(condensed.Edges)
	sortedCycles := sortCycles(condensed.Cycles)

	return Graph{
		Nodes:        sortedNodes,
		Edges:        sortedEdges,
		Adjacency:    ExportAdjacency(condensed.Nodes, condensed.Edges, opts),
		RawAdjacency: ExportAdjacency(raw.Nodes, raw.Edges, opts),
		Cycles:       sortedCycles,
		Meta: Meta{
			NodeCount:  len(sortedNodes),
			EdgeCount:  len(sortedEdges),
			CycleCount: len(sortedCycles),
		},
	}
}

func sortNodes(nodes map[string]*Node) []Node {
	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, *n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func sortEdges(edges []Edge) []Edge {
	out := append([]Edge(nil), edges...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Source != out[j].Source {
			return out[i].Source < out[j].Source
		}
		if out[i].Target != out[j].Target {
			return out[i].Target < out[j].Target
		}
		return out[i].Kind < out[j].Kind
	})
	return out
}

func sortCycles(cycles []Cycle) []Cycle {
	out := append([]Cycle(nil), cycles...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
