package graph

import "sort"

// Condensed is the result of cycle condensation: a fresh node set and a
// rewritten, deduplicated edge set in which no edge has source == target.
type Condensed struct {
	Nodes  map[string]*Node
	Edges  []Edge
	Cycles []Cycle
}

// Cycle describes one condensed supernode.
type Cycle struct {
	ID      string   `json:"id"`
	Label   string   `json:"label"`
	Members []string `json:"members"`
}

// Condense runs the Cycle Condenser (spec §4.6): Tarjan's SCC algorithm
// over the eligible sub-adjacency (real document nodes only — ghosts,
// script nodes and pre-existing cycle nodes never participate), then
// replaces every nontrivial component with a single supernode and rewrites
// edges accordingly.
//
// When enabled is false, Condense is a no-op beyond producing a Condensed
// value with no cycles — the result is still unsorted; Assemble sorts it,
// matching spec §4.6's toggle requirement.
func Condense(u Unsorted, enabled bool) Condensed {
	if !enabled {
		return Condensed{Nodes: u.Nodes, Edges: u.Edges, Cycles: nil}
	}

	eligible := map[string]bool{}
	for id, n := range u.Nodes {
		if n.Kind != NodeKindUnresolved && n.Kind != NodeKindScript && n.Kind != NodeKindCycle {
			eligible[id] = true
		}
	}

	adj := map[string][]string{}
	selfLoop := map[string]bool{}
	for _, e := range u.Edges {
		if e.Source == e.Target {
			selfLoop[e.Source] = true
		}
		if eligible[e.Source] && eligible[e.Target] {
			adj[e.Source] = append(adj[e.Source], e.Target)
		}
	}

	components := tarjanSCCs(eligible, adj)

	memberOfCycle := map[string]string{}
	newNodes := map[string]*Node{}
	for id, n := range u.Nodes {
		cp := *n
		newNodes[id] = &cp
	}

	var cycles []Cycle
	idx := 0
	for _, comp := range components {
		nontrivial := len(comp) >= 2 || (len(comp) == 1 && selfLoop[comp[0]])
		if !nontrivial {
			continue
		}
		idx++
		members := append([]string(nil), comp...)
		sort.Strings(members)
		cycleID := cycleNodeID(idx)
		cycles = append(cycles, Cycle{ID: cycleID, Label: cycleLabel(len(members)), Members: members})
		newNodes[cycleID] = &Node{ID: cycleID, Label: cycleLabel(len(members)), Kind: NodeKindCycle, Members: members}
		for _, m := range members {
			memberOfCycle[m] = cycleID
			delete(newNodes, m)
		}
	}

	rewritten := rewriteEdges(u.Edges, memberOfCycle)

	return Condensed{Nodes: newNodes, Edges: rewritten, Cycles: cycles}
}

func rewriteEdges(edges []Edge, memberOfCycle map[string]string) []Edge {
	seen := map[edgeKey]bool{}
	out := make([]Edge, 0, len(edges))
	for _, e := range edges {
		src := rewriteID(e.Source, memberOfCycle)
		dst := rewriteID(e.Target, memberOfCycle)
		if src == dst {
			continue
		}
		rewritten := Edge{Source: src, Target: dst, Kind: e.Kind, MatchedBy: e.MatchedBy}
		key := keyOf(rewritten)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, rewritten)
	}
	return out
}

func rewriteID(id string, memberOfCycle map[string]string) string {
	if cycleID, ok := memberOfCycle[id]; ok {
		return cycleID
	}
	return id
}

func cycleNodeID(n int) string {
	return "cycle:" + itoa(n)
}

func cycleLabel(size int) string {
	return "cycle(" + itoa(size) + ")"
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	digits := [20]byte{}
	i := len(digits)
	for n > 0 {
		i--
		digits[i] = byte('0' + n%10)
		n /= 10
	}
	return string(digits[i:])
}

// tarjanSCCs computes strongly-connected components over adj restricted to
// eligible vertices, returning components in the order Tarjan's algorithm
// emits them (reverse topological order), which this package treats as the
// stable numbering order for supernodes.
func tarjanSCCs(eligible map[string]bool, adj map[string][]string) [][]string {
	ids := make([]string, 0, len(eligible))
	for id := range eligible {
		ids = append(ids, id)
	}
	sort.Strings(ids) // deterministic DFS start order regardless of map iteration

	t := &tarjanState{
		index:   map[string]int{},
		lowlink: map[string]int{},
		onStack: map[string]bool{},
		adj:     adj,
	}
	for _, id := range ids {
		if _, visited := t.index[id]; !visited {
			t.strongConnect(id)
		}
	}
	return t.components
}

type tarjanState struct {
	counter    int
	index      map[string]int
	lowlink    map[string]int
	onStack    map[string]bool
	stack      []string
	adj        map[string][]string
	components [][]string
}

func (t *tarjanState) strongConnect(v string) {
	t.index[v] = t.counter
	t.lowlink[v] = t.counter
	t.counter++
	t.stack = append(t.stack, v)
	t.onStack[v] = true

	neighbors := append([]string(nil), t.adj[v]...)
	sort.Strings(neighbors) // deterministic traversal order
	for _, w := range neighbors {
		if _, visited := t.index[w]; !visited {
			t.strongConnect(w)
			if t.lowlink[w] < t.lowlink[v] {
				t.lowlink[v] = t.lowlink[w]
			}
		} else if t.onStack[w] {
			if t.index[w] < t.lowlink[v] {
				t.lowlink[v] = t.index[w]
			}
		}
	}

	if t.lowlink[v] == t.index[v] {
		var comp []string
		for {
			n := len(t.stack) - 1
			w := t.stack[n]
			t.stack = t.stack[:n]
			t.onStack[w] = false
			comp = append(comp, w)
			if w == v {
				break
			}
		}
		t.components = append(t.components, comp)
	}
}
