// Package graph implements the Graph Builder, Cycle Condenser and
// Adjacency Exporter (spec §4.5-§4.7): turning a set of validated records
// into a stable, sorted, cycle-condensed node/edge graph.
package graph

// NodeKind mirrors validate.Kind plus the two graph-only kinds introduced
// by reference resolution: unresolved (ghost) and cycle (supernode).
type NodeKind string

const (
	NodeKindSkill      NodeKind = "skill"
	NodeKindSubagent   NodeKind = "subagent"
	NodeKindHook       NodeKind = "hook"
	NodeKindCommand    NodeKind = "command"
	NodeKindMOC        NodeKind = "moc"
	NodeKindScript     NodeKind = "script"
	NodeKindUnresolved NodeKind = "unresolved"
	NodeKindCycle      NodeKind = "cycle"
)

// Node is a graph entity (spec §3).
type Node struct {
	ID      string   `json:"id"`
	Label   string   `json:"label"`
	Kind    NodeKind `json:"kind"`
	IsGhost bool     `json:"is_ghost"`
	Members []string `json:"members,omitempty"`
}

func scriptNodeID(rawPath string) string {
	return "script:" + rawPath
}
