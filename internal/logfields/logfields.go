// Package logfields provides canonical log field names and helpers for
// structured logging across the skill graph engine.
package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyBuildID      = "build_id"
	KeyStage        = "stage"
	KeyDurationMS   = "duration_ms"
	KeyRoot         = "root"
	KeyPath         = "path"
	KeyFile         = "file"
	KeyRecordID     = "record_id"
	KeyNodeID       = "node_id"
	KeyEdgeKind     = "edge_kind"
	KeyRule         = "rule"
	KeyStatus       = "status"
	KeyCycleCount   = "cycle_count"
	KeyNodeCount    = "node_count"
	KeyEdgeCount    = "edge_count"
	KeyError        = "error"
	KeyName         = "name"
	KeyURL          = "url"
	KeyMatchedBy    = "matched_by"
	KeyTarget       = "target"
)

func BuildID(id string) slog.Attr      { return slog.String(KeyBuildID, id) }
func Stage(name string) slog.Attr      { return slog.String(KeyStage, name) }
func DurationMS(ms float64) slog.Attr  { return slog.Float64(KeyDurationMS, ms) }
func Root(r string) slog.Attr          { return slog.String(KeyRoot, r) }
func Path(p string) slog.Attr          { return slog.String(KeyPath, p) }
func File(f string) slog.Attr          { return slog.String(KeyFile, f) }
func RecordID(id string) slog.Attr     { return slog.String(KeyRecordID, id) }
func NodeID(id string) slog.Attr       { return slog.String(KeyNodeID, id) }
func EdgeKind(k string) slog.Attr      { return slog.String(KeyEdgeKind, k) }
func Rule(name string) slog.Attr       { return slog.String(KeyRule, name) }
func Status(s string) slog.Attr        { return slog.String(KeyStatus, s) }
func CycleCount(n int) slog.Attr       { return slog.Int(KeyCycleCount, n) }
func NodeCount(n int) slog.Attr        { return slog.Int(KeyNodeCount, n) }
func EdgeCount(n int) slog.Attr        { return slog.Int(KeyEdgeCount, n) }
func Name(n string) slog.Attr          { return slog.String(KeyName, n) }
func URL(u string) slog.Attr           { return slog.String(KeyURL, u) }
func MatchedBy(m string) slog.Attr     { return slog.String(KeyMatchedBy, m) }
func Target(t string) slog.Attr        { return slog.String(KeyTarget, t) }

// Error returns a slog.Attr for an error, or an empty string if nil.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
