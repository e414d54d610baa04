// Package resolver implements the Reference Resolver (spec §4.4): mapping
// a free-form reference string to a known document id, or to a ghost
// placeholder when nothing matches. It is constructed once per build from
// the full set of known records and is pure thereafter.
package resolver

import (
	"strings"

	"github.com/inful/skillgraph/internal/normalize"
	"github.com/inful/skillgraph/internal/validate"
)

// MatchedBy records the resolution tier that produced a Result.
type MatchedBy string

const (
	MatchedExact         MatchedBy = "exact"
	MatchedNormalized    MatchedBy = "normalized"
	MatchedFilenameStem  MatchedBy = "filename-stem"
	MatchedGhost         MatchedBy = "ghost"
)

// Result is the outcome of resolving one raw reference string.
type Result struct {
	Found       bool
	ID          string
	DisplayName string
	Kind        validate.Kind
	MatchedBy   MatchedBy
}

// Resolver indexes a fixed set of records for reference resolution. A
// Resolver is immutable and safe for concurrent read-only use once built.
type Resolver struct {
	exact      map[string]*validate.Record
	normalized map[string]*validate.Record
	stem       map[string]*validate.Record
}

// New builds a Resolver over records. Per spec §4.4, three indexes are
// built: exact (display name + aliases, verbatim), normalized (normalized
// display name + aliases + id), and stem (normalized file stem).
//
// When two records collide on the same index key, the first one
// encountered (in records' slice order) wins — callers should pass records
// in a stable, deterministic order (e.g. scan order) so repeated builds
// agree.
func New(records []*validate.Record) *Resolver {
	r := &Resolver{
		exact:      map[string]*validate.Record{},
		normalized: map[string]*validate.Record{},
		stem:       map[string]*validate.Record{},
	}
	for _, rec := range records {
		r.indexOne(rec)
	}
	return r
}

func (r *Resolver) indexOne(rec *validate.Record) {
	putIfAbsent(r.exact, rec.DisplayName, rec)
	putIfAbsent(r.normalized, normalize.Identifier(rec.DisplayName), rec)
	putIfAbsent(r.normalized, rec.ID, rec)

	for _, alias := range rec.Aliases {
		putIfAbsent(r.exact, alias, rec)
		putIfAbsent(r.normalized, normalize.Identifier(alias), rec)
	}

	putIfAbsent(r.stem, rec.FileStem, rec)
}

func putIfAbsent(m map[string]*validate.Record, key string, rec *validate.Record) {
	if key == "" {
		return
	}
	if _, exists := m[key]; !exists {
		m[key] = rec
	}
}

// Resolve maps a raw target string to a Result, per the priority order of
// spec §4.4: exact > normalized > filename-stem > ghost. The same input
// always produces the same Result for a given Resolver.
func (r *Resolver) Resolve(raw string) Result {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ghostResult("unknown", "unknown")
	}

	if rec, ok := r.exact[trimmed]; ok {
		return foundResult(rec, MatchedExact)
	}

	norm := normalize.Identifier(trimmed)
	if rec, ok := r.normalized[norm]; ok {
		return foundResult(rec, MatchedNormalized)
	}

	if rec, ok := r.stem[norm]; ok {
		return foundResult(rec, MatchedFilenameStem)
	}

	id := norm
	if id == "" {
		id = "unknown"
	}
	return ghostResult(id, trimmed)
}

func foundResult(rec *validate.Record, by MatchedBy) Result {
	return Result{
		Found:       true,
		ID:          rec.ID,
		DisplayName: rec.DisplayName,
		Kind:        rec.Kind,
		MatchedBy:   by,
	}
}

func ghostResult(id, label string) Result {
	return Result{
		Found:       false,
		ID:          "unresolved:" + id,
		DisplayName: label,
		MatchedBy:   MatchedGhost,
	}
}
