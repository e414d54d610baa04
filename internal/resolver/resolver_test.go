package resolver

import (
	"testing"

	"github.com/inful/skillgraph/internal/validate"
)

func TestResolve_Empty(t *testing.T) {
	r := New(nil)
	res := r.Resolve("   ")
	if res.Found {
		t.Fatalf("expected not found")
	}
	if res.ID != "unresolved:unknown" || res.MatchedBy != MatchedGhost {
		t.Fatalf("unexpected ghost result: %+v", res)
	}
}

func TestResolve_ExactDisplayName(t *testing.T) {
	recs := []*validate.Record{
		{ID: "foo", DisplayName: "Foo Bar", FileStem: "foo-bar"},
	}
	r := New(recs)
	res := r.Resolve("Foo Bar")
	if !res.Found || res.MatchedBy != MatchedExact || res.ID != "foo" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestResolve_AliasExactMatch(t *testing.T) {
	// Spec scenario 4: alias match.
	ebitda := &validate.Record{ID: "ebitda-adjustments", DisplayName: "ebitda-adjustments", Aliases: []string{"qoe-bridge"}, FileStem: "ebitda-adjustments"}
	foo := &validate.Record{ID: "foo", DisplayName: "foo", FileStem: "foo"}
	r := New([]*validate.Record{ebitda, foo})

	res := r.Resolve("qoe-bridge")
	if !res.Found || res.MatchedBy != MatchedExact || res.ID != "ebitda-adjustments" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestResolve_Normalized(t *testing.T) {
	recs := []*validate.Record{{ID: "b", DisplayName: "B", FileStem: "b"}}
	r := New(recs)
	res := r.Resolve("b") // lowercase already matches normalized(display name "B")
	if !res.Found || res.MatchedBy != MatchedNormalized {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestResolve_FilenameStem(t *testing.T) {
	recs := []*validate.Record{{ID: "renamed-id", DisplayName: "Something Else", FileStem: "original-stem"}}
	r := New(recs)
	res := r.Resolve("original-stem")
	if !res.Found || res.MatchedBy != MatchedFilenameStem || res.ID != "renamed-id" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestResolve_Ghost(t *testing.T) {
	r := New(nil)
	res := r.Resolve("Missing Thing")
	if res.Found {
		t.Fatalf("expected not found")
	}
	if res.ID != "unresolved:missing-thing" || res.DisplayName != "Missing Thing" {
		t.Fatalf("unexpected ghost: %+v", res)
	}
}

func TestResolve_KnownIDMatchesExactOrNormalized(t *testing.T) {
	// A record whose id is itself a known display name should resolve via
	// exact/normalized first-hit-wins priority, not stem.
	a := &validate.Record{ID: "a", DisplayName: "a", FileStem: "a"}
	r := New([]*validate.Record{a})
	res := r.Resolve("a")
	if res.MatchedBy != MatchedExact && res.MatchedBy != MatchedNormalized {
		t.Fatalf("expected exact or normalized match, got %v", res.MatchedBy)
	}
}

func TestResolve_Deterministic(t *testing.T) {
	recs := []*validate.Record{{ID: "x", DisplayName: "X", FileStem: "x"}}
	r := New(recs)
	first := r.Resolve("X")
	second := r.Resolve("X")
	if first != second {
		t.Fatalf("expected deterministic results, got %+v vs %+v", first, second)
	}
}
