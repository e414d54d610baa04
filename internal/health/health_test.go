package health

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/inful/skillgraph/internal/adapter"
)

func TestRun_HealthyRepo(t *testing.T) {
	fsys := fstest.MapFS{
		".git/HEAD": {Data: []byte("ref: refs/heads/main\n")},
		"a.md": {Data: []byte("---\nname: A\n---\n# Description\nbody [[b]]\n")},
		"b.md": {Data: []byte("---\nname: B\n---\n# Output\nbody\n")},
	}
	a := adapter.NewFS(fsys)

	resolve := func(target string) (string, bool) {
		return target, target == "b"
	}

	report := Run(context.Background(), a, resolve)

	if report.Version != SchemaVersion {
		t.Fatalf("expected schema version %q, got %q", SchemaVersion, report.Version)
	}
	if report.Overall != StatusPass {
		t.Fatalf("expected overall pass, got %v: %+v", report.Overall, report.Results)
	}
	if len(report.Results) != 6 {
		t.Fatalf("expected 6 rule results, got %d", len(report.Results))
	}
}

func TestRun_NoRepoFailsRepoRule(t *testing.T) {
	fsys := fstest.MapFS{"a.md": {Data: []byte("no header here")}}
	a := adapter.NewFS(fsys)

	report := Run(context.Background(), a, nil)

	var repoResult *RuleResult
	for i := range report.Results {
		if report.Results[i].RuleID == RuleRepo {
			repoResult = &report.Results[i]
		}
	}
	if repoResult == nil || repoResult.Status != StatusFail {
		t.Fatalf("expected repo rule to fail, got %+v", repoResult)
	}
	if report.Overall != StatusFail {
		t.Fatalf("expected overall fail when repo rule fails, got %v", report.Overall)
	}
}

func TestRun_ZeroDocumentsFailsCountRule(t *testing.T) {
	report := Run(context.Background(), adapter.Stub{}, nil)

	for _, r := range report.Results {
		if r.RuleID == RuleDocumentCount && r.Status != StatusFail {
			t.Fatalf("expected document-count to fail on an empty adapter, got %+v", r)
		}
	}
}

func TestRun_BrokenReference(t *testing.T) {
	fsys := fstest.MapFS{
		".git/HEAD": {Data: []byte("ref: refs/heads/main\n")},
		"a.md":       {Data: []byte("---\nname: A\n---\n# Description\nsee [[ghost]]\n")},
	}
	a := adapter.NewFS(fsys)
	resolve := func(target string) (string, bool) { return "", false }

	report := Run(context.Background(), a, resolve)

	var refResult *RuleResult
	for i := range report.Results {
		if report.Results[i].RuleID == RuleReferences {
			refResult = &report.Results[i]
		}
	}
	if refResult == nil || refResult.Status != StatusWarn {
		t.Fatalf("expected references rule to warn on a broken link, got %+v", refResult)
	}
	broken, ok := refResult.Detail.([]BrokenLink)
	if !ok || len(broken) != 1 || broken[0].Target != "ghost" {
		t.Fatalf("expected one broken link to 'ghost', got %+v", refResult.Detail)
	}
}

func TestRun_StructureMissingWarns(t *testing.T) {
	fsys := fstest.MapFS{
		".git/HEAD": {Data: []byte("ref: refs/heads/main\n")},
		"a.md":       {Data: []byte("---\nname: A\n---\nno structure heading here\n")},
	}
	a := adapter.NewFS(fsys)

	report := Run(context.Background(), a, nil)

	var structResult *RuleResult
	for i := range report.Results {
		if report.Results[i].RuleID == RuleStructure {
			structResult = &report.Results[i]
		}
	}
	if structResult == nil || structResult.Status != StatusWarn {
		t.Fatalf("expected structure rule to warn, got %+v", structResult)
	}
}

func TestRun_HelpersAlwaysPasses(t *testing.T) {
	fsys := fstest.MapFS{
		"a.md": {Data: []byte("---\nname: A\n---\nbody")},
		"b.md": {Data: []byte("no header")},
	}
	a := adapter.NewFS(fsys)

	report := Run(context.Background(), a, nil)
	for _, r := range report.Results {
		if r.RuleID == RuleHelpers {
			if r.Status != StatusPass {
				t.Fatalf("expected helpers rule to always pass, got %+v", r)
			}
			counts, ok := r.Detail.(map[string]int)
			if !ok || counts["with_header"] != 1 || counts["without_header"] != 1 {
				t.Fatalf("unexpected helper counts: %+v", r.Detail)
			}
		}
	}
}
