// Package health implements the Health Reporter (spec §4.8): six
// independent rules run against an adapter and (for the last three) a
// shared scan of the tree's .md files, aggregated into a single report.
package health

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/inful/skillgraph/internal/adapter"
	"github.com/inful/skillgraph/internal/frontmatter"
	"github.com/inful/skillgraph/internal/markdown"
	"github.com/inful/skillgraph/internal/scanner"
)

// SchemaVersion is the semantic version of the Report schema (spec §4.8:
// "stored as a module constant; mismatched versions on validation produce
// a warning, not an error").
const SchemaVersion = "1.1.0"

// Status is a rule verdict, ordered pass < warn < fail for aggregation.
type Status string

const (
	StatusPass Status = "pass"
	StatusWarn Status = "warn"
	StatusFail Status = "fail"
)

func (s Status) rank() int {
	switch s {
	case StatusWarn:
		return 1
	case StatusFail:
		return 2
	default:
		return 0
	}
}

func worst(a, b Status) Status {
	if b.rank() > a.rank() {
		return b
	}
	return a
}

// Rule names, used as RuleResult.RuleID.
const (
	RuleRepo          = "repo"
	RuleTracking      = "tracking"
	RuleDocumentCount = "document-count"
	RuleReferences    = "references"
	RuleStructure     = "structure"
	RuleHelpers       = "helpers"
)

// RuleResult is the verdict of one rule.
type RuleResult struct {
	RuleID  string `json:"rule_id"`
	Status  Status `json:"status"`
	Message string `json:"message"`
	Detail  any    `json:"detail,omitempty"`
}

// Report is the aggregated output of RunHealthChecks.
type Report struct {
	Version   string        `json:"version"`
	Overall   Status        `json:"overall"`
	Results   []RuleResult  `json:"results"`
	CheckedAt time.Time     `json:"checked_at"`
	Duration  time.Duration `json:"duration"`
}

// BrokenLink is references-rule detail: a wiki link that resolved to a
// ghost.
type BrokenLink struct {
	File   string `json:"file"`
	Target string `json:"target"`
}

// Run executes all six rules against a and returns the aggregated Report.
// The first three rules (repo, tracking, document-count) run concurrently
// since each touches the adapter independently; the last three share a
// single scan of all .md files. resolveLinks resolves a raw wiki-link
// target to (id, found) for the references rule; pass nil to skip the
// references rule's resolution (it reports "nothing to check").
func Run(ctx context.Context, a adapter.Adapter, resolveLinks func(target string) (id string, found bool)) Report {
	start := time.Now()

	var (
		wg                         sync.WaitGroup
		repoResult, trackingResult RuleResult
		docCountResult             RuleResult
	)
	wg.Add(3)
	go func() { defer wg.Done(); repoResult = checkRepo(ctx, a) }()
	go func() { defer wg.Done(); trackingResult = checkTracking(ctx, a) }()
	go func() { defer wg.Done(); docCountResult = checkDocumentCount(ctx, a) }()
	wg.Wait()

	docs := scanner.Scan(ctx, a)
	referencesResult := checkReferences(docs, resolveLinks)
	structureResult := checkStructure(docs)
	helpersResult := checkHelpers(docs)

	results := []RuleResult{repoResult, trackingResult, docCountResult, referencesResult, structureResult, helpersResult}

	overall := StatusPass
	for _, r := range results {
		overall = worst(overall, r.Status)
	}

	return Report{
		Version:   SchemaVersion,
		Overall:   overall,
		Results:   results,
		CheckedAt: start.UTC(),
		Duration:  time.Since(start),
	}
}

func checkRepo(ctx context.Context, a adapter.Adapter) RuleResult {
	if a.IsRepo(ctx) {
		return RuleResult{RuleID: RuleRepo, Status: StatusPass, Message: "repository marker present"}
	}
	return RuleResult{RuleID: RuleRepo, Status: StatusFail, Message: "no repository marker found"}
}

func checkTracking(ctx context.Context, a adapter.Adapter) RuleResult {
	if a.HasTrackingMarker(ctx) {
		return RuleResult{RuleID: RuleTracking, Status: StatusPass, Message: "tracking marker present"}
	}
	return RuleResult{RuleID: RuleTracking, Status: StatusWarn, Message: "tracking marker absent"}
}

func checkDocumentCount(ctx context.Context, a adapter.Adapter) RuleResult {
	n := a.DocumentCount(ctx)
	if n >= 1 {
		return RuleResult{RuleID: RuleDocumentCount, Status: StatusPass, Message: "documents found"}
	}
	return RuleResult{RuleID: RuleDocumentCount, Status: StatusFail, Message: "zero documents found"}
}

func checkReferences(docs []scanner.Document, resolveLinks func(string) (string, bool)) RuleResult {
	if resolveLinks == nil || len(docs) == 0 {
		return RuleResult{RuleID: RuleReferences, Status: StatusPass, Message: "nothing to check"}
	}

	var broken []BrokenLink
	for _, doc := range docs {
		_, body, hadHeader, _, err := frontmatter.Split([]byte(doc.Text))
		if err != nil {
			continue
		}
		if !hadHeader {
			body = []byte(doc.Text)
		}
		for _, link := range markdown.ExtractWikiLinks(body) {
			if _, found := resolveLinks(link.Target); !found {
				broken = append(broken, BrokenLink{File: doc.RelPath, Target: link.Target})
			}
		}
	}

	if len(broken) == 0 {
		return RuleResult{RuleID: RuleReferences, Status: StatusPass, Message: "all wiki links resolve"}
	}
	sort.Slice(broken, func(i, j int) bool {
		if broken[i].File != broken[j].File {
			return broken[i].File < broken[j].File
		}
		return broken[i].Target < broken[j].Target
	})
	return RuleResult{RuleID: RuleReferences, Status: StatusWarn, Message: "broken wiki links found", Detail: broken}
}

func checkStructure(docs []scanner.Document) RuleResult {
	var missing []string
	headerBearing := 0
	for _, doc := range docs {
		header, body, hadHeader, _, err := frontmatter.Split([]byte(doc.Text))
		if err != nil || !hadHeader || len(header) == 0 {
			continue
		}
		headerBearing++
		if !markdown.HasStructureHeading(body) {
			missing = append(missing, doc.RelPath)
		}
	}

	if headerBearing == 0 {
		return RuleResult{RuleID: RuleStructure, Status: StatusPass, Message: "nothing to check"}
	}
	if len(missing) == 0 {
		return RuleResult{RuleID: RuleStructure, Status: StatusPass, Message: "every document has a structure heading"}
	}
	sort.Strings(missing)
	return RuleResult{RuleID: RuleStructure, Status: StatusWarn, Message: "documents missing a structure heading", Detail: missing}
}

func checkHelpers(docs []scanner.Document) RuleResult {
	withHeader, withoutHeader := 0, 0
	for _, doc := range docs {
		_, _, hadHeader, _, err := frontmatter.Split([]byte(doc.Text))
		if err == nil && hadHeader {
			withHeader++
		} else {
			withoutHeader++
		}
	}
	return RuleResult{
		RuleID:  RuleHelpers,
		Status:  StatusPass,
		Message: "document counts by header presence",
		Detail: map[string]int{
			"with_header":    withHeader,
			"without_header": withoutHeader,
		},
	}
}
