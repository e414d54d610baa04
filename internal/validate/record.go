// Package validate implements the Schema Validator (spec §4.3): lenient
// parsing and coercion of a skill document's YAML header into a normalized,
// immutable Record. The validator never throws — malformed input produces
// warnings or a flagged-invalid record, never an error return.
package validate

import (
	"github.com/inful/skillgraph/internal/markdown"
)

// Kind is one of the six document kinds recognized by the engine.
type Kind string

const (
	KindSkill    Kind = "skill"
	KindSubagent Kind = "subagent"
	KindHook     Kind = "hook"
	KindCommand  Kind = "command"
	KindMOC      Kind = "moc"
	KindScript   Kind = "script"
)

// Status is one of the five lifecycle statuses recognized by the engine.
type Status string

const (
	StatusStable       Status = "stable"
	StatusDraft        Status = "draft"
	StatusDeprecated   Status = "deprecated"
	StatusExperimental Status = "experimental"
	StatusArchived     Status = "archived"
)

// Record is an immutable, post-validation SkillRecord (spec §3). Once
// constructed by Validate, a Record is read-only for the rest of the
// pipeline.
type Record struct {
	ID          string
	DisplayName string
	Kind        Kind
	Status      Status
	Category    string
	HasCategory bool
	Version     string
	Tags        []string
	Related     []string
	WikiLinks   []markdown.WikiLink
	Scripts     []string
	Aliases     []string
	FileStem    string
	SourcePath  string
	Body        string

	// Extra holds recognized pass-through string fields (description,
	// title, phase) plus any unrecognized header key, verbatim, for
	// consumption by hosts outside the engine's scope.
	Extra map[string]any
}

// Outcome is the result of validating one document (spec §9: "every
// Validator outcome includes valid, errors, warnings, and a normalized
// record").
type Outcome struct {
	HadHeader bool
	Record    Record
	Valid     bool
	Errors    []string
	Warnings  []string
}
