package validate

import (
	"fmt"
	"path"
	"strconv"
	"strings"

	"github.com/inful/skillgraph/internal/frontmatter"
	"github.com/inful/skillgraph/internal/markdown"
	"github.com/inful/skillgraph/internal/normalize"
)

var kindNormalizer = normalize.New(map[string]Kind{
	"skill":    KindSkill,
	"subagent": KindSubagent,
	"hook":     KindHook,
	"command":  KindCommand,
	"moc":      KindMOC,
	"script":   KindScript,
}, KindSkill)

var statusNormalizer = normalize.New(map[string]Status{
	"stable":       StatusStable,
	"draft":        StatusDraft,
	"deprecated":   StatusDeprecated,
	"experimental": StatusExperimental,
	"archived":     StatusArchived,
}, StatusStable)

// passThroughKeys are recognized-but-uninterpreted header keys (spec
// §4.3): they carry no coercion, and land verbatim in Record.Extra.
var passThroughKeys = map[string]bool{
	"description": true,
	"title":       true,
	"phase":       true,
}

// Validate parses sourcePath's text, extracts and coerces its YAML header,
// and returns the validation Outcome. If the document has no frontmatter
// header (or an unterminated one), HadHeader is false and Outcome.Record
// is the zero value — the caller should not add it to the graph, though it
// still counts toward the health reporter's helper-document tally.
func Validate(sourcePath string, text string) Outcome {
	header, body, had, _, err := frontmatter.Split([]byte(text))
	if err != nil || !had {
		return Outcome{HadHeader: false}
	}

	fields, parseErr := frontmatter.ParseYAML(header)
	fileStem := stemOf(sourcePath)

	out := Outcome{HadHeader: true, Valid: true}
	if parseErr != nil {
		out.Valid = false
		out.Errors = append(out.Errors, fmt.Sprintf("invalid yaml header: %v", parseErr))
		fields = map[string]any{}
	}

	rec := Record{
		FileStem:   fileStem,
		SourcePath: sourcePath,
		Body:       string(body),
		Extra:      map[string]any{},
	}

	// name (required)
	name, hasName := stringField(fields, "name")
	name = strings.TrimSpace(name)
	if !hasName || name == "" {
		out.Valid = false
		out.Errors = append(out.Errors, "missing required field: name")
		if fileStem != "" {
			name = fileStem
		}
	}
	rec.DisplayName = name

	// type
	if raw, ok := stringField(fields, "type"); ok {
		if !kindNormalizer.Recognized(raw) {
			out.Warnings = append(out.Warnings, fmt.Sprintf("unrecognized type %q, defaulting to skill", raw))
		}
		rec.Kind = kindNormalizer.Normalize(raw)
	} else {
		rec.Kind = KindSkill
	}

	// moc flag forces kind
	if moc, present := boolField(fields, "moc", &out); present && moc {
		rec.Kind = KindMOC
	}

	// status
	if raw, ok := stringField(fields, "status"); ok {
		if !statusNormalizer.Recognized(raw) {
			out.Warnings = append(out.Warnings, fmt.Sprintf("unrecognized status %q, defaulting to stable", raw))
		}
		rec.Status = statusNormalizer.Normalize(raw)
	} else {
		rec.Status = StatusStable
	}

	// category (optional, no default)
	if raw, ok := stringField(fields, "category"); ok {
		rec.Category = strings.TrimSpace(raw)
		rec.HasCategory = true
	}

	// version (string, number coercion permitted)
	rec.Version = versionField(fields, &out)

	// tags: accept single string (split on comma) or list
	rec.Tags = listFieldSplitCommas(fields, "tags", &out)

	// related / scripts: single string wraps to list of one, no splitting
	rec.Related = listFieldNoSplit(fields, "related", &out)
	rec.Scripts = listFieldNoSplit(fields, "scripts", &out)

	// aliases: not in the normative table, but used by the resolver (§4.4);
	// same coercion as related/scripts.
	rec.Aliases = listFieldNoSplit(fields, "aliases", &out)

	rec.WikiLinks = markdown.ExtractWikiLinks(body)

	for _, key := range []string{"description", "title", "phase"} {
		if v, ok := fields[key]; ok {
			rec.Extra[key] = v
		}
	}
	for key, v := range fields {
		if isRecognizedKey(key) {
			continue
		}
		rec.Extra[key] = v
	}

	id := name
	if id == "" {
		id = fileStem
	}
	rec.ID = normalizedID(id)

	out.Record = rec
	return out
}

func isRecognizedKey(key string) bool {
	switch key {
	case "name", "type", "category", "tags", "status", "version", "related", "scripts", "moc", "description", "title", "phase", "aliases":
		return true
	}
	return false
}

func stemOf(sourcePath string) string {
	base := path.Base(sourcePath)
	if idx := strings.LastIndex(base, "."); idx > 0 {
		base = base[:idx]
	}
	return normalizedID(base)
}

func normalizedID(s string) string {
	id := normalize.Identifier(s)
	if id == "" {
		return "unknown"
	}
	return id
}

func stringField(fields map[string]any, key string) (string, bool) {
	v, ok := fields[key]
	if !ok || v == nil {
		return "", false
	}
	switch t := v.(type) {
	case string:
		return t, true
	case int, int64, float64, bool:
		return fmt.Sprintf("%v", t), true
	default:
		return fmt.Sprintf("%v", t), true
	}
}

func boolField(fields map[string]any, key string, out *Outcome) (bool, bool) {
	v, ok := fields[key]
	if !ok || v == nil {
		return false, false
	}
	switch t := v.(type) {
	case bool:
		return t, true
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(t))
		if err != nil {
			out.Warnings = append(out.Warnings, fmt.Sprintf("field %q: cannot coerce %q to boolean", key, t))
			return false, true
		}
		return b, true
	default:
		out.Warnings = append(out.Warnings, fmt.Sprintf("field %q: unexpected type for boolean field", key))
		return false, true
	}
}

func versionField(fields map[string]any, out *Outcome) string {
	v, ok := fields["version"]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		out.Warnings = append(out.Warnings, "field \"version\": coerced number to string")
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		out.Warnings = append(out.Warnings, "field \"version\": unexpected type, coercing via string conversion")
		return fmt.Sprintf("%v", t)
	}
}

// listFieldSplitCommas implements the tags coercion rule: a YAML list is
// used as-is; a plain string is split on "," and each part trimmed (a
// string with no comma yields a single-element list, satisfying the "or
// single string (no split)" half of the rule without a separate code
// path). Empty trimmed parts are dropped as noise.
func listFieldSplitCommas(fields map[string]any, key string, out *Outcome) []string {
	v, ok := fields[key]
	if !ok || v == nil {
		return []string{}
	}
	switch t := v.(type) {
	case string:
		parts := strings.Split(t, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p != "" {
				result = append(result, p)
			}
		}
		return result
	case []any:
		return stringifyList(t)
	default:
		out.Warnings = append(out.Warnings, fmt.Sprintf("field %q: unexpected type, ignoring", key))
		return []string{}
	}
}

// listFieldNoSplit implements the related/scripts/aliases coercion rule: a
// YAML list is used as-is; a plain string wraps to a single-element list
// verbatim (no comma splitting).
func listFieldNoSplit(fields map[string]any, key string, out *Outcome) []string {
	v, ok := fields[key]
	if !ok || v == nil {
		return []string{}
	}
	switch t := v.(type) {
	case string:
		if strings.TrimSpace(t) == "" {
			return []string{}
		}
		return []string{t}
	case []any:
		return stringifyList(t)
	default:
		out.Warnings = append(out.Warnings, fmt.Sprintf("field %q: unexpected type, ignoring", key))
		return []string{}
	}
}

func stringifyList(items []any) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, fmt.Sprintf("%v", item))
	}
	return out
}
