// Package frontmatter splits a skill document into its YAML metadata header
// and Markdown body, per spec §4.3 ("the first contiguous block delimited
// by lines that are exactly `---`"). There is no Join/reassembly here: the
// core never writes a document back, so the teacher's frontmatter package's
// symmetric Join was dropped rather than carried over unused.
package frontmatter

import (
	"bytes"
	"errors"

	"gopkg.in/yaml.v3"
)

// Style records the newline convention of a scanned document. Split uses
// its Newline to locate the `---` delimiter lines; nothing in this repo
// rewrites a document, so Style is read-only metadata rather than
// round-trip state.
type Style struct {
	Newline            string
	HasTrailingNewline bool
}

// ErrMissingClosingDelimiter indicates a document opened a header with a
// `---` line but never closed it. The validator folds this into "no header"
// (skipped for graph purposes, still counted as a helper document) since
// the engine never throws.
var ErrMissingClosingDelimiter = errors.New("frontmatter: opening delimiter has no matching close")

// Split separates a document's YAML header from its body. had reports
// whether a complete header block (opening and closing `---` lines) was
// found. When there is no opening line, body is the entire input and header
// is nil; when the opening line has no matching close, had is false and err
// is ErrMissingClosingDelimiter.
func Split(content []byte) (header, body []byte, had bool, style Style, err error) {
	style = detectStyle(content)
	nl := style.Newline

	firstLine, rest, ok := bytes.Cut(content, []byte(nl))
	if !ok || string(firstLine) != "---" {
		return nil, content, false, style, nil
	}

	closingNow := []byte("---" + nl)
	if bytes.HasPrefix(rest, closingNow) {
		return []byte{}, rest[len(closingNow):], true, style, nil
	}

	closingLine := []byte(nl + "---" + nl)
	idx := bytes.Index(rest, closingLine)
	if idx < 0 {
		return nil, nil, false, style, ErrMissingClosingDelimiter
	}
	return rest[:idx+len(nl)], rest[idx+len(closingLine):], true, style, nil
}

// ParseYAML decodes a header block (stripped of its `---` delimiters) into
// a field map. A blank or whitespace-only header decodes to an empty map
// rather than an error, matching spec §4.3's "empty header is valid".
func ParseYAML(header []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(header)) == 0 {
		return map[string]any{}, nil
	}

	var fields map[string]any
	if err := yaml.Unmarshal(header, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		fields = map[string]any{}
	}
	return fields, nil
}

// detectStyle looks at the first line break to decide whether a document
// uses CRLF or bare LF line endings, and whether the file ends on one.
func detectStyle(content []byte) Style {
	style := Style{Newline: "\n"}

	if nlIdx := bytes.IndexByte(content, '\n'); nlIdx > 0 && content[nlIdx-1] == '\r' {
		style.Newline = "\r\n"
	}
	style.HasTrailingNewline = len(content) > 0 && content[len(content)-1] == '\n'

	return style
}
