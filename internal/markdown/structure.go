package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// structureHeadingNames are the heading texts recognized by spec §4.3's
// "structure heading" rule, compared case-insensitively against the first
// word of a level 1-3 heading.
var structureHeadingNames = map[string]bool{
	"description": true,
	"output":      true,
	"format":      true,
}

// HasStructureHeading reports whether the body contains at least one
// heading of level 1-3 whose text begins with Description, Output or
// Format (case-insensitive), used by the health reporter's "structure"
// rule. Parsed with Goldmark rather than a raw regex so heading detection
// respects actual Markdown structure (e.g. a "# Description" inside a
// fenced code block is not a heading).
func HasStructureHeading(body []byte) bool {
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(body))

	found := false
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering || found {
			return gmast.WalkContinue, nil
		}
		heading, ok := n.(*gmast.Heading)
		if !ok || heading.Level > 3 {
			return gmast.WalkContinue, nil
		}
		if startsWithStructureName(heading, body) {
			found = true
			return gmast.WalkStop, nil
		}
		return gmast.WalkContinue, nil
	})
	return found
}

func startsWithStructureName(heading *gmast.Heading, source []byte) bool {
	if heading.ChildCount() == 0 {
		return false
	}
	first := heading.FirstChild()
	text, ok := first.(*gmast.Text)
	if !ok {
		return false
	}
	word := firstWord(text.Segment.Value(source))
	return structureHeadingNames[bytesToLowerString(word)]
}

// firstWord returns the leading run of word characters (matching the
// regex \w boundary a Go regex \b would stop at), not merely the
// leading run up to the next whitespace. This keeps "Output:" and
// "Format-spec" recognized the same way spec §4.3's
// `^#{1,3}\s+(Description|Output|Format)\b` would: the word boundary
// sits right after the keyword, however it's followed.
func firstWord(b []byte) []byte {
	i := 0
	for i < len(b) && isWordByte(b[i]) {
		i++
	}
	return b[:i]
}

func isWordByte(c byte) bool {
	return c == '_' ||
		(c >= '0' && c <= '9') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= 'a' && c <= 'z')
}

func bytesToLowerString(b []byte) string {
	return string(bytes.ToLower(b))
}
