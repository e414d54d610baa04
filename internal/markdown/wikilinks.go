// Package markdown extracts the body-level constructs the engine cares
// about: wiki-style cross-references (`[[target]]` / `[[target|alias]]`)
// and "structure heading" markers used by the health reporter. Grounded on
// the teacher's internal/markdown package, which treats link extraction as
// a narrow analysis API rather than a full renderer.
package markdown

import "regexp"

// WikiLink is a single `[[target]]` or `[[target|alias]]` occurrence.
// Target and Alias are preserved raw, exactly as written in the body;
// normalization happens downstream in the resolver.
type WikiLink struct {
	Target string
	Alias  string // empty if no "|alias" was present
}

// wikiLinkPattern is the regex of record from spec §4.3: `\[\[([^\]]+)\]\]`.
var wikiLinkPattern = regexp.MustCompile(`\[\[([^\]]+)\]\]`)

// ExtractWikiLinks finds every `[[target]]` / `[[target|alias]]` occurrence
// in a document body, in the order they appear.
func ExtractWikiLinks(body []byte) []WikiLink {
	matches := wikiLinkPattern.FindAllSubmatch(body, -1)
	links := make([]WikiLink, 0, len(matches))
	for _, m := range matches {
		inner := string(m[1])
		target := inner
		alias := ""
		if idx := indexByte(inner, '|'); idx >= 0 {
			target = inner[:idx]
			alias = inner[idx+1:]
		}
		links = append(links, WikiLink{Target: target, Alias: alias})
	}
	return links
}

func indexByte(s string, b byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return -1
}
