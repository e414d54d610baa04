// Package normalize provides generic enum normalization and the
// identifier-normalization algorithm shared by the validator, resolver and
// graph builder.
package normalize

import (
	"sort"
	"strings"
)

// Normalizer provides type-safe string-to-enum normalization with a
// documented default for unrecognized input. Grounded on the teacher's
// generic config-enum normalizer; reused here for SkillRecord.kind and
// SkillRecord.status coercion (§4.3).
type Normalizer[T comparable] struct {
	validValues map[string]T
	defaultVal  T
	validKeys   []string
}

// New constructs a Normalizer from a map of canonical-key -> value.
// Keys are lowercased/trimmed before indexing.
func New[T comparable](values map[string]T, defaultValue T) *Normalizer[T] {
	normalized := make(map[string]T, len(values))
	keys := make([]string, 0, len(values))
	for k, v := range values {
		nk := fold(k)
		normalized[nk] = v
		keys = append(keys, nk)
	}
	sort.Strings(keys)
	return &Normalizer[T]{validValues: normalized, defaultVal: defaultValue, validKeys: keys}
}

// Normalize converts a raw string to T, falling back to the default value
// if the string is not recognized. It never returns an error: callers in
// this module never throw on invalid enum input.
func (n *Normalizer[T]) Normalize(raw string) T {
	if v, ok := n.validValues[fold(raw)]; ok {
		return v
	}
	return n.defaultVal
}

// Recognized reports whether raw maps to a known value (as opposed to
// falling back to the default).
func (n *Normalizer[T]) Recognized(raw string) bool {
	_, ok := n.validValues[fold(raw)]
	return ok
}

// ValidKeys returns all valid normalized keys, sorted.
func (n *Normalizer[T]) ValidKeys() []string {
	out := make([]string, len(n.validKeys))
	copy(out, n.validKeys)
	return out
}

func fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
