package parser

import "strings"

// ExclusionMatcher decides whether a raw summary should be ignored
// entirely (e.g. "Away", "Lunch"). Matching is a case-insensitive exact
// comparison against the configured pattern list.
type ExclusionMatcher struct {
	patterns map[string]struct{}
}

// NewExclusionMatcher builds a matcher from the catalog's pattern list.
func NewExclusionMatcher(patterns []string) *ExclusionMatcher {
	m := &ExclusionMatcher{patterns: make(map[string]struct{}, len(patterns))}
	for _, p := range patterns {
		m.patterns[strings.ToLower(strings.TrimSpace(p))] = struct{}{}
	}
	return m
}

// Excluded reports whether the summary matches any exclusion pattern.
func (m *ExclusionMatcher) Excluded(summary string) bool {
	_, ok := m.patterns[strings.ToLower(strings.TrimSpace(summary))]
	return ok
}
