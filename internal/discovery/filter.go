package discovery

import (
	"path/filepath"
	"strings"
)

// Filter filters test ids by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName keeps the ids whose test name matches pattern. Patterns
// with * or ? are matched as wildcards, anything else as a substring.
func (f *Filter) FilterByName(ids []string, pattern string) []string {
	if pattern == "" {
		return ids
	}

	var filtered []string
	for _, id := range ids {
		if matchName(testName(id), pattern) {
			filtered = append(filtered, id)
		}
	}
	return filtered
}

func matchName(name, pattern string) bool {
	if !strings.ContainsAny(pattern, "*?") {
		return strings.Contains(name, pattern)
	}
	if matched, err := filepath.Match(pattern, name); err == nil && matched {
		return true
	}

	// Fall back to matching the literal parts in order, e.g. "*Payment*"
	rest := name
	found := false
	for _, part := range strings.FieldsFunc(pattern, func(r rune) bool { return r == '*' || r == '?' }) {
		i := strings.Index(rest, part)
		if i < 0 {
			return false
		}
		rest = rest[i+len(part):]
		found = true
	}
	return found
}

// testName strips the package prefix from a test id
func testName(id string) string {
	if i := strings.LastIndex(id, "."); i >= 0 {
		return id[i+1:]
	}
	return id
}
