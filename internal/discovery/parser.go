package discovery

import (
	"fmt"
	"os"
	"regexp"
	"sort"
)

// Top-level test functions: func TestXxx(t *testing.T). The rune after
// "Test" must not be a lowercase letter.
var testFuncPattern = regexp.MustCompile(`(?m)^func\s+(Test(?:[^a-z\s(]\w*)?)\s*\(\s*\w+\s+\*testing\.T\s*\)`)

// Parser parses test files to extract test functions
type Parser struct{}

// NewParser creates a new Parser
func NewParser() *Parser {
	return &Parser{}
}

// FindTestCases finds all top-level test functions in a test file
func (p *Parser) FindTestCases(filePath string) ([]string, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", filePath, err)
	}

	seen := make(map[string]bool)
	var testCases []string
	for _, match := range testFuncPattern.FindAllSubmatch(content, -1) {
		name := string(match[1])
		if seen[name] {
			continue
		}
		seen[name] = true
		testCases = append(testCases, name)
	}

	sort.Strings(testCases)
	return testCases, nil
}
