package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// DefaultSkipDirs are directories the go tool never treats as packages
var DefaultSkipDirs = []string{"vendor", "testdata"}

var modulePattern = regexp.MustCompile(`(?m)^module\s+"?([^\s"]+)"?`)

// Scanner scans for Go test files in a directory tree
type Scanner struct {
	skipDirs map[string]bool
}

// NewScanner creates a new Scanner with the given directories to skip
func NewScanner(skipDirs []string) *Scanner {
	skipMap := make(map[string]bool)
	for _, dir := range skipDirs {
		skipMap[dir] = true
	}
	return &Scanner{skipDirs: skipMap}
}

// Scan finds all _test.go files in the given root directory
func (s *Scanner) Scan(root string) ([]string, error) {
	var testfiles []string

	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("test path does not exist: %s", root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("test path is not a directory: %s", root)
	}

	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path == root {
				return nil
			}
			name := d.Name()
			// Hidden and underscore directories are ignored by ./... patterns
			if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
				return filepath.SkipDir
			}
			if s.skipDirs[name] {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasSuffix(d.Name(), "_test.go") {
			testfiles = append(testfiles, path)
		}
		return nil
	})

	return testfiles, err
}

// ModulePath returns the module path declared in root/go.mod, or "" when
// there is none
func ModulePath(root string) string {
	content, err := os.ReadFile(filepath.Join(root, "go.mod"))
	if err != nil {
		return ""
	}
	match := modulePattern.FindSubmatch(content)
	if match == nil {
		return ""
	}
	return string(match[1])
}

// ImportPath derives the package import path of a test file under root.
// Without a module path the slash-separated directory is used.
func ImportPath(root, modulePath, file string) string {
	rel, err := filepath.Rel(root, filepath.Dir(file))
	if err != nil {
		rel = filepath.Dir(file)
	}
	rel = filepath.ToSlash(rel)

	switch {
	case modulePath == "":
		return rel
	case rel == ".":
		return modulePath
	default:
		return modulePath + "/" + rel
	}
}
