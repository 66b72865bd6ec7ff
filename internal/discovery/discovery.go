package discovery

// Test is a top-level test function found on disk
type Test struct {
	Package string // Import path of the package
	Name    string // Function name
	File    string // Source file
}

// ID returns the identifier the timing report uses for this test
func (t Test) ID() string {
	if t.Package == "" {
		return t.Name
	}
	return t.Package + "." + t.Name
}

// Discover lists every test function under root
func Discover(root string, skipDirs []string) ([]Test, error) {
	files, err := NewScanner(skipDirs).Scan(root)
	if err != nil {
		return nil, err
	}

	modulePath := ModulePath(root)
	parser := NewParser()

	var tests []Test
	for _, file := range files {
		names, err := parser.FindTestCases(file)
		if err != nil {
			return nil, err
		}
		pkg := ImportPath(root, modulePath, file)
		for _, name := range names {
			tests = append(tests, Test{Package: pkg, Name: name, File: file})
		}
	}
	return tests, nil
}
