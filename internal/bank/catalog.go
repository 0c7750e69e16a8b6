package bank

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"slices"
)

//go:embed data/*.json
var embedded embed.FS

// Catalog is the ordered set of available tests.
type Catalog struct {
	tests []Test
}

// Load reads and validates the question banks compiled into the binary.
func Load() (*Catalog, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, fmt.Errorf("open embedded banks: %w", err)
	}
	return LoadFS(sub)
}

// LoadFS reads every *.json file at the root of fsys, in file name order.
// Each file holds one test. Files are checked against the JSON schema,
// then the assembled catalog is validated structurally.
func LoadFS(fsys fs.FS) (*Catalog, error) {
	names, err := fs.Glob(fsys, "*.json")
	if err != nil {
		return nil, fmt.Errorf("list banks: %w", err)
	}
	slices.Sort(names)

	tests := make([]Test, 0, len(names))
	for _, name := range names {
		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		t, err := decodeTest(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path.Base(name), err)
		}
		tests = append(tests, t)
	}

	return NewCatalog(tests)
}

// NewCatalog validates tests and builds a catalog in the given order.
// Test numbers are assigned from 1.
func NewCatalog(tests []Test) (*Catalog, error) {
	c := &Catalog{
		tests: make([]Test, len(tests)),
	}
	for i, t := range tests {
		t.Number = i + 1
		t.Questions = slices.Clone(t.Questions)
		c.tests[i] = t
	}

	if err := validateTests(c.tests); err != nil {
		return nil, err
	}
	return c, nil
}

func decodeTest(raw []byte) (Test, error) {
	if err := checkSchema(raw); err != nil {
		return Test{}, err
	}

	var t Test
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&t); err != nil {
		return Test{}, fmt.Errorf("decode test: %w", err)
	}
	return t, nil
}

// Tests returns all tests in catalog order.
func (c *Catalog) Tests() []Test {
	return slices.Clone(c.tests)
}

// Len returns the number of tests.
func (c *Catalog) Len() int {
	return len(c.tests)
}

// ByNumber returns the test at the 1-based position n.
func (c *Catalog) ByNumber(n int) (Test, error) {
	if n < 1 || n > len(c.tests) {
		return Test{}, fmt.Errorf("test number %d out of range [1, %d]", n, len(c.tests))
	}
	return c.tests[n-1], nil
}

// QuestionCount returns the total number of questions across all tests.
func (c *Catalog) QuestionCount() int {
	n := 0
	for _, t := range c.tests {
		n += len(t.Questions)
	}
	return n
}
