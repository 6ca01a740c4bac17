// SPDX-License-Identifier: MIT

// Package testutil provides golden-file testing helpers for nvinit.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"
)

// Case is one golden test case parsed from a txtar archive. The archive
// holds:
//   - a description comment (text before the first file)
//   - "selections.json" with the input selection set
//   - optionally "catalog.yaml" overriding the embedded catalog
//   - one or more "want/<path>" files with expected output
type Case struct {
	// Name is the case name, typically the filename without extension.
	Name string

	// Description is the comment block before any files.
	Description string

	// Layout is parsed from a "Layout: ..." line in the description,
	// defaulting to "single".
	Layout string

	// Selections is the raw selections JSON.
	Selections []byte

	// Catalog is the raw catalog YAML, nil for the embedded default.
	Catalog []byte

	// Want maps output paths (e.g. "init.lua") to expected content.
	Want map[string]string
}

// LoadCases parses every .txtar archive under dir.
func LoadCases(t *testing.T, dir string) []*Case {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read testdata dir: %v", err)
	}

	var cases []*Case
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".txtar") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		ar, err := txtar.ParseFile(path)
		if err != nil {
			t.Fatalf("parse %s: %v", path, err)
		}
		c, err := ParseCase(strings.TrimSuffix(e.Name(), ".txtar"), ar)
		if err != nil {
			t.Fatalf("%s: %v", path, err)
		}
		cases = append(cases, c)
	}
	if len(cases) == 0 {
		t.Fatalf("no .txtar cases under %s", dir)
	}
	return cases
}

// ParseCase converts a txtar archive into a Case.
func ParseCase(name string, ar *txtar.Archive) (*Case, error) {
	c := &Case{
		Name:        name,
		Description: string(ar.Comment),
		Layout:      "single",
		Want:        make(map[string]string),
	}
	for _, line := range strings.Split(c.Description, "\n") {
		line = strings.TrimSpace(line)
		if after, ok := strings.CutPrefix(line, "Layout:"); ok {
			c.Layout = strings.TrimSpace(after)
			break
		}
	}

	for _, f := range ar.Files {
		switch {
		case f.Name == "selections.json":
			c.Selections = f.Data
		case f.Name == "catalog.yaml":
			c.Catalog = f.Data
		case strings.HasPrefix(f.Name, "want/"):
			c.Want[strings.TrimPrefix(f.Name, "want/")] = string(f.Data)
		default:
			return nil, &caseError{name: name, msg: "unexpected file " + f.Name}
		}
	}

	if c.Selections == nil {
		return nil, &caseError{name: name, msg: "missing selections.json"}
	}
	if len(c.Want) == 0 {
		return nil, &caseError{name: name, msg: "missing want/* files"}
	}
	return c, nil
}

type caseError struct {
	name string
	msg  string
}

func (e *caseError) Error() string {
	return e.name + ": " + e.msg
}

// GenerateFunc produces output files from a golden case.
type GenerateFunc func(c *Case) (map[string]string, error)

// Run generates output for the case and diffs it against want/*.
// Contents are compared byte-exactly; trailing-newline discipline is
// part of the contract.
func (c *Case) Run(t *testing.T, generate GenerateFunc) {
	t.Helper()

	got, err := generate(c)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	for path := range c.Want {
		if _, ok := got[path]; !ok {
			t.Errorf("missing output file: %q", path)
		}
	}
	for path := range got {
		if _, ok := c.Want[path]; !ok {
			t.Errorf("unexpected output file: %q", path)
		}
	}

	for path, want := range c.Want {
		gotContent, ok := got[path]
		if !ok {
			continue
		}
		if diff := cmp.Diff(want, gotContent); diff != "" {
			t.Errorf("file %q mismatch (-want +got):\n%s", path, diff)
		}
	}
}
