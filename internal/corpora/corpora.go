// Copyright 2026 Trevor Strong
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package corpora runs table-driven tests whose table lives in the file
// system: each test case is one input file, and its expected outputs sit
// next to it in files with extra extensions.
package corpora

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/Trevor-Strong/bracefmt/internal"
)

// Corpus describes a test data corpus.
type Corpus struct {
	// The root of the test data directory, relative to the file that calls
	// [Corpus.Run].
	Root string

	// An environment variable holding a doublestar glob. Test cases whose
	// paths match it have their outputs rewritten instead of compared.
	Refresh string

	// The extension (without a dot) of files that define a test case, e.g.
	// "tmpl".
	Extension string

	// The outputs of each test case. A missing output file is treated as
	// expecting the empty string.
	Outputs []Output
}

// Output is one output of a test case. For a case "foo.tmpl" and an Output
// with Extension "stderr.txt", the expected value lives in
// "foo.tmpl.stderr.txt".
type Output struct {
	Extension string

	// Compares results. If nil, a byte-for-byte comparison is used.
	Compare Compare
}

// Compare compares a result against its expectation, returning a
// description of the difference, or "" if they match.
type Compare func(got, want string) string

// Run executes test on every case in the corpus. test returns one string per
// element of c.Outputs.
func (c Corpus) Run(t *testing.T, test func(t *testing.T, path, text string) []string) {
	t.Helper()

	testDir := internal.CallerDir(1)
	root := filepath.Join(testDir, c.Root)

	var cases []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.TrimPrefix(filepath.Ext(p), ".") == c.Extension {
			cases = append(cases, p)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("corpora: walking %q: %v", root, err)
	}
	slices.Sort(cases)

	var refresh string
	if c.Refresh != "" {
		refresh = os.Getenv(c.Refresh)
		if !doublestar.ValidatePattern(refresh) {
			t.Fatalf("corpora: invalid glob in %s: %q", c.Refresh, refresh)
		}
	}
	if refresh != "" {
		t.Logf("corpora: refreshing test data matching %s=%s", c.Refresh, refresh)
	}

	for _, path := range cases {
		name, _ := filepath.Rel(testDir, path)
		name = filepath.ToSlash(name)
		t.Run(name, func(t *testing.T) {
			input, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("corpora: loading %q: %v", path, err)
			}

			results := test(t, name, string(input))
			if len(results) != len(c.Outputs) {
				t.Fatalf("corpora: test returned %d results for %d outputs", len(results), len(c.Outputs))
			}

			shouldRefresh, _ := doublestar.Match(refresh, name)
			for i, output := range c.Outputs {
				c.check(t, path+"."+output.Extension, output, results[i], shouldRefresh)
			}
		})
	}
}

func (c Corpus) check(t *testing.T, path string, output Output, got string, refresh bool) {
	t.Helper()

	if refresh {
		var err error
		if got == "" {
			err = os.Remove(path)
			if errors.Is(err, os.ErrNotExist) {
				err = nil
			}
		} else {
			err = os.WriteFile(path, []byte(got), 0o644)
		}
		if err != nil {
			t.Errorf("corpora: refreshing %q: %v", path, err)
		}
		return
	}

	want, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		t.Errorf("corpora: loading %q: %v", path, err)
		return
	}

	compare := output.Compare
	if compare == nil {
		compare = UnifiedDiff
	}
	if diff := compare(got, string(want)); diff != "" {
		t.Errorf("output mismatch for %q:\n%s", path, diff)
	}
}

// UnifiedDiff is the default [Compare]: an exact comparison that explains
// mismatches with a unified diff.
func UnifiedDiff(got, want string) string {
	if got == want {
		return ""
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}
	if diff == "" {
		// Only possible if the strings differ in a way SplitLines hides.
		return fmt.Sprintf("want %q\ngot  %q", want, got)
	}
	return diff
}
