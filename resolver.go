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

package bracefmt

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Resolver locates template files by name.
type Resolver interface {
	FindFileByPath(string) (SearchResult, error)
}

// SearchResult is what a [Resolver] found.
//
// Only one field needs to be set. If Template is set, it is used as is;
// otherwise Source is read and compiled.
type SearchResult struct {
	// The template's text. If it implements io.Closer, the compiler closes it
	// once read.
	Source io.Reader
	// An already-compiled template. Its name must match the name searched for.
	Template *Template
}

// ResolverFunc is a [Resolver] implemented by a function.
type ResolverFunc func(string) (SearchResult, error)

var _ Resolver = ResolverFunc(nil)

// FindFileByPath implements [Resolver].
func (f ResolverFunc) FindFileByPath(path string) (SearchResult, error) {
	return f(path)
}

// CompositeResolver tries each of its resolvers in turn, returning the first
// success. If all fail, the first error is returned.
type CompositeResolver []Resolver

var _ Resolver = CompositeResolver(nil)

// FindFileByPath implements [Resolver].
func (f CompositeResolver) FindFileByPath(path string) (SearchResult, error) {
	if len(f) == 0 {
		return SearchResult{}, notFound(path)
	}
	var firstErr error
	for _, res := range f {
		r, err := res.FindFileByPath(path)
		if err == nil {
			return r, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return SearchResult{}, firstErr
}

// SourceResolver opens template files from a list of directories.
type SourceResolver struct {
	// Directories searched, in order. If empty, paths are opened as given.
	ImportPaths []string
	// Opens a file. If nil, [os.Open] is used.
	Accessor func(string) (io.ReadCloser, error)
}

var _ Resolver = (*SourceResolver)(nil)

// FindFileByPath implements [Resolver].
func (r *SourceResolver) FindFileByPath(path string) (SearchResult, error) {
	if len(r.ImportPaths) == 0 {
		reader, err := r.open(path)
		if err != nil {
			return SearchResult{}, err
		}
		return SearchResult{Source: reader}, nil
	}

	e := notFound(path)
	for _, importPath := range r.ImportPaths {
		reader, err := r.open(filepath.Join(importPath, path))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				e = err
				continue
			}
			return SearchResult{}, err
		}
		return SearchResult{Source: reader}, nil
	}
	return SearchResult{}, e
}

func (r *SourceResolver) open(path string) (io.ReadCloser, error) {
	if r.Accessor == nil {
		return os.Open(path)
	}
	return r.Accessor(path)
}

// SourceAccessorFromMap returns an accessor for [SourceResolver] that serves
// templates from memory.
func SourceAccessorFromMap(srcs map[string]string) func(string) (io.ReadCloser, error) {
	return func(path string) (io.ReadCloser, error) {
		src, ok := srcs[path]
		if !ok {
			return nil, notFound(path)
		}
		return io.NopCloser(strings.NewReader(src)), nil
	}
}

func notFound(path string) error {
	return fmt.Errorf("%s: %w", path, fs.ErrNotExist)
}
